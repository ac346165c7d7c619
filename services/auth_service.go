package services

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/kamuz-01/Sistema-Feira/dto"
	"github.com/kamuz-01/Sistema-Feira/models"
	"github.com/kamuz-01/Sistema-Feira/repositories"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Defaults applied when a producer registers without farm details
const (
	DefaultNomeFazenda = "Minha Fazenda"
	DefaultCidade      = "Cidade"
)

// AuthService handles registration, credential exchange and identity lookup
type AuthService struct {
	userRepo     *repositories.UserRepository
	produtorRepo *repositories.ProdutorRepository
}

// NewAuthService creates a new auth service instance
func NewAuthService() *AuthService {
	return &AuthService{
		userRepo:     repositories.NewUserRepository(),
		produtorRepo: repositories.NewProdutorRepository(),
	}
}

// Register creates a new account, adds it to the group matching the
// chosen role and, for producers, creates the producer profile. No
// session or token is issued; the caller authenticates afterwards.
func (s *AuthService) Register(req dto.RegisterRequest) (*models.User, error) {
	exists, err := s.userRepo.UsernameExists(req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, NewValidationError("username", "Este nome de usuário já está em uso.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username: req.Username,
		Password: string(hash),
	}
	if err := s.userRepo.Create(&user); err != nil {
		return nil, err
	}

	// Groups are seeded at startup, never created on the request path
	group, err := s.userRepo.FindGroupByName(req.Role.GroupName())
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.AddToGroup(&user, group); err != nil {
		return nil, err
	}

	if req.Role == models.RoleProdutor {
		nomeFazenda := strings.TrimSpace(req.NomeFazenda)
		if nomeFazenda == "" {
			nomeFazenda = DefaultNomeFazenda
		}
		cidade := strings.TrimSpace(req.Cidade)
		if cidade == "" {
			cidade = DefaultCidade
		}
		produtor := models.Produtor{
			UserID:      user.ID,
			NomeFazenda: nomeFazenda,
			Cidade:      cidade,
		}
		if err := s.produtorRepo.Create(&produtor); err != nil {
			return nil, err
		}
	}

	return &user, nil
}

// IssueToken exchanges username and password for a bearer token
func (s *AuthService) IssueToken(req dto.TokenRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.FindByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrUnauthorized
	}

	token, expiresAt, err := GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{Token: token, ExpiresAt: expiresAt}, nil
}

// CurrentUser loads the account behind a validated token, with groups
func (s *AuthService) CurrentUser(id uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	return &user, nil
}

// GenerateToken generates a new JWT token for a user
func GenerateToken(userID uint, username string) (string, time.Time, error) {
	secretKey := os.Getenv("JWT_SECRET")
	if secretKey == "" {
		return "", time.Time{}, errors.New("JWT_SECRET not set in environment")
	}

	// Token expires in 24 hours
	expiresAt := time.Now().Add(24 * time.Hour)

	claims := dto.TokenClaims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secretKey))
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates a JWT token and returns claims if valid
func ValidateToken(tokenString string) (*dto.TokenClaims, error) {
	secretKey := os.Getenv("JWT_SECRET")
	if secretKey == "" {
		return nil, errors.New("JWT_SECRET not set in environment")
	}

	token, err := jwt.ParseWithClaims(tokenString, &dto.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(*dto.TokenClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
