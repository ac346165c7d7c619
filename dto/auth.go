package dto

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/kamuz-01/Sistema-Feira/models"
)

// TokenClaims represents our custom JWT claims
type TokenClaims struct {
	UserID   uint   `json:"userId"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenRequest represents the credentials exchanged for a bearer token
type TokenRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents an issued bearer token
type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// RegisterRequest represents registration data
type RegisterRequest struct {
	Username    string      `json:"username" binding:"required,max=150"`
	Password    string      `json:"password" binding:"required,min=4"`
	Role        models.Role `json:"role" binding:"required,oneof=PRODUTOR CONSUMIDOR"`
	NomeFazenda string      `json:"nome_fazenda" binding:"omitempty,max=120"`
	Cidade      string      `json:"cidade" binding:"omitempty,max=120"`
}

// RegisterResponse confirms account creation; no token is issued here
type RegisterResponse struct {
	Message  string   `json:"message"`
	Username string   `json:"username"`
	Groups   []string `json:"groups"`
}

// WhoAmIResponse describes the authenticated caller
type WhoAmIResponse struct {
	Username    string   `json:"username"`
	Groups      []string `json:"groups"`
	IsSuperuser bool     `json:"is_superuser"`
}

// UserSummary is the moderator-facing view of an account
type UserSummary struct {
	ID       uint     `json:"id"`
	Username string   `json:"username"`
	Groups   []string `json:"groups"`
}
