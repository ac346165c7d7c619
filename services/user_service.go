package services

import (
	"errors"

	"github.com/kamuz-01/Sistema-Feira/dto"
	"github.com/kamuz-01/Sistema-Feira/repositories"
	"gorm.io/gorm"
)

// UserService handles moderator-only account management
type UserService struct {
	userRepo *repositories.UserRepository
}

// NewUserService creates a new user service instance
func NewUserService() *UserService {
	return &UserService{
		userRepo: repositories.NewUserRepository(),
	}
}

// ListCommon retrieves all non-superuser accounts
func (s *UserService) ListCommon() ([]dto.UserSummary, error) {
	users, err := s.userRepo.FindCommon()
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.UserSummary, 0, len(users))
	for i := range users {
		summaries = append(summaries, dto.UserSummary{
			ID:       users[i].ID,
			Username: users[i].Username,
			Groups:   users[i].GroupNames(),
		})
	}
	return summaries, nil
}

// Delete removes an account and cascades to its producer profile and
// products. Superuser accounts cannot be deleted.
func (s *UserService) Delete(id uint) error {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if user.IsSuperuser {
		return ErrForbidden
	}
	return s.userRepo.Delete(&user)
}
