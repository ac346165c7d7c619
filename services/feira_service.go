package services

import (
	"errors"

	"github.com/kamuz-01/Sistema-Feira/dto"
	"github.com/kamuz-01/Sistema-Feira/models"
	"github.com/kamuz-01/Sistema-Feira/repositories"
	"gorm.io/gorm"
)

// FeiraService handles business logic for markets
type FeiraService struct {
	feiraRepo *repositories.FeiraRepository
}

// NewFeiraService creates a new feira service instance
func NewFeiraService() *FeiraService {
	return &FeiraService{
		feiraRepo: repositories.NewFeiraRepository(),
	}
}

// List retrieves all markets, most recent date first
func (s *FeiraService) List() ([]models.Feira, error) {
	return s.feiraRepo.FindAll()
}

// Get retrieves a market by ID
func (s *FeiraService) Get(id uint) (models.Feira, error) {
	feira, err := s.feiraRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Feira{}, ErrNotFound
		}
		return models.Feira{}, err
	}
	return feira, nil
}

// Create persists a new market
func (s *FeiraService) Create(req dto.FeiraRequest) (models.Feira, error) {
	feira := models.Feira{
		Nome:   req.Nome,
		Cidade: req.Cidade,
		Data:   req.Data,
	}
	if err := s.feiraRepo.Create(&feira); err != nil {
		return models.Feira{}, err
	}
	return feira, nil
}

// Update applies the fields present in the payload to an existing
// market. PUT handlers pass every field; PATCH handlers pass only
// what the client sent.
func (s *FeiraService) Update(id uint, req dto.FeiraPatchRequest) (models.Feira, error) {
	feira, err := s.Get(id)
	if err != nil {
		return models.Feira{}, err
	}

	if req.Nome != nil {
		feira.Nome = *req.Nome
	}
	if req.Cidade != nil {
		feira.Cidade = *req.Cidade
	}
	if req.Data != nil {
		feira.Data = *req.Data
	}
	if err := s.feiraRepo.Update(&feira); err != nil {
		return models.Feira{}, err
	}
	return feira, nil
}

// Delete removes a market, cascading to its products
func (s *FeiraService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.feiraRepo.Delete(id)
}
