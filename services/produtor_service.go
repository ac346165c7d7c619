package services

import (
	"errors"

	"github.com/kamuz-01/Sistema-Feira/dto"
	"github.com/kamuz-01/Sistema-Feira/models"
	"github.com/kamuz-01/Sistema-Feira/repositories"
	"gorm.io/gorm"
)

// ProdutorService handles business logic for producer profiles
type ProdutorService struct {
	produtorRepo *repositories.ProdutorRepository
}

// NewProdutorService creates a new produtor service instance
func NewProdutorService() *ProdutorService {
	return &ProdutorService{
		produtorRepo: repositories.NewProdutorRepository(),
	}
}

// List retrieves all producer profiles
func (s *ProdutorService) List() ([]models.Produtor, error) {
	return s.produtorRepo.FindAll()
}

// Get retrieves a producer by ID
func (s *ProdutorService) Get(id uint) (models.Produtor, error) {
	produtor, err := s.produtorRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Produtor{}, ErrNotFound
		}
		return models.Produtor{}, err
	}
	return produtor, nil
}

// Create persists a producer profile for the authenticated user. Each
// user may own at most one profile.
func (s *ProdutorService) Create(owner *models.User, req dto.ProdutorRequest) (models.Produtor, error) {
	if _, err := s.produtorRepo.FindByUserID(owner.ID); err == nil {
		return models.Produtor{}, NewValidationError("detail", "Usuário já possui perfil de produtor.")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Produtor{}, err
	}

	produtor := models.Produtor{
		UserID:      owner.ID,
		NomeFazenda: req.NomeFazenda,
		Cidade:      req.Cidade,
	}
	if err := s.produtorRepo.Create(&produtor); err != nil {
		return models.Produtor{}, err
	}
	return produtor, nil
}

// Update applies the fields present in the payload to an existing
// producer. Any authenticated user may write here, mirroring the
// access rule on markets.
func (s *ProdutorService) Update(id uint, req dto.ProdutorPatchRequest) (models.Produtor, error) {
	produtor, err := s.Get(id)
	if err != nil {
		return models.Produtor{}, err
	}

	if req.NomeFazenda != nil {
		produtor.NomeFazenda = *req.NomeFazenda
	}
	if req.Cidade != nil {
		produtor.Cidade = *req.Cidade
	}
	if err := s.produtorRepo.Update(&produtor); err != nil {
		return models.Produtor{}, err
	}
	return produtor, nil
}

// Delete removes a producer, cascading to its products
func (s *ProdutorService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.produtorRepo.Delete(id)
}
