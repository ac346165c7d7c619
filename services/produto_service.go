package services

import (
	"errors"

	"github.com/kamuz-01/Sistema-Feira/dto"
	"github.com/kamuz-01/Sistema-Feira/models"
	"github.com/kamuz-01/Sistema-Feira/policy"
	"github.com/kamuz-01/Sistema-Feira/repositories"
	"gorm.io/gorm"
)

// ProdutoService handles business logic for products
type ProdutoService struct {
	produtoRepo  *repositories.ProdutoRepository
	produtorRepo *repositories.ProdutorRepository
	feiraRepo    *repositories.FeiraRepository
}

// NewProdutoService creates a new produto service instance
func NewProdutoService() *ProdutoService {
	return &ProdutoService{
		produtoRepo:  repositories.NewProdutoRepository(),
		produtorRepo: repositories.NewProdutorRepository(),
		feiraRepo:    repositories.NewFeiraRepository(),
	}
}

// List retrieves products matching the filter. Anonymous and consumer
// callers see the whole catalog; an authenticated producer only sees
// their own inventory.
func (s *ProdutoService) List(viewer *models.User, filter dto.ProdutoFilter) ([]models.Produto, error) {
	if viewer != nil && viewer.InGroup(models.GroupProdutores) {
		filter.OwnerUserID = viewer.ID
	}
	return s.produtoRepo.Search(filter)
}

// Mine retrieves the caller's own products regardless of group
func (s *ProdutoService) Mine(viewer *models.User, filter dto.ProdutoFilter) ([]models.Produto, error) {
	filter.OwnerUserID = viewer.ID
	return s.produtoRepo.Search(filter)
}

// Get retrieves a product by ID
func (s *ProdutoService) Get(id uint) (models.Produto, error) {
	produto, err := s.produtoRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Produto{}, ErrNotFound
		}
		return models.Produto{}, err
	}
	return produto, nil
}

// Create persists a new product. The owning producer always comes from
// the authenticated identity, never from the payload; the market must
// reference an existing row.
func (s *ProdutoService) Create(viewer *models.User, req dto.ProdutoRequest) (models.Produto, error) {
	produtor, err := s.produtorRepo.FindByUserID(viewer.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Produto{}, NewValidationError("detail", "Usuário não é um produtor.")
		}
		return models.Produto{}, err
	}

	feiraID, err := s.resolveFeira(req.Feira)
	if err != nil {
		return models.Produto{}, err
	}

	produto := models.Produto{
		Nome:    req.Nome,
		Preco:   req.Preco.Float64(),
		ProdID:  produtor.ID,
		FeiraID: feiraID,
	}
	if err := s.produtoRepo.Create(&produto); err != nil {
		return models.Produto{}, err
	}
	return produto, nil
}

// Update applies the fields present in the payload to a product owned
// by the caller (or any product, for moderators). PUT handlers pass
// every field; PATCH handlers pass only what the client sent.
func (s *ProdutoService) Update(viewer *models.User, id uint, req dto.ProdutoPatchRequest) (models.Produto, error) {
	produto, err := s.Get(id)
	if err != nil {
		return models.Produto{}, err
	}
	if !policy.CanWrite(viewer, policy.ActionUpdate, &produto) {
		return models.Produto{}, ErrForbidden
	}

	if req.Nome != nil {
		produto.Nome = *req.Nome
	}
	if req.Preco != nil {
		produto.Preco = req.Preco.Float64()
	}
	if req.Feira != nil {
		feiraID, err := s.resolveFeira(*req.Feira)
		if err != nil {
			return models.Produto{}, err
		}
		produto.FeiraID = feiraID
	}
	if err := s.produtoRepo.Update(&produto); err != nil {
		return models.Produto{}, err
	}
	return produto, nil
}

// Delete removes a product owned by the caller (or any product, for
// moderators)
func (s *ProdutoService) Delete(viewer *models.User, id uint) error {
	produto, err := s.Get(id)
	if err != nil {
		return err
	}
	if !policy.CanWrite(viewer, policy.ActionDelete, &produto) {
		return ErrForbidden
	}
	return s.produtoRepo.Delete(id)
}

// resolveFeira validates the market reference from a write payload
func (s *ProdutoService) resolveFeira(id uint) (uint, error) {
	if id == 0 {
		return 0, NewValidationError("feira", "Campo obrigatório.")
	}
	feira, err := s.feiraRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, NewValidationError("feira", "Feira não encontrada.")
		}
		return 0, err
	}
	return feira.ID, nil
}
