package repositories

import (
	"strings"

	"github.com/kamuz-01/Sistema-Feira/database"
	"github.com/kamuz-01/Sistema-Feira/dto"
	"github.com/kamuz-01/Sistema-Feira/models"
	"gorm.io/gorm/clause"
)

// ProdutoRepository handles database operations for products
type ProdutoRepository struct{}

// NewProdutoRepository creates a new produto repository instance
func NewProdutoRepository() *ProdutoRepository {
	return &ProdutoRepository{}
}

// Search retrieves products matching the filter. Market and producer
// (with its owning user) are loaded in the same round trip so responses
// never trigger per-row lookups.
func (r *ProdutoRepository) Search(filter dto.ProdutoFilter) ([]models.Produto, error) {
	query := database.DB.Preload("Feira").Preload("Prod").Preload("Prod.User")

	if filter.Nome != "" {
		query = query.Where("LOWER(produto.nome) LIKE ?", "%"+strings.ToLower(filter.Nome)+"%")
	}
	if filter.PrecoMax != nil {
		query = query.Where("produto.preco <= ?", *filter.PrecoMax)
	}
	if filter.OwnerUserID != 0 {
		query = query.
			Joins("JOIN produtor ON produtor.id = produto.prod_id").
			Where("produtor.user_id = ?", filter.OwnerUserID)
	}

	var produtos []models.Produto
	err := query.Find(&produtos).Error
	return produtos, err
}

// FindByID retrieves a product with its market and producer
func (r *ProdutoRepository) FindByID(id uint) (models.Produto, error) {
	var produto models.Produto
	err := database.DB.
		Preload("Feira").
		Preload("Prod").
		Preload("Prod.User").
		First(&produto, id).Error
	return produto, err
}

// Create persists a new product and reloads its relations.
// Associations are omitted so only the foreign keys are written.
func (r *ProdutoRepository) Create(produto *models.Produto) error {
	if err := database.DB.Omit(clause.Associations).Create(produto).Error; err != nil {
		return err
	}
	reloaded, err := r.FindByID(produto.ID)
	if err != nil {
		return err
	}
	*produto = reloaded
	return nil
}

// Update persists changes to a product and reloads its relations.
// Associations are omitted so a changed feira_id is not overridden by
// the stale preloaded struct.
func (r *ProdutoRepository) Update(produto *models.Produto) error {
	if err := database.DB.Omit(clause.Associations).Save(produto).Error; err != nil {
		return err
	}
	reloaded, err := r.FindByID(produto.ID)
	if err != nil {
		return err
	}
	*produto = reloaded
	return nil
}

// Delete removes a product
func (r *ProdutoRepository) Delete(id uint) error {
	return database.DB.Delete(&models.Produto{}, id).Error
}
