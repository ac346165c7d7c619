package repositories

import (
	"github.com/kamuz-01/Sistema-Feira/database"
	"github.com/kamuz-01/Sistema-Feira/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProdutorRepository handles database operations for producer profiles
type ProdutorRepository struct{}

// NewProdutorRepository creates a new produtor repository instance
func NewProdutorRepository() *ProdutorRepository {
	return &ProdutorRepository{}
}

// FindAll retrieves all producers with their owning users
func (r *ProdutorRepository) FindAll() ([]models.Produtor, error) {
	var produtores []models.Produtor
	err := database.DB.Preload("User").Find(&produtores).Error
	return produtores, err
}

// FindByID retrieves a producer by its ID
func (r *ProdutorRepository) FindByID(id uint) (models.Produtor, error) {
	var produtor models.Produtor
	err := database.DB.Preload("User").First(&produtor, id).Error
	return produtor, err
}

// FindByUserID retrieves the producer profile owned by a user
func (r *ProdutorRepository) FindByUserID(userID uint) (models.Produtor, error) {
	var produtor models.Produtor
	err := database.DB.Preload("User").Where("user_id = ?", userID).First(&produtor).Error
	return produtor, err
}

// Create persists a new producer and reloads it with its user.
// The user association is omitted; only user_id is written.
func (r *ProdutorRepository) Create(produtor *models.Produtor) error {
	if err := database.DB.Omit(clause.Associations).Create(produtor).Error; err != nil {
		return err
	}
	return database.DB.Preload("User").First(produtor, produtor.ID).Error
}

// Update persists changes to a producer
func (r *ProdutorRepository) Update(produtor *models.Produtor) error {
	return database.DB.Omit(clause.Associations).Save(produtor).Error
}

// Delete removes a producer and its dependent products in one transaction
func (r *ProdutorRepository) Delete(id uint) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("prod_id = ?", id).Delete(&models.Produto{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Produtor{}, id).Error
	})
}
