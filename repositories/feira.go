package repositories

import (
	"github.com/kamuz-01/Sistema-Feira/database"
	"github.com/kamuz-01/Sistema-Feira/models"
	"gorm.io/gorm"
)

// FeiraRepository handles database operations for markets
type FeiraRepository struct{}

// NewFeiraRepository creates a new feira repository instance
func NewFeiraRepository() *FeiraRepository {
	return &FeiraRepository{}
}

// FindAll retrieves all markets, most recent date first
func (r *FeiraRepository) FindAll() ([]models.Feira, error) {
	var feiras []models.Feira
	err := database.DB.Order("data DESC").Find(&feiras).Error
	return feiras, err
}

// FindByID retrieves a market by its ID
func (r *FeiraRepository) FindByID(id uint) (models.Feira, error) {
	var feira models.Feira
	err := database.DB.First(&feira, id).Error
	return feira, err
}

// Create persists a new market
func (r *FeiraRepository) Create(feira *models.Feira) error {
	return database.DB.Create(feira).Error
}

// Update persists changes to a market
func (r *FeiraRepository) Update(feira *models.Feira) error {
	return database.DB.Save(feira).Error
}

// Delete removes a market and its dependent products in one transaction.
// The cascade is explicit so it does not rely on database FK enforcement.
func (r *FeiraRepository) Delete(id uint) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("feira_id = ?", id).Delete(&models.Produto{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Feira{}, id).Error
	})
}
