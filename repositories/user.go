package repositories

import (
	"github.com/kamuz-01/Sistema-Feira/database"
	"github.com/kamuz-01/Sistema-Feira/models"
	"gorm.io/gorm"
)

// UserRepository handles database operations for accounts and groups
type UserRepository struct{}

// NewUserRepository creates a new user repository instance
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// FindByID retrieves a user with group memberships
func (r *UserRepository) FindByID(id uint) (models.User, error) {
	var user models.User
	err := database.DB.Preload("Groups").First(&user, id).Error
	return user, err
}

// FindByUsername retrieves a user with group memberships
func (r *UserRepository) FindByUsername(username string) (models.User, error) {
	var user models.User
	err := database.DB.Preload("Groups").Where("username = ?", username).First(&user).Error
	return user, err
}

// UsernameExists reports whether an account already uses the username
func (r *UserRepository) UsernameExists(username string) (bool, error) {
	var count int64
	err := database.DB.Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

// FindCommon retrieves all non-superuser accounts with their groups
func (r *UserRepository) FindCommon() ([]models.User, error) {
	var users []models.User
	err := database.DB.Preload("Groups").Where("is_superuser = ?", false).Find(&users).Error
	return users, err
}

// Create persists a new user
func (r *UserRepository) Create(user *models.User) error {
	return database.DB.Create(user).Error
}

// FindGroupByName retrieves a seeded group
func (r *UserRepository) FindGroupByName(name string) (models.Group, error) {
	var group models.Group
	err := database.DB.Where("name = ?", name).First(&group).Error
	return group, err
}

// AddToGroup links a user to a group
func (r *UserRepository) AddToGroup(user *models.User, group models.Group) error {
	return database.DB.Model(user).Association("Groups").Append(&group)
}

// Delete removes a user together with its producer profile, that
// profile's products and the group links, all in one transaction
func (r *UserRepository) Delete(user *models.User) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		produtorIDs := tx.Model(&models.Produtor{}).Select("id").Where("user_id = ?", user.ID)
		if err := tx.Where("prod_id IN (?)", produtorIDs).Delete(&models.Produto{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.Produtor{}).Error; err != nil {
			return err
		}
		if err := tx.Model(user).Association("Groups").Clear(); err != nil {
			return err
		}
		return tx.Delete(&models.User{}, user.ID).Error
	})
}
