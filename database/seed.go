package database

import (
	"log"
	"os"

	"github.com/kamuz-01/Sistema-Feira/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedGroups creates the fixed membership groups once at startup.
// Registration assumes these rows exist and never creates them lazily.
func SeedGroups(db *gorm.DB) error {
	for _, name := range []string{
		models.GroupProdutores,
		models.GroupConsumidores,
		models.GroupModeradores,
	} {
		group := models.Group{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&group).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedModerador bootstraps a moderator account from the environment.
// Skipped when MODERADOR_USERNAME or MODERADOR_PASSWORD is unset.
func SeedModerador(db *gorm.DB) error {
	username := os.Getenv("MODERADOR_USERNAME")
	password := os.Getenv("MODERADOR_PASSWORD")
	if username == "" || password == "" {
		return nil
	}

	var user models.User
	result := db.Where("username = ?", username).First(&user)
	if result.Error == nil {
		log.Printf("Moderator account %q already exists", username)
		return nil
	}
	if result.Error != gorm.ErrRecordNotFound {
		return result.Error
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user = models.User{
		Username: username,
		Password: string(hash),
	}
	if err := db.Create(&user).Error; err != nil {
		return err
	}

	var moderadores models.Group
	if err := db.Where("name = ?", models.GroupModeradores).First(&moderadores).Error; err != nil {
		return err
	}
	if err := db.Model(&user).Association("Groups").Append(&moderadores); err != nil {
		return err
	}

	log.Printf("Moderator account %q created", username)
	return nil
}
