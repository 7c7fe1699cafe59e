package migrations

import (
	"fmt"

	"github.com/Rakhulsr/ecommerce-back-end/app/models"
	"gorm.io/gorm"
)

// SetupJoinTables registers ProductTag as the join model for both sides of the
// product/tag association. It must run before any association write or migration
// on db.
func SetupJoinTables(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.Product{}, "Tags", &models.ProductTag{}); err != nil {
		return fmt.Errorf("setup product tags join table: %w", err)
	}
	if err := db.SetupJoinTable(&models.Tag{}, "Products", &models.ProductTag{}); err != nil {
		return fmt.Errorf("setup tag products join table: %w", err)
	}
	return nil
}

func AutoMigrate(db *gorm.DB) error {
	if err := SetupJoinTables(db); err != nil {
		return err
	}
	return db.AutoMigrate(&models.Category{}, &models.Tag{}, &models.Product{}, &models.ProductTag{})
}
