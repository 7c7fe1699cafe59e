package seeders

import (
	"context"

	"github.com/Rakhulsr/ecommerce-back-end/app/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Seeder struct {
	Seeder interface{}
}

func ptr[T any](v T) *T {
	return &v
}

func SeedersRegister() []Seeder {
	return []Seeder{
		{Seeder: &[]models.Category{
			{ID: 1, CategoryName: "Shirts"},
			{ID: 2, CategoryName: "Shorts"},
			{ID: 3, CategoryName: "Music"},
			{ID: 4, CategoryName: "Hats"},
			{ID: 5, CategoryName: "Shoes"},
		}},
		{Seeder: &[]models.Product{
			{ID: 1, ProductName: "Plain T-Shirt", Price: decimal.RequireFromString("14.99"), Stock: 14, CategoryID: ptr[uint](1)},
			{ID: 2, ProductName: "Running Sneakers", Price: decimal.RequireFromString("90.00"), Stock: 25, CategoryID: ptr[uint](5)},
			{ID: 3, ProductName: "Branded Baseball Hat", Price: decimal.RequireFromString("22.99"), Stock: 12, CategoryID: ptr[uint](4)},
			{ID: 4, ProductName: "Top 40 Music Compilation Vinyl Record", Price: decimal.RequireFromString("12.99"), Stock: 50, CategoryID: ptr[uint](3)},
			{ID: 5, ProductName: "Cargo Shorts", Price: decimal.RequireFromString("29.99"), Stock: 22, CategoryID: ptr[uint](2)},
		}},
		{Seeder: &[]models.Tag{
			{ID: 1, TagName: ptr("rock music")},
			{ID: 2, TagName: ptr("pop music")},
			{ID: 3, TagName: ptr("blue")},
			{ID: 4, TagName: ptr("red")},
			{ID: 5, TagName: ptr("green")},
			{ID: 6, TagName: ptr("white")},
			{ID: 7, TagName: ptr("gold")},
			{ID: 8, TagName: ptr("pop culture")},
		}},
		{Seeder: &[]models.ProductTag{
			{ProductID: 1, TagID: 6},
			{ProductID: 1, TagID: 7},
			{ProductID: 1, TagID: 8},
			{ProductID: 2, TagID: 6},
			{ProductID: 3, TagID: 1},
			{ProductID: 3, TagID: 3},
			{ProductID: 3, TagID: 4},
			{ProductID: 3, TagID: 5},
			{ProductID: 4, TagID: 1},
			{ProductID: 4, TagID: 2},
			{ProductID: 4, TagID: 8},
			{ProductID: 5, TagID: 3},
		}},
	}
}

// DBSeed replaces the catalog with the sample data in a single transaction.
func DBSeed(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{&models.ProductTag{}, &models.Product{}, &models.Tag{}, &models.Category{}} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return err
			}
		}
		for _, seeder := range SeedersRegister() {
			if err := tx.Create(seeder.Seeder).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
