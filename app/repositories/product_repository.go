package repositories

import (
	"context"
	"errors"
	"slices"

	"github.com/Rakhulsr/ecommerce-back-end/app/models"
	"gorm.io/gorm"
)

type ProductRepositoryImpl interface {
	GetAll(ctx context.Context, with ...Association) ([]models.Product, error)
	GetByID(ctx context.Context, id string, with ...Association) (*models.Product, error)
	Create(ctx context.Context, fields ProductFields) (*models.Product, error)
	Update(ctx context.Context, id string, fields ProductFields) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &productRepository{db}
}

func (p *productRepository) GetAll(ctx context.Context, with ...Association) ([]models.Product, error) {
	tx, err := productAssociations.preload(p.db.WithContext(ctx), "product", with)
	if err != nil {
		return nil, err
	}

	products := []models.Product{}
	if err := tx.Find(&products).Error; err != nil {
		return nil, storageError("list products", err)
	}
	for i := range products {
		settleProduct(&products[i], with)
	}
	return products, nil
}

func (p *productRepository) GetByID(ctx context.Context, id string, with ...Association) (*models.Product, error) {
	tx, err := productAssociations.preload(p.db.WithContext(ctx), "product", with)
	if err != nil {
		return nil, err
	}

	key, err := parseID(id)
	if err != nil {
		return nil, nil
	}

	var product models.Product
	if err := tx.First(&product, key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storageError("get product", err)
	}
	settleProduct(&product, with)
	return &product, nil
}

func (p *productRepository) Create(ctx context.Context, fields ProductFields) (*models.Product, error) {
	if err := validateStruct(fields); err != nil {
		return nil, err
	}

	price, err := parsePrice(*fields.Price)
	if err != nil {
		return nil, err
	}
	stock := models.DefaultStock
	if fields.Stock != nil {
		if stock, err = parseStock(*fields.Stock); err != nil {
			return nil, err
		}
	}
	categoryID, err := parseCategoryID(fields.CategoryID)
	if err != nil {
		return nil, err
	}

	product := &models.Product{
		ProductName: *fields.ProductName,
		Price:       price,
		Stock:       stock,
		CategoryID:  categoryID,
	}
	// Columns are listed so that an explicit stock of 0 is not swapped for the
	// column default.
	err = p.db.WithContext(ctx).
		Select("ProductName", "Price", "Stock", "CategoryID").
		Create(product).Error
	if err != nil {
		return nil, storageError("create product", err)
	}
	return product, nil
}

func (p *productRepository) Update(ctx context.Context, id string, fields ProductFields) (int64, error) {
	key, err := parseID(id)
	if err != nil {
		return 0, err
	}
	updates, err := fields.updates()
	if err != nil {
		return 0, err
	}
	if len(updates) == 0 {
		return 0, nil
	}

	result := p.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", key).Updates(updates)
	if result.Error != nil {
		return 0, storageError("update product", result.Error)
	}
	return result.RowsAffected, nil
}

// Delete removes the product and its product_tag rows in one transaction. The
// returned count covers the product row only.
func (p *productRepository) Delete(ctx context.Context, id string) (int64, error) {
	key, err := parseID(id)
	if err != nil {
		return 0, err
	}

	var affected int64
	err = p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", key).Delete(&models.ProductTag{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Product{}, key)
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, storageError("delete product", err)
	}
	return affected, nil
}

func settleProduct(p *models.Product, with []Association) {
	if slices.Contains(with, WithTags) {
		p.Tags = emptyIfNil(p.Tags)
	}
}
