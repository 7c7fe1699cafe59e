package repositories

import (
	"context"
	"errors"
	"slices"

	"github.com/Rakhulsr/ecommerce-back-end/app/models"
	"gorm.io/gorm"
)

type CategoryRepositoryImpl interface {
	GetAll(ctx context.Context, with ...Association) ([]models.Category, error)
	GetByID(ctx context.Context, id string, with ...Association) (*models.Category, error)
	Create(ctx context.Context, fields CategoryFields) (*models.Category, error)
	Update(ctx context.Context, id string, fields CategoryFields) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepositoryImpl {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) GetAll(ctx context.Context, with ...Association) ([]models.Category, error) {
	tx, err := categoryAssociations.preload(r.db.WithContext(ctx), "category", with)
	if err != nil {
		return nil, err
	}

	categories := []models.Category{}
	if err := tx.Find(&categories).Error; err != nil {
		return nil, storageError("list categories", err)
	}
	for i := range categories {
		settleCategory(&categories[i], with)
	}
	return categories, nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id string, with ...Association) (*models.Category, error) {
	tx, err := categoryAssociations.preload(r.db.WithContext(ctx), "category", with)
	if err != nil {
		return nil, err
	}

	key, err := parseID(id)
	if err != nil {
		return nil, nil
	}

	var category models.Category
	if err := tx.First(&category, key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storageError("get category", err)
	}
	settleCategory(&category, with)
	return &category, nil
}

func (r *categoryRepository) Create(ctx context.Context, fields CategoryFields) (*models.Category, error) {
	if err := validateStruct(fields); err != nil {
		return nil, err
	}

	category := &models.Category{CategoryName: *fields.CategoryName}
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return nil, storageError("create category", err)
	}
	return category, nil
}

func (r *categoryRepository) Update(ctx context.Context, id string, fields CategoryFields) (int64, error) {
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

	result := r.db.WithContext(ctx).Model(&models.Category{}).Where("id = ?", key).Updates(updates)
	if result.Error != nil {
		return 0, storageError("update category", result.Error)
	}
	return result.RowsAffected, nil
}

// Delete removes the category row only. Products keep their category_id and the
// schema's ON DELETE rule decides what happens to it.
func (r *categoryRepository) Delete(ctx context.Context, id string) (int64, error) {
	key, err := parseID(id)
	if err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).Delete(&models.Category{}, key)
	if result.Error != nil {
		return 0, storageError("delete category", result.Error)
	}
	return result.RowsAffected, nil
}

func settleCategory(c *models.Category, with []Association) {
	if slices.Contains(with, WithProducts) {
		c.Products = emptyIfNil(c.Products)
	}
}
