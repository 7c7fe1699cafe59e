package repositories

import (
	"context"
	"errors"
	"slices"

	"github.com/Rakhulsr/ecommerce-back-end/app/models"
	"gorm.io/gorm"
)

type TagRepositoryImpl interface {
	GetAll(ctx context.Context, with ...Association) ([]models.Tag, error)
	GetByID(ctx context.Context, id string, with ...Association) (*models.Tag, error)
	Create(ctx context.Context, fields TagFields) (*models.Tag, error)
	Update(ctx context.Context, id string, fields TagFields) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepositoryImpl {
	return &tagRepository{db: db}
}

func (r *tagRepository) GetAll(ctx context.Context, with ...Association) ([]models.Tag, error) {
	tx, err := tagAssociations.preload(r.db.WithContext(ctx), "tag", with)
	if err != nil {
		return nil, err
	}

	tags := []models.Tag{}
	if err := tx.Find(&tags).Error; err != nil {
		return nil, storageError("list tags", err)
	}
	for i := range tags {
		settleTag(&tags[i], with)
	}
	return tags, nil
}

func (r *tagRepository) GetByID(ctx context.Context, id string, with ...Association) (*models.Tag, error) {
	tx, err := tagAssociations.preload(r.db.WithContext(ctx), "tag", with)
	if err != nil {
		return nil, err
	}

	key, err := parseID(id)
	if err != nil {
		return nil, nil
	}

	var tag models.Tag
	if err := tx.First(&tag, key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storageError("get tag", err)
	}
	settleTag(&tag, with)
	return &tag, nil
}

func (r *tagRepository) Create(ctx context.Context, fields TagFields) (*models.Tag, error) {
	tag := &models.Tag{TagName: fields.TagName}
	if err := r.db.WithContext(ctx).Create(tag).Error; err != nil {
		return nil, storageError("create tag", err)
	}
	return tag, nil
}

func (r *tagRepository) Update(ctx context.Context, id string, fields TagFields) (int64, error) {
	key, err := parseID(id)
	if err != nil {
		return 0, err
	}
	updates := fields.updates()
	if len(updates) == 0 {
		return 0, nil
	}

	result := r.db.WithContext(ctx).Model(&models.Tag{}).Where("id = ?", key).Updates(updates)
	if result.Error != nil {
		return 0, storageError("update tag", result.Error)
	}
	return result.RowsAffected, nil
}

// Delete removes the tag and its product_tag rows in one transaction.
func (r *tagRepository) Delete(ctx context.Context, id string) (int64, error) {
	key, err := parseID(id)
	if err != nil {
		return 0, err
	}

	var affected int64
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tag_id = ?", key).Delete(&models.ProductTag{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Tag{}, key)
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, storageError("delete tag", err)
	}
	return affected, nil
}

func settleTag(t *models.Tag, with []Association) {
	if slices.Contains(with, WithProducts) {
		t.Products = emptyIfNil(t.Products)
	}
}
