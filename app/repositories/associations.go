package repositories

import (
	"fmt"

	"gorm.io/gorm"
)

// Association names a relation to eager-load alongside an entity.
type Association string

const (
	// WithProducts loads a category's products, or a tag's products through product_tag.
	WithProducts Association = "products"
	// WithCategory loads the category owning a product.
	WithCategory Association = "category"
	// WithTags loads a product's tags through product_tag, one per join row.
	WithTags Association = "tags"
)

// associationFields maps the associations an entity supports to its gorm field.
type associationFields map[Association]string

var (
	categoryAssociations = associationFields{WithProducts: "Products"}
	productAssociations  = associationFields{WithCategory: "Category", WithTags: "Tags"}
	tagAssociations      = associationFields{WithProducts: "Products"}
)

func (a associationFields) preload(tx *gorm.DB, entity string, with []Association) (*gorm.DB, error) {
	for _, assoc := range with {
		field, ok := a[assoc]
		if !ok {
			return nil, fmt.Errorf("%s has no association %q", entity, assoc)
		}
		tx = tx.Preload(field)
	}
	return tx, nil
}

// emptyIfNil keeps loaded associations serializing as [] rather than being omitted.
func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
