package models

import (
	"github.com/shopspring/decimal"
)

func init() {
	// Prices leave the API as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// DefaultStock is applied when a product is created without a stock value.
const DefaultStock = 10

type Product struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductName string          `gorm:"size:255;not null" json:"product_name"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Stock       int             `gorm:"not null;default:10" json:"stock"`
	CategoryID  *uint           `gorm:"index" json:"category_id"`
	Category    *Category       `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"Category"`
	Tags        []Tag           `gorm:"many2many:product_tag;joinForeignKey:ProductID;joinReferences:TagID" json:"product_tags,omitzero"`
}

func (Product) TableName() string {
	return "product"
}

// ProductTag is one product/tag association row. Rows are not deduplicated.
type ProductTag struct {
	ID        uint `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint `gorm:"not null;index" json:"product_id"`
	TagID     uint `gorm:"not null;index" json:"tag_id"`
}

func (ProductTag) TableName() string {
	return "product_tag"
}
