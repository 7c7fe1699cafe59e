package models

type Tag struct {
	ID       uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	TagName  *string   `gorm:"size:255" json:"tag_name"`
	Products []Product `gorm:"many2many:product_tag;joinForeignKey:TagID;joinReferences:ProductID" json:"tag_products,omitzero"`
}

func (Tag) TableName() string {
	return "tag"
}
