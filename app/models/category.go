package models

type Category struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryName string    `gorm:"size:255;not null" json:"category_name"`
	Products     []Product `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"Products,omitzero"`
}

func (Category) TableName() string {
	return "category"
}
