package model

import (
	"time"
)

// ProductModel is the GORM-specific struct for the 'products' table.
// Product ids are unique per vendor.
type ProductModel struct {
	VendorID  string  `gorm:"type:text;primaryKey"`
	ID        string  `gorm:"type:text;primaryKey"`
	Name      string  `gorm:"type:text;not null"`
	Category  string  `gorm:"type:text;not null;default:''"`
	Price     float64 `gorm:"type:decimal(10,2);not null"`
	Unit      string  `gorm:"type:text;not null;default:''"`
	Quantity  int     `gorm:"not null;default:0"`
	IsActive  bool    `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
