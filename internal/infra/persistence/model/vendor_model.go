package model

import (
	"time"
)

// VendorModel is the GORM-specific struct for the 'vendors' table.
type VendorModel struct {
	ID                   string   `gorm:"type:text;primaryKey"`
	Name                 string   `gorm:"type:text;not null;default:''"`
	Rating               *float64 `gorm:"type:decimal(3,2)"`
	DeliveryRadiusMeters float64  `gorm:"not null"`
	AcceptingOrders      bool     `gorm:"not null;default:false"`
	// Last known position, set by the presence feed.
	Latitude   *float64 `gorm:"type:decimal(10,8)"`
	Longitude  *float64 `gorm:"type:decimal(11,8)"`
	IsOnline   bool     `gorm:"not null;default:false;index"`
	LastSeenAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Products []ProductModel `gorm:"foreignKey:VendorID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (VendorModel) TableName() string {
	return "vendors"
}
