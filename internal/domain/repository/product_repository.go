package repository

import (
	"context"

	"nearby/internal/domain/entity"
)

// ProductRepository is the read side of the vendor catalogue plus the
// write operations used to seed it.
type ProductRepository interface {
	// FindAvailableByVendor returns up to limit active products with stock.
	FindAvailableByVendor(ctx context.Context, vendorID string, limit int) ([]entity.Product, error)

	// CreateProduct adds a catalogue item for the vendor.
	CreateProduct(ctx context.Context, vendorID string, item *entity.CatalogItem) error

	// DeleteByVendor removes every catalogue item of the vendor.
	DeleteByVendor(ctx context.Context, vendorID string) error
}
