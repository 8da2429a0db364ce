// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"nearby/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrVendorNotFound is returned when no profile exists for a vendor.
var ErrVendorNotFound = errors.New("vendor not found")

// VendorRepository defines the persistence of vendor profiles.
type VendorRepository interface {
	// FindVendor retrieves a vendor by id.
	FindVendor(ctx context.Context, vendorID string) (*entity.Vendor, error)

	// UpsertVendor creates the vendor from every given field. For an existing
	// row only the name, and the rating when set, are refreshed.
	UpsertVendor(ctx context.Context, vendor *entity.Vendor) error

	// SaveDeliverySettings applies a partial settings update, creating the
	// vendor row when missing, and returns the stored vendor.
	SaveDeliverySettings(ctx context.Context, vendorID string, settings entity.DeliverySettings) (*entity.Vendor, error)

	// RecordPresence stores the vendor's last known position and online flag.
	RecordPresence(ctx context.Context, presence *entity.VendorPresence) error
}
