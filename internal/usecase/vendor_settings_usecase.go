package usecase

import (
	"context"

	"nearby/internal/domain/entity"
)

// VendorSettingsUsecase persists a vendor's delivery settings.
type VendorSettingsUsecase interface {
	// UpdateDeliverySettings validates and stores settings, then applies
	// them to the vendor's live state if it is online.
	UpdateDeliverySettings(ctx context.Context, vendorID string, settings entity.DeliverySettings) (*entity.Vendor, error)
}
