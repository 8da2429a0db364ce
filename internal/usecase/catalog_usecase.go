package usecase

import (
	"context"

	"nearby/internal/domain/entity"
)

// CatalogUsecase seeds vendor catalogues.
type CatalogUsecase interface {
	// ReplaceCatalog atomically stores the vendor profile and replaces its products.
	ReplaceCatalog(ctx context.Context, vendor *entity.Vendor, items []entity.CatalogItem) error
}
