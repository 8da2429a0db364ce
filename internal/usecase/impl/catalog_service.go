package impl

import (
	"context"
	"log/slog"

	"nearby/internal/domain/entity"
	domainerrors "nearby/internal/domain/errors"
	"nearby/internal/domain/repository"
	"nearby/internal/errors"
	"nearby/internal/usecase"

	"go.uber.org/fx"
)

// CatalogServiceParams holds dependencies for catalogue seeding, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

type catalogService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewCatalogService creates the catalogue seeding use case.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (s *catalogService) ReplaceCatalog(ctx context.Context, vendor *entity.Vendor, items []entity.CatalogItem) error {
	if vendor == nil || vendor.ID == "" {
		return domainerrors.ErrValidationFailed.WithDetails("vendor id is required")
	}

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		vendorRepo := factory.NewVendorRepository()
		productRepo := factory.NewProductRepository()

		if err := vendorRepo.UpsertVendor(ctx, vendor); err != nil {
			return errors.Wrap(err, "upsert vendor")
		}

		settings := entity.DeliverySettings{AcceptingOrders: &vendor.AcceptingOrders}
		if vendor.DeliveryRadiusMeters > 0 {
			settings.DeliveryRadius = &vendor.DeliveryRadiusMeters
		}
		if _, err := vendorRepo.SaveDeliverySettings(ctx, vendor.ID, settings); err != nil {
			return errors.Wrap(err, "save delivery settings")
		}

		if err := productRepo.DeleteByVendor(ctx, vendor.ID); err != nil {
			return errors.Wrap(err, "clear catalogue")
		}

		for idx := range items {
			if err := productRepo.CreateProduct(ctx, vendor.ID, &items[idx]); err != nil {
				return errors.Wrapf(err, "create product %s", items[idx].ID)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Catalogue replaced",
		slog.String("vendor_id", vendor.ID),
		slog.Int("items", len(items)),
	)

	return nil
}
