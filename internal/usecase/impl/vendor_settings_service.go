package impl

import (
	"context"
	"log/slog"

	"nearby/config"
	"nearby/internal/domain/entity"
	domainerrors "nearby/internal/domain/errors"
	"nearby/internal/domain/repository"
	"nearby/internal/errors"
	"nearby/internal/usecase"

	"go.uber.org/fx"
)

// VendorSettingsServiceParams holds dependencies for the vendor status API, injected by Fx.
type VendorSettingsServiceParams struct {
	fx.In

	VendorRepo repository.VendorRepository
	Matching   usecase.MatchingUsecase
	Config     *config.Config
	Logger     *slog.Logger
}

type vendorSettingsService struct {
	vendorRepo repository.VendorRepository
	matching   usecase.MatchingUsecase
	cfg        *config.PresenceConfig
	logger     *slog.Logger
}

// NewVendorSettingsService creates the server side of the vendor status API.
func NewVendorSettingsService(params VendorSettingsServiceParams) usecase.VendorSettingsUsecase {
	return &vendorSettingsService{
		vendorRepo: params.VendorRepo,
		matching:   params.Matching,
		cfg:        params.Config.Presence,
		logger:     params.Logger.With(slog.String("component", "vendor_settings")),
	}
}

func (s *vendorSettingsService) UpdateDeliverySettings(ctx context.Context, vendorID string, settings entity.DeliverySettings) (*entity.Vendor, error) {
	if settings.DeliveryRadius == nil && settings.AcceptingOrders == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("deliveryRadius or acceptingOrders is required")
	}
	if r := settings.DeliveryRadius; r != nil && (*r < s.cfg.MinRadius || *r > s.cfg.MaxRadius) {
		return nil, domainerrors.ErrInvalidRadius
	}

	vendor, err := s.vendorRepo.SaveDeliverySettings(ctx, vendorID, settings)
	if err != nil {
		return nil, errors.Wrap(err, "save delivery settings")
	}

	// The stored settings are authoritative; a vendor that is not live yet
	// picks them up when it goes online.
	err = s.matching.VendorStatus(ctx, vendorID, usecase.VendorStatus{
		AcceptingOrders: vendor.AcceptingOrders,
		DeliveryRadius:  vendor.DeliveryRadiusMeters,
	})
	if err != nil && !errors.Is(err, domainerrors.ErrVendorOffline) {
		return nil, err
	}

	s.logger.Info("Delivery settings updated",
		slog.String("vendor_id", vendorID),
		slog.Bool("accepting_orders", vendor.AcceptingOrders),
		slog.Float64("delivery_radius", vendor.DeliveryRadiusMeters),
	)

	return vendor, nil
}
