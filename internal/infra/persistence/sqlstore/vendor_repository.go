package sqlstore

import (
	"context"
	"time"

	"nearby/config"
	"nearby/internal/domain/entity"
	"nearby/internal/domain/repository"
	"nearby/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// vendorRepository implements repository.VendorRepository using GORM.
type vendorRepository struct {
	db            *gorm.DB
	defaultRadius float64
}

// NewVendorRepository creates a vendor repository. Rows created implicitly
// start with the configured default delivery radius.
func NewVendorRepository(db *gorm.DB, cfg *config.Config) repository.VendorRepository {
	return newVendorRepository(db, cfg.Presence.DefaultRadius)
}

func newVendorRepository(db *gorm.DB, defaultRadius float64) *vendorRepository {
	return &vendorRepository{db: db, defaultRadius: defaultRadius}
}

func (repo *vendorRepository) FindVendor(ctx context.Context, vendorID string) (*entity.Vendor, error) {
	var vendorM model.VendorModel
	err := repo.db.WithContext(ctx).Where("id = ?", vendorID).First(&vendorM).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrVendorNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find vendor")
	}

	return toVendorDomain(&vendorM), nil
}

func (repo *vendorRepository) UpsertVendor(ctx context.Context, vendor *entity.Vendor) error {
	updates := []string{"name", "updated_at"}
	if vendor.Rating != nil {
		updates = append(updates, "rating")
	}

	vendorM := fromVendorDomain(vendor)
	err := repo.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns(updates),
		}).
		Create(vendorM).Error
	if err != nil {
		return errors.Wrap(err, "failed to upsert vendor")
	}

	return nil
}

func (repo *vendorRepository) SaveDeliverySettings(ctx context.Context, vendorID string, settings entity.DeliverySettings) (*entity.Vendor, error) {
	var vendorM model.VendorModel

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("id = ?", vendorID).First(&vendorM).Error
		missing := errors.Is(err, gorm.ErrRecordNotFound)
		if err != nil && !missing {
			return err
		}
		if missing {
			vendorM = model.VendorModel{ID: vendorID, DeliveryRadiusMeters: repo.defaultRadius}
		}

		if settings.DeliveryRadius != nil {
			vendorM.DeliveryRadiusMeters = *settings.DeliveryRadius
		}
		if settings.AcceptingOrders != nil {
			vendorM.AcceptingOrders = *settings.AcceptingOrders
		}

		if missing {
			return tx.Omit(clause.Associations).Create(&vendorM).Error
		}

		return tx.Model(&vendorM).Updates(map[string]any{
			"delivery_radius_meters": vendorM.DeliveryRadiusMeters,
			"accepting_orders":       vendorM.AcceptingOrders,
		}).Error
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save delivery settings")
	}

	return toVendorDomain(&vendorM), nil
}

func (repo *vendorRepository) RecordPresence(ctx context.Context, presence *entity.VendorPresence) error {
	seenAt := presence.LastLocationUpdate
	if seenAt.IsZero() {
		seenAt = time.Now()
	}

	vendorM := &model.VendorModel{
		ID:                   presence.VendorID,
		DeliveryRadiusMeters: repo.defaultRadius,
		IsOnline:             presence.IsOnline,
		LastSeenAt:           &seenAt,
	}
	updates := []string{"is_online", "last_seen_at", "updated_at"}

	if presence.Coordinates != (entity.Coordinates{}) {
		lat, lng := presence.Coordinates.Latitude, presence.Coordinates.Longitude
		vendorM.Latitude = &lat
		vendorM.Longitude = &lng
		updates = append(updates, "latitude", "longitude")
	}

	err := repo.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns(updates),
		}).
		Create(vendorM).Error
	if err != nil {
		return errors.Wrap(err, "failed to record vendor presence")
	}

	return nil
}

func toVendorDomain(vendorM *model.VendorModel) *entity.Vendor {
	vendor := &entity.Vendor{
		ID:                   vendorM.ID,
		Name:                 vendorM.Name,
		Rating:               vendorM.Rating,
		DeliveryRadiusMeters: vendorM.DeliveryRadiusMeters,
		AcceptingOrders:      vendorM.AcceptingOrders,
		IsOnline:             vendorM.IsOnline,
		LastSeenAt:           vendorM.LastSeenAt,
		UpdatedAt:            vendorM.UpdatedAt,
	}
	if vendorM.Latitude != nil && vendorM.Longitude != nil {
		vendor.LastKnown = &entity.Coordinates{Latitude: *vendorM.Latitude, Longitude: *vendorM.Longitude}
	}

	return vendor
}

func fromVendorDomain(vendor *entity.Vendor) *model.VendorModel {
	vendorM := &model.VendorModel{
		ID:                   vendor.ID,
		Name:                 vendor.Name,
		Rating:               vendor.Rating,
		DeliveryRadiusMeters: vendor.DeliveryRadiusMeters,
		AcceptingOrders:      vendor.AcceptingOrders,
		IsOnline:             vendor.IsOnline,
		LastSeenAt:           vendor.LastSeenAt,
	}
	if vendor.LastKnown != nil {
		lat, lng := vendor.LastKnown.Latitude, vendor.LastKnown.Longitude
		vendorM.Latitude = &lat
		vendorM.Longitude = &lng
	}

	return vendorM
}
