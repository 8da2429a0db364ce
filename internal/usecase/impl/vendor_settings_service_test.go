package impl

import (
	"context"
	"testing"

	"nearby/internal/domain/entity"
	domainerrors "nearby/internal/domain/errors"
	"nearby/internal/errors"
	mockRepo "nearby/internal/mocks/repository"
	mockUsecase "nearby/internal/mocks/usecase"
	"nearby/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestVendorSettingsService(t *testing.T) (usecase.VendorSettingsUsecase, *mockRepo.MockVendorRepository, *mockUsecase.MockMatchingUsecase) {
	repo := mockRepo.NewMockVendorRepository(t)
	matching := mockUsecase.NewMockMatchingUsecase(t)

	svc := NewVendorSettingsService(VendorSettingsServiceParams{
		VendorRepo: repo,
		Matching:   matching,
		Config:     testConfig(),
		Logger:     testLogger(),
	})

	return svc, repo, matching
}

func TestVendorSettingsService_UpdateDeliverySettings(t *testing.T) {
	ctx := context.Background()
	radius := 3000.0
	accepting := false
	stored := &entity.Vendor{ID: "vendor-1", DeliveryRadiusMeters: 3000, AcceptingOrders: true}

	t.Run("persisted then applied live", func(t *testing.T) {
		svc, repo, matching := createTestVendorSettingsService(t)
		settings := entity.DeliverySettings{DeliveryRadius: &radius}

		repo.EXPECT().SaveDeliverySettings(ctx, "vendor-1", settings).Return(stored, nil).Once()
		matching.EXPECT().VendorStatus(ctx, "vendor-1", usecase.VendorStatus{AcceptingOrders: true, DeliveryRadius: 3000}).Return(nil).Once()

		vendor, err := svc.UpdateDeliverySettings(ctx, "vendor-1", settings)
		require.NoError(t, err)
		assert.Equal(t, stored, vendor)
	})

	t.Run("offline vendor keeps the stored settings", func(t *testing.T) {
		svc, repo, matching := createTestVendorSettingsService(t)
		settings := entity.DeliverySettings{AcceptingOrders: &accepting}

		repo.EXPECT().SaveDeliverySettings(ctx, "vendor-1", settings).Return(stored, nil).Once()
		matching.EXPECT().VendorStatus(ctx, "vendor-1", usecase.VendorStatus{AcceptingOrders: true, DeliveryRadius: 3000}).
			Return(domainerrors.ErrVendorOffline).Once()

		_, err := svc.UpdateDeliverySettings(ctx, "vendor-1", settings)
		assert.NoError(t, err)
	})

	t.Run("empty update", func(t *testing.T) {
		svc, _, _ := createTestVendorSettingsService(t)

		_, err := svc.UpdateDeliverySettings(ctx, "vendor-1", entity.DeliverySettings{})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("radius out of bounds", func(t *testing.T) {
		svc, _, _ := createTestVendorSettingsService(t)
		tooSmall := 400.0

		_, err := svc.UpdateDeliverySettings(ctx, "vendor-1", entity.DeliverySettings{DeliveryRadius: &tooSmall})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidRadius)
	})

	t.Run("store failure", func(t *testing.T) {
		svc, repo, _ := createTestVendorSettingsService(t)
		settings := entity.DeliverySettings{DeliveryRadius: &radius}
		repo.EXPECT().SaveDeliverySettings(ctx, "vendor-1", settings).Return(nil, errors.New("db down")).Once()

		_, err := svc.UpdateDeliverySettings(ctx, "vendor-1", settings)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "save delivery settings")
	})
}
