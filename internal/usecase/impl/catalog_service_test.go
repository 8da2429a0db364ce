package impl

import (
	"context"
	"testing"

	"nearby/internal/domain/entity"
	domainerrors "nearby/internal/domain/errors"
	"nearby/internal/domain/repository"
	"nearby/internal/errors"
	mockRepo "nearby/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeRepositoryFactory struct {
	vendors  repository.VendorRepository
	products repository.ProductRepository
}

func (f *fakeRepositoryFactory) NewVendorRepository() repository.VendorRepository {
	return f.vendors
}

func (f *fakeRepositoryFactory) NewProductRepository() repository.ProductRepository {
	return f.products
}

func TestCatalogService_ReplaceCatalog(t *testing.T) {
	ctx := context.Background()
	vendor := &entity.Vendor{ID: "vendor-1", Name: "Fresh Cart", DeliveryRadiusMeters: 1500, AcceptingOrders: true}
	items := []entity.CatalogItem{
		{Product: entity.Product{ID: "p1", Name: "Tomatoes", Category: "vegetables", Price: 40, Unit: "kg"}, Quantity: 10, IsActive: true},
		{Product: entity.Product{ID: "p2", Name: "Mangoes", Category: "fruits", Price: 120, Unit: "kg"}, Quantity: 0, IsActive: true},
	}

	setup := func(t *testing.T) (*CatalogServiceParams, *mockRepo.MockTransactionManager, *mockRepo.MockVendorRepository, *mockRepo.MockProductRepository) {
		txManager := mockRepo.NewMockTransactionManager(t)
		vendors := mockRepo.NewMockVendorRepository(t)
		products := mockRepo.NewMockProductRepository(t)
		factory := &fakeRepositoryFactory{vendors: vendors, products: products}

		txManager.EXPECT().Execute(ctx, mock.Anything).
			RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
				return fn(factory)
			}).Maybe()

		return &CatalogServiceParams{TxManager: txManager, Logger: testLogger()}, txManager, vendors, products
	}

	t.Run("replaces products inside one transaction", func(t *testing.T) {
		params, _, vendors, products := setup(t)
		svc := NewCatalogService(*params)

		vendors.EXPECT().UpsertVendor(ctx, vendor).Return(nil).Once()
		vendors.EXPECT().SaveDeliverySettings(ctx, "vendor-1", entity.DeliverySettings{
			DeliveryRadius:  &vendor.DeliveryRadiusMeters,
			AcceptingOrders: &vendor.AcceptingOrders,
		}).Return(vendor, nil).Once()
		products.EXPECT().DeleteByVendor(ctx, "vendor-1").Return(nil).Once()
		products.EXPECT().CreateProduct(ctx, "vendor-1", &items[0]).Return(nil).Once()
		products.EXPECT().CreateProduct(ctx, "vendor-1", &items[1]).Return(nil).Once()

		require.NoError(t, svc.ReplaceCatalog(ctx, vendor, items))
	})

	t.Run("a failing product aborts the transaction", func(t *testing.T) {
		params, _, vendors, products := setup(t)
		svc := NewCatalogService(*params)

		vendors.EXPECT().UpsertVendor(ctx, vendor).Return(nil).Once()
		vendors.EXPECT().SaveDeliverySettings(ctx, "vendor-1", mock.Anything).Return(vendor, nil).Once()
		products.EXPECT().DeleteByVendor(ctx, "vendor-1").Return(nil).Once()
		products.EXPECT().CreateProduct(ctx, "vendor-1", &items[0]).Return(errors.New("constraint")).Once()

		err := svc.ReplaceCatalog(ctx, vendor, items)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "create product p1")
	})

	t.Run("vendor id is required", func(t *testing.T) {
		params, _, _, _ := setup(t)
		svc := NewCatalogService(*params)

		err := svc.ReplaceCatalog(ctx, &entity.Vendor{}, nil)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}
