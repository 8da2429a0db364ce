package sqlstore

import (
	"context"

	"nearby/internal/domain/entity"
	domainerrors "nearby/internal/domain/errors"
	"nearby/internal/domain/repository"
	"nearby/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements repository.ProductRepository using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a product repository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) FindAvailableByVendor(ctx context.Context, vendorID string, limit int) ([]entity.Product, error) {
	var productMs []model.ProductModel
	err := repo.db.WithContext(ctx).
		Where("vendor_id = ? AND is_active = ? AND quantity > 0", vendorID, true).
		Order("created_at, id").
		Limit(limit).
		Find(&productMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find vendor products")
	}

	products := make([]entity.Product, 0, len(productMs))
	for idx := range productMs {
		products = append(products, toProductDomain(&productMs[idx]))
	}

	return products, nil
}

func (repo *productRepository) CreateProduct(ctx context.Context, vendorID string, item *entity.CatalogItem) error {
	productM := &model.ProductModel{
		VendorID: vendorID,
		ID:       item.ID,
		Name:     item.Name,
		Category: item.Category,
		Price:    item.Price,
		Unit:     item.Unit,
		Quantity: item.Quantity,
		IsActive: item.IsActive,
	}

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("duplicate product id " + item.ID)
		}

		return errors.Wrap(err, "failed to create product")
	}

	return nil
}

func (repo *productRepository) DeleteByVendor(ctx context.Context, vendorID string) error {
	err := repo.db.WithContext(ctx).Where("vendor_id = ?", vendorID).Delete(&model.ProductModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete vendor products")
	}

	return nil
}

func toProductDomain(productM *model.ProductModel) entity.Product {
	return entity.Product{
		ID:       productM.ID,
		Name:     productM.Name,
		Category: productM.Category,
		Price:    productM.Price,
		Unit:     productM.Unit,
	}
}
