package catalogrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/product"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCatalogRepository implements CatalogRepository using GORM. The
// catalog is read-only, so the repository takes no aggregate tracker.
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GORM catalog repository.
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// GetProduct retrieves a single product by ID.
func (r *GormCatalogRepository) GetProduct(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetProductsByIDs retrieves the products matching the given identifiers.
// Unknown identifiers are silently absent from the result.
func (r *GormCatalogRepository) GetProductsByIDs(
	ctx context.Context,
	ids []kernel.UUID,
) ([]*product.Product, error) {
	if len(ids) == 0 {
		return []*product.Product{}, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", raw).Error; err != nil {
		return nil, err
	}

	products := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, nil
}

// EndpointExists reports whether an endpoint of the given kind and ID is
// present in the network.
func (r *GormCatalogRepository) EndpointExists(
	ctx context.Context,
	kind shipment.EndpointKind,
	id kernel.UUID,
) (bool, error) {
	if err := errors.Join(kind.Validate(), id.Validate()); err != nil {
		return false, err
	}

	var count int64
	query := r.db.WithContext(ctx)

	switch kind {
	case shipment.KindManufacturer:
		query = query.Model(&ManufacturerDTO{})
	case shipment.KindDC:
		query = query.Model(&DistributionCenterDTO{})
	case shipment.KindBranch:
		query = query.Model(&BranchDTO{})
	default:
		return false, errs.NewValueIsInvalidError("endpoint kind")
	}

	if err := query.Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}
