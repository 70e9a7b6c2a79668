// Package catalogrepo provides read-only access to master data: the
// product catalog and the network endpoints (manufacturers, distribution
// centers, branches). Master data is maintained by an upstream system, so
// this package maps rows to domain objects and nothing back.
package catalogrepo

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure of a catalog product.
// Dimensions and the precomputed volume are both optional; planning math
// degrades gracefully when they are absent.
type ProductDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name      string          `gorm:"type:varchar(255);not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Length    *float64        `gorm:"type:numeric(8,2)"`
	Width     *float64        `gorm:"type:numeric(8,2)"`
	Height    *float64        `gorm:"type:numeric(8,2)"`
	Volume    *float64        `gorm:"type:numeric(10,4)"`
}

// TableName overrides GORM's default naming to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

// ManufacturerDTO represents a manufacturer endpoint row.
type ManufacturerDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(255);not null"`
}

// TableName overrides GORM's default naming to use "manufacturers".
func (ManufacturerDTO) TableName() string {
	return "manufacturers"
}

// DistributionCenterDTO represents a distribution center endpoint row.
type DistributionCenterDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(255);not null"`
}

// TableName overrides GORM's default naming to use "distribution_centers".
func (DistributionCenterDTO) TableName() string {
	return "distribution_centers"
}

// BranchDTO represents a branch endpoint row.
type BranchDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(255);not null"`
}

// TableName overrides GORM's default naming to use "branches".
func (BranchDTO) TableName() string {
	return "branches"
}

// toDomain converts a product row to its domain representation. Dimensions
// are carried over only when all three sides are present and positive, and
// the precomputed volume only when positive, so that partial master data
// never fails a read.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var dims *product.Dimensions
	if dto.Length != nil && dto.Width != nil && dto.Height != nil &&
		*dto.Length > 0 && *dto.Width > 0 && *dto.Height > 0 {
		dims = &product.Dimensions{
			Length: *dto.Length,
			Width:  *dto.Width,
			Height: *dto.Height,
		}
	}

	var volume *float64
	if dto.Volume != nil && *dto.Volume > 0 {
		volume = dto.Volume
	}

	return product.NewProduct(id, dto.Name, dto.UnitPrice, dims, volume)
}
