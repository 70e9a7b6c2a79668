package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/product"
	"logistics/internal/core/domain/model/shipment"
)

// CatalogRepository defines the read contract for master data: the product
// catalog and the network endpoints (manufacturers, distribution centers,
// branches). Master data is maintained outside this service, so the port
// exposes no mutations.
type CatalogRepository interface {
	// GetProduct retrieves a single product by its identifier.
	GetProduct(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetProductsByIDs retrieves the products matching the given identifiers.
	// Unknown identifiers are silently absent from the result; callers decide
	// whether a partial hit is an error.
	GetProductsByIDs(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error)

	// EndpointExists reports whether an endpoint of the given kind and
	// identifier is present in the network.
	EndpointExists(ctx context.Context, kind shipment.EndpointKind, id kernel.UUID) (bool, error)
}
