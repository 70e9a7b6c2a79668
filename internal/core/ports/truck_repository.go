package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/truck"
)

// TruckRepository defines the persistence contract for the truck fleet.
type TruckRepository interface {
	// Add persists a newly registered truck.
	Add(ctx context.Context, aggregate *truck.Truck) error

	// Update persists changes to an existing truck, most often its
	// availability status.
	Update(ctx context.Context, aggregate *truck.Truck) error

	// Get retrieves a truck by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*truck.Truck, error)

	// GetAllAvailable retrieves every available truck serving the given
	// transport tier. TierAny matches the whole available fleet.
	GetAllAvailable(ctx context.Context, tier truck.Tier) ([]*truck.Truck, error)
}
