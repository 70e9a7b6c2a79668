package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment
// aggregates. Order membership lives on the orders themselves, so Get
// reconstructs the member list from the order storage as part of loading
// the aggregate.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate to storage.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetFirstDraftAwaitingTruck retrieves the oldest draft shipment that
	// has orders but no truck yet. Used by the dispatch job to find work.
	GetFirstDraftAwaitingTruck(ctx context.Context) (*shipment.Shipment, error)

	// Delete removes a shipment from storage. Fails while orders still
	// reference it.
	Delete(ctx context.Context, id kernel.UUID) error
}
