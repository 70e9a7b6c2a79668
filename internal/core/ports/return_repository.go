package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/returns"
)

// ReturnRepository defines the persistence contract for return aggregates.
type ReturnRepository interface {
	// Add persists a new return aggregate to storage.
	Add(ctx context.Context, aggregate *returns.Return) error

	// Update persists changes to an existing return aggregate.
	Update(ctx context.Context, aggregate *returns.Return) error

	// Get retrieves a return aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*returns.Return, error)

	// GetByIDs retrieves the returns matching the given identifiers.
	// Unknown identifiers are silently absent from the result.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*returns.Return, error)
}
