// Package queries contains read-only operations over the database.
// Implements the Query side of the CQRS architecture: raw SQL read models
// that bypass the aggregates entirely.
package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var (
	ErrPreviewVolumeQueryIsNotConstructed = errors.New(
		"PreviewVolumeQuery must be created via NewPreviewVolumeQuery constructor",
	)
	ErrPreviewBranchesAreRequired = errors.New("at least one branch payload is required")
)

// PreviewLineInput is one product position in a volume preview payload.
// Previews are forgiving: unknown products and non-positive quantities are
// skipped at handling time instead of failing the request.
type PreviewLineInput struct {
	ProductID kernel.UUID
	Quantity  int
}

// PreviewBranchInput groups preview lines per ordering branch.
type PreviewBranchInput struct {
	BranchID kernel.UUID
	Lines    []PreviewLineInput
}

// PreviewVolumeQuery asks what a prospective shipment would measure: volume,
// carton count, and how full the largest available truck would be. Nothing
// is persisted.
//
// Example:
//
//	query, err := NewPreviewVolumeQuery(branches)
//	if err != nil {
//	    return err // empty payload
//	}
//	preview, err := handler.Handle(ctx, query)
type PreviewVolumeQuery struct {
	branches []PreviewBranchInput

	guard guard.ConstructorGuard
}

// NewPreviewVolumeQuery creates a volume preview query. The payload must
// name at least one branch.
func NewPreviewVolumeQuery(branches []PreviewBranchInput) (PreviewVolumeQuery, error) {
	if len(branches) == 0 {
		return PreviewVolumeQuery{}, ErrPreviewBranchesAreRequired
	}

	return PreviewVolumeQuery{
		branches: branches,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q PreviewVolumeQuery) Validate() error {
	return q.guard.Validate(ErrPreviewVolumeQueryIsNotConstructed)
}

// Branches returns the per-branch preview payloads.
func (q PreviewVolumeQuery) Branches() []PreviewBranchInput {
	return q.branches
}

// PreviewVolumeBranchResponse is the measured outcome for one branch.
type PreviewVolumeBranchResponse struct {
	BranchID kernel.UUID
	VolumeM3 float64
	Cartons  int
}

// PreviewVolumeQueryResponse is the aggregated preview. TruckUtilization is
// the percentage of the largest available truck the cargo would occupy, or
// nil when the fleet has no available truck.
type PreviewVolumeQueryResponse struct {
	Branches         []PreviewVolumeBranchResponse
	TotalVolumeM3    float64
	TotalCartons     int
	TruckCapacityM3  *float64
	TruckUtilization *float64
}
