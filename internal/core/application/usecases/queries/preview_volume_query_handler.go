package queries

import (
	"context"
	"math"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/truck"
	"logistics/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PreviewVolumeQueryHandler measures a prospective shipment against the
// catalog and the available fleet without persisting anything.
type PreviewVolumeQueryHandler struct {
	db         *gorm.DB
	calculator services.CargoCalculator
}

// NewPreviewVolumeQueryHandler creates a handler for volume previews.
// Requires a GORM database connection and a cargo calculator.
func NewPreviewVolumeQueryHandler(db *gorm.DB, calculator services.CargoCalculator) PreviewVolumeQueryHandler {
	return PreviewVolumeQueryHandler{db: db, calculator: calculator}
}

// Handle executes the preview. Unknown products and non-positive quantities
// are skipped; cartons are rounded up per line so partially filled boxes
// count whole. Utilization is reported against the single largest available
// truck, or omitted when none is free.
func (h PreviewVolumeQueryHandler) Handle(
	ctx context.Context,
	query PreviewVolumeQuery,
) (PreviewVolumeQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return PreviewVolumeQueryResponse{}, err
	}

	volumes, err := h.loadUnitVolumes(ctx, query.Branches())
	if err != nil {
		return PreviewVolumeQueryResponse{}, err
	}

	resp := PreviewVolumeQueryResponse{
		Branches: make([]PreviewVolumeBranchResponse, 0, len(query.Branches())),
	}

	for _, branch := range query.Branches() {
		branchResp := PreviewVolumeBranchResponse{BranchID: branch.BranchID}

		for _, line := range branch.Lines {
			unitVolume, known := volumes[line.ProductID]
			if !known || line.Quantity <= 0 {
				continue
			}

			lineVolume := unitVolume * float64(line.Quantity)
			branchResp.VolumeM3 += lineVolume
			branchResp.Cartons += h.calculator.Cartons(lineVolume)
		}

		resp.TotalVolumeM3 += branchResp.VolumeM3
		resp.TotalCartons += branchResp.Cartons
		resp.Branches = append(resp.Branches, branchResp)
	}

	capacity, err := h.largestAvailableCapacity(ctx)
	if err != nil {
		return PreviewVolumeQueryResponse{}, err
	}
	if capacity != nil {
		// Planning figure, capped at 100 and rounded to one decimal.
		utilization := math.Min(100, resp.TotalVolumeM3 / *capacity * 100)
		utilization = math.Round(utilization*10) / 10
		resp.TruckCapacityM3 = capacity
		resp.TruckUtilization = &utilization
	}

	return resp, nil
}

// loadUnitVolumes resolves the per-unit volume of every product named in
// the payload: the precomputed volume when present, the dimension product
// otherwise, zero when the catalog knows neither.
func (h PreviewVolumeQueryHandler) loadUnitVolumes(
	ctx context.Context,
	branches []PreviewBranchInput,
) (map[kernel.UUID]float64, error) {
	ids := make([]uuid.UUID, 0)
	for _, branch := range branches {
		for _, line := range branch.Lines {
			ids = append(ids, line.ProductID.Bytes())
		}
	}
	if len(ids) == 0 {
		return map[kernel.UUID]float64{}, nil
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			volume,
			length,
			width,
			height
		FROM products
		WHERE id IN ?
	`, ids).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	volumes := make(map[kernel.UUID]float64)
	for rows.Next() {
		var id uuid.UUID
		var volume, length, width, height *float64

		if err = rows.Scan(&id, &volume, &length, &width, &height); err != nil {
			return nil, err
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		switch {
		case volume != nil && *volume > 0:
			volumes[productID] = *volume
		case length != nil && width != nil && height != nil && *length > 0 && *width > 0 && *height > 0:
			volumes[productID] = (*length / 100) * (*width / 100) * (*height / 100)
		default:
			volumes[productID] = 0
		}
	}

	return volumes, rows.Err()
}

// largestAvailableCapacity returns the capacity of the biggest available
// truck, or nil when the whole fleet is out.
func (h PreviewVolumeQueryHandler) largestAvailableCapacity(ctx context.Context) (*float64, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT capacity_m3
		FROM trucks
		WHERE status = ?
		ORDER BY capacity_m3 DESC
		LIMIT 1
	`, truck.Available).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	var capacity float64
	if err = rows.Scan(&capacity); err != nil {
		return nil, err
	}

	return &capacity, rows.Err()
}
