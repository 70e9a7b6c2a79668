package services

import (
	"logistics/internal/core/domain/model/returns"
	"logistics/internal/core/domain/model/shipment"
)

// ReturnReconciler is a domain service that settles pending returns when an
// inbound shipment arrives at the distribution center. A return is settled
// when the arriving shipment carries the order the return reverses.
type ReturnReconciler struct{}

// NewReturnReconciler creates a new ReturnReconciler instance.
func NewReturnReconciler() ReturnReconciler {
	return ReturnReconciler{}
}

// Reconcile marks every eligible candidate as received by the shipment and
// returns the settled returns. Candidates bound to another shipment or
// already received are skipped rather than failed: reconciliation is a
// best-effort sweep over whatever the caller loaded.
func (r ReturnReconciler) Reconcile(s *shipment.Shipment, candidates []*returns.Return) ([]*returns.Return, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	var settled []*returns.Return
	for _, ret := range candidates {
		if err := ret.Validate(); err != nil {
			return nil, err
		}
		if !ret.EligibleFor(s) {
			continue
		}
		if err := ret.Receive(s.ID()); err != nil {
			return nil, err
		}
		settled = append(settled, ret)
	}

	return settled, nil
}
