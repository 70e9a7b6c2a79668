package shipment

import (
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// EndpointKind tags which catalog table an endpoint reference points into.
// The same shipment table expresses both linehaul (Manufacturer to DC) and
// last-mile (DC to Branch) movements, so origins and destinations are tagged
// (kind, id) pairs instead of per-type foreign keys. Resolving a display name
// or coordinate dispatches on the kind.
type EndpointKind int

const (
	// KindUnknown represents an invalid or undefined endpoint kind.
	KindUnknown EndpointKind = iota

	// KindManufacturer references the manufacturer catalog. Valid only as an
	// origin.
	KindManufacturer

	// KindDC references the distribution center catalog.
	KindDC

	// KindBranch references the branch catalog.
	KindBranch
)

// ParseEndpointKind converts the wire spelling of a kind back to its value.
func ParseEndpointKind(s string) (EndpointKind, error) {
	switch s {
	case "manufacturer":
		return KindManufacturer, nil
	case "dc":
		return KindDC, nil
	case "branch":
		return KindBranch, nil
	default:
		return KindUnknown, errs.NewValueIsInvalidErrorWithCause("endpoint kind",
			fmt.Errorf("%q is not a valid endpoint kind", s))
	}
}

// Validate checks that the kind is one of the defined values.
func (k EndpointKind) Validate() error {
	if k < KindManufacturer || k > KindBranch {
		return errs.NewValueIsInvalidErrorWithCause("endpoint kind",
			fmt.Errorf("%d is not a valid endpoint kind", k))
	}
	return nil
}

// String returns the wire spelling of the kind.
func (k EndpointKind) String() string {
	switch k {
	case KindManufacturer:
		return "manufacturer"
	case KindDC:
		return "dc"
	case KindBranch:
		return "branch"
	default:
		return "unknown"
	}
}

// Endpoint is a tagged reference to a manufacturer, DC, or branch.
type Endpoint struct {
	kind EndpointKind
	id   kernel.UUID
}

// NewEndpoint creates an endpoint reference of any kind, suitable as a
// shipment origin.
func NewEndpoint(kind EndpointKind, id kernel.UUID) (Endpoint, error) {
	if err := kind.Validate(); err != nil {
		return Endpoint{}, err
	}
	if err := id.Validate(); err != nil {
		return Endpoint{}, err
	}
	return Endpoint{kind: kind, id: id}, nil
}

// NewDestination creates an endpoint restricted to the destination kinds:
// goods flow toward DCs and branches, never toward a manufacturer.
func NewDestination(kind EndpointKind, id kernel.UUID) (Endpoint, error) {
	if kind == KindManufacturer {
		return Endpoint{}, errs.NewValueIsInvalidErrorWithCause("destination",
			fmt.Errorf("a manufacturer cannot be a shipment destination"))
	}
	return NewEndpoint(kind, id)
}

// Kind returns the catalog table tag.
func (e Endpoint) Kind() EndpointKind {
	return e.kind
}

// ID returns the referenced entity's identifier.
func (e Endpoint) ID() kernel.UUID {
	return e.id
}

// IsZero reports whether the endpoint was never constructed.
func (e Endpoint) IsZero() bool {
	return e.kind == KindUnknown
}

// Validate checks the endpoint's kind and identifier.
func (e Endpoint) Validate() error {
	if err := e.kind.Validate(); err != nil {
		return err
	}
	return e.id.Validate()
}
