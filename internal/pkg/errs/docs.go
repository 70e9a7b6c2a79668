// Package errs provides the standardized error types used across the
// logistics application. Every failure a caller can act on belongs to one of
// four categories, each anchored by a sentinel error:
//
//   - ErrObjectNotFound: a referenced entity (shipment, order, truck, product,
//     branch) does not exist
//   - ErrValueIsRequired: a required value is missing from the input
//   - ErrValueIsInvalid / ErrValueIsOutOfRange: a supplied value is malformed
//     or outside its allowed range
//   - ErrConflict: the operation collides with current state (truck not
//     available, capacity exceeded, status precondition not met)
//
// Each category follows the same pattern: a sentinel error variable, a struct
// type carrying the failure details, constructors with and without a cause,
// an Error() method producing a human-readable message, and an Unwrap()
// method so errors.Is can classify any error against its category sentinel.
// The HTTP adapter relies on this classification to pick transport status
// codes without inspecting concrete types.
package errs
