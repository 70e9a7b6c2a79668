// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the logistics system. It
// implements workflows that don't naturally belong to a single aggregate
// root.
//
// The package includes:
//   - CargoCalculator: converts order lines into money, volume, and box totals
//   - TruckAllocator: best-fit truck selection for draft shipments
//   - ReturnReconciler: settles pending returns carried home by inbound shipments
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
