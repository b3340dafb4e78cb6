// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the Galapagos delivery
// system. It implements complex business workflows that don't naturally
// belong to a single aggregate root.
//
// The package includes:
//   - RoutePlanner: shortest sea route computation over the port topology
//   - LockerAllocator: race-safe reservation of storage lockers
//   - FleetStatusResolver: derivation of each seaplane's operational state
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
