// Package kernel provides shared value objects for the retail domain model.
//
// The package contains building blocks that carry their own validation and
// are used across aggregates:
//   - Price: a non-negative decimal money amount
//
// Value objects in this package are immutable, compared by value, and must be
// created through their factory functions. Zero values fail validation, which
// protects aggregates from silently absorbing uninitialized state.
package kernel
