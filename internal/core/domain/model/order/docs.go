// Package order provides domain entities and business logic for purchase order
// management in the retail system. It implements the Order aggregate root with
// product line items and a fixed fulfillment lifecycle.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, line items, and status
//   - Status: A value object covering the five-stage fulfillment vocabulary
//
// Key business rules:
//   - Orders must have a positive identifier and a customer reference
//   - Fulfillment status is one of pending, paid, processing, shipped, complete
//   - Product names are unique within an order; duplicate additions are rejected
//   - The order total is the tax-adjusted sum of unit prices, computed with
//     exact decimal arithmetic
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
