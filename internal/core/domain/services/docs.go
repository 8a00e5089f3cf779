// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the fulfillment core. It
// implements business logic that doesn't naturally belong to a single
// aggregate root.
//
// The package includes:
//   - StockAllocator: A domain service that plans how a demanded quantity of
//     a product is split across per-warehouse stock records
package services
