// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// StockRepoFactory provides access to stock repository within a transaction.
	StockRepoFactory interface {
		StockRepository() ports.StockRepository
	}

	// CartRepoFactory provides access to cart repository within a transaction.
	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	// PurchaseUoW manages transactions for purchase operations.
	// Stock reservations and the orders they back commit or roll back together.
	PurchaseUoW interface {
		TxManager
		OrderRepoFactory
		StockRepoFactory
	}

	// PurchaseUoWFactory creates new purchase unit of work instances.
	PurchaseUoWFactory interface {
		Create() PurchaseUoW
	}

	// CartPurchaseUoW manages transactions for cart checkout.
	// Adds cart access on top of PurchaseUoW so the cart is cleared in the
	// same transaction that persists the resulting orders.
	CartPurchaseUoW interface {
		TxManager
		OrderRepoFactory
		StockRepoFactory
		CartRepoFactory
	}

	// CartPurchaseUoWFactory creates new cart checkout unit of work instances.
	CartPurchaseUoWFactory interface {
		Create() CartPurchaseUoW
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
