package services

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/stock"
)

// ErrInsufficientStock is returned when the total quantity available across
// every warehouse is less than the demanded quantity. No allocation lines are
// produced in that case.
var ErrInsufficientStock = errors.New("insufficient stock")

// InsufficientStockError carries the demanded and available quantities of a
// failed allocation. It unwraps to ErrInsufficientStock.
type InsufficientStockError struct {
	Demand    int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: demand is %d, available is %d", ErrInsufficientStock, e.Demand, e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// StockAllocator is a domain service that plans how a demanded quantity of a
// product is satisfied from per-warehouse stock records.
//
// Key properties:
//   - Records are consumed in the order given (the caller supplies them in
//     stable warehouse insertion order), so the result is the minimal prefix
//     of warehouses covering the demand
//   - A warehouse contributing zero units produces no line
//   - All-or-nothing: either the lines sum exactly to the demand, or no
//     lines are produced and ErrInsufficientStock is returned
//   - Pure planning: stock quantities are not modified; reserving the
//     planned quantities is the caller's transactional responsibility
//
// Example usage:
//
//	allocator := services.NewStockAllocator()
//	lines, err := allocator.Allocate(7, records)
//	if errors.Is(err, services.ErrInsufficientStock) {
//	    // no orders must be created
//	    return err
//	}
type StockAllocator struct{}

// NewStockAllocator creates a new StockAllocator instance.
func NewStockAllocator() StockAllocator {
	return StockAllocator{}
}

// Allocate walks the stock records in order, taking from each warehouse the
// lesser of what it holds and what is still demanded, until the demand is
// covered.
//
// Parameters:
//   - demand: quantity to satisfy (must be positive, caller-bounded)
//   - records: per-warehouse stock for one product, in stable order
//
// Returns:
//   - []stock.Allocation: lines summing exactly to demand, in record order
//   - error: validation errors, or InsufficientStockError when the records
//     cannot cover the demand (no lines are returned then)
func (a StockAllocator) Allocate(demand int, records []stock.Record) ([]stock.Allocation, error) {
	if demand <= 0 {
		return nil, fmt.Errorf("demand must be greater than 0, got %d", demand)
	}

	remaining := demand
	lines := make([]stock.Allocation, 0, len(records))

	for _, record := range records {
		if err := record.Validate(); err != nil {
			return nil, err
		}

		taken := min(remaining, record.Quantity())
		if taken == 0 {
			continue
		}

		line, err := stock.NewAllocation(record.WarehouseID(), taken)
		if err != nil {
			return nil, err
		}

		lines = append(lines, line)
		remaining -= taken
		if remaining == 0 {
			return lines, nil
		}
	}

	return nil, &InsufficientStockError{
		Demand:    demand,
		Available: demand - remaining,
	}
}
