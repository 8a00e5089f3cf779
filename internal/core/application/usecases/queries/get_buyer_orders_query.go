// Package queries contains read operations for the CQRS read side.
// Query handlers bypass the domain model and read the database directly,
// returning lightweight response structs shaped for the HTTP layer.
package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

// PageSize is the fixed number of orders returned per page.
const PageSize = 20

var (
	ErrGetBuyerOrdersQueryIsNotConstructed = errors.New(
		"GetBuyerOrdersQuery must be created via NewGetBuyerOrdersQuery constructor",
	)
	ErrPageIsInvalid = errors.New("page must be greater than 0")
)

// GetBuyerOrdersQuery retrieves one page of the buyer's own purchase history,
// newest first.
//
// Example:
//
//	query, err := NewGetBuyerOrdersQuery(buyerID, 1)
//	if err != nil {
//	    return err
//	}
//
//	orders, err := handler.Handle(ctx, query)
type GetBuyerOrdersQuery struct {
	buyerID kernel.UUID
	page    int

	guard guard.ConstructorGuard
}

// NewGetBuyerOrdersQuery creates a query for the buyer's purchase history.
// Page numbering starts at 1.
func NewGetBuyerOrdersQuery(buyerID kernel.UUID, page int) (GetBuyerOrdersQuery, error) {
	if err := buyerID.Validate(); err != nil {
		return GetBuyerOrdersQuery{}, err
	}
	if page < 1 {
		return GetBuyerOrdersQuery{}, ErrPageIsInvalid
	}

	return GetBuyerOrdersQuery{
		buyerID: buyerID,
		page:    page,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetBuyerOrdersQueryIsNotConstructed if validation fails.
func (q GetBuyerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetBuyerOrdersQueryIsNotConstructed)
}

// BuyerID returns the identifier of the buyer whose orders are listed.
func (q GetBuyerOrdersQuery) BuyerID() kernel.UUID {
	return q.buyerID
}

// Page returns the 1-based page number.
func (q GetBuyerOrdersQuery) Page() int {
	return q.page
}

// OrderResponse represents one order row in a listing.
// Address snapshots are returned as the frozen multi-line text captured at
// purchase time.
type OrderResponse struct {
	ID               kernel.UUID
	ProductID        kernel.UUID
	BuyerID          kernel.UUID
	SellerID         kernel.UUID
	CustomerAddress  string
	WarehouseAddress string
	Quantity         int
	OrderTime        time.Time
	Status           order.Status
}
