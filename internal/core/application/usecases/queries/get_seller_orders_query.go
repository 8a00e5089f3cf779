package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetSellerOrdersQueryIsNotConstructed = errors.New(
	"GetSellerOrdersQuery must be created via NewGetSellerOrdersQuery constructor",
)

// GetSellerOrdersQuery retrieves one page of the orders placed against the
// seller's products, newest first. This is the seller's work queue: fresh
// orders here are the ones awaiting verification.
type GetSellerOrdersQuery struct {
	sellerID kernel.UUID
	page     int

	guard guard.ConstructorGuard
}

// NewGetSellerOrdersQuery creates a query for the seller's received orders.
// Page numbering starts at 1.
func NewGetSellerOrdersQuery(sellerID kernel.UUID, page int) (GetSellerOrdersQuery, error) {
	if err := sellerID.Validate(); err != nil {
		return GetSellerOrdersQuery{}, err
	}
	if page < 1 {
		return GetSellerOrdersQuery{}, ErrPageIsInvalid
	}

	return GetSellerOrdersQuery{
		sellerID: sellerID,
		page:     page,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetSellerOrdersQueryIsNotConstructed if validation fails.
func (q GetSellerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetSellerOrdersQueryIsNotConstructed)
}

// SellerID returns the identifier of the seller whose orders are listed.
func (q GetSellerOrdersQuery) SellerID() kernel.UUID {
	return q.sellerID
}

// Page returns the 1-based page number.
func (q GetSellerOrdersQuery) Page() int {
	return q.page
}
