package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetSellerOrdersQueryHandler retrieves the seller's received orders from the
// database.
type GetSellerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetSellerOrdersQueryHandler creates a handler for seller order listings.
// Requires a GORM database connection for query execution.
func NewGetSellerOrdersQueryHandler(db *gorm.DB) GetSellerOrdersQueryHandler {
	return GetSellerOrdersQueryHandler{db: db}
}

// Handle executes the query for one page of the seller's received orders.
// Results are sorted newest first; a page past the end returns an empty slice.
func (h GetSellerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetSellerOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_id,
			buyer_id,
			seller_id,
			customer_address,
			warehouse_address,
			quantity,
			order_time,
			status
		FROM orders
		WHERE seller_id = ?
		ORDER BY order_time DESC, id
		LIMIT ? OFFSET ?
	`, query.SellerID().Bytes(), PageSize, (query.Page()-1)*PageSize).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderResponses(rows)
}
