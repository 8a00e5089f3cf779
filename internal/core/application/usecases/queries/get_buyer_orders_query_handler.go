package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetBuyerOrdersQueryHandler retrieves the buyer's orders from the database.
//
// Example:
//
//	handler := NewGetBuyerOrdersQueryHandler(db)
//	query, _ := NewGetBuyerOrdersQuery(buyerID, 1)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("page holds %d orders\n", len(orders))
type GetBuyerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetBuyerOrdersQueryHandler creates a handler for buyer order listings.
// Requires a GORM database connection for query execution.
func NewGetBuyerOrdersQueryHandler(db *gorm.DB) GetBuyerOrdersQueryHandler {
	return GetBuyerOrdersQueryHandler{db: db}
}

// Handle executes the query for one page of the buyer's orders.
// Results are sorted newest first; a page past the end returns an empty slice.
func (h GetBuyerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetBuyerOrdersQuery,
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
		WHERE buyer_id = ?
		ORDER BY order_time DESC, id
		LIMIT ? OFFSET ?
	`, query.BuyerID().Bytes(), PageSize, (query.Page()-1)*PageSize).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderResponses(rows)
}
