package queries

import (
	"database/sql"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// scanOrderResponses maps listing rows to responses. Both listing queries
// select the same columns in the same order.
func scanOrderResponses(rows *sql.Rows) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)

	for rows.Next() {
		var (
			id, productID, buyerID, sellerID  uuid.UUID
			customerAddress, warehouseAddress string
			quantity                          int
			orderTime                         time.Time
			status                            int
		)

		err := rows.Scan(
			&id,
			&productID,
			&buyerID,
			&sellerID,
			&customerAddress,
			&warehouseAddress,
			&quantity,
			&orderTime,
			&status,
		)
		if err != nil {
			return nil, err
		}

		resp := OrderResponse{
			CustomerAddress:  customerAddress,
			WarehouseAddress: warehouseAddress,
			Quantity:         quantity,
			OrderTime:        orderTime,
			Status:           order.Status(status),
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}
		if resp.BuyerID, err = kernel.UUIDFromBytes(buyerID[:]); err != nil {
			return nil, err
		}
		if resp.SellerID, err = kernel.UUIDFromBytes(sellerID[:]); err != nil {
			return nil, err
		}

		orders = append(orders, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
