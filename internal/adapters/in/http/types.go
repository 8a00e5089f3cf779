package http

import "github.com/google/uuid"

// ErrorResponse is the error body every failed request carries.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// StatusResponse describes one workflow status for client rendering.
type StatusResponse struct {
	Code int    `json:"code"`
	Name string `json:"name"`
}

// AddOrderNowRequest is the body of a direct purchase.
type AddOrderNowRequest struct {
	AddressID string `json:"addressId"`
	Quantity  int    `json:"quantity"`
}

// AddAllFromCartRequest is the body of a cart checkout.
type AddAllFromCartRequest struct {
	AddressID string `json:"addressId"`
}

// ChangeOrderStatusRequest is the body of a status change.
type ChangeOrderStatusRequest struct {
	Status int `json:"status"`
}

// CreatedOrdersResponse lists the order rows a purchase produced, one per
// fulfilling warehouse.
type CreatedOrdersResponse struct {
	OrderIDs []uuid.UUID `json:"orderIds"`
}

// OrderListItem is one order row in a listing response.
type OrderListItem struct {
	ID               string `json:"id"`
	ProductID        string `json:"productId"`
	BuyerID          string `json:"buyerId"`
	SellerID         string `json:"sellerId"`
	CustomerAddress  string `json:"customerAddress"`
	WarehouseAddress string `json:"warehouseAddress"`
	Quantity         int    `json:"quantity"`
	OrderTime        string `json:"orderTime"`
	Status           int    `json:"status"`
	StatusName       string `json:"statusName"`
}
