// Package http exposes the fulfillment use cases over an echo REST API.
// Actor identity arrives pre-authenticated in the X-Actor-Id header; this
// layer only parses it and hands it to the use cases, which decide what the
// actor may do.
package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ActorHeader carries the pre-authenticated identity of the calling user.
const ActorHeader = "X-Actor-Id"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	addOrderNowHandler       commands.AddOrderNowCommandHandler
	addAllFromCartHandler    commands.AddAllFromCartCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler

	// Query handlers
	getBuyerOrdersHandler  queries.GetBuyerOrdersQueryHandler
	getSellerOrdersHandler queries.GetSellerOrdersQueryHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	addOrderNowHandler commands.AddOrderNowCommandHandler,
	addAllFromCartHandler commands.AddAllFromCartCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	getBuyerOrdersHandler queries.GetBuyerOrdersQueryHandler,
	getSellerOrdersHandler queries.GetSellerOrdersQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		addOrderNowHandler:       addOrderNowHandler,
		addAllFromCartHandler:    addAllFromCartHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		getBuyerOrdersHandler:    getBuyerOrdersHandler,
		getSellerOrdersHandler:   getSellerOrdersHandler,
		logger:                   logger.With("component", "http_server"),
	}
}

// RegisterRoutes attaches the server's handlers to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.GET("/orders/statuses", s.GetOrderStatuses)
	api.GET("/orders", s.GetOwnOrders)
	api.GET("/orders/sold", s.GetSoldOrders)
	api.POST("/orders/:productId/now", s.AddOrderNow)
	api.POST("/orders/from-cart", s.AddAllFromCart)
	api.PATCH("/orders/:orderId/status", s.ChangeOrderStatus)
}

// GetOrderStatuses handles GET /api/v1/orders/statuses.
// Enumerates every workflow status so clients can render codes by name.
func (s *Server) GetOrderStatuses(ctx echo.Context) error {
	statuses := []order.Status{
		order.Unverified, order.Cancelling, order.Cancelled,
		order.Returning, order.Returned, order.Delivering, order.Delivered,
	}

	response := make([]StatusResponse, 0, len(statuses))
	for _, status := range statuses {
		response = append(response, StatusResponse{
			Code: int(status),
			Name: status.String(),
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOwnOrders handles GET /api/v1/orders - the calling buyer's orders.
func (s *Server) GetOwnOrders(ctx echo.Context) error {
	actorID, err := actorFrom(ctx)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	page, err := pageFrom(ctx)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	query, err := queries.NewGetBuyerOrdersQuery(actorID, page)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	orders, err := s.getBuyerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// GetSoldOrders handles GET /api/v1/orders/sold - orders placed against the
// calling seller's products.
func (s *Server) GetSoldOrders(ctx echo.Context) error {
	actorID, err := actorFrom(ctx)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	page, err := pageFrom(ctx)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	query, err := queries.NewGetSellerOrdersQuery(actorID, page)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	orders, err := s.getSellerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// AddOrderNow handles POST /api/v1/orders/:productId/now - a direct purchase
// bypassing the cart.
func (s *Server) AddOrderNow(ctx echo.Context) error {
	actorID, err := actorFrom(ctx)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	productID, err := uuidParam(ctx, "productId")
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	var body AddOrderNowRequest
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	addressID, err := uuidField(body.AddressID, "addressId")
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	cmd, err := commands.NewAddOrderNowCommand(actorID, productID, addressID, body.Quantity)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	orderIDs, err := s.addOrderNowHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	s.logger.InfoContext(ctx.Request().Context(), "Direct purchase completed",
		"product_id", productID.String(), "orders", len(orderIDs))
	return ctx.JSON(http.StatusCreated, toCreatedResponse(orderIDs))
}

// AddAllFromCart handles POST /api/v1/orders/from-cart - checkout of the
// calling buyer's whole cart.
func (s *Server) AddAllFromCart(ctx echo.Context) error {
	actorID, err := actorFrom(ctx)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	var body AddAllFromCartRequest
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	addressID, err := uuidField(body.AddressID, "addressId")
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	cmd, err := commands.NewAddAllFromCartCommand(actorID, addressID)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	orderIDs, err := s.addAllFromCartHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	s.logger.InfoContext(ctx.Request().Context(), "Cart checkout completed",
		"orders", len(orderIDs))
	return ctx.JSON(http.StatusCreated, toCreatedResponse(orderIDs))
}

// ChangeOrderStatus handles PATCH /api/v1/orders/:orderId/status - moves an
// order along its workflow on behalf of the calling user.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	actorID, err := actorFrom(ctx)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	orderID, err := uuidParam(ctx, "orderId")
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	var body ChangeOrderStatusRequest
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewChangeOrderStatusCommand(actorID, orderID, body.Status)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	if err = s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func actorFrom(ctx echo.Context) (kernel.UUID, error) {
	actorID, err := kernel.UUIDFromString(ctx.Request().Header.Get(ActorHeader))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("actorId", err)
	}
	return actorID, nil
}

func uuidParam(ctx echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

func uuidField(raw, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

func pageFrom(ctx echo.Context) (int, error) {
	raw := ctx.QueryParam("page")
	if raw == "" {
		return 1, nil
	}

	page, err := strconv.Atoi(raw)
	if err != nil {
		return 0, queries.ErrPageIsInvalid
	}
	return page, nil
}

func toOrderResponses(orders []queries.OrderResponse) []OrderListItem {
	response := make([]OrderListItem, 0, len(orders))
	for _, o := range orders {
		response = append(response, OrderListItem{
			ID:               o.ID.String(),
			ProductID:        o.ProductID.String(),
			BuyerID:          o.BuyerID.String(),
			SellerID:         o.SellerID.String(),
			CustomerAddress:  o.CustomerAddress,
			WarehouseAddress: o.WarehouseAddress,
			Quantity:         o.Quantity,
			OrderTime:        o.OrderTime.Format(time.RFC3339),
			Status:           int(o.Status),
			StatusName:       o.Status.String(),
		})
	}
	return response
}

func toCreatedResponse(orderIDs []kernel.UUID) CreatedOrdersResponse {
	ids := make([]uuid.UUID, 0, len(orderIDs))
	for _, id := range orderIDs {
		ids = append(ids, id.Bytes())
	}
	return CreatedOrdersResponse{OrderIDs: ids}
}
