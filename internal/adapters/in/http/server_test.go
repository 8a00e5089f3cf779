package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *Server {
	return &Server{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func TestGetOrderStatuses_ListsWholeWorkflow(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/statuses", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	s := newTestServer()
	require.NoError(t, s.GetOrderStatuses(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)

	var statuses []StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &statuses))
	require.Len(t, statuses, 7)
	assert.Equal(t, StatusResponse{Code: 0, Name: "Unverified"}, statuses[0])
	assert.Equal(t, StatusResponse{Code: 6, Name: "Delivered"}, statuses[6])
}

func TestStatusFor_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"not found", errs.NewObjectNotFoundError("order", "x"), http.StatusNotFound},
		{"stranger", order.ErrActorIsNotParticipant, http.StatusForbidden},
		{"insufficient stock", &services.InsufficientStockError{Demand: 7, Available: 3}, http.StatusConflict},
		{"reservation conflict", ports.ErrStockReservationConflict, http.StatusConflict},
		{"invalid transition", order.ErrInvalidTransition, http.StatusConflict},
		{"out of range", errs.NewValueIsOutOfRangeError("status", 9, 1, 5), http.StatusBadRequest},
		{"invalid value", errs.NewValueIsInvalidError("actorId"), http.StatusBadRequest},
		{"invalid page", queries.ErrPageIsInvalid, http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, statusFor(tt.err))
		})
	}
}

func TestErrorJSON_HidesInternalDetails(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	s := newTestServer()
	require.NoError(t, s.errorJSON(ctx, errors.New("dsn=secret")))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Internal server error", body.Message)
}

func TestActorFrom_MissingHeader_BadRequest(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := e.NewContext(req, httptest.NewRecorder())

	_, err := actorFrom(ctx)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, statusFor(err))
}
