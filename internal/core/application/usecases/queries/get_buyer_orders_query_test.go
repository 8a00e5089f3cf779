package queries_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetBuyerOrdersQuery_Valid(t *testing.T) {
	buyerID := kernel.NewUUID()
	query, err := queries.NewGetBuyerOrdersQuery(buyerID, 1)
	require.NoError(t, err)
	assert.Equal(t, buyerID, query.BuyerID())
	assert.Equal(t, 1, query.Page())
	assert.NoError(t, query.Validate())
}

func TestNewGetBuyerOrdersQuery_InvalidPage(t *testing.T) {
	for _, page := range []int{0, -1} {
		_, err := queries.NewGetBuyerOrdersQuery(kernel.NewUUID(), page)
		require.Error(t, err)
		assert.ErrorIs(t, err, queries.ErrPageIsInvalid)
	}
}

func TestNewGetBuyerOrdersQuery_InvalidBuyerID(t *testing.T) {
	_, err := queries.NewGetBuyerOrdersQuery(kernel.UUID{}, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetBuyerOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetBuyerOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetBuyerOrdersQueryIsNotConstructed)
}
