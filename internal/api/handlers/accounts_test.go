package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/donaldgifford/threecommas/internal/api/handlers"
	"github.com/donaldgifford/threecommas/internal/store"
	storeMocks "github.com/donaldgifford/threecommas/internal/store/mocks"
	"github.com/donaldgifford/threecommas/pkg/threecommas"
)

func TestAccountsHandler(t *testing.T) {
	t.Parallel()

	m := storeMocks.NewMockStore(t)
	m.EXPECT().ListAccounts(mock.Anything).Return([]threecommas.Account{{ID: 7, Name: "Binance spot"}}, nil).Once()
	m.EXPECT().GetAccount(mock.Anything, int64(7)).Return(&threecommas.Account{ID: 7, MarketCode: "binance"}, nil).Once()
	m.EXPECT().GetAccount(mock.Anything, int64(9)).Return(nil, store.ErrNotFound).Once()
	h := handlers.NewAccountsHandler(m)

	rec := serve(t, http.MethodGet, "/accounts", "/accounts", h.List, nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Binance spot"`)

	rec = serve(t, http.MethodGet, "/accounts/:id", "/accounts/7", h.Get, nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"market_code":"binance"`)

	rec = serve(t, http.MethodGet, "/accounts/:id", "/accounts/9", h.Get, nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(t, http.MethodGet, "/accounts/:id", "/accounts/summary", h.Get, nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
