package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/threecommas/internal/store"
)

// AccountsHandler serves the /accounts endpoints.
type AccountsHandler struct {
	store store.Store
}

// NewAccountsHandler creates a new AccountsHandler.
func NewAccountsHandler(s store.Store) *AccountsHandler {
	return &AccountsHandler{store: s}
}

// List handles GET /accounts.
func (h *AccountsHandler) List(c echo.Context) error {
	accounts, err := h.store.ListAccounts(c.Request().Context())
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, emptyIfNil(accounts))
}

// Get handles GET /accounts/:id.
func (h *AccountsHandler) Get(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return notFound(c)
	}
	a, err := h.store.GetAccount(c.Request().Context(), id)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, a)
}
