package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/threecommas/internal/store"
)

// MarketplaceHandler serves the /marketplace endpoints.
type MarketplaceHandler struct {
	store store.Store
}

// NewMarketplaceHandler creates a new MarketplaceHandler.
func NewMarketplaceHandler(s store.Store) *MarketplaceHandler {
	return &MarketplaceHandler{store: s}
}

// Items handles GET /marketplace/items.
func (h *MarketplaceHandler) Items(c echo.Context) error {
	items, err := h.store.ListMarketplaceItems(c.Request().Context(), c.QueryParam("scope"), page(c))
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, emptyIfNil(items))
}

// Signals handles GET /marketplace/:id/signals.
func (h *MarketplaceHandler) Signals(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return notFound(c)
	}
	signals, err := h.store.ListItemSignals(c.Request().Context(), id, page(c))
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, emptyIfNil(signals))
}
