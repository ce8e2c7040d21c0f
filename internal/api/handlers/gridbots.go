package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/threecommas/internal/store"
)

// GridBotsHandler serves the /grid_bots endpoints.
type GridBotsHandler struct {
	store store.Store
}

// NewGridBotsHandler creates a new GridBotsHandler.
func NewGridBotsHandler(s store.Store) *GridBotsHandler {
	return &GridBotsHandler{store: s}
}

// List handles GET /grid_bots. account_ids is a comma separated list.
func (h *GridBotsHandler) List(c echo.Context) error {
	var ids []int64
	for _, raw := range strings.Split(c.QueryParam("account_ids"), ",") {
		if id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64); err == nil {
			ids = append(ids, id)
		}
	}

	bots, err := h.store.ListGridBots(c.Request().Context(), store.GridBotQuery{
		AccountIDs: ids,
		State:      c.QueryParam("state"),
		Page:       page(c),
	})
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, emptyIfNil(bots))
}

// Show handles GET /grid_bots/:id.
func (h *GridBotsHandler) Show(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return notFound(c)
	}
	g, err := h.store.GetGridBot(c.Request().Context(), id)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, g)
}

// Enable handles POST /grid_bots/:id/enable.
func (h *GridBotsHandler) Enable(c echo.Context) error {
	return h.setEnabled(c, true)
}

// Disable handles POST /grid_bots/:id/disable.
func (h *GridBotsHandler) Disable(c echo.Context) error {
	return h.setEnabled(c, false)
}

func (h *GridBotsHandler) setEnabled(c echo.Context, enabled bool) error {
	id, ok := pathID(c, "id")
	if !ok {
		return notFound(c)
	}
	g, err := h.store.SetGridBotEnabled(c.Request().Context(), id, enabled)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, g)
}

// Delete handles DELETE /grid_bots/:id.
func (h *GridBotsHandler) Delete(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return notFound(c)
	}
	if err := h.store.DeleteGridBot(c.Request().Context(), id); err != nil {
		return storeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
