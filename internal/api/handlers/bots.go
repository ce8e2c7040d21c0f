package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/threecommas/internal/store"
	"github.com/donaldgifford/threecommas/pkg/threecommas"
)

// BotsHandler serves the /bots endpoints.
type BotsHandler struct {
	store store.Store
}

// NewBotsHandler creates a new BotsHandler.
func NewBotsHandler(s store.Store) *BotsHandler {
	return &BotsHandler{store: s}
}

// List handles GET /bots.
//
// @Summary List bots
// @Tags bots
// @Produce json
// @Param account_id query int false "Account filter"
// @Param scope query string false "enabled or disabled"
// @Param strategy query string false "long or short"
// @Success 200 {array} threecommas.Bot
// @Router /public/api/ver1/bots [get]
func (h *BotsHandler) List(c echo.Context) error {
	bots, err := h.store.ListBots(c.Request().Context(), store.BotQuery{
		AccountID: queryInt64(c, "account_id"),
		Scope:     c.QueryParam("scope"),
		Strategy:  c.QueryParam("strategy"),
		Page:      page(c),
	})
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, emptyIfNil(bots))
}

// Show handles GET /bots/:id/show.
func (h *BotsHandler) Show(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return notFound(c)
	}
	b, err := h.store.GetBot(c.Request().Context(), id)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

// Enable handles POST /bots/:id/enable.
func (h *BotsHandler) Enable(c echo.Context) error {
	return h.setEnabled(c, true)
}

// Disable handles POST /bots/:id/disable.
func (h *BotsHandler) Disable(c echo.Context) error {
	return h.setEnabled(c, false)
}

func (h *BotsHandler) setEnabled(c echo.Context, enabled bool) error {
	id, ok := pathID(c, "id")
	if !ok {
		return notFound(c)
	}
	b, err := h.store.SetBotEnabled(c.Request().Context(), id, enabled)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

// Delete handles POST /bots/:id/delete. Bots with open deals are refused.
func (h *BotsHandler) Delete(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return notFound(c)
	}
	ctx := c.Request().Context()

	b, err := h.store.GetBot(ctx, id)
	if err != nil {
		return storeError(c, err)
	}
	if len(b.ActiveDeals) > 0 {
		return invalid(c, "Bot has active deals")
	}
	if err := h.store.DeleteBot(ctx, id); err != nil {
		return storeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// PairsBlackList handles GET /bots/pairs_black_list.
func (h *BotsHandler) PairsBlackList(c echo.Context) error {
	pairs, err := h.store.PairsBlackList(c.Request().Context())
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, threecommas.PairsBlackList{Pairs: emptyIfNil(pairs)})
}

// UpdatePairsBlackList handles POST /bots/update_pairs_black_list.
func (h *BotsHandler) UpdatePairsBlackList(c echo.Context) error {
	fields, err := readFields(c)
	if err != nil {
		return invalid(c, err.Error())
	}

	var pairs []string
	for _, p := range strings.Split(fields["pairs"], ",") {
		if p = strings.TrimSpace(p); p != "" {
			pairs = append(pairs, p)
		}
	}

	if err := h.store.SetPairsBlackList(c.Request().Context(), pairs); err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, threecommas.PairsBlackList{Pairs: emptyIfNil(pairs)})
}
