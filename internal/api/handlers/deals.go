package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/threecommas/internal/store"
	"github.com/donaldgifford/threecommas/pkg/threecommas"
)

// DealsHandler serves the /deals endpoints.
type DealsHandler struct {
	store store.Store
}

// NewDealsHandler creates a new DealsHandler.
func NewDealsHandler(s store.Store) *DealsHandler {
	return &DealsHandler{store: s}
}

// List handles GET /deals.
//
// @Summary List deals
// @Tags deals
// @Produce json
// @Param account_id query int false "Account filter"
// @Param bot_id query int false "Bot filter"
// @Param scope query string false "active, finished, completed, cancelled or failed"
// @Param order query string false "created_at or closed_at"
// @Param limit query int false "Page size (default 50, max 1000)"
// @Param offset query int false "Page offset"
// @Success 200 {array} threecommas.Deal
// @Router /public/api/ver1/deals [get]
func (h *DealsHandler) List(c echo.Context) error {
	deals, err := h.store.ListDeals(c.Request().Context(), store.DealQuery{
		AccountID: queryInt64(c, "account_id"),
		BotID:     queryInt64(c, "bot_id"),
		Scope:     c.QueryParam("scope"),
		Order:     c.QueryParam("order"),
		Page:      page(c),
	})
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, emptyIfNil(deals))
}

// Show handles GET /deals/:id/show.
//
// @Summary Show a deal with its events
// @Tags deals
// @Produce json
// @Param id path int true "Deal ID"
// @Success 200 {object} threecommas.DealDetail
// @Failure 404 {object} threecommas.ErrorBody
// @Router /public/api/ver1/deals/{id}/show [get]
func (h *DealsHandler) Show(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return notFound(c)
	}
	d, err := h.store.GetDeal(c.Request().Context(), id)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

// Cancel handles POST /deals/:id/cancel.
func (h *DealsHandler) Cancel(c echo.Context) error {
	return h.close(c, store.StatusCancelled, func(d *threecommas.DealDetail) bool { return d.Cancellable })
}

// PanicSell handles POST /deals/:id/panic_sell.
func (h *DealsHandler) PanicSell(c echo.Context) error {
	return h.close(c, store.StatusPanicSold, func(d *threecommas.DealDetail) bool { return d.PanicSellable })
}

func (h *DealsHandler) close(
	c echo.Context,
	status string,
	allowed func(*threecommas.DealDetail) bool,
) error {
	id, ok := pathID(c, "id")
	if !ok {
		return notFound(c)
	}
	ctx := c.Request().Context()

	d, err := h.store.GetDeal(ctx, id)
	if err != nil {
		return storeError(c, err)
	}
	if d.Finished || !allowed(d) {
		return invalid(c, "Deal is already closed")
	}

	closed, err := h.store.SetDealStatus(ctx, id, status)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, closed)
}

// Update handles POST /deals/:id/update_deal. Unknown fields are ignored.
//
// @Summary Update a deal
// @Tags deals
// @Accept mpfd
// @Produce json
// @Param id path int true "Deal ID"
// @Success 200 {object} threecommas.Deal
// @Failure 404 {object} threecommas.ErrorBody
// @Failure 422 {object} threecommas.ErrorBody
// @Router /public/api/ver1/deals/{id}/update_deal [post]
func (h *DealsHandler) Update(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return notFound(c)
	}
	fields, err := readFields(c)
	if err != nil {
		return invalid(c, err.Error())
	}
	d, err := h.store.UpdateDeal(c.Request().Context(), id, fields)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

// UpdateMaxSafetyOrders handles POST /deals/:id/update_max_safety_orders.
func (h *DealsHandler) UpdateMaxSafetyOrders(c echo.Context) error {
	return h.updateOne(c, "max_safety_orders")
}

// UpdateTakeProfit handles POST /deals/:id/update_tp.
func (h *DealsHandler) UpdateTakeProfit(c echo.Context) error {
	return h.updateOne(c, "new_take_profit_percentage")
}

// updateOne applies a single required field through the store.
func (h *DealsHandler) updateOne(c echo.Context, field string) error {
	id, ok := pathID(c, "id")
	if !ok {
		return notFound(c)
	}
	fields, err := readFields(c)
	if err != nil {
		return invalid(c, err.Error())
	}
	v, present := fields[field]
	if !present || v == "" {
		return invalid(c, field+" is missing")
	}
	d, err := h.store.UpdateDeal(c.Request().Context(), id, map[string]string{field: v})
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

// MarketOrders handles GET /deals/:id/market_orders.
//
// @Summary List the orders of a deal
// @Tags deals
// @Produce json
// @Param id path int true "Deal ID"
// @Success 200 {array} threecommas.MarketOrder
// @Failure 404 {object} threecommas.ErrorBody
// @Router /public/api/ver1/deals/{id}/market_orders [get]
func (h *DealsHandler) MarketOrders(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return notFound(c)
	}
	orders, err := h.store.ListMarketOrders(c.Request().Context(), id)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, emptyIfNil(orders))
}
