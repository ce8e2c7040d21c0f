package threecommas

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"
)

// DealsService talks to /public/api/ver1/deals.
type DealsService struct {
	*Service
}

// DealListOptions filters the deal list.
type DealListOptions struct {
	Limit     int // max 1000, server default 50
	Offset    int
	AccountID int64
	BotID     int64
	Scope     string // active, finished, completed, cancelled, failed
	Order     string // created_at or closed_at
}

func (o *DealListOptions) params() Params {
	if o == nil {
		return nil
	}
	var p Params
	p = addNonZero(p, "limit", o.Limit)
	p = addNonZero(p, "offset", o.Offset)
	p = addNonZero(p, "accountId", o.AccountID)
	p = addNonZero(p, "botId", o.BotID)
	p = addNonZero(p, "scope", o.Scope)
	p = addNonZero(p, "order", o.Order)
	return p
}

// List returns the user's deals.
func (s *DealsService) List(ctx context.Context, opts *DealListOptions) ([]Deal, error) {
	var deals []Deal
	if err := s.get(ctx, "", opts.params(), &deals); err != nil {
		return nil, err
	}
	return deals, nil
}

// Show returns a deal with its event log.
func (s *DealsService) Show(ctx context.Context, dealID int64) (*DealDetail, error) {
	var d DealDetail
	if err := s.get(ctx, idPath(dealID, "show"), nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// PanicSell closes the deal at market price.
func (s *DealsService) PanicSell(ctx context.Context, dealID int64) (*Deal, error) {
	return s.action(ctx, dealID, "panic_sell", nil)
}

// Cancel cancels the deal without selling.
func (s *DealsService) Cancel(ctx context.Context, dealID int64) (*Deal, error) {
	return s.action(ctx, dealID, "cancel", nil)
}

// UpdateMaxSafetyOrders changes the safety order limit of a running deal.
//
// Deprecated: use Update with MaxSafetyOrders.
func (s *DealsService) UpdateMaxSafetyOrders(ctx context.Context, dealID int64, maxSafetyOrders int) (*Deal, error) {
	return s.action(ctx, dealID, "update_max_safety_orders",
		Params{}.Add("maxSafetyOrders", maxSafetyOrders))
}

// UpdateTakeProfit changes the take profit of a bought deal.
//
// Deprecated: use Update with TakeProfit.
func (s *DealsService) UpdateTakeProfit(
	ctx context.Context,
	dealID int64,
	percentage decimal.Decimal,
) (*Deal, error) {
	return s.action(ctx, dealID, "update_tp",
		Params{}.Add("newTakeProfitPercentage", percentage))
}

// DealUpdate lists the deal fields that can be changed. Nil fields are left
// untouched.
type DealUpdate struct {
	TakeProfit               *decimal.Decimal
	ProfitCurrency           string // quote_currency or base_currency
	TakeProfitType           string // base or total
	TrailingEnabled          *bool
	TrailingDeviation        *decimal.Decimal
	StopLossPercentage       *decimal.Decimal
	MaxSafetyOrders          *int
	ActiveSafetyOrdersCount  *int
	StopLossTimeoutEnabled   *bool
	StopLossTimeoutInSeconds *int
	TSLEnabled               *bool
	StopLossType             string // stop_loss or stop_loss_and_disable_bot
}

func (u DealUpdate) params() Params {
	var p Params
	p = addPtr(p, "takeProfit", u.TakeProfit)
	p = addNonZero(p, "profitCurrency", u.ProfitCurrency)
	p = addNonZero(p, "takeProfitType", u.TakeProfitType)
	p = addPtr(p, "trailingEnabled", u.TrailingEnabled)
	p = addPtr(p, "trailingDeviation", u.TrailingDeviation)
	p = addPtr(p, "stopLossPercentage", u.StopLossPercentage)
	p = addPtr(p, "maxSafetyOrders", u.MaxSafetyOrders)
	p = addPtr(p, "activeSafetyOrdersCount", u.ActiveSafetyOrdersCount)
	p = addPtr(p, "stopLossTimeoutEnabled", u.StopLossTimeoutEnabled)
	p = addPtr(p, "stopLossTimeoutInSeconds", u.StopLossTimeoutInSeconds)
	p = addPtr(p, "tslEnabled", u.TSLEnabled)
	p = addNonZero(p, "stopLossType", u.StopLossType)
	return p
}

// Update changes the settings of a running deal.
func (s *DealsService) Update(ctx context.Context, dealID int64, u DealUpdate) (*Deal, error) {
	return s.action(ctx, dealID, "update_deal", u.params())
}

// CancelOrder cancels a manual safety order of the deal.
func (s *DealsService) CancelOrder(ctx context.Context, dealID int64, orderID string) (*DealDetail, error) {
	var d DealDetail
	err := s.send(ctx, http.MethodPost, idPath(dealID, "cancel_order"),
		Params{}.Add("orderId", orderID), &d)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// MarketOrders returns the orders placed for the deal.
func (s *DealsService) MarketOrders(ctx context.Context, dealID int64) ([]MarketOrder, error) {
	var orders []MarketOrder
	if err := s.get(ctx, idPath(dealID, "market_orders"), nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// AddFundsRequest describes a manual safety order.
type AddFundsRequest struct {
	Quantity     decimal.Decimal
	IsMarket     bool
	Rate         decimal.Decimal // required for limit orders
	ResponseType string          // empty, deal or market_order
}

// AddFunds places a manual safety order. The raw response is returned since
// its shape depends on ResponseType.
func (s *DealsService) AddFunds(ctx context.Context, dealID int64, r AddFundsRequest) (json.RawMessage, error) {
	p := Params{}.
		Add("quantity", r.Quantity).
		Add("isMarket", r.IsMarket)
	p = addNonZero(p, "responseType", r.ResponseType)
	if !r.IsMarket || !r.Rate.IsZero() {
		p = p.Add("rate", r.Rate)
	}

	var raw json.RawMessage
	if err := s.send(ctx, http.MethodPost, idPath(dealID, "add_funds"), p, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// DataForAddingFunds returns balances and exchange limits relevant to
// AddFunds.
func (s *DealsService) DataForAddingFunds(ctx context.Context, dealID int64) (map[string]any, error) {
	var data map[string]any
	if err := s.get(ctx, idPath(dealID, "data_for_adding_funds"), nil, &data); err != nil {
		return nil, err
	}
	return data, nil
}

func (s *DealsService) action(ctx context.Context, dealID int64, action string, body Params) (*Deal, error) {
	var d Deal
	if err := s.send(ctx, http.MethodPost, idPath(dealID, action), body, &d); err != nil {
		return nil, err
	}
	return &d, nil
}
