package threecommas

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"
)

// GridBotsService talks to /public/api/ver1/grid_bots.
type GridBotsService struct {
	*Service
}

// Leverage holds the optional leverage settings of a grid bot.
type Leverage struct {
	Type        string // custom, cross or not_specified
	CustomValue *decimal.Decimal
}

func (l Leverage) add(p Params) Params {
	p = addNonZero(p, "leverageType", l.Type)
	return addPtr(p, "leverageCustomValue", l.CustomValue)
}

// AIGridBotSettings configures a grid bot whose levels are chosen by 3Commas.
type AIGridBotSettings struct {
	AccountID     int64 // Create only
	Pair          string
	TotalQuantity decimal.Decimal
	Leverage      Leverage
}

func (a AIGridBotSettings) params(withAccount bool) Params {
	var p Params
	if withAccount {
		p = p.Add("accountId", a.AccountID)
	}
	p = p.Add("pair", a.Pair).Add("totalQuantity", a.TotalQuantity)
	return a.Leverage.add(p)
}

// ManualGridBotSettings configures a grid bot with explicit levels.
type ManualGridBotSettings struct {
	AccountID       int64 // Create only
	Pair            string
	UpperPrice      decimal.Decimal
	LowerPrice      decimal.Decimal
	QuantityPerGrid decimal.Decimal
	GridsQuantity   int
	Leverage        Leverage
	IsEnabled       *bool // Create only
}

func (m ManualGridBotSettings) params(create bool) Params {
	var p Params
	if create {
		p = p.Add("accountId", m.AccountID)
	}
	p = p.
		Add("pair", m.Pair).
		Add("upperPrice", m.UpperPrice).
		Add("lowerPrice", m.LowerPrice).
		Add("quantityPerGrid", m.QuantityPerGrid).
		Add("gridsQuantity", m.GridsQuantity)
	p = m.Leverage.add(p)
	if create {
		p = addPtr(p, "isEnabled", m.IsEnabled)
	}
	return p
}

// CreateAI creates an AI grid bot.
func (s *GridBotsService) CreateAI(ctx context.Context, a AIGridBotSettings) (*GridBot, error) {
	return s.write(ctx, http.MethodPost, "/ai", a.params(true))
}

// CreateManual creates a manual grid bot.
func (s *GridBotsService) CreateManual(ctx context.Context, m ManualGridBotSettings) (*GridBot, error) {
	return s.write(ctx, http.MethodPost, "/manual", m.params(true))
}

// UpdateAI edits an AI grid bot.
func (s *GridBotsService) UpdateAI(ctx context.Context, gridBotID int64, a AIGridBotSettings) (*GridBot, error) {
	return s.write(ctx, http.MethodPatch, idPath(gridBotID, "ai"), a.params(false))
}

// UpdateManual edits a manual grid bot.
func (s *GridBotsService) UpdateManual(
	ctx context.Context,
	gridBotID int64,
	m ManualGridBotSettings,
) (*GridBot, error) {
	return s.write(ctx, http.MethodPatch, idPath(gridBotID, "manual"), m.params(false))
}

// AISettings returns the suggested AI grid settings for a pair on a market.
func (s *GridBotsService) AISettings(ctx context.Context, pair, marketCode string) (map[string]any, error) {
	p := Params{}.Add("pair", pair).Add("marketCode", marketCode)

	var out map[string]any
	if err := s.get(ctx, "/ai_settings", p, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GridBotListOptions filters the grid bot list.
type GridBotListOptions struct {
	AccountIDs    []int64
	AccountTypes  []string
	State         string // enabled or disabled
	SortBy        string // current_profit, bot_id or pair
	SortDirection string // asc or desc
	Limit         int
	Offset        int
}

func (o *GridBotListOptions) params() Params {
	if o == nil {
		return nil
	}
	var p Params
	p = addSlice(p, "accountIds", o.AccountIDs)
	p = addSlice(p, "accountTypes", o.AccountTypes)
	p = addNonZero(p, "state", o.State)
	p = addNonZero(p, "sortBy", o.SortBy)
	p = addNonZero(p, "sortDirection", o.SortDirection)
	p = addNonZero(p, "limit", o.Limit)
	p = addNonZero(p, "offset", o.Offset)
	return p
}

// List returns the user's grid bots.
func (s *GridBotsService) List(ctx context.Context, opts *GridBotListOptions) ([]GridBot, error) {
	var bots []GridBot
	if err := s.get(ctx, "", opts.params(), &bots); err != nil {
		return nil, err
	}
	return bots, nil
}

// MarketOrders returns the orders placed by the grid bot.
func (s *GridBotsService) MarketOrders(ctx context.Context, gridBotID int64) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := s.get(ctx, idPath(gridBotID, "market_orders"), nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Profits returns the realized profits of the grid bot.
func (s *GridBotsService) Profits(ctx context.Context, gridBotID int64) ([]GridBotProfit, error) {
	var profits []GridBotProfit
	if err := s.get(ctx, idPath(gridBotID, "profits"), nil, &profits); err != nil {
		return nil, err
	}
	return profits, nil
}

// Show returns a grid bot.
func (s *GridBotsService) Show(ctx context.Context, gridBotID int64) (*GridBot, error) {
	var gb GridBot
	if err := s.get(ctx, idPath(gridBotID, ""), nil, &gb); err != nil {
		return nil, err
	}
	return &gb, nil
}

// Delete removes the grid bot.
func (s *GridBotsService) Delete(ctx context.Context, gridBotID int64) error {
	return s.send(ctx, http.MethodDelete, idPath(gridBotID, ""), nil, nil)
}

// Disable stops the grid bot.
func (s *GridBotsService) Disable(ctx context.Context, gridBotID int64) (*GridBot, error) {
	return s.write(ctx, http.MethodPost, idPath(gridBotID, "disable"), nil)
}

// Enable starts the grid bot.
func (s *GridBotsService) Enable(ctx context.Context, gridBotID int64) (*GridBot, error) {
	return s.write(ctx, http.MethodPost, idPath(gridBotID, "enable"), nil)
}

// RequiredBalances returns the balances needed to run the grid bot.
func (s *GridBotsService) RequiredBalances(ctx context.Context, gridBotID int64) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := s.get(ctx, idPath(gridBotID, "required_balances"), nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func (s *GridBotsService) write(ctx context.Context, method, path string, body Params) (*GridBot, error) {
	var gb GridBot
	if err := s.send(ctx, method, path, body, &gb); err != nil {
		return nil, err
	}
	return &gb, nil
}
