package threecommas

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"
)

// BotsService talks to /public/api/ver1/bots.
type BotsService struct {
	*Service
}

// StrategyListOptions filters the available bot strategies.
type StrategyListOptions struct {
	AccountID int64
	Type      string // simple or composite
	Strategy  string // long or short
}

// StrategyList returns the deal start conditions available to bots, keyed by
// strategy name.
func (s *BotsService) StrategyList(ctx context.Context, opts StrategyListOptions) (map[string]json.RawMessage, error) {
	var p Params
	p = addNonZero(p, "accountId", opts.AccountID)
	p = addNonZero(p, "type", opts.Type)
	p = addNonZero(p, "strategy", opts.Strategy)

	var out map[string]json.RawMessage
	if err := s.get(ctx, "/strategy_list", p, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PairsBlackList returns the pairs no bot will trade.
func (s *BotsService) PairsBlackList(ctx context.Context) (*PairsBlackList, error) {
	var bl PairsBlackList
	if err := s.get(ctx, "/pairs_black_list", nil, &bl); err != nil {
		return nil, err
	}
	return &bl, nil
}

// UpdatePairsBlackList replaces the pairs black list. An empty list clears it.
func (s *BotsService) UpdatePairsBlackList(ctx context.Context, pairs []string) error {
	return s.send(ctx, http.MethodPost, "/update_pairs_black_list",
		Params{}.Add("pairs", nonNil(pairs)), nil)
}

// BotSettings is the configuration accepted by Create and Update. Required
// fields are always sent; optional ones only when set.
type BotSettings struct {
	Name                        string
	AccountID                   int64 // Create only
	Pairs                       []string
	BaseOrderVolume             decimal.Decimal
	TakeProfit                  decimal.Decimal
	SafetyOrderVolume           decimal.Decimal
	MartingaleVolumeCoefficient decimal.Decimal
	MartingaleStepCoefficient   decimal.Decimal
	MaxSafetyOrders             int
	ActiveSafetyOrdersCount     int
	SafetyOrderStepPercentage   decimal.Decimal
	TakeProfitType              string // base or total
	StrategyList                []Strategy

	MaxActiveDeals           *int
	BaseOrderVolumeType      string
	SafetyOrderVolumeType    string
	StopLossPercentage       *decimal.Decimal
	Cooldown                 *int
	TrailingEnabled          *bool
	TrailingDeviation        *decimal.Decimal
	BTCPriceLimit            *decimal.Decimal
	Strategy                 string // long or short
	LeverageType             string
	LeverageCustomValue      *decimal.Decimal
	MinPrice                 *decimal.Decimal
	MaxPrice                 *decimal.Decimal
	StopLossTimeoutEnabled   *bool
	StopLossTimeoutInSeconds *int
	MinVolumeBTC24h          *decimal.Decimal
	TSLEnabled               *bool
	DealStartDelaySeconds    *int
	ProfitCurrency           string
	StartOrderType           string
	StopLossType             string
	DisableAfterDealsCount   *int
	AllowedDealsOnSamePair   *int
}

func (b BotSettings) params(withAccount bool) Params {
	p := Params{}.Add("name", b.Name)
	if withAccount {
		p = p.Add("accountId", b.AccountID)
	}
	p = p.
		Add("pairs", nonNil(b.Pairs)).
		Add("baseOrderVolume", b.BaseOrderVolume).
		Add("takeProfit", b.TakeProfit).
		Add("safetyOrderVolume", b.SafetyOrderVolume).
		Add("martingaleVolumeCoefficient", b.MartingaleVolumeCoefficient).
		Add("martingaleStepCoefficient", b.MartingaleStepCoefficient).
		Add("maxSafetyOrders", b.MaxSafetyOrders).
		Add("activeSafetyOrdersCount", b.ActiveSafetyOrdersCount).
		Add("safetyOrderStepPercentage", b.SafetyOrderStepPercentage).
		Add("takeProfitType", b.TakeProfitType).
		Add("strategyList", nonNil(b.StrategyList))

	p = addPtr(p, "maxActiveDeals", b.MaxActiveDeals)
	p = addNonZero(p, "baseOrderVolumeType", b.BaseOrderVolumeType)
	p = addNonZero(p, "safetyOrderVolumeType", b.SafetyOrderVolumeType)
	p = addPtr(p, "stopLossPercentage", b.StopLossPercentage)
	p = addPtr(p, "cooldown", b.Cooldown)
	p = addPtr(p, "trailingEnabled", b.TrailingEnabled)
	p = addPtr(p, "trailingDeviation", b.TrailingDeviation)
	p = addPtr(p, "btcPriceLimit", b.BTCPriceLimit)
	p = addNonZero(p, "strategy", b.Strategy)
	p = addNonZero(p, "leverageType", b.LeverageType)
	p = addPtr(p, "leverageCustomValue", b.LeverageCustomValue)
	p = addPtr(p, "minPrice", b.MinPrice)
	p = addPtr(p, "maxPrice", b.MaxPrice)
	p = addPtr(p, "stopLossTimeoutEnabled", b.StopLossTimeoutEnabled)
	p = addPtr(p, "stopLossTimeoutInSeconds", b.StopLossTimeoutInSeconds)
	p = addPtr(p, "min_volume_btc_24h", b.MinVolumeBTC24h)
	p = addPtr(p, "tslEnabled", b.TSLEnabled)
	p = addPtr(p, "dealStartDelaySeconds", b.DealStartDelaySeconds)
	p = addNonZero(p, "profitCurrency", b.ProfitCurrency)
	p = addNonZero(p, "startOrderType", b.StartOrderType)
	p = addNonZero(p, "stopLossType", b.StopLossType)
	p = addPtr(p, "disableAfterDealsCount", b.DisableAfterDealsCount)
	p = addPtr(p, "allowedDealsOnSamePair", b.AllowedDealsOnSamePair)
	return p
}

// Create creates a bot. A single pair creates a simple bot, several pairs a
// composite one.
func (s *BotsService) Create(ctx context.Context, b BotSettings) (*Bot, error) {
	var bot Bot
	if err := s.send(ctx, http.MethodPost, "/create_bot", b.params(true), &bot); err != nil {
		return nil, err
	}
	return &bot, nil
}

// Update replaces the settings of an existing bot.
func (s *BotsService) Update(ctx context.Context, botID int64, b BotSettings) (*Bot, error) {
	var bot Bot
	if err := s.send(ctx, http.MethodPatch, idPath(botID, "update"), b.params(false), &bot); err != nil {
		return nil, err
	}
	return &bot, nil
}

// BotListOptions filters the bot list.
type BotListOptions struct {
	Limit     int // max 100, server default 50
	Offset    int
	AccountID int64
	Scope     string // enabled or disabled
	Strategy  string // long or short
}

func (o *BotListOptions) params() Params {
	if o == nil {
		return nil
	}
	var p Params
	p = addNonZero(p, "limit", o.Limit)
	p = addNonZero(p, "offset", o.Offset)
	p = addNonZero(p, "accountId", o.AccountID)
	p = addNonZero(p, "scope", o.Scope)
	p = addNonZero(p, "strategy", o.Strategy)
	return p
}

// List returns the user's bots.
func (s *BotsService) List(ctx context.Context, opts *BotListOptions) ([]Bot, error) {
	var bots []Bot
	if err := s.get(ctx, "", opts.params(), &bots); err != nil {
		return nil, err
	}
	return bots, nil
}

// Stats returns profit statistics for one account, one bot, or all of them
// when both ids are zero.
func (s *BotsService) Stats(ctx context.Context, accountID, botID int64) (map[string]any, error) {
	var p Params
	p = addNonZero(p, "accountId", accountID)
	p = addNonZero(p, "botId", botID)

	var stats map[string]any
	if err := s.get(ctx, "/stats", p, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// Disable stops the bot from opening new deals.
func (s *BotsService) Disable(ctx context.Context, botID int64) (*Bot, error) {
	return s.action(ctx, botID, "disable", nil)
}

// Enable lets the bot open new deals.
func (s *BotsService) Enable(ctx context.Context, botID int64) (*Bot, error) {
	return s.action(ctx, botID, "enable", nil)
}

// StartDealOptions tunes StartNewDeal.
type StartDealOptions struct {
	Pair                string // may be omitted for simple bots
	SkipSignalChecks    bool
	SkipOpenDealsChecks bool
}

// StartNewDeal asks the bot to open a deal as soon as possible.
func (s *BotsService) StartNewDeal(ctx context.Context, botID int64, opts StartDealOptions) (*Deal, error) {
	var p Params
	p = addNonZero(p, "pair", opts.Pair)
	p = addNonZero(p, "skipSignalChecks", opts.SkipSignalChecks)
	p = addNonZero(p, "skipOpenDealsChecks", opts.SkipOpenDealsChecks)

	var d Deal
	if err := s.send(ctx, http.MethodPost, idPath(botID, "start_new_deal"), p, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// Delete removes the bot.
func (s *BotsService) Delete(ctx context.Context, botID int64) error {
	return s.send(ctx, http.MethodPost, idPath(botID, "delete"), nil, nil)
}

// PanicSellAllDeals panic sells every active deal of the bot.
func (s *BotsService) PanicSellAllDeals(ctx context.Context, botID int64) (*Bot, error) {
	return s.action(ctx, botID, "panic_sell_all_deals", nil)
}

// CancelAllDeals cancels every active deal of the bot.
func (s *BotsService) CancelAllDeals(ctx context.Context, botID int64) (*Bot, error) {
	return s.action(ctx, botID, "cancel_all_deals", nil)
}

// Show returns a bot. When includeEvents is set the bot events are included.
func (s *BotsService) Show(ctx context.Context, botID int64, includeEvents bool) (*Bot, error) {
	var p Params
	p = addNonZero(p, "includeEvents", includeEvents)

	var bot Bot
	if err := s.get(ctx, idPath(botID, "show"), p, &bot); err != nil {
		return nil, err
	}
	return &bot, nil
}

func (s *BotsService) action(ctx context.Context, botID int64, action string, body Params) (*Bot, error) {
	var bot Bot
	if err := s.send(ctx, http.MethodPost, idPath(botID, action), body, &bot); err != nil {
		return nil, err
	}
	return &bot, nil
}
