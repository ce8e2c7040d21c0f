package threecommas

import (
	"time"

	"github.com/shopspring/decimal"
)

// Deal is a single DCA deal opened by a bot.
type Deal struct {
	ID                             int64           `json:"id"`
	Type                           string          `json:"type"`
	BotID                          int64           `json:"bot_id"`
	MaxSafetyOrders                int             `json:"max_safety_orders"`
	DealHasError                   bool            `json:"deal_has_error"`
	FromCurrencyID                 int64           `json:"from_currency_id"`
	ToCurrencyID                   int64           `json:"to_currency_id"`
	AccountID                      int64           `json:"account_id"`
	ActiveSafetyOrdersCount        int             `json:"active_safety_orders_count"`
	CreatedAt                      *time.Time      `json:"created_at"`
	UpdatedAt                      *time.Time      `json:"updated_at"`
	ClosedAt                       *time.Time      `json:"closed_at"`
	Finished                       bool            `json:"finished?"`
	CurrentActiveSafetyOrdersCount int             `json:"current_active_safety_orders_count"`
	CurrentActiveSafetyOrders      int             `json:"current_active_safety_orders"`
	CompletedSafetyOrdersCount     int             `json:"completed_safety_orders_count"`
	CompletedManualSafetyOrders    int             `json:"completed_manual_safety_orders_count"`
	Cancellable                    bool            `json:"cancellable?"`
	PanicSellable                  bool            `json:"panic_sellable?"`
	TrailingEnabled                bool            `json:"trailing_enabled"`
	TSLEnabled                     bool            `json:"tsl_enabled"`
	StopLossTimeoutEnabled         bool            `json:"stop_loss_timeout_enabled"`
	StopLossTimeoutInSeconds       int             `json:"stop_loss_timeout_in_seconds"`
	ActiveManualSafetyOrders       int             `json:"active_manual_safety_orders"`
	Pair                           string          `json:"pair"`
	Status                         string          `json:"status"`
	TakeProfit                     decimal.Decimal `json:"take_profit"`
	BaseOrderVolume                decimal.Decimal `json:"base_order_volume"`
	SafetyOrderVolume              decimal.Decimal `json:"safety_order_volume"`
	SafetyOrderStepPercentage      decimal.Decimal `json:"safety_order_step_percentage"`
	BoughtAmount                   decimal.Decimal `json:"bought_amount"`
	BoughtVolume                   decimal.Decimal `json:"bought_volume"`
	BoughtAveragePrice             decimal.Decimal `json:"bought_average_price"`
	SoldAmount                     decimal.Decimal `json:"sold_amount"`
	SoldVolume                     decimal.Decimal `json:"sold_volume"`
	SoldAveragePrice               decimal.Decimal `json:"sold_average_price"`
	TakeProfitType                 string          `json:"take_profit_type"`
	FinalProfit                    decimal.Decimal `json:"final_profit"`
	MartingaleCoefficient          decimal.Decimal `json:"martingale_coefficient"`
	MartingaleVolumeCoefficient    decimal.Decimal `json:"martingale_volume_coefficient"`
	MartingaleStepCoefficient      decimal.Decimal `json:"martingale_step_coefficient"`
	StopLossPercentage             decimal.Decimal `json:"stop_loss_percentage"`
	ErrorMessage                   string          `json:"error_message"`
	ProfitCurrency                 string          `json:"profit_currency"`
	StopLossType                   string          `json:"stop_loss_type"`
	SafetyOrderVolumeType          string          `json:"safety_order_volume_type"`
	BaseOrderVolumeType            string          `json:"base_order_volume_type"`
	FromCurrency                   string          `json:"from_currency"`
	ToCurrency                     string          `json:"to_currency"`
	CurrentPrice                   decimal.Decimal `json:"current_price"`
	TakeProfitPrice                decimal.Decimal `json:"take_profit_price"`
	StopLossPrice                  decimal.Decimal `json:"stop_loss_price"`
	FinalProfitPercentage          decimal.Decimal `json:"final_profit_percentage"`
	ActualProfitPercentage         decimal.Decimal `json:"actual_profit_percentage"`
	BotName                        string          `json:"bot_name"`
	AccountName                    string          `json:"account_name"`
	UsdFinalProfit                 decimal.Decimal `json:"usd_final_profit"`
	ActualProfit                   decimal.Decimal `json:"actual_profit"`
	ActualUsdProfit                decimal.Decimal `json:"actual_usd_profit"`
	FailedMessage                  string          `json:"failed_message"`
	ReservedBaseCoin               decimal.Decimal `json:"reserved_base_coin"`
	ReservedSecondCoin             decimal.Decimal `json:"reserved_second_coin"`
	TrailingDeviation              decimal.Decimal `json:"trailing_deviation"`
	TrailingMaxPrice               decimal.Decimal `json:"trailing_max_price"`
	TSLMaxPrice                    decimal.Decimal `json:"tsl_max_price"`
	Strategy                       string          `json:"strategy"`
}

// BotEvent is one entry of a deal's event log.
type BotEvent struct {
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// DealDetail is a deal together with its event log.
type DealDetail struct {
	Deal
	BotEvents []BotEvent `json:"bot_events"`
}

// MarketOrder is a buy or sell order placed for a deal.
type MarketOrder struct {
	OrderID           string          `json:"order_id"`
	OrderType         string          `json:"order_type"`
	DealOrderType     string          `json:"deal_order_type"`
	Cancellable       bool            `json:"cancellable"`
	StatusString      string          `json:"status_string"`
	CreatedAt         *time.Time      `json:"created_at"`
	UpdatedAt         *time.Time      `json:"updated_at"`
	Quantity          decimal.Decimal `json:"quantity"`
	QuantityRemaining decimal.Decimal `json:"quantity_remaining"`
	Total             decimal.Decimal `json:"total"`
	Rate              decimal.Decimal `json:"rate"`
	AveragePrice      decimal.Decimal `json:"average_price"`
}

// Bot is a DCA bot configuration and its live counters.
type Bot struct {
	ID                          int64           `json:"id"`
	AccountID                   int64           `json:"account_id"`
	IsEnabled                   bool            `json:"is_enabled"`
	MaxSafetyOrders             int             `json:"max_safety_orders"`
	ActiveSafetyOrdersCount     int             `json:"active_safety_orders_count"`
	Pairs                       []string        `json:"pairs"`
	StrategyList                []Strategy      `json:"strategy_list"`
	MaxActiveDeals              int             `json:"max_active_deals"`
	ActiveDealsCount            int             `json:"active_deals_count"`
	Deletable                   bool            `json:"deletable?"`
	CreatedAt                   *time.Time      `json:"created_at"`
	UpdatedAt                   *time.Time      `json:"updated_at"`
	TrailingEnabled             bool            `json:"trailing_enabled"`
	TSLEnabled                  bool            `json:"tsl_enabled"`
	DealStartDelaySeconds       int             `json:"deal_start_delay_seconds"`
	StopLossTimeoutEnabled      bool            `json:"stop_loss_timeout_enabled"`
	StopLossTimeoutInSeconds    int             `json:"stop_loss_timeout_in_seconds"`
	DisableAfterDealsCount      int             `json:"disable_after_deals_count"`
	DealsCounter                int             `json:"deals_counter"`
	AllowedDealsOnSamePair      int             `json:"allowed_deals_on_same_pair"`
	EasyFormSupported           bool            `json:"easy_form_supported"`
	Name                        string          `json:"name"`
	TakeProfit                  decimal.Decimal `json:"take_profit"`
	BaseOrderVolume             decimal.Decimal `json:"base_order_volume"`
	SafetyOrderVolume           decimal.Decimal `json:"safety_order_volume"`
	SafetyOrderStepPercentage   decimal.Decimal `json:"safety_order_step_percentage"`
	TakeProfitType              string          `json:"take_profit_type"`
	Type                        string          `json:"type"`
	MartingaleVolumeCoefficient decimal.Decimal `json:"martingale_volume_coefficient"`
	MartingaleStepCoefficient   decimal.Decimal `json:"martingale_step_coefficient"`
	StopLossPercentage          decimal.Decimal `json:"stop_loss_percentage"`
	Cooldown                    decimal.Decimal `json:"cooldown"`
	Strategy                    string          `json:"strategy"`
	MinVolumeBTC24h             decimal.Decimal `json:"min_volume_btc_24h"`
	ProfitCurrency              string          `json:"profit_currency"`
	MinPrice                    decimal.Decimal `json:"min_price"`
	MaxPrice                    decimal.Decimal `json:"max_price"`
	StopLossType                string          `json:"stop_loss_type"`
	SafetyOrderVolumeType       string          `json:"safety_order_volume_type"`
	BaseOrderVolumeType         string          `json:"base_order_volume_type"`
	AccountName                 string          `json:"account_name"`
	TrailingDeviation           decimal.Decimal `json:"trailing_deviation"`
	FinishedDealsProfitUSD      decimal.Decimal `json:"finished_deals_profit_usd"`
	FinishedDealsCount          decimal.Decimal `json:"finished_deals_count"`
	LeverageType                string          `json:"leverage_type"`
	LeverageCustomValue         decimal.Decimal `json:"leverage_custom_value"`
	StartOrderType              string          `json:"start_order_type"`
	ActiveDeals                 []Deal          `json:"active_deals,omitempty"`
}

// Strategy is one deal start condition of a bot, e.g. {"strategy":"nonstop"}.
type Strategy struct {
	Strategy string         `json:"strategy"`
	Options  map[string]any `json:"options,omitempty"`
}

// PairsBlackList is the list of pairs bots never trade.
type PairsBlackList struct {
	Pairs []string `json:"pairs"`
}

// Account is a connected exchange account.
type Account struct {
	ID                      int64           `json:"id"`
	AutoBalancePeriod       int             `json:"auto_balance_period"`
	AutoBalancePortfolioID  int64           `json:"auto_balance_portfolio_id"`
	AutobalanceEnabled      bool            `json:"autobalance_enabled"`
	IsLocked                bool            `json:"is_locked"`
	SmartTradingSupported   bool            `json:"smart_trading_supported"`
	AvailableForTrading     bool            `json:"available_for_trading"`
	StatsSupported          bool            `json:"stats_supported"`
	TradingSupported        bool            `json:"trading_supported"`
	MarketBuySupported      bool            `json:"market_buy_supported"`
	MarketSellSupported     bool            `json:"market_sell_supported"`
	ConditionalBuySupported bool            `json:"conditional_buy_supported"`
	BotsAllowed             bool            `json:"bots_allowed"`
	BotsTTPAllowed          bool            `json:"bots_ttp_allowed"`
	BotsTSLAllowed          bool            `json:"bots_tsl_allowed"`
	GordonBotsAvailable     bool            `json:"gordon_bots_available"`
	MultiBotsAllowed        bool            `json:"multi_bots_allowed"`
	CreatedAt               *time.Time      `json:"created_at"`
	UpdatedAt               *time.Time      `json:"updated_at"`
	LastAutoBalance         *time.Time      `json:"last_auto_balance"`
	FastConvertAvailable    bool            `json:"fast_convert_available"`
	GridBotsAllowed         bool            `json:"grid_bots_allowed"`
	APIKey                  string          `json:"api_key"`
	Name                    string          `json:"name"`
	AutoBalanceError        string          `json:"auto_balance_error"`
	LockReason              string          `json:"lock_reason"`
	BTCAmount               decimal.Decimal `json:"btc_amount"`
	USDAmount               decimal.Decimal `json:"usd_amount"`
	DayProfitBTC            decimal.Decimal `json:"day_profit_btc"`
	DayProfitUSD            decimal.Decimal `json:"day_profit_usd"`
	DayProfitBTCPercentage  decimal.Decimal `json:"day_profit_btc_percentage"`
	DayProfitUSDPercentage  decimal.Decimal `json:"day_profit_usd_percentage"`
	BTCProfit               decimal.Decimal `json:"btc_profit"`
	USDProfit               decimal.Decimal `json:"usd_profit"`
	USDProfitPercentage     decimal.Decimal `json:"usd_profit_percentage"`
	BTCProfitPercentage     decimal.Decimal `json:"btc_profit_percentage"`
	TotalBTCProfit          decimal.Decimal `json:"total_btc_profit"`
	TotalUSDProfit          decimal.Decimal `json:"total_usd_profit"`
	PrettyDisplayType       string          `json:"pretty_display_type"`
	ExchangeName            string          `json:"exchange_name"`
	MarketCode              string          `json:"market_code"`
	Address                 string          `json:"address"`
}

// GridBot is a grid trading bot.
type GridBot struct {
	ID                      int64           `json:"id"`
	AccountID               int64           `json:"account_id"`
	AccountName             string          `json:"account_name"`
	IsEnabled               bool            `json:"is_enabled"`
	GridsQuantity           decimal.Decimal `json:"grids_quantity"`
	CreatedAt               *time.Time      `json:"created_at"`
	UpdatedAt               *time.Time      `json:"updated_at"`
	LowerPrice              decimal.Decimal `json:"lower_price"`
	UpperPrice              decimal.Decimal `json:"upper_price"`
	QuantityPerGrid         decimal.Decimal `json:"quantity_per_grid"`
	LeverageType            string          `json:"leverage_type"`
	LeverageCustomValue     decimal.Decimal `json:"leverage_custom_value"`
	Name                    string          `json:"name"`
	Pair                    string          `json:"pair"`
	StartPrice              decimal.Decimal `json:"start_price"`
	GridPriceStep           decimal.Decimal `json:"grid_price_step"`
	CurrentProfit           decimal.Decimal `json:"current_profit"`
	CurrentProfitUSD        decimal.Decimal `json:"current_profit_usd"`
	BoughtVolume            decimal.Decimal `json:"bought_volume"`
	SoldVolume              decimal.Decimal `json:"sold_volume"`
	ProfitPercentage        decimal.Decimal `json:"profit_percentage"`
	CurrentPrice            decimal.Decimal `json:"current_price"`
	InvestmentBaseCurrency  decimal.Decimal `json:"investment_base_currency"`
	InvestmentQuoteCurrency decimal.Decimal `json:"investment_quote_currency"`
	GridLines               []GridLine      `json:"grid_lines"`
}

// GridLine is one price level of a grid bot.
type GridLine struct {
	Price decimal.Decimal `json:"price"`
	Side  string          `json:"side"`
}

// GridBotProfit is a realized profit entry of a grid bot.
type GridBotProfit struct {
	GridLineID int64           `json:"grid_line_id"`
	Profit     decimal.Decimal `json:"profit"`
	USDProfit  decimal.Decimal `json:"usd_profit"`
	CreatedAt  *time.Time      `json:"created_at"`
}

// MarketplaceItem is a signal provider listed on the marketplace.
type MarketplaceItem struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	PreviewURL   string `json:"preview_url"`
	StrategyType string `json:"strategy_type"`
	StrategyKey  string `json:"strategy_key"`
	CardText1    string `json:"card_text_1"`
	CardText2    string `json:"card_text_2"`
	CardText3    string `json:"card_text_3"`
	CardText4    string `json:"card_text_4"`
}

// MarketplaceItemSignal is a signal emitted by a marketplace item.
type MarketplaceItemSignal struct {
	ID         int64           `json:"id"`
	Pair       string          `json:"pair"`
	Exchange   string          `json:"exchange"`
	SignalType string          `json:"signal_type"`
	Timestamp  int64           `json:"timestamp"`
	Min        decimal.Decimal `json:"min"`
	Max        decimal.Decimal `json:"max"`
}
