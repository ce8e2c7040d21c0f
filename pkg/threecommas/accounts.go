package threecommas

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// AccountsService talks to /public/api/ver1/accounts.
type AccountsService struct {
	*Service
}

// TransferRequest moves coins between two connected accounts.
type TransferRequest struct {
	Currency      string // e.g. USDT
	Amount        decimal.Decimal
	ToAccountID   int64
	FromAccountID int64
}

// Transfer moves coins between accounts.
func (s *AccountsService) Transfer(ctx context.Context, r TransferRequest) (json.RawMessage, error) {
	p := Params{}.
		Add("currency", r.Currency).
		Add("amount", r.Amount).
		Add("toAccountId", r.ToAccountID).
		Add("fromAccountId", r.FromAccountID)
	return s.raw(ctx, http.MethodPost, "/transfer", p)
}

// TransferHistoryOptions pages the transfer history.
type TransferHistoryOptions struct {
	AccountID int64
	Currency  string
	Page      int
	PerPage   int
}

// TransferHistory returns past transfers of one currency on one account.
func (s *AccountsService) TransferHistory(ctx context.Context, opts TransferHistoryOptions) (json.RawMessage, error) {
	p := Params{}.
		Add("accountId", opts.AccountID).
		Add("currency", opts.Currency)
	p = addNonZero(p, "page", opts.Page)
	p = addNonZero(p, "perPage", opts.PerPage)
	return s.raw(ctx, http.MethodGet, "/transfer_history", p)
}

// TransferData returns the accounts and currencies available for transfers.
func (s *AccountsService) TransferData(ctx context.Context) (json.RawMessage, error) {
	return s.raw(ctx, http.MethodGet, "/transfer_data", nil)
}

// ExchangeAccount holds the credentials used to connect an exchange or
// wallet. Which fields are required depends on the exchange type.
type ExchangeAccount struct {
	Type           string // market code, e.g. binance
	Name           string
	APIKey         string
	Secret         string
	CustomerID     string
	Passphrase     string
	HowConnect     string          // mnemonic_phrase or keystore
	Keystore       json.RawMessage // sent as its JSON text
	WalletPassword string
	MnemonicPhrase string
}

func (a ExchangeAccount) params() Params {
	var p Params
	p = addNonZero(p, "apiKey", a.APIKey)
	p = addNonZero(p, "secret", a.Secret)
	p = addNonZero(p, "customerId", a.CustomerID)
	p = addNonZero(p, "passphrase", a.Passphrase)
	p = addNonZero(p, "howConnect", a.HowConnect)
	if len(a.Keystore) > 0 {
		p = p.Add("keystore", string(a.Keystore))
	}
	p = addNonZero(p, "walletPassword", a.WalletPassword)
	p = addNonZero(p, "mnemonicPhrase", a.MnemonicPhrase)
	return p
}

// AddExchangeAccount connects a new exchange account.
func (s *AccountsService) AddExchangeAccount(ctx context.Context, a ExchangeAccount) (*Account, error) {
	p := Params{}.Add("type", a.Type).Add("name", a.Name)
	return s.account(ctx, http.MethodPost, "/new", append(p, a.params()...))
}

// EditExchangeAccount updates the name or credentials of a connected account.
// Type is ignored.
func (s *AccountsService) EditExchangeAccount(
	ctx context.Context,
	accountID int64,
	a ExchangeAccount,
) (*Account, error) {
	p := Params{}.Add("accountId", accountID)
	p = addNonZero(p, "name", a.Name)
	return s.account(ctx, http.MethodPost, "/update", append(p, a.params()...))
}

// List returns the connected exchanges and wallets.
func (s *AccountsService) List(ctx context.Context) ([]Account, error) {
	var accounts []Account
	if err := s.get(ctx, "", nil, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// MarketList returns the supported markets.
func (s *AccountsService) MarketList(ctx context.Context) (json.RawMessage, error) {
	return s.raw(ctx, http.MethodGet, "/market_list", nil)
}

// MarketOptions selects a market by display type or code.
type MarketOptions struct {
	PrettyDisplayType string
	MarketCode        string
}

func (o MarketOptions) params() Params {
	var p Params
	p = addNonZero(p, "prettyDisplayType", o.PrettyDisplayType)
	return addNonZero(p, "marketCode", o.MarketCode)
}

// MarketPairs returns every pair traded on a market.
func (s *AccountsService) MarketPairs(ctx context.Context, opts MarketOptions) ([]string, error) {
	var pairs []string
	if err := s.get(ctx, "/market_pairs", opts.params(), &pairs); err != nil {
		return nil, err
	}
	return pairs, nil
}

// CurrencyRates returns rates and order limits for a pair on a market.
func (s *AccountsService) CurrencyRates(
	ctx context.Context,
	pair string,
	opts MarketOptions,
) (map[string]any, error) {
	p := append(opts.params(), Param{Key: "pair", Value: pair})

	var rates map[string]any
	if err := s.get(ctx, "/currency_rates", p, &rates); err != nil {
		return nil, err
	}
	return rates, nil
}

// ActiveTradingEntities returns the bots and trades running on the account.
func (s *AccountsService) ActiveTradingEntities(ctx context.Context, accountID int64) (json.RawMessage, error) {
	return s.raw(ctx, http.MethodGet, idPath(accountID, "active_trading_entities"), nil)
}

// SellAllToUSD converts every balance on the account to USD.
func (s *AccountsService) SellAllToUSD(ctx context.Context, accountID int64) error {
	return s.send(ctx, http.MethodPost, idPath(accountID, "sell_all_to_usd"), nil, nil)
}

// SellAllToBTC converts every balance on the account to BTC.
func (s *AccountsService) SellAllToBTC(ctx context.Context, accountID int64) error {
	return s.send(ctx, http.MethodPost, idPath(accountID, "sell_all_to_btc"), nil, nil)
}

// BalanceChartData returns the balance history between from and to. A zero
// to means now.
func (s *AccountsService) BalanceChartData(
	ctx context.Context,
	accountID int64,
	from, to time.Time,
) (json.RawMessage, error) {
	p := Params{}.Add("dateFrom", from)
	if !to.IsZero() {
		p = p.Add("dateTo", to)
	}
	return s.raw(ctx, http.MethodGet, idPath(accountID, "balance_chart_data"), p)
}

// LoadBalances refreshes the balances of the account from the exchange.
func (s *AccountsService) LoadBalances(ctx context.Context, accountID int64) (*Account, error) {
	return s.account(ctx, http.MethodPost, idPath(accountID, "load_balances"), nil)
}

// Rename changes the display name of the account.
func (s *AccountsService) Rename(ctx context.Context, accountID int64, name string) (*Account, error) {
	return s.account(ctx, http.MethodPost, idPath(accountID, "rename"), Params{}.Add("name", name))
}

// PieChartData returns the balances of the account in pie chart form.
func (s *AccountsService) PieChartData(ctx context.Context, accountID int64) (json.RawMessage, error) {
	return s.raw(ctx, http.MethodPost, idPath(accountID, "pie_chart_data"), nil)
}

// TableData returns the balances of the account in table form.
func (s *AccountsService) TableData(ctx context.Context, accountID int64) (json.RawMessage, error) {
	return s.raw(ctx, http.MethodPost, idPath(accountID, "account_table_data"), nil)
}

// Remove disconnects the account.
func (s *AccountsService) Remove(ctx context.Context, accountID int64) error {
	return s.send(ctx, http.MethodPost, idPath(accountID, "remove"), nil, nil)
}

// LeverageData returns the leverage settings of the account for a pair.
func (s *AccountsService) LeverageData(ctx context.Context, accountID int64, pair string) (json.RawMessage, error) {
	return s.raw(ctx, http.MethodGet, idPath(accountID, "leverage_data"), Params{}.Add("pair", pair))
}

// Get returns a single account.
func (s *AccountsService) Get(ctx context.Context, accountID int64) (*Account, error) {
	var a Account
	if err := s.get(ctx, idPath(accountID, ""), nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// Summary returns the totals over every connected account.
func (s *AccountsService) Summary(ctx context.Context) (*Account, error) {
	var a Account
	if err := s.get(ctx, "/summary", nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *AccountsService) account(ctx context.Context, method, path string, body Params) (*Account, error) {
	var a Account
	if err := s.send(ctx, method, path, body, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// raw sends query params for GET and a body for everything else.
func (s *AccountsService) raw(ctx context.Context, method, path string, p Params) (json.RawMessage, error) {
	var out json.RawMessage
	var err error
	if method == http.MethodGet {
		err = s.get(ctx, path, p, &out)
	} else {
		err = s.send(ctx, method, path, p, &out)
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}
