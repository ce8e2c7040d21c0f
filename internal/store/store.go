// Package store defines the datastore abstraction behind the mock 3Commas API.
// Handlers depend on the Store interface, never on concrete implementations.
// This enables mock-based testing of the HTTP layer.
package store

import (
	"context"
	"errors"

	"github.com/donaldgifford/threecommas/pkg/threecommas"
)

// ErrNotFound is returned when the requested record does not exist.
var ErrNotFound = errors.New("record not found")

// DealQuery defines optional filters for deal listings.
type DealQuery struct {
	AccountID int64
	BotID     int64
	Scope     string // active, finished, completed, cancelled, failed
	Order     string // created_at or closed_at
	Page      Page
}

// BotQuery defines optional filters for bot listings.
type BotQuery struct {
	AccountID int64
	Scope     string // enabled or disabled
	Strategy  string // long or short
	Page      Page
}

// GridBotQuery defines optional filters for grid bot listings.
type GridBotQuery struct {
	AccountIDs []int64
	State      string // enabled or disabled
	Page       Page
}

// Store defines all data access operations of the mock API.
type Store interface {
	// Deals
	ListDeals(ctx context.Context, q DealQuery) ([]threecommas.Deal, error)
	GetDeal(ctx context.Context, id int64) (*threecommas.DealDetail, error)
	SetDealStatus(ctx context.Context, id int64, status string) (*threecommas.Deal, error)
	UpdateDeal(ctx context.Context, id int64, fields map[string]string) (*threecommas.Deal, error)
	ListMarketOrders(ctx context.Context, dealID int64) ([]threecommas.MarketOrder, error)

	// Bots
	ListBots(ctx context.Context, q BotQuery) ([]threecommas.Bot, error)
	GetBot(ctx context.Context, id int64) (*threecommas.Bot, error)
	SetBotEnabled(ctx context.Context, id int64, enabled bool) (*threecommas.Bot, error)
	DeleteBot(ctx context.Context, id int64) error
	PairsBlackList(ctx context.Context) ([]string, error)
	SetPairsBlackList(ctx context.Context, pairs []string) error

	// Accounts
	ListAccounts(ctx context.Context) ([]threecommas.Account, error)
	GetAccount(ctx context.Context, id int64) (*threecommas.Account, error)

	// GridBots
	ListGridBots(ctx context.Context, q GridBotQuery) ([]threecommas.GridBot, error)
	GetGridBot(ctx context.Context, id int64) (*threecommas.GridBot, error)
	SetGridBotEnabled(ctx context.Context, id int64, enabled bool) (*threecommas.GridBot, error)
	DeleteGridBot(ctx context.Context, id int64) error

	// Marketplace
	ListMarketplaceItems(ctx context.Context, scope string, page Page) ([]threecommas.MarketplaceItem, error)
	ListItemSignals(ctx context.Context, itemID int64, page Page) ([]threecommas.MarketplaceItemSignal, error)

	// Users
	Mode(ctx context.Context) (string, error)
	SetMode(ctx context.Context, mode string) error

	// Health
	Ping(ctx context.Context) error
}
