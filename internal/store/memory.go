package store

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/donaldgifford/threecommas/pkg/threecommas"
)

//go:embed fixtures/*.json
var embedded embed.FS

// ErrInvalidValue is returned when an update carries a value that cannot be
// applied to the target field.
var ErrInvalidValue = errors.New("invalid field value")

// Deal status values written by SetDealStatus.
const (
	StatusCancelled = "cancelled"
	StatusPanicSold = "panic_sold"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// MemoryStore implements Store on top of fixture data held in memory. Writes
// mutate the in-memory copy only.
type MemoryStore struct {
	mu sync.RWMutex

	deals     []threecommas.DealDetail
	orders    map[int64][]threecommas.MarketOrder
	bots      []threecommas.Bot
	blackList []string
	accounts  []threecommas.Account
	gridBots  []threecommas.GridBot
	items     []threecommas.MarketplaceItem
	signals   map[int64][]threecommas.MarketplaceItemSignal
	mode      string
	loaded    bool

	now func() time.Time
}

// Compile-time check that MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)

// DefaultFixtures returns the fixture set compiled into the binary.
func DefaultFixtures() fs.FS {
	sub, err := fs.Sub(embedded, "fixtures")
	if err != nil {
		panic(err) // embed path is static
	}
	return sub
}

// NewMemoryStore loads fixtures from dir, or the embedded set when dir is
// empty.
func NewMemoryStore(dir string) (*MemoryStore, error) {
	if dir == "" {
		return NewMemoryStoreFS(DefaultFixtures())
	}
	return NewMemoryStoreFS(os.DirFS(dir))
}

// NewMemoryStoreFS loads every fixture file from fsys. Missing files leave the
// corresponding collection empty.
func NewMemoryStoreFS(fsys fs.FS) (*MemoryStore, error) {
	s := &MemoryStore{
		orders:  make(map[int64][]threecommas.MarketOrder),
		signals: make(map[int64][]threecommas.MarketplaceItemSignal),
		mode:    threecommas.ModePaper,
		now:     time.Now,
	}

	var blackList threecommas.PairsBlackList
	var orders map[string][]threecommas.MarketOrder
	var signals map[string][]threecommas.MarketplaceItemSignal

	files := []struct {
		name string
		dst  any
	}{
		{"deals.json", &s.deals},
		{"market_orders.json", &orders},
		{"bots.json", &s.bots},
		{"pairs_black_list.json", &blackList},
		{"accounts.json", &s.accounts},
		{"grid_bots.json", &s.gridBots},
		{"marketplace_items.json", &s.items},
		{"marketplace_signals.json", &signals},
	}
	for _, f := range files {
		if err := readFixture(fsys, f.name, f.dst); err != nil {
			return nil, err
		}
	}

	s.blackList = blackList.Pairs
	var err error
	if s.orders, err = keyByID(orders); err != nil {
		return nil, fmt.Errorf("market_orders.json: %w", err)
	}
	if s.signals, err = keyByID(signals); err != nil {
		return nil, fmt.Errorf("marketplace_signals.json: %w", err)
	}

	s.loaded = true
	return s, nil
}

func readFixture(fsys fs.FS, name string, dst any) error {
	data, err := fs.ReadFile(fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading fixture %s: %w", name, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("parsing fixture %s: %w", name, err)
	}
	return nil
}

func keyByID[T any](in map[string][]T) (map[int64][]T, error) {
	out := make(map[int64][]T, len(in))
	for k, v := range in {
		id, err := strconv.ParseInt(k, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid id key %q: %w", k, err)
		}
		out[id] = v
	}
	return out, nil
}

// --- Deals ---

// ListDeals returns deals matching q, newest first.
func (s *MemoryStore) ListDeals(_ context.Context, q DealQuery) ([]threecommas.Deal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []threecommas.Deal
	for i := range s.deals {
		d := s.deals[i].Deal
		if q.AccountID != 0 && d.AccountID != q.AccountID {
			continue
		}
		if q.BotID != 0 && d.BotID != q.BotID {
			continue
		}
		if !dealInScope(&d, q.Scope) {
			continue
		}
		out = append(out, d)
	}

	key := func(d *threecommas.Deal) *time.Time { return d.CreatedAt }
	if q.Order == "closed_at" {
		key = func(d *threecommas.Deal) *time.Time { return d.ClosedAt }
	}
	slices.SortStableFunc(out, func(a, b threecommas.Deal) int {
		return compareTimeDesc(key(&a), key(&b))
	})

	return paginate(out, q.Page), nil
}

func dealInScope(d *threecommas.Deal, scope string) bool {
	switch scope {
	case "active":
		return !d.Finished
	case "finished":
		return d.Finished
	case StatusCompleted, StatusCancelled, StatusFailed:
		return d.Status == scope
	default:
		return true
	}
}

// compareTimeDesc orders newer times first and nil times last.
func compareTimeDesc(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return b.Compare(*a)
	}
}

// GetDeal returns the deal with its event log.
func (s *MemoryStore) GetDeal(_ context.Context, id int64) (*threecommas.DealDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.dealIndex(id)
	if i < 0 {
		return nil, fmt.Errorf("deal %d: %w", id, ErrNotFound)
	}
	d := s.deals[i]
	d.BotEvents = slices.Clone(d.BotEvents)
	return &d, nil
}

// SetDealStatus closes an open deal with the given terminal status.
func (s *MemoryStore) SetDealStatus(_ context.Context, id int64, status string) (*threecommas.Deal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.dealIndex(id)
	if i < 0 {
		return nil, fmt.Errorf("deal %d: %w", id, ErrNotFound)
	}

	d := &s.deals[i]
	now := s.now().UTC()
	d.Status = status
	d.Finished = true
	d.Cancellable = false
	d.PanicSellable = false
	d.ClosedAt = &now
	d.UpdatedAt = &now
	d.BotEvents = append(d.BotEvents, threecommas.BotEvent{
		Message:   "Deal " + status,
		CreatedAt: now,
	})

	out := d.Deal
	return &out, nil
}

// UpdateDeal applies form fields to a deal. Unknown fields are ignored.
func (s *MemoryStore) UpdateDeal(
	_ context.Context,
	id int64,
	fields map[string]string,
) (*threecommas.Deal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.dealIndex(id)
	if i < 0 {
		return nil, fmt.Errorf("deal %d: %w", id, ErrNotFound)
	}

	// Work on a copy so a bad field leaves the deal untouched.
	d := s.deals[i].Deal
	for k, v := range fields {
		if err := applyDealField(&d, k, v); err != nil {
			return nil, err
		}
	}
	now := s.now().UTC()
	d.UpdatedAt = &now
	s.deals[i].Deal = d

	return &d, nil
}

func applyDealField(d *threecommas.Deal, key, value string) error {
	var err error
	switch key {
	case "take_profit", "new_take_profit_percentage":
		d.TakeProfit, err = decimal.NewFromString(value)
	case "stop_loss_percentage":
		d.StopLossPercentage, err = decimal.NewFromString(value)
	case "trailing_deviation":
		d.TrailingDeviation, err = decimal.NewFromString(value)
	case "max_safety_orders":
		d.MaxSafetyOrders, err = strconv.Atoi(value)
	case "active_safety_orders_count":
		d.ActiveSafetyOrdersCount, err = strconv.Atoi(value)
	case "stop_loss_timeout_in_seconds":
		d.StopLossTimeoutInSeconds, err = strconv.Atoi(value)
	case "trailing_enabled":
		d.TrailingEnabled, err = strconv.ParseBool(value)
	case "tsl_enabled":
		d.TSLEnabled, err = strconv.ParseBool(value)
	case "stop_loss_timeout_enabled":
		d.StopLossTimeoutEnabled, err = strconv.ParseBool(value)
	case "take_profit_type":
		d.TakeProfitType = value
	case "profit_currency":
		d.ProfitCurrency = value
	case "stop_loss_type":
		d.StopLossType = value
	}
	if err != nil {
		return fmt.Errorf("%s=%q: %w", key, value, ErrInvalidValue)
	}
	return nil
}

// ListMarketOrders returns the orders of a deal.
func (s *MemoryStore) ListMarketOrders(_ context.Context, dealID int64) ([]threecommas.MarketOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.dealIndex(dealID) < 0 {
		return nil, fmt.Errorf("deal %d: %w", dealID, ErrNotFound)
	}
	return slices.Clone(s.orders[dealID]), nil
}

func (s *MemoryStore) dealIndex(id int64) int {
	return slices.IndexFunc(s.deals, func(d threecommas.DealDetail) bool { return d.ID == id })
}

// --- Bots ---

// ListBots returns bots matching q in fixture order.
func (s *MemoryStore) ListBots(_ context.Context, q BotQuery) ([]threecommas.Bot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []threecommas.Bot
	for i := range s.bots {
		b := s.bots[i]
		if q.AccountID != 0 && b.AccountID != q.AccountID {
			continue
		}
		if (q.Scope == "enabled" && !b.IsEnabled) || (q.Scope == "disabled" && b.IsEnabled) {
			continue
		}
		if q.Strategy != "" && b.Strategy != q.Strategy {
			continue
		}
		out = append(out, b)
	}
	return paginate(out, q.Page), nil
}

// GetBot returns a bot with its active deals attached.
func (s *MemoryStore) GetBot(_ context.Context, id int64) (*threecommas.Bot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.botIndex(id)
	if i < 0 {
		return nil, fmt.Errorf("bot %d: %w", id, ErrNotFound)
	}
	b := s.bots[i]
	b.ActiveDeals = nil
	for j := range s.deals {
		if d := s.deals[j].Deal; d.BotID == id && !d.Finished {
			b.ActiveDeals = append(b.ActiveDeals, d)
		}
	}
	return &b, nil
}

// SetBotEnabled toggles a bot.
func (s *MemoryStore) SetBotEnabled(_ context.Context, id int64, enabled bool) (*threecommas.Bot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.botIndex(id)
	if i < 0 {
		return nil, fmt.Errorf("bot %d: %w", id, ErrNotFound)
	}
	now := s.now().UTC()
	s.bots[i].IsEnabled = enabled
	s.bots[i].UpdatedAt = &now

	b := s.bots[i]
	return &b, nil
}

// DeleteBot removes a bot.
func (s *MemoryStore) DeleteBot(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.botIndex(id)
	if i < 0 {
		return fmt.Errorf("bot %d: %w", id, ErrNotFound)
	}
	s.bots = slices.Delete(s.bots, i, i+1)
	return nil
}

// PairsBlackList returns the blacklisted pairs.
func (s *MemoryStore) PairsBlackList(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.blackList), nil
}

// SetPairsBlackList replaces the blacklisted pairs.
func (s *MemoryStore) SetPairsBlackList(_ context.Context, pairs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blackList = slices.Clone(pairs)
	return nil
}

func (s *MemoryStore) botIndex(id int64) int {
	return slices.IndexFunc(s.bots, func(b threecommas.Bot) bool { return b.ID == id })
}

// --- Accounts ---

// ListAccounts returns every account.
func (s *MemoryStore) ListAccounts(_ context.Context) ([]threecommas.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.accounts), nil
}

// GetAccount returns a single account.
func (s *MemoryStore) GetAccount(_ context.Context, id int64) (*threecommas.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := slices.IndexFunc(s.accounts, func(a threecommas.Account) bool { return a.ID == id })
	if i < 0 {
		return nil, fmt.Errorf("account %d: %w", id, ErrNotFound)
	}
	a := s.accounts[i]
	return &a, nil
}

// --- Grid bots ---

// ListGridBots returns grid bots matching q.
func (s *MemoryStore) ListGridBots(_ context.Context, q GridBotQuery) ([]threecommas.GridBot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []threecommas.GridBot
	for i := range s.gridBots {
		g := s.gridBots[i]
		if len(q.AccountIDs) > 0 && !slices.Contains(q.AccountIDs, g.AccountID) {
			continue
		}
		if (q.State == "enabled" && !g.IsEnabled) || (q.State == "disabled" && g.IsEnabled) {
			continue
		}
		out = append(out, g)
	}
	return paginate(out, q.Page), nil
}

// GetGridBot returns a single grid bot.
func (s *MemoryStore) GetGridBot(_ context.Context, id int64) (*threecommas.GridBot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.gridBotIndex(id)
	if i < 0 {
		return nil, fmt.Errorf("grid bot %d: %w", id, ErrNotFound)
	}
	g := s.gridBots[i]
	g.GridLines = slices.Clone(g.GridLines)
	return &g, nil
}

// SetGridBotEnabled toggles a grid bot.
func (s *MemoryStore) SetGridBotEnabled(
	_ context.Context,
	id int64,
	enabled bool,
) (*threecommas.GridBot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.gridBotIndex(id)
	if i < 0 {
		return nil, fmt.Errorf("grid bot %d: %w", id, ErrNotFound)
	}
	now := s.now().UTC()
	s.gridBots[i].IsEnabled = enabled
	s.gridBots[i].UpdatedAt = &now

	g := s.gridBots[i]
	return &g, nil
}

// DeleteGridBot removes a grid bot.
func (s *MemoryStore) DeleteGridBot(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.gridBotIndex(id)
	if i < 0 {
		return fmt.Errorf("grid bot %d: %w", id, ErrNotFound)
	}
	s.gridBots = slices.Delete(s.gridBots, i, i+1)
	return nil
}

func (s *MemoryStore) gridBotIndex(id int64) int {
	return slices.IndexFunc(s.gridBots, func(g threecommas.GridBot) bool { return g.ID == id })
}

// --- Marketplace ---

// ListMarketplaceItems returns marketplace items. Scope is "all", "paid" or
// "free"; anything else is treated as "all".
func (s *MemoryStore) ListMarketplaceItems(
	_ context.Context,
	scope string,
	page Page,
) ([]threecommas.MarketplaceItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []threecommas.MarketplaceItem
	for _, it := range s.items {
		if (scope == "paid" || scope == "free") && it.StrategyType != scope {
			continue
		}
		out = append(out, it)
	}
	return paginate(out, page), nil
}

// ListItemSignals returns the signals of a marketplace item.
func (s *MemoryStore) ListItemSignals(
	_ context.Context,
	itemID int64,
	page Page,
) ([]threecommas.MarketplaceItemSignal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !slices.ContainsFunc(s.items, func(it threecommas.MarketplaceItem) bool { return it.ID == itemID }) {
		return nil, fmt.Errorf("marketplace item %d: %w", itemID, ErrNotFound)
	}
	return paginate(s.signals[itemID], page), nil
}

// --- Users ---

// Mode returns the current trading mode.
func (s *MemoryStore) Mode(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode, nil
}

// SetMode switches the trading mode.
func (s *MemoryStore) SetMode(_ context.Context, mode string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = mode
	return nil
}

// --- Health ---

// Ping reports whether fixtures were loaded.
func (s *MemoryStore) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return errors.New("fixtures not loaded")
	}
	return nil
}
