package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/threecommas/pkg/threecommas"
)

var fixedNow = time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) *MemoryStore {
	t.Helper()

	s, err := NewMemoryStore("")
	require.NoError(t, err)
	s.now = func() time.Time { return fixedNow }
	return s
}

func dealIDs(deals []threecommas.Deal) []int64 {
	ids := make([]int64, 0, len(deals))
	for i := range deals {
		ids = append(ids, deals[i].ID)
	}
	return ids
}

func TestNewMemoryStore_EmbeddedFixtures(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Ping(ctx))

	accounts, err := s.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 2)

	pairs, err := s.PairsBlackList(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"BTC_DOGE", "USDT_LUNA"}, pairs)

	mode, err := s.Mode(ctx)
	require.NoError(t, err)
	assert.Equal(t, threecommas.ModePaper, mode)
}

func TestNewMemoryStore_Dir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "accounts.json"),
		[]byte(`[{"id": 99, "name": "Local"}]`),
		0o600,
	))

	s, err := NewMemoryStore(dir)
	require.NoError(t, err)

	accounts, err := s.ListAccounts(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "Local", accounts[0].Name)

	deals, err := s.ListDeals(context.Background(), DealQuery{})
	require.NoError(t, err)
	assert.Empty(t, deals)
}

func TestNewMemoryStoreFS_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		fsys    fstest.MapFS
		wantErr string
	}{
		{
			name:    "invalid JSON",
			fsys:    fstest.MapFS{"deals.json": {Data: []byte(`{not json`)}},
			wantErr: "parsing fixture deals.json",
		},
		{
			name:    "non numeric order key",
			fsys:    fstest.MapFS{"market_orders.json": {Data: []byte(`{"abc": []}`)}},
			wantErr: `market_orders.json: invalid id key "abc"`,
		},
		{
			name:    "non numeric signal key",
			fsys:    fstest.MapFS{"marketplace_signals.json": {Data: []byte(`{"x1": []}`)}},
			wantErr: `marketplace_signals.json: invalid id key "x1"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewMemoryStoreFS(tt.fsys)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMemoryStore_ListDeals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		q    DealQuery
		want []int64
	}{
		{name: "all newest first", q: DealQuery{}, want: []int64{1001, 1002, 1003, 1004}},
		{name: "active scope", q: DealQuery{Scope: "active"}, want: []int64{1001}},
		{name: "finished scope", q: DealQuery{Scope: "finished"}, want: []int64{1002, 1003, 1004}},
		{name: "completed scope", q: DealQuery{Scope: "completed"}, want: []int64{1002, 1003}},
		{name: "failed scope", q: DealQuery{Scope: "failed"}, want: []int64{1004}},
		{name: "unknown scope returns all", q: DealQuery{Scope: "whatever"}, want: []int64{1001, 1002, 1003, 1004}},
		{name: "by bot", q: DealQuery{BotID: 43}, want: []int64{1003, 1004}},
		{name: "by account", q: DealQuery{AccountID: 7}, want: []int64{1001, 1002}},
		{
			name: "closed_at order puts open deals last",
			q:    DealQuery{Order: "closed_at"},
			want: []int64{1002, 1003, 1004, 1001},
		},
		{name: "paged", q: DealQuery{Page: Page{Limit: 2, Offset: 1}}, want: []int64{1002, 1003}},
		{name: "no match", q: DealQuery{BotID: 1}, want: []int64{}},
	}

	s := newTestStore(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			deals, err := s.ListDeals(context.Background(), tt.q)
			require.NoError(t, err)
			assert.Equal(t, tt.want, dealIDs(deals))
		})
	}
}

func TestMemoryStore_GetDeal(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	d, err := s.GetDeal(context.Background(), 1001)
	require.NoError(t, err)
	assert.Equal(t, "USDT_BTC", d.Pair)
	assert.True(t, d.Cancellable)
	assert.Len(t, d.BotEvents, 2)
	assert.True(t, decimal.RequireFromString("1.5").Equal(d.TakeProfit))

	_, err = s.GetDeal(context.Background(), 4242)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_SetDealStatus(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	d, err := s.SetDealStatus(ctx, 1001, StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, d.Status)
	assert.True(t, d.Finished)
	assert.False(t, d.Cancellable)
	assert.False(t, d.PanicSellable)
	require.NotNil(t, d.ClosedAt)
	assert.Equal(t, fixedNow, *d.ClosedAt)

	detail, err := s.GetDeal(ctx, 1001)
	require.NoError(t, err)
	require.Len(t, detail.BotEvents, 3)
	assert.Equal(t, "Deal cancelled", detail.BotEvents[2].Message)

	active, err := s.ListDeals(ctx, DealQuery{Scope: "active"})
	require.NoError(t, err)
	assert.Empty(t, active)

	_, err = s.SetDealStatus(ctx, 1, StatusPanicSold)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_UpdateDeal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		id      int64
		fields  map[string]string
		wantErr error
		check   func(t *testing.T, d *threecommas.Deal)
	}{
		{
			name: "numeric and bool fields",
			id:   1001,
			fields: map[string]string{
				"take_profit":       "2.25",
				"max_safety_orders": "7",
				"trailing_enabled":  "true",
				"take_profit_type":  "base",
				"unknown_field":     "ignored",
			},
			check: func(t *testing.T, d *threecommas.Deal) {
				t.Helper()
				assert.True(t, decimal.RequireFromString("2.25").Equal(d.TakeProfit))
				assert.Equal(t, 7, d.MaxSafetyOrders)
				assert.True(t, d.TrailingEnabled)
				assert.Equal(t, "base", d.TakeProfitType)
				require.NotNil(t, d.UpdatedAt)
				assert.Equal(t, fixedNow, *d.UpdatedAt)
			},
		},
		{
			name:   "legacy take profit field",
			id:     1001,
			fields: map[string]string{"new_take_profit_percentage": "3"},
			check: func(t *testing.T, d *threecommas.Deal) {
				t.Helper()
				assert.True(t, decimal.NewFromInt(3).Equal(d.TakeProfit))
			},
		},
		{
			name:    "invalid integer",
			id:      1001,
			fields:  map[string]string{"max_safety_orders": "many"},
			wantErr: ErrInvalidValue,
		},
		{
			name:    "invalid decimal",
			id:      1001,
			fields:  map[string]string{"stop_loss_percentage": "1.2.3"},
			wantErr: ErrInvalidValue,
		},
		{
			name:    "unknown deal",
			id:      5,
			fields:  map[string]string{"take_profit": "1"},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := newTestStore(t)
			d, err := s.UpdateDeal(context.Background(), tt.id, tt.fields)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, d)
		})
	}
}

func TestMemoryStore_UpdateDeal_InvalidLeavesDealUntouched(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.UpdateDeal(ctx, 1001, map[string]string{
		"take_profit":       "9",
		"max_safety_orders": "x",
	})
	require.ErrorIs(t, err, ErrInvalidValue)

	d, err := s.GetDeal(ctx, 1001)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("1.5").Equal(d.TakeProfit))
	assert.Equal(t, 5, d.MaxSafetyOrders)
}

func TestMemoryStore_ListMarketOrders(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	orders, err := s.ListMarketOrders(ctx, 1001)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "Base", orders[0].DealOrderType)
	assert.Equal(t, "Safety", orders[1].DealOrderType)

	orders, err = s.ListMarketOrders(ctx, 1002)
	require.NoError(t, err)
	assert.Empty(t, orders)

	_, err = s.ListMarketOrders(ctx, 1)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_Bots(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	all, err := s.ListBots(ctx, BotQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	enabled, err := s.ListBots(ctx, BotQuery{Scope: "enabled"})
	require.NoError(t, err)
	require.Len(t, enabled, 1)
	assert.Equal(t, int64(42), enabled[0].ID)

	byAccount, err := s.ListBots(ctx, BotQuery{AccountID: 8})
	require.NoError(t, err)
	require.Len(t, byAccount, 1)
	assert.Equal(t, "ETH composite", byAccount[0].Name)

	short, err := s.ListBots(ctx, BotQuery{Strategy: "short"})
	require.NoError(t, err)
	assert.Empty(t, short)

	bot, err := s.GetBot(ctx, 42)
	require.NoError(t, err)
	require.Len(t, bot.ActiveDeals, 1)
	assert.Equal(t, int64(1001), bot.ActiveDeals[0].ID)

	bot, err = s.SetBotEnabled(ctx, 43, true)
	require.NoError(t, err)
	assert.True(t, bot.IsEnabled)

	disabled, err := s.ListBots(ctx, BotQuery{Scope: "disabled"})
	require.NoError(t, err)
	assert.Empty(t, disabled)

	require.NoError(t, s.DeleteBot(ctx, 43))
	_, err = s.GetBot(ctx, 43)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, s.DeleteBot(ctx, 43), ErrNotFound)

	_, err = s.SetBotEnabled(ctx, 43, false)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_PairsBlackList(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	in := []string{"USDT_XRP"}
	require.NoError(t, s.SetPairsBlackList(ctx, in))
	in[0] = "mutated"

	got, err := s.PairsBlackList(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"USDT_XRP"}, got)
}

func TestMemoryStore_GetAccount(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	a, err := s.GetAccount(context.Background(), 8)
	require.NoError(t, err)
	assert.Equal(t, "kraken", a.MarketCode)

	_, err = s.GetAccount(context.Background(), 1)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_GridBots(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	tests := []struct {
		name string
		q    GridBotQuery
		want int
	}{
		{name: "all", q: GridBotQuery{}, want: 1},
		{name: "account match", q: GridBotQuery{AccountIDs: []int64{8, 7}}, want: 1},
		{name: "account miss", q: GridBotQuery{AccountIDs: []int64{8}}, want: 0},
		{name: "enabled", q: GridBotQuery{State: "enabled"}, want: 1},
		{name: "disabled", q: GridBotQuery{State: "disabled"}, want: 0},
	}
	for _, tt := range tests {
		got, err := s.ListGridBots(ctx, tt.q)
		require.NoError(t, err, tt.name)
		assert.Len(t, got, tt.want, tt.name)
	}

	g, err := s.GetGridBot(ctx, 9001)
	require.NoError(t, err)
	assert.Len(t, g.GridLines, 4)

	g, err = s.SetGridBotEnabled(ctx, 9001, false)
	require.NoError(t, err)
	assert.False(t, g.IsEnabled)

	require.NoError(t, s.DeleteGridBot(ctx, 9001))
	_, err = s.GetGridBot(ctx, 9001)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, s.DeleteGridBot(ctx, 9001), ErrNotFound)
}

func TestMemoryStore_Marketplace(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	items, err := s.ListMarketplaceItems(ctx, "all", Page{})
	require.NoError(t, err)
	assert.Len(t, items, 2)

	free, err := s.ListMarketplaceItems(ctx, "free", Page{})
	require.NoError(t, err)
	require.Len(t, free, 1)
	assert.Equal(t, int64(12), free[0].ID)

	signals, err := s.ListItemSignals(ctx, 11, Page{Limit: 1})
	require.NoError(t, err)
	require.Len(t, signals, 1)
	assert.Equal(t, "USDT_BTC", signals[0].Pair)

	_, err = s.ListItemSignals(ctx, 99, Page{})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_Mode(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetMode(ctx, threecommas.ModeReal))
	mode, err := s.Mode(ctx)
	require.NoError(t, err)
	assert.Equal(t, threecommas.ModeReal, mode)
}

func TestMemoryStore_Ping(t *testing.T) {
	t.Parallel()

	require.Error(t, (&MemoryStore{}).Ping(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, newTestStore(t).Ping(ctx), context.Canceled)
}
