package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/threecommas/internal/api"
	"github.com/donaldgifford/threecommas/internal/config"
	"github.com/donaldgifford/threecommas/internal/store"
	"github.com/donaldgifford/threecommas/pkg/logger"
	"github.com/donaldgifford/threecommas/pkg/threecommas"
)

const (
	testKey    = "cli-key"
	testSecret = "cli-secret"
)

// startMockAPI serves the embedded fixtures and points the CLI credentials at
// it through the environment.
func startMockAPI(t *testing.T) string {
	t.Helper()

	st, err := store.NewMemoryStore("")
	require.NoError(t, err)

	srv := httptest.NewServer(api.NewServer(
		st,
		api.Credentials{APIKey: testKey, APISecret: testSecret},
		logger.NewWithWriter(io.Discard, "error", "text"),
	))
	t.Cleanup(srv.Close)

	t.Setenv(config.EnvAPIKey, testKey)
	t.Setenv(config.EnvAPISecret, testSecret)
	return srv.URL
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestDealsCommands(t *testing.T) {
	base := startMockAPI(t)

	out, err := runCLI(t, "deals", "list", "--base-url", base)
	require.NoError(t, err)
	assert.Contains(t, out, "USD PROFIT")
	assert.Contains(t, out, "USDT_SOL")

	out, err = runCLI(t, "deals", "list", "--scope", "active", "--output", "json", "--base-url", base)
	require.NoError(t, err)
	var deals []threecommas.Deal
	require.NoError(t, json.Unmarshal([]byte(out), &deals))
	require.Len(t, deals, 1)
	assert.Equal(t, int64(1001), deals[0].ID)

	out, err = runCLI(t, "deals", "show", "1001", "--base-url", base)
	require.NoError(t, err)
	assert.Contains(t, out, "BTC nonstop")
	assert.Contains(t, out, "Event:")

	out, err = runCLI(t, "deals", "cancel", "1001", "--base-url", base)
	require.NoError(t, err)
	assert.Equal(t, "Deal 1001 cancelled.\n", out)

	_, err = runCLI(t, "deals", "panic-sell", "1001", "--base-url", base)
	require.Error(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, threecommas.StatusCode(err))

	_, err = runCLI(t, "deals", "show", "nope", "--base-url", base)
	require.ErrorContains(t, err, `invalid id "nope"`)
}

func TestDealsProfit(t *testing.T) {
	base := startMockAPI(t)

	out, err := runCLI(t, "deals", "profit", "--base-url", base)
	require.NoError(t, err)
	assert.Equal(t, "USD profit: 1.64 over 3 deals\n", out)

	out, err = runCLI(t, "deals", "profit", "--scope", "completed", "--output", "json", "--base-url", base)
	require.NoError(t, err)
	var sum profitSummary
	require.NoError(t, json.Unmarshal([]byte(out), &sum))
	assert.Equal(t, 2, sum.Deals)
	assert.True(t, decimal.RequireFromString("1.64").Equal(sum.UsdFinalProfit))
}

func TestBotsCommands(t *testing.T) {
	base := startMockAPI(t)

	out, err := runCLI(t, "bots", "list", "--scope", "disabled", "--base-url", base)
	require.NoError(t, err)
	assert.Contains(t, out, "ETH composite")
	assert.NotContains(t, out, "BTC nonstop")

	out, err = runCLI(t, "bots", "enable", "43", "--base-url", base)
	require.NoError(t, err)
	assert.Equal(t, "Bot 43 enabled.\n", out)

	out, err = runCLI(t, "bots", "disable", "43", "--base-url", base)
	require.NoError(t, err)
	assert.Equal(t, "Bot 43 disabled.\n", out)

	out, err = runCLI(t, "bots", "show", "42", "--base-url", base)
	require.NoError(t, err)
	assert.Contains(t, out, "BTC nonstop")

	_, err = runCLI(t, "bots", "delete", "42", "--base-url", base)
	assert.Equal(t, http.StatusUnprocessableEntity, threecommas.StatusCode(err))

	out, err = runCLI(t, "bots", "delete", "43", "--base-url", base)
	require.NoError(t, err)
	assert.Equal(t, "Bot 43 deleted.\n", out)
}

func TestAccountsCommands(t *testing.T) {
	base := startMockAPI(t)

	out, err := runCLI(t, "accounts", "list", "--base-url", base)
	require.NoError(t, err)
	assert.Contains(t, out, "Binance spot")
	assert.Contains(t, out, "Kraken")

	out, err = runCLI(t, "accounts", "show", "8", "--output", "json", "--base-url", base)
	require.NoError(t, err)
	var acc threecommas.Account
	require.NoError(t, json.Unmarshal([]byte(out), &acc))
	assert.Equal(t, "Kraken", acc.Name)
}

func TestGridBotsCommands(t *testing.T) {
	base := startMockAPI(t)

	out, err := runCLI(t, "grid-bots", "list", "--account-id", "7", "--account-id", "8", "--base-url", base)
	require.NoError(t, err)
	assert.Contains(t, out, "9001")

	out, err = runCLI(t, "grid-bots", "disable", "9001", "--base-url", base)
	require.NoError(t, err)
	assert.Equal(t, "Grid bot 9001 disabled.\n", out)

	out, err = runCLI(t, "grid-bots", "delete", "9001", "--base-url", base)
	require.NoError(t, err)
	assert.Equal(t, "Grid bot 9001 deleted.\n", out)

	_, err = runCLI(t, "grid-bots", "show", "9001", "--base-url", base)
	assert.Equal(t, http.StatusNotFound, threecommas.StatusCode(err))
}

func TestMarketplaceCommands(t *testing.T) {
	base := startMockAPI(t)

	out, err := runCLI(t, "marketplace", "items", "--scope", "free", "--output", "json", "--base-url", base)
	require.NoError(t, err)
	var items []threecommas.MarketplaceItem
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	require.Len(t, items, 1)
	assert.Equal(t, int64(12), items[0].ID)

	out, err = runCLI(t, "marketplace", "signals", "11", "--base-url", base)
	require.NoError(t, err)
	assert.Contains(t, out, "USDT_BTC")
}

func TestUsersMode(t *testing.T) {
	base := startMockAPI(t)

	out, err := runCLI(t, "users", "mode", "real", "--base-url", base)
	require.NoError(t, err)
	assert.Equal(t, "Trading mode set to real.\n", out)

	_, err = runCLI(t, "users", "mode", "demo", "--base-url", base)
	var encErr *threecommas.EncodingError
	require.ErrorAs(t, err, &encErr)
}

func TestSign(t *testing.T) {
	t.Setenv(config.EnvAPIKey, testKey)
	t.Setenv(config.EnvAPISecret, testSecret)

	want := threecommas.NewSigner(testSecret).Sign("/public/api/ver1/deals", "limit=10")

	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr string
	}{
		{name: "path and query", args: []string{"/public/api/ver1/deals", "limit=10"}, want: want + "\n"},
		{name: "query with question mark", args: []string{"/public/api/ver1/deals", "?limit=10"}, want: want + "\n"},
		{name: "inline query", args: []string{"/public/api/ver1/deals?limit=10"}, want: want + "\n"},
		{
			name: "path only",
			args: []string{"/public/api/ver1/accounts"},
			want: threecommas.NewSigner(testSecret).Sign("/public/api/ver1/accounts", "") + "\n",
		},
		{
			name:    "query given twice",
			args:    []string{"/public/api/ver1/deals?limit=10", "limit=10"},
			wantErr: "both inline and as an argument",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCLI(t, append([]string{"sign"}, tt.args...)...)
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRootValidation(t *testing.T) {
	t.Run("unknown output format", func(t *testing.T) {
		t.Setenv(config.EnvAPIKey, testKey)
		t.Setenv(config.EnvAPISecret, testSecret)

		_, err := runCLI(t, "accounts", "list", "--output", "yaml")
		require.ErrorContains(t, err, "--output must be table or json")
	})

	t.Run("missing credentials", func(t *testing.T) {
		t.Setenv(config.EnvAPIKey, "")
		t.Setenv(config.EnvAPISecret, "")

		_, err := runCLI(t, "accounts", "list")
		require.ErrorContains(t, err, "api_key is required")
	})
}

func TestVersion(t *testing.T) {
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "3c dev\n", out)
}

func TestSumProfit(t *testing.T) {
	t.Parallel()

	deals := []threecommas.Deal{
		{UsdFinalProfit: decimal.RequireFromString("0.1")},
		{UsdFinalProfit: decimal.RequireFromString("0.2")},
		{UsdFinalProfit: decimal.RequireFromString("-0.05")},
	}

	got := sumProfit(deals)
	assert.Equal(t, 3, got.Deals)
	assert.True(t, decimal.RequireFromString("0.25").Equal(got.UsdFinalProfit))

	empty := sumProfit(nil)
	assert.Equal(t, 0, empty.Deals)
	assert.True(t, empty.UsdFinalProfit.IsZero())
}

func TestParseID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{in: "42", want: 42},
		{in: "0", wantErr: true},
		{in: "-1", wantErr: true},
		{in: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := parseID(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
