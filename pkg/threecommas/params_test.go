package threecommas_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/threecommas/pkg/threecommas"
)

func TestParams_Encode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params threecommas.Params
		want   string
	}{
		{
			name: "empty bag",
			want: "",
		},
		{
			name:   "insertion order preserved",
			params: threecommas.Params{}.Add("b", 2).Add("a", 1),
			want:   "b=2&a=1",
		},
		{
			name:   "camelCase keys converted",
			params: threecommas.Params{}.Add("accountId", 7).Add("botId", int64(9)),
			want:   "account_id=7&bot_id=9",
		},
		{
			name:   "values escaped",
			params: threecommas.Params{}.Add("pair", "USDT_BTC").Add("name", "my bot&co"),
			want:   "pair=USDT_BTC&name=my+bot%26co",
		},
		{
			name:   "booleans and floats",
			params: threecommas.Params{}.Add("isMarket", true).Add("rate", 0.25),
			want:   "is_market=true&rate=0.25",
		},
		{
			name:   "decimal",
			params: threecommas.Params{}.Add("amount", decimal.RequireFromString("12.50")),
			want:   "amount=12.5",
		},
		{
			name:   "slice comma joined",
			params: threecommas.Params{}.Add("accountIds", []int64{1, 2, 3}),
			want:   "account_ids=1%2C2%2C3",
		},
		{
			name:   "time in UTC",
			params: threecommas.Params{}.Add("dateFrom", time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)),
			want:   "date_from=2024-01-02T03%3A04%3A05Z",
		},
		{
			name:   "pointer dereferenced",
			params: threecommas.Params{}.Add("limit", threecommas.Ptr(5)),
			want:   "limit=5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.params.Encode()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParams_Encode_Idempotent(t *testing.T) {
	t.Parallel()

	camel := threecommas.Params{}.Add("accountId", 1).Add("scope", "active")
	snake := threecommas.Params{}.Add("account_id", 1).Add("scope", "active")

	a, err := camel.Encode()
	require.NoError(t, err)
	b, err := snake.Encode()
	require.NoError(t, err)
	assert.Equal(t, a, b)

	canon, err := camel.Canonical()
	require.NoError(t, err)
	again, err := canon.Canonical()
	require.NoError(t, err)
	assert.Equal(t, canon, again)
}

func TestParams_Encode_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		params  threecommas.Params
		wantErr error
		wantKey string
	}{
		{
			name:    "duplicate after conversion",
			params:  threecommas.Params{}.Add("accountId", 1).Add("account_id", 2),
			wantErr: threecommas.ErrDuplicateKey,
			wantKey: "account_id",
		},
		{
			name:    "nil value",
			params:  threecommas.Params{}.Add("limit", nil),
			wantErr: threecommas.ErrUnsupportedValue,
			wantKey: "limit",
		},
		{
			name:    "map value",
			params:  threecommas.Params{}.Add("options", map[string]string{"a": "b"}),
			wantErr: threecommas.ErrUnsupportedValue,
			wantKey: "options",
		},
		{
			name:    "struct value",
			params:  threecommas.Params{}.Add("strategyList", struct{ A int }{1}),
			wantErr: threecommas.ErrUnsupportedValue,
			wantKey: "strategy_list",
		},
		{
			name:    "nested slice",
			params:  threecommas.Params{}.Add("grid", [][]int{{1}, {2}}),
			wantErr: threecommas.ErrUnsupportedValue,
			wantKey: "grid",
		},
		{
			name:    "nil pointer",
			params:  threecommas.Params{}.Add("limit", (*int)(nil)),
			wantErr: threecommas.ErrUnsupportedValue,
			wantKey: "limit",
		},
		{
			name:    "nil decimal pointer",
			params:  threecommas.Params{}.Add("takeProfit", (*decimal.Decimal)(nil)),
			wantErr: threecommas.ErrUnsupportedValue,
			wantKey: "take_profit",
		},
		{
			name:    "nil time pointer",
			params:  threecommas.Params{}.Add("from", (*time.Time)(nil)),
			wantErr: threecommas.ErrUnsupportedValue,
			wantKey: "from",
		},
		{
			name:    "nil slice",
			params:  threecommas.Params{}.Add("pairs", []string(nil)),
			wantErr: threecommas.ErrUnsupportedValue,
			wantKey: "pairs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := tt.params.Encode()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var encErr *threecommas.EncodingError
			require.True(t, errors.As(err, &encErr))
			assert.Equal(t, tt.wantKey, encErr.Key)
		})
	}
}

func TestParams_MarshalJSON(t *testing.T) {
	t.Parallel()

	p := threecommas.Params{}.
		Add("name", "bot").
		Add("pairs", []string{"USDT_BTC", "USDT_ETH"}).
		Add("strategyList", []threecommas.Strategy{{Strategy: "nonstop"}}).
		Add("takeProfit", decimal.RequireFromString("1.5"))

	data, err := p.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t,
		`{"name":"bot","pairs":["USDT_BTC","USDT_ETH"],"strategy_list":[{"strategy":"nonstop"}],"take_profit":"1.5"}`,
		string(data),
	)
}

func TestParams_MarshalJSON_NilValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
	}{
		{name: "untyped nil", value: nil},
		{name: "nil int pointer", value: (*int)(nil)},
		{name: "nil decimal pointer", value: (*decimal.Decimal)(nil)},
		{name: "nil slice", value: []string(nil)},
		{name: "nil map", value: map[string]any(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data, err := threecommas.Params{}.Add("limit", tt.value).MarshalJSON()
			require.Error(t, err)
			assert.Nil(t, data)
			assert.ErrorIs(t, err, threecommas.ErrUnsupportedValue)

			var encErr *threecommas.EncodingError
			require.ErrorAs(t, err, &encErr)
			assert.Equal(t, "limit", encErr.Key)
		})
	}
}

func TestStringify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "string", value: "abc", want: "abc"},
		{name: "bytes", value: []byte("raw"), want: "raw"},
		{name: "int", value: -3, want: "-3"},
		{name: "uint", value: uint8(200), want: "200"},
		{name: "float", value: 1.0, want: "1"},
		{name: "float32", value: float32(0.5), want: "0.5"},
		{name: "bool", value: false, want: "false"},
		{name: "strings", value: []string{"a", "b"}, want: "a,b"},
		{name: "array", value: [2]int{4, 5}, want: "4,5"},
		{name: "any slice", value: []any{"x", 1, true}, want: "x,1,true"},
		{name: "decimal", value: decimal.NewFromInt(42), want: "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := threecommas.Stringify(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
