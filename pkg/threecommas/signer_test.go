package threecommas_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/donaldgifford/threecommas/pkg/threecommas"
)

const testSecret = "vmPUZE6mv9SD5VNHk4HlWFsOr6aKE2zvsw0MuIgwCIPy6utIco14y7Ju91duEh8A"

func TestSigner_Sign(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		secret string
		path   string
		query  string
		want   string
	}{
		{
			name:   "deals without query",
			secret: "test-secret",
			path:   "/public/api/ver1/deals",
			want:   "972640143b77d763f021cb1f70275ebb0e1b6da5c9ae12f87cdc07efe28643c7",
		},
		{
			name:   "documented accounts example",
			secret: "NhqPtmdSJYdKjVHjA7PZj4Mge3R5YNiP1e3UZjInClVN65XAbvqqM6A7H5fATj0j",
			path:   "/public/api/ver1/accounts/new?type=binance&name=binance_account",
			query:  "&api_key=XXXXXX&secret=YYYYYY",
			want:   "30f678a157230290e00475cfffccbc92ae3659d94c145a2c0e9d0fa28f41c11a",
		},
		{
			name:   "deals list",
			secret: testSecret,
			path:   "/public/api/ver1/deals",
			want:   "db9be4de432b5c6d715001538be411f4c241e591f138ee74f563c4713a13a769",
		},
		{
			name:   "deals list with query",
			secret: testSecret,
			path:   "/public/api/ver1/deals",
			query:  "limit=10&offset=0",
			want:   "c84b56644f58ff28285578f793fb9c17b9507ebcceedbe9aec332608d541ded8",
		},
		{
			name:   "deal show",
			secret: testSecret,
			path:   "/public/api/ver1/deals/123/show",
			want:   "56a03112f36cf63e5f2f512cb1760d2ae536e522b167f2cc0a1b741ebf2d6864",
		},
		{
			name:   "bot enable",
			secret: testSecret,
			path:   "/public/api/ver1/bots/42/enable",
			want:   "ceb8f439ea78ffdf6ac9a1f35cc49de13e8bf145da169feae10b18abc7d9bccf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := threecommas.NewSigner(tt.secret).Sign(tt.path, tt.query)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, 64)
		})
	}
}

func TestSigner_Sign_Deterministic(t *testing.T) {
	t.Parallel()

	s := threecommas.NewSigner(testSecret)
	first := s.Sign("/public/api/ver1/deals", "limit=10")
	for range 10 {
		assert.Equal(t, first, s.Sign("/public/api/ver1/deals", "limit=10"))
	}

	other := threecommas.NewSigner("another-secret")
	assert.NotEqual(t, first, other.Sign("/public/api/ver1/deals", "limit=10"))
}

func TestSigner_Sign_NoQuestionMark(t *testing.T) {
	t.Parallel()

	s := threecommas.NewSigner(testSecret)
	assert.Equal(t,
		s.Sign("/public/api/ver1/deals", "limit=10&offset=0"),
		s.Sign("/public/api/ver1/dealslimit=10&offset=0", ""),
	)
	assert.NotEqual(t,
		s.Sign("/public/api/ver1/deals", "limit=10&offset=0"),
		s.Sign("/public/api/ver1/deals?", "limit=10&offset=0"),
	)
}

func TestSigner_Verify(t *testing.T) {
	t.Parallel()

	s := threecommas.NewSigner(testSecret)
	sig := s.Sign("/public/api/ver1/deals", "limit=10&offset=0")

	assert.True(t, s.Verify("/public/api/ver1/deals", "limit=10&offset=0", sig))
	assert.True(t, s.Verify("/public/api/ver1/deals", "limit=10&offset=0", strings.ToUpper(sig)))
	assert.False(t, s.Verify("/public/api/ver1/deals", "offset=0&limit=10", sig))
	assert.False(t, s.Verify("/public/api/ver1/deals", "limit=10&offset=0", ""))
}

func TestSnakeCase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "accountId", want: "account_id"},
		{in: "limit", want: "limit"},
		{in: "maxSafetyOrders", want: "max_safety_orders"},
		{in: "account_id", want: "account_id"},
		{in: "tslEnabled", want: "tsl_enabled"},
		{in: "ID", want: "_i_d"},
		{in: "", want: ""},
		{in: "minVolumeBtc24H", want: "min_volume_btc24_h"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got := threecommas.SnakeCase(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, threecommas.SnakeCase(got), "SnakeCase must be idempotent")
		})
	}
}
