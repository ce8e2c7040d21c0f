package threecommas_test

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/threecommas/pkg/threecommas"
)

func readParts(t *testing.T, contentType string, payload []byte) ([]string, map[string]string) {
	t.Helper()

	mediaType, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)
	require.Equal(t, "multipart/form-data", mediaType)

	var names []string
	values := make(map[string]string)
	r := multipart.NewReader(bytes.NewReader(payload), params["boundary"])
	for {
		part, err := r.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		data, err := io.ReadAll(part)
		require.NoError(t, err)
		names = append(names, part.FormName())
		values[part.FormName()] = string(data)
	}
	return names, values
}

func TestFormBody_Encode(t *testing.T) {
	t.Parallel()

	body := threecommas.FormBody(threecommas.Params{}.
		Add("maxSafetyOrders", 5).
		Add("pairs", []string{"USDT_BTC", "USDT_ETH"}).
		Add("isMarket", true))

	ct, payload, err := body.Encode()
	require.NoError(t, err)

	names, values := readParts(t, ct, payload)
	assert.Equal(t, []string{"max_safety_orders", "pairs", "is_market"}, names)
	assert.Equal(t, "5", values["max_safety_orders"])
	assert.Equal(t, "USDT_BTC,USDT_ETH", values["pairs"])
	assert.Equal(t, "true", values["is_market"])
}

func TestFormBody_Encode_Errors(t *testing.T) {
	t.Parallel()

	_, _, err := threecommas.FormBody(threecommas.Params{}.Add("options", map[string]any{})).Encode()
	require.Error(t, err)
	assert.ErrorIs(t, err, threecommas.ErrUnsupportedValue)

	_, _, err = threecommas.FormBody(threecommas.Params{}.Add("orderId", 1).Add("order_id", 2)).Encode()
	require.Error(t, err)
	assert.ErrorIs(t, err, threecommas.ErrDuplicateKey)
}

func TestJSONBody_Encode(t *testing.T) {
	t.Parallel()

	ct, payload, err := threecommas.JSONBody(threecommas.Params{}.
		Add("pair", "USDT_BTC").
		Add("accountId", 1)).Encode()
	require.NoError(t, err)
	assert.Equal(t, "application/json", ct)
	assert.JSONEq(t, `{"pair":"USDT_BTC","account_id":1}`, string(payload))
	assert.Equal(t, `{"pair":"USDT_BTC","account_id":1}`, string(payload))
}

func TestNewBody(t *testing.T) {
	t.Parallel()

	assert.Nil(t, threecommas.NewBody(threecommas.BodyJSON, nil))
	assert.Nil(t, threecommas.NewBody(threecommas.BodyMultipart, threecommas.Params{}))

	p := threecommas.Params{}.Add("a", 1)
	assert.IsType(t, threecommas.JSONBody{}, threecommas.NewBody(threecommas.BodyJSON, p))
	assert.IsType(t, threecommas.FormBody{}, threecommas.NewBody(threecommas.BodyMultipart, p))
}

func TestBodyEncoding_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "multipart", threecommas.BodyMultipart.String())
	assert.Equal(t, "json", threecommas.BodyJSON.String())
	assert.Equal(t, "BodyEncoding(7)", threecommas.BodyEncoding(7).String())
}

func TestBody_KeysUseWireNames(t *testing.T) {
	t.Parallel()

	p := threecommas.Params{}.Add("toAccountId", 2).Add("fromAccountId", 1)

	ct, payload, err := threecommas.FormBody(p).Encode()
	require.NoError(t, err)
	names, _ := readParts(t, ct, payload)
	assert.Equal(t, []string{"to_account_id", "from_account_id"}, names)

	_, payload, err = threecommas.JSONBody(p).Encode()
	require.NoError(t, err)
	assert.Equal(t, `{"to_account_id":2,"from_account_id":1}`, string(payload))
}
