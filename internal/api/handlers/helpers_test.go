package handlers_test

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// serve registers h on a fresh Echo instance under route and performs one
// request against target.
func serve(
	t *testing.T,
	method, route, target string,
	h echo.HandlerFunc,
	body io.Reader,
	contentType string,
) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.Add(method, route, h)

	if body == nil {
		body = http.NoBody
	}
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// multipartBody encodes fields in the given key order.
func multipartBody(t *testing.T, kv ...string) (io.Reader, string) {
	t.Helper()
	require.Zero(t, len(kv)%2, "key/value pairs expected")

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for i := 0; i < len(kv); i += 2 {
		require.NoError(t, w.WriteField(kv[i], kv[i+1]))
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}
