package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/threecommas/internal/metrics"
	"github.com/donaldgifford/threecommas/pkg/threecommas"
)

// Signature failure reasons, used as the metric label.
const (
	ReasonMissingHeaders = "missing_headers"
	ReasonUnknownKey     = "unknown_key"
	ReasonMismatch       = "mismatch"
)

// Signature returns Echo middleware that authenticates requests the way the
// 3Commas API does: the APIKEY header must match apiKey and the Signature
// header must be the HMAC-SHA256 of the escaped request path followed by the
// raw query string, keyed by secret. Request bodies are not signed.
func Signature(apiKey, secret string, log *slog.Logger) echo.MiddlewareFunc {
	signer := threecommas.NewSigner(secret)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			r := c.Request()
			key := r.Header.Get(threecommas.HeaderAPIKey)
			sig := r.Header.Get(threecommas.HeaderSignature)

			var reason string
			switch {
			case key == "" || sig == "":
				reason = ReasonMissingHeaders
			case subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1:
				reason = ReasonUnknownKey
			case !signer.Verify(r.URL.EscapedPath(), r.URL.RawQuery, sig):
				reason = ReasonMismatch
			default:
				return next(c)
			}

			metrics.SignatureFailuresTotal.WithLabelValues(reason).Inc()
			log.Warn("signature rejected",
				"method", r.Method,
				"path", r.URL.Path,
				"reason", reason,
			)

			if reason == ReasonUnknownKey {
				return c.JSON(http.StatusUnauthorized, threecommas.ErrorBody{
					Error:            "api_key_invalid_or_expired",
					ErrorDescription: "Unauthorized. Invalid or expired api key.",
				})
			}
			return c.JSON(http.StatusUnauthorized, threecommas.ErrorBody{
				Error:            "signature_invalid",
				ErrorDescription: "Provided signature is invalid",
			})
		}
	}
}
