// Package middleware provides Echo middleware for the mock 3Commas API server.
package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/donaldgifford/threecommas/internal/metrics"
	"github.com/donaldgifford/threecommas/pkg/threecommas"
)

// FamilyOther labels requests outside the API prefix or under an unknown
// endpoint family.
const FamilyOther = "other"

var knownFamilies = map[string]struct{}{
	string(threecommas.FamilyAccounts):    {},
	string(threecommas.FamilyBots):        {},
	string(threecommas.FamilyDeals):       {},
	string(threecommas.FamilyGridBots):    {},
	string(threecommas.FamilyMarketplace): {},
	string(threecommas.FamilyUsers):       {},
}

// probeGauges holds the operational paths that set an up gauge instead of
// being counted. A nil gauge (/metrics) is skipped entirely.
var probeGauges = map[string]prometheus.Gauge{
	"/metrics": nil,
	"/healthz": metrics.HealthzUp,
	"/readyz":  metrics.ReadyzUp,
}

// Metrics returns Echo middleware that records request duration and status
// labelled by endpoint family and route pattern, so the families match the
// client's service label and deal or bot IDs do not explode cardinality.
// prefix is the path the families live under.
func Metrics(prefix string) echo.MiddlewareFunc {
	prefix = strings.TrimRight(prefix, "/") + "/"

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			route := c.Path()
			if route == "" {
				route = c.Request().URL.Path
			}

			start := time.Now()
			err := next(c)
			status := responseStatus(c, err)

			if gauge, probe := probeGauges[route]; probe {
				if gauge != nil {
					gauge.Set(boolGauge(status >= 200 && status < 300))
				}
				return err
			}

			labels := []string{
				c.Request().Method,
				RouteFamily(prefix, route),
				route,
				strconv.Itoa(status),
			}
			metrics.HTTPRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
			metrics.HTTPRequestsTotal.WithLabelValues(labels...).Inc()

			return err
		}
	}
}

// RouteFamily returns the endpoint family of route: the first segment after
// prefix when it names a known family, FamilyOther otherwise.
func RouteFamily(prefix, route string) string {
	prefix = strings.TrimRight(prefix, "/") + "/"
	rest, ok := strings.CutPrefix(route, prefix)
	if !ok {
		return FamilyOther
	}
	family, _, _ := strings.Cut(rest, "/")
	if _, known := knownFamilies[family]; !known {
		return FamilyOther
	}
	return family
}

// responseStatus is the status the client will see. A handler error that
// has not been written yet is rendered later by the error handler, so its
// code is taken from the error.
func responseStatus(c echo.Context, err error) int {
	if err == nil || c.Response().Committed {
		return c.Response().Status
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return http.StatusInternalServerError
}

func boolGauge(up bool) float64 {
	if up {
		return 1
	}
	return 0
}
