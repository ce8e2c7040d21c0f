package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// RequestRate returns a timeseries panel showing the mock server request rate
// per endpoint family, next to the total.
func RequestRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Mock Request Rate").
		Description("Mock API HTTP requests per second by endpoint family").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`threecommas:mock_http_requests:rate5m`, "total", "A")).
		WithTarget(PromQuery(
			`sum(rate(threecommas_mock_http_requests_total{job="`+MockJob+`"}[5m])) by (family)`,
			"{{family}}", "B",
		)).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// LatencyPercentiles returns a timeseries panel showing p50, p95, and p99
// mock server latencies.
func LatencyPercentiles() *timeseries.PanelBuilder {
	const bucket = `sum(rate(threecommas_mock_http_request_duration_seconds_bucket{job="` + MockJob + `"}[5m])) by (le)`

	return timeseries.NewPanelBuilder().
		Title("Mock Latency Percentiles").
		Description("Mock API HTTP request duration percentiles").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`histogram_quantile(0.50, `+bucket+`)`, "p50", "A")).
		WithTarget(PromQuery(`histogram_quantile(0.95, `+bucket+`)`, "p95", "B")).
		WithTarget(PromQuery(`histogram_quantile(0.99, `+bucket+`)`, "p99", "C")).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// ErrorRate returns a timeseries panel showing the mock server 5xx rate as a
// percentage.
func ErrorRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Mock Error Rate %").
		Description("Mock API 5xx responses as percentage of total requests").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`threecommas:mock_http_errors:rate5m / threecommas:mock_http_requests:rate5m * 100`,
			"error %", "A",
		)).
		Unit("percent").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}

// SignatureFailuresByReason returns a timeseries panel splitting rejected
// signatures by reason.
func SignatureFailuresByReason() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Signature Failures by Reason").
		Description("401 responses per second: missing_headers, unknown_key or mismatch").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(FullWidth).
		WithTarget(PromQuery(`threecommas:signature_failures:rate5m`, "{{reason}}", "A")).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
