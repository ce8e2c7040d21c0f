package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// ClientRequestRate returns a timeseries panel showing client calls per
// service family.
func ClientRequestRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Client Request Rate").
		Description("Signed 3Commas API calls per second by service").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`threecommas:client_requests:rate5m`, "{{service}}", "A")).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// ClientLatency returns a timeseries panel showing the p95 round trip per
// service family.
func ClientLatency() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Client Latency (p95)").
		Description("95th percentile 3Commas API round trip by service (30s timeout)").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(threecommas_client_request_duration_seconds_bucket[5m])) by (le, service))`,
			"{{service}}", "A",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenYellowRed(5, 30)).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// ClientErrorRate returns a timeseries panel showing non-2xx responses as a
// percentage of client calls.
func ClientErrorRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Client Error Rate %").
		Description("4xx and 5xx responses as percentage of 3Commas API calls").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(threecommas:client_errors:rate5m) / sum(threecommas:client_requests:rate5m) * 100`,
			"error %", "A",
		)).
		Unit("percent").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}

// ClientTransportFailures returns a timeseries panel showing calls that
// failed before a response arrived.
func ClientTransportFailures() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Transport Failures").
		Description("Timeouts, connection errors and unreadable bodies per second").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`threecommas:client_transport_failures:rate5m`, "{{service}}", "A")).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// ClientEncodingFailures returns a stat panel counting requests rejected
// locally because a parameter could not be encoded.
func ClientEncodingFailures() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Encoding Failures (24h)").
		Description("Requests never sent because a parameter value was unsupported").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(`sum(increase(threecommas_client_encoding_failures_total[24h]))`, "", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 10)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}
