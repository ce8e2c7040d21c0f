package main

import "errors"

// KnownMetrics is the set of metric names exported by the 3Commas client and
// the mock API server, plus recording rule names referenced in dashboards
// and alerts.
var KnownMetrics = map[string]bool{
	// Client metrics.
	"threecommas_client_requests_total":           true,
	"threecommas_client_request_duration_seconds": true,
	"threecommas_client_transport_failures_total": true,
	"threecommas_client_encoding_failures_total":  true,

	// Mock server HTTP metrics.
	"threecommas_mock_http_requests_total":           true,
	"threecommas_mock_http_request_duration_seconds": true,
	"threecommas_mock_signature_failures_total":      true,

	// Health metrics.
	"threecommas_mock_healthz_up": true,
	"threecommas_mock_readyz_up":  true,

	// Recording rules.
	"threecommas:client_requests:rate5m":           true,
	"threecommas:client_errors:rate5m":             true,
	"threecommas:client_transport_failures:rate5m": true,
	"threecommas:mock_http_requests:rate5m":        true,
	"threecommas:mock_http_errors:rate5m":          true,
	"threecommas:signature_failures:rate5m":        true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
