package main

import "errors"

// KnownMetrics is the set of metric names exported by listing-valuator
// plus recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"lv_http_request_duration_seconds_bucket": true,
	"lv_http_requests_total":                  true,

	// Health metrics.
	"lv_healthz_up": true,
	"lv_readyz_up":  true,

	// Valuation metrics.
	"lv_estimates_total":                  true,
	"lv_estimate_failures_total":          true,
	"lv_estimate_duration_seconds_bucket": true,
	"lv_comparable_depth_bucket":          true,
	"lv_comparables_found_bucket":         true,

	// Recommendation metrics.
	"lv_recommendations_served_total":           true,
	"lv_recommendation_duration_seconds_bucket": true,
	"lv_recommendation_score_bucket":            true,
	"lv_signal_lookup_failures_total":           true,
	"lv_cache_errors_total":                     true,

	// Scheduler and geocoder metrics.
	"lv_warm_runs_total":             true,
	"lv_warm_users_total":            true,
	"lv_warm_last_success_timestamp": true,
	"lv_geocode_requests_total":      true,

	// Recording rules.
	"lv:http_requests:rate5m":             true,
	"lv:http_errors:rate5m":               true,
	"lv:estimate_failures:ratio5m":        true,
	"lv:recommendation_cache_hit:ratio5m": true,
	"lv:signal_lookup_failures:rate5m":    true,

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
