package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/bargauge"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// RecommendationsServed returns a timeseries panel of recommendation
// requests split by cache hit or miss.
func RecommendationsServed() *timeseries.PanelBuilder {
	return RatePanel("Recommendations Served", "Recommendation requests per second by cache result", "reqps",
		[2]string{Rate("lv_recommendations_served_total", "cache"), "{{cache}}"},
	)
}

// RecommendationLatency returns a timeseries panel with uncached
// recommendation build percentiles.
func RecommendationLatency() *timeseries.PanelBuilder {
	return LatencyPanel("Recommendation Latency", "Time to rank candidates on a cache miss",
		"lv_recommendation_duration_seconds")
}

// DegradedLookups returns a timeseries panel of signal lookups and cache
// operations that failed and were absorbed.
func DegradedLookups() *timeseries.PanelBuilder {
	return RatePanel("Degraded Lookups", "Per-user signal lookups and cache operations that failed", "ops",
		[2]string{Rate("lv_signal_lookup_failures_total", "signal"), "signal {{signal}}"},
		[2]string{Rate("lv_cache_errors_total", "op"), "cache {{op}}"},
	)
}

// ScoreDistribution returns a bar gauge of ranked listing scores.
func ScoreDistribution() *bargauge.PanelBuilder {
	return histogramBars("Score Distribution", "Recommendation scores (0-1) in the last hour",
		"lv_recommendation_score")
}
