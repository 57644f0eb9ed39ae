package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/bargauge"
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// EstimatesByConfidence returns a timeseries panel showing estimates per
// second split by confidence level, with failures alongside.
func EstimatesByConfidence() *timeseries.PanelBuilder {
	return RatePanel("Estimates", "Price estimates per second by confidence level", "reqps",
		[2]string{Rate("lv_estimates_total", "confidence"), "{{confidence}}"},
		[2]string{Rate("lv_estimate_failures_total"), "failed"},
	)
}

// EstimateLatency returns a timeseries panel with estimate duration
// percentiles.
func EstimateLatency() *timeseries.PanelBuilder {
	return LatencyPanel("Estimate Latency", "Time to search comparables and price a vehicle",
		"lv_estimate_duration_seconds")
}

// DepthDistribution returns a bar gauge showing how far comparable searches
// widen before they stop.
func DepthDistribution() *bargauge.PanelBuilder {
	return histogramBars("Search Depth", "Tier reached by comparable searches in the last hour",
		"lv_comparable_depth")
}

// ComparablesDistribution returns a bar gauge of comparables per search.
func ComparablesDistribution() *bargauge.PanelBuilder {
	return histogramBars("Comparables per Search", "Comparable listings returned per search in the last hour",
		"lv_comparables_found")
}

func histogramBars(title, description, histogram string) *bargauge.PanelBuilder {
	return bargauge.NewPanelBuilder().
		Title(title).
		Description(description).
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(increase(`+histogram+`_bucket{`+Job+`}[1h])) by (le)`,
			"{{le}}", "A",
		)).
		Orientation(common.VizOrientationHorizontal).
		Min(0).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}
