package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// LastWarm returns a stat panel showing time since the last successful
// cache warm run.
func LastWarm() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Last Warm Run").
		Description("Time since recommendations were last precomputed").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(ThirdWidth).
		WithTarget(PromQuery(`time() - lv_warm_last_success_timestamp{`+Job+`}`, "", "A")).
		Unit("s").
		Thresholds(ThresholdsGreenYellowRed(2*3600, 6*3600)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}

// WarmedUsers returns a timeseries panel showing users warmed per hour.
func WarmedUsers() *timeseries.PanelBuilder {
	return RatePanel("Users Warmed / h", "Users whose recommendations were precomputed", "short",
		[2]string{`sum(increase(lv_warm_users_total{` + Job + `}[1h]))`, "users"},
	)
}

// GeocodeOutcomes returns a timeseries panel of geocoder requests by outcome.
func GeocodeOutcomes() *timeseries.PanelBuilder {
	return RatePanel("Geocoder", "ZIP geocoding requests per second by outcome", "reqps",
		[2]string{Rate("lv_geocode_requests_total", "outcome"), "{{outcome}}"},
	)
}
