// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/listing-valuator/tools/dashgen/panels"
)

// BuildOverview constructs the Listing Valuator overview dashboard.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Listing Valuator Overview").
		Uid("lv-overview").
		Tags([]string{"lv", "listing-valuator"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.CacheHitRatio()).
		WithPanel(panels.UptimeStat()))

	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	b.WithRow(dashboard.NewRowBuilder("Valuation").
		WithPanel(panels.EstimatesByConfidence()).
		WithPanel(panels.EstimateLatency()).
		WithPanel(panels.DepthDistribution()).
		WithPanel(panels.ComparablesDistribution()))

	b.WithRow(dashboard.NewRowBuilder("Recommendations").
		WithPanel(panels.RecommendationsServed()).
		WithPanel(panels.RecommendationLatency()).
		WithPanel(panels.DegradedLookups()).
		WithPanel(panels.ScoreDistribution()))

	b.WithRow(dashboard.NewRowBuilder("Background").
		WithPanel(panels.LastWarm()).
		WithPanel(panels.WarmedUsers()).
		WithPanel(panels.GeocodeOutcomes()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
