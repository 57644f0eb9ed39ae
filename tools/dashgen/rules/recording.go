package rules

// RecordingRules returns the pre-computed ratios and rates shared by the
// dashboard and the alerts.
func RecordingRules() PrometheusRule {
	return newResource("lv-recording-rules", RuleGroup{
		Name: "lv-recording",
		Rules: []Rule{
			record("lv:http_requests:rate5m",
				`sum(rate(lv_http_requests_total[5m]))`),
			record("lv:http_errors:rate5m",
				`sum(rate(lv_http_requests_total{status=~"5.."}[5m]))`),
			record("lv:estimate_failures:ratio5m",
				`sum(rate(lv_estimate_failures_total[5m])) / `+
					`(sum(rate(lv_estimates_total[5m])) + sum(rate(lv_estimate_failures_total[5m])))`),
			record("lv:recommendation_cache_hit:ratio5m",
				`sum(rate(lv_recommendations_served_total{cache="hit"}[5m])) / `+
					`sum(rate(lv_recommendations_served_total[5m]))`),
			record("lv:signal_lookup_failures:rate5m",
				`sum(rate(lv_signal_lookup_failures_total[5m]))`),
		},
	})
}
