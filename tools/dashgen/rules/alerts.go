package rules

// AlertRules returns the operational alerts for listing-valuator.
func AlertRules() PrometheusRule {
	return newResource("lv-alerts", RuleGroup{
		Name: "lv-alerts",
		Rules: []Rule{
			alert("LvDown", `absent(up{job="listing-valuator"})`, "2m", Critical,
				"Listing Valuator is down",
				"The listing-valuator job has been absent for more than 2 minutes."),
			alert("LvReadinessDown", `lv_readyz_up == 0`, "2m", Critical,
				"Listing Valuator readiness check is failing",
				"The database or cache has been unreachable for more than 2 minutes."),
			alert("LvHighErrorRate", `lv:http_errors:rate5m / lv:http_requests:rate5m > 0.05`, "5m", Warning,
				"High HTTP error rate on Listing Valuator",
				"More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes."),
			alert("LvEstimateFailures", `lv:estimate_failures:ratio5m > 0.25`, "15m", Warning,
				"Many valuations find no comparables",
				"More than a quarter of price estimates failed over the last 15 minutes."),
			alert("LvSignalLookupsDegraded", `lv:signal_lookup_failures:rate5m > 1`, "10m", Warning,
				"Recommendation signals are degraded",
				"Per-user signal lookups are failing and defaulting to zero, lowering ranking quality."),
			alert("LvWarmStale", `time() - lv_warm_last_success_timestamp > 6 * 3600`, "10m", Warning,
				"Recommendation cache warming has stalled",
				"No warm run has succeeded in the last 6 hours."),
		},
	})
}
