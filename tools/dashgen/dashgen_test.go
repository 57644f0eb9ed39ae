package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/listing-valuator/tools/dashgen/dashboards"
	"github.com/donaldgifford/listing-valuator/tools/dashgen/rules"
	"github.com/donaldgifford/listing-valuator/tools/dashgen/validate"
)

func TestDefaultConfigValid(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate_EmptyOutputDir(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "", DashboardEnabled: true}
	assert.Error(t, cfg.Validate())
}

func TestConfigValidate_NothingEnabled(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "/tmp", DashboardEnabled: false, RulesEnabled: false}
	assert.Error(t, cfg.Validate())
}

func TestBuildOverviewDashboard(t *testing.T) {
	t.Parallel()

	dash, err := dashboards.BuildOverview().Build()
	require.NoError(t, err)

	require.NotNil(t, dash.Uid)
	assert.Equal(t, "lv-overview", *dash.Uid)

	require.NotNil(t, dash.Title)
	assert.Equal(t, "Listing Valuator Overview", *dash.Title)

	require.NotNil(t, dash.Templating)
	assert.Len(t, dash.Templating.List, 1)
	assert.Equal(t, "datasource", dash.Templating.List[0].Name)

	assert.Len(t, dash.Panels, 5)

	totalPanels := 0
	for _, p := range dash.Panels {
		if p.RowPanel != nil {
			totalPanels += len(p.RowPanel.Panels)
		}
	}
	assert.Equal(t, 18, totalPanels)

	result := validate.Dashboard(dash, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
	assert.Empty(t, result.Warnings, "unexpected warnings: %v", result.Warnings)
}

func TestRecordingRules(t *testing.T) {
	t.Parallel()

	cr := rules.RecordingRules()
	assert.Equal(t, "monitoring.coreos.com/v1", cr.APIVersion)
	assert.Equal(t, "PrometheusRule", cr.Kind)
	assert.Equal(t, "lv-recording-rules", cr.Metadata.Name)
	assert.Equal(t, "system-rules-prometheus", cr.Metadata.Labels["prometheus"])

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	assert.Equal(t, "lv-recording", group.Name)

	expectedRecords := []string{
		"lv:http_requests:rate5m",
		"lv:http_errors:rate5m",
		"lv:estimate_failures:ratio5m",
		"lv:recommendation_cache_hit:ratio5m",
		"lv:signal_lookup_failures:rate5m",
	}
	require.Len(t, group.Rules, len(expectedRecords))
	for i, rule := range group.Rules {
		assert.Equal(t, expectedRecords[i], rule.Record)
		assert.True(t, KnownMetrics[rule.Record], "%s missing from KnownMetrics", rule.Record)
	}

	result := validate.Rules(cr, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
	assert.Empty(t, result.Warnings)

	data, err := yaml.Marshal(cr)
	require.NoError(t, err)
	assert.Contains(t, string(data), "apiVersion: monitoring.coreos.com/v1")
}

func TestAlertRules(t *testing.T) {
	t.Parallel()

	cr := rules.AlertRules()
	assert.Equal(t, "lv-alerts", cr.Metadata.Name)

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]

	expectedAlerts := []string{
		"LvDown",
		"LvReadinessDown",
		"LvHighErrorRate",
		"LvEstimateFailures",
		"LvSignalLookupsDegraded",
		"LvWarmStale",
	}
	require.Len(t, group.Rules, len(expectedAlerts))
	for i, rule := range group.Rules {
		assert.Equal(t, expectedAlerts[i], rule.Alert)
		assert.Contains(t, []string{"critical", "warning"}, rule.Labels["severity"], "alert %s severity", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["summary"], "alert %s missing summary", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["description"], "alert %s missing description", rule.Alert)
	}

	result := validate.Rules(cr, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
	assert.Empty(t, result.Warnings)
}

func TestValidateExpr(t *testing.T) {
	t.Parallel()

	known := map[string]bool{"lv_healthz_up": true}

	tests := []struct {
		name         string
		expr         string
		wantErr      bool
		wantWarnings int
	}{
		{name: "known metric", expr: `lv_healthz_up == 1`},
		{name: "unknown metric", expr: `sum(rate(lv_nope_total[5m]))`, wantWarnings: 1},
		{name: "syntax error", expr: `sum(rate(lv_healthz_up[5m])`, wantErr: true},
		{name: "function only", expr: `time()`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := validate.Expr("test", tt.expr, known)
			assert.Equal(t, tt.wantErr, !res.Ok(), "errors: %v", res.Errors)
			assert.Len(t, res.Warnings, tt.wantWarnings)
		})
	}
}

func TestRun_WritesArtifacts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.OutputDir = dir

	require.NoError(t, run(cfg, false))

	for _, path := range []string{
		filepath.Join("grafana", "data", "lv-overview.json"),
		filepath.Join("prometheus", "lv-recording-rules.yaml"),
		filepath.Join("prometheus", "lv-alerts.yaml"),
	} {
		data, err := os.ReadFile(filepath.Join(dir, path))
		require.NoError(t, err, path)
		assert.NotEmpty(t, data, path)
	}

	rulesYAML, err := os.ReadFile(filepath.Join(dir, "prometheus", "lv-alerts.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(rulesYAML), generatedHeader)
}

func TestRun_ValidateOnlyWritesNothing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.OutputDir = dir

	require.NoError(t, run(cfg, true))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
