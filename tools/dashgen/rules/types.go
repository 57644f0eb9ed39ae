// Package rules builds the Prometheus Operator PrometheusRule resources for
// listing-valuator: recording rules consumed by the dashboard and alerts.
package rules

const (
	apiVersion = "monitoring.coreos.com/v1"
	kind       = "PrometheusRule"

	// selectorLabel is matched by the Prometheus ruleSelector.
	selectorLabel = "system-rules-prometheus"
)

// PrometheusRule is the custom resource written to disk.
type PrometheusRule struct {
	APIVersion string     `yaml:"apiVersion"`
	Kind       string     `yaml:"kind"`
	Metadata   ObjectMeta `yaml:"metadata"`
	Spec       RuleSpec   `yaml:"spec"`
}

// ObjectMeta is the subset of Kubernetes object metadata the resources use.
type ObjectMeta struct {
	Name   string            `yaml:"name"`
	Labels map[string]string `yaml:"labels,omitempty"`
}

// RuleSpec holds the rule groups.
type RuleSpec struct {
	Groups []RuleGroup `yaml:"groups"`
}

// RuleGroup is evaluated as a unit at its interval.
type RuleGroup struct {
	Name     string `yaml:"name"`
	Interval string `yaml:"interval,omitempty"`
	Rules    []Rule `yaml:"rules"`
}

// Rule is either a recording rule (Record set) or an alert (Alert set).
type Rule struct {
	Record      string            `yaml:"record,omitempty"`
	Alert       string            `yaml:"alert,omitempty"`
	Expr        string            `yaml:"expr"`
	For         string            `yaml:"for,omitempty"`
	Labels      map[string]string `yaml:"labels,omitempty"`
	Annotations map[string]string `yaml:"annotations,omitempty"`
}

// Severity is the alert severity label routed on by Alertmanager.
type Severity string

// Severities.
const (
	Critical Severity = "critical"
	Warning  Severity = "warning"
)

func newResource(name string, groups ...RuleGroup) PrometheusRule {
	return PrometheusRule{
		APIVersion: apiVersion,
		Kind:       kind,
		Metadata: ObjectMeta{
			Name:   name,
			Labels: map[string]string{"prometheus": selectorLabel},
		},
		Spec: RuleSpec{Groups: groups},
	}
}

func record(name, expr string) Rule {
	return Rule{Record: name, Expr: expr}
}

func alert(name, expr, forDur string, sev Severity, summary, description string) Rule {
	return Rule{
		Alert:  name,
		Expr:   expr,
		For:    forDur,
		Labels: map[string]string{"severity": string(sev)},
		Annotations: map[string]string{
			"summary":     summary,
			"description": description,
		},
	}
}
