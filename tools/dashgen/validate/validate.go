// Package validate checks generated dashboards and rules for PromQL syntax
// errors and references to metrics the server does not export.
package validate

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/listing-valuator/tools/dashgen/rules"
)

// Result collects validation findings. Errors fail generation; warnings
// flag metrics missing from the known set.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether there were no errors.
func (r *Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) merge(o Result) {
	r.Errors = append(r.Errors, o.Errors...)
	r.Warnings = append(r.Warnings, o.Warnings...)
}

// Expr parses one PromQL expression and checks its metric names.
func Expr(where, expr string, known map[string]bool) Result {
	var res Result

	parsed, err := parser.ParseExpr(expr)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("%s: %v", where, err))
		return res
	}

	parser.Inspect(parsed, func(node parser.Node, _ []parser.Node) error {
		vs, ok := node.(*parser.VectorSelector)
		if !ok || vs.Name == "" {
			return nil
		}
		if !known[vs.Name] {
			res.Warnings = append(res.Warnings, fmt.Sprintf("%s: unknown metric %q", where, vs.Name))
		}
		return nil
	})

	return res
}

// Dashboard validates every "expr" field in a built dashboard.
func Dashboard(dash any, known map[string]bool) Result {
	var res Result

	data, err := json.Marshal(dash)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("marshaling dashboard: %v", err))
		return res
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("decoding dashboard: %v", err))
		return res
	}

	exprs := collectExprs(doc, "", nil)
	sort.Strings(exprs)
	for _, e := range exprs {
		res.merge(Expr("dashboard", e, known))
	}
	return res
}

// Rules validates every rule expression. Recorded names count as known for
// later rules.
func Rules(cr rules.PrometheusRule, known map[string]bool) Result {
	var res Result

	seen := make(map[string]bool, len(known))
	for k, v := range known {
		seen[k] = v
	}

	for _, g := range cr.Spec.Groups {
		for _, r := range g.Rules {
			name := r.Record
			if name == "" {
				name = r.Alert
			}
			res.merge(Expr(g.Name+"/"+name, r.Expr, seen))
			if r.Record != "" {
				seen[r.Record] = true
			}
		}
	}
	return res
}

func collectExprs(node any, key string, out []string) []string {
	switch v := node.(type) {
	case map[string]any:
		for k, child := range v {
			out = collectExprs(child, k, out)
		}
	case []any:
		for _, child := range v {
			out = collectExprs(child, key, out)
		}
	case string:
		if key == "expr" && v != "" {
			out = append(out, v)
		}
	}
	return out
}
