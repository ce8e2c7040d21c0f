// Package validate checks generated dashboards and rule files: every PromQL
// expression must parse and may only reference known metrics.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/prometheus/prometheus/model/labels"
	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/threecommas/tools/dashgen/rules"
)

// Result collects the problems found in one artifact.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether no errors were found. Warnings do not fail validation.
func (r Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// histogramSuffixes are the series a histogram exports beside its base name.
var histogramSuffixes = []string{"_bucket", "_sum", "_count"}

// Expr parses expr and returns the names of the metrics it selects.
func Expr(expr string) ([]string, error) {
	e, err := parser.ParseExpr(expr)
	if err != nil {
		return nil, err
	}

	var names []string
	parser.Inspect(e, func(node parser.Node, _ []parser.Node) error {
		vs, ok := node.(*parser.VectorSelector)
		if !ok {
			return nil
		}
		name := vs.Name
		if name == "" {
			for _, m := range vs.LabelMatchers {
				if m.Name == labels.MetricName {
					name = m.Value
				}
			}
		}
		if name != "" {
			names = append(names, name)
		}
		return nil
	})
	return names, nil
}

func known(name string, metrics map[string]bool) bool {
	if metrics[name] {
		return true
	}
	for _, suffix := range histogramSuffixes {
		if base, ok := strings.CutSuffix(name, suffix); ok && metrics[base] {
			return true
		}
	}
	return false
}

func (r *Result) checkExpr(where, expr string, metrics map[string]bool) {
	names, err := Expr(expr)
	if err != nil {
		r.errorf("%s: parsing %q: %v", where, expr, err)
		return
	}
	for _, name := range names {
		if !known(name, metrics) {
			r.errorf("%s: unknown metric %q", where, name)
		}
	}
}

// Dashboard validates every query target of a built dashboard. dash is
// marshaled to JSON so any dashboard model version can be checked.
func Dashboard(dash any, metrics map[string]bool) Result {
	var res Result

	data, err := json.Marshal(dash)
	if err != nil {
		res.errorf("marshaling dashboard: %v", err)
		return res
	}
	var doc struct {
		Panels []panel `json:"panels"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		res.errorf("decoding dashboard: %v", err)
		return res
	}
	if len(doc.Panels) == 0 {
		res.warnf("dashboard has no panels")
	}

	res.checkPanels(doc.Panels, metrics)
	return res
}

type panel struct {
	Type    string   `json:"type"`
	Title   string   `json:"title"`
	Panels  []panel  `json:"panels"`
	Targets []target `json:"targets"`
}

type target struct {
	RefID string `json:"refId"`
	Expr  string `json:"expr"`
}

func (r *Result) checkPanels(panels []panel, metrics map[string]bool) {
	for i := range panels {
		p := &panels[i]
		if p.Type == "row" {
			if len(p.Panels) == 0 {
				r.warnf("row %q is empty", p.Title)
			}
			r.checkPanels(p.Panels, metrics)
			continue
		}

		if len(p.Targets) == 0 {
			r.warnf("panel %q has no targets", p.Title)
		}
		refs := make(map[string]bool, len(p.Targets))
		for _, t := range p.Targets {
			if refs[t.RefID] {
				r.errorf("panel %q: duplicate refId %q", p.Title, t.RefID)
			}
			refs[t.RefID] = true
			r.checkExpr(fmt.Sprintf("panel %q target %s", p.Title, t.RefID), t.Expr, metrics)
		}
	}
}

// Rules validates a PrometheusRule CR. Recording rule names must follow the
// level:metric:operations convention and alerts must carry a severity and a
// summary.
func Rules(cr rules.PrometheusRule, metrics map[string]bool) Result {
	var res Result

	for _, rule := range cr.All() {
		switch {
		case rule.Record != "":
			if strings.Count(rule.Record, ":") != 2 {
				res.errorf("recording rule %q: name must be level:metric:operations", rule.Record)
			}
			res.checkExpr("recording rule "+rule.Record, rule.Expr, metrics)
		case rule.Alert != "":
			if rule.Labels["severity"] == "" {
				res.errorf("alert %q: missing severity label", rule.Alert)
			}
			if rule.Annotations["summary"] == "" {
				res.errorf("alert %q: missing summary annotation", rule.Alert)
			}
			res.checkExpr("alert "+rule.Alert, rule.Expr, metrics)
		default:
			res.errorf("rule with expr %q is neither a recording nor an alerting rule", rule.Expr)
		}
	}
	return res
}
