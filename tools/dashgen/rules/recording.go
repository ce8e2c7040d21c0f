package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "threecommas-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "threecommas-recording",
					Rules: []Rule{
						{
							Record: "threecommas:client_requests:rate5m",
							Expr:   `sum(rate(threecommas_client_requests_total[5m])) by (service)`,
						},
						{
							Record: "threecommas:client_errors:rate5m",
							Expr:   `sum(rate(threecommas_client_requests_total{status=~"4..|5.."}[5m])) by (service)`,
						},
						{
							Record: "threecommas:client_transport_failures:rate5m",
							Expr:   `sum(rate(threecommas_client_transport_failures_total[5m])) by (service)`,
						},
						{
							Record: "threecommas:mock_http_requests:rate5m",
							Expr:   `sum(rate(threecommas_mock_http_requests_total[5m]))`,
						},
						{
							Record: "threecommas:mock_http_errors:rate5m",
							Expr:   `sum(rate(threecommas_mock_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "threecommas:signature_failures:rate5m",
							Expr:   `sum(rate(threecommas_mock_signature_failures_total[5m])) by (reason)`,
						},
					},
				},
			},
		},
	}
}
