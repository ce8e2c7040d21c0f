package rules

// AlertRules returns a PrometheusRule CR containing alert rules for the
// 3Commas client and the mock API server.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "threecommas-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "threecommas-alerts",
					Rules: []Rule{
						{
							Alert: "ThreeCommasMockDown",
							Expr:  `absent(up{job="threecommas-mock"})`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "3Commas mock API is down",
								"description": "The threecommas-mock job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert: "ThreeCommasMockReadinessDown",
							Expr:  `threecommas_mock_readyz_up == 0`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "3Commas mock API readiness check is failing",
								"description": "The mock API has reported its fixtures as not loaded for more than 2 minutes.",
							},
						},
						{
							Alert: "ThreeCommasClientHighErrorRate",
							Expr:  `sum(threecommas:client_errors:rate5m) / sum(threecommas:client_requests:rate5m) > 0.05`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "High error rate on 3Commas API calls",
								"description": "More than 5% of signed API calls returned 4xx or 5xx over the last 5 minutes.",
							},
						},
						{
							Alert: "ThreeCommasClientTransportFailures",
							Expr:  `sum(threecommas:client_transport_failures:rate5m) > 0`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "3Commas API calls are failing in transport",
								"description": "Calls have been timing out or failing to connect for more than 5 minutes.",
							},
						},
						{
							Alert: "ThreeCommasSignatureRejected",
							Expr:  `sum(threecommas:signature_failures:rate5m) > 0`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Signed requests are being rejected",
								"description": "The mock API has answered 401 for more than 5 minutes; check the key pair and the signed path and query.",
							},
						},
						{
							Alert: "ThreeCommasMockHighErrorRate",
							Expr:  `threecommas:mock_http_errors:rate5m / threecommas:mock_http_requests:rate5m > 0.05`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on the 3Commas mock API",
								"description": "More than 5% of mock API requests are returning 5xx errors over the last 5 minutes.",
							},
						},
					},
				},
			},
		},
	}
}
