// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/threecommas/tools/dashgen/panels"
)

// BuildOverview constructs the 3Commas overview dashboard with all metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("3Commas Client Overview").
		Uid("threecommas-overview").
		Tags([]string{"threecommas"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	// Row 1: Overview.
	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.SignatureFailuresStat()).
		WithPanel(panels.UptimeStat()))

	// Row 2: Client.
	b.WithRow(dashboard.NewRowBuilder("Client").
		WithPanel(panels.ClientRequestRate()).
		WithPanel(panels.ClientLatency()).
		WithPanel(panels.ClientErrorRate()).
		WithPanel(panels.ClientTransportFailures()).
		WithPanel(panels.ClientEncodingFailures()))

	// Row 3: Mock API HTTP.
	b.WithRow(dashboard.NewRowBuilder("Mock API").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	// Row 4: Signatures.
	b.WithRow(dashboard.NewRowBuilder("Signatures").
		WithPanel(panels.SignatureFailuresByReason()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
