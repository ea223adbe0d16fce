package insights

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/use-agent/vitals/pagespeed"
	"github.com/use-agent/vitals/pagespeed/pagespeedtest"
)

func decodeReport(t *testing.T, body []byte) *pagespeed.Report {
	t.Helper()
	var report pagespeed.Report
	require.NoError(t, json.Unmarshal(body, &report))
	return &report
}

func auditsOf(t *testing.T, audits ...pagespeedtest.Audit) *pagespeed.AuditMap {
	t.Helper()
	report := decodeReport(t, pagespeedtest.ReportJSON(nil, audits...))
	require.NotNil(t, report.LighthouseResult)
	return report.LighthouseResult.Audits
}
