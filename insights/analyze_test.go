package insights

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/use-agent/vitals/models"
	"github.com/use-agent/vitals/pagespeed"
	"github.com/use-agent/vitals/pagespeed/pagespeedtest"
)

func TestAnalyze(t *testing.T) {
	audits := append(pagespeedtest.CoreAudits(),
		audit("render-blocking-resources", pagespeedtest.Float(0.3)),
	)
	report := decodeReport(t, pagespeedtest.ReportJSON(pagespeedtest.Float(0.73), audits...))
	now := time.Date(2024, 5, 1, 14, 30, 15, 123456789, time.FixedZone("CEST", 2*60*60))

	result, err := Analyze(report, "https://example.com", now)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com", result.URL)
	assert.Equal(t, "2024-05-01T12:30:15.123Z", result.Timestamp)
	assert.Equal(t, 2.5, result.Metrics.LCP.Value)
	assert.Equal(t, 0.12, result.Metrics.CLS.Value)
	require.NotNil(t, result.Score)
	assert.Equal(t, 0.73, *result.Score)

	// The core audits with scores below 0.9 are recommendations too.
	assert.Equal(t, []string{
		"title render-blocking-resources",
		"Largest Contentful Paint",
		"Cumulative Layout Shift",
	}, titles(result.Recommendations))
}

func TestAnalyze_NullCategoryScore(t *testing.T) {
	report := decodeReport(t, pagespeedtest.ReportJSON(nil, pagespeedtest.CoreAudits()...))

	result, err := Analyze(report, "https://example.com", time.Now())
	require.NoError(t, err)
	assert.Nil(t, result.Score)
}

func TestAnalyze_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		report *pagespeed.Report
	}{
		{"nil report", nil},
		{"no lighthouse result", &pagespeed.Report{}},
		{"no performance category", decodeReport(t, []byte(`{"lighthouseResult":{"audits":{},"categories":{}}}`))},
		{"no audits", decodeReport(t, []byte(`{"lighthouseResult":{"categories":{"performance":{"score":0.5}}}}`))},
		{"missing ttfb", decodeReport(t, pagespeedtest.ReportJSON(pagespeedtest.Float(0.5),
			pagespeedtest.Without(pagespeedtest.CoreAudits(), "server-response-time")...))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Analyze(tt.report, "https://example.com", time.Now())
			require.Error(t, err)
			assert.Nil(t, result)

			var ae *models.AnalysisError
			require.True(t, errors.As(err, &ae))
			assert.Equal(t, models.ErrCodeMalformedReport, ae.Code)
		})
	}
}
