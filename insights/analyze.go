package insights

import (
	"time"

	"github.com/use-agent/vitals/models"
	"github.com/use-agent/vitals/pagespeed"
)

// Analyze builds the result for url from a provider report. now is the
// moment the response is being assembled.
func Analyze(report *pagespeed.Report, url string, now time.Time) (*models.AnalysisResult, error) {
	if report == nil || report.LighthouseResult == nil {
		return nil, models.NewAnalysisError(models.ErrCodeMalformedReport, "report has no lighthouseResult", nil)
	}
	lh := report.LighthouseResult
	if lh.Categories.Performance == nil {
		return nil, models.NewAnalysisError(models.ErrCodeMalformedReport, "report has no performance category", nil)
	}

	metrics, err := ExtractMetrics(lh.Audits)
	if err != nil {
		return nil, models.NewAnalysisError(models.ErrCodeMalformedReport, "extract metrics", err)
	}

	return &models.AnalysisResult{
		URL:             url,
		Timestamp:       now.UTC().Format(models.TimestampLayout),
		Metrics:         metrics,
		Recommendations: SelectRecommendations(lh.Audits),
		Score:           lh.Categories.Performance.Score,
	}, nil
}
