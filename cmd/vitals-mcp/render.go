package main

import (
	"fmt"
	"strings"

	"github.com/use-agent/vitals/models"
)

// renderResult formats a result as plain text for the tool response.
func renderResult(r *models.AnalysisResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Performance report for %s (%s)\n", r.URL, r.Timestamp)
	fmt.Fprintf(&b, "Overall score: %s (%s)\n\n", percent(r.Score), models.ScoreLabel(r.Score))

	b.WriteString("Metrics:\n")
	for _, m := range []models.PerformanceMetric{r.Metrics.LCP, r.Metrics.FCP, r.Metrics.CLS, r.Metrics.TTFB} {
		fmt.Fprintf(&b, "- %s: %v%s, score %s (%s)\n", m.Name, m.Value, m.Unit, percent(m.Score), models.ScoreLabel(m.Score))
	}

	if len(r.Recommendations) == 0 {
		b.WriteString("\nNo recommendations.\n")
		return b.String()
	}

	b.WriteString("\nRecommendations:\n")
	for _, rec := range r.Recommendations {
		fmt.Fprintf(&b, "%s. [%s] %s\n   %s\n", rec.ID, rec.Category, rec.Title, rec.Description)
	}
	return b.String()
}

func percent(score *float64) string {
	if score == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.0f", *score*100)
}
