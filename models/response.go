package models

// Recommendation categories.
const (
	CategoryCritical = "critical"
	CategoryModerate = "moderate"
)

// Units reported on PerformanceMetric.
const (
	UnitSeconds = "s"
	UnitNone    = ""
)

// TimestampLayout renders AnalysisResult.Timestamp as UTC ISO-8601 with
// millisecond precision, e.g. "2024-05-01T12:00:00.000Z".
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// AnalysisResult is the response for a successful POST /api/analyze.
type AnalysisResult struct {
	URL             string           `json:"url"`
	Timestamp       string           `json:"timestamp"`
	Metrics         Metrics          `json:"metrics"`
	Recommendations []Recommendation `json:"recommendations"`

	// Score is the provider's performance category score, passed through
	// unmodified. Null when the provider could not score the page.
	Score *float64 `json:"score"`
}

// Metrics always carries all four signals.
type Metrics struct {
	LCP  PerformanceMetric `json:"lcp"`
	FCP  PerformanceMetric `json:"fcp"`
	CLS  PerformanceMetric `json:"cls"`
	TTFB PerformanceMetric `json:"ttfb"`
}

// PerformanceMetric is one converted timing or stability signal.
type PerformanceMetric struct {
	Name        string   `json:"name"`
	Value       float64  `json:"value"`
	Unit        string   `json:"unit"`
	Score       *float64 `json:"score"`
	Description string   `json:"description"`
}

// Recommendation is a failing audit surfaced to the user.
type Recommendation struct {
	// ID is the 1-based position in the final list ("1", "2", ...).
	ID          string `json:"id"`
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ErrorResponse is the JSON shape returned on failure.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the response for GET /api/health.
type HealthResponse struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime"`
	Version string `json:"version"`

	// ProviderKey reports whether a provider API key is configured.
	// Unauthenticated requests are subject to a much lower provider quota.
	ProviderKey bool `json:"provider_key"`
}
