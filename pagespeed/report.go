package pagespeed

import orderedmap "github.com/wk8/go-ordered-map/v2"

// AuditMap holds Lighthouse audits keyed by audit id, in the order the
// provider listed them.
type AuditMap = orderedmap.OrderedMap[string, Audit]

// Report is the subset of the runPagespeed response we consume.
type Report struct {
	LighthouseResult *LighthouseResult `json:"lighthouseResult"`

	// Error is set by the provider when the audit could not run.
	Error *APIError `json:"error,omitempty"`
}

// LighthouseResult is the embedded Lighthouse run.
type LighthouseResult struct {
	Audits     *AuditMap  `json:"audits"`
	Categories Categories `json:"categories"`
}

// Categories holds the aggregate category scores.
type Categories struct {
	Performance *Category `json:"performance"`
}

// Category is one Lighthouse category.
type Category struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Score *float64 `json:"score"`
}

// Audit is one named measurement. Score is nil when the audit is not
// applicable or purely informational.
type Audit struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Score        *float64      `json:"score"`
	NumericValue *float64      `json:"numericValue"`
	Details      *AuditDetails `json:"details,omitempty"`
}

// AuditDetails carries the audit's detail payload type ("table",
// "opportunity", "debugdata", ...). The payload itself is not decoded.
type AuditDetails struct {
	Type string `json:"type"`
}

// DetailsType returns the details type, or "" when there are no details.
func (a Audit) DetailsType() string {
	if a.Details == nil {
		return ""
	}
	return a.Details.Type
}

// APIError is the Google API error envelope.
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}
