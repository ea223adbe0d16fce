package models

// AnalyzeRequest is the payload for POST /api/analyze.
type AnalyzeRequest struct {
	// URL is the page to audit. Required; its format is left for the
	// provider to judge.
	URL string `json:"url" binding:"required"`
}
