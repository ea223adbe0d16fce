package models

// ScoreLabel buckets a 0-1 score for display. A nil score has no label.
func ScoreLabel(score *float64) string {
	switch {
	case score == nil:
		return "n/a"
	case *score >= 0.9:
		return "Good"
	case *score >= 0.5:
		return "Needs Improvement"
	default:
		return "Poor"
	}
}
