package insights

import (
	"strconv"

	"github.com/use-agent/vitals/models"
	"github.com/use-agent/vitals/pagespeed"
)

const (
	// MaxRecommendations caps the returned list.
	MaxRecommendations = 5

	passingScore  = 0.9
	criticalScore = 0.5

	debugDataType = "debugdata"
)

// SelectRecommendations picks failing audits, criticals first, at most
// MaxRecommendations of them. Within a category the provider's order is
// kept. IDs are the 1-based positions in the returned list.
//
// Scores are compared as given; out-of-range values are not clamped.
func SelectRecommendations(audits *pagespeed.AuditMap) []models.Recommendation {
	var critical, moderate []models.Recommendation

	if audits != nil {
		for pair := audits.Oldest(); pair != nil; pair = pair.Next() {
			audit := pair.Value
			if audit.Score == nil || *audit.Score >= passingScore || audit.DetailsType() == debugDataType {
				continue
			}

			rec := models.Recommendation{
				Title:       audit.Title,
				Description: audit.Description,
			}
			if *audit.Score < criticalScore {
				rec.Category = models.CategoryCritical
				critical = append(critical, rec)
			} else {
				rec.Category = models.CategoryModerate
				moderate = append(moderate, rec)
			}
		}
	}

	out := make([]models.Recommendation, 0, MaxRecommendations)
	for _, group := range [][]models.Recommendation{critical, moderate} {
		for _, rec := range group {
			if len(out) == MaxRecommendations {
				break
			}
			rec.ID = strconv.Itoa(len(out) + 1)
			out = append(out, rec)
		}
	}
	return out
}
