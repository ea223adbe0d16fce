package insights

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/use-agent/vitals/models"
	"github.com/use-agent/vitals/pagespeed/pagespeedtest"
)

func audit(id string, score *float64) pagespeedtest.Audit {
	return pagespeedtest.Audit{
		ID:          id,
		Title:       "title " + id,
		Description: "description " + id,
		Score:       score,
	}
}

func titles(recs []models.Recommendation) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Title
	}
	return out
}

func TestSelectRecommendations_Filters(t *testing.T) {
	debug := audit("debug", pagespeedtest.Float(0.1))
	debug.DetailsType = "debugdata"
	table := audit("table", pagespeedtest.Float(0.6))
	table.DetailsType = "table"

	recs := SelectRecommendations(auditsOf(t,
		audit("null", nil),
		audit("passing", pagespeedtest.Float(0.9)),
		audit("perfect", pagespeedtest.Float(1)),
		debug,
		table,
		audit("failing", pagespeedtest.Float(0.2)),
	))

	assert.Equal(t, []string{"title failing", "title table"}, titles(recs))
	assert.Equal(t, models.CategoryCritical, recs[0].Category)
	assert.Equal(t, models.CategoryModerate, recs[1].Category)
	assert.Equal(t, "description failing", recs[0].Description)
}

func TestSelectRecommendations_CriticalBoundary(t *testing.T) {
	recs := SelectRecommendations(auditsOf(t,
		audit("half", pagespeedtest.Float(0.5)),
		audit("below-half", pagespeedtest.Float(0.49)),
		audit("below-pass", pagespeedtest.Float(0.89)),
	))

	require.Len(t, recs, 3)
	assert.Equal(t, "title below-half", recs[0].Title)
	assert.Equal(t, models.CategoryCritical, recs[0].Category)
	assert.Equal(t, "title half", recs[1].Title)
	assert.Equal(t, models.CategoryModerate, recs[1].Category)
	assert.Equal(t, "title below-pass", recs[2].Title)
}

func TestSelectRecommendations_StablePartition(t *testing.T) {
	recs := SelectRecommendations(auditsOf(t,
		audit("m1", pagespeedtest.Float(0.7)),
		audit("c1", pagespeedtest.Float(0.3)),
		audit("m2", pagespeedtest.Float(0.8)),
		audit("c2", pagespeedtest.Float(0)),
		audit("c3", pagespeedtest.Float(0.45)),
	))

	assert.Equal(t, []string{"title c1", "title c2", "title c3", "title m1", "title m2"}, titles(recs))
}

func TestSelectRecommendations_CapAndReindex(t *testing.T) {
	var audits []pagespeedtest.Audit
	for i := 0; i < 8; i++ {
		audits = append(audits, audit("moderate-"+strconv.Itoa(i), pagespeedtest.Float(0.6)))
	}
	audits = append(audits, audit("late-critical", pagespeedtest.Float(0.1)))

	recs := SelectRecommendations(auditsOf(t, audits...))

	require.Len(t, recs, MaxRecommendations)
	assert.Equal(t, "title late-critical", recs[0].Title)
	for i, r := range recs {
		assert.Equal(t, strconv.Itoa(i+1), r.ID)
	}
	assert.Equal(t, "title moderate-3", recs[4].Title)
}

func TestSelectRecommendations_Empty(t *testing.T) {
	recs := SelectRecommendations(auditsOf(t, audit("ok", pagespeedtest.Float(1))))
	assert.NotNil(t, recs)
	assert.Empty(t, recs)

	assert.Empty(t, SelectRecommendations(nil))
}

func TestSelectRecommendations_Properties(t *testing.T) {
	scores := []*float64{nil, pagespeedtest.Float(0.95), pagespeedtest.Float(0.05), pagespeedtest.Float(0.55)}
	var audits []pagespeedtest.Audit
	for i := 0; i < 24; i++ {
		a := audit("a"+strconv.Itoa(i), scores[i%len(scores)])
		if i%5 == 0 {
			a.DetailsType = "debugdata"
		}
		audits = append(audits, a)
	}

	recs := SelectRecommendations(auditsOf(t, audits...))

	require.LessOrEqual(t, len(recs), MaxRecommendations)
	seenModerate := false
	for i, r := range recs {
		assert.Equal(t, strconv.Itoa(i+1), r.ID)
		if r.Category == models.CategoryModerate {
			seenModerate = true
		} else {
			assert.False(t, seenModerate, "critical after moderate at %d", i)
		}
	}
}
