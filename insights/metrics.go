// Package insights turns a raw Lighthouse report into the normalized
// analysis result: four converted metrics, a short ranked list of
// recommendations and the overall performance score.
package insights

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/use-agent/vitals/models"
	"github.com/use-agent/vitals/pagespeed"
)

// ErrMissingAudit is returned when one of the metric audits is absent.
var ErrMissingAudit = errors.New("missing audit")

// metricDef binds a metric to the audit it is read from.
type metricDef struct {
	auditID string
	name    string
	unit    string
	convert func(float64) float64
}

var (
	lcpDef  = metricDef{"largest-contentful-paint", "Largest Contentful Paint", models.UnitSeconds, msToSeconds}
	fcpDef  = metricDef{"first-contentful-paint", "First Contentful Paint", models.UnitSeconds, msToSeconds}
	clsDef  = metricDef{"cumulative-layout-shift", "Cumulative Layout Shift", models.UnitNone, shiftScore}
	ttfbDef = metricDef{"server-response-time", "Time to First Byte", models.UnitSeconds, msToSeconds}
)

// ExtractMetrics reads the four metric audits. It fails if any of them is
// missing or carries no numeric value; there is no partial result.
func ExtractMetrics(audits *pagespeed.AuditMap) (models.Metrics, error) {
	var m models.Metrics
	var err error

	if m.LCP, err = extract(audits, lcpDef); err != nil {
		return models.Metrics{}, err
	}
	if m.FCP, err = extract(audits, fcpDef); err != nil {
		return models.Metrics{}, err
	}
	if m.CLS, err = extract(audits, clsDef); err != nil {
		return models.Metrics{}, err
	}
	if m.TTFB, err = extract(audits, ttfbDef); err != nil {
		return models.Metrics{}, err
	}
	return m, nil
}

func extract(audits *pagespeed.AuditMap, def metricDef) (models.PerformanceMetric, error) {
	if audits == nil {
		return models.PerformanceMetric{}, fmt.Errorf("%w: %s", ErrMissingAudit, def.auditID)
	}
	audit, ok := audits.Get(def.auditID)
	if !ok {
		return models.PerformanceMetric{}, fmt.Errorf("%w: %s", ErrMissingAudit, def.auditID)
	}
	if audit.NumericValue == nil {
		return models.PerformanceMetric{}, fmt.Errorf("%w: %s has no numericValue", ErrMissingAudit, def.auditID)
	}

	return models.PerformanceMetric{
		Name:        def.name,
		Value:       def.convert(*audit.NumericValue),
		Unit:        def.unit,
		Score:       audit.Score,
		Description: audit.Description,
	}, nil
}

// msToSeconds converts a millisecond timing to seconds, one decimal.
func msToSeconds(ms float64) float64 {
	return roundTo(ms/1000, 1)
}

// shiftScore keeps the dimensionless layout shift, two decimals.
func shiftScore(v float64) float64 {
	return roundTo(v, 2)
}

// roundTo rounds the exact binary value of v half away from zero, so
// 0.145 (stored as 0.14499999...) becomes 0.14 and 1.25 becomes 1.3.
// Scaling in float64 first would turn 0.145*100 into 14.5 and round up.
func roundTo(v float64, decimals int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	neg := v < 0
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)

	r := new(big.Rat).SetFloat64(math.Abs(v))
	r.Mul(r, new(big.Rat).SetInt(scale))

	n, rem := new(big.Int).QuoRem(r.Num(), r.Denom(), new(big.Int))
	if rem.Lsh(rem, 1).Cmp(r.Denom()) >= 0 {
		n.Add(n, big.NewInt(1))
	}

	out, _ := new(big.Rat).SetFrac(n, scale).Float64()
	if neg {
		return -out
	}
	return out
}
