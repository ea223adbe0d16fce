// Package pagespeedtest provides report fixtures and a fake provider
// server for tests.
package pagespeedtest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
)

// Audit describes one audit entry in a fixture report.
type Audit struct {
	ID           string
	Title        string
	Description  string
	Score        *float64
	NumericValue *float64
	DetailsType  string
}

// Float returns a pointer to f.
func Float(f float64) *float64 { return &f }

// CoreAudits returns the four metric audits with LCP 2500ms, FCP 1234ms,
// CLS 0.123 and TTFB 456ms.
func CoreAudits() []Audit {
	return []Audit{
		{
			ID:           "largest-contentful-paint",
			Title:        "Largest Contentful Paint",
			Description:  "Largest Contentful Paint marks the time at which the largest text or image is painted.",
			Score:        Float(0.85),
			NumericValue: Float(2500),
		},
		{
			ID:           "first-contentful-paint",
			Title:        "First Contentful Paint",
			Description:  "First Contentful Paint marks the time at which the first text or image is painted.",
			Score:        Float(0.92),
			NumericValue: Float(1234),
		},
		{
			ID:           "cumulative-layout-shift",
			Title:        "Cumulative Layout Shift",
			Description:  "Cumulative Layout Shift measures the movement of visible elements within the viewport.",
			Score:        Float(0.88),
			NumericValue: Float(0.123),
		},
		{
			ID:           "server-response-time",
			Title:        "Initial server response time was short",
			Description:  "Keep the server response time for the main document short.",
			Score:        Float(1),
			NumericValue: Float(456),
		},
	}
}

// Without returns audits minus the one with the given id.
func Without(audits []Audit, id string) []Audit {
	out := make([]Audit, 0, len(audits))
	for _, a := range audits {
		if a.ID != id {
			out = append(out, a)
		}
	}
	return out
}

type auditJSON struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Score        *float64     `json:"score"`
	NumericValue *float64     `json:"numericValue,omitempty"`
	Details      *detailsJSON `json:"details,omitempty"`
}

type detailsJSON struct {
	Type string `json:"type"`
}

// ReportJSON renders a runPagespeed response with the audits in the
// given order and the given performance category score.
func ReportJSON(score *float64, audits ...Audit) []byte {
	var buf bytes.Buffer
	buf.WriteString(`{"id":"https://example.com/","lighthouseResult":{"audits":{`)
	for i, a := range audits {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, _ := json.Marshal(a.ID)
		entry := auditJSON{
			ID:           a.ID,
			Title:        a.Title,
			Description:  a.Description,
			Score:        a.Score,
			NumericValue: a.NumericValue,
		}
		if a.DetailsType != "" {
			entry.Details = &detailsJSON{Type: a.DetailsType}
		}
		val, _ := json.Marshal(entry)
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	perf, _ := json.Marshal(score)
	buf.WriteString(`},"categories":{"performance":{"id":"performance","title":"Performance","score":`)
	buf.Write(perf)
	buf.WriteString(`}}}}`)
	return buf.Bytes()
}

// ErrorJSON renders a Google API error envelope.
func ErrorJSON(code int, message string) []byte {
	b, _ := json.Marshal(map[string]any{
		"error": map[string]any{
			"code":    code,
			"message": message,
			"status":  "INVALID_ARGUMENT",
		},
	})
	return b
}

// Server is a fake provider that always answers with the same status
// and body, recording every query it receives.
type Server struct {
	*httptest.Server

	hits    atomic.Int32
	mu      sync.Mutex
	queries []url.Values
}

// NewServer starts a fake provider. It is closed when the test ends.
func NewServer(t testing.TB, status int, body []byte) *Server {
	t.Helper()
	s := &Server{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.hits.Add(1)
		s.mu.Lock()
		s.queries = append(s.queries, r.URL.Query())
		s.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write(body)
	}))
	t.Cleanup(s.Close)
	return s
}

// Hits returns the number of requests served.
func (s *Server) Hits() int { return int(s.hits.Load()) }

// LastQuery returns the query of the most recent request, or nil.
func (s *Server) LastQuery() url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queries) == 0 {
		return nil
	}
	return s.queries[len(s.queries)-1]
}
