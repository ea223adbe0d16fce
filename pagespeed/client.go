package pagespeed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/use-agent/vitals/config"
	"github.com/use-agent/vitals/models"
)

// Fixed audit parameters. Only the mobile strategy and the performance
// category are ever requested.
const (
	StrategyMobile      = "mobile"
	CategoryPerformance = "performance"
)

var tracer = otel.Tracer("github.com/use-agent/vitals/pagespeed")

// Client runs audits against the PageSpeed Insights API.
// It holds no per-request state and is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
}

// NewClient creates a Client for the configured provider.
// Pass nil to use a plain http.Client with transport defaults.
func NewClient(httpClient *http.Client, cfg config.ProviderConfig) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		httpClient: httpClient,
		endpoint:   cfg.Endpoint,
		apiKey:     cfg.APIKey,
	}
}

// Run issues a single audit request for targetURL and decodes the report.
// A non-2xx status or a provider error envelope is returned as an
// AnalysisError carrying the provider's message.
func (c *Client) Run(ctx context.Context, targetURL string) (*Report, error) {
	ctx, span := tracer.Start(ctx, "pagespeed.Run",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("vitals.target_url", targetURL)),
	)
	defer span.End()

	report, err := c.run(ctx, targetURL)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, models.CodeOf(err))
	}
	return report, err
}

func (c *Client) run(ctx context.Context, targetURL string) (*Report, error) {
	endpoint, err := c.requestURL(targetURL)
	if err != nil {
		return nil, models.NewAnalysisError(models.ErrCodeInternal, "build provider url", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, models.NewAnalysisError(models.ErrCodeInternal, "create request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, models.NewAnalysisError(models.ErrCodeProviderUnavailable, "provider request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, models.NewAnalysisError(models.ErrCodeProviderUnavailable, "failed to read provider response", err)
	}

	var report Report
	if err := json.Unmarshal(body, &report); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, classifyProviderError(resp.StatusCode, nil)
		}
		return nil, models.NewAnalysisError(models.ErrCodeMalformedReport, "failed to parse provider response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 || report.Error != nil {
		return nil, classifyProviderError(resp.StatusCode, report.Error)
	}

	return &report, nil
}

// requestURL appends the fixed audit parameters and the optional key.
func (c *Client) requestURL(targetURL string) (string, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("url", targetURL)
	q.Set("strategy", StrategyMobile)
	q.Set("category", CategoryPerformance)
	if c.apiKey != "" {
		q.Set("key", c.apiKey)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// classifyProviderError keeps the provider's own message for logs.
func classifyProviderError(statusCode int, apiErr *APIError) *models.AnalysisError {
	msg := "Failed to analyze website"
	if apiErr != nil && apiErr.Message != "" {
		msg = apiErr.Message
	}
	return models.NewAnalysisError(models.ErrCodeProviderError,
		fmt.Sprintf("provider returned %d: %s", statusCode, msg), nil)
}
