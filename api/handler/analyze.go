package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/use-agent/vitals/api/middleware"
	"github.com/use-agent/vitals/insights"
	"github.com/use-agent/vitals/models"
	"github.com/use-agent/vitals/pagespeed"
)

// ReportFetcher runs one provider audit. *pagespeed.Client satisfies it.
type ReportFetcher interface {
	Run(ctx context.Context, targetURL string) (*pagespeed.Report, error)
}

// Analyze returns a handler for POST /api/analyze.
//
// Orchestration flow:
//  1. Bind request; a missing url is a 400, nothing is fetched.
//  2. Fetch the provider report (detached from client cancellation).
//  3. Extract metrics + recommendations, stamp the time, return 200.
//
// Every failure after step 1 is a 500 with one generic message; the cause
// goes to the log and the error reporter only.
func Analyze(fetcher ReportFetcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		// ── 1. Parse request ────────────────────────────────────────
		var req models.AnalyzeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) {
				c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: models.MsgURLRequired})
				return
			}
			respondFailure(c, "", models.NewAnalysisError(models.ErrCodeInvalidInput, "decode request body", err))
			return
		}

		// ── 2. Fetch ────────────────────────────────────────────────
		// The audit runs to completion even if the caller goes away.
		start := time.Now()
		report, err := fetcher.Run(context.WithoutCancel(c.Request.Context()), req.URL)
		if err != nil {
			respondFailure(c, req.URL, err)
			return
		}

		// ── 3. Transform and respond ────────────────────────────────
		result, err := insights.Analyze(report, req.URL, time.Now())
		if err != nil {
			respondFailure(c, req.URL, err)
			return
		}

		slog.Info("analysis completed",
			"request_id", middleware.GetRequestID(c),
			"url", req.URL,
			"recommendations", len(result.Recommendations),
			"provider_ms", time.Since(start).Milliseconds(),
		)
		c.JSON(http.StatusOK, result)
	}
}

// respondFailure logs and reports err, then writes the generic 500.
func respondFailure(c *gin.Context, url string, err error) {
	requestID := middleware.GetRequestID(c)
	code := models.CodeOf(err)

	slog.Error("analysis failed",
		"request_id", requestID,
		"url", url,
		"code", code,
		"error", err,
	)

	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("error_code", code)
		scope.SetTag("request_id", requestID)
		scope.SetContext("analysis", sentry.Context{"url": url})
		sentry.CaptureException(err)
	})

	c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: models.MsgAnalysisFailed})
}
