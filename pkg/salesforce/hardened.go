package salesforce

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/sf-asset-bridge/internal/apperr"
	"github.com/sells-group/sf-asset-bridge/internal/resilience"
)

// Hardened wraps an Enricher with a per-call timeout, transient-error
// retries, and typed error mapping. Retry policy lives here, not in the
// orchestrator: the pipeline itself never retries enrichment.
type Hardened struct {
	inner   Enricher
	timeout time.Duration
	retry   resilience.RetryConfig
}

// HardenedOption configures a Hardened wrapper.
type HardenedOption func(*Hardened)

// WithTimeout sets the per-call enrichment timeout. Zero disables it.
func WithTimeout(d time.Duration) HardenedOption {
	return func(h *Hardened) { h.timeout = d }
}

// WithRetry sets the retry policy for transient enrichment failures.
func WithRetry(cfg resilience.RetryConfig) HardenedOption {
	return func(h *Hardened) { h.retry = cfg }
}

// NewHardened wraps an Enricher. By default calls time out after 10s and
// are not retried (MaxAttempts 1); the in-process mock never needs more.
func NewHardened(inner Enricher, opts ...HardenedOption) *Hardened {
	h := &Hardened{
		inner:   inner,
		timeout: 10 * time.Second,
		retry:   resilience.RetryConfig{MaxAttempts: 1},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// EnrichFailed calls the wrapped Enricher with timeout and retry applied.
// Any failure is mapped to an enrichment-service error.
func (h *Hardened) EnrichFailed(ctx context.Context, fields []string) (*Result, error) {
	retry := h.retry
	retry.OnRetry = resilience.RetryLogger("salesforce", "enrich")

	result, err := resilience.DoVal(ctx, retry, func(ctx context.Context) (*Result, error) {
		if h.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, h.timeout)
			defer cancel()
		}
		return h.inner.EnrichFailed(ctx, fields)
	})
	if err != nil {
		zap.L().Error("enrichment call failed",
			zap.Strings("fields", fields),
			zap.Error(err),
		)
		return nil, apperr.Wrap(apperr.KindEnrichment, "salesforce enrichment unavailable", err)
	}
	return result, nil
}
