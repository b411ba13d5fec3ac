package salesforce

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/sf-asset-bridge/internal/apperr"
	"github.com/sells-group/sf-asset-bridge/internal/resilience"
)

// flakyEnricher fails a fixed number of times before succeeding.
type flakyEnricher struct {
	failures int
	err      error
	calls    int
}

func (f *flakyEnricher) EnrichFailed(ctx context.Context, fields []string) (*Result, error) {
	f.calls++
	if f.calls <= f.failures {
		return nil, f.err
	}
	return &Result{Enriched: map[string]Enrichment{}}, nil
}

func TestHardened_PassesThroughSuccess(t *testing.T) {
	h := NewHardened(NewMockEnricher(WithSeed(1)))

	result, err := h.EnrichFailed(context.Background(), []string{"manufacturer"})
	require.NoError(t, err)
	assert.Len(t, result.Enriched, 1)
}

func TestHardened_MapsFailureToEnrichmentError(t *testing.T) {
	inner := &flakyEnricher{failures: 10, err: errors.New("boom")}
	h := NewHardened(inner)

	_, err := h.EnrichFailed(context.Background(), []string{"manufacturer"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindEnrichment, apperr.KindOf(err))
	assert.Equal(t, 1, inner.calls, "non-transient errors are not retried")
}

func TestHardened_RetriesTransientFailures(t *testing.T) {
	inner := &flakyEnricher{
		failures: 2,
		err:      resilience.NewTransientError(errors.New("service unavailable"), 503),
	}
	h := NewHardened(inner, WithRetry(resilience.RetryConfig{
		MaxAttempts:    3,
		InitialBackoff: time.Millisecond,
		JitterFraction: 0,
	}))

	_, err := h.EnrichFailed(context.Background(), []string{"manufacturer"})
	require.NoError(t, err)
	assert.Equal(t, 3, inner.calls)
}

func TestHardened_TimeoutMapsToEnrichmentError(t *testing.T) {
	slow := enricherFunc(func(ctx context.Context, fields []string) (*Result, error) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Second):
			return &Result{}, nil
		}
	})
	h := NewHardened(slow, WithTimeout(10*time.Millisecond))

	_, err := h.EnrichFailed(context.Background(), []string{"manufacturer"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindEnrichment, apperr.KindOf(err))
}

type enricherFunc func(ctx context.Context, fields []string) (*Result, error)

func (f enricherFunc) EnrichFailed(ctx context.Context, fields []string) (*Result, error) {
	return f(ctx, fields)
}
