package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

type retryProvider struct {
	inner Provider
	cfg   RetryConfig
}

// WithRetry retries transient failures with exponential backoff and
// ±20% jitter. Schema violations get a single retry; cancellation and
// truncation are returned immediately.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &retryProvider{inner: p, cfg: cfg}
}

func (r *retryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var (
		lastErr      error
		retriedShape bool
	)
	for attempt := 0; attempt < r.cfg.MaxAttempts; attempt++ {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		var invalid *ErrInvalidResponse
		switch {
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return nil, err
		case errors.As(err, new(*ErrMaxTokensExceeded)):
			return nil, err
		case errors.As(err, &invalid):
			if retriedShape {
				return nil, err
			}
			retriedShape = true
		}

		if attempt == r.cfg.MaxAttempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.wait(attempt, err)):
		}
	}
	return nil, lastErr
}

func (r *retryProvider) ModelID() string {
	return r.inner.ModelID()
}

func (r *retryProvider) wait(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	d := float64(r.cfg.InitialWait) * math.Pow(r.cfg.Multiplier, float64(attempt))
	d = math.Min(d, float64(r.cfg.MaxWait))
	d += d * 0.2 * (2*rand.Float64() - 1)
	return time.Duration(math.Max(d, 0))
}
