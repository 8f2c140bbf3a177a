package llm

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/lessonbook/internal/store"
)

// EventRecorder stores one event per provider call.
type EventRecorder interface {
	AppendLLMRequest(ctx context.Context, data store.LLMRequestEventData) error
}

type recordingProvider struct {
	inner    Provider
	provider string
	repo     EventRecorder
	logger   *zap.Logger
}

// WithRecording wraps p so every call is logged and, when repo is non-nil,
// stored. Recording failures never fail the request.
func WithRecording(p Provider, provider string, repo EventRecorder, logger *zap.Logger) Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &recordingProvider{inner: p, provider: provider, repo: repo, logger: logger}
}

func (r *recordingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := r.inner.Generate(ctx, req)

	data := store.LLMRequestEventData{
		Provider:  r.provider,
		Model:     r.inner.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		if resp.Model != "" {
			data.Model = resp.Model
		}
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	r.logger.Debug("llm request",
		zap.String("provider", data.Provider),
		zap.String("model", data.Model),
		zap.String("purpose", data.Purpose),
		zap.Int64("latency_ms", data.LatencyMs),
		zap.Bool("success", data.Success),
	)
	if r.repo != nil {
		if recErr := r.repo.AppendLLMRequest(ctx, data); recErr != nil {
			r.logger.Warn("record llm request", zap.Error(recErr))
		}
	}
	return resp, err
}

func (r *recordingProvider) ModelID() string {
	return r.inner.ModelID()
}
