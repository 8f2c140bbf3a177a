package llm

import "context"

type contextKey string

const purposeKey contextKey = "llm_purpose"

// WithPurpose labels requests made with ctx for event recording.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom returns the purpose label of ctx, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}
