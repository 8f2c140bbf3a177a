package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go/option"
)

func anthropicServer(t *testing.T, status int, body map[string]any, seen *map[string]any) *AnthropicProvider {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if seen != nil {
			_ = json.NewDecoder(r.Body).Decode(seen)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(server.Close)

	p, err := NewAnthropicProvider(
		AnthropicConfig{APIKey: "test-key", Model: "claude-haiku"},
		option.WithBaseURL(server.URL),
		option.WithMaxRetries(0),
	)
	if err != nil {
		t.Fatalf("NewAnthropicProvider: %v", err)
	}
	return p
}

func anthropicMessage(text, stop string) map[string]any {
	return map[string]any{
		"id":          "msg_test",
		"type":        "message",
		"role":        "assistant",
		"content":     []map[string]any{{"type": "text", "text": text}},
		"model":       "claude-haiku-4-5-20251001",
		"stop_reason": stop,
		"usage":       map[string]any{"input_tokens": 40, "output_tokens": 6},
	}
}

func TestAnthropicProvider_Generate(t *testing.T) {
	var seen map[string]any
	p := anthropicServer(t, http.StatusOK, anthropicMessage(`{"line":"GREAT JOB!"}`, "end_turn"), &seen)

	resp, err := p.Generate(context.Background(), Request{
		System:    "Cheer on a young robot builder.",
		Messages:  []Message{{Role: RoleUser, Content: "They solved the mission."}},
		Schema:    lineSchema(),
		MaxTokens: 64,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"line":"GREAT JOB!"}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if resp.Usage.TotalTokens != 46 || resp.StopReason != stopEnd {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if seen["model"] != "claude-haiku-4-5-20251001" {
		t.Fatalf("expected resolved model, got %v", seen["model"])
	}
	if p.ModelID() != "claude-haiku-4-5-20251001" {
		t.Fatalf("unexpected model id %q", p.ModelID())
	}
}

func TestAnthropicProvider_RateLimit(t *testing.T) {
	p := anthropicServer(t, http.StatusTooManyRequests, map[string]any{
		"type":  "error",
		"error": map[string]any{"type": "rate_limit_error", "message": "slow down"},
	}, nil)

	_, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "hi"}},
		MaxTokens: 16,
	})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got %v", err)
	}
}

func TestAnthropicProvider_ServerError(t *testing.T) {
	p := anthropicServer(t, http.StatusInternalServerError, map[string]any{
		"type":  "error",
		"error": map[string]any{"type": "api_error", "message": "boom"},
	}, nil)

	_, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "hi"}},
		MaxTokens: 16,
	})
	var down *ErrProviderUnavailable
	if !errors.As(err, &down) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestAnthropicProvider_Truncated(t *testing.T) {
	p := anthropicServer(t, http.StatusOK, anthropicMessage(`{"line":"GRE`, "max_tokens"), nil)

	_, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "hi"}},
		Schema:    lineSchema(),
		MaxTokens: 4,
	})
	var truncated *ErrMaxTokensExceeded
	if !errors.As(err, &truncated) {
		t.Fatalf("expected ErrMaxTokensExceeded, got %v", err)
	}
}

func TestAnthropicProvider_RequiresKey(t *testing.T) {
	if _, err := NewAnthropicProvider(AnthropicConfig{}); err == nil {
		t.Fatal("expected error without API key")
	}
}

func TestClassifyStatus(t *testing.T) {
	cause := errors.New("x")
	var rl *ErrRateLimit
	if !errors.As(classifyStatus(http.StatusTooManyRequests, cause), &rl) {
		t.Fatal("429 should be a rate limit")
	}
	var down *ErrProviderUnavailable
	if !errors.As(classifyStatus(http.StatusBadGateway, cause), &down) {
		t.Fatal("502 should be unavailable")
	}
}
