package llm

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/abhisek/lessonbook/internal/store"
)

type memoryRecorder struct {
	mu     sync.Mutex
	events []store.LLMRequestEventData
	err    error
}

func (m *memoryRecorder) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, data)
	return m.err
}

func TestRecording_Success(t *testing.T) {
	rec := &memoryRecorder{}
	mock := NewMockProvider(MockResponse{Content: []byte(`{}`), Usage: Usage{InputTokens: 7, OutputTokens: 2}})
	p := WithRecording(mock, ProviderMock, rec, nil)

	if _, err := p.Generate(WithPurpose(context.Background(), "coach"), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rec.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(rec.events))
	}
	ev := rec.events[0]
	if ev.Provider != ProviderMock || ev.Model != ProviderMock || ev.Purpose != "coach" {
		t.Fatalf("unexpected event: %+v", ev)
	}
	if !ev.Success || ev.InputTokens != 7 || ev.OutputTokens != 2 || ev.ErrorMessage != "" {
		t.Fatalf("unexpected event: %+v", ev)
	}
}

func TestRecording_Failure(t *testing.T) {
	rec := &memoryRecorder{}
	p := WithRecording(NewMockProvider(Fail(errors.New("boom"))), ProviderMock, rec, nil)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error")
	}
	ev := rec.events[0]
	if ev.Success || ev.ErrorMessage != "boom" || ev.Purpose != "unknown" {
		t.Fatalf("unexpected event: %+v", ev)
	}
}

func TestRecording_StoreErrorIgnored(t *testing.T) {
	rec := &memoryRecorder{err: errors.New("disk full")}
	p := WithRecording(NewMockProvider(Reply(`{}`)), ProviderMock, rec, nil)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("recording failure leaked: %v", err)
	}
}

func TestRecording_NilRepo(t *testing.T) {
	p := WithRecording(NewMockProvider(Reply(`{}`)), ProviderMock, nil, nil)
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != ProviderMock {
		t.Fatalf("unexpected model id %q", p.ModelID())
	}
}

func TestRecording_WithStore(t *testing.T) {
	db, err := store.Open("file:record_test?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	p := WithRetry(WithRecording(NewMockProvider(unavailable(), Reply(`{}`)), ProviderMock, db.LLMRepo(), nil), fastRetry(2))
	if _, err := p.Generate(WithPurpose(context.Background(), "coach"), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	events, err := db.LLMRepo().List(context.Background(), store.QueryOpts{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected one event per attempt, got %d", len(events))
	}
}
