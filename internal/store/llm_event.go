package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// LLMRequestEventData captures a single LLM request.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestEvent is a stored LLM request.
type LLMRequestEvent struct {
	ID        int
	Sequence  int64
	CreatedAt time.Time
	LLMRequestEventData
}

// LLMRepo stores LLM request events.
type LLMRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *LLMRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}
	query, args := builder().Insert(tableLLMRequest).
		Columns("sequence", "created_at", "provider", "model", "purpose",
			"input_tokens", "output_tokens", "latency_ms", "success", "error_message").
		Values(seq, time.Now().UTC(), data.Provider, data.Model, data.Purpose,
			data.InputTokens, data.OutputTokens, data.LatencyMs, data.Success, data.ErrorMessage).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

// List returns LLM request events, newest first.
func (r *LLMRepo) List(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error) {
	sel := builder().
		Select("id", "sequence", "created_at", "provider", "model", "purpose",
			"input_tokens", "output_tokens", "latency_ms", "success", "error_message").
		From(entsql.Table(tableLLMRequest))
	query, args := opts.apply(sel).Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query LLM request events: %w", err)
	}
	defer rows.Close()

	var out []LLMRequestEvent
	for rows.Next() {
		var e LLMRequestEvent
		if err := rows.Scan(&e.ID, &e.Sequence, &e.CreatedAt, &e.Provider, &e.Model, &e.Purpose,
			&e.InputTokens, &e.OutputTokens, &e.LatencyMs, &e.Success, &e.ErrorMessage); err != nil {
			return nil, fmt.Errorf("scan LLM request event: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
