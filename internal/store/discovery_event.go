package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/lessonbook/internal/discovery"
)

// DiscoveryEvent is a stored step discovery run.
type DiscoveryEvent struct {
	ID        int
	Sequence  int64
	CreatedAt time.Time
	discovery.Event
}

// DiscoveryRepo stores discovery runs. It implements discovery.Recorder.
type DiscoveryRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *DiscoveryRepo) RecordDiscovery(ctx context.Context, ev discovery.Event) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}
	query, args := builder().Insert(tableDiscovery).
		Columns("sequence", "created_at", "session_id", "base_path", "probed", "found", "steps", "duration_ms").
		Values(seq, time.Now().UTC(), ev.SessionID, ev.BasePath, ev.Probed, ev.Found, ev.Steps, ev.Duration.Milliseconds()).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save discovery event: %w", err)
	}
	return nil
}

// List returns discovery events, newest first.
func (r *DiscoveryRepo) List(ctx context.Context, opts QueryOpts) ([]DiscoveryEvent, error) {
	sel := builder().
		Select("id", "sequence", "created_at", "session_id", "base_path", "probed", "found", "steps", "duration_ms").
		From(entsql.Table(tableDiscovery))
	query, args := opts.apply(sel).Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query discovery events: %w", err)
	}
	defer rows.Close()

	var out []DiscoveryEvent
	for rows.Next() {
		var (
			e  DiscoveryEvent
			ms int64
		)
		if err := rows.Scan(&e.ID, &e.Sequence, &e.CreatedAt, &e.SessionID, &e.BasePath,
			&e.Probed, &e.Found, &e.Steps, &ms); err != nil {
			return nil, fmt.Errorf("scan discovery event: %w", err)
		}
		e.Duration = time.Duration(ms) * time.Millisecond
		out = append(out, e)
	}
	return out, rows.Err()
}
