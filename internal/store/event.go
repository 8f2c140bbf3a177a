package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// QueryOpts configures event listing.
type QueryOpts struct {
	Limit int       // max results (0 = unlimited)
	After int64     // sequence > After
	From  time.Time // created_at >= From
}

func (o QueryOpts) apply(sel *entsql.Selector) *entsql.Selector {
	if o.After > 0 {
		sel.Where(entsql.GT("sequence", o.After))
	}
	if !o.From.IsZero() {
		sel.Where(entsql.GTE("created_at", o.From))
	}
	sel.OrderBy(entsql.Desc("sequence"))
	if o.Limit > 0 {
		sel.Limit(o.Limit)
	}
	return sel
}

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

// sequenceCounter hands out one increasing sequence number shared by every
// event table, so events of different kinds can be ordered together.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

func newSequenceCounter(ctx context.Context, db *sql.DB) (*sequenceCounter, error) {
	query, args := builder().Insert(tableSequence).
		Columns("id", "next_val").
		Values(1, 1).
		OnConflict(entsql.DoNothing()).
		Query()
	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}
	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	query, args := builder().Update(tableSequence).
		Add("next_val", 1).
		Where(entsql.EQ("id", 1)).
		Returning("next_val").
		Query()
	var next int64
	if err := sc.db.QueryRowContext(ctx, query, args...).Scan(&next); err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return next - 1, nil
}
