package store

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

const (
	tableSequence   = "global_sequence"
	tableDiscovery  = "discovery_events"
	tableLLMRequest = "llm_request_events"
)

var (
	sequenceColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt},
		{Name: "next_val", Type: field.TypeInt64, Default: 1},
	}
	sequenceTable = &schema.Table{
		Name:       tableSequence,
		Columns:    sequenceColumns,
		PrimaryKey: []*schema.Column{sequenceColumns[0]},
	}

	discoveryColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "base_path", Type: field.TypeString},
		{Name: "probed", Type: field.TypeInt},
		{Name: "found", Type: field.TypeInt},
		{Name: "steps", Type: field.TypeInt},
		{Name: "duration_ms", Type: field.TypeInt64},
	}
	discoveryTable = &schema.Table{
		Name:       tableDiscovery,
		Columns:    discoveryColumns,
		PrimaryKey: []*schema.Column{discoveryColumns[0]},
		Indexes: []*schema.Index{
			{Name: "discoveryevent_sequence", Unique: true, Columns: []*schema.Column{discoveryColumns[1]}},
			{Name: "discoveryevent_session_id", Columns: []*schema.Column{discoveryColumns[3]}},
		},
	}

	llmColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt},
		{Name: "output_tokens", Type: field.TypeInt},
		{Name: "latency_ms", Type: field.TypeInt64},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	llmTable = &schema.Table{
		Name:       tableLLMRequest,
		Columns:    llmColumns,
		PrimaryKey: []*schema.Column{llmColumns[0]},
		Indexes: []*schema.Index{
			{Name: "llmrequestevent_sequence", Unique: true, Columns: []*schema.Column{llmColumns[1]}},
		},
	}

	tables = []*schema.Table{sequenceTable, discoveryTable, llmTable}
)

func migrate(ctx context.Context, drv dialect.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return fmt.Errorf("new migrate: %w", err)
	}
	if err := m.Create(ctx, tables...); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}
	return nil
}
