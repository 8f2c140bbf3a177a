package store

import (
	"testing"

	"entgo.io/ent"
	entschema "entgo.io/ent/dialect/sql/schema"

	"github.com/abhisek/lessonbook/ent/schema"
)

type entSchema interface {
	Mixin() []ent.Mixin
	Fields() []ent.Field
}

// entColumns lists the columns ent would generate for s: id, mixin fields,
// then the schema's own fields.
func entColumns(s entSchema) []string {
	cols := []string{"id"}
	for _, m := range s.Mixin() {
		for _, f := range m.Fields() {
			cols = append(cols, f.Descriptor().Name)
		}
	}
	for _, f := range s.Fields() {
		cols = append(cols, f.Descriptor().Name)
	}
	return cols
}

func columnNames(cols []*entschema.Column) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.Name
	}
	return out
}

func TestTablesMatchEntSchema(t *testing.T) {
	tests := []struct {
		name   string
		schema entSchema
		table  *entschema.Table
	}{
		{"discovery", schema.DiscoveryEvent{}, discoveryTable},
		{"llm", schema.LLMRequestEvent{}, llmTable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := entColumns(tt.schema)
			got := columnNames(tt.table.Columns)
			if len(want) != len(got) {
				t.Fatalf("columns = %v, ent schema has %v", got, want)
			}
			for i := range want {
				if want[i] != got[i] {
					t.Errorf("column %d = %q, ent schema has %q", i, got[i], want[i])
				}
			}
		})
	}
}
