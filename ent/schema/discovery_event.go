package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DiscoveryEvent records one step discovery run for a build part.
type DiscoveryEvent struct {
	ent.Schema
}

func (DiscoveryEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (DiscoveryEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Comment("Viewer session that ran the discovery"),
		field.String("base_path").
			Comment("Step image prefix of the part"),
		field.Int("probed").
			Comment("Number of candidates probed"),
		field.Int("found").
			Comment("Candidates that existed, including those after a gap"),
		field.Int("steps").
			Comment("Discovered step count, at least 1"),
		field.Int64("duration_ms").
			Comment("Wall-clock time of the run"),
	}
}

func (DiscoveryEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}
