package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// LLMRequestEvent records every coach LLM call.
type LLMRequestEvent struct {
	ent.Schema
}

func (LLMRequestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LLMRequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider").
			Comment("Provider name: anthropic, openai, gemini, openrouter"),
		field.String("model").
			Comment("Actual model ID used"),
		field.String("purpose").
			Comment("Consumer-provided label such as coach"),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Int64("latency_ms").
			Default(0),
		field.Bool("success"),
		field.String("error_message").
			Default("").
			Comment("Error message if failed"),
	}
}
