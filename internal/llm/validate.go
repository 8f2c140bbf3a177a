package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// compiled caches compiled schemas by Schema.Name.
var compiled sync.Map // map[string]*jsonschema.Schema

// checkContent validates raw against schema. A nil schema accepts anything.
func checkContent(schema *Schema, raw json.RawMessage) error {
	if schema == nil {
		return nil
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	sch, err := compile(schema)
	if err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("compile schema %q: %w", schema.Name, err)}
	}
	if err := sch.Validate(doc); err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("schema validation failed: %w", err)}
	}
	return nil
}

func compile(schema *Schema) (*jsonschema.Schema, error) {
	if s, ok := compiled.Load(schema.Name); ok {
		return s.(*jsonschema.Schema), nil
	}

	// Round-trip through JSON so Go literals become plain JSON values.
	def, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(def))
	if err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://llm/%s.json", schema.Name)
	if err := c.AddResource(url, parsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	s, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	compiled.Store(schema.Name, s)
	return s, nil
}

// finish validates content and assembles the response.
// Structured output cut off at the token limit is never valid JSON, so it
// is reported as truncation rather than a schema failure.
func finish(req Request, content json.RawMessage, usage Usage, model, stop string) (*Response, error) {
	if stop == stopMaxTokens && req.Schema != nil {
		return nil, &ErrMaxTokensExceeded{Content: content}
	}
	if err := checkContent(req.Schema, content); err != nil {
		return nil, err
	}
	return &Response{Content: content, Usage: usage, Model: model, StopReason: stop}, nil
}
