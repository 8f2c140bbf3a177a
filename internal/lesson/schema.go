package lesson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/lessonbook/internal/library"
)

// ValidationError reports a document or library file that does not match
// its structural schema.
type ValidationError struct {
	Name string
	Err  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: invalid structure: %v", e.Name, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

var documentSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"courseName":   map[string]any{"type": "string"},
		"lessonNumber": map[string]any{"type": []any{"string", "number"}},
		"title":        map[string]any{"type": "string"},
		"sections": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"type": map[string]any{"type": "string", "minLength": 1},
					"id":   map[string]any{"type": "string"},
				},
				"required": []any{"type"},
			},
		},
	},
	"required": []any{"sections"},
}

var recordWithID = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id": map[string]any{"type": "string", "minLength": 1},
	},
	"required": []any{"id"},
}

var collectionSchema = map[string]any{
	"type":  "array",
	"items": recordWithID,
}

// footer.json is usually a bare object without an id.
var footerSchema = map[string]any{
	"oneOf": []any{
		map[string]any{"type": "object"},
		map[string]any{"type": "array", "items": map[string]any{"type": "object"}},
	},
}

var (
	compileOnce sync.Once
	compiled    map[string]*jsonschema.Schema
	compileErr  error
)

func schemas() (map[string]*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		defs := map[string]map[string]any{
			"lesson":       documentSchema,
			"collection":   collectionSchema,
			library.Footer: footerSchema,
		}
		c := jsonschema.NewCompiler()
		out := make(map[string]*jsonschema.Schema, len(defs))
		for name, def := range defs {
			raw, err := json.Marshal(def)
			if err != nil {
				compileErr = fmt.Errorf("marshal schema %s: %w", name, err)
				return
			}
			parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
			if err != nil {
				compileErr = fmt.Errorf("parse schema %s: %w", name, err)
				return
			}
			url := fmt.Sprintf("schema://lessonbook/%s.json", name)
			if err := c.AddResource(url, parsed); err != nil {
				compileErr = fmt.Errorf("add schema %s: %w", name, err)
				return
			}
			s, err := c.Compile(url)
			if err != nil {
				compileErr = fmt.Errorf("compile schema %s: %w", name, err)
				return
			}
			out[name] = s
		}
		compiled = out
	})
	return compiled, compileErr
}

func validate(schemaName, label string, data []byte) error {
	all, err := schemas()
	if err != nil {
		return err
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return &ValidationError{Name: label, Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	if err := all[schemaName].Validate(doc); err != nil {
		return &ValidationError{Name: label, Err: err}
	}
	return nil
}

// ValidateDocument checks the lesson document structure.
func ValidateDocument(data []byte) error {
	return validate("lesson", "lesson_data.json", data)
}

// ValidateCollection checks a library file. Every category but footer must
// be an array of records carrying an id.
func ValidateCollection(category string, data []byte) error {
	name := "collection"
	if category == library.Footer {
		name = library.Footer
	}
	return validate(name, category+".json", data)
}
