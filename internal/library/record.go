// Package library holds the shared library collections that lesson
// documents reference by id, and the rules for layering them under
// lesson-local content.
package library

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Record is one library entry (or one lesson section) kept as raw JSON
// fields. Typed views are decoded on demand with Decode.
type Record map[string]json.RawMessage

// ID returns the record's "id" field, or "" when absent.
func (r Record) ID() string {
	return r.String("id")
}

// Has reports whether key is present.
func (r Record) Has(key string) bool {
	_, ok := r[key]
	return ok
}

// String returns the field as a string. JSON strings are unquoted; other
// scalars are returned as their literal text. Missing or null fields
// return "".
func (r Record) String(key string) string {
	raw, ok := r[key]
	if !ok {
		return ""
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	return string(raw)
}

// Clone returns a shallow copy. Raw values are never written in place, so
// sharing them between copies is safe.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Decode unmarshals the record into v.
func (r Record) Decode(v any) error {
	b, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("decode record %q: %w", r.ID(), err)
	}
	return nil
}

// DecodeCollection parses a library file. Most collections are JSON arrays;
// single-record files such as footer.json may be a bare object.
func DecodeCollection(data []byte) ([]Record, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var rec Record
		if err := json.Unmarshal(trimmed, &rec); err != nil {
			return nil, fmt.Errorf("parse record: %w", err)
		}
		return []Record{rec}, nil
	}
	var recs []Record
	if err := json.Unmarshal(trimmed, &recs); err != nil {
		return nil, fmt.Errorf("parse collection: %w", err)
	}
	return recs, nil
}

// Reference points at a library record either by id or by an inline
// object carrying an id (and possibly more fields).
type Reference struct {
	id     string
	inline Record
	raw    string
}

// IDRef returns a reference by id.
func IDRef(id string) Reference {
	return Reference{id: id, raw: id}
}

// InlineRef returns a reference backed by an inline record.
func InlineRef(r Record) Reference {
	raw, _ := json.Marshal(r)
	return Reference{id: r.ID(), inline: r, raw: string(raw)}
}

// ID returns the referenced id.
func (r Reference) ID() string { return r.id }

// Inline returns the inline record, if any.
func (r Reference) Inline() (Record, bool) { return r.inline, r.inline != nil }

// Raw returns the reference as it appeared in the document: the id string
// for id references, the compact JSON object for inline ones.
func (r Reference) Raw() string { return r.raw }

func (r *Reference) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 {
		return fmt.Errorf("empty reference")
	}
	switch trimmed[0] {
	case '"':
		var id string
		if err := json.Unmarshal(trimmed, &id); err != nil {
			return fmt.Errorf("parse reference id: %w", err)
		}
		*r = IDRef(id)
		return nil
	case '{':
		var rec Record
		if err := json.Unmarshal(trimmed, &rec); err != nil {
			return fmt.Errorf("parse inline reference: %w", err)
		}
		*r = InlineRef(rec)
		return nil
	}
	return fmt.Errorf("reference must be a string or object, got %s", strings.TrimSpace(string(trimmed)))
}

func (r Reference) MarshalJSON() ([]byte, error) {
	if r.inline != nil {
		return json.Marshal(r.inline)
	}
	return json.Marshal(r.id)
}

// Resolve finds the first record whose id matches the reference.
func Resolve(ref Reference, records []Record) (Record, bool) {
	if ref.id == "" {
		return nil, false
	}
	for _, rec := range records {
		if rec.ID() == ref.id {
			return rec, true
		}
	}
	return nil, false
}
