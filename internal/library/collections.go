package library

import "encoding/json"

// Library categories.
const (
	Learn   = "learn"
	Point   = "point"
	Mission = "mission"
	Home    = "home"
	Footer  = "footer"
	Robot   = "robot"
)

// Categories lists every shared collection in load order.
var Categories = []string{Learn, Point, Mission, Home, Footer, Robot}

// categoryAliases maps section types whose library category differs from
// the type name.
var categoryAliases = map[string]string{
	"mission_view": Mission,
	"build":        Robot,
}

// CategoryFor returns the library category that holds shared records for
// a section type.
func CategoryFor(sectionType string) string {
	if c, ok := categoryAliases[sectionType]; ok {
		return c
	}
	return sectionType
}

// Collections maps a category to its ordered records.
type Collections map[string][]Record

// Find returns the first record with the given id in category.
func (c Collections) Find(category, id string) (Record, bool) {
	return Resolve(IDRef(id), c[category])
}

// Section is one lesson-document section descriptor. Its fields stay raw so
// shared defaults can be layered beneath them before a typed view is decoded.
type Section struct {
	Fields Record
}

// NewSection builds a section from raw fields.
func NewSection(fields Record) Section {
	return Section{Fields: fields}
}

// Type returns the section's variant tag.
func (s Section) Type() string { return s.Fields.String("type") }

// ID returns the section's library id, or "".
func (s Section) ID() string { return s.Fields.ID() }

// Decode unmarshals the section into a typed view.
func (s Section) Decode(v any) error { return s.Fields.Decode(v) }

func (s *Section) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, &s.Fields)
}

func (s Section) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Fields)
}

// MergeShared layers the matching shared record under the section: the
// record's fields act as defaults and every field already on the section
// wins. Sections without an id, or whose id has no match, are returned as
// is. Neither the section nor the collections are modified.
func MergeShared(s Section, c Collections) Section {
	id := s.ID()
	if id == "" {
		return s
	}
	shared, ok := c.Find(CategoryFor(s.Type()), id)
	if !ok {
		return s
	}
	merged := shared.Clone()
	for k, v := range s.Fields {
		merged[k] = v
	}
	return Section{Fields: merged}
}
