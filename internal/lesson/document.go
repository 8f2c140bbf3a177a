// Package lesson defines the lesson document and the typed views decoded
// from its sections and from shared library records.
package lesson

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/abhisek/lessonbook/internal/library"
)

// Defaults shown when a document leaves the header fields empty.
const (
	DefaultCourseName   = "COURSE"
	DefaultLessonNumber = "00"
)

// Scalar is a display string that authors may write as a JSON string or
// number ("03" and 3 are both accepted).
type Scalar string

func (s *Scalar) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*s = ""
		return nil
	}
	if b[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*s = Scalar(str)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("expected string or number: %w", err)
	}
	*s = Scalar(n.String())
	return nil
}

// Document is a parsed lesson_data.json.
type Document struct {
	CourseName   string            `json:"courseName"`
	LessonNumber Scalar            `json:"lessonNumber"`
	Title        string            `json:"title"`
	Sections     []library.Section `json:"sections"`
}

// Course returns the course name, or DefaultCourseName.
func (d *Document) Course() string {
	if d.CourseName == "" {
		return DefaultCourseName
	}
	return d.CourseName
}

// Number returns the lesson number, or DefaultLessonNumber.
func (d *Document) Number() string {
	if d.LessonNumber == "" {
		return DefaultLessonNumber
	}
	return string(d.LessonNumber)
}

// ParseDocument validates data against the lesson schema and decodes it.
func ParseDocument(data []byte) (*Document, error) {
	if err := ValidateDocument(data); err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode lesson: %w", err)
	}
	return &doc, nil
}

// ParseCollection validates a library file for category and decodes it.
func ParseCollection(category string, data []byte) ([]library.Record, error) {
	if err := ValidateCollection(category, data); err != nil {
		return nil, err
	}
	recs, err := library.DecodeCollection(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s library: %w", category, err)
	}
	return recs, nil
}
