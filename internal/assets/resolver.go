// Package assets maps logical asset paths found in lesson documents to
// paths relative to the lesson entry point.
package assets

import "strings"

const (
	// SystemMarker prefixes assets shipped at the deployment root,
	// three directories above a lesson (courses/<course>/<lesson>/).
	SystemMarker = "comp_model"

	// CourseMarker prefixes assets shared by every lesson of a course.
	CourseMarker = "assets/"

	systemPrefix = "../../../"
	coursePrefix = "../"

	// DefaultLessonPath is the lesson-local base used when none is configured.
	DefaultLessonPath = "./"
)

// Resolver rewrites asset references. The zero value resolves lesson-local
// paths against DefaultLessonPath.
type Resolver struct {
	LessonPath string
}

// NewResolver returns a Resolver for the given lesson base path.
func NewResolver(lessonPath string) Resolver {
	return Resolver{LessonPath: lessonPath}
}

// Resolve applies the classification rules in order: empty input, absolute
// references, system assets, course-shared assets, lesson-local assets.
func (r Resolver) Resolve(path string) string {
	switch {
	case path == "":
		return ""
	case isAbsolute(path):
		return path
	case strings.HasPrefix(path, SystemMarker):
		return systemPrefix + path
	case strings.HasPrefix(path, CourseMarker):
		return coursePrefix + path
	}
	base := r.LessonPath
	if base == "" {
		base = DefaultLessonPath
	}
	return base + path
}

// isAbsolute reports whether path is a URL, a data URI or root-relative.
func isAbsolute(path string) bool {
	return strings.HasPrefix(path, "http") ||
		strings.HasPrefix(path, "data:") ||
		strings.HasPrefix(path, "/")
}
