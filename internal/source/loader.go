package source

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/lessonbook/internal/lesson"
	"github.com/abhisek/lessonbook/internal/library"
)

const (
	// DocumentFile is the lesson document name inside the lesson path.
	DocumentFile = "lesson_data.json"

	// DefaultLibraryPath is where shared collections live relative to the
	// lesson directory.
	DefaultLibraryPath = "../master_library/"
)

// FatalLoadError aborts startup. The viewer shows a single error panel and
// no partial content.
type FatalLoadError struct {
	Path string
	Err  error
}

func (e *FatalLoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *FatalLoadError) Unwrap() error { return e.Err }

// Bundle is a fully loaded and validated lesson.
type Bundle struct {
	Document    *lesson.Document
	Collections library.Collections
}

// Loader fetches the lesson document and every library collection.
type Loader struct {
	Origin      Origin
	LessonPath  string
	LibraryPath string
	Logger      *zap.Logger
}

func withSlash(p string) string {
	if p == "" || strings.HasSuffix(p, "/") {
		return p
	}
	return p + "/"
}

// Load fetches all seven files concurrently. The first failure cancels the
// rest and is returned as a *FatalLoadError.
func (l *Loader) Load(ctx context.Context) (*Bundle, error) {
	log := l.Logger
	if log == nil {
		log = zap.NewNop()
	}
	lessonPath := withSlash(l.LessonPath)
	if lessonPath == "" {
		lessonPath = "./"
	}
	libraryPath := withSlash(l.LibraryPath)
	if libraryPath == "" {
		libraryPath = DefaultLibraryPath
	}

	var (
		mu     sync.Mutex
		bundle = &Bundle{Collections: make(library.Collections, len(library.Categories))}
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		path := lessonPath + DocumentFile
		data, err := l.Origin.Fetch(gctx, path)
		if err != nil {
			return &FatalLoadError{Path: path, Err: err}
		}
		doc, err := lesson.ParseDocument(data)
		if err != nil {
			return &FatalLoadError{Path: path, Err: err}
		}
		mu.Lock()
		bundle.Document = doc
		mu.Unlock()
		return nil
	})

	for _, category := range library.Categories {
		g.Go(func() error {
			path := libraryPath + category + ".json"
			data, err := l.Origin.Fetch(gctx, path)
			if err != nil {
				return &FatalLoadError{Path: path, Err: err}
			}
			recs, err := lesson.ParseCollection(category, data)
			if err != nil {
				return &FatalLoadError{Path: path, Err: err}
			}
			mu.Lock()
			bundle.Collections[category] = recs
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Error("lesson load failed", zap.String("origin", l.Origin.String()), zap.Error(err))
		return nil, err
	}

	log.Info("lesson loaded",
		zap.String("origin", l.Origin.String()),
		zap.Int("sections", len(bundle.Document.Sections)),
	)
	return bundle, nil
}
