// Package watch reports settled changes to lesson JSON files.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is how long a file must stay quiet before it is
// reported. Editors often write a file several times per save.
const DefaultDebounce = 300 * time.Millisecond

// Watcher watches directories for changes to .json files.
type Watcher struct {
	Dirs     []string
	Debounce time.Duration
	Logger   *zap.Logger
}

// Run blocks until ctx is done, calling onChange with the sorted paths of
// every batch of settled changes.
func (w *Watcher) Run(ctx context.Context, onChange func(paths []string)) error {
	log := w.Logger
	if log == nil {
		log = zap.NewNop()
	}
	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = fw.Close() }()

	for _, dir := range w.Dirs {
		if err := fw.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		log.Debug("watching", zap.String("dir", dir))
	}

	ticker := time.NewTicker(debounce / 3)
	defer ticker.Stop()
	pending := make(map[string]time.Time)

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !relevant(ev) {
				continue
			}
			pending[filepath.Clean(ev.Name)] = time.Now()

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error", zap.Error(err))

		case now := <-ticker.C:
			var settled []string
			for p, at := range pending {
				if now.Sub(at) >= debounce {
					settled = append(settled, p)
					delete(pending, p)
				}
			}
			if len(settled) > 0 {
				sort.Strings(settled)
				onChange(settled)
			}
		}
	}
}

func relevant(ev fsnotify.Event) bool {
	if !strings.HasSuffix(ev.Name, ".json") {
		return false
	}
	return ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0
}
