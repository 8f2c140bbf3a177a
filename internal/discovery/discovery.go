// Package discovery finds how many sequential step images a build part
// has by probing step-1.png, step-2.png, ... concurrently.
package discovery

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/lessonbook/internal/assets"
)

// DefaultMax is the number of candidate step images probed per part.
const DefaultMax = 50

// Exister answers whether an asset exists. Errors are treated as absence.
type Exister interface {
	Exists(ctx context.Context, path string) (bool, error)
}

// Event summarizes one discovery run.
type Event struct {
	SessionID string
	BasePath  string
	Probed    int
	Found     int
	Steps     int
	Duration  time.Duration
}

// Recorder persists discovery events. Failures are logged and ignored.
type Recorder interface {
	RecordDiscovery(ctx context.Context, ev Event) error
}

// Engine discovers step counts for build parts.
type Engine struct {
	Probe    Exister
	Resolver assets.Resolver

	// Max is the number of candidates probed; 0 means DefaultMax.
	Max int
	// Concurrency bounds in-flight probes; 0 means all at once.
	Concurrency int

	Recorder  Recorder
	SessionID string
	Logger    *zap.Logger
}

// StepImage returns the unresolved path of step n under basePath.
func StepImage(basePath string, n int) string {
	return fmt.Sprintf("%sstep-%d.png", basePath, n)
}

// PrefixCount returns the number of leading true values, never less
// than 1. Anything after the first false is ignored.
func PrefixCount(results []bool) int {
	count := 0
	for _, ok := range results {
		if !ok {
			break
		}
		count++
	}
	if count == 0 {
		return 1
	}
	return count
}

func (e *Engine) logger() *zap.Logger {
	if e.Logger == nil {
		return zap.NewNop()
	}
	return e.Logger
}

// Discover probes every candidate for basePath and returns the step count.
// It never fails: probe errors count as missing and the result is at
// least 1.
func (e *Engine) Discover(ctx context.Context, basePath string) int {
	max := e.Max
	if max <= 0 {
		max = DefaultMax
	}
	log := e.logger()
	start := time.Now()

	results := make([]bool, max)
	var g errgroup.Group
	if e.Concurrency > 0 {
		g.SetLimit(e.Concurrency)
	}
	for i := range max {
		g.Go(func() error {
			path := e.Resolver.Resolve(StepImage(basePath, i+1))
			ok, err := e.Probe.Exists(ctx, path)
			if err != nil {
				log.Debug("step probe failed", zap.String("path", path), zap.Error(err))
				return nil
			}
			results[i] = ok
			return nil
		})
	}
	_ = g.Wait()

	steps := PrefixCount(results)
	found := 0
	for _, ok := range results {
		if ok {
			found++
		}
	}
	elapsed := time.Since(start)
	log.Debug("steps discovered",
		zap.String("base_path", basePath),
		zap.Int("steps", steps),
		zap.Int("found", found),
		zap.Duration("elapsed", elapsed),
	)

	if e.Recorder != nil {
		ev := Event{
			SessionID: e.SessionID,
			BasePath:  basePath,
			Probed:    max,
			Found:     found,
			Steps:     steps,
			Duration:  elapsed,
		}
		if err := e.Recorder.RecordDiscovery(ctx, ev); err != nil {
			log.Warn("record discovery", zap.Error(err))
		}
	}
	return steps
}

// DiscoverAll runs one discovery per base path in the background and calls
// report as each finishes, in completion order. Calls to report are
// serialized. It returns once every discovery has reported.
func (e *Engine) DiscoverAll(ctx context.Context, basePaths []string, report func(index, steps int)) {
	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	for i, bp := range basePaths {
		wg.Add(1)
		go func() {
			defer wg.Done()
			steps := e.Discover(ctx, bp)
			mu.Lock()
			defer mu.Unlock()
			report(i, steps)
		}()
	}
	wg.Wait()
}

// WithTimeout bounds every Exists call of e by d. A zero d returns e.
func WithTimeout(e Exister, d time.Duration) Exister {
	if d <= 0 {
		return e
	}
	return timeoutExister{Exister: e, d: d}
}

type timeoutExister struct {
	Exister
	d time.Duration
}

func (t timeoutExister) Exists(ctx context.Context, path string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, t.d)
	defer cancel()
	return t.Exister.Exists(ctx, path)
}
