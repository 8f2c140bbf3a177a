package discovery

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/abhisek/lessonbook/internal/assets"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeProbe reports the listed paths as existing and fails the ones in errs.
type fakeProbe struct {
	exists map[string]bool
	errs   map[string]bool

	mu       sync.Mutex
	calls    []string
	inFlight atomic.Int32
	peak     atomic.Int32
}

func (f *fakeProbe) Exists(_ context.Context, path string) (bool, error) {
	n := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		p := f.peak.Load()
		if n <= p || f.peak.CompareAndSwap(p, n) {
			break
		}
	}
	f.mu.Lock()
	f.calls = append(f.calls, path)
	f.mu.Unlock()
	if f.errs[path] {
		return false, errors.New("connection reset")
	}
	return f.exists[path], nil
}

// reverseProbe answers step n only after step n+1 has answered, so
// results arrive from the highest index down.
type reverseProbe struct {
	exists map[string]bool
	gates  []chan struct{}

	mu    sync.Mutex
	order []int
}

func newReverseProbe(exists map[string]bool, max int) *reverseProbe {
	gates := make([]chan struct{}, max+2)
	for i := range gates {
		gates[i] = make(chan struct{})
	}
	close(gates[max+1])
	return &reverseProbe{exists: exists, gates: gates}
}

func (r *reverseProbe) Exists(ctx context.Context, path string) (bool, error) {
	at := strings.LastIndex(path, "step-")
	n, err := strconv.Atoi(strings.TrimSuffix(path[at+len("step-"):], ".png"))
	if err != nil {
		return false, err
	}
	select {
	case <-r.gates[n+1]:
	case <-ctx.Done():
		return false, ctx.Err()
	}
	r.mu.Lock()
	r.order = append(r.order, n)
	r.mu.Unlock()
	close(r.gates[n])
	return r.exists[path], nil
}

func steps(prefix string, ns ...int) map[string]bool {
	m := make(map[string]bool)
	for _, n := range ns {
		m[assets.NewResolver("").Resolve(StepImage(prefix, n))] = true
	}
	return m
}

func TestPrefixCount(t *testing.T) {
	cases := []struct {
		in   []bool
		want int
	}{
		{[]bool{true, true, false, true}, 2},
		{[]bool{false, true, true}, 1},
		{[]bool{}, 1},
		{[]bool{true, true, true}, 3},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, PrefixCount(c.in), "%v", c.in)
	}
}

func TestDiscover_StopsAtFirstGap(t *testing.T) {
	probe := &fakeProbe{exists: steps("p1/", 1, 2, 4)}
	e := &Engine{Probe: probe, Resolver: assets.NewResolver("")}

	assert.Equal(t, 2, e.Discover(context.Background(), "p1/"))
	assert.Len(t, probe.calls, DefaultMax, "every candidate is probed")
}

func TestDiscover_LowerBound(t *testing.T) {
	e := &Engine{Probe: &fakeProbe{}, Max: 10}
	assert.Equal(t, 1, e.Discover(context.Background(), "none/"))
}

func TestDiscover_ErrorsCountAsMissing(t *testing.T) {
	r := assets.NewResolver("")
	probe := &fakeProbe{
		exists: steps("p1/", 1, 2, 3, 4),
		errs:   map[string]bool{r.Resolve(StepImage("p1/", 3)): true},
	}
	e := &Engine{Probe: probe, Resolver: r, Max: 8}
	assert.Equal(t, 2, e.Discover(context.Background(), "p1/"))
}

func TestDiscover_ResolvesCandidates(t *testing.T) {
	probe := &fakeProbe{}
	e := &Engine{Probe: probe, Resolver: assets.NewResolver("./"), Max: 2}
	e.Discover(context.Background(), "assets/build/")

	for _, c := range probe.calls {
		assert.True(t, strings.HasPrefix(c, "../assets/build/step-"), c)
	}
}

func TestDiscover_ConcurrencyLimit(t *testing.T) {
	probe := &fakeProbe{exists: steps("p/", 1, 2, 3)}
	e := &Engine{Probe: probe, Max: 20, Concurrency: 2}
	assert.Equal(t, 3, e.Discover(context.Background(), "p/"))
	assert.LessOrEqual(t, probe.peak.Load(), int32(2))
}

type memRecorder struct {
	mu     sync.Mutex
	events []Event
	err    error
}

func (m *memRecorder) RecordDiscovery(_ context.Context, ev Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, ev)
	return m.err
}

func TestDiscover_Records(t *testing.T) {
	rec := &memRecorder{err: errors.New("disk full")}
	e := &Engine{
		Probe:     &fakeProbe{exists: steps("p1/", 1, 2, 3, 5)},
		Max:       6,
		Recorder:  rec,
		SessionID: "s-1",
	}
	require.Equal(t, 3, e.Discover(context.Background(), "p1/"))

	require.Len(t, rec.events, 1)
	ev := rec.events[0]
	assert.Equal(t, "s-1", ev.SessionID)
	assert.Equal(t, "p1/", ev.BasePath)
	assert.Equal(t, 6, ev.Probed)
	assert.Equal(t, 4, ev.Found)
	assert.Equal(t, 3, ev.Steps)
}

func TestDiscoverAll(t *testing.T) {
	probe := &fakeProbe{exists: map[string]bool{}}
	for k := range steps("a/", 1, 2, 3, 4, 5, 6, 7) {
		probe.exists[k] = true
	}
	for k := range steps("b/", 1) {
		probe.exists[k] = true
	}
	e := &Engine{Probe: probe, Max: 12}

	got := map[int]int{}
	e.DiscoverAll(context.Background(), []string{"a/", "b/", "c/"}, func(index, n int) {
		got[index] = n
	})
	assert.Equal(t, map[int]int{0: 7, 1: 1, 2: 1}, got)
}

type deadlineProbe struct{}

func (deadlineProbe) Exists(ctx context.Context, _ string) (bool, error) {
	_, ok := ctx.Deadline()
	return ok, nil
}

func TestWithTimeout(t *testing.T) {
	ok, err := WithTimeout(deadlineProbe{}, time.Second).Exists(context.Background(), "p/step-1.png")
	require.NoError(t, err)
	assert.True(t, ok, "probe should see a deadline")

	ok, _ = WithTimeout(deadlineProbe{}, 0).Exists(context.Background(), "p/step-1.png")
	assert.False(t, ok, "zero timeout leaves the context alone")
}

func TestDiscover_OutOfOrderCompletion(t *testing.T) {
	const max = 10
	tests := []struct {
		name  string
		found []int
		want  int
	}{
		{"gap after two", []int{1, 2, 4, 5, 6}, 2},
		{"full prefix of seven", []int{1, 2, 3, 4, 5, 6, 7}, 7},
		{"first missing", []int{2, 3}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			probe := newReverseProbe(steps("p1/", tt.found...), max)
			e := &Engine{Probe: probe, Resolver: assets.NewResolver(""), Max: max}

			assert.Equal(t, tt.want, e.Discover(context.Background(), "p1/"))

			require.Len(t, probe.order, max)
			assert.Equal(t, max, probe.order[0], "highest index answers first")
			assert.Equal(t, 1, probe.order[max-1], "lowest index answers last")
		})
	}
}
