//go:build profile

package profiler

import (
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
)

// ViewerCommand is launched with the dump path after Dump writes a file.
var ViewerCommand = "speedscope"

// Init must be called once with the ring capacity (#scope events) before
// scopes are recorded. Example: profiler.Init(1 << 16)
func Init(capacity int) {
	if capacity <= 0 {
		capacity = 1 << 20
	}
	ring.init(capacity)
}

// Start opens a scope and returns the func that closes it:
//
//	defer profiler.Start("Painter.Paint")()
func Start(name string) func() {
	if !ring.ready.Load() {
		return noop
	}
	id := names.intern(name)
	opened := time.Now().UnixNano()
	ring.push(event{atNS: opened, frame: id, open: true})
	return func() {
		closed := time.Now().UnixNano()
		if closed < opened {
			closed = opened
		}
		ring.push(event{atNS: closed, frame: id})
	}
}

// Dump writes the recorded scopes to a speedscope file in the temp dir,
// starts ViewerCommand on it and returns the path.
func Dump() (string, error) {
	evs := ring.snapshot()
	if len(evs) == 0 {
		return "", errors.New("profiler: no events to dump")
	}

	path := filepath.Join(os.TempDir(), "grovegui.speedscope.json")
	if err := writeSpeedscope(evs, names.snapshot(), path); err != nil {
		return "", errors.Wrap(err, "profiler: write speedscope")
	}

	cmd := exec.Command(ViewerCommand, path)
	cmd.SysProcAttr = viewerProcAttr()
	if err := cmd.Start(); err != nil {
		slog.Warn("profiler viewer did not start", "cmd", ViewerCommand, "error", err)
	}
	return path, nil
}

func noop() {}

type event struct {
	atNS  int64
	frame int
	open  bool
}

// eventRing overwrites the oldest events once full. Writers only bump an
// atomic cursor, so scopes may be recorded from any goroutine.
type eventRing struct {
	ready atomic.Bool
	size  uint64
	next  atomic.Uint64
	evs   []event
}

var ring eventRing

func (r *eventRing) init(capacity int) {
	r.size = uint64(capacity)
	r.evs = make([]event, r.size)
	r.next.Store(0)
	r.ready.Store(true)
}

func (r *eventRing) push(e event) {
	i := r.next.Add(1) - 1
	r.evs[i%r.size] = e
}

// snapshot returns the retained events in write order.
func (r *eventRing) snapshot() []event {
	n := r.next.Load()
	if n == 0 {
		return nil
	}
	first := uint64(0)
	if n > r.size {
		first = n - r.size
	}
	out := make([]event, 0, n-first)
	for k := first; k < n; k++ {
		out = append(out, r.evs[k%r.size])
	}
	return out
}

type nameTable struct {
	mu    sync.Mutex
	list  []string
	index map[string]int
}

var names = nameTable{index: map[string]int{}}

func (t *nameTable) intern(name string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	if id, ok := t.index[name]; ok {
		return id
	}
	id := len(t.list)
	t.index[name] = id
	t.list = append(t.list, name)
	return id
}

func (t *nameTable) snapshot() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.list...)
}
