package showcase

import (
	"sync"
	"time"
)

// DefaultResizeQuiet is how long resize signals must stop arriving before
// the coordinator fires. Window managers deliver a burst of size events
// during an interactive resize; only the settled size matters.
const DefaultResizeQuiet = 250 * time.Millisecond

// ResizeCoordinator debounces resize signals and fires a single callback
// once they go quiet. Each Signal restarts the quiet period, so a drag
// that never pauses fires exactly once, at the end.
type ResizeCoordinator struct {
	mu      sync.Mutex
	quiet   time.Duration
	timer   *time.Timer
	stopped bool
	fire    func()
}

// NewResizeCoordinator creates a coordinator that calls fire after signals
// have been quiet for the default period.
func NewResizeCoordinator(fire func()) *ResizeCoordinator {
	return NewResizeCoordinatorWithQuiet(DefaultResizeQuiet, fire)
}

// NewResizeCoordinatorWithQuiet is NewResizeCoordinator with an explicit
// quiet period, mainly for tests.
func NewResizeCoordinatorWithQuiet(quiet time.Duration, fire func()) *ResizeCoordinator {
	return &ResizeCoordinator{quiet: quiet, fire: fire}
}

// Signal records a resize event, restarting the quiet period.
func (rc *ResizeCoordinator) Signal() {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	if rc.stopped {
		return
	}
	if rc.timer != nil {
		rc.timer.Stop()
	}
	rc.timer = time.AfterFunc(rc.quiet, rc.expire)
}

func (rc *ResizeCoordinator) expire() {
	rc.mu.Lock()
	if rc.stopped {
		rc.mu.Unlock()
		return
	}
	rc.timer = nil
	fire := rc.fire
	rc.mu.Unlock()
	fire()
}

// Stop cancels any pending callback and ignores further signals.
func (rc *ResizeCoordinator) Stop() {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.stopped = true
	if rc.timer != nil {
		rc.timer.Stop()
		rc.timer = nil
	}
}
