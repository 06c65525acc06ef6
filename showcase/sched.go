package showcase

import "sync"

// FrameHandle identifies one scheduled frame callback.
type FrameHandle uint64

// Scheduler is the per-frame scheduling primitive: a callback scheduled with
// Schedule runs once before the next frame unless cancelled first. Post
// marshals a function onto the frame goroutine without a cancellable handle.
type Scheduler interface {
	Schedule(fn func()) FrameHandle
	Cancel(h FrameHandle)
	Post(fn func())
}

// FrameLoop is the production Scheduler: the window main loop pumps it once
// per iteration via RunFrame. Callbacks scheduled while a frame is running
// execute on the following frame; Cancel is effective immediately, even from
// inside the currently running callback.
type FrameLoop struct {
	mu     sync.Mutex
	nextID FrameHandle
	tasks  map[FrameHandle]func()
	order  []FrameHandle
	posted []func()
}

func NewFrameLoop() *FrameLoop {
	return &FrameLoop{tasks: make(map[FrameHandle]func())}
}

func (l *FrameLoop) Schedule(fn func()) FrameHandle {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.nextID++
	h := l.nextID
	l.tasks[h] = fn
	l.order = append(l.order, h)
	return h
}

func (l *FrameLoop) Cancel(h FrameHandle) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.tasks, h)
}

func (l *FrameLoop) Post(fn func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.posted = append(l.posted, fn)
}

// RunFrame executes all posted functions, then every callback scheduled
// before this frame, in schedule order. Cancelled callbacks are skipped.
func (l *FrameLoop) RunFrame() {
	l.mu.Lock()
	posted := l.posted
	l.posted = nil
	frame := l.order
	l.order = nil
	l.mu.Unlock()

	for _, fn := range posted {
		fn()
	}

	for _, h := range frame {
		l.mu.Lock()
		fn, ok := l.tasks[h]
		if ok {
			delete(l.tasks, h)
		}
		l.mu.Unlock()
		if ok {
			fn()
		}
	}
}

// Pending returns the number of outstanding (scheduled, not yet run or
// cancelled) frame callbacks.
func (l *FrameLoop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.tasks)
}
