package showcase

import "github.com/sean-bowman/portfolio/scene"

// Registry owns the full set of viewers for a page, indexed by card
// position. Lookup by index is nil-safe so visibility callbacks arriving
// for cards that never got a viewer are harmless.
type Registry struct {
	viewers []*Viewer
	sched   Scheduler
}

// NewRegistry creates an empty registry whose async work is marshalled
// through sched.
func NewRegistry(sched Scheduler) *Registry {
	return &Registry{sched: sched}
}

// Add constructs a viewer for cfg bound to the given surface and backend,
// appends it, and returns it. The viewer's index is its position at the
// time of the call.
func (r *Registry) Add(cfg DisplayConfig, surface Surface, backend Backend) *Viewer {
	v := NewViewer(cfg, len(r.viewers), surface, backend, r.sched)
	r.viewers = append(r.viewers, v)
	return v
}

// Viewer returns the viewer at index i, or nil when i is out of range.
func (r *Registry) Viewer(i int) *Viewer {
	if i < 0 || i >= len(r.viewers) {
		return nil
	}
	return r.viewers[i]
}

// Len returns the number of registered viewers.
func (r *Registry) Len() int { return len(r.viewers) }

// InitAll runs InitScene on every viewer.
func (r *Registry) InitAll() {
	for _, v := range r.viewers {
		v.InitScene()
	}
}

// LoadModels kicks off the model load for every viewer. Asset fetches run
// concurrently on their own goroutines; each completion is posted back to
// the frame goroutine, which is the only place the scene graph mutates.
// Viewers without an asset complete synchronously.
func (r *Registry) LoadModels() {
	for _, v := range r.viewers {
		v.beginLoad()
		if v.cfg.AssetPath == "" {
			v.finishLoad(nil, nil)
			continue
		}
		go r.fetch(v)
	}
}

func (r *Registry) fetch(v *Viewer) {
	mesh, err := scene.LoadAsset(v.cfg.AssetPath)
	r.sched.Post(func() {
		v.finishLoad(mesh, err)
	})
}

// HandleResizeAll fans a resize out to every viewer, active or not, so
// suspended cards wake with a correct projection.
func (r *Registry) HandleResizeAll() {
	for _, v := range r.viewers {
		v.HandleResize()
	}
}

// DisposeAll tears down every viewer. Safe to call more than once.
func (r *Registry) DisposeAll() {
	for _, v := range r.viewers {
		v.Dispose()
	}
}
