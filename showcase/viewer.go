package showcase

import (
	"fmt"
	"log"
	"time"

	"github.com/chewxy/math32"

	"github.com/sean-bowman/portfolio/core"
	"github.com/sean-bowman/portfolio/math"
	"github.com/sean-bowman/portfolio/scene"
)

const (
	cameraFOV       = math32.Pi / 4 // 45 degrees
	cameraNearPlane = 0.1
	cameraFarPlane  = 100.0

	// TargetFitSize is the world-space size the largest dimension of a
	// loaded model is scaled to.
	TargetFitSize = 2.0
)

// Surface is the drawing target for one card: it reports the current pixel
// dimensions of the card's container.
type Surface interface {
	Size() (width, height int)
}

// Backend abstracts the GPU renderer bound to one viewer's surface.
// The production implementation wraps opengl.Renderer; tests use a fake.
type Backend interface {
	Resize(width, height int)
	SetViewport(x, y, width, height int)
	Clear(c core.Color)
	SetLights(ambient core.Color, lights []*scene.Light)
	DrawMesh(mesh *scene.Mesh, mvp, model math.Mat4)
	ReleaseMesh(mesh *scene.Mesh)
	Destroy()
}

// LoadOutcome classifies how LoadModel finished.
type LoadOutcome int

const (
	LoadedAsset       LoadOutcome = iota // real geometry loaded and fitted
	LoadedPlaceholder                    // no asset configured; placeholder shape shown
	LoadFailed                           // asset failed to load; error indicator shown
)

// LoadResult is the completion signal handed to the page layer. A failed
// load is reported here, never returned as an error: the viewer absorbs it.
type LoadResult struct {
	Outcome LoadOutcome
	Err     error // non-nil only when Outcome == LoadFailed
}

// Viewer owns one independent 3D rendering context bound to one on-screen
// card: scene graph, camera, renderer binding, orbit controls, and at most
// one outstanding frame callback.
type Viewer struct {
	cfg     DisplayConfig
	index   int
	surface Surface
	backend Backend
	sched   Scheduler

	scene    *scene.Scene
	camera   *scene.Camera
	controls *OrbitControls

	handle    FrameHandle
	hasHandle bool

	initialized bool
	active      bool
	disposed    bool
	loadStarted bool

	lastFrame time.Time

	onLoad func(LoadResult)
}

// NewViewer constructs a viewer for one display card. index is the card's
// position in the registry; it selects the placeholder shape variant.
func NewViewer(cfg DisplayConfig, index int, surface Surface, backend Backend, sched Scheduler) *Viewer {
	return &Viewer{
		cfg:     cfg,
		index:   index,
		surface: surface,
		backend: backend,
		sched:   sched,
	}
}

// Config returns the viewer's display configuration.
func (v *Viewer) Config() DisplayConfig { return v.cfg }

// Index returns the viewer's position in the registry.
func (v *Viewer) Index() int { return v.index }

// Initialized reports whether InitScene has run.
func (v *Viewer) Initialized() bool { return v.initialized }

// Active reports whether the render loop is currently scheduled.
func (v *Viewer) Active() bool { return v.active }

// Scene exposes the scene graph, primarily for the page layer and tests.
func (v *Viewer) Scene() *scene.Scene { return v.scene }

// Controls exposes the orbit controls so the page layer can route pointer
// input to the card under the cursor. Nil before InitScene.
func (v *Viewer) Controls() *OrbitControls { return v.controls }

// OnLoad registers the completion signal consumed by the page layer (e.g.
// to hide a loading indicator or show an error badge). Set before LoadModel.
func (v *Viewer) OnLoad(fn func(LoadResult)) { v.onLoad = fn }

// InitScene allocates the scene graph, camera, lights, and orbit controls.
// Must be called exactly once, before any other operation.
func (v *Viewer) InitScene() {
	v.mustBeUsable("InitScene")
	if v.initialized {
		panic(fmt.Sprintf("showcase: InitScene called twice on viewer %d", v.index))
	}

	w, h := v.surface.Size()

	v.scene = scene.NewScene()
	v.camera = scene.NewCamera(cameraFOV, aspect(w, h), cameraNearPlane, cameraFarPlane)
	v.scene.SetCamera(v.camera)
	v.scene.AddDefaultLights()
	v.controls = NewOrbitControls(v.camera)

	v.backend.Resize(w, h)
	v.initialized = true
}

// LoadModel populates the scene graph: the configured asset if one is set,
// a placeholder wireframe otherwise. Asset failures are absorbed here: an
// error indicator replaces the model and the failure is reported through
// the OnLoad signal, never as an error. Call at most once per viewer.
func (v *Viewer) LoadModel() {
	v.beginLoad()

	if v.cfg.AssetPath == "" {
		v.finishLoad(nil, nil)
		return
	}

	mesh, err := scene.LoadAsset(v.cfg.AssetPath)
	v.finishLoad(mesh, err)
}

// beginLoad validates and marks the one-shot load. Exposed separately so
// the registry can run the fetch off the frame goroutine.
func (v *Viewer) beginLoad() {
	v.mustBeUsable("LoadModel")
	if !v.initialized {
		panic(fmt.Sprintf("showcase: LoadModel before InitScene on viewer %d", v.index))
	}
	if v.loadStarted {
		panic(fmt.Sprintf("showcase: LoadModel called twice on viewer %d", v.index))
	}
	v.loadStarted = true
}

// finishLoad applies the load outcome to the scene graph. Must run on the
// frame goroutine. mesh == nil with err == nil means "no asset configured".
func (v *Viewer) finishLoad(mesh *scene.Mesh, err error) {
	if v.disposed {
		// Card was torn down while the fetch was in flight; drop the result.
		return
	}

	switch {
	case err != nil:
		log.Printf("showcase: card %d (%s): load failed: %v", v.index, v.cfg.Name, err)
		node := scene.NewNode("ErrorIndicator")
		node.Mesh = scene.CreateErrorIndicator()
		v.scene.AddNode(node)
		v.notifyLoad(LoadResult{Outcome: LoadFailed, Err: err})

	case mesh == nil:
		node := scene.NewNode("Placeholder")
		node.Mesh = PlaceholderMesh(v.index, v.cfg.Accent())
		v.scene.AddNode(node)
		v.notifyLoad(LoadResult{Outcome: LoadedPlaceholder})

	default:
		offset, sc := scene.FitTransform(mesh.LocalAABB, TargetFitSize)
		mesh.Material = scene.NewMaterial(v.cfg.Name, v.cfg.Accent())

		node := scene.NewNode("Model")
		node.Mesh = mesh
		node.SetPosition(offset)
		node.SetUniformScale(sc)
		v.scene.AddNode(node)

		v.controls.Reset()
		v.notifyLoad(LoadResult{Outcome: LoadedAsset})
	}
}

func (v *Viewer) notifyLoad(res LoadResult) {
	if v.onLoad != nil {
		v.onLoad(res)
	}
}

// Start schedules the recurring frame callback. No-op unless the viewer is
// initialized and not already active.
func (v *Viewer) Start() {
	v.mustBeUsable("Start")
	if !v.initialized || v.active {
		return
	}
	v.active = true
	v.lastFrame = time.Now()
	v.handle = v.sched.Schedule(v.renderFrame)
	v.hasHandle = true
}

// Stop cancels the frame callback. No further render occurs after Stop
// returns, even if called from inside the currently running frame. No-op
// when not active.
func (v *Viewer) Stop() {
	v.mustBeUsable("Stop")
	if !v.active {
		return
	}
	v.active = false
	if v.hasHandle {
		v.sched.Cancel(v.handle)
		v.hasHandle = false
	}
}

// HandleResize re-reads the container dimensions, updates the camera
// projection, and resizes the backing surface. No-op before InitScene;
// safe to call whether or not the viewer is active.
func (v *Viewer) HandleResize() {
	v.mustBeUsable("HandleResize")
	if !v.initialized {
		return
	}
	w, h := v.surface.Size()
	v.camera.UpdateAspectRatio(float32(w), float32(h))
	v.backend.Resize(w, h)
}

// Dispose stops the render loop, detaches the controls, and releases every
// GPU resource owned by the viewer. Idempotent; after Dispose no other
// method may be called.
func (v *Viewer) Dispose() {
	if v.disposed {
		return
	}
	if v.initialized {
		v.Stop()
		v.controls.Detach()
		v.scene.Root.Traverse(func(n *scene.Node) {
			if n.Mesh != nil {
				v.backend.ReleaseMesh(n.Mesh)
				n.Mesh = nil
			}
		})
	}
	v.backend.Destroy()
	v.disposed = true
}

// renderFrame runs once per frame while active. It schedules the next frame
// before rendering, so a panic mid-render does not silently halt the loop.
// An empty scene renders harmlessly while a load is still in flight.
func (v *Viewer) renderFrame() {
	if !v.active {
		return
	}

	v.handle = v.sched.Schedule(v.renderFrame)
	v.hasHandle = true

	now := time.Now()
	dt := float32(now.Sub(v.lastFrame).Seconds())
	v.lastFrame = now
	if dt > 0.1 {
		dt = 0.1
	}
	v.controls.Update(dt)

	w, h := v.surface.Size()
	v.backend.SetViewport(0, 0, w, h)
	v.backend.Clear(v.scene.SkyColor)
	v.backend.SetLights(v.scene.Ambient, v.scene.Lights)

	view := v.camera.GetViewMatrix()
	proj := v.camera.GetProjectionMatrix()

	for _, node := range v.scene.GetVisibleNodes() {
		model := node.GetWorldMatrix()
		mvp := model.Mul(view).Mul(proj)
		v.backend.DrawMesh(node.Mesh, mvp, model)
	}
}

func (v *Viewer) mustBeUsable(op string) {
	if v.disposed {
		panic(fmt.Sprintf("showcase: %s on disposed viewer %d", op, v.index))
	}
}

func aspect(w, h int) float32 {
	if h <= 0 {
		return 1
	}
	return float32(w) / float32(h)
}
