package showcase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sean-bowman/portfolio/core"
	"github.com/sean-bowman/portfolio/math"
	"github.com/sean-bowman/portfolio/scene"
)

type fakeSurface struct {
	w, h int
}

func (s *fakeSurface) Size() (int, int) { return s.w, s.h }

type fakeBackend struct {
	resizes   [][2]int
	viewports [][4]int
	clears    []core.Color
	drawn     []*scene.Mesh
	released  []*scene.Mesh
	destroyed int
}

func (b *fakeBackend) Resize(w, h int) { b.resizes = append(b.resizes, [2]int{w, h}) }
func (b *fakeBackend) SetViewport(x, y, w, h int) {
	b.viewports = append(b.viewports, [4]int{x, y, w, h})
}
func (b *fakeBackend) Clear(c core.Color)                             { b.clears = append(b.clears, c) }
func (b *fakeBackend) SetLights(ambient core.Color, _ []*scene.Light) {}
func (b *fakeBackend) DrawMesh(m *scene.Mesh, _, _ math.Mat4)         { b.drawn = append(b.drawn, m) }
func (b *fakeBackend) ReleaseMesh(m *scene.Mesh)                      { b.released = append(b.released, m) }
func (b *fakeBackend) Destroy()                                       { b.destroyed++ }

func newTestViewer(t *testing.T, cfg DisplayConfig, index int) (*Viewer, *fakeBackend, *FrameLoop) {
	t.Helper()
	loop := NewFrameLoop()
	backend := &fakeBackend{}
	v := NewViewer(cfg, index, &fakeSurface{w: 800, h: 400}, backend, loop)
	return v, backend, loop
}

func TestInitSceneSetsAspectFromSurface(t *testing.T) {
	v, backend, _ := newTestViewer(t, DisplayConfig{Name: "a"}, 0)
	v.InitScene()

	require.True(t, v.Initialized())
	assert.InDelta(t, 2.0, v.camera.AspectRatio, 1e-6)
	require.Len(t, backend.resizes, 1)
	assert.Equal(t, [2]int{800, 400}, backend.resizes[0])
}

func TestInitSceneTwicePanics(t *testing.T) {
	v, _, _ := newTestViewer(t, DisplayConfig{}, 0)
	v.InitScene()
	assert.Panics(t, func() { v.InitScene() })
}

func TestStartBeforeInitIsNoOp(t *testing.T) {
	v, _, loop := newTestViewer(t, DisplayConfig{}, 0)
	v.Start()
	assert.False(t, v.Active())
	assert.Equal(t, 0, loop.Pending())
}

func TestStartStopLifecycle(t *testing.T) {
	v, backend, loop := newTestViewer(t, DisplayConfig{}, 0)
	v.InitScene()
	v.LoadModel()

	v.Start()
	require.True(t, v.Active())
	assert.Equal(t, 1, loop.Pending())

	// Already active: a second Start must not schedule a second callback.
	v.Start()
	assert.Equal(t, 1, loop.Pending())

	loop.RunFrame()
	assert.Equal(t, 1, loop.Pending(), "frame should reschedule itself")
	assert.NotEmpty(t, backend.drawn)

	v.Stop()
	assert.False(t, v.Active())
	assert.Equal(t, 0, loop.Pending())

	// Stopped twice is harmless.
	v.Stop()

	drawnBefore := len(backend.drawn)
	loop.RunFrame()
	assert.Equal(t, drawnBefore, len(backend.drawn), "no render after Stop")
}

func TestStopNeverStartedIsNoOp(t *testing.T) {
	v, _, _ := newTestViewer(t, DisplayConfig{}, 0)
	v.InitScene()
	assert.NotPanics(t, func() { v.Stop() })
}

func TestStopFromWithinFrameCallback(t *testing.T) {
	v, backend, loop := newTestViewer(t, DisplayConfig{}, 0)
	v.InitScene()
	v.LoadModel()
	v.Start()

	// Runs in the same frame, after the viewer's render callback has
	// already rescheduled itself.
	loop.Schedule(func() { v.Stop() })
	loop.RunFrame()

	assert.False(t, v.Active())
	assert.Equal(t, 0, loop.Pending(), "rescheduled callback must be cancelled")

	drawn := len(backend.drawn)
	loop.RunFrame()
	assert.Equal(t, drawn, len(backend.drawn))
}

func TestLoadModelBeforeInitPanics(t *testing.T) {
	v, _, _ := newTestViewer(t, DisplayConfig{}, 0)
	assert.Panics(t, func() { v.LoadModel() })
}

func TestLoadModelTwicePanics(t *testing.T) {
	v, _, _ := newTestViewer(t, DisplayConfig{}, 0)
	v.InitScene()
	v.LoadModel()
	assert.Panics(t, func() { v.LoadModel() })
}

func TestLoadModelPlaceholderCyclesWithIndex(t *testing.T) {
	wantNames := []string{"CubeWire", "SphereWire", "TorusWire", "CubeWire", "SphereWire"}
	for i, want := range wantNames {
		v, _, _ := newTestViewer(t, DisplayConfig{}, i)
		v.InitScene()

		var res LoadResult
		v.OnLoad(func(r LoadResult) { res = r })
		v.LoadModel()

		assert.Equal(t, LoadedPlaceholder, res.Outcome)
		nodes := v.Scene().GetVisibleNodes()
		require.Len(t, nodes, 1)
		assert.Equal(t, want, nodes[0].Mesh.Name)
		assert.Equal(t, scene.DrawLines, nodes[0].Mesh.DrawMode)
	}
}

func TestLoadModelFailureIsAbsorbed(t *testing.T) {
	v, _, _ := newTestViewer(t, DisplayConfig{AssetPath: "testdata/does-not-exist.glb"}, 0)
	v.InitScene()

	var res LoadResult
	v.OnLoad(func(r LoadResult) { res = r })

	assert.NotPanics(t, func() { v.LoadModel() })
	assert.Equal(t, LoadFailed, res.Outcome)
	assert.Error(t, res.Err)

	nodes := v.Scene().GetVisibleNodes()
	require.Len(t, nodes, 1, "exactly one error indicator")
	assert.Equal(t, "LoadError", nodes[0].Mesh.Name)
	assert.True(t, nodes[0].Mesh.Material.Unlit)
}

func TestHandleResizeBeforeInitIsNoOp(t *testing.T) {
	v, backend, _ := newTestViewer(t, DisplayConfig{}, 0)
	assert.NotPanics(t, func() { v.HandleResize() })
	assert.Empty(t, backend.resizes)
}

func TestHandleResizeUpdatesAspectWhileInactive(t *testing.T) {
	loop := NewFrameLoop()
	backend := &fakeBackend{}
	surface := &fakeSurface{w: 800, h: 400}
	v := NewViewer(DisplayConfig{}, 0, surface, backend, loop)
	v.InitScene()

	surface.w, surface.h = 600, 600
	v.HandleResize()

	assert.InDelta(t, 1.0, v.camera.AspectRatio, 1e-6)
	assert.Equal(t, [2]int{600, 600}, backend.resizes[len(backend.resizes)-1])
}

func TestDisposeStopsReleasesAndIsIdempotent(t *testing.T) {
	v, backend, loop := newTestViewer(t, DisplayConfig{}, 0)
	v.InitScene()
	v.LoadModel()
	v.Start()

	v.Dispose()

	assert.False(t, v.Active())
	assert.Equal(t, 0, loop.Pending())
	assert.Len(t, backend.released, 1)
	assert.Equal(t, 1, backend.destroyed)

	v.Dispose()
	assert.Equal(t, 1, backend.destroyed, "second Dispose must do nothing")
}

func TestOperationsAfterDisposePanic(t *testing.T) {
	v, _, _ := newTestViewer(t, DisplayConfig{}, 0)
	v.InitScene()
	v.Dispose()

	assert.Panics(t, func() { v.Start() })
	assert.Panics(t, func() { v.Stop() })
	assert.Panics(t, func() { v.HandleResize() })
	assert.Panics(t, func() { v.LoadModel() })
	assert.Panics(t, func() { v.InitScene() })
}

func TestLoadCompletionAfterDisposeIsDropped(t *testing.T) {
	v, backend, _ := newTestViewer(t, DisplayConfig{AssetPath: "late.glb"}, 0)
	v.InitScene()
	v.beginLoad()
	v.Dispose()

	var called bool
	v.onLoad = func(LoadResult) { called = true }
	mesh := scene.CreateCube(1)
	v.finishLoad(mesh, nil)

	assert.False(t, called)
	assert.Len(t, backend.released, 0)
}

func TestAccentFallsBackToWhite(t *testing.T) {
	assert.Equal(t, core.ColorWhite, DisplayConfig{}.Accent())
	assert.Equal(t, core.ColorWhite, DisplayConfig{AccentColor: "nope"}.Accent())

	c := DisplayConfig{AccentColor: "#ff0000"}.Accent()
	assert.InDelta(t, 1.0, c.R, 1e-3)
	assert.InDelta(t, 0.0, c.G, 1e-3)
}
