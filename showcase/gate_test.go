package showcase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sean-bowman/portfolio/core"
)

func newTestRegistry(t *testing.T, n int) (*Registry, *FrameLoop) {
	t.Helper()
	loop := NewFrameLoop()
	reg := NewRegistry(loop)
	for i := 0; i < n; i++ {
		reg.Add(DisplayConfig{}, &fakeSurface{w: 400, h: 300}, &fakeBackend{})
	}
	reg.InitAll()
	reg.LoadModels()
	return reg, loop
}

func TestGateObserveStartsAndStops(t *testing.T) {
	reg, _ := newTestRegistry(t, 2)
	gate := NewGate(reg)

	gate.Observe(0, true)
	assert.True(t, reg.Viewer(0).Active())
	assert.False(t, reg.Viewer(1).Active())

	gate.Observe(0, false)
	assert.False(t, reg.Viewer(0).Active())
}

func TestGateObserveMissingViewerIsIgnored(t *testing.T) {
	reg, _ := newTestRegistry(t, 1)
	gate := NewGate(reg)

	assert.NotPanics(t, func() {
		gate.Observe(-1, true)
		gate.Observe(5, true)
		gate.Observe(5, false)
	})
}

func TestGateUpdateUsesExpandedViewport(t *testing.T) {
	reg, _ := newTestRegistry(t, 3)
	gate := NewGate(reg)

	viewport := core.Rect{X: 0, Y: 0, Width: 800, Height: 600}
	cards := []core.Rect{
		{X: 0, Y: 0, Width: 800, Height: 400},     // fully inside
		{X: 0, Y: 650, Width: 800, Height: 400},   // inside the 100px margin
		{X: 0, Y: 1200, Width: 800, Height: 400},  // well below
	}
	gate.Update(viewport, cards)

	assert.True(t, reg.Viewer(0).Active())
	assert.True(t, reg.Viewer(1).Active(), "card within margin should start")
	assert.False(t, reg.Viewer(2).Active())
}

func TestGateRepeatedTransitionsLeaveViewerActive(t *testing.T) {
	reg, _ := newTestRegistry(t, 1)
	gate := NewGate(reg)
	v := reg.Viewer(0)
	require.NotNil(t, v)

	for i := 0; i < 2; i++ {
		gate.Observe(0, true)
		gate.Observe(0, false)
		gate.Observe(0, true)
	}
	assert.True(t, v.Active())
}

func TestRegistryViewerOutOfRange(t *testing.T) {
	reg, _ := newTestRegistry(t, 2)
	assert.Nil(t, reg.Viewer(-1))
	assert.Nil(t, reg.Viewer(2))
	assert.NotNil(t, reg.Viewer(1))
	assert.Equal(t, 2, reg.Len())
}

func TestRegistryDisposeAllIdempotent(t *testing.T) {
	reg, loop := newTestRegistry(t, 2)
	gate := NewGate(reg)
	gate.Observe(0, true)
	gate.Observe(1, true)

	reg.DisposeAll()
	assert.Equal(t, 0, loop.Pending())
	assert.NotPanics(t, func() { reg.DisposeAll() })
}
