package showcase

import "github.com/sean-bowman/portfolio/core"

// VisibilityMargin is how far beyond the viewport a card counts as
// visible, in pixels. Cards start rendering slightly before they scroll
// into view so there is no blank flash at the edge.
const VisibilityMargin = 100

// Gate starts and stops viewers as their cards scroll in and out of the
// viewport. It is purely edge-triggered: a card that stays visible is left
// alone, and Start/Stop being no-ops when already in the target state
// makes redundant observations harmless anyway.
type Gate struct {
	registry *Registry
	margin   int
}

// NewGate creates a gate over the registry using the default margin.
func NewGate(registry *Registry) *Gate {
	return &Gate{registry: registry, margin: VisibilityMargin}
}

// Observe reports one card's visibility transition, keyed by card index.
// Observations for indexes without a viewer are ignored, covering cards
// whose viewer construction failed or never happened.
func (g *Gate) Observe(index int, visible bool) {
	v := g.registry.Viewer(index)
	if v == nil {
		return
	}
	if visible {
		v.Start()
	} else {
		v.Stop()
	}
}

// Update is the poll path: given the viewport and each card's bounds in
// the same coordinate space, it derives visibility for every card and
// feeds it through Observe. Intended to run once per frame on targets
// without an intersection-callback mechanism.
func (g *Gate) Update(viewport core.Rect, cards []core.Rect) {
	expanded := viewport.Expand(g.margin)
	for i, card := range cards {
		g.Observe(i, expanded.Intersects(card))
	}
}
