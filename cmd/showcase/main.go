package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/sean-bowman/portfolio/core"
	"github.com/sean-bowman/portfolio/math"
	"github.com/sean-bowman/portfolio/opengl"
	"github.com/sean-bowman/portfolio/scene"
	"github.com/sean-bowman/portfolio/showcase"
)

const (
	cardHeight = 360 // card pixel height in the scroll column
	cardGap    = 24
	cardMargin = 40 // horizontal inset from the window edge
)

// page is the scrollable column of showcase cards inside one window. All
// cards share a single GL context; each card draws into its own scissored
// viewport region.
type page struct {
	window   *core.Window
	renderer *opengl.Renderer
	scroll   float64 // pixels scrolled down from the top

	cards []*cardTarget

	dragging bool
	dragCard int
	lastX    float64
	lastY    float64
}

// cardTarget binds one viewer to a rectangular region of the window. It is
// both the viewer's Surface (reporting the card size) and its Backend
// (translating card-local draws into window coordinates on the shared
// renderer).
type cardTarget struct {
	page *page
	rect core.Rect // window coordinates, y-down from the top
}

func (c *cardTarget) Size() (int, int) { return c.rect.Width, c.rect.Height }

// SetViewport maps a card-local region to GL window coordinates, whose
// origin is the bottom-left corner.
func (c *cardTarget) SetViewport(x, y, w, h int) {
	_, fbh := c.page.window.GetFramebufferSize()
	glY := fbh - (c.rect.Y + c.rect.Height) + y
	c.page.renderer.SetViewport(c.rect.X+x, glY, w, h)
}

func (c *cardTarget) Clear(col core.Color) { c.page.renderer.Clear(col) }

func (c *cardTarget) SetLights(ambient core.Color, lights []*scene.Light) {
	c.page.renderer.SetLights(ambient, lights)
}

func (c *cardTarget) DrawMesh(m *scene.Mesh, mvp, model math.Mat4) {
	c.page.renderer.DrawMesh(m, mvp, model)
}

func (c *cardTarget) ReleaseMesh(m *scene.Mesh) { c.page.renderer.ReleaseMesh(m) }

// Resize and Destroy are no-ops: the card has no GPU surface of its own,
// and the shared renderer outlives every card.
func (c *cardTarget) Resize(w, h int) {}
func (c *cardTarget) Destroy()        {}

// layout recomputes every card's window rectangle from the current scroll
// position and window width.
func (p *page) layout() {
	w, _ := p.window.GetFramebufferSize()
	y := cardGap - int(p.scroll)
	for _, c := range p.cards {
		c.rect = core.Rect{
			X:      cardMargin,
			Y:      y,
			Width:  w - 2*cardMargin,
			Height: cardHeight,
		}
		y += cardHeight + cardGap
	}
}

// rects returns the card rectangles for visibility gating.
func (p *page) rects() []core.Rect {
	out := make([]core.Rect, len(p.cards))
	for i, c := range p.cards {
		out[i] = c.rect
	}
	return out
}

// cardAt returns the index of the card under the given cursor position,
// or -1.
func (p *page) cardAt(x, y float64) int {
	for i, c := range p.cards {
		if int(x) >= c.rect.X && int(x) < c.rect.X+c.rect.Width &&
			int(y) >= c.rect.Y && int(y) < c.rect.Y+c.rect.Height {
			return i
		}
	}
	return -1
}

func (p *page) maxScroll() float64 {
	_, h := p.window.GetFramebufferSize()
	content := len(p.cards)*(cardHeight+cardGap) + cardGap
	max := float64(content - h)
	if max < 0 {
		max = 0
	}
	return max
}

// handleDrag routes left-button drags to the orbit controls of the card
// under the cursor.
func (p *page) handleDrag(registry *showcase.Registry) {
	x, y := p.window.GetCursorPos()
	pressed := p.window.IsMouseButtonPressed(0)

	switch {
	case pressed && !p.dragging:
		p.dragging = true
		p.dragCard = p.cardAt(x, y)
		p.lastX, p.lastY = x, y

	case pressed && p.dragging:
		if v := registry.Viewer(p.dragCard); v != nil && v.Initialized() {
			dx := float32(x-p.lastX) * 0.01
			dy := float32(y-p.lastY) * 0.01
			v.Controls().Drag(dx, dy)
		}
		p.lastX, p.lastY = x, y

	default:
		p.dragging = false
	}
}

func main() {
	configPath := flag.String("config", "showcase.toml", "path to the display list")
	flag.Parse()

	displays, err := showcase.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "showcase: %v\n", err)
		os.Exit(1)
	}

	windowConfig := core.DefaultWindowConfig()
	windowConfig.Title = "Portfolio Showcase"
	windowConfig.Width = 1024
	windowConfig.Height = 768

	window, err := core.NewWindow(windowConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "showcase: create window: %v\n", err)
		os.Exit(1)
	}
	defer window.Destroy()

	renderer, err := opengl.NewRenderer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "showcase: init renderer: %v\n", err)
		os.Exit(1)
	}
	defer renderer.Destroy()

	p := &page{window: window, renderer: renderer, dragCard: -1}

	loop := showcase.NewFrameLoop()
	registry := showcase.NewRegistry(loop)

	for _, cfg := range displays {
		card := &cardTarget{page: p}
		p.cards = append(p.cards, card)
		v := registry.Add(cfg, card, card)

		name := cfg.Name
		v.OnLoad(func(res showcase.LoadResult) {
			switch res.Outcome {
			case showcase.LoadedAsset:
				log.Printf("loaded %q", name)
			case showcase.LoadedPlaceholder:
				log.Printf("%q has no asset, showing placeholder", name)
			case showcase.LoadFailed:
				log.Printf("%q failed to load: %v", name, res.Err)
			}
		})
	}
	defer registry.DisposeAll()

	p.layout()
	registry.InitAll()
	registry.LoadModels()

	gate := showcase.NewGate(registry)

	resize := showcase.NewResizeCoordinator(func() {
		loop.Post(registry.HandleResizeAll)
	})
	defer resize.Stop()
	window.SetSizeCallback(func(width, height int) {
		resize.Signal()
	})

	window.SetScrollCallback(func(xoff, yoff float64) {
		p.scroll -= yoff * 40
		if p.scroll < 0 {
			p.scroll = 0
		}
		if max := p.maxScroll(); p.scroll > max {
			p.scroll = max
		}
	})

	log.Printf("showing %d cards from %s", registry.Len(), *configPath)

	for !window.ShouldClose() {
		window.PollEvents()
		p.layout()
		p.handleDrag(registry)

		fbw, fbh := window.GetFramebufferSize()
		renderer.SetViewport(0, 0, fbw, fbh)
		renderer.Clear(core.Color{R: 0.08, G: 0.09, B: 0.11, A: 1})

		gate.Update(core.Rect{X: 0, Y: 0, Width: fbw, Height: fbh}, p.rects())
		loop.RunFrame()

		window.SwapBuffers()
	}
}
