// Package page models the scrollable document the background sits behind:
// its sections, its scroll position and eased scrolling between sections.
package page

import (
	"math"
	"time"
)

const (
	// ScrollDuration is the length of a smooth scroll.
	ScrollDuration = 600 * time.Millisecond

	// sectionGap keeps a section heading clear of the sticky header.
	sectionGap = 16
)

// Section is a named anchor at a vertical offset in document pixels.
type Section struct {
	ID  string
	Top float64
}

type Config struct {
	Height        float64
	HeaderHeight  float64
	Sections      []Section
	ReducedMotion bool
}

// DefaultConfig lays out the portfolio page.
func DefaultConfig() Config {
	return Config{
		Height:       4200,
		HeaderHeight: 72,
		Sections: []Section{
			{ID: "#hero", Top: 0},
			{ID: "#focus-areas", Top: 860},
			{ID: "#portfolio", Top: 1720},
			{ID: "#updates", Top: 2900},
			{ID: "#contact", Top: 3600},
		},
	}
}

type scroll struct {
	from, to float64
	start    time.Duration
}

// Page is a virtual document viewed through a window of Viewport pixels.
type Page struct {
	cfg      Config
	viewport float64
	y        float64
	anchors  map[string]float64

	active    *scroll
	listeners []func(y float64)
	now       func() time.Duration
}

// New creates a page. now is the clock smooth scrolls are timed with.
func New(cfg Config, viewport float64, now func() time.Duration) *Page {
	p := &Page{
		cfg:      cfg,
		viewport: viewport,
		anchors:  make(map[string]float64, len(cfg.Sections)),
		now:      now,
	}
	for _, s := range cfg.Sections {
		p.anchors[s.ID] = s.Top
	}
	return p
}

// OnScroll registers fn to be called with the new offset on every change.
func (p *Page) OnScroll(fn func(y float64)) {
	p.listeners = append(p.listeners, fn)
}

func (p *Page) ScrollY() float64 {
	return p.y
}

// MaxScroll is the largest reachable offset.
func (p *Page) MaxScroll() float64 {
	return math.Max(0, p.cfg.Height-p.viewport)
}

// Progress is the scroll offset as a fraction of MaxScroll.
func (p *Page) Progress() float64 {
	limit := p.MaxScroll()
	if limit <= 0 {
		return 0
	}
	return p.y / limit
}

func (p *Page) SetViewport(h float64) {
	p.viewport = h
	p.set(p.y)
}

// ScrollBy moves by dy pixels and cancels any smooth scroll in flight.
func (p *Page) ScrollBy(dy float64) {
	p.active = nil
	p.set(p.y + dy)
}

// ScrollTo jumps to y and cancels any smooth scroll in flight.
func (p *Page) ScrollTo(y float64) {
	p.active = nil
	p.set(y)
}

// SmoothScrollTo eases to the section named by selector so that it sits just
// below the header. Unknown selectors are ignored. With reduced motion the
// jump is immediate.
func (p *Page) SmoothScrollTo(selector string) {
	top, ok := p.anchors[selector]
	if !ok {
		return
	}
	target := p.clamp(top - p.cfg.HeaderHeight - sectionGap)
	if p.cfg.ReducedMotion {
		p.ScrollTo(target)
		return
	}
	p.active = &scroll{from: p.y, to: target, start: p.now()}
}

// Scrolling reports whether a smooth scroll is in progress.
func (p *Page) Scrolling() bool {
	return p.active != nil
}

// Update advances a smooth scroll in progress.
func (p *Page) Update() {
	if p.active == nil {
		return
	}
	s := *p.active
	t := float64(p.now()-s.start) / float64(ScrollDuration)
	if t >= 1 {
		p.active = nil
		p.set(s.to)
		return
	}
	p.set(s.from + (s.to-s.from)*easeInOutCubic(t))
}

func (p *Page) set(y float64) {
	y = p.clamp(y)
	if y == p.y {
		return
	}
	p.y = y
	for _, fn := range p.listeners {
		fn(y)
	}
}

func (p *Page) clamp(y float64) float64 {
	return math.Max(0, math.Min(p.MaxScroll(), y))
}

func easeInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	f := -2*t + 2
	return 1 - f*f*f/2
}
