package page

import (
	"testing"
	"time"
)

type clock struct {
	t time.Duration
}

func (c *clock) now() time.Duration { return c.t }

func TestScrollClampsAndNotifies(t *testing.T) {
	c := &clock{}
	p := New(DefaultConfig(), 1000, c.now)

	var seen []float64
	p.OnScroll(func(y float64) { seen = append(seen, y) })

	p.ScrollBy(-50)
	if p.ScrollY() != 0 || len(seen) != 0 {
		t.Errorf("scrolled above the top: %f %v", p.ScrollY(), seen)
	}

	p.ScrollBy(500)
	p.ScrollBy(1e6)
	if p.ScrollY() != 3200 {
		t.Errorf("scroll %f, want 3200", p.ScrollY())
	}
	if len(seen) != 2 || seen[1] != 3200 {
		t.Errorf("listener saw %v", seen)
	}
	if p.Progress() != 1 {
		t.Errorf("progress %f", p.Progress())
	}
}

func TestSmoothScrollEasesToSection(t *testing.T) {
	c := &clock{}
	p := New(DefaultConfig(), 1000, c.now)

	p.SmoothScrollTo("#updates")
	if !p.Scrolling() {
		t.Fatal("no scroll started")
	}
	want := 2900.0 - 72 - 16

	prev := p.ScrollY()
	for c.t = 0; c.t <= ScrollDuration; c.t += 50 * time.Millisecond {
		p.Update()
		if p.ScrollY() < prev {
			t.Fatalf("scroll went backwards at %v", c.t)
		}
		prev = p.ScrollY()
	}
	p.Update()
	if p.ScrollY() != want || p.Scrolling() {
		t.Errorf("ended at %f scrolling=%v, want %f", p.ScrollY(), p.Scrolling(), want)
	}
}

func TestSmoothScrollReducedMotionJumps(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ReducedMotion = true
	p := New(cfg, 1000, (&clock{}).now)

	p.SmoothScrollTo("#focus-areas")
	if p.Scrolling() || p.ScrollY() != 860-72-16 {
		t.Errorf("at %f scrolling=%v", p.ScrollY(), p.Scrolling())
	}
}

func TestUnknownSectionIgnored(t *testing.T) {
	p := New(DefaultConfig(), 1000, (&clock{}).now)
	p.SmoothScrollTo("#missing")
	if p.Scrolling() {
		t.Errorf("scroll started for unknown section")
	}
}

func TestManualScrollCancelsSmoothScroll(t *testing.T) {
	c := &clock{}
	p := New(DefaultConfig(), 1000, c.now)
	p.SmoothScrollTo("#contact")
	c.t = 100 * time.Millisecond
	p.Update()
	p.ScrollBy(10)
	if p.Scrolling() {
		t.Errorf("wheel did not cancel smooth scroll")
	}
}

func TestEaseInOutCubic(t *testing.T) {
	if easeInOutCubic(0) != 0 || easeInOutCubic(1) != 1 || easeInOutCubic(0.5) != 0.5 {
		t.Errorf("ease endpoints wrong")
	}
}
