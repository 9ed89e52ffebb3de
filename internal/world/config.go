// Package world builds and animates the planets that stand for the page's
// content sections.
package world

import (
	"math"

	"dvgalaxy/internal/texture"
)

// Config describes one world.
type Config struct {
	Name      string
	Section   string // navigation target, a section selector such as "#updates"
	Angle     float64
	Color     uint32
	Emissive  uint32
	Ringed    bool
	RingColor uint32
	MoonCount int
	Radius    float64
	Style     texture.Style
}

// Defaults returns the worlds of the portfolio page.
func Defaults() []Config {
	return []Config{
		{
			Name:      "Intelligence & Infrastructure",
			Section:   "#focus-areas",
			Angle:     0,
			Color:     0x1f3b7a,
			Emissive:  0x1e3a8a,
			Ringed:    true,
			RingColor: 0x9ca3ff,
			MoonCount: 0,
			Radius:    0.39,
			Style:     texture.Gas,
		},
		{
			Name:      "Planetary Systems",
			Section:   "#focus-areas",
			Angle:     math.Pi * 0.4,
			Color:     0x0f766e,
			Emissive:  0x115e59,
			MoonCount: 1,
			Radius:    0.34,
			Style:     texture.Rocky,
		},
		{
			Name:      "Bio & Materials",
			Section:   "#focus-areas",
			Angle:     math.Pi * 0.8,
			Color:     0x9d174d,
			Emissive:  0xbe185d,
			MoonCount: 2,
			Radius:    0.26,
			Style:     texture.Rocky,
		},
		{
			Name:      "Finance & Coordination",
			Section:   "#focus-areas",
			Angle:     math.Pi * 1.2,
			Color:     0x4c1d95,
			Emissive:  0x5b21b6,
			MoonCount: 0,
			Radius:    0.32,
			Style:     texture.Gas,
		},
		{
			Name:      "Signals & Updates",
			Section:   "#updates",
			Angle:     math.Pi * 1.6,
			Color:     0x9d7a0d,
			Emissive:  0x7f6000,
			MoonCount: 1,
			Radius:    0.28,
			Style:     texture.Ocean,
		},
	}
}
