// Package field builds the static point clouds behind the scene: the two
// spiral populations of the galaxy and the far starfield.
package field

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
	colorful "github.com/lucasb-eyer/go-colorful"

	"dvgalaxy/internal/scene"
)

// Cloud is a set of packed xyz positions with matching rgb colours.
type Cloud struct {
	Positions []float32
	Colors    []float32
}

func (c Cloud) Len() int {
	return len(c.Positions) / 3
}

// Point returns the i-th position.
func (c Cloud) Point(i int) mgl32.Vec3 {
	return mgl32.Vec3{c.Positions[i*3], c.Positions[i*3+1], c.Positions[i*3+2]}
}

// Spiral parameterises one logarithmic-spiral population.
type Spiral struct {
	Count      int
	Branches   int
	Spin       float64 // radians of twist per unit radius
	Randomness float64
	MinRadius  float64
	MaxRadius  float64
	Flatten    float64 // vertical scale applied to the jitter
	Inner      colorful.Color
	Outer      colorful.Color
}

var (
	CoreSpiral = Spiral{
		Count:      4500,
		Branches:   5,
		Spin:       1.1,
		Randomness: 0.6,
		MinRadius:  0,
		MaxRadius:  5,
		Flatten:    0.7,
		Inner:      scene.Hex(0x4f8bff),
		Outer:      scene.Hex(0x8b5cf6),
	}

	HaloSpiral = Spiral{
		Count:      2500,
		Branches:   5,
		Spin:       1.1,
		Randomness: 1.2,
		MinRadius:  5,
		MaxRadius:  9,
		Flatten:    0.7,
		Inner:      scene.Hex(0x1d4ed8),
		Outer:      scene.Hex(0x020617),
	}
)

// Build samples the spiral. Point i sits on branch i mod Branches, turned by
// Spin times its radius, and is jittered by an offset proportional to radius.
func (s Spiral) Build(rnd *rand.Rand) Cloud {
	c := Cloud{
		Positions: make([]float32, s.Count*3),
		Colors:    make([]float32, s.Count*3),
	}
	span := s.MaxRadius - s.MinRadius

	jitter := func(radius float64) float64 {
		return (rnd.Float64() - 0.5) * s.Randomness * radius * (rnd.Float64()*0.8 + 0.2)
	}

	for i := 0; i < s.Count; i++ {
		radius := s.MinRadius + rnd.Float64()*span
		branch := float64(i%s.Branches) / float64(s.Branches) * 2 * math.Pi
		angle := branch + radius*s.Spin

		rx, ry, rz := jitter(radius), jitter(radius), jitter(radius)

		i3 := i * 3
		c.Positions[i3] = float32(math.Cos(angle)*radius + rx)
		c.Positions[i3+1] = float32(ry * s.Flatten)
		c.Positions[i3+2] = float32(math.Sin(angle)*radius + rz)

		t := 0.0
		if span > 0 {
			t = (radius - s.MinRadius) / span
		}
		col := scene.RGB(s.Inner.BlendRgb(s.Outer, t))
		copy(c.Colors[i3:i3+3], col[:])
	}
	return c
}

// Shell parameterises the uniform spherical starfield.
type Shell struct {
	Count     int
	MinRadius float64
	MaxRadius float64
}

var StarShell = Shell{Count: 2000, MinRadius: 25, MaxRadius: 45}

// Build places points uniformly over a spherical shell. The polar angle is
// drawn as acos(2u-1) so the points do not bunch at the poles.
func (s Shell) Build(rnd *rand.Rand) Cloud {
	c := Cloud{Positions: make([]float32, s.Count*3)}
	for i := 0; i < s.Count; i++ {
		r := s.MinRadius + rnd.Float64()*(s.MaxRadius-s.MinRadius)
		theta := rnd.Float64() * 2 * math.Pi
		phi := math.Acos(2*rnd.Float64() - 1)

		i3 := i * 3
		c.Positions[i3] = float32(r * math.Sin(phi) * math.Cos(theta))
		c.Positions[i3+1] = float32(r * math.Cos(phi))
		c.Positions[i3+2] = float32(r * math.Sin(phi) * math.Sin(theta))
	}
	return c
}
