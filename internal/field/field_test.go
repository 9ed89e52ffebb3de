package field

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(42, 99))
}

func TestSpiralCountsAndBounds(t *testing.T) {
	for name, s := range map[string]Spiral{"core": CoreSpiral, "halo": HaloSpiral} {
		t.Run(name, func(t *testing.T) {
			c := s.Build(testRand())
			if c.Len() != s.Count || len(c.Colors) != s.Count*3 {
				t.Fatalf("len %d colors %d", c.Len(), len(c.Colors))
			}
			// jitter is at most Randomness/2 * radius per axis
			limit := s.MaxRadius * (1 + s.Randomness)
			for i := 0; i < c.Len(); i++ {
				p := c.Point(i)
				if float64(p.Len()) > limit {
					t.Fatalf("point %d at %v beyond %f", i, p, limit)
				}
			}
			for _, v := range c.Colors {
				if v < 0 || v > 1 {
					t.Fatalf("colour component %f", v)
				}
			}
		})
	}
}

func TestSpiralFollowsBranches(t *testing.T) {
	s := Spiral{Count: 10, Branches: 5, Spin: 1.1, MinRadius: 2, MaxRadius: 2, Flatten: 0.7}
	c := s.Build(testRand())
	for i := 0; i < c.Len(); i++ {
		p := c.Point(i)
		want := float64(i%5)/5*2*math.Pi + 2*1.1
		got := math.Atan2(float64(p.Z()), float64(p.X()))
		d := math.Mod(want-got+4*math.Pi, 2*math.Pi)
		if d > 1e-4 && d < 2*math.Pi-1e-4 {
			t.Errorf("point %d angle %f want %f", i, got, want)
		}
		if p.Y() != 0 {
			t.Errorf("zero randomness still moved point %d off the plane", i)
		}
	}
}

func TestHaloFadesOutward(t *testing.T) {
	c := HaloSpiral.Build(testRand())
	inner := HaloSpiral.Inner
	// brightness decreases with radius towards the dark outer hue
	var nearB, farB float64
	var nearN, farN int
	for i := 0; i < c.Len(); i++ {
		b := float64(c.Colors[i*3+2])
		r := float64(mgl32.Vec2{c.Positions[i*3], c.Positions[i*3+2]}.Len())
		if r < 6 {
			nearB += b
			nearN++
		} else if r > 8.5 {
			farB += b
			farN++
		}
	}
	if nearN == 0 || farN == 0 {
		t.Fatalf("no samples near=%d far=%d", nearN, farN)
	}
	if nearB/float64(nearN) <= farB/float64(farN) {
		t.Errorf("halo does not darken outward")
	}
	if nearB/float64(nearN) > inner.B+1e-6 {
		t.Errorf("halo brighter than its inner hue")
	}
}

func TestShellIsIsotropic(t *testing.T) {
	c := StarShell.Build(testRand())
	if c.Len() != StarShell.Count || c.Colors != nil {
		t.Fatalf("len %d", c.Len())
	}
	var up, sumY float64
	for i := 0; i < c.Len(); i++ {
		p := c.Point(i)
		r := float64(p.Len())
		if r < StarShell.MinRadius-1e-3 || r > StarShell.MaxRadius+1e-3 {
			t.Fatalf("radius %f outside shell", r)
		}
		cosPhi := float64(p.Y()) / r
		sumY += cosPhi
		if math.Abs(cosPhi) > 0.5 {
			up++
		}
	}
	// uniform on the sphere: cos(phi) is uniform on [-1, 1]
	frac := up / float64(c.Len())
	if frac < 0.45 || frac > 0.55 {
		t.Errorf("polar caps hold %.2f of stars, want about 0.5", frac)
	}
	if mean := sumY / float64(c.Len()); math.Abs(mean) > 0.05 {
		t.Errorf("mean cos(phi) %f", mean)
	}
}

func TestNewGalaxyMaterials(t *testing.T) {
	g := NewGalaxy(testRand(), nil)
	if g.CoreMaterial().Opacity != 0.95 || !g.CoreMaterial().Additive {
		t.Errorf("core material %+v", g.CoreMaterial())
	}
	if g.HaloMaterial().Size != 0.1 {
		t.Errorf("halo size %f", g.HaloMaterial().Size)
	}
	g.Dispose()
	if !g.Stars.Geometry.Disposed() || !g.HaloMaterial().Disposed() {
		t.Errorf("dispose did not release clouds")
	}
}
