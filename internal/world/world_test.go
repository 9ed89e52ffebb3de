package world

import (
	"image"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	colorful "github.com/lucasb-eyer/go-colorful"

	"dvgalaxy/internal/scene"
	"dvgalaxy/internal/texture"
)

type stubTextures struct {
	made []*scene.Texture
}

func (s *stubTextures) tex() *scene.Texture {
	t := scene.NewTexture(image.NewRGBA(image.Rect(0, 0, 2, 2)), scene.WrapClamp)
	s.made = append(s.made, t)
	return t
}

func (s *stubTextures) Planet(colorful.Color, texture.Style) *scene.Texture { return s.tex() }
func (s *stubTextures) Ring() *scene.Texture                                { return s.tex() }

func build(t *testing.T, cfg Config, id int) (*World, *stubTextures) {
	t.Helper()
	tex := &stubTextures{}
	return Build(cfg, id, tex, rand.New(rand.NewPCG(3, 4))), tex
}

func moonRadius(o *scene.Object) float32 {
	return o.Geometry.(*scene.SphereGeometry).Radius
}

func TestMoonCounts(t *testing.T) {
	cases := []struct {
		name  string
		count int
	}{
		{"none", 0},
		{"one", 1},
		{"pair", 2},
		{"three", 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, _ := build(t, Config{Name: c.name, MoonCount: c.count, Radius: 0.3}, 0)
			if len(w.Moons) != c.count {
				t.Fatalf("moons %d, want %d", len(w.Moons), c.count)
			}
			for _, m := range w.Moons {
				r := moonRadius(m)
				if r < moonBase*0.8-1e-6 || r > moonBase+0.07+1e-6 {
					t.Errorf("moon radius %f outside band", r)
				}
			}
		})
	}
}

func TestMoonPairIsLopsided(t *testing.T) {
	for seed := uint64(0); seed < 5; seed++ {
		w := Build(Config{MoonCount: 2, Radius: 0.26}, 2, &stubTextures{}, rand.New(rand.NewPCG(seed, seed)))
		ratio := moonRadius(w.Moons[0]) / moonRadius(w.Moons[1])
		if math.Abs(float64(ratio)-2.25) > 1e-4 {
			t.Errorf("seed %d: ratio %f", seed, ratio)
		}
		d0 := w.Moons[0].Position.Vec2().Len()
		d1 := w.Moons[1].Position.Vec2().Len()
		if d0 == d1 {
			t.Errorf("moons share an orbit")
		}
	}
}

func TestRingOnlyWhenConfigured(t *testing.T) {
	plain, _ := build(t, Config{Radius: 0.3}, 0)
	if plain.Ring != nil || len(plain.Group.Children()) != 1 {
		t.Errorf("unringed world has %d children", len(plain.Group.Children()))
	}

	ringed, tex := build(t, Config{Radius: 0.4, Ringed: true, RingColor: 0x9ca3ff}, 0)
	if ringed.Ring == nil {
		t.Fatal("ring missing")
	}
	g := ringed.Ring.Geometry.(*scene.RingGeometry)
	if !approx(g.Inner, 0.64) || !approx(g.Outer, 1.08) {
		t.Errorf("ring radii %f %f", g.Inner, g.Outer)
	}
	mat := ringed.Ring.Material.(*scene.BasicMaterial)
	if !mat.DoubleSided || !mat.Transparent {
		t.Errorf("ring material %+v", mat)
	}
	if len(tex.made) != 2 {
		t.Errorf("textures made %d", len(tex.made))
	}
}

func TestEveryMeshCarriesOwner(t *testing.T) {
	w, _ := build(t, Config{Ringed: true, MoonCount: 2, Radius: 0.3}, 4)
	n := 0
	w.Group.Traverse(func(o *scene.Object) {
		n++
		if o.Owner != 4 {
			t.Errorf("object %q owner %d", o.Name, o.Owner)
		}
	})
	if n != 5 {
		t.Errorf("traversed %d objects", n)
	}
}

func TestPlacement(t *testing.T) {
	p := Placement(0)
	if !p.ApproxEqual(mgl32.Vec3{OrbitRadius, 0, 0}) {
		t.Errorf("angle 0 at %v", p)
	}
	p = Placement(math.Pi / 2)
	if !p.ApproxEqualThreshold(mgl32.Vec3{0, 0.7, OrbitRadius * 0.4}, 1e-5) {
		t.Errorf("angle pi/2 at %v", p)
	}
}

func TestDefaultsAreDistinctAndStyled(t *testing.T) {
	cfgs := Defaults()
	if len(cfgs) != 5 {
		t.Fatalf("got %d worlds", len(cfgs))
	}
	ringed := 0
	for _, c := range cfgs {
		if c.Section == "" || c.Name == "" {
			t.Errorf("incomplete config %+v", c)
		}
		if c.Ringed {
			ringed++
		}
	}
	if ringed != 1 {
		t.Errorf("%d ringed worlds", ringed)
	}
	if cfgs[2].MoonCount != 2 || cfgs[4].Style != texture.Ocean {
		t.Errorf("unexpected defaults")
	}
}

func TestHoveredScaleEasesToHoverScale(t *testing.T) {
	w, _ := build(t, Config{Radius: 0.3}, 1)
	m := DefaultMotion()

	prev := w.Group.Scale.X()
	for i := 0; i < 200; i++ {
		w.Animate(float64(i)*0.016, true, m)
		s := w.Group.Scale.X()
		if s < prev || s > 1.6 {
			t.Fatalf("frame %d: scale %f after %f", i, s, prev)
		}
		prev = s
	}
	if !approx(prev, 1.6) {
		t.Errorf("hovered scale %f", prev)
	}

	mat := w.Planet.Material.(*scene.StandardMaterial)
	if !approx(mat.EmissiveIntensity, 0.9) {
		t.Errorf("hovered glow %f", mat.EmissiveIntensity)
	}
}

func TestIdleScaleFollowsPulse(t *testing.T) {
	w, _ := build(t, Config{Radius: 0.3}, 3)
	m := DefaultMotion()

	// a frozen clock leaves a fixed pulse target
	const at = 1.25
	for i := 0; i < 200; i++ {
		w.Animate(at, false, m)
	}
	want := float32(1 + math.Sin(at*2+3)*0.06)
	if !approx(w.Group.Scale.X(), want) {
		t.Errorf("scale %f, want pulse %f", w.Group.Scale.X(), want)
	}
	if w.TargetScale(0, false, m) == w.TargetScale(0.5, false, m) {
		t.Errorf("pulse target is constant")
	}
	if !approx(w.Planet.Material.(*scene.StandardMaterial).EmissiveIntensity, BaseEmissive) {
		t.Errorf("idle glow drifted")
	}
	if got := w.Group.Rotation.Y(); !approx(got, 200*m.Spin) {
		t.Errorf("rotation %f", got)
	}
}

func TestPlaceLabel(t *testing.T) {
	w, _ := build(t, Config{Name: "x", Radius: 0.3}, 0)
	w.Group.Position = mgl32.Vec3{0, 0, 0}
	cam := scene.NewCamera(45, 2, 0.1, 120)
	cam.Position = mgl32.Vec3{0, 0, 10}
	m := DefaultMotion()

	w.PlaceLabel(cam, 800, 400, false, m)
	if !approx(w.Label.X, 400) || !approx(w.Label.Y, 200) || w.Label.Opacity != 0.7 {
		t.Errorf("label at %f,%f opacity %f", w.Label.X, w.Label.Y, w.Label.Opacity)
	}

	w.PlaceLabel(cam, 800, 400, true, m)
	if w.Label.Opacity != 1 {
		t.Errorf("hovered opacity %f", w.Label.Opacity)
	}

	w.Group.Position = mgl32.Vec3{0, 0, 15}
	w.PlaceLabel(cam, 800, 400, false, m)
	if w.Label.Visible() {
		t.Errorf("label visible for world behind camera")
	}
}

func TestDisposeReleasesEverything(t *testing.T) {
	root := scene.NewGroup()
	w, tex := build(t, Config{Ringed: true, MoonCount: 1, Radius: 0.3}, 0)
	root.Add(w.Group)
	w.Label.Opacity = 0.7
	labelTex := w.Label.Texture()

	w.Dispose()
	if !labelTex.Disposed() || w.Label.Visible() {
		t.Errorf("label not released")
	}
	if len(root.Children()) != 0 {
		t.Errorf("group still attached")
	}
	w.Group.Traverse(func(o *scene.Object) {
		if o.Kind == scene.KindGroup {
			return
		}
		if !o.Geometry.Disposed() || !o.Material.Disposed() {
			t.Errorf("mesh not released")
		}
	})
	for _, tx := range tex.made {
		if !tx.Disposed() {
			t.Errorf("texture not released")
		}
	}
}

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-3
}
