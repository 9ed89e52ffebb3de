package effect

import (
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"dvgalaxy/internal/scene"
)

const dt = 0.016

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(11, 12))
}

func TestBurstIsOmnidirectional(t *testing.T) {
	e := NewBurst(mgl32.Vec3{1, 2, 0}, nil, testRand())
	if len(e.Velocities) != burstCount {
		t.Fatalf("velocities %d", len(e.Velocities))
	}
	var sum mgl32.Vec3
	for _, v := range e.Velocities {
		if s := v.Len(); s < 2-1e-4 || s > 6+1e-4 {
			t.Errorf("speed %f outside 2..6", s)
		}
		sum = sum.Add(v.Normalize())
	}
	// random unit directions roughly cancel
	if sum.Len()/burstCount > 0.3 {
		t.Errorf("burst is lopsided: mean direction %v", sum.Mul(1.0/burstCount))
	}
	if e.MaxLife < 1.1 || e.MaxLife > 1.5 {
		t.Errorf("max life %f", e.MaxLife)
	}
	if e.Points.Position != (mgl32.Vec3{1, 2, 0}) {
		t.Errorf("spawned at %v", e.Points.Position)
	}
}

func TestCometTapersFromHead(t *testing.T) {
	dir := mgl32.Vec3{0, 0, -2}
	e := NewComet(mgl32.Vec3{}, dir, nil, testRand())

	unit := dir.Normalize()
	head := e.Velocities[0].Dot(unit)
	tail := e.Velocities[cometCount-1].Dot(unit)
	if head < CometSpeed-0.5 || tail > CometSpeed*0.5+0.5 {
		t.Errorf("head %f tail %f", head, tail)
	}
	if head <= tail {
		t.Errorf("comet does not taper")
	}

	colors := e.Points.Geometry.(*scene.BufferGeometry).Colors
	headG, tailG := colors[1], colors[(cometCount-1)*3+1]
	if headG <= tailG {
		t.Errorf("head colour not lighter than tail")
	}
	if e.Points.Material.(*scene.PointsMaterial).Opacity != 0.95 {
		t.Errorf("initial opacity")
	}
}

func TestStepMovesAndFades(t *testing.T) {
	e := NewBurst(mgl32.Vec3{}, nil, testRand())
	geom := e.Points.Geometry.(*scene.BufferGeometry)

	e.Step(dt)
	v := e.Velocities[0]
	got := mgl32.Vec3{geom.Positions[0], geom.Positions[1], geom.Positions[2]}
	if !got.ApproxEqual(v.Mul(dt)) {
		t.Errorf("position %v, want %v", got, v.Mul(dt))
	}
	if !geom.NeedsUpdate {
		t.Errorf("geometry not marked for upload")
	}

	mat := e.Points.Material.(*scene.PointsMaterial)
	want := 1 - dt/e.MaxLife
	if mat.Opacity != want {
		t.Errorf("opacity %f want %f", mat.Opacity, want)
	}

	c := NewComet(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, nil, testRand())
	c.Life = c.MaxLife / 2
	if op := c.Opacity(); op < 0.449 || op > 0.451 {
		t.Errorf("comet mid-life opacity %f", op)
	}
}

func TestCollectionRetiresSpentEffects(t *testing.T) {
	root := scene.NewGroup()
	c := NewCollection(root, MaxBursts)
	e := NewBurst(mgl32.Vec3{}, nil, testRand())
	c.Add(e)

	frames := 0
	for c.Len() > 0 {
		c.Step(dt)
		frames++
		if e.Life >= e.MaxLife && c.Len() != 0 {
			t.Fatalf("spent effect kept at life %f", e.Life)
		}
		if frames > 1000 {
			t.Fatal("effect never retired")
		}
	}
	if !e.Released() || e.Points.Parent() != nil {
		t.Errorf("retired effect not released")
	}
	if !e.Points.Geometry.Disposed() || !e.Points.Material.Disposed() {
		t.Errorf("resources leaked")
	}
	if len(root.Children()) != 0 {
		t.Errorf("scene still holds %d objects", len(root.Children()))
	}
}

func TestCollectionEvictsOldestFirst(t *testing.T) {
	for _, limit := range []int{MaxBursts, MaxComets} {
		root := scene.NewGroup()
		c := NewCollection(root, limit)
		rnd := testRand()

		var all []*Effect
		for i := 0; i < limit+3; i++ {
			e := NewComet(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}, nil, rnd)
			all = append(all, e)
			c.Add(e)
			if c.Len() > limit {
				t.Fatalf("limit %d: size %d", limit, c.Len())
			}
		}

		for i, e := range all {
			evicted := i < 3
			if e.Released() != evicted {
				t.Errorf("limit %d: effect %d released=%v", limit, i, e.Released())
			}
		}
		if c.Items()[0] != all[3] {
			t.Errorf("limit %d: oldest survivor is not the fourth effect", limit)
		}
		if len(root.Children()) != limit {
			t.Errorf("limit %d: %d objects attached", limit, len(root.Children()))
		}
	}
}

func TestClearReleasesAll(t *testing.T) {
	root := scene.NewGroup()
	c := NewCollection(root, MaxBursts)
	rnd := testRand()
	for i := 0; i < 4; i++ {
		c.Add(NewBurst(mgl32.Vec3{}, nil, rnd))
	}
	items := append([]*Effect(nil), c.Items()...)
	c.Clear()
	for _, e := range items {
		if !e.Released() {
			t.Errorf("effect survived clear")
		}
	}
	if c.Len() != 0 || len(root.Children()) != 0 {
		t.Errorf("collection not empty")
	}
}
