package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func approx(a, b, eps float32) bool {
	return float32(math.Abs(float64(a-b))) <= eps
}

func testCamera() *Camera {
	cam := NewCamera(45, 1, 0.1, 120)
	cam.Position = mgl32.Vec3{0, 0, 10}
	return cam
}

func TestEaseNeverOvershoots(t *testing.T) {
	v := float32(0)
	for i := 0; i < 500; i++ {
		next := Ease(v, 1, 0.05)
		if next < v || next > 1 {
			t.Fatalf("step %d: %f -> %f", i, v, next)
		}
		v = next
	}
	if v == 1 {
		t.Errorf("ease reached target exactly")
	}
	if !approx(v, 1, 1e-3) {
		t.Errorf("ease did not converge: %f", v)
	}
}

func TestRayIntersectPlane(t *testing.T) {
	plane := Plane{Normal: mgl32.Vec3{0, 0, 1}}

	r := Ray{Origin: mgl32.Vec3{1, 2, 5}, Direction: mgl32.Vec3{0, 0, -1}}
	p, ok := r.IntersectPlane(plane)
	if !ok || !p.ApproxEqual(mgl32.Vec3{1, 2, 0}) {
		t.Fatalf("got %v %v", p, ok)
	}

	r.Direction = mgl32.Vec3{0, 0, 1}
	if _, ok := r.IntersectPlane(plane); ok {
		t.Errorf("hit behind the origin")
	}

	r.Direction = mgl32.Vec3{1, 0, 0}
	if _, ok := r.IntersectPlane(plane); ok {
		t.Errorf("parallel ray hit")
	}
}

func TestProjectUnproject(t *testing.T) {
	cam := testCamera()

	centre := cam.Project(mgl32.Vec3{0, 0, 0})
	if !approx(centre.X(), 0, 1e-5) || !approx(centre.Y(), 0, 1e-5) {
		t.Errorf("origin projected off centre: %v", centre)
	}
	if centre.Z() <= -1 || centre.Z() >= 1 {
		t.Errorf("origin outside depth range: %v", centre)
	}

	behind := cam.Project(mgl32.Vec3{0, 0, 20})
	if behind.Z() > -1 && behind.Z() < 1 {
		t.Errorf("point behind camera inside depth range: %v", behind)
	}

	p := mgl32.Vec3{0.5, -1, 2}
	back := cam.Unproject(cam.Project(p))
	if !back.ApproxEqualThreshold(p, 1e-3) {
		t.Errorf("round trip: %v != %v", back, p)
	}
}

func TestRaycasterHitsNestedMeshes(t *testing.T) {
	cam := testCamera()

	group := NewGroup()
	group.Position = mgl32.Vec3{2, 0, 0}
	sphere := NewMesh(NewSphereGeometry(0.5, 8, 8), &StandardMaterial{})
	group.Add(sphere)
	group.Claim(3)

	var rc Raycaster
	rc.SetFromCamera(ndcOf(cam, group.WorldPosition()), cam)

	hits := rc.IntersectObjects([]*Object{group}, true)
	if len(hits) != 1 {
		t.Fatalf("want 1 hit, got %d", len(hits))
	}
	if hits[0].Object != sphere || hits[0].Object.Owner != 3 {
		t.Errorf("wrong object hit")
	}
	if want := float32(math.Sqrt(104)) - 0.5; !approx(hits[0].Distance, want, 0.01) {
		t.Errorf("distance %f", hits[0].Distance)
	}

	if hits := rc.IntersectObjects([]*Object{group}, false); len(hits) != 0 {
		t.Errorf("non-recursive test reached a child")
	}

	rc.SetFromCamera(mgl32.Vec2{-0.9, 0.9}, cam)
	if hits := rc.IntersectObjects([]*Object{group}, true); len(hits) != 0 {
		t.Errorf("miss reported %d hits", len(hits))
	}
}

func TestRaycasterScaledSphere(t *testing.T) {
	cam := testCamera()
	mesh := NewMesh(NewSphereGeometry(0.5, 8, 8), &StandardMaterial{})
	mesh.SetScale(2)

	var rc Raycaster
	rc.SetFromCamera(mgl32.Vec2{0, 0}, cam)
	hits := rc.IntersectObjects([]*Object{mesh}, false)
	if len(hits) != 1 || !approx(hits[0].Distance, 9, 1e-3) {
		t.Fatalf("hits %+v", hits)
	}
}

func TestRingIntersect(t *testing.T) {
	ring := NewRingGeometry(1, 2, 16)
	cases := []struct {
		x    float32
		want bool
	}{
		{0, false},
		{0.9, false},
		{1.5, true},
		{2.1, false},
	}
	for _, c := range cases {
		_, ok := ring.Intersect(Ray{Origin: mgl32.Vec3{c.x, 0, 3}, Direction: mgl32.Vec3{0, 0, -1}})
		if ok != c.want {
			t.Errorf("x=%v: got %v", c.x, ok)
		}
		_, ok = ring.Intersect(Ray{Origin: mgl32.Vec3{c.x, 0, -3}, Direction: mgl32.Vec3{0, 0, 1}})
		if ok != c.want {
			t.Errorf("x=%v back face: got %v", c.x, ok)
		}
	}
}

func TestDisposeRunsHooksOnce(t *testing.T) {
	g := NewBufferGeometry(nil, nil)
	calls := 0
	g.OnDispose(func() { calls++ })
	g.Dispose()
	g.Dispose()
	if calls != 1 || !g.Disposed() {
		t.Errorf("calls=%d disposed=%v", calls, g.Disposed())
	}

	g.OnDispose(func() { calls++ })
	if calls != 2 {
		t.Errorf("late hook not run")
	}
}

func TestObjectDisposeAndDetach(t *testing.T) {
	root := NewGroup()
	mat := &PointsMaterial{}
	pts := NewPoints(NewBufferGeometry(make([]float32, 9), nil), mat)
	root.Add(pts)

	pts.Detach()
	pts.Dispose()

	if len(root.Children()) != 0 || pts.Parent() != nil {
		t.Errorf("still attached")
	}
	if !pts.Geometry.Disposed() || !mat.Disposed() {
		t.Errorf("resources not released")
	}
}

func TestWorldMatrixComposesParents(t *testing.T) {
	root := NewGroup()
	root.Position = mgl32.Vec3{1, 0, 0}
	root.Rotation = mgl32.Vec3{0, math.Pi / 2, 0}
	child := NewGroup()
	child.Position = mgl32.Vec3{1, 0, 0}
	root.Add(child)

	got := child.WorldPosition()
	if !got.ApproxEqualThreshold(mgl32.Vec3{1, 0, -1}, 1e-5) {
		t.Errorf("world position %v", got)
	}
}

func ndcOf(cam *Camera, p mgl32.Vec3) mgl32.Vec2 {
	v := cam.Project(p)
	return mgl32.Vec2{v.X(), v.Y()}
}
