package scene

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

// Intersection is one ray hit against a mesh.
type Intersection struct {
	Distance float32
	Point    mgl32.Vec3
	Object   *Object
}

type Raycaster struct {
	Ray Ray
}

// SetFromCamera aims the ray from the camera through a pointer position given
// in normalised device coordinates.
func (rc *Raycaster) SetFromCamera(ndc mgl32.Vec2, cam *Camera) {
	target := cam.Unproject(mgl32.Vec3{ndc.X(), ndc.Y(), 0.5})
	rc.Ray = Ray{
		Origin:    cam.Position,
		Direction: target.Sub(cam.Position).Normalize(),
	}
}

// IntersectPlane returns where the current ray crosses p.
func (rc *Raycaster) IntersectPlane(p Plane) (mgl32.Vec3, bool) {
	return rc.Ray.IntersectPlane(p)
}

// IntersectObjects tests every visible mesh among objs (and their descendants
// when recursive is set) and returns the hits nearest first.
func (rc *Raycaster) IntersectObjects(objs []*Object, recursive bool) []Intersection {
	var hits []Intersection
	for _, o := range objs {
		if recursive {
			o.Traverse(func(c *Object) {
				hits = rc.intersect(c, hits)
			})
		} else {
			hits = rc.intersect(o, hits)
		}
	}
	sort.Slice(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
	return hits
}

func (rc *Raycaster) intersect(o *Object, hits []Intersection) []Intersection {
	if o.Kind != KindMesh || !o.Visible || o.Geometry == nil {
		return hits
	}
	local := rc.Ray.Transform(o.WorldMatrix().Inv())
	t, ok := o.Geometry.Intersect(local)
	if !ok {
		return hits
	}
	return append(hits, Intersection{
		Distance: t * rc.Ray.Direction.Len(),
		Point:    rc.Ray.At(t),
		Object:   o,
	})
}
