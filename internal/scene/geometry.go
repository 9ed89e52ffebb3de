package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// VertexStride is the number of floats per interleaved mesh vertex:
// position (3), normal (3), uv (2).
const VertexStride = 8

// Geometry is vertex data owned by a mesh or point cloud.
type Geometry interface {
	Resource

	// Intersect tests a ray given in the geometry's local space and returns
	// the ray parameter of the nearest hit.
	Intersect(r Ray) (float32, bool)
}

// MeshGeometry can produce interleaved triangle data for upload.
type MeshGeometry interface {
	Geometry
	Vertices() ([]float32, []uint32)
}

// SphereGeometry is a UV sphere centred on the origin.
type SphereGeometry struct {
	resource

	Radius         float32
	WidthSegments  int
	HeightSegments int
}

func NewSphereGeometry(radius float32, widthSegments, heightSegments int) *SphereGeometry {
	return &SphereGeometry{Radius: radius, WidthSegments: widthSegments, HeightSegments: heightSegments}
}

func (g *SphereGeometry) Vertices() ([]float32, []uint32) {
	rings, segments := g.HeightSegments, g.WidthSegments
	vertices := make([]float32, 0, (rings+1)*(segments+1)*VertexStride)
	indices := make([]uint32, 0, rings*segments*6)

	for ring := 0; ring <= rings; ring++ {
		theta := float64(ring) * math.Pi / float64(rings)
		sinTheta, cosTheta := math.Sincos(theta)

		for seg := 0; seg <= segments; seg++ {
			phi := float64(seg) * 2 * math.Pi / float64(segments)
			sinPhi, cosPhi := math.Sincos(phi)

			x := float32(-cosPhi * sinTheta)
			y := float32(cosTheta)
			z := float32(sinPhi * sinTheta)

			vertices = append(vertices,
				x*g.Radius, y*g.Radius, z*g.Radius,
				x, y, z,
				float32(seg)/float32(segments), 1-float32(ring)/float32(rings),
			)
		}
	}

	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			current := uint32(ring*(segments+1) + seg)
			next := current + uint32(segments) + 1
			indices = append(indices, current, next, current+1)
			indices = append(indices, current+1, next, next+1)
		}
	}
	return vertices, indices
}

func (g *SphereGeometry) Intersect(r Ray) (float32, bool) {
	a := r.Direction.Dot(r.Direction)
	b := 2 * r.Origin.Dot(r.Direction)
	c := r.Origin.Dot(r.Origin) - g.Radius*g.Radius

	disc := b*b - 4*a*c
	if a == 0 || disc < 0 {
		return 0, false
	}
	sq := float32(math.Sqrt(float64(disc)))
	t := (-b - sq) / (2 * a)
	if t < 0 {
		t = (-b + sq) / (2 * a)
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}

// RingGeometry is a flat annulus in the local XY plane facing +Z.
type RingGeometry struct {
	resource

	Inner         float32
	Outer         float32
	ThetaSegments int
}

func NewRingGeometry(inner, outer float32, thetaSegments int) *RingGeometry {
	return &RingGeometry{Inner: inner, Outer: outer, ThetaSegments: thetaSegments}
}

func (g *RingGeometry) Vertices() ([]float32, []uint32) {
	n := g.ThetaSegments
	vertices := make([]float32, 0, 2*(n+1)*VertexStride)
	indices := make([]uint32, 0, n*6)

	for _, radius := range []float32{g.Inner, g.Outer} {
		for i := 0; i <= n; i++ {
			sin, cos := math.Sincos(float64(i) / float64(n) * 2 * math.Pi)
			x := radius * float32(cos)
			y := radius * float32(sin)
			vertices = append(vertices,
				x, y, 0,
				0, 0, 1,
				(x/g.Outer+1)/2, (y/g.Outer+1)/2,
			)
		}
	}

	for i := 0; i < n; i++ {
		a := uint32(i)
		b := uint32(i + n + 1)
		indices = append(indices, a, b, b+1)
		indices = append(indices, a, b+1, a+1)
	}
	return vertices, indices
}

// Intersect hits either face of the annulus.
func (g *RingGeometry) Intersect(r Ray) (float32, bool) {
	if r.Direction.Z() == 0 {
		return 0, false
	}
	t := -r.Origin.Z() / r.Direction.Z()
	if t < 0 {
		return 0, false
	}
	p := r.At(t)
	d := mgl32.Vec2{p.X(), p.Y()}.Len()
	if d < g.Inner || d > g.Outer {
		return 0, false
	}
	return t, true
}

// BufferGeometry holds raw point-cloud attributes. Positions and Colors are
// packed xyz/rgb triples.
type BufferGeometry struct {
	resource

	Positions []float32
	Colors    []float32

	// NeedsUpdate marks Positions as changed since the last upload.
	NeedsUpdate bool
}

func NewBufferGeometry(positions, colors []float32) *BufferGeometry {
	return &BufferGeometry{Positions: positions, Colors: colors}
}

// Count is the number of points.
func (g *BufferGeometry) Count() int {
	return len(g.Positions) / 3
}

// Intersect never reports a hit; point clouds are not pickable.
func (g *BufferGeometry) Intersect(Ray) (float32, bool) {
	return 0, false
}
