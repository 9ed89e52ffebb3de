package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Ease moves value a fixed fraction of the way to target. Repeated every frame
// it approaches target without overshooting and never quite reaches it.
func Ease(value, target, factor float32) float32 {
	return value + (target-value)*factor
}

// EaseVec3 applies Ease to each component.
func EaseVec3(v, target mgl32.Vec3, factor float32) mgl32.Vec3 {
	return v.Add(target.Sub(v).Mul(factor))
}

// Lerp blends a toward b by t.
func Lerp(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// RotationMatrix builds the XYZ Euler rotation (Rx * Ry * Rz).
func RotationMatrix(euler mgl32.Vec3) mgl32.Mat4 {
	return mgl32.HomogRotate3DX(euler.X()).
		Mul4(mgl32.HomogRotate3DY(euler.Y())).
		Mul4(mgl32.HomogRotate3DZ(euler.Z()))
}

// Ray is a half line; Direction is kept normalised when built by a Raycaster.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Transform maps the ray through m. Directions ignore translation, so the ray
// parameter of a hit is the same in both spaces.
func (r Ray) Transform(m mgl32.Mat4) Ray {
	return Ray{
		Origin:    m.Mul4x1(r.Origin.Vec4(1)).Vec3(),
		Direction: m.Mul4x1(r.Direction.Vec4(0)).Vec3(),
	}
}

// IntersectPlane returns where the ray crosses p, if it does in front of the
// origin.
func (r Ray) IntersectPlane(p Plane) (mgl32.Vec3, bool) {
	denom := p.Normal.Dot(r.Direction)
	dist := p.Distance(r.Origin)
	if math.Abs(float64(denom)) < 1e-6 {
		if dist == 0 {
			return r.Origin, true
		}
		return mgl32.Vec3{}, false
	}
	t := -dist / denom
	if t < 0 {
		return mgl32.Vec3{}, false
	}
	return r.At(t), true
}

// Plane is the set of points p with Normal·p + Constant = 0.
type Plane struct {
	Normal   mgl32.Vec3
	Constant float32
}

// Distance is the signed distance from point to the plane.
func (p Plane) Distance(point mgl32.Vec3) float32 {
	return p.Normal.Dot(point) + p.Constant
}
