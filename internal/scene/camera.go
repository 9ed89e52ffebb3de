package scene

import "github.com/go-gl/mathgl/mgl32"

// Camera is a perspective camera looking down -Z from Position.
type Camera struct {
	FOV      float32 // vertical, degrees
	Aspect   float32
	Near     float32
	Far      float32
	Position mgl32.Vec3
}

func NewCamera(fov, aspect, near, far float32) *Camera {
	return &Camera{FOV: fov, Aspect: aspect, Near: near, Far: far}
}

func (c *Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}

func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Sub(mgl32.Vec3{0, 0, 1}), mgl32.Vec3{0, 1, 0})
}

// Project maps a world point to normalised device coordinates. Points inside
// the view depth range have -1 < z < 1.
func (c *Camera) Project(p mgl32.Vec3) mgl32.Vec3 {
	clip := c.Projection().Mul4(c.View()).Mul4x1(p.Vec4(1))
	return clip.Vec3().Mul(1 / clip.W())
}

// Unproject maps normalised device coordinates back to a world point.
func (c *Camera) Unproject(ndc mgl32.Vec3) mgl32.Vec3 {
	inv := c.Projection().Mul4(c.View()).Inv()
	v := inv.Mul4x1(ndc.Vec4(1))
	return v.Vec3().Mul(1 / v.W())
}
