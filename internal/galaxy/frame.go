package galaxy

import (
	"math"

	"dvgalaxy/internal/scene"
)

// Frame advances the scene by one display refresh and draws it. It returns
// false, and keeps returning false, once the objects it animates are gone.
func (c *Context) Frame() bool {
	if c == nil || c.stopped {
		return false
	}
	if c.destroyed || c.scene == nil || c.camera == nil || c.root == nil || c.renderer == nil {
		c.stopped = true
		return false
	}

	t := c.host.Now().Seconds()
	tu := &c.tuning

	progress := 0.0
	if c.scroller != nil {
		progress = c.scroller.Progress()
	}

	c.moveCamera(t, progress)
	c.followPointer()

	c.scrollVelocity *= tu.ScrollDecay
	c.root.Rotation[1] += float32(tu.Spin + c.scrollVelocity*tu.ScrollSpin)
	c.root.Rotation[0] = float32(math.Sin(t*tu.WobbleXSpeed)*tu.WobbleX + progress*tu.ScrollTilt)
	c.root.Rotation[2] = float32(math.Cos(t*tu.WobbleZSpeed) * tu.WobbleZ)

	c.breathe(t)
	c.field.Stars.Rotation[1] += float32(tu.StarSpin)

	hovered := c.ctl.UpdateHover()
	for _, w := range c.worlds {
		isHovered := w == hovered
		w.Animate(t, isHovered, tu.World)
		w.PlaceLabel(c.camera, float32(c.width), float32(c.height), isHovered, tu.World)
	}

	dt := float32(tu.EffectStep)
	c.bursts.Step(dt)
	c.comets.Step(dt)

	c.renderer.Render(c.scene, c.camera, c.labels)
	return true
}

func (c *Context) moveCamera(t, progress float64) {
	tu := &c.tuning
	pos := &c.camera.Position

	targetZ := tu.CameraZ - progress*tu.CameraTravel
	pos[2] = scene.Ease(pos[2], float32(targetZ), float32(tu.CameraEase))

	targetY := math.Sin(t*tu.CameraBobSpeed)*tu.CameraBob + (progress-0.5)*tu.CameraLift
	pos[1] = scene.Ease(pos[1], float32(targetY), float32(tu.CameraEase))
}

func (c *Context) followPointer() {
	tu := &c.tuning
	p := c.ctl.Pointer()
	pos := &c.root.Position

	pos[0] = scene.Ease(pos[0], p.X()*float32(tu.FollowX), float32(tu.FollowEase))
	pos[1] = scene.Ease(pos[1], p.Y()*float32(tu.FollowY), float32(tu.FollowEase))
}

// breathe oscillates the size and opacity of the spiral clouds.
func (c *Context) breathe(t float64) {
	halo := c.field.HaloMaterial()
	halo.Opacity = float32(0.28 + math.Sin(t*0.6)*0.08)
	halo.Size = float32(0.1 + math.Sin(t*0.9)*0.02)

	core := c.field.CoreMaterial()
	core.Size = float32(0.055 + math.Sin(t*1.3)*0.012)
}
