// Package effect implements the short-lived particle bursts and comet trails
// spawned by pointer input.
package effect

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"

	"dvgalaxy/internal/scene"
)

type Kind int

const (
	Burst Kind = iota
	Comet
)

func (k Kind) String() string {
	if k == Comet {
		return "comet"
	}
	return "burst"
}

const (
	burstCount = 90
	cometCount = 45

	// CometSpeed is the head speed of a comet along the pointer ray.
	CometSpeed = 4
)

var (
	burstInner = scene.Hex(0xc4b5fd)
	burstOuter = scene.Hex(0x4f46e5)
	cometHead  = scene.Hex(0xf9fafb)
	cometTail  = scene.Hex(0xa855f7)
)

// Effect is one transient point cloud. It owns the geometry and material of
// Points from construction until Release.
type Effect struct {
	Kind       Kind
	Points     *scene.Object
	Velocities []mgl32.Vec3
	Life       float32
	MaxLife    float32

	peak     float32
	released bool
}

func newEffect(kind Kind, at mgl32.Vec3, positions, colors []float32, size, opacity float32, glow *scene.Texture) *Effect {
	pts := scene.NewPoints(scene.NewBufferGeometry(positions, colors), &scene.PointsMaterial{
		Size:         size,
		Opacity:      opacity,
		Map:          glow,
		VertexColors: true,
		Additive:     true,
		Transparent:  true,
	})
	pts.Position = at
	pts.Name = kind.String()
	return &Effect{Kind: kind, Points: pts}
}

// NewBurst scatters particles from at in every direction.
func NewBurst(at mgl32.Vec3, glow *scene.Texture, rnd *rand.Rand) *Effect {
	positions := make([]float32, burstCount*3)
	colors := make([]float32, burstCount*3)
	velocities := make([]mgl32.Vec3, burstCount)

	for i := range velocities {
		var dir mgl32.Vec3
		for dir.Len() < 1e-4 {
			dir = mgl32.Vec3{
				float32(rnd.Float64() - 0.5),
				float32(rnd.Float64() - 0.5),
				float32(rnd.Float64() - 0.5),
			}
		}
		speed := float32(2 + rnd.Float64()*4)
		velocities[i] = dir.Normalize().Mul(speed)

		c := scene.RGB(burstInner.BlendRgb(burstOuter, rnd.Float64()))
		copy(colors[i*3:i*3+3], c[:])
	}

	e := newEffect(Burst, at, positions, colors, 0.09, 1, glow)
	e.Velocities = velocities
	e.MaxLife = float32(1.1 + rnd.Float64()*0.4)
	e.peak = 1
	return e
}

// NewComet emits a trail from at along direction. Particles near the head
// move fastest and are lightest; the tail is slower and tinted with the
// accent colour.
func NewComet(at, direction mgl32.Vec3, glow *scene.Texture, rnd *rand.Rand) *Effect {
	positions := make([]float32, cometCount*3)
	colors := make([]float32, cometCount*3)
	velocities := make([]mgl32.Vec3, cometCount)

	head := direction.Normalize().Mul(CometSpeed)

	for i := range velocities {
		t := float32(i) / (cometCount - 1)
		jitter := mgl32.Vec3{
			float32((rnd.Float64() - 0.5) * 0.5),
			float32((rnd.Float64() - 0.5) * 0.5),
			float32((rnd.Float64() - 0.5) * 0.5),
		}
		velocities[i] = head.Mul(0.5 + 0.5*(1-t)).Add(jitter)

		offset := head.Mul(-t * 0.1)
		copy(positions[i*3:i*3+3], offset[:])

		c := scene.RGB(cometHead.BlendRgb(cometTail, float64(t)))
		copy(colors[i*3:i*3+3], c[:])
	}

	e := newEffect(Comet, at, positions, colors, 0.08, 0.95, glow)
	e.Velocities = velocities
	e.MaxLife = float32(1.5 + rnd.Float64()*0.6)
	e.peak = 0.9
	return e
}

// Step advances the effect by dt seconds and reports whether it has reached
// the end of its life.
func (e *Effect) Step(dt float32) bool {
	e.Life += dt

	geom := e.Points.Geometry.(*scene.BufferGeometry)
	for i, v := range e.Velocities {
		geom.Positions[i*3] += v.X() * dt
		geom.Positions[i*3+1] += v.Y() * dt
		geom.Positions[i*3+2] += v.Z() * dt
	}
	geom.NeedsUpdate = true

	e.Points.Material.(*scene.PointsMaterial).Opacity = e.Opacity()
	return e.Life >= e.MaxLife
}

// Opacity fades linearly from the effect's peak to zero over its life.
func (e *Effect) Opacity() float32 {
	t := e.Life / e.MaxLife
	return max(0, e.peak*(1-t))
}

// Release detaches the effect from the scene and frees its graphics
// resources. Only the first call has an effect.
func (e *Effect) Release() {
	if e.released {
		return
	}
	e.released = true
	e.Points.Detach()
	e.Points.Dispose()
}

func (e *Effect) Released() bool {
	return e.released
}
