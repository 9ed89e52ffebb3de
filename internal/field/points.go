package field

import (
	"math/rand/v2"

	"dvgalaxy/internal/scene"
)

// Galaxy holds the three static populations as scene objects.
type Galaxy struct {
	Core  *scene.Object
	Halo  *scene.Object
	Stars *scene.Object
}

func (g *Galaxy) CoreMaterial() *scene.PointsMaterial {
	return g.Core.Material.(*scene.PointsMaterial)
}

func (g *Galaxy) HaloMaterial() *scene.PointsMaterial {
	return g.Halo.Material.(*scene.PointsMaterial)
}

// NewGalaxy samples every population and wraps it in a point cloud that uses
// glow as its sprite.
func NewGalaxy(rnd *rand.Rand, glow *scene.Texture) *Galaxy {
	core := CoreSpiral.Build(rnd)
	halo := HaloSpiral.Build(rnd)
	stars := StarShell.Build(rnd)

	return &Galaxy{
		Core: scene.NewPoints(scene.NewBufferGeometry(core.Positions, core.Colors), &scene.PointsMaterial{
			Size:         0.06,
			Opacity:      0.95,
			Map:          glow,
			VertexColors: true,
			Additive:     true,
			Transparent:  true,
		}),
		Halo: scene.NewPoints(scene.NewBufferGeometry(halo.Positions, halo.Colors), &scene.PointsMaterial{
			Size:         0.1,
			Opacity:      0.35,
			Map:          glow,
			VertexColors: true,
			Additive:     true,
			Transparent:  true,
		}),
		Stars: scene.NewPoints(scene.NewBufferGeometry(stars.Positions, nil), &scene.PointsMaterial{
			Color:       scene.HexRGB(0x9ca3af),
			Size:        0.04,
			Opacity:     0.7,
			Transparent: true,
		}),
	}
}

// Dispose releases all three clouds.
func (g *Galaxy) Dispose() {
	g.Core.Dispose()
	g.Halo.Dispose()
	g.Stars.Dispose()
}
