package world

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
	colorful "github.com/lucasb-eyer/go-colorful"

	"dvgalaxy/internal/label"
	"dvgalaxy/internal/scene"
	"dvgalaxy/internal/texture"
)

const (
	// OrbitRadius is the shared ring every world sits on.
	OrbitRadius = 3.8

	DefaultRadius = 0.4
	BaseEmissive  = 0.45

	moonBase       = 0.03
	moonColor      = 0x9ca3af
	moonEmissive   = 0x6b7280
	moonGlow       = 0.35
	planetSegments = 64
	moonSegments   = 24
	ringSegments   = 80
)

// Textures supplies the surface images a world is painted with.
type Textures interface {
	Planet(base colorful.Color, style texture.Style) *scene.Texture
	Ring() *scene.Texture
}

// World is the scene representation of one content section.
type World struct {
	Config

	ID     int
	Group  *scene.Object
	Planet *scene.Object
	Ring   *scene.Object
	Moons  []*scene.Object
	Label  *label.Label

	BaseScale    float32
	BaseEmissive float32

	textures []*scene.Texture
}

// Build constructs the world's group and stamps id on every mesh in it.
func Build(cfg Config, id int, tex Textures, rnd *rand.Rand) *World {
	radius := float32(cfg.Radius)
	if radius <= 0 {
		radius = DefaultRadius
	}

	w := &World{
		Config:       cfg,
		ID:           id,
		Group:        scene.NewGroup(),
		Label:        label.New(cfg.Name),
		BaseScale:    1,
		BaseEmissive: BaseEmissive,
	}
	w.Group.Name = cfg.Name

	surface := tex.Planet(scene.Hex(cfg.Color), cfg.Style)
	w.textures = append(w.textures, surface)
	w.Planet = scene.NewMesh(scene.NewSphereGeometry(radius, planetSegments, planetSegments), &scene.StandardMaterial{
		Color:             scene.HexRGB(cfg.Color),
		Emissive:          scene.HexRGB(cfg.Emissive),
		EmissiveIntensity: BaseEmissive,
		Metalness:         0.05,
		Roughness:         0.85,
		Map:               surface,
	})
	w.Group.Add(w.Planet)

	if cfg.Ringed {
		ringTex := tex.Ring()
		w.textures = append(w.textures, ringTex)
		w.Ring = scene.NewMesh(scene.NewRingGeometry(radius*1.6, radius*2.7, ringSegments), &scene.BasicMaterial{
			Color:       scene.HexRGB(cfg.RingColor),
			Map:         ringTex,
			Opacity:     0.5,
			Transparent: true,
			DoubleSided: true,
		})
		w.Ring.Rotation = mgl32.Vec3{math.Pi / 2.4, 0, math.Pi / 4}
		w.Group.Add(w.Ring)
	}

	for i := 0; i < cfg.MoonCount; i++ {
		moon := buildMoon(i, cfg.MoonCount, radius, rnd)
		w.Moons = append(w.Moons, moon)
		w.Group.Add(moon)
	}

	w.Group.Position = Placement(cfg.Angle)
	w.Group.Claim(id)
	return w
}

// Placement puts a world on the orbit at angle, lifted and pushed in depth by
// the same angle so the worlds do not lie on a flat circle.
func Placement(angle float64) mgl32.Vec3 {
	sin, cos := math.Sincos(angle)
	return mgl32.Vec3{
		float32(cos * OrbitRadius),
		float32(sin * 0.7),
		float32(sin * OrbitRadius * 0.4),
	}
}

// MoonRadius sizes moon i of count. A pair is deliberately lopsided (2.25:1);
// any other count draws a size within a band.
func MoonRadius(i, count int, rnd *rand.Rand) float32 {
	if count == 2 {
		if i == 0 {
			return moonBase * 1.8
		}
		return moonBase * 0.8
	}
	return float32(moonBase + rnd.Float64()*0.07)
}

func buildMoon(i, count int, planetRadius float32, rnd *rand.Rand) *scene.Object {
	moon := scene.NewMesh(scene.NewSphereGeometry(MoonRadius(i, count, rnd), moonSegments, moonSegments), &scene.StandardMaterial{
		Color:             scene.HexRGB(moonColor),
		Emissive:          scene.HexRGB(moonEmissive),
		EmissiveIntensity: moonGlow,
		Metalness:         0.02,
		Roughness:         0.9,
	})

	angle := float64(i)/float64(count)*2*math.Pi + 0.7
	var spread float64
	if count == 2 {
		spread = float64(i) * 0.7
	} else {
		spread = rnd.Float64() * 0.4
	}
	dist := float64(planetRadius) * (2.1 + spread)

	sin, cos := math.Sincos(angle)
	moon.Position = mgl32.Vec3{
		float32(cos * dist),
		float32(sin * 0.55),
		float32(0.12 + float64(i)*0.06),
	}
	return moon
}

// Dispose releases the meshes and the textures painted for this world.
func (w *World) Dispose() {
	w.Group.Detach()
	w.Group.Dispose()
	for _, t := range w.textures {
		t.Dispose()
	}
	w.textures = nil
	w.Label.Dispose()
}
