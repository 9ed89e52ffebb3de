package texture

import (
	"math/rand/v2"

	colorful "github.com/lucasb-eyer/go-colorful"

	"dvgalaxy/internal/scene"
)

// Factory turns generated images into scene textures.
type Factory struct {
	rnd *rand.Rand

	PlanetSize int
	RingSize   int
	GlowSize   int
}

func NewFactory(rnd *rand.Rand) *Factory {
	return &Factory{
		rnd:        rnd,
		PlanetSize: PlanetSize,
		RingSize:   RingSize,
		GlowSize:   GlowSize,
	}
}

func (f *Factory) Planet(base colorful.Color, style Style) *scene.Texture {
	tex := scene.NewTexture(Planet(f.rnd, base, style, f.PlanetSize), scene.WrapRepeat)
	tex.Anisotropy = 4
	return tex
}

func (f *Factory) Ring() *scene.Texture {
	tex := scene.NewTexture(Ring(f.RingSize), scene.WrapClamp)
	tex.Anisotropy = 4
	return tex
}

func (f *Factory) Glow() *scene.Texture {
	return scene.NewTexture(Glow(f.GlowSize), scene.WrapClamp)
}
