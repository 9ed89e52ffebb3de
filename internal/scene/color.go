package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Hex converts a 0xRRGGBB value to a colour.
func Hex(v uint32) colorful.Color {
	return colorful.Color{
		R: float64((v>>16)&0xff) / 255,
		G: float64((v>>8)&0xff) / 255,
		B: float64(v&0xff) / 255,
	}
}

// RGB returns the sRGB components of c in [0, 1] for shader uniforms and
// vertex data. No linearisation is applied.
func RGB(c colorful.Color) mgl32.Vec3 {
	c = c.Clamped()
	return mgl32.Vec3{float32(c.R), float32(c.G), float32(c.B)}
}

// HexRGB is shorthand for RGB(Hex(v)).
func HexRGB(v uint32) mgl32.Vec3 {
	return RGB(Hex(v))
}
