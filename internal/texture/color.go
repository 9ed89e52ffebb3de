package texture

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// offsetHSL shifts c in HSL space. dh is a fraction of a full turn; s and l
// are clamped to [0, 1].
func offsetHSL(c colorful.Color, dh, ds, dl float64) colorful.Color {
	h, s, l := c.Hsl()
	h = math.Mod(h+dh*360, 360)
	if h < 0 {
		h += 360
	}
	return colorful.Hsl(h, clamp01(s+ds), clamp01(l+dl)).Clamped()
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// paint is a straight-alpha colour in the component form the canvas parses.
type paint struct {
	r, g, b, a uint8
}

func (p paint) args() []interface{} {
	return []interface{}{p.r, p.g, p.b, p.a}
}

// rgba pairs c with opacity a in [0, 1].
func rgba(c colorful.Color, a float64) paint {
	r, g, b := c.Clamped().RGB255()
	return paint{r, g, b, alpha8(a)}
}

// rgb8 is rgba for an sRGB byte triple.
func rgb8(r, g, b uint8, a float64) paint {
	return paint{r, g, b, alpha8(a)}
}

func alpha8(a float64) uint8 {
	return uint8(math.Round(clamp01(a) * 255))
}
