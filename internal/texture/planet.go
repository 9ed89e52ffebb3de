package texture

import (
	"image"
	"math"
	"math/rand/v2"

	perlin "github.com/aquilax/go-perlin"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/tfriedel6/canvas"
	"github.com/tfriedel6/canvas/backend/softwarebackend"
)

const (
	PlanetSize = 512

	gasBands   = 9
	gasStorms  = 25
	continents = 70
	craters    = 40
	cloudLines = 18

	grainScale    = 48.0
	grainStrength = 0.06
)

func newCanvas(size int) *canvas.Canvas {
	return canvas.New(softwarebackend.New(size, size))
}

// Planet draws a square surface texture around base. The result differs on
// every call; only the overall look is stable for a given style.
func Planet(rnd *rand.Rand, base colorful.Color, style Style, size int) *image.RGBA {
	cv := newCanvas(size)
	s := float64(size)

	lighter := offsetHSL(base, 0, 0.06, 0.12)
	darker := offsetHSL(base, 0, -0.06, -0.12)

	cv.SetFillStyle(rgba(base, 1).args()...)
	cv.FillRect(0, 0, s, s)

	switch style {
	case Gas:
		drawGas(cv, rnd, s, lighter, darker)
	case Rocky:
		drawRocky(cv, rnd, s, lighter, darker)
	case Ocean:
		drawOcean(cv, rnd, s, base, darker)
	}

	img := cv.GetImageData(0, 0, size, size)
	if style != Ocean {
		addGrain(img, rnd.Int64())
	}
	return img
}

func drawGas(cv *canvas.Canvas, rnd *rand.Rand, s float64, lighter, darker colorful.Color) {
	bandHeight := s / gasBands
	for i := 0; i < gasBands; i++ {
		t := float64(i) / (gasBands - 1)
		cv.SetFillStyle(rgba(lighter.BlendRgb(darker, t), 0.45).args()...)

		y := float64(i)*bandHeight + (rnd.Float64()-0.5)*12
		h := bandHeight * (0.7 + rnd.Float64()*0.6)
		cv.BeginPath()
		cv.Rect(-30, y, s+60, h)
		cv.Fill()
	}

	for i := 0; i < gasStorms; i++ {
		x := rnd.Float64() * s
		y := rnd.Float64() * s
		radius := 16 + rnd.Float64()*26
		alpha := 0.15 + rnd.Float64()*0.2
		cv.SetFillStyle(rgba(lighter.BlendRgb(darker, rnd.Float64()), alpha).args()...)

		cv.BeginPath()
		cv.Ellipse(x, y, radius*(0.8+rnd.Float64()*0.4), radius, (rnd.Float64()-0.5)*0.7, 0, 2*math.Pi, false)
		cv.Fill()
	}
}

func drawRocky(cv *canvas.Canvas, rnd *rand.Rand, s float64, lighter, darker colorful.Color) {
	for i := 0; i < continents; i++ {
		x := rnd.Float64() * s
		y := rnd.Float64() * s
		radius := 10 + rnd.Float64()*40
		alpha := 0.25 + rnd.Float64()*0.25
		cv.SetFillStyle(rgba(lighter.BlendRgb(darker, rnd.Float64()), alpha).args()...)

		cv.BeginPath()
		cv.Ellipse(x, y,
			radius*(0.7+rnd.Float64()*0.6),
			radius*(0.4+rnd.Float64()*0.6),
			rnd.Float64()-0.5,
			0, 2*math.Pi, false)
		cv.Fill()
	}

	cv.SetStrokeStyle(rgb8(15, 23, 42, 0.45).args()...)
	cv.SetLineWidth(1)
	for i := 0; i < craters; i++ {
		x := rnd.Float64() * s
		y := rnd.Float64() * s
		radius := 5 + rnd.Float64()*12

		cv.BeginPath()
		cv.Arc(x, y, radius, 0, 2*math.Pi, false)
		cv.Stroke()
	}
}

func drawOcean(cv *canvas.Canvas, rnd *rand.Rand, s float64, base, darker colorful.Color) {
	shallow := offsetHSL(base, 0.02, 0.1, 0.18)

	grad := cv.CreateLinearGradient(0, 0, 0, s)
	grad.AddColorStop(0, rgba(shallow, 1).args()...)
	grad.AddColorStop(0.5, rgba(base, 1).args()...)
	grad.AddColorStop(1, rgba(darker, 1).args()...)
	cv.SetFillStyle(grad)
	cv.FillRect(0, 0, s, s)

	cv.SetFillStyle(rgb8(229, 242, 255, 0.6).args()...)
	for _, y := range []float64{0.12, 0.88} {
		cv.BeginPath()
		cv.Ellipse(s/2, s*y, s*0.45, s*0.24, 0, 0, 2*math.Pi, false)
		cv.Fill()
	}

	cv.SetStrokeStyle(rgb8(255, 255, 255, 0.35).args()...)
	cv.SetLineWidth(3)
	for i := 0; i < cloudLines; i++ {
		y := rnd.Float64() * s
		cv.BeginPath()
		cv.MoveTo(-30, y)
		cv.QuadraticCurveTo(
			s*(0.3+rnd.Float64()*0.4), y+(rnd.Float64()-0.5)*30,
			s+30, y+(rnd.Float64()-0.5)*20,
		)
		cv.Stroke()
	}
}

// addGrain modulates brightness with low-amplitude Perlin noise. The noise
// wraps horizontally so the seam of the sphere stays invisible.
func addGrain(img *image.RGBA, seed int64) {
	noise := perlin.NewPerlin(2, 2, 3, seed)
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	span := float64(w) / grainScale

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			u := float64(x) / float64(w)
			n := (1-u)*noise.Noise2D(u*span, float64(y)/grainScale) +
				u*noise.Noise2D((u-1)*span, float64(y)/grainScale)
			k := 1 + n*grainStrength

			off := img.PixOffset(x, y)
			for c := 0; c < 3; c++ {
				img.Pix[off+c] = uint8(math.Max(0, math.Min(255, float64(img.Pix[off+c])*k)))
			}
		}
	}
}
