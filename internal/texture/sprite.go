package texture

import (
	"image"
	"math"
)

const (
	RingSize = 512
	GlowSize = 64
)

// Ring draws a translucent annulus that fades out at both its inner and
// outer edge.
func Ring(size int) *image.RGBA {
	cv := newCanvas(size)
	s := float64(size)
	centre := s / 2
	outer := s * 0.48
	inner := s * 0.32

	cv.ClearRect(0, 0, s, s)

	grad := cv.CreateRadialGradient(centre, centre, inner, centre, centre, outer)
	grad.AddColorStop(0, rgb8(255, 255, 255, 0).args()...)
	grad.AddColorStop(0.2, rgb8(209, 213, 255, 0.4).args()...)
	grad.AddColorStop(0.6, rgb8(199, 210, 254, 0.75).args()...)
	grad.AddColorStop(1, rgb8(15, 23, 42, 0).args()...)
	cv.SetFillStyle(grad)

	cv.BeginPath()
	cv.Arc(centre, centre, outer, 0, 2*math.Pi, false)
	cv.Arc(centre, centre, inner, 0, 2*math.Pi, true)
	cv.Fill()

	img := cv.GetImageData(0, 0, size, size)
	clearInside(img, inner)
	return img
}

// clearInside zeroes every pixel closer than r to the centre.
func clearInside(img *image.RGBA, r float64) {
	size := img.Bounds().Dx()
	c := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - c
			dy := float64(y) + 0.5 - c
			if dx*dx+dy*dy < r*r {
				off := img.PixOffset(x, y)
				copy(img.Pix[off:off+4], []uint8{0, 0, 0, 0})
			}
		}
	}
}

// Glow draws the soft round sprite shared by every particle.
func Glow(size int) *image.RGBA {
	cv := newCanvas(size)
	s := float64(size)
	centre := s / 2

	grad := cv.CreateRadialGradient(centre, centre, 0, centre, centre, centre)
	grad.AddColorStop(0, rgb8(255, 255, 255, 1).args()...)
	grad.AddColorStop(0.2, rgb8(255, 255, 255, 0.9).args()...)
	grad.AddColorStop(0.6, rgb8(160, 190, 255, 0.25).args()...)
	grad.AddColorStop(1, rgb8(0, 0, 0, 0).args()...)
	cv.SetFillStyle(grad)
	cv.FillRect(0, 0, s, s)

	return cv.GetImageData(0, 0, size, size)
}
