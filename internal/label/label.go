// Package label holds the screen-space text tags that follow each world.
package label

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"dvgalaxy/internal/scene"
)

const (
	padX = 8
	padY = 5
)

var (
	textColor   = color.RGBA{0xe5, 0xe7, 0xeb, 0xff}
	accentColor = color.RGBA{0xa7, 0x8b, 0xfa, 0xff}
	background  = color.RGBA{0x0f, 0x17, 0x2a, 0xb0}
)

// Label is a text tag positioned in window pixels. X and Y are the centre of
// the tag. Opacity 0 hides it.
type Label struct {
	Text    string
	X, Y    float32
	Opacity float32

	bitmap  *image.RGBA
	texture *scene.Texture
}

func New(text string) *Label {
	return &Label{Text: text}
}

// Visible reports whether the label should be drawn this frame.
func (l *Label) Visible() bool {
	return l.Opacity > 0
}

// Bitmap returns the rasterised tag, drawing it on first use.
func (l *Label) Bitmap() *image.RGBA {
	if l.bitmap == nil {
		l.bitmap = Rasterize(l.Text)
	}
	return l.bitmap
}

// Texture wraps the bitmap for upload. It is created once and lives until
// Dispose.
func (l *Label) Texture() *scene.Texture {
	if l.texture == nil {
		l.texture = scene.NewTexture(l.Bitmap(), scene.WrapClamp)
		l.texture.FlipY = false
	}
	return l.texture
}

// Dispose hides the label and releases its texture. A later Texture call
// starts over with a fresh one.
func (l *Label) Dispose() {
	l.Opacity = 0
	if l.texture != nil {
		l.texture.Dispose()
		l.texture = nil
	}
}

// Rasterize draws text on a translucent plate with an accent underline.
func Rasterize(text string) *image.RGBA {
	face := basicfont.Face7x13
	adv := font.MeasureString(face, text).Ceil()
	metrics := face.Metrics()
	textH := (metrics.Ascent + metrics.Descent).Ceil()

	w := adv + 2*padX
	h := textH + 2*padY + 2
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(textColor),
		Face: face,
		Dot:  fixed.P(padX, padY+metrics.Ascent.Ceil()),
	}
	d.DrawString(text)

	DrawLine(img, padX, h-padY+1, w-padX-1, h-padY+1, accentColor)
	return img
}
