package scene

import "image"

type Wrap int

const (
	WrapClamp Wrap = iota
	WrapRepeat
)

// Texture is a raster image sampled by a material.
type Texture struct {
	resource

	Image      *image.RGBA
	Wrap       Wrap
	Anisotropy int

	// FlipY uploads the bottom row first, so that v=1 samples the top of
	// the image. Screen overlays leave it unset.
	FlipY bool
}

func NewTexture(img *image.RGBA, wrap Wrap) *Texture {
	return &Texture{Image: img, Wrap: wrap, Anisotropy: 1, FlipY: true}
}
