package render

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"

	"dvgalaxy/internal/scene"
)

// textureMaxAnisotropy is GL_TEXTURE_MAX_ANISOTROPY_EXT, which the 4.1 core
// profile does not export.
const textureMaxAnisotropy = 0x84FE

type meshBuffer struct {
	vao, vbo, ebo uint32
	count         int32
}

type cloudBuffer struct {
	vao, positions, colors uint32
	count                  int32
	hasColors              bool
}

func uploadMesh(g scene.MeshGeometry) *meshBuffer {
	vertices, indices := g.Vertices()
	b := &meshBuffer{count: int32(len(indices))}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &b.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	stride := int32(scene.VertexStride * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(6*4))

	gl.BindVertexArray(0)
	return b
}

func (b *meshBuffer) release() {
	gl.DeleteBuffers(1, &b.vbo)
	gl.DeleteBuffers(1, &b.ebo)
	gl.DeleteVertexArrays(1, &b.vao)
}

func uploadCloud(g *scene.BufferGeometry) *cloudBuffer {
	b := &cloudBuffer{count: int32(g.Count()), hasColors: len(g.Colors) > 0}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.positions)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.positions)
	bufferFloats(g.Positions, gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 0, gl.PtrOffset(0))

	if b.hasColors {
		gl.GenBuffers(1, &b.colors)
		gl.BindBuffer(gl.ARRAY_BUFFER, b.colors)
		bufferFloats(g.Colors, gl.STATIC_DRAW)
		gl.EnableVertexAttribArray(1)
		gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 0, gl.PtrOffset(0))
	}

	gl.BindVertexArray(0)
	g.NeedsUpdate = false
	return b
}

// refresh re-uploads positions marked dirty since the last frame.
func (b *cloudBuffer) refresh(g *scene.BufferGeometry) {
	if !g.NeedsUpdate {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, b.positions)
	bufferFloats(g.Positions, gl.DYNAMIC_DRAW)
	b.count = int32(g.Count())
	g.NeedsUpdate = false
}

func (b *cloudBuffer) release() {
	gl.DeleteBuffers(1, &b.positions)
	if b.hasColors {
		gl.DeleteBuffers(1, &b.colors)
	}
	gl.DeleteVertexArrays(1, &b.vao)
}

func bufferFloats(data []float32, usage uint32) {
	if len(data) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, usage)
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), usage)
}

func uploadTexture(img *image.RGBA, wrap scene.Wrap, anisotropy int, flip bool) uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	mode := int32(gl.CLAMP_TO_EDGE)
	if wrap == scene.WrapRepeat {
		mode = gl.REPEAT
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, mode)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, mode)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	if anisotropy > 1 {
		gl.TexParameterf(gl.TEXTURE_2D, textureMaxAnisotropy, float32(anisotropy))
	}

	w, h := img.Rect.Dx(), img.Rect.Dy()
	pix := packRows(img, flip)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return id
}

// packRows returns the image's pixels as tight rows, bottom row first when
// flip is set so that v=1 samples the top of the image.
func packRows(img *image.RGBA, flip bool) []uint8 {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	row := w * 4
	out := make([]uint8, row*h)
	for y := 0; y < h; y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+row]
		dst := y
		if flip {
			dst = h - 1 - y
		}
		copy(out[dst*row:(dst+1)*row], src)
	}
	return out
}
