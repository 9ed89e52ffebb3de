// Package render draws the scene graph with OpenGL 4.1.
package render

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"dvgalaxy/internal/label"
	"dvgalaxy/internal/scene"
)

var clearColor = mgl32.Vec4{0x02 / 255.0, 0x06 / 255.0, 0x17 / 255.0, 1}

// GL is a renderer bound to the current OpenGL context. GPU copies of
// geometries and textures are made on first draw and freed when the scene
// resource is disposed.
type GL struct {
	framebuffer func() (int, int)

	width, height int
	pixelRatio    float64

	mesh, points, overlay *program

	meshes   map[scene.Geometry]*meshBuffer
	clouds   map[*scene.BufferGeometry]*cloudBuffer
	textures map[*scene.Texture]uint32

	white   uint32
	quadVAO uint32
	quadVBO uint32
}

// New compiles the shaders. framebuffer reports the drawable size in device
// pixels; the GL context must be current.
func New(framebuffer func() (int, int)) (*GL, error) {
	r := &GL{
		framebuffer: framebuffer,
		pixelRatio:  1,
		meshes:      make(map[scene.Geometry]*meshBuffer),
		clouds:      make(map[*scene.BufferGeometry]*cloudBuffer),
		textures:    make(map[*scene.Texture]uint32),
	}

	var err error
	if r.mesh, err = newProgram(meshVertexShader, meshFragmentShader); err != nil {
		return nil, errors.Wrap(err, "mesh program")
	}
	if r.points, err = newProgram(pointsVertexShader, pointsFragmentShader); err != nil {
		return nil, errors.Wrap(err, "points program")
	}
	if r.overlay, err = newProgram(overlayVertexShader, overlayFragmentShader); err != nil {
		return nil, errors.Wrap(err, "overlay program")
	}

	white := []uint8{0xff, 0xff, 0xff, 0xff}
	gl.GenTextures(1, &r.white)
	gl.BindTexture(gl.TEXTURE_2D, r.white)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, 1, 1, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(white))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	quad := []float32{0, 0, 1, 0, 0, 1, 1, 1}
	gl.GenVertexArrays(1, &r.quadVAO)
	gl.BindVertexArray(r.quadVAO)
	gl.GenBuffers(1, &r.quadVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*4, gl.Ptr(quad), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 0, gl.PtrOffset(0))
	gl.BindVertexArray(0)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	return r, nil
}

func (r *GL) SetSize(width, height int, pixelRatio float64) {
	r.width, r.height = width, height
	r.pixelRatio = pixelRatio
}

func (r *GL) Render(s *scene.Scene, cam *scene.Camera, labels []*label.Label) {
	fbw, fbh := r.framebuffer()
	gl.Viewport(0, 0, int32(fbw), int32(fbh))
	gl.ClearColor(clearColor[0], clearColor[1], clearColor[2], clearColor[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	list := collect(s.Root)
	projection := cam.Projection()
	view := cam.View()

	gl.Disable(gl.BLEND)
	gl.DepthMask(true)
	r.mesh.use()
	r.setLights(s, view)
	for _, it := range list.opaque {
		r.drawMesh(it, projection, view)
	}

	gl.Enable(gl.BLEND)
	gl.DepthMask(false)
	for _, it := range list.transparent {
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
		r.drawMesh(it, projection, view)
	}

	r.points.use()
	gl.UniformMatrix4fv(r.points.loc("projection"), 1, false, &projection[0])
	gl.Uniform1f(r.points.loc("scale"), float32(fbh)/2)
	for _, it := range list.points {
		r.drawPoints(it, view)
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	r.drawLabels(labels)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthMask(true)
}

func (r *GL) setLights(s *scene.Scene, view mgl32.Mat4) {
	sun := view.Mul4x1(s.Sun.Position.Vec4(0)).Vec3()
	gl.Uniform3fv(r.mesh.loc("ambientColor"), 1, &s.Ambient.Color[0])
	gl.Uniform1f(r.mesh.loc("ambientIntensity"), s.Ambient.Intensity)
	gl.Uniform3fv(r.mesh.loc("sunColor"), 1, &s.Sun.Color[0])
	gl.Uniform1f(r.mesh.loc("sunIntensity"), s.Sun.Intensity)
	gl.Uniform3fv(r.mesh.loc("sunDirection"), 1, &sun[0])
}

func (r *GL) drawMesh(it drawItem, projection, view mgl32.Mat4) {
	g, ok := it.obj.Geometry.(scene.MeshGeometry)
	if !ok {
		return
	}
	buf := r.meshBuffer(g)
	p := r.mesh

	// Normals are lit in view space.
	model := view.Mul4(it.model)
	identity := mgl32.Ident4()
	gl.UniformMatrix4fv(p.loc("model"), 1, false, &model[0])
	gl.UniformMatrix4fv(p.loc("view"), 1, false, &identity[0])
	gl.UniformMatrix4fv(p.loc("projection"), 1, false, &projection[0])

	var tex *scene.Texture
	switch m := it.obj.Material.(type) {
	case *scene.StandardMaterial:
		tex = m.Map
		gl.Uniform1i(p.loc("lit"), 1)
		gl.Uniform3fv(p.loc("color"), 1, &m.Color[0])
		gl.Uniform3fv(p.loc("emissive"), 1, &m.Emissive[0])
		gl.Uniform1f(p.loc("emissiveIntensity"), m.EmissiveIntensity)
		gl.Uniform1f(p.loc("roughness"), m.Roughness)
		gl.Uniform1f(p.loc("metalness"), m.Metalness)
		gl.Uniform1f(p.loc("opacity"), 1)
	case *scene.BasicMaterial:
		tex = m.Map
		gl.Uniform1i(p.loc("lit"), 0)
		gl.Uniform3fv(p.loc("color"), 1, &m.Color[0])
		opacity := m.Opacity
		if !m.Transparent {
			opacity = 1
		}
		gl.Uniform1f(p.loc("opacity"), opacity)
	default:
		return
	}

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.texture(tex))
	gl.Uniform1i(p.loc("map"), 0)

	gl.BindVertexArray(buf.vao)
	gl.DrawElements(gl.TRIANGLES, buf.count, gl.UNSIGNED_INT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
}

func (r *GL) drawPoints(it drawItem, view mgl32.Mat4) {
	g, ok := it.obj.Geometry.(*scene.BufferGeometry)
	if !ok || g.Count() == 0 {
		return
	}
	m, ok := it.obj.Material.(*scene.PointsMaterial)
	if !ok {
		return
	}
	buf := r.cloudBuffer(g)
	p := r.points

	if m.Additive {
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)
	} else {
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	}

	modelView := view.Mul4(it.model)
	gl.UniformMatrix4fv(p.loc("modelView"), 1, false, &modelView[0])
	gl.Uniform1f(p.loc("size"), m.Size*float32(r.pixelRatio))
	gl.Uniform1f(p.loc("opacity"), m.Opacity)

	tint := m.Color
	vertexColors := int32(0)
	if m.VertexColors && buf.hasColors {
		tint = mgl32.Vec3{1, 1, 1}
		vertexColors = 1
	}
	gl.Uniform3fv(p.loc("tint"), 1, &tint[0])
	gl.Uniform1i(p.loc("vertexColors"), vertexColors)

	hasMap := int32(0)
	if m.Map != nil {
		hasMap = 1
	}
	gl.Uniform1i(p.loc("hasMap"), hasMap)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.texture(m.Map))
	gl.Uniform1i(p.loc("map"), 0)

	gl.BindVertexArray(buf.vao)
	gl.DrawArrays(gl.POINTS, 0, buf.count)
	gl.BindVertexArray(0)
}

func (r *GL) drawLabels(labels []*label.Label) {
	if len(labels) == 0 || r.width == 0 || r.height == 0 {
		return
	}
	p := r.overlay
	p.use()
	gl.Uniform2f(p.loc("viewport"), float32(r.width), float32(r.height))
	gl.Uniform1i(p.loc("map"), 0)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindVertexArray(r.quadVAO)

	for _, l := range labels {
		if !l.Visible() {
			continue
		}
		tex := l.Texture()
		id := r.texture(tex)
		x, y, w, h := labelRect(l, tex.Image.Rect.Dx(), tex.Image.Rect.Dy())
		gl.Uniform4f(p.loc("rect"), x, y, w, h)
		gl.Uniform1f(p.loc("opacity"), l.Opacity)
		gl.BindTexture(gl.TEXTURE_2D, id)
		gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	}
	gl.BindVertexArray(0)
}

// labelRect centres a tag of w×h pixels on the label's anchor.
func labelRect(l *label.Label, w, h int) (x, y, width, height float32) {
	width, height = float32(w), float32(h)
	return l.X - width/2, l.Y - height/2, width, height
}

func (r *GL) meshBuffer(g scene.MeshGeometry) *meshBuffer {
	if b, ok := r.meshes[g]; ok {
		return b
	}
	b := uploadMesh(g)
	r.meshes[g] = b
	g.OnDispose(func() {
		b.release()
		delete(r.meshes, g)
	})
	return b
}

func (r *GL) cloudBuffer(g *scene.BufferGeometry) *cloudBuffer {
	if b, ok := r.clouds[g]; ok {
		b.refresh(g)
		return b
	}
	b := uploadCloud(g)
	r.clouds[g] = b
	g.OnDispose(func() {
		b.release()
		delete(r.clouds, g)
	})
	return b
}

func (r *GL) texture(t *scene.Texture) uint32 {
	if t == nil || t.Image == nil {
		return r.white
	}
	if id, ok := r.textures[t]; ok {
		return id
	}
	id := uploadTexture(t.Image, t.Wrap, t.Anisotropy, t.FlipY)
	r.textures[t] = id
	t.OnDispose(func() {
		gl.DeleteTextures(1, &id)
		delete(r.textures, t)
	})
	return id
}

// Release frees every GPU object the renderer still holds.
func (r *GL) Release() {
	for g, b := range r.meshes {
		b.release()
		delete(r.meshes, g)
	}
	for g, b := range r.clouds {
		b.release()
		delete(r.clouds, g)
	}
	for t, id := range r.textures {
		gl.DeleteTextures(1, &id)
		delete(r.textures, t)
	}
	gl.DeleteTextures(1, &r.white)
	gl.DeleteBuffers(1, &r.quadVBO)
	gl.DeleteVertexArrays(1, &r.quadVAO)
	for _, p := range []*program{r.mesh, r.points, r.overlay} {
		gl.DeleteProgram(p.id)
	}
}
