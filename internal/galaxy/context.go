// Package galaxy owns the animated background: it builds the scene on Init,
// wires host input to the interaction controller and advances everything
// once per frame.
package galaxy

import (
	"math/rand/v2"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"dvgalaxy/internal/effect"
	"dvgalaxy/internal/field"
	"dvgalaxy/internal/interact"
	"dvgalaxy/internal/label"
	"dvgalaxy/internal/scene"
	"dvgalaxy/internal/texture"
	"dvgalaxy/internal/world"
)

// maxPixelRatio caps the render resolution on dense displays.
const maxPixelRatio = 2

// Host is the windowing environment the scene lives in. Sizes and pointer
// coordinates are in window pixels.
type Host interface {
	Size() (width, height int)
	PixelRatio() float64
	Now() time.Duration
	OnPointerMove(fn func(x, y float64))
	OnPointerDown(fn func())
	OnResize(fn func(width, height int))
}

// Scroller is the page behind the scene.
type Scroller interface {
	ScrollY() float64
	Progress() float64
	OnScroll(fn func(y float64))
	SmoothScrollTo(section string)
}

// Renderer draws a scene. Width and height are in window pixels.
type Renderer interface {
	SetSize(width, height int, pixelRatio float64)
	Render(s *scene.Scene, cam *scene.Camera, labels []*label.Label)
}

// Textures paints every surface the scene uses.
type Textures interface {
	world.Textures
	Glow() *scene.Texture
}

type Options struct {
	ReducedMotion bool
	Worlds        []world.Config
	Tuning        *Tuning
	Rand          *rand.Rand
	Textures      Textures
}

// Context is the complete scene state. It is created by Init and lives
// until Destroy.
type Context struct {
	host     Host
	renderer Renderer
	scroller Scroller
	tuning   Tuning

	scene  *scene.Scene
	camera *scene.Camera
	root   *scene.Object // galaxy group: spiral clouds and worlds
	field  *field.Galaxy
	glow   *scene.Texture
	worlds []*world.World
	labels []*label.Label

	bursts *effect.Collection
	comets *effect.Collection
	ctl    *interact.Controller

	width, height  int
	lastScrollY    float64
	scrollVelocity float64

	stopped   bool
	destroyed bool
}

// Init builds the scene and starts listening to the host. It returns nil,
// registering nothing, when reduced motion is requested or when there is no
// host or renderer to draw with.
func Init(host Host, r Renderer, scroller Scroller, opts Options) *Context {
	if opts.ReducedMotion || host == nil || r == nil {
		return nil
	}

	rnd := opts.Rand
	if rnd == nil {
		seed := uint64(time.Now().UnixNano())
		rnd = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	tex := opts.Textures
	if tex == nil {
		tex = texture.NewFactory(rnd)
	}
	cfgs := opts.Worlds
	if cfgs == nil {
		cfgs = world.Defaults()
	}

	c := &Context{
		host:     host,
		renderer: r,
		scroller: scroller,
		tuning:   DefaultTuning(),
	}
	if opts.Tuning != nil {
		c.tuning = *opts.Tuning
	}

	c.width, c.height = host.Size()
	r.SetSize(c.width, c.height, min(host.PixelRatio(), maxPixelRatio))

	c.scene = scene.NewScene()
	c.scene.Ambient = scene.Light{Color: scene.HexRGB(0x7f8cff), Intensity: 0.8}
	c.scene.Sun = scene.Light{Color: scene.HexRGB(0xffffff), Intensity: 0.9, Position: mgl32.Vec3{4, 6, 8}}

	c.camera = scene.NewCamera(45, aspect(c.width, c.height), 0.1, 120)
	c.camera.Position = mgl32.Vec3{0, 0, float32(c.tuning.CameraZ)}

	c.glow = tex.Glow()
	c.createGalaxy(rnd)
	c.createWorlds(cfgs, tex, rnd)
	c.scene.Add(c.field.Stars)

	c.bursts = effect.NewCollection(c.scene.Root, effect.MaxBursts)
	c.comets = effect.NewCollection(c.scene.Root, effect.MaxComets)

	var nav interact.Navigator
	if scroller != nil {
		nav = scroller
	}
	c.ctl = interact.New(interact.Options{
		Camera:    c.camera,
		Worlds:    c.worlds,
		Bursts:    c.bursts,
		Comets:    c.comets,
		Navigator: nav,
		Glow:      c.glow,
		Rand:      rnd,
	})

	host.OnResize(c.onResize)
	if scroller != nil {
		c.lastScrollY = scroller.ScrollY()
		scroller.OnScroll(c.onScroll)
	}
	host.OnPointerMove(c.onPointerMove)
	host.OnPointerDown(c.onPointerDown)

	return c
}

func (c *Context) createGalaxy(rnd *rand.Rand) {
	c.root = scene.NewGroup()
	c.root.Name = "galaxy"
	c.scene.Add(c.root)

	c.field = field.NewGalaxy(rnd, c.glow)
	c.root.Add(c.field.Core)
	c.root.Add(c.field.Halo)
}

func (c *Context) createWorlds(cfgs []world.Config, tex world.Textures, rnd *rand.Rand) {
	group := scene.NewGroup()
	group.Name = "worlds"
	c.root.Add(group)

	for i, cfg := range cfgs {
		w := world.Build(cfg, i, tex, rnd)
		group.Add(w.Group)
		c.worlds = append(c.worlds, w)
		c.labels = append(c.labels, w.Label)
	}
}

func aspect(width, height int) float32 {
	if height <= 0 {
		return 1
	}
	return float32(width) / float32(height)
}

// Worlds returns the worlds in configuration order.
func (c *Context) Worlds() []*world.World {
	return c.worlds
}

func (c *Context) Camera() *scene.Camera {
	return c.camera
}

func (c *Context) Scene() *scene.Scene {
	return c.scene
}

func (c *Context) Bursts() *effect.Collection {
	return c.bursts
}

func (c *Context) Comets() *effect.Collection {
	return c.comets
}

// ScrollVelocity is the decaying spin impulse left by recent scrolling.
func (c *Context) ScrollVelocity() float64 {
	return c.scrollVelocity
}

func (c *Context) onResize(width, height int) {
	if c.destroyed {
		return
	}
	c.width, c.height = width, height
	c.renderer.SetSize(width, height, min(c.host.PixelRatio(), maxPixelRatio))
	c.camera.Aspect = aspect(width, height)
}

func (c *Context) onScroll(y float64) {
	if c.destroyed {
		return
	}
	c.scrollVelocity = (y - c.lastScrollY) * c.tuning.ScrollKick
	c.lastScrollY = y
}

func (c *Context) onPointerMove(x, y float64) {
	if c.destroyed || c.width <= 0 || c.height <= 0 {
		return
	}
	ndc := mgl32.Vec2{
		float32(x/float64(c.width)*2 - 1),
		float32(-(y/float64(c.height))*2 + 1),
	}
	c.ctl.PointerMove(ndc, c.host.Now())
}

func (c *Context) onPointerDown() {
	if c.destroyed {
		return
	}
	c.ctl.PointerDown()
}

// Destroy releases every graphics resource the scene holds. Input callbacks
// registered by Init become no-ops and Frame stops for good.
func (c *Context) Destroy() {
	if c == nil || c.destroyed {
		return
	}
	c.destroyed = true

	c.bursts.Clear()
	c.comets.Clear()
	for _, w := range c.worlds {
		w.Dispose()
	}
	c.field.Dispose()
	c.glow.Dispose()

	c.worlds = nil
	c.labels = nil
	c.root = nil
	c.scene = nil
}
