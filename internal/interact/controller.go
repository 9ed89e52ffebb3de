// Package interact turns pointer input into particle effects, hover state and
// navigation.
package interact

import (
	"math/rand/v2"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"dvgalaxy/internal/effect"
	"dvgalaxy/internal/scene"
	"dvgalaxy/internal/world"
)

// CometInterval is the minimum spacing between pointer moves that spawn a
// comet.
const CometInterval = 80 * time.Millisecond

// Navigator scrolls the page to a section selector.
type Navigator interface {
	SmoothScrollTo(section string)
}

type Options struct {
	Camera    *scene.Camera
	Worlds    []*world.World
	Bursts    *effect.Collection
	Comets    *effect.Collection
	Navigator Navigator
	Glow      *scene.Texture
	Rand      *rand.Rand
}

// Controller tracks the pointer and reacts to moves and presses.
type Controller struct {
	camera  *scene.Camera
	plane   scene.Plane
	ray     scene.Raycaster
	targets []*scene.Object
	byID    map[int]*world.World
	bursts  *effect.Collection
	comets  *effect.Collection
	nav     Navigator
	glow    *scene.Texture
	rnd     *rand.Rand

	pointer   mgl32.Vec2
	moved     bool
	lastComet time.Duration
	cometed   bool
	hovered   *world.World
}

func New(o Options) *Controller {
	c := &Controller{
		camera: o.Camera,
		// faces the camera through the origin
		plane:  scene.Plane{Normal: mgl32.Vec3{0, 0, 1}},
		byID:   make(map[int]*world.World, len(o.Worlds)),
		bursts: o.Bursts,
		comets: o.Comets,
		nav:    o.Navigator,
		glow:   o.Glow,
		rnd:    o.Rand,
	}
	for _, w := range o.Worlds {
		c.targets = append(c.targets, w.Group)
		c.byID[w.ID] = w
	}
	return c
}

// Pointer is the last pointer position in normalised device coordinates.
func (c *Controller) Pointer() mgl32.Vec2 {
	return c.pointer
}

func (c *Controller) Hovered() *world.World {
	return c.hovered
}

// PointerMove records the pointer and, unless a comet was spawned less than
// CometInterval ago, spawns one where the pointer ray meets the interaction
// plane. It reports whether a comet was spawned.
func (c *Controller) PointerMove(ndc mgl32.Vec2, now time.Duration) bool {
	c.pointer = ndc
	c.moved = true

	if c.cometed && now-c.lastComet < CometInterval {
		return false
	}
	c.lastComet = now
	c.cometed = true

	c.ray.SetFromCamera(c.pointer, c.camera)
	hit, ok := c.ray.IntersectPlane(c.plane)
	if !ok {
		return false
	}
	c.comets.Add(effect.NewComet(hit, c.ray.Ray.Direction, c.glow, c.rnd))
	return true
}

// PointerDown bursts at the pointer and navigates to the world under it, if
// any. It returns the world that was hit.
func (c *Controller) PointerDown() *world.World {
	c.ray.SetFromCamera(c.pointer, c.camera)
	if hit, ok := c.ray.IntersectPlane(c.plane); ok {
		c.bursts.Add(effect.NewBurst(hit, c.glow, c.rnd))
	}

	w := c.pick()
	if w != nil && c.nav != nil && w.Section != "" {
		c.nav.SmoothScrollTo(w.Section)
	}
	return w
}

// UpdateHover re-tests the pointer against the worlds. Nothing is hovered
// until the pointer has moved at least once.
func (c *Controller) UpdateHover() *world.World {
	if !c.moved {
		c.hovered = nil
		return nil
	}
	c.ray.SetFromCamera(c.pointer, c.camera)
	c.hovered = c.pick()
	return c.hovered
}

// pick resolves the nearest mesh under the current ray to its world through
// the owner id stamped on it at build time.
func (c *Controller) pick() *world.World {
	hits := c.ray.IntersectObjects(c.targets, true)
	if len(hits) == 0 {
		return nil
	}
	return c.byID[hits[0].Object.Owner]
}
