package effect

import "dvgalaxy/internal/scene"

const (
	MaxBursts = 6
	MaxComets = 10
)

// Collection is a bounded, insertion-ordered set of live effects attached to
// one parent object. Every effect leaving the collection is released.
type Collection struct {
	parent   *scene.Object
	capacity int
	items    []*Effect
}

func NewCollection(parent *scene.Object, capacity int) *Collection {
	return &Collection{parent: parent, capacity: capacity}
}

// Add attaches e and evicts the oldest effects while over capacity.
func (c *Collection) Add(e *Effect) {
	c.parent.Add(e.Points)
	c.items = append(c.items, e)
	for len(c.items) > c.capacity {
		oldest := c.items[0]
		c.items[0] = nil
		c.items = c.items[1:]
		oldest.Release()
	}
}

// Step advances every effect by dt and retires those whose life is spent.
func (c *Collection) Step(dt float32) {
	live := c.items[:0]
	for _, e := range c.items {
		if e.Step(dt) {
			e.Release()
			continue
		}
		live = append(live, e)
	}
	for i := len(live); i < len(c.items); i++ {
		c.items[i] = nil
	}
	c.items = live
}

// Clear releases every effect.
func (c *Collection) Clear() {
	for _, e := range c.items {
		e.Release()
	}
	c.items = nil
}

func (c *Collection) Len() int {
	return len(c.items)
}

func (c *Collection) Cap() int {
	return c.capacity
}

// Items returns the live effects, oldest first.
func (c *Collection) Items() []*Effect {
	return c.items
}
