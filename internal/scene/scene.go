package scene

import "github.com/go-gl/mathgl/mgl32"

// Light is an ambient or directional light. Position is ignored for ambient
// light and gives the direction towards the light otherwise.
type Light struct {
	Color     mgl32.Vec3
	Intensity float32
	Position  mgl32.Vec3
}

// Scene is the root of everything the renderer draws.
type Scene struct {
	Root    *Object
	Ambient Light
	Sun     Light
}

func NewScene() *Scene {
	return &Scene{Root: NewGroup()}
}

func (s *Scene) Add(o *Object) {
	s.Root.Add(o)
}

func (s *Scene) Remove(o *Object) bool {
	return s.Root.Remove(o)
}
