package scene

import "github.com/go-gl/mathgl/mgl32"

type Kind int

const (
	KindGroup Kind = iota
	KindMesh
	KindPoints
)

// NoOwner marks an object that does not belong to any pickable world.
const NoOwner = -1

// Object is a node of the scene graph.
type Object struct {
	Name     string
	Kind     Kind
	Position mgl32.Vec3
	Rotation mgl32.Vec3 // Euler angles, XYZ order
	Scale    mgl32.Vec3
	Visible  bool

	// Owner is the id of the world this object is part of, stamped at
	// construction so a hit resolves without walking parents.
	Owner int

	Geometry Geometry
	Material Material

	parent   *Object
	children []*Object
}

func newObject(kind Kind, g Geometry, m Material) *Object {
	return &Object{
		Kind:     kind,
		Scale:    mgl32.Vec3{1, 1, 1},
		Visible:  true,
		Owner:    NoOwner,
		Geometry: g,
		Material: m,
	}
}

func NewGroup() *Object {
	return newObject(KindGroup, nil, nil)
}

func NewMesh(g MeshGeometry, m Material) *Object {
	return newObject(KindMesh, g, m)
}

func NewPoints(g *BufferGeometry, m *PointsMaterial) *Object {
	return newObject(KindPoints, g, m)
}

// Add attaches child, detaching it from any previous parent first.
func (o *Object) Add(child *Object) {
	if child.parent != nil {
		child.parent.Remove(child)
	}
	child.parent = o
	o.children = append(o.children, child)
}

// Remove detaches child and reports whether it was attached to o.
func (o *Object) Remove(child *Object) bool {
	for i, c := range o.children {
		if c == child {
			o.children = append(o.children[:i], o.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// Detach removes o from its parent, if any.
func (o *Object) Detach() {
	if o.parent != nil {
		o.parent.Remove(o)
	}
}

func (o *Object) Parent() *Object {
	return o.parent
}

func (o *Object) Children() []*Object {
	return o.children
}

// Traverse calls fn on o and then on every descendant, depth first.
func (o *Object) Traverse(fn func(*Object)) {
	fn(o)
	for _, c := range o.children {
		c.Traverse(fn)
	}
}

// Claim stamps owner on o and all its descendants.
func (o *Object) Claim(owner int) {
	o.Traverse(func(c *Object) {
		c.Owner = owner
	})
}

// SetScale sets a uniform scale.
func (o *Object) SetScale(s float32) {
	o.Scale = mgl32.Vec3{s, s, s}
}

func (o *Object) LocalMatrix() mgl32.Mat4 {
	return mgl32.Translate3D(o.Position.X(), o.Position.Y(), o.Position.Z()).
		Mul4(RotationMatrix(o.Rotation)).
		Mul4(mgl32.Scale3D(o.Scale.X(), o.Scale.Y(), o.Scale.Z()))
}

func (o *Object) WorldMatrix() mgl32.Mat4 {
	m := o.LocalMatrix()
	for p := o.parent; p != nil; p = p.parent {
		m = p.LocalMatrix().Mul4(m)
	}
	return m
}

func (o *Object) WorldPosition() mgl32.Vec3 {
	return o.WorldMatrix().Col(3).Vec3()
}

// Dispose releases the geometry and material of o and every descendant.
// Textures are shared and are left to their owner.
func (o *Object) Dispose() {
	o.Traverse(func(c *Object) {
		if c.Geometry != nil {
			c.Geometry.Dispose()
		}
		if c.Material != nil {
			c.Material.Dispose()
		}
	})
}
