package scene

import "github.com/go-gl/mathgl/mgl32"

// Material describes how a mesh or point cloud is shaded.
type Material interface {
	Resource
	material()
}

// StandardMaterial is a lit surface with an emissive term.
type StandardMaterial struct {
	resource

	Color             mgl32.Vec3
	Emissive          mgl32.Vec3
	EmissiveIntensity float32
	Metalness         float32
	Roughness         float32
	Map               *Texture
}

// BasicMaterial is an unlit, optionally translucent surface.
type BasicMaterial struct {
	resource

	Color       mgl32.Vec3
	Map         *Texture
	Opacity     float32
	Transparent bool
	DoubleSided bool
}

// PointsMaterial shades every vertex of a point cloud as a camera-facing
// sprite whose size attenuates with depth.
type PointsMaterial struct {
	resource

	Color        mgl32.Vec3
	Size         float32
	Opacity      float32
	Map          *Texture
	VertexColors bool
	Additive     bool
	Transparent  bool
}

func (*StandardMaterial) material() {}
func (*BasicMaterial) material()    {}
func (*PointsMaterial) material()   {}
