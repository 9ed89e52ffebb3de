package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"dvgalaxy/internal/scene"
)

type drawItem struct {
	obj   *scene.Object
	model mgl32.Mat4
}

// drawList is the visible scene split by pass, each in traversal order.
type drawList struct {
	opaque      []drawItem
	transparent []drawItem
	points      []drawItem
}

// collect walks the visible part of the graph, composing world matrices on
// the way down. Hidden objects hide their whole subtree.
func collect(root *scene.Object) drawList {
	var list drawList
	var walk func(o *scene.Object, parent mgl32.Mat4)
	walk = func(o *scene.Object, parent mgl32.Mat4) {
		if !o.Visible {
			return
		}
		model := parent.Mul4(o.LocalMatrix())
		it := drawItem{obj: o, model: model}

		switch o.Kind {
		case scene.KindMesh:
			if m, ok := o.Material.(*scene.BasicMaterial); ok && m.Transparent {
				list.transparent = append(list.transparent, it)
			} else {
				list.opaque = append(list.opaque, it)
			}
		case scene.KindPoints:
			list.points = append(list.points, it)
		}

		for _, c := range o.Children() {
			walk(c, model)
		}
	}
	walk(root, mgl32.Ident4())
	return list
}
