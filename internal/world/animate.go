package world

import (
	"math"

	"dvgalaxy/internal/scene"
)

// Motion holds the per-frame tunables of world animation.
type Motion struct {
	PulseSpeed    float64
	PulseAmount   float64
	HoverScale    float32
	ScaleEase     float32
	Spin          float32
	EmissiveEase  float32
	HoverEmissive float32
	LabelOpacity  float32
}

func DefaultMotion() Motion {
	return Motion{
		PulseSpeed:    2.0,
		PulseAmount:   0.06,
		HoverScale:    1.6,
		ScaleEase:     0.18,
		Spin:          0.003,
		EmissiveEase:  0.2,
		HoverEmissive: 0.9,
		LabelOpacity:  0.7,
	}
}

// TargetScale is the scale a world eases toward at time t (seconds).
func (w *World) TargetScale(t float64, hovered bool, m Motion) float32 {
	if hovered {
		return w.BaseScale * m.HoverScale
	}
	return float32(1 + math.Sin(t*m.PulseSpeed+float64(w.ID))*m.PulseAmount)
}

// Animate advances scale, spin and glow by one frame.
func (w *World) Animate(t float64, hovered bool, m Motion) {
	w.Group.SetScale(scene.Ease(w.Group.Scale.X(), w.TargetScale(t, hovered, m), m.ScaleEase))
	w.Group.Rotation[1] += m.Spin

	highlight := w.BaseEmissive
	if hovered {
		highlight = m.HoverEmissive
	}
	w.Group.Traverse(func(o *scene.Object) {
		if mat, ok := o.Material.(*scene.StandardMaterial); ok {
			mat.EmissiveIntensity = scene.Ease(mat.EmissiveIntensity, highlight, m.EmissiveEase)
		}
	})
}

// PlaceLabel moves the label onto the world's projected centre in a viewport
// of width x height pixels, or hides it when the world is outside the
// camera's depth range.
func (w *World) PlaceLabel(cam *scene.Camera, width, height float32, hovered bool, m Motion) {
	ndc := cam.Project(w.Group.WorldPosition())
	if ndc.Z() <= -1 || ndc.Z() >= 1 {
		w.Label.Opacity = 0
		return
	}

	w.Label.X = (ndc.X()*0.5 + 0.5) * width
	w.Label.Y = (-ndc.Y()*0.5 + 0.5) * height
	w.Label.Opacity = m.LabelOpacity
	if hovered {
		w.Label.Opacity = 1
	}
}
