package galaxy

import "dvgalaxy/internal/world"

// Tuning collects the empirically chosen per-frame constants. Only their
// relative sizes matter; easing factors are fractions of the remaining
// distance covered per frame.
type Tuning struct {
	CameraZ        float64
	CameraTravel   float64 // z distance covered over the whole page
	CameraLift     float64 // y range covered over the whole page
	CameraBob      float64
	CameraBobSpeed float64
	CameraEase     float64

	FollowX    float64
	FollowY    float64
	FollowEase float64

	ScrollKick  float64 // velocity per scrolled pixel
	ScrollDecay float64
	ScrollSpin  float64
	Spin        float64
	ScrollTilt  float64

	WobbleX      float64
	WobbleXSpeed float64
	WobbleZ      float64
	WobbleZSpeed float64

	StarSpin float64

	// EffectStep is the fixed time step particle effects advance by.
	EffectStep float64

	World world.Motion
}

func DefaultTuning() Tuning {
	return Tuning{
		CameraZ:        10,
		CameraTravel:   4,
		CameraLift:     1.6,
		CameraBob:      0.3,
		CameraBobSpeed: 0.07,
		CameraEase:     0.05,

		FollowX:    0.6,
		FollowY:    0.4,
		FollowEase: 0.06,

		ScrollKick:  0.001,
		ScrollDecay: 0.92,
		ScrollSpin:  0.8,
		Spin:        0.003,
		ScrollTilt:  0.35,

		WobbleX:      0.08,
		WobbleXSpeed: 0.35,
		WobbleZ:      0.04 * 0.7,
		WobbleZSpeed: 0.22,

		StarSpin: -0.0006,

		EffectStep: 0.016,

		World: world.DefaultMotion(),
	}
}
