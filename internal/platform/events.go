package platform

// WheelStep is how far one wheel notch scrolls the page, in pixels.
const WheelStep = 60

// events fans host input out to every registered listener.
type events struct {
	move   []func(x, y float64)
	down   []func()
	resize []func(width, height int)
	wheel  []func(dy float64)
	key    []func(k Key)
}

// Key is a pressed key, reduced to what the page reacts to.
type Key int

const (
	KeyOther Key = iota
	KeyEscape
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeySpace
)

func (e *events) pointerMove(x, y float64) {
	for _, fn := range e.move {
		fn(x, y)
	}
}

func (e *events) pointerDown() {
	for _, fn := range e.down {
		fn()
	}
}

func (e *events) resized(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	for _, fn := range e.resize {
		fn(width, height)
	}
}

// scrolled converts a wheel offset, positive away from the user, into a
// page delta in pixels.
func (e *events) scrolled(yoff float64) {
	dy := -yoff * WheelStep
	if dy == 0 {
		return
	}
	for _, fn := range e.wheel {
		fn(dy)
	}
}

func (e *events) pressed(k Key) {
	for _, fn := range e.key {
		fn(k)
	}
}
