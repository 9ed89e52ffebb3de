// Package platform hosts the scene in a GLFW window.
package platform

import (
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"
)

type Config struct {
	Width, Height int
	Title         string
	VSync         bool
}

// Window is a GLFW window with a current OpenGL 4.1 core context. All
// methods must be called from the main thread.
type Window struct {
	win *glfw.Window
	events
}

// Open creates the window and makes its context current. glfw.Init must
// have succeeded.
func Open(cfg Config) (*Window, error) {
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.ScaleToMonitor, glfw.True)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create window")
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	w := &Window{win: win}
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		w.pointerMove(x, y)
	})
	win.SetMouseButtonCallback(func(_ *glfw.Window, b glfw.MouseButton, a glfw.Action, _ glfw.ModifierKey) {
		if b == glfw.MouseButtonLeft && a == glfw.Press {
			w.pointerDown()
		}
	})
	win.SetSizeCallback(func(_ *glfw.Window, width, height int) {
		w.resized(width, height)
	})
	win.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		w.scrolled(yoff)
	})
	win.SetKeyCallback(func(_ *glfw.Window, k glfw.Key, _ int, a glfw.Action, _ glfw.ModifierKey) {
		if a == glfw.Press || a == glfw.Repeat {
			w.pressed(keyOf(k))
		}
	})
	return w, nil
}

func keyOf(k glfw.Key) Key {
	switch k {
	case glfw.KeyEscape:
		return KeyEscape
	case glfw.KeyUp:
		return KeyUp
	case glfw.KeyDown:
		return KeyDown
	case glfw.KeyPageUp:
		return KeyPageUp
	case glfw.KeyPageDown:
		return KeyPageDown
	case glfw.KeyHome:
		return KeyHome
	case glfw.KeyEnd:
		return KeyEnd
	case glfw.KeySpace:
		return KeySpace
	}
	return KeyOther
}

func (w *Window) Size() (int, int) {
	return w.win.GetSize()
}

func (w *Window) Framebuffer() (int, int) {
	return w.win.GetFramebufferSize()
}

// PixelRatio is the framebuffer to window size ratio, falling back to the
// monitor content scale before the first frame.
func (w *Window) PixelRatio() float64 {
	ww, _ := w.win.GetSize()
	fw, _ := w.win.GetFramebufferSize()
	if ww > 0 && fw > 0 {
		return float64(fw) / float64(ww)
	}
	sx, _ := w.win.GetContentScale()
	if sx <= 0 {
		return 1
	}
	return float64(sx)
}

// Now is the time since GLFW was initialised.
func (w *Window) Now() time.Duration {
	return time.Duration(glfw.GetTime() * float64(time.Second))
}

func (w *Window) OnPointerMove(fn func(x, y float64)) { w.move = append(w.move, fn) }
func (w *Window) OnPointerDown(fn func())             { w.down = append(w.down, fn) }
func (w *Window) OnResize(fn func(width, height int)) { w.resize = append(w.resize, fn) }
func (w *Window) OnWheel(fn func(dy float64))         { w.wheel = append(w.wheel, fn) }
func (w *Window) OnKey(fn func(k Key))                { w.key = append(w.key, fn) }

func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}

func (w *Window) Close() {
	w.win.SetShouldClose(true)
}

func (w *Window) SwapBuffers() {
	w.win.SwapBuffers()
}

func (w *Window) Destroy() {
	w.win.Destroy()
}
