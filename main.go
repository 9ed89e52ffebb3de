package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"dvgalaxy/internal/audio"
	"dvgalaxy/internal/galaxy"
	"dvgalaxy/internal/page"
	"dvgalaxy/internal/platform"
	"dvgalaxy/internal/render"
	"dvgalaxy/internal/scene"
)

const title = "DV Galaxy (OpenGL)"

var (
	width         = flag.Int("width", 1280, "window width")
	height        = flag.Int("height", 800, "window height")
	reducedMotion = flag.Bool("reduced-motion", false, "skip the animated background")
	audioPath     = flag.String("audio", "", "ambient track (.wav or .mp3)")
	vsync         = flag.Bool("vsync", true, "synchronise buffer swaps with the display")
)

func init() {
	// GLFW and GL calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	flag.Parse()
	if os.Getenv("DV_REDUCED_MOTION") == "1" {
		*reducedMotion = true
	}

	if err := glfw.Init(); err != nil {
		log.Fatalln("failed to initialize glfw:", err)
	}
	defer glfw.Terminate()

	window, err := platform.Open(platform.Config{
		Width:  *width,
		Height: *height,
		Title:  title,
		VSync:  *vsync,
	})
	if err != nil {
		log.Fatalln(err)
	}
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		log.Fatalln("failed to initialize gl:", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	fmt.Println("OpenGL version", version)

	renderer, err := render.New(window.Framebuffer)
	if err != nil {
		log.Fatalln(err)
	}
	defer renderer.Release()

	_, h := window.Size()
	cfg := page.DefaultConfig()
	cfg.ReducedMotion = *reducedMotion
	site := page.New(cfg, float64(h), window.Now)
	window.OnResize(func(_, h int) { site.SetViewport(float64(h)) })
	window.OnWheel(site.ScrollBy)

	ambient := audio.NewAmbient(*audioPath)
	defer ambient.Close()
	window.OnPointerDown(ambient.Start)
	window.OnKey(func(k platform.Key) {
		ambient.Start()
		handleKey(window, site, k)
	})

	ctx := galaxy.Init(window, renderer, site, galaxy.Options{ReducedMotion: *reducedMotion})
	if ctx != nil {
		defer ctx.Destroy()
	}

	still := scene.NewScene()
	stillCamera := scene.NewCamera(45, 1, 0.1, 120)

	for !window.ShouldClose() {
		site.Update()
		if ctx == nil || !ctx.Frame() {
			renderer.Render(still, stillCamera, nil)
		}
		window.SwapBuffers()
		glfw.PollEvents()
	}
}

// handleKey maps keyboard navigation onto the page.
func handleKey(window *platform.Window, site *page.Page, k platform.Key) {
	_, h := window.Size()
	pageStep := float64(h) * 0.9

	switch k {
	case platform.KeyEscape:
		window.Close()
	case platform.KeyUp:
		site.ScrollBy(-platform.WheelStep)
	case platform.KeyDown:
		site.ScrollBy(platform.WheelStep)
	case platform.KeyPageUp:
		site.ScrollBy(-pageStep)
	case platform.KeyPageDown, platform.KeySpace:
		site.ScrollBy(pageStep)
	case platform.KeyHome:
		site.ScrollTo(0)
	case platform.KeyEnd:
		site.ScrollTo(site.MaxScroll())
	}
}
