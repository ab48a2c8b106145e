// Example opens a GLFW window and drives a few anchor widgets through the
// OpenGL backend.
//
//	go run ./example/                  # default dark style
//	go run ./example/ mystyle.toml     # style loaded from TOML
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/covah/anchor"
	"github.com/covah/anchor/backend/opengl"
	"github.com/covah/anchor/fontface"
)

const (
	windowWidth  = 1024
	windowHeight = 720
	windowTitle  = "anchor example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type outliner struct {
	anchor.SpaceInfo
	selected int
}

func (o *outliner) Poll(*anchor.Context) bool { return true }

func (o *outliner) Draw(ctx *anchor.Context) {
	if ctx.TreeNode("World") {
		for i, name := range []string{"Camera", "Light", "Cube"} {
			if ctx.Selectable(name, o.selected == i) {
				o.selected = i
			}
		}
		ctx.TreePop()
	}
}

type properties struct {
	anchor.SpaceInfo
	color    [4]float32
	size     float32
	segments int
	name     string
	history  []float32
}

func (p *properties) Poll(*anchor.Context) bool { return true }

func (p *properties) Draw(ctx *anchor.Context) {
	ctx.InputText("Name", &p.name)
	ctx.DragFloat("Size", &p.size, 0.01, 0, 10)
	ctx.SliderInt("Segments", &p.segments, 3, 64)
	ctx.ColorEdit4("Color", &p.color, anchor.ColorEditFlagsAlphaBar)
	ctx.PlotLines("Frame ms", p.history, anchor.WithSize(anchor.V2(0, 60)))
}

func run(args []string) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(window.GetFramebufferSize())
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	face, err := fontface.Basic()
	if err != nil {
		return err
	}
	face.SetTextureID(renderer.UploadAlphaTexture(face.Atlas()))

	style := anchor.DefaultStyle()
	if len(args) > 0 {
		if style, err = anchor.LoadStyleFile(args[0]); err != nil {
			return err
		}
	}

	ui := anchor.New(renderer,
		anchor.WithStyle(style),
		anchor.WithFontProvider(fontface.NewProvider(face)),
		anchor.WithClipboard(opengl.Clipboard{Window: window}),
	)
	input := opengl.NewInputAdapter(window, &ui.Context().IO)
	defer input.Delete()

	props := &properties{
		SpaceInfo: anchor.SpaceInfo{Name: "Properties", Kind: anchor.SpaceProperties},
		color:     [4]float32{0.8, 0.3, 0.2, 1},
		size:      1,
		segments:  16,
		name:      "Cube",
	}
	left := anchor.NewSpaceArea("Scene")
	left.Add(&outliner{SpaceInfo: anchor.SpaceInfo{Name: "Outliner", Kind: anchor.SpaceOutliner}})
	left.Add(props)
	ui.Spaces().Register(left)

	clicks := 0
	last := glfw.GetTime()
	for !window.ShouldClose() {
		glfw.PollEvents()
		input.NewFrame()

		now := glfw.GetTime()
		dt := float32(now - last)
		last = now
		props.history = append(props.history, dt*1000)
		if len(props.history) > 120 {
			props.history = props.history[1:]
		}

		fbW, fbH := window.GetFramebufferSize()
		winW, winH := window.GetSize()
		renderer.Resize(fbW, fbH)
		gl.Viewport(0, 0, int32(fbW), int32(fbH))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		ctx := ui.Begin(anchor.V2(float32(winW), float32(winH)), dt)
		ctx.SetNextWindowPos(anchor.V2(420, 40), anchor.CondFirstUseEver, anchor.Vec2{})
		ctx.SetNextWindowSize(anchor.V2(320, 200), anchor.CondFirstUseEver)
		if ctx.Begin("Hello", nil, 0) {
			ctx.Text("Hello from anchor!")
			if ctx.Button(fmt.Sprintf("Click me (%d)", clicks)) {
				clicks++
			}
		}
		ctx.End()

		if err := ui.End(); err != nil {
			return fmt.Errorf("frame: %w", err)
		}
		input.UpdateCursor()
		window.SwapBuffers()
	}
	return nil
}
