// Command gen renders each widget family with sample data, reads back the
// framebuffer and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/covah/anchor"
	"github.com/covah/anchor/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot is one capture: draw runs inside a borderless window filling
// the viewport.
type screenshot struct {
	name   string
	width  int
	height int
	draw   func(ctx *anchor.Context)
	frames int // frames rendered before the capture (0 = 3)
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(800, 600)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, s := range shots {
		if err := capture(renderer, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}
	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, s screenshot, outDir string) error {
	// Resizing the hidden window is asynchronous in GLFW, so only the
	// projection changes; the window stays larger than every shot.
	renderer.Resize(s.width, s.height)

	// A fresh GUI per shot keeps widget state from leaking between them.
	ui := anchor.New(renderer)

	frames := 3
	if s.frames > 0 {
		frames = s.frames
	}
	size := anchor.V2(float32(s.width), float32(s.height))
	for range frames {
		gl.Viewport(0, 0, int32(s.width), int32(s.height))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		ctx := ui.Begin(size, 1.0/60.0)
		ctx.SetNextWindowPos(anchor.Vec2{}, anchor.CondAlways, anchor.Vec2{})
		ctx.SetNextWindowSize(size, anchor.CondAlways)
		if ctx.Begin(s.name, nil, anchor.WindowFlagsNoDecoration|anchor.WindowFlagsNoMove) {
			s.draw(ctx)
		}
		ctx.End()
		if err := ui.End(); err != nil {
			return err
		}
	}

	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// OpenGL rows start at the bottom.
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

func buildScreenshots() []screenshot {
	var (
		checked    = true
		radio      = 1
		text       = "Hello, world!"
		notes      = "line one\nline two"
		dragF      = float32(3.14)
		dragI      = 42
		rangeLo    = float32(10)
		rangeHi    = float32(90)
		sliderF    = float32(0.65)
		sliderI    = 7
		angle      = float32(0.8)
		comboIdx   = 1
		listIdx    = 2
		color      = [4]float32{0.9, 0.4, 0.2, 1}
		headerOpen = true
		samples    = []float32{0.1, 0.5, 0.3, 0.9, 0.6, 0.75, 0.2, 0.4, 0.8, 0.35}
	)

	return []screenshot{
		{
			name: "text", width: 400, height: 150,
			draw: func(ctx *anchor.Context) {
				ctx.Text("Plain text")
				ctx.TextColored(anchor.Vec4{X: 1, Y: 1, W: 1}, "Colored text")
				ctx.TextDisabled("Disabled text")
				ctx.TextWrapped("Wrapped text breaks across lines when it reaches the edge of the window.")
				ctx.LabelText("Label", "Value")
				ctx.BulletText("Bullet item")
			},
		},
		{
			name: "button", width: 400, height: 90,
			draw: func(ctx *anchor.Context) {
				ctx.Button("Standard Button")
				ctx.SmallButton("Small A")
				ctx.SameLine(0, -1)
				ctx.SmallButton("Small B")
				ctx.ArrowButton("##left", anchor.DirLeft)
				ctx.SameLine(0, -1)
				ctx.ArrowButton("##right", anchor.DirRight)
			},
		},
		{
			name: "toggles", width: 300, height: 110,
			draw: func(ctx *anchor.Context) {
				ctx.Checkbox("Enabled feature", &checked)
				ctx.RadioButtonInt("One", &radio, 0)
				ctx.SameLine(0, -1)
				ctx.RadioButtonInt("Two", &radio, 1)
				ctx.ProgressBar(0.4, anchor.V2(-1, 0), "")
			},
		},
		{
			name: "drag", width: 400, height: 100,
			draw: func(ctx *anchor.Context) {
				ctx.DragFloat("Float", &dragF, 0.01, 0, 10)
				ctx.DragInt("Int", &dragI, 1, 0, 100)
				ctx.DragFloatRange2("Range", &rangeLo, &rangeHi, 0.25, 0, 100)
			},
		},
		{
			name: "slider", width: 400, height: 100,
			draw: func(ctx *anchor.Context) {
				ctx.SliderFloat("Float", &sliderF, 0, 1)
				ctx.SliderInt("Int", &sliderI, 0, 10)
				ctx.SliderAngle("Angle", &angle, -180, 180)
			},
		},
		{
			name: "input", width: 400, height: 180,
			draw: func(ctx *anchor.Context) {
				ctx.InputText("Text", &text)
				ctx.InputFloat("Float", &dragF, anchor.WithStep(0.1, 1))
				ctx.InputInt("Int", &dragI)
				ctx.InputTextMultiline("Notes", &notes, anchor.WithSize(anchor.V2(-1, 60)))
			},
		},
		{
			name: "combo", width: 400, height: 200,
			frames: 4,
			draw: func(ctx *anchor.Context) {
				items := []string{"Apple", "Banana", "Cherry", "Date", "Elderberry"}
				ctx.Combo("Fruit", &comboIdx, items)
				ctx.ListBox("List", &listIdx, items, anchor.WithHeightInItems(4))
			},
		},
		{
			name: "tree", width: 300, height: 160,
			draw: func(ctx *anchor.Context) {
				if ctx.CollapsingHeader("Scene", &headerOpen, 0) {
					ctx.SetNextItemOpen(true, anchor.CondOnce)
					if ctx.TreeNode("World") {
						ctx.Selectable("Camera", true)
						ctx.Selectable("Light", false)
						ctx.TreePop()
					}
				}
			},
		},
		{
			name: "tabs", width: 400, height: 100,
			draw: func(ctx *anchor.Context) {
				if ctx.BeginTabBar("tabs", anchor.TabBarFlagsReorderable) {
					for _, name := range []string{"Outliner", "Properties", "Text"} {
						if ctx.BeginTabItem(name, nil, 0) {
							ctx.Text("%s contents", name)
							ctx.EndTabItem()
						}
					}
					ctx.EndTabBar()
				}
			},
		},
		{
			name: "plot", width: 400, height: 160,
			draw: func(ctx *anchor.Context) {
				ctx.PlotLines("Lines", samples, anchor.WithSize(anchor.V2(0, 60)))
				ctx.PlotHistogram("Histogram", samples, anchor.WithSize(anchor.V2(0, 60)), anchor.WithPlotScale(0, 1))
			},
		},
		{
			name: "color", width: 400, height: 300,
			draw: func(ctx *anchor.Context) {
				ctx.ColorEdit4("Color", &color, anchor.ColorEditFlagsAlphaBar)
				ctx.ColorPicker4("Picker", &color, anchor.ColorEditFlagsNoSidePreview, nil)
			},
		},
	}
}
