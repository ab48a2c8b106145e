package anchor

import "errors"

// Renderer draws the output of a frame. backend/opengl provides one.
type Renderer interface {
	RenderDrawData(dd *DrawData) error
	FontTextureID() uint32
	Resize(width, height int)
}

// GUI pairs a Context with a Renderer and the editor's spaces, for hosts
// that do not need to drive the frame by hand.
//
// Usage:
//
//	ui := anchor.New(renderer)
//	for running {
//	    platform.Fill(&ui.Context().IO)
//	    ctx := ui.Begin(displaySize, dt)
//	    ctx.Begin("Hello", nil, 0)
//	    ctx.Text("world")
//	    ctx.End()
//	    if err := ui.End(); err != nil { ... }
//	}
type GUI struct {
	renderer Renderer
	ctx      *Context
	spaces   *SpaceRegistry
}

// New creates a GUI rendering through renderer. The built-in font uses the
// renderer's atlas unless opts say otherwise.
func New(renderer Renderer, opts ...ContextOption) *GUI {
	base := []ContextOption{WithFontTexture(renderer.FontTextureID())}
	return &GUI{
		renderer: renderer,
		ctx:      NewContext(append(base, opts...)...),
		spaces:   NewSpaceRegistry(),
	}
}

// Begin starts a frame. The host fills the rest of IO before calling it.
func (g *GUI) Begin(displaySize Vec2, deltaTime float32) *Context {
	io := &g.ctx.IO
	io.DisplaySize = displaySize
	io.DeltaTime = deltaTime
	g.ctx.NewFrame()
	return g.ctx
}

// End draws the registered spaces, ends the frame and renders it. Stack
// mismatches found while ending the frame are returned with any render
// error.
func (g *GUI) End() error {
	g.spaces.Draw(g.ctx)
	dd := g.ctx.Render()
	err := g.renderer.RenderDrawData(dd)
	return errors.Join(err, g.ctx.StackErrors())
}

// Context returns the engine context.
func (g *GUI) Context() *Context { return g.ctx }

// Spaces returns the registry drawn by End.
func (g *GUI) Spaces() *SpaceRegistry { return g.spaces }

// Style returns the current style.
func (g *GUI) Style() Style { return g.ctx.Style }

// SetStyle replaces the style.
func (g *GUI) SetStyle(style Style) { g.ctx.Style = style }

// Resize notifies the renderer of a new framebuffer size.
func (g *GUI) Resize(width, height int) { g.renderer.Resize(width, height) }

// SetFontProvider sets the provider consulted at the start of each frame.
func (g *GUI) SetFontProvider(fp FontProvider) { g.ctx.SetFontProvider(fp) }

// FontProvider returns the font provider, or nil.
func (g *GUI) FontProvider() FontProvider { return g.ctx.FontProvider() }
