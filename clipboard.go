package anchor

// ClipboardProvider abstracts system clipboard access. Backends implement it
// with their windowing library; for GLFW:
//
//	type glfwClipboard struct{ window *glfw.Window }
//
//	func (c glfwClipboard) GetText() string     { return c.window.GetClipboardString() }
//	func (c glfwClipboard) SetText(text string) { c.window.SetClipboardString(text) }
type ClipboardProvider interface {
	// GetText returns the clipboard text, or "" when it holds no text.
	GetText() string
	// SetText replaces the clipboard text.
	SetText(text string)
}

// memoryClipboard is the per-context fallback used when the host provides
// no clipboard. Copy and paste still work within one Context.
type memoryClipboard struct {
	text string
}

func (c *memoryClipboard) GetText() string     { return c.text }
func (c *memoryClipboard) SetText(text string) { c.text = text }

// SetClipboardProvider replaces the clipboard. nil restores an in-memory one.
func (ctx *Context) SetClipboardProvider(cp ClipboardProvider) {
	if cp == nil {
		cp = &memoryClipboard{}
	}
	ctx.clipboard = cp
}

// GetClipboardText returns the clipboard text.
func (ctx *Context) GetClipboardText() string {
	return ctx.clipboard.GetText()
}

// SetClipboardText copies text to the clipboard.
func (ctx *Context) SetClipboardText(text string) {
	ctx.clipboard.SetText(text)
}
