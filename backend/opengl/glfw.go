package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/covah/anchor"
)

// InputAdapter feeds GLFW events into an anchor IO block and applies the
// cursor shape the engine asks for.
type InputAdapter struct {
	window  *glfw.Window
	io      *anchor.IO
	cursors [anchor.MouseCursorCount]*glfw.Cursor
	last    anchor.MouseCursor
}

// NewInputAdapter installs GLFW callbacks writing into io.
func NewInputAdapter(window *glfw.Window, io *anchor.IO) *InputAdapter {
	a := &InputAdapter{window: window, io: io, last: anchor.MouseCursorArrow}

	a.cursors[anchor.MouseCursorArrow] = glfw.CreateStandardCursor(glfw.ArrowCursor)
	a.cursors[anchor.MouseCursorTextInput] = glfw.CreateStandardCursor(glfw.IBeamCursor)
	a.cursors[anchor.MouseCursorResizeNS] = glfw.CreateStandardCursor(glfw.VResizeCursor)
	a.cursors[anchor.MouseCursorResizeEW] = glfw.CreateStandardCursor(glfw.HResizeCursor)
	a.cursors[anchor.MouseCursorHand] = glfw.CreateStandardCursor(glfw.HandCursor)
	// GLFW 3.3 has no diagonal or move cursors.
	a.cursors[anchor.MouseCursorResizeAll] = a.cursors[anchor.MouseCursorArrow]
	a.cursors[anchor.MouseCursorResizeNESW] = a.cursors[anchor.MouseCursorArrow]
	a.cursors[anchor.MouseCursorResizeNWSE] = a.cursors[anchor.MouseCursorArrow]
	a.cursors[anchor.MouseCursorNotAllowed] = a.cursors[anchor.MouseCursorArrow]

	window.SetKeyCallback(a.keyCallback)
	window.SetCharCallback(a.charCallback)
	window.SetMouseButtonCallback(a.mouseButtonCallback)
	window.SetScrollCallback(a.scrollCallback)
	window.SetCursorPosCallback(a.cursorPosCallback)
	window.SetFocusCallback(a.focusCallback)
	return a
}

// NewFrame refreshes the state GLFW does not report through callbacks.
// Call it after glfw.PollEvents and before anchor's NewFrame.
func (a *InputAdapter) NewFrame() {
	w := a.window
	pressed := func(l, r glfw.Key) bool { return w.GetKey(l) == glfw.Press || w.GetKey(r) == glfw.Press }
	a.io.KeyCtrl = pressed(glfw.KeyLeftControl, glfw.KeyRightControl)
	a.io.KeyShift = pressed(glfw.KeyLeftShift, glfw.KeyRightShift)
	a.io.KeyAlt = pressed(glfw.KeyLeftAlt, glfw.KeyRightAlt)
	a.io.KeySuper = pressed(glfw.KeyLeftSuper, glfw.KeyRightSuper)

	if w.GetAttrib(glfw.Focused) == glfw.True {
		x, y := w.GetCursorPos()
		a.io.SetMousePos(float32(x), float32(y))
	}
}

// UpdateCursor applies the cursor requested by the last frame.
func (a *InputAdapter) UpdateCursor() {
	c := a.io.MouseCursor
	if c == a.last {
		return
	}
	a.last = c
	if c == anchor.MouseCursorNone {
		a.window.SetInputMode(glfw.CursorMode, glfw.CursorHidden)
		return
	}
	a.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	if c >= 0 && c < anchor.MouseCursorCount {
		a.window.SetCursor(a.cursors[c])
	}
}

// Delete releases the cursors.
func (a *InputAdapter) Delete() {
	seen := map[*glfw.Cursor]bool{}
	for _, c := range a.cursors {
		if c != nil && !seen[c] {
			seen[c] = true
			c.Destroy()
		}
	}
}

// Clipboard is an anchor.ClipboardProvider over the GLFW clipboard.
type Clipboard struct{ Window *glfw.Window }

// GetText implements anchor.ClipboardProvider.
func (c Clipboard) GetText() string { return c.Window.GetClipboardString() }

// SetText implements anchor.ClipboardProvider.
func (c Clipboard) SetText(text string) { c.Window.SetClipboardString(text) }

func (a *InputAdapter) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	k := glfwKey(key)
	if k == anchor.KeyNone {
		return
	}
	switch action {
	case glfw.Press:
		a.io.SetKey(k, true)
	case glfw.Release:
		a.io.SetKey(k, false)
	}
}

func (a *InputAdapter) charCallback(_ *glfw.Window, char rune) {
	a.io.AddInputCharacter(char)
}

func (a *InputAdapter) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	b, ok := glfwMouseButton(button)
	if !ok {
		return
	}
	switch action {
	case glfw.Press:
		a.io.SetMouseButton(b, true)
	case glfw.Release:
		a.io.SetMouseButton(b, false)
	}
}

func (a *InputAdapter) scrollCallback(_ *glfw.Window, xoff, yoff float64) {
	a.io.SetMouseWheel(float32(xoff), float32(yoff))
}

func (a *InputAdapter) cursorPosCallback(_ *glfw.Window, x, y float64) {
	a.io.SetMousePos(float32(x), float32(y))
}

// focusCallback releases keys on focus loss so none stay stuck down.
func (a *InputAdapter) focusCallback(_ *glfw.Window, focused bool) {
	if !focused {
		a.io.ClearInputKeys()
	}
}

var glfwKeys = map[glfw.Key]anchor.Key{
	glfw.KeyTab:       anchor.KeyTab,
	glfw.KeyLeft:      anchor.KeyLeft,
	glfw.KeyRight:     anchor.KeyRight,
	glfw.KeyUp:        anchor.KeyUp,
	glfw.KeyDown:      anchor.KeyDown,
	glfw.KeyPageUp:    anchor.KeyPageUp,
	glfw.KeyPageDown:  anchor.KeyPageDown,
	glfw.KeyHome:      anchor.KeyHome,
	glfw.KeyEnd:       anchor.KeyEnd,
	glfw.KeyInsert:    anchor.KeyInsert,
	glfw.KeyDelete:    anchor.KeyDelete,
	glfw.KeyBackspace: anchor.KeyBackspace,
	glfw.KeySpace:     anchor.KeySpace,
	glfw.KeyEnter:     anchor.KeyEnter,
	glfw.KeyEscape:    anchor.KeyEscape,
	glfw.KeyKPEnter:   anchor.KeyKeyPadEnter,
	glfw.KeyA:         anchor.KeyA,
	glfw.KeyC:         anchor.KeyC,
	glfw.KeyV:         anchor.KeyV,
	glfw.KeyX:         anchor.KeyX,
	glfw.KeyY:         anchor.KeyY,
	glfw.KeyZ:         anchor.KeyZ,
	glfw.KeyF1:        anchor.KeyF1,
	glfw.KeyF2:        anchor.KeyF2,
	glfw.KeyF3:        anchor.KeyF3,
	glfw.KeyF4:        anchor.KeyF4,
	glfw.KeyF5:        anchor.KeyF5,
	glfw.KeyF6:        anchor.KeyF6,
	glfw.KeyF7:        anchor.KeyF7,
	glfw.KeyF8:        anchor.KeyF8,
	glfw.KeyF9:        anchor.KeyF9,
	glfw.KeyF10:       anchor.KeyF10,
	glfw.KeyF11:       anchor.KeyF11,
	glfw.KeyF12:       anchor.KeyF12,
}

func glfwKey(key glfw.Key) anchor.Key {
	if k, ok := glfwKeys[key]; ok {
		return k
	}
	return anchor.KeyNone
}

func glfwMouseButton(button glfw.MouseButton) (anchor.MouseButton, bool) {
	switch button {
	case glfw.MouseButtonLeft:
		return anchor.MouseButtonLeft, true
	case glfw.MouseButtonRight:
		return anchor.MouseButtonRight, true
	case glfw.MouseButtonMiddle:
		return anchor.MouseButtonMiddle, true
	}
	return 0, false
}
