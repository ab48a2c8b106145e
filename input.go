package anchor

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// Key represents a keyboard key.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyBackspace
	KeySpace
	KeyEnter
	KeyEscape
	KeyKeyPadEnter
	KeyA
	KeyC
	KeyV
	KeyX
	KeyY
	KeyZ
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyCount
)

// KeyModFlags is the set of modifier keys held this frame.
type KeyModFlags int

const (
	KeyModNone  KeyModFlags = 0
	KeyModCtrl  KeyModFlags = 1 << 0
	KeyModShift KeyModFlags = 1 << 1
	KeyModAlt   KeyModFlags = 1 << 2
	KeyModSuper KeyModFlags = 1 << 3
)

// MouseCursor is the cursor shape requested by the engine for the host.
type MouseCursor int

const (
	MouseCursorNone MouseCursor = iota - 1
	MouseCursorArrow
	MouseCursorTextInput
	MouseCursorResizeAll
	MouseCursorResizeNS
	MouseCursorResizeEW
	MouseCursorResizeNESW
	MouseCursorResizeNWSE
	MouseCursorHand
	MouseCursorNotAllowed
	MouseCursorCount
)

// Default timing and distance configuration.
const (
	DefaultKeyRepeatDelay          float32 = 0.275
	DefaultKeyRepeatRate           float32 = 0.050
	DefaultMouseDoubleClickTime    float32 = 0.30
	DefaultMouseDoubleClickMaxDist float32 = 6.0
	DefaultMouseDragThreshold      float32 = 6.0
)

// IO is the per-frame exchange between host and engine.
//
// The host fills display size, delta time, mouse, keys and typed characters
// before NewFrame; the engine fills the Want* fields for the host to read
// after the frame.
type IO struct {
	DisplaySize Vec2
	DeltaTime   float32

	// Configuration
	ConfigMacOSXBehaviors             bool // Alt for word moves, Cmd for line moves and shortcuts
	ConfigInputTextCursorBlink        bool
	ConfigDragClickToInputText        bool // a click without drag on a Drag widget opens text input
	ConfigWindowsMoveFromTitleBarOnly bool
	MouseDoubleClickTime              float32
	MouseDoubleClickMaxDist           float32
	MouseDragThreshold                float32
	KeyRepeatDelay                    float32
	KeyRepeatRate                     float32

	// Host input
	MousePos    Vec2
	MouseDown   [MouseButtonCount]bool
	MouseWheel  float32
	MouseWheelH float32
	KeyCtrl     bool
	KeyShift    bool
	KeyAlt      bool
	KeySuper    bool
	KeysDown    [KeyCount]bool

	// InputQueueCharacters holds UTF-32 code points typed this frame.
	InputQueueCharacters []rune

	// Engine output
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
	WantTextInput       bool
	MouseCursor         MouseCursor

	// Derived state, maintained by NewFrame
	KeyMods                 KeyModFlags
	MousePosPrev            Vec2
	MouseDelta              Vec2
	MouseClicked            [MouseButtonCount]bool
	MouseDoubleClicked      [MouseButtonCount]bool
	MouseDownWasDoubleClick [MouseButtonCount]bool
	MouseReleased           [MouseButtonCount]bool
	MouseDownOwned          [MouseButtonCount]bool
	MouseClickedPos         [MouseButtonCount]Vec2
	MouseClickedTime        [MouseButtonCount]float64
	MouseDownDuration       [MouseButtonCount]float32
	MouseDownDurationPrev   [MouseButtonCount]float32
	MouseDragMaxDistanceSqr [MouseButtonCount]float32
	KeysDownDuration        [KeyCount]float32
	KeysDownDurationPrev    [KeyCount]float32
}

func newIO() IO {
	io := IO{
		ConfigInputTextCursorBlink: true,
		MouseDoubleClickTime:       DefaultMouseDoubleClickTime,
		MouseDoubleClickMaxDist:    DefaultMouseDoubleClickMaxDist,
		MouseDragThreshold:         DefaultMouseDragThreshold,
		KeyRepeatDelay:             DefaultKeyRepeatDelay,
		KeyRepeatRate:              DefaultKeyRepeatRate,
		MousePos:                   Vec2{-floatMax, -floatMax},
		MousePosPrev:               Vec2{-floatMax, -floatMax},
		DeltaTime:                  1.0 / 60.0,
		InputQueueCharacters:       make([]rune, 0, 16),
	}
	for i := range io.MouseDownDuration {
		io.MouseDownDuration[i] = -1
		io.MouseDownDurationPrev[i] = -1
		io.MouseClickedTime[i] = -1e30
	}
	for i := range io.KeysDownDuration {
		io.KeysDownDuration[i] = -1
		io.KeysDownDurationPrev[i] = -1
	}
	return io
}

// SetMousePos sets the mouse position.
func (io *IO) SetMousePos(x, y float32) {
	io.MousePos = Vec2{x, y}
}

// SetMouseButton sets mouse button state.
func (io *IO) SetMouseButton(button MouseButton, down bool) {
	if button < 0 || button >= MouseButtonCount {
		return
	}
	io.MouseDown[button] = down
}

// SetKey sets key state.
func (io *IO) SetKey(key Key, down bool) {
	if key <= KeyNone || key >= KeyCount {
		return
	}
	io.KeysDown[key] = down
}

// SetMouseWheel adds a mouse wheel delta.
func (io *IO) SetMouseWheel(x, y float32) {
	io.MouseWheelH += x
	io.MouseWheel += y
}

// AddInputCharacter queues a typed code point.
func (io *IO) AddInputCharacter(ch rune) {
	if ch != 0 {
		io.InputQueueCharacters = append(io.InputQueueCharacters, ch)
	}
}

// AddInputCharactersUTF8 queues every code point of s.
func (io *IO) AddInputCharactersUTF8(s string) {
	for _, r := range s {
		io.AddInputCharacter(r)
	}
}

// ClearInputCharacters drops queued characters.
func (io *IO) ClearInputCharacters() {
	io.InputQueueCharacters = io.InputQueueCharacters[:0]
}

// ClearInputKeys releases every key and modifier (e.g. on host focus loss).
func (io *IO) ClearInputKeys() {
	clear(io.KeysDown[:])
	for i := range io.KeysDownDuration {
		io.KeysDownDuration[i] = -1
		io.KeysDownDurationPrev[i] = -1
	}
	io.KeyCtrl, io.KeyShift, io.KeyAlt, io.KeySuper = false, false, false, false
	io.KeyMods = KeyModNone
}

// updateKeyModifiers folds the modifier booleans into KeyMods.
func (io *IO) updateKeyModifiers() {
	io.KeyMods = KeyModNone
	if io.KeyCtrl {
		io.KeyMods |= KeyModCtrl
	}
	if io.KeyShift {
		io.KeyMods |= KeyModShift
	}
	if io.KeyAlt {
		io.KeyMods |= KeyModAlt
	}
	if io.KeySuper {
		io.KeyMods |= KeyModSuper
	}
}

// updateKeyDurations advances key timers by dt.
func (io *IO) updateKeyDurations(dt float32) {
	for i := range io.KeysDown {
		io.KeysDownDurationPrev[i] = io.KeysDownDuration[i]
		if io.KeysDown[i] {
			if io.KeysDownDuration[i] < 0 {
				io.KeysDownDuration[i] = 0
			} else {
				io.KeysDownDuration[i] += dt
			}
		} else {
			io.KeysDownDuration[i] = -1
		}
	}
}

// updateMouse derives click, release and double-click events.
func (io *IO) updateMouse(frameTime float64) {
	if mousePosValid(io.MousePos) {
		io.MousePos = io.MousePos.Floor()
	}
	if mousePosValid(io.MousePos) && mousePosValid(io.MousePosPrev) {
		io.MouseDelta = io.MousePos.Sub(io.MousePosPrev)
	} else {
		io.MouseDelta = Vec2{}
	}
	io.MousePosPrev = io.MousePos

	for i := range io.MouseDown {
		io.MouseClicked[i] = io.MouseDown[i] && io.MouseDownDuration[i] < 0
		io.MouseReleased[i] = !io.MouseDown[i] && io.MouseDownDuration[i] >= 0
		io.MouseDownDurationPrev[i] = io.MouseDownDuration[i]
		switch {
		case !io.MouseDown[i]:
			io.MouseDownDuration[i] = -1
		case io.MouseDownDuration[i] < 0:
			io.MouseDownDuration[i] = 0
		default:
			io.MouseDownDuration[i] += io.DeltaTime
		}
		io.MouseDoubleClicked[i] = false
		if io.MouseClicked[i] {
			if frameTime-io.MouseClickedTime[i] < float64(io.MouseDoubleClickTime) {
				d := Vec2{}
				if mousePosValid(io.MousePos) {
					d = io.MousePos.Sub(io.MouseClickedPos[i])
				}
				if d.LengthSqr() < io.MouseDoubleClickMaxDist*io.MouseDoubleClickMaxDist {
					io.MouseDoubleClicked[i] = true
				}
				io.MouseClickedTime[i] = -float64(io.MouseDoubleClickTime) * 2
			} else {
				io.MouseClickedTime[i] = frameTime
			}
			io.MouseClickedPos[i] = io.MousePos
			io.MouseDownWasDoubleClick[i] = io.MouseDoubleClicked[i]
			io.MouseDragMaxDistanceSqr[i] = 0
		} else if io.MouseDown[i] {
			d := Vec2{}
			if mousePosValid(io.MousePos) {
				d = io.MousePos.Sub(io.MouseClickedPos[i])
			}
			io.MouseDragMaxDistanceSqr[i] = maxf(io.MouseDragMaxDistanceSqr[i], d.LengthSqr())
		}
	}
}

// endFrame clears per-frame host input.
func (io *IO) endFrame() {
	io.InputQueueCharacters = io.InputQueueCharacters[:0]
	io.MouseWheel = 0
	io.MouseWheelH = 0
}

// calcTypematicRepeatAmount returns how many repeats fire between t0 and t1.
func calcTypematicRepeatAmount(t0, t1, delay, rate float32) int {
	if t1 == 0 {
		return 1
	}
	if t0 >= t1 {
		return 0
	}
	if rate <= 0 {
		if t0 < delay && t1 >= delay {
			return 1
		}
		return 0
	}
	count0, count1 := -1, -1
	if t0 >= delay {
		count0 = int((t0 - delay) / rate)
	}
	if t1 >= delay {
		count1 = int((t1 - delay) / rate)
	}
	return count1 - count0
}

// IsKeyDown returns true if a key is currently held.
func (ctx *Context) IsKeyDown(key Key) bool {
	if key <= KeyNone || key >= KeyCount {
		return false
	}
	return ctx.IO.KeysDown[key]
}

// IsKeyPressed returns true on the frame a key goes down, and again at the
// typematic rate while held when repeat is set.
func (ctx *Context) IsKeyPressed(key Key, repeat bool) bool {
	if key <= KeyNone || key >= KeyCount {
		return false
	}
	t := ctx.IO.KeysDownDuration[key]
	if t == 0 {
		return true
	}
	if repeat && t > ctx.IO.KeyRepeatDelay {
		return calcTypematicRepeatAmount(t-ctx.IO.DeltaTime, t, ctx.IO.KeyRepeatDelay, ctx.IO.KeyRepeatRate) > 0
	}
	return false
}

// IsKeyReleased returns true on the frame a key goes up.
func (ctx *Context) IsKeyReleased(key Key) bool {
	if key <= KeyNone || key >= KeyCount {
		return false
	}
	return ctx.IO.KeysDownDurationPrev[key] >= 0 && !ctx.IO.KeysDown[key]
}

// IsMouseDown returns true if a mouse button is currently held.
func (ctx *Context) IsMouseDown(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return ctx.IO.MouseDown[button]
}

// IsMouseClicked returns true on the frame a button goes down.
func (ctx *Context) IsMouseClicked(button MouseButton, repeat bool) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	t := ctx.IO.MouseDownDuration[button]
	if t == 0 {
		return true
	}
	if repeat && t > ctx.IO.KeyRepeatDelay {
		return calcTypematicRepeatAmount(t-ctx.IO.DeltaTime, t, ctx.IO.KeyRepeatDelay, ctx.IO.KeyRepeatRate) > 0
	}
	return false
}

// IsMouseReleased returns true on the frame a button goes up.
func (ctx *Context) IsMouseReleased(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return ctx.IO.MouseReleased[button]
}

// IsMouseDoubleClicked returns true on the second click of a double click.
func (ctx *Context) IsMouseDoubleClicked(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return ctx.IO.MouseDoubleClicked[button]
}

// IsMouseDragging reports a held button that moved past the threshold.
// A negative threshold uses IO.MouseDragThreshold.
// IsMousePosValid reports whether the host knows where the mouse is.
func (ctx *Context) IsMousePosValid() bool { return mousePosValid(ctx.IO.MousePos) }

// mousePosValid is false for the huge negative position hosts report when
// the mouse is unavailable.
func mousePosValid(p Vec2) bool { return p.X >= -floatMax*0.5 && p.Y >= -floatMax*0.5 }

func (ctx *Context) IsMouseDragging(button MouseButton, threshold float32) bool {
	if button < 0 || button >= MouseButtonCount || !ctx.IO.MouseDown[button] {
		return false
	}
	return ctx.isMousePastDragThreshold(button, threshold)
}

func (ctx *Context) isMousePastDragThreshold(button MouseButton, threshold float32) bool {
	if threshold < 0 {
		threshold = ctx.IO.MouseDragThreshold
	}
	return ctx.IO.MouseDragMaxDistanceSqr[button] >= threshold*threshold
}

// GetMouseDragDelta returns the offset from the click position while held.
func (ctx *Context) GetMouseDragDelta(button MouseButton, threshold float32) Vec2 {
	if button < 0 || button >= MouseButtonCount {
		return Vec2{}
	}
	if ctx.IO.MouseDown[button] || ctx.IO.MouseReleased[button] {
		if ctx.isMousePastDragThreshold(button, threshold) {
			return ctx.IO.MousePos.Sub(ctx.IO.MouseClickedPos[button])
		}
	}
	return Vec2{}
}

// ResetMouseDragDelta restarts the drag origin at the current position.
func (ctx *Context) ResetMouseDragDelta(button MouseButton) {
	ctx.IO.MouseClickedPos[button] = ctx.IO.MousePos
}

// GetMousePos returns the mouse position in screen space.
func (ctx *Context) GetMousePos() Vec2 { return ctx.IO.MousePos }

// SetMouseCursor requests a cursor shape for this frame.
func (ctx *Context) SetMouseCursor(c MouseCursor) { ctx.MouseCursor = c }

// IsMouseHoveringRect tests the mouse against a rectangle, optionally
// intersected with the current clip rectangle.
func (ctx *Context) IsMouseHoveringRect(min, max Vec2, clip bool) bool {
	r := Rect{min, max}
	if clip && ctx.CurrentWindow != nil {
		r = r.ClipWith(ctx.CurrentWindow.ClipRect)
	}
	return r.Contains(ctx.IO.MousePos)
}

// KeyName returns a human-readable name for a key.
func KeyName(k Key) string {
	if k > KeyNone && k < KeyCount {
		return keyNames[k]
	}
	return "?"
}

var keyNames = [KeyCount]string{
	KeyNone:        "--",
	KeyTab:         "Tab",
	KeyLeft:        "Left",
	KeyRight:       "Right",
	KeyUp:          "Up",
	KeyDown:        "Down",
	KeyPageUp:      "PgUp",
	KeyPageDown:    "PgDn",
	KeyHome:        "Home",
	KeyEnd:         "End",
	KeyInsert:      "Ins",
	KeyDelete:      "Del",
	KeyBackspace:   "Backspace",
	KeySpace:       "Space",
	KeyEnter:       "Enter",
	KeyEscape:      "Esc",
	KeyKeyPadEnter: "KeypadEnter",
	KeyA:           "A",
	KeyC:           "C",
	KeyV:           "V",
	KeyX:           "X",
	KeyY:           "Y",
	KeyZ:           "Z",
	KeyF1:          "F1",
	KeyF2:          "F2",
	KeyF3:          "F3",
	KeyF4:          "F4",
	KeyF5:          "F5",
	KeyF6:          "F6",
	KeyF7:          "F7",
	KeyF8:          "F8",
	KeyF9:          "F9",
	KeyF10:         "F10",
	KeyF11:         "F11",
	KeyF12:         "F12",
}
