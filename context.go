package anchor

import (
	"log/slog"
)

// InputSource tells which input stream drives the active widget.
type InputSource int

const (
	InputSourceNone InputSource = iota
	InputSourceMouse
	InputSourceKeyboard
	InputSourceNav
)

func (s InputSource) String() string {
	switch s {
	case InputSourceMouse:
		return "mouse"
	case InputSourceKeyboard:
		return "keyboard"
	case InputSourceNav:
		return "nav"
	}
	return "none"
}

// Config holds the host-tunable behavior of a Context.
type Config struct {
	MacOSXBehaviors         bool    // Alt for word moves, Cmd for line moves and shortcuts
	KeyRepeatDelay          float32 // seconds before a held key repeats
	KeyRepeatRate           float32 // seconds between repeats
	MouseDoubleClickTime    float32 // seconds
	MouseDoubleClickMaxDist float32 // pixels
	MouseDragThreshold      float32 // pixels before a press counts as a drag
	WindowGCFrames          int     // frames an unused window survives
	DebugAsserts            bool    // panic with *AssertionError on contract violations
	InputTextCursorBlink    bool
	DragClickToInputText    bool // a click without drag on a Drag widget opens text input
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		KeyRepeatDelay:          DefaultKeyRepeatDelay,
		KeyRepeatRate:           DefaultKeyRepeatRate,
		MouseDoubleClickTime:    DefaultMouseDoubleClickTime,
		MouseDoubleClickMaxDist: DefaultMouseDoubleClickMaxDist,
		MouseDragThreshold:      DefaultMouseDragThreshold,
		WindowGCFrames:          600,
		InputTextCursorBlink:    true,
	}
}

// ContextOption configures a Context.
type ContextOption func(*Context)

// WithStyle sets the initial style.
func WithStyle(style Style) ContextOption {
	return func(ctx *Context) { ctx.Style = style }
}

// WithLogger sets the context logger.
func WithLogger(l *slog.Logger) ContextOption {
	return func(ctx *Context) {
		if l != nil {
			ctx.Logger = l
		}
	}
}

// WithConfig replaces the configuration.
func WithConfig(cfg Config) ContextOption {
	return func(ctx *Context) { ctx.Config = cfg }
}

// WithFontProvider sets the font provider.
func WithFontProvider(p FontProvider) ContextOption {
	return func(ctx *Context) { ctx.fontProvider = p }
}

// WithClipboard sets the clipboard used by text widgets.
func WithClipboard(c ClipboardProvider) ContextOption {
	return func(ctx *Context) {
		if c != nil {
			ctx.clipboard = c
		}
	}
}

// WithFontTexture sets the atlas texture of the built-in bitmap font.
func WithFontTexture(textureID uint32) ContextOption {
	return func(ctx *Context) { ctx.builtin = NewBuiltinFont(textureID) }
}

// Context holds all engine state. It is not context.Context.
//
// A Context is owned by a single goroutine. Independent contexts share
// nothing and may run on different goroutines.
type Context struct {
	IO     IO
	Style  Style
	Config Config
	Logger *slog.Logger

	// Fonts
	Font            Font
	FontSize        float32
	FontGlobalScale float32
	builtin         Font
	fontProvider    FontProvider
	fontStack       []Font

	clipboard ClipboardProvider

	// Frame
	Time               float64
	FrameCount         int
	FrameCountEnded    int
	FrameCountRendered int
	withinFrame        bool

	// Windows
	windowPool         *Pool[Window]
	Windows            []*Window // back to front
	WindowsFocusOrder  []*Window
	windowsTempSort    []*Window
	CurrentWindowStack []*Window
	CurrentWindow      *Window
	HoveredWindow      *Window
	HoveredRootWindow  *Window
	MovingWindow       *Window
	WheelingWindow     *Window
	beginOrderCounter  int

	// Hover
	HoveredID                ID
	HoveredIDPreviousFrame   ID
	HoveredIDAllowOverlap    bool
	HoveredIDDisabled        bool
	HoveredIDTimer           float32
	HoveredIDNotActiveTimer  float32
	hoveredIDPreviousAllowed bool

	// Active
	ActiveID                              ID
	ActiveIDIsAlive                       ID
	ActiveIDTimer                         float32
	ActiveIDIsJustActivated               bool
	ActiveIDAllowOverlap                  bool
	ActiveIDNoClearOnFocusLoss            bool
	ActiveIDHasBeenPressedBefore          bool
	ActiveIDHasBeenEditedBefore           bool
	ActiveIDHasBeenEditedThisFrame        bool
	ActiveIDClickOffset                   Vec2
	ActiveIDWindow                        *Window
	ActiveIDSource                        InputSource
	ActiveIDMouseButton                   MouseButton
	ActiveIDPreviousFrame                 ID
	ActiveIDPreviousFrameIsAlive          bool
	ActiveIDPreviousFrameHasBeenEdited    bool
	ActiveIDPreviousFrameWindow           *Window
	LastActiveID                          ID
	LastActiveIDTimer                     float32
	activeIDPreviousFrameHasBeenEditedAny bool

	// Keyboard focus and navigation
	FocusID              ID // item receiving keyboard focus this frame (Tab or request)
	NavWindow            *Window
	NavID                ID
	NavActivateID        ID
	NavActivateDownID    ID
	NavActivatePressedID ID
	NavInputID           ID
	NavDisableHighlight  bool
	NavDisableMouseHover bool
	nav                  navState

	// Next window / item
	NextWindowData NextWindowData
	NextItemData   NextItemData

	// Stacks
	colorStack    []colorMod
	styleVarStack []styleMod
	groupStack    []groupData
	popupStack    []popupData // open popups
	beginPopups   []popupData // popups begun this frame

	// Menus
	menusIDSubmittedThisFrame []ID

	// Tab bars
	tabBars            *Pool[TabBar]
	currentTabBarStack []*TabBar
	CurrentTabBar      *TabBar
	shrinkWidthBuffer  []ShrinkWidthItem

	// Composite editors
	zoomSlider   zoomSliderState
	graphEditors *Pool[graphEditorState]

	// Text input
	InputTextState InputTextState
	TempInputID    ID
	PlatformImePos Vec2 // where the host should place an IME window

	// Numeric editing scratch
	DragCurrentAccum        float32
	DragCurrentAccumDirty   bool
	DragSpeedDefaultRatio   float32
	SliderCurrentAccum      float32
	SliderCurrentAccumDirty bool
	DisabledAlphaBackup     float32
	tempBuffer              []byte

	// Color editing
	ColorEditOptions   ColorEditFlags
	ColorEditLastHue   float32
	ColorEditLastSat   float32
	ColorEditLastColor [3]float32
	ColorPickerRef     Vec4
	colorPickerBackup  [4]float32 // color when the current picker drag started

	// Tooltips
	TooltipOverrideCount int
	tooltipSlowDelay     float32

	scrollbarClickDeltaToGrabCenter float32

	// Rendering
	foregroundDrawList *DrawList
	backgroundDrawList *DrawList
	drawData           DrawData

	MouseCursor            MouseCursor
	wantTextInputNextFrame int

	stackErrs []error
}

// NewContext creates a Context with default style and configuration.
func NewContext(opts ...ContextOption) *Context {
	ctx := &Context{
		IO:                    newIO(),
		Style:                 DefaultStyle(),
		Config:                DefaultConfig(),
		Logger:                anchorLogger,
		FontGlobalScale:       1,
		builtin:               NewBuiltinFont(0),
		clipboard:             &memoryClipboard{},
		windowPool:            NewPool[Window](),
		tabBars:               NewPool[TabBar](),
		graphEditors:          NewPool[graphEditorState](),
		DragSpeedDefaultRatio: 1.0 / 100.0,
		ColorEditOptions:      ColorEditOptionsDefault,
		tooltipSlowDelay:      0.50,
		MouseCursor:           MouseCursorArrow,
	}
	ctx.wantTextInputNextFrame = -1
	for _, opt := range opts {
		opt(ctx)
	}
	ctx.applyConfig()
	ctx.Font = ctx.defaultFont()
	ctx.FontSize = ctx.Font.LineHeight(ctx.FontGlobalScale)
	ctx.nav.init()
	return ctx
}

// applyConfig copies configuration into the IO block.
func (ctx *Context) applyConfig() {
	c := ctx.Config
	ctx.IO.ConfigMacOSXBehaviors = c.MacOSXBehaviors
	ctx.IO.ConfigInputTextCursorBlink = c.InputTextCursorBlink
	ctx.IO.ConfigDragClickToInputText = c.DragClickToInputText
	if c.KeyRepeatDelay > 0 {
		ctx.IO.KeyRepeatDelay = c.KeyRepeatDelay
	}
	if c.KeyRepeatRate > 0 {
		ctx.IO.KeyRepeatRate = c.KeyRepeatRate
	}
	if c.MouseDoubleClickTime > 0 {
		ctx.IO.MouseDoubleClickTime = c.MouseDoubleClickTime
	}
	if c.MouseDoubleClickMaxDist > 0 {
		ctx.IO.MouseDoubleClickMaxDist = c.MouseDoubleClickMaxDist
	}
	if c.MouseDragThreshold > 0 {
		ctx.IO.MouseDragThreshold = c.MouseDragThreshold
	}
	if ctx.Config.WindowGCFrames <= 0 {
		ctx.Config.WindowGCFrames = DefaultConfig().WindowGCFrames
	}
}

// ============================================================================
// Active / hovered identity
// ============================================================================

// SetActiveID makes id the widget owning exclusive interaction.
func (ctx *Context) SetActiveID(id ID, window *Window) {
	ctx.ActiveIDIsJustActivated = ctx.ActiveID != id
	if ctx.ActiveIDIsJustActivated {
		ctx.ActiveIDTimer = 0
		ctx.ActiveIDHasBeenPressedBefore = false
		ctx.ActiveIDHasBeenEditedBefore = false
		ctx.ActiveIDMouseButton = -1
		if id != 0 {
			ctx.LastActiveID = id
			ctx.LastActiveIDTimer = 0
		}
		if anchorVerbose() {
			ctx.Logger.Debug("SetActiveID", "id", id, "prev", ctx.ActiveID, "frame", ctx.FrameCount)
		}
	}
	ctx.ActiveID = id
	ctx.ActiveIDAllowOverlap = false
	ctx.ActiveIDNoClearOnFocusLoss = false
	ctx.ActiveIDWindow = window
	ctx.ActiveIDHasBeenEditedThisFrame = false
	if id != 0 {
		ctx.ActiveIDIsAlive = id
		if ctx.NavActivateID == id || ctx.NavInputID == id || ctx.nav.justTabbedID == id || ctx.nav.justMovedToID == id {
			ctx.ActiveIDSource = InputSourceNav
		} else {
			ctx.ActiveIDSource = InputSourceMouse
		}
	}
	ctx.setActiveIDUsingNav(false, false, false)
}

// ClearActiveID releases the active widget, ending any drag or edit.
func (ctx *Context) ClearActiveID() {
	ctx.SetActiveID(0, nil)
}

// SetHoveredID marks id as hovered this frame.
func (ctx *Context) SetHoveredID(id ID) {
	ctx.HoveredID = id
	ctx.HoveredIDAllowOverlap = false
	if id != 0 && ctx.HoveredIDPreviousFrame != id {
		ctx.HoveredIDTimer = 0
		ctx.HoveredIDNotActiveTimer = 0
	}
}

// GetHoveredID returns the hovered id, falling back to last frame's.
func (ctx *Context) GetHoveredID() ID {
	if ctx.HoveredID != 0 {
		return ctx.HoveredID
	}
	return ctx.HoveredIDPreviousFrame
}

// KeepAliveID marks id as still submitted so it keeps ActiveID.
func (ctx *Context) KeepAliveID(id ID) {
	if ctx.ActiveID == id {
		ctx.ActiveIDIsAlive = id
	}
	if ctx.ActiveIDPreviousFrame == id {
		ctx.ActiveIDPreviousFrameIsAlive = true
	}
}

// MarkItemEdited flags the last item as having changed its value.
func (ctx *Context) MarkItemEdited(id ID) {
	if !ctx.assert(ctx.ActiveID == id || ctx.ActiveID == 0 || ctx.DragDropActive(), "MarkItemEdited on inactive item", "id", id) {
		return
	}
	ctx.ActiveIDHasBeenEditedThisFrame = true
	ctx.ActiveIDHasBeenEditedBefore = true
	ctx.CurrentWindow.DC.LastItemStatusFlags |= ItemStatusEdited
}

// DragDropActive is reserved for drag and drop payloads, which the engine
// does not carry; it always returns false.
func (ctx *Context) DragDropActive() bool { return false }

// SetFocusID moves nav and keyboard focus to id inside window.
func (ctx *Context) SetFocusID(id ID, window *Window) {
	if ctx.NavWindow != window {
		ctx.nav.initRequest = false
	}
	ctx.NavWindow = window
	ctx.NavID = id
	ctx.nav.window = window
}

// ============================================================================
// Accessors
// ============================================================================

// GetIO returns the IO block the host fills every frame.
func (ctx *Context) GetIO() *IO { return &ctx.IO }

// GetFrameCount returns the number of frames begun.
func (ctx *Context) GetFrameCount() int { return ctx.FrameCount }

// GetTime returns the accumulated frame time in seconds.
func (ctx *Context) GetTime() float64 { return ctx.Time }

// IsAnyItemActive reports whether any widget owns ActiveID.
func (ctx *Context) IsAnyItemActive() bool { return ctx.ActiveID != 0 }

// IsAnyItemHovered reports whether any widget is hovered.
func (ctx *Context) IsAnyItemHovered() bool {
	return ctx.HoveredID != 0 || ctx.HoveredIDPreviousFrame != 0
}

// GetActiveID returns the active widget id.
func (ctx *Context) GetActiveID() ID { return ctx.ActiveID }

// DisplaySize returns the host display size.
func (ctx *Context) DisplaySize() Vec2 { return ctx.IO.DisplaySize }
