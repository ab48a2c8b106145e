package anchor

import (
	"fmt"
	"sort"
)

// WindowFlags configure Begin.
type WindowFlags int

const (
	WindowFlagsNone                      WindowFlags = 0
	WindowFlagsNoTitleBar                WindowFlags = 1 << 0
	WindowFlagsNoResize                  WindowFlags = 1 << 1
	WindowFlagsNoMove                    WindowFlags = 1 << 2
	WindowFlagsNoScrollbar               WindowFlags = 1 << 3
	WindowFlagsNoScrollWithMouse         WindowFlags = 1 << 4
	WindowFlagsNoCollapse                WindowFlags = 1 << 5
	WindowFlagsAlwaysAutoResize          WindowFlags = 1 << 6
	WindowFlagsNoBackground              WindowFlags = 1 << 7
	WindowFlagsNoMouseInputs             WindowFlags = 1 << 9
	WindowFlagsMenuBar                   WindowFlags = 1 << 10
	WindowFlagsHorizontalScrollbar       WindowFlags = 1 << 11
	WindowFlagsNoFocusOnAppearing        WindowFlags = 1 << 12
	WindowFlagsNoBringToFrontOnFocus     WindowFlags = 1 << 13
	WindowFlagsAlwaysVerticalScrollbar   WindowFlags = 1 << 14
	WindowFlagsAlwaysHorizontalScrollbar WindowFlags = 1 << 15
	WindowFlagsNoNavInputs               WindowFlags = 1 << 18
	WindowFlagsNoNavFocus                WindowFlags = 1 << 19
	WindowFlagsUnsavedDocument           WindowFlags = 1 << 20

	WindowFlagsNoNav        = WindowFlagsNoNavInputs | WindowFlagsNoNavFocus
	WindowFlagsNoDecoration = WindowFlagsNoTitleBar | WindowFlagsNoResize | WindowFlagsNoScrollbar | WindowFlagsNoCollapse
	WindowFlagsNoInputs     = WindowFlagsNoMouseInputs | WindowFlagsNoNavInputs | WindowFlagsNoNavFocus

	// Internal
	WindowFlagsChildWindow WindowFlags = 1 << 24
	WindowFlagsTooltip     WindowFlags = 1 << 25
	WindowFlagsPopup       WindowFlags = 1 << 26
	WindowFlagsModal       WindowFlags = 1 << 27
	WindowFlagsChildMenu   WindowFlags = 1 << 28
)

// Window is one on-screen panel. Windows are created on first Begin and
// evicted after Config.WindowGCFrames frames without a Begin.
type Window struct {
	Name             string
	ID               ID
	Flags            WindowFlags
	Pos              Vec2
	Size             Vec2 // current size, title bar only when collapsed
	SizeFull         Vec2 // size when expanded
	ContentSize      Vec2 // size of contents measured last frame
	ContentSizeIdeal Vec2
	WindowPadding    Vec2
	WindowRounding   float32
	WindowBorderSize float32
	MoveID           ID
	ChildID          ID

	Scroll                  Vec2
	ScrollMax               Vec2
	ScrollTarget            Vec2 // floatMax marks no target
	ScrollTargetCenterRatio Vec2
	ScrollbarSizes          Vec2
	ScrollbarX, ScrollbarY  bool

	Active                 bool
	WasActive              bool
	WriteAccessed          bool
	Collapsed              bool
	WantCollapseToggle     bool
	SkipItems              bool
	Appearing              bool
	Hidden                 bool
	HasCloseButton         bool
	BeginCount             int
	BeginOrderWithinParent int
	BeginOrderWithinCtx    int
	PopupID                ID
	AutoPosLastDirection   Dir

	AutoFitFramesX, AutoFitFramesY int
	AutoFitOnlyGrows               bool
	HiddenFramesCanSkipItems       int
	HiddenFramesCannotSkipItems    int

	SetWindowPosAllowFlags       Cond
	SetWindowSizeAllowFlags      Cond
	SetWindowCollapsedAllowFlags Cond

	IDStack []ID
	DC      WindowTempData

	OuterRectClipped  Rect
	InnerRect         Rect
	InnerClipRect     Rect
	WorkRect          Rect
	ClipRect          Rect
	ContentRegionRect Rect

	LastFrameActive  int
	LastTimeActive   float32
	ItemWidthDefault float32
	StateStorage     StateStore
	ColumnsStorage   []*Columns
	FontWindowScale  float32

	DrawList *DrawList

	ParentWindow *Window
	RootWindow   *Window
	// RootWindowForTitleBarHighlight skips child windows and menus.
	RootWindowForTitleBarHighlight *Window
	RootWindowForNav               *Window

	clipRectStack []Rect
}

// WindowTempData is the per-frame layout state of a window, reset by Begin.
type WindowTempData struct {
	CursorPos              Vec2
	CursorPosPrevLine      Vec2
	CursorStartPos         Vec2
	CursorMaxPos           Vec2
	CurrLineSize           Vec2
	PrevLineSize           Vec2
	CurrLineTextBaseOffset float32
	PrevLineTextBaseOffset float32
	Indent                 float32
	ColumnsOffset          float32
	GroupOffset            float32

	LastItemID          ID
	LastItemStatusFlags ItemStatusFlags
	LastItemRect        Rect
	LastItemDisplayRect Rect

	NavLayerCurrent          NavLayer
	NavHideHighlightOneFrame bool

	MenuBarAppending          bool
	MenuBarOffset             Vec2
	MenuColumns               menuColumns
	TreeDepth                 int
	TreeJumpToParentOnPopMask uint32
	ChildWindows              []*Window
	StateStorage              StateStore
	CurrentColumns            *Columns
	LayoutType                LayoutType
	ParentLayoutType          LayoutType

	FocusCounterRegular int
	FocusCounterTabStop int

	ItemFlags        ItemFlags
	ItemWidth        float32
	TextWrapPos      float32
	ItemFlagsStack   []ItemFlags
	ItemWidthStack   []float32
	TextWrapPosStack []float32
}

// LayoutType is the direction items flow in.
type LayoutType int

const (
	LayoutVertical LayoutType = iota
	LayoutHorizontal
)

// NavLayer separates main content from menu bars for navigation.
type NavLayer int

const (
	NavLayerMain NavLayer = iota
	NavLayerMenu
)

// nextWindowFlags record which SetNextWindow* calls are pending.
type nextWindowFlags int

const (
	nextWindowHasPos nextWindowFlags = 1 << iota
	nextWindowHasSize
	nextWindowHasContentSize
	nextWindowHasCollapsed
	nextWindowHasFocus
	nextWindowHasBgAlpha
	nextWindowHasScroll
	nextWindowHasSizeConstraint
)

// NextWindowData holds values applied by the next Begin.
type NextWindowData struct {
	flags               nextWindowFlags
	PosCond             Cond
	SizeCond            Cond
	CollapsedCond       Cond
	PosVal              Vec2
	PosPivotVal         Vec2
	SizeVal             Vec2
	ContentSizeVal      Vec2
	ScrollVal           Vec2
	CollapsedVal        bool
	BgAlphaVal          float32
	MenuBarOffsetMinVal Vec2
	SizeConstraintRect  Rect
}

func (d *NextWindowData) clearFlags() { d.flags = 0 }

// ============================================================================
// Window registry
// ============================================================================

// FindWindowByID returns the window with id, or nil.
func (ctx *Context) FindWindowByID(id ID) *Window {
	return ctx.windowPool.GetByKey(id)
}

// FindWindowByName returns the window named name, or nil.
func (ctx *Context) FindWindowByName(name string) *Window {
	return ctx.FindWindowByID(HashStr(name, 0))
}

func (ctx *Context) createWindow(name string, flags WindowFlags) *Window {
	id := HashStr(name, 0)
	w, _ := ctx.windowPool.GetOrAdd(id, ctx.FrameCount)
	*w = Window{
		Name:                         name,
		ID:                           id,
		Flags:                        flags,
		Pos:                          Vec2{60, 60},
		IDStack:                      []ID{id},
		MoveID:                       HashStr("#MOVE", id),
		ScrollTarget:                 Vec2{floatMax, floatMax},
		ScrollTargetCenterRatio:      Vec2{0.5, 0.5},
		AutoFitFramesX:               -1,
		AutoFitFramesY:               -1,
		SetWindowPosAllowFlags:       CondAlways | CondOnce | CondFirstUseEver | CondAppearing,
		SetWindowSizeAllowFlags:      CondAlways | CondOnce | CondFirstUseEver | CondAppearing,
		SetWindowCollapsedAllowFlags: CondAlways | CondOnce | CondFirstUseEver | CondAppearing,
		LastFrameActive:              -1,
		LastTimeActive:               -1,
		AutoPosLastDirection:         DirNone,
		FontWindowScale:              1,
		StateStorage:                 make(MapStateStore),
		DrawList:                     AcquireDrawList(name),
	}
	w.SizeFull = Vec2{}
	w.Size = w.SizeFull
	if flags&WindowFlagsAlwaysAutoResize != 0 || ctx.NextWindowData.flags&nextWindowHasSize == 0 {
		w.AutoFitFramesX, w.AutoFitFramesY = 2, 2
		w.AutoFitOnlyGrows = false
	}
	if flags&WindowFlagsNoBringToFrontOnFocus != 0 {
		ctx.Windows = append([]*Window{w}, ctx.Windows...)
	} else {
		ctx.Windows = append(ctx.Windows, w)
	}
	ctx.WindowsFocusOrder = append(ctx.WindowsFocusOrder, w)
	ctx.Logger.Debug("window created", "name", name, "id", id)
	return w
}

// gcWindows evicts windows unused for Config.WindowGCFrames frames.
func (ctx *Context) gcWindows() {
	maxAge := ctx.Config.WindowGCFrames
	removed := ctx.windowPool.Collect(ctx.FrameCount, maxAge, func(id ID, w *Window) {
		ctx.Logger.Debug("window collected", "name", w.Name, "id", id)
		ReleaseDrawList(w.DrawList)
		w.DrawList = nil
		if ctx.NavWindow == w {
			ctx.NavWindow = nil
		}
		if ctx.HoveredWindow == w {
			ctx.HoveredWindow, ctx.HoveredRootWindow = nil, nil
		}
		if ctx.ActiveIDWindow == w {
			ctx.ActiveIDWindow = nil
		}
		ctx.nav.forget(w)
	})
	if removed == 0 {
		return
	}
	keep := func(list []*Window) []*Window {
		out := list[:0]
		for _, w := range list {
			if w.DrawList != nil {
				out = append(out, w)
			}
		}
		return out
	}
	ctx.Windows = keep(ctx.Windows)
	ctx.WindowsFocusOrder = keep(ctx.WindowsFocusOrder)
}

// ============================================================================
// Begin / End
// ============================================================================

// titleBarHeight returns the height of the title bar, or 0 without one.
func (w *Window) titleBarHeight(ctx *Context) float32 {
	if w.Flags&WindowFlagsNoTitleBar != 0 {
		return 0
	}
	return ctx.FontSize*w.FontWindowScale + ctx.Style.FramePadding.Y*2
}

// menuBarHeight returns the height of the menu bar, or 0 without one.
func (w *Window) menuBarHeight(ctx *Context) float32 {
	if w.Flags&WindowFlagsMenuBar == 0 {
		return 0
	}
	return w.DC.MenuBarOffset.Y + ctx.FontSize*w.FontWindowScale + ctx.Style.FramePadding.Y*2
}

// TitleBarRect returns the title bar rectangle.
func (w *Window) TitleBarRect(ctx *Context) Rect {
	return RectFromSize(w.Pos, Vec2{w.SizeFull.X, w.titleBarHeight(ctx)})
}

// MenuBarRect returns the menu bar rectangle.
func (w *Window) MenuBarRect(ctx *Context) Rect {
	y1 := w.Pos.Y + w.titleBarHeight(ctx)
	return R(w.Pos.X, y1, w.Pos.X+w.SizeFull.X, y1+w.menuBarHeight(ctx))
}

// Rect returns the full outer rectangle of the window.
func (w *Window) Rect() Rect { return RectFromSize(w.Pos, w.Size) }

// GetID hashes label against the window's ID stack.
func (w *Window) GetID(label string) ID {
	return HashStr(label, w.IDStack[len(w.IDStack)-1])
}

func (ctx *Context) calcWindowContentSize(w *Window) Vec2 {
	if w.Collapsed && w.AutoFitFramesX <= 0 && w.AutoFitFramesY <= 0 {
		return w.ContentSize
	}
	if w.Hidden && w.HiddenFramesCannotSkipItems == 0 && w.HiddenFramesCanSkipItems > 0 {
		return w.ContentSize
	}
	if w.LastFrameActive < 0 {
		return Vec2{}
	}
	sz := w.DC.CursorMaxPos.Sub(w.DC.CursorStartPos)
	return Vec2{floorf(sz.X + 0.999), floorf(sz.Y + 0.999)}
}

func (ctx *Context) calcWindowAutoFitSize(w *Window, contents Vec2) Vec2 {
	s := &ctx.Style
	decoY := w.titleBarHeight(ctx) + w.menuBarHeight(ctx)
	pad := w.WindowPadding.Mul(2)
	sizeContents := contents.Add(pad).Add(Vec2{0, decoY})
	sizeContents = sizeContents.Add(w.ScrollbarSizes)
	if w.Flags&WindowFlagsTooltip != 0 {
		return sizeContents
	}
	isPopup := w.Flags&WindowFlagsPopup != 0
	isMenu := w.Flags&WindowFlagsChildMenu != 0
	sizeMin := s.WindowMinSize
	if isPopup || isMenu {
		sizeMin = minV2(sizeMin, Vec2{4, 4})
	}
	display := ctx.IO.DisplaySize.Sub(s.DisplaySafeAreaPadding.Mul(2))
	sizeAutoFit := clampV2(sizeContents, sizeMin, maxV2(sizeMin, display))

	// Reserve room for a scrollbar when the auto-fit size would clip contents.
	fitNoScroll := sizeAutoFit.Sub(pad).Sub(Vec2{0, decoY})
	if fitNoScroll.X < contents.X && w.Flags&WindowFlagsNoScrollbar == 0 && w.Flags&WindowFlagsHorizontalScrollbar != 0 {
		sizeAutoFit.Y += s.ScrollbarSize
	}
	if fitNoScroll.Y < contents.Y && w.Flags&WindowFlagsNoScrollbar == 0 {
		sizeAutoFit.X += s.ScrollbarSize
	}
	return sizeAutoFit
}

func (ctx *Context) clampWindowSize(w *Window, size Vec2) Vec2 {
	if w.Flags&(WindowFlagsChildWindow|WindowFlagsAlwaysAutoResize) == 0 {
		size = maxV2(size, ctx.Style.WindowMinSize)
	}
	minH := w.titleBarHeight(ctx) + w.menuBarHeight(ctx) + maxf(0, ctx.Style.WindowRounding-1)
	size.Y = maxf(size.Y, minH)
	return size
}

// calcWindowSizeAfterConstraint applies SetNextWindowSizeConstraints and
// the minimum window size.
func (ctx *Context) calcWindowSizeAfterConstraint(w *Window, size Vec2) Vec2 {
	if nw := &ctx.NextWindowData; nw.flags&nextWindowHasSizeConstraint != 0 {
		c := nw.SizeConstraintRect
		if c.Min.X >= 0 && c.Max.X >= 0 {
			size.X = clampf(size.X, c.Min.X, c.Max.X)
		}
		if c.Min.Y >= 0 && c.Max.Y >= 0 {
			size.Y = clampf(size.Y, c.Min.Y, c.Max.Y)
		}
	}
	return ctx.clampWindowSize(w, size)
}

// calcWindowExpectedSize predicts the size an auto-resizing window will
// take this frame from last frame's contents.
func (ctx *Context) calcWindowExpectedSize(w *Window) Vec2 {
	contents := ctx.calcWindowContentSize(w)
	return ctx.calcWindowSizeAfterConstraint(w, ctx.calcWindowAutoFitSize(w, contents))
}

func (ctx *Context) setWindowConditionAllowFlags(w *Window, flags Cond, enabled bool) {
	if enabled {
		w.SetWindowPosAllowFlags |= flags
		w.SetWindowSizeAllowFlags |= flags
		w.SetWindowCollapsedAllowFlags |= flags
	} else {
		w.SetWindowPosAllowFlags &^= flags
		w.SetWindowSizeAllowFlags &^= flags
		w.SetWindowCollapsedAllowFlags &^= flags
	}
}

func (ctx *Context) setWindowPos(w *Window, pos Vec2, cond Cond) {
	if cond != 0 && w.SetWindowPosAllowFlags&cond == 0 {
		return
	}
	w.SetWindowPosAllowFlags &^= CondOnce | CondFirstUseEver | CondAppearing
	old := w.Pos
	w.Pos = pos.Floor()
	offset := w.Pos.Sub(old)
	w.DC.CursorPos = w.DC.CursorPos.Add(offset)
	w.DC.CursorMaxPos = w.DC.CursorMaxPos.Add(offset)
	w.DC.CursorStartPos = w.DC.CursorStartPos.Add(offset)
}

func (ctx *Context) setWindowSize(w *Window, size Vec2, cond Cond) {
	if cond != 0 && w.SetWindowSizeAllowFlags&cond == 0 {
		return
	}
	w.SetWindowSizeAllowFlags &^= CondOnce | CondFirstUseEver | CondAppearing
	if size.X > 0 {
		w.AutoFitFramesX = 0
		w.SizeFull.X = floorf(size.X)
	} else {
		w.AutoFitFramesX = 2
		w.AutoFitOnlyGrows = false
	}
	if size.Y > 0 {
		w.AutoFitFramesY = 0
		w.SizeFull.Y = floorf(size.Y)
	} else {
		w.AutoFitFramesY = 2
		w.AutoFitOnlyGrows = false
	}
}

func (ctx *Context) setWindowCollapsed(w *Window, collapsed bool, cond Cond) {
	if cond != 0 && w.SetWindowCollapsedAllowFlags&cond == 0 {
		return
	}
	w.SetWindowCollapsedAllowFlags &^= CondOnce | CondFirstUseEver | CondAppearing
	w.Collapsed = collapsed
}

// Begin pushes a window and starts appending to it. It returns false when
// the window is collapsed or fully clipped, in which case the caller may
// skip its contents; End must be called either way.
func (ctx *Context) Begin(name string, open *bool, flags WindowFlags) bool {
	if !ctx.assert(ctx.withinFrame, "Begin called outside of a frame", "window", name) {
		ctx.stackErrs = append(ctx.stackErrs, fmt.Errorf("Begin(%q): %w", name, ErrNotInFrame))
		return false
	}
	if !ctx.assert(name != "", "Begin: empty window name") {
		name = "Untitled"
	}

	window := ctx.FindWindowByName(name)
	created := window == nil
	if created {
		window = ctx.createWindow(name, flags)
	}
	ctx.windowPool.Touch(window.ID, ctx.FrameCount)

	frame := ctx.FrameCount
	firstBegin := window.LastFrameActive != frame
	if firstBegin {
		window.Flags = flags
	} else {
		flags = window.Flags
	}

	var parentInStack *Window
	if n := len(ctx.CurrentWindowStack); n > 0 {
		parentInStack = ctx.CurrentWindowStack[n-1]
	}
	var parent *Window
	if firstBegin {
		if flags&(WindowFlagsChildWindow|WindowFlagsPopup) != 0 {
			parent = parentInStack
		}
	} else {
		parent = window.ParentWindow
	}
	if !ctx.assert(parent != nil || flags&WindowFlagsChildWindow == 0, "child window without a parent", "window", name) {
		flags &^= WindowFlagsChildWindow
	}

	// Popups
	windowJustActivatedByUser := window.LastFrameActive < frame-1
	if flags&WindowFlagsPopup != 0 {
		if n := len(ctx.beginPopups); n < len(ctx.popupStack) {
			ref := &ctx.popupStack[n]
			windowJustActivatedByUser = windowJustActivatedByUser || window.PopupID != ref.popupID
			windowJustActivatedByUser = windowJustActivatedByUser || window != ref.window
			ref.window = window
			ctx.beginPopups = append(ctx.beginPopups, *ref)
			window.PopupID = ref.popupID
		}
	}
	windowJustAppearingAfterHidden := window.Hidden && window.HiddenFramesCanSkipItems == 0 && window.HiddenFramesCannotSkipItems == 0
	window.Appearing = windowJustActivatedByUser || windowJustAppearingAfterHidden
	if window.Appearing {
		ctx.setWindowConditionAllowFlags(window, CondAppearing, true)
	}

	// Update state
	if firstBegin {
		window.Active = true
		window.HasCloseButton = open != nil
		window.ClipRect = R(-floatMax, -floatMax, floatMax, floatMax)
		window.IDStack = window.IDStack[:1]
		window.LastFrameActive = frame
		window.LastTimeActive = float32(ctx.Time)
		window.BeginOrderWithinParent = 0
		window.BeginOrderWithinCtx = ctx.beginOrderCounter
		ctx.beginOrderCounter++
		window.clipRectStack = window.clipRectStack[:0]
		window.DrawList.Clear()
	}

	ctx.CurrentWindowStack = append(ctx.CurrentWindowStack, window)
	ctx.setCurrentWindow(window)
	if flags&WindowFlagsChildMenu != 0 {
		window.DC.NavLayerCurrent = NavLayerMain
	}

	// Apply SetNextWindow* data
	nw := &ctx.NextWindowData
	windowPosSetByAPI := false
	windowSizeXSetByAPI, windowSizeYSetByAPI := false, false
	if nw.flags&nextWindowHasPos != 0 {
		windowPosSetByAPI = window.SetWindowPosAllowFlags&nw.PosCond != 0
		if windowPosSetByAPI && nw.PosPivotVal.LengthSqr() > 0 {
			// Pivot requires the size, resolved after sizing below.
			window.SetWindowPosAllowFlags &^= CondOnce | CondFirstUseEver | CondAppearing
		} else {
			ctx.setWindowPos(window, nw.PosVal, nw.PosCond)
		}
	}
	if nw.flags&nextWindowHasSize != 0 {
		windowSizeXSetByAPI = window.SetWindowSizeAllowFlags&nw.SizeCond != 0 && nw.SizeVal.X > 0
		windowSizeYSetByAPI = window.SetWindowSizeAllowFlags&nw.SizeCond != 0 && nw.SizeVal.Y > 0
		ctx.setWindowSize(window, nw.SizeVal, nw.SizeCond)
	}
	if nw.flags&nextWindowHasScroll != 0 {
		if nw.ScrollVal.X >= 0 {
			window.ScrollTarget.X = nw.ScrollVal.X
			window.ScrollTargetCenterRatio.X = 0
		}
		if nw.ScrollVal.Y >= 0 {
			window.ScrollTarget.Y = nw.ScrollVal.Y
			window.ScrollTargetCenterRatio.Y = 0
		}
	}
	if nw.flags&nextWindowHasContentSize != 0 {
		window.ContentSizeIdeal = nw.ContentSizeVal
	}
	if nw.flags&nextWindowHasCollapsed != 0 {
		ctx.setWindowCollapsed(window, nw.CollapsedVal, nw.CollapsedCond)
	}
	if nw.flags&nextWindowHasFocus != 0 {
		ctx.FocusWindow(window)
	}
	if window.Appearing {
		ctx.setWindowConditionAllowFlags(window, CondAppearing, false)
	}

	if firstBegin {
		window.ParentWindow = parent
		window.RootWindow, window.RootWindowForTitleBarHighlight, window.RootWindowForNav = window, window, window
		if parent != nil && flags&WindowFlagsChildWindow != 0 && flags&WindowFlagsTooltip == 0 {
			window.RootWindow = parent.RootWindow
		}
		if parent != nil && flags&WindowFlagsModal == 0 && flags&(WindowFlagsChildWindow|WindowFlagsPopup) != 0 {
			window.RootWindowForTitleBarHighlight = parent.RootWindowForTitleBarHighlight
		}
		for window.RootWindowForNav.Flags&WindowFlagsNoNavInputs != 0 && window.RootWindowForNav.ParentWindow != nil &&
			window.RootWindowForNav.Flags&WindowFlagsChildWindow != 0 {
			window.RootWindowForNav = window.RootWindowForNav.ParentWindow
		}

		if parent != nil && flags&WindowFlagsChildWindow != 0 {
			window.BeginOrderWithinParent = len(parent.DC.ChildWindows)
			parent.DC.ChildWindows = append(parent.DC.ChildWindows, window)
		}

		// Hide new auto-fit windows for one frame so they can measure themselves.
		if created && (!windowSizeXSetByAPI || !windowSizeYSetByAPI) {
			window.HiddenFramesCannotSkipItems = 1
		}
		if windowJustActivatedByUser && flags&(WindowFlagsPopup|WindowFlagsTooltip) != 0 {
			window.HiddenFramesCannotSkipItems = 1
			if flags&WindowFlagsAlwaysAutoResize != 0 {
				if !windowSizeXSetByAPI {
					window.Size.X, window.SizeFull.X = 0, 0
				}
				if !windowSizeYSetByAPI {
					window.Size.Y, window.SizeFull.Y = 0, 0
				}
				window.ContentSize = Vec2{}
			}
		}

		window.Hidden = window.HiddenFramesCanSkipItems > 0 || window.HiddenFramesCannotSkipItems > 0
		if window.HiddenFramesCanSkipItems > 0 {
			window.HiddenFramesCanSkipItems--
		}
		if window.HiddenFramesCannotSkipItems > 0 {
			window.HiddenFramesCannotSkipItems--
		}

		ctx.setCurrentWindow(window)

		// Padding, rounding and border
		if flags&WindowFlagsChildWindow != 0 {
			window.WindowBorderSize = ctx.Style.ChildBorderSize
		} else if flags&(WindowFlagsPopup|WindowFlagsTooltip) != 0 && flags&WindowFlagsModal == 0 {
			window.WindowBorderSize = ctx.Style.PopupBorderSize
		} else {
			window.WindowBorderSize = ctx.Style.WindowBorderSize
		}
		window.WindowPadding = ctx.Style.WindowPadding
		if flags&WindowFlagsChildWindow != 0 && flags&(WindowFlagsAlwaysAutoResize|WindowFlagsPopup) == 0 && window.WindowBorderSize == 0 {
			window.WindowPadding = Vec2{0, 0}
			if flags&WindowFlagsMenuBar != 0 {
				window.WindowPadding.Y = ctx.Style.WindowPadding.Y
			}
		}
		switch {
		case flags&WindowFlagsChildWindow != 0:
			window.WindowRounding = ctx.Style.ChildRounding
		case flags&WindowFlagsPopup != 0 && flags&WindowFlagsModal == 0:
			window.WindowRounding = ctx.Style.PopupRounding
		default:
			window.WindowRounding = ctx.Style.WindowRounding
		}
		window.DC.MenuBarOffset.X = maxf(maxf(window.WindowPadding.X, ctx.Style.ItemSpacing.X), nw.MenuBarOffsetMinVal.X)
		window.DC.MenuBarOffset.Y = nw.MenuBarOffsetMinVal.Y

		// Collapse toggled by a title bar double click last frame
		if flags&WindowFlagsNoTitleBar == 0 && flags&WindowFlagsNoCollapse == 0 {
			tb := window.TitleBarRect(ctx)
			if ctx.HoveredWindow == window && ctx.IsMouseHoveringRect(tb.Min, tb.Max, false) && ctx.IO.MouseDoubleClicked[0] {
				window.WantCollapseToggle = true
			}
			if window.WantCollapseToggle {
				window.Collapsed = !window.Collapsed
				window.WantCollapseToggle = false
			}
		} else {
			window.Collapsed = false
		}
		window.WantCollapseToggle = false

		// Size
		window.ContentSize = ctx.calcWindowContentSize(window)
		if window.ContentSizeIdeal.X > 0 {
			window.ContentSize.X = window.ContentSizeIdeal.X
		}
		if window.ContentSizeIdeal.Y > 0 {
			window.ContentSize.Y = window.ContentSizeIdeal.Y
		}
		if window.HiddenFramesCanSkipItems > 0 && flags&WindowFlagsTooltip != 0 {
			window.ContentSize = Vec2{}
		}
		if flags&WindowFlagsChildWindow == 0 || flags&WindowFlagsAlwaysAutoResize != 0 || window.AutoFitFramesX > 0 || window.AutoFitFramesY > 0 {
			autoFit := ctx.calcWindowAutoFitSize(window, window.ContentSize)
			useAuto := flags&WindowFlagsAlwaysAutoResize != 0 && !window.Collapsed
			if useAuto {
				if !windowSizeXSetByAPI {
					window.SizeFull.X = autoFit.X
				}
				if !windowSizeYSetByAPI {
					window.SizeFull.Y = autoFit.Y
				}
			} else if window.AutoFitFramesX > 0 || window.AutoFitFramesY > 0 {
				if !windowSizeXSetByAPI && window.AutoFitFramesX > 0 {
					if window.AutoFitOnlyGrows {
						window.SizeFull.X = maxf(window.SizeFull.X, autoFit.X)
					} else {
						window.SizeFull.X = autoFit.X
					}
				}
				if !windowSizeYSetByAPI && window.AutoFitFramesY > 0 {
					if window.AutoFitOnlyGrows {
						window.SizeFull.Y = maxf(window.SizeFull.Y, autoFit.Y)
					} else {
						window.SizeFull.Y = autoFit.Y
					}
				}
			}
		}
		window.SizeFull = ctx.calcWindowSizeAfterConstraint(window, window.SizeFull)
		if window.Collapsed && flags&WindowFlagsChildWindow == 0 {
			window.Size = Vec2{window.SizeFull.X, window.titleBarHeight(ctx)}
		} else {
			window.Size = window.SizeFull
		}

		// Decoration sizes, using last frame's content size
		if !window.Collapsed {
			avail := window.SizeFull.Sub(Vec2{window.WindowPadding.X * 2, window.WindowPadding.Y*2 + window.titleBarHeight(ctx) + window.menuBarHeight(ctx)})
			needY := flags&WindowFlagsAlwaysVerticalScrollbar != 0 ||
				(flags&WindowFlagsNoScrollbar == 0 && window.ContentSize.Y > avail.Y)
			needX := flags&WindowFlagsAlwaysHorizontalScrollbar != 0 ||
				(flags&WindowFlagsNoScrollbar == 0 && flags&WindowFlagsHorizontalScrollbar != 0 &&
					window.ContentSize.X > avail.X-boolf(needY)*ctx.Style.ScrollbarSize)
			if needX && !needY {
				needY = flags&WindowFlagsNoScrollbar == 0 && window.ContentSize.Y > avail.Y-ctx.Style.ScrollbarSize
			}
			window.ScrollbarX, window.ScrollbarY = needX, needY
			window.ScrollbarSizes = Vec2{boolf(needY) * ctx.Style.ScrollbarSize, boolf(needX) * ctx.Style.ScrollbarSize}
		}

		// Position
		if flags&WindowFlagsChildMenu != 0 || flags&WindowFlagsChildWindow != 0 && flags&WindowFlagsPopup == 0 {
			if !windowPosSetByAPI && parent != nil && flags&WindowFlagsChildMenu == 0 {
				window.Pos = parent.DC.CursorPos
			}
		}
		if flags&WindowFlagsChildMenu != 0 && parent != nil {
			// Child menus open beside their parent menu, or below a menu bar.
			overlap := ctx.Style.ItemInnerSpacing.X
			avoid := R(parent.Pos.X+overlap, -floatMax, parent.Pos.X+parent.Size.X-overlap-parent.ScrollbarSizes.X, floatMax)
			if parent.DC.MenuBarAppending {
				avoid = R(-floatMax, parent.ClipRect.Min.Y, floatMax, parent.ClipRect.Max.Y)
			}
			window.Pos = findBestWindowPosForPopupEx(window.Pos, window.Size, &window.AutoPosLastDirection, ctx.windowAllowedExtentRect(), avoid, popupPositionDefault)
		} else if windowPosSetByAPI && nw.PosPivotVal.LengthSqr() > 0 {
			window.Pos = nw.PosVal.Sub(window.Size.MulV(nw.PosPivotVal)).Floor()
		} else if windowJustActivatedByUser && flags&WindowFlagsTooltip != 0 && !windowPosSetByAPI {
			window.Pos = ctx.IO.MousePos.Add(Vec2{16, 8})
		} else if windowJustActivatedByUser && flags&WindowFlagsModal != 0 && !windowPosSetByAPI {
			window.Pos = ctx.IO.DisplaySize.Sub(window.SizeFull).Mul(0.5).Floor()
		} else if windowJustActivatedByUser && flags&WindowFlagsPopup != 0 && flags&WindowFlagsChildMenu == 0 && !windowPosSetByAPI {
			if n := len(ctx.beginPopups); n > 0 {
				window.Pos = ctx.beginPopups[n-1].openPopupPos
			}
		}
		if flags&WindowFlagsChildWindow == 0 {
			ctx.clampWindowToDisplay(window)
		}
		window.Pos = window.Pos.Floor()

		// Focus appearing windows
		wantFocus := false
		if windowJustActivatedByUser && flags&WindowFlagsNoFocusOnAppearing == 0 {
			if flags&WindowFlagsPopup != 0 {
				wantFocus = true
			} else if flags&(WindowFlagsChildWindow|WindowFlagsTooltip) == 0 {
				wantFocus = true
			}
		}

		// Title bar interactions and resize grip
		if !window.Collapsed {
			ctx.updateWindowManualResize(window)
		}
		window.Size = ctx.clampWindowSize(window, window.Size)
		if !window.Collapsed {
			window.SizeFull = window.Size
		}

		// Scrolling
		window.ScrollMax.X = maxf(0, window.ContentSize.X+window.WindowPadding.X*2-(window.Size.X-window.ScrollbarSizes.X))
		window.ScrollMax.Y = maxf(0, window.ContentSize.Y+window.WindowPadding.Y*2-(window.Size.Y-window.ScrollbarSizes.Y-window.titleBarHeight(ctx)-window.menuBarHeight(ctx)))
		window.Scroll = ctx.calcNextScrollFromScrollTargetAndClamp(window)
		window.ScrollTarget = Vec2{floatMax, floatMax}

		// Rectangles
		titleBarH := window.titleBarHeight(ctx)
		menuBarH := window.menuBarHeight(ctx)
		outer := window.Rect()
		window.OuterRectClipped = outer.ClipWith(R(0, 0, ctx.IO.DisplaySize.X, ctx.IO.DisplaySize.Y))
		if window.Collapsed {
			window.OuterRectClipped = outer
		}
		window.InnerRect = R(
			outer.Min.X,
			outer.Min.Y+titleBarH+menuBarH,
			outer.Max.X-window.ScrollbarSizes.X,
			outer.Max.Y-window.ScrollbarSizes.Y,
		)
		border := window.WindowBorderSize
		window.InnerClipRect = R(
			floorf(0.5+window.InnerRect.Min.X+maxf(floorf(window.WindowPadding.X*0.5), border)),
			floorf(0.5+window.InnerRect.Min.Y),
			floorf(0.5+window.InnerRect.Max.X-maxf(floorf(window.WindowPadding.X*0.5), border)),
			floorf(0.5+window.InnerRect.Max.Y),
		)
		window.InnerClipRect = window.InnerClipRect.ClipWithFull(R(-floatMax, -floatMax, floatMax, floatMax))
		if parent != nil && flags&WindowFlagsChildWindow != 0 && flags&WindowFlagsPopup == 0 {
			window.InnerClipRect = window.InnerClipRect.ClipWithFull(parent.ClipRect)
		}

		workMin := Vec2{
			floorf(window.InnerRect.Min.X - window.Scroll.X + maxf(window.WindowPadding.X, border)),
			floorf(window.InnerRect.Min.Y - window.Scroll.Y + maxf(window.WindowPadding.Y, border)),
		}
		visible := Vec2{
			window.Size.X - window.WindowPadding.X*2 - window.ScrollbarSizes.X,
			window.Size.Y - window.WindowPadding.Y*2 - titleBarH - menuBarH - window.ScrollbarSizes.Y,
		}
		workSize := visible
		if flags&WindowFlagsHorizontalScrollbar != 0 {
			workSize.X = maxf(window.ContentSize.X, visible.X)
		}
		window.WorkRect = Rect{workMin, workMin.Add(workSize)}
		regionSize := visible
		if window.ContentSizeIdeal.X > 0 {
			regionSize.X = window.ContentSizeIdeal.X
		}
		if window.ContentSizeIdeal.Y > 0 {
			regionSize.Y = window.ContentSizeIdeal.Y
		}
		window.ContentRegionRect = Rect{workMin, workMin.Add(regionSize)}

		// Default item width
		if window.Size.X > 0 && flags&WindowFlagsTooltip == 0 && flags&WindowFlagsAlwaysAutoResize == 0 {
			window.ItemWidthDefault = floorf(window.Size.X * 0.65)
		} else {
			window.ItemWidthDefault = floorf(ctx.FontSize * 16)
		}

		// Layout cursor
		dc := &window.DC
		dc.Indent = workMin.X - window.Pos.X
		dc.GroupOffset = 0
		dc.ColumnsOffset = 0
		dc.CursorStartPos = workMin
		dc.CursorPos = dc.CursorStartPos
		dc.CursorPosPrevLine = dc.CursorPos
		dc.CursorMaxPos = dc.CursorStartPos
		dc.CurrLineSize, dc.PrevLineSize = Vec2{}, Vec2{}
		dc.CurrLineTextBaseOffset, dc.PrevLineTextBaseOffset = 0, 0
		dc.NavLayerCurrent = NavLayerMain
		dc.NavHideHighlightOneFrame = false
		dc.MenuBarAppending = false
		dc.MenuColumns.update(ctx.Style.ItemSpacing.X, windowJustActivatedByUser)
		dc.ChildWindows = dc.ChildWindows[:0]
		dc.LayoutType = LayoutVertical
		if parentInStack != nil {
			dc.ParentLayoutType = parentInStack.DC.LayoutType
		} else {
			dc.ParentLayoutType = LayoutVertical
		}
		dc.FocusCounterRegular, dc.FocusCounterTabStop = -1, -1
		dc.ItemWidth = window.ItemWidthDefault
		dc.TextWrapPos = -1
		dc.ItemWidthStack = dc.ItemWidthStack[:0]
		dc.TextWrapPosStack = dc.TextWrapPosStack[:0]
		dc.CurrentColumns = nil
		dc.TreeDepth = 0
		dc.TreeJumpToParentOnPopMask = 0
		dc.StateStorage = window.StateStorage
		dc.LastItemID = 0
		dc.LastItemStatusFlags = 0
		dc.LastItemRect = Rect{}
		dc.LastItemDisplayRect = Rect{}
		if parentInStack != nil {
			dc.ItemFlags = parentInStack.DC.ItemFlags
		} else {
			dc.ItemFlags = ItemFlagsDefault
		}
		dc.ItemFlagsStack = dc.ItemFlagsStack[:0]
		if window.AutoFitFramesX > 0 {
			window.AutoFitFramesX--
		}
		if window.AutoFitFramesY > 0 {
			window.AutoFitFramesY--
		}

		if wantFocus {
			ctx.FocusWindow(window)
		}

		// Draw
		window.DrawList.PushClipRect(Vec2{-floatMax * 0.5, -floatMax * 0.5}, Vec2{floatMax * 0.5, floatMax * 0.5}, false)
		ctx.renderDimmedBackground(window)
		if flags&(WindowFlagsPopup|WindowFlagsTooltip) == 0 || flags&WindowFlagsModal != 0 {
			window.DrawList.PushClipRect(window.OuterRectClipped.Min, window.OuterRectClipped.Max, false)
		} else {
			window.DrawList.PushClipRect(outer.Min, outer.Max, false)
		}
		ctx.renderWindowDecorations(window, open)
		window.DrawList.PopClipRect()

		window.DC.LastItemID = window.MoveID
		window.DC.LastItemRect = window.TitleBarRect(ctx)
		window.DC.LastItemStatusFlags = 0
		if ctx.IsMouseHoveringRect(window.DC.LastItemRect.Min, window.DC.LastItemRect.Max, false) {
			window.DC.LastItemStatusFlags = ItemStatusHoveredRect
		}
	} else {
		ctx.setCurrentWindow(window)
	}

	ctx.PushClipRect(window.InnerClipRect.Min, window.InnerClipRect.Max, true)

	if firstBegin {
		window.WriteAccessed = false
	}
	window.BeginCount++
	ctx.NextWindowData.clearFlags()

	if flags&WindowFlagsChildWindow != 0 {
		if !ctx.assert(parent != nil, "child window lost its parent") {
			return false
		}
		if flags&WindowFlagsAlwaysAutoResize == 0 && window.AutoFitFramesX <= 0 && window.AutoFitFramesY <= 0 {
			if window.OuterRectClipped.Min.X >= window.OuterRectClipped.Max.X || window.OuterRectClipped.Min.Y >= window.OuterRectClipped.Max.Y {
				window.HiddenFramesCanSkipItems = 1
			}
		}
		if parent.Collapsed {
			window.HiddenFramesCanSkipItems = 1
		}
	}
	if ctx.Style.Alpha <= 0 {
		window.HiddenFramesCanSkipItems = 1
	}

	skipItems := false
	if window.Collapsed || !window.Active || window.HiddenFramesCanSkipItems > 0 {
		if window.AutoFitFramesX <= 0 && window.AutoFitFramesY <= 0 && window.HiddenFramesCannotSkipItems <= 0 {
			skipItems = true
		}
	}
	window.SkipItems = skipItems
	return !window.SkipItems
}

func boolf(b bool) float32 {
	if b {
		return 1
	}
	return 0
}

func (ctx *Context) clampWindowToDisplay(w *Window) {
	if ctx.IO.DisplaySize.X <= 0 || ctx.IO.DisplaySize.Y <= 0 {
		return
	}
	pad := ctx.Style.DisplayWindowPadding
	if w.Flags&(WindowFlagsPopup|WindowFlagsTooltip) != 0 {
		pad = ctx.Style.DisplaySafeAreaPadding
	}
	sizeForClamp := w.Size
	minX := pad.X - sizeForClamp.X
	minY := pad.Y - sizeForClamp.Y
	if w.Flags&(WindowFlagsPopup|WindowFlagsTooltip) != 0 {
		minX, minY = pad.X, pad.Y
		maxX := ctx.IO.DisplaySize.X - pad.X - w.Size.X
		maxY := ctx.IO.DisplaySize.Y - pad.Y - w.Size.Y
		w.Pos = Vec2{clampf(w.Pos.X, minX, maxf(minX, maxX)), clampf(w.Pos.Y, minY, maxf(minY, maxY))}
		return
	}
	w.Pos = Vec2{
		clampf(w.Pos.X, minf(minX, 0), ctx.IO.DisplaySize.X-pad.X),
		clampf(w.Pos.Y, minf(minY, 0), ctx.IO.DisplaySize.Y-pad.Y),
	}
}

// updateWindowManualResize runs the bottom-right resize grip.
func (ctx *Context) updateWindowManualResize(w *Window) {
	if w.Flags&(WindowFlagsNoResize|WindowFlagsAlwaysAutoResize|WindowFlagsChildWindow) != 0 || w.AutoFitFramesX > 0 || w.AutoFitFramesY > 0 {
		return
	}
	gripSize := floorf(maxf(ctx.FontSize*1.35, w.WindowRounding+1+ctx.FontSize*0.2))
	br := w.Pos.Add(w.Size)
	grip := R(br.X-gripSize, br.Y-gripSize, br.X, br.Y)
	id := HashStr("#RESIZE", w.ID)
	ctx.KeepAliveID(id)
	_, hovered, held := ctx.ButtonBehavior(grip, id, ButtonFlagsFlattenChildren|ButtonFlagsNoNavFocus)
	if hovered || held {
		ctx.MouseCursor = MouseCursorResizeNWSE
	}
	if held {
		target := ctx.IO.MousePos.Sub(ctx.ActiveIDClickOffset).Add(Vec2{gripSize, gripSize})
		size := ctx.clampWindowSize(w, target.Sub(w.Pos))
		w.Size = size.Floor()
		w.SizeFull = w.Size
	}
}

func (ctx *Context) renderWindowDecorations(w *Window, open *bool) {
	s := &ctx.Style
	dl := w.DrawList
	flags := w.Flags
	titleBarH := w.titleBarHeight(ctx)
	border := w.WindowBorderSize
	rounding := w.WindowRounding
	focused := ctx.NavWindow != nil && ctx.NavWindow.RootWindowForTitleBarHighlight == w.RootWindowForTitleBarHighlight

	if w.Collapsed {
		tb := w.TitleBarRect(ctx)
		ctx.renderFrameTo(dl, tb.Min, tb.Max, ctx.GetColorU32(ColTitleBgCollapsed, 1), true, rounding)
	} else {
		if flags&WindowFlagsNoBackground == 0 {
			bgCol := ColWindowBg
			if flags&WindowFlagsChildWindow != 0 {
				bgCol = ColChildBg
			} else if flags&(WindowFlagsPopup|WindowFlagsTooltip) != 0 {
				bgCol = ColPopupBg
			}
			col := ctx.GetColorU32(bgCol, 1)
			if ctx.NextWindowData.flags&nextWindowHasBgAlpha != 0 {
				col = (col &^ colorAlphaMask) | uint32(unitToByte(ctx.NextWindowData.BgAlphaVal))<<24
			}
			corners := DrawCornerAll
			if flags&WindowFlagsNoTitleBar == 0 {
				corners = DrawCornerBot
			}
			dl.AddRectFilled(w.Pos.Add(Vec2{0, titleBarH}), w.Pos.Add(w.Size), col, rounding, corners)
		}
		if flags&WindowFlagsNoTitleBar == 0 {
			col := ColTitleBg
			if focused {
				col = ColTitleBgActive
			}
			tb := w.TitleBarRect(ctx)
			dl.AddRectFilled(tb.Min, tb.Max, ctx.GetColorU32(col, 1), rounding, DrawCornerTop)
		}
		if flags&WindowFlagsMenuBar != 0 {
			mb := w.MenuBarRect(ctx)
			mb = mb.ClipWith(w.Rect())
			dl.AddRectFilled(mb.Min.Add(Vec2{border, 0}), mb.Max.Sub(Vec2{border, 0}), ctx.GetColorU32(ColMenuBarBg, 1), 0, DrawCornerNone)
			if s.FrameBorderSize > 0 && mb.Max.Y < w.Pos.Y+w.Size.Y {
				dl.AddLine(mb.Min, Vec2{mb.Max.X, mb.Max.Y}, ctx.GetColorU32(ColBorder, 1), s.FrameBorderSize)
			}
		}
		if w.ScrollbarX {
			ctx.Scrollbar(AxisX)
		}
		if w.ScrollbarY {
			ctx.Scrollbar(AxisY)
		}
		if flags&(WindowFlagsNoResize|WindowFlagsAlwaysAutoResize|WindowFlagsChildWindow) == 0 && w.AutoFitFramesX <= 0 {
			gripSize := floorf(maxf(ctx.FontSize*1.35, w.WindowRounding+1+ctx.FontSize*0.2))
			br := w.Pos.Add(w.Size)
			id := HashStr("#RESIZE", w.ID)
			col := ColResizeGrip
			if ctx.ActiveID == id {
				col = ColResizeGripActive
			} else if ctx.HoveredID == id {
				col = ColResizeGripHovered
			}
			dl.AddTriangleFilled(Vec2{br.X - border, br.Y - gripSize}, Vec2{br.X - border, br.Y - border}, Vec2{br.X - gripSize, br.Y - border}, ctx.GetColorU32(col, 1))
		}
		if border > 0 {
			dl.AddRect(w.Pos, w.Pos.Add(w.Size), ctx.GetColorU32(ColBorder, 1), rounding, DrawCornerAll, border)
		}
	}

	if flags&WindowFlagsNoTitleBar == 0 {
		ctx.renderWindowTitleBarContents(w, open)
	}
}

func (ctx *Context) renderWindowTitleBarContents(w *Window, open *bool) {
	s := &ctx.Style
	tb := w.TitleBarRect(ctx)
	padL, padR := s.FramePadding.X, s.FramePadding.X
	buttonSz := ctx.FontSize

	// Title bar buttons are submitted in the window's own ID scope.
	backupFlags := w.DC.ItemFlags
	w.DC.ItemFlags |= ItemFlagsNoNavDefaultFocus
	w.DC.NavLayerCurrent = NavLayerMenu

	hasCollapse := w.Flags&WindowFlagsNoCollapse == 0
	if hasCollapse {
		pos := Vec2{tb.Min.X + padL - s.FramePadding.X*0, tb.Min.Y + s.FramePadding.Y}
		if ctx.CollapseButton(w.GetID("#COLLAPSE"), pos) {
			w.WantCollapseToggle = true
		}
		padL += buttonSz + s.ItemInnerSpacing.X
	}
	if open != nil {
		pos := Vec2{tb.Max.X - padR - buttonSz, tb.Min.Y + s.FramePadding.Y}
		if ctx.CloseButton(w.GetID("#CLOSE"), pos) {
			*open = false
		}
		padR += buttonSz + s.ItemInnerSpacing.X
	}
	w.DC.NavLayerCurrent = NavLayerMain
	w.DC.ItemFlags = backupFlags

	label := FindRenderedTextEnd(w.Name)
	textSize := ctx.CalcTextSize(label, true, -1)
	textR := R(tb.Min.X+padL, tb.Min.Y, tb.Max.X-padR, tb.Max.Y)
	clip := R(textR.Min.X, textR.Min.Y, minf(textR.Max.X+s.ItemInnerSpacing.X, tb.Max.X), textR.Max.Y)
	ctx.renderTextClippedTo(w.DrawList, textR.Min, textR.Max, label, &textSize, s.WindowTitleAlign, &clip)
}

// End closes the window opened by the matching Begin.
func (ctx *Context) End() {
	window := ctx.CurrentWindow
	if len(ctx.CurrentWindowStack) <= 1 && window != nil && window.Name == fallbackWindowName {
		ctx.recordStackError(fmt.Errorf("End: too many calls: %w", ErrStackMismatch))
		return
	}
	if !ctx.assert(len(ctx.CurrentWindowStack) > 0, "End called without Begin") {
		return
	}
	ctx.endWindow()
}

func (ctx *Context) endWindow() {
	window := ctx.CurrentWindow
	if window.DC.CurrentColumns != nil {
		ctx.EndColumns()
	}
	ctx.PopClipRect()

	window.DC.CursorMaxPos = maxV2(window.DC.CursorMaxPos, window.DC.CursorStartPos)

	ctx.CurrentWindowStack = ctx.CurrentWindowStack[:len(ctx.CurrentWindowStack)-1]
	if window.Flags&WindowFlagsPopup != 0 && len(ctx.beginPopups) > 0 {
		ctx.beginPopups = ctx.beginPopups[:len(ctx.beginPopups)-1]
	}
	if n := len(ctx.CurrentWindowStack); n > 0 {
		ctx.setCurrentWindow(ctx.CurrentWindowStack[n-1])
	} else {
		ctx.setCurrentWindow(nil)
	}
}

func (ctx *Context) setCurrentWindow(w *Window) {
	ctx.CurrentWindow = w
	if w != nil {
		ctx.FontSize = ctx.Font.LineHeight(ctx.FontGlobalScale * w.FontWindowScale)
	}
}

// ============================================================================
// Child windows
// ============================================================================

// BeginChild begins a scrolling region inside the current window. A size
// component <= 0 is taken relative to the available content region.
func (ctx *Context) BeginChild(strID string, size Vec2, border bool, flags WindowFlags) bool {
	return ctx.beginChildEx(strID, ctx.CurrentWindow.GetID(strID), size, border, flags)
}

// BeginChildID is BeginChild with an explicit id.
func (ctx *Context) BeginChildID(id ID, size Vec2, border bool, flags WindowFlags) bool {
	return ctx.beginChildEx("", id, size, border, flags)
}

func (ctx *Context) beginChildEx(name string, id ID, size Vec2, border bool, flags WindowFlags) bool {
	parent := ctx.CurrentWindow
	flags |= WindowFlagsNoTitleBar | WindowFlagsNoResize | WindowFlagsChildWindow
	flags |= parent.Flags & WindowFlagsNoMove

	avail := ctx.GetContentRegionAvail()
	sz := size.Floor()
	if sz.X <= 0 {
		sz.X = maxf(avail.X+sz.X, 4)
	}
	if sz.Y <= 0 {
		sz.Y = maxf(avail.Y+sz.Y, 4)
	}
	ctx.SetNextWindowSize(sz, CondNone)

	var title string
	if name != "" {
		title = fmt.Sprintf("%s/%s_%08X", parent.Name, name, uint32(id))
	} else {
		title = fmt.Sprintf("%s/%08X", parent.Name, uint32(id))
	}

	backupBorder := ctx.Style.ChildBorderSize
	if !border {
		ctx.Style.ChildBorderSize = 0
	}
	ret := ctx.Begin(title, nil, flags)
	ctx.Style.ChildBorderSize = backupBorder

	ctx.CurrentWindow.ChildID = id
	return ret
}

// EndChild closes a child region and lays it out as an item of its parent.
func (ctx *Context) EndChild() {
	window := ctx.CurrentWindow
	if !ctx.assert(window.Flags&WindowFlagsChildWindow != 0, "EndChild on a non-child window") {
		return
	}
	if window.BeginCount > 1 {
		ctx.End()
		return
	}
	sz := window.Size
	ctx.End()
	parent := ctx.CurrentWindow
	bb := RectFromSize(parent.DC.CursorPos, sz)
	ctx.ItemSize(sz, -1)
	if window.DC.CurrentColumns == nil {
		ctx.ItemAdd(bb, window.ChildID, nil)
		if ctx.HoveredWindow == window {
			parent.DC.LastItemStatusFlags |= ItemStatusHoveredWindow
		}
	} else {
		ctx.ItemAdd(bb, 0, nil)
	}
}

// ============================================================================
// Focus and z-order
// ============================================================================

// FocusWindow makes w the nav window and brings its root to the front.
// A nil w clears window focus.
func (ctx *Context) FocusWindow(w *Window) {
	if ctx.NavWindow != w {
		ctx.NavWindow = w
		ctx.NavID = 0
		if w != nil {
			ctx.nav.window = w
		}
		ctx.Logger.Debug("focus window", "window", windowName(w))
	}
	ctx.NavDisableHighlight = true

	if w == nil {
		return
	}
	focusFront := w.RootWindow
	if focusFront == nil {
		focusFront = w
	}
	if ctx.ActiveID != 0 && ctx.ActiveIDWindow != nil && ctx.ActiveIDWindow.RootWindow != focusFront {
		if !ctx.ActiveIDNoClearOnFocusLoss {
			ctx.ClearActiveID()
		}
	}
	ctx.bringWindowToFocusFront(focusFront)
	if (w.Flags|focusFront.Flags)&WindowFlagsNoBringToFrontOnFocus == 0 {
		ctx.bringWindowToDisplayFront(focusFront)
	}
}

func windowName(w *Window) string {
	if w == nil {
		return "<none>"
	}
	return w.Name
}

func (ctx *Context) bringWindowToFocusFront(w *Window) {
	moveToEnd(&ctx.WindowsFocusOrder, w)
}

func (ctx *Context) bringWindowToDisplayFront(w *Window) {
	moveToEnd(&ctx.Windows, w)
}

func moveToEnd(list *[]*Window, w *Window) {
	l := *list
	for i, x := range l {
		if x == w {
			copy(l[i:], l[i+1:])
			l[len(l)-1] = w
			return
		}
	}
}

// focusTopMostWindowUnderOne focuses the most recent window below under
// that accepts focus.
func (ctx *Context) focusTopMostWindowUnderOne(under, ignore *Window) {
	start := len(ctx.WindowsFocusOrder) - 1
	if under != nil {
		for i, w := range ctx.WindowsFocusOrder {
			if w == under {
				start = i - 1
				break
			}
		}
	}
	for i := start; i >= 0; i-- {
		w := ctx.WindowsFocusOrder[i]
		if w != ignore && w.WasActive && w.Flags&WindowFlagsChildWindow == 0 &&
			w.Flags&(WindowFlagsNoMouseInputs|WindowFlagsNoNavInputs) != (WindowFlagsNoMouseInputs|WindowFlagsNoNavInputs) {
			ctx.FocusWindow(w)
			return
		}
	}
	ctx.FocusWindow(nil)
}

// sortWindowsByDisplayOrder rebuilds Windows with every child directly
// after its parent.
func (ctx *Context) sortWindowsByDisplayOrder() {
	ctx.windowsTempSort = ctx.windowsTempSort[:0]
	for _, w := range ctx.Windows {
		if w.Active && w.Flags&WindowFlagsChildWindow != 0 {
			continue
		}
		ctx.addWindowToSortBuffer(w)
	}
	// Inactive child windows keep their place at the back.
	if len(ctx.windowsTempSort) != len(ctx.Windows) {
		seen := make(map[*Window]bool, len(ctx.windowsTempSort))
		for _, w := range ctx.windowsTempSort {
			seen[w] = true
		}
		var rest []*Window
		for _, w := range ctx.Windows {
			if !seen[w] {
				rest = append(rest, w)
			}
		}
		ctx.windowsTempSort = append(rest, ctx.windowsTempSort...)
	}
	ctx.Windows, ctx.windowsTempSort = ctx.windowsTempSort, ctx.Windows
}

func (ctx *Context) addWindowToSortBuffer(w *Window) {
	ctx.windowsTempSort = append(ctx.windowsTempSort, w)
	if !w.Active || len(w.DC.ChildWindows) == 0 {
		return
	}
	children := append([]*Window(nil), w.DC.ChildWindows...)
	sort.SliceStable(children, func(i, j int) bool {
		return children[i].BeginOrderWithinParent < children[j].BeginOrderWithinParent
	})
	for _, c := range children {
		if c.Active {
			ctx.addWindowToSortBuffer(c)
		}
	}
}

// ============================================================================
// SetNextWindow* and window queries
// ============================================================================

// SetNextWindowPos sets the position of the next Begin.
func (ctx *Context) SetNextWindowPos(pos Vec2, cond Cond, pivot Vec2) {
	nw := &ctx.NextWindowData
	nw.flags |= nextWindowHasPos
	nw.PosVal = pos
	nw.PosPivotVal = pivot
	if cond == 0 {
		cond = CondAlways
	}
	nw.PosCond = cond
}

// SetNextWindowSize sets the size of the next Begin; 0 on an axis auto-fits.
func (ctx *Context) SetNextWindowSize(size Vec2, cond Cond) {
	nw := &ctx.NextWindowData
	nw.flags |= nextWindowHasSize
	nw.SizeVal = size
	if cond == 0 {
		cond = CondAlways
	}
	nw.SizeCond = cond
}

// SetNextWindowSizeConstraints bounds the size of the next Begin. A
// negative component leaves that axis free.
func (ctx *Context) SetNextWindowSizeConstraints(sizeMin, sizeMax Vec2) {
	ctx.NextWindowData.flags |= nextWindowHasSizeConstraint
	ctx.NextWindowData.SizeConstraintRect = Rect{sizeMin, sizeMax}
}

// SetNextWindowContentSize sets the content size of the next Begin.
func (ctx *Context) SetNextWindowContentSize(size Vec2) {
	ctx.NextWindowData.flags |= nextWindowHasContentSize
	ctx.NextWindowData.ContentSizeVal = size.Floor()
}

// SetNextWindowCollapsed sets the collapsed state of the next Begin.
func (ctx *Context) SetNextWindowCollapsed(collapsed bool, cond Cond) {
	nw := &ctx.NextWindowData
	nw.flags |= nextWindowHasCollapsed
	nw.CollapsedVal = collapsed
	if cond == 0 {
		cond = CondAlways
	}
	nw.CollapsedCond = cond
}

// SetNextWindowFocus focuses the next Begin.
func (ctx *Context) SetNextWindowFocus() {
	ctx.NextWindowData.flags |= nextWindowHasFocus
}

// SetNextWindowBgAlpha overrides the background alpha of the next Begin.
func (ctx *Context) SetNextWindowBgAlpha(alpha float32) {
	ctx.NextWindowData.flags |= nextWindowHasBgAlpha
	ctx.NextWindowData.BgAlphaVal = alpha
}

// SetNextWindowScroll sets the scroll of the next Begin; negative keeps an axis.
func (ctx *Context) SetNextWindowScroll(scroll Vec2) {
	ctx.NextWindowData.flags |= nextWindowHasScroll
	ctx.NextWindowData.ScrollVal = scroll
}

// SetWindowFocus focuses the window named name.
func (ctx *Context) SetWindowFocus(name string) {
	if w := ctx.FindWindowByName(name); w != nil {
		ctx.FocusWindow(w)
	}
}

// FocusedFlags select which windows IsWindowFocused tests.
type FocusedFlags int

const (
	FocusedNone         FocusedFlags = 0
	FocusedChildWindows FocusedFlags = 1 << iota
	FocusedRootWindow
	FocusedAnyWindow
	FocusedRootAndChildWindows = FocusedRootWindow | FocusedChildWindows
)

// IsWindowFocused reports whether the current window has focus.
func (ctx *Context) IsWindowFocused(flags FocusedFlags) bool {
	if flags&FocusedAnyWindow != 0 {
		return ctx.NavWindow != nil
	}
	cur := ctx.CurrentWindow
	if cur == nil || ctx.NavWindow == nil {
		return false
	}
	switch flags & (FocusedRootWindow | FocusedChildWindows) {
	case FocusedRootAndChildWindows:
		return ctx.NavWindow.RootWindow == cur.RootWindow
	case FocusedRootWindow:
		return ctx.NavWindow == cur.RootWindow
	case FocusedChildWindows:
		return isWindowChildOf(ctx.NavWindow, cur)
	}
	return ctx.NavWindow == cur
}

// IsWindowHovered reports whether the mouse is over the current window.
func (ctx *Context) IsWindowHovered(flags HoveredFlags) bool {
	if flags&HoveredFlagsAnyWindow != 0 {
		if ctx.HoveredWindow == nil {
			return false
		}
	} else {
		cur := ctx.CurrentWindow
		switch flags & HoveredFlagsRootAndChildWindows {
		case HoveredFlagsRootAndChildWindows:
			if ctx.HoveredRootWindow != cur.RootWindow {
				return false
			}
		case HoveredFlagsRootWindow:
			if ctx.HoveredWindow != cur.RootWindow {
				return false
			}
		case HoveredFlagsChildWindows:
			if ctx.HoveredWindow == nil || !isWindowChildOf(ctx.HoveredWindow, cur) {
				return false
			}
		default:
			if ctx.HoveredWindow != cur {
				return false
			}
		}
	}
	if !ctx.isWindowContentHoverable(ctx.HoveredWindow, flags) {
		return false
	}
	if flags&HoveredFlagsAllowWhenBlockedByActiveItem == 0 && ctx.ActiveID != 0 && !ctx.ActiveIDAllowOverlap && ctx.ActiveID != ctx.HoveredWindow.MoveID {
		return false
	}
	return true
}

func isWindowChildOf(w, potentialParent *Window) bool {
	if w.RootWindow == potentialParent {
		return true
	}
	for w != nil {
		if w == potentialParent {
			return true
		}
		w = w.ParentWindow
	}
	return false
}

// IsWindowAppearing reports whether the current window appears this frame.
func (ctx *Context) IsWindowAppearing() bool { return ctx.CurrentWindow.Appearing }

// IsWindowCollapsed reports whether the current window is collapsed.
func (ctx *Context) IsWindowCollapsed() bool { return ctx.CurrentWindow.Collapsed }

// GetWindowPos returns the current window position.
func (ctx *Context) GetWindowPos() Vec2 { return ctx.CurrentWindow.Pos }

// GetWindowSize returns the current window size.
func (ctx *Context) GetWindowSize() Vec2 { return ctx.CurrentWindow.Size }

// GetWindowWidth returns the current window width.
func (ctx *Context) GetWindowWidth() float32 { return ctx.CurrentWindow.Size.X }

// GetWindowHeight returns the current window height.
func (ctx *Context) GetWindowHeight() float32 { return ctx.CurrentWindow.Size.Y }

// GetWindowDrawList returns the draw list of the current window.
func (ctx *Context) GetWindowDrawList() *DrawList { return ctx.CurrentWindow.DrawList }

// SetWindowFontScale scales the font of the current window.
func (ctx *Context) SetWindowFontScale(scale float32) {
	w := ctx.CurrentWindow
	w.FontWindowScale = scale
	ctx.FontSize = ctx.Font.LineHeight(ctx.FontGlobalScale * scale)
}

// ============================================================================
// Clip rectangles
// ============================================================================

// PushClipRect narrows the clip rectangle of the current window.
func (ctx *Context) PushClipRect(min, max Vec2, intersectWithCurrent bool) {
	w := ctx.CurrentWindow
	r := Rect{min, max}
	if intersectWithCurrent {
		r = r.ClipWith(w.ClipRect)
	}
	w.clipRectStack = append(w.clipRectStack, w.ClipRect)
	w.ClipRect = r
	w.DrawList.PushClipRect(r.Min, r.Max, false)
}

// PopClipRect restores the previous clip rectangle.
func (ctx *Context) PopClipRect() {
	w := ctx.CurrentWindow
	n := len(w.clipRectStack)
	if n == 0 {
		ctx.recordStackError(stackError("PopClipRect", w))
		return
	}
	w.ClipRect = w.clipRectStack[n-1]
	w.clipRectStack = w.clipRectStack[:n-1]
	w.DrawList.PopClipRect()
}
