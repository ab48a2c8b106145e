package anchor

import "fmt"

// fallbackWindowName is the implicit window that catches widgets
// submitted outside any Begin.
const fallbackWindowName = "Debug##Default"

// windowsHoverPadding extends resizable windows' hover area for their grips.
const windowsHoverPadding = 4

// NewFrame starts a frame. The host must have filled IO for it.
func (ctx *Context) NewFrame() {
	if ctx.withinFrame {
		ctx.assert(false, "NewFrame called twice without EndFrame", "frame", ctx.FrameCount)
		ctx.EndFrame()
	}
	io := &ctx.IO
	if !ctx.assert(io.DeltaTime >= 0, "IO.DeltaTime must be >= 0", "dt", io.DeltaTime) {
		io.DeltaTime = 0
	}
	ctx.applyConfig()

	ctx.Time += float64(io.DeltaTime)
	ctx.FrameCount++
	ctx.withinFrame = true
	ctx.TooltipOverrideCount = 0
	ctx.menusIDSubmittedThisFrame = ctx.menusIDSubmittedThisFrame[:0]
	ctx.stackErrs = ctx.stackErrs[:0]

	io.updateKeyModifiers()
	io.updateKeyDurations(io.DeltaTime)
	io.updateMouse(ctx.Time)

	ctx.drawData.clear()
	ctx.fontStack = ctx.fontStack[:0]
	ctx.setCurrentFont(ctx.defaultFont())
	ctx.prepareOverlayDrawLists()

	// Hover bookkeeping
	if ctx.HoveredID != 0 && ctx.HoveredID == ctx.HoveredIDPreviousFrame {
		ctx.HoveredIDTimer += io.DeltaTime
	}
	if ctx.HoveredIDTimer > 0 && ctx.ActiveID != ctx.HoveredID {
		ctx.HoveredIDNotActiveTimer += io.DeltaTime
	}
	ctx.HoveredIDPreviousFrame = ctx.HoveredID
	ctx.hoveredIDPreviousAllowed = ctx.HoveredIDAllowOverlap
	ctx.HoveredID = 0
	ctx.HoveredIDAllowOverlap = false
	ctx.HoveredIDDisabled = false

	// An active widget that was not submitted last frame is released.
	if ctx.ActiveIDIsAlive != ctx.ActiveID && ctx.ActiveIDPreviousFrame == ctx.ActiveID && ctx.ActiveID != 0 {
		ctx.Logger.Debug("active id lost", "id", ctx.ActiveID)
		ctx.ClearActiveID()
	}
	if ctx.ActiveID != 0 {
		ctx.ActiveIDTimer += io.DeltaTime
	}
	ctx.LastActiveIDTimer += io.DeltaTime
	ctx.ActiveIDPreviousFrame = ctx.ActiveID
	ctx.ActiveIDPreviousFrameWindow = ctx.ActiveIDWindow
	ctx.ActiveIDPreviousFrameHasBeenEdited = ctx.ActiveIDHasBeenEditedBefore
	ctx.ActiveIDIsAlive = 0
	ctx.ActiveIDHasBeenEditedThisFrame = false
	ctx.ActiveIDPreviousFrameIsAlive = false
	ctx.ActiveIDIsJustActivated = false
	if ctx.TempInputID != 0 && ctx.ActiveID != ctx.TempInputID {
		ctx.TempInputID = 0
	}
	if ctx.ActiveID == 0 {
		ctx.setActiveIDUsingNav(false, false, false)
	}

	ctx.navUpdate()
	ctx.updateMouseMovingWindowNewFrame()
	ctx.updateHoveredWindowAndCaptureFlags()

	ctx.MouseCursor = MouseCursorArrow
	ctx.wantTextInputNextFrame = -1
	ctx.updateMouseWheel()

	for _, w := range ctx.Windows {
		w.WasActive = w.Active
		w.BeginCount = 0
		w.Active = false
		w.WriteAccessed = false
	}
	if ctx.NavWindow != nil && !ctx.NavWindow.WasActive {
		ctx.focusTopMostWindowUnderOne(nil, nil)
	}

	ctx.CurrentWindowStack = ctx.CurrentWindowStack[:0]
	ctx.beginPopups = ctx.beginPopups[:0]
	ctx.closePopupsOverWindow(ctx.NavWindow, false)

	ctx.NextWindowData.clearFlags()
	ctx.NextItemData.clearFlags()

	ctx.gcWindows()
	ctx.tabBars.Collect(ctx.FrameCount, ctx.Config.WindowGCFrames, nil)
	ctx.graphEditors.Collect(ctx.FrameCount, ctx.Config.WindowGCFrames, nil)

	// Widgets submitted without Begin land in the fallback window.
	ctx.SetNextWindowSize(Vec2{400, 400}, CondFirstUseEver)
	ctx.Begin(fallbackWindowName, nil, WindowFlagsNoFocusOnAppearing)
}

func (ctx *Context) prepareOverlayDrawLists() {
	if ctx.foregroundDrawList == nil {
		ctx.foregroundDrawList = AcquireDrawList("##Foreground")
		ctx.backgroundDrawList = AcquireDrawList("##Background")
	}
	for _, dl := range []*DrawList{ctx.backgroundDrawList, ctx.foregroundDrawList} {
		dl.Clear()
		dl.setTexture(ctx.Font.TextureID())
		dl.PushClipRect(Vec2{}, ctx.IO.DisplaySize, false)
	}
}

// GetForegroundDrawList returns a list drawn over every window.
func (ctx *Context) GetForegroundDrawList() *DrawList { return ctx.foregroundDrawList }

// GetBackgroundDrawList returns a list drawn under every window.
func (ctx *Context) GetBackgroundDrawList() *DrawList { return ctx.backgroundDrawList }

// EndFrame closes the frame without rendering. Render calls it when needed.
func (ctx *Context) EndFrame() {
	if !ctx.withinFrame {
		ctx.assert(false, "EndFrame called without NewFrame")
		return
	}
	if ctx.FrameCountEnded == ctx.FrameCount {
		return
	}

	if ctx.wantTextInputNextFrame != -1 {
		ctx.IO.WantTextInput = ctx.wantTextInputNextFrame != 0
	} else {
		ctx.IO.WantTextInput = false
	}

	ctx.checkStacksAtFrameEnd()

	// Hide the fallback window when nothing was submitted to it.
	if n := len(ctx.CurrentWindowStack); n > 0 {
		fb := ctx.CurrentWindowStack[0]
		if fb.Name == fallbackWindowName && fb.DC.CursorMaxPos == fb.DC.CursorStartPos {
			fb.Active = false
		}
		ctx.endWindow()
	}

	ctx.updateMouseMovingWindowEndFrame()
	ctx.sortWindowsByDisplayOrder()

	ctx.IO.MouseCursor = ctx.MouseCursor
	ctx.IO.endFrame()
	ctx.FrameCountEnded = ctx.FrameCount
	ctx.withinFrame = false
}

// checkStacksAtFrameEnd records and repairs unbalanced Push/Pop and
// Begin/End pairs so the next frame starts clean.
func (ctx *Context) checkStacksAtFrameEnd() {
	for len(ctx.CurrentWindowStack) > 1 {
		w := ctx.CurrentWindowStack[len(ctx.CurrentWindowStack)-1]
		ctx.recordStackError(fmt.Errorf("missing End for window %q: %w", w.Name, ErrStackMismatch))
		if w.Flags&WindowFlagsChildWindow != 0 {
			ctx.EndChild()
		} else {
			ctx.End()
		}
	}
	if n := len(ctx.groupStack); n > 0 {
		ctx.recordStackError(fmt.Errorf("missing EndGroup (%d): %w", n, ErrStackMismatch))
		for len(ctx.groupStack) > 0 {
			ctx.EndGroup()
		}
	}
	if n := len(ctx.colorStack); n > 0 {
		ctx.recordStackError(fmt.Errorf("missing PopStyleColor (%d): %w", n, ErrStackMismatch))
		ctx.PopStyleColor(n)
	}
	if n := len(ctx.styleVarStack); n > 0 {
		ctx.recordStackError(fmt.Errorf("missing PopStyleVar (%d): %w", n, ErrStackMismatch))
		ctx.PopStyleVar(n)
	}
	if n := len(ctx.fontStack); n > 0 {
		ctx.recordStackError(fmt.Errorf("missing PopFont (%d): %w", n, ErrStackMismatch))
		ctx.fontStack = ctx.fontStack[:0]
		ctx.setCurrentFont(ctx.defaultFont())
	}
	if n := len(ctx.currentTabBarStack); n > 0 {
		ctx.recordStackError(fmt.Errorf("missing EndTabBar (%d): %w", n, ErrStackMismatch))
		ctx.currentTabBarStack = ctx.currentTabBarStack[:0]
		ctx.CurrentTabBar = nil
	}
	if len(ctx.CurrentWindowStack) == 1 {
		w := ctx.CurrentWindowStack[0]
		if n := len(w.IDStack); n > 1 {
			ctx.recordStackError(fmt.Errorf("missing PopID (%d) in %q: %w", n-1, w.Name, ErrStackMismatch))
		}
	}
}

// Render ends the frame if needed and returns the draw data for it.
func (ctx *Context) Render() *DrawData {
	if ctx.FrameCountEnded != ctx.FrameCount {
		ctx.EndFrame()
	}
	ctx.FrameCountRendered = ctx.FrameCount

	dd := &ctx.drawData
	dd.clear()
	dd.add(ctx.backgroundDrawList)

	var tooltips []*Window
	for _, w := range ctx.Windows {
		if !isWindowActiveAndVisible(w) || w.Flags&WindowFlagsChildWindow != 0 {
			continue
		}
		if w.Flags&WindowFlagsTooltip != 0 {
			tooltips = append(tooltips, w)
			continue
		}
		addWindowToDrawData(dd, w)
	}
	for _, w := range tooltips {
		addWindowToDrawData(dd, w)
	}
	dd.add(ctx.foregroundDrawList)

	dd.DisplayPos = Vec2{}
	dd.DisplaySize = ctx.IO.DisplaySize
	dd.Valid = true
	return dd
}

// GetDrawData returns the last rendered frame, or nil before Render.
func (ctx *Context) GetDrawData() *DrawData {
	if !ctx.drawData.Valid {
		return nil
	}
	return &ctx.drawData
}

func isWindowActiveAndVisible(w *Window) bool {
	return w.Active && !w.Hidden
}

func addWindowToDrawData(dd *DrawData, w *Window) {
	dd.add(w.DrawList)
	for _, c := range w.DC.ChildWindows {
		if isWindowActiveAndVisible(c) {
			addWindowToDrawData(dd, c)
		}
	}
}

// ============================================================================
// Hovered window and mouse ownership
// ============================================================================

func (ctx *Context) findHoveredWindow() {
	var hovered *Window
	if ctx.MovingWindow != nil && ctx.MovingWindow.Flags&WindowFlagsNoMouseInputs == 0 {
		hovered = ctx.MovingWindow
	}
	padRegular := ctx.Style.TouchExtraPadding
	padResize := maxV2(padRegular, Vec2{windowsHoverPadding, windowsHoverPadding})
	for i := len(ctx.Windows) - 1; i >= 0 && hovered == nil; i-- {
		w := ctx.Windows[i]
		if !w.Active || w.Hidden || w.Flags&WindowFlagsNoMouseInputs != 0 {
			continue
		}
		bb := w.OuterRectClipped
		if w.Flags&(WindowFlagsChildWindow|WindowFlagsNoResize|WindowFlagsAlwaysAutoResize) != 0 {
			bb = bb.ExpandV(padRegular)
		} else {
			bb = bb.ExpandV(padResize)
		}
		if !bb.Contains(ctx.IO.MousePos) {
			continue
		}
		hovered = w
	}
	ctx.HoveredWindow = hovered
	ctx.HoveredRootWindow = nil
	if hovered != nil {
		ctx.HoveredRootWindow = hovered.RootWindow
	}
}

func (ctx *Context) updateHoveredWindowAndCaptureFlags() {
	io := &ctx.IO
	ctx.findHoveredWindow()

	modal := ctx.topMostPopupModal()
	if modal != nil && ctx.HoveredRootWindow != nil && !isWindowChildOf(ctx.HoveredRootWindow, modal) {
		ctx.HoveredWindow, ctx.HoveredRootWindow = nil, nil
	}

	earliestDown := -1
	anyDown := false
	for i := range io.MouseDown {
		if io.MouseClicked[i] {
			io.MouseDownOwned[i] = ctx.HoveredWindow != nil || len(ctx.popupStack) > 0
		}
		if io.MouseDown[i] {
			anyDown = true
			if earliestDown == -1 || io.MouseClickedTime[i] < io.MouseClickedTime[earliestDown] {
				earliestDown = i
			}
		}
	}
	mouseAvail := earliestDown == -1 || io.MouseDownOwned[earliestDown]
	if !mouseAvail {
		ctx.HoveredWindow, ctx.HoveredRootWindow = nil, nil
	}

	io.WantCaptureMouse = (mouseAvail && (ctx.HoveredWindow != nil || anyDown)) || len(ctx.popupStack) > 0
	io.WantCaptureKeyboard = ctx.ActiveID != 0 || modal != nil
}

func (ctx *Context) startMouseMovingWindow(w *Window) {
	ctx.FocusWindow(w)
	ctx.SetActiveID(w.MoveID, w)
	ctx.NavDisableHighlight = true
	ctx.ActiveIDClickOffset = ctx.IO.MousePos.Sub(w.RootWindow.Pos)
	if w.Flags&WindowFlagsNoMove == 0 && w.RootWindow.Flags&WindowFlagsNoMove == 0 {
		ctx.MovingWindow = w
	}
}

func (ctx *Context) updateMouseMovingWindowNewFrame() {
	if ctx.MovingWindow != nil {
		ctx.KeepAliveID(ctx.ActiveID)
		moving := ctx.MovingWindow.RootWindow
		if ctx.IO.MouseDown[MouseButtonLeft] {
			pos := ctx.IO.MousePos.Sub(ctx.ActiveIDClickOffset)
			if moving.Pos != pos {
				ctx.setWindowPos(moving, pos, CondAlways)
			}
			ctx.FocusWindow(ctx.MovingWindow)
		} else {
			ctx.ClearActiveID()
			ctx.MovingWindow = nil
		}
		return
	}
	if ctx.ActiveIDWindow != nil && ctx.ActiveIDWindow.MoveID == ctx.ActiveID {
		ctx.KeepAliveID(ctx.ActiveID)
		if !ctx.IO.MouseDown[MouseButtonLeft] {
			ctx.ClearActiveID()
		}
	}
}

func (ctx *Context) updateMouseMovingWindowEndFrame() {
	if ctx.ActiveID != 0 || ctx.HoveredID != 0 {
		return
	}
	if ctx.NavWindow != nil && ctx.NavWindow.Appearing {
		return
	}
	io := &ctx.IO
	if io.MouseClicked[MouseButtonLeft] {
		root := ctx.HoveredRootWindow
		closedPopup := root != nil && root.Flags&WindowFlagsPopup != 0 && !ctx.isPopupIDOpen(root.PopupID)
		if root != nil && !closedPopup {
			ctx.startMouseMovingWindow(ctx.HoveredWindow)
			if io.ConfigWindowsMoveFromTitleBarOnly && root.Flags&WindowFlagsNoTitleBar == 0 {
				if !root.TitleBarRect(ctx).Contains(io.MouseClickedPos[MouseButtonLeft]) {
					ctx.MovingWindow = nil
				}
			}
		} else if root == nil && ctx.NavWindow != nil && ctx.topMostPopupModal() == nil {
			ctx.FocusWindow(nil)
		}
	}
	if io.MouseClicked[MouseButtonRight] {
		modal := ctx.topMostPopupModal()
		hoveredUnderModal := modal != nil && ctx.HoveredWindow != nil && isWindowChildOf(ctx.HoveredWindow.RootWindow, modal)
		if modal == nil || hoveredUnderModal {
			ctx.closePopupsOverWindow(ctx.HoveredWindow, true)
		} else {
			ctx.closePopupsOverWindow(modal, true)
		}
	}
}

// updateMouseWheel scrolls the hovered window, or the nearest parent that
// can scroll.
func (ctx *Context) updateMouseWheel() {
	io := &ctx.IO
	if ctx.WheelingWindow != nil && (io.MouseDelta.LengthSqr() > 0 || (io.MouseWheel == 0 && io.MouseWheelH == 0)) {
		ctx.WheelingWindow = nil
	}
	if io.MouseWheel == 0 && io.MouseWheelH == 0 {
		return
	}
	w := ctx.HoveredWindow
	if ctx.WheelingWindow != nil {
		w = ctx.WheelingWindow
	}
	if w == nil || w.Collapsed {
		return
	}

	if io.MouseWheel != 0 && !io.KeyShift {
		for w.Flags&WindowFlagsChildWindow != 0 &&
			(w.ScrollMax.Y == 0 || w.Flags&(WindowFlagsNoScrollWithMouse|WindowFlagsNoMouseInputs) != 0) {
			w = w.ParentWindow
		}
		if w.Flags&(WindowFlagsNoScrollWithMouse|WindowFlagsNoMouseInputs) == 0 {
			ctx.WheelingWindow = w
			maxStep := w.InnerRect.Height() * 0.67
			step := floorf(minf(5*ctx.FontSize, maxStep))
			ctx.setScrollY(w, w.Scroll.Y-io.MouseWheel*step)
		}
	}

	wheelH := io.MouseWheelH
	if io.KeyShift && io.MouseWheel != 0 {
		wheelH = io.MouseWheel
	}
	if wheelH != 0 {
		for w.Flags&WindowFlagsChildWindow != 0 &&
			(w.ScrollMax.X == 0 || w.Flags&(WindowFlagsNoScrollWithMouse|WindowFlagsNoMouseInputs) != 0) {
			w = w.ParentWindow
		}
		if w.Flags&(WindowFlagsNoScrollWithMouse|WindowFlagsNoMouseInputs) == 0 {
			ctx.WheelingWindow = w
			maxStep := w.InnerRect.Width() * 0.67
			step := floorf(minf(2*ctx.FontSize, maxStep))
			ctx.setScrollX(w, w.Scroll.X-wheelH*step)
		}
	}
}
