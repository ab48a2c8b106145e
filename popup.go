package anchor

import "fmt"

// PopupFlags tune OpenPopup, IsPopupOpen and the BeginPopupContext* helpers.
type PopupFlags int

const (
	PopupFlagsNone                    PopupFlags = 0
	PopupFlagsMouseButtonRight        PopupFlags = 0 // context helpers open on right release by default
	PopupFlagsMouseButtonLeft         PopupFlags = 1
	PopupFlagsMouseButtonMiddle       PopupFlags = 2
	PopupFlagsNoOpenOverExistingPopup PopupFlags = 1 << 5
	PopupFlagsNoOpenOverItems         PopupFlags = 1 << 6
	PopupFlagsAnyPopupID              PopupFlags = 1 << 7
	PopupFlagsAnyPopupLevel           PopupFlags = 1 << 8

	popupFlagsMouseButtonMask = 0x1F
	PopupFlagsAnyPopup        = PopupFlagsAnyPopupID | PopupFlagsAnyPopupLevel
)

// popupData is one entry of the open popup stack.
type popupData struct {
	popupID        ID
	window         *Window // resolved by Begin, nil until the popup is first begun
	sourceWindow   *Window // focused window when the popup opened
	openFrameCount int
	openParentID   ID
	openPopupPos   Vec2
	openMousePos   Vec2
}

// tooltipFlags tune beginTooltipEx.
type tooltipFlags int

const tooltipFlagsOverridePrevious tooltipFlags = 1 << 0

func (f PopupFlags) mouseButton() MouseButton {
	switch f & popupFlagsMouseButtonMask {
	case PopupFlagsMouseButtonLeft:
		return MouseButtonLeft
	case PopupFlagsMouseButtonMiddle:
		return MouseButtonMiddle
	}
	return MouseButtonRight
}

// ============================================================================
// Popup stack
// ============================================================================

// isPopupIDOpen reports whether id is open at any level of the stack.
func (ctx *Context) isPopupIDOpen(id ID) bool {
	for _, p := range ctx.popupStack {
		if p.popupID == id {
			return true
		}
	}
	return false
}

func (ctx *Context) isPopupOpenEx(id ID, flags PopupFlags) bool {
	if flags&PopupFlagsAnyPopupID != 0 {
		if flags&PopupFlagsAnyPopupLevel != 0 {
			return len(ctx.popupStack) > 0
		}
		return len(ctx.popupStack) > len(ctx.beginPopups)
	}
	if flags&PopupFlagsAnyPopupLevel != 0 {
		return ctx.isPopupIDOpen(id)
	}
	lvl := len(ctx.beginPopups)
	return lvl < len(ctx.popupStack) && ctx.popupStack[lvl].popupID == id
}

// IsPopupOpen reports whether the popup named strID is open at the current
// popup level.
func (ctx *Context) IsPopupOpen(strID string, flags PopupFlags) bool {
	var id ID
	if flags&PopupFlagsAnyPopupID == 0 {
		if !ctx.assert(ctx.CurrentWindow != nil, "IsPopupOpen: no current window", "id", strID) {
			return false
		}
		id = ctx.CurrentWindow.GetID(strID)
	}
	return ctx.isPopupOpenEx(id, flags)
}

// topMostPopupModal returns the front-most open modal, or nil.
func (ctx *Context) topMostPopupModal() *Window {
	for i := len(ctx.popupStack) - 1; i >= 0; i-- {
		if w := ctx.popupStack[i].window; w != nil && w.Flags&WindowFlagsModal != 0 {
			return w
		}
	}
	return nil
}

// OpenPopup marks the popup strID as open; call BeginPopup with the same id
// to submit it. Reopening a popup on consecutive frames keeps it alive.
func (ctx *Context) OpenPopup(strID string, flags PopupFlags) {
	if !ctx.assert(ctx.CurrentWindow != nil, "OpenPopup: no current window", "id", strID) {
		return
	}
	ctx.openPopupEx(ctx.CurrentWindow.GetID(strID), flags)
}

func (ctx *Context) openPopupEx(id ID, flags PopupFlags) {
	parent := ctx.CurrentWindow
	level := len(ctx.beginPopups)
	if flags&PopupFlagsNoOpenOverExistingPopup != 0 && ctx.isPopupOpenEx(0, PopupFlagsAnyPopupID) {
		return
	}
	ref := popupData{
		popupID:        id,
		sourceWindow:   ctx.NavWindow,
		openFrameCount: ctx.FrameCount,
		openParentID:   parent.IDStack[len(parent.IDStack)-1],
		openPopupPos:   ctx.IO.MousePos,
		openMousePos:   ctx.IO.MousePos,
	}
	if ctx.NavDisableMouseHover && ctx.NavID != 0 && parent == ctx.NavWindow {
		// Keyboard-opened popups anchor at the focused item.
		ref.openPopupPos = parent.DC.LastItemRect.Min
	}

	if len(ctx.popupStack) < level+1 {
		ctx.popupStack = append(ctx.popupStack, ref)
	} else {
		cur := &ctx.popupStack[level]
		if cur.popupID == id && cur.openFrameCount == ctx.FrameCount-1 {
			// Opened again on the next frame: the same popup stays.
			cur.openFrameCount = ref.openFrameCount
		} else {
			ctx.closePopupToLevel(level, false)
			ctx.popupStack = append(ctx.popupStack, ref)
		}
	}
	ctx.Logger.Debug("popup opened", "id", id, "level", level)
}

// closePopupsOverWindow closes every popup above the top-most one that owns
// ref. A nil ref closes all popups.
func (ctx *Context) closePopupsOverWindow(ref *Window, restoreFocus bool) {
	if len(ctx.popupStack) == 0 {
		return
	}
	keep := 0
	if ref != nil {
		for ; keep < len(ctx.popupStack); keep++ {
			p := ctx.popupStack[keep]
			if p.window == nil || p.window.Flags&WindowFlagsChildMenu != 0 {
				continue
			}
			ownsRef := false
			for m := keep; m < len(ctx.popupStack) && !ownsRef; m++ {
				if w := ctx.popupStack[m].window; w != nil && w.RootWindow == ref.RootWindow {
					ownsRef = true
				}
			}
			if !ownsRef {
				break
			}
		}
	}
	if keep < len(ctx.popupStack) {
		ctx.closePopupToLevel(keep, restoreFocus)
	}
}

// closePopupToLevel truncates the popup stack to remaining entries.
func (ctx *Context) closePopupToLevel(remaining int, restoreFocus bool) {
	if !ctx.assert(remaining >= 0 && remaining < len(ctx.popupStack), "closePopupToLevel: bad level", "level", remaining) {
		return
	}
	focus := ctx.popupStack[remaining].sourceWindow
	popupWindow := ctx.popupStack[remaining].window
	ctx.popupStack = ctx.popupStack[:remaining]
	ctx.Logger.Debug("popups closed", "level", remaining)
	if !restoreFocus {
		return
	}
	if focus != nil && !focus.WasActive && popupWindow != nil {
		ctx.focusTopMostWindowUnderOne(popupWindow, nil)
	} else {
		ctx.FocusWindow(focus)
	}
}

// CloseCurrentPopup closes the popup being submitted. Closing a menu
// closes the chain of parent menus up to the first non-menu popup.
func (ctx *Context) CloseCurrentPopup() {
	idx := len(ctx.beginPopups) - 1
	if idx < 0 || idx >= len(ctx.popupStack) || ctx.beginPopups[idx].popupID != ctx.popupStack[idx].popupID {
		return
	}
	for idx > 0 {
		w := ctx.popupStack[idx].window
		parent := ctx.popupStack[idx-1].window
		closeParent := false
		if w != nil && w.Flags&WindowFlagsChildMenu != 0 {
			if parent == nil || parent.Flags&WindowFlagsModal == 0 {
				closeParent = true
			}
		}
		if !closeParent {
			break
		}
		idx--
	}
	ctx.closePopupToLevel(idx, true)
	if ctx.NavWindow != nil {
		ctx.NavWindow.DC.NavHideHighlightOneFrame = true
	}
}

// ============================================================================
// Begin / End
// ============================================================================

func (ctx *Context) beginPopupEx(id ID, flags WindowFlags) bool {
	if !ctx.isPopupOpenEx(id, PopupFlagsNone) {
		ctx.NextWindowData.clearFlags()
		return false
	}
	var name string
	if flags&WindowFlagsChildMenu != 0 {
		name = fmt.Sprintf("##Menu_%02d", len(ctx.beginPopups))
	} else {
		name = fmt.Sprintf("##Popup_%08x", uint32(id))
	}
	flags |= WindowFlagsPopup
	open := ctx.Begin(name, nil, flags)
	if !open {
		ctx.EndPopup()
	}
	return open
}

// BeginPopup submits the popup strID if it is open. When it returns true
// the caller must call EndPopup.
func (ctx *Context) BeginPopup(strID string, flags WindowFlags) bool {
	if len(ctx.popupStack) <= len(ctx.beginPopups) {
		ctx.NextWindowData.clearFlags()
		return false
	}
	flags |= WindowFlagsAlwaysAutoResize | WindowFlagsNoTitleBar
	return ctx.beginPopupEx(ctx.CurrentWindow.GetID(strID), flags)
}

// BeginPopupModal submits a modal popup: it blocks interaction with the
// windows under it and dims them. A non-nil open adds a close button.
func (ctx *Context) BeginPopupModal(name string, open *bool, flags WindowFlags) bool {
	id := ctx.CurrentWindow.GetID(name)
	if !ctx.isPopupOpenEx(id, PopupFlagsNone) {
		ctx.NextWindowData.clearFlags()
		return false
	}
	if ctx.NextWindowData.flags&nextWindowHasPos == 0 {
		ctx.SetNextWindowPos(ctx.IO.DisplaySize.Mul(0.5), CondAppearing, Vec2{0.5, 0.5})
	}
	flags |= WindowFlagsPopup | WindowFlagsModal | WindowFlagsNoCollapse
	isOpen := ctx.Begin(name, open, flags)
	if !isOpen || (open != nil && !*open) {
		ctx.EndPopup()
		if isOpen {
			ctx.closePopupToLevel(len(ctx.beginPopups), true)
		}
		return false
	}
	return isOpen
}

// EndPopup closes a popup begun with BeginPopup* or BeginMenu.
func (ctx *Context) EndPopup() {
	w := ctx.CurrentWindow
	if !ctx.assert(w.Flags&WindowFlagsPopup != 0 && len(ctx.beginPopups) > 0, "EndPopup without a popup", "window", w.Name) {
		return
	}
	ctx.End()
}

// OpenPopupOnItemClick opens strID (or the last item's id when empty)
// when the last item is released over with the flags' mouse button
// (right by default).
func (ctx *Context) OpenPopupOnItemClick(strID string, flags PopupFlags) {
	w := ctx.CurrentWindow
	button := flags.mouseButton()
	if ctx.IsMouseReleased(button) && ctx.IsItemHovered(HoveredFlagsAllowWhenBlockedByPopup) {
		id := w.DC.LastItemID
		if strID != "" {
			id = w.GetID(strID)
		}
		ctx.openPopupEx(id, flags)
	}
}

// BeginPopupContextItem opens and begins a popup attached to the last item,
// by default on right click.
func (ctx *Context) BeginPopupContextItem(strID string, flags PopupFlags) bool {
	w := ctx.CurrentWindow
	if w.SkipItems {
		return false
	}
	id := w.DC.LastItemID
	if strID != "" {
		id = w.GetID(strID)
	}
	if !ctx.assert(id != 0, "BeginPopupContextItem on an item without id") {
		return false
	}
	if ctx.IsMouseReleased(flags.mouseButton()) && ctx.IsItemHovered(HoveredFlagsAllowWhenBlockedByPopup) {
		ctx.openPopupEx(id, flags)
	}
	return ctx.beginPopupEx(id, WindowFlagsAlwaysAutoResize|WindowFlagsNoTitleBar)
}

// BeginPopupContextWindow opens and begins a popup on a click over the
// current window.
func (ctx *Context) BeginPopupContextWindow(strID string, flags PopupFlags) bool {
	w := ctx.CurrentWindow
	if strID == "" {
		strID = "window_context"
	}
	id := w.GetID(strID)
	if ctx.IsMouseReleased(flags.mouseButton()) && ctx.IsWindowHovered(HoveredFlagsAllowWhenBlockedByPopup) {
		if flags&PopupFlagsNoOpenOverItems == 0 || !ctx.IsAnyItemHovered() {
			ctx.openPopupEx(id, flags)
		}
	}
	return ctx.beginPopupEx(id, WindowFlagsAlwaysAutoResize|WindowFlagsNoTitleBar)
}

// renderDimmedBackground darkens everything behind the top-most modal.
func (ctx *Context) renderDimmedBackground(w *Window) {
	if w.Flags&WindowFlagsModal == 0 || w != ctx.topMostPopupModal() {
		return
	}
	w.DrawList.AddRectFilled(Vec2{}, ctx.IO.DisplaySize, ctx.GetColorU32(ColModalWindowDimBg, 1), 0, DrawCornerNone)
}

// ============================================================================
// Tooltips
// ============================================================================

func (ctx *Context) beginTooltipEx(extra WindowFlags, tf tooltipFlags) {
	name := fmt.Sprintf("##Tooltip_%02d", ctx.TooltipOverrideCount)
	if tf&tooltipFlagsOverridePrevious != 0 {
		if w := ctx.FindWindowByName(name); w != nil && w.Active {
			// Hide the previous tooltip and open a fresh one.
			w.Hidden = true
			w.HiddenFramesCanSkipItems = 1
			ctx.TooltipOverrideCount++
			name = fmt.Sprintf("##Tooltip_%02d", ctx.TooltipOverrideCount)
		}
	}
	flags := WindowFlagsTooltip | WindowFlagsNoInputs | WindowFlagsNoTitleBar | WindowFlagsNoMove |
		WindowFlagsNoResize | WindowFlagsAlwaysAutoResize
	ctx.Begin(name, nil, flags|extra)
}

// BeginTooltip starts a tooltip window next to the mouse. Tooltips hide
// one frame after they stop being submitted.
func (ctx *Context) BeginTooltip() {
	ctx.beginTooltipEx(WindowFlagsNone, 0)
}

// EndTooltip closes BeginTooltip.
func (ctx *Context) EndTooltip() {
	if !ctx.assert(ctx.CurrentWindow.Flags&WindowFlagsTooltip != 0, "EndTooltip without BeginTooltip") {
		return
	}
	ctx.End()
}

// SetTooltip shows a text tooltip, replacing any tooltip submitted
// earlier this frame.
func (ctx *Context) SetTooltip(format string, args ...any) {
	ctx.beginTooltipEx(WindowFlagsNone, tooltipFlagsOverridePrevious)
	ctx.Text(format, args...)
	ctx.EndTooltip()
}

// ============================================================================
// Popup placement
// ============================================================================

type popupPositionPolicy int

const (
	popupPositionDefault popupPositionPolicy = iota
	popupPositionComboBox
)

// windowAllowedExtentRect is the area popups may occupy: the display minus
// the safe area padding.
func (ctx *Context) windowAllowedExtentRect() Rect {
	pad := ctx.Style.DisplaySafeAreaPadding
	r := R(0, 0, ctx.IO.DisplaySize.X, ctx.IO.DisplaySize.Y)
	if r.Width() > pad.X*2 {
		r.Min.X += pad.X
		r.Max.X -= pad.X
	}
	if r.Height() > pad.Y*2 {
		r.Min.Y += pad.Y
		r.Max.Y -= pad.Y
	}
	return r
}

// findBestWindowPosForPopupEx places a window of size next to refPos so it
// stays inside outer without covering avoid. The direction that worked last
// time, stored in *lastDir, is tried first so popups do not jump around.
func findBestWindowPosForPopupEx(refPos, size Vec2, lastDir *Dir, outer, avoid Rect, policy popupPositionPolicy) Vec2 {
	basePos := refPos

	if policy == popupPositionComboBox {
		order := [...]Dir{DirDown, DirRight, DirLeft, DirUp}
		for n := -1; n < len(order); n++ {
			var dir Dir
			if n == -1 {
				dir = *lastDir
				if dir == DirNone {
					continue
				}
			} else {
				dir = order[n]
				if dir == *lastDir {
					continue
				}
			}
			var pos Vec2
			switch dir {
			case DirDown:
				pos = Vec2{avoid.Min.X, avoid.Max.Y} // below, toward right
			case DirRight:
				pos = Vec2{avoid.Min.X, avoid.Min.Y - size.Y} // above, toward right
			case DirLeft:
				pos = Vec2{avoid.Max.X - size.X, avoid.Max.Y} // below, toward left
			case DirUp:
				pos = Vec2{avoid.Max.X - size.X, avoid.Min.Y - size.Y} // above, toward left
			}
			if !outer.ContainsRect(RectFromSize(pos, size)) {
				continue
			}
			*lastDir = dir
			return pos
		}
	}

	order := [...]Dir{DirRight, DirDown, DirUp, DirLeft}
	for n := -1; n < len(order); n++ {
		var dir Dir
		if n == -1 {
			dir = *lastDir
			if dir == DirNone {
				continue
			}
		} else {
			dir = order[n]
			if dir == *lastDir {
				continue
			}
		}

		var availW, availH float32
		switch dir {
		case DirLeft:
			availW = avoid.Min.X - outer.Min.X
		case DirRight:
			availW = outer.Max.X - avoid.Max.X
		default:
			availW = outer.Width()
		}
		switch dir {
		case DirUp:
			availH = avoid.Min.Y - outer.Min.Y
		case DirDown:
			availH = outer.Max.Y - avoid.Max.Y
		default:
			availH = outer.Height()
		}
		if availW < size.X || availH < size.Y {
			continue
		}

		pos := basePos
		switch dir {
		case DirLeft:
			pos.X = avoid.Min.X - size.X
		case DirRight:
			pos.X = avoid.Max.X
		case DirUp:
			pos.Y = avoid.Min.Y - size.Y
		case DirDown:
			pos.Y = avoid.Max.Y
		}
		pos.X = maxf(minf(pos.X+size.X, outer.Max.X)-size.X, outer.Min.X)
		pos.Y = maxf(minf(pos.Y+size.Y, outer.Max.Y)-size.Y, outer.Min.Y)
		*lastDir = dir
		return pos
	}

	// Nothing fits: keep the window inside outer.
	*lastDir = DirNone
	pos := basePos
	pos.X = maxf(minf(pos.X+size.X, outer.Max.X)-size.X, outer.Min.X)
	pos.Y = maxf(minf(pos.Y+size.Y, outer.Max.Y)-size.Y, outer.Min.Y)
	return pos
}
