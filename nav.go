package anchor

import "math"

// noFocusCounter marks an unset tab or focus counter.
const noFocusCounter = math.MaxInt32

// navItem is one item submitted with an id, kept for keyboard navigation.
type navItem struct {
	ID     ID
	Window *Window
	Rect   Rect
	Layer  NavLayer
}

// navState is the keyboard navigation and Tab focus state of a Context.
//
// Items are double-buffered: arrow navigation runs in NewFrame, before any
// widget of the new frame exists, so it walks the previous frame's items
// while the current frame's registrations build up in the other buffer.
type navState struct {
	prevItems []navItem
	items     []navItem

	window        *Window
	justTabbedID  ID
	justMovedToID ID
	initRequest   bool
	moveDir       Dir
	moveFromID    ID // NavID before this frame's arrow move

	// Tab focus requests
	tabPressed              bool
	idTabCounter            int
	focusCurrWindow         *Window
	focusCurrCounterRegular int
	focusCurrCounterTabStop int
	focusNextWindow         *Window
	focusNextCounterRegular int
	focusNextCounterTabStop int

	// Keys claimed by the active widget
	activeIDUsingNavCancel bool
	activeIDUsingNavArrows bool
	activeIDUsingTabInput  bool
}

func (n *navState) init() {
	n.prevItems = make([]navItem, 0, 64)
	n.items = make([]navItem, 0, 64)
	n.moveDir = DirNone
	n.idTabCounter = noFocusCounter
	n.focusCurrCounterRegular, n.focusCurrCounterTabStop = noFocusCounter, noFocusCounter
	n.focusNextCounterRegular, n.focusNextCounterTabStop = noFocusCounter, noFocusCounter
}

// swap makes this frame's registrations the navigation source.
func (n *navState) swap() {
	n.prevItems, n.items = n.items, n.prevItems
	n.items = n.items[:0]
}

// forget drops references to windows that were garbage collected.
func (n *navState) forget(w *Window) {
	if n.window == w {
		n.window = nil
	}
	if n.focusCurrWindow == w {
		n.focusCurrWindow = nil
	}
	if n.focusNextWindow == w {
		n.focusNextWindow = nil
	}
	keep := n.prevItems[:0]
	for _, it := range n.prevItems {
		if it.Window != w {
			keep = append(keep, it)
		}
	}
	n.prevItems = keep
}

func modPositive(a, b int) int { return (a%b + b) % b }

// navProcessItem records an item for navigation and resolves pending
// initial-focus requests against it.
func (ctx *Context) navProcessItem(w *Window, bb Rect, id ID) {
	if w.DC.ItemFlags&(ItemFlagsNoNav|ItemFlagsDisabled) != 0 {
		return
	}
	n := &ctx.nav
	n.items = append(n.items, navItem{ID: id, Window: w, Rect: bb, Layer: w.DC.NavLayerCurrent})
	if n.initRequest && ctx.NavWindow == w && w.DC.NavLayerCurrent == NavLayerMain && w.DC.ItemFlags&ItemFlagsNoNavDefaultFocus == 0 {
		n.initRequest = false
		ctx.NavID = id
		n.justMovedToID = id
	}
}

// navUpdate consumes keyboard navigation input at the start of a frame.
func (ctx *Context) navUpdate() {
	io := &ctx.IO
	n := &ctx.nav
	n.swap()

	ctx.NavActivateID, ctx.NavActivateDownID, ctx.NavActivatePressedID, ctx.NavInputID = 0, 0, 0, 0
	n.justTabbedID, n.justMovedToID = 0, 0
	n.moveDir, n.moveFromID = DirNone, 0
	ctx.FocusID = 0
	if io.MouseDelta.LengthSqr() > 0 {
		ctx.NavDisableMouseHover = false
	}

	ctx.updateTabFocus()

	nw := ctx.NavWindow
	if nw == nil || !nw.WasActive && !nw.Active || nw.Flags&WindowFlagsNoNavInputs != 0 {
		return
	}

	// Cancel
	if ctx.IsKeyPressed(KeyEscape, false) {
		if ctx.ActiveID != 0 {
			if !n.activeIDUsingNavCancel {
				ctx.ClearActiveID()
			}
		} else if n := len(ctx.popupStack); n > 0 {
			if top := ctx.popupStack[n-1].window; top == nil || top.Flags&WindowFlagsModal == 0 {
				ctx.closePopupToLevel(n-1, true)
			}
		} else if ctx.NavID != 0 {
			ctx.NavID = 0
			ctx.NavDisableHighlight = true
		}
	}

	// Activate
	if ctx.NavID != 0 && !ctx.NavDisableHighlight && !io.KeyCtrl && !io.KeyAlt {
		activateDown := ctx.IsKeyDown(KeySpace) || ctx.IsKeyDown(KeyEnter) || ctx.IsKeyDown(KeyKeyPadEnter)
		activatePressed := activateDown && (ctx.IsKeyPressed(KeySpace, false) || ctx.IsKeyPressed(KeyEnter, false) || ctx.IsKeyPressed(KeyKeyPadEnter, false))
		inputPressed := ctx.IsKeyPressed(KeyEnter, false) || ctx.IsKeyPressed(KeyKeyPadEnter, false)
		if ctx.ActiveID == 0 || ctx.ActiveID == ctx.NavID {
			if activatePressed {
				ctx.NavActivateID = ctx.NavID
			}
			if activateDown {
				ctx.NavActivateDownID = ctx.NavID
			}
			if activatePressed {
				ctx.NavActivatePressedID = ctx.NavID
			}
			if inputPressed {
				ctx.NavInputID = ctx.NavID
			}
		}
	} else if ctx.NavID != 0 && ctx.NavDisableHighlight && (ctx.IsKeyPressed(KeySpace, false) || ctx.IsKeyPressed(KeyEnter, false)) && ctx.ActiveID == 0 {
		// The first key press after mouse use only reveals the highlight.
		ctx.NavDisableHighlight = false
	}

	// Move
	if ctx.ActiveID != 0 && n.activeIDUsingNavArrows {
		return
	}
	if ctx.ActiveID != 0 && ctx.ActiveIDSource != InputSourceNav {
		return
	}
	switch {
	case ctx.IsKeyPressed(KeyLeft, true):
		n.moveDir = DirLeft
	case ctx.IsKeyPressed(KeyRight, true):
		n.moveDir = DirRight
	case ctx.IsKeyPressed(KeyUp, true):
		n.moveDir = DirUp
	case ctx.IsKeyPressed(KeyDown, true):
		n.moveDir = DirDown
	}
	if n.moveDir == DirNone || ctx.ActiveID != 0 {
		return
	}
	n.moveFromID = ctx.NavID
	if ctx.NavID == 0 {
		n.initRequest = true
		ctx.NavDisableHighlight = false
		ctx.NavDisableMouseHover = true
		if first := ctx.navFirstItem(nw); first != nil {
			ctx.navMoveTo(first)
		}
		return
	}
	if ctx.NavDisableHighlight {
		ctx.NavDisableHighlight = false
		ctx.NavDisableMouseHover = true
		return
	}
	if target := ctx.navFindNearest(nw, n.moveDir); target != nil {
		ctx.navMoveTo(target)
	}
}

func (ctx *Context) navIsCandidate(nw *Window, it *navItem) bool {
	if it.Window == nil || it.Window.RootWindowForNav != nw.RootWindowForNav {
		return false
	}
	return it.Window.Active || it.Window.WasActive
}

func (ctx *Context) navFirstItem(nw *Window) *navItem {
	for i := range ctx.nav.prevItems {
		it := &ctx.nav.prevItems[i]
		if ctx.navIsCandidate(nw, it) && it.Layer == NavLayerMain {
			return it
		}
	}
	return nil
}

// navFindNearest returns the closest item in dir from the nav item,
// weighting the cross axis twice.
func (ctx *Context) navFindNearest(nw *Window, dir Dir) *navItem {
	var cur *navItem
	for i := range ctx.nav.prevItems {
		if ctx.nav.prevItems[i].ID == ctx.NavID {
			cur = &ctx.nav.prevItems[i]
			break
		}
	}
	if cur == nil {
		return ctx.navFirstItem(nw)
	}
	c := cur.Rect.Center()
	var best *navItem
	bestDist := floatMax
	for i := range ctx.nav.prevItems {
		it := &ctx.nav.prevItems[i]
		if it.ID == cur.ID || it.Layer != cur.Layer || !ctx.navIsCandidate(nw, it) {
			continue
		}
		p := it.Rect.Center()
		var along, across float32
		switch dir {
		case DirLeft:
			along, across = c.X-p.X, absf(p.Y-c.Y)
		case DirRight:
			along, across = p.X-c.X, absf(p.Y-c.Y)
		case DirUp:
			along, across = c.Y-p.Y, absf(p.X-c.X)
		case DirDown:
			along, across = p.Y-c.Y, absf(p.X-c.X)
		}
		if along <= 0 {
			continue
		}
		if d := along + across*2; d < bestDist {
			bestDist = d
			best = it
		}
	}
	return best
}

// navMovedFrom reports whether this frame's arrow move in direction dir
// left item id of the current window.
func (ctx *Context) navMovedFrom(id ID, dir Dir) bool {
	n := &ctx.nav
	return n.moveDir == dir && n.moveFromID == id && id != 0 && ctx.NavWindow == ctx.CurrentWindow
}

// navMoveRequestCancel puts nav back on the item the arrow move left.
func (ctx *Context) navMoveRequestCancel() {
	n := &ctx.nav
	if n.moveFromID != 0 {
		ctx.NavID = n.moveFromID
	}
	n.justMovedToID = 0
	n.moveDir = DirNone
}

// navSetID moves nav to id without scrolling.
func (ctx *Context) navSetID(id ID) {
	ctx.NavID = id
	ctx.nav.justMovedToID = id
	ctx.NavDisableHighlight = false
}

func (ctx *Context) navMoveTo(it *navItem) {
	ctx.NavID = it.ID
	ctx.nav.justMovedToID = it.ID
	ctx.nav.initRequest = false
	ctx.NavDisableHighlight = false
	ctx.NavDisableMouseHover = true
	if it.Window != nil {
		ctx.scrollToBringRectIntoView(it.Window, it.Rect)
	}
	ctx.Logger.Debug("nav move", "id", it.ID, "window", windowName(it.Window))
}

// updateTabFocus turns Tab presses and SetKeyboardFocusHere calls into a
// focus request for this frame.
func (ctx *Context) updateTabFocus() {
	n := &ctx.nav
	nw := ctx.NavWindow
	n.tabPressed = nw != nil && nw.Active && nw.Flags&WindowFlagsNoNavInputs == 0 && !ctx.IO.KeyCtrl && ctx.IsKeyPressed(KeyTab, true)
	if ctx.ActiveID == 0 && n.tabPressed {
		n.focusNextWindow = nw
		n.focusNextCounterRegular = noFocusCounter
		switch {
		case ctx.NavID != 0 && n.idTabCounter != noFocusCounter:
			step := 1
			if ctx.IO.KeyShift {
				step = -1
			}
			n.focusNextCounterTabStop = n.idTabCounter + 1 + step
		case ctx.IO.KeyShift:
			n.focusNextCounterTabStop = -1
		default:
			n.focusNextCounterTabStop = 0
		}
	}

	n.focusCurrWindow = nil
	n.focusCurrCounterRegular, n.focusCurrCounterTabStop = noFocusCounter, noFocusCounter
	if w := n.focusNextWindow; w != nil {
		n.focusCurrWindow = w
		if n.focusNextCounterRegular != noFocusCounter && w.DC.FocusCounterRegular != -1 {
			n.focusCurrCounterRegular = modPositive(n.focusNextCounterRegular, w.DC.FocusCounterRegular+1)
		}
		if n.focusNextCounterTabStop != noFocusCounter && w.DC.FocusCounterTabStop != -1 {
			n.focusCurrCounterTabStop = modPositive(n.focusNextCounterTabStop, w.DC.FocusCounterTabStop+1)
		}
		n.focusNextWindow = nil
		n.focusNextCounterRegular, n.focusNextCounterTabStop = noFocusCounter, noFocusCounter
	}
	n.idTabCounter = noFocusCounter
}

// focusableItemRegister counts id as a focus target and reports whether a
// Tab press or SetKeyboardFocusHere asks it to take keyboard focus now.
func (ctx *Context) focusableItemRegister(w *Window, id ID) bool {
	n := &ctx.nav
	isTabStop := w.DC.ItemFlags&(ItemFlagsNoTabStop|ItemFlagsDisabled) == 0
	w.DC.FocusCounterRegular++
	if isTabStop {
		w.DC.FocusCounterTabStop++
		if ctx.NavID == id {
			n.idTabCounter = w.DC.FocusCounterTabStop
		}
	}

	// Tab out of the active item.
	if ctx.ActiveID == id && n.tabPressed && !n.activeIDUsingTabInput && n.focusNextWindow == nil {
		n.focusNextWindow = w
		switch {
		case !ctx.IO.KeyShift:
			n.focusNextCounterTabStop = w.DC.FocusCounterTabStop + 1
		case isTabStop:
			n.focusNextCounterTabStop = w.DC.FocusCounterTabStop - 1
		default:
			n.focusNextCounterTabStop = w.DC.FocusCounterTabStop
		}
	}

	if n.focusCurrWindow == w {
		if w.DC.FocusCounterRegular == n.focusCurrCounterRegular {
			ctx.FocusID = id
			return true
		}
		if isTabStop && w.DC.FocusCounterTabStop == n.focusCurrCounterTabStop {
			n.justTabbedID = id
			ctx.FocusID = id
			w.DC.LastItemStatusFlags |= ItemStatusFocusedByTabbing
			return true
		}
		if ctx.NavID == id {
			ctx.NavID = 0
		}
	}
	return false
}

// focusableItemUnregister undoes the count of a widget that turned out not
// to take focus.
func (ctx *Context) focusableItemUnregister(w *Window) {
	w.DC.FocusCounterRegular--
	w.DC.FocusCounterTabStop--
}

// SetKeyboardFocusHere gives keyboard focus to the next focusable item
// (offset 0) or a later one, starting next frame.
func (ctx *Context) SetKeyboardFocusHere(offset int) {
	w := ctx.CurrentWindow
	if !ctx.assert(offset >= -1, "SetKeyboardFocusHere: offset must be >= -1", "offset", offset) {
		offset = 0
	}
	n := &ctx.nav
	n.focusNextWindow = w
	n.focusNextCounterRegular = w.DC.FocusCounterRegular + 1 + offset
	n.focusNextCounterTabStop = noFocusCounter
}

// navInputAmount2d returns the arrow key delta for this frame, in repeats,
// scaled by slow (Ctrl) or fast (Shift).
func (ctx *Context) navInputAmount2d(slow, fast float32) Vec2 {
	var d Vec2
	rep := func(k Key) float32 {
		t := ctx.IO.KeysDownDuration[k]
		if t < 0 {
			return 0
		}
		if t == 0 {
			return 1
		}
		return float32(calcTypematicRepeatAmount(t-ctx.IO.DeltaTime, t, ctx.IO.KeyRepeatDelay*0.72, ctx.IO.KeyRepeatRate*0.80))
	}
	d.X = rep(KeyRight) - rep(KeyLeft)
	d.Y = rep(KeyDown) - rep(KeyUp)
	if slow != 0 && ctx.IO.KeyCtrl {
		d = d.Mul(slow)
	}
	if fast != 0 && ctx.IO.KeyShift {
		d = d.Mul(fast)
	}
	return d
}

// GetNavInputAmount2d returns the nav arrow delta used by drags and sliders:
// Ctrl slows it by 10, Shift speeds it up by 10.
func (ctx *Context) GetNavInputAmount2d() Vec2 {
	return ctx.navInputAmount2d(0.1, 10)
}

// setActiveIDUsingNav lets the active widget keep arrow keys, Escape or
// Tab from the navigation layer.
func (ctx *Context) setActiveIDUsingNav(arrows, cancel, tab bool) {
	ctx.nav.activeIDUsingNavArrows = arrows
	ctx.nav.activeIDUsingNavCancel = cancel
	ctx.nav.activeIDUsingTabInput = tab
}

// RenderNavHighlight outlines bb when id has visible nav focus.
func (ctx *Context) RenderNavHighlight(bb Rect, id ID) {
	if id != ctx.NavID || ctx.NavDisableHighlight {
		return
	}
	w := ctx.CurrentWindow
	if w.DC.NavHideHighlightOneFrame {
		return
	}
	const thickness = 2
	const distance = 3 + thickness*0.5
	r := bb.Expand(distance)
	clip := !w.ClipRect.ContainsRect(r)
	if clip {
		w.DrawList.PushClipRect(r.Min, r.Max, false)
	}
	w.DrawList.AddRect(r.Min, r.Max, ctx.GetColorU32(ColNavHighlight, 1), ctx.Style.FrameRounding, DrawCornerAll, thickness)
	if clip {
		w.DrawList.PopClipRect()
	}
}
