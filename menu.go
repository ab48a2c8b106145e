package anchor

import "slices"

// menuColumns lines up the label, shortcut and check mark columns of a
// menu. Widths declared this frame take effect on the next one.
type menuColumns struct {
	spacing    float32
	width      float32
	nextWidth  float32
	pos        [3]float32
	nextWidths [3]float32
}

func (m *menuColumns) update(spacing float32, clear bool) {
	m.width, m.nextWidth = 0, 0
	m.spacing = spacing
	if clear {
		m.nextWidths = [3]float32{}
	}
	for i := range m.pos {
		if i > 0 && m.nextWidths[i] > 0 {
			m.width += m.spacing
		}
		m.pos[i] = floorf(m.width)
		m.width += m.nextWidths[i]
		m.nextWidths[i] = 0
	}
}

// declColumns records the widths one entry needs and returns the width of
// the widest entry so far.
func (m *menuColumns) declColumns(w0, w1, w2 float32) float32 {
	m.nextWidth = 0
	m.nextWidths[0] = maxf(m.nextWidths[0], w0)
	m.nextWidths[1] = maxf(m.nextWidths[1], w1)
	m.nextWidths[2] = maxf(m.nextWidths[2], w2)
	for i, w := range m.nextWidths {
		m.nextWidth += w
		if i > 0 && w > 0 {
			m.nextWidth += m.spacing
		}
	}
	return maxf(m.width, m.nextWidth)
}

// ============================================================================
// Menu bars
// ============================================================================

// BeginMenuBar appends to the menu bar of the current window, which needs
// WindowFlagsMenuBar. When it returns true the caller must call EndMenuBar.
func (ctx *Context) BeginMenuBar() bool {
	w := ctx.CurrentWindow
	if w.SkipItems || w.Flags&WindowFlagsMenuBar == 0 {
		return false
	}
	if !ctx.assert(!w.DC.MenuBarAppending, "BeginMenuBar: already appending", "window", w.Name) {
		return false
	}
	ctx.BeginGroup()
	ctx.PushID("##menubar")

	// Clip to the bar minus one rounding so long menus stay off the
	// rounded corner.
	bar := w.MenuBarRect(ctx)
	clip := R(
		roundf(bar.Min.X+w.WindowBorderSize),
		roundf(bar.Min.Y+w.WindowBorderSize),
		roundf(maxf(bar.Min.X, bar.Max.X-maxf(w.WindowRounding, w.WindowBorderSize))),
		roundf(bar.Max.Y),
	).ClipWith(w.OuterRectClipped)
	ctx.PushClipRect(clip.Min, clip.Max, false)

	w.DC.CursorPos = Vec2{bar.Min.X + w.DC.MenuBarOffset.X, bar.Min.Y + w.DC.MenuBarOffset.Y}
	w.DC.LayoutType = LayoutHorizontal
	w.DC.NavLayerCurrent = NavLayerMenu
	w.DC.MenuBarAppending = true
	ctx.AlignTextToFramePadding()
	return true
}

// EndMenuBar closes BeginMenuBar.
func (ctx *Context) EndMenuBar() {
	w := ctx.CurrentWindow
	if w.SkipItems {
		return
	}
	if !ctx.assert(w.Flags&WindowFlagsMenuBar != 0 && w.DC.MenuBarAppending, "EndMenuBar without BeginMenuBar", "window", w.Name) {
		return
	}
	ctx.PopClipRect()
	ctx.PopID()
	// The next append continues where this one stopped.
	w.DC.MenuBarOffset.X = w.DC.CursorPos.X - w.MenuBarRect(ctx).Min.X
	if n := len(ctx.groupStack); n > 0 {
		ctx.groupStack[n-1].emitItem = false
	}
	ctx.EndGroup()
	w.DC.LayoutType = LayoutVertical
	w.DC.NavLayerCurrent = NavLayerMain
	w.DC.MenuBarAppending = false
}

// BeginMainMenuBar opens a menu bar across the top of the display. When it
// returns true the caller must call EndMainMenuBar.
func (ctx *Context) BeginMainMenuBar() bool {
	st := &ctx.Style
	nw := &ctx.NextWindowData
	nw.MenuBarOffsetMinVal = Vec2{st.DisplaySafeAreaPadding.X, maxf(st.DisplaySafeAreaPadding.Y-st.FramePadding.Y, 0)}
	ctx.SetNextWindowPos(Vec2{}, CondAlways, Vec2{})
	ctx.SetNextWindowSize(Vec2{ctx.IO.DisplaySize.X, nw.MenuBarOffsetMinVal.Y + ctx.FontSize + st.FramePadding.Y}, CondAlways)
	ctx.PushStyleVar(StyleVarWindowRounding, 0)
	ctx.PushStyleVarVec2(StyleVarWindowMinSize, Vec2{})
	flags := WindowFlagsNoTitleBar | WindowFlagsNoResize | WindowFlagsNoMove | WindowFlagsNoScrollbar | WindowFlagsMenuBar
	open := ctx.Begin("##MainMenuBar", nil, flags) && ctx.BeginMenuBar()
	ctx.PopStyleVar(2)
	nw.MenuBarOffsetMinVal = Vec2{}
	if !open {
		ctx.End()
		return false
	}
	return true
}

// EndMainMenuBar closes BeginMainMenuBar.
func (ctx *Context) EndMainMenuBar() {
	ctx.EndMenuBar()
	// Once the menus close, focus goes back to the window underneath.
	if ctx.CurrentWindow == ctx.NavWindow && len(ctx.popupStack) == 0 && ctx.nav.moveDir == DirNone {
		ctx.focusTopMostWindowUnderOne(ctx.NavWindow, nil)
	}
	ctx.End()
}

// ============================================================================
// Menus
// ============================================================================

// BeginMenu draws a menu entry that opens a sub-menu when clicked in a
// menu bar, or hovered in another menu. When it returns true the caller
// submits the entries and must call EndMenu. A disabled menu is greyed
// out and closes if it was open.
func (ctx *Context) BeginMenu(label string, enabled bool) bool {
	w := ctx.CurrentWindow
	if w.SkipItems {
		return false
	}
	st := &ctx.Style
	id := w.GetID(label)
	menuIsOpen := ctx.isPopupOpenEx(id, PopupFlagsNone)

	// Sub-menus are child windows so the mouse can hover back over the
	// parent menu.
	flags := WindowFlagsChildMenu | WindowFlagsAlwaysAutoResize | WindowFlagsNoMove | WindowFlagsNoTitleBar | WindowFlagsNoNavFocus
	if w.Flags&(WindowFlagsPopup|WindowFlagsChildMenu) != 0 {
		flags |= WindowFlagsChildWindow
	}

	// A second BeginMenu with the same ID appends to the first.
	if slices.Contains(ctx.menusIDSubmittedThisFrame, id) {
		if menuIsOpen {
			return ctx.beginPopupEx(id, flags)
		}
		ctx.NextWindowData.clearFlags()
		return false
	}
	ctx.menusIDSubmittedThisFrame = append(ctx.menusIDSubmittedThisFrame, id)

	labelSize := ctx.CalcTextSize(label, true, 0)
	level := len(ctx.beginPopups)
	menusetIsOpen := w.Flags&WindowFlagsPopup == 0 && len(ctx.popupStack) > level &&
		ctx.popupStack[level].openParentID == w.IDStack[len(w.IDStack)-1]
	backedNavWindow := ctx.NavWindow
	if menusetIsOpen {
		// Lets the mouse hover across the menus of one menu set.
		ctx.NavWindow = w
	}

	// Begin moves ChildMenu popups next to this entry; popupPos is only
	// the reference point.
	selFlags := selectableFlagsNoHoldingActiveID | selectableFlagsSelectOnClick | SelectableFlagsDontClosePopups
	if !enabled {
		selFlags |= SelectableFlagsDisabled
	}
	var popupPos Vec2
	var pressed bool
	pos := w.DC.CursorPos
	if w.DC.LayoutType == LayoutHorizontal {
		// Selectables pad their highlight by half the item spacing.
		popupPos = Vec2{pos.X - 1 - floorf(st.ItemSpacing.X*0.5), pos.Y - st.FramePadding.Y + w.menuBarHeight(ctx)}
		w.DC.CursorPos.X += floorf(st.ItemSpacing.X * 0.5)
		ctx.PushStyleVarVec2(StyleVarItemSpacing, Vec2{st.ItemSpacing.X * 2, st.ItemSpacing.Y})
		pressed = ctx.SelectableEx(label, menuIsOpen, selFlags, Vec2{labelSize.X, 0})
		ctx.PopStyleVar(1)
		// Undo the spacing SameLine added inside Selectable.
		w.DC.CursorPos.X += floorf(st.ItemSpacing.X * (-1 + 0.5))
	} else {
		popupPos = Vec2{pos.X, pos.Y - st.WindowPadding.Y}
		minW := w.DC.MenuColumns.declColumns(labelSize.X, 0, floorf(ctx.FontSize*1.20))
		extraW := maxf(0, ctx.GetContentRegionAvail().X-minW)
		pressed = ctx.SelectableEx(label, menuIsOpen, selFlags|selectableFlagsSpanAvailWidth, Vec2{minW, 0})
		textCol := ctx.GetColorU32(ColText, 1)
		if !enabled {
			textCol = ctx.GetColorU32(ColTextDisabled, 1)
		}
		RenderArrow(w.DrawList, pos.Add(Vec2{w.DC.MenuColumns.pos[2] + extraW + ctx.FontSize*0.30, 0}), textCol, DirRight, ctx.FontSize, 1)
	}

	hovered := enabled && ctx.ItemHoverable(w.DC.LastItemRect, id)
	if menusetIsOpen {
		ctx.NavWindow = backedNavWindow
	}

	wantOpen, wantClose := false, false
	if w.DC.LayoutType == LayoutVertical {
		// Keep the child menu open while the mouse heads toward it.
		movingTowardChild := false
		var childMenu *Window
		if level < len(ctx.popupStack) && ctx.popupStack[level].sourceWindow == w {
			childMenu = ctx.popupStack[level].window
		}
		if ctx.HoveredWindow == w && childMenu != nil && w.Flags&WindowFlagsMenuBar == 0 {
			next := childMenu.Rect()
			ta := ctx.IO.MousePos.Sub(ctx.IO.MouseDelta)
			tb, tc := Vec2{next.Max.X, next.Min.Y}, next.Max
			if w.Pos.X < childMenu.Pos.X {
				tb, tc = next.Min, Vec2{next.Min.X, next.Max.Y}
			}
			extra := clampf(absf(ta.X-tb.X)*0.30, 5, 30)
			if w.Pos.X < childMenu.Pos.X {
				ta.X -= 0.5
			} else {
				ta.X += 0.5
			}
			// The triangle is capped so large sub-menus do not bias it.
			tb.Y = ta.Y + maxf(tb.Y-extra-ta.Y, -100)
			tc.Y = ta.Y + minf(tc.Y+extra-ta.Y, 100)
			movingTowardChild = triangleContainsPoint(ta, tb, tc, ctx.IO.MousePos)
		}
		if menuIsOpen && !hovered && ctx.HoveredWindow == w && ctx.HoveredIDPreviousFrame != 0 && ctx.HoveredIDPreviousFrame != id && !movingTowardChild {
			wantClose = true
		}
		if !menuIsOpen && hovered && (pressed || !movingTowardChild) {
			wantOpen = true
		}
		if ctx.NavActivateID == id {
			wantClose = menuIsOpen
			wantOpen = !menuIsOpen
		}
		if ctx.navMovedFrom(id, DirRight) {
			wantOpen = true
			ctx.navMoveRequestCancel()
		}
	} else {
		switch {
		case menuIsOpen && pressed && menusetIsOpen:
			// Clicking an open menu again closes it.
			wantClose = true
			wantOpen, menuIsOpen = false, false
		case pressed || (hovered && menusetIsOpen && !menuIsOpen):
			// The first click opens; hovering then switches between menus.
			wantOpen = true
		case ctx.navMovedFrom(id, DirDown):
			wantOpen = true
			ctx.navMoveRequestCancel()
		}
	}

	if !enabled {
		wantClose = true
	}
	if wantClose && ctx.isPopupOpenEx(id, PopupFlagsNone) {
		ctx.closePopupToLevel(level, true)
	}

	if !menuIsOpen && wantOpen && len(ctx.popupStack) > level {
		// Another menu of this level is open: close it and open this one
		// next frame.
		ctx.openPopupEx(id, PopupFlagsNone)
		return false
	}
	menuIsOpen = menuIsOpen || wantOpen
	if wantOpen {
		ctx.openPopupEx(id, PopupFlagsNone)
	}
	if !menuIsOpen {
		ctx.NextWindowData.clearFlags()
		return false
	}
	ctx.SetNextWindowPos(popupPos, CondAlways, Vec2{})
	return ctx.beginPopupEx(id, flags)
}

// EndMenu closes BeginMenu.
func (ctx *Context) EndMenu() {
	w := ctx.CurrentWindow
	// Left from inside a child menu closes it.
	if nw := ctx.NavWindow; nw != nil && nw.ParentWindow == w && ctx.nav.moveDir == DirLeft && ctx.nav.justMovedToID == 0 && w.DC.LayoutType == LayoutVertical {
		ctx.closePopupToLevel(len(ctx.beginPopups), true)
		ctx.navMoveRequestCancel()
	}
	ctx.EndPopup()
}

// MenuItem draws a menu entry and returns true when it is activated.
// shortcut is only displayed; handle the keys yourself. selected draws a
// check mark.
func (ctx *Context) MenuItem(label, shortcut string, selected, enabled bool) bool {
	w := ctx.CurrentWindow
	if w.SkipItems {
		return false
	}
	st := &ctx.Style
	pos := w.DC.CursorPos
	labelSize := ctx.CalcTextSize(label, true, 0)

	flags := selectableFlagsSelectOnRelease | selectableFlagsSetNavIDOnHover
	if !enabled {
		flags |= SelectableFlagsDisabled
	}
	var pressed bool
	if w.DC.LayoutType == LayoutHorizontal {
		// Same spacing as BeginMenu in a menu bar; no shortcut or check mark.
		w.DC.CursorPos.X += floorf(st.ItemSpacing.X * 0.5)
		ctx.PushStyleVarVec2(StyleVarItemSpacing, Vec2{st.ItemSpacing.X * 2, st.ItemSpacing.Y})
		pressed = ctx.SelectableEx(label, false, flags, Vec2{labelSize.X, 0})
		ctx.PopStyleVar(1)
		w.DC.CursorPos.X += floorf(st.ItemSpacing.X * (-1 + 0.5))
		return pressed
	}

	var shortcutW float32
	if shortcut != "" {
		shortcutW = ctx.CalcTextSize(shortcut, false, 0).X
	}
	minW := w.DC.MenuColumns.declColumns(labelSize.X, shortcutW, floorf(ctx.FontSize*1.20))
	extraW := maxf(0, ctx.GetContentRegionAvail().X-minW)
	pressed = ctx.SelectableEx(label, false, flags|selectableFlagsSpanAvailWidth, Vec2{minW, 0})
	if shortcutW > 0 {
		ctx.PushStyleColor(ColText, st.Colors[ColTextDisabled])
		ctx.RenderText(pos.Add(Vec2{w.DC.MenuColumns.pos[1] + extraW, 0}), shortcut, false)
		ctx.PopStyleColor(1)
	}
	if selected {
		col := ctx.GetColorU32(ColText, 1)
		if !enabled {
			col = ctx.GetColorU32(ColTextDisabled, 1)
		}
		RenderCheckMark(w.DrawList, pos.Add(Vec2{w.DC.MenuColumns.pos[2] + extraW + ctx.FontSize*0.40, ctx.FontSize * 0.134 * 0.5}), col, ctx.FontSize*0.866)
	}
	return pressed
}

// MenuItemToggle is MenuItem that flips *selected when activated.
func (ctx *Context) MenuItemToggle(label, shortcut string, selected *bool, enabled bool) bool {
	if ctx.MenuItem(label, shortcut, *selected, enabled) {
		*selected = !*selected
		return true
	}
	return false
}
