package anchor

// SelectableFlags configure Selectable.
type SelectableFlags int

const (
	SelectableFlagsNone             SelectableFlags = 0
	SelectableFlagsDontClosePopups  SelectableFlags = 1 << 0 // clicking does not close the parent popup
	SelectableFlagsSpanAllColumns   SelectableFlags = 1 << 1 // highlight spans every column
	SelectableFlagsAllowDoubleClick SelectableFlags = 1 << 2 // also press on double click
	SelectableFlagsDisabled         SelectableFlags = 1 << 3 // not selectable, text greyed out
	SelectableFlagsAllowItemOverlap SelectableFlags = 1 << 4 // later items may overlap

	// Internal
	selectableFlagsNoHoldingActiveID    SelectableFlags = 1 << 20
	selectableFlagsSelectOnClick        SelectableFlags = 1 << 21
	selectableFlagsSelectOnRelease      SelectableFlags = 1 << 22
	selectableFlagsSpanAvailWidth       SelectableFlags = 1 << 23
	selectableFlagsDrawHoveredWhenHeld  SelectableFlags = 1 << 24
	selectableFlagsSetNavIDOnHover      SelectableFlags = 1 << 25
	selectableFlagsNoPadWithHalfSpacing SelectableFlags = 1 << 26
)

// Selectable draws a full-width line of text that highlights when hovered
// or selected, and returns true when clicked. Inside a popup a click closes
// it unless SelectableFlagsDontClosePopups is set. Options:
// WithSelectableFlags, WithSize.
func (ctx *Context) Selectable(label string, selected bool, opts ...Option) bool {
	o := applyOptions(opts)
	return ctx.SelectableEx(label, selected, GetOpt(o, OptSelectableFlags), GetOpt(o, OptSize))
}

// SelectableToggle is Selectable that flips *selected when clicked.
func (ctx *Context) SelectableToggle(label string, selected *bool, opts ...Option) bool {
	if ctx.Selectable(label, *selected, opts...) {
		*selected = !*selected
		return true
	}
	return false
}

// SelectableEx is Selectable with explicit flags and size. A zero width
// spans the available width; a zero height uses the text height.
func (ctx *Context) SelectableEx(label string, selected bool, flags SelectableFlags, sizeArg Vec2) bool {
	w := ctx.CurrentWindow
	if w.SkipItems {
		return false
	}
	st := &ctx.Style

	// ItemSize gets the label size; ItemAdd gets the padded, spanning box.
	id := w.GetID(label)
	labelSize := ctx.CalcTextSize(label, true, 0)
	size := sizeArg
	if size.X == 0 {
		size.X = labelSize.X
	}
	if size.Y == 0 {
		size.Y = labelSize.Y
	}
	pos := w.DC.CursorPos
	pos.Y += w.DC.CurrLineTextBaseOffset
	ctx.ItemSize(size, 0)

	spanAll := flags&SelectableFlagsSpanAllColumns != 0
	work := w.WorkRect
	if cols := w.DC.CurrentColumns; spanAll && cols != nil {
		work = cols.hostBackupWorkRect
	}
	minX, maxX := pos.X, work.Max.X
	if spanAll {
		minX = work.Min.X
	}
	if sizeArg.X == 0 || flags&selectableFlagsSpanAvailWidth != 0 {
		size.X = maxf(labelSize.X, maxX-minX)
	}

	// Text stays where it was submitted; the box grows to cover the item
	// spacing so stacked selectables leave no gaps.
	textMin := pos
	textMax := Vec2{minX + size.X, pos.Y + size.Y}
	bb := R(minX, pos.Y, textMax.X, textMax.Y)
	if flags&selectableFlagsNoPadWithHalfSpacing == 0 {
		spacingX := st.ItemSpacing.X
		if spanAll {
			spacingX = 0
		}
		spacingY := st.ItemSpacing.Y
		spacingL := floorf(spacingX * 0.50)
		spacingU := floorf(spacingY * 0.50)
		bb.Min.X -= spacingL
		bb.Min.Y -= spacingU
		bb.Max.X += spacingX - spacingL
		bb.Max.Y += spacingY - spacingU
	}

	backupClip := w.ClipRect
	if spanAll {
		w.ClipRect.Min.X = work.Min.X
		w.ClipRect.Max.X = work.Max.X
	}
	var itemAdd bool
	if flags&SelectableFlagsDisabled != 0 {
		backupFlags := w.DC.ItemFlags
		w.DC.ItemFlags |= ItemFlagsDisabled | ItemFlagsNoNavDefaultFocus
		itemAdd = ctx.ItemAdd(bb, id, nil)
		w.DC.ItemFlags = backupFlags
	} else {
		itemAdd = ctx.ItemAdd(bb, id, nil)
	}
	w.ClipRect = backupClip
	if !itemAdd {
		return false
	}

	if spanAll {
		ctx.pushColumnsBackground()
	}

	// Menus use NoHoldingActiveID so a held click can slide across entries.
	var buttonFlags ButtonFlags
	if flags&selectableFlagsNoHoldingActiveID != 0 {
		buttonFlags |= ButtonFlagsNoHoldingActiveID
	}
	if flags&selectableFlagsSelectOnClick != 0 {
		buttonFlags |= ButtonFlagsPressedOnClick
	}
	if flags&selectableFlagsSelectOnRelease != 0 {
		buttonFlags |= ButtonFlagsPressedOnRelease
	}
	if flags&SelectableFlagsDisabled != 0 {
		buttonFlags |= ButtonFlagsDisabled
		selected = false
	}
	if flags&SelectableFlagsAllowDoubleClick != 0 {
		buttonFlags |= ButtonFlagsPressedOnClickRelease | ButtonFlagsPressedOnDoubleClick
	}
	if flags&SelectableFlagsAllowItemOverlap != 0 {
		buttonFlags |= ButtonFlagsAllowItemOverlap
	}

	wasSelected := selected
	pressed, hovered, held := ctx.ButtonBehavior(bb, id, buttonFlags)

	// Keep nav in sync with the mouse so keyboard browsing resumes here.
	if pressed || (hovered && flags&selectableFlagsSetNavIDOnHover != 0) {
		if !ctx.NavDisableMouseHover && ctx.NavWindow == w {
			ctx.NavDisableHighlight = true
			ctx.NavID = id
		}
	}
	if pressed {
		ctx.MarkItemEdited(id)
	}
	if flags&SelectableFlagsAllowItemOverlap != 0 {
		ctx.SetItemAllowOverlap()
	}
	if selected != wasSelected {
		w.DC.LastItemStatusFlags |= ItemStatusToggledSelection
	}

	if held && flags&selectableFlagsDrawHoveredWhenHeld != 0 {
		hovered = true
	}
	if hovered || selected {
		col := ColHeader
		switch {
		case held && hovered:
			col = ColHeaderActive
		case hovered:
			col = ColHeaderHovered
		}
		ctx.RenderFrame(bb.Min, bb.Max, ctx.GetColorU32(col, 1), false, 0)
		ctx.RenderNavHighlight(bb, id)
	}
	if spanAll {
		ctx.popColumnsBackground()
	}

	if flags&SelectableFlagsDisabled != 0 {
		ctx.PushStyleColor(ColText, st.Colors[ColTextDisabled])
	}
	ctx.RenderTextClipped(textMin, textMax, label, &labelSize, st.SelectableTextAlign, &bb)
	if flags&SelectableFlagsDisabled != 0 {
		ctx.PopStyleColor(1)
	}

	if pressed && w.Flags&WindowFlagsPopup != 0 && flags&SelectableFlagsDontClosePopups == 0 && w.DC.ItemFlags&ItemFlagsSelectableDontClosePopup == 0 {
		ctx.CloseCurrentPopup()
	}
	return pressed
}

// ============================================================================
// Child frames and list boxes
// ============================================================================

// BeginChildFrame starts a child window styled like a widget frame.
func (ctx *Context) BeginChildFrame(id ID, size Vec2, flags WindowFlags) bool {
	st := &ctx.Style
	ctx.PushStyleColor(ColChildBg, st.Colors[ColFrameBg])
	ctx.PushStyleVar(StyleVarChildRounding, st.FrameRounding)
	ctx.PushStyleVar(StyleVarChildBorderSize, st.FrameBorderSize)
	ctx.PushStyleVarVec2(StyleVarWindowPadding, st.FramePadding)
	visible := ctx.BeginChildID(id, size, true, WindowFlagsNoMove|flags)
	ctx.PopStyleVar(3)
	ctx.PopStyleColor(1)
	return visible
}

// EndChildFrame closes BeginChildFrame.
func (ctx *Context) EndChildFrame() { ctx.EndChild() }

// BeginListBox opens a framed, scrolling region for Selectable items. The
// default height fits about seven items. When it returns true the caller
// must call EndListBox.
func (ctx *Context) BeginListBox(label string, sizeArg Vec2) bool {
	w := ctx.CurrentWindow
	if w.SkipItems {
		return false
	}
	st := &ctx.Style
	id := w.GetID(label)
	labelSize := ctx.CalcTextSize(label, true, 0)

	size := ctx.CalcItemSize(sizeArg, ctx.CalcItemWidth(), ctx.GetTextLineHeightWithSpacing()*7.25+st.FramePadding.Y*2)
	frameSize := Vec2{size.X, maxf(size.Y, labelSize.Y)}
	frameBB := Rect{w.DC.CursorPos, w.DC.CursorPos.Add(frameSize)}
	bb := frameBB
	if labelSize.X > 0 {
		bb.Max.X += st.ItemInnerSpacing.X + labelSize.X
	}
	ctx.NextItemData.clearFlags()

	if !ctx.IsRectVisible(bb.Min, bb.Max) {
		ctx.ItemSize(bb.Size(), st.FramePadding.Y)
		ctx.ItemAdd(bb, 0, &frameBB)
		return false
	}

	ctx.BeginGroup()
	if labelSize.X > 0 {
		labelPos := Vec2{frameBB.Max.X + st.ItemInnerSpacing.X, frameBB.Min.Y + st.FramePadding.Y}
		ctx.RenderText(labelPos, label, true)
		w.DC.CursorMaxPos = maxV2(w.DC.CursorMaxPos, labelPos.Add(labelSize))
	}
	ctx.BeginChildFrame(id, frameBB.Size(), WindowFlagsNone)
	return true
}

// EndListBox closes BeginListBox.
func (ctx *Context) EndListBox() {
	ctx.EndChildFrame()
	ctx.EndGroup()
}

// ListBox selects one of items into *current. WithHeightInItems sets the
// visible item count, seven at most by default.
func (ctx *Context) ListBox(label string, current *int, items []string, opts ...Option) bool {
	return ctx.ListBoxFunc(label, current, func(i int) (string, bool) { return items[i], true }, len(items), opts...)
}

// ListBoxFunc is ListBox over count items produced by getter. Items the
// getter rejects are shown as "*Unknown item*".
func (ctx *Context) ListBoxFunc(label string, current *int, getter func(i int) (string, bool), count int, opts ...Option) bool {
	heightInItems := ApplyAndGet(opts, OptHeightInItems)
	if heightInItems < 0 {
		heightInItems = min(count, 7)
	}
	height := floorf(ctx.GetTextLineHeightWithSpacing()*(float32(heightInItems)+0.25) + ctx.Style.FramePadding.Y*2)
	if !ctx.BeginListBox(label, Vec2{0, height}) {
		return false
	}

	// Every item is one line of text.
	changed := false
	clipper := NewListClipper(ctx, count, ctx.GetTextLineHeightWithSpacing())
	for clipper.Step() {
		for i := clipper.DisplayStart; i < clipper.DisplayEnd; i++ {
			text, ok := getter(i)
			if !ok {
				text = "*Unknown item*"
			}
			ctx.PushIDInt(i)
			selected := i == *current
			if ctx.Selectable(text, selected) {
				*current = i
				changed = true
			}
			if selected {
				ctx.SetItemDefaultFocus()
			}
			ctx.PopID()
		}
	}
	ctx.EndListBox()
	if changed {
		ctx.MarkItemEdited(ctx.CurrentWindow.DC.LastItemID)
	}
	return changed
}
