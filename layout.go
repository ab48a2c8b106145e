package anchor

// groupData is the cursor state saved by BeginGroup.
type groupData struct {
	backupCursorPos                    Vec2
	backupCursorMaxPos                 Vec2
	backupIndent                       float32
	backupGroupOffset                  float32
	backupCurrLineSize                 Vec2
	backupCurrLineTextBaseOffset       float32
	backupActiveIDIsAlive              ID
	backupActiveIDPreviousFrameIsAlive bool
	emitItem                           bool
}

// ============================================================================
// Cursor flow
// ============================================================================

// SameLine keeps the next item on the current line. offsetFromStartX
// positions it from the window's left edge when non-zero; spacing < 0 uses
// Style.ItemSpacing.X.
func (ctx *Context) SameLine(offsetFromStartX, spacing float32) {
	w := ctx.CurrentWindow
	if w.SkipItems {
		return
	}
	dc := &w.DC
	if offsetFromStartX != 0 {
		if spacing < 0 {
			spacing = 0
		}
		dc.CursorPos.X = w.Pos.X - w.Scroll.X + offsetFromStartX + spacing + dc.GroupOffset + dc.ColumnsOffset
	} else {
		if spacing < 0 {
			spacing = ctx.Style.ItemSpacing.X
		}
		dc.CursorPos.X = dc.CursorPosPrevLine.X + spacing
	}
	dc.CursorPos.Y = dc.CursorPosPrevLine.Y
	dc.CurrLineSize = dc.PrevLineSize
	dc.CurrLineTextBaseOffset = dc.PrevLineTextBaseOffset
}

// NewLine ends the current line, or adds an empty one.
func (ctx *Context) NewLine() {
	w := ctx.CurrentWindow
	if w.SkipItems {
		return
	}
	backup := w.DC.LayoutType
	w.DC.LayoutType = LayoutVertical
	if w.DC.CurrLineSize.Y > 0 {
		ctx.ItemSize(Vec2{}, -1)
	} else {
		ctx.ItemSize(Vec2{0, ctx.FontSize}, -1)
	}
	w.DC.LayoutType = backup
}

// Spacing adds vertical item spacing.
func (ctx *Context) Spacing() {
	if ctx.CurrentWindow.SkipItems {
		return
	}
	ctx.ItemSize(Vec2{}, -1)
}

// Dummy reserves an empty item of the given size.
func (ctx *Context) Dummy(size Vec2) {
	w := ctx.CurrentWindow
	if w.SkipItems {
		return
	}
	bb := RectFromSize(w.DC.CursorPos, size)
	ctx.ItemSize(size, -1)
	ctx.ItemAdd(bb, 0, nil)
}

// SeparatorFlags select the separator orientation.
type SeparatorFlags int

const (
	SeparatorHorizontal SeparatorFlags = 1 << iota
	SeparatorVertical
	SeparatorSpanAllColumns
)

// Separator draws a line across the window, or a vertical bar inside a
// horizontal layout.
func (ctx *Context) Separator() {
	w := ctx.CurrentWindow
	if w.SkipItems {
		return
	}
	flags := SeparatorHorizontal
	if w.DC.LayoutType == LayoutHorizontal {
		flags = SeparatorVertical
	}
	ctx.SeparatorEx(flags | SeparatorSpanAllColumns)
}

// SeparatorEx draws a separator with explicit orientation.
func (ctx *Context) SeparatorEx(flags SeparatorFlags) {
	w := ctx.CurrentWindow
	if w.SkipItems {
		return
	}
	col := ctx.GetColorU32(ColSeparator, 1)
	if flags&SeparatorVertical != 0 {
		bb := R(w.DC.CursorPos.X, w.DC.CursorPos.Y, w.DC.CursorPos.X+1, w.DC.CursorPos.Y+w.DC.CurrLineSize.Y)
		ctx.ItemSize(Vec2{1, 0}, -1)
		if !ctx.ItemAdd(bb, 0, nil) {
			return
		}
		w.DrawList.AddLine(bb.Min, Vec2{bb.Min.X, bb.Max.Y}, col, 1)
		return
	}

	x1 := w.Pos.X
	x2 := w.Pos.X + w.Size.X
	if len(ctx.groupStack) > 0 {
		x1 += w.DC.Indent
	}
	cols := w.DC.CurrentColumns
	if cols != nil && flags&SeparatorSpanAllColumns != 0 {
		x1 = w.Pos.X + w.DC.Indent
		x2 = w.Pos.X + w.Size.X
		ctx.pushColumnsBackground()
	}
	bb := R(x1, w.DC.CursorPos.Y, x2, w.DC.CursorPos.Y+1)
	ctx.ItemSize(Vec2{0, 0}, -1)
	if ctx.ItemAdd(bb, 0, nil) {
		w.DrawList.AddLine(bb.Min, Vec2{bb.Max.X, bb.Min.Y}, col, 1)
	}
	if cols != nil && flags&SeparatorSpanAllColumns != 0 {
		ctx.popColumnsBackground()
		cols.LineMinY = w.DC.CursorPos.Y
	}
}

// Indent moves the left margin right by width, or Style.IndentSpacing
// when width is 0.
func (ctx *Context) Indent(width float32) {
	w := ctx.CurrentWindow
	if width == 0 {
		width = ctx.Style.IndentSpacing
	}
	w.DC.Indent += width
	w.DC.CursorPos.X = w.Pos.X + w.DC.Indent + w.DC.ColumnsOffset
}

// Unindent reverses Indent.
func (ctx *Context) Unindent(width float32) {
	w := ctx.CurrentWindow
	if width == 0 {
		width = ctx.Style.IndentSpacing
	}
	w.DC.Indent -= width
	w.DC.CursorPos.X = w.Pos.X + w.DC.Indent + w.DC.ColumnsOffset
}

// ============================================================================
// Groups
// ============================================================================

// BeginGroup starts a group whose items EndGroup turns into one item.
func (ctx *Context) BeginGroup() {
	w := ctx.CurrentWindow
	dc := &w.DC
	ctx.groupStack = append(ctx.groupStack, groupData{
		backupCursorPos:                    dc.CursorPos,
		backupCursorMaxPos:                 dc.CursorMaxPos,
		backupIndent:                       dc.Indent,
		backupGroupOffset:                  dc.GroupOffset,
		backupCurrLineSize:                 dc.CurrLineSize,
		backupCurrLineTextBaseOffset:       dc.CurrLineTextBaseOffset,
		backupActiveIDIsAlive:              ctx.ActiveIDIsAlive,
		backupActiveIDPreviousFrameIsAlive: ctx.ActiveIDPreviousFrameIsAlive,
		emitItem:                           true,
	})
	dc.GroupOffset = dc.CursorPos.X - w.Pos.X - dc.ColumnsOffset
	dc.Indent = dc.GroupOffset
	dc.CursorMaxPos = dc.CursorPos
	dc.CurrLineSize = Vec2{}
}

// EndGroup closes the group and lays it out as a single item.
func (ctx *Context) EndGroup() {
	w := ctx.CurrentWindow
	n := len(ctx.groupStack)
	if n == 0 {
		ctx.recordStackError(stackError("EndGroup", w))
		return
	}
	g := ctx.groupStack[n-1]
	ctx.groupStack = ctx.groupStack[:n-1]
	dc := &w.DC

	bb := Rect{g.backupCursorPos, maxV2(dc.CursorMaxPos, g.backupCursorPos)}
	dc.CursorPos = g.backupCursorPos
	dc.CursorMaxPos = maxV2(g.backupCursorMaxPos, dc.CursorMaxPos)
	dc.Indent = g.backupIndent
	dc.GroupOffset = g.backupGroupOffset
	dc.CurrLineSize = g.backupCurrLineSize
	dc.CurrLineTextBaseOffset = g.backupCurrLineTextBaseOffset
	if !g.emitItem {
		return
	}

	dc.CurrLineTextBaseOffset = maxf(dc.PrevLineTextBaseOffset, g.backupCurrLineTextBaseOffset)
	ctx.ItemSize(bb.Size(), -1)
	ctx.ItemAdd(bb, 0, nil)

	// The group reports the active item submitted inside it.
	containsCurrActive := g.backupActiveIDIsAlive != ctx.ActiveID && ctx.ActiveIDIsAlive == ctx.ActiveID && ctx.ActiveID != 0
	containsPrevActive := !g.backupActiveIDPreviousFrameIsAlive && ctx.ActiveIDPreviousFrameIsAlive
	if containsCurrActive {
		dc.LastItemID = ctx.ActiveID
	} else if containsPrevActive {
		dc.LastItemID = ctx.ActiveIDPreviousFrame
	}
	dc.LastItemRect = bb
	if containsCurrActive && ctx.ActiveIDHasBeenEditedThisFrame {
		dc.LastItemStatusFlags |= ItemStatusEdited
	}
	dc.LastItemStatusFlags |= ItemStatusHasDeactivated
	if containsPrevActive && ctx.ActiveID != ctx.ActiveIDPreviousFrame {
		dc.LastItemStatusFlags |= ItemStatusDeactivated
	}
}

// Group submits contents as one group item.
func (ctx *Context) Group(contents func()) {
	ctx.BeginGroup()
	contents()
	ctx.EndGroup()
}

// Row submits contents side by side inside a group.
func (ctx *Context) Row(contents func()) {
	w := ctx.CurrentWindow
	ctx.BeginGroup()
	backup := w.DC.LayoutType
	w.DC.LayoutType = LayoutHorizontal
	contents()
	w.DC.LayoutType = backup
	ctx.EndGroup()
}

// ============================================================================
// Item width and wrapping
// ============================================================================

// PushItemWidth sets the width of following items. 0 restores the
// default, < 0 aligns to the right edge minus |w|.
func (ctx *Context) PushItemWidth(width float32) {
	w := ctx.CurrentWindow
	if width == 0 {
		width = w.ItemWidthDefault
	}
	w.DC.ItemWidth = width
	w.DC.ItemWidthStack = append(w.DC.ItemWidthStack, width)
	ctx.NextItemData.flags &^= nextItemHasWidth
}

// PushMultiItemsWidths splits wFull between components items.
func (ctx *Context) PushMultiItemsWidths(components int, wFull float32) {
	w := ctx.CurrentWindow
	sp := ctx.Style.ItemInnerSpacing.X
	one := maxf(1, floorf((wFull-sp*float32(components-1))/float32(components)))
	last := maxf(1, floorf(wFull-(one+sp)*float32(components-1)))
	w.DC.ItemWidthStack = append(w.DC.ItemWidthStack, last)
	for i := 0; i < components-1; i++ {
		w.DC.ItemWidthStack = append(w.DC.ItemWidthStack, one)
	}
	w.DC.ItemWidth = w.DC.ItemWidthStack[len(w.DC.ItemWidthStack)-1]
	ctx.NextItemData.flags &^= nextItemHasWidth
}

// PopItemWidth pops PushItemWidth.
func (ctx *Context) PopItemWidth() {
	w := ctx.CurrentWindow
	n := len(w.DC.ItemWidthStack)
	if n == 0 {
		ctx.recordStackError(stackError("PopItemWidth", w))
		return
	}
	w.DC.ItemWidthStack = w.DC.ItemWidthStack[:n-1]
	if n == 1 {
		w.DC.ItemWidth = w.ItemWidthDefault
	} else {
		w.DC.ItemWidth = w.DC.ItemWidthStack[n-2]
	}
}

// SetNextItemWidth sets the width of the next item only.
func (ctx *Context) SetNextItemWidth(width float32) {
	ctx.NextItemData.flags |= nextItemHasWidth
	ctx.NextItemData.Width = width
}

// CalcItemWidth returns the width of the next item.
func (ctx *Context) CalcItemWidth() float32 {
	w := ctx.CurrentWindow
	width := w.DC.ItemWidth
	if ctx.NextItemData.flags&nextItemHasWidth != 0 {
		width = ctx.NextItemData.Width
	}
	if width < 0 {
		regionMaxX := ctx.getContentRegionMaxAbs().X
		width = maxf(1, regionMaxX-w.DC.CursorPos.X+width)
	}
	return floorf(width)
}

// CalcItemSize resolves a requested size: 0 takes the default, < 0 aligns
// to the content region edge minus |size|.
func (ctx *Context) CalcItemSize(size Vec2, defaultW, defaultH float32) Vec2 {
	w := ctx.CurrentWindow
	var regionMax Vec2
	if size.X < 0 || size.Y < 0 {
		regionMax = ctx.getContentRegionMaxAbs()
	}
	if size.X == 0 {
		size.X = defaultW
	} else if size.X < 0 {
		size.X = maxf(4, regionMax.X-w.DC.CursorPos.X+size.X)
	}
	if size.Y == 0 {
		size.Y = defaultH
	} else if size.Y < 0 {
		size.Y = maxf(4, regionMax.Y-w.DC.CursorPos.Y+size.Y)
	}
	return size
}

// PushTextWrapPos wraps following text at local x; 0 wraps at the window
// edge and < 0 disables wrapping.
func (ctx *Context) PushTextWrapPos(wrapLocalPosX float32) {
	dc := &ctx.CurrentWindow.DC
	dc.TextWrapPos = wrapLocalPosX
	dc.TextWrapPosStack = append(dc.TextWrapPosStack, wrapLocalPosX)
}

// PopTextWrapPos pops PushTextWrapPos.
func (ctx *Context) PopTextWrapPos() {
	w := ctx.CurrentWindow
	dc := &w.DC
	n := len(dc.TextWrapPosStack)
	if n == 0 {
		ctx.recordStackError(stackError("PopTextWrapPos", w))
		return
	}
	dc.TextWrapPosStack = dc.TextWrapPosStack[:n-1]
	if n == 1 {
		dc.TextWrapPos = -1
	} else {
		dc.TextWrapPos = dc.TextWrapPosStack[n-2]
	}
}

// ============================================================================
// Content region and cursor
// ============================================================================

func (ctx *Context) getContentRegionMaxAbs() Vec2 {
	w := ctx.CurrentWindow
	mx := w.ContentRegionRect.Max
	if w.DC.CurrentColumns != nil {
		mx.X = w.WorkRect.Max.X
	}
	return mx
}

// GetContentRegionAvail returns the space left from the cursor to the
// content region edge.
func (ctx *Context) GetContentRegionAvail() Vec2 {
	return ctx.getContentRegionMaxAbs().Sub(ctx.CurrentWindow.DC.CursorPos)
}

// GetContentRegionMax returns the content region edge in window coordinates.
func (ctx *Context) GetContentRegionMax() Vec2 {
	return ctx.getContentRegionMaxAbs().Sub(ctx.CurrentWindow.Pos)
}

// GetWindowContentRegionMin returns the content region origin in window
// coordinates.
func (ctx *Context) GetWindowContentRegionMin() Vec2 {
	w := ctx.CurrentWindow
	return w.ContentRegionRect.Min.Sub(w.Pos)
}

// GetWindowContentRegionMax returns the content region edge in window
// coordinates.
func (ctx *Context) GetWindowContentRegionMax() Vec2 {
	w := ctx.CurrentWindow
	return w.ContentRegionRect.Max.Sub(w.Pos)
}

// GetWindowContentRegionWidth returns the content region width.
func (ctx *Context) GetWindowContentRegionWidth() float32 {
	return ctx.CurrentWindow.ContentRegionRect.Width()
}

// GetCursorPos returns the cursor in window coordinates.
func (ctx *Context) GetCursorPos() Vec2 {
	w := ctx.CurrentWindow
	return w.DC.CursorPos.Sub(w.Pos).Add(w.Scroll)
}

// GetCursorPosX returns the cursor x in window coordinates.
func (ctx *Context) GetCursorPosX() float32 { return ctx.GetCursorPos().X }

// GetCursorPosY returns the cursor y in window coordinates.
func (ctx *Context) GetCursorPosY() float32 { return ctx.GetCursorPos().Y }

// SetCursorPos moves the cursor to a window-relative position.
func (ctx *Context) SetCursorPos(localPos Vec2) {
	w := ctx.CurrentWindow
	w.DC.CursorPos = w.Pos.Sub(w.Scroll).Add(localPos)
	w.DC.CursorMaxPos = maxV2(w.DC.CursorMaxPos, w.DC.CursorPos)
}

// SetCursorPosX moves the cursor horizontally.
func (ctx *Context) SetCursorPosX(x float32) {
	w := ctx.CurrentWindow
	w.DC.CursorPos.X = w.Pos.X - w.Scroll.X + x
	w.DC.CursorMaxPos.X = maxf(w.DC.CursorMaxPos.X, w.DC.CursorPos.X)
}

// SetCursorPosY moves the cursor vertically.
func (ctx *Context) SetCursorPosY(y float32) {
	w := ctx.CurrentWindow
	w.DC.CursorPos.Y = w.Pos.Y - w.Scroll.Y + y
	w.DC.CursorMaxPos.Y = maxf(w.DC.CursorMaxPos.Y, w.DC.CursorPos.Y)
}

// GetCursorStartPos returns the initial cursor in window coordinates.
func (ctx *Context) GetCursorStartPos() Vec2 {
	w := ctx.CurrentWindow
	return w.DC.CursorStartPos.Sub(w.Pos)
}

// GetCursorScreenPos returns the cursor in screen coordinates.
func (ctx *Context) GetCursorScreenPos() Vec2 { return ctx.CurrentWindow.DC.CursorPos }

// SetCursorScreenPos moves the cursor to a screen position.
func (ctx *Context) SetCursorScreenPos(pos Vec2) {
	w := ctx.CurrentWindow
	w.DC.CursorPos = pos
	w.DC.CursorMaxPos = maxV2(w.DC.CursorMaxPos, pos)
}

// AlignTextToFramePadding lowers following text to line up with framed
// widgets on the same line.
func (ctx *Context) AlignTextToFramePadding() {
	w := ctx.CurrentWindow
	if w.SkipItems {
		return
	}
	w.DC.CurrLineSize.Y = maxf(w.DC.CurrLineSize.Y, ctx.FontSize+ctx.Style.FramePadding.Y*2)
	w.DC.CurrLineTextBaseOffset = maxf(w.DC.CurrLineTextBaseOffset, ctx.Style.FramePadding.Y)
}

// GetTextLineHeight returns the font size.
func (ctx *Context) GetTextLineHeight() float32 { return ctx.FontSize }

// GetTextLineHeightWithSpacing returns the distance between text lines.
func (ctx *Context) GetTextLineHeightWithSpacing() float32 {
	return ctx.FontSize + ctx.Style.ItemSpacing.Y
}

// GetFrameHeight returns the height of a framed widget.
func (ctx *Context) GetFrameHeight() float32 {
	return ctx.FontSize + ctx.Style.FramePadding.Y*2
}

// GetFrameHeightWithSpacing returns the distance between framed widgets.
func (ctx *Context) GetFrameHeightWithSpacing() float32 {
	return ctx.GetFrameHeight() + ctx.Style.ItemSpacing.Y
}
