package anchor

import (
	"fmt"

	"github.com/chewxy/math32"
)

// ============================================================================
// Buttons
// ============================================================================

// Button draws a push button sized to its label. It returns true on the
// frame it is pressed.
func (ctx *Context) Button(label string) bool {
	return ctx.ButtonEx(label, Vec2{}, ButtonFlagsNone)
}

// ButtonSize is Button with an explicit size. Zero components fit the label;
// negative ones align to the right edge.
func (ctx *Context) ButtonSize(label string, size Vec2) bool {
	return ctx.ButtonEx(label, size, ButtonFlagsNone)
}

// ButtonEx draws a framed button with behavior flags.
func (ctx *Context) ButtonEx(label string, sizeArg Vec2, flags ButtonFlags) bool {
	w := ctx.CurrentWindow
	if w.SkipItems {
		return false
	}
	st := &ctx.Style
	id := w.GetID(label)
	labelSize := ctx.CalcTextSize(label, true, 0)

	pos := w.DC.CursorPos
	if flags&ButtonFlagsAlignTextBaseLine != 0 && st.FramePadding.Y < w.DC.CurrLineTextBaseOffset {
		pos.Y += w.DC.CurrLineTextBaseOffset - st.FramePadding.Y
	}
	size := ctx.CalcItemSize(sizeArg, labelSize.X+st.FramePadding.X*2, labelSize.Y+st.FramePadding.Y*2)
	bb := Rect{pos, pos.Add(size)}
	ctx.ItemSize(size, st.FramePadding.Y)
	if !ctx.ItemAdd(bb, id, nil) {
		return false
	}
	if w.DC.ItemFlags&ItemFlagsButtonRepeat != 0 {
		flags |= ButtonFlagsRepeat
	}
	pressed, hovered, held := ctx.ButtonBehavior(bb, id, flags)

	col := ctx.GetColorU32(buttonColor(hovered, held), 1)
	ctx.RenderNavHighlight(bb, id)
	ctx.RenderFrame(bb.Min, bb.Max, col, true, st.FrameRounding)
	ctx.RenderTextClipped(bb.Min.Add(st.FramePadding), bb.Max.Sub(st.FramePadding), label, &labelSize, st.ButtonTextAlign, &bb)
	return pressed
}

func buttonColor(hovered, held bool) Col {
	switch {
	case held && hovered:
		return ColButtonActive
	case hovered:
		return ColButtonHovered
	}
	return ColButton
}

func frameColor(hovered, held bool) Col {
	switch {
	case held && hovered:
		return ColFrameBgActive
	case hovered:
		return ColFrameBgHovered
	}
	return ColFrameBg
}

// SmallButton is a button without vertical frame padding, for use inside
// text lines.
func (ctx *Context) SmallButton(label string) bool {
	backup := ctx.Style.FramePadding.Y
	ctx.Style.FramePadding.Y = 0
	pressed := ctx.ButtonEx(label, Vec2{}, ButtonFlagsAlignTextBaseLine)
	ctx.Style.FramePadding.Y = backup
	return pressed
}

// InvisibleButton is a button behavior without visuals, used to build
// custom widgets. size must be non-zero.
func (ctx *Context) InvisibleButton(strID string, size Vec2, flags ButtonFlags) bool {
	w := ctx.CurrentWindow
	if w.SkipItems {
		return false
	}
	if !ctx.assert(size.X != 0 && size.Y != 0, "InvisibleButton size must be non-zero", "id", strID) {
		return false
	}
	id := w.GetID(strID)
	size = ctx.CalcItemSize(size, 0, 0)
	bb := Rect{w.DC.CursorPos, w.DC.CursorPos.Add(size)}
	ctx.ItemSize(size, -1)
	if !ctx.ItemAdd(bb, id, nil) {
		return false
	}
	pressed, _, _ := ctx.ButtonBehavior(bb, id, flags)
	return pressed
}

// ArrowButton draws a square button holding an arrow.
func (ctx *Context) ArrowButton(strID string, dir Dir) bool {
	sz := ctx.GetFrameHeight()
	return ctx.ArrowButtonEx(strID, dir, Vec2{sz, sz}, ButtonFlagsNone)
}

// ArrowButtonEx is ArrowButton with an explicit size and flags.
func (ctx *Context) ArrowButtonEx(strID string, dir Dir, size Vec2, flags ButtonFlags) bool {
	w := ctx.CurrentWindow
	if w.SkipItems {
		return false
	}
	id := w.GetID(strID)
	bb := Rect{w.DC.CursorPos, w.DC.CursorPos.Add(size)}
	baseline := float32(-1)
	if size.Y >= ctx.GetFrameHeight() {
		baseline = ctx.Style.FramePadding.Y
	}
	ctx.ItemSize(size, baseline)
	if !ctx.ItemAdd(bb, id, nil) {
		return false
	}
	if w.DC.ItemFlags&ItemFlagsButtonRepeat != 0 {
		flags |= ButtonFlagsRepeat
	}
	pressed, hovered, held := ctx.ButtonBehavior(bb, id, flags)

	bg := ctx.GetColorU32(buttonColor(hovered, held), 1)
	ctx.RenderNavHighlight(bb, id)
	ctx.RenderFrame(bb.Min, bb.Max, bg, true, ctx.Style.FrameRounding)
	arrowPos := bb.Min.Add(Vec2{maxf(0, (size.X-ctx.FontSize)*0.5), maxf(0, (size.Y-ctx.FontSize)*0.5)})
	RenderArrow(w.DrawList, arrowPos, ctx.GetColorU32(ColText, 1), dir, ctx.FontSize, 1)
	return pressed
}

// CloseButton draws the round "x" button of title bars and tabs at pos.
func (ctx *Context) CloseButton(id ID, pos Vec2) bool {
	w := ctx.CurrentWindow
	bb := Rect{pos, pos.Add(Vec2{ctx.FontSize, ctx.FontSize}).Add(ctx.Style.FramePadding.Mul(2))}
	clipped := !ctx.ItemAdd(bb, id, nil)
	pressed, hovered, held := ctx.ButtonBehavior(bb, id, ButtonFlagsNone)
	if clipped {
		return pressed
	}

	center := bb.Center()
	if hovered {
		col := ctx.GetColorU32(ColButtonHovered, 1)
		if held {
			col = ctx.GetColorU32(ColButtonActive, 1)
		}
		w.DrawList.AddCircleFilled(center, maxf(2, ctx.FontSize*0.5+1), col, 12)
	}
	extent := ctx.FontSize*0.5*0.7071 - 1
	crossCol := ctx.GetColorU32(ColText, 1)
	center = center.Sub(Vec2{0.5, 0.5})
	w.DrawList.AddLine(center.Add(Vec2{extent, extent}), center.Add(Vec2{-extent, -extent}), crossCol, 1)
	w.DrawList.AddLine(center.Add(Vec2{extent, -extent}), center.Add(Vec2{-extent, extent}), crossCol, 1)
	return pressed
}

// CollapseButton draws the title bar arrow toggling the window collapse.
// Dragging it moves the window.
func (ctx *Context) CollapseButton(id ID, pos Vec2) bool {
	w := ctx.CurrentWindow
	bb := Rect{pos, pos.Add(Vec2{ctx.FontSize, ctx.FontSize}).Add(ctx.Style.FramePadding.Mul(2))}
	ctx.ItemAdd(bb, id, nil)
	pressed, hovered, held := ctx.ButtonBehavior(bb, id, ButtonFlagsNone)

	bg := ctx.GetColorU32(buttonColor(hovered, held), 1)
	if hovered || held {
		w.DrawList.AddCircleFilled(bb.Center().Add(Vec2{0, -0.5}), ctx.FontSize*0.5+1, bg, 12)
	}
	dir := DirDown
	if w.Collapsed {
		dir = DirRight
	}
	RenderArrow(w.DrawList, bb.Min.Add(ctx.Style.FramePadding), ctx.GetColorU32(ColText, 1), dir, ctx.FontSize, 1)

	if ctx.IsItemActive() && ctx.IsMouseDragging(MouseButtonLeft, -1) {
		ctx.startMouseMovingWindow(w)
	}
	return pressed
}

// ============================================================================
// Checkboxes and radio buttons
// ============================================================================

// Checkbox toggles *v when clicked and returns true on that frame.
func (ctx *Context) Checkbox(label string, v *bool) bool {
	w := ctx.CurrentWindow
	if w.SkipItems {
		return false
	}
	st := &ctx.Style
	id := w.GetID(label)
	labelSize := ctx.CalcTextSize(label, true, 0)

	square := ctx.GetFrameHeight()
	pos := w.DC.CursorPos
	labelW := float32(0)
	if labelSize.X > 0 {
		labelW = st.ItemInnerSpacing.X + labelSize.X
	}
	totalBB := Rect{pos, pos.Add(Vec2{square + labelW, labelSize.Y + st.FramePadding.Y*2})}
	ctx.ItemSizeRect(totalBB, st.FramePadding.Y)
	if !ctx.ItemAdd(totalBB, id, nil) {
		return false
	}

	pressed, hovered, held := ctx.ButtonBehavior(totalBB, id, ButtonFlagsNone)
	if pressed {
		*v = !*v
		ctx.MarkItemEdited(id)
	}

	checkBB := Rect{pos, pos.Add(Vec2{square, square})}
	ctx.RenderNavHighlight(totalBB, id)
	ctx.RenderFrame(checkBB.Min, checkBB.Max, ctx.GetColorU32(frameColor(hovered, held), 1), true, st.FrameRounding)
	checkCol := ctx.GetColorU32(ColCheckMark, 1)
	if w.DC.ItemFlags&ItemFlagsMixedValue != 0 {
		// Mixed: some but not all flags of a CheckboxFlags set.
		pad := maxf(1, floorf(square/3.6))
		w.DrawList.AddRectFilled(checkBB.Min.Add(Vec2{pad, pad}), checkBB.Max.Sub(Vec2{pad, pad}), checkCol, st.FrameRounding, DrawCornerAll)
	} else if *v {
		pad := maxf(1, floorf(square/6))
		RenderCheckMark(w.DrawList, checkBB.Min.Add(Vec2{pad, pad}), checkCol, square-pad*2)
	}
	if labelSize.X > 0 {
		ctx.RenderText(Vec2{checkBB.Max.X + st.ItemInnerSpacing.X, checkBB.Min.Y + st.FramePadding.Y}, label, true)
	}
	return pressed
}

// Flags is the set of integer types usable as bit flags.
type Flags interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// CheckboxFlags shows whether all bits of value are set in *flags and
// sets or clears them together when clicked. A partial match draws the
// mixed state.
func CheckboxFlags[T Flags](ctx *Context, label string, flags *T, value T) bool {
	allOn := *flags&value == value
	anyOn := *flags&value != 0
	var pressed bool
	if !allOn && anyOn {
		ctx.PushItemFlag(ItemFlagsMixedValue, true)
		pressed = ctx.Checkbox(label, &allOn)
		ctx.PopItemFlag()
	} else {
		pressed = ctx.Checkbox(label, &allOn)
	}
	if pressed {
		if allOn {
			*flags |= value
		} else {
			*flags &^= value
		}
	}
	return pressed
}

// RadioButton draws a round button that is filled when active. It returns
// true when clicked.
func (ctx *Context) RadioButton(label string, active bool) bool {
	w := ctx.CurrentWindow
	if w.SkipItems {
		return false
	}
	st := &ctx.Style
	id := w.GetID(label)
	labelSize := ctx.CalcTextSize(label, true, 0)

	square := ctx.GetFrameHeight()
	pos := w.DC.CursorPos
	checkBB := Rect{pos, pos.Add(Vec2{square, square})}
	labelW := float32(0)
	if labelSize.X > 0 {
		labelW = st.ItemInnerSpacing.X + labelSize.X
	}
	totalBB := Rect{pos, pos.Add(Vec2{square + labelW, labelSize.Y + st.FramePadding.Y*2})}
	ctx.ItemSizeRect(totalBB, st.FramePadding.Y)
	if !ctx.ItemAdd(totalBB, id, nil) {
		return false
	}

	center := checkBB.Center()
	center = Vec2{math32.Round(center.X), math32.Round(center.Y)}
	radius := (square - 1) * 0.5

	pressed, hovered, held := ctx.ButtonBehavior(totalBB, id, ButtonFlagsNone)
	if pressed {
		ctx.MarkItemEdited(id)
	}

	dl := w.DrawList
	ctx.RenderNavHighlight(totalBB, id)
	dl.AddCircleFilled(center, radius, ctx.GetColorU32(frameColor(hovered, held), 1), 16)
	if active {
		pad := maxf(1, floorf(square/6))
		dl.AddCircleFilled(center, radius-pad, ctx.GetColorU32(ColCheckMark, 1), 16)
	}
	if st.FrameBorderSize > 0 {
		dl.AddCircle(center.Add(Vec2{1, 1}), radius, ctx.GetColorU32(ColBorderShadow, 1), 16, st.FrameBorderSize)
		dl.AddCircle(center, radius, ctx.GetColorU32(ColBorder, 1), 16, st.FrameBorderSize)
	}
	if labelSize.X > 0 {
		ctx.RenderText(Vec2{checkBB.Max.X + st.ItemInnerSpacing.X, checkBB.Min.Y + st.FramePadding.Y}, label, true)
	}
	return pressed
}

// RadioButtonInt sets *v to button when clicked.
func (ctx *Context) RadioButtonInt(label string, v *int, button int) bool {
	pressed := ctx.RadioButton(label, *v == button)
	if pressed {
		*v = button
	}
	return pressed
}

// ============================================================================
// Progress bar, bullet, image
// ============================================================================

// ProgressBar draws a bar filled to fraction (clamped to [0, 1]). An empty
// overlay shows the percentage.
func (ctx *Context) ProgressBar(fraction float32, sizeArg Vec2, overlay string) {
	w := ctx.CurrentWindow
	if w.SkipItems {
		return
	}
	st := &ctx.Style
	pos := w.DC.CursorPos
	size := ctx.CalcItemSize(sizeArg, ctx.CalcItemWidth(), ctx.FontSize+st.FramePadding.Y*2)
	bb := Rect{pos, pos.Add(size)}
	ctx.ItemSize(size, st.FramePadding.Y)
	if !ctx.ItemAdd(bb, 0, nil) {
		return
	}

	fraction = saturate(fraction)
	ctx.RenderFrame(bb.Min, bb.Max, ctx.GetColorU32(ColFrameBg, 1), true, st.FrameRounding)
	bb = bb.Expand(-st.FrameBorderSize)
	fillMax := Vec2{lerpf(bb.Min.X, bb.Max.X, fraction), bb.Max.Y}
	RenderRectFilledRangeH(w.DrawList, bb, ctx.GetColorU32(ColPlotHistogram, 1), 0, fraction, st.FrameRounding)

	if overlay == "" {
		overlay = fmt.Sprintf("%.0f%%", fraction*100+0.01)
	}
	overlaySize := ctx.CalcTextSize(overlay, false, 0)
	if overlaySize.X > 0 {
		x := clampf(fillMax.X+st.ItemSpacing.X, bb.Min.X, bb.Max.X-overlaySize.X-st.ItemInnerSpacing.X)
		ctx.RenderTextClipped(Vec2{x, bb.Min.Y}, bb.Max, overlay, &overlaySize, Vec2{0, 0.5}, &bb)
	}
}

// Bullet draws a small circle and keeps the cursor on the same line.
func (ctx *Context) Bullet() {
	w := ctx.CurrentWindow
	if w.SkipItems {
		return
	}
	st := &ctx.Style
	lineHeight := maxf(minf(w.DC.CurrLineSize.Y, ctx.FontSize+st.FramePadding.Y*2), ctx.FontSize)
	bb := Rect{w.DC.CursorPos, w.DC.CursorPos.Add(Vec2{ctx.FontSize, lineHeight})}
	ctx.ItemSizeRect(bb, -1)
	if ctx.ItemAdd(bb, 0, nil) {
		pos := bb.Min.Add(Vec2{st.FramePadding.X + ctx.FontSize*0.5, lineHeight * 0.5})
		RenderBullet(w.DrawList, pos, ctx.GetColorU32(ColText, 1), ctx.FontSize)
	}
	ctx.SameLine(0, st.FramePadding.X*2)
}

// Image draws a textured quad. A border with non-zero alpha adds a 1px frame.
func (ctx *Context) Image(textureID uint32, size, uv0, uv1 Vec2, tint, border Vec4) {
	w := ctx.CurrentWindow
	if w.SkipItems {
		return
	}
	bb := Rect{w.DC.CursorPos, w.DC.CursorPos.Add(size)}
	if border.W > 0 {
		bb.Max = bb.Max.Add(Vec2{2, 2})
	}
	ctx.ItemSizeRect(bb, -1)
	if !ctx.ItemAdd(bb, 0, nil) {
		return
	}
	if border.W > 0 {
		w.DrawList.AddRect(bb.Min, bb.Max, ctx.GetColorU32Vec(border), 0, DrawCornerAll, 1)
		w.DrawList.AddImage(textureID, bb.Min.Add(Vec2{1, 1}), bb.Max.Sub(Vec2{1, 1}), uv0, uv1, ctx.GetColorU32Vec(tint))
	} else {
		w.DrawList.AddImage(textureID, bb.Min, bb.Max, uv0, uv1, ctx.GetColorU32Vec(tint))
	}
}
