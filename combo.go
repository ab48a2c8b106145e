package anchor

import (
	"fmt"
	"strings"
)

// ComboFlags configure BeginCombo.
type ComboFlags int

const (
	ComboFlagsNone           ComboFlags = 0
	ComboFlagsPopupAlignLeft ComboFlags = 1 << 0 // align the popup toward the left by default
	ComboFlagsHeightSmall    ComboFlags = 1 << 1 // about 4 items visible
	ComboFlagsHeightRegular  ComboFlags = 1 << 2 // about 8 items visible (default)
	ComboFlagsHeightLarge    ComboFlags = 1 << 3 // about 20 items visible
	ComboFlagsHeightLargest  ComboFlags = 1 << 4 // as many items as fit
	ComboFlagsNoArrowButton  ComboFlags = 1 << 5 // no square arrow button next to the preview
	ComboFlagsNoPreview      ComboFlags = 1 << 6 // only the arrow button

	comboFlagsHeightMask = ComboFlagsHeightSmall | ComboFlagsHeightRegular | ComboFlagsHeightLarge | ComboFlagsHeightLargest
)

// calcMaxPopupHeightFromItemCount returns the height of a popup showing n
// lines of text, or floatMax when n <= 0.
func (ctx *Context) calcMaxPopupHeightFromItemCount(n int) float32 {
	if n <= 0 {
		return floatMax
	}
	st := &ctx.Style
	return (ctx.FontSize+st.ItemSpacing.Y)*float32(n) - st.ItemSpacing.Y + st.WindowPadding.Y*2
}

// BeginCombo draws a combo box showing preview and opens its popup when
// clicked. When it returns true the caller submits the entries, usually
// Selectables, and must call EndCombo.
func (ctx *Context) BeginCombo(label, preview string, flags ComboFlags) bool {
	// Early returns still consume a pending size constraint.
	hasConstraint := ctx.NextWindowData.flags&nextWindowHasSizeConstraint != 0
	ctx.NextWindowData.flags &^= nextWindowHasSizeConstraint

	w := ctx.CurrentWindow
	if w.SkipItems {
		return false
	}
	st := &ctx.Style
	if !ctx.assert(flags&(ComboFlagsNoArrowButton|ComboFlagsNoPreview) != ComboFlagsNoArrowButton|ComboFlagsNoPreview, "BeginCombo: NoArrowButton and NoPreview are exclusive") {
		flags &^= ComboFlagsNoArrowButton
	}
	id := w.GetID(label)

	arrowSize := ctx.GetFrameHeight()
	if flags&ComboFlagsNoArrowButton != 0 {
		arrowSize = 0
	}
	labelSize := ctx.CalcTextSize(label, true, 0)
	width := ctx.CalcItemWidth()
	if flags&ComboFlagsNoPreview != 0 {
		width = arrowSize
	}
	frameBB := Rect{w.DC.CursorPos, w.DC.CursorPos.Add(Vec2{width, labelSize.Y + st.FramePadding.Y*2})}
	totalBB := frameBB
	if labelSize.X > 0 {
		totalBB.Max.X += st.ItemInnerSpacing.X + labelSize.X
	}
	ctx.ItemSizeRect(totalBB, st.FramePadding.Y)
	if !ctx.ItemAdd(totalBB, id, &frameBB) {
		return false
	}

	pressed, hovered, _ := ctx.ButtonBehavior(frameBB, id, ButtonFlagsNone)
	popupOpen := ctx.isPopupOpenEx(id, PopupFlagsNone)

	dl := w.DrawList
	frameCol := ctx.GetColorU32(ColFrameBg, 1)
	if hovered {
		frameCol = ctx.GetColorU32(ColFrameBgHovered, 1)
	}
	valueX2 := maxf(frameBB.Min.X, frameBB.Max.X-arrowSize)
	ctx.RenderNavHighlight(frameBB, id)
	if flags&ComboFlagsNoPreview == 0 {
		corners := DrawCornerLeft
		if flags&ComboFlagsNoArrowButton != 0 {
			corners = DrawCornerAll
		}
		dl.AddRectFilled(frameBB.Min, Vec2{valueX2, frameBB.Max.Y}, frameCol, st.FrameRounding, corners)
	}
	if flags&ComboFlagsNoArrowButton == 0 {
		bgCol := ctx.GetColorU32(ColButton, 1)
		if popupOpen || hovered {
			bgCol = ctx.GetColorU32(ColButtonHovered, 1)
		}
		corners := DrawCornerRight
		if width <= arrowSize {
			corners = DrawCornerAll
		}
		dl.AddRectFilled(Vec2{valueX2, frameBB.Min.Y}, frameBB.Max, bgCol, st.FrameRounding, corners)
		if valueX2+arrowSize-st.FramePadding.X <= frameBB.Max.X {
			RenderArrow(dl, Vec2{valueX2 + st.FramePadding.Y, frameBB.Min.Y + st.FramePadding.Y}, ctx.GetColorU32(ColText, 1), DirDown, ctx.FontSize, 1)
		}
	}
	ctx.RenderFrameBorder(frameBB.Min, frameBB.Max, st.FrameRounding)
	if preview != "" && flags&ComboFlagsNoPreview == 0 {
		ctx.RenderTextClipped(frameBB.Min.Add(st.FramePadding), Vec2{valueX2, frameBB.Max.Y}, preview, nil, Vec2{}, nil)
	}
	if labelSize.X > 0 {
		ctx.RenderText(Vec2{frameBB.Max.X + st.ItemInnerSpacing.X, frameBB.Min.Y + st.FramePadding.Y}, label, true)
	}

	if (pressed || ctx.NavActivateID == id) && !popupOpen {
		ctx.openPopupEx(id, PopupFlagsNone)
		popupOpen = true
	}
	if !popupOpen {
		return false
	}

	if hasConstraint {
		ctx.NextWindowData.flags |= nextWindowHasSizeConstraint
		ctx.NextWindowData.SizeConstraintRect.Min.X = maxf(ctx.NextWindowData.SizeConstraintRect.Min.X, width)
	} else {
		if flags&comboFlagsHeightMask == 0 {
			flags |= ComboFlagsHeightRegular
		}
		items := -1
		switch {
		case flags&ComboFlagsHeightRegular != 0:
			items = 8
		case flags&ComboFlagsHeightSmall != 0:
			items = 4
		case flags&ComboFlagsHeightLarge != 0:
			items = 20
		}
		ctx.SetNextWindowSizeConstraints(Vec2{width, 0}, Vec2{floatMax, ctx.calcMaxPopupHeightFromItemCount(items)})
	}

	// Popup windows are recycled by depth.
	name := fmt.Sprintf("##Combo_%02d", len(ctx.beginPopups))

	// Place the popup from the size it had last frame.
	if pw := ctx.FindWindowByName(name); pw != nil && pw.WasActive {
		expected := ctx.calcWindowExpectedSize(pw)
		pw.AutoPosLastDirection = DirDown
		if flags&ComboFlagsPopupAlignLeft != 0 {
			pw.AutoPosLastDirection = DirLeft
		}
		pos := findBestWindowPosForPopupEx(Vec2{frameBB.Min.X, frameBB.Max.Y}, expected, &pw.AutoPosLastDirection, ctx.windowAllowedExtentRect(), frameBB, popupPositionComboBox)
		ctx.SetNextWindowPos(pos, CondAlways, Vec2{})
	}

	// Line the entries up with the preview text.
	ctx.PushStyleVarVec2(StyleVarWindowPadding, Vec2{st.FramePadding.X, st.WindowPadding.Y})
	open := ctx.Begin(name, nil, WindowFlagsAlwaysAutoResize|WindowFlagsPopup|WindowFlagsNoTitleBar|WindowFlagsNoResize)
	ctx.PopStyleVar(1)
	if !open {
		ctx.EndPopup()
		ctx.assert(false, "BeginCombo: open popup failed to begin", "label", label)
		return false
	}
	return true
}

// EndCombo closes BeginCombo.
func (ctx *Context) EndCombo() { ctx.EndPopup() }

// Combo selects one of items into *current. Options: WithHeightInItems,
// WithComboFlags.
func (ctx *Context) Combo(label string, current *int, items []string, opts ...Option) bool {
	return ctx.ComboFunc(label, current, func(i int) (string, bool) { return items[i], true }, len(items), opts...)
}

// ComboSeparated is Combo over a single string of entries separated by
// NUL bytes, such as "One\x00Two\x00Three\x00".
func (ctx *Context) ComboSeparated(label string, current *int, itemsSeparatedByZeros string, opts ...Option) bool {
	items := strings.Split(strings.TrimRight(itemsSeparatedByZeros, "\x00"), "\x00")
	if itemsSeparatedByZeros == "" {
		items = nil
	}
	return ctx.Combo(label, current, items, opts...)
}

// ComboFunc is Combo over count items produced by getter. Items the getter
// rejects are shown as "*Unknown item*".
func (ctx *Context) ComboFunc(label string, current *int, getter func(i int) (string, bool), count int, opts ...Option) bool {
	o := applyOptions(opts)
	var preview string
	if *current >= 0 && *current < count {
		preview, _ = getter(*current)
	}

	if n := GetOpt(o, OptHeightInItems); n != -1 && ctx.NextWindowData.flags&nextWindowHasSizeConstraint == 0 {
		ctx.SetNextWindowSizeConstraints(Vec2{0, 0}, Vec2{floatMax, ctx.calcMaxPopupHeightFromItemCount(n)})
	}
	if !ctx.BeginCombo(label, preview, GetOpt(o, OptComboFlags)) {
		return false
	}

	changed := false
	for i := range count {
		ctx.PushIDInt(i)
		selected := i == *current
		text, ok := getter(i)
		if !ok {
			text = "*Unknown item*"
		}
		if ctx.Selectable(text, selected) {
			*current = i
			changed = true
		}
		if selected {
			ctx.SetItemDefaultFocus()
		}
		ctx.PopID()
	}
	ctx.EndCombo()
	if changed {
		ctx.MarkItemEdited(ctx.CurrentWindow.DC.LastItemID)
	}
	return changed
}
