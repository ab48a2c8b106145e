package anchor

// ItemFlags are pushed with PushItemFlag and apply to following items.
type ItemFlags int

const (
	ItemFlagsNone                     ItemFlags = 0
	ItemFlagsNoTabStop                ItemFlags = 1 << 0
	ItemFlagsButtonRepeat             ItemFlags = 1 << 1
	ItemFlagsDisabled                 ItemFlags = 1 << 2
	ItemFlagsNoNav                    ItemFlags = 1 << 3
	ItemFlagsNoNavDefaultFocus        ItemFlags = 1 << 4
	ItemFlagsSelectableDontClosePopup ItemFlags = 1 << 5
	ItemFlagsMixedValue               ItemFlags = 1 << 6
	ItemFlagsReadOnly                 ItemFlags = 1 << 7
	ItemFlagsDefault                            = ItemFlagsNone
)

// ItemStatusFlags describe the last submitted item.
type ItemStatusFlags int

const (
	ItemStatusNone             ItemStatusFlags = 0
	ItemStatusHoveredRect      ItemStatusFlags = 1 << 0
	ItemStatusHasDisplayRect   ItemStatusFlags = 1 << 1
	ItemStatusEdited           ItemStatusFlags = 1 << 2
	ItemStatusToggledSelection ItemStatusFlags = 1 << 3
	ItemStatusToggledOpen      ItemStatusFlags = 1 << 4
	ItemStatusHasDeactivated   ItemStatusFlags = 1 << 5
	ItemStatusDeactivated      ItemStatusFlags = 1 << 6
	ItemStatusHoveredWindow    ItemStatusFlags = 1 << 7
	ItemStatusFocusedByTabbing ItemStatusFlags = 1 << 8
)

// HoveredFlags tune IsItemHovered and IsWindowHovered.
type HoveredFlags int

const (
	HoveredFlagsNone                         HoveredFlags = 0
	HoveredFlagsChildWindows                 HoveredFlags = 1 << 0
	HoveredFlagsRootWindow                   HoveredFlags = 1 << 1
	HoveredFlagsAnyWindow                    HoveredFlags = 1 << 2
	HoveredFlagsAllowWhenBlockedByPopup      HoveredFlags = 1 << 3
	HoveredFlagsAllowWhenBlockedByActiveItem HoveredFlags = 1 << 5
	HoveredFlagsAllowWhenOverlapped          HoveredFlags = 1 << 6
	HoveredFlagsAllowWhenDisabled            HoveredFlags = 1 << 7

	HoveredFlagsRectOnly            = HoveredFlagsAllowWhenBlockedByPopup | HoveredFlagsAllowWhenBlockedByActiveItem | HoveredFlagsAllowWhenOverlapped
	HoveredFlagsRootAndChildWindows = HoveredFlagsRootWindow | HoveredFlagsChildWindows
)

type nextItemFlags int

const (
	nextItemHasWidth nextItemFlags = 1 << iota
	nextItemHasOpen
)

// NextItemData holds values consumed by the next item.
type NextItemData struct {
	flags    nextItemFlags
	Width    float32
	OpenVal  bool
	OpenCond Cond
}

func (d *NextItemData) clearFlags() { d.flags = 0 }

// ItemSize advances the layout cursor past an item of the given size.
// textBaselineY aligns text items on a shared line; pass -1 otherwise.
func (ctx *Context) ItemSize(size Vec2, textBaselineY float32) {
	w := ctx.CurrentWindow
	if w.SkipItems {
		return
	}
	dc := &w.DC
	offset := float32(0)
	if textBaselineY >= 0 {
		offset = maxf(0, dc.CurrLineTextBaseOffset-textBaselineY)
	}
	lineHeight := maxf(dc.CurrLineSize.Y, size.Y+offset)

	dc.CursorPosPrevLine = Vec2{dc.CursorPos.X + size.X, dc.CursorPos.Y}
	dc.CursorPos.X = floorf(w.Pos.X + dc.Indent + dc.ColumnsOffset)
	dc.CursorPos.Y = floorf(dc.CursorPos.Y + lineHeight + ctx.Style.ItemSpacing.Y)
	dc.CursorMaxPos.X = maxf(dc.CursorMaxPos.X, dc.CursorPosPrevLine.X)
	dc.CursorMaxPos.Y = maxf(dc.CursorMaxPos.Y, dc.CursorPos.Y-ctx.Style.ItemSpacing.Y)

	dc.PrevLineSize.Y = lineHeight
	dc.CurrLineSize.Y = 0
	dc.PrevLineTextBaseOffset = maxf(dc.CurrLineTextBaseOffset, textBaselineY)
	dc.CurrLineTextBaseOffset = 0

	if dc.LayoutType == LayoutHorizontal {
		ctx.SameLine(0, -1)
	}
}

// ItemSizeRect is ItemSize for a bounding box.
func (ctx *Context) ItemSizeRect(bb Rect, textBaselineY float32) {
	ctx.ItemSize(bb.Size(), textBaselineY)
}

// ItemAdd records an item as the last item and reports whether it is
// visible. Clipped items still take part in navigation.
func (ctx *Context) ItemAdd(bb Rect, id ID, navBB *Rect) bool {
	w := ctx.CurrentWindow
	if id != 0 {
		ctx.KeepAliveID(id)
		nb := bb
		if navBB != nil {
			nb = *navBB
		}
		ctx.navProcessItem(w, nb, id)
	}
	w.DC.LastItemID = id
	w.DC.LastItemRect = bb
	w.DC.LastItemStatusFlags = ItemStatusNone
	ctx.NextItemData.clearFlags()

	if ctx.IsClippedEx(bb, id) {
		return false
	}
	if ctx.IsMouseHoveringRect(bb.Min, bb.Max, true) {
		w.DC.LastItemStatusFlags |= ItemStatusHoveredRect
	}
	return true
}

// IsClippedEx reports whether bb lies outside the clip rectangle. The
// active and nav items are never clipped.
func (ctx *Context) IsClippedEx(bb Rect, id ID) bool {
	w := ctx.CurrentWindow
	if !bb.Overlaps(w.ClipRect) {
		if id == 0 || (id != ctx.ActiveID && id != ctx.NavID) {
			return true
		}
	}
	return false
}

// IsClippedRect reports whether bb is outside the current clip rectangle.
func (ctx *Context) IsClippedRect(bb Rect) bool { return ctx.IsClippedEx(bb, 0) }

// ItemHoverable reports whether the mouse hovers bb with nothing blocking it,
// and claims HoveredID when it does.
func (ctx *Context) ItemHoverable(bb Rect, id ID) bool {
	w := ctx.CurrentWindow
	if ctx.HoveredID != 0 && ctx.HoveredID != id && !ctx.HoveredIDAllowOverlap {
		return false
	}
	if ctx.HoveredWindow != w {
		return false
	}
	if ctx.ActiveID != 0 && ctx.ActiveID != id && !ctx.ActiveIDAllowOverlap {
		return false
	}
	if !ctx.IsMouseHoveringRect(bb.Min, bb.Max, true) {
		return false
	}
	if ctx.NavDisableMouseHover {
		return false
	}
	if !ctx.isWindowContentHoverable(w, HoveredFlagsNone) {
		ctx.HoveredIDDisabled = true
		return false
	}
	if id != 0 {
		ctx.SetHoveredID(id)
	}
	if w.DC.ItemFlags&ItemFlagsDisabled != 0 {
		if ctx.ActiveID == id {
			ctx.ClearActiveID()
		}
		ctx.HoveredIDDisabled = true
		return false
	}
	return true
}

// isWindowContentHoverable is false when a modal or popup above blocks w.
func (ctx *Context) isWindowContentHoverable(w *Window, flags HoveredFlags) bool {
	if ctx.NavWindow == nil {
		return true
	}
	focused := ctx.NavWindow.RootWindow
	if focused == nil || !focused.WasActive || focused == w.RootWindow {
		return true
	}
	if focused.Flags&WindowFlagsModal != 0 {
		return false
	}
	if focused.Flags&WindowFlagsPopup != 0 && flags&HoveredFlagsAllowWhenBlockedByPopup == 0 {
		return false
	}
	return true
}

// ============================================================================
// Last item queries
// ============================================================================

// IsItemHovered reports whether the last item is hovered.
func (ctx *Context) IsItemHovered(flags HoveredFlags) bool {
	w := ctx.CurrentWindow
	if ctx.NavDisableMouseHover && !ctx.NavDisableHighlight {
		return ctx.IsItemFocused()
	}
	if w.DC.LastItemStatusFlags&ItemStatusHoveredRect == 0 {
		return false
	}
	if flags&HoveredFlagsAnyWindow == 0 && ctx.HoveredRootWindow != w.RootWindow && flags&HoveredFlagsAllowWhenOverlapped == 0 {
		return false
	}
	if flags&HoveredFlagsAllowWhenBlockedByActiveItem == 0 {
		if ctx.ActiveID != 0 && ctx.ActiveID != w.DC.LastItemID && !ctx.ActiveIDAllowOverlap && ctx.ActiveID != w.MoveID {
			return false
		}
	}
	if !ctx.isWindowContentHoverable(w, flags) {
		return false
	}
	if w.DC.ItemFlags&ItemFlagsDisabled != 0 && flags&HoveredFlagsAllowWhenDisabled == 0 {
		return false
	}
	if w.DC.LastItemID == w.MoveID && w.WriteAccessed {
		return false
	}
	return true
}

// IsItemActive reports whether the last item is active.
func (ctx *Context) IsItemActive() bool {
	return ctx.ActiveID != 0 && ctx.ActiveID == ctx.CurrentWindow.DC.LastItemID
}

// IsItemActivated reports whether the last item became active this frame.
func (ctx *Context) IsItemActivated() bool {
	if ctx.ActiveID == 0 {
		return false
	}
	w := ctx.CurrentWindow
	return ctx.ActiveID == w.DC.LastItemID && ctx.ActiveIDPreviousFrame != w.DC.LastItemID
}

// IsItemDeactivated reports whether the last item stopped being active
// this frame.
func (ctx *Context) IsItemDeactivated() bool {
	w := ctx.CurrentWindow
	if w.DC.LastItemStatusFlags&ItemStatusHasDeactivated != 0 {
		return w.DC.LastItemStatusFlags&ItemStatusDeactivated != 0
	}
	return ctx.ActiveIDPreviousFrame == w.DC.LastItemID && ctx.ActiveIDPreviousFrame != 0 && ctx.ActiveID != w.DC.LastItemID
}

// IsItemDeactivatedAfterEdit reports IsItemDeactivated for an item whose
// value changed while active.
func (ctx *Context) IsItemDeactivatedAfterEdit() bool {
	return ctx.IsItemDeactivated() && (ctx.ActiveIDPreviousFrameHasBeenEdited || (ctx.ActiveID == 0 && ctx.ActiveIDHasBeenEditedBefore))
}

// IsItemFocused reports whether the last item has nav focus.
func (ctx *Context) IsItemFocused() bool {
	w := ctx.CurrentWindow
	return ctx.NavID != 0 && !ctx.NavDisableHighlight && ctx.NavID == w.DC.LastItemID
}

// IsItemClicked reports a click on the hovered last item.
func (ctx *Context) IsItemClicked(button MouseButton) bool {
	return ctx.IsMouseClicked(button, false) && ctx.IsItemHovered(HoveredFlagsNone)
}

// IsItemEdited reports whether the last item changed its value this frame.
func (ctx *Context) IsItemEdited() bool {
	return ctx.CurrentWindow.DC.LastItemStatusFlags&ItemStatusEdited != 0
}

// IsItemToggledOpen reports whether the last tree node toggled.
func (ctx *Context) IsItemToggledOpen() bool {
	return ctx.CurrentWindow.DC.LastItemStatusFlags&ItemStatusToggledOpen != 0
}

// IsItemToggledSelection reports whether the last selectable toggled.
func (ctx *Context) IsItemToggledSelection() bool {
	return ctx.CurrentWindow.DC.LastItemStatusFlags&ItemStatusToggledSelection != 0
}

// IsItemVisible reports whether the last item overlaps the clip rectangle.
func (ctx *Context) IsItemVisible() bool {
	w := ctx.CurrentWindow
	return w.ClipRect.Overlaps(w.DC.LastItemRect)
}

// GetItemID returns the id of the last item.
func (ctx *Context) GetItemID() ID { return ctx.CurrentWindow.DC.LastItemID }

// GetItemRectMin returns the top-left of the last item.
func (ctx *Context) GetItemRectMin() Vec2 { return ctx.CurrentWindow.DC.LastItemRect.Min }

// GetItemRectMax returns the bottom-right of the last item.
func (ctx *Context) GetItemRectMax() Vec2 { return ctx.CurrentWindow.DC.LastItemRect.Max }

// GetItemRectSize returns the size of the last item.
func (ctx *Context) GetItemRectSize() Vec2 { return ctx.CurrentWindow.DC.LastItemRect.Size() }

// SetItemAllowOverlap lets later items take hover from the last item.
func (ctx *Context) SetItemAllowOverlap() {
	id := ctx.CurrentWindow.DC.LastItemID
	if ctx.HoveredID == id {
		ctx.HoveredIDAllowOverlap = true
	}
	if ctx.ActiveID == id {
		ctx.ActiveIDAllowOverlap = true
	}
}

// SetItemDefaultFocus gives nav focus to the last item when its window
// appears.
func (ctx *Context) SetItemDefaultFocus() {
	w := ctx.CurrentWindow
	if !w.Appearing {
		return
	}
	if ctx.NavWindow == w && ctx.NavID == 0 {
		ctx.NavID = w.DC.LastItemID
		ctx.nav.initRequest = false
	}
}

// ============================================================================
// Item flags
// ============================================================================

// PushItemFlag sets or clears option for following items.
func (ctx *Context) PushItemFlag(option ItemFlags, enabled bool) {
	dc := &ctx.CurrentWindow.DC
	dc.ItemFlagsStack = append(dc.ItemFlagsStack, dc.ItemFlags)
	if enabled {
		dc.ItemFlags |= option
	} else {
		dc.ItemFlags &^= option
	}
}

// PopItemFlag restores the flags saved by PushItemFlag.
func (ctx *Context) PopItemFlag() {
	dc := &ctx.CurrentWindow.DC
	n := len(dc.ItemFlagsStack)
	if n == 0 {
		ctx.recordStackError(stackError("PopItemFlag", ctx.CurrentWindow))
		return
	}
	dc.ItemFlags = dc.ItemFlagsStack[n-1]
	dc.ItemFlagsStack = dc.ItemFlagsStack[:n-1]
}

// PushAllowKeyboardFocus selects whether following items are Tab stops.
func (ctx *Context) PushAllowKeyboardFocus(allow bool) {
	ctx.PushItemFlag(ItemFlagsNoTabStop, !allow)
}

// PopAllowKeyboardFocus pops PushAllowKeyboardFocus.
func (ctx *Context) PopAllowKeyboardFocus() { ctx.PopItemFlag() }

// PushButtonRepeat makes following buttons repeat while held.
func (ctx *Context) PushButtonRepeat(repeat bool) {
	ctx.PushItemFlag(ItemFlagsButtonRepeat, repeat)
}

// PopButtonRepeat pops PushButtonRepeat.
func (ctx *Context) PopButtonRepeat() { ctx.PopItemFlag() }

// PushDisabled greys out following items and makes them ignore input.
func (ctx *Context) PushDisabled(disabled bool) {
	wasDisabled := ctx.CurrentWindow.DC.ItemFlags&ItemFlagsDisabled != 0
	if !wasDisabled && disabled {
		ctx.DisabledAlphaBackup = ctx.Style.Alpha
		ctx.PushStyleVar(StyleVarAlpha, ctx.Style.Alpha*0.6)
	} else {
		ctx.PushStyleVar(StyleVarAlpha, ctx.Style.Alpha)
	}
	ctx.PushItemFlag(ItemFlagsDisabled, wasDisabled || disabled)
}

// PopDisabled pops PushDisabled.
func (ctx *Context) PopDisabled() {
	ctx.PopItemFlag()
	ctx.PopStyleVar(1)
}

// IsRectVisible reports whether the screen rectangle overlaps the current
// clip rect.
func (ctx *Context) IsRectVisible(min, max Vec2) bool {
	return ctx.CurrentWindow.ClipRect.Overlaps(Rect{min, max})
}
