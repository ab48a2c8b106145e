package anchor

// Axis selects a horizontal or vertical component.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (v Vec2) axis(a Axis) float32 {
	if a == AxisX {
		return v.X
	}
	return v.Y
}

func (v *Vec2) axisPtr(a Axis) *float32 {
	if a == AxisX {
		return &v.X
	}
	return &v.Y
}

func (ctx *Context) windowScrollbarRect(w *Window, axis Axis) Rect {
	outer := w.Rect()
	inner := w.InnerRect
	border := w.WindowBorderSize
	if axis == AxisX {
		size := w.ScrollbarSizes.Y
		return R(inner.Min.X, maxf(outer.Min.Y, outer.Max.Y-border-size), inner.Max.X, outer.Max.Y)
	}
	size := w.ScrollbarSizes.X
	return R(maxf(outer.Min.X, outer.Max.X-border-size), inner.Min.Y, outer.Max.X, inner.Max.Y)
}

func windowScrollbarID(w *Window, axis Axis) ID {
	if axis == AxisX {
		return HashStr("#SCROLLX", w.ID)
	}
	return HashStr("#SCROLLY", w.ID)
}

// Scrollbar draws and runs the current window's scrollbar on axis.
func (ctx *Context) Scrollbar(axis Axis) {
	w := ctx.CurrentWindow
	id := windowScrollbarID(w, axis)
	ctx.KeepAliveID(id)
	bb := ctx.windowScrollbarRect(w, axis)

	corners := DrawCornerNone
	if axis == AxisX {
		corners |= DrawCornerBotLeft
		if !w.ScrollbarY {
			corners |= DrawCornerBotRight
		}
	} else {
		if w.Flags&WindowFlagsNoTitleBar != 0 && w.Flags&WindowFlagsMenuBar == 0 {
			corners |= DrawCornerTopRight
		}
		if !w.ScrollbarX {
			corners |= DrawCornerBotRight
		}
	}
	avail := w.InnerRect.Max.axis(axis) - w.InnerRect.Min.axis(axis)
	contents := w.ContentSize.axis(axis) + w.WindowPadding.axis(axis)*2
	ctx.ScrollbarEx(bb, id, axis, w.Scroll.axisPtr(axis), avail, contents, corners)
}

// ScrollbarEx runs a scrollbar over bbFrame moving *scroll within
// [0, contents-avail]. It reports whether the grab is held.
func (ctx *Context) ScrollbarEx(bbFrame Rect, id ID, axis Axis, scroll *float32, avail, contents float32, corners DrawCornerFlags) bool {
	w := ctx.CurrentWindow
	if w.SkipItems && !w.Active {
		return false
	}
	fw, fh := bbFrame.Width(), bbFrame.Height()
	if fw <= 0 || fh <= 0 {
		return false
	}
	s := &ctx.Style
	alpha := float32(1)
	if axis == AxisY && fh < ctx.FontSize+s.FramePadding.Y*2 {
		alpha = saturate((fh - ctx.FontSize) / (s.FramePadding.Y * 2))
	}
	if alpha <= 0 {
		return false
	}
	allowInteraction := alpha >= 1

	bb := bbFrame.ExpandV(Vec2{
		-clampf(floorf((fw-2)*0.5), 0, 3),
		-clampf(floorf((fh-2)*0.5), 0, 3),
	})
	sizeV := bb.Width()
	if axis == AxisY {
		sizeV = bb.Height()
	}
	winSizeV := maxf(maxf(contents, avail), 1)
	grabPixels := clampf(sizeV*(avail/winSizeV), s.GrabMinSize, sizeV)
	grabNorm := grabPixels / sizeV

	_, hovered, held := ctx.ButtonBehavior(bb, id, ButtonFlagsNoNavFocus)

	scrollMax := maxf(1, contents-avail)
	ratio := saturate(*scroll / scrollMax)
	grabVNorm := ratio * (sizeV - grabPixels) / sizeV
	if held && allowInteraction && grabNorm < 1 {
		posV := bb.Min.axis(axis)
		mouseV := ctx.IO.MousePos.axis(axis)
		clickedNorm := saturate((mouseV - posV) / sizeV)
		ctx.SetHoveredID(id)

		seekAbsolute := false
		if ctx.ActiveIDIsJustActivated {
			seekAbsolute = clickedNorm < grabVNorm || clickedNorm > grabVNorm+grabNorm
			if seekAbsolute {
				ctx.scrollbarClickDeltaToGrabCenter = 0
			} else {
				ctx.scrollbarClickDeltaToGrabCenter = clickedNorm - grabVNorm - grabNorm*0.5
			}
		}
		scrollNorm := saturate((clickedNorm - ctx.scrollbarClickDeltaToGrabCenter - grabNorm*0.5) / (1 - grabNorm))
		*scroll = floorf(scrollNorm*scrollMax + 0.5)

		ratio = saturate(*scroll / scrollMax)
		grabVNorm = ratio * (sizeV - grabPixels) / sizeV
		if seekAbsolute {
			ctx.scrollbarClickDeltaToGrabCenter = clickedNorm - grabVNorm - grabNorm*0.5
		}
	}

	grabCol := ColScrollbarGrab
	if held {
		grabCol = ColScrollbarGrabActive
	} else if hovered {
		grabCol = ColScrollbarGrabHovered
	}
	w.DrawList.AddRectFilled(bbFrame.Min, bbFrame.Max, ctx.GetColorU32(ColScrollbarBg, 1), w.WindowRounding, corners)
	var grab Rect
	if axis == AxisX {
		x := lerpf(bb.Min.X, bb.Max.X, grabVNorm)
		grab = R(x, bb.Min.Y, x+grabPixels, bb.Max.Y)
	} else {
		y := lerpf(bb.Min.Y, bb.Max.Y, grabVNorm)
		grab = R(bb.Min.X, y, bb.Max.X, y+grabPixels)
	}
	w.DrawList.AddRectFilled(grab.Min, grab.Max, ctx.GetColorU32(grabCol, alpha), s.ScrollbarRounding, DrawCornerAll)
	return held
}

// ============================================================================
// Scroll API
// ============================================================================

func (ctx *Context) calcNextScrollFromScrollTargetAndClamp(w *Window) Vec2 {
	scroll := w.Scroll
	if w.ScrollTarget.X < floatMax {
		scroll.X = w.ScrollTarget.X - w.ScrollTargetCenterRatio.X*(w.SizeFull.X-w.ScrollbarSizes.X)
	}
	if w.ScrollTarget.Y < floatMax {
		deco := w.titleBarHeight(ctx) + w.menuBarHeight(ctx)
		scroll.Y = w.ScrollTarget.Y - w.ScrollTargetCenterRatio.Y*(w.SizeFull.Y-w.ScrollbarSizes.Y-deco)
	}
	scroll.X = floorf(maxf(scroll.X, 0))
	scroll.Y = floorf(maxf(scroll.Y, 0))
	if !w.Collapsed && !w.SkipItems {
		scroll.X = minf(scroll.X, w.ScrollMax.X)
		scroll.Y = minf(scroll.Y, w.ScrollMax.Y)
	}
	return scroll
}

func (ctx *Context) setScrollX(w *Window, x float32) {
	w.ScrollTarget.X = x
	w.ScrollTargetCenterRatio.X = 0
}

func (ctx *Context) setScrollY(w *Window, y float32) {
	w.ScrollTarget.Y = y
	w.ScrollTargetCenterRatio.Y = 0
}

func (ctx *Context) setScrollFromPosX(w *Window, localX, centerRatio float32) {
	w.ScrollTarget.X = floorf(localX + w.Scroll.X)
	w.ScrollTargetCenterRatio.X = centerRatio
}

func (ctx *Context) setScrollFromPosY(w *Window, localY, centerRatio float32) {
	localY -= w.titleBarHeight(ctx) + w.menuBarHeight(ctx)
	w.ScrollTarget.Y = floorf(localY + w.Scroll.Y)
	w.ScrollTargetCenterRatio.Y = centerRatio
}

// GetScrollX returns the horizontal scroll of the current window.
func (ctx *Context) GetScrollX() float32 { return ctx.CurrentWindow.Scroll.X }

// GetScrollY returns the vertical scroll of the current window.
func (ctx *Context) GetScrollY() float32 { return ctx.CurrentWindow.Scroll.Y }

// GetScrollMaxX returns the largest horizontal scroll.
func (ctx *Context) GetScrollMaxX() float32 { return ctx.CurrentWindow.ScrollMax.X }

// GetScrollMaxY returns the largest vertical scroll.
func (ctx *Context) GetScrollMaxY() float32 { return ctx.CurrentWindow.ScrollMax.Y }

// SetScrollX requests a horizontal scroll, applied on the next Begin.
func (ctx *Context) SetScrollX(x float32) { ctx.setScrollX(ctx.CurrentWindow, x) }

// SetScrollY requests a vertical scroll, applied on the next Begin.
func (ctx *Context) SetScrollY(y float32) { ctx.setScrollY(ctx.CurrentWindow, y) }

// SetScrollFromPosX scrolls so local x sits at centerRatio of the view.
func (ctx *Context) SetScrollFromPosX(localX, centerRatio float32) {
	ctx.setScrollFromPosX(ctx.CurrentWindow, localX, centerRatio)
}

// SetScrollFromPosY scrolls so local y sits at centerRatio of the view.
func (ctx *Context) SetScrollFromPosY(localY, centerRatio float32) {
	ctx.setScrollFromPosY(ctx.CurrentWindow, localY, centerRatio)
}

// SetScrollHereX scrolls to the last item horizontally.
func (ctx *Context) SetScrollHereX(centerRatio float32) {
	w := ctx.CurrentWindow
	sp := ctx.Style.ItemSpacing.X
	target := lerpf(w.DC.LastItemRect.Min.X-sp, w.DC.LastItemRect.Max.X+sp, centerRatio)
	ctx.setScrollFromPosX(w, target-w.Pos.X, centerRatio)
}

// SetScrollHereY scrolls to the current line vertically.
func (ctx *Context) SetScrollHereY(centerRatio float32) {
	w := ctx.CurrentWindow
	sp := ctx.Style.ItemSpacing.Y
	target := lerpf(w.DC.CursorPosPrevLine.Y-sp, w.DC.CursorPosPrevLine.Y+w.DC.PrevLineSize.Y+sp, centerRatio)
	ctx.setScrollFromPosY(w, target-w.Pos.Y, centerRatio)
}

// scrollToBringRectIntoView scrolls w and its parents so r becomes
// visible, returning the scroll delta applied to w.
func (ctx *Context) scrollToBringRectIntoView(w *Window, r Rect) Vec2 {
	view := Rect{w.InnerRect.Min.Sub(Vec2{1, 1}), w.InnerRect.Max.Add(Vec2{1, 1})}
	var delta Vec2
	if !view.ContainsRect(r) {
		sp := ctx.Style.ItemSpacing
		if w.ScrollbarX && r.Min.X < view.Min.X {
			ctx.setScrollFromPosX(w, r.Min.X-w.Pos.X+sp.X, 0)
		} else if w.ScrollbarX && r.Max.X >= view.Max.X {
			ctx.setScrollFromPosX(w, r.Max.X-w.Pos.X+sp.X, 1)
		}
		if r.Min.Y < view.Min.Y {
			ctx.setScrollFromPosY(w, r.Min.Y-w.Pos.Y-sp.Y, 0)
		} else if r.Max.Y >= view.Max.Y {
			ctx.setScrollFromPosY(w, r.Max.Y-w.Pos.Y+sp.Y, 1)
		}
		delta = ctx.calcNextScrollFromScrollTargetAndClamp(w).Sub(w.Scroll)
	}
	if w.Flags&WindowFlagsChildWindow != 0 && w.ParentWindow != nil {
		delta = delta.Add(ctx.scrollToBringRectIntoView(w.ParentWindow, Rect{r.Min.Sub(delta), r.Max.Sub(delta)}))
	}
	return delta
}
