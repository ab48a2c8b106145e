package anchor

import "math"

// ZoomSliderFlags tune ZoomSlider.
type ZoomSliderFlags int

const (
	ZoomSliderFlagsNone           ZoomSliderFlags = 0
	ZoomSliderFlagsVertical       ZoomSliderFlags = 1 << 0
	ZoomSliderFlagsNoAnchors      ZoomSliderFlags = 1 << 1 // no resize handles at the view ends
	ZoomSliderFlagsNoMiddleCarets ZoomSliderFlags = 1 << 2
	ZoomSliderFlagsNoWheel        ZoomSliderFlags = 1 << 3
)

const (
	zoomSliderThickness  float32 = 14
	zoomSliderHandleSize float32 = 12
	zoomSliderRounding   float32 = 3
)

type zoomSliderMode int

const (
	zoomSliderIdle zoomSliderMode = iota
	zoomSliderMoving
	zoomSliderSizingLow
	zoomSliderSizingHigh
)

// zoomSliderState is the edit in progress. Only the active slider owns it.
type zoomSliderState struct {
	id            ID
	mode          zoomSliderMode
	source        float32 // pointer coordinate along the axis at the press
	lower, higher float64 // view when the press happened
}

// ZoomSlider is a scrollbar over [lower, higher] whose thumb is the view
// [*viewLower, *viewHigher]. Dragging the thumb pans the view and dragging
// its end handles resizes it. Clicking the track recenters the view on the
// pointer. The wheel over the thumb grows or shrinks the view by wheelRatio
// of its span per notch, around the pointer. The view never leaves
// [lower, higher] and never gets shorter than three handles.
//
// It reports whether the view changed or is being edited.
func ZoomSlider[T ~float32 | ~float64](ctx *Context, strID string, lower, higher T, viewLower, viewHigher *T, wheelRatio float32, flags ZoomSliderFlags) bool {
	w := ctx.CurrentWindow
	if w.SkipItems {
		return false
	}
	if !ctx.assert(higher > lower, "ZoomSlider needs lower < higher", "id", strID) {
		return false
	}

	axis := AxisX
	if flags&ZoomSliderFlagsVertical != 0 {
		axis = AxisY
	}
	length := ctx.GetContentRegionAvail().axis(axis)
	if length <= 0 {
		length = ctx.CalcItemWidth()
	}
	size := Vec2{length, zoomSliderThickness}
	if axis == AxisY {
		size = Vec2{zoomSliderThickness, length}
	}

	id := w.GetID(strID)
	bb := RectFromSize(w.DC.CursorPos, size)
	ctx.ItemSize(size, -1)
	if !ctx.ItemAdd(bb, id, nil) {
		return false
	}
	_, hovered, held := ctx.ButtonBehavior(bb, id, ButtonFlagsPressedOnClick)

	lo, hi := float64(lower), float64(higher)
	span := hi - lo
	vlo, vhi := float64(*viewLower), float64(*viewHigher)
	origin := bb.Min.axis(axis)
	mouse := ctx.IO.MousePos.axis(axis)
	toScreen := func(v float64) float32 { return origin + float32((v-lo)/span)*length }
	along := func(a, b float32) Rect {
		if axis == AxisY {
			return R(bb.Min.X, a, bb.Max.X, b)
		}
		return R(a, bb.Min.Y, b, bb.Max.Y)
	}
	clip := func() {
		if vlo < lo {
			vhi += lo - vlo
			vlo = lo
		}
		if vhi > hi {
			vlo -= vhi - hi
			vhi = hi
		}
	}

	a, b := toScreen(vlo), toScreen(vhi)
	thumb := along(a, b)
	inThumb := hovered && thumb.Contains(ctx.IO.MousePos)
	anchors := flags&ZoomSliderFlagsNoAnchors == 0 && b-a > zoomSliderHandleSize*2
	lowHandle := along(a, a+zoomSliderHandleSize)
	highHandle := along(b-zoomSliderHandleSize, b)
	onLow := anchors && hovered && lowHandle.Contains(ctx.IO.MousePos)
	onHigh := anchors && hovered && highHandle.Contains(ctx.IO.MousePos)

	zs := &ctx.zoomSlider
	interacted := false
	switch {
	case held && ctx.ActiveIDIsJustActivated:
		*zs = zoomSliderState{id: id, source: mouse, lower: vlo, higher: vhi}
		switch {
		case onHigh:
			zs.mode = zoomSliderSizingHigh
		case onLow:
			zs.mode = zoomSliderSizingLow
		case inThumb:
			zs.mode = zoomSliderMoving
		default:
			mid := float64((mouse-origin)/length)*span + lo
			half := (vhi - vlo) * 0.5
			vlo, vhi = mid-half, mid+half
			clip()
			interacted = true
		}
	case held && zs.id == id:
		delta := float64(mouse-zs.source) / float64(length) * span
		switch zs.mode {
		case zoomSliderMoving:
			vlo, vhi = zs.lower+delta, zs.higher+delta
			clip()
		case zoomSliderSizingLow:
			vlo = math.Max(zs.lower+delta, lo)
		case zoomSliderSizingHigh:
			vhi = math.Min(zs.higher+delta, hi)
		}
	}
	editing := held && zs.id == id && zs.mode != zoomSliderIdle

	if flags&ZoomSliderFlagsNoWheel == 0 && inThumb && ctx.IO.MouseWheel != 0 {
		ratio := float64((mouse - a) / (b - a))
		amount := float64(ctx.IO.MouseWheel*wheelRatio) * (vhi - vlo)
		vlo -= ratio * amount
		vhi += (1 - ratio) * amount
		clip()
		interacted = true
	}

	if minSpan := math.Min(float64(zoomSliderHandleSize*3/length)*span, span); vhi-vlo < minSpan {
		mid := (vlo + vhi) * 0.5
		vlo, vhi = mid-minSpan*0.5, mid+minSpan*0.5
		clip()
	}

	if T(vlo) != *viewLower || T(vhi) != *viewHigher {
		*viewLower, *viewHigher = T(vlo), T(vhi)
		interacted = true
	}

	// Draw the view after this frame's edits.
	dl := w.DrawList
	a, b = toScreen(vlo), toScreen(vhi)
	thumb = along(a, b)
	dl.AddRectFilled(bb.Min, bb.Max, ctx.GetColorU32(ColScrollbarBg, 1), zoomSliderRounding, DrawCornerAll)
	thumbCol := ColFrameBg
	if inThumb || editing {
		thumbCol = ColFrameBgHovered
	}
	dl.AddRectFilled(thumb.Min, thumb.Max, ctx.GetColorU32(thumbCol, 1), zoomSliderRounding, DrawCornerAll)

	if flags&ZoomSliderFlagsNoMiddleCarets == 0 {
		mid := (a + b) * 0.5
		c0, c1 := mid-zoomSliderHandleSize*0.5, mid+zoomSliderHandleSize*0.5
		caretCol := ctx.GetColorU32(ColSliderGrab, 1)
		for i := float32(1); i <= 3; i++ {
			if axis == AxisY {
				x := bb.Min.X + zoomSliderThickness*0.25*i
				dl.AddLine(Vec2{x, c0}, Vec2{x, c1}, caretCol, 1)
			} else {
				y := bb.Min.Y + zoomSliderThickness*0.25*i
				dl.AddLine(Vec2{c0, y}, Vec2{c1, y}, caretCol, 1)
			}
		}
	}

	if anchors = flags&ZoomSliderFlagsNoAnchors == 0 && b-a > zoomSliderHandleSize*2; anchors {
		handleCol := func(over bool, mode zoomSliderMode) uint32 {
			if over || (editing && zs.mode == mode) {
				return ctx.GetColorU32(ColSliderGrabActive, 1)
			}
			return ctx.GetColorU32(ColSliderGrab, 1)
		}
		lowHandle, highHandle = along(a, a+zoomSliderHandleSize), along(b-zoomSliderHandleSize, b)
		dl.AddRectFilled(lowHandle.Min, lowHandle.Max, handleCol(onLow, zoomSliderSizingLow), zoomSliderRounding, DrawCornerAll)
		dl.AddRectFilled(highHandle.Min, highHandle.Max, handleCol(onHigh, zoomSliderSizingHigh), zoomSliderRounding, DrawCornerAll)
	}

	return editing || interacted
}
