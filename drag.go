package anchor

import (
	"math"
	"slices"
)

// dragMouseThresholdFactor scales IO.MouseDragThreshold for drag widgets,
// which start moving sooner than other drags.
const dragMouseThresholdFactor = 0.50

// DragBehavior turns pointer or keyboard motion into changes of *v while id
// is active. Motion accumulates in Context.DragCurrentAccum and is only
// committed once it changes the value as displayed by format.
//
// With vMin < vMax the result is clamped, except that a value already outside
// the range (typed in as text) is left alone until dragged back toward it.
func DragBehavior[T Scalar](ctx *Context, id ID, v *T, speed float32, vMin, vMax T, format string, flags SliderFlags) bool {
	if ctx.ActiveID == id {
		switch {
		case ctx.CurrentWindow.DC.ItemFlags&ItemFlagsDisabled != 0:
			ctx.ClearActiveID()
		case ctx.ActiveIDSource == InputSourceMouse && !ctx.IO.MouseDown[MouseButtonLeft]:
			ctx.ClearActiveID()
		case ctx.ActiveIDSource == InputSourceNav && ctx.NavActivatePressedID == id && !ctx.ActiveIDIsJustActivated:
			ctx.ClearActiveID()
		}
	}
	if ctx.ActiveID != id {
		return false
	}
	if ctx.CurrentWindow.DC.ItemFlags&ItemFlagsReadOnly != 0 || flags&SliderFlagsReadOnly != 0 {
		return false
	}
	return dragBehaviorT(ctx, v, speed, vMin, vMax, format, flags)
}

func dragBehaviorT[T Scalar](ctx *Context, v *T, speed float32, vMin, vMax T, format string, flags SliderFlags) bool {
	axis := AxisX
	if flags&SliderFlagsVertical != 0 {
		axis = AxisY
	}
	isClamped := vMin < vMax
	isDecimal := isFloat[T]()
	isLog := flags&SliderFlagsLogarithmic != 0 && isDecimal
	rangeF := float64(vMax) - float64(vMin)

	// Default speed is a fraction of the range.
	if speed == 0 && isClamped && rangeF < math.MaxFloat32 {
		speed = float32(rangeF * float64(ctx.DragSpeedDefaultRatio))
	}

	adjust := float32(0)
	switch {
	case ctx.ActiveIDSource == InputSourceMouse && ctx.isMousePastDragThreshold(MouseButtonLeft, ctx.IO.MouseDragThreshold*dragMouseThresholdFactor):
		adjust = ctx.IO.MouseDelta.axis(axis)
		if ctx.IO.KeyAlt {
			adjust *= 1.0 / 100.0
		}
		if ctx.IO.KeyShift {
			adjust *= 10
		}
	case ctx.ActiveIDSource == InputSourceNav:
		precision := 0
		if isDecimal {
			precision = ParseFormatPrecision(format, 3)
		}
		adjust = ctx.GetNavInputAmount2d().axis(axis)
		speed = maxf(speed, float32(GetMinimumStepAtDecimalPrecision(precision)))
	}
	adjust *= speed

	// Vertical drags go up for higher values.
	if axis == AxisY {
		adjust = -adjust
	}

	// Logarithmic drags move in ratio space.
	if isLog && rangeF < math.MaxFloat32 && rangeF > 0.000001 {
		adjust /= float32(rangeF)
	}

	pastLimitsOutward := isClamped && ((*v >= vMax && adjust > 0) || (*v <= vMin && adjust < 0))
	if ctx.ActiveIDIsJustActivated || pastLimitsOutward {
		ctx.DragCurrentAccum = 0
		ctx.DragCurrentAccumDirty = false
	} else if adjust != 0 {
		ctx.DragCurrentAccum += adjust
		ctx.DragCurrentAccumDirty = true
	}
	if !ctx.DragCurrentAccumDirty {
		return false
	}

	cur := *v
	var oldRatio float32
	var logEps float32
	if isLog {
		precision := ParseFormatPrecision(format, 3)
		logEps = float32(math.Pow(0.1, float64(precision)))
		oldRatio = ScaleRatioFromValue(cur, vMin, vMax, true, logEps, 0)
		cur = ScaleValueFromRatio(oldRatio+ctx.DragCurrentAccum, vMin, vMax, true, logEps, 0)
	} else {
		cur = addAccum(cur, ctx.DragCurrentAccum)
	}

	if flags&SliderFlagsNoRoundToFormat == 0 {
		cur = RoundScalarWithFormat(format, cur)
	}

	// Keep the part of the motion the rounding swallowed.
	ctx.DragCurrentAccumDirty = false
	if isLog {
		ctx.DragCurrentAccum -= ScaleRatioFromValue(cur, vMin, vMax, true, logEps, 0) - oldRatio
	} else if isDecimal {
		ctx.DragCurrentAccum -= float32(float64(cur) - float64(*v))
	} else {
		ctx.DragCurrentAccum -= float32(int64(cur) - int64(*v))
		// Motion past a saturated limit is dropped.
		if lo, hi := DataTypeLimits[T](); cur == lo || cur == hi {
			ctx.DragCurrentAccum = 0
		}
	}

	// No negative zero.
	if cur == 0 {
		cur = 0
	}

	// Integer overflow shows up as motion against the drag direction.
	if cur != *v && isClamped {
		if cur < vMin || (cur > *v && adjust < 0 && !isDecimal) {
			cur = vMin
		}
		if cur > vMax || (cur < *v && adjust > 0 && !isDecimal) {
			cur = vMax
		}
	}

	if cur == *v {
		return false
	}
	*v = cur
	return true
}

// addAccum adds the integral part of accum to an integer value, saturating
// at the limits of its type, or all of it to a float.
func addAccum[T Scalar](v T, accum float32) T {
	if isFloat[T]() {
		return T(float64(v) + float64(accum))
	}
	lo, hi := DataTypeLimits[T]()
	rest := math.Trunc(float64(accum))
	span := float64(hi) - float64(lo)
	switch {
	case rest >= span:
		return hi
	case rest <= -span:
		return lo
	}
	// The delta may not fit T, so it is applied in steps of at most hi.
	for rest > 0 && v < hi {
		step := min(rest, float64(hi))
		v = AddClampOverflow(v, T(step), lo, hi)
		rest -= step
	}
	for rest < 0 && v > lo {
		step := min(-rest, float64(hi))
		v = SubClampOverflow(v, T(step), lo, hi)
		rest += step
	}
	return v
}

// ============================================================================
// Widgets
// ============================================================================

// DragScalar edits *v by dragging horizontally over the frame. speed is the
// value change per pixel; vMin == vMax leaves the value unbounded.
// Ctrl+Click or double click opens a text field. Options: WithFormat,
// WithSliderFlags.
func DragScalar[T Scalar](ctx *Context, label string, v *T, speed float32, vMin, vMax T, opts ...Option) bool {
	w := ctx.CurrentWindow
	if w.SkipItems {
		return false
	}
	o := applyOptions(opts)
	format := sliderFormat[T](o)
	flags := GetOpt(o, OptSliderFlags)

	st := &ctx.Style
	id := w.GetID(label)
	width := ctx.CalcItemWidth()
	labelSize := ctx.CalcTextSize(label, true, 0)
	frameBB := Rect{w.DC.CursorPos, w.DC.CursorPos.Add(Vec2{width, labelSize.Y + st.FramePadding.Y*2})}
	totalBB := frameBB
	if labelSize.X > 0 {
		totalBB.Max.X += st.ItemInnerSpacing.X + labelSize.X
	}
	ctx.ItemSizeRect(totalBB, st.FramePadding.Y)
	if !ctx.ItemAdd(totalBB, id, &frameBB) {
		return false
	}

	hovered := ctx.ItemHoverable(frameBB, id)
	tempInputAllowed := flags&SliderFlagsNoInput == 0
	tempInputActive := tempInputAllowed && ctx.TempInputIsActive(id)
	if !tempInputActive {
		focusRequested := tempInputAllowed && ctx.focusableItemRegister(w, id)
		clicked := hovered && ctx.IO.MouseClicked[MouseButtonLeft]
		doubleClicked := hovered && ctx.IO.MouseDoubleClicked[MouseButtonLeft]
		if focusRequested || clicked || doubleClicked || ctx.NavActivateID == id || ctx.NavInputID == id {
			ctx.SetActiveID(id, w)
			ctx.SetFocusID(id, w)
			ctx.FocusWindow(w)
			ctx.setActiveIDUsingNav(true, false, false)
			if tempInputAllowed && (focusRequested || (clicked && ctx.IO.KeyCtrl) || doubleClicked || ctx.NavInputID == id) {
				tempInputActive = true
				ctx.focusableItemUnregister(w)
			}
		}
		// A click without motion opens text input when configured.
		if ctx.IO.ConfigDragClickToInputText && tempInputAllowed && !tempInputActive &&
			ctx.ActiveID == id && hovered && ctx.IO.MouseReleased[MouseButtonLeft] &&
			!ctx.isMousePastDragThreshold(MouseButtonLeft, ctx.IO.MouseDragThreshold*dragMouseThresholdFactor) {
			ctx.NavInputID = id
			tempInputActive = true
			ctx.focusableItemUnregister(w)
		}
	}

	if tempInputActive {
		if flags&SliderFlagsAlwaysClamp != 0 && vMin < vMax {
			return TempInputScalar(ctx, frameBB, id, label, v, format, &vMin, &vMax)
		}
		return TempInputScalar(ctx, frameBB, id, label, v, format, nil, nil)
	}

	ctx.RenderNavHighlight(frameBB, id)
	ctx.RenderFrame(frameBB.Min, frameBB.Max, ctx.GetColorU32(ctx.frameColorFor(id), 1), true, st.FrameRounding)

	changed := DragBehavior(ctx, id, v, speed, vMin, vMax, format, flags)
	if changed {
		ctx.MarkItemEdited(id)
	}

	value := FormatScalar(format, *v)
	ctx.RenderTextClipped(frameBB.Min, frameBB.Max, value, nil, Vec2{0.5, 0.5}, nil)
	if labelSize.X > 0 {
		ctx.RenderText(Vec2{frameBB.Max.X + st.ItemInnerSpacing.X, frameBB.Min.Y + st.FramePadding.Y}, label, true)
	}
	return changed
}

// DragScalarN draws one drag per component of v on a single line.
func DragScalarN[T Scalar](ctx *Context, label string, v []T, speed float32, vMin, vMax T, opts ...Option) bool {
	return scalarN(ctx, label, len(v), func(i int) bool {
		return DragScalar(ctx, "", &v[i], speed, vMin, vMax, opts...)
	})
}

// dragRange2 edits a [lo, hi] pair where each bound limits the other.
func dragRange2[T Scalar](ctx *Context, label string, curMin, curMax *T, speed float32, vMin, vMax T, opts ...Option) bool {
	w := ctx.CurrentWindow
	if w.SkipItems {
		return false
	}
	o := applyOptions(opts)
	flags := GetOpt(o, OptSliderFlags)
	formatMax := GetOpt(o, OptFormatMax)
	typeMin, typeMax := DataTypeLimits[T]()

	ctx.PushID(label)
	ctx.BeginGroup()
	ctx.PushMultiItemsWidths(2, ctx.CalcItemWidth())

	minMin, minMax := vMin, minScalar(vMax, *curMax)
	if vMin >= vMax {
		minMin, minMax = typeMin, *curMax
	}
	minFlags := flags
	if minMin == minMax {
		minFlags |= SliderFlagsReadOnly
	}
	changed := DragScalar(ctx, "##min", curMin, speed, minMin, minMax, slices.Concat(opts, []Option{WithSliderFlags(minFlags)})...)
	ctx.PopItemWidth()
	ctx.SameLine(0, ctx.Style.ItemInnerSpacing.X)

	maxMin, maxMax := maxScalar(vMin, *curMin), vMax
	if vMin >= vMax {
		maxMin, maxMax = *curMin, typeMax
	}
	maxFlags := flags
	if maxMin == maxMax {
		maxFlags |= SliderFlagsReadOnly
	}
	maxOpts := slices.Concat(opts, []Option{WithSliderFlags(maxFlags)})
	if formatMax != "" {
		maxOpts = append(maxOpts, WithFormat(formatMax))
	}
	if DragScalar(ctx, "##max", curMax, speed, maxMin, maxMax, maxOpts...) {
		changed = true
	}
	ctx.PopItemWidth()
	ctx.SameLine(0, ctx.Style.ItemInnerSpacing.X)

	ctx.TextEx(FindRenderedTextEnd(label))
	ctx.EndGroup()
	ctx.PopID()
	return changed
}

func minScalar[T Scalar](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func maxScalar[T Scalar](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// DragFloat edits a float32. Pass vMin == vMax for no bounds.
func (ctx *Context) DragFloat(label string, v *float32, speed, vMin, vMax float32, opts ...Option) bool {
	return DragScalar(ctx, label, v, speed, vMin, vMax, opts...)
}

// DragFloat2 edits two float32 components.
func (ctx *Context) DragFloat2(label string, v *[2]float32, speed, vMin, vMax float32, opts ...Option) bool {
	return DragScalarN(ctx, label, v[:], speed, vMin, vMax, opts...)
}

// DragFloat3 edits three float32 components.
func (ctx *Context) DragFloat3(label string, v *[3]float32, speed, vMin, vMax float32, opts ...Option) bool {
	return DragScalarN(ctx, label, v[:], speed, vMin, vMax, opts...)
}

// DragFloat4 edits four float32 components.
func (ctx *Context) DragFloat4(label string, v *[4]float32, speed, vMin, vMax float32, opts ...Option) bool {
	return DragScalarN(ctx, label, v[:], speed, vMin, vMax, opts...)
}

// DragFloatRange2 edits a float32 range. WithFormatMax sets the format of
// the upper bound.
func (ctx *Context) DragFloatRange2(label string, curMin, curMax *float32, speed, vMin, vMax float32, opts ...Option) bool {
	return dragRange2(ctx, label, curMin, curMax, speed, vMin, vMax, opts...)
}

// DragInt edits an int.
func (ctx *Context) DragInt(label string, v *int, speed float32, vMin, vMax int, opts ...Option) bool {
	return DragScalar(ctx, label, v, speed, vMin, vMax, opts...)
}

// DragInt2 edits two int components.
func (ctx *Context) DragInt2(label string, v *[2]int, speed float32, vMin, vMax int, opts ...Option) bool {
	return DragScalarN(ctx, label, v[:], speed, vMin, vMax, opts...)
}

// DragInt3 edits three int components.
func (ctx *Context) DragInt3(label string, v *[3]int, speed float32, vMin, vMax int, opts ...Option) bool {
	return DragScalarN(ctx, label, v[:], speed, vMin, vMax, opts...)
}

// DragInt4 edits four int components.
func (ctx *Context) DragInt4(label string, v *[4]int, speed float32, vMin, vMax int, opts ...Option) bool {
	return DragScalarN(ctx, label, v[:], speed, vMin, vMax, opts...)
}

// DragIntRange2 edits an int range.
func (ctx *Context) DragIntRange2(label string, curMin, curMax *int, speed float32, vMin, vMax int, opts ...Option) bool {
	return dragRange2(ctx, label, curMin, curMax, speed, vMin, vMax, opts...)
}
