package anchor

import (
	"math"
)

// SliderFlags tune Drag and Slider widgets.
type SliderFlags int

const (
	SliderFlagsNone            SliderFlags = 0
	SliderFlagsAlwaysClamp     SliderFlags = 1 << 4 // clamp text input too
	SliderFlagsLogarithmic     SliderFlags = 1 << 5 // float kinds only
	SliderFlagsNoRoundToFormat SliderFlags = 1 << 6 // keep full precision instead of the displayed one
	SliderFlagsNoInput         SliderFlags = 1 << 7 // no Ctrl+Click or double click text input
	SliderFlagsVertical        SliderFlags = 1 << 20
	SliderFlagsReadOnly        SliderFlags = 1 << 21
)

// sliderGrabPadding is the gap between the frame and the grab.
const sliderGrabPadding = 2

// ============================================================================
// Ratio space
// ============================================================================

// logFudge moves a bound that is closer to zero than epsilon onto ±epsilon.
func logFudge(v, epsilon float64) float64 {
	if math.Abs(v) < epsilon {
		if v < 0 {
			return -epsilon
		}
		return epsilon
	}
	return v
}

// ScaleRatioFromValue maps v in [vMin, vMax] to [0, 1], linearly or
// logarithmically. Logarithmic ranges that cross zero are split at
// zero_point_center = -vMin/(vMax-vMin), with a dead zone of
// zeroDeadzoneHalfSize on each side; v == 0 maps to zero_point_center.
// An empty range maps to 0.
func ScaleRatioFromValue[T Scalar](v, vMin, vMax T, logarithmic bool, logEpsilon, zeroDeadzoneHalfSize float32) float32 {
	if vMin == vMax {
		return 0
	}
	var clamped T
	if vMin < vMax {
		clamped = clampScalar(v, vMin, vMax)
	} else {
		clamped = clampScalar(v, vMax, vMin)
	}
	if !logarithmic {
		return float32((float64(clamped) - float64(vMin)) / (float64(vMax) - float64(vMin)))
	}

	flipped := vMax < vMin
	if flipped {
		vMin, vMax = vMax, vMin
	}
	eps := float64(logEpsilon)
	lo, hi := float64(vMin), float64(vMax)
	loF, hiF := logFudge(lo, eps), logFudge(hi, eps)
	// (-100 .. 0) converts to (-100 .. -epsilon), not (-100 .. epsilon).
	if lo == 0 && hi < 0 {
		loF = -eps
	} else if hi == 0 && lo < 0 {
		hiF = -eps
	}

	c := float64(clamped)
	var result float32
	switch {
	case c <= loF:
		result = 0
	case c >= hiF:
		result = 1
	case lo*hi < 0:
		zeroCenter := float32(-lo / (hi - lo))
		snapL := zeroCenter - zeroDeadzoneHalfSize
		snapR := zeroCenter + zeroDeadzoneHalfSize
		switch {
		case v == 0:
			result = zeroCenter
		case v < 0:
			result = (1 - float32(math.Log(-c/eps)/math.Log(-loF/eps))) * snapL
		default:
			result = snapR + float32(math.Log(c/eps)/math.Log(hiF/eps))*(1-snapR)
		}
	case lo < 0 || hi < 0:
		result = 1 - float32(math.Log(-c/-hiF)/math.Log(-loF/-hiF))
	default:
		result = float32(math.Log(c/loF) / math.Log(hiF/loF))
	}
	if flipped {
		return 1 - result
	}
	return result
}

// ScaleValueFromRatio is the inverse of ScaleRatioFromValue. Integer kinds
// round so that the grab position matches the value under the pointer.
func ScaleValueFromRatio[T Scalar](t float32, vMin, vMax T, logarithmic bool, logEpsilon, zeroDeadzoneHalfSize float32) T {
	if vMin == vMax {
		return vMin
	}
	lo, hi := float64(vMin), float64(vMax)
	if logarithmic {
		// The extents are exact; fudging would otherwise keep a fully-left
		// grab from reaching vMin.
		if t <= 0 {
			return vMin
		}
		if t >= 1 {
			return vMax
		}
		eps := float64(logEpsilon)
		flipped := vMax < vMin
		loF, hiF := logFudge(lo, eps), logFudge(hi, eps)
		if flipped {
			loF, hiF = hiF, loF
		}
		if hi == 0 && lo < 0 {
			hiF = -eps
		}
		tf := t
		if flipped {
			tf = 1 - t
		}
		var r float64
		switch {
		case lo*hi < 0:
			zeroCenter := float32(-math.Min(lo, hi) / math.Abs(hi-lo))
			snapL := zeroCenter - zeroDeadzoneHalfSize
			snapR := zeroCenter + zeroDeadzoneHalfSize
			switch {
			case tf >= snapL && tf <= snapR:
				r = 0
			case tf < zeroCenter:
				r = -(eps * math.Pow(-loF/eps, float64(1-tf/snapL)))
			default:
				r = eps * math.Pow(hiF/eps, float64((tf-snapR)/(1-snapR)))
			}
		case lo < 0 || hi < 0:
			r = -(-hiF * math.Pow(-loF/-hiF, float64(1-tf)))
		default:
			r = loF * math.Pow(hiF/loF, float64(tf))
		}
		return fromFloat[T](r)
	}

	if isFloat[T]() {
		return T(lo + (hi-lo)*float64(t))
	}
	if t >= 1 {
		return vMax
	}
	off := (hi - lo) * float64(t)
	half := 0.5
	if vMin > vMax {
		half = -0.5
	}
	return fromFloat[T](lo + math.Trunc(off+half))
}

func clampScalar[T Scalar](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// logSliderParams returns the zero epsilon and dead zone half size of a
// logarithmic slider of usable length usable.
func (ctx *Context) logSliderParams(format string, usable float32) (epsilon, deadzone float32) {
	precision := ParseFormatPrecision(format, 3)
	epsilon = float32(math.Pow(0.1, float64(precision)))
	deadzone = ctx.Style.LogSliderDeadzone * 0.5 / maxf(usable, 1)
	return epsilon, deadzone
}

// ============================================================================
// Behavior
// ============================================================================

// SliderBehavior maps the pointer position inside bb onto [vMin, vMax] while
// id is active and returns the grab rectangle to draw. Left/Right (or
// Up/Down for vertical sliders) step the value when driven by keyboard.
func SliderBehavior[T Scalar](ctx *Context, bb Rect, id ID, v *T, vMin, vMax T, format string, flags SliderFlags) (changed bool, grab Rect) {
	// Disabling a slider mid-drag ends the drag.
	if ctx.ActiveID == id && ctx.CurrentWindow.DC.ItemFlags&ItemFlagsDisabled != 0 {
		ctx.ClearActiveID()
	}
	if ctx.CurrentWindow.DC.ItemFlags&ItemFlagsReadOnly != 0 || flags&SliderFlagsReadOnly != 0 {
		return false, Rect{bb.Min, bb.Min}
	}
	dt := DataTypeOf[T]()
	if dt >= DataTypeS32 {
		lo, hi := DataTypeLimits[T]()
		ctx.assert(vMin >= lo/2 && vMax <= hi/2, "SliderBehavior: range limited to half the type range", "type", dt)
	}

	st := &ctx.Style
	axis := AxisX
	if flags&SliderFlagsVertical != 0 {
		axis = AxisY
	}
	isDecimal := dt.IsFloat()
	isLog := flags&SliderFlagsLogarithmic != 0 && isDecimal

	sliderSz := bb.Max.axis(axis) - bb.Min.axis(axis) - sliderGrabPadding*2
	grabSz := st.GrabMinSize
	vRange := math.Abs(float64(vMax) - float64(vMin))
	if !isDecimal {
		// For integer sliders the grab represents one unit when possible.
		grabSz = maxf(float32(float64(sliderSz)/(vRange+1)), st.GrabMinSize)
	}
	grabSz = minf(grabSz, sliderSz)
	usable := sliderSz - grabSz
	usableMin := bb.Min.axis(axis) + sliderGrabPadding + grabSz*0.5
	usableMax := bb.Max.axis(axis) - sliderGrabPadding - grabSz*0.5

	var logEps, deadzone float32
	if isLog {
		logEps, deadzone = ctx.logSliderParams(format, usable)
	}

	if ctx.ActiveID == id {
		setNewValue := false
		clickedT := float32(0)
		switch ctx.ActiveIDSource {
		case InputSourceMouse:
			if !ctx.IO.MouseDown[MouseButtonLeft] {
				ctx.ClearActiveID()
				break
			}
			if usable > 0 {
				clickedT = saturate((ctx.IO.MousePos.axis(axis) - usableMin) / usable)
			}
			if axis == AxisY {
				clickedT = 1 - clickedT
			}
			setNewValue = true
		case InputSourceNav, InputSourceKeyboard:
			if ctx.ActiveIDIsJustActivated {
				ctx.SliderCurrentAccum = 0
				ctx.SliderCurrentAccumDirty = false
			}
			d2 := ctx.navInputAmount2d(0, 0)
			delta := d2.X
			if axis == AxisY {
				delta = -d2.Y
			}
			if delta != 0 {
				precision := 0
				if isDecimal {
					precision = ParseFormatPrecision(format, 3)
				}
				switch {
				case precision > 0:
					// Keyboard steps are a percentage of the range.
					delta /= 100
					if ctx.IO.KeyCtrl {
						delta /= 10
					}
				case (vRange >= -100 && vRange <= 100) || ctx.IO.KeyCtrl:
					// Integer steps.
					sign := float32(1)
					if delta < 0 {
						sign = -1
					}
					delta = sign / float32(vRange)
				default:
					delta /= 100
				}
				if ctx.IO.KeyShift {
					delta *= 10
				}
				ctx.SliderCurrentAccum += delta
				ctx.SliderCurrentAccumDirty = true
			}

			accum := ctx.SliderCurrentAccum
			if ctx.NavActivatePressedID == id && !ctx.ActiveIDIsJustActivated {
				ctx.ClearActiveID()
			} else if ctx.SliderCurrentAccumDirty {
				clickedT = ScaleRatioFromValue(*v, vMin, vMax, isLog, logEps, deadzone)
				if (clickedT >= 1 && accum > 0) || (clickedT <= 0 && accum < 0) {
					// Pushing against a limit does not accumulate.
					ctx.SliderCurrentAccum = 0
				} else {
					setNewValue = true
					oldT := clickedT
					clickedT = saturate(clickedT + accum)

					vNew := ScaleValueFromRatio(clickedT, vMin, vMax, isLog, logEps, deadzone)
					if flags&SliderFlagsNoRoundToFormat == 0 {
						vNew = RoundScalarWithFormat(format, vNew)
					}
					newT := ScaleRatioFromValue(vNew, vMin, vMax, isLog, logEps, deadzone)
					if accum > 0 {
						ctx.SliderCurrentAccum -= minf(newT-oldT, accum)
					} else {
						ctx.SliderCurrentAccum -= maxf(newT-oldT, accum)
					}
				}
				ctx.SliderCurrentAccumDirty = false
			}
		}

		if setNewValue {
			vNew := ScaleValueFromRatio(clickedT, vMin, vMax, isLog, logEps, deadzone)
			if flags&SliderFlagsNoRoundToFormat == 0 {
				vNew = RoundScalarWithFormat(format, vNew)
			}
			if *v != vNew {
				*v = vNew
				changed = true
			}
		}
	}

	if sliderSz < 1 {
		return changed, Rect{bb.Min, bb.Min}
	}
	grabT := ScaleRatioFromValue(*v, vMin, vMax, isLog, logEps, deadzone)
	if axis == AxisY {
		grabT = 1 - grabT
	}
	grabPos := lerpf(usableMin, usableMax, grabT)
	if axis == AxisX {
		grab = Rect{Vec2{grabPos - grabSz*0.5, bb.Min.Y + sliderGrabPadding}, Vec2{grabPos + grabSz*0.5, bb.Max.Y - sliderGrabPadding}}
	} else {
		grab = Rect{Vec2{bb.Min.X + sliderGrabPadding, grabPos - grabSz*0.5}, Vec2{bb.Max.X - sliderGrabPadding, grabPos + grabSz*0.5}}
	}
	return changed, grab
}

// ============================================================================
// Widgets
// ============================================================================

// sliderFormat returns the display format of a numeric widget.
func sliderFormat[T Scalar](o options) string {
	if f := GetOpt(o, OptFormat); f != "" {
		return f
	}
	return dataTypeInfo[DataTypeOf[T]()].PrintFmt
}

// SliderScalar edits *v by dragging a grab inside [vMin, vMax]. Ctrl+Click
// or Enter opens a text field accepting "*2"-style expressions. Options:
// WithFormat, WithSliderFlags.
func SliderScalar[T Scalar](ctx *Context, label string, v *T, vMin, vMax T, opts ...Option) bool {
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
		if focusRequested || clicked || ctx.NavActivateID == id || ctx.NavInputID == id {
			ctx.SetActiveID(id, w)
			ctx.SetFocusID(id, w)
			ctx.FocusWindow(w)
			ctx.setActiveIDUsingNav(true, false, false)
			if tempInputAllowed && (focusRequested || (clicked && ctx.IO.KeyCtrl) || ctx.NavInputID == id) {
				tempInputActive = true
				ctx.focusableItemUnregister(w)
			}
		}
	}

	if tempInputActive {
		if flags&SliderFlagsAlwaysClamp != 0 {
			return TempInputScalar(ctx, frameBB, id, label, v, format, &vMin, &vMax)
		}
		return TempInputScalar(ctx, frameBB, id, label, v, format, nil, nil)
	}

	ctx.RenderNavHighlight(frameBB, id)
	ctx.RenderFrame(frameBB.Min, frameBB.Max, ctx.GetColorU32(ctx.frameColorFor(id), 1), true, st.FrameRounding)

	changed, grab := SliderBehavior(ctx, frameBB, id, v, vMin, vMax, format, flags)
	if changed {
		ctx.MarkItemEdited(id)
	}
	if grab.Max.X > grab.Min.X {
		grabCol := ColSliderGrab
		if ctx.ActiveID == id {
			grabCol = ColSliderGrabActive
		}
		w.DrawList.AddRectFilled(grab.Min, grab.Max, ctx.GetColorU32(grabCol, 1), st.GrabRounding, DrawCornerAll)
	}

	value := FormatScalar(format, *v)
	ctx.RenderTextClipped(frameBB.Min, frameBB.Max, value, nil, Vec2{0.5, 0.5}, nil)
	if labelSize.X > 0 {
		ctx.RenderText(Vec2{frameBB.Max.X + st.ItemInnerSpacing.X, frameBB.Min.Y + st.FramePadding.Y}, label, true)
	}
	return changed
}

// frameColorFor picks the frame background of a widget owning id.
func (ctx *Context) frameColorFor(id ID) Col {
	switch {
	case ctx.ActiveID == id:
		return ColFrameBgActive
	case ctx.HoveredID == id:
		return ColFrameBgHovered
	}
	return ColFrameBg
}

// SliderScalarN draws one slider per component of v on a single line.
func SliderScalarN[T Scalar](ctx *Context, label string, v []T, vMin, vMax T, opts ...Option) bool {
	return scalarN(ctx, label, len(v), func(i int) bool {
		return SliderScalar(ctx, "", &v[i], vMin, vMax, opts...)
	})
}

// scalarN lays out n components with shared item widths and one trailing
// label. Each component is pushed with its index as ID.
func scalarN(ctx *Context, label string, n int, component func(i int) bool) bool {
	w := ctx.CurrentWindow
	if w.SkipItems {
		return false
	}
	changed := false
	ctx.BeginGroup()
	ctx.PushID(label)
	ctx.PushMultiItemsWidths(n, ctx.CalcItemWidth())
	for i := 0; i < n; i++ {
		ctx.PushIDInt(i)
		if i > 0 {
			ctx.SameLine(0, ctx.Style.ItemInnerSpacing.X)
		}
		if component(i) {
			changed = true
		}
		ctx.PopID()
		ctx.PopItemWidth()
	}
	ctx.PopID()

	if text := FindRenderedTextEnd(label); text != "" {
		ctx.SameLine(0, ctx.Style.ItemInnerSpacing.X)
		ctx.TextEx(text)
	}
	ctx.EndGroup()
	return changed
}

// VSliderScalar is a vertical slider of the given size.
func VSliderScalar[T Scalar](ctx *Context, label string, size Vec2, v *T, vMin, vMax T, opts ...Option) bool {
	w := ctx.CurrentWindow
	if w.SkipItems {
		return false
	}
	o := applyOptions(opts)
	format := sliderFormat[T](o)
	flags := GetOpt(o, OptSliderFlags)

	st := &ctx.Style
	id := w.GetID(label)
	labelSize := ctx.CalcTextSize(label, true, 0)
	frameBB := Rect{w.DC.CursorPos, w.DC.CursorPos.Add(size)}
	totalBB := frameBB
	if labelSize.X > 0 {
		totalBB.Max.X += st.ItemInnerSpacing.X + labelSize.X
	}
	ctx.ItemSizeRect(totalBB, st.FramePadding.Y)
	if !ctx.ItemAdd(frameBB, id, nil) {
		return false
	}

	hovered := ctx.ItemHoverable(frameBB, id)
	if (hovered && ctx.IO.MouseClicked[MouseButtonLeft]) || ctx.NavActivateID == id || ctx.NavInputID == id {
		ctx.SetActiveID(id, w)
		ctx.SetFocusID(id, w)
		ctx.FocusWindow(w)
		ctx.setActiveIDUsingNav(true, false, false)
	}

	ctx.RenderNavHighlight(frameBB, id)
	ctx.RenderFrame(frameBB.Min, frameBB.Max, ctx.GetColorU32(ctx.frameColorFor(id), 1), true, st.FrameRounding)

	changed, grab := SliderBehavior(ctx, frameBB, id, v, vMin, vMax, format, flags|SliderFlagsVertical)
	if changed {
		ctx.MarkItemEdited(id)
	}
	if grab.Max.Y > grab.Min.Y {
		grabCol := ColSliderGrab
		if ctx.ActiveID == id {
			grabCol = ColSliderGrabActive
		}
		w.DrawList.AddRectFilled(grab.Min, grab.Max, ctx.GetColorU32(grabCol, 1), st.GrabRounding, DrawCornerAll)
	}

	// The value sits at the top so it stays readable while dragging.
	value := FormatScalar(format, *v)
	ctx.RenderTextClipped(Vec2{frameBB.Min.X, frameBB.Min.Y + st.FramePadding.Y}, frameBB.Max, value, nil, Vec2{0.5, 0}, nil)
	if labelSize.X > 0 {
		ctx.RenderText(Vec2{frameBB.Max.X + st.ItemInnerSpacing.X, frameBB.Min.Y + st.FramePadding.Y}, label, true)
	}
	return changed
}

// SliderFloat edits a float32 in [vMin, vMax].
func (ctx *Context) SliderFloat(label string, v *float32, vMin, vMax float32, opts ...Option) bool {
	return SliderScalar(ctx, label, v, vMin, vMax, opts...)
}

// SliderFloat2 edits two float32 components.
func (ctx *Context) SliderFloat2(label string, v *[2]float32, vMin, vMax float32, opts ...Option) bool {
	return SliderScalarN(ctx, label, v[:], vMin, vMax, opts...)
}

// SliderFloat3 edits three float32 components.
func (ctx *Context) SliderFloat3(label string, v *[3]float32, vMin, vMax float32, opts ...Option) bool {
	return SliderScalarN(ctx, label, v[:], vMin, vMax, opts...)
}

// SliderFloat4 edits four float32 components.
func (ctx *Context) SliderFloat4(label string, v *[4]float32, vMin, vMax float32, opts ...Option) bool {
	return SliderScalarN(ctx, label, v[:], vMin, vMax, opts...)
}

// SliderAngle edits an angle stored in radians and displayed in degrees.
func (ctx *Context) SliderAngle(label string, rad *float32, degMin, degMax float32, opts ...Option) bool {
	if !HasOpt(applyOptions(opts), OptFormat) {
		opts = append(opts, WithFormat("%.0f deg"))
	}
	deg := *rad * 360 / (2 * math.Pi)
	changed := SliderScalar(ctx, label, &deg, degMin, degMax, opts...)
	*rad = deg * (2 * math.Pi) / 360
	return changed
}

// SliderInt edits an int in [vMin, vMax].
func (ctx *Context) SliderInt(label string, v *int, vMin, vMax int, opts ...Option) bool {
	return SliderScalar(ctx, label, v, vMin, vMax, opts...)
}

// SliderInt2 edits two int components.
func (ctx *Context) SliderInt2(label string, v *[2]int, vMin, vMax int, opts ...Option) bool {
	return SliderScalarN(ctx, label, v[:], vMin, vMax, opts...)
}

// SliderInt3 edits three int components.
func (ctx *Context) SliderInt3(label string, v *[3]int, vMin, vMax int, opts ...Option) bool {
	return SliderScalarN(ctx, label, v[:], vMin, vMax, opts...)
}

// SliderInt4 edits four int components.
func (ctx *Context) SliderInt4(label string, v *[4]int, vMin, vMax int, opts ...Option) bool {
	return SliderScalarN(ctx, label, v[:], vMin, vMax, opts...)
}

// VSliderFloat is a vertical float32 slider.
func (ctx *Context) VSliderFloat(label string, size Vec2, v *float32, vMin, vMax float32, opts ...Option) bool {
	return VSliderScalar(ctx, label, size, v, vMin, vMax, opts...)
}

// VSliderInt is a vertical int slider.
func (ctx *Context) VSliderInt(label string, size Vec2, v *int, vMin, vMax int, opts ...Option) bool {
	return VSliderScalar(ctx, label, size, v, vMin, vMax, opts...)
}
