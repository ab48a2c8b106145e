package anchor

import (
	"slices"
	"strings"
)

// ============================================================================
// Temporary text input
// ============================================================================

// Sliders and drags turn into a text field on Ctrl+Click. The field takes
// the widget's ID and lives until it loses focus.

// TempInputIsActive reports whether id is currently edited as text.
func (ctx *Context) TempInputIsActive(id ID) bool {
	return ctx.ActiveID == id && ctx.TempInputID == id
}

// TempInputText draws a text field over bb that reuses the ID of the widget
// it replaces.
func (ctx *Context) TempInputText(bb Rect, id ID, label string, buf *string, bufSize int, flags InputTextFlags) bool {
	init := ctx.TempInputID != id
	if init {
		ctx.ClearActiveID()
	}
	ctx.CurrentWindow.DC.CursorPos = bb.Min
	changed := ctx.InputTextEx(label, "", buf, bb.Size(), flags|InputTextFlagsMergedItem, nil, bufSize)
	if init {
		ctx.assert(ctx.ActiveID == id, "TempInputText: field did not take focus")
		ctx.TempInputID = ctx.ActiveID
	}
	return changed
}

// TempInputScalar edits *v as text inside bb. Text such as "*2" or "+10"
// applies to the value shown when editing started. When both clampMin and
// clampMax are set the result is clamped to them.
func TempInputScalar[T Scalar](ctx *Context, bb Rect, id ID, label string, v *T, format string, clampMin, clampMax *T) bool {
	format = ParseFormatTrimDecorations(format)
	buf := strings.TrimSpace(FormatScalar(format, *v))

	flags := InputTextFlagsAutoSelectAll | InputTextFlagsNoMarkEdited
	if isFloat[T]() {
		flags |= InputTextFlagsCharsScientific
	} else {
		flags |= InputTextFlagsCharsDecimal
	}

	changed := false
	if ctx.TempInputText(bb, id, label, &buf, scalarTextBufSize, flags) {
		backup := *v
		DataTypeApplyOpFromText(buf, ctx.InputTextState.InitialTextA, v, format)
		if clampMin != nil && clampMax != nil {
			lo, hi := *clampMin, *clampMax
			if DataTypeCompare(lo, hi) > 0 {
				lo, hi = hi, lo
			}
			DataTypeClamp(v, lo, hi)
		}
		changed = *v != backup
		if changed {
			ctx.MarkItemEdited(id)
		}
	}
	return changed
}

// scalarTextBufSize is the text capacity of numeric fields.
const scalarTextBufSize = 64

// ============================================================================
// InputScalar
// ============================================================================

// InputScalar edits *v in a text field. WithStep adds "-" and "+" buttons;
// Ctrl selects the fast step. Options: WithFormat, WithStep, WithInputFlags.
func InputScalar[T Scalar](ctx *Context, label string, v *T, opts ...Option) bool {
	w := ctx.CurrentWindow
	if w.SkipItems {
		return false
	}
	o := applyOptions(opts)
	st := &ctx.Style
	format := sliderFormat[T](o)
	flags := GetOpt(o, OptInputFlags)
	step := fromFloat[T](GetOpt(o, OptStep))
	stepFast := fromFloat[T](GetOpt(o, OptStepFast))

	buf := FormatScalar(format, *v)
	if flags&(InputTextFlagsCharsHexadecimal|InputTextFlagsCharsScientific) == 0 {
		flags |= InputTextFlagsCharsDecimal
	}
	flags |= InputTextFlagsAutoSelectAll | InputTextFlagsNoMarkEdited

	changed := false
	if step > 0 {
		buttonSize := ctx.GetFrameHeight()
		ctx.BeginGroup()
		ctx.PushID(label)
		ctx.SetNextItemWidth(maxf(1, ctx.CalcItemWidth()-(buttonSize+st.ItemInnerSpacing.X)*2))
		if ctx.InputTextEx("", "", &buf, Vec2{}, flags, nil, scalarTextBufSize) {
			changed = DataTypeApplyOpFromText(buf, ctx.InputTextState.InitialTextA, v, format)
		}

		// Square buttons.
		backupPadding := st.FramePadding
		st.FramePadding.X = st.FramePadding.Y
		buttonFlags := ButtonFlagsRepeat | ButtonFlagsDontClosePopups
		if flags&InputTextFlagsReadOnly != 0 {
			buttonFlags |= ButtonFlagsDisabled
		}
		delta := step
		if ctx.IO.KeyCtrl && stepFast > 0 {
			delta = stepFast
		}
		ctx.SameLine(0, st.ItemInnerSpacing.X)
		if ctx.ButtonEx("-", Vec2{buttonSize, buttonSize}, buttonFlags) {
			*v = DataTypeApplyOp('-', *v, delta)
			changed = true
		}
		ctx.SameLine(0, st.ItemInnerSpacing.X)
		if ctx.ButtonEx("+", Vec2{buttonSize, buttonSize}, buttonFlags) {
			*v = DataTypeApplyOp('+', *v, delta)
			changed = true
		}

		if text := FindRenderedTextEnd(label); text != "" {
			ctx.SameLine(0, st.ItemInnerSpacing.X)
			ctx.TextEx(text)
		}
		st.FramePadding = backupPadding
		ctx.PopID()
		ctx.EndGroup()
	} else if ctx.InputTextEx(label, "", &buf, Vec2{}, flags, nil, scalarTextBufSize) {
		changed = DataTypeApplyOpFromText(buf, ctx.InputTextState.InitialTextA, v, format)
	}
	if changed {
		ctx.MarkItemEdited(w.DC.LastItemID)
	}
	return changed
}

// InputScalarN draws one field per component of v on a single line.
func InputScalarN[T Scalar](ctx *Context, label string, v []T, opts ...Option) bool {
	return scalarN(ctx, label, len(v), func(i int) bool {
		return InputScalar(ctx, "", &v[i], opts...)
	})
}

// withDefaults puts defaults ahead of opts so caller options win.
func withDefaults(opts []Option, defaults ...Option) []Option {
	return slices.Concat(defaults, opts)
}

// InputFloat edits a float32. The default format is "%.3f".
func (ctx *Context) InputFloat(label string, v *float32, opts ...Option) bool {
	return InputScalar(ctx, label, v, withDefaults(opts, WithFormat("%.3f"))...)
}

// InputFloat2 edits two float32 components.
func (ctx *Context) InputFloat2(label string, v *[2]float32, opts ...Option) bool {
	return InputScalarN(ctx, label, v[:], withDefaults(opts, WithFormat("%.3f"))...)
}

// InputFloat3 edits three float32 components.
func (ctx *Context) InputFloat3(label string, v *[3]float32, opts ...Option) bool {
	return InputScalarN(ctx, label, v[:], withDefaults(opts, WithFormat("%.3f"))...)
}

// InputFloat4 edits four float32 components.
func (ctx *Context) InputFloat4(label string, v *[4]float32, opts ...Option) bool {
	return InputScalarN(ctx, label, v[:], withDefaults(opts, WithFormat("%.3f"))...)
}

// InputInt edits an int with step buttons of 1 and 100 unless WithStep
// says otherwise. Hexadecimal input follows a "%x" format.
func (ctx *Context) InputInt(label string, v *int, opts ...Option) bool {
	opts = withDefaults(opts, WithStep(1, 100))
	if o := applyOptions(opts); formatIsHex(GetOpt(o, OptFormat)) {
		opts = append(opts, WithInputFlags(GetOpt(o, OptInputFlags)|InputTextFlagsCharsHexadecimal))
	}
	return InputScalar(ctx, label, v, opts...)
}

// InputInt2 edits two ints without step buttons.
func (ctx *Context) InputInt2(label string, v *[2]int, opts ...Option) bool {
	return InputScalarN(ctx, label, v[:], opts...)
}

// InputInt3 edits three ints without step buttons.
func (ctx *Context) InputInt3(label string, v *[3]int, opts ...Option) bool {
	return InputScalarN(ctx, label, v[:], opts...)
}

// InputInt4 edits four ints without step buttons.
func (ctx *Context) InputInt4(label string, v *[4]int, opts ...Option) bool {
	return InputScalarN(ctx, label, v[:], opts...)
}

// InputDouble edits a float64. The default format is "%.6f".
func (ctx *Context) InputDouble(label string, v *float64, opts ...Option) bool {
	return InputScalar(ctx, label, v, withDefaults(opts, WithFormat("%.6f"))...)
}
