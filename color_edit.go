package anchor

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"
)

// ColorEditFlags configure the color editors, pickers and buttons.
type ColorEditFlags int

const (
	ColorEditFlagsNone           ColorEditFlags = 0
	ColorEditFlagsNoAlpha        ColorEditFlags = 1 << 1  // ignore the fourth component
	ColorEditFlagsNoPicker       ColorEditFlags = 1 << 2  // clicking the swatch does not open a picker
	ColorEditFlagsNoOptions      ColorEditFlags = 1 << 3  // no right-click options menu
	ColorEditFlagsNoSmallPreview ColorEditFlags = 1 << 4  // no swatch next to the inputs
	ColorEditFlagsNoInputs       ColorEditFlags = 1 << 5  // swatch only
	ColorEditFlagsNoTooltip      ColorEditFlags = 1 << 6  // no tooltip when hovering the swatch
	ColorEditFlagsNoLabel        ColorEditFlags = 1 << 7  // hide the label
	ColorEditFlagsNoSidePreview  ColorEditFlags = 1 << 8  // picker: no large preview on the side
	ColorEditFlagsNoDragDrop     ColorEditFlags = 1 << 9  // reserved
	ColorEditFlagsNoBorder       ColorEditFlags = 1 << 10 // swatch: no border

	ColorEditFlagsAlphaBar         ColorEditFlags = 1 << 16 // picker: vertical alpha bar
	ColorEditFlagsAlphaPreview     ColorEditFlags = 1 << 17 // swatch shows transparency over a checkerboard
	ColorEditFlagsAlphaPreviewHalf ColorEditFlags = 1 << 18 // swatch shows half opaque, half checkerboard
	ColorEditFlagsHDR              ColorEditFlags = 1 << 19 // allow values beyond 0..1
	ColorEditFlagsDisplayRGB       ColorEditFlags = 1 << 20
	ColorEditFlagsDisplayHSV       ColorEditFlags = 1 << 21
	ColorEditFlagsDisplayHex       ColorEditFlags = 1 << 22
	ColorEditFlagsUint8            ColorEditFlags = 1 << 23 // edit as 0..255
	ColorEditFlagsFloat            ColorEditFlags = 1 << 24 // edit as 0.0..1.0
	ColorEditFlagsPickerHueBar     ColorEditFlags = 1 << 25 // saturation/value square with a hue bar
	ColorEditFlagsPickerHueWheel   ColorEditFlags = 1 << 26 // hue wheel with a saturation/value triangle
	ColorEditFlagsInputRGB         ColorEditFlags = 1 << 27 // the edited values are RGB
	ColorEditFlagsInputHSV         ColorEditFlags = 1 << 28 // the edited values are HSV

	colorEditFlagsDisplayMask  = ColorEditFlagsDisplayRGB | ColorEditFlagsDisplayHSV | ColorEditFlagsDisplayHex
	colorEditFlagsDataTypeMask = ColorEditFlagsUint8 | ColorEditFlagsFloat
	colorEditFlagsPickerMask   = ColorEditFlagsPickerHueWheel | ColorEditFlagsPickerHueBar
	colorEditFlagsInputMask    = ColorEditFlagsInputRGB | ColorEditFlagsInputHSV
)

// ColorEditOptionsDefault is the option set a new context starts with.
const ColorEditOptionsDefault = ColorEditFlagsUint8 | ColorEditFlagsDisplayRGB | ColorEditFlagsInputRGB | ColorEditFlagsPickerHueBar

func isPowerOfTwo(v ColorEditFlags) bool { return v != 0 && v&(v-1) == 0 }

// SetColorEditOptions sets the defaults used by editors that leave an option
// group unspecified. Empty groups fall back to ColorEditOptionsDefault.
func (ctx *Context) SetColorEditOptions(flags ColorEditFlags) {
	for _, mask := range []ColorEditFlags{colorEditFlagsDisplayMask, colorEditFlagsDataTypeMask, colorEditFlagsPickerMask, colorEditFlagsInputMask} {
		if flags&mask == 0 {
			flags |= ColorEditOptionsDefault & mask
		}
		ctx.assert(isPowerOfTwo(flags&mask), "SetColorEditOptions: one option per group", "flags", flags)
	}
	ctx.ColorEditOptions = flags
}

// ColorEdit3 edits an RGB color as three drags or hex text, plus a swatch
// that opens a picker.
func (ctx *Context) ColorEdit3(label string, col *[3]float32, flags ColorEditFlags) bool {
	c := [4]float32{col[0], col[1], col[2], 1}
	if !ctx.ColorEdit4(label, &c, flags|ColorEditFlagsNoAlpha) {
		return false
	}
	copy(col[:], c[:3])
	return true
}

// ColorEdit4 edits an RGBA color.
func (ctx *Context) ColorEdit4(label string, col *[4]float32, flags ColorEditFlags) bool {
	w := ctx.CurrentWindow
	if w.SkipItems {
		return false
	}
	st := &ctx.Style
	squareSz := ctx.GetFrameHeight()
	wFull := ctx.CalcItemWidth()
	var wButton float32
	if flags&ColorEditFlagsNoSmallPreview == 0 {
		wButton = squareSz + st.ItemInnerSpacing.X
	}
	wInputs := wFull - wButton
	labelDisplay := FindRenderedTextEnd(label)
	ctx.NextItemData.clearFlags()

	ctx.BeginGroup()
	ctx.PushID(label)

	// Without inputs there is nothing to convert.
	flagsUntouched := flags
	if flags&ColorEditFlagsNoInputs != 0 {
		flags = flags&^colorEditFlagsDisplayMask | ColorEditFlagsDisplayRGB | ColorEditFlagsNoOptions
	}

	// The options menu sees the flags before defaults are applied.
	if flags&ColorEditFlagsNoOptions == 0 {
		ctx.colorEditOptionsPopup(col, flags)
	}

	opts := ctx.ColorEditOptions
	for _, mask := range []ColorEditFlags{colorEditFlagsDisplayMask, colorEditFlagsDataTypeMask, colorEditFlagsPickerMask, colorEditFlagsInputMask} {
		if flags&mask == 0 {
			flags |= opts & mask
		}
	}
	flags |= opts &^ (colorEditFlagsDisplayMask | colorEditFlagsDataTypeMask | colorEditFlagsPickerMask | colorEditFlagsInputMask)
	ctx.assert(isPowerOfTwo(flags&colorEditFlagsDisplayMask), "ColorEdit4: one display mode", "label", label)
	ctx.assert(isPowerOfTwo(flags&colorEditFlagsInputMask), "ColorEdit4: one input mode", "label", label)

	alpha := flags&ColorEditFlagsNoAlpha == 0
	hdr := flags&ColorEditFlagsHDR != 0
	components := 3
	if alpha {
		components = 4
	}

	f := [4]float32{col[0], col[1], col[2], 1}
	if alpha {
		f[3] = col[3]
	}
	switch {
	case flags&ColorEditFlagsInputHSV != 0 && flags&ColorEditFlagsDisplayRGB != 0:
		f[0], f[1], f[2] = ColorConvertHSVtoRGB(f[0], f[1], f[2])
	case flags&ColorEditFlagsInputRGB != 0 && flags&ColorEditFlagsDisplayHSV != 0:
		// Greyscale loses the hue; keep the last one shown for this color.
		f[0], f[1], f[2] = ColorConvertRGBtoHSV(f[0], f[1], f[2])
		if ctx.ColorEditLastColor == [3]float32{col[0], col[1], col[2]} {
			if f[1] == 0 {
				f[0] = ctx.ColorEditLastHue
			}
			if f[2] == 0 {
				f[1] = ctx.ColorEditLastSat
			}
		}
	}
	var i [4]int
	for n := range 4 {
		i[n] = f32ToInt8Unbound(f[n])
	}

	changed, changedAsFloat := false, false
	pos := w.DC.CursorPos
	if st.ColorButtonPosition == DirLeft {
		w.DC.CursorPos.X = pos.X + wButton
	}

	switch {
	case flags&(ColorEditFlagsDisplayRGB|ColorEditFlagsDisplayHSV) != 0 && flags&ColorEditFlagsNoInputs == 0:
		spacing := st.ItemInnerSpacing.X
		wItemOne := maxf(1, floorf((wInputs-spacing*float32(components-1))/float32(components)))
		wItemLast := maxf(1, floorf(wInputs-(wItemOne+spacing)*float32(components-1)))

		prefixSample := "M:000"
		if flags&ColorEditFlagsFloat != 0 {
			prefixSample = "M:0.000"
		}
		prefixes := "RGBA"
		if flags&ColorEditFlagsDisplayHSV != 0 {
			prefixes = "HSVA"
		}
		hidePrefix := wItemOne <= ctx.CalcTextSize(prefixSample, false, 0).X
		vMaxF, vMaxI := float32(1), 255
		if hdr {
			vMaxF, vMaxI = 0, 0
		}
		for n := range components {
			if n > 0 {
				ctx.SameLine(0, spacing)
			}
			if n+1 < components {
				ctx.SetNextItemWidth(wItemOne)
			} else {
				ctx.SetNextItemWidth(wItemLast)
			}
			prefix := ""
			if !hidePrefix {
				prefix = prefixes[n:n+1] + ":"
			}
			id := "##" + "XYZW"[n:n+1]
			if flags&ColorEditFlagsFloat != 0 {
				changed = ctx.DragFloat(id, &f[n], 1.0/255.0, 0, vMaxF, WithFormat(prefix+"%0.3f")) || changed
				changedAsFloat = changedAsFloat || changed
			} else {
				changed = ctx.DragInt(id, &i[n], 1, 0, vMaxI, WithFormat(prefix+"%3d")) || changed
			}
			if flags&ColorEditFlagsNoOptions == 0 {
				ctx.OpenPopupOnItemClick("context", PopupFlagsMouseButtonRight)
			}
		}

	case flags&ColorEditFlagsDisplayHex != 0 && flags&ColorEditFlagsNoInputs == 0:
		buf := formatHexColor(i, alpha)
		ctx.SetNextItemWidth(wInputs)
		if ctx.InputText("##Text", &buf, WithInputFlags(InputTextFlagsCharsHexadecimal|InputTextFlagsCharsUppercase), WithBufferSize(64)) {
			changed = true
			i = parseHexColor(buf, alpha)
		}
		if flags&ColorEditFlagsNoOptions == 0 {
			ctx.OpenPopupOnItemClick("context", PopupFlagsMouseButtonRight)
		}
	}

	var pickerWindow *Window
	if flags&ColorEditFlagsNoSmallPreview == 0 {
		buttonOffsetX := wInputs + st.ItemInnerSpacing.X
		if flags&ColorEditFlagsNoInputs != 0 || st.ColorButtonPosition == DirLeft {
			buttonOffsetX = 0
		}
		w.DC.CursorPos = Vec2{pos.X + buttonOffsetX, pos.Y}

		colV4 := Vec4{col[0], col[1], col[2], 1}
		if alpha {
			colV4.W = col[3]
		}
		if ctx.ColorButton("##ColorButton", colV4, flags, Vec2{}) && flags&ColorEditFlagsNoPicker == 0 {
			// Remember where the picker started so it can offer "Original".
			ctx.ColorPickerRef = colV4
			ctx.OpenPopup("picker", PopupFlagsNone)
			bl := Vec2{w.DC.LastItemRect.Min.X, w.DC.LastItemRect.Max.Y}
			ctx.SetNextWindowPos(bl.Add(Vec2{-1, st.ItemSpacing.Y}), CondAlways, Vec2{})
		}
		if flags&ColorEditFlagsNoOptions == 0 {
			ctx.OpenPopupOnItemClick("context", PopupFlagsMouseButtonRight)
		}

		if ctx.BeginPopup("picker", WindowFlagsNone) {
			pickerWindow = ctx.CurrentWindow
			if labelDisplay != "" {
				ctx.TextEx(labelDisplay)
				ctx.Spacing()
			}
			forward := colorEditFlagsDataTypeMask | colorEditFlagsPickerMask | colorEditFlagsInputMask | ColorEditFlagsHDR | ColorEditFlagsNoAlpha | ColorEditFlagsAlphaBar
			pickerFlags := flagsUntouched&forward | colorEditFlagsDisplayMask | ColorEditFlagsNoLabel | ColorEditFlagsAlphaPreviewHalf
			ctx.SetNextItemWidth(squareSz * 12)
			ref := ctx.ColorPickerRef
			changed = ctx.ColorPicker4("##picker", col, pickerFlags, &ref) || changed
			ctx.EndPopup()
		}
	}

	if labelDisplay != "" && flags&ColorEditFlagsNoLabel == 0 {
		textOffsetX := wFull + st.ItemInnerSpacing.X
		if flags&ColorEditFlagsNoInputs != 0 {
			textOffsetX = wButton
		}
		w.DC.CursorPos = Vec2{pos.X + textOffsetX, pos.Y + st.FramePadding.Y}
		ctx.TextEx(labelDisplay)
	}

	// The picker writes col directly; the inputs go through f and i.
	if changed && pickerWindow == nil {
		if !changedAsFloat {
			for n := range 4 {
				f[n] = float32(i[n]) / 255
			}
		}
		if flags&ColorEditFlagsDisplayHSV != 0 && flags&ColorEditFlagsInputRGB != 0 {
			ctx.ColorEditLastHue = f[0]
			ctx.ColorEditLastSat = f[1]
			f[0], f[1], f[2] = ColorConvertHSVtoRGB(f[0], f[1], f[2])
			ctx.ColorEditLastColor = [3]float32{f[0], f[1], f[2]}
		}
		if flags&ColorEditFlagsDisplayRGB != 0 && flags&ColorEditFlagsInputHSV != 0 {
			f[0], f[1], f[2] = ColorConvertRGBtoHSV(f[0], f[1], f[2])
		}
		col[0], col[1], col[2] = f[0], f[1], f[2]
		if alpha {
			col[3] = f[3]
		}
	}

	ctx.PopID()
	ctx.EndGroup()

	// IsItemActive on the editor follows a drag inside its picker.
	if pickerWindow != nil && ctx.ActiveID != 0 && ctx.ActiveIDWindow == pickerWindow {
		w.DC.LastItemID = ctx.ActiveID
	}
	if changed {
		ctx.MarkItemEdited(w.DC.LastItemID)
	}
	return changed
}

func formatHexColor(i [4]int, alpha bool) string {
	c := func(n int) int { return clampi(i[n], 0, 255) }
	if alpha {
		return fmt.Sprintf("#%02X%02X%02X%02X", c(0), c(1), c(2), c(3))
	}
	return fmt.Sprintf("#%02X%02X%02X", c(0), c(1), c(2))
}

// parseHexColor reads up to four two-digit hex components after an optional
// '#'. Missing components are zero.
func parseHexColor(s string, alpha bool) [4]int {
	s = strings.TrimLeft(s, "# \t")
	var out [4]int
	n := 3
	if alpha {
		n = 4
	}
	for k := 0; k < n && len(s) > 0; k++ {
		digits := s[:min(2, len(s))]
		var v int
		if _, err := fmt.Sscanf(digits, "%X", &v); err != nil {
			break
		}
		out[k] = v
		s = s[len(digits):]
	}
	return out
}

// ColorPicker3 is ColorPicker4 for an RGB color.
func (ctx *Context) ColorPicker3(label string, col *[3]float32, flags ColorEditFlags) bool {
	c := [4]float32{col[0], col[1], col[2], 1}
	if !ctx.ColorPicker4(label, &c, flags|ColorEditFlagsNoAlpha, nil) {
		return false
	}
	copy(col[:], c[:3])
	return true
}

// ColorPicker4 draws a full color picker. When refCol is not nil the side
// preview shows it as "Original" and clicking it restores it. Pressing
// Escape while dragging restores the color the drag started from.
func (ctx *Context) ColorPicker4(label string, col *[4]float32, flags ColorEditFlags, refCol *Vec4) bool {
	w := ctx.CurrentWindow
	if w.SkipItems {
		return false
	}
	dl := w.DrawList
	st := &ctx.Style
	io := &ctx.IO

	width := ctx.CalcItemWidth()
	ctx.NextItemData.clearFlags()

	ctx.PushID(label)
	ctx.BeginGroup()

	if flags&ColorEditFlagsNoSidePreview == 0 {
		flags |= ColorEditFlagsNoSmallPreview
	}
	if flags&ColorEditFlagsNoOptions == 0 {
		ctx.colorPickerOptionsPopup(col, flags)
	}

	for _, mask := range []ColorEditFlags{colorEditFlagsPickerMask, colorEditFlagsInputMask} {
		if flags&mask != 0 {
			continue
		}
		if ctx.ColorEditOptions&mask != 0 {
			flags |= ctx.ColorEditOptions & mask
		} else {
			flags |= ColorEditOptionsDefault & mask
		}
	}
	ctx.assert(isPowerOfTwo(flags&colorEditFlagsPickerMask), "ColorPicker4: one picker type", "label", label)
	ctx.assert(isPowerOfTwo(flags&colorEditFlagsInputMask), "ColorPicker4: one input mode", "label", label)
	if flags&ColorEditFlagsNoOptions == 0 {
		flags |= ctx.ColorEditOptions & ColorEditFlagsAlphaBar
	}

	components := 4
	if flags&ColorEditFlagsNoAlpha != 0 {
		components = 3
	}
	alphaBar := flags&ColorEditFlagsAlphaBar != 0 && flags&ColorEditFlagsNoAlpha == 0
	pickerPos := w.DC.CursorPos
	squareSz := ctx.GetFrameHeight()
	barsWidth := squareSz
	bars := float32(1)
	if alphaBar {
		bars = 2
	}
	svPickerSize := maxf(barsWidth, width-bars*(barsWidth+st.ItemInnerSpacing.X))
	bar0PosX := pickerPos.X + svPickerSize + st.ItemInnerSpacing.X
	bar1PosX := bar0PosX + barsWidth + st.ItemInnerSpacing.X
	barsTrianglesHalfSz := floorf(barsWidth * 0.20)

	backupInitial := *col

	wheelThickness := svPickerSize * 0.08
	wheelROuter := svPickerSize * 0.50
	wheelRInner := wheelROuter - wheelThickness
	wheelCenter := Vec2{pickerPos.X + (svPickerSize+barsWidth)*0.5, pickerPos.Y + svPickerSize*0.5}

	// The triangle is drawn rotated so that pa points at the hue; the
	// logic works on unrotated coordinates.
	triangleR := wheelRInner - float32(int(svPickerSize*0.027))
	trianglePa := Vec2{triangleR, 0}
	trianglePb := Vec2{triangleR * -0.5, triangleR * -0.866025}
	trianglePc := Vec2{triangleR * -0.5, triangleR * +0.866025}

	H, S, V := col[0], col[1], col[2]
	R, G, B := col[0], col[1], col[2]
	if flags&ColorEditFlagsInputRGB != 0 {
		H, S, V = ColorConvertRGBtoHSV(R, G, B)
		if ctx.ColorEditLastColor == [3]float32{col[0], col[1], col[2]} {
			if S == 0 {
				H = ctx.ColorEditLastHue
			}
			if V == 0 {
				S = ctx.ColorEditLastSat
			}
		}
	} else if flags&ColorEditFlagsInputHSV != 0 {
		R, G, B = ColorConvertHSVtoRGB(H, S, V)
	}

	changed, changedH, changedSV := false, false, false

	// dragActive handles a picker area being dragged this frame and reports
	// whether the mouse should drive the value.
	dragActive := func() bool {
		if ctx.IsItemActivated() {
			ctx.colorPickerBackup = backupInitial
		}
		if !ctx.IsItemActive() {
			return false
		}
		ctx.setActiveIDUsingNav(false, true, false)
		if ctx.IsKeyPressed(KeyEscape, false) {
			copy(col[:components], ctx.colorPickerBackup[:components])
			ctx.ClearActiveID()
			changed = true
			return false
		}
		return true
	}

	ctx.PushItemFlag(ItemFlagsNoNav, true)
	if flags&ColorEditFlagsPickerHueWheel != 0 {
		ctx.InvisibleButton("hsv", Vec2{svPickerSize + st.ItemInnerSpacing.X + barsWidth, svPickerSize}, ButtonFlagsNone)
		if dragActive() {
			initialOff := io.MouseClickedPos[MouseButtonLeft].Sub(wheelCenter)
			currentOff := io.MousePos.Sub(wheelCenter)
			initialDist2 := initialOff.LengthSqr()
			if initialDist2 >= (wheelRInner-1)*(wheelRInner-1) && initialDist2 <= (wheelROuter+1)*(wheelROuter+1) {
				H = math32.Atan2(currentOff.Y, currentOff.X) / math32.Pi * 0.5
				if H < 0 {
					H += 1
				}
				changed, changedH = true, true
			}
			cosHue := math32.Cos(-H * 2 * math32.Pi)
			sinHue := math32.Sin(-H * 2 * math32.Pi)
			if triangleContainsPoint(trianglePa, trianglePb, trianglePc, rotateV2(initialOff, cosHue, sinHue)) {
				cur := rotateV2(currentOff, cosHue, sinHue)
				if !triangleContainsPoint(trianglePa, trianglePb, trianglePc, cur) {
					cur = triangleClosestPoint(trianglePa, trianglePb, trianglePc, cur)
				}
				uu, vv, _ := triangleBarycentricCoords(trianglePa, trianglePb, trianglePc, cur)
				V = clampf(1-vv, 0.0001, 1)
				S = clampf(uu/V, 0.0001, 1)
				changed, changedSV = true, true
			}
		}
		if flags&ColorEditFlagsNoOptions == 0 {
			ctx.OpenPopupOnItemClick("context", PopupFlagsMouseButtonRight)
		}
	} else if flags&ColorEditFlagsPickerHueBar != 0 {
		ctx.InvisibleButton("sv", Vec2{svPickerSize, svPickerSize}, ButtonFlagsNone)
		if dragActive() {
			S = saturate((io.MousePos.X - pickerPos.X) / (svPickerSize - 1))
			V = 1 - saturate((io.MousePos.Y-pickerPos.Y)/(svPickerSize-1))
			changed, changedSV = true, true
		}
		if flags&ColorEditFlagsNoOptions == 0 {
			ctx.OpenPopupOnItemClick("context", PopupFlagsMouseButtonRight)
		}

		ctx.SetCursorScreenPos(Vec2{bar0PosX, pickerPos.Y})
		ctx.InvisibleButton("hue", Vec2{barsWidth, svPickerSize}, ButtonFlagsNone)
		if dragActive() {
			H = saturate((io.MousePos.Y - pickerPos.Y) / (svPickerSize - 1))
			changed, changedH = true, true
		}
	}

	if alphaBar {
		ctx.SetCursorScreenPos(Vec2{bar1PosX, pickerPos.Y})
		ctx.InvisibleButton("alpha", Vec2{barsWidth, svPickerSize}, ButtonFlagsNone)
		if dragActive() {
			col[3] = 1 - saturate((io.MousePos.Y-pickerPos.Y)/(svPickerSize-1))
			changed = true
		}
	}
	ctx.PopItemFlag()

	if flags&ColorEditFlagsNoSidePreview == 0 {
		ctx.SameLine(0, st.ItemInnerSpacing.X)
		ctx.BeginGroup()
	}

	if flags&ColorEditFlagsNoLabel == 0 {
		if labelDisplay := FindRenderedTextEnd(label); labelDisplay != "" {
			if flags&ColorEditFlagsNoSidePreview != 0 {
				ctx.SameLine(0, st.ItemInnerSpacing.X)
			}
			ctx.TextEx(labelDisplay)
		}
	}

	if flags&ColorEditFlagsNoSidePreview == 0 {
		ctx.PushItemFlag(ItemFlagsNoNavDefaultFocus, true)
		colV4 := Vec4{col[0], col[1], col[2], col[3]}
		if flags&ColorEditFlagsNoAlpha != 0 {
			colV4.W = 1
		}
		if flags&ColorEditFlagsNoLabel != 0 {
			ctx.TextUnformatted("Current")
		}
		forward := colorEditFlagsInputMask | ColorEditFlagsHDR | ColorEditFlagsAlphaPreview | ColorEditFlagsAlphaPreviewHalf | ColorEditFlagsNoTooltip
		previewSize := Vec2{squareSz * 3, squareSz * 2}
		ctx.ColorButton("##current", colV4, flags&forward, previewSize)
		if refCol != nil {
			ctx.TextUnformatted("Original")
			refV4 := *refCol
			if flags&ColorEditFlagsNoAlpha != 0 {
				refV4.W = 1
			}
			if ctx.ColorButton("##original", refV4, flags&forward, previewSize) {
				ref := [4]float32{refCol.X, refCol.Y, refCol.Z, refCol.W}
				copy(col[:components], ref[:components])
				changed = true
			}
		}
		ctx.PopItemFlag()
		ctx.EndGroup()
	}

	if changedH || changedSV {
		if flags&ColorEditFlagsInputRGB != 0 {
			hh, ss, vv := H, S, V
			if hh >= 1 {
				hh -= 10 * 1e-6
			}
			if ss <= 0 {
				ss = 10 * 1e-6
			}
			if vv <= 0 {
				vv = 1e-6
			}
			col[0], col[1], col[2] = ColorConvertHSVtoRGB(hh, ss, vv)
			ctx.ColorEditLastHue = H
			ctx.ColorEditLastSat = S
			ctx.ColorEditLastColor = [3]float32{col[0], col[1], col[2]}
		} else if flags&ColorEditFlagsInputHSV != 0 {
			col[0], col[1], col[2] = H, S, V
		}
	}

	// RGB, HSV and hex editors under the picker.
	fixHueWrap := false
	if flags&ColorEditFlagsNoInputs == 0 {
		right := bar0PosX
		if alphaBar {
			right = bar1PosX
		}
		ctx.PushItemWidth(right + barsWidth - pickerPos.X)
		forward := colorEditFlagsDataTypeMask | colorEditFlagsInputMask | ColorEditFlagsHDR | ColorEditFlagsNoAlpha | ColorEditFlagsNoOptions | ColorEditFlagsNoSmallPreview | ColorEditFlagsAlphaPreview | ColorEditFlagsAlphaPreviewHalf
		sub := flags&forward | ColorEditFlagsNoPicker
		all := flags&colorEditFlagsDisplayMask == 0
		if flags&ColorEditFlagsDisplayRGB != 0 || all {
			if ctx.ColorEdit4("##rgb", col, sub|ColorEditFlagsDisplayRGB) {
				// Only a drag should run the hue wrap correction below.
				fixHueWrap = ctx.ActiveID != 0 && !ctx.ActiveIDAllowOverlap
				changed = true
			}
		}
		if flags&ColorEditFlagsDisplayHSV != 0 || all {
			changed = ctx.ColorEdit4("##hsv", col, sub|ColorEditFlagsDisplayHSV) || changed
		}
		if flags&ColorEditFlagsDisplayHex != 0 || all {
			changed = ctx.ColorEdit4("##hex", col, sub|ColorEditFlagsDisplayHex) || changed
		}
		ctx.PopItemWidth()
	}

	// Dragging RGB down to grey would snap the hue to red.
	if fixHueWrap && flags&ColorEditFlagsInputRGB != 0 {
		newH, newS, newV := ColorConvertRGBtoHSV(col[0], col[1], col[2])
		if newH <= 0 && H > 0 {
			if newV <= 0 && V != newV {
				col[0], col[1], col[2] = ColorConvertHSVtoRGB(H, S, V*0.5)
			} else if newS <= 0 {
				col[0], col[1], col[2] = ColorConvertHSVtoRGB(H, S*0.5, newV)
			}
		}
	}

	if changed {
		if flags&ColorEditFlagsInputRGB != 0 {
			R, G, B = col[0], col[1], col[2]
			H, S, V = ColorConvertRGBtoHSV(R, G, B)
			if ctx.ColorEditLastColor == [3]float32{col[0], col[1], col[2]} {
				if S == 0 {
					H = ctx.ColorEditLastHue
				}
				if V == 0 {
					S = ctx.ColorEditLastSat
				}
			}
		} else if flags&ColorEditFlagsInputHSV != 0 {
			H, S, V = col[0], col[1], col[2]
			R, G, B = ColorConvertHSVtoRGB(H, S, V)
		}
	}

	ctx.renderColorPicker(dl, colorPickerGeometry{
		flags:        flags,
		pickerPos:    pickerPos,
		svPickerSize: svPickerSize,
		barsWidth:    barsWidth,
		bar0PosX:     bar0PosX,
		bar1PosX:     bar1PosX,
		triHalfSz:    barsTrianglesHalfSz,
		wheelCenter:  wheelCenter,
		wheelRInner:  wheelRInner,
		wheelROuter:  wheelROuter,
		wheelThick:   wheelThickness,
		triangle:     [3]Vec2{trianglePa, trianglePb, trianglePc},
		alphaBar:     alphaBar,
		hueActive:    changedH,
		svActive:     changedSV,
	}, H, S, V, Vec4{R, G, B, col[3]})

	ctx.EndGroup()

	if changed && backupInitial == *col {
		changed = false
	}
	if changed {
		ctx.MarkItemEdited(w.DC.LastItemID)
	}
	ctx.PopID()
	return changed
}

type colorPickerGeometry struct {
	flags                         ColorEditFlags
	pickerPos                     Vec2
	svPickerSize, barsWidth       float32
	bar0PosX, bar1PosX, triHalfSz float32
	wheelCenter                   Vec2
	wheelRInner, wheelROuter      float32
	wheelThick                    float32
	triangle                      [3]Vec2
	alphaBar, hueActive, svActive bool
}

// renderColorPicker draws the picker for hue h, saturation s and value v;
// rgb carries the same color in RGB plus the edited alpha.
func (ctx *Context) renderColorPicker(dl *DrawList, g colorPickerGeometry, h, s, v float32, rgb Vec4) {
	a8 := uint8(f32ToInt8Sat(ctx.Style.Alpha))
	colBlack := RGBA(0, 0, 0, a8)
	colWhite := RGBA(255, 255, 255, a8)
	colMidGrey := RGBA(128, 128, 128, a8)
	hues := [7]uint32{
		RGBA(255, 0, 0, a8), RGBA(255, 255, 0, a8), RGBA(0, 255, 0, a8),
		RGBA(0, 255, 255, a8), RGBA(0, 0, 255, a8), RGBA(255, 0, 255, a8),
		RGBA(255, 0, 0, a8),
	}

	hr, hg, hb := ColorConvertHSVtoRGB(h, 1, 1)
	hueColor := ColorConvertFloat4ToU32(Vec4{hr, hg, hb, ctx.Style.Alpha})
	// Still includes the global style alpha.
	userCol := ColorConvertFloat4ToU32(Vec4{rgb.X, rgb.Y, rgb.Z, ctx.Style.Alpha})

	pickerPos, size := g.pickerPos, g.svPickerSize
	var svCursor Vec2
	if g.flags&ColorEditFlagsPickerHueWheel != 0 {
		// Hue ring, split in six gradients.
		aeps := 0.5 / g.wheelROuter
		segs := max(4, int(g.wheelROuter)/12)
		for n := range 6 {
			a0 := float32(n)/6*2*math32.Pi - aeps
			a1 := float32(n+1)/6*2*math32.Pi + aeps
			for k := range segs {
				t0, t1 := float32(k)/float32(segs), float32(k+1)/float32(segs)
				b0, b1 := lerpf(a0, a1, t0), lerpf(a0, a1, t1)
				c0, c1 := lerpColor(hues[n], hues[n+1], t0), lerpColor(hues[n], hues[n+1], t1)
				dir0 := Vec2{math32.Cos(b0), math32.Sin(b0)}
				dir1 := Vec2{math32.Cos(b1), math32.Sin(b1)}
				dl.AddQuadFilledMultiColor(
					g.wheelCenter.Add(dir0.Mul(g.wheelRInner)), g.wheelCenter.Add(dir0.Mul(g.wheelROuter)),
					g.wheelCenter.Add(dir1.Mul(g.wheelROuter)), g.wheelCenter.Add(dir1.Mul(g.wheelRInner)),
					c0, c0, c1, c1)
			}
		}

		cosHue, sinHue := math32.Cos(h*2*math32.Pi), math32.Sin(h*2*math32.Pi)
		mid := (g.wheelRInner + g.wheelROuter) * 0.5
		hueCursor := Vec2{g.wheelCenter.X + cosHue*mid, g.wheelCenter.Y + sinHue*mid}
		hueRad := g.wheelThick * 0.55
		if g.hueActive {
			hueRad = g.wheelThick * 0.65
		}
		hueSegs := clampi(int(hueRad/1.4), 9, 32)
		dl.AddCircleFilled(hueCursor, hueRad, hueColor, hueSegs)
		dl.AddCircle(hueCursor, hueRad+1, colMidGrey, hueSegs, 1)
		dl.AddCircle(hueCursor, hueRad, colWhite, hueSegs, 1)

		tra := g.wheelCenter.Add(rotateV2(g.triangle[0], cosHue, sinHue))
		trb := g.wheelCenter.Add(rotateV2(g.triangle[1], cosHue, sinHue))
		trc := g.wheelCenter.Add(rotateV2(g.triangle[2], cosHue, sinHue))
		dl.AddTriangleFilledMultiColor(tra, trb, trc, hueColor, hueColor, colWhite)
		dl.AddTriangleFilledMultiColor(tra, trb, trc, 0, colBlack, 0)
		dl.AddTriangle(tra, trb, trc, colMidGrey, 1.5)
		svCursor = lerpV2(lerpV2(trc, tra, s), trb, 1-v)
	} else if g.flags&ColorEditFlagsPickerHueBar != 0 {
		svMax := pickerPos.Add(Vec2{size, size})
		dl.AddRectFilledMultiColor(pickerPos, svMax, colWhite, hueColor, hueColor, colWhite)
		dl.AddRectFilledMultiColor(pickerPos, svMax, 0, 0, colBlack, colBlack)
		ctx.RenderFrameBorder(pickerPos, svMax, 0)
		// Keep the cursor circle mostly inside the square.
		svCursor.X = clampf(roundf(pickerPos.X+saturate(s)*size), pickerPos.X+2, pickerPos.X+size-2)
		svCursor.Y = clampf(roundf(pickerPos.Y+saturate(1-v)*size), pickerPos.Y+2, pickerPos.Y+size-2)

		for i := range 6 {
			y0 := pickerPos.Y + float32(i)*(size/6)
			y1 := pickerPos.Y + float32(i+1)*(size/6)
			dl.AddRectFilledMultiColor(Vec2{g.bar0PosX, y0}, Vec2{g.bar0PosX + g.barsWidth, y1}, hues[i], hues[i], hues[i+1], hues[i+1])
		}
		lineY := roundf(pickerPos.Y + h*size)
		ctx.RenderFrameBorder(Vec2{g.bar0PosX, pickerPos.Y}, Vec2{g.bar0PosX + g.barsWidth, pickerPos.Y + size}, 0)
		renderArrowsForVerticalBar(dl, Vec2{g.bar0PosX - 1, lineY}, Vec2{g.triHalfSz + 1, g.triHalfSz}, g.barsWidth+2, ctx.Style.Alpha)
	}

	svRad := float32(6)
	if g.svActive {
		svRad = 10
	}
	dl.AddCircleFilled(svCursor, svRad, userCol, 12)
	dl.AddCircle(svCursor, svRad+1, colMidGrey, 12, 1)
	dl.AddCircle(svCursor, svRad, colWhite, 12, 1)

	if g.alphaBar {
		alpha := saturate(rgb.W)
		bb := R(g.bar1PosX, pickerPos.Y, g.bar1PosX+g.barsWidth, pickerPos.Y+size)
		RenderColorRectWithAlphaCheckerboard(dl, bb.Min, bb.Max, 0, bb.Width()/2, Vec2{}, 0, DrawCornerAll)
		clear := userCol &^ colorAlphaMask
		dl.AddRectFilledMultiColor(bb.Min, bb.Max, userCol, userCol, clear, clear)
		lineY := roundf(pickerPos.Y + (1-alpha)*size)
		ctx.RenderFrameBorder(bb.Min, bb.Max, 0)
		renderArrowsForVerticalBar(dl, Vec2{g.bar1PosX - 1, lineY}, Vec2{g.triHalfSz + 1, g.triHalfSz}, g.barsWidth+2, ctx.Style.Alpha)
	}
}

// ColorButton draws a color swatch and returns true when clicked. A zero
// size component uses the frame height.
func (ctx *Context) ColorButton(descID string, col Vec4, flags ColorEditFlags, size Vec2) bool {
	w := ctx.CurrentWindow
	if w.SkipItems {
		return false
	}
	st := &ctx.Style
	id := w.GetID(descID)
	defaultSize := ctx.GetFrameHeight()
	if size.X == 0 {
		size.X = defaultSize
	}
	if size.Y == 0 {
		size.Y = defaultSize
	}
	bb := Rect{w.DC.CursorPos, w.DC.CursorPos.Add(size)}
	baseline := float32(0)
	if size.Y >= defaultSize {
		baseline = st.FramePadding.Y
	}
	ctx.ItemSizeRect(bb, baseline)
	if !ctx.ItemAdd(bb, id, nil) {
		return false
	}
	pressed, hovered, _ := ctx.ButtonBehavior(bb, id, ButtonFlagsNone)

	if flags&ColorEditFlagsNoAlpha != 0 {
		flags &^= ColorEditFlagsAlphaPreview | ColorEditFlagsAlphaPreviewHalf
	}
	colRGB := col
	if flags&ColorEditFlagsInputHSV != 0 {
		colRGB.X, colRGB.Y, colRGB.Z = ColorConvertHSVtoRGB(col.X, col.Y, col.Z)
	}
	opaque := Vec4{colRGB.X, colRGB.Y, colRGB.Z, 1}
	gridStep := minf(size.X, size.Y) / 2.99
	rounding := minf(st.FrameRounding, gridStep*0.5)
	inner := bb
	var off float32
	if flags&ColorEditFlagsNoBorder == 0 {
		// The border looks off on near-opaque rounded swatches otherwise.
		off = -0.75
		inner = inner.Expand(off)
	}
	dl := w.DrawList
	if flags&ColorEditFlagsAlphaPreviewHalf != 0 && colRGB.W < 1 {
		midX := roundf((inner.Min.X + inner.Max.X) * 0.5)
		RenderColorRectWithAlphaCheckerboard(dl, Vec2{midX, inner.Min.Y}, inner.Max, ctx.GetColorU32Vec(colRGB), gridStep, Vec2{-gridStep + off, off}, rounding, DrawCornerRight)
		dl.AddRectFilled(inner.Min, Vec2{midX, inner.Max.Y}, ctx.GetColorU32Vec(opaque), rounding, DrawCornerLeft)
	} else {
		// GetColorU32Vec applies the style alpha, so only show the
		// checkerboard when the source color itself is translucent.
		src := opaque
		if flags&ColorEditFlagsAlphaPreview != 0 {
			src = colRGB
		}
		if src.W < 1 {
			RenderColorRectWithAlphaCheckerboard(dl, inner.Min, inner.Max, ctx.GetColorU32Vec(src), gridStep, Vec2{off, off}, rounding, DrawCornerAll)
		} else {
			dl.AddRectFilled(inner.Min, inner.Max, ctx.GetColorU32Vec(src), rounding, DrawCornerAll)
		}
	}
	ctx.RenderNavHighlight(bb, id)
	if flags&ColorEditFlagsNoBorder == 0 {
		if st.FrameBorderSize > 0 {
			ctx.RenderFrameBorder(bb.Min, bb.Max, rounding)
		} else {
			dl.AddRect(bb.Min, bb.Max, ctx.GetColorU32(ColFrameBg, 1), rounding, DrawCornerAll, 1)
		}
	}

	if flags&ColorEditFlagsNoTooltip == 0 && hovered {
		c := [4]float32{col.X, col.Y, col.Z, col.W}
		ctx.ColorTooltip(descID, &c, flags&(colorEditFlagsInputMask|ColorEditFlagsNoAlpha|ColorEditFlagsAlphaPreview|ColorEditFlagsAlphaPreviewHalf))
	}
	return pressed
}

// ColorTooltip shows text, a large swatch and the color's values in a
// tooltip.
func (ctx *Context) ColorTooltip(text string, col *[4]float32, flags ColorEditFlags) {
	ctx.beginTooltipEx(WindowFlagsNone, tooltipFlagsOverridePrevious)
	if display := FindRenderedTextEnd(text); display != "" {
		ctx.TextEx(display)
		ctx.Separator()
	}

	side := ctx.FontSize*3 + ctx.Style.FramePadding.Y*2
	noAlpha := flags&ColorEditFlagsNoAlpha != 0
	cf := Vec4{col[0], col[1], col[2], col[3]}
	if noAlpha {
		cf.W = 1
	}
	cr, cg, cb := f32ToInt8Sat(col[0]), f32ToInt8Sat(col[1]), f32ToInt8Sat(col[2])
	ca := 255
	if !noAlpha {
		ca = f32ToInt8Sat(col[3])
	}
	forward := colorEditFlagsInputMask | ColorEditFlagsNoAlpha | ColorEditFlagsAlphaPreview | ColorEditFlagsAlphaPreviewHalf
	ctx.ColorButton("##preview", cf, flags&forward|ColorEditFlagsNoTooltip, Vec2{side, side})
	ctx.SameLine(0, -1)
	switch {
	case flags&ColorEditFlagsInputRGB != 0 || flags&colorEditFlagsInputMask == 0:
		if noAlpha {
			ctx.Text("#%02X%02X%02X\nR: %d, G: %d, B: %d\n(%.3f, %.3f, %.3f)", cr, cg, cb, cr, cg, cb, col[0], col[1], col[2])
		} else {
			ctx.Text("#%02X%02X%02X%02X\nR:%d, G:%d, B:%d, A:%d\n(%.3f, %.3f, %.3f, %.3f)", cr, cg, cb, ca, cr, cg, cb, ca, col[0], col[1], col[2], col[3])
		}
	case flags&ColorEditFlagsInputHSV != 0:
		if noAlpha {
			ctx.Text("H: %.3f, S: %.3f, V: %.3f", col[0], col[1], col[2])
		} else {
			ctx.Text("H: %.3f, S: %.3f, V: %.3f, A: %.3f", col[0], col[1], col[2], col[3])
		}
	}
	ctx.EndTooltip()
}

// colorEditOptionsPopup is the right-click menu of ColorEdit: display mode,
// data type and copy-as entries.
func (ctx *Context) colorEditOptionsPopup(col *[4]float32, flags ColorEditFlags) {
	allowInputs := flags&colorEditFlagsDisplayMask == 0
	allowDataType := flags&colorEditFlagsDataTypeMask == 0
	if !allowInputs && !allowDataType || !ctx.BeginPopup("context", WindowFlagsNone) {
		return
	}
	opts := ctx.ColorEditOptions
	radio := func(label string, bit, mask ColorEditFlags) {
		if ctx.RadioButton(label, opts&bit != 0) {
			opts = opts&^mask | bit
		}
	}
	if allowInputs {
		radio("RGB", ColorEditFlagsDisplayRGB, colorEditFlagsDisplayMask)
		radio("HSV", ColorEditFlagsDisplayHSV, colorEditFlagsDisplayMask)
		radio("Hex", ColorEditFlagsDisplayHex, colorEditFlagsDisplayMask)
	}
	if allowDataType {
		if allowInputs {
			ctx.Separator()
		}
		radio("0..255", ColorEditFlagsUint8, colorEditFlagsDataTypeMask)
		radio("0.00..1.00", ColorEditFlagsFloat, colorEditFlagsDataTypeMask)
	}
	ctx.Separator()

	if ctx.ButtonSize("Copy as..", Vec2{-1, 0}) {
		ctx.OpenPopup("Copy", PopupFlagsNone)
	}
	if ctx.BeginPopup("Copy", WindowFlagsNone) {
		noAlpha := flags&ColorEditFlagsNoAlpha != 0
		cr, cg, cb := f32ToInt8Sat(col[0]), f32ToInt8Sat(col[1]), f32ToInt8Sat(col[2])
		ca, fa := 255, float32(1)
		if !noAlpha {
			ca, fa = f32ToInt8Sat(col[3]), col[3]
		}
		entries := []string{
			fmt.Sprintf("(%.3ff, %.3ff, %.3ff, %.3ff)", col[0], col[1], col[2], fa),
			fmt.Sprintf("(%d,%d,%d,%d)", cr, cg, cb, ca),
			fmt.Sprintf("#%02X%02X%02X", cr, cg, cb),
		}
		if !noAlpha {
			entries = append(entries, fmt.Sprintf("#%02X%02X%02X%02X", cr, cg, cb, ca))
		}
		for _, e := range entries {
			if ctx.Selectable(e, false) {
				ctx.SetClipboardText(e)
			}
		}
		ctx.EndPopup()
	}

	if opts != ctx.ColorEditOptions {
		ctx.Logger.Debug("color edit options changed", "from", ctx.ColorEditOptions, "to", opts)
	}
	ctx.ColorEditOptions = opts
	ctx.EndPopup()
}

// colorPickerOptionsPopup lets the user choose the picker type from live
// thumbnails and toggle the alpha bar.
func (ctx *Context) colorPickerOptionsPopup(refCol *[4]float32, flags ColorEditFlags) {
	allowPicker := flags&colorEditFlagsPickerMask == 0
	allowAlphaBar := flags&ColorEditFlagsNoAlpha == 0 && flags&ColorEditFlagsAlphaBar == 0
	if !allowPicker && !allowAlphaBar || !ctx.BeginPopup("context", WindowFlagsNone) {
		return
	}
	if allowPicker {
		pickerSize := Vec2{ctx.FontSize * 8, maxf(ctx.FontSize*8-(ctx.GetFrameHeight()+ctx.Style.ItemInnerSpacing.X), 1)}
		ctx.PushItemWidth(pickerSize.X)
		for pickerType, typeFlag := range []ColorEditFlags{ColorEditFlagsPickerHueBar, ColorEditFlagsPickerHueWheel} {
			if pickerType > 0 {
				ctx.Separator()
			}
			ctx.PushIDInt(pickerType)
			pickerFlags := ColorEditFlagsNoInputs | ColorEditFlagsNoOptions | ColorEditFlagsNoLabel | ColorEditFlagsNoSidePreview | flags&ColorEditFlagsNoAlpha | typeFlag
			backupPos := ctx.GetCursorScreenPos()
			if ctx.SelectableEx("##selectable", false, SelectableFlagsNone, pickerSize) {
				ctx.ColorEditOptions = ctx.ColorEditOptions&^colorEditFlagsPickerMask | typeFlag
			}
			ctx.SetCursorScreenPos(backupPos)
			preview := *refCol
			if pickerFlags&ColorEditFlagsNoAlpha != 0 {
				preview[3] = 0
			}
			ctx.ColorPicker4("##previewing_picker", &preview, pickerFlags, nil)
			ctx.PopID()
		}
		ctx.PopItemWidth()
	}
	if allowAlphaBar {
		if allowPicker {
			ctx.Separator()
		}
		CheckboxFlags(ctx, "Alpha Bar", &ctx.ColorEditOptions, ColorEditFlagsAlphaBar)
	}
	ctx.EndPopup()
}
