package anchor

import "unicode/utf8"

// ============================================================================
// Text
// ============================================================================

// RenderText draws text at pos in the current window, stopping at "##"
// when hideAfterHash is set.
func (ctx *Context) RenderText(pos Vec2, text string, hideAfterHash bool) {
	if hideAfterHash {
		text = FindRenderedTextEnd(text)
	}
	if text == "" {
		return
	}
	w := ctx.CurrentWindow
	w.DrawList.AddText(ctx.Font, ctx.FontSize, pos, ctx.GetColorU32(ColText, 1), text, 0, nil)
}

// RenderTextWrapped draws text wrapped at wrapWidth.
func (ctx *Context) RenderTextWrapped(pos Vec2, text string, wrapWidth float32) {
	if text == "" {
		return
	}
	w := ctx.CurrentWindow
	w.DrawList.AddText(ctx.Font, ctx.FontSize, pos, ctx.GetColorU32(ColText, 1), text, wrapWidth, nil)
}

// RenderTextClipped draws text aligned inside [posMin, posMax), clipped to
// clip (the same box when nil). textSize may be nil to measure it.
func (ctx *Context) RenderTextClipped(posMin, posMax Vec2, text string, textSize *Vec2, align Vec2, clip *Rect) {
	text = FindRenderedTextEnd(text)
	if text == "" {
		return
	}
	ctx.renderTextClippedTo(ctx.CurrentWindow.DrawList, posMin, posMax, text, textSize, align, clip)
}

func (ctx *Context) renderTextClippedTo(dl *DrawList, posMin, posMax Vec2, text string, textSize *Vec2, align Vec2, clip *Rect) {
	if text == "" {
		return
	}
	var size Vec2
	if textSize != nil {
		size = *textSize
	} else {
		size = ctx.CalcTextSize(text, false, 0)
	}
	clipMin, clipMax := posMin, posMax
	if clip != nil {
		clipMin, clipMax = clip.Min, clip.Max
	}
	needClip := posMin.X+size.X >= clipMax.X || posMin.Y+size.Y >= clipMax.Y
	if clip != nil {
		needClip = needClip || posMin.X < clipMin.X || posMin.Y < clipMin.Y
	}

	pos := posMin
	if align.X > 0 {
		pos.X = maxf(pos.X, pos.X+(posMax.X-pos.X-size.X)*align.X)
	}
	if align.Y > 0 {
		pos.Y = maxf(pos.Y, pos.Y+(posMax.Y-pos.Y-size.Y)*align.Y)
	}
	col := ctx.GetColorU32(ColText, 1)
	if needClip {
		r := Rect{clipMin, clipMax}
		dl.AddText(ctx.Font, ctx.FontSize, pos, col, text, 0, &r)
	} else {
		dl.AddText(ctx.Font, ctx.FontSize, pos, col, text, 0, nil)
	}
}

// RenderTextEllipsis draws text clipped at posMax.X, replacing the cut tail
// with "..." ending before ellipsisMaxX.
func (ctx *Context) RenderTextEllipsis(dl *DrawList, posMin, posMax Vec2, clipMaxX, ellipsisMaxX float32, text string, textSize *Vec2) {
	var size Vec2
	if textSize != nil {
		size = *textSize
	} else {
		size = ctx.CalcTextSize(text, false, 0)
	}
	if size.X <= posMax.X-posMin.X {
		clip := R(posMin.X, posMin.Y, clipMaxX, posMax.Y)
		ctx.renderTextClippedTo(dl, posMin, Vec2{clipMaxX, posMax.Y}, text, &size, Vec2{}, &clip)
		return
	}
	const ellipsis = "..."
	dotsW := ctx.CalcTextSize(ellipsis, false, 0).X
	textAvail := maxf(maxf(posMax.X, ellipsisMaxX)-dotsW-posMin.X, 1)
	_, rest := CalcTextSizeA(ctx.Font, ctx.FontSize, textAvail, 0, text)
	shown := text[:len(text)-len(rest)]
	if shown == "" {
		// Always show at least one character.
		_, n := utf8.DecodeRuneInString(text)
		shown = text[:n]
	}
	for len(shown) > 1 && isBlankASCII(shown[len(shown)-1]) {
		shown = shown[:len(shown)-1]
	}
	fit := ctx.CalcTextSize(shown, false, 0)
	clip := R(posMin.X, posMin.Y, clipMaxX, posMax.Y)
	ctx.renderTextClippedTo(dl, posMin, Vec2{clipMaxX, posMax.Y}, shown, &fit, Vec2{}, &clip)
	if posMin.X+fit.X < ellipsisMaxX {
		dl.AddText(ctx.Font, ctx.FontSize, Vec2{posMin.X + fit.X, posMin.Y}, ctx.GetColorU32(ColText, 1), ellipsis, 0, nil)
	}
}

// ============================================================================
// Frames and shapes
// ============================================================================

// RenderFrame fills a rectangle with an optional border.
func (ctx *Context) RenderFrame(min, max Vec2, col uint32, border bool, rounding float32) {
	ctx.renderFrameTo(ctx.CurrentWindow.DrawList, min, max, col, border, rounding)
}

func (ctx *Context) renderFrameTo(dl *DrawList, min, max Vec2, col uint32, border bool, rounding float32) {
	dl.AddRectFilled(min, max, col, rounding, DrawCornerAll)
	bs := ctx.Style.FrameBorderSize
	if border && bs > 0 {
		dl.AddRect(min.Add(Vec2{1, 1}), max.Add(Vec2{1, 1}), ctx.GetColorU32(ColBorderShadow, 1), rounding, DrawCornerAll, bs)
		dl.AddRect(min, max, ctx.GetColorU32(ColBorder, 1), rounding, DrawCornerAll, bs)
	}
}

// RenderFrameBorder draws only the frame border.
func (ctx *Context) RenderFrameBorder(min, max Vec2, rounding float32) {
	dl := ctx.CurrentWindow.DrawList
	bs := ctx.Style.FrameBorderSize
	if bs > 0 {
		dl.AddRect(min.Add(Vec2{1, 1}), max.Add(Vec2{1, 1}), ctx.GetColorU32(ColBorderShadow, 1), rounding, DrawCornerAll, bs)
		dl.AddRect(min, max, ctx.GetColorU32(ColBorder, 1), rounding, DrawCornerAll, bs)
	}
}

// RenderArrow draws a triangle pointing in dir inside a square of
// FontSize*scale at pos.
func RenderArrow(dl *DrawList, pos Vec2, col uint32, dir Dir, fontSize, scale float32) {
	h := fontSize
	r := h * 0.40 * scale
	center := pos.Add(Vec2{h * 0.50, h * 0.50 * scale})
	var a, b, c Vec2
	switch dir {
	case DirUp, DirDown:
		if dir == DirUp {
			r = -r
		}
		a = Vec2{0, 0.750 * r}
		b = Vec2{-0.866 * r, -0.750 * r}
		c = Vec2{0.866 * r, -0.750 * r}
	case DirLeft, DirRight:
		if dir == DirLeft {
			r = -r
		}
		a = Vec2{0.750 * r, 0}
		b = Vec2{-0.750 * r, 0.866 * r}
		c = Vec2{-0.750 * r, -0.866 * r}
	default:
		return
	}
	dl.AddTriangleFilled(center.Add(a), center.Add(b), center.Add(c), col)
}

// RenderBullet draws a filled circle.
func RenderBullet(dl *DrawList, pos Vec2, col uint32, fontSize float32) {
	dl.AddCircleFilled(pos, fontSize*0.20, col, 8)
}

// RenderCheckMark draws a tick of width sz at pos.
func RenderCheckMark(dl *DrawList, pos Vec2, col uint32, sz float32) {
	thickness := maxf(sz/5, 1)
	sz -= thickness * 0.5
	pos = pos.Add(Vec2{thickness * 0.25, thickness * 0.25})
	third := sz / 3
	bx := pos.X + third
	by := pos.Y + sz - third*0.5
	dl.PathLineTo(Vec2{bx - third, by - third})
	dl.PathLineTo(Vec2{bx, by})
	dl.PathLineTo(Vec2{bx + third*2, by - third*2})
	dl.PathStroke(col, false, thickness)
}

// RenderArrowPointingAt draws a small triangle with its tip at pos.
func RenderArrowPointingAt(dl *DrawList, pos, halfSz Vec2, dir Dir, col uint32) {
	switch dir {
	case DirLeft:
		dl.AddTriangleFilled(Vec2{pos.X + halfSz.X, pos.Y - halfSz.Y}, Vec2{pos.X + halfSz.X, pos.Y + halfSz.Y}, pos, col)
	case DirRight:
		dl.AddTriangleFilled(Vec2{pos.X - halfSz.X, pos.Y + halfSz.Y}, Vec2{pos.X - halfSz.X, pos.Y - halfSz.Y}, pos, col)
	case DirUp:
		dl.AddTriangleFilled(Vec2{pos.X + halfSz.X, pos.Y + halfSz.Y}, Vec2{pos.X - halfSz.X, pos.Y + halfSz.Y}, pos, col)
	case DirDown:
		dl.AddTriangleFilled(Vec2{pos.X - halfSz.X, pos.Y - halfSz.Y}, Vec2{pos.X + halfSz.X, pos.Y - halfSz.Y}, pos, col)
	}
}

// RenderRectFilledRangeH fills the horizontal fraction [x0, x1] of rect.
func RenderRectFilledRangeH(dl *DrawList, rect Rect, col uint32, x0, x1, rounding float32) {
	if x1 <= x0 {
		return
	}
	minX := lerpf(rect.Min.X, rect.Max.X, x0)
	maxX := lerpf(rect.Min.X, rect.Max.X, x1)
	r := R(minX, rect.Min.Y, maxX, rect.Max.Y)
	if rounding <= 0 {
		dl.AddRectFilled(r.Min, r.Max, col, 0, DrawCornerNone)
		return
	}
	rounding = clampf(minf((rect.Max.X-rect.Min.X)*0.5, (rect.Max.Y-rect.Min.Y)*0.5)-1, 0, rounding)
	corners := DrawCornerNone
	if x0 <= 0 {
		corners |= DrawCornerLeft
	}
	if x1 >= 1 {
		corners |= DrawCornerRight
	}
	dl.AddRectFilled(r.Min, r.Max, col, rounding, corners)
}

// RenderColorRectWithAlphaCheckerboard fills a rectangle with col over a
// checkerboard when col is translucent.
func RenderColorRectWithAlphaCheckerboard(dl *DrawList, min, max Vec2, col uint32, gridStep float32, gridOff Vec2, rounding float32, corners DrawCornerFlags) {
	if col>>24 == 0xFF || gridStep <= 0 {
		dl.AddRectFilled(min, max, col, rounding, corners)
		return
	}
	colBg1 := alphaBlendColors(RGBA(204, 204, 204, 255), col)
	colBg2 := alphaBlendColors(RGBA(128, 128, 128, 255), col)
	dl.AddRectFilled(min, max, colBg1, rounding, corners)
	yi := 0
	for y := min.Y + gridOff.Y; y < max.Y; y += gridStep {
		y1, y2 := clampf(y, min.Y, max.Y), minf(y+gridStep, max.Y)
		if y2 <= y1 {
			yi++
			continue
		}
		for x := min.X + gridOff.X + float32(yi&1)*gridStep; x < max.X; x += gridStep * 2 {
			x1, x2 := clampf(x, min.X, max.X), minf(x+gridStep, max.X)
			if x2 <= x1 {
				continue
			}
			dl.AddRectFilled(Vec2{x1, y1}, Vec2{x2, y2}, colBg2, 0, DrawCornerNone)
		}
		yi++
	}
}

// alphaBlendColors composites colB over colA.
func alphaBlendColors(colA, colB uint32) uint32 {
	t := float32(colB>>24) / 255
	ar, ag, ab, _ := UnpackRGBA(colA)
	br, bg, bb, _ := UnpackRGBA(colB)
	mix := func(a, b uint8) uint8 { return uint8(lerpf(float32(a), float32(b), t)) }
	return RGBA(mix(ar, br), mix(ag, bg), mix(ab, bb), 0xFF)
}

// renderArrowsForVerticalBar draws the hue bar cursor of the color picker.
func renderArrowsForVerticalBar(dl *DrawList, pos, halfSz Vec2, barW, alpha float32) {
	white := scaleAlpha(ColorWhite, alpha)
	black := scaleAlpha(ColorBlack, alpha)
	RenderArrowPointingAt(dl, Vec2{pos.X + halfSz.X + 1, pos.Y}, Vec2{halfSz.X + 2, halfSz.Y + 1}, DirRight, black)
	RenderArrowPointingAt(dl, Vec2{pos.X + halfSz.X, pos.Y}, halfSz, DirRight, white)
	RenderArrowPointingAt(dl, Vec2{pos.X + barW - halfSz.X - 1, pos.Y}, Vec2{halfSz.X + 2, halfSz.Y + 1}, DirLeft, black)
	RenderArrowPointingAt(dl, Vec2{pos.X + barW - halfSz.X, pos.Y}, halfSz, DirLeft, white)
}
