package anchor

type plotType int

const (
	plotTypeLines plotType = iota
	plotTypeHistogram
)

// PlotLines draws values as a polyline in a frame. Options: WithPlotScale,
// WithPlotOverlay, WithPlotOffset, WithSize.
func (ctx *Context) PlotLines(label string, values []float32, opts ...Option) {
	ctx.PlotLinesFunc(label, func(i int) float32 { return values[i] }, len(values), opts...)
}

// PlotLinesFunc is PlotLines over count values produced by getter.
func (ctx *Context) PlotLinesFunc(label string, getter func(i int) float32, count int, opts ...Option) {
	ctx.plotEx(plotTypeLines, label, getter, count, applyOptions(opts))
}

// PlotHistogram draws values as vertical bars in a frame. It takes the
// same options as PlotLines.
func (ctx *Context) PlotHistogram(label string, values []float32, opts ...Option) {
	ctx.PlotHistogramFunc(label, func(i int) float32 { return values[i] }, len(values), opts...)
}

// PlotHistogramFunc is PlotHistogram over count values produced by getter.
func (ctx *Context) PlotHistogramFunc(label string, getter func(i int) float32, count int, opts ...Option) {
	ctx.plotEx(plotTypeHistogram, label, getter, count, applyOptions(opts))
}

// plotScaleRange fills the floatMax ends of scale from the data.
func plotScaleRange(getter func(i int) float32, count int, scale PlotScale) PlotScale {
	if scale.Min != floatMax && scale.Max != floatMax {
		return scale
	}
	lo, hi := floatMax, -floatMax
	for i := range count {
		v := getter(i)
		if v != v { // NaN
			continue
		}
		lo, hi = minf(lo, v), maxf(hi, v)
	}
	if scale.Min == floatMax {
		scale.Min = lo
	}
	if scale.Max == floatMax {
		scale.Max = hi
	}
	return scale
}

// plotEx returns the index under the mouse, or -1.
func (ctx *Context) plotEx(kind plotType, label string, getter func(i int) float32, count int, o options) int {
	w := ctx.CurrentWindow
	if w.SkipItems {
		return -1
	}
	st := &ctx.Style
	id := w.GetID(label)

	labelSize := ctx.CalcTextSize(label, true, 0)
	frameSize := GetOpt(o, OptSize)
	if frameSize.X == 0 {
		frameSize.X = ctx.CalcItemWidth()
	}
	if frameSize.Y == 0 {
		frameSize.Y = labelSize.Y + st.FramePadding.Y*2
	}

	frameBB := Rect{w.DC.CursorPos, w.DC.CursorPos.Add(frameSize)}
	innerBB := Rect{frameBB.Min.Add(st.FramePadding), frameBB.Max.Sub(st.FramePadding)}
	totalBB := frameBB
	if labelSize.X > 0 {
		totalBB.Max.X += st.ItemInnerSpacing.X + labelSize.X
	}
	ctx.ItemSizeRect(totalBB, st.FramePadding.Y)
	if !ctx.ItemAdd(totalBB, 0, &frameBB) {
		return -1
	}
	hovered := ctx.ItemHoverable(frameBB, id)

	scale := plotScaleRange(getter, count, GetOpt(o, OptPlotScale))
	offset := GetOpt(o, OptPlotOffset)

	ctx.RenderFrame(frameBB.Min, frameBB.Max, ctx.GetColorU32(ColFrameBg, 1), true, st.FrameRounding)

	minCount := 2
	if kind == plotTypeHistogram {
		minCount = 1
	}
	idxHovered := -1
	if count >= minCount {
		resW := min(int(frameSize.X), count)
		itemCount := count
		if kind == plotTypeLines {
			resW--
			itemCount--
		}

		// Tooltip for the value under the mouse.
		if hovered && innerBB.Contains(ctx.IO.MousePos) {
			t := clampf((ctx.IO.MousePos.X-innerBB.Min.X)/(innerBB.Max.X-innerBB.Min.X), 0, 0.9999)
			idx := int(t * float32(itemCount))
			v0 := getter((idx + offset) % count)
			v1 := getter((idx + 1 + offset) % count)
			if kind == plotTypeLines {
				ctx.SetTooltip("%d: %8.4g\n%d: %8.4g", idx, v0, idx+1, v1)
			} else {
				ctx.SetTooltip("%d: %8.4g", idx, v0)
			}
			idxHovered = idx
		}

		tStep := 1 / float32(resW)
		invScale := float32(0)
		if scale.Min != scale.Max {
			invScale = 1 / (scale.Max - scale.Min)
		}

		v0 := getter(offset % count)
		t0 := float32(0)
		// Point in the normalized space of the graph.
		tp0 := Vec2{t0, 1 - saturate((v0-scale.Min)*invScale)}
		// Where the zero line sits, for histograms over negative values.
		histZeroY := float32(1)
		if scale.Min*scale.Max < 0 {
			histZeroY = -scale.Min * invScale
		} else if scale.Min < 0 {
			histZeroY = 0
		}

		colBase := ctx.GetColorU32(ColPlotLines, 1)
		colHovered := ctx.GetColorU32(ColPlotLinesHovered, 1)
		if kind == plotTypeHistogram {
			colBase = ctx.GetColorU32(ColPlotHistogram, 1)
			colHovered = ctx.GetColorU32(ColPlotHistogramHovered, 1)
		}

		dl := w.DrawList
		for range resW {
			t1 := t0 + tStep
			v1Idx := int(t0*float32(itemCount) + 0.5)
			v1 := getter((v1Idx + offset + 1) % count)
			tp1 := Vec2{t1, 1 - saturate((v1-scale.Min)*invScale)}

			pos0 := innerBB.Min.Add(innerBB.Size().MulV(tp0))
			if kind == plotTypeLines {
				pos1 := innerBB.Min.Add(innerBB.Size().MulV(tp1))
				col := colBase
				if idxHovered == v1Idx {
					col = colHovered
				}
				dl.AddLine(pos0, pos1, col, 1)
			} else {
				pos1 := innerBB.Min.Add(innerBB.Size().MulV(Vec2{tp1.X, histZeroY}))
				if pos1.X >= pos0.X+2 {
					pos1.X -= 1
				}
				col := colBase
				if idxHovered == v1Idx {
					col = colHovered
				}
				dl.AddRectFilled(pos0, pos1, col, 0, DrawCornerNone)
			}
			t0, tp0 = t1, tp1
		}
	}

	if overlay := GetOpt(o, OptPlotOverlay); overlay != "" {
		ctx.RenderTextClipped(Vec2{frameBB.Min.X, frameBB.Min.Y + st.FramePadding.Y}, frameBB.Max, overlay, nil, Vec2{0.5, 0}, nil)
	}
	if labelSize.X > 0 {
		ctx.RenderText(Vec2{frameBB.Max.X + st.ItemInnerSpacing.X, innerBB.Min.Y}, label, true)
	}
	return idxHovered
}
