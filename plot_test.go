package anchor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlotScaleRange(t *testing.T) {
	values := []float32{3, -1, float32(math.NaN()), 7}
	get := func(i int) float32 { return values[i] }

	assert.Equal(t, PlotScale{Min: -1, Max: 7}, plotScaleRange(get, len(values), PlotScale{Min: floatMax, Max: floatMax}), "NaN is skipped")
	assert.Equal(t, PlotScale{Min: 0, Max: 7}, plotScaleRange(get, len(values), PlotScale{Min: 0, Max: floatMax}))
	assert.Equal(t, PlotScale{Min: -5, Max: 5}, plotScaleRange(get, len(values), PlotScale{Min: -5, Max: 5}))
}

func TestPlotHoveredIndex(t *testing.T) {
	ui := newTestUI(t)
	values := []float32{1, 4, 2, 8}
	var frame Rect
	hovered := -2
	plot := func(ctx *Context) {
		frame = RectFromSize(ctx.GetCursorScreenPos(), V2(200, 80))
		hovered = ctx.plotEx(plotTypeHistogram, "Hist", func(i int) float32 { return values[i] }, len(values), applyOptions([]Option{WithSize(V2(200, 80))}))
	}

	ui.frame(plot)
	assert.Equal(t, -1, hovered)

	ui.mouseMove(V2(frame.Center().X+1, frame.Center().Y))
	ui.frame(plot)
	assert.Equal(t, 2, hovered)

	ui.mouseMove(V2(frame.Min.X+10, frame.Center().Y))
	ui.frame(plot)
	assert.Equal(t, 0, hovered)
}

func TestPlotWidgetsAcceptFewValues(t *testing.T) {
	ui := newTestUI(t)
	ui.frame(func(ctx *Context) {
		ctx.PlotLines("Empty", nil)
		ctx.PlotLines("One", []float32{1})
		ctx.PlotHistogram("One bar", []float32{1}, WithPlotOverlay("max 1"))
		ctx.PlotLines("Flat", []float32{2, 2, 2}, WithPlotScale(0, 4), WithPlotOffset(1))
	})
}
