package anchor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// zoomHarness holds one horizontal ZoomSlider over [0, 100]. The bar spans
// x 8..392 and y 8..22, so one pixel is 100/384 of the range.
type zoomHarness struct {
	ui       *testUI
	lo, hi   float64
	flags    ZoomSliderFlags
	changed  bool
	itemSize Vec2
}

func newZoomHarness(t *testing.T, lo, hi float64) *zoomHarness {
	h := &zoomHarness{ui: newTestUI(t), lo: lo, hi: hi}
	h.frame()
	return h
}

func (h *zoomHarness) frame() {
	h.ui.frame(func(ctx *Context) {
		h.changed = ZoomSlider(ctx, "zoom", 0.0, 100.0, &h.lo, &h.hi, 0.1, h.flags)
		h.itemSize = ctx.GetItemRectSize()
	})
}

// drag presses at x, moves to x+dx and keeps the button down.
func (h *zoomHarness) drag(x, dx float32) {
	h.ui.mouseMove(V2(x, 15))
	h.frame()
	h.ui.mouseDown()
	h.frame()
	h.ui.mouseMove(V2(x+dx, 15))
	h.frame()
}

func (h *zoomHarness) assertView(t *testing.T, lo, hi float64) {
	t.Helper()
	assert.InDelta(t, lo, h.lo, 1e-4)
	assert.InDelta(t, hi, h.hi, 1e-4)
}

func TestZoomSliderLayout(t *testing.T) {
	h := newZoomHarness(t, 25, 50)
	assert.Equal(t, V2(384, 14), h.itemSize)
	assert.False(t, h.changed)
	h.assertView(t, 25, 50)

	h.flags = ZoomSliderFlagsVertical
	h.frame()
	assert.Equal(t, V2(14, 284), h.itemSize)
}

func TestZoomSliderThumbPans(t *testing.T) {
	h := newZoomHarness(t, 25, 50)
	// The thumb covers x 104..200.
	h.drag(152, 48)
	assert.True(t, h.changed)
	h.assertView(t, 37.5, 62.5)

	// Panning past the end keeps the span and stops at the upper bound.
	h.ui.mouseMove(V2(400, 15))
	h.frame()
	h.assertView(t, 75, 100)

	h.ui.mouseUp()
	h.frame()
	assert.False(t, h.changed)
	h.assertView(t, 75, 100)
}

func TestZoomSliderHandlesResize(t *testing.T) {
	h := newZoomHarness(t, 25, 50)
	h.drag(194, 96)
	h.assertView(t, 25, 75)
	h.ui.mouseUp()
	h.frame()

	// The low handle now sits at x 104..116.
	h.drag(110, -200)
	h.assertView(t, 0, 75)
}

func TestZoomSliderNoAnchorsPansFromHandles(t *testing.T) {
	h := newZoomHarness(t, 25, 50)
	h.flags = ZoomSliderFlagsNoAnchors
	h.drag(194, 96)
	h.assertView(t, 50, 75)
}

func TestZoomSliderTrackClickRecenters(t *testing.T) {
	h := newZoomHarness(t, 25, 50)
	h.ui.mouseMove(V2(296, 15))
	h.frame()
	h.ui.mouseDown()
	h.frame()
	assert.True(t, h.changed)
	h.assertView(t, 62.5, 87.5)

	// Near the start the view is clipped instead of centered.
	h.ui.mouseUp()
	h.frame()
	h.ui.mouseMove(V2(10, 15))
	h.frame()
	h.ui.mouseDown()
	h.frame()
	h.assertView(t, 0, 25)
}

func TestZoomSliderWheelZoomsAroundPointer(t *testing.T) {
	h := newZoomHarness(t, 25, 50)
	h.ui.mouseMove(V2(152, 15))
	h.frame()
	h.ui.ctx.IO.SetMouseWheel(0, 1)
	h.frame()
	assert.True(t, h.changed)
	h.assertView(t, 23.75, 51.25)

	h.flags = ZoomSliderFlagsNoWheel
	h.ui.ctx.IO.SetMouseWheel(0, 1)
	h.frame()
	assert.False(t, h.changed)
	h.assertView(t, 23.75, 51.25)
}

func TestZoomSliderKeepsMinimumSpan(t *testing.T) {
	// Three 12px handles on a 384px bar are 9.375 units.
	h := newZoomHarness(t, 40, 41)
	assert.True(t, h.changed)
	h.assertView(t, 35.8125, 45.1875)

	h = newZoomHarness(t, 98, 99)
	h.assertView(t, 90.625, 100)
}

func TestZoomSliderRejectsEmptyRange(t *testing.T) {
	ui := newTestUI(t)
	lo, hi := float32(0), float32(1)
	assert.PanicsWithError(t, "anchor: assertion failed: ZoomSlider needs lower < higher [id zoom]", func() {
		ui.frame(func(ctx *Context) {
			ZoomSlider(ctx, "zoom", float32(5), float32(5), &lo, &hi, 0.1, ZoomSliderFlagsNone)
		})
	})
}
