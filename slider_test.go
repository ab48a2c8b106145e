package anchor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const testLogEpsilon = 0.001

func TestScaleRatioFromValueLinear(t *testing.T) {
	assert.InDelta(t, 0.5, ScaleRatioFromValue(float32(5), 0, 10, false, 0, 0), 1e-6)
	assert.InDelta(t, 0.25, ScaleRatioFromValue(25, 0, 100, false, 0, 0), 1e-6)

	// Out of range values clamp.
	assert.Equal(t, float32(0), ScaleRatioFromValue(-5, 0, 10, false, 0, 0))
	assert.Equal(t, float32(1), ScaleRatioFromValue(50, 0, 10, false, 0, 0))

	// Flipped ranges run right to left.
	assert.InDelta(t, 0.8, ScaleRatioFromValue(float32(2), 10, 0, false, 0, 0), 1e-6)

	// An empty range maps everything to 0.
	assert.Equal(t, float32(0), ScaleRatioFromValue(5, 3, 3, false, 0, 0))
	assert.Equal(t, 3, ScaleValueFromRatio[int](0.7, 3, 3, false, 0, 0))
}

func TestScaleRatioFromValueMonotonic(t *testing.T) {
	tests := []struct {
		name       string
		vMin, vMax float32
		log        bool
	}{
		{name: "linear", vMin: -10, vMax: 10},
		{name: "log positive", vMin: 1, vMax: 1000, log: true},
		{name: "log negative", vMin: -1000, vMax: -1, log: true},
		{name: "log across zero", vMin: -10, vMax: 10, log: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev := float32(-1)
			steps := 200
			for i := 0; i <= steps; i++ {
				v := tt.vMin + (tt.vMax-tt.vMin)*float32(i)/float32(steps)
				if v != 0 && absf(v) < testLogEpsilon {
					continue
				}
				r := ScaleRatioFromValue(v, tt.vMin, tt.vMax, tt.log, testLogEpsilon, 0)
				assert.GreaterOrEqual(t, r, prev, "v=%v", v)
				assert.GreaterOrEqual(t, r, float32(0))
				assert.LessOrEqual(t, r, float32(1))
				prev = r
			}
		})
	}
}

func TestScaleRatioLogarithmic(t *testing.T) {
	assert.InDelta(t, 0.5, ScaleRatioFromValue(float32(10), 1, 100, true, testLogEpsilon, 0), 1e-5)

	// Zero sits at the zero point of a range crossing it.
	assert.InDelta(t, 0.5, ScaleRatioFromValue(float32(0), -10, 10, true, testLogEpsilon, 0), 1e-6)
	assert.InDelta(t, 0.25, ScaleRatioFromValue(float32(0), -10, 30, true, testLogEpsilon, 0), 1e-6)

	// A flipped logarithmic range mirrors the ordered one.
	for _, v := range []float32{1, 3, 10, 42, 100} {
		fwd := ScaleRatioFromValue(v, 1, 100, true, testLogEpsilon, 0)
		rev := ScaleRatioFromValue(v, 100, 1, true, testLogEpsilon, 0)
		assert.InDelta(t, 1-fwd, rev, 1e-6, "v=%v", v)
	}
}

func TestScaleValueFromRatioRoundTrip(t *testing.T) {
	for _, v := range []float32{1, 2, 10, 55, 100} {
		r := ScaleRatioFromValue(v, 1, 100, true, testLogEpsilon, 0)
		back := ScaleValueFromRatio(r, float32(1), 100, true, testLogEpsilon, 0)
		assert.InDelta(t, v, back, float64(1e-3*v), "log v=%v", v)
	}
	for v := 0; v <= 10; v++ {
		r := ScaleRatioFromValue(v, 0, 10, false, 0, 0)
		assert.Equal(t, v, ScaleValueFromRatio(r, 0, 10, false, 0, 0), "int v=%d", v)
	}

	// Log extents are exact.
	assert.Equal(t, float32(1), ScaleValueFromRatio(0, float32(1), 100, true, testLogEpsilon, 0))
	assert.Equal(t, float32(100), ScaleValueFromRatio(1, float32(1), 100, true, testLogEpsilon, 0))

	// Flipped integer ranges keep their ends.
	assert.Equal(t, 10, ScaleValueFromRatio(0, 10, 0, false, 0, 0))
	assert.Equal(t, 0, ScaleValueFromRatio(1, 10, 0, false, 0, 0))
}

func TestScaleValueFromRatioDeadzone(t *testing.T) {
	const deadzone = 0.05
	for _, ratio := range []float32{0.46, 0.5, 0.54} {
		assert.Zero(t, ScaleValueFromRatio(ratio, float32(-10), 10, true, testLogEpsilon, deadzone), "ratio=%v", ratio)
	}
	assert.Less(t, ScaleValueFromRatio(0.2, float32(-10), 10, true, testLogEpsilon, deadzone), float32(0))
	assert.Greater(t, ScaleValueFromRatio(0.8, float32(-10), 10, true, testLogEpsilon, deadzone), float32(0))
}

func TestSliderDragsValue(t *testing.T) {
	ui := newTestUI(t)
	v := float32(0)
	var frame Rect
	slider := func(ctx *Context) {
		pos := ctx.GetCursorScreenPos()
		frame = RectFromSize(pos, V2(ctx.CalcItemWidth(), ctx.GetFrameHeight()))
		ctx.SliderFloat("Value", &v, 0, 100)
	}

	ui.frame(slider)
	ui.mouseMove(V2(frame.Max.X-1, frame.Center().Y))
	ui.frame(slider)
	ui.mouseDown()
	ui.frame(slider)
	assert.Greater(t, v, float32(95))
	assert.NotZero(t, ui.ctx.ActiveID)

	ui.mouseMove(V2(frame.Min.X, frame.Center().Y))
	ui.frame(slider)
	assert.Less(t, v, float32(5))

	ui.mouseUp()
	ui.frame(slider)
	assert.Zero(t, ui.ctx.ActiveID)
}

func TestSliderIntSnapsToUnits(t *testing.T) {
	ui := newTestUI(t)
	v := 0
	var frame Rect
	slider := func(ctx *Context) {
		pos := ctx.GetCursorScreenPos()
		frame = RectFromSize(pos, V2(ctx.CalcItemWidth(), ctx.GetFrameHeight()))
		ctx.SliderInt("Count", &v, 0, 4)
	}

	ui.frame(slider)
	ui.mouseMove(frame.Center())
	ui.frame(slider)
	ui.mouseDown()
	ui.frame(slider)
	assert.Equal(t, 2, v)
	ui.mouseUp()
	ui.frame(slider)
}
