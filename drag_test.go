package anchor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDragIntFollowsMouse(t *testing.T) {
	ui := newTestUI(t)
	v := 10
	var frame itemRect
	drag := func(ctx *Context) {
		ctx.DragInt("Count", &v, 1, 0, 100)
		frame.track(ctx)
	}

	ui.frame(drag)
	start := V2(frame.Min.X+20, frame.Center().Y)
	ui.mouseMove(start)
	ui.frame(drag)
	ui.mouseDown()
	ui.frame(drag)
	assert.Equal(t, 10, v, "a press alone does not change the value")

	ui.mouseMove(start.Add(V2(30, 0)))
	ui.frame(drag)
	assert.Equal(t, 40, v)

	ui.mouseMove(start.Add(V2(-200, 0)))
	ui.frame(drag)
	assert.Zero(t, v, "clamped to the minimum")

	ui.mouseUp()
	ui.frame(drag)
	ui.frame(drag)
	assert.Zero(t, ui.ctx.ActiveID)
}

func TestDragFloatSpeedAndModifiers(t *testing.T) {
	ui := newTestUI(t)
	v := float32(0)
	var frame itemRect
	drag := func(ctx *Context) {
		ctx.DragFloat("Speed", &v, 0.5, 0, 0, WithFormat("%.2f"))
		frame.track(ctx)
	}

	ui.frame(drag)
	start := frame.Center()
	ui.mouseMove(start)
	ui.frame(drag)
	ui.mouseDown()
	ui.frame(drag)

	ui.mouseMove(start.Add(V2(20, 0)))
	ui.frame(drag)
	assert.InDelta(t, 10, v, 1e-4)

	// Shift moves ten times faster; an unbounded drag can go negative.
	ui.ctx.IO.KeyShift = true
	ui.mouseMove(start)
	ui.frame(drag)
	assert.InDelta(t, -90, v, 1e-3)
	ui.ctx.IO.KeyShift = false

	ui.mouseUp()
	ui.frame(drag)
}

func TestAddAccum(t *testing.T) {
	assert.Equal(t, 12, addAccum(10, 2.9), "integers take the integral part")
	assert.Equal(t, int8(127), addAccum(int8(127), 1), "integers saturate")
	assert.Equal(t, int8(-128), addAccum(int8(-120), -300))
	assert.Equal(t, int8(100), addAccum(int8(-100), 200), "deltas wider than the type")
	assert.Equal(t, uint8(0), addAccum(uint8(3), -5))
	assert.Equal(t, uint64(1<<64-1), addAccum(uint64(1<<64-2), 10))
	assert.InDelta(t, 1.25, addAccum(float32(1), 0.25), 1e-6)
}

// dragSession presses over the center of the item drag submits and returns
// a function moving the pointer by dx from the press position.
func dragSession(ui *testUI, drag func(ctx *Context), frame *itemRect) func(dx float32) {
	ui.frame(drag)
	start := frame.Center()
	ui.mouseMove(start)
	ui.frame(drag)
	ui.mouseDown()
	ui.frame(drag)
	x := float32(0)
	return func(dx float32) {
		x += dx
		ui.mouseMove(start.Add(V2(x, 0)))
		ui.frame(drag)
	}
}

func TestDragFloatClampScenario(t *testing.T) {
	ui := newTestUI(t)
	v := float32(5)
	var frame itemRect
	var id ID
	drag := func(ctx *Context) {
		id = ctx.GetID("Speed")
		ctx.DragFloat("Speed", &v, 1, 0, 10)
		frame.track(ctx)
	}

	move := dragSession(ui, drag, &frame)
	move(-1000)
	assert.Equal(t, float32(0), v)
	assert.Equal(t, id, ui.ctx.ActiveID, "still dragging")

	ui.mouseUp()
	ui.frame(drag)
	assert.Zero(t, ui.ctx.ActiveID)
	assert.Equal(t, float32(0), v)
}

func TestDragRoundTrip(t *testing.T) {
	t.Run("net zero motion", func(t *testing.T) {
		ui := newTestUI(t)
		v := float32(2.5)
		var frame itemRect
		drag := func(ctx *Context) {
			ctx.DragFloat("Value", &v, 1, 0, 0)
			frame.track(ctx)
		}
		move := dragSession(ui, drag, &frame)
		for _, dx := range []float32{7, -3, 5, -9, 4, -4} {
			move(dx)
		}
		assert.InDelta(t, 2.5, v, 1e-4)
	})

	t.Run("there and back", func(t *testing.T) {
		ui := newTestUI(t)
		v := 50
		var frame itemRect
		drag := func(ctx *Context) {
			ctx.DragInt("Count", &v, 1, 0, 100)
			frame.track(ctx)
		}
		move := dragSession(ui, drag, &frame)
		move(12)
		assert.Equal(t, 62, v)
		move(-12)
		assert.Equal(t, 50, v)
	})
}

func TestUnclampedIntegerDragSaturates(t *testing.T) {
	ui := newTestUI(t)
	v := int8(120)
	var frame itemRect
	drag := func(ctx *Context) {
		DragScalar(ctx, "Small", &v, 1, 0, 0)
		frame.track(ctx)
	}

	move := dragSession(ui, drag, &frame)
	move(20)
	assert.Equal(t, int8(127), v)
	move(-5)
	assert.Equal(t, int8(122), v, "motion past the limit is not banked")

	u := uint8(3)
	ui = newTestUI(t)
	move = dragSession(ui, func(ctx *Context) {
		DragScalar(ctx, "Unsigned", &u, 1, 0, 0)
		frame.track(ctx)
	}, &frame)
	move(-10)
	assert.Equal(t, uint8(0), u)
}

func TestDisablingCancelsDrag(t *testing.T) {
	tests := []struct {
		name   string
		widget func(ctx *Context, v *float32)
	}{
		{name: "drag", widget: func(ctx *Context, v *float32) { ctx.DragFloat("Value", v, 1, 0, 100) }},
		{name: "slider", widget: func(ctx *Context, v *float32) { ctx.SliderFloat("Value", v, 0, 100) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui := newTestUI(t)
			v := float32(5)
			disabled := false
			var frame itemRect
			drag := func(ctx *Context) {
				ctx.PushDisabled(disabled)
				tt.widget(ctx, &v)
				frame.track(ctx)
				ctx.PopDisabled()
			}

			dragSession(ui, drag, &frame)
			require.NotZero(t, ui.ctx.ActiveID)
			off := V2(frame.Center().X, frame.Max.Y+40)
			ui.mouseMove(off)
			ui.frame(drag)
			held := v

			disabled = true
			ui.mouseMove(off.Add(V2(60, 0)))
			ui.frame(drag)
			assert.Zero(t, ui.ctx.ActiveID)
			assert.Equal(t, held, v)
		})
	}
}
