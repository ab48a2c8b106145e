package anchor

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

// testUI drives a Context frame by frame the way a host would, with every
// widget submitted into one fixed 400x300 window at the origin.
type testUI struct {
	t   *testing.T
	ctx *Context
}

func newTestUI(t *testing.T, opts ...ContextOption) *testUI {
	t.Helper()
	cfg := DefaultConfig()
	cfg.DebugAsserts = true
	base := []ContextOption{
		WithLogger(slog.New(slog.DiscardHandler)),
		WithConfig(cfg),
	}
	ctx := NewContext(append(base, opts...)...)
	ctx.IO.DisplaySize = V2(800, 600)
	ctx.IO.DeltaTime = 1.0 / 60
	return &testUI{t: t, ctx: ctx}
}

// frame runs one frame with fn inside the test window.
func (u *testUI) frame(fn func(ctx *Context)) {
	u.t.Helper()
	u.rawFrame(func(ctx *Context) {
		ctx.SetNextWindowPos(Vec2{}, CondAlways, Vec2{})
		ctx.SetNextWindowSize(V2(400, 300), CondAlways)
		if ctx.Begin("Test", nil, WindowFlagsNoTitleBar|WindowFlagsNoResize|WindowFlagsNoMove) {
			fn(ctx)
		}
		ctx.End()
	})
}

// rawFrame runs one frame with fn submitting its own windows.
func (u *testUI) rawFrame(fn func(ctx *Context)) {
	u.t.Helper()
	u.ctx.NewFrame()
	fn(u.ctx)
	u.ctx.Render()
	require.NoError(u.t, u.ctx.StackErrors())
}

func (u *testUI) mouseMove(p Vec2) { u.ctx.IO.SetMousePos(p.X, p.Y) }
func (u *testUI) mouseDown()       { u.ctx.IO.SetMouseButton(MouseButtonLeft, true) }
func (u *testUI) mouseUp()         { u.ctx.IO.SetMouseButton(MouseButtonLeft, false) }

// click hovers p for a frame, then presses and releases over two more.
func (u *testUI) click(p Vec2, fn func(ctx *Context)) {
	u.t.Helper()
	u.mouseMove(p)
	u.frame(fn)
	u.mouseDown()
	u.frame(fn)
	u.mouseUp()
	u.frame(fn)
}

// key holds k down for one frame.
func (u *testUI) key(k Key, fn func(ctx *Context)) {
	u.t.Helper()
	u.ctx.IO.SetKey(k, true)
	u.frame(fn)
	u.ctx.IO.SetKey(k, false)
}

// typeText queues s and runs a frame to deliver it.
func (u *testUI) typeText(s string, fn func(ctx *Context)) {
	u.t.Helper()
	u.ctx.IO.AddInputCharactersUTF8(s)
	u.frame(fn)
}

// itemRect records the rect of the last submitted item.
type itemRect struct{ Rect }

func (r *itemRect) track(ctx *Context) {
	r.Min, r.Max = ctx.GetItemRectMin(), ctx.GetItemRectMax()
}
