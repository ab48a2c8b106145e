package anchor

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLenientContext(t *testing.T, logs *bytes.Buffer) *Context {
	t.Helper()
	ctx := NewContext(WithLogger(slog.New(slog.NewTextHandler(logs, nil))))
	ctx.IO.DisplaySize = V2(800, 600)
	ctx.IO.DeltaTime = 1.0 / 60
	return ctx
}

func TestStackErrorsAreReportedAndRepaired(t *testing.T) {
	var logs bytes.Buffer
	ctx := newLenientContext(t, &logs)

	ctx.NewFrame()
	ctx.Begin("Leaky", nil, 0)
	ctx.PushStyleColor(ColText, Vec4{1, 0, 0, 1})
	ctx.Render()

	err := ctx.StackErrors()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStackMismatch)
	assert.Contains(t, err.Error(), `missing End for window "Leaky"`)
	assert.Contains(t, err.Error(), "missing PopStyleColor (1)")
	assert.Contains(t, logs.String(), "level=ERROR")

	// The next frame starts balanced.
	ctx.NewFrame()
	ctx.Render()
	assert.NoError(t, ctx.StackErrors())
}

func TestBeginOutsideFrame(t *testing.T) {
	var logs bytes.Buffer
	ctx := newLenientContext(t, &logs)
	ctx.Begin("Early", nil, 0)
	assert.ErrorIs(t, ctx.StackErrors(), ErrNotInFrame)
}

func TestDebugAssertsPanic(t *testing.T) {
	ui := newTestUI(t)
	ui.ctx.NewFrame()
	assert.PanicsWithError(t, "anchor: assertion failed: End: too many calls: anchor: unbalanced stack", func() {
		ui.ctx.End()
	})
}

func TestUnusedWindowsAreCollected(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WindowGCFrames = 3
	ui := newTestUI(t, WithConfig(cfg))

	ui.rawFrame(func(ctx *Context) {
		ctx.Begin("Tool", nil, 0)
		ctx.End()
	})
	require.NotNil(t, ui.ctx.FindWindowByName("Tool"))

	for range 5 {
		ui.rawFrame(func(*Context) {})
	}
	assert.Nil(t, ui.ctx.FindWindowByName("Tool"))
	assert.NotNil(t, ui.ctx.FindWindowByName(fallbackWindowName))
}
