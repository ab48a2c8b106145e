package anchor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAutoFitWindowHiddenForFirstFrame(t *testing.T) {
	ui := newTestUI(t)
	render := func() (*DrawData, *Window) {
		ui.ctx.NewFrame()
		ui.ctx.Begin("Hello", nil, 0)
		ui.ctx.Text("world")
		ui.ctx.End()
		dd := ui.ctx.Render()
		require.NoError(t, ui.ctx.StackErrors())
		return dd, ui.ctx.FindWindowByName("Hello")
	}

	dd, w := render()
	require.NotNil(t, w)
	assert.True(t, w.Hidden, "measured before it is shown")
	assert.Empty(t, dd.CmdLists)

	dd, w = render()
	assert.False(t, w.Hidden)
	assert.NotEmpty(t, dd.CmdLists)
	assert.Positive(t, dd.TotalVtxCount)
	shown := w.Size

	_, w = render()
	assert.False(t, w.Hidden)
	assert.Equal(t, shown, w.Size, "first shown at its fitted size")
}

func TestSizedWindowShownImmediately(t *testing.T) {
	ui := newTestUI(t)
	ui.ctx.NewFrame()
	ui.ctx.SetNextWindowSize(V2(200, 100), CondAlways)
	ui.ctx.Begin("Sized", nil, 0)
	ui.ctx.Text("hi")
	ui.ctx.End()
	dd := ui.ctx.Render()
	assert.False(t, ui.ctx.FindWindowByName("Sized").Hidden)
	assert.NotEmpty(t, dd.CmdLists)
}
