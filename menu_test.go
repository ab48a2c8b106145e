package anchor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuColumns(t *testing.T) {
	var m menuColumns
	m.update(10, false)
	assert.Equal(t, float32(102), m.declColumns(50, 20, 12))
	assert.Equal(t, float32(122), m.declColumns(30, 40, 12), "each column keeps its widest entry")

	m.update(10, false)
	assert.Equal(t, [3]float32{0, 60, 110}, m.pos)
	assert.Equal(t, float32(122), m.width)
	assert.Equal(t, float32(122), m.declColumns(10, 0, 0), "last frame's width is the floor")

	m.update(10, true)
	assert.Equal(t, [3]float32{0, 0, 0}, m.pos)
	assert.Zero(t, m.width)
}

func TestMenuBarItem(t *testing.T) {
	ui := newTestUI(t)
	var file, save itemRect
	var fileID ID
	saved := 0
	autosave := false
	menus := func(ctx *Context) {
		ctx.SetNextWindowPos(Vec2{}, CondAlways, Vec2{})
		ctx.SetNextWindowSize(V2(400, 300), CondAlways)
		ctx.Begin("Editor", nil, WindowFlagsMenuBar|WindowFlagsNoTitleBar|WindowFlagsNoResize|WindowFlagsNoMove)
		if ctx.BeginMenuBar() {
			fileID = ctx.GetID("File")
			menuOpen := ctx.BeginMenu("File", true)
			file.track(ctx)
			if menuOpen {
				if ctx.MenuItem("Save", "Ctrl+S", false, true) {
					saved++
				}
				save.track(ctx)
				ctx.MenuItemToggle("Autosave", "", &autosave, true)
				ctx.MenuItem("Quit", "", false, false)
				ctx.EndMenu()
			}
			ctx.EndMenuBar()
		}
		ctx.End()
	}
	click := func(p Vec2) {
		ui.mouseMove(p)
		ui.rawFrame(menus)
		ui.mouseDown()
		ui.rawFrame(menus)
		ui.mouseUp()
		ui.rawFrame(menus)
	}

	ui.rawFrame(menus)
	require.NotEqual(t, Rect{}, file.Rect, "menu bar entry has a rect")

	click(file.Center())
	ui.rawFrame(menus)
	require.True(t, ui.ctx.isPopupIDOpen(fileID), "clicking a menu opens it")

	click(save.Center())
	assert.Equal(t, 1, saved)
	ui.rawFrame(menus)
	assert.False(t, ui.ctx.isPopupIDOpen(fileID), "activating an item closes the menu")
	assert.False(t, autosave)
}
