package anchor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComboPicksItem(t *testing.T) {
	ui := newTestUI(t)
	items := []string{"Apple", "Banana", "Cherry"}
	cur := 0
	open := false
	var combo, cherry itemRect
	ui.ctx.Style.DisplaySafeAreaPadding = Vec2{}
	frame := func(ctx *Context) {
		open = ctx.BeginCombo("Fruit", items[cur], ComboFlagsNone)
		if !open {
			combo.track(ctx)
			return
		}
		for i, item := range items {
			if ctx.Selectable(item, i == cur) {
				cur = i
			}
			if i == 2 {
				cherry.track(ctx)
			}
		}
		ctx.EndCombo()
	}

	ui.frame(frame)
	assert.False(t, open)

	ui.click(combo.Center(), frame)
	assert.True(t, open, "opens on release")

	// The list is placed below the preview once its size is known.
	ui.frame(frame)
	ui.frame(frame)
	require.True(t, open)
	assert.GreaterOrEqual(t, cherry.Min.Y, combo.Max.Y)

	ui.click(cherry.Center(), frame)
	assert.Equal(t, 2, cur)
	stillOpen := true
	ui.frame(func(ctx *Context) {
		frame(ctx)
		stillOpen = ctx.IsPopupOpen("Fruit", PopupFlagsNone)
	})
	assert.False(t, open)
	assert.False(t, stillOpen)
}

func TestComboHelpers(t *testing.T) {
	ui := newTestUI(t)
	cur := 1
	ui.frame(func(ctx *Context) {
		assert.False(t, ctx.Combo("List", &cur, []string{"a", "b"}))
		assert.False(t, ctx.ComboSeparated("Zeros", &cur, "x\x00y\x00\x00"))
		assert.False(t, ctx.ComboFunc("Func", &cur, func(i int) (string, bool) {
			return string(rune('p' + i)), true
		}, 3))
	})
	assert.Equal(t, 1, cur)
}

func TestCollapsingHeader(t *testing.T) {
	ui := newTestUI(t)
	var rect itemRect
	open := false
	header := func(ctx *Context) {
		open = ctx.CollapsingHeader("Section", nil, TreeNodeFlagsNone)
		rect.track(ctx)
	}

	ui.frame(header)
	assert.False(t, open)
	ui.click(rect.Center(), header)
	assert.True(t, open)
}
