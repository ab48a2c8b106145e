package anchor

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindBestWindowPosForPopup(t *testing.T) {
	outer := R(0, 0, 800, 600)
	size := V2(50, 50)
	tests := []struct {
		name    string
		ref     Vec2
		size    Vec2
		avoid   Rect
		lastDir Dir
		policy  popupPositionPolicy
		want    Vec2
		wantDir Dir
	}{
		{name: "right of the item", ref: V2(100, 100), size: size, avoid: R(100, 100, 120, 120), lastDir: DirNone, want: V2(120, 100), wantDir: DirRight},
		{name: "below near the right edge", ref: V2(780, 100), size: size, avoid: R(780, 100, 790, 110), lastDir: DirNone, want: V2(750, 110), wantDir: DirDown},
		{name: "last direction first", ref: V2(400, 300), size: size, avoid: R(400, 300, 410, 310), lastDir: DirLeft, want: V2(350, 300), wantDir: DirLeft},
		{name: "nothing fits", ref: V2(10, 10), size: V2(900, 700), avoid: R(10, 10, 20, 20), lastDir: DirRight, want: V2(0, 0), wantDir: DirNone},
		{name: "combo below", ref: V2(100, 120), size: V2(100, 50), avoid: R(100, 100, 200, 120), lastDir: DirNone, policy: popupPositionComboBox, want: V2(100, 120), wantDir: DirDown},
		{name: "combo above at the bottom", ref: V2(100, 590), size: V2(100, 50), avoid: R(100, 570, 200, 590), lastDir: DirNone, policy: popupPositionComboBox, want: V2(100, 520), wantDir: DirRight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := tt.lastDir
			got := findBestWindowPosForPopupEx(tt.ref, tt.size, &dir, outer, tt.avoid, tt.policy)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantDir, dir)
		})
	}
}

func TestPopupOpensAndClosesOnOutsideClick(t *testing.T) {
	ui := newTestUI(t)
	var button, choice itemRect
	open, chosen := false, false
	contents := 0
	ui.ctx.Style.DisplaySafeAreaPadding = Vec2{}
	popup := func(ctx *Context) {
		if ctx.Button("Open") {
			ctx.OpenPopup("menu", PopupFlagsNone)
		}
		button.track(ctx)
		open = ctx.IsPopupOpen("menu", PopupFlagsNone)
		if ctx.BeginPopup("menu", 0) {
			contents++
			if ctx.Selectable("Choice", false) {
				chosen = true
			}
			choice.track(ctx)
			ctx.EndPopup()
		}
	}

	ui.frame(popup)
	ui.click(button.Center(), popup)
	ui.frame(popup)
	require.True(t, open)
	assert.Positive(t, contents)

	ui.click(V2(700, 550), popup)
	ui.frame(popup)
	assert.False(t, open, "a click outside every window closes the popup")

	// Reopen and pick the item.
	ui.click(button.Center(), popup)
	ui.frame(popup)
	require.True(t, open)
	ui.click(choice.Center(), popup)
	ui.frame(popup)
	assert.True(t, chosen)
	assert.False(t, open, "selecting an item closes its popup")
}

func TestModalBlocksWindowsBehind(t *testing.T) {
	ui := newTestUI(t)
	var under, ok itemRect
	pressedUnder, confirmed := false, false
	modal := func(ctx *Context) {
		if ctx.Button("Behind") {
			pressedUnder = true
		}
		under.track(ctx)
		if ctx.FrameCount == 1 {
			ctx.OpenPopup("Confirm", PopupFlagsNone)
		}
		if ctx.BeginPopupModal("Confirm", nil, WindowFlagsAlwaysAutoResize) {
			if ctx.Button("OK") {
				confirmed = true
				ctx.CloseCurrentPopup()
			}
			ok.track(ctx)
			ctx.EndPopup()
		}
	}

	ui.frame(modal)
	ui.frame(modal)
	require.NotNil(t, ui.ctx.topMostPopupModal())

	ui.click(under.Center(), modal)
	assert.False(t, pressedUnder)

	ui.click(ok.Center(), modal)
	assert.True(t, confirmed)
	ui.frame(modal)
	assert.Nil(t, ui.ctx.topMostPopupModal())
}

func TestPopupCallsOutsideWindowFail(t *testing.T) {
	var logs bytes.Buffer
	ctx := newLenientContext(t, &logs)
	assert.False(t, ctx.IsPopupOpen("menu", PopupFlagsNone))
	ctx.OpenPopup("menu", PopupFlagsNone)
	assert.Empty(t, ctx.popupStack)
	assert.Contains(t, logs.String(), "IsPopupOpen: no current window")
	assert.Contains(t, logs.String(), "OpenPopup: no current window")

	ui := newTestUI(t)
	assert.PanicsWithError(t, "anchor: assertion failed: IsPopupOpen: no current window [id menu]", func() {
		ui.ctx.IsPopupOpen("menu", PopupFlagsNone)
	})
}
