package anchor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestButtonPressesOnRelease(t *testing.T) {
	ui := newTestUI(t)
	var rect itemRect
	var id ID
	pressed := 0
	button := func(ctx *Context) {
		id = ctx.GetID("OK")
		if ctx.Button("OK") {
			pressed++
		}
		rect.track(ctx)
	}

	ui.frame(button)
	ui.mouseMove(rect.Center())
	ui.frame(button)
	ui.mouseDown()
	ui.frame(button)
	assert.Zero(t, pressed, "held buttons do not fire")
	assert.Equal(t, id, ui.ctx.ActiveID)

	ui.mouseUp()
	ui.frame(button)
	assert.Equal(t, 1, pressed)

	ui.frame(button)
	assert.Equal(t, 1, pressed)
	assert.Zero(t, ui.ctx.ActiveID)
}

func TestButtonReleaseOutsideDoesNotPress(t *testing.T) {
	ui := newTestUI(t)
	var rect itemRect
	pressed := false
	button := func(ctx *Context) {
		pressed = pressed || ctx.Button("OK")
		rect.track(ctx)
	}

	ui.frame(button)
	ui.mouseMove(rect.Center())
	ui.frame(button)
	ui.mouseDown()
	ui.frame(button)
	ui.mouseMove(V2(350, 250))
	ui.frame(button)
	ui.mouseUp()
	ui.frame(button)
	assert.False(t, pressed)
}

func TestCheckboxToggles(t *testing.T) {
	ui := newTestUI(t)
	var rect itemRect
	v := false
	checkbox := func(ctx *Context) {
		ctx.Checkbox("Enabled", &v)
		rect.track(ctx)
	}

	ui.frame(checkbox)
	ui.click(rect.Center(), checkbox)
	assert.True(t, v)
	ui.click(rect.Center(), checkbox)
	assert.False(t, v)
}

func TestCheckboxFlagsSetsAllBits(t *testing.T) {
	ui := newTestUI(t)
	var rect itemRect
	flags := WindowFlagsNoMove
	checkbox := func(ctx *Context) {
		CheckboxFlags(ctx, "Fixed", &flags, WindowFlagsNoMove|WindowFlagsNoResize)
		rect.track(ctx)
	}

	ui.frame(checkbox)
	ui.click(rect.Center(), checkbox)
	assert.Equal(t, WindowFlagsNoMove|WindowFlagsNoResize, flags)
	ui.click(rect.Center(), checkbox)
	assert.Zero(t, flags)
}

func TestRadioButtonInt(t *testing.T) {
	ui := newTestUI(t)
	var second itemRect
	v := 0
	radios := func(ctx *Context) {
		ctx.RadioButtonInt("A", &v, 0)
		ctx.RadioButtonInt("B", &v, 1)
		second.track(ctx)
	}

	ui.frame(radios)
	ui.click(second.Center(), radios)
	assert.Equal(t, 1, v)
}

func TestInputTextEscapeRestoresInitialText(t *testing.T) {
	tests := []struct {
		name    string
		initial string
		typed   string
	}{
		{name: "ascii", initial: "hi", typed: "abc"},
		{name: "multibyte", initial: "añ", typed: "é€"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui := newTestUI(t)
			var rect itemRect
			var id ID
			buf := tt.initial
			input := func(ctx *Context) {
				id = ctx.GetID("Name")
				ctx.InputText("Name", &buf)
				rect.track(ctx)
			}

			ui.frame(input)
			ui.mouseMove(rect.Center())
			ui.frame(input)
			ui.mouseDown()
			ui.frame(input)
			require.Equal(t, id, ui.ctx.ActiveID)
			require.NotNil(t, ui.ctx.GetInputTextState(id))

			ui.mouseUp()
			ui.typeText(tt.typed, input)
			assert.Contains(t, buf, tt.typed)
			assert.NotEqual(t, tt.initial, buf)

			ui.key(KeyEscape, input)
			assert.Equal(t, tt.initial, buf)
			assert.Zero(t, ui.ctx.ActiveID)
		})
	}
}

func TestInputTextEditsAreUndoable(t *testing.T) {
	ui := newTestUI(t)
	var rect itemRect
	var id ID
	buf := ""
	input := func(ctx *Context) {
		id = ctx.GetID("Name")
		ctx.InputText("Name", &buf)
		rect.track(ctx)
	}

	ui.frame(input)
	ui.click(rect.Center(), input)
	ui.typeText("ab", input)
	require.Equal(t, "ab", buf)

	state := ui.ctx.GetInputTextState(id)
	require.NotNil(t, state)
	assert.Equal(t, 2, state.Cursor())
	assert.Equal(t, 2, state.UndoAvail())
	assert.Zero(t, state.RedoAvail())
}

func TestInputTextCharFilters(t *testing.T) {
	ui := newTestUI(t)
	var rect itemRect
	buf := ""
	input := func(ctx *Context) {
		ctx.InputText("Hex", &buf, WithInputFlags(InputTextFlagsCharsHexadecimal|InputTextFlagsCharsUppercase))
		rect.track(ctx)
	}

	ui.frame(input)
	ui.click(rect.Center(), input)
	ui.typeText("1aZ-f", input)
	assert.Equal(t, "1AF", buf)
}

func TestInputTextResize(t *testing.T) {
	tests := []struct {
		name string
		grow bool
		want string
	}{
		// "é" is two bytes; only four bytes fit beside the terminator, and
		// the cut may not split a rune.
		{name: "denied", want: "abcd"},
		{name: "granted", grow: true, want: "abcdéf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui := newTestUI(t)
			var rect itemRect
			var events []InputTextCallbackData
			buf := "abcd"
			callback := func(data *InputTextCallbackData) int {
				events = append(events, *data)
				if tt.grow {
					data.BufSize = data.BufTextLen + 1
				}
				return 0
			}
			input := func(ctx *Context) {
				ctx.InputText("Path", &buf,
					WithInputFlags(InputTextFlagsCallbackResize),
					WithBufferSize(6),
					WithCallback(callback))
				rect.track(ctx)
			}

			ui.frame(input)
			ui.click(rect.Center(), input)
			ui.typeText("éf", input)
			assert.Equal(t, tt.want, buf)

			require.Len(t, events, 1)
			assert.Equal(t, InputTextFlagsCallbackResize, events[0].EventFlag)
			assert.Equal(t, 7, events[0].BufTextLen)
			assert.Equal(t, 6, events[0].BufSize)
		})
	}
}

func TestTreeNodeOpenState(t *testing.T) {
	ui := newTestUI(t)
	var rect itemRect
	open := false
	tree := func(ctx *Context) {
		open = ctx.TreeNode("Node")
		rect.track(ctx)
		if open {
			ctx.TreePop()
		}
	}

	ui.frame(tree)
	assert.False(t, open)
	ui.click(rect.Center(), tree)
	assert.True(t, open)
	ui.frame(tree)
	assert.True(t, open, "open state persists")
	ui.click(rect.Center(), tree)
	assert.False(t, open)
}

func TestSetNextItemOpen(t *testing.T) {
	ui := newTestUI(t)
	results := map[string]bool{}
	first := true
	tree := func(ctx *Context) {
		if first {
			ctx.SetNextItemOpen(true, CondOnce)
		} else {
			ctx.SetNextItemOpen(false, CondOnce)
		}
		if results["once"] = ctx.TreeNode("Once"); results["once"] {
			ctx.TreePop()
		}
		ctx.SetNextItemOpen(!first, CondAlways)
		if results["always"] = ctx.TreeNode("Always"); results["always"] {
			ctx.TreePop()
		}
		if results["default"] = ctx.TreeNodeEx("Default", TreeNodeFlagsDefaultOpen, "Default"); results["default"] {
			ctx.TreePop()
		}
	}

	ui.frame(tree)
	assert.Equal(t, map[string]bool{"once": true, "always": false, "default": true}, results)

	first = false
	ui.frame(tree)
	assert.Equal(t, map[string]bool{"once": true, "always": true, "default": true}, results)
}

func TestCalcListClipping(t *testing.T) {
	tests := []struct {
		name               string
		count              int
		height, minY, maxY float32
		start, end         int
	}{
		{name: "middle", count: 100, height: 10, minY: 25, maxY: 55, start: 2, end: 6},
		{name: "above the list", count: 100, height: 10, minY: -30, maxY: 20, start: 0, end: 3},
		{name: "past the end", count: 5, height: 10, minY: 30, maxY: 200, start: 3, end: 5},
		{name: "empty", count: 0, height: 10, minY: 0, maxY: 100},
		{name: "no height", count: 10, height: 0, minY: 0, maxY: 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := CalcListClipping(tt.count, tt.height, tt.minY, tt.maxY)
			assert.Equal(t, tt.start, start, "start")
			assert.Equal(t, tt.end, end, "end")
		})
	}
}

func TestScrollToItem(t *testing.T) {
	assert.Equal(t, float32(30), ScrollToItem(5, 10, 0, 30), "below the view")
	assert.Equal(t, float32(10), ScrollToItem(1, 10, 20, 30), "above the view")
	assert.Equal(t, float32(20), ScrollToItem(3, 10, 20, 30), "already visible")
}

func TestListClipperSubmitsVisibleRange(t *testing.T) {
	ui := newTestUI(t)
	var ranges [][2]int
	var startY, endY float32
	list := func(ctx *Context) {
		ranges = ranges[:0]
		startY = ctx.GetCursorScreenPos().Y
		clipper := NewListClipper(ctx, 1000, 20)
		for clipper.Step() {
			ranges = append(ranges, [2]int{clipper.DisplayStart, clipper.DisplayEnd})
		}
		endY = ctx.GetCursorScreenPos().Y
	}

	ui.frame(list)
	require.Len(t, ranges, 1)
	assert.Zero(t, ranges[0][0])
	assert.Greater(t, ranges[0][1], 0)
	assert.Less(t, ranges[0][1], 20, "only the rows inside the window")
	assert.InDelta(t, startY+1000*20, endY, 0.5, "cursor moves past the whole list")
}
