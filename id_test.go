package anchor

import (
	"hash/crc32"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashStr(t *testing.T) {
	assert.Equal(t, ID(crc32.ChecksumIEEE([]byte("hello"))), HashStr("hello", 0))
	assert.Equal(t, HashData([]byte("hello"), 7), HashStr("hello", 7))
	assert.NotEqual(t, HashStr("hello", 1), HashStr("hello", 2))

	// Everything before "###" is ignored.
	assert.Equal(t, HashStr("###b", 9), HashStr("a###b", 9))
	assert.Equal(t, HashStr("Save###file", 9), HashStr("Save as###file", 9))
	// "##" alone still hashes the whole label.
	assert.NotEqual(t, HashStr("Save##1", 9), HashStr("Save##2", 9))
}

func TestFindRenderedTextEnd(t *testing.T) {
	assert.Equal(t, "Save", FindRenderedTextEnd("Save##file"))
	assert.Equal(t, "Save", FindRenderedTextEnd("Save###file"))
	assert.Empty(t, FindRenderedTextEnd("##hidden"))
	assert.Equal(t, "plain", FindRenderedTextEnd("plain"))
}

func TestIDStack(t *testing.T) {
	ui := newTestUI(t)
	ui.frame(func(ctx *Context) {
		base := ctx.GetID("item")
		assert.Equal(t, HashStr("item", ctx.CurrentID()), base)

		ctx.PushID("row")
		pushed := ctx.GetID("item")
		ctx.PopID()
		assert.NotEqual(t, base, pushed)
		assert.Equal(t, base, ctx.GetID("item"), "pop restores the seed")

		ctx.PushIDInt(3)
		three := ctx.GetID("item")
		ctx.PopID()
		ctx.PushIDInt(4)
		four := ctx.GetID("item")
		ctx.PopID()
		assert.NotEqual(t, three, four)

		a, b := new(int), new(int)
		assert.NotEqual(t, ctx.GetIDPtr(a), ctx.GetIDPtr(b))
		assert.Equal(t, ctx.GetIDPtr(a), ctx.GetIDPtr(a))
	})
}

func TestIDsDependOnTheWindow(t *testing.T) {
	ui := newTestUI(t)
	var inA, inB ID
	ui.rawFrame(func(ctx *Context) {
		ctx.Begin("A", nil, 0)
		inA = ctx.GetID("OK")
		ctx.End()
		ctx.Begin("B", nil, 0)
		inB = ctx.GetID("OK")
		ctx.End()
	})
	assert.NotEqual(t, inA, inB)
}

func TestPopIDUnderflowAsserts(t *testing.T) {
	ui := newTestUI(t)
	ui.ctx.NewFrame()
	assert.PanicsWithError(t, "anchor: assertion failed: PopID: too many pops", ui.ctx.PopID)
}
