package anchor_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/covah/anchor"
)

type mockRenderer struct {
	frames   []*anchor.DrawData
	textures []uint32
	size     [2]int
	err      error
}

func (r *mockRenderer) RenderDrawData(dd *anchor.DrawData) error {
	r.frames = append(r.frames, dd)
	for _, list := range dd.CmdLists {
		for _, cmd := range list.CmdBuffer {
			r.textures = append(r.textures, cmd.TextureID)
		}
	}
	return r.err
}

func (r *mockRenderer) FontTextureID() uint32    { return 7 }
func (r *mockRenderer) Resize(width, height int) { r.size = [2]int{width, height} }

type textSpace struct {
	anchor.SpaceInfo
	draws int
}

func (s *textSpace) Poll(*anchor.Context) bool { return true }
func (s *textSpace) Draw(ctx *anchor.Context) {
	s.draws++
	ctx.Text("notes")
}

func newGUI(r *mockRenderer) *anchor.GUI {
	return anchor.New(r, anchor.WithLogger(slog.New(slog.DiscardHandler)))
}

func TestGUIRendersFrames(t *testing.T) {
	r := &mockRenderer{}
	ui := newGUI(r)

	for range 2 {
		ctx := ui.Begin(anchor.V2(640, 480), 1.0/60)
		ctx.Begin("Hello", nil, 0)
		ctx.Text("world")
		ctx.End()
		require.NoError(t, ui.End())
	}

	require.Len(t, r.frames, 2)
	dd := r.frames[1]
	assert.True(t, dd.Valid)
	assert.Equal(t, anchor.V2(640, 480), dd.DisplaySize)
	assert.NotEmpty(t, dd.CmdLists)
	assert.Positive(t, dd.TotalVtxCount)
	assert.Contains(t, r.textures, uint32(7), "text uses the renderer's font atlas")
}

func TestGUIDrawsRegisteredSpaces(t *testing.T) {
	r := &mockRenderer{}
	ui := newGUI(r)
	notes := &textSpace{SpaceInfo: anchor.SpaceInfo{Name: "Notes", Kind: anchor.SpaceText}}
	area := anchor.NewSpaceArea("Right")
	area.Add(notes)
	ui.Spaces().Register(area)

	ui.Begin(anchor.V2(640, 480), 1.0/60)
	require.NoError(t, ui.End())
	assert.Equal(t, 1, notes.draws)
	assert.Same(t, area, ui.Spaces().Area("Right"))
}

func TestGUIEndReportsErrors(t *testing.T) {
	r := &mockRenderer{}
	ui := newGUI(r)

	ctx := ui.Begin(anchor.V2(640, 480), 1.0/60)
	ctx.Begin("Left open", nil, 0)
	err := ui.End()
	require.ErrorIs(t, err, anchor.ErrStackMismatch)

	r.err = errors.New("device lost")
	ui.Begin(anchor.V2(640, 480), 1.0/60)
	err = ui.End()
	assert.ErrorIs(t, err, r.err)
	assert.NotErrorIs(t, err, anchor.ErrStackMismatch, "the next frame starts clean")
}

func TestGUIStyleAndResize(t *testing.T) {
	r := &mockRenderer{}
	ui := newGUI(r)

	style := ui.Style()
	style.FrameRounding = 4
	ui.SetStyle(style)
	assert.Equal(t, float32(4), ui.Context().Style.FrameRounding)

	ui.Resize(1024, 768)
	assert.Equal(t, [2]int{1024, 768}, r.size)
}
