package anchor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSpace struct {
	SpaceInfo
	ready bool
	draws int
}

func (s *fakeSpace) Poll(*Context) bool { return s.ready }
func (s *fakeSpace) Draw(ctx *Context) {
	s.draws++
	ctx.Text("%s body", s.Name)
}

func newFakeSpace(name string, kind SpaceKind) *fakeSpace {
	return &fakeSpace{SpaceInfo: SpaceInfo{Name: name, Kind: kind}, ready: true}
}

func TestSpaceKindString(t *testing.T) {
	assert.Equal(t, "Outliner", SpaceOutliner.String())
	assert.Equal(t, "SpaceKind(9)", SpaceKind(9).String())
}

func TestSpaceAreaMembership(t *testing.T) {
	area := NewSpaceArea("Left")
	area.Add(newFakeSpace("Scene", SpaceOutliner))
	area.Add(newFakeSpace("Props", SpaceProperties))
	area.Add(newFakeSpace("Notes", SpaceText))
	require.Equal(t, 3, area.Len())
	assert.Equal(t, "Scene", area.Active().Info().Name)
	assert.NotNil(t, area.Space("Props"))
	assert.Nil(t, area.Space("Missing"))

	area.Prev()
	assert.Equal(t, 2, area.selectTo, "cycling wraps around")
	area.active = 2
	area.Next()
	assert.Equal(t, 0, area.selectTo)

	assert.True(t, area.SetActive("Props"))
	assert.False(t, area.SetActive("Missing"))
	assert.Equal(t, 1, area.selectTo)

	assert.True(t, area.Remove("Notes"))
	assert.False(t, area.Remove("Notes"))
	assert.Equal(t, 2, area.Len())
	assert.Equal(t, "Props", area.Active().Info().Name, "the active index is clamped")
	assert.Equal(t, -1, area.selectTo)
}

func TestSpaceAreaClose(t *testing.T) {
	area := NewSpaceArea("Left")
	closed := 0
	area.SetOnClose(func() { closed++ })

	area.Close()
	area.Close()
	assert.Equal(t, 1, closed)
	assert.False(t, area.IsOpen())

	area.Open()
	assert.True(t, area.IsOpen())
}

func TestSpaceAreaDrawsActiveSpace(t *testing.T) {
	ui := newTestUI(t)
	scene := newFakeSpace("Scene", SpaceOutliner)
	props := newFakeSpace("Props", SpaceProperties)
	props.ready = false
	area := NewSpaceArea("Left")
	area.Add(scene)
	area.Add(props)
	draw := func(ctx *Context) { area.Draw(ctx) }

	ui.rawFrame(draw)
	ui.rawFrame(draw)
	assert.Equal(t, 2, scene.draws)
	assert.Zero(t, props.draws)

	area.SetActive("Props")
	ui.rawFrame(draw)
	ui.rawFrame(draw)
	assert.Equal(t, "Props", area.Active().Info().Name)
	assert.Zero(t, props.draws, "a space that does not poll is not drawn")

	scene.RequestFocus()
	ui.rawFrame(draw)
	ui.rawFrame(draw)
	assert.Equal(t, "Scene", area.Active().Info().Name)
	assert.False(t, scene.wantFocus)

	drawn := scene.draws
	area.Close()
	ui.rawFrame(draw)
	assert.Equal(t, drawn, scene.draws, "a closed area draws nothing")
}

func TestSpaceRegistry(t *testing.T) {
	r := NewSpaceRegistry()
	left := NewSpaceArea("Left")
	left.Add(newFakeSpace("Scene", SpaceOutliner))
	right := NewSpaceArea("Right")
	text := newFakeSpace("Script", SpaceText)
	right.Add(text)
	r.Register(left)
	r.Register(right)

	s, area := r.Find(SpaceText)
	assert.Same(t, Space(text), s)
	assert.Same(t, right, area)
	s, area = r.Find(SpaceView3D)
	assert.Nil(t, s)
	assert.Nil(t, area)

	replacement := NewSpaceArea("Left")
	r.Register(replacement)
	assert.Len(t, r.Areas(), 2)
	assert.Same(t, replacement, r.Area("Left"))

	assert.True(t, r.Unregister("Right"))
	assert.False(t, r.Unregister("Right"))
	assert.Nil(t, r.Area("Right"))

	ui := newTestUI(t)
	ui.rawFrame(r.Draw)
}
