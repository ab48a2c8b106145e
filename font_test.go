package anchor

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuiltinFontAtlas(t *testing.T) {
	img := BuiltinFontAtlas()
	assert.Equal(t, image.Rect(0, 0, builtinAtlasW, builtinAtlasH), img.Bounds())

	// '|' sits at cell 92: column 12, row 5, drawn as the two middle pixels.
	ox, oy := 12*builtinCell, 5*builtinCell
	assert.Equal(t, uint8(0xFF), img.AlphaAt(ox+3, oy).A)
	assert.Equal(t, uint8(0xFF), img.AlphaAt(ox+4, oy+6).A)
	assert.Zero(t, img.AlphaAt(ox+2, oy).A)
	assert.Zero(t, img.AlphaAt(ox+3, oy+7).A, "the last row is empty")

	for y := range builtinCell {
		for x := range builtinCell {
			assert.Zero(t, img.AlphaAt(x, y).A, "space is blank")
		}
	}
}

func TestBuiltinFontGlyphs(t *testing.T) {
	f := NewBuiltinFont(3)
	assert.Equal(t, uint32(3), f.TextureID())
	assert.True(t, f.HasGlyph('A'))
	assert.False(t, f.HasGlyph('é'))
	assert.Equal(t, float32(16), f.GlyphAdvance('x', 2))
	assert.Equal(t, float32(32), f.GlyphAdvance('\t', 1))

	_, ok := f.GlyphQuad(' ', 0, 0, 1)
	assert.False(t, ok)

	q, ok := f.GlyphQuad('!', 10, 0, 1)
	assert.True(t, ok)
	assert.Equal(t, float32(10), q.X0)
	assert.Equal(t, float32(18), q.X1)
	assert.InDelta(t, 1.0/16, q.U0, 1e-6, "'!' is the second cell")
	assert.Zero(t, q.V0)

	fallback, _ := f.GlyphQuad('→', 0, 0, 1)
	arrow, _ := f.GlyphQuad('>', 0, 0, 1)
	assert.Equal(t, arrow, fallback)
}
