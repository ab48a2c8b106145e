package fontface

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicMetrics(t *testing.T) {
	f, err := Basic()
	require.NoError(t, err)

	assert.Equal(t, float32(13), f.LineHeight(1))
	assert.Equal(t, float32(26), f.LineHeight(2))
	assert.Equal(t, float32(7), f.GlyphAdvance('A', 1))
	assert.Equal(t, float32(28), f.GlyphAdvance('\t', 1))
	assert.Zero(t, f.GlyphAdvance('\n', 1))

	assert.True(t, f.HasGlyph('A'))
	assert.False(t, f.HasGlyph('é'))
	// Missing runes borrow the '?' advance.
	assert.Equal(t, f.GlyphAdvance('?', 1), f.GlyphAdvance('é', 1))
}

func TestAtlasHoldsGlyphs(t *testing.T) {
	f, err := Basic()
	require.NoError(t, err)
	atlas := f.Atlas()
	require.NotNil(t, atlas)

	q, ok := f.GlyphQuad('A', 10, 20, 1)
	require.True(t, ok)
	assert.GreaterOrEqual(t, q.X0, float32(10))
	assert.GreaterOrEqual(t, q.Y0, float32(20))
	assert.Less(t, q.U0, q.U1)
	assert.Less(t, q.V0, q.V1)

	// Some texel inside the quad's atlas rectangle is covered.
	size := float32(atlas.Bounds().Dx())
	covered := false
	for y := int(q.V0 * size); y < int(q.V1*size); y++ {
		for x := int(q.U0 * size); x < int(q.U1*size); x++ {
			if atlas.AlphaAt(x, y).A > 0 {
				covered = true
			}
		}
	}
	assert.True(t, covered, "glyph 'A' was not rasterized")
}

func TestProviderSelectsFaces(t *testing.T) {
	basic, err := Basic()
	require.NoError(t, err)
	p := NewProvider(basic)
	assert.Same(t, basic, p.ActiveFont())

	require.Error(t, p.SetActiveFont("missing"))
	require.NoError(t, p.SetActiveFont("basic7x13"))

	empty := NewProvider()
	assert.Nil(t, empty.ActiveFont())
}
