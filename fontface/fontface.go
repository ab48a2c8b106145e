// Package fontface builds anchor fonts from golang.org/x/image faces: the
// glyphs are rasterized once into an alpha atlas which a backend uploads as
// a single-channel texture.
package fontface

import (
	"errors"
	"fmt"
	"image"
	"slices"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/covah/anchor"
)

// ErrAtlasTooLarge is returned when the glyphs do not fit a 4096px atlas.
var ErrAtlasTooLarge = errors.New("fontface: atlas too large")

const (
	atlasPadding = 1
	atlasMinSize = 128
	atlasMaxSize = 4096
)

// glyph is one rasterized rune. Offsets are relative to the pen at the top
// of the line.
type glyph struct {
	advance        float32
	x0, y0, x1, y1 float32 // quad offsets in pixels
	u0, v0, u1, v1 float32
	visible        bool
}

// Face is an anchor.Font backed by a rasterized atlas.
type Face struct {
	name       string
	lineHeight float32
	ascent     float32
	glyphs     map[rune]glyph
	fallback   rune
	atlas      *image.Alpha
	texture    uint32
}

var _ anchor.Font = (*Face)(nil)

// ASCII returns the printable ASCII range.
func ASCII() []rune {
	rs := make([]rune, 0, 95)
	for r := rune(32); r < 127; r++ {
		rs = append(rs, r)
	}
	return rs
}

// Basic returns the 7x13 bitmap face from basicfont.
func Basic() (*Face, error) {
	return New("basic7x13", basicfont.Face7x13, ASCII())
}

// Load parses TrueType or OpenType data at sizePx pixels.
func Load(name string, data []byte, sizePx float64, runes []rune) (*Face, error) {
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", name, err)
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{Size: sizePx, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("new face %s: %w", name, err)
	}
	defer face.Close()
	return New(name, face, runes)
}

// New rasterizes runes of face into a fresh atlas. Runes the face lacks
// are skipped; '?' stands in for them when present.
func New(name string, face font.Face, runes []rune) (*Face, error) {
	m := face.Metrics()
	f := &Face{
		name:       name,
		lineHeight: float32(m.Height.Ceil()),
		ascent:     float32(m.Ascent.Ceil()),
		glyphs:     make(map[rune]glyph, len(runes)),
		fallback:   '?',
	}

	type measured struct {
		r      rune
		bounds image.Rectangle // relative to the dot
		adv    fixed.Int26_6
	}
	var ms []measured
	for _, r := range slices.Compact(slices.Sorted(slices.Values(runes))) {
		b, adv, ok := face.GlyphBounds(r)
		if !ok {
			continue
		}
		rect := image.Rect(b.Min.X.Floor(), b.Min.Y.Floor(), b.Max.X.Ceil(), b.Max.Y.Ceil())
		ms = append(ms, measured{r: r, bounds: rect, adv: adv})
	}

	// Shelf packing: grow the square until every glyph fits.
	size := atlasMinSize
	var pos []image.Point
	for {
		pos = pos[:0]
		x, y, rowH := atlasPadding, atlasPadding, 0
		fits := true
		for _, g := range ms {
			w, h := g.bounds.Dx(), g.bounds.Dy()
			if x+w+atlasPadding > size {
				x, y, rowH = atlasPadding, y+rowH+atlasPadding, 0
			}
			if y+h+atlasPadding > size || w+2*atlasPadding > size {
				fits = false
				break
			}
			pos = append(pos, image.Pt(x, y))
			x += w + atlasPadding
			rowH = max(rowH, h)
		}
		if fits {
			break
		}
		if size *= 2; size > atlasMaxSize {
			return nil, fmt.Errorf("font %s: %d glyphs: %w", name, len(ms), ErrAtlasTooLarge)
		}
	}

	f.atlas = image.NewAlpha(image.Rect(0, 0, size, size))
	inv := 1 / float32(size)
	for i, g := range ms {
		gl := glyph{advance: float32(g.adv.Round())}
		if w, h := g.bounds.Dx(), g.bounds.Dy(); w > 0 && h > 0 {
			dr, mask, maskp, _, ok := face.Glyph(fixed.Point26_6{}, g.r)
			if ok {
				p := pos[i]
				dst := image.Rect(p.X, p.Y, p.X+dr.Dx(), p.Y+dr.Dy())
				draw.Draw(f.atlas, dst, mask, maskp, draw.Src)
				gl.visible = true
				gl.x0 = float32(dr.Min.X)
				gl.y0 = float32(dr.Min.Y) + f.ascent
				gl.x1 = gl.x0 + float32(dr.Dx())
				gl.y1 = gl.y0 + float32(dr.Dy())
				gl.u0, gl.v0 = float32(dst.Min.X)*inv, float32(dst.Min.Y)*inv
				gl.u1, gl.v1 = float32(dst.Max.X)*inv, float32(dst.Max.Y)*inv
			}
		}
		f.glyphs[g.r] = gl
	}
	return f, nil
}

// Name returns the face name.
func (f *Face) Name() string { return f.name }

// Atlas returns the single-channel glyph atlas.
func (f *Face) Atlas() *image.Alpha { return f.atlas }

// SetTextureID records where the backend uploaded the atlas.
func (f *Face) SetTextureID(id uint32) { f.texture = id }

// TextureID implements anchor.Font.
func (f *Face) TextureID() uint32 { return f.texture }

// HasGlyph implements anchor.Font.
func (f *Face) HasGlyph(r rune) bool {
	_, ok := f.glyphs[r]
	return ok
}

// LineHeight implements anchor.Font.
func (f *Face) LineHeight(scale float32) float32 { return f.lineHeight * scale }

func (f *Face) lookup(r rune) glyph {
	if g, ok := f.glyphs[r]; ok {
		return g
	}
	return f.glyphs[f.fallback]
}

// GlyphAdvance implements anchor.Font.
func (f *Face) GlyphAdvance(r rune, scale float32) float32 {
	switch r {
	case '\n', '\r':
		return 0
	case '\t':
		return f.lookup(' ').advance * 4 * scale
	}
	return f.lookup(r).advance * scale
}

// GlyphQuad implements anchor.Font.
func (f *Face) GlyphQuad(r rune, x, y, scale float32) (anchor.FontGlyphQuad, bool) {
	g := f.lookup(r)
	if !g.visible {
		return anchor.FontGlyphQuad{}, false
	}
	return anchor.FontGlyphQuad{
		X0: x + g.x0*scale, Y0: y + g.y0*scale,
		X1: x + g.x1*scale, Y1: y + g.y1*scale,
		U0: g.u0, V0: g.v0,
		U1: g.u1, V1: g.v1,
	}, true
}

// Provider is an anchor.FontProvider over named faces.
type Provider struct {
	faces  map[string]*Face
	active *Face
}

var _ anchor.FontProvider = (*Provider)(nil)

// NewProvider returns a provider whose first face is active.
func NewProvider(faces ...*Face) *Provider {
	p := &Provider{faces: make(map[string]*Face, len(faces))}
	for _, f := range faces {
		p.Add(f)
	}
	return p
}

// Add registers f, making it active if no face is.
func (p *Provider) Add(f *Face) {
	p.faces[f.name] = f
	if p.active == nil {
		p.active = f
	}
}

// ActiveFont implements anchor.FontProvider.
func (p *Provider) ActiveFont() anchor.Font {
	if p.active == nil {
		return nil
	}
	return p.active
}

// SetActiveFont implements anchor.FontProvider.
func (p *Provider) SetActiveFont(name string) error {
	f, ok := p.faces[name]
	if !ok {
		return fmt.Errorf("fontface: no face %q", name)
	}
	p.active = f
	return nil
}
