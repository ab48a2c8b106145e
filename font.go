package anchor

import (
	"unicode/utf8"
)

// FontProvider abstracts font loading and selection so hosts can inject
// their own atlases (system fonts, editor fonts, mock fonts for tests).
type FontProvider interface {
	// ActiveFont returns the font used for new frames, or nil.
	ActiveFont() Font

	// SetActiveFont selects a font by name.
	SetActiveFont(name string) error
}

// Font is a single font backed by a texture atlas.
//
// Implementations should be GPU-friendly: glyph quads reference a
// pre-generated atlas rather than rasterizing at render time.
type Font interface {
	// TextureID returns the backend texture holding the atlas.
	TextureID() uint32

	// HasGlyph reports whether r has a glyph of its own.
	HasGlyph(r rune) bool

	// LineHeight returns the line height at the specified scale.
	LineHeight(scale float32) float32

	// GlyphAdvance returns the horizontal advance of r at the specified scale.
	GlyphAdvance(r rune, scale float32) float32

	// GlyphQuad returns the screen and texture quad for r with its pen at
	// (x, y). ok is false for glyphs with nothing to draw (spaces).
	GlyphQuad(r rune, x, y, scale float32) (q FontGlyphQuad, ok bool)
}

// FontGlyphQuad is a single character's rendering quad.
type FontGlyphQuad struct {
	// Screen coordinates (top-left and bottom-right)
	X0, Y0 float32
	X1, Y1 float32

	// Texture coordinates (top-left and bottom-right)
	U0, V0 float32
	U1, V1 float32
}

// Builtin bitmap font metrics. The atlas is a 16x6 grid of 8x8 cells
// covering ASCII 32-127 in a 128x48 single-channel texture.
const (
	builtinCell       = 8
	builtinAdvance    = 8
	builtinLineHeight = 13
	builtinAtlasW     = 128
	builtinAtlasH     = 48
)

// builtinFont maps runes onto the backend's built-in bitmap atlas.
type builtinFont struct {
	texture uint32
}

// NewBuiltinFont returns the monospace bitmap font whose atlas lives in
// textureID (see the backend's FontTextureID).
func NewBuiltinFont(textureID uint32) Font {
	return &builtinFont{texture: textureID}
}

func (f *builtinFont) TextureID() uint32 { return f.texture }

func (f *builtinFont) HasGlyph(r rune) bool { return r >= 32 && r <= 127 }

func (f *builtinFont) LineHeight(scale float32) float32 { return builtinLineHeight * scale }

func (f *builtinFont) GlyphAdvance(r rune, scale float32) float32 {
	if r == '\t' {
		return builtinAdvance * 4 * scale
	}
	if r == '\n' || r == '\r' {
		return 0
	}
	return builtinAdvance * scale
}

func (f *builtinFont) GlyphQuad(r rune, x, y, scale float32) (FontGlyphQuad, bool) {
	ch := unicodeFallback(r)
	if ch <= 32 || ch > 127 {
		if ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' {
			return FontGlyphQuad{}, false
		}
		ch = '?'
	}
	idx := int(ch - 32)
	col := float32(idx % 16)
	row := float32(idx / 16)
	sz := builtinCell * scale
	top := y + (builtinLineHeight-builtinCell)*0.5*scale
	top = floorf(top)
	return FontGlyphQuad{
		X0: x, Y0: top,
		X1: x + sz, Y1: top + sz,
		U0: col * builtinCell / builtinAtlasW,
		V0: row * builtinCell / builtinAtlasH,
		U1: (col + 1) * builtinCell / builtinAtlasW,
		V1: (row + 1) * builtinCell / builtinAtlasH,
	}, true
}

// unicodeFallback maps common Unicode symbols to ASCII equivalents
// for the built-in bitmap font (ASCII 32-127 only).
func unicodeFallback(r rune) rune {
	if r >= 32 && r <= 127 {
		return r
	}
	switch r {
	case '►', '▶', '▸', '→':
		return '>'
	case '◄', '◀', '◂', '←':
		return '<'
	case '▼', '▾', '↓':
		return 'v'
	case '▲', '▴', '↑':
		return '^'
	case '●', '•', '◆':
		return '*'
	case '✓', '✔':
		return '+'
	case '✗', '✘':
		return 'x'
	case '—', '–':
		return '-'
	default:
		return r
	}
}

// ============================================================================
// Text measurement
// ============================================================================

// fontScale converts a pixel size into a scale factor for f.
func fontScale(f Font, size float32) float32 {
	lh := f.LineHeight(1)
	if lh <= 0 {
		return 1
	}
	return size / lh
}

// CalcTextSizeA measures text at the given pixel size. Measurement stops at
// maxWidth (returning the unconsumed rest) and lines break at wrapWidth when
// it is positive.
func CalcTextSizeA(f Font, size, maxWidth, wrapWidth float32, text string) (Vec2, string) {
	scale := fontScale(f, size)
	lineHeight := size

	var result Vec2
	lineWidth := float32(0)
	wordWrapEOL := -1

	s := 0
	for s < len(text) {
		if wrapWidth > 0 {
			if wordWrapEOL < 0 {
				wordWrapEOL = s + calcWordWrapPosition(f, scale, text[s:], wrapWidth-lineWidth)
				if wordWrapEOL == s {
					wordWrapEOL++
				}
			}
			if s >= wordWrapEOL {
				result.X = maxf(result.X, lineWidth)
				result.Y += lineHeight
				lineWidth = 0
				wordWrapEOL = -1
				for s < len(text) && isBlankASCII(text[s]) {
					s++
				}
				if s < len(text) && text[s] == '\n' {
					s++
				}
				continue
			}
		}

		prev := s
		r, n := utf8.DecodeRuneInString(text[s:])
		s += n
		if r < 32 {
			if r == '\n' {
				result.X = maxf(result.X, lineWidth)
				result.Y += lineHeight
				lineWidth = 0
				continue
			}
			if r == '\r' {
				continue
			}
		}
		adv := f.GlyphAdvance(r, scale)
		if lineWidth+adv >= maxWidth {
			s = prev
			break
		}
		lineWidth += adv
	}

	result.X = maxf(result.X, lineWidth)
	if lineWidth > 0 || result.Y == 0 {
		result.Y += lineHeight
	}
	return result, text[s:]
}

// calcWordWrapPosition returns the byte offset where a line of text should
// break to fit wrapWidth.
func calcWordWrapPosition(f Font, scale float32, text string, wrapWidth float32) int {
	lineWidth := float32(0)
	wordWidth := float32(0)
	blankWidth := float32(0)

	wordEnd := 0
	prevWordEnd := -1
	insideWord := true

	s := 0
	for s < len(text) {
		r, n := utf8.DecodeRuneInString(text[s:])
		next := s + n
		if r < 32 {
			if r == '\n' {
				lineWidth, wordWidth, blankWidth = 0, 0, 0
				insideWord = true
				s = next
				continue
			}
			if r == '\r' {
				s = next
				continue
			}
		}
		adv := f.GlyphAdvance(r, scale)
		if r == ' ' || r == '\t' || r == 0x3000 {
			if insideWord {
				lineWidth += blankWidth
				blankWidth = 0
				wordEnd = s
			}
			blankWidth += adv
			insideWord = false
		} else {
			wordWidth += adv
			if insideWord {
				wordEnd = next
			} else {
				prevWordEnd = wordEnd
				lineWidth += wordWidth + blankWidth
				wordWidth, blankWidth = adv, 0
			}
			insideWord = !(r == '.' || r == ',' || r == ';' || r == '!' || r == '?' || r == '"')
		}
		if lineWidth+wordWidth > wrapWidth {
			if wordWidth < wrapWidth {
				if prevWordEnd >= 0 {
					s = prevWordEnd
				} else {
					s = wordEnd
				}
			}
			break
		}
		s = next
	}
	return s
}

func isBlankASCII(c byte) bool { return c == ' ' || c == '\t' }

// CalcTextSize measures a label with the current font. With hideAfterHash
// the "##" suffix is ignored. A wrapWidth <= 0 disables wrapping.
func (ctx *Context) CalcTextSize(text string, hideAfterHash bool, wrapWidth float32) Vec2 {
	if hideAfterHash {
		text = FindRenderedTextEnd(text)
	}
	if text == "" {
		return Vec2{0, ctx.FontSize}
	}
	size, _ := CalcTextSizeA(ctx.Font, ctx.FontSize, floatMax, wrapWidth, text)
	size.X = floorf(size.X + 0.95)
	return size
}

// CalcWrapWidthForPos returns the wrap width for text starting at pos.
// A wrapPosX of 0 wraps at the end of the content region.
func (ctx *Context) CalcWrapWidthForPos(pos Vec2, wrapPosX float32) float32 {
	if wrapPosX < 0 {
		return 0
	}
	w := ctx.CurrentWindow
	if wrapPosX == 0 {
		wrapPosX = w.WorkRect.Max.X
	} else if wrapPosX > 0 {
		wrapPosX += w.Pos.X - w.Scroll.X
	}
	return maxf(wrapPosX-pos.X, 1)
}

// PushFont makes f the current font until PopFont.
func (ctx *Context) PushFont(f Font) {
	if f == nil {
		f = ctx.defaultFont()
	}
	ctx.fontStack = append(ctx.fontStack, f)
	ctx.setCurrentFont(f)
}

// PopFont restores the previous font.
func (ctx *Context) PopFont() {
	n := len(ctx.fontStack)
	if n == 0 {
		ctx.assert(false, "PopFont: too many pops")
		return
	}
	ctx.fontStack = ctx.fontStack[:n-1]
	if n > 1 {
		ctx.setCurrentFont(ctx.fontStack[n-2])
	} else {
		ctx.setCurrentFont(ctx.defaultFont())
	}
}

// GetFontSize returns the current font size in pixels.
func (ctx *Context) GetFontSize() float32 { return ctx.FontSize }

// GetFont returns the current font.
func (ctx *Context) GetFont() Font { return ctx.Font }

func (ctx *Context) defaultFont() Font {
	if ctx.fontProvider != nil {
		if f := ctx.fontProvider.ActiveFont(); f != nil {
			return f
		}
	}
	return ctx.builtin
}

func (ctx *Context) setCurrentFont(f Font) {
	ctx.Font = f
	scale := ctx.FontGlobalScale
	if w := ctx.CurrentWindow; w != nil {
		scale *= w.FontWindowScale
	}
	ctx.FontSize = f.LineHeight(scale)
}

// SetFontProvider replaces the font provider used for new frames.
func (ctx *Context) SetFontProvider(p FontProvider) { ctx.fontProvider = p }

// FontProvider returns the current font provider.
func (ctx *Context) FontProvider() FontProvider { return ctx.fontProvider }
