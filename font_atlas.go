package anchor

import "image"

// builtinGlyphs holds the 8x8 bitmaps of the built-in font, one row per
// byte from the top, most significant bit leftmost. Runes not listed are
// blank.
var builtinGlyphs = map[rune]uint64{
	'!':  0x1818181818001800,
	'"':  0x6666000000000000,
	'#':  0x247E24247E240000,
	'$':  0x183E603C067C1800,
	'%':  0x6264081026460000,
	'&':  0x386C3876DCCC7600,
	'\'': 0x1818300000000000,
	'(':  0x0C18303030180C00,
	')':  0x30180C0C0C183000,
	'*':  0x00663CFF3C660000,
	'+':  0x0018187E18180000,
	',':  0x0000000000181830,
	'-':  0x0000007E00000000,
	'.':  0x0000000000181800,
	'/':  0x02060C1830604000,
	'0':  0x3C666E7666663C00,
	'1':  0x1838181818187E00,
	'2':  0x3C66061C30607E00,
	'3':  0x3C66061C06663C00,
	'4':  0x0C1C3C6C7E0C0C00,
	'5':  0x7E607C0606663C00,
	'6':  0x1C30607C66663C00,
	'7':  0x7E060C1830303000,
	'8':  0x3C66663C66663C00,
	'9':  0x3C66663E060C3800,
	':':  0x0000181800181800,
	';':  0x0000181800181830,
	'<':  0x060C1830180C0600,
	'=':  0x00007E007E000000,
	'>':  0x6030180C18306000,
	'?':  0x3C66061C18001800,
	'@':  0x3C666E6A6E603C00,
	'A':  0x183C66667E666600,
	'B':  0x7C66667C66667C00,
	'C':  0x3C66606060663C00,
	'D':  0x786C6666666C7800,
	'E':  0x7E60607C60607E00,
	'F':  0x7E60607C60606000,
	'G':  0x3C66606E66663E00,
	'H':  0x6666667E66666600,
	'I':  0x7E18181818187E00,
	'J':  0x3E0C0C0C0C6C3800,
	'K':  0x666C7870786C6600,
	'L':  0x6060606060607E00,
	'M':  0x63777F6B63636300,
	'N':  0x66767E7E6E666600,
	'O':  0x3C66666666663C00,
	'P':  0x7C66667C60606000,
	'Q':  0x3C6666666A6C3600,
	'R':  0x7C66667C6C666600,
	'S':  0x3C66603C06663C00,
	'T':  0x7E18181818181800,
	'U':  0x6666666666663C00,
	'V':  0x66666666663C1800,
	'W':  0x6363636B7F776300,
	'X':  0x66663C183C666600,
	'Y':  0x6666663C18181800,
	'Z':  0x7E060C1830607E00,
	'[':  0x1C18181818181C00,
	'\\': 0x406030180C060200,
	']':  0x3818181818183800,
	'^':  0x183C660000000000,
	'_':  0x0000000000007E00,
	'`':  0x30180C0000000000,
	'a':  0x00003C063E663E00,
	'b':  0x60607C6666667C00,
	'c':  0x00003C6660663C00,
	'd':  0x06063E6666663E00,
	'e':  0x00003C667E603C00,
	'f':  0x1C30307C30303000,
	'g':  0x00003E66663E063C,
	'h':  0x60607C6666666600,
	'i':  0x1800381818183C00,
	'j':  0x0C001C0C0C0C6C38,
	'k':  0x6060666C786C6600,
	'l':  0x3818181818183C00,
	'm':  0x0000767F6B6B6300,
	'n':  0x00007C6666666600,
	'o':  0x00003C6666663C00,
	'p':  0x00007C66667C6060,
	'q':  0x00003E66663E0606,
	'r':  0x00006C7660606000,
	's':  0x00003E603C067C00,
	't':  0x30307C3030301C00,
	'u':  0x0000666666663E00,
	'v':  0x00006666663C1800,
	'w':  0x0000636B6B7F3600,
	'x':  0x0000663C183C6600,
	'y':  0x00006666663E063C,
	'z':  0x00007E0C18307E00,
	'{':  0x0E18187018180E00,
	'|':  0x1818181818181800,
	'}':  0x7018180E18187000,
	'~':  0x000076DC00000000,
}

// BuiltinFontAtlas rasterizes the built-in font into the single-channel
// atlas read by NewBuiltinFont. Backends upload it once with nearest
// filtering and pass the texture to WithFontTexture.
func BuiltinFontAtlas() *image.Alpha {
	img := image.NewAlpha(image.Rect(0, 0, builtinAtlasW, builtinAtlasH))
	for r, bits := range builtinGlyphs {
		idx := int(r - 32)
		ox, oy := idx%16*builtinCell, idx/16*builtinCell
		for y := range builtinCell {
			row := byte(bits >> (8 * (builtinCell - 1 - y)))
			for x := range builtinCell {
				if row&(0x80>>x) != 0 {
					img.Pix[(oy+y)*img.Stride+ox+x] = 0xFF
				}
			}
		}
	}
	return img
}
