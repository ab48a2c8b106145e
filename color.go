package anchor

import "github.com/chewxy/math32"

// Color constants (RGBA packed as 0xAABBGGRR for OpenGL compatibility)
const (
	ColorWhite       uint32 = 0xFFFFFFFF
	ColorBlack       uint32 = 0xFF000000
	ColorRed         uint32 = 0xFF0000FF
	ColorGreen       uint32 = 0xFF00FF00
	ColorBlue        uint32 = 0xFFFF0000
	ColorYellow      uint32 = 0xFF00FFFF
	ColorTransparent uint32 = 0x00000000
)

const colorAlphaMask uint32 = 0xFF000000

// RGBA creates a packed color from individual components (0-255).
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// RGBAf creates a packed color from float components (0.0-1.0).
func RGBAf(r, g, b, a float32) uint32 {
	return RGBA(unitToByte(r), unitToByte(g), unitToByte(b), unitToByte(a))
}

// UnpackRGBA extracts RGBA components from a packed color.
func UnpackRGBA(c uint32) (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

func unitToByte(v float32) uint8 {
	return uint8(saturate(v)*255 + 0.5)
}

// ColorConvertFloat4ToU32 packs a float color.
func ColorConvertFloat4ToU32(c Vec4) uint32 {
	return RGBAf(c.X, c.Y, c.Z, c.W)
}

// ColorConvertU32ToFloat4 unpacks a color into 0..1 floats.
func ColorConvertU32ToFloat4(c uint32) Vec4 {
	const s = 1.0 / 255.0
	r, g, b, a := UnpackRGBA(c)
	return Vec4{float32(r) * s, float32(g) * s, float32(b) * s, float32(a) * s}
}

// ColorConvertRGBtoHSV converts 0..1 RGB to 0..1 HSV.
func ColorConvertRGBtoHSV(r, g, b float32) (h, s, v float32) {
	var k float32
	if g < b {
		g, b = b, g
		k = -1
	}
	if r < g {
		r, g = g, r
		k = -2.0/6.0 - k
	}
	chroma := r
	if g < b {
		chroma -= g
	} else {
		chroma -= b
	}
	h = math32.Abs(k + (g-b)/(6*chroma+1e-20))
	s = chroma / (r + 1e-20)
	v = r
	return h, s, v
}

// ColorConvertHSVtoRGB converts 0..1 HSV to 0..1 RGB.
func ColorConvertHSVtoRGB(h, s, v float32) (r, g, b float32) {
	if s == 0 {
		return v, v, v
	}
	h = math32.Mod(h, 1) / (60.0 / 360.0)
	i := int(h)
	f := h - float32(i)
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))
	switch i {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}

// scaleAlpha multiplies the packed alpha channel by mul.
func scaleAlpha(col uint32, mul float32) uint32 {
	a := float32(col>>24) * mul
	return col&^colorAlphaMask | uint32(clampf(a, 0, 255))<<24
}

// lerpColor blends two packed colors channel by channel.
func lerpColor(a, b uint32, t float32) uint32 {
	ar, ag, ab, aa := UnpackRGBA(a)
	br, bg, bb, ba := UnpackRGBA(b)
	mix := func(x, y uint8) uint8 { return uint8(lerpf(float32(x), float32(y), t) + 0.5) }
	return RGBA(mix(ar, br), mix(ag, bg), mix(ab, bb), mix(aa, ba))
}

// f32ToInt8Unbound converts a unit float to 0..255 without clamping.
func f32ToInt8Unbound(v float32) int {
	if v >= 0 {
		return int(v*255 + 0.5)
	}
	return int(v*255 - 0.5)
}

// f32ToInt8Sat converts a unit float to 0..255, clamping first.
func f32ToInt8Sat(v float32) int { return int(saturate(v)*255 + 0.5) }
