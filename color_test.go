package anchor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackedColors(t *testing.T) {
	assert.Equal(t, ColorRed, RGBA(255, 0, 0, 255))
	assert.Equal(t, ColorBlue, RGBAf(0, 0, 1, 1))
	assert.Equal(t, RGBA(128, 0, 255, 255), RGBAf(0.5, -1, 2, 1), "components saturate")

	r, g, b, a := UnpackRGBA(RGBA(1, 2, 3, 4))
	assert.Equal(t, [4]uint8{1, 2, 3, 4}, [4]uint8{r, g, b, a})

	assert.Equal(t, uint32(0x80FFFFFF), scaleAlpha(ColorWhite, 0.5025))
	assert.Equal(t, RGBA(128, 128, 128, 255), lerpColor(ColorBlack, ColorWhite, 0.5))
}

func TestHSVConversion(t *testing.T) {
	h, s, v := ColorConvertRGBtoHSV(0, 1, 0)
	assert.InDelta(t, 1.0/3, h, 1e-6)
	assert.InDelta(t, 1, s, 1e-6)
	assert.InDelta(t, 1, v, 1e-6)

	h, s, v = ColorConvertRGBtoHSV(0.5, 0.5, 0.5)
	assert.Zero(t, s)
	assert.InDelta(t, 0.5, v, 1e-6)
	_ = h

	for _, c := range [][3]float32{{1, 0, 0}, {0.2, 0.4, 0.6}, {0.9, 0.1, 0.7}, {0, 0, 0}} {
		h, s, v := ColorConvertRGBtoHSV(c[0], c[1], c[2])
		r, g, b := ColorConvertHSVtoRGB(h, s, v)
		assert.InDeltaSlice(t, c[:], []float32{r, g, b}, 1e-5, "rgb %v", c)
	}
}

func TestHexColorText(t *testing.T) {
	assert.Equal(t, [4]int{0x12, 0xAB, 0xFF, 0}, parseHexColor("#12abff", false))
	assert.Equal(t, [4]int{0x12, 0xAB, 0xFF, 0x80}, parseHexColor("12ABFF80", true))
	assert.Equal(t, [4]int{0xFF, 0, 0, 0}, parseHexColor("  #FF", true), "missing components are zero")
	assert.Equal(t, [4]int{0x10, 0, 0, 0}, parseHexColor("#10zz99", false), "stops at the first bad digit")

	assert.Equal(t, "#12ABFF", formatHexColor([4]int{0x12, 0xAB, 0xFF, 0x80}, false))
	assert.Equal(t, "#FF0000FF", formatHexColor([4]int{300, -4, 0, 255}, true))
}
