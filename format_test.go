package anchor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFormat(t *testing.T) {
	assert.Equal(t, 6, ParseFormatFindStart("%%abc %d"))
	assert.Equal(t, 5, ParseFormatFindStart("100%%"))
	assert.Equal(t, 4, ParseFormatFindEnd("%.3f kg", 0))
	assert.Equal(t, 4, ParseFormatFindEnd("%lld", 0))

	assert.Equal(t, "%.3f", ParseFormatTrimDecorations("Value: %.3f kg"))
	assert.Equal(t, "none", ParseFormatTrimDecorations("none"))
}

func TestParseFormatPrecision(t *testing.T) {
	tests := []struct {
		format string
		want   int
	}{
		{"%.3f", 3},
		{"%5.1f", 1},
		{"%.0f", 0},
		{"%d", 3},
		{"%e", -1},
		{"%g", -1},
		{"%.2g", 2},
		{"plain", 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseFormatPrecision(tt.format, 3), tt.format)
	}
}

func TestFormatScalar(t *testing.T) {
	assert.Equal(t, "3.14", FormatScalar("%.2f", float32(3.14159)))
	assert.Equal(t, " 1.50 kg", FormatScalar("%5.2f kg", 1.5))
	assert.Equal(t, "50.0%", FormatScalar("%.1f%%", float32(50)))
	assert.Equal(t, "1.000", FormatScalar("", float32(1)))
	assert.Equal(t, "none", FormatScalar("none", 3))

	assert.Equal(t, "-5", FormatScalar("%d", int8(-5)))
	assert.Equal(t, "7", FormatScalar("%u", uint32(7)))
	assert.Equal(t, "1099511627776", FormatScalar("%lld", int64(1)<<40))
	assert.Equal(t, "18446744073709551615", FormatScalar("%llu", ^uint64(0)))
	assert.Equal(t, "FF", FormatScalar("%02X", uint8(255)))

	// An integer conversion applied to a float truncates.
	assert.Equal(t, "3", FormatScalar("%d", float32(3.9)))

	assert.Equal(t, FormatScalar("%.2f", 0.5), DataTypeFormatString(0.5, "%.2f"))
}

func TestRoundScalarWithFormat(t *testing.T) {
	assert.Equal(t, float32(1.23), RoundScalarWithFormat("%.2f", float32(1.23456)))
	assert.Equal(t, 3.0, RoundScalarWithFormat("%.0f", 2.7))
	assert.Equal(t, 1.5, RoundScalarWithFormat("%.3f kg", 1.5))

	// Integer kinds and formats without a visible value pass through.
	assert.Equal(t, 17, RoundScalarWithFormat("%.2f", 17))
	assert.Equal(t, float32(0.125), RoundScalarWithFormat("%d", float32(0.125)))
	assert.Equal(t, float32(0.125), RoundScalarWithFormat("no value", float32(0.125)))
}

func TestMinimumStepAtDecimalPrecision(t *testing.T) {
	assert.Equal(t, 0.01, GetMinimumStepAtDecimalPrecision(2))
	assert.Equal(t, 1.0, GetMinimumStepAtDecimalPrecision(0))
	assert.Equal(t, fltMin, GetMinimumStepAtDecimalPrecision(-1))
	assert.InDelta(t, 1e-12, GetMinimumStepAtDecimalPrecision(12), 1e-24)
}
