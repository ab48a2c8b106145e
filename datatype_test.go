package anchor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type (
	celsius float32
	counter uint8
	offset  int16
)

func TestDataTypeOf(t *testing.T) {
	assert.Equal(t, DataTypeS8, DataTypeOf[int8]())
	assert.Equal(t, DataTypeU16, DataTypeOf[uint16]())
	assert.Equal(t, DataTypeS32, DataTypeOf[int32]())
	assert.Equal(t, DataTypeU64, DataTypeOf[uint64]())
	assert.Equal(t, DataTypeFloat, DataTypeOf[float32]())
	assert.Equal(t, DataTypeDouble, DataTypeOf[float64]())

	// Named types resolve to their underlying kind.
	assert.Equal(t, DataTypeFloat, DataTypeOf[celsius]())
	assert.Equal(t, DataTypeU8, DataTypeOf[counter]())
	assert.Equal(t, DataTypeS16, DataTypeOf[offset]())

	assert.Equal(t, "float", DataTypeFloat.String())
	assert.True(t, DataTypeDouble.IsFloat())
	assert.False(t, DataTypeU32.IsSigned())
}

func TestDataTypeLimits(t *testing.T) {
	lo8, hi8 := DataTypeLimits[int8]()
	assert.Equal(t, int8(-128), lo8)
	assert.Equal(t, int8(127), hi8)

	loU, hiU := DataTypeLimits[uint16]()
	assert.Equal(t, uint16(0), loU)
	assert.Equal(t, uint16(65535), hiU)
}

func TestDataTypeApplyOpSaturates(t *testing.T) {
	assert.Equal(t, int8(127), DataTypeApplyOp[int8]('+', 120, 10))
	assert.Equal(t, int8(-128), DataTypeApplyOp[int8]('-', -120, 10))
	assert.Equal(t, int8(-110), DataTypeApplyOp[int8]('-', -120, -10))
	assert.Equal(t, uint8(0), DataTypeApplyOp[uint8]('-', 5, 10))
	assert.Equal(t, uint8(255), DataTypeApplyOp[uint8]('+', 250, 10))
	assert.InDelta(t, 2.5, DataTypeApplyOp[float32]('+', 1, 1.5), 1e-6)

	assert.Equal(t, int16(32767), DataTypeApplyOp[int16]('+', 32000, 1000))
	assert.Equal(t, int16(-32768), DataTypeApplyOp[int16]('-', -32000, 1000))
	assert.Equal(t, uint16(65535), DataTypeApplyOp[uint16]('+', 65000, 1000))
	assert.Equal(t, uint16(0), DataTypeApplyOp[uint16]('-', 10, 20))

	assert.Equal(t, int32(math.MaxInt32), DataTypeApplyOp[int32]('+', math.MaxInt32-5, 10))
	assert.Equal(t, int32(math.MinInt32), DataTypeApplyOp[int32]('-', math.MinInt32+5, 10))
	assert.Equal(t, uint32(math.MaxUint32), DataTypeApplyOp[uint32]('+', math.MaxUint32-5, 10))
	assert.Equal(t, uint32(0), DataTypeApplyOp[uint32]('-', 5, 10))

	assert.Equal(t, int64(math.MaxInt64), DataTypeApplyOp[int64]('+', math.MaxInt64-5, 10))
	assert.Equal(t, int64(math.MinInt64), DataTypeApplyOp[int64]('-', math.MinInt64+5, 10))
	assert.Equal(t, int64(math.MinInt64), DataTypeApplyOp[int64]('+', math.MinInt64+5, -10))
	assert.Equal(t, uint64(math.MaxUint64), DataTypeApplyOp[uint64]('+', math.MaxUint64-5, 10))
	assert.Equal(t, uint64(0), DataTypeApplyOp[uint64]('-', 5, 10))

	// In-range results are exact.
	assert.Equal(t, int64(-1), DataTypeApplyOp[int64]('-', math.MaxInt64-1, math.MaxInt64))
	assert.Equal(t, uint32(15), DataTypeApplyOp[uint32]('+', 5, 10))
}

func TestDataTypeClamp(t *testing.T) {
	v := 15
	assert.True(t, DataTypeClamp(&v, 0, 10))
	assert.Equal(t, 10, v)

	// Reversed bounds behave like ordered ones.
	v = -3
	assert.True(t, DataTypeClamp(&v, 10, 0))
	assert.Equal(t, 0, v)

	v = 5
	assert.False(t, DataTypeClamp(&v, 10, 0))

	assert.Equal(t, -1, DataTypeCompare(1.0, 2.0))
	assert.Equal(t, 0, DataTypeCompare(uint8(3), 3))
	assert.Equal(t, 1, DataTypeCompare(int64(9), -9))
}

func TestDataTypeApplyOpFromTextInt(t *testing.T) {
	tests := []struct {
		name    string
		buf     string
		initial string
		start   int
		want    int
		changed bool
	}{
		{name: "literal", buf: "42", initial: "7", start: 7, want: 42, changed: true},
		{name: "surrounding blanks", buf: "  42  ", initial: "7", start: 7, want: 42, changed: true},
		{name: "add", buf: "+5", initial: "10", start: 10, want: 15, changed: true},
		{name: "multiply", buf: "*2", initial: "10", start: 10, want: 20, changed: true},
		{name: "divide truncates", buf: "/4", initial: "10", start: 10, want: 2, changed: true},
		{name: "minus is a literal", buf: "-3", initial: "10", start: 10, want: -3, changed: true},
		{name: "fraction truncates", buf: "3.7", initial: "0", start: 0, want: 3, changed: true},
		{name: "divide by zero", buf: "/0", initial: "10", start: 10, want: 10},
		{name: "malformed", buf: "abc", initial: "10", start: 10, want: 10},
		{name: "operator only", buf: "*", initial: "10", start: 10, want: 10},
		{name: "empty", buf: "", initial: "10", start: 10, want: 10},
		{name: "same value", buf: "10", initial: "10", start: 10, want: 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := tt.start
			changed := DataTypeApplyOpFromText(tt.buf, tt.initial, &v, "%d")
			assert.Equal(t, tt.want, v)
			assert.Equal(t, tt.changed, changed)
		})
	}
}

func TestDataTypeApplyOpFromTextOtherKinds(t *testing.T) {
	f := float32(3)
	assert.True(t, DataTypeApplyOpFromText("*0.5", "3", &f, "%.3f"))
	assert.InDelta(t, 1.5, f, 1e-6)

	d := 1.0
	assert.True(t, DataTypeApplyOpFromText("-2.25e1", "1", &d, "%f"))
	assert.InDelta(t, -22.5, d, 1e-9)

	u := uint8(0)
	assert.True(t, DataTypeApplyOpFromText("300", "0", &u, "%u"))
	assert.Equal(t, uint8(255), u, "saturates instead of wrapping")

	s := int8(100)
	assert.True(t, DataTypeApplyOpFromText("+100", "100", &s, "%d"))
	assert.Equal(t, int8(127), s)

	h := uint8(0)
	assert.True(t, DataTypeApplyOpFromText("ff", "0", &h, "%02X"))
	assert.Equal(t, uint8(255), h)
}
