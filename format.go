package anchor

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Numeric widgets take C printf formats ("%d", "%.3f", "%5.2f kg",
// "%llu"). Length modifiers are dropped and %u/%i become %d before the
// format reaches fmt; text around the conversion is kept.

// ParseFormatFindStart returns the index of the first conversion of format,
// skipping "%%". It returns len(format) when there is none.
func ParseFormatFindStart(format string) int {
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		if i+1 < len(format) && format[i+1] == '%' {
			i++
			continue
		}
		return i
	}
	return len(format)
}

// ParseFormatFindEnd returns the index just past the conversion that starts
// at start.
func ParseFormatFindEnd(format string, start int) int {
	if start >= len(format) || format[start] != '%' {
		return start
	}
	for i := start + 1; i < len(format); i++ {
		c := format[i]
		if (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') {
			if c == 'l' || c == 'h' || c == 'L' || c == 'q' || c == 'j' || c == 'z' || c == 't' || c == 'I' {
				continue
			}
			return i + 1
		}
	}
	return len(format)
}

// ParseFormatTrimDecorations returns only the conversion of format, so
// "%.3f kg" becomes "%.3f".
func ParseFormatTrimDecorations(format string) string {
	start := ParseFormatFindStart(format)
	if start == len(format) {
		return format
	}
	return format[start:ParseFormatFindEnd(format, start)]
}

// ParseFormatPrecision returns the precision of the first conversion, or
// def when it has none. %e and a bare %g report -1 (full precision).
func ParseFormatPrecision(format string, def int) int {
	i := ParseFormatFindStart(format)
	if i == len(format) {
		return def
	}
	i++
	for i < len(format) && isDigit(format[i]) {
		i++
	}
	precision := math.MaxInt32
	if i < len(format) && format[i] == '.' {
		i++
		j := i
		for j < len(format) && isDigit(format[j]) {
			j++
		}
		precision, _ = strconv.Atoi(format[i:j])
		if precision < 0 || precision > 99 {
			precision = def
		}
		i = j
	}
	if i < len(format) && (format[i] == 'e' || format[i] == 'E') {
		precision = -1
	}
	if i < len(format) && (format[i] == 'g' || format[i] == 'G') && precision == math.MaxInt32 {
		precision = -1
	}
	if precision == math.MaxInt32 {
		return def
	}
	return precision
}

// formatVerb returns the conversion character of the first conversion, or 0.
func formatVerb(format string) byte {
	start := ParseFormatFindStart(format)
	if start == len(format) {
		return 0
	}
	end := ParseFormatFindEnd(format, start)
	if end <= start+1 {
		return 0
	}
	return format[end-1]
}

func formatIsHex(format string) bool {
	v := formatVerb(format)
	return v == 'x' || v == 'X'
}

func isIntVerb(v byte) bool {
	switch v {
	case 'd', 'i', 'u', 'x', 'X', 'o', 'c':
		return true
	}
	return false
}

// toGoFormat rewrites the first C conversion of format for fmt. Later
// conversions are escaped so a stray "%s" prints literally.
func toGoFormat(format string) string {
	start := ParseFormatFindStart(format)
	if start == len(format) {
		return format
	}
	end := ParseFormatFindEnd(format, start)
	conv := format[start:end]
	var b strings.Builder
	b.Grow(len(format) + 2)
	b.WriteString(format[:start])
	for i := 0; i < len(conv); i++ {
		switch c := conv[i]; c {
		case 'l', 'h', 'L', 'q', 'j', 'z', 't', 'I', '\'':
		case 'u', 'i':
			b.WriteByte('d')
		default:
			b.WriteByte(c)
		}
	}
	rest := format[end:]
	rest = strings.ReplaceAll(rest, "%%", "\x00")
	rest = strings.ReplaceAll(rest, "%", "%%")
	rest = strings.ReplaceAll(rest, "\x00", "%%")
	b.WriteString(rest)
	return b.String()
}

// FormatScalar renders v with a C printf format. A format without a
// conversion is returned as is, with "%%" collapsed.
func FormatScalar[T Scalar](format string, v T) string {
	if format == "" {
		format = dataTypeInfo[DataTypeOf[T]()].PrintFmt
	}
	verb := formatVerb(format)
	if verb == 0 {
		return strings.ReplaceAll(format, "%%", "%")
	}
	goFmt := toGoFormat(format)
	switch {
	case isIntVerb(verb) && isFloat[T]():
		return fmt.Sprintf(goFmt, int64(v))
	case isIntVerb(verb):
		if DataTypeOf[T]().IsSigned() {
			return fmt.Sprintf(goFmt, int64(v))
		}
		return fmt.Sprintf(goFmt, uint64(v))
	}
	return fmt.Sprintf(goFmt, float64(v))
}

// DataTypeFormatString is FormatScalar under its table-driven name.
func DataTypeFormatString[T Scalar](v T, format string) string {
	return FormatScalar(format, v)
}

// RoundScalarWithFormat rounds v to the precision shown by format, so a
// value edited under "%.2f" stores what the user sees. Integer kinds and
// formats without a visible value are returned unchanged.
func RoundScalarWithFormat[T Scalar](format string, v T) T {
	if !isFloat[T]() {
		return v
	}
	start := ParseFormatFindStart(format)
	if start == len(format) || isIntVerb(formatVerb(format)) {
		return v
	}
	s := strings.TrimLeft(fmt.Sprintf(toGoFormat(format[start:]), float64(v)), " ")
	f, ok := parseFloatPrefix(s)
	if !ok {
		return v
	}
	return T(f)
}

// fltMin is the smallest normal float32.
const fltMin = 1.175494351e-38

// minStepAtPrecision[i] is 10^-i.
var minStepAtPrecision = [10]float64{1, 0.1, 0.01, 0.001, 0.0001, 0.00001, 0.000001, 0.0000001, 0.00000001, 0.000000001}

// GetMinimumStepAtDecimalPrecision returns the smallest visible step at the
// given number of decimals.
func GetMinimumStepAtDecimalPrecision(decimals int) float64 {
	if decimals < 0 {
		return fltMin
	}
	if decimals < len(minStepAtPrecision) {
		return minStepAtPrecision[decimals]
	}
	return math.Pow(10, -float64(decimals))
}
