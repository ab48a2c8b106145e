package anchor

import (
	"math"
	"strconv"
	"strings"
)

// DataType is the closed set of scalar kinds the numeric widgets edit.
type DataType int

const (
	DataTypeS8 DataType = iota
	DataTypeU8
	DataTypeS16
	DataTypeU16
	DataTypeS32
	DataTypeU32
	DataTypeS64
	DataTypeU64
	DataTypeFloat
	DataTypeDouble
	DataTypeCount
)

// DataTypeInfo describes one scalar kind.
type DataTypeInfo struct {
	Size     int    // bytes
	Name     string // short name for debug output
	PrintFmt string // default display format
	ScanFmt  string // default parse format
}

var dataTypeInfo = [DataTypeCount]DataTypeInfo{
	{1, "S8", "%d", "%d"},
	{1, "U8", "%u", "%u"},
	{2, "S16", "%d", "%d"},
	{2, "U16", "%u", "%u"},
	{4, "S32", "%d", "%d"},
	{4, "U32", "%u", "%u"},
	{8, "S64", "%lld", "%lld"},
	{8, "U64", "%llu", "%llu"},
	{4, "float", "%.3f", "%f"},
	{8, "double", "%f", "%lf"},
}

// GetDataTypeInfo returns the table entry of dt.
func GetDataTypeInfo(dt DataType) DataTypeInfo {
	if dt < 0 || dt >= DataTypeCount {
		return DataTypeInfo{}
	}
	return dataTypeInfo[dt]
}

func (dt DataType) String() string { return GetDataTypeInfo(dt).Name }

// IsFloat reports whether dt is Float or Double.
func (dt DataType) IsFloat() bool { return dt == DataTypeFloat || dt == DataTypeDouble }

// IsSigned reports whether dt holds negative values.
func (dt DataType) IsSigned() bool {
	switch dt {
	case DataTypeU8, DataTypeU16, DataTypeU32, DataTypeU64:
		return false
	}
	return true
}

// Scalar is the set of Go types the numeric widgets accept.
type Scalar interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64 |
		~int | ~uint | ~float32 | ~float64
}

// DataTypeOf maps a Go scalar type to its DataType.
func DataTypeOf[T Scalar]() DataType {
	var zero T
	switch any(zero).(type) {
	case int8:
		return DataTypeS8
	case uint8:
		return DataTypeU8
	case int16:
		return DataTypeS16
	case uint16:
		return DataTypeU16
	case int32:
		return DataTypeS32
	case uint32:
		return DataTypeU32
	case int64:
		return DataTypeS64
	case uint64:
		return DataTypeU64
	case float32:
		return DataTypeFloat
	case float64:
		return DataTypeDouble
	case int:
		if strconv.IntSize == 32 {
			return DataTypeS32
		}
		return DataTypeS64
	case uint:
		if strconv.IntSize == 32 {
			return DataTypeU32
		}
		return DataTypeU64
	}
	return dataTypeOfNamed(zero)
}

// dataTypeOfNamed resolves named types (type Celsius float32) by probing
// their arithmetic.
func dataTypeOfNamed[T Scalar](zero T) DataType {
	one := zero + 1
	if one/2 != 0 {
		fine := 1 + math.Pow(2, -30)
		if T(fine) == 1 {
			return DataTypeFloat
		}
		return DataTypeDouble
	}
	if neg := zero - 1; neg > 0 {
		switch {
		case uint64(neg) == math.MaxUint8:
			return DataTypeU8
		case uint64(neg) == math.MaxUint16:
			return DataTypeU16
		case uint64(neg) == math.MaxUint32:
			return DataTypeU32
		}
		return DataTypeU64
	}
	var maxS8 int64 = math.MaxInt8
	var maxS16 int64 = math.MaxInt16
	var maxS32 int64 = math.MaxInt32
	switch {
	case T(maxS8)+1 < 0:
		return DataTypeS8
	case T(maxS16)+1 < 0:
		return DataTypeS16
	case T(maxS32)+1 < 0:
		return DataTypeS32
	}
	return DataTypeS64
}

// isFloat reports whether T is a floating point type.
func isFloat[T Scalar]() bool { return DataTypeOf[T]().IsFloat() }

// DataTypeLimits returns the smallest and largest value of T. Float kinds
// use the largest finite magnitude.
func DataTypeLimits[T Scalar]() (lo, hi T) {
	dt := DataTypeOf[T]()
	bits := uint(dataTypeInfo[dt].Size * 8)
	switch dt {
	case DataTypeFloat:
		f := float64(math.MaxFloat32)
		return T(-f), T(f)
	case DataTypeDouble:
		f := math.MaxFloat64
		return T(-f), T(f)
	case DataTypeU8, DataTypeU16, DataTypeU32, DataTypeU64:
		u := ^uint64(0) >> (64 - bits)
		return 0, T(u)
	}
	s := int64(-1) << (bits - 1)
	return T(s), T(-(s + 1))
}

// ============================================================================
// Arithmetic
// ============================================================================

// AddClampOverflow returns a+b saturated to [lo, hi].
func AddClampOverflow[T Scalar](a, b, lo, hi T) T {
	if b < 0 && a < lo-b {
		return lo
	}
	if b > 0 && a > hi-b {
		return hi
	}
	return a + b
}

// SubClampOverflow returns a-b saturated to [lo, hi].
func SubClampOverflow[T Scalar](a, b, lo, hi T) T {
	if b > 0 && a < lo+b {
		return lo
	}
	if b < 0 && a > hi+b {
		return hi
	}
	return a - b
}

// DataTypeApplyOp applies '+' or '-' to a and b. Integer kinds saturate at
// their limits instead of wrapping.
func DataTypeApplyOp[T Scalar](op byte, a, b T) T {
	if isFloat[T]() {
		if op == '-' {
			return a - b
		}
		return a + b
	}
	lo, hi := DataTypeLimits[T]()
	if op == '-' {
		return SubClampOverflow(a, b, lo, hi)
	}
	return AddClampOverflow(a, b, lo, hi)
}

// DataTypeClamp clamps *v to [vMin, vMax] and reports whether it changed.
// Reversed bounds are accepted.
func DataTypeClamp[T Scalar](v *T, vMin, vMax T) bool {
	if vMin > vMax {
		vMin, vMax = vMax, vMin
	}
	switch {
	case *v < vMin:
		*v = vMin
		return true
	case *v > vMax:
		*v = vMax
		return true
	}
	return false
}

// DataTypeCompare returns -1, 0 or 1.
func DataTypeCompare[T Scalar](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// fromFloat converts f to T, saturating integer kinds.
func fromFloat[T Scalar](f float64) T {
	if isFloat[T]() {
		return T(f)
	}
	lo, hi := DataTypeLimits[T]()
	if math.IsNaN(f) {
		return 0
	}
	if f <= float64(lo) {
		return lo
	}
	if f >= float64(hi) {
		return hi
	}
	return T(f)
}

// ============================================================================
// Text input
// ============================================================================

// DataTypeApplyOpFromText parses buf into *v. A leading '+', '*' or '/'
// applies to the value parsed from initialValueBuf (so "*2" doubles it);
// a leading '-' is part of a negative number. Malformed input and division
// by zero leave *v untouched.
//
// It reports whether *v changed.
func DataTypeApplyOpFromText[T Scalar](buf, initialValueBuf string, v *T, format string) bool {
	buf = strings.TrimLeft(buf, " \t")
	var op byte
	if buf != "" && (buf[0] == '+' || buf[0] == '*' || buf[0] == '/') {
		op = buf[0]
		buf = strings.TrimLeft(buf[1:], " \t")
	}
	if buf == "" {
		return false
	}

	hex := formatIsHex(format)
	backup := *v
	var ref T
	if op != 0 {
		var ok bool
		if ref, ok = parseScalar[T](initialValueBuf, hex); !ok {
			return false
		}
	}

	switch op {
	case '+':
		arg, ok := parseScalar[T](buf, hex)
		if !ok {
			return false
		}
		*v = DataTypeApplyOp('+', ref, arg)
	case '*':
		f, ok := parseFloatPrefix(buf)
		if !ok {
			return false
		}
		*v = fromFloat[T](float64(ref) * f)
	case '/':
		f, ok := parseFloatPrefix(buf)
		if !ok || f == 0 {
			return false
		}
		*v = fromFloat[T](float64(ref) / f)
	default:
		arg, ok := parseScalar[T](buf, hex)
		if !ok {
			return false
		}
		*v = arg
	}
	return *v != backup
}

// parseScalar reads the leading number of s as a T. Integer kinds saturate
// and truncate fractions, like scanf("%d") on "3.7".
func parseScalar[T Scalar](s string, hex bool) (T, bool) {
	s = strings.TrimLeft(s, " \t")
	if isFloat[T]() {
		f, ok := parseFloatPrefix(s)
		return T(f), ok
	}
	if hex {
		tok := scanHexPrefix(s)
		if tok == "" {
			return 0, false
		}
		u, err := strconv.ParseUint(tok, 16, 64)
		if err != nil && !isRangeErr(err) {
			return 0, false
		}
		_, hi := DataTypeLimits[T]()
		if u > uint64(hi) && hi > 0 {
			return hi, true
		}
		return T(u), true
	}
	tok := scanIntPrefix(s)
	if tok == "" {
		return 0, false
	}
	lo, hi := DataTypeLimits[T]()
	if !DataTypeOf[T]().IsSigned() && tok[0] != '-' {
		u, err := strconv.ParseUint(strings.TrimPrefix(tok, "+"), 10, 64)
		if err != nil && !isRangeErr(err) {
			return 0, false
		}
		if u > uint64(hi) {
			return hi, true
		}
		return T(u), true
	}
	n, err := strconv.ParseInt(tok, 10, 64)
	if err != nil && !isRangeErr(err) {
		return 0, false
	}
	if n < 0 && !DataTypeOf[T]().IsSigned() {
		return 0, true
	}
	if DataTypeOf[T]().IsSigned() {
		if n < int64(lo) {
			return lo, true
		}
		if n > int64(hi) {
			return hi, true
		}
	}
	return T(n), true
}

func isRangeErr(err error) bool {
	ne, ok := err.(*strconv.NumError)
	return ok && ne.Err == strconv.ErrRange
}

// parseFloatPrefix parses the longest leading float of s.
func parseFloatPrefix(s string) (float64, bool) {
	tok := scanFloatPrefix(strings.TrimLeft(s, " \t"))
	if tok == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil && !isRangeErr(err) {
		return 0, false
	}
	return f, true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func scanIntPrefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == start {
		return ""
	}
	return s[:i]
}

func scanHexPrefix(s string) string {
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	i := 0
	for i < len(s) && isHexDigit(s[i]) {
		i++
	}
	return s[:i]
}

func scanFloatPrefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return ""
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}
	return s[:i]
}
