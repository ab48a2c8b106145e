package anchor

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ErrStyleConfig reports a style file that does not describe a Style.
var ErrStyleConfig = errors.New("anchor: invalid style config")

// styleFile is the TOML layout of a style:
//
//	base = "dark"
//
//	[sizes]
//	frame_padding = [4, 3]
//	frame_rounding = 2
//
//	[colors]
//	FrameBg = "#294A7A8A"
type styleFile struct {
	Base   string            `toml:"base,omitempty"`
	Sizes  map[string]any    `toml:"sizes,omitempty"`
	Colors map[string]string `toml:"colors,omitempty"`
}

// LoadStyleFile reads a TOML style file.
func LoadStyleFile(path string) (Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Style{}, fmt.Errorf("load style: %w", err)
	}
	s, err := ParseStyleTOML(data)
	if err != nil {
		return Style{}, fmt.Errorf("load style %s: %w", path, err)
	}
	return s, nil
}

// ParseStyleTOML builds a Style from TOML. Keys missing from the document
// keep the values of the base style ("dark" unless base says "light").
func ParseStyleTOML(data []byte) (Style, error) {
	var f styleFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return Style{}, fmt.Errorf("parse style: %w", err)
	}

	var s Style
	switch strings.ToLower(f.Base) {
	case "", "dark":
		s = DefaultStyle()
	case "light":
		s = LightStyle()
	default:
		return Style{}, fmt.Errorf("base %q: %w", f.Base, ErrStyleConfig)
	}

	for key, raw := range f.Sizes {
		info, ok := lookupStyleVar(key)
		if !ok {
			return Style{}, fmt.Errorf("sizes.%s: unknown key: %w", key, ErrStyleConfig)
		}
		if err := info.set(&s, raw); err != nil {
			return Style{}, fmt.Errorf("sizes.%s: %w", key, err)
		}
	}
	for key, hex := range f.Colors {
		idx, ok := lookupCol(key)
		if !ok {
			return Style{}, fmt.Errorf("colors.%s: unknown color: %w", key, ErrStyleConfig)
		}
		c, err := parseStyleColor(hex)
		if err != nil {
			return Style{}, fmt.Errorf("colors.%s: %w", key, err)
		}
		s.Colors[idx] = c
	}
	return s, nil
}

// MarshalStyleTOML writes every size and color of s.
func MarshalStyleTOML(s Style) ([]byte, error) {
	f := styleFile{
		Sizes:  make(map[string]any, len(styleVarInfos)),
		Colors: make(map[string]string, ColCount),
	}
	for i := range styleVarInfos {
		info := &styleVarInfos[i]
		if info.float != nil {
			f.Sizes[info.name] = *info.float(&s)
		} else {
			v := *info.vec2(&s)
			f.Sizes[info.name] = []float32{v.X, v.Y}
		}
	}
	for c := range ColCount {
		f.Colors[c.String()] = formatStyleColor(s.Colors[c])
	}
	data, err := toml.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("marshal style: %w", err)
	}
	return data, nil
}

func lookupStyleVar(name string) (*styleVarInfo, bool) {
	for i := range styleVarInfos {
		if styleVarInfos[i].name == name {
			return &styleVarInfos[i], true
		}
	}
	return nil, false
}

func lookupCol(name string) (Col, bool) {
	for c := range ColCount {
		if strings.EqualFold(colNames[c], name) {
			return c, true
		}
	}
	return 0, false
}

func (info *styleVarInfo) set(s *Style, raw any) error {
	if info.float != nil {
		v, ok := tomlFloat(raw)
		if !ok {
			return fmt.Errorf("want a number, got %T: %w", raw, ErrStyleConfig)
		}
		*info.float(s) = v
		return nil
	}
	arr, ok := raw.([]any)
	if !ok || len(arr) != 2 {
		return fmt.Errorf("want [x, y]: %w", ErrStyleConfig)
	}
	x, okX := tomlFloat(arr[0])
	y, okY := tomlFloat(arr[1])
	if !okX || !okY {
		return fmt.Errorf("want [x, y] numbers: %w", ErrStyleConfig)
	}
	*info.vec2(s) = Vec2{x, y}
	return nil
}

// tomlFloat accepts TOML integers and floats.
func tomlFloat(raw any) (float32, bool) {
	switch v := raw.(type) {
	case float64:
		return float32(v), true
	case int64:
		return float32(v), true
	}
	return 0, false
}

// parseStyleColor reads "#RRGGBB" or "#RRGGBBAA".
func parseStyleColor(s string) (Vec4, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 6 {
		hex += "FF"
	}
	if len(hex) != 8 {
		return Vec4{}, fmt.Errorf("color %q: want #RRGGBB or #RRGGBBAA: %w", s, ErrStyleConfig)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Vec4{}, fmt.Errorf("color %q: %w", s, errors.Join(err, ErrStyleConfig))
	}
	const inv = 1.0 / 255
	return Vec4{
		X: float32(n>>24&0xFF) * inv,
		Y: float32(n>>16&0xFF) * inv,
		Z: float32(n>>8&0xFF) * inv,
		W: float32(n&0xFF) * inv,
	}, nil
}

func formatStyleColor(c Vec4) string {
	return fmt.Sprintf("#%02X%02X%02X%02X", f32ToInt8Sat(c.X), f32ToInt8Sat(c.Y), f32ToInt8Sat(c.Z), f32ToInt8Sat(c.W))
}
