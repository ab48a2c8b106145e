package anchor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStyleTOML(t *testing.T) {
	s, err := ParseStyleTOML([]byte(`
base = "light"

[sizes]
frame_padding = [6, 2.5]
frame_rounding = 3

[colors]
FrameBg = "#FF000080"
text = "#00FF00"
`))
	require.NoError(t, err)

	want := LightStyle()
	want.FramePadding = V2(6, 2.5)
	want.FrameRounding = 3
	assert.Equal(t, want.WindowPadding, s.WindowPadding, "unset keys keep the base")
	assert.Equal(t, want.FramePadding, s.FramePadding)
	assert.Equal(t, want.FrameRounding, s.FrameRounding)
	bg := s.Colors[ColFrameBg]
	assert.InDeltaSlice(t, []float32{1, 0, 0, 128.0 / 255}, []float32{bg.X, bg.Y, bg.Z, bg.W}, 1e-6)
	assert.Equal(t, Vec4{0, 1, 0, 1}, s.Colors[ColText], "color names are case insensitive")
	assert.Equal(t, want.Colors[ColWindowBg], s.Colors[ColWindowBg])
}

func TestParseStyleTOMLErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "unknown base", doc: `base = "neon"`},
		{name: "unknown size", doc: "[sizes]\nwobble = 1"},
		{name: "scalar for a vector", doc: "[sizes]\nframe_padding = 4"},
		{name: "vector for a scalar", doc: "[sizes]\nframe_rounding = [1, 2]"},
		{name: "short vector", doc: "[sizes]\nframe_padding = [4]"},
		{name: "unknown color", doc: "[colors]\nGlow = \"#FFFFFF\""},
		{name: "bad color", doc: "[colors]\nText = \"#FFF\""},
		{name: "bad hex", doc: "[colors]\nText = \"#GG0000\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseStyleTOML([]byte(tt.doc))
			assert.ErrorIs(t, err, ErrStyleConfig)
		})
	}

	_, err := ParseStyleTOML([]byte("base = "))
	assert.Error(t, err, "malformed TOML")
}

func TestMarshalStyleTOMLRoundTrip(t *testing.T) {
	orig := DefaultStyle()
	orig.FrameRounding = 4
	orig.ItemSpacing = V2(10, 6)

	data, err := MarshalStyleTOML(orig)
	require.NoError(t, err)
	got, err := ParseStyleTOML(data)
	require.NoError(t, err)

	// Colors survive at 8 bits per channel.
	opt := cmpopts.EquateApprox(0, 1.0/255)
	if diff := cmp.Diff(orig, got, opt); diff != "" {
		t.Errorf("style mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadStyleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "style.toml")
	require.NoError(t, os.WriteFile(path, []byte("[sizes]\nalpha = 0.5\n"), 0o600))

	s, err := LoadStyleFile(path)
	require.NoError(t, err)
	assert.Equal(t, float32(0.5), s.Alpha)

	_, err = LoadStyleFile(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
