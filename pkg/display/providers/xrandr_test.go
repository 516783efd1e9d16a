package providers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamrankamilli/touchfwd/pkg/config"
)

const sampleXrandr = `Screen 0: minimum 8 x 8, current 3840 x 1080, maximum 32767 x 32767
eDP-1 connected primary 1920x1080+0+0 (normal left inverted right x axis y axis) 344mm x 194mm
   1920x1080     60.02*+
HDMI-1 disconnected (normal left inverted right x axis y axis)
VIRTUAL1 connected 1920x1080+1920+0 (normal left inverted right x axis y axis) 0mm x 0mm
   1920x1080     60.00*
VIRTUAL2 connected (normal left inverted right x axis y axis)
VIRTUAL3 connected 800x600+-800+120 (normal left inverted right x axis y axis) 0mm x 0mm
`

func TestParseXrandr(t *testing.T) {
	cases := map[string]config.Offset{
		"eDP-1":    {X: 0, Y: 0},
		"VIRTUAL1": {X: 1920, Y: 0},
		"VIRTUAL3": {X: -800, Y: 120},
	}
	for name, want := range cases {
		got, err := ParseXrandr(sampleXrandr, name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
}

func TestParseXrandr_Errors(t *testing.T) {
	_, err := ParseXrandr(sampleXrandr, "VIRTUAL2")
	assert.ErrorIs(t, err, ErrDisplayInactive)

	_, err = ParseXrandr(sampleXrandr, "HDMI-1")
	assert.ErrorIs(t, err, ErrDisplayNotFound)

	_, err = ParseXrandr(sampleXrandr, "VIRTUAL9")
	assert.ErrorIs(t, err, ErrDisplayNotFound)

	_, err = ParseXrandr("", "VIRTUAL1")
	assert.ErrorIs(t, err, ErrDisplayNotFound)
}

func TestXrandr_Offset(t *testing.T) {
	var gotEnv []string
	var gotArgs []string
	x := NewXrandrWithOutput(":1", func(_ context.Context, env []string, name string, args ...string) ([]byte, error) {
		gotEnv = env
		gotArgs = append([]string{name}, args...)
		return []byte(sampleXrandr), nil
	})

	off, err := x.Offset(context.Background(), "VIRTUAL1")
	require.NoError(t, err)
	assert.Equal(t, config.Offset{X: 1920, Y: 0}, off)
	assert.Equal(t, []string{"xrandr", "--current"}, gotArgs)
	assert.Contains(t, gotEnv, "DISPLAY=:1")
}

func TestXrandr_CommandFailure(t *testing.T) {
	boom := errors.New("executable file not found")
	x := NewXrandrWithOutput("", func(context.Context, []string, string, ...string) ([]byte, error) {
		return nil, boom
	})
	_, err := x.Offset(context.Background(), "VIRTUAL1")
	assert.ErrorIs(t, err, boom)
}

func TestGetGeometryProvider(t *testing.T) {
	g, err := GetGeometryProvider(ProviderXrandr, "")
	require.NoError(t, err)
	assert.IsType(t, &Xrandr{}, g)

	g, err = GetGeometryProvider(ProviderRandR, ":0")
	require.NoError(t, err)
	assert.Equal(t, &RandR{XDisplay: ":0"}, g)

	_, err = GetGeometryProvider("wayland", "")
	assert.Error(t, err)
}
