package shape_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/vtt/shape"
)

func TestParseColour(t *testing.T) {
	tests := []struct {
		in    string
		hex   string
		alpha float64
	}{
		{"#ff0000", "#ff0000", 1},
		{"#FFCC00", "#ffcc00", 1},
		{"#f00", "#ff0000", 1},
		{"#00000080", "#000000", 128.0 / 255},
		{"rgb(255, 204, 0)", "#ffcc00", 1},
		{"rgba(0,0,0,0)", "#000000", 0},
		{" rgba(136, 0, 0, 0.5) ", "#880000", 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := shape.ParseColour(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.hex, c.Hex())
			assert.InDelta(t, tt.alpha, c.Alpha, 1e-9)
		})
	}
}

func TestParseColourInvalid(t *testing.T) {
	for _, in := range []string{"", "red", "#12", "#gggggg", "rgb(1,2)", "rgb(256,0,0)", "rgba(0,0,0,2)", "rgba(0,0,0)", "rgba(0,0,0,nan)", "rgba(0,0,0,-inf)"} {
		t.Run(in, func(t *testing.T) {
			_, err := shape.ParseColour(in)
			assert.ErrorIs(t, err, shape.ErrInvalidColour)
			assert.False(t, shape.ValidColour(in))
		})
	}
}

func TestColourCSS(t *testing.T) {
	c, err := shape.ParseColour("rgba(255,0,0,0.25)")
	require.NoError(t, err)
	assert.Equal(t, "rgba(255,0,0,0.25)", c.CSS())
	assert.False(t, c.Transparent())

	c, err = shape.ParseColour("#00ff00")
	require.NoError(t, err)
	assert.Equal(t, "#00ff00", c.CSS())

	c, err = shape.ParseColour(shape.DefaultAuraColour)
	require.NoError(t, err)
	assert.True(t, c.Transparent())
}
