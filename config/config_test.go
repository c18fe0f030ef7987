package config_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/vtt/config"
	"github.com/plus3/vtt/overlay"
	"github.com/plus3/vtt/shape"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("VTT_LOG_LEVEL", "debug")
	t.Setenv("VTT_STRICT_COLOURS", "true")
	t.Setenv("VTT_ARC_SEGMENTS", "12")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.StrictColours)
	assert.Equal(t, 12, cfg.ArcSegments)
	assert.False(t, cfg.LogPretty)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Run("level", func(t *testing.T) {
		t.Setenv("VTT_LOG_LEVEL", "loud")
		_, err := config.Load()
		assert.Error(t, err)
	})

	t.Run("segments", func(t *testing.T) {
		t.Setenv("VTT_ARC_SEGMENTS", "2")
		_, err := config.Load()
		assert.Error(t, err)
	})
}

func TestLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Default()
	cfg.LogLevel = "warn"

	logger := cfg.Logger(&buf)
	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())
}

func TestStoreOptions(t *testing.T) {
	cfg := config.Default()
	cfg.StrictColours = true
	cfg.ArcSegments = 6

	store := overlay.NewStore(cfg.StoreOptions(zerolog.Nop())...)

	_, err := store.AddLabel(1, shape.Label{UUID: "l1"})
	require.NoError(t, err)
	_, err = store.AddTracker(1, shape.Tracker{UUID: "t1", PrimaryColor: "nope"})
	assert.ErrorIs(t, err, shape.ErrInvalidColour)

	_, err = store.AddAura(1, shape.Aura{UUID: "a1", Value: 5, Angle: 360, Colour: "#fff", BorderColour: "#000"})
	require.NoError(t, err)
	path, err := store.AuraOutline("a1")
	require.NoError(t, err)
	assert.Len(t, path.Points, 6)
}
