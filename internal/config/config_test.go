package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"ultimateholdem/internal/util"
)

func TestInstance(t *testing.T) {
	config = Config{}
	defer util.SetEnv("UTH_CONFIG_FILE", "testdata/config.yaml")()
	defer util.SetEnv("UTH_DECK_SEED", "99")()

	a := assert.New(t)
	cfg := Instance()
	a.Equal("static/card_images", cfg.ImageDir)
	a.True(cfg.Deck.Standard)
	a.Equal(int64(99), cfg.Deck.Seed)
	a.Equal("debug", cfg.Log.Level)
	a.False(cfg.Log.DisableAccessLogs)

	// ensure that it's only loaded once
	defer util.SetEnv("UTH_DECK_SEED", "100")()
	// ensure we aren't using a pointer
	cfg.ImageDir = "bad"
	cfg = Instance()
	a.Equal(int64(99), cfg.Deck.Seed)
	a.Equal("static/card_images", cfg.ImageDir)
}

func TestDefaults(t *testing.T) {
	defer util.SetEnv("UTH_CONFIG_FILE", "testdata/missing.yaml")()
	defer util.SetEnv("UTH_LOG_DISABLE_ACCESS_LOGS", "true")()

	assert.NoError(t, Load())
	cfg := Instance()
	assert.Equal(t, "card_images", cfg.ImageDir)
	assert.False(t, cfg.Deck.Standard)
	assert.Equal(t, int64(0), cfg.Deck.Seed)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Log.DisableAccessLogs)
}

func TestLoad_BadFile(t *testing.T) {
	defer util.SetEnv("UTH_CONFIG_FILE", "testdata/bad.yaml")()
	assert.Error(t, Load())
}
