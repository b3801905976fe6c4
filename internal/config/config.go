package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"ultimateholdem/internal/util"
)

// Config provides configuration for Ultimate Texas Hold'em
type Config struct {
	loaded   bool
	ImageDir string `yaml:"imageDir" envconfig:"image_dir"`
	Deck     struct {
		// Standard uses the 52-card deck instead of the 48-card complete deck
		Standard bool  `yaml:"standard"`
		Seed     int64 `yaml:"seed"`
	} `yaml:"deck"`
	Log struct {
		Level             string `yaml:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
}

var config Config

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	cfg := Config{
		ImageDir: "card_images",
	}
	cfg.Log.Level = "info"

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// The config file is optional. Environment variables prefixed with UTH_ take precedence.
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("UTH_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	}

	if err := envconfig.Process("uth", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
