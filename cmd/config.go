package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ewagner/pennybook/logger"
)

// Config is the CLI configuration, resolved in layers: built-in defaults,
// then pennybook.yaml, then environment variables (a .env file is honored),
// then command-line flags.
type Config struct {
	DataPath string `yaml:"data"`
	LogLevel string `yaml:"log_level"`
}

const configFile = "pennybook.yaml"

func loadConfig() Config {
	// Load .env from the current directory if present.
	_ = godotenv.Load()

	cfg := Config{
		DataPath: "pennybook.db",
		LogLevel: "warn",
	}

	if data, err := os.ReadFile(configFile); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			logger.Log.Warnw("ignoring unreadable config file", "file", configFile, "err", err)
		}
	}

	if v := os.Getenv("PENNYBOOK_DATA"); v != "" {
		cfg.DataPath = v
	}
	if v := os.Getenv("PENNYBOOK_LOG"); v != "" {
		cfg.LogLevel = v
	}
	return cfg
}
