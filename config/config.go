// Package config loads runtime settings from an optional YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds everything the binary needs before a session starts.
type Config struct {
	Map     string    `yaml:"map" env:"ADVENTURERS_MAP"`
	Quest   string    `yaml:"quest" env:"ADVENTURERS_QUEST" env-default:"q3"`
	SaveDir string    `yaml:"save_dir" env:"ADVENTURERS_SAVE_DIR"`
	Log     LogConfig `yaml:"log"`
}

// LogConfig controls where logrus output goes. The terminal belongs to the
// game, so logs only go to a file.
type LogConfig struct {
	File   string `yaml:"file" env:"ADVENTURERS_LOG"`
	Level  string `yaml:"level" env:"ADVENTURERS_LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"ADVENTURERS_LOG_FORMAT" env-default:"text"`
}

// Load reads .env (if present) into the environment, then fills Config
// from path (if non-empty) and the environment. Environment values win
// over the file.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading .env: %w", err)
	}

	var cfg Config
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	if cfg.SaveDir == "" {
		home, _ := os.UserHomeDir()
		cfg.SaveDir = filepath.Join(home, ".adventurers", "saves")
	}
	return &cfg, nil
}
