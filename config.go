package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/ProsperityMC/bubblesort/internal/bubble"
	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Shuffle  bubble.ShuffleMode `yaml:"shuffle"`
	Seed     *int64             `yaml:"seed"`
	Debug    bool               `yaml:"debug"`
	MaxItems int                `yaml:"maxItems"`
	LogLevel string             `yaml:"logLevel"`
	Server   ServerConfig       `yaml:"server"`
}

type ServerConfig struct {
	Listen   string        `yaml:"listen"`
	MaxItems int           `yaml:"maxItems"`
	CacheTtl time.Duration `yaml:"cacheTtl"`
}

func DefaultConfig() Config {
	return Config{
		Shuffle:  bubble.ShuffleBiased,
		MaxItems: 1 << 20,
		LogLevel: "info",
		Server: ServerConfig{
			Listen:   "127.0.0.1:8080",
			MaxItems: 20000,
			CacheTtl: 10 * time.Minute,
		},
	}
}

// loadConfig reads the YAML config at path on top of the defaults. An empty
// path falls back to bubblesort/config.yml in the XDG config directories and
// uses the defaults when there is none.
func loadConfig(path string) (Config, error) {
	conf := DefaultConfig()
	if path == "" {
		found, err := xdg.SearchConfigFile(filepath.Join("bubblesort", "config.yml"))
		if err != nil {
			return conf, nil
		}
		path = found
	}

	openConf, err := os.Open(path)
	if err != nil {
		return conf, fmt.Errorf("failed to open '%s': %w", path, err)
	}
	defer openConf.Close()

	err = yaml.NewDecoder(openConf).Decode(&conf)
	if err != nil && !errors.Is(err, io.EOF) {
		return conf, fmt.Errorf("failed to decode config: %w", err)
	}

	if _, err := bubble.ParseShuffleMode(string(conf.Shuffle)); err != nil {
		return conf, fmt.Errorf("invalid shuffle in config: %w", err)
	}
	if conf.MaxItems <= 0 {
		return conf, fmt.Errorf("%w: maxItems must be positive but got %d", bubble.ErrInvalidSize, conf.MaxItems)
	}
	if conf.Server.MaxItems <= 0 {
		return conf, fmt.Errorf("%w: server.maxItems must be positive but got %d", bubble.ErrInvalidSize, conf.Server.MaxItems)
	}
	return conf, nil
}
