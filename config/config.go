package config

import (
	"path/filepath"

	"github.com/caarlos0/env/v9"
)

type Config struct {
	BasePath string `env:"SNAPMATIC_PATH" envDefault:"."`
	SrcPath  string `env:"SRC_PATH"`
	DstPath  string `env:"DST_PATH"`
	Prefix   string `env:"PREFIX" envDefault:"PGTA"`
	Debug    bool   `env:"DEBUG" envDefault:"false"`
}

// NewConfig reads configuration from the environment. SRC_PATH and
// DST_PATH default to "source" and "converted" under SNAPMATIC_PATH when
// not set explicitly.
func NewConfig() (*Config, error) {
	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return cfg, err
	}

	if cfg.SrcPath == "" {
		cfg.SrcPath = filepath.Join(cfg.BasePath, "source")
	}
	if cfg.DstPath == "" {
		cfg.DstPath = filepath.Join(cfg.BasePath, "converted")
	}

	return cfg, nil
}
