package config

import (
	"fmt"

	"github.com/joeshaw/envdecode"

	"github.com/glanceapp/github-activity/pkg/github"
	"github.com/glanceapp/github-activity/pkg/lib"
	"github.com/glanceapp/github-activity/pkg/lib/log"
)

type Config struct {
	GitHub github.Config `env:""`
	Log    log.Config    `env:""`
}

func Load() (*Config, error) {
	var cfg Config

	if err := envdecode.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := lib.ValidateStruct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}
