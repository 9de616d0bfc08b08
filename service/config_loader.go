package service

import (
	"log/slog"

	"github.com/aireview/aireview/internal/config"
)

// ConfigLoader resolves and loads the analysis configuration
type ConfigLoader struct {
	logger *slog.Logger
}

// NewConfigLoader creates a new config loader
func NewConfigLoader() *ConfigLoader {
	return &ConfigLoader{
		logger: slog.Default().With("component", "config"),
	}
}

// LoadForPath loads the configuration for an analysis run. An explicit path
// wins; otherwise the config file is discovered upward from targetPath. A
// broken config file degrades to the defaults with a logged warning, never
// a failure.
func (l *ConfigLoader) LoadForPath(explicitPath, targetPath string) *config.Config {
	path := explicitPath
	if path == "" {
		path = config.FindDefaultConfig(targetPath)
	}
	if path == "" {
		return config.DefaultConfig()
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		l.logger.Warn("using default configuration", "path", path, "error", err)
	}
	return cfg
}
