package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/aireview/aireview/internal/constants"
)

// Config represents the per-run analysis settings. A Config is loaded once
// per invocation and never mutated afterwards.
type Config struct {
	// MaxLineLength is the line length limit for style analysis
	MaxLineLength int `json:"max_line_length" mapstructure:"max_line_length" yaml:"max_line_length"`

	// MaxFunctionLines is the function span limit for complexity analysis
	MaxFunctionLines int `json:"max_function_lines" mapstructure:"max_function_lines" yaml:"max_function_lines"`

	// EnabledChecks lists the check categories to run
	EnabledChecks []string `json:"enabled_checks" mapstructure:"enabled_checks" yaml:"enabled_checks"`

	// SeverityLevels maps check categories to report severities
	SeverityLevels map[string]string `json:"severity_levels" mapstructure:"severity_levels" yaml:"severity_levels"`
}

// DefaultConfig returns the compiled-in default configuration
func DefaultConfig() *Config {
	return &Config{
		MaxLineLength:    constants.DefaultMaxLineLength,
		MaxFunctionLines: constants.DefaultMaxFunctionLines,
		EnabledChecks: []string{
			constants.CheckComplexity,
			constants.CheckStyle,
			constants.CheckSyntax,
		},
		SeverityLevels: map[string]string{
			constants.CheckSyntax:     "error",
			constants.CheckComplexity: "warning",
			constants.CheckStyle:      "info",
		},
	}
}

// LoadConfig loads configuration from the given path, falling back to the
// default file name when path is empty. The returned Config is always
// usable: when the file is absent, unreadable, or malformed, the compiled-in
// defaults are returned together with a non-nil error describing why. Callers
// surface that error as a warning; loading never aborts.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = constants.ConfigFileName
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			// Missing config file is the normal case, not a warning
			return DefaultConfig(), nil
		}
		return DefaultConfig(), fmt.Errorf("failed to stat config file %s: %w", path, err)
	}

	return loadConfigFromFile(path)
}

// loadConfigFromFile reads and parses a configuration file. Missing fields
// keep their defaults; a parse failure returns the defaults with the error.
func loadConfigFromFile(path string) (*Config, error) {
	// Create a new viper instance to avoid shared global state
	v := viper.New()
	v.SetConfigFile(path)
	if filepath.Ext(path) == "" {
		v.SetConfigType("json")
	}

	config := DefaultConfig()

	if err := v.ReadInConfig(); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := v.Unmarshal(config); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to unmarshal config %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("invalid configuration in %s: %w", path, err)
	}

	return config, nil
}

// FindDefaultConfig looks for a configuration file starting at targetPath
// and walking up to the filesystem root, then falls back to the current
// directory and the user's home directory. Returns "" when nothing is found.
func FindDefaultConfig(targetPath string) string {
	candidates := []string{
		constants.ConfigFileName,
		".aireview.yaml",
		".aireview.yml",
		"aireview.json",
	}

	if targetPath != "" {
		if absPath, err := filepath.Abs(targetPath); err == nil {
			if info, err := os.Stat(absPath); err == nil && !info.IsDir() {
				absPath = filepath.Dir(absPath)
			}
			for dir := absPath; ; dir = filepath.Dir(dir) {
				if found := searchConfigInDirectory(dir, candidates); found != "" {
					return found
				}
				if filepath.Dir(dir) == dir {
					break
				}
			}
		}
	}

	if found := searchConfigInDirectory(".", candidates); found != "" {
		return found
	}

	if home, err := os.UserHomeDir(); err == nil {
		if found := searchConfigInDirectory(home, candidates); found != "" {
			return found
		}
	}

	return ""
}

// searchConfigInDirectory returns the first candidate that exists in dir
func searchConfigInDirectory(dir string, candidates []string) string {
	for _, candidate := range candidates {
		path := filepath.Join(dir, candidate)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	if c.MaxLineLength < 1 {
		return fmt.Errorf("max_line_length must be >= 1, got %d", c.MaxLineLength)
	}

	if c.MaxFunctionLines < 1 {
		return fmt.Errorf("max_function_lines must be >= 1, got %d", c.MaxFunctionLines)
	}

	validChecks := map[string]bool{
		constants.CheckComplexity: true,
		constants.CheckStyle:      true,
		constants.CheckSyntax:     true,
	}
	for _, check := range c.EnabledChecks {
		if !validChecks[check] {
			return fmt.Errorf("unknown check category: %s", check)
		}
	}

	validSeverities := map[string]bool{"error": true, "warning": true, "info": true}
	for check, severity := range c.SeverityLevels {
		if !validChecks[check] {
			return fmt.Errorf("severity_levels references unknown check: %s", check)
		}
		if !validSeverities[severity] {
			return fmt.Errorf("invalid severity for %s: %s", check, severity)
		}
	}

	return nil
}

// IsCheckEnabled reports whether a check category is enabled
func (c *Config) IsCheckEnabled(check string) bool {
	for _, enabled := range c.EnabledChecks {
		if enabled == check {
			return true
		}
	}
	return false
}

// SeverityFor returns the configured severity for a check category, falling
// back to the compiled-in default mapping when unset.
func (c *Config) SeverityFor(check string) string {
	if severity, ok := c.SeverityLevels[check]; ok {
		return severity
	}
	if severity, ok := DefaultConfig().SeverityLevels[check]; ok {
		return severity
	}
	return "info"
}

// Save writes the configuration to path as indented JSON
func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}
	return nil
}
