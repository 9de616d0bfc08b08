package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

const jsonConfigTemplate = `{
  "max_line_length": 120,
  "max_function_lines": 50,
  "enabled_checks": ["complexity", "style", "syntax"],
  "severity_levels": {
    "syntax": "error",
    "complexity": "warning",
    "style": "info"
  }
}
`

// GetJSONConfigTemplate returns the JSON config file template
func GetJSONConfigTemplate() string {
	return jsonConfigTemplate
}

const yamlTemplateHeader = `# aireview configuration
#
# max_line_length:    style analysis flags lines longer than this (default 120)
# max_function_lines: complexity analysis flags functions spanning more lines (default 50)
# enabled_checks:     any of complexity, style, syntax
# severity_levels:    per-category severity: error, warning, info
`

// GetYAMLConfigTemplate returns the default configuration rendered as a
// documented YAML config file.
func GetYAMLConfigTemplate() (string, error) {
	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return "", fmt.Errorf("failed to render YAML template: %w", err)
	}
	return yamlTemplateHeader + string(data), nil
}
