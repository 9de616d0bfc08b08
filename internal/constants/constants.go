package constants

// Tool name and related constants
const (
	// ToolName is the name of this tool
	ToolName = "aireview"

	// ConfigFileName is the default config file name
	ConfigFileName = ".aireviewer.json"

	// EnvVarPrefix is the prefix for environment variables
	EnvVarPrefix = "AIREVIEW"
)

// Check category constants
const (
	CheckComplexity = "complexity"
	CheckStyle      = "style"
	CheckSyntax     = "syntax"
)

// Output format constants
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
	OutputFormatHTML = "html"
)

// Configurable threshold defaults
const (
	// DefaultMaxLineLength is the line length limit for style analysis
	DefaultMaxLineLength = 120

	// DefaultMaxFunctionLines is the function span limit for complexity analysis
	DefaultMaxFunctionLines = 50
)

// Fixed thresholds, not exposed through configuration
const (
	// MaxFunctionParams is the parameter count limit for function definitions
	MaxFunctionParams = 5

	// MaxNestingDepth is the limit on nested conditional/loop constructs
	MaxNestingDepth = 3
)

// DefaultBatchPattern matches all entries during directory traversal
const DefaultBatchPattern = "**/*"
