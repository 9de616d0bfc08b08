package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/aireview/aireview/internal/config"
	"github.com/aireview/aireview/internal/constants"
)

func initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate an aireview configuration file",
		Long: `Generate an aireview configuration file with sensible defaults.

By default, creates ` + constants.ConfigFileName + ` in the current directory.
Use --interactive for a guided setup wizard.

Examples:
  # Create ` + constants.ConfigFileName + ` in current directory
  aireview init

  # Custom output path
  aireview init --config custom.json

  # Overwrite existing file
  aireview init --force

  # YAML instead of JSON
  aireview init --yaml

  # Interactive setup wizard
  aireview init --interactive
  aireview init -i`,
		RunE: runInit,
	}

	cmd.Flags().StringP("config", "c", constants.ConfigFileName,
		"Output path for the config file")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing config file")
	cmd.Flags().Bool("yaml", false,
		"Generate a YAML config file")
	cmd.Flags().BoolP("interactive", "i", false,
		"Interactive setup wizard")

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	force, _ := cmd.Flags().GetBool("force")
	asYAML, _ := cmd.Flags().GetBool("yaml")
	interactive, _ := cmd.Flags().GetBool("interactive")

	if asYAML && configPath == constants.ConfigFileName {
		configPath = ".aireview.yaml"
	}

	var cfg *config.Config
	if interactive {
		var err error
		cfg, configPath, err = runInteractiveSetup(configPath)
		if err != nil {
			return err
		}
	}

	if !force {
		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("%s already exists. Use --force to overwrite", configPath)
		}
	}

	dir := filepath.Dir(configPath)
	if dir != "." && dir != "" {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			return fmt.Errorf("directory does not exist: %s", dir)
		}
	}

	if err := writeConfigFile(cfg, configPath, asYAML); err != nil {
		return err
	}

	displayPath := configPath
	if absPath, err := filepath.Abs(configPath); err == nil {
		displayPath = absPath
	}
	fmt.Printf("Created %s\n", displayPath)
	fmt.Println("\nRun 'aireview .' to analyze your project.")

	return nil
}

// writeConfigFile writes the configuration. A nil cfg means the template
// defaults, written verbatim with their documentation.
func writeConfigFile(cfg *config.Config, path string, asYAML bool) error {
	if cfg != nil {
		return cfg.Save(path)
	}

	var content string
	if asYAML {
		rendered, err := config.GetYAMLConfigTemplate()
		if err != nil {
			return err
		}
		content = rendered
	} else {
		content = config.GetJSONConfigTemplate()
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func runInteractiveSetup(defaultConfigPath string) (*config.Config, string, error) {
	fmt.Println()
	fmt.Println("aireview Configuration Setup")
	fmt.Println("============================")
	fmt.Println()

	cfg := config.DefaultConfig()

	lineLength, err := promptThreshold("Maximum line length", cfg.MaxLineLength)
	if err != nil {
		return nil, "", err
	}
	cfg.MaxLineLength = lineLength

	functionLines, err := promptThreshold("Maximum function length (lines)", cfg.MaxFunctionLines)
	if err != nil {
		return nil, "", err
	}
	cfg.MaxFunctionLines = functionLines

	checkSets := []struct {
		Label  string
		Checks []string
	}{
		{"All checks (recommended)", []string{constants.CheckComplexity, constants.CheckStyle, constants.CheckSyntax}},
		{"Complexity and syntax only", []string{constants.CheckComplexity, constants.CheckSyntax}},
		{"Style only", []string{constants.CheckStyle}},
	}

	checkTemplates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "\U0001F449 {{ .Label | cyan }}",
		Inactive: "   {{ .Label | white }}",
		Selected: "\U00002705 {{ .Label | green }}",
	}

	checkPrompt := promptui.Select{
		Label:     "Which checks should run?",
		Items:     checkSets,
		Templates: checkTemplates,
	}

	checkIdx, _, err := checkPrompt.Run()
	if err != nil {
		return nil, "", fmt.Errorf("check selection cancelled: %w", err)
	}
	cfg.EnabledChecks = checkSets[checkIdx].Checks

	fmt.Println()

	outputPrompt := promptui.Prompt{
		Label:   "Output file path",
		Default: defaultConfigPath,
	}

	outputPath, err := outputPrompt.Run()
	if err != nil {
		return nil, "", fmt.Errorf("output path input cancelled: %w", err)
	}
	if outputPath == "" {
		outputPath = defaultConfigPath
	}

	fmt.Println()
	fmt.Printf("Creating %s... ", outputPath)

	return cfg, outputPath, nil
}

func promptThreshold(label string, defaultValue int) (int, error) {
	prompt := promptui.Prompt{
		Label:   label,
		Default: strconv.Itoa(defaultValue),
		Validate: func(input string) error {
			value, err := strconv.Atoi(input)
			if err != nil {
				return fmt.Errorf("must be a number")
			}
			if value < 1 {
				return fmt.Errorf("must be >= 1")
			}
			return nil
		},
	}

	answer, err := prompt.Run()
	if err != nil {
		return 0, fmt.Errorf("%s input cancelled: %w", label, err)
	}
	return strconv.Atoi(answer)
}
