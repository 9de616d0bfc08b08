package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aireview/aireview/domain"
	"github.com/aireview/aireview/internal/constants"
	"github.com/aireview/aireview/service"
)

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aireview <path>",
		Short: "aireview - static code review and analysis tool",
		Long: `aireview scans source files for style and complexity issues and renders
the findings as text, JSON, or HTML reports.

A directory argument (or --batch) analyzes every supported file beneath it;
a file argument produces a single-file report.

Examples:
  # Analyze a single file
  aireview main.py

  # Analyze a directory and write an HTML report
  aireview ./src --format html --output report.html

  # Batch analysis restricted to Python files
  aireview ./src --batch --pattern "**/*.py"`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         runAnalyze,
	}

	cmd.Flags().StringP("format", "f", constants.OutputFormatText, "Output format: text, json, or html")
	cmd.Flags().StringP("output", "o", "", "Write the report to a file instead of stdout")
	cmd.Flags().BoolP("batch", "b", false, "Force batch mode (path must be a directory)")
	cmd.Flags().StringP("pattern", "p", constants.DefaultBatchPattern, "Glob pattern for batch file selection")
	cmd.Flags().StringP("config", "c", "", "Path to a configuration file")
	cmd.Flags().Bool("no-progress", false, "Disable the progress bar")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	target := args[0]
	format, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")
	batch, _ := cmd.Flags().GetBool("batch")
	pattern, _ := cmd.Flags().GetString("pattern")
	configPath, _ := cmd.Flags().GetString("config")
	noProgress, _ := cmd.Flags().GetBool("no-progress")

	info, err := os.Stat(target)
	if err != nil {
		return domain.NewFileNotFoundError(target, err)
	}

	if batch && !info.IsDir() {
		return domain.NewInvalidInputError("--batch requires a directory path", nil)
	}

	cfg := service.NewConfigLoader().LoadForPath(configPath, target)
	analyzer := service.NewAnalyzerService(cfg)
	reports := service.NewReportService()

	var rendered string
	if info.IsDir() || batch {
		rendered, err = runBatchAnalysis(cmd, analyzer, reports, target, pattern, format, noProgress)
	} else {
		rendered, err = reports.GenerateReport(target, analyzer.AnalyzeFile(target), domain.OutputFormat(format))
	}
	if err != nil {
		return err
	}

	return writeReport(rendered, output)
}

func runBatchAnalysis(cmd *cobra.Command, analyzer domain.FileAnalyzer, reports domain.ReportGenerator, target, pattern, format string, noProgress bool) (string, error) {
	progress := service.NewProgressManager(!noProgress)
	defer progress.Close()

	runner := service.NewBatchService(analyzer, progress)
	results, err := runner.AnalyzeDirectory(cmd.Context(), target, pattern, true)
	if err != nil {
		return "", err
	}

	return reports.GenerateSummaryReport(results, domain.OutputFormat(format))
}

// writeReport sends the rendered report to the output file or stdout
func writeReport(rendered, output string) error {
	if output == "" {
		fmt.Println(rendered)
		return nil
	}
	if err := os.WriteFile(output, []byte(rendered+"\n"), 0644); err != nil {
		return domain.NewOutputError(fmt.Sprintf("failed to write report to %s", output), err)
	}
	fmt.Printf("Report written to %s\n", output)
	return nil
}
