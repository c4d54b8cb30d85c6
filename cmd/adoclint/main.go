// Package main provides the CLI entry point for adoclint.
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/smykla-skalski/adoclint/internal/color"
	internalconfig "github.com/smykla-skalski/adoclint/internal/config"
	"github.com/smykla-skalski/adoclint/internal/engine"
	"github.com/smykla-skalski/adoclint/internal/parser"
	"github.com/smykla-skalski/adoclint/internal/report"
	"github.com/smykla-skalski/adoclint/pkg/config"
	"github.com/smykla-skalski/adoclint/pkg/logger"
)

const (
	// ExitCodeOK indicates the run completed below the failure threshold.
	ExitCodeOK = 0

	// ExitCodeFindings indicates findings at or above the failure
	// threshold.
	ExitCodeFindings = 1

	// ExitCodeError indicates the run itself failed.
	ExitCodeError = 2
)

// ErrNoInput is returned when no document paths match the arguments.
var ErrNoInput = errors.New("no input files matched")

var (
	configPath  string
	formatFlag  string
	failOnFlag  string
	debugMode   bool
	noColorFlag bool
	maxWorkers  int
)

func main() {
	os.Exit(mainWithExitCode())
}

func mainWithExitCode() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		return ExitCodeError
	}

	if rootFailed {
		return ExitCodeFindings
	}

	return ExitCodeOK
}

// rootFailed records whether findings reached the failure threshold. Kept
// separate from the cobra error path so usage errors and validation
// findings get distinct exit codes.
var rootFailed bool

var rootCmd = &cobra.Command{
	Use:   "adoclint [flags] <file|glob>...",
	Short: "Structural validator for AsciiDoc documents",
	Long: `adoclint validates the structure of AsciiDoc documents against a
configurable rule set: required sections and their order, block occurrence
bounds, and per-block content rules.`,
	Args: cobra.MinimumNArgs(1),
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		checkVersionFlag()
	},
	RunE:              run,
	SilenceUsage:      true,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
}

func init() {
	rootCmd.Flags().StringVarP(
		&configPath,
		"config",
		"c",
		"",
		"Path to configuration file (default: .adoclint.yaml or adoclint.yaml)",
	)
	rootCmd.Flags().StringVarP(
		&formatFlag,
		"format",
		"f",
		"",
		"Output format: text or json",
	)
	rootCmd.Flags().StringVar(
		&failOnFlag,
		"fail-on",
		"",
		"Lowest severity that fails the run: info, warning, or error",
	)
	rootCmd.Flags().IntVar(
		&maxWorkers,
		"workers",
		0,
		"Maximum documents validated in parallel (default: CPU count)",
	)
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	rootCmd.PersistentFlags().BoolVar(
		&noColorFlag,
		"no-color",
		false,
		"Disable colored output",
	)
}

func run(cmd *cobra.Command, args []string) error {
	log := logger.NewWriterLogger(os.Stderr, debugMode)

	cfg, err := loadConfig()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	paths, err := expandArgs(args)
	if err != nil {
		return err
	}

	log.Debug("inputs resolved", "count", len(paths))

	runner := engine.NewRunner(
		engine.New(cfg, log),
		parser.NewParser(log),
		log,
		maxWorkers,
	)

	result := runner.Run(cmd.Context(), paths)

	theme := color.NewTheme(color.Profile(noColorFlag) && color.IsTerminal(os.Stdout))

	reporter, err := report.New(cfg.Output.Format, theme)
	if err != nil {
		return err
	}

	if err := reporter.Render(os.Stdout, result); err != nil {
		return errors.Wrap(err, "failed to render report")
	}

	rootFailed = result.HasAtLeast(cfg.Output.FailThreshold())

	return nil
}

// loadConfig loads configuration with CLI flags as the top layer.
func loadConfig() (*config.Config, error) {
	loader, err := internalconfig.NewKoanfLoader()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create config loader")
	}

	return loader.Load(configPath, buildFlagsMap())
}

// buildFlagsMap converts CLI flags to a map for the config provider.
func buildFlagsMap() map[string]any {
	flags := make(map[string]any)

	if formatFlag != "" {
		flags["format"] = formatFlag
	}

	if failOnFlag != "" {
		flags["fail-on"] = failOnFlag
	}

	return flags
}

// expandArgs resolves file paths and doublestar globs into a sorted,
// de-duplicated path list. A literal path that does not exist is kept so
// the runner reports it as a finding.
func expandArgs(args []string) ([]string, error) {
	seen := make(map[string]bool)

	var paths []string

	add := func(path string) {
		if !seen[path] {
			seen[path] = true

			paths = append(paths, path)
		}
	}

	for _, arg := range args {
		if !strings.ContainsAny(arg, "*?[{") {
			add(arg)
			continue
		}

		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid glob %q", arg)
		}

		sort.Strings(matches)

		for _, match := range matches {
			add(match)
		}
	}

	if len(paths) == 0 {
		return nil, ErrNoInput
	}

	return paths, nil
}
