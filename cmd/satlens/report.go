package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/satlens/satlens/internal/config"
	"github.com/satlens/satlens/internal/loader"
	"github.com/satlens/satlens/internal/log"
	"github.com/satlens/satlens/internal/model"
	"github.com/satlens/satlens/internal/report"
	"github.com/satlens/satlens/internal/summary"
)

// NewReportCmd creates the report command.
func NewReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [run-record...]",
		Short: "Summarize CP-SAT solver run records",
		Long: `Report reads structured CP-SAT solver run records and renders a summary:
solver version and workers, final status, timing, model size, objective
bounds, the optimality gap, and the search progression over time.

Records are JSON or YAML files; the format is chosen by file extension
(.yaml/.yml for YAML, everything else JSON). With no arguments, a JSON
record is read from stdin.

Examples:
  # Summarize a single run record
  satlens report run.json

  # Summarize several records in one invocation
  satlens report mon.json tue.json wed.json

  # Markdown report written to a file
  satlens report --markdown --output report.md run.yaml

  # Read a record from stdin
  cat run.json | satlens report

  # Treat duplicate block kinds as an error
  satlens report --duplicate-policy reject run.json

Configuration file (.satlens) example:
  defaults:
    format: markdown
    duplicatePolicy: first
    verbose: true`,
		Args: cobra.ArbitraryArgs,
		RunE: runReportCmd,
	}

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	// Assembly flags
	cmd.Flags().StringP("duplicate-policy", "d", config.DefaultDuplicatePolicy,
		"Resolution for duplicate block kinds: first, last, or reject")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .satlens in current or home directory)")

	return cmd
}

// runReportCmd executes the report command.
func runReportCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging
	logger := log.NewTrimLogger(cmd.ErrOrStderr(), cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			logger.Info("received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return runReport(ctx, cmd, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.DuplicatePolicy, err = cmd.Flags().GetString("duplicate-policy")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)

	// Load defaults from config file.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently skip when no file is found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cfg.FileDefaults, err = config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}
	cfg.ApplyFileDefaults()

	// Positional arguments are input run record files
	cfg.Inputs = args

	return cfg, nil
}

// runReport loads each run record, assembles the summary, and writes it out.
func runReport(ctx context.Context, cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) error {
	policy, err := summary.ParseDuplicatePolicy(cfg.DuplicatePolicy)
	if err != nil {
		return err
	}

	assembler := summary.NewAssembler(
		summary.WithPolicy(policy),
		summary.WithLogger(logger),
	)

	output, closeOutput, err := openOutput(cmd, cfg)
	if err != nil {
		return err
	}
	defer closeOutput()

	writer := newWriter(output, cfg)

	logs, err := loadInputs(cmd, cfg)
	if err != nil {
		return err
	}

	for _, entry := range logs {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		rep, err := assembler.Assemble(ctx, entry.log)
		if err != nil {
			var serr *summary.StructuralError
			if errors.As(err, &serr) {
				return fmt.Errorf("%s: %w (the record looks cut off; re-export the full solver run)", entry.name, err)
			}
			return fmt.Errorf("%s: %w", entry.name, err)
		}

		if _, err := writer.Write(rep); err != nil {
			return fmt.Errorf("%s: failed to write report: %w", entry.name, err)
		}

		logger.Debug("report written", "input", entry.name)
	}

	return nil
}

// namedLog pairs a decoded run record with its source name for error messages.
type namedLog struct {
	name string
	log  *model.Log
}

// loadInputs reads all run records from the configured inputs or stdin.
func loadInputs(cmd *cobra.Command, cfg *config.Config) ([]namedLog, error) {
	if len(cfg.Inputs) == 0 {
		decoded, err := loader.Decode(cmd.InOrStdin(), loader.FormatJSON)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		return []namedLog{{name: "stdin", log: decoded}}, nil
	}

	logs := make([]namedLog, 0, len(cfg.Inputs))
	for _, path := range cfg.Inputs {
		decoded, err := loader.Load(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		logs = append(logs, namedLog{name: path, log: decoded})
	}
	return logs, nil
}

// openOutput returns the report destination and a close function.
func openOutput(cmd *cobra.Command, cfg *config.Config) (io.Writer, func(), error) {
	if cfg.ReportFile == "" {
		return cmd.OutOrStdout(), func() {}, nil
	}

	// Create directories if they don't exist
	dir := filepath.Dir(cfg.ReportFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// newWriter picks the report writer for the requested format.
func newWriter(output io.Writer, cfg *config.Config) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewFullJSONWriter(output, getVersion(), report.WithPrettyPrint())
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(output)
	default:
		return report.NewSimpleWriter(output, report.WithVerbose(cfg.Verbose))
	}
}
