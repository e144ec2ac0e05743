package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "satlens"

	// DefaultDuplicatePolicy resolves duplicate block kinds in a run record
	// by keeping the first occurrence. Solver logs are written front to
	// back, so the first block is the one the solver emitted first.
	DefaultDuplicatePolicy = "first"
)

// Config holds all configuration options for satlens.
// This struct is designed to be populated from CLI flags and passed through
// the application via dependency injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// (e.g., LoadConfig, ReportConfig) for simplicity. The number of options
// is manageable, and nesting would add complexity without significant benefit.
// If the configuration grows significantly, consider refactoring into sub-structs.
type Config struct {
	// Inputs is the list of run record files to summarize.
	// Each file holds one structured solver run record (JSON or YAML).
	// When empty, the record is read from standard input.
	Inputs []string

	// JSONReport enables JSON report output instead of human-readable format.
	// When true, outputs the assembled report as machine-readable JSON.
	// When false, outputs a human-readable simple report (default).
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of human-readable format.
	// When true, outputs GitHub Flavored Markdown with tables, alerts, and charts.
	// When false, outputs a human-readable simple report (default).
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	// Directories are created automatically if they don't exist.
	ReportFile string

	// DuplicatePolicy selects how duplicate block kinds in a run record are
	// resolved. One of "first", "last", or "reject".
	DuplicatePolicy string

	// Verbose enables detailed log output using slog.LevelDebug and adds
	// the help text under each metric in the simple report.
	// When false, only warnings and errors are logged.
	Verbose bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .satlens in the current directory
	// and then in the user's home directory.
	ConfigFilePath string

	// FileDefaults holds defaults loaded from the config file.
	// This is populated by LoadConfigFile and applied before CLI flags.
	FileDefaults *File
}

// NewConfig creates a new Config with default values.
// All fields are set to safe, sensible defaults that work for most use cases.
// Users can override specific values after creation.
//
// Design decision: We use a constructor function instead of relying on
// zero values because some defaults are non-zero (the duplicate policy).
// This also serves as documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		DuplicatePolicy: DefaultDuplicatePolicy,
	}
}

// XDGDataDir returns the XDG data directory for satlens.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.local/share/satlens
// On macOS: ~/Library/Application Support/satlens
// On Windows: %LOCALAPPDATA%\satlens
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for satlens.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.config/satlens
// On macOS: ~/Library/Application Support/satlens
// On Windows: %APPDATA%\satlens
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// Design decision: We validate at the config level rather than at each
// point of use to fail fast and provide clear error messages upfront.
// This is called once after CLI parsing, before any input is read.
//
// We chose to return the first error found rather than collecting all errors
// because fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	// JSONReport and MarkdownReport are mutually exclusive
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	switch c.DuplicatePolicy {
	case "first", "last", "reject":
	default:
		return ErrInvalidDuplicatePolicy
	}

	return nil
}

// ApplyFileDefaults fills unset options from the loaded config file.
// CLI flags take precedence, so only zero-valued fields are overwritten.
func (c *Config) ApplyFileDefaults() {
	if c.FileDefaults == nil {
		return
	}

	d := c.FileDefaults.Defaults
	if !c.JSONReport && !c.MarkdownReport {
		switch d.Format {
		case "json":
			c.JSONReport = true
		case "markdown":
			c.MarkdownReport = true
		}
	}
	if c.DuplicatePolicy == DefaultDuplicatePolicy && d.DuplicatePolicy != "" {
		c.DuplicatePolicy = d.DuplicatePolicy
	}
	if !c.Verbose {
		c.Verbose = d.Verbose
	}
	if c.ReportFile == "" {
		c.ReportFile = d.Output
	}
}
