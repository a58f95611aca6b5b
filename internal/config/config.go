// Package config holds runtime configuration: defaults, CLI flag parsing, and
// validation. The Config is built once in main and passed (by pointer) to the
// packages that need it; there is no package-level runtime state.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// --- Enum types for validated string fields ---

// FormatMode selects the artifact file format.
type FormatMode string

const (
	FormatAuto    FormatMode = "auto"    // Resolve at startup (default; currently feather).
	FormatFeather FormatMode = "feather" // Arrow IPC file (Feather v2).
	FormatCSV     FormatMode = "csv"     // Delimited text fallback.
)

// Resolved maps FormatAuto to the concrete format used for writing.
// The Arrow writer is always compiled in, so auto resolves to feather.
func (m FormatMode) Resolved() FormatMode {
	if m == FormatAuto {
		return FormatFeather
	}
	return m
}

// Ext returns the artifact file extension (without dot) for the format.
func (m FormatMode) Ext() string {
	if m.Resolved() == FormatCSV {
		return "csv"
	}
	return "feather"
}

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Run identifier resolution constants.
const (
	// RunIDEnvVar is consulted when no positional run-id argument is given.
	// SLURM exports it for every job.
	RunIDEnvVar = "SLURM_JOB_ID"

	// DefaultRunID is the literal fallback outside any scheduler.
	DefaultRunID = "local"
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by [ParseFlags] before being passed to the packages that need
// it. Fields are grouped by concern.
type Config struct {
	// Run identity.
	RunID string // Resolved via positional arg -> $SLURM_JOB_ID -> "local".

	// Artifact settings.
	OutputDir    string     // Default: "probe-output".
	Rows         int        // Default: 100.
	Format       FormatMode // Default: "auto" (feather).
	TableEnabled bool       // Default: true. Cleared by --no-table.

	// Idle-wait settings.
	Target time.Duration // Default: 30s. Wall-clock target for the whole run.
	Wait   bool          // Default: true. Cleared by --no-wait.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with defaults matching the legacy probe
// script (30s wall-clock target, 100-row table). Used as the base before
// [ParseFlags] applies CLI overrides.
func DefaultConfig() Config {
	return Config{
		OutputDir:    "probe-output",
		Rows:         100,
		Format:       FormatAuto,
		TableEnabled: true,
		Target:       30 * time.Second,
		Wait:         true,
		Verbose:      false,
		ColorMode:    ColorAuto,
		CheckOnly:    false,
	}
}

// ResolveRunID implements the run-identifier fallback chain: the positional
// argument when given, else $SLURM_JOB_ID, else the literal default.
// No validation is applied; any non-empty string is accepted as-is.
func ResolveRunID(arg string) string {
	if arg != "" {
		return arg
	}
	if id := strings.TrimSpace(os.Getenv(RunIDEnvVar)); id != "" {
		return id
	}
	return DefaultRunID
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks that enum fields hold valid values and that numeric
// settings are in range.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatAuto, FormatFeather, FormatCSV:
		// valid
	default:
		return errors.New("invalid format (use 'auto', 'feather' or 'csv')")
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.Rows <= 0 {
		return fmt.Errorf("rows must be positive (got %d)", c.Rows)
	}
	if c.Target < 0 {
		return fmt.Errorf("target duration must not be negative (got %s)", c.Target)
	}
	if c.OutputDir == "" {
		return errors.New("output directory must not be empty")
	}
	return nil
}
