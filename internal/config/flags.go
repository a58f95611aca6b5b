package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into artifact, timing, display, and utility.
// Negated flags (e.g. --no-table) are applied after Parse so Config defaults
// hold unless the user passes the flag.

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// ParseFlags parses os.Args into cfg. On --help or --version it prints and
// exits. On error it returns non-nil (e.g. unknown flag, too many positional
// args).
func ParseFlags(cfg *Config, version string) error {
	fs := flag.NewFlagSet("nodeprobe", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs, version) }

	// Negated/override flags: we capture bools then apply to cfg after Parse,
	// so that defaults from DefaultConfig() hold unless the user passes the flag.
	var negated negatedFlags

	defineArtifactFlags(fs, cfg, &negated)
	defineTimingFlags(fs, cfg, &negated)
	defineDisplayFlags(fs, cfg, &negated)
	defineUtilityFlags(fs, &negated)

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	applyNegatedFlags(cfg, &negated)
	cfg.OutputDir = NormalizeDirArg(cfg.OutputDir)

	if negated.showHelp {
		printUsage(fs, version)
		os.Exit(0)
	}
	if negated.showVersion {
		fmt.Fprintln(os.Stdout, "nodeprobe v"+version)
		os.Exit(0)
	}

	return parsePositionalArgs(fs, cfg)
}

// negatedFlags holds boolean flags that are applied after Parse.
// These either invert a default (e.g. noTable -> TableEnabled=false) or
// trigger exit (showHelp, showVersion).
type negatedFlags struct {
	noTable     bool
	noWait      bool
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineArtifactFlags registers -o/--output-dir, --rows, --format, --no-table.
func defineArtifactFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.StringVar(&cfg.OutputDir, "output-dir", cfg.OutputDir, "Artifact output directory")
	fs.StringVar(&cfg.OutputDir, "o", cfg.OutputDir, "Same as --output-dir")
	fs.IntVar(&cfg.Rows, "rows", cfg.Rows, "Artifact row count")
	fs.Var(&formatValue{&cfg.Format}, "format", "Artifact format: auto | feather | csv")
	fs.BoolVar(&n.noTable, "no-table", false, "Skip artifact generation entirely")
}

// defineTimingFlags registers -t/--target and --no-wait.
func defineTimingFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.DurationVar(&cfg.Target, "target", cfg.Target, "Target wall-clock duration (e.g. 30s, 3m)")
	fs.DurationVar(&cfg.Target, "t", cfg.Target, "Same as --target")
	fs.BoolVar(&n.noWait, "no-wait", false, "Skip the terminal idle-wait")
}

// defineDisplayFlags registers --color, --no-color, verbose, --check, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run system diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
}

// defineUtilityFlags registers --version and --help (exit after printing).
func defineUtilityFlags(fs *flag.FlagSet, n *negatedFlags) {
	fs.BoolVar(&n.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&n.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&n.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&n.showHelp, "h", false, "Same as --help")
}

// applyNegatedFlags copies negated flag values into cfg (e.g. noTable -> TableEnabled=false).
func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	if n.noTable {
		cfg.TableEnabled = false
	}
	if n.noWait {
		cfg.Wait = false
	}
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// parsePositionalArgs resolves RunID from the single optional positional arg.
// Any string is accepted; when absent the env/literal fallback chain applies.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	if len(args) > 1 {
		return fmt.Errorf("at most one positional argument (run-id) expected, got %d", len(args))
	}
	arg := ""
	if len(args) == 1 {
		arg = args[0]
	}
	cfg.RunID = ResolveRunID(arg)
	return nil
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(fs *flag.FlagSet, version string) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "nodeprobe v" + version + " — cluster node environment probe"},
		{"", ""},
		{"  nodeprobe [OPTIONS] [run-id]", ""},
		{"", ""},
		{"", "run-id defaults to $" + RunIDEnvVar + ", then \"" + DefaultRunID + "\"."},
		{"", ""},
		{"Artifact", ""},
		{"  -o, --output-dir <dir>", "Artifact output directory (default: probe-output)"},
		{"  --rows <n>", "Artifact row count (default: 100)"},
		{"  --format <auto|feather|csv>", "Artifact format (default: auto)"},
		{"  --no-table", "Skip artifact generation entirely"},
		{"", ""},
		{"Timing", ""},
		{"  -t, --target <dur>", "Target wall-clock duration (default: 30s)"},
		{"  --no-wait", "Skip the terminal idle-wait"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "System diagnostics (pip3, /etc/issue, meminfo, output dir)"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}

// flag.Value adapter so we can use the FormatMode enum with flag.Var.

type formatValue struct{ p *FormatMode }

func (f *formatValue) String() string {
	if f.p == nil {
		return ""
	}
	return string(*f.p)
}

func (f *formatValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "auto":
		*f.p = FormatAuto
	case "feather":
		*f.p = FormatFeather
	case "csv":
		*f.p = FormatCSV
	default:
		return fmt.Errorf("invalid format %q (use 'auto', 'feather' or 'csv')", s)
	}
	return nil
}
