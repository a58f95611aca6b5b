// Package check provides system diagnostics (--check mode) and pre-run
// dependency validation (CheckDeps) for the probe: pip3, the OS metadata
// files, and the artifact output directory.
package check

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/backmassage/nodeprobe/internal/config"
	"github.com/backmassage/nodeprobe/internal/probe"
)

// Sentinel errors returned by CheckDeps.
var (
	ErrOutputDirNotWritable = errors.New("artifact output directory is not writable")
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// RunCheck runs the interactive --check flow: pip3 availability, memory
// sources, /etc/issue, and output directory writability. Informational
// findings are warnings; only an unwritable output directory (while the
// table is enabled) counts as a failure. Returns false when a hard check
// failed.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== System Check ===")

	checkPip3(log)
	checkMemorySources(log)
	checkIssueFile(log)

	ok := true
	if cfg.TableEnabled {
		if err := checkOutputDir(cfg.OutputDir); err != nil {
			log.Error("Output directory %s: %v", cfg.OutputDir, err)
			ok = false
		} else {
			log.Success("Output directory writable: %s", cfg.OutputDir)
		}
	} else {
		log.Info("Table generation disabled; output directory not checked")
	}
	return ok
}

// checkPip3 verifies pip3 is on PATH and logs its version string. A missing
// pip3 is a warning only: the package-listing step degrades to a placeholder.
func checkPip3(log Logger) {
	if _, err := exec.LookPath("pip3"); err != nil {
		log.Warn("pip3 not found (package listing will report the failure)")
		return
	}
	out, err := exec.Command("pip3", "--version").Output()
	if err != nil {
		log.Warn("pip3 found but --version failed: %v", err)
		return
	}
	log.Success("pip3: %s", strings.TrimSpace(string(out)))
}

// checkMemorySources reports which memory source answers on this host.
func checkMemorySources(log Logger) {
	gib, src, known := probe.MemoryGiB()
	if !known {
		log.Warn("No memory source available (report will print 'unknown')")
		return
	}
	log.Success("Memory: %.2f GiB (via %s)", gib, src)
}

// checkIssueFile reports whether /etc/issue is readable; the probe handles
// both absence and unreadability, so this is informational.
func checkIssueFile(log Logger) {
	banner := probe.OSBanner()
	if strings.HasPrefix(banner, "(") {
		log.Warn("/etc/issue: %s", banner)
		return
	}
	first := banner
	if idx := strings.Index(first, "\n"); idx > 0 {
		first = first[:idx]
	}
	log.Success("/etc/issue: %s", first)
}

// checkOutputDir creates the directory if missing and verifies a file can
// be created inside it.
func checkOutputDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, ".probe-check-")
	if err != nil {
		return err
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}

// CheckDeps is the pre-run validation: when the table is enabled, the
// output directory must be creatable and writable before the probe starts.
// Returns a sentinel-wrapped error on failure.
func CheckDeps(cfg *config.Config) error {
	if !cfg.TableEnabled {
		return nil
	}
	if err := checkOutputDir(cfg.OutputDir); err != nil {
		return fmt.Errorf("%w: %v", ErrOutputDirNotWritable, err)
	}
	return nil
}
