// Command nodeprobe is the CLI entrypoint for the cluster node environment
// probe.
//
// It parses flags, validates configuration, and either runs system
// diagnostics (--check) or the probe pipeline: report the host environment,
// optionally persist the random-data artifact, then idle until the
// wall-clock target is reached.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/backmassage/nodeprobe/internal/check"
	"github.com/backmassage/nodeprobe/internal/config"
	"github.com/backmassage/nodeprobe/internal/display"
	"github.com/backmassage/nodeprobe/internal/logging"
	"github.com/backmassage/nodeprobe/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
// When built with plain "go build" these retain their defaults.
var (
	version = "1.2.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// The wall-clock target is measured from process start, not from when
	// the pipeline begins, so capture it first.
	start := time.Now()

	// Phase 1: Bootstrap — the logger doesn't exist yet, so errors go
	// directly to stderr via fmt. Once NewLogger succeeds, all output
	// goes through the logger for consistent formatting and log-file capture.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, version); err != nil {
		fmt.Fprintf(os.Stderr, "nodeprobe: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "nodeprobe: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nodeprobe: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available — all output goes through log from here on.
	display.PrintBanner()

	if cfg.CheckOnly {
		if !check.RunCheck(&cfg, log) {
			return 1
		}
		return 0
	}

	log.Info("=== nodeprobe v%s (%s) ===", version, commit)
	log.Info("Run ID: %s", cfg.RunID)
	log.Debug(cfg.Verbose, "Target: %s, format: %s, rows: %d", cfg.Target, cfg.Format, cfg.Rows)
	log.Info("")

	// Fail fast if the artifact directory cannot be written.
	if err := check.CheckDeps(&cfg); err != nil {
		log.Error("%v", err)
		return 1
	}

	// Phase 3: Signal handling — cancel context on SIGINT/SIGTERM so the
	// idle-wait ends early instead of holding the allocation.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, cutting the idle-wait short…")
		cancel()
	}()

	// Phase 4: Run the probe sequence.
	if _, err := pipeline.Run(ctx, &cfg, log, start); err != nil {
		log.Error("%v", err)
		return 1
	}
	return 0
}
