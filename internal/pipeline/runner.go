// Package pipeline orchestrates a probe run: snapshot, report, optional
// artifact, terminal idle-wait, final elapsed line. One linear sequence,
// no retries.
package pipeline

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/backmassage/nodeprobe/internal/artifact"
	"github.com/backmassage/nodeprobe/internal/config"
	"github.com/backmassage/nodeprobe/internal/logging"
	"github.com/backmassage/nodeprobe/internal/probe"
	"github.com/backmassage/nodeprobe/internal/report"
	"github.com/backmassage/nodeprobe/internal/table"
)

// Run executes the full probe sequence and returns aggregate stats.
// start is the process start time; the idle-wait pads wall-clock time
// measured from there, not from when Run was entered.
//
// Two paths are fatal and return an error: an unparsable core-count env
// var and an artifact write failure. Everything else degrades in place.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger, start time.Time) (RunStats, error) {
	return run(ctx, cfg, log, start, os.Stdout)
}

// run is the testable body of Run; the report goes to w.
func run(ctx context.Context, cfg *config.Config, log *logging.Logger, start time.Time, w io.Writer) (RunStats, error) {
	var stats RunStats
	rend := report.New(w)

	// --- Snapshot (the one step that can fail hard) ---
	log.Debug(cfg.Verbose, "Collecting environment snapshot")
	snap, err := probe.Collect(ctx)
	if err != nil {
		return stats, err
	}
	log.Debug(cfg.Verbose, "Core count via %s, memory via %s", snap.CoresSource, snap.MemorySource)

	// --- Report sections ---
	rend.Environment(snap)
	rend.Runtime(snap)
	rend.OSBanner(snap)
	rend.Packages(snap)

	// --- Optional artifact ---
	backend := table.Select(cfg.TableEnabled)
	if err := writeArtifact(cfg, log, rend, backend, &stats); err != nil {
		return stats, err
	}

	// --- Idle until the wall-clock target ---
	if cfg.Wait {
		remaining := idleDuration(cfg.Target, time.Since(start))
		if remaining > 0 {
			rend.IdleNotice(remaining, cfg.Target)
			stats.Idled = sleepCtx(ctx, remaining)
		}
	}

	stats.Elapsed = time.Since(start)
	rend.TotalRuntime(stats.Elapsed)
	return stats, nil
}

// writeArtifact drives the numeric backend and persistence. A disabled
// backend yields a skip notice; a write failure is fatal.
func writeArtifact(cfg *config.Config, log *logging.Logger, rend *report.Renderer, backend table.Backend, stats *RunStats) error {
	tbl, err := backend.Generate(cfg.Rows)
	if errors.Is(err, table.ErrDisabled) {
		rend.ArtifactSkipped()
		return nil
	}
	if err != nil {
		return err
	}

	format := cfg.Format.Resolved()
	path := artifact.Path(cfg.OutputDir, cfg.RunID, format)
	if err := artifact.Write(tbl, path, format); err != nil {
		return err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	var size int64
	if fi, err := os.Stat(path); err == nil {
		size = fi.Size()
	}

	stats.TableRows = tbl.Rows()
	stats.ArtifactPath = abs
	stats.ArtifactBytes = size

	rend.ArtifactWritten(abs, size)
	log.Success("Artifact written: %s", abs)
	return nil
}
