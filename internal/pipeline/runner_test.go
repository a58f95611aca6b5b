package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/backmassage/nodeprobe/internal/config"
	"github.com/backmassage/nodeprobe/internal/logging"
)

// testConfig returns a fast, quiet config writing under dir.
func testConfig(t *testing.T, dir string) config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.RunID = "itest"
	cfg.OutputDir = dir
	cfg.Wait = false
	cfg.ColorMode = config.ColorNever
	return cfg
}

// testLogger builds a logger without a file sink.
func testLogger(t *testing.T, cfg *config.Config) *logging.Logger {
	t.Helper()
	log, err := logging.NewLogger(cfg)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { log.Close() })
	return log
}

// pinCoreEnv makes the core-count lookup deterministic for the run tests.
func pinCoreEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SLURM_CPUS_ON_NODE", "4")
	t.Setenv("SLURM_CPUS_PER_TASK", "")
	t.Setenv("SLURM_NPROCS", "")
}

func TestRun_WritesArtifactAndReport(t *testing.T) {
	pinCoreEnv(t)
	dir := filepath.Join(t.TempDir(), "out")
	cfg := testConfig(t, dir)
	log := testLogger(t, &cfg)

	var buf bytes.Buffer
	stats, err := run(context.Background(), &cfg, log, time.Now(), &buf)
	if err != nil {
		t.Fatalf("run() unexpected error: %v", err)
	}

	if stats.TableRows != 100 {
		t.Errorf("TableRows = %d, want 100", stats.TableRows)
	}
	wantName := "random_table_itest.feather"
	if filepath.Base(stats.ArtifactPath) != wantName {
		t.Errorf("ArtifactPath = %q, want basename %q", stats.ArtifactPath, wantName)
	}
	if !filepath.IsAbs(stats.ArtifactPath) {
		t.Errorf("ArtifactPath = %q, want an absolute path", stats.ArtifactPath)
	}
	if _, err := os.Stat(stats.ArtifactPath); err != nil {
		t.Errorf("artifact not on disk: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"# SLURM environment probe",
		": 4", // the pinned core count
		"# Go runtime",
		"# /etc/issue contents",
		"# Python packages (pip3 list)",
		wantName,
		"Done. Total runtime:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestRun_DisabledBackendSkips(t *testing.T) {
	pinCoreEnv(t)
	dir := filepath.Join(t.TempDir(), "out")
	cfg := testConfig(t, dir)
	cfg.TableEnabled = false
	log := testLogger(t, &cfg)

	var buf bytes.Buffer
	stats, err := run(context.Background(), &cfg, log, time.Now(), &buf)
	if err != nil {
		t.Fatalf("run() unexpected error: %v", err)
	}

	if stats.ArtifactPath != "" {
		t.Errorf("ArtifactPath = %q, want empty when backend disabled", stats.ArtifactPath)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("output directory should not be created when backend disabled")
	}
	if !strings.Contains(buf.String(), "skipping random table") {
		t.Error("report missing the skip notice")
	}
}

func TestRun_DeterministicArtifactName(t *testing.T) {
	pinCoreEnv(t)
	dir := filepath.Join(t.TempDir(), "out")
	cfg := testConfig(t, dir)
	cfg.Format = config.FormatCSV
	log := testLogger(t, &cfg)

	var first, second string
	for i, dst := range []*string{&first, &second} {
		var buf bytes.Buffer
		stats, err := run(context.Background(), &cfg, log, time.Now(), &buf)
		if err != nil {
			t.Fatalf("run() attempt %d: %v", i+1, err)
		}
		*dst = stats.ArtifactPath
	}

	if first != second {
		t.Errorf("artifact names differ across runs: %q vs %q", first, second)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("output dir has %d entries, want 1 (same name, overwritten)", len(entries))
	}
}

func TestRun_NoIdleWhenTargetExceeded(t *testing.T) {
	pinCoreEnv(t)
	cfg := testConfig(t, filepath.Join(t.TempDir(), "out"))
	cfg.Wait = true
	cfg.Target = 0 // already exceeded the instant the run starts

	log := testLogger(t, &cfg)

	var buf bytes.Buffer
	stats, err := run(context.Background(), &cfg, log, time.Now(), &buf)
	if err != nil {
		t.Fatalf("run() unexpected error: %v", err)
	}

	if stats.Idled != 0 {
		t.Errorf("Idled = %s, want 0 when the target is already met", stats.Idled)
	}
	if strings.Contains(buf.String(), "Idling for") {
		t.Error("idle notice printed even though no wait was needed")
	}
}

func TestRun_IdlePadsToTarget(t *testing.T) {
	pinCoreEnv(t)
	cfg := testConfig(t, filepath.Join(t.TempDir(), "out"))
	cfg.TableEnabled = false
	cfg.Wait = true
	cfg.Target = 150 * time.Millisecond

	log := testLogger(t, &cfg)
	start := time.Now()

	var buf bytes.Buffer
	stats, err := run(context.Background(), &cfg, log, start, &buf)
	if err != nil {
		t.Fatalf("run() unexpected error: %v", err)
	}

	if stats.Elapsed < cfg.Target {
		t.Errorf("Elapsed = %s, want at least the %s target", stats.Elapsed, cfg.Target)
	}
}

func TestRun_UnparsableCoreEnvIsFatal(t *testing.T) {
	pinCoreEnv(t)
	t.Setenv("SLURM_CPUS_ON_NODE", "garbage")

	cfg := testConfig(t, filepath.Join(t.TempDir(), "out"))
	log := testLogger(t, &cfg)

	var buf bytes.Buffer
	if _, err := run(context.Background(), &cfg, log, time.Now(), &buf); err == nil {
		t.Fatal("run() should fail on an unparsable core-count env var")
	}
}
