// Package report renders the human-readable probe report: a fixed sequence
// of labeled sections written to an io.Writer (stdout in production).
//
// Log lines (progress, errors) go through the logging package; everything
// in here is the report itself.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/backmassage/nodeprobe/internal/display"
	"github.com/backmassage/nodeprobe/internal/probe"
)

// labelWidth aligns the "key : value" lines of the environment section.
const labelWidth = 27

// indent prefixes continuation lines of the runtime banner.
const indent = "                             "

// Renderer writes report sections in order. Methods are expected to be
// called in the fixed sequence the pipeline drives.
type Renderer struct {
	w io.Writer
}

// New returns a Renderer writing to w.
func New(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

func (r *Renderer) header(title string) {
	fmt.Fprintf(r.w, "# %s\n\n", title)
}

func (r *Renderer) kv(label, format string, args ...interface{}) {
	fmt.Fprintf(r.w, "%-*s: ", labelWidth, label)
	fmt.Fprintf(r.w, format+"\n", args...)
}

// Environment prints the headline section: core count and total memory.
// An unknown memory value prints the literal "unknown", never a number.
func (r *Renderer) Environment(s *probe.Snapshot) {
	r.header("SLURM environment probe")
	r.kv("Allocated CPU cores", "%d", s.Cores)
	memText := "unknown"
	if s.MemoryKnown {
		memText = display.FormatGiB(s.MemoryGiB)
	}
	r.kv("Total visible memory", "%s", memText)
	if s.Platform != "" {
		r.kv("Host platform", "%s", s.Platform)
	}
	fmt.Fprintln(r.w)
}

// Runtime prints the interpreter-identity section: short version plus the
// full banner, continuation lines indented.
func (r *Renderer) Runtime(s *probe.Snapshot) {
	r.header("Go runtime")
	r.kv("Short version", "%s", s.Runtime.Short)
	r.kv("Full version banner", "")
	for _, line := range s.Runtime.Banner {
		fmt.Fprintln(r.w, indent+line)
	}
	fmt.Fprintln(r.w)
}

// OSBanner prints the /etc/issue section; the snapshot value is either the
// trimmed file content or one of the placeholder strings.
func (r *Renderer) OSBanner(s *probe.Snapshot) {
	r.header("/etc/issue contents")
	fmt.Fprintln(r.w, s.OSBanner)
	fmt.Fprintln(r.w)
}

// Packages prints the captured pip3 listing (or its failure placeholder).
func (r *Renderer) Packages(s *probe.Snapshot) {
	r.header("Python packages (pip3 list)")
	fmt.Fprintln(r.w, s.Packages)
	fmt.Fprintln(r.w)
}

// ArtifactWritten reports the persisted artifact's resolved absolute path
// and size.
func (r *Renderer) ArtifactWritten(absPath string, size int64) {
	r.kv("Artifact written", "%s (%s)", absPath, display.FormatBytes(size))
	fmt.Fprintln(r.w)
}

// ArtifactSkipped prints the skip notice when the numeric backend is
// disabled.
func (r *Renderer) ArtifactSkipped() {
	fmt.Fprintln(r.w, "(Numeric backend disabled; skipping random table)")
	fmt.Fprintln(r.w)
}

// IdleNotice announces the planned idle duration before blocking.
func (r *Renderer) IdleNotice(remaining, target time.Duration) {
	fmt.Fprintf(r.w, "Idling for %s to reach %s wall-clock…\n",
		display.FormatClock(remaining), display.FormatClock(target))
}

// TotalRuntime prints the final elapsed wall-clock line.
func (r *Renderer) TotalRuntime(elapsed time.Duration) {
	fmt.Fprintf(r.w, "\nDone. Total runtime: %s\n", display.FormatClock(elapsed))
}
