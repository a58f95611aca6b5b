package pipeline

import "time"

// RunStats aggregates what a single probe run did; returned by [Run] for
// the exit path and for tests.
type RunStats struct {
	Elapsed       time.Duration // Total wall-clock time of the run.
	Idled         time.Duration // Time spent in the terminal idle-wait.
	TableRows     int           // 0 when the backend was disabled.
	ArtifactPath  string        // Absolute path of the written artifact, or empty.
	ArtifactBytes int64         // Size of the written artifact, or 0.
}
