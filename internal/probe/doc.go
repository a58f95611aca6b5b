// Package probe gathers the read-only environment snapshot: allocated CPU
// cores, total visible memory, the OS banner, the Go runtime identity, the
// host platform line, and the installed Python package list.
//
// Everything is computed once per run. Only the core-count lookup can fail
// (a SLURM core-count env var that is set but unparsable); every other
// lookup degrades to a placeholder or an explicit unknown.
package probe
