package probe

import "context"

// Snapshot is the environment snapshot reported by a single run.
// All fields are computed once and never mutated afterwards.
type Snapshot struct {
	// Cores is the allocated logical core count; CoresSource names the
	// provider that produced it (an env var, "gopsutil" or "runtime").
	Cores       int
	CoresSource string

	// MemoryGiB is the total memory visible to the process, in GiB.
	// MemoryKnown is false when no memory source was available; the report
	// then prints the literal "unknown" rather than a malformed number.
	MemoryGiB    float64
	MemoryKnown  bool
	MemorySource string

	// OSBanner is the trimmed /etc/issue content or a placeholder.
	OSBanner string

	// Runtime identifies the Go runtime this binary was built with.
	Runtime RuntimeInfo

	// Platform is a one-line host description (empty when undetectable).
	Platform string

	// Packages is the captured pip3 listing or a failure placeholder.
	Packages string
}

// RuntimeInfo describes the runtime the probe itself runs on.
type RuntimeInfo struct {
	Short  string   // e.g. "1.24.0"
	Banner []string // Full multi-line identity (version, platform, compiler, build info).
}

// Collect builds the full snapshot. The only error path is the core-count
// lookup; everything else degrades in place.
func Collect(ctx context.Context) (*Snapshot, error) {
	cores, coresSrc, err := Cores()
	if err != nil {
		return nil, err
	}

	memGiB, memSrc, memKnown := MemoryGiB()

	return &Snapshot{
		Cores:        cores,
		CoresSource:  coresSrc,
		MemoryGiB:    memGiB,
		MemoryKnown:  memKnown,
		MemorySource: memSrc,
		OSBanner:     OSBanner(),
		Runtime:      RuntimeIdentity(),
		Platform:     Platform(),
		Packages:     PackageList(ctx),
	}, nil
}
