package probe

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v4/cpu"

	"github.com/backmassage/nodeprobe/internal/resolve"
)

// coreEnvVars are consulted in priority order before asking the OS.
// SLURM exports different subsets depending on how the job was submitted.
var coreEnvVars = []string{
	"SLURM_CPUS_ON_NODE",
	"SLURM_CPUS_PER_TASK",
	"SLURM_NPROCS",
}

// Cores returns the allocated logical core count and the name of the source
// that produced it.
//
// The chain is: each SLURM env var in order, then gopsutil's logical count,
// then runtime.NumCPU as the terminal provider. An env var that is set but
// not an integer is a hard error (it means the scheduler handed us garbage),
// not a fallthrough.
func Cores() (int, string, error) {
	providers := make([]resolve.Provider[int], 0, len(coreEnvVars)+2)

	for _, name := range coreEnvVars {
		providers = append(providers, resolve.Provider[int]{
			Name: name,
			Get: func() (int, error) {
				raw := strings.TrimSpace(os.Getenv(name))
				if raw == "" {
					return 0, resolve.ErrUnavailable
				}
				n, err := strconv.Atoi(raw)
				if err != nil {
					return 0, fmt.Errorf("parse %s=%q: %w", name, raw, err)
				}
				return n, nil
			},
		})
	}

	providers = append(providers,
		resolve.Provider[int]{
			Name: "gopsutil",
			Get: func() (int, error) {
				n, err := cpu.Counts(true)
				if err != nil || n <= 0 {
					return 0, resolve.ErrUnavailable
				}
				return n, nil
			},
		},
		resolve.Provider[int]{
			Name: "runtime",
			Get:  func() (int, error) { return runtime.NumCPU(), nil },
		},
	)

	return resolve.First(providers)
}
