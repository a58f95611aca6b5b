package probe

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v4/mem"

	"github.com/backmassage/nodeprobe/internal/resolve"
)

// meminfoPath is the fallback memory source when gopsutil cannot answer.
const meminfoPath = "/proc/meminfo"

// MemoryGiB returns the total memory visible to this process in GiB, the
// name of the source that produced it, and whether a value was found at all.
//
// The chain is gopsutil's virtual-memory query, then a MemTotal parse of
// /proc/meminfo. When both are unavailable the value is explicitly unknown;
// the caller must not format it as a number.
func MemoryGiB() (float64, string, bool) {
	v, src, err := resolve.First([]resolve.Provider[float64]{
		{
			Name: "gopsutil",
			Get: func() (float64, error) {
				vm, err := mem.VirtualMemory()
				if err != nil || vm.Total == 0 {
					return 0, resolve.ErrUnavailable
				}
				return float64(vm.Total) / (1 << 30), nil
			},
		},
		{
			Name: meminfoPath,
			Get: func() (float64, error) {
				data, err := os.ReadFile(meminfoPath)
				if err != nil {
					return 0, resolve.ErrUnavailable
				}
				gib, err := ParseMemInfo(data)
				if err != nil {
					return 0, resolve.ErrUnavailable
				}
				return gib, nil
			},
		},
	})
	if err != nil {
		return 0, "", false
	}
	return v, src, true
}

// ParseMemInfo extracts the MemTotal line from /proc/meminfo content and
// returns the value in GiB. The kernel reports the value in KiB.
// Exported for testing without reading the real /proc.
func ParseMemInfo(data []byte) (float64, error) {
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := sc.Text()
		if !strings.HasPrefix(line, "MemTotal:") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return 0, fmt.Errorf("malformed MemTotal line %q", line)
		}
		kib, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parse MemTotal value %q: %w", fields[1], err)
		}
		return float64(kib) / (1 << 20), nil
	}
	if err := sc.Err(); err != nil {
		return 0, err
	}
	return 0, fmt.Errorf("no MemTotal line found")
}
