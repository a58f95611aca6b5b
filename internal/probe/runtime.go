package probe

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/shirou/gopsutil/v4/host"
)

// RuntimeIdentity describes the Go runtime this binary was built with: a
// short version for the headline and a full multi-line banner.
func RuntimeIdentity() RuntimeInfo {
	banner := []string{
		runtime.Version(),
		fmt.Sprintf("platform: %s/%s", runtime.GOOS, runtime.GOARCH),
		fmt.Sprintf("compiler: %s", runtime.Compiler),
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		if bi.Main.Path != "" {
			v := bi.Main.Version
			if v == "" {
				v = "(devel)"
			}
			banner = append(banner, fmt.Sprintf("module: %s %s", bi.Main.Path, v))
		}
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				banner = append(banner, "revision: "+s.Value)
			}
		}
	}

	return RuntimeInfo{
		Short:  strings.TrimPrefix(runtime.Version(), "go"),
		Banner: banner,
	}
}

// Platform returns a one-line host description (distro, version, kernel),
// or empty string when the host cannot be identified. Best effort only.
func Platform() string {
	info, err := host.Info()
	if err != nil || info == nil {
		return ""
	}
	s := strings.TrimSpace(info.Platform + " " + info.PlatformVersion)
	if info.KernelVersion != "" {
		if s == "" {
			return "kernel " + info.KernelVersion
		}
		s += " (kernel " + info.KernelVersion + ")"
	}
	return s
}
