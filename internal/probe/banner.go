package probe

import (
	"fmt"
	"os"
	"strings"
)

// issuePath is the distro banner shown by getty on Linux systems.
const issuePath = "/etc/issue"

// OSBanner returns the trimmed contents of /etc/issue, or a placeholder when
// the file is absent or unreadable. All outcomes are non-fatal.
func OSBanner() string {
	return readIssue(issuePath)
}

func readIssue(path string) string {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return "(No /etc/issue found on this system)"
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Sprintf("(Could not read /etc/issue: %v)", err)
	}
	return strings.TrimSpace(string(data))
}
