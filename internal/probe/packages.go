package probe

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// pipArgs is the fixed package-listing invocation. The output is captured as
// text; nothing is piped in and no shell is involved.
var pipArgs = []string{"pip3", "list", "--format=columns"}

// PackageList invokes pip3 and returns its combined output. Any failure
// (binary missing, non-zero exit) yields a placeholder embedding the detail;
// the failure is never propagated.
//
// There is deliberately no timeout: a wedged pip3 stalls the probe, which is
// the documented behavior of the legacy script.
func PackageList(ctx context.Context) string {
	cmd := exec.CommandContext(ctx, pipArgs[0], pipArgs[1:]...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Sprintf("(pip3 list failed: %v)", err)
	}
	return strings.TrimRight(string(out), "\n")
}
