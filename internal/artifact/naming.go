// Package artifact persists the random-data table: deterministic path
// construction under the output directory plus the Feather (Arrow IPC) and
// CSV writers.
package artifact

import (
	"path/filepath"

	"github.com/backmassage/nodeprobe/internal/config"
)

// FilePrefix is the fixed artifact filename prefix.
const FilePrefix = "random_table_"

// Path builds the canonical artifact path:
//
//	<outputDir>/random_table_<runID>.<ext>
//
// Deterministic in (runID, format): two runs with the same identifier and
// the same format selection name the same file.
func Path(outputDir, runID string, format config.FormatMode) string {
	return filepath.Join(outputDir, FilePrefix+runID+"."+format.Ext())
}
