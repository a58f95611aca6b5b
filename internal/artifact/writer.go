package artifact

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/backmassage/nodeprobe/internal/config"
	"github.com/backmassage/nodeprobe/internal/table"
)

// Write persists t at path in the given format, creating the parent
// directory if needed (idempotent). A failure here is fatal to the run;
// unlike every probe step there is no placeholder fallback for a half
// written artifact.
func Write(t *table.Table, path string, format config.FormatMode) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create artifact directory: %w", err)
	}

	switch format.Resolved() {
	case config.FormatCSV:
		if err := writeCSV(t, path); err != nil {
			return fmt.Errorf("write csv artifact: %w", err)
		}
	default:
		if err := writeFeather(t, path); err != nil {
			return fmt.Errorf("write feather artifact: %w", err)
		}
	}
	return nil
}
