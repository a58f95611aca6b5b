package artifact

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/backmassage/nodeprobe/internal/table"
)

// writeCSV writes t as delimited text: a header row with the column names
// followed by one row per table row.
func writeCSV(t *table.Table, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write(table.ColumnNames[:]); err != nil {
		f.Close()
		return err
	}
	for i := 0; i < t.Rows(); i++ {
		row := []string{
			strconv.FormatFloat(t.A[i], 'g', -1, 64),
			strconv.FormatFloat(t.B[i], 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			f.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
