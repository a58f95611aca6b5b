package artifact

import (
	"fmt"
	"os"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/backmassage/nodeprobe/internal/table"
)

// tableSchema is the fixed two-column float64 schema of the artifact.
func tableSchema() *arrow.Schema {
	return arrow.NewSchema([]arrow.Field{
		{Name: table.ColumnNames[0], Type: arrow.PrimitiveTypes.Float64},
		{Name: table.ColumnNames[1], Type: arrow.PrimitiveTypes.Float64},
	}, nil)
}

// writeFeather writes t as a single-record Arrow IPC file (Feather v2).
func writeFeather(t *table.Table, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	alloc := memory.NewGoAllocator()
	schema := tableSchema()

	b := array.NewRecordBuilder(alloc, schema)
	defer b.Release()
	b.Field(0).(*array.Float64Builder).AppendValues(t.A, nil)
	b.Field(1).(*array.Float64Builder).AppendValues(t.B, nil)
	rec := b.NewRecord()
	defer rec.Release()

	w, err := ipc.NewFileWriter(f, ipc.WithSchema(schema), ipc.WithAllocator(alloc))
	if err != nil {
		f.Close()
		return err
	}
	if err := w.Write(rec); err != nil {
		w.Close()
		f.Close()
		return err
	}
	if err := w.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// readFeather loads an artifact back into a table. Used by tests to verify
// the round trip without depending on an external Arrow reader.
func readFeather(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := ipc.NewFileReader(f, ipc.WithAllocator(memory.NewGoAllocator()))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	out := &table.Table{}
	for i := 0; i < r.NumRecords(); i++ {
		rec, err := r.Record(i)
		if err != nil {
			return nil, err
		}
		if rec.NumCols() != 2 {
			return nil, fmt.Errorf("expected 2 columns, got %d", rec.NumCols())
		}
		a, ok := rec.Column(0).(*array.Float64)
		if !ok {
			return nil, fmt.Errorf("column 0 is not float64")
		}
		b, ok := rec.Column(1).(*array.Float64)
		if !ok {
			return nil, fmt.Errorf("column 1 is not float64")
		}
		out.A = append(out.A, a.Float64Values()...)
		out.B = append(out.B, b.Float64Values()...)
	}
	return out, nil
}
