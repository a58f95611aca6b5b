// Package table builds the optional two-column random-data artifact.
//
// The legacy script probed for its numerical libraries at import time and
// flipped module-level flags. Here availability is an explicit choice made
// once at startup: [Select] returns either the generating backend or the
// disabled one, and the pipeline threads that value through generation and
// persistence.
package table

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrDisabled is returned by the disabled backend; the pipeline turns it
// into a skip notice rather than a failure.
var ErrDisabled = errors.New("numeric backend disabled")

// Column names of the generated table.
var ColumnNames = [2]string{"a", "b"}

// Table holds two equal-length columns of uniform values in [0,1).
type Table struct {
	A []float64
	B []float64
}

// Rows returns the row count.
func (t *Table) Rows() int { return len(t.A) }

// Backend generates the random table. Exactly two implementations exist:
// the real generator and the disabled variant.
type Backend interface {
	Name() string
	Available() bool
	Generate(rows int) (*Table, error)
}

// Select returns the backend matching the startup configuration.
func Select(enabled bool) Backend {
	if enabled {
		return NewRandBackend()
	}
	return Disabled{}
}

// RandBackend produces independent uniform values from its own source.
type RandBackend struct {
	rng *rand.Rand
}

// NewRandBackend seeds a fresh PCG source; content differs run to run.
func NewRandBackend() *RandBackend {
	return &RandBackend{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeededBackend returns a backend with a fixed seed, for reproducible
// tables in tests.
func NewSeededBackend(seed uint64) *RandBackend {
	return &RandBackend{rng: rand.New(rand.NewPCG(seed, seed))}
}

func (b *RandBackend) Name() string    { return "rand" }
func (b *RandBackend) Available() bool { return true }

// Generate builds a rows-by-2 table of uniform [0,1) values.
func (b *RandBackend) Generate(rows int) (*Table, error) {
	if rows <= 0 {
		return nil, fmt.Errorf("row count must be positive (got %d)", rows)
	}
	t := &Table{
		A: make([]float64, rows),
		B: make([]float64, rows),
	}
	for i := range t.A {
		t.A[i] = b.rng.Float64()
		t.B[i] = b.rng.Float64()
	}
	return t, nil
}

// Disabled is the unavailable variant selected by --no-table.
type Disabled struct{}

func (Disabled) Name() string    { return "disabled" }
func (Disabled) Available() bool { return false }

func (Disabled) Generate(rows int) (*Table, error) {
	return nil, ErrDisabled
}
