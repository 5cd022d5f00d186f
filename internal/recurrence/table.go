package recurrence

import (
	"errors"
	"fmt"
)

const (
	// Modulus bounds every value the recurrence produces
	Modulus = 32768

	// MaxParam is the largest legal parameter and the last column of rows 0-3
	MaxParam = 32768

	// Depth is the row whose entry (Depth, 1) is the result
	Depth = 4

	// Number of columns for rows 0..Depth-1
	fullWidth = MaxParam + 1

	// Row Depth only ever holds columns 0 and 1
	lastRowWidth = 2
)

var (
	// ErrDomain is returned when a parameter falls outside [0, MaxParam].
	ErrDomain = errors.New("parameter out of domain")

	// ErrOutOfRange is returned for reads outside the populated table.
	ErrOutOfRange = errors.New("table coordinate out of range")
)

// Table is the memo table for a single parameter c.
// Rows 0 through Depth-1 hold MaxParam+1 columns, row Depth holds two.
type Table struct {
	c     int
	cells []uint16
}

func newTable() *Table {
	return &Table{cells: make([]uint16, Depth*fullWidth+lastRowWidth)}
}

// Build computes a fresh memo table for parameter c.
func Build(c int) (*Table, error) {
	t := newTable()
	if err := t.fill(c); err != nil {
		return nil, err
	}
	return t, nil
}

// Param returns the parameter the table was built for.
func (t *Table) Param() int {
	return t.c
}

// At returns the entry at (a, b).
func (t *Table) At(a, b int) (int, error) {
	if a < 0 || a > Depth || b < 0 || b >= rowWidth(a) {
		return 0, fmt.Errorf("read (%d, %d): %w", a, b, ErrOutOfRange)
	}
	return int(t.cells[a*fullWidth+b]), nil
}

// Result returns the entry at (Depth, 1).
func (t *Table) Result() int {
	return int(t.cells[Depth*fullWidth+1])
}

func rowWidth(a int) int {
	if a == Depth {
		return lastRowWidth
	}
	return fullWidth
}

// fill overwrites every populated cell, row by row, for parameter c.
// Each cell only depends on the previous row and earlier cells of its own
// row, so a single forward pass is enough.
func (t *Table) fill(c int) error {
	if c < 0 || c > MaxParam {
		return fmt.Errorf("parameter %d not in [0, %d]: %w", c, MaxParam, ErrDomain)
	}
	t.c = c

	base := t.cells[:fullWidth]
	for b := range base {
		base[b] = uint16((b + 1) % Modulus)
	}

	for a := 1; a <= Depth; a++ {
		prev := t.cells[(a-1)*fullWidth : a*fullWidth]
		row := t.cells[a*fullWidth : a*fullWidth+rowWidth(a)]

		row[0] = prev[c]
		for b := 1; b < len(row); b++ {
			row[b] = prev[row[b-1]]
		}
	}

	return nil
}
