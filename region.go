package sheethtml

import (
	"fmt"

	"github.com/pkg/errors"
)

// Region is a rectangular block of cells. All bounds are 0-based and
// inclusive.
type Region struct {
	FirstRow, LastRow int
	FirstCol, LastCol int
}

// Bounds are the addressable limits of a spreadsheet file format.
type Bounds struct {
	MaxRows int
	MaxCols int
}

var (
	// Excel97 are the limits of the binary .xls format.
	Excel97 = Bounds{MaxRows: 1 << 16, MaxCols: 1 << 8}
	// Excel2007 are the limits of the .xlsx format.
	Excel2007 = Bounds{MaxRows: 1 << 20, MaxCols: 1 << 14}
)

// Validate reports whether r is a well formed region inside b.
func (r Region) Validate(b Bounds) error {
	if r.FirstRow < 0 || r.FirstCol < 0 {
		return errors.Wrapf(ErrInvalidRegion, "%s has a negative index", r)
	}
	if r.FirstRow > r.LastRow {
		return errors.Wrapf(ErrInvalidRegion, "%s: last row must not be before first row", r)
	}
	if r.FirstCol > r.LastCol {
		return errors.Wrapf(ErrInvalidRegion, "%s: last column must not be before first column", r)
	}
	if r.LastRow >= b.MaxRows || r.LastCol >= b.MaxCols {
		return errors.Wrapf(ErrInvalidRegion, "%s exceeds %dx%d", r, b.MaxRows, b.MaxCols)
	}
	return nil
}

// Contains reports whether the cell at (row, col) lies inside r.
func (r Region) Contains(row, col int) bool {
	return row >= r.FirstRow && row <= r.LastRow && col >= r.FirstCol && col <= r.LastCol
}

// Intersects reports whether r and o share at least one cell.
func (r Region) Intersects(o Region) bool {
	return r.FirstRow <= o.LastRow && o.FirstRow <= r.LastRow &&
		r.FirstCol <= o.LastCol && o.FirstCol <= r.LastCol
}

// Rows returns the number of rows covered by r.
func (r Region) Rows() int { return r.LastRow - r.FirstRow + 1 }

// Cols returns the number of columns covered by r.
func (r Region) Cols() int { return r.LastCol - r.FirstCol + 1 }

func (r Region) String() string {
	return fmt.Sprintf("rows %d-%d, cols %d-%d", r.FirstRow, r.LastRow, r.FirstCol, r.LastCol)
}
