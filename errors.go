package sheethtml

import "github.com/pkg/errors"

var (
	// ErrInvalidRegion is returned when a region is inverted, negative or
	// outside the addressable bounds of the sheet.
	ErrInvalidRegion = errors.New("sheethtml: invalid region")
	// ErrEmptySheet is returned when a whole-sheet render finds no first row.
	ErrEmptySheet = errors.New("sheethtml: sheet must contain at least 1 row")
	// ErrNilArgument is returned when a renderer is built without a sheet or
	// style adapter.
	ErrNilArgument = errors.New("sheethtml: nil argument")
)
