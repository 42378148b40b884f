// Package sheethtml renders a rectangular region of a spreadsheet into an
// HTML table fragment.
//
// The spreadsheet itself is consumed through the Sheet, Row and Cell
// interfaces and its colours and fonts through a StyleAdapter. The xlsx
// package provides both for OOXML workbooks (direct ARGB colours); the xls
// package provides them for BIFF-style workbooks that reference an indexed
// colour palette.
package sheethtml

// Sheet is the read-only view of a worksheet that the renderer walks.
type Sheet interface {
	// Row returns the row at the 0-based index, or nil if the sheet has no
	// backing row there.
	Row(idx int) Row
	// FirstRowIndex and LastRowIndex return the first and last populated
	// row indexes, or -1 when the sheet has no rows.
	FirstRowIndex() int
	LastRowIndex() int
	// MergedRegions returns every merged region of the sheet.
	MergedRegions() []Region
	// ColumnWidthPx returns the rendered width of a column in pixels.
	ColumnWidthPx(col int) float64
	// Bounds returns the addressable limits of the sheet's file format.
	Bounds() Bounds
}

// Row is a single sheet row.
type Row interface {
	Index() int
	// Cell returns the cell at the 0-based column, or nil for sparse storage.
	Cell(col int) Cell
	// FirstCol and LastCol return the first and last populated column, or
	// -1 when the row holds no cells.
	FirstCol() int
	LastCol() int
	HeightPt() float64
}

// Cell is a single stored cell.
type Cell interface {
	Row() int
	Col() int
	Type() CellType
	Style() CellStyle
	// Value is the display value. For formula cells it is the cached result.
	Value() string
	// Formula is the formula text without the leading '=', or "".
	Formula() string
}

// CellStyle is the style handle of a cell. Colours and fonts are resolved
// from it by a StyleAdapter.
type CellStyle interface {
	HorizontalAlignment() HAlign
	VerticalAlignment() VAlign
	Border(side BorderSide) BorderPattern
	// Rotation is the raw text rotation as stored by the file format.
	Rotation() int
}

// CellType is the type tag of a stored cell.
type CellType int

const (
	CellBlank CellType = iota
	CellNumeric
	CellText
	CellBoolean
	CellFormula
	CellError
)

func (t CellType) String() string {
	switch t {
	case CellNumeric:
		return "numeric"
	case CellText:
		return "text"
	case CellBoolean:
		return "boolean"
	case CellFormula:
		return "formula"
	case CellError:
		return "error"
	default:
		return "blank"
	}
}

// HAlign is a horizontal cell alignment.
type HAlign int

const (
	HAlignGeneral HAlign = iota
	HAlignLeft
	HAlignCenter
	HAlignRight
	HAlignFill
	HAlignJustify
	HAlignCenterContinuous
	HAlignDistributed
)

// VAlign is a vertical cell alignment. The zero value is bottom, which is
// also what an unset alignment means.
type VAlign int

const (
	VAlignBottom VAlign = iota
	VAlignTop
	VAlignCenter
	VAlignJustify
	VAlignDistributed
)

// BorderPattern is a border line pattern, numbered as in BIFF8.
type BorderPattern int

const (
	BorderNone BorderPattern = iota
	BorderThin
	BorderMedium
	BorderDashed
	BorderDotted
	BorderThick
	BorderDouble
	BorderHair
	BorderMediumDashed
	BorderDashDot
	BorderMediumDashDot
	BorderDashDotDot
	BorderMediumDashDotDot
	BorderSlantDashDot
)

// BorderSide names one edge of a cell.
type BorderSide int

const (
	SideTop BorderSide = iota
	SideRight
	SideBottom
	SideLeft
)

// borderSides is the emission order of per-side declarations.
var borderSides = [...]BorderSide{SideTop, SideRight, SideBottom, SideLeft}

func (s BorderSide) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideRight:
		return "right"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	}
	return ""
}

// FontInfo is a resolved cell font.
type FontInfo struct {
	Name      string  // e.g. "Calibri", may be empty
	SizePt    float64 // size in points
	Bold      bool
	Italic    bool
	Underline bool
	Color     string // CSS colour, "black" when unresolved
}

// Span is the rowspan/colspan pair of a rendered cell. Plain cells have
// {1, 1}.
type Span struct {
	RowSpan int
	ColSpan int
}
