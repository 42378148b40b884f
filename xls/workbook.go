// Package xls holds the indexed-palette workbook model of the binary Excel
// format and its style adapter.
//
// Fonts, fills and borders of a BIFF workbook reference colours by palette
// index. A binary reader populates a Workbook record by record; the
// renderer then consumes its sheets through the sheethtml interfaces.
package xls

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/aerissecure/sheethtml"
)

// ErrSheetNotFound is returned when a sheet lookup fails.
var ErrSheetNotFound = errors.New("xls: sheet not found")

// Default sheet metrics, matching Excel's defaults for Arial 10pt.
const (
	DefaultColumnWidthPx = 64
	DefaultRowHeightPt   = 15
)

// Underline is a FONT record underline type.
type Underline uint8

const (
	UnderlineNone             Underline = 0x00
	UnderlineSingle           Underline = 0x01
	UnderlineDouble           Underline = 0x02
	UnderlineSingleAccounting Underline = 0x21
	UnderlineDoubleAccounting Underline = 0x22
)

// Font is a FONT record.
type Font struct {
	Name      string
	HeightPt  float64
	Bold      bool
	Italic    bool
	Underline Underline
	Color     int // palette index
}

// Fill patterns; only the absence of a pattern matters for rendering.
const (
	FillNone  = 0
	FillSolid = 1
)

// Style is an XF record. It is the style handle of the cells using it.
type Style struct {
	Font           int // index into Workbook.Fonts
	HAlign         sheethtml.HAlign
	VAlign         sheethtml.VAlign
	Borders        [4]sheethtml.BorderPattern // indexed by sheethtml.BorderSide
	BorderColors   [4]int                   // palette indexes, by side
	FillPattern    int
	FillForeground int // palette index
	FillBackground int // palette index
	// TextRotation in degrees, -90..90, counter-clockwise positive. 0xFF
	// is stacked vertical text.
	TextRotation int
}

func (s Style) HorizontalAlignment() sheethtml.HAlign { return s.HAlign }
func (s Style) VerticalAlignment() sheethtml.VAlign { return s.VAlign }
func (s Style) Rotation() int { return s.TextRotation }

func (s Style) Border(side sheethtml.BorderSide) sheethtml.BorderPattern {
	if side < 0 || int(side) >= len(s.Borders) {
		return sheethtml.BorderNone
	}
	return s.Borders[side]
}

// Workbook is an in-memory BIFF workbook.
type Workbook struct {
	Palette *Palette
	Fonts   []Font
	Styles  []Style
	sheets  []*Sheet
}

// NewWorkbook returns a workbook with the default palette, font and style.
func NewWorkbook() *Workbook {
	return &Workbook{
		Palette: NewPalette(),
		Fonts:   []Font{{Name: "Arial", HeightPt: 10, Color: FontAutomatic}},
		Styles: []Style{{
			FillForeground: Automatic,
			FillBackground: AutomaticBackground,
		}},
	}
}

// AddFont appends a font and returns its index.
func (wb *Workbook) AddFont(f Font) int {
	wb.Fonts = append(wb.Fonts, f)
	return len(wb.Fonts) - 1
}

// AddStyle appends a style and returns its index.
func (wb *Workbook) AddStyle(s Style) int {
	wb.Styles = append(wb.Styles, s)
	return len(wb.Styles) - 1
}

// AddSheet appends an empty sheet.
func (wb *Workbook) AddSheet(name string) *Sheet {
	s := &Sheet{
		Name:               name,
		wb:                 wb,
		rows:               make(map[int]*Row),
		colWidths:          make(map[int]float64),
		DefaultColWidthPx:  DefaultColumnWidthPx,
		DefaultRowHeightPt: DefaultRowHeightPt,
	}
	wb.sheets = append(wb.sheets, s)
	return s
}

// Sheets returns the sheets in workbook order.
func (wb *Workbook) Sheets() []*Sheet {
	return wb.sheets
}

// Sheet returns the sheet called name.
func (wb *Workbook) Sheet(name string) (*Sheet, error) {
	for _, s := range wb.sheets {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, errors.Wrapf(ErrSheetNotFound, "%q", name)
}

func (wb *Workbook) style(idx int) Style {
	if idx < 0 || idx >= len(wb.Styles) {
		if len(wb.Styles) == 0 {
			return Style{}
		}
		return wb.Styles[0]
	}
	return wb.Styles[idx]
}

func (wb *Workbook) font(idx int) (Font, bool) {
	if idx < 0 || idx >= len(wb.Fonts) {
		return Font{}, false
	}
	return wb.Fonts[idx], true
}

// Sheet is a worksheet. It implements sheethtml.Sheet.
type Sheet struct {
	Name               string
	DefaultColWidthPx  float64
	DefaultRowHeightPt float64

	wb        *Workbook
	rows      map[int]*Row
	merges    []sheethtml.Region
	colWidths map[int]float64
}

var _ sheethtml.Sheet = (*Sheet)(nil)

// SetCell stores a value cell. Existing cells are replaced.
func (s *Sheet) SetCell(row, col int, typ sheethtml.CellType, value string, style int) *Cell {
	c := &Cell{row: row, col: col, typ: typ, value: value, style: style, wb: s.wb}
	s.ensureRow(row).put(c)
	return c
}

// SetFormula stores a formula cell with its cached result.
func (s *Sheet) SetFormula(row, col int, formula, cached string, style int) *Cell {
	c := s.SetCell(row, col, sheethtml.CellFormula, cached, style)
	c.formula = formula
	return c
}

// SetRowHeight sets a custom row height, creating the row if needed.
func (s *Sheet) SetRowHeight(row int, pt float64) {
	r := s.ensureRow(row)
	r.heightPt = pt
}

// SetColumnWidth sets the width of a column in pixels.
func (s *Sheet) SetColumnWidth(col int, px float64) {
	s.colWidths[col] = px
}

// Merge records a merged region.
func (s *Sheet) Merge(r sheethtml.Region) {
	s.merges = append(s.merges, r)
}

func (s *Sheet) ensureRow(idx int) *Row {
	r, ok := s.rows[idx]
	if !ok {
		r = &Row{index: idx, sheet: s, cells: make(map[int]*Cell), first: -1, last: -1}
		s.rows[idx] = r
	}
	return r
}

func (s *Sheet) Row(idx int) sheethtml.Row {
	if r, ok := s.rows[idx]; ok {
		return r
	}
	return nil
}

func (s *Sheet) FirstRowIndex() int {
	idx := s.rowIndexes()
	if len(idx) == 0 {
		return -1
	}
	return idx[0]
}

func (s *Sheet) LastRowIndex() int {
	idx := s.rowIndexes()
	if len(idx) == 0 {
		return -1
	}
	return idx[len(idx)-1]
}

func (s *Sheet) rowIndexes() []int {
	idx := make([]int, 0, len(s.rows))
	for i := range s.rows {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	return idx
}

func (s *Sheet) MergedRegions() []sheethtml.Region {
	return s.merges
}

func (s *Sheet) ColumnWidthPx(col int) float64 {
	if w, ok := s.colWidths[col]; ok {
		return w
	}
	return s.DefaultColWidthPx
}

func (s *Sheet) Bounds() sheethtml.Bounds {
	return sheethtml.Excel97
}

// Row is a sheet row. It implements sheethtml.Row.
type Row struct {
	index    int
	heightPt float64
	sheet    *Sheet
	cells    map[int]*Cell
	first    int
	last     int
}

func (r *Row) put(c *Cell) {
	r.cells[c.col] = c
	if r.first < 0 || c.col < r.first {
		r.first = c.col
	}
	if c.col > r.last {
		r.last = c.col
	}
}

func (r *Row) Index() int { return r.index }

func (r *Row) Cell(col int) sheethtml.Cell {
	if c, ok := r.cells[col]; ok {
		return c
	}
	return nil
}

func (r *Row) FirstCol() int { return r.first }
func (r *Row) LastCol() int { return r.last }

func (r *Row) HeightPt() float64 {
	if r.heightPt > 0 {
		return r.heightPt
	}
	return r.sheet.DefaultRowHeightPt
}

// Cell is a stored cell. It implements sheethtml.Cell.
type Cell struct {
	row, col int
	typ      sheethtml.CellType
	value    string
	formula  string
	style    int
	wb       *Workbook
}

func (c *Cell) Row() int { return c.row }
func (c *Cell) Col() int { return c.col }
func (c *Cell) Type() sheethtml.CellType { return c.typ }
func (c *Cell) Value() string { return c.value }
func (c *Cell) Formula() string { return c.formula }
func (c *Cell) Style() sheethtml.CellStyle { return c.wb.style(c.style) }
