package xlsx

import (
	"fmt"
	"sort"

	"github.com/unidoc/unioffice/schema/soo/sml"
	"github.com/unidoc/unioffice/spreadsheet"
	"github.com/unidoc/unioffice/spreadsheet/reference"

	"github.com/aerissecure/sheethtml"
)

// Excel measures column widths in characters of the default font.
const (
	charWidthPx        = 8.3
	defaultColWidth    = 8.43
	defaultRowHeightPt = 15
)

// Sheet is a read-only view of a worksheet. It implements sheethtml.Sheet.
// The worksheet is indexed once by NewSheet; later edits to it are not seen.
type Sheet struct {
	name   string
	rows   map[int]*Row
	order  []int
	merges []sheethtml.Region
	cols   []colWidth

	defaultColWidthPx  float64
	defaultRowHeightPt float64
}

var _ sheethtml.Sheet = (*Sheet)(nil)

type colWidth struct {
	first, last int // 0-based, inclusive
	px          float64
}

// NewSheet indexes the rows, cells, merged regions and column widths of s.
func NewSheet(wb *spreadsheet.Workbook, s spreadsheet.Sheet) *Sheet {
	sh := &Sheet{
		name:               s.Name(),
		rows:               make(map[int]*Row),
		defaultColWidthPx:  defaultColWidth * charWidthPx,
		defaultRowHeightPt: defaultRowHeightPt,
	}
	ws := s.X()
	if pr := ws.SheetFormatPr; pr != nil {
		if pr.DefaultColWidthAttr != nil && *pr.DefaultColWidthAttr > 0 {
			sh.defaultColWidthPx = *pr.DefaultColWidthAttr * charWidthPx
		}
		if pr.DefaultRowHeightAttr > 0 {
			sh.defaultRowHeightPt = pr.DefaultRowHeightAttr
		}
	}

	for _, cols := range ws.Cols {
		for _, c := range cols.Col {
			if c.WidthAttr == nil {
				continue
			}
			sh.cols = append(sh.cols, colWidth{
				first: int(c.MinAttr) - 1,
				last:  int(c.MaxAttr) - 1,
				px:    *c.WidthAttr * charWidthPx,
			})
		}
	}

	if ws.MergeCells != nil {
		for _, mc := range ws.MergeCells.MergeCell {
			from, to, err := reference.ParseRangeReference(mc.RefAttr)
			if err != nil {
				continue // if parsing fails, ignore merge
			}
			sh.merges = append(sh.merges, sheethtml.Region{
				FirstRow: int(from.RowIdx) - 1,
				LastRow:  int(to.RowIdx) - 1,
				FirstCol: int(from.ColumnIdx),
				LastCol:  int(to.ColumnIdx),
			})
		}
	}

	styles := make(map[uint32]*Style)
	styleFor := func(id uint32) *Style {
		st, ok := styles[id]
		if !ok {
			var ss *sml.StyleSheet
			if wb != nil {
				ss = wb.StyleSheet.X()
			}
			st = newStyle(ss, id)
			styles[id] = st
		}
		return st
	}

	for _, row := range s.Rows() {
		rowIdx := int(row.RowNumber()) - 1
		r := &Row{index: rowIdx, heightPt: sh.defaultRowHeightPt, cells: make(map[int]*Cell), first: -1, last: -1}
		if ht := row.X().HtAttr; ht != nil && *ht > 0 {
			r.heightPt = *ht
		}
		// Row.Cells fills column gaps with new <c> elements. Only stored cells
		// are visited, and Row.Cell finds them by their exact reference.
		for _, x := range row.X().C {
			if x.RAttr == nil {
				continue
			}
			ref, err := reference.ParseCellReference(*x.RAttr)
			if err != nil || fmt.Sprintf("%s%d", ref.Column, row.RowNumber()) != *x.RAttr {
				continue
			}
			cell := row.Cell(ref.Column)
			colIdx := int(ref.ColumnIdx)
			c := &Cell{row: rowIdx, col: colIdx, typ: cellType(x)}
			if c.typ == sheethtml.CellFormula {
				c.formula = x.F.Content
			}
			c.value = cell.GetFormattedValue()
			// cells without a style ID use the default format
			var styleID uint32
			if x.SAttr != nil {
				styleID = *x.SAttr
			}
			c.style = styleFor(styleID)
			r.put(c)
		}
		sh.rows[rowIdx] = r
		sh.order = append(sh.order, rowIdx)
	}
	sort.Ints(sh.order)
	return sh
}

// cellType classifies a cell by its formula and t attribute.
func cellType(x *sml.CT_Cell) sheethtml.CellType {
	if x.F != nil {
		return sheethtml.CellFormula
	}
	switch x.TAttr.String() {
	case "b":
		return sheethtml.CellBoolean
	case "e":
		return sheethtml.CellError
	case "s", "str", "inlineStr":
		return sheethtml.CellText
	}
	if x.V == nil {
		if x.Is != nil {
			return sheethtml.CellText
		}
		return sheethtml.CellBlank
	}
	return sheethtml.CellNumeric
}

// Name returns the worksheet name.
func (s *Sheet) Name() string { return s.name }

func (s *Sheet) Row(idx int) sheethtml.Row {
	if r, ok := s.rows[idx]; ok {
		return r
	}
	return nil
}

func (s *Sheet) FirstRowIndex() int {
	if len(s.order) == 0 {
		return -1
	}
	return s.order[0]
}

func (s *Sheet) LastRowIndex() int {
	if len(s.order) == 0 {
		return -1
	}
	return s.order[len(s.order)-1]
}

func (s *Sheet) MergedRegions() []sheethtml.Region { return s.merges }

// ColumnWidthPx returns the width of the last <col> element covering col,
// or the sheet default.
func (s *Sheet) ColumnWidthPx(col int) float64 {
	for i := len(s.cols) - 1; i >= 0; i-- {
		if c := s.cols[i]; col >= c.first && col <= c.last {
			return c.px
		}
	}
	return s.defaultColWidthPx
}

func (s *Sheet) Bounds() sheethtml.Bounds { return sheethtml.Excel2007 }

// Row is an indexed worksheet row.
type Row struct {
	index    int
	heightPt float64
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
func (r *Row) HeightPt() float64 { return r.heightPt }

// Cell is an indexed worksheet cell.
type Cell struct {
	row, col int
	typ      sheethtml.CellType
	value    string
	formula  string
	style    *Style
}

func (c *Cell) Row() int { return c.row }
func (c *Cell) Col() int { return c.col }
func (c *Cell) Type() sheethtml.CellType { return c.typ }
func (c *Cell) Value() string { return c.value }
func (c *Cell) Formula() string { return c.formula }
func (c *Cell) Style() sheethtml.CellStyle { return c.style }
