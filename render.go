package sheethtml

import (
	"bufio"
	"html"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
)

// defaultRowHeightPt is the height written for rows the sheet does not store.
const defaultRowHeightPt = 15

// Formatter produces the display text of a cell.
type Formatter interface {
	FormatCell(c Cell, evaluateFormulas bool) string
}

// FormatterFunc adapts an ordinary function to a Formatter.
type FormatterFunc func(c Cell, evaluateFormulas bool) string

// FormatCell calls f.
func (f FormatterFunc) FormatCell(c Cell, evaluateFormulas bool) string {
	return f(c, evaluateFormulas)
}

// formatValue shows formula text unless formulas are evaluated, and the
// stored display value otherwise.
func formatValue(c Cell, evaluateFormulas bool) string {
	if c.Type() == CellFormula && !evaluateFormulas {
		return c.Formula()
	}
	return c.Value()
}

// RenderOption configures a Renderer.
type RenderOption func(*Renderer)

// WithLogger sets the logger used for debug output.
func WithLogger(l *log.Logger) RenderOption {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithFormatter replaces the default value formatter.
func WithFormatter(f Formatter) RenderOption {
	return func(r *Renderer) {
		if f != nil {
			r.formatter = f
		}
	}
}

// Renderer writes a region of a sheet as an HTML table. A Renderer may be
// used for several renders, one at a time.
type Renderer struct {
	sheet     Sheet
	region    Region
	adapter   StyleAdapter
	formatter Formatter
	logger    *log.Logger
}

// New returns a renderer for the whole sheet: every row from the first to
// the last, and the columns populated in the first row.
func New(sheet Sheet, adapter StyleAdapter, opts ...RenderOption) (*Renderer, error) {
	if sheet == nil || adapter == nil {
		return nil, errors.Wrap(ErrNilArgument, "sheet and adapter are required")
	}
	first := sheet.FirstRowIndex()
	var row Row
	if first >= 0 {
		row = sheet.Row(first)
	}
	if row == nil || row.FirstCol() < 0 {
		return nil, ErrEmptySheet
	}
	region := Region{
		FirstRow: first,
		LastRow:  sheet.LastRowIndex(),
		FirstCol: row.FirstCol(),
		LastCol:  row.LastCol(),
	}
	return NewRegion(sheet, region, adapter, opts...)
}

// NewRegion returns a renderer for region, which must lie inside the
// sheet's bounds.
func NewRegion(sheet Sheet, region Region, adapter StyleAdapter, opts ...RenderOption) (*Renderer, error) {
	if sheet == nil || adapter == nil {
		return nil, errors.Wrap(ErrNilArgument, "sheet and adapter are required")
	}
	if err := region.Validate(sheet.Bounds()); err != nil {
		return nil, err
	}
	r := &Renderer{
		sheet:     sheet,
		region:    region,
		adapter:   adapter,
		formatter: FormatterFunc(formatValue),
		logger:    log.New(io.Discard),
	}
	for _, o := range opts {
		o(r)
	}
	return r, nil
}

// Region returns the region the renderer writes.
func (r *Renderer) Region() Region {
	return r.region
}

// Render writes the table to w. Output is flushed before Render returns;
// closing w is left to the caller.
func (r *Renderer) Render(w io.Writer, opts Options) error {
	t := &tableWriter{
		Renderer: r,
		opts:     opts,
		out:      bufio.NewWriter(w),
		spans:    newSpanResolver(r.region, r.sheet.MergedRegions(), r.logger),
		pipeline: BuildPipeline(opts, r.sheet, r.adapter),
		evaluate: opts.Has(EvaluateFormulas),
	}
	r.logger.Debug("rendering table", "region", r.region, "options", opts, "merges", len(t.spans.pending), "rules", len(t.pipeline))
	if err := t.write(); err != nil {
		return errors.Wrap(err, "write table")
	}
	return nil
}

// Render writes region of sheet to w as an HTML table.
func Render(w io.Writer, sheet Sheet, region Region, adapter StyleAdapter, opts Options) error {
	r, err := NewRegion(sheet, region, adapter)
	if err != nil {
		return err
	}
	return r.Render(w, opts)
}

// tableWriter holds the state of one render.
type tableWriter struct {
	*Renderer
	opts     Options
	out      *bufio.Writer
	spans    *spanResolver
	pipeline Pipeline
	evaluate bool
	err      error
}

func (t *tableWriter) write() error {
	t.str(`<table style="border-collapse: collapse;">` + "\n")
	first := t.region.FirstRow
	if t.opts.Has(UseTableHeaders) {
		first += t.writeHeader()
	}
	for idx := first; idx <= t.region.LastRow && t.err == nil; idx++ {
		t.writeRow(idx)
	}
	t.str("</table>\n")
	if t.err != nil {
		return t.err
	}
	return t.out.Flush()
}

// writeHeader writes the header rows and returns how many there were. The
// count starts at one and grows to the tallest rowspan of a header anchor.
func (t *tableWriter) writeHeader() int {
	headerRows := 1
	for i := 0; i < headerRows && t.region.FirstRow+i <= t.region.LastRow; i++ {
		idx := t.region.FirstRow + i
		row := t.sheet.Row(idx)
		t.startRow(row, idx)
		for col := t.region.FirstCol; col <= t.region.LastCol && t.err == nil; col++ {
			span, ok := t.writeCell("th", row, idx, col)
			if ok {
				headerRows = max(headerRows, span.RowSpan)
			}
		}
		t.str("</tr>\n")
	}
	headerRows = min(headerRows, t.region.Rows())
	t.logger.Debug("wrote table header", "rows", headerRows)
	return headerRows
}

func (t *tableWriter) writeRow(idx int) {
	row := t.sheet.Row(idx)
	t.startRow(row, idx)
	if row != nil && row.FirstCol() >= 0 {
		for col := t.region.FirstCol; col <= t.region.LastCol && t.err == nil; col++ {
			t.writeCell("td", row, idx, col)
		}
	}
	t.str("</tr>\n")
}

// startRow opens a row element. A missing row always gets the default
// height; present rows get theirs when cell heights are requested.
func (t *tableWriter) startRow(row Row, idx int) {
	switch {
	case row == nil:
		t.str(`<tr style="height:` + formatNumber(defaultRowHeightPt) + `pt;">`)
	case t.opts.Has(CellHeight):
		t.str(`<tr style="height:` + formatNumber(row.HeightPt()) + `pt;">`)
	default:
		t.str("<tr>")
	}
}

// writeCell writes the cell at (idx, col) using tag. It reports the cell's
// span and whether the cell was a rendered anchor or plain cell.
func (t *tableWriter) writeCell(tag string, row Row, idx, col int) (Span, bool) {
	var cell Cell
	if row != nil {
		cell = row.Cell(col)
	}
	if cell == nil {
		if !t.spans.suppressed(idx, col) {
			t.str("<" + tag + "></" + tag + ">")
		}
		return Span{}, false
	}
	span, kind := t.spans.resolve(idx, col)
	if kind == spanSuppressed {
		return Span{}, false
	}

	var b strings.Builder
	b.WriteString("<")
	b.WriteString(tag)
	if span.ColSpan > 1 {
		b.WriteString(` colspan="` + strconv.Itoa(span.ColSpan) + `"`)
	}
	if span.RowSpan > 1 {
		b.WriteString(` rowspan="` + strconv.Itoa(span.RowSpan) + `"`)
	}
	if style := t.pipeline.Style(cell, span); style != "" {
		b.WriteString(` style="`)
		b.WriteString(html.EscapeString(style))
		b.WriteString(`"`)
	}
	b.WriteString(">")
	text := html.EscapeString(t.formatter.FormatCell(cell, t.evaluate))
	// Excel stores explicit line breaks as \n; preserve them in HTML
	b.WriteString(strings.ReplaceAll(text, "\n", "<br>"))
	b.WriteString("</" + tag + ">")
	t.str(b.String())
	return span, true
}

// str writes s unless an earlier write failed.
func (t *tableWriter) str(s string) {
	if t.err != nil {
		return
	}
	_, t.err = t.out.WriteString(s)
}
