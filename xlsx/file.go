package xlsx

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/unidoc/unioffice/spreadsheet"
	"github.com/unidoc/unioffice/spreadsheet/reference"

	"github.com/aerissecure/sheethtml"
)

var (
	// ErrSheetNotFound is returned when a sheet selection names no sheet.
	ErrSheetNotFound = errors.New("xlsx: sheet not found")
	// ErrUnsupportedFormat is returned for files this package cannot read,
	// such as binary .xls workbooks.
	ErrUnsupportedFormat = errors.New("xlsx: unsupported workbook format")
)

// File is an opened workbook with a selected sheet, an optional region and a
// set of conversion options. The first sheet and the whole-sheet region are
// selected initially, with Standard options.
type File struct {
	wb     *spreadsheet.Workbook
	sheet  spreadsheet.Sheet
	region *sheethtml.Region
	opts   sheethtml.Options
	logger *log.Logger
}

// Open reads the workbook at path.
func Open(path string) (*File, error) {
	if strings.EqualFold(filepath.Ext(path), ".xls") {
		return nil, errors.Wrap(ErrUnsupportedFormat, path)
	}
	wb, err := spreadsheet.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	return newFile(wb)
}

// Read reads a workbook of the given size from r.
func Read(r io.ReaderAt, size int64) (*File, error) {
	wb, err := spreadsheet.Read(r, size)
	if err != nil {
		return nil, errors.Wrap(err, "read workbook")
	}
	return newFile(wb)
}

// FromWorkbook wraps an already loaded workbook.
func FromWorkbook(wb *spreadsheet.Workbook) (*File, error) {
	if wb == nil {
		return nil, errors.Wrap(sheethtml.ErrNilArgument, "workbook is required")
	}
	return newFile(wb)
}

func newFile(wb *spreadsheet.Workbook) (*File, error) {
	sheets := wb.Sheets()
	if len(sheets) == 0 {
		return nil, errors.Wrap(ErrSheetNotFound, "workbook has no sheets")
	}
	return &File{
		wb:     wb,
		sheet:  sheets[0],
		opts:   sheethtml.NewOptions(sheethtml.Standard),
		logger: log.New(io.Discard),
	}, nil
}

// SetLogger sets the logger passed to the renderer.
func (f *File) SetLogger(l *log.Logger) {
	if l != nil {
		f.logger = l
	}
}

// SheetNames lists the sheets in workbook order.
func (f *File) SheetNames() []string {
	var names []string
	for _, s := range f.wb.Sheets() {
		names = append(names, s.Name())
	}
	return names
}

// SelectSheet selects the sheet called name and resets the region to the
// whole sheet.
func (f *File) SelectSheet(name string) error {
	for _, s := range f.wb.Sheets() {
		if s.Name() == name {
			f.sheet = s
			f.region = nil
			return nil
		}
	}
	return errors.Wrapf(ErrSheetNotFound, "%q", name)
}

// SelectSheetAt selects the sheet at the 0-based index i and resets the
// region to the whole sheet.
func (f *File) SelectSheetAt(i int) error {
	sheets := f.wb.Sheets()
	if i < 0 || i >= len(sheets) {
		return errors.Wrapf(ErrSheetNotFound, "index %d of %d", i, len(sheets))
	}
	f.sheet = sheets[i]
	f.region = nil
	return nil
}

// SelectRange selects an A1-style range such as "B1:D8".
func (f *File) SelectRange(ref string) error {
	r, err := ParseRegion(ref)
	if err != nil {
		return err
	}
	return f.SelectRegion(r)
}

// SelectRegion selects a 0-based region.
func (f *File) SelectRegion(r sheethtml.Region) error {
	if err := r.Validate(sheethtml.Excel2007); err != nil {
		return err
	}
	f.region = &r
	return nil
}

// SelectWholeSheet clears the region selection.
func (f *File) SelectWholeSheet() {
	f.region = nil
}

// Options returns the option set used by WriteHTML. It may be modified in
// place.
func (f *File) Options() *sheethtml.Options {
	return &f.opts
}

// SheetName returns the name of the selected sheet.
func (f *File) SheetName() string {
	return f.sheet.Name()
}

// Renderer returns a renderer for the current selection.
func (f *File) Renderer() (*sheethtml.Renderer, error) {
	sh := NewSheet(f.wb, f.sheet)
	a := NewAdapter(f.wb)
	if f.region == nil {
		return sheethtml.New(sh, a, sheethtml.WithLogger(f.logger))
	}
	return sheethtml.NewRegion(sh, *f.region, a, sheethtml.WithLogger(f.logger))
}

// WriteHTML writes the current selection to w as an HTML table.
func (f *File) WriteHTML(w io.Writer) error {
	r, err := f.Renderer()
	if err != nil {
		return errors.Wrapf(err, "sheet %q", f.sheet.Name())
	}
	return r.Render(w, f.opts)
}

// WriteHTMLFile writes the current selection to the file at path.
func (f *File) WriteHTMLFile(path string) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	return f.WriteHTML(out)
}

// Close releases the workbook's temporary files.
func (f *File) Close() error {
	if c, ok := any(f.wb).(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// ToHTML renders the first sheet of the workbook in r with Standard options.
func ToHTML(r io.ReaderAt, size int64) (string, error) {
	f, err := Read(r, size)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var b strings.Builder
	if err := f.WriteHTML(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// ParseRegion parses an A1 reference, either a single cell ("C3") or a
// range ("B1:D8"), into a 0-based region.
func ParseRegion(ref string) (sheethtml.Region, error) {
	ref = strings.ReplaceAll(strings.TrimSpace(ref), "$", "")
	if !strings.Contains(ref, ":") {
		c, err := reference.ParseCellReference(ref)
		if err != nil {
			return sheethtml.Region{}, errors.Wrapf(sheethtml.ErrInvalidRegion, "%q: %v", ref, err)
		}
		row, col := int(c.RowIdx)-1, int(c.ColumnIdx)
		return sheethtml.Region{FirstRow: row, LastRow: row, FirstCol: col, LastCol: col}, nil
	}
	from, to, err := reference.ParseRangeReference(ref)
	if err != nil {
		return sheethtml.Region{}, errors.Wrapf(sheethtml.ErrInvalidRegion, "%q: %v", ref, err)
	}
	return sheethtml.Region{
		FirstRow: int(from.RowIdx) - 1,
		LastRow:  int(to.RowIdx) - 1,
		FirstCol: int(from.ColumnIdx),
		LastCol:  int(to.ColumnIdx),
	}, nil
}

// FormatRegion formats r as an A1 range.
func FormatRegion(r sheethtml.Region) string {
	from := reference.IndexToColumn(uint32(r.FirstCol)) + strconv.Itoa(r.FirstRow+1)
	to := reference.IndexToColumn(uint32(r.LastCol)) + strconv.Itoa(r.LastRow+1)
	return from + ":" + to
}
