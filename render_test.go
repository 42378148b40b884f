package sheethtml_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"github.com/aerissecure/sheethtml"
	"github.com/aerissecure/sheethtml/xls"
)

const tableOpen = `<table style="border-collapse: collapse;">` + "\n"

func render(t *testing.T, sheet *xls.Sheet, region sheethtml.Region, wb *xls.Workbook, opts ...sheethtml.Option) string {
	t.Helper()
	var b strings.Builder
	if err := sheethtml.Render(&b, sheet, region, xls.NewAdapter(wb), sheethtml.NewOptions(opts...)); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return b.String()
}

func text(s *xls.Sheet, row, col int, v string) {
	s.SetCell(row, col, sheethtml.CellText, v, 0)
}

func TestRenderHeaderRowspan(t *testing.T) {
	wb := xls.NewWorkbook()
	s := wb.AddSheet("Report")
	text(s, 0, 0, "Name")
	text(s, 0, 1, "Jan")
	text(s, 0, 2, "Feb")
	text(s, 1, 1, "x")
	text(s, 1, 2, "y")
	text(s, 2, 0, "") // covered by the merge
	text(s, 2, 1, "p")
	text(s, 2, 2, "q")
	text(s, 3, 0, "Total")
	s.SetCell(3, 1, sheethtml.CellNumeric, "5", 0)
	s.SetCell(3, 2, sheethtml.CellNumeric, "7", 0)
	s.Merge(sheethtml.Region{FirstRow: 0, LastRow: 2, FirstCol: 0, LastCol: 0})

	got := render(t, s, sheethtml.Region{LastRow: 3, LastCol: 2}, wb, sheethtml.UseTableHeaders)
	want := tableOpen +
		`<tr><th rowspan="3">Name</th><th>Jan</th><th>Feb</th></tr>` + "\n" +
		`<tr><th>x</th><th>y</th></tr>` + "\n" +
		`<tr><th>p</th><th>q</th></tr>` + "\n" +
		`<tr><td>Total</td><td>5</td><td>7</td></tr>` + "\n" +
		"</table>\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("html mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderHeaderWithoutSpans(t *testing.T) {
	wb := xls.NewWorkbook()
	s := wb.AddSheet("Report")
	text(s, 0, 0, "A")
	text(s, 1, 0, "B")

	got := render(t, s, sheethtml.Region{LastRow: 1}, wb, sheethtml.UseTableHeaders)
	want := tableOpen + "<tr><th>A</th></tr>\n<tr><td>B</td></tr>\n</table>\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("html mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderHeaderStaggeredSpans(t *testing.T) {
	wb := xls.NewWorkbook()
	s := wb.AddSheet("Report")
	text(s, 0, 0, "h")
	text(s, 0, 1, "t")
	text(s, 1, 0, "")
	text(s, 1, 1, "m")
	text(s, 2, 0, "x")
	text(s, 2, 1, "")
	text(s, 3, 0, "y")
	text(s, 3, 1, "z")
	s.Merge(sheethtml.Region{FirstRow: 0, LastRow: 1, FirstCol: 0, LastCol: 0})
	s.Merge(sheethtml.Region{FirstRow: 1, LastRow: 2, FirstCol: 1, LastCol: 1})

	// the header covers the tallest rowspan, not the rows it reaches
	got := render(t, s, sheethtml.Region{LastRow: 3, LastCol: 1}, wb, sheethtml.UseTableHeaders)
	want := tableOpen +
		`<tr><th rowspan="2">h</th><th>t</th></tr>` + "\n" +
		`<tr><th rowspan="2">m</th></tr>` + "\n" +
		`<tr><td>x</td></tr>` + "\n" +
		`<tr><td>y</td><td>z</td></tr>` + "\n" +
		"</table>\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("html mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderMissingRowAndGap(t *testing.T) {
	wb := xls.NewWorkbook()
	s := wb.AddSheet("Sparse")
	text(s, 0, 0, "a")
	text(s, 0, 1, "b")
	text(s, 0, 2, "c")
	s.SetRowHeight(0, 20)
	text(s, 2, 0, "d")
	text(s, 2, 2, "f")

	got := render(t, s, sheethtml.Region{LastRow: 2, LastCol: 2}, wb, sheethtml.CellHeight)
	want := tableOpen +
		`<tr style="height:20pt;"><td>a</td><td>b</td><td>c</td></tr>` + "\n" +
		`<tr style="height:15pt;"></tr>` + "\n" +
		`<tr style="height:15pt;"><td>d</td><td></td><td>f</td></tr>` + "\n" +
		"</table>\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("html mismatch (-want +got):\n%s", diff)
	}

	// missing rows keep the default height without CellHeight
	got = render(t, s, sheethtml.Region{LastRow: 2, LastCol: 2}, wb)
	want = tableOpen +
		`<tr><td>a</td><td>b</td><td>c</td></tr>` + "\n" +
		`<tr style="height:15pt;"></tr>` + "\n" +
		`<tr><td>d</td><td></td><td>f</td></tr>` + "\n" +
		"</table>\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("html without cell heights mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderMerges(t *testing.T) {
	wb := xls.NewWorkbook()
	s := wb.AddSheet("Merged")
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			text(s, r, c, string(rune('a'+r*5+c)))
		}
	}
	s.Merge(sheethtml.Region{FirstRow: 0, LastRow: 0, FirstCol: 0, LastCol: 1})
	s.Merge(sheethtml.Region{FirstRow: 1, LastRow: 4, FirstCol: 2, LastCol: 4})

	tests := []struct {
		name   string
		region sheethtml.Region
		want   []string
	}{
		{
			name:   "inside",
			region: sheethtml.Region{LastRow: 4, LastCol: 4},
			want: []string{
				`<tr><td colspan="2">a</td><td>c</td><td>d</td><td>e</td></tr>`,
				`<tr><td>f</td><td>g</td><td colspan="3" rowspan="4">h</td></tr>`,
				`<tr><td>k</td><td>l</td></tr>`,
				`<tr><td>p</td><td>q</td></tr>`,
				`<tr><td>u</td><td>v</td></tr>`,
			},
		},
		{
			name:   "clipped bottom right",
			region: sheethtml.Region{LastRow: 2, LastCol: 3},
			want: []string{
				`<tr><td colspan="2">a</td><td>c</td><td>d</td></tr>`,
				`<tr><td>f</td><td>g</td><td colspan="2" rowspan="2">h</td></tr>`,
				`<tr><td>k</td><td>l</td></tr>`,
			},
		},
		{
			name:   "clipped top left",
			region: sheethtml.Region{FirstRow: 2, LastRow: 3, FirstCol: 3, LastCol: 4},
			want: []string{
				`<tr><td colspan="2" rowspan="2">n</td></tr>`,
				`<tr></tr>`,
			},
		},
		{
			name:   "single cell region",
			region: sheethtml.Region{FirstRow: 0, LastRow: 0, FirstCol: 1, LastCol: 1},
			want: []string{
				`<tr><td>b</td></tr>`,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := render(t, s, tt.region, wb)
			want := tableOpen + strings.Join(tt.want, "\n") + "\n</table>\n"
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("html mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRenderStyles(t *testing.T) {
	wb := xls.NewWorkbook()
	wb.Palette.Set(10, xls.RGB{1, 2, 3})
	font := wb.AddFont(xls.Font{Name: "Arial", HeightPt: 12, Bold: true, Color: 10})
	st := wb.AddStyle(xls.Style{
		Font:           font,
		HAlign:         sheethtml.HAlignCenter,
		Borders:        [4]sheethtml.BorderPattern{sheethtml.SideTop: sheethtml.BorderThin},
		BorderColors:   [4]int{sheethtml.SideTop: 8},
		FillPattern:    xls.FillSolid,
		FillForeground: 13,
		FillBackground: xls.AutomaticBackground,
		TextRotation:   30,
	})
	s := wb.AddSheet("Styled")
	s.SetCell(0, 0, sheethtml.CellText, "a&b\nc", st)
	s.SetCell(0, 1, sheethtml.CellNumeric, "42", 0)

	got := render(t, s, sheethtml.Region{LastCol: 1}, wb,
		sheethtml.HorizontalAlignment, sheethtml.Borders, sheethtml.CellBackgroundColor, sheethtml.Font, sheethtml.TextRotation)
	want := tableOpen +
		`<tr><td style="text-align:center;border-top:thin solid rgb(0,0,0);background-color:rgb(255,255,0);` +
		`font:bold 12pt Arial,Arial,sans-serif;color:rgb(1,2,3);` +
		`transform:rotate(-30deg);-webkit-transform:rotate(-30deg);-ms-transform:rotate(-30deg);-moz-transform:rotate(-30deg);">a&amp;b<br>c</td>` +
		`<td style="text-align:right;font:10pt Arial,Arial,sans-serif;color:black;">42</td></tr>` + "\n" +
		"</table>\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("html mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderFormulas(t *testing.T) {
	wb := xls.NewWorkbook()
	s := wb.AddSheet("Sums")
	s.SetFormula(0, 0, "SUM(B1:B2)", "3", 0)

	region := sheethtml.Region{}
	if got, want := render(t, s, region, wb, sheethtml.HorizontalAlignment),
		tableOpen+`<tr><td style="text-align:left;">SUM(B1:B2)</td></tr>`+"\n</table>\n"; got != want {
		t.Errorf("unevaluated:\n got %q\nwant %q", got, want)
	}
	if got, want := render(t, s, region, wb, sheethtml.HorizontalAlignment, sheethtml.EvaluateFormulas),
		tableOpen+`<tr><td style="text-align:right;">3</td></tr>`+"\n</table>\n"; got != want {
		t.Errorf("evaluated:\n got %q\nwant %q", got, want)
	}

	lower := sheethtml.FormatterFunc(func(c sheethtml.Cell, _ bool) string {
		return strings.ToLower(c.Formula())
	})
	r, err := sheethtml.NewRegion(s, region, xls.NewAdapter(wb), sheethtml.WithFormatter(lower))
	if err != nil {
		t.Fatalf("NewRegion: %v", err)
	}
	var b strings.Builder
	if err := r.Render(&b, sheethtml.Options{}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if want := tableOpen + "<tr><td>sum(b1:b2)</td></tr>\n</table>\n"; b.String() != want {
		t.Errorf("custom formatter:\n got %q\nwant %q", b.String(), want)
	}
}

func TestRenderIdempotent(t *testing.T) {
	wb := xls.NewWorkbook()
	s := wb.AddSheet("Twice")
	text(s, 0, 0, "a")
	text(s, 1, 1, "b")
	s.Merge(sheethtml.Region{FirstRow: 0, LastRow: 1, FirstCol: 0, LastCol: 0})

	r, err := sheethtml.New(s, xls.NewAdapter(wb))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got, want := r.Region(), (sheethtml.Region{FirstRow: 0, LastRow: 1, FirstCol: 0, LastCol: 0}); got != want {
		t.Errorf("whole-sheet region = %v, want %v", got, want)
	}
	opts := sheethtml.NewOptions(sheethtml.Standard, sheethtml.UseTableHeaders)
	var first, second strings.Builder
	if err := r.Render(&first, opts); err != nil {
		t.Fatalf("first Render: %v", err)
	}
	if err := r.Render(&second, opts); err != nil {
		t.Fatalf("second Render: %v", err)
	}
	if diff := cmp.Diff(first.String(), second.String()); diff != "" {
		t.Errorf("renders differ (-first +second):\n%s", diff)
	}
}

func TestRendererErrors(t *testing.T) {
	wb := xls.NewWorkbook()
	empty := wb.AddSheet("Empty")
	a := xls.NewAdapter(wb)

	if _, err := sheethtml.New(empty, a); !errors.Is(err, sheethtml.ErrEmptySheet) {
		t.Errorf("New(empty) error = %v, want ErrEmptySheet", err)
	}
	if _, err := sheethtml.New(nil, a); !errors.Is(err, sheethtml.ErrNilArgument) {
		t.Errorf("New(nil) error = %v, want ErrNilArgument", err)
	}
	if _, err := sheethtml.NewRegion(empty, sheethtml.Region{}, nil); !errors.Is(err, sheethtml.ErrNilArgument) {
		t.Errorf("NewRegion(nil adapter) error = %v, want ErrNilArgument", err)
	}

	invalid := []sheethtml.Region{
		{FirstRow: 2, LastRow: 1},
		{FirstCol: -1},
		{LastCol: 256},
	}
	for _, region := range invalid {
		var b strings.Builder
		err := sheethtml.Render(&b, empty, region, a, sheethtml.NewOptions(sheethtml.Standard))
		if !errors.Is(err, sheethtml.ErrInvalidRegion) {
			t.Errorf("Render(%v) error = %v, want ErrInvalidRegion", region, err)
		}
		if b.Len() != 0 {
			t.Errorf("Render(%v) wrote %q before failing", region, b.String())
		}
	}
}

var errSink = errors.New("sink closed")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errSink }

func TestRenderSinkError(t *testing.T) {
	wb := xls.NewWorkbook()
	s := wb.AddSheet("Sink")
	text(s, 0, 0, "a")

	err := sheethtml.Render(failingWriter{}, s, sheethtml.Region{}, xls.NewAdapter(wb), sheethtml.Options{})
	if !errors.Is(err, errSink) {
		t.Errorf("Render error = %v, want %v", err, errSink)
	}
}
