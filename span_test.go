package sheethtml

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
)

func TestRegionValidate(t *testing.T) {
	tests := []struct {
		name    string
		r       Region
		wantErr bool
	}{
		{"single cell", Region{}, false},
		{"negative", Region{FirstRow: -1, LastRow: 2}, true},
		{"inverted rows", Region{FirstRow: 3, LastRow: 2}, true},
		{"inverted cols", Region{FirstCol: 3, LastCol: 2}, true},
		{"last xls row", Region{LastRow: 65535, LastCol: 255}, false},
		{"past xls rows", Region{LastRow: 65536}, true},
		{"past xls cols", Region{LastCol: 256}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.r.Validate(Excel97)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate(%v) error = %v, wantErr %v", tt.r, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidRegion) {
				t.Errorf("Validate error %v does not wrap ErrInvalidRegion", err)
			}
		})
	}
	if err := (Region{LastRow: 65536}).Validate(Excel2007); err != nil {
		t.Errorf("Excel2007 rejected row 65536: %v", err)
	}
}

func TestRegionIntersects(t *testing.T) {
	r := Region{FirstRow: 2, LastRow: 4, FirstCol: 2, LastCol: 4}
	tests := []struct {
		o    Region
		want bool
	}{
		{Region{FirstRow: 0, LastRow: 1, FirstCol: 0, LastCol: 9}, false},
		{Region{FirstRow: 0, LastRow: 2, FirstCol: 0, LastCol: 2}, true},
		{Region{FirstRow: 3, LastRow: 3, FirstCol: 5, LastCol: 6}, false},
		{Region{FirstRow: 1, LastRow: 9, FirstCol: 1, LastCol: 9}, true},
	}
	for _, tt := range tests {
		if got := r.Intersects(tt.o); got != tt.want {
			t.Errorf("Intersects(%v) = %v, want %v", tt.o, got, tt.want)
		}
	}
}

type spanStep struct {
	row, col int
	span     Span
	kind     spanKind
}

func runSpanSteps(t *testing.T, s *spanResolver, steps []spanStep) {
	t.Helper()
	for _, st := range steps {
		span, kind := s.resolve(st.row, st.col)
		if kind != st.kind || span != st.span {
			t.Errorf("resolve(%d,%d) = %v %v, want %v %v", st.row, st.col, span, kind, st.span, st.kind)
		}
	}
}

func TestSpanResolverInside(t *testing.T) {
	region := Region{FirstRow: 0, LastRow: 3, FirstCol: 0, LastCol: 3}
	s := newSpanResolver(region, []Region{{FirstRow: 1, LastRow: 2, FirstCol: 1, LastCol: 3}}, log.New(io.Discard))

	runSpanSteps(t, s, []spanStep{
		{0, 0, Span{1, 1}, spanPlain},
		{1, 0, Span{1, 1}, spanPlain},
		{1, 1, Span{RowSpan: 2, ColSpan: 3}, spanAnchor},
		{1, 2, Span{}, spanSuppressed},
		{1, 3, Span{}, spanSuppressed},
		{2, 1, Span{}, spanSuppressed},
		{2, 3, Span{}, spanSuppressed},
		{3, 1, Span{1, 1}, spanPlain},
	})
	if !s.suppressed(2, 2) {
		t.Error("suppressed(2,2) = false inside closed merge")
	}
	if s.suppressed(0, 1) {
		t.Error("suppressed(0,1) = true outside merges")
	}
}

func TestSpanResolverClipped(t *testing.T) {
	tests := []struct {
		name   string
		region Region
		merge  Region
		steps  []spanStep
	}{
		{
			name:   "bottom right",
			region: Region{FirstRow: 0, LastRow: 1, FirstCol: 0, LastCol: 1},
			merge:  Region{FirstRow: 0, LastRow: 5, FirstCol: 0, LastCol: 5},
			steps: []spanStep{
				{0, 0, Span{RowSpan: 2, ColSpan: 2}, spanAnchor},
				{0, 1, Span{}, spanSuppressed},
			},
		},
		{
			name:   "top left becomes de-facto anchor",
			region: Region{FirstRow: 2, LastRow: 4, FirstCol: 2, LastCol: 4},
			merge:  Region{FirstRow: 1, LastRow: 3, FirstCol: 1, LastCol: 3},
			steps: []spanStep{
				{2, 2, Span{RowSpan: 2, ColSpan: 2}, spanAnchor},
				{2, 3, Span{}, spanSuppressed},
				{3, 2, Span{}, spanSuppressed},
				{4, 2, Span{1, 1}, spanPlain},
			},
		},
		{
			name:   "outside region",
			region: Region{FirstRow: 0, LastRow: 1, FirstCol: 0, LastCol: 1},
			merge:  Region{FirstRow: 5, LastRow: 6, FirstCol: 5, LastCol: 6},
			steps: []spanStep{
				{0, 0, Span{1, 1}, spanPlain},
			},
		},
		{
			name:   "inverted merge ignored",
			region: Region{FirstRow: 0, LastRow: 3, FirstCol: 0, LastCol: 3},
			merge:  Region{FirstRow: 2, LastRow: 1, FirstCol: 0, LastCol: 1},
			steps: []spanStep{
				{1, 0, Span{1, 1}, spanPlain},
				{2, 0, Span{1, 1}, spanPlain},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSpanResolver(tt.region, []Region{tt.merge}, log.New(io.Discard))
			runSpanSteps(t, s, tt.steps)
		})
	}
}
