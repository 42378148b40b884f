package sheethtml

import "github.com/charmbracelet/log"

type spanKind int

const (
	spanPlain spanKind = iota
	spanAnchor
	spanSuppressed
)

// spanResolver decides, for each visited cell, whether it is covered by a
// merge already rendered, whether it starts a merge, or neither. Cells must
// be visited top to bottom, left to right; the resolver is used by a single
// render only.
type spanResolver struct {
	region  Region
	pending []Region
	closed  []Region
}

func newSpanResolver(region Region, merges []Region, logger *log.Logger) *spanResolver {
	s := &spanResolver{region: region}
	for _, m := range merges {
		if m.FirstRow > m.LastRow || m.FirstCol > m.LastCol {
			logger.Debug("ignoring inverted merged region", "merge", m)
			continue
		}
		if region.Intersects(m) {
			s.pending = append(s.pending, m)
		}
	}
	return s
}

// resolve returns the span of the cell at (row, col). The first visited cell
// of a pending merge becomes its anchor; for merges clipped by the top or
// left edge of the region that is the cell nearest the boundary.
func (s *spanResolver) resolve(row, col int) (Span, spanKind) {
	if s.suppressed(row, col) {
		return Span{}, spanSuppressed
	}
	for i, m := range s.pending {
		if !m.Contains(row, col) {
			continue
		}
		s.pending = append(s.pending[:i], s.pending[i+1:]...)
		s.closed = append(s.closed, m)
		return Span{
			RowSpan: min(m.LastRow, s.region.LastRow) - row + 1,
			ColSpan: min(m.LastCol, s.region.LastCol) - col + 1,
		}, spanAnchor
	}
	return Span{RowSpan: 1, ColSpan: 1}, spanPlain
}

// suppressed reports whether (row, col) is covered by a merge whose anchor
// has already been rendered.
func (s *spanResolver) suppressed(row, col int) bool {
	for _, m := range s.closed {
		if m.Contains(row, col) {
			return true
		}
	}
	return false
}
