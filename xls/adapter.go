package xls

import "github.com/aerissecure/sheethtml"

// DefaultFontFamilies is the fallback font-family list of BIFF workbooks.
const DefaultFontFamilies = "Arial,sans-serif"

// Adapter resolves palette indexes of a Workbook into CSS values. It
// implements sheethtml.StyleAdapter for styles of type Style.
type Adapter struct {
	wb *Workbook
}

var _ sheethtml.StyleAdapter = (*Adapter)(nil)

// NewAdapter returns the adapter for wb.
func NewAdapter(wb *Workbook) *Adapter {
	return &Adapter{wb: wb}
}

func (a *Adapter) palette() *Palette {
	if a.wb.Palette == nil {
		return defaultPalette
	}
	return a.wb.Palette
}

// CSSColor returns the palette colour at index as rgb(r,g,b), or "black"
// when the palette has no such colour.
func (a *Adapter) CSSColor(index int) string {
	c, ok := a.palette().Color(index)
	if !ok {
		return "black"
	}
	return c.String()
}

func (a *Adapter) BorderColor(side sheethtml.BorderSide, s sheethtml.CellStyle) string {
	st, ok := s.(Style)
	if !ok || side < 0 || int(side) >= len(st.BorderColors) {
		return "black"
	}
	return a.CSSColor(st.BorderColors[side])
}

// BackgroundColor resolves the fill foreground colour, falling back to the
// fill background colour. Unfilled cells and automatic colours have no
// background.
func (a *Adapter) BackgroundColor(s sheethtml.CellStyle) string {
	st, ok := s.(Style)
	if !ok || st.FillPattern == FillNone {
		return ""
	}
	idx := st.FillForeground
	c, ok := a.palette().Color(idx)
	if !ok {
		idx = st.FillBackground
		c, ok = a.palette().Color(idx)
	}
	if !ok || idx == Automatic || idx == AutomaticBackground {
		return ""
	}
	return c.String()
}

func (a *Adapter) Font(s sheethtml.CellStyle) sheethtml.FontInfo {
	fontIdx := 0
	if st, ok := s.(Style); ok {
		fontIdx = st.Font
	}
	f, ok := a.wb.font(fontIdx)
	if !ok {
		f, ok = a.wb.font(0)
	}
	if !ok {
		return sheethtml.FontInfo{Color: "black"}
	}
	return sheethtml.FontInfo{
		Name:      f.Name,
		SizePt:    f.HeightPt,
		Bold:      f.Bold,
		Italic:    f.Italic,
		Underline: f.Underline != UnderlineNone,
		Color:     a.CSSColor(f.Color),
	}
}

func (a *Adapter) DefaultFontFamilies() string {
	return DefaultFontFamilies
}

// CSSRotation negates the stored rotation: BIFF rotates counter-clockwise,
// CSS clockwise. Stacked text is not rotated.
func (a *Adapter) CSSRotation(raw int) int {
	if raw == 0xFF {
		return 0
	}
	return -raw
}
