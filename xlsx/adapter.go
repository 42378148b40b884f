package xlsx

import (
	"regexp"

	"github.com/unidoc/unioffice/schema/soo/sml"
	"github.com/unidoc/unioffice/spreadsheet"

	"github.com/aerissecure/sheethtml"
	"github.com/aerissecure/sheethtml/xls"
)

// DefaultFontFamilies is the fallback font-family list of OOXML workbooks.
const DefaultFontFamilies = "Calibri,sans-serif"

// defaultFontSizePt applies to styles without a font record.
const defaultFontSizePt = 11

var hexColor = regexp.MustCompile(`^(?:[0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// Adapter resolves the colours of a workbook's styles into CSS values. It
// implements sheethtml.StyleAdapter for styles of type *Style.
type Adapter struct {
	wb *spreadsheet.Workbook
}

var _ sheethtml.StyleAdapter = (*Adapter)(nil)

// NewAdapter returns the adapter for wb. Theme colours resolve against the
// workbook's first theme.
func NewAdapter(wb *spreadsheet.Workbook) *Adapter {
	return &Adapter{wb: wb}
}

// CSSColor returns c as #RRGGBB, or "black" for nil, automatic and
// unresolvable colours.
func (a *Adapter) CSSColor(c *sml.CT_Color) string {
	if css, ok := a.resolve(c); ok {
		return css
	}
	return "black"
}

// resolve tries the explicit ARGB value, then the theme, then the legacy
// indexed palette.
func (a *Adapter) resolve(c *sml.CT_Color) (string, bool) {
	if c == nil || isAuto(c) {
		return "", false
	}
	if c.RgbAttr != nil {
		if hex := normalizeColor(*c.RgbAttr); hexColor.MatchString(hex) {
			return "#" + hex, true
		}
	}
	if c.ThemeAttr != nil {
		if hex, ok := ThemeColorToRGB(a.wb, int(*c.ThemeAttr)); ok && hexColor.MatchString(hex) {
			return "#" + hex, true
		}
	}
	if c.IndexedAttr != nil {
		if rgb, ok := xls.DefaultColor(int(*c.IndexedAttr)); ok {
			return "#" + rgb.Hex(), true
		}
	}
	return "", false
}

func isAuto(c *sml.CT_Color) bool {
	if c.AutoAttr != nil && *c.AutoAttr {
		return true
	}
	if c.IndexedAttr != nil {
		idx := int(*c.IndexedAttr)
		return idx == xls.Automatic || idx == xls.AutomaticBackground
	}
	return false
}

func (a *Adapter) BorderColor(side sheethtml.BorderSide, s sheethtml.CellStyle) string {
	st, ok := s.(*Style)
	if !ok {
		return "black"
	}
	pr := st.borderPr(side)
	if pr == nil {
		return "black"
	}
	return a.CSSColor(pr.Color)
}

// BackgroundColor returns the pattern foreground colour, falling back to the
// pattern background colour. Cells without a pattern fill have none.
func (a *Adapter) BackgroundColor(s sheethtml.CellStyle) string {
	st, ok := s.(*Style)
	if !ok || st.fill == nil || st.fill.PatternFill == nil {
		return ""
	}
	pf := st.fill.PatternFill
	// an absent patternType reads as none
	switch pf.PatternTypeAttr.String() {
	case "", "none":
		return ""
	}
	if css, ok := a.resolve(pf.FgColor); ok {
		return css
	}
	if css, ok := a.resolve(pf.BgColor); ok {
		return css
	}
	return ""
}

func (a *Adapter) Font(s sheethtml.CellStyle) sheethtml.FontInfo {
	st, ok := s.(*Style)
	if !ok || st.font == nil {
		return sheethtml.FontInfo{SizePt: defaultFontSizePt, Color: "black"}
	}
	f := st.font
	out := sheethtml.FontInfo{SizePt: defaultFontSizePt, Color: "black"}
	if len(f.Name) > 0 {
		out.Name = f.Name[0].ValAttr
	}
	if len(f.Sz) > 0 {
		out.SizePt = f.Sz[0].ValAttr
	}
	out.Bold = isSet(f.B)
	out.Italic = isSet(f.I)
	if len(f.U) > 0 {
		out.Underline = f.U[0].ValAttr.String() != "none"
	}
	if len(f.Color) > 0 {
		out.Color = a.CSSColor(f.Color[0])
	}
	return out
}

// isSet reports whether a boolean font property is present and not false.
func isSet(props []*sml.CT_BooleanProperty) bool {
	if len(props) == 0 {
		return false
	}
	return props[0].ValAttr == nil || *props[0].ValAttr
}

func (a *Adapter) DefaultFontFamilies() string {
	return DefaultFontFamilies
}

// CSSRotation converts textRotation to clockwise CSS degrees. Values above
// 90 already run clockwise; 255 is stacked text, which is not rotated.
func (a *Adapter) CSSRotation(raw int) int {
	switch {
	case raw == 0xFF:
		return 0
	case raw > 90:
		return raw - 90
	default:
		return -raw
	}
}
