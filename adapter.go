package sheethtml

// StyleAdapter resolves the format specific colour and font representation
// of a CellStyle into CSS values. Implementations must be safe to share
// between concurrent renders.
type StyleAdapter interface {
	// BorderColor returns the CSS colour of one border side.
	BorderColor(side BorderSide, s CellStyle) string
	// BackgroundColor returns the CSS fill colour, or "" when the cell has
	// no fill or the fill is the automatic colour.
	BackgroundColor(s CellStyle) string
	// Font returns the resolved font. Its Color is "black" when the font
	// colour cannot be resolved.
	Font(s CellStyle) FontInfo
	// DefaultFontFamilies returns the fallback font-family list, e.g.
	// "Calibri,sans-serif".
	DefaultFontFamilies() string
	// CSSRotation converts a raw rotation into CSS degrees.
	CSSRotation(raw int) int
}
