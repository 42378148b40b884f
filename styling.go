package sheethtml

import (
	"regexp"
	"strconv"
	"strings"
)

// StyleRule appends CSS declarations for one cell to css. Rules keep no
// state between cells and never read what other rules wrote.
type StyleRule interface {
	Apply(c Cell, s CellStyle, span Span, css *strings.Builder)
}

// RuleFunc adapts an ordinary function to a StyleRule.
type RuleFunc func(c Cell, s CellStyle, span Span, css *strings.Builder)

// Apply calls f.
func (f RuleFunc) Apply(c Cell, s CellStyle, span Span, css *strings.Builder) {
	f(c, s, span, css)
}

// Pipeline is the ordered list of rules active for a render.
type Pipeline []StyleRule

// BuildPipeline assembles the rules selected by opts. The order of the rules
// is the order of the declarations in the style attribute.
func BuildPipeline(opts Options, sheet Sheet, adapter StyleAdapter) Pipeline {
	var p Pipeline

	if opts.Has(HorizontalAlignment) {
		p = append(p, horizontalAlignRule{evaluateFormulas: opts.Has(EvaluateFormulas)})
	}
	if opts.Has(VerticalAlignment) {
		p = append(p, RuleFunc(verticalAlign))
	}

	switch {
	case opts.Has(BorderStyle):
		p = append(p, borderRule{adapter: adapter, withColor: opts.Has(BorderColor)})
	case opts.Has(BorderColor):
		// colours without widths
		p = append(p, borderColorRule{adapter: adapter})
	}

	if opts.Has(CellWidth) {
		p = append(p, widthRule{sheet: sheet})
	}
	if opts.Has(CellBackgroundColor) {
		p = append(p, backgroundRule{adapter: adapter})
	}

	p = append(p, fontRules(opts, adapter)...)

	if opts.Has(FontColor) {
		p = append(p, fontColorRule{adapter: adapter})
	}
	if opts.Has(TextRotation) {
		p = append(p, rotationRule{adapter: adapter})
	}
	return p
}

// Style runs every rule for the cell and returns the accumulated
// declarations.
func (p Pipeline) Style(c Cell, span Span) string {
	if len(p) == 0 {
		return ""
	}
	s := c.Style()
	if s == nil {
		s = defaultStyle{}
	}
	var css strings.Builder
	for _, r := range p {
		r.Apply(c, s, span, &css)
	}
	return css.String()
}

// defaultStyle stands in for cells that carry no style handle.
type defaultStyle struct{}

func (defaultStyle) HorizontalAlignment() HAlign { return HAlignGeneral }
func (defaultStyle) VerticalAlignment() VAlign { return VAlignBottom }
func (defaultStyle) Border(BorderSide) BorderPattern { return BorderNone }
func (defaultStyle) Rotation() int { return 0 }

type horizontalAlignRule struct {
	evaluateFormulas bool
}

func (r horizontalAlignRule) Apply(c Cell, s CellStyle, _ Span, css *strings.Builder) {
	css.WriteString("text-align:")
	css.WriteString(r.align(c, s))
	css.WriteString(";")
}

func (r horizontalAlignRule) align(c Cell, s CellStyle) string {
	switch s.HorizontalAlignment() {
	case HAlignLeft:
		return "left"
	case HAlignRight:
		return "right"
	case HAlignCenter, HAlignCenterContinuous, HAlignDistributed:
		return "center"
	case HAlignJustify:
		return "justify"
	}
	// general: align by value type, as a spreadsheet does
	switch c.Type() {
	case CellNumeric:
		return "right"
	case CellBoolean:
		return "center"
	case CellFormula:
		// unevaluated formulas show their text
		if r.evaluateFormulas {
			return "right"
		}
	}
	return "left"
}

func verticalAlign(_ Cell, s CellStyle, _ Span, css *strings.Builder) {
	switch s.VerticalAlignment() {
	case VAlignTop:
		css.WriteString("vertical-align:top;")
	case VAlignCenter:
		css.WriteString("vertical-align:middle;")
	default:
		css.WriteString("vertical-align:bottom;")
	}
}

type borderRule struct {
	adapter   StyleAdapter
	withColor bool
}

func (r borderRule) Apply(_ Cell, s CellStyle, _ Span, css *strings.Builder) {
	for _, side := range borderSides {
		line := borderLine(s.Border(side))
		if line == "" {
			continue
		}
		css.WriteString("border-")
		css.WriteString(side.String())
		css.WriteString(":")
		css.WriteString(line)
		if r.withColor {
			css.WriteString(" ")
			css.WriteString(r.adapter.BorderColor(side, s))
		}
		css.WriteString(";")
	}
}

// borderLine maps a border pattern to a CSS width and line style.
func borderLine(b BorderPattern) string {
	switch b {
	case BorderHair, BorderThin:
		return "thin solid"
	case BorderMedium:
		return "medium solid"
	case BorderDashDotDot, BorderDashDot, BorderDashed:
		return "thin dashed"
	case BorderDotted:
		return "medium dotted"
	case BorderThick:
		return "thick solid"
	case BorderDouble:
		return "medium double"
	case BorderSlantDashDot, BorderMediumDashDotDot, BorderMediumDashDot, BorderMediumDashed:
		return "medium dashed"
	}
	return ""
}

type borderColorRule struct {
	adapter StyleAdapter
}

func (r borderColorRule) Apply(_ Cell, s CellStyle, _ Span, css *strings.Builder) {
	for _, side := range borderSides {
		css.WriteString("border-")
		css.WriteString(side.String())
		css.WriteString("-color:")
		css.WriteString(r.adapter.BorderColor(side, s))
		css.WriteString(";")
	}
}

type widthRule struct {
	sheet Sheet
}

// Apply writes the column width. A merged cell gets the width of every
// covered column except the last one.
func (r widthRule) Apply(c Cell, _ CellStyle, span Span, css *strings.Builder) {
	var w float64
	if span.ColSpan <= 1 {
		w = r.sheet.ColumnWidthPx(c.Col())
	} else {
		for col := c.Col(); col < c.Col()+span.ColSpan-1; col++ {
			w += r.sheet.ColumnWidthPx(col)
		}
	}
	css.WriteString("width:")
	css.WriteString(formatNumber(w))
	css.WriteString("px;")
}

type backgroundRule struct {
	adapter StyleAdapter
}

func (r backgroundRule) Apply(_ Cell, s CellStyle, _ Span, css *strings.Builder) {
	if color := r.adapter.BackgroundColor(s); color != "" {
		css.WriteString("background-color:")
		css.WriteString(color)
		css.WriteString(";")
	}
}

type rotationRule struct {
	adapter StyleAdapter
}

var transformProperties = [...]string{"transform", "-webkit-transform", "-ms-transform", "-moz-transform"}

func (r rotationRule) Apply(_ Cell, s CellStyle, _ Span, css *strings.Builder) {
	deg := r.adapter.CSSRotation(s.Rotation())
	if deg == 0 {
		return
	}
	v := ":rotate(" + strconv.Itoa(deg) + "deg);"
	for _, p := range transformProperties {
		css.WriteString(p)
		css.WriteString(v)
	}
}

var fontFamilySafeRe = regexp.MustCompile(`[^a-zA-Z0-9 ,_-]+`)

// sanitizeFontFamily strips any characters that are not considered safe for
// a CSS font-family declaration.
func sanitizeFontFamily(s string) string {
	return fontFamilySafeRe.ReplaceAllString(s, "")
}

// formatNumber prints v in its shortest form: 110, 12.5.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
