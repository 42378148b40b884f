package sheethtml

import "strings"

// fontRules selects the font rules for opts. Family and size are fused into
// one font shorthand; when the style is requested too it joins the
// shorthand. Anything not fused gets its own rule.
func fontRules(opts Options, adapter StyleAdapter) []StyleRule {
	base := fontRule{adapter: adapter}
	if opts.Has(FontSize | FontFamily) {
		if opts.Has(FontStyle) {
			return []StyleRule{fullFontShorthandRule{base}}
		}
		return []StyleRule{fontShorthandRule{base}}
	}
	var rules []StyleRule
	if opts.Has(FontFamily) {
		rules = append(rules, fontFamilyRule{base})
	}
	if opts.Has(FontSize) {
		rules = append(rules, fontSizeRule{base})
	}
	if opts.Has(FontStyle) {
		rules = append(rules, fontStyleRule{base})
	}
	return rules
}

// fontRule holds what every font rule shares.
type fontRule struct {
	adapter StyleAdapter
}

// families returns the font name followed by the adapter's fallback
// families.
func (r fontRule) families(f FontInfo) string {
	name := sanitizeFontFamily(strings.TrimSpace(f.Name))
	if name == "" {
		return r.adapter.DefaultFontFamilies()
	}
	return name + "," + r.adapter.DefaultFontFamilies()
}

type fontShorthandRule struct{ fontRule }

func (r fontShorthandRule) Apply(_ Cell, s CellStyle, _ Span, css *strings.Builder) {
	f := r.adapter.Font(s)
	css.WriteString("font:")
	css.WriteString(formatNumber(f.SizePt))
	css.WriteString("pt ")
	css.WriteString(r.families(f))
	css.WriteString(";")
}

type fullFontShorthandRule struct{ fontRule }

func (r fullFontShorthandRule) Apply(_ Cell, s CellStyle, _ Span, css *strings.Builder) {
	f := r.adapter.Font(s)
	css.WriteString("font:")
	if f.Italic {
		css.WriteString("italic ")
	}
	if f.Bold {
		css.WriteString("bold ")
	}
	css.WriteString(formatNumber(f.SizePt))
	css.WriteString("pt ")
	css.WriteString(r.families(f))
	css.WriteString(";")
	if f.Underline {
		css.WriteString("text-decoration:underline;")
	}
}

type fontFamilyRule struct{ fontRule }

func (r fontFamilyRule) Apply(_ Cell, s CellStyle, _ Span, css *strings.Builder) {
	css.WriteString("font-family:")
	css.WriteString(r.families(r.adapter.Font(s)))
	css.WriteString(";")
}

type fontSizeRule struct{ fontRule }

func (r fontSizeRule) Apply(_ Cell, s CellStyle, _ Span, css *strings.Builder) {
	css.WriteString("font-size:")
	css.WriteString(formatNumber(r.adapter.Font(s).SizePt))
	css.WriteString("pt;")
}

type fontStyleRule struct{ fontRule }

func (r fontStyleRule) Apply(_ Cell, s CellStyle, _ Span, css *strings.Builder) {
	f := r.adapter.Font(s)
	if f.Italic {
		css.WriteString("font-style:italic;")
	}
	if f.Bold {
		css.WriteString("font-weight:bold;")
	}
	if f.Underline {
		css.WriteString("text-decoration:underline;")
	}
}

type fontColorRule struct {
	adapter StyleAdapter
}

func (r fontColorRule) Apply(_ Cell, s CellStyle, _ Span, css *strings.Builder) {
	color := r.adapter.Font(s).Color
	if color == "" {
		color = "black"
	}
	css.WriteString("color:")
	css.WriteString(color)
	css.WriteString(";")
}
