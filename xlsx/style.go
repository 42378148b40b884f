package xlsx

import (
	"github.com/unidoc/unioffice/schema/soo/sml"

	"github.com/aerissecure/sheethtml"
)

// Style is the resolved cell format of one style ID. It implements
// sheethtml.CellStyle; Adapter reads its font, fill and border records.
type Style struct {
	xf     *sml.CT_Xf
	font   *sml.CT_Font
	fill   *sml.CT_Fill
	border *sml.CT_Border
}

var _ sheethtml.CellStyle = (*Style)(nil)

func newStyle(ss *sml.StyleSheet, styleID uint32) *Style {
	return &Style{
		xf:     GetXf(ss, styleID),
		font:   GetFontProps(ss, styleID),
		fill:   GetFillProps(ss, styleID),
		border: GetBorderProps(ss, styleID),
	}
}

func (s *Style) alignment() *sml.CT_CellAlignment {
	if s == nil || s.xf == nil {
		return nil
	}
	return s.xf.Alignment
}

func (s *Style) HorizontalAlignment() sheethtml.HAlign {
	al := s.alignment()
	if al == nil {
		return sheethtml.HAlignGeneral
	}
	switch al.HorizontalAttr.String() {
	case "left":
		return sheethtml.HAlignLeft
	case "center":
		return sheethtml.HAlignCenter
	case "right":
		return sheethtml.HAlignRight
	case "fill":
		return sheethtml.HAlignFill
	case "justify":
		return sheethtml.HAlignJustify
	case "centerContinuous":
		return sheethtml.HAlignCenterContinuous
	case "distributed":
		return sheethtml.HAlignDistributed
	default:
		return sheethtml.HAlignGeneral
	}
}

func (s *Style) VerticalAlignment() sheethtml.VAlign {
	al := s.alignment()
	if al == nil {
		return sheethtml.VAlignBottom
	}
	switch al.VerticalAttr.String() {
	case "top":
		return sheethtml.VAlignTop
	case "center":
		return sheethtml.VAlignCenter
	case "justify":
		return sheethtml.VAlignJustify
	case "distributed":
		return sheethtml.VAlignDistributed
	default:
		return sheethtml.VAlignBottom
	}
}

// Rotation returns the raw textRotation attribute: 0..90 counter-clockwise,
// 91..180 clockwise, 255 for stacked text.
func (s *Style) Rotation() int {
	al := s.alignment()
	if al == nil || al.TextRotationAttr == nil {
		return 0
	}
	return int(*al.TextRotationAttr)
}

func (s *Style) Border(side sheethtml.BorderSide) sheethtml.BorderPattern {
	pr := s.borderPr(side)
	if pr == nil {
		return sheethtml.BorderNone
	}
	return borderStyles[pr.StyleAttr.String()]
}

func (s *Style) borderPr(side sheethtml.BorderSide) *sml.CT_BorderPr {
	if s == nil || s.border == nil {
		return nil
	}
	switch side {
	case sheethtml.SideTop:
		return s.border.Top
	case sheethtml.SideRight:
		return s.border.Right
	case sheethtml.SideBottom:
		return s.border.Bottom
	case sheethtml.SideLeft:
		return s.border.Left
	}
	return nil
}

// borderStyles maps ST_BorderStyle names; absent names are BorderNone.
var borderStyles = map[string]sheethtml.BorderPattern{
	"thin":             sheethtml.BorderThin,
	"medium":           sheethtml.BorderMedium,
	"dashed":           sheethtml.BorderDashed,
	"dotted":           sheethtml.BorderDotted,
	"thick":            sheethtml.BorderThick,
	"double":           sheethtml.BorderDouble,
	"hair":             sheethtml.BorderHair,
	"mediumDashed":     sheethtml.BorderMediumDashed,
	"dashDot":          sheethtml.BorderDashDot,
	"mediumDashDot":    sheethtml.BorderMediumDashDot,
	"dashDotDot":       sheethtml.BorderDashDotDot,
	"mediumDashDotDot": sheethtml.BorderMediumDashDotDot,
	"slantDashDot":     sheethtml.BorderSlantDashDot,
}
