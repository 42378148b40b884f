// Package xlsx adapts unioffice workbooks to the sheethtml renderer.
//
// OOXML styles carry direct ARGB colours, theme references and, for legacy
// files, indexes into the BIFF palette. Sheet wraps a worksheet and Adapter
// resolves all three colour forms.
package xlsx

import (
	"strings"

	"github.com/unidoc/unioffice/schema/soo/dml"
	"github.com/unidoc/unioffice/schema/soo/sml"
	"github.com/unidoc/unioffice/spreadsheet"
)

// GetXf returns the cell format record for a style ID, or nil if the ID is
// out of range.
func GetXf(ss *sml.StyleSheet, styleID uint32) *sml.CT_Xf {
	if ss == nil || ss.CellXfs == nil || int(styleID) >= len(ss.CellXfs.Xf) {
		return nil
	}
	return ss.CellXfs.Xf[styleID]
}

// GetFontProps returns the font record referenced by a style ID.
func GetFontProps(ss *sml.StyleSheet, styleID uint32) *sml.CT_Font {
	xf := GetXf(ss, styleID)
	if xf == nil || xf.FontIdAttr == nil || ss.Fonts == nil {
		return nil
	}
	fontIdx := int(*xf.FontIdAttr)
	if fontIdx >= len(ss.Fonts.Font) {
		return nil
	}
	return ss.Fonts.Font[fontIdx]
}

// GetFillProps returns the fill record referenced by a style ID.
func GetFillProps(ss *sml.StyleSheet, styleID uint32) *sml.CT_Fill {
	xf := GetXf(ss, styleID)
	if xf == nil || xf.FillIdAttr == nil || ss.Fills == nil {
		return nil
	}
	fillIdx := int(*xf.FillIdAttr)
	if fillIdx >= len(ss.Fills.Fill) {
		return nil
	}
	return ss.Fills.Fill[fillIdx]
}

// GetBorderProps returns the border record referenced by a style ID.
func GetBorderProps(ss *sml.StyleSheet, styleID uint32) *sml.CT_Border {
	xf := GetXf(ss, styleID)
	if xf == nil || xf.BorderIdAttr == nil || ss.Borders == nil {
		return nil
	}
	borderIdx := int(*xf.BorderIdAttr)
	if borderIdx >= len(ss.Borders.Border) {
		return nil
	}
	return ss.Borders.Border[borderIdx]
}

// ThemeColorToRGB resolves a theme color index (0-based) to an RGB hex string (e.g., "FFFFFF").
// It does not apply tint. Returns false if the index is invalid or the color cannot be resolved.
//
// SpreadsheetML numbers the scheme light-first: 0 and 1 are lt1 and dk1,
// 2 and 3 are lt2 and dk2.
func ThemeColorToRGB(wb *spreadsheet.Workbook, themeIdx int) (string, bool) {
	if wb == nil {
		return "", false
	}
	themes := wb.Themes()
	if len(themes) == 0 || themes[0] == nil || themes[0].ThemeElements == nil || themes[0].ThemeElements.ClrScheme == nil {
		return "", false
	}
	clrScheme := themes[0].ThemeElements.ClrScheme

	var clr *dml.CT_Color
	switch themeIdx {
	case 0:
		clr = clrScheme.Lt1
	case 1:
		clr = clrScheme.Dk1
	case 2:
		clr = clrScheme.Lt2
	case 3:
		clr = clrScheme.Dk2
	case 4:
		clr = clrScheme.Accent1
	case 5:
		clr = clrScheme.Accent2
	case 6:
		clr = clrScheme.Accent3
	case 7:
		clr = clrScheme.Accent4
	case 8:
		clr = clrScheme.Accent5
	case 9:
		clr = clrScheme.Accent6
	case 10:
		clr = clrScheme.Hlink
	case 11:
		clr = clrScheme.FolHlink
	default:
		return "", false
	}

	if clr == nil {
		return "", false
	}

	if clr.SrgbClr != nil && clr.SrgbClr.ValAttr != "" {
		return clr.SrgbClr.ValAttr, true
	} else if clr.SysClr != nil && clr.SysClr.LastClrAttr != nil {
		return *clr.SysClr.LastClrAttr, true
	}
	return "", false
}

// normalizeColor converts an 8-digit ARGB hex (as used in XLSX) to a 6-digit RGB string.
// If the string is already 6 digits (or any other length), it is returned unchanged.
func normalizeColor(hex string) string {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) == 8 {
		return hex[2:]
	}
	return hex
}
