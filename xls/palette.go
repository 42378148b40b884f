package xls

import "fmt"

// Palette indexes with a special meaning.
const (
	// Automatic is the system window-text colour a style uses when no
	// explicit colour is set.
	Automatic = 0x40
	// AutomaticBackground is the system window-background colour.
	AutomaticBackground = 0x41
	// FontAutomatic is the colour index of fonts without an explicit colour.
	FontAutomatic = 0x7FFF
)

// RGB is a palette entry.
type RGB [3]uint8

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c[0], c[1], c[2])
}

// Hex returns the colour as RRGGBB.
func (c RGB) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c[0], c[1], c[2])
}

// defaultColors is the BIFF8 default palette for indexes 8..63. Indexes 0..7
// repeat the first eight entries.
var defaultColors = [56]RGB{
	{0x00, 0x00, 0x00}, {0xFF, 0xFF, 0xFF}, {0xFF, 0x00, 0x00}, {0x00, 0xFF, 0x00},
	{0x00, 0x00, 0xFF}, {0xFF, 0xFF, 0x00}, {0xFF, 0x00, 0xFF}, {0x00, 0xFF, 0xFF},
	{0x80, 0x00, 0x00}, {0x00, 0x80, 0x00}, {0x00, 0x00, 0x80}, {0x80, 0x80, 0x00},
	{0x80, 0x00, 0x80}, {0x00, 0x80, 0x80}, {0xC0, 0xC0, 0xC0}, {0x80, 0x80, 0x80},
	{0x99, 0x99, 0xFF}, {0x99, 0x33, 0x66}, {0xFF, 0xFF, 0xCC}, {0xCC, 0xFF, 0xFF},
	{0x66, 0x00, 0x66}, {0xFF, 0x80, 0x80}, {0x00, 0x66, 0xCC}, {0xCC, 0xCC, 0xFF},
	{0x00, 0x00, 0x80}, {0xFF, 0x00, 0xFF}, {0xFF, 0xFF, 0x00}, {0x00, 0xFF, 0xFF},
	{0x80, 0x00, 0x80}, {0x80, 0x00, 0x00}, {0x00, 0x80, 0x80}, {0x00, 0x00, 0xFF},
	{0x00, 0xCC, 0xFF}, {0xCC, 0xFF, 0xFF}, {0xCC, 0xFF, 0xCC}, {0xFF, 0xFF, 0x99},
	{0x99, 0xCC, 0xFF}, {0xFF, 0x99, 0xCC}, {0xCC, 0x99, 0xFF}, {0xFF, 0xCC, 0x99},
	{0x33, 0x66, 0xFF}, {0x33, 0xCC, 0xCC}, {0x99, 0xCC, 0x00}, {0xFF, 0xCC, 0x00},
	{0xFF, 0x99, 0x00}, {0xFF, 0x66, 0x00}, {0x66, 0x66, 0x99}, {0x96, 0x96, 0x96},
	{0x00, 0x33, 0x66}, {0x33, 0x99, 0x66}, {0x00, 0x33, 0x00}, {0x33, 0x33, 0x00},
	{0x99, 0x33, 0x00}, {0x99, 0x33, 0x66}, {0x33, 0x33, 0x99}, {0x33, 0x33, 0x33},
}

// Palette maps colour indexes to RGB values. The zero value is not usable;
// use NewPalette.
type Palette struct {
	colors map[int]RGB
}

// NewPalette returns the default palette.
func NewPalette() *Palette {
	p := &Palette{colors: make(map[int]RGB, len(defaultColors)+10)}
	for i, c := range defaultColors {
		p.colors[i+8] = c
		if i < 8 {
			p.colors[i] = c
		}
	}
	p.colors[Automatic] = RGB{0x00, 0x00, 0x00}
	p.colors[AutomaticBackground] = RGB{0xFF, 0xFF, 0xFF}
	return p
}

var defaultPalette = NewPalette()

// DefaultColor returns the colour at index in the unmodified palette. OOXML
// files use it for their legacy indexed colours.
func DefaultColor(index int) (RGB, bool) {
	return defaultPalette.Color(index)
}

// Set overrides the colour at index, as a PALETTE record does. Only indexes
// 8..63 can be customised.
func (p *Palette) Set(index int, c RGB) bool {
	if index < 8 || index > 63 {
		return false
	}
	p.colors[index] = c
	return true
}

// Color returns the colour at index.
func (p *Palette) Color(index int) (RGB, bool) {
	c, ok := p.colors[index]
	return c, ok
}
