package sheethtml

import (
	"math/bits"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Option is a rendering option flag. Several flags may be combined into one
// Option; the group constants below are such combinations.
type Option uint32

const (
	// UseTableHeaders renders the first row with <th> cells. When a cell of
	// the first row spans several rows, every row it covers is a header row.
	UseTableHeaders Option = 1 << iota
	// EvaluateFormulas shows formula results instead of formula text.
	EvaluateFormulas
	// CellWidth sets cell widths from the sheet's column widths.
	CellWidth
	// CellHeight sets row heights from the sheet.
	CellHeight
	// FontSize sets the cell font size.
	FontSize
	// FontFamily sets the cell font family plus fallback families.
	FontFamily
	// FontStyle sets bold, italic and underline.
	FontStyle
	// FontColor sets the text colour.
	FontColor
	// BorderColor sets border colours.
	BorderColor
	// BorderStyle sets border widths and patterns.
	BorderStyle
	// CellBackgroundColor sets cell fill colours.
	CellBackgroundColor
	// HorizontalAlignment sets text-align.
	HorizontalAlignment
	// VerticalAlignment sets vertical-align.
	VerticalAlignment
	// TextRotation rotates text as it is rotated in the sheet.
	TextRotation

	lastOption = TextRotation
)

// Option groups.
const (
	Font      = FontSize | FontStyle | FontFamily | FontColor
	CellSizes = CellHeight | CellWidth
	Borders   = BorderStyle | BorderColor
	Colors    = CellBackgroundColor | FontColor | BorderColor
	Alignment = VerticalAlignment | HorizontalAlignment
	// Standard is every option except UseTableHeaders.
	Standard = (lastOption<<1 - 1) &^ UseTableHeaders
)

var optionNames = map[Option]string{
	UseTableHeaders:     "use-table-headers",
	EvaluateFormulas:    "evaluate-formulas",
	CellWidth:           "cell-width",
	CellHeight:          "cell-height",
	FontSize:            "font-size",
	FontFamily:          "font-family",
	FontStyle:           "font-style",
	FontColor:           "font-color",
	BorderColor:         "border-color",
	BorderStyle:         "border-style",
	CellBackgroundColor: "cell-background-color",
	HorizontalAlignment: "horizontal-alignment",
	VerticalAlignment:   "vertical-alignment",
	TextRotation:        "text-rotation",
	Font:                "font",
	CellSizes:           "cell-sizes",
	Borders:             "borders",
	Colors:              "colors",
	Alignment:           "alignment",
	Standard:            "standard",
}

// ParseOption parses the kebab-case name of a single option or group, as
// printed by Option.String.
func ParseOption(s string) (Option, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.ReplaceAll(name, "_", "-")
	for o, n := range optionNames {
		if n == name {
			return o, nil
		}
	}
	return 0, errors.Errorf("sheethtml: unknown option %q", s)
}

// OptionNames returns the names of all options and groups, sorted.
func OptionNames() []string {
	names := make([]string, 0, len(optionNames))
	for _, n := range optionNames {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// String returns the name of a single option or group, or the "|"-joined
// names of the single flags otherwise.
func (o Option) String() string {
	if n, ok := optionNames[o]; ok {
		return n
	}
	var parts []string
	for _, f := range o.flags() {
		parts = append(parts, optionNames[f])
	}
	return strings.Join(parts, "|")
}

// MarshalText implements encoding.TextMarshaler.
func (o Option) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Option) UnmarshalText(text []byte) error {
	v, err := ParseOption(string(text))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// flags splits o into its single-flag options, lowest first.
func (o Option) flags() []Option {
	o &= lastOption<<1 - 1
	out := make([]Option, 0, bits.OnesCount32(uint32(o)))
	for o != 0 {
		f := o & -o
		out = append(out, f)
		o &^= f
	}
	return out
}

// Options is the set of options a render is configured with. The zero value
// is an empty set, which renders a bare table.
type Options struct {
	set Option
}

// NewOptions returns a set holding every flag of opts.
func NewOptions(opts ...Option) Options {
	var s Options
	for _, o := range opts {
		s.Add(o)
	}
	return s
}

// Add adds o (a single option or a group) and reports whether the set
// changed.
func (s *Options) Add(o Option) bool {
	prev := s.set
	s.set |= o & (lastOption<<1 - 1)
	return s.set != prev
}

// Remove removes every flag of o and reports whether the set changed.
func (s *Options) Remove(o Option) bool {
	prev := s.set
	s.set &^= o
	return s.set != prev
}

// Has reports whether every flag of o is in the set.
func (s Options) Has(o Option) bool {
	return s.set&o == o
}

// Replace replaces the content of the set with o.
func (s *Options) Replace(o Option) {
	s.set = o & (lastOption<<1 - 1)
}

// Flags returns the set as a combined Option.
func (s Options) Flags() Option {
	return s.set
}

// List returns the single options in the set, in declaration order.
func (s Options) List() []Option {
	return s.set.flags()
}

func (s Options) String() string {
	return "[" + strings.Join(optionStrings(s.List()), " ") + "]"
}

func optionStrings(opts []Option) []string {
	out := make([]string, len(opts))
	for i, o := range opts {
		out[i] = o.String()
	}
	return out
}
