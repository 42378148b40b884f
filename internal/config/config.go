// Package config loads render settings from TOML files.
//
// A config file names the sheet and range to render, the option set and the
// output path:
//
//	sheet   = "Report"
//	range   = "B1:D8"
//	options = ["standard", "use-table-headers"]
//	output  = "report.html"
//
// Command-line flags override file values.
package config

import (
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/aerissecure/sheethtml"
)

// Config holds the render settings.
type Config struct {
	Sheet string `toml:"sheet"`
	// SheetIndex is the 0-based sheet index; nil selects by name or the
	// first sheet.
	SheetIndex *int               `toml:"sheet_index"`
	Range      string             `toml:"range"`
	Options    []sheethtml.Option `toml:"options"`
	Output     string             `toml:"output"`
}

// Load reads and validates the config file at path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open config")
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return c, nil
}

// Decode reads a config from r. Unknown keys are an error.
func Decode(r io.Reader) (*Config, error) {
	var c Config
	md, err := toml.NewDecoder(r).Decode(&c)
	if err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that the sheet selection is unambiguous.
func (c *Config) Validate() error {
	if c.Sheet != "" && c.SheetIndex != nil {
		return errors.New("sheet and sheet_index are mutually exclusive")
	}
	if c.SheetIndex != nil && *c.SheetIndex < 0 {
		return errors.Errorf("sheet_index must not be negative, got %d", *c.SheetIndex)
	}
	return nil
}

// OptionSet returns the configured options, or the Standard set when none
// are configured.
func (c *Config) OptionSet() sheethtml.Options {
	if len(c.Options) == 0 {
		return sheethtml.NewOptions(sheethtml.Standard)
	}
	return sheethtml.NewOptions(c.Options...)
}
