package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/aerissecure/sheethtml"
	"github.com/aerissecure/sheethtml/internal/config"
	"github.com/aerissecure/sheethtml/xlsx"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	configPath string
	sheet      string
	sheetIndex int
	rng        string   // A1 range, whole sheet when empty
	options    []string // option names; Standard when empty
	output     string   // stdout when empty
}

func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a sheet or range as an HTML table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config(cmd)
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), cmd.OutOrStdout(), args[0], cfg)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "TOML config file")
	cmd.Flags().StringVarP(&opts.sheet, "sheet", "s", "", "sheet name (default: first sheet)")
	cmd.Flags().IntVar(&opts.sheetIndex, "sheet-index", 0, "0-based sheet index")
	cmd.Flags().StringVarP(&opts.rng, "range", "r", "", "A1 range such as B1:D8 (default: whole sheet)")
	cmd.Flags().StringSliceVar(&opts.options, "option", nil, "option or group name, repeatable (default: standard); see 'sheethtml options'")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.MarkFlagsMutuallyExclusive("sheet", "sheet-index")

	return cmd
}

// config loads the config file, if any, and applies the flags set on cmd
// on top of it.
func (o *renderOpts) config(cmd *cobra.Command) (*config.Config, error) {
	cfg := &config.Config{}
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("sheet") {
		cfg.Sheet, cfg.SheetIndex = o.sheet, nil
	}
	if flags.Changed("sheet-index") {
		idx := o.sheetIndex
		cfg.Sheet, cfg.SheetIndex = "", &idx
	}
	if flags.Changed("range") {
		cfg.Range = o.rng
	}
	if flags.Changed("option") {
		cfg.Options = cfg.Options[:0]
		for _, name := range o.options {
			opt, err := sheethtml.ParseOption(name)
			if err != nil {
				return nil, err
			}
			cfg.Options = append(cfg.Options, opt)
		}
	}
	if flags.Changed("output") {
		cfg.Output = o.output
	}
	return cfg, cfg.Validate()
}

func (c *CLI) runRender(ctx context.Context, stdout io.Writer, path string, cfg *config.Config) error {
	logger := c.Logger
	prog := newProgress(logger)

	f, err := xlsx.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	f.SetLogger(logger)

	switch {
	case cfg.SheetIndex != nil:
		err = f.SelectSheetAt(*cfg.SheetIndex)
	case cfg.Sheet != "":
		err = f.SelectSheet(cfg.Sheet)
	}
	if err != nil {
		return err
	}
	if cfg.Range != "" {
		if err := f.SelectRange(cfg.Range); err != nil {
			return err
		}
	}
	opts := cfg.OptionSet()
	f.Options().Replace(opts.Flags())
	logger.Debug("rendering", "file", path, "sheet", f.SheetName(), "range", cfg.Range, "options", opts)

	if err := ctx.Err(); err != nil {
		return err
	}
	if cfg.Output == "" {
		if err := f.WriteHTML(stdout); err != nil {
			return errors.Wrap(err, "render")
		}
	} else if err := f.WriteHTMLFile(cfg.Output); err != nil {
		return errors.Wrap(err, "render")
	}

	target := cfg.Output
	if target == "" {
		target = "stdout"
	}
	prog.done(fmt.Sprintf("Rendered sheet %q to %s", f.SheetName(), target))
	return nil
}
