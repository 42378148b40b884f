package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aerissecure/sheethtml"
)

func (c *CLI) optionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "List option and option group names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range sheethtml.OptionNames() {
				o, err := sheethtml.ParseOption(name)
				if err != nil {
					return err
				}
				line := name
				// groups list their members
				if flags := sheethtml.NewOptions(o).List(); len(flags) > 1 {
					members := make([]string, len(flags))
					for i, f := range flags {
						members[i] = f.String()
					}
					line += " = " + strings.Join(members, ", ")
				}
				if _, err := fmt.Fprintln(out, line); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
