package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newVarsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vars [recipe]",
		Short: "Print the recipe's resolved variables in sorted order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recipe := ""
			if len(args) > 0 {
				recipe = args[0]
			}
			lines, err := c.app.Vars(cmd.Context(), recipe)
			if err != nil {
				return err
			}
			for _, line := range lines {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
}
