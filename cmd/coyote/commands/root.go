// Package commands implements the CLI commands for coyote.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/Pougher/coyote/internal/app"
	"github.com/Pougher/coyote/internal/build"
)

// CLI represents the command line interface for coyote.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:   "coyote [recipe]",
		Short: "A declarative build driver",
		Long: "Coyote builds the targets described in coyote.json, expanding\n" +
			"{variable} placeholders and skipping commands whose run_if file\n" +
			"has not changed since the last successful build.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			recipe := ""
			if len(args) > 0 {
				recipe = args[0]
			}
			rebuild, err := cmd.Flags().GetBool("rebuild")
			if err != nil {
				return err
			}
			return a.Build(cmd.Context(), recipe, rebuild)
		},
	}

	rootCmd.Flags().BoolP("rebuild", "r", false, "Rebuild the entire recipe, ignoring recorded build state")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newVarsCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(out, errOut io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(errOut)
}
