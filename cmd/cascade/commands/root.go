// Package commands implements the CLI commands for cascade.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/cascade/internal/app"
	"go.trai.ch/cascade/internal/build"
)

// CLI represents the command line interface for cascade.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Configure(opts app.GlobalOptions)
	Shutdown(ctx context.Context) error
	Pick(ctx context.Context, opts app.PickOptions) error
	Search(ctx context.Context, opts app.SearchOptions) error
	Select(ctx context.Context, opts app.SelectOptions) error
	Tree(ctx context.Context, opts app.TreeOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "cascade",
		Short:         "Pick a path from a tree of options",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("file", "f", "", "Options file (default: discover cascade.yaml, cascade.yml or cascade.json)")
	rootCmd.PersistentFlags().Bool("log-json", false, "Write log lines as JSON")
	rootCmd.PersistentFlags().Bool("trace", false, "Log the duration of each stage")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		logJSON, _ := cmd.Flags().GetBool("log-json")
		trace, _ := cmd.Flags().GetBool("trace")
		c.app.Configure(app.GlobalOptions{LogJSON: logJSON, Trace: trace})
	}

	rootCmd.AddCommand(c.newPickCmd())
	rootCmd.AddCommand(c.newSearchCmd())
	rootCmd.AddCommand(c.newSelectCmd())
	rootCmd.AddCommand(c.newTreeCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	err := c.rootCmd.Execute()
	return errors.Join(err, c.app.Shutdown(ctx))
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
