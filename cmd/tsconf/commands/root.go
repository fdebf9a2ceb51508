// Package commands implements the CLI commands for tsconf.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/tsconf/internal/app"
	"go.trai.ch/tsconf/internal/build"
)

// CLI represents the command line interface for tsconf.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Resolve(ctx context.Context, dirs []string, opts app.ResolveOptions) ([]app.Outcome, error)
	Locate(ctx context.Context, dir string, opts app.ResolveOptions) (string, error)
	ConfigureLogging(opts app.LogOptions)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "tsconf",
		Short:         "Resolve the effective tsconfig.json of a project",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	// Declared before cobra's default so that -v stays free for --verbose.
	rootCmd.Flags().Bool("version", false, "Print the application version")

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().Bool("json-log", false, "Write logs as JSON")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log lookup and extends details")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		jsonLog, _ := cmd.Flags().GetBool("json-log")
		verbose, _ := cmd.Flags().GetBool("verbose")
		c.app.ConfigureLogging(app.LogOptions{JSON: jsonLog, Verbose: verbose})
	}

	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newLocateCmd())
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

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
