// Package commands implements the CLI commands for hatchery.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/hatchery/internal/build"
	"go.trai.ch/hatchery/internal/core/domain"
)

// CLI represents the command line interface for hatchery.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Build(ctx context.Context, envName string, req domain.BuildRequest) error
	SetVerbosity(delta int)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "hatchery",
		Short:         "Build Python projects in managed environments",
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

	flags := rootCmd.PersistentFlags()
	flags.StringP("env", "e", "", fmt.Sprintf("The name of the environment to use [env var: `%s`]", domain.EnvSelectedEnv))
	flags.CountP("verbose", "v", "Increase verbosity (can be used additively)")
	flags.CountP("quiet", "q", "Decrease verbosity (can be used additively)")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		verbose, _ := cmd.Flags().GetCount("verbose")
		quiet, _ := cmd.Flags().GetCount("quiet")
		c.app.SetVerbosity(verbose - quiet)
	}

	rootCmd.AddCommand(c.newBuildCmd())
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

// environmentName returns --env, falling back to HATCH_ENV and then the default environment.
func environmentName(cmd *cobra.Command) string {
	if name, _ := cmd.Flags().GetString("env"); name != "" {
		return name
	}
	if name := os.Getenv(domain.EnvSelectedEnv); name != "" {
		return name
	}
	return domain.DefaultEnvironmentName
}

// boolFlag returns the flag value when given on the command line and the
// truthiness of envVar otherwise.
func boolFlag(cmd *cobra.Command, name, envVar string) bool {
	if cmd.Flags().Changed(name) {
		value, _ := cmd.Flags().GetBool(name)
		return value
	}
	return domain.IsTruthy(os.Getenv(envVar))
}
