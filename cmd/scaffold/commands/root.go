// Package commands implements the CLI commands for scaffold.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/scaffold/internal/app"
	"go.trai.ch/scaffold/internal/build"
	"go.trai.ch/scaffold/internal/core/domain"
)

// CLI represents the command line interface for scaffold.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	ConfigureLogging(verbose, jsonLogs bool)
	Gantt(ctx context.Context, opts app.RenderOptions) error
	Calendar(ctx context.Context, opts app.CalendarOptions) error
	Watch(ctx context.Context, opts app.WatchOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "scaffold",
		Short:         "Lay out task schedules as Gantt charts and month calendars",
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

	rootCmd.PersistentFlags().StringP("config", "c", "", "Settings file (default: nearest scaffold.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Show debug output")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Write logs as JSON")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")
		a.ConfigureLogging(verbose, jsonLogs)
	}

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newGanttCmd())
	rootCmd.AddCommand(c.newCalendarCmd())
	rootCmd.AddCommand(c.newWatchCmd())
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

// addRenderFlags registers the flags shared by every command that writes a layout.
func addRenderFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", string(domain.FormatAuto), "Output format: auto, json, svg or text")
	cmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
	cmd.Flags().Bool("force", false, "Rewrite the output even if its inputs are unchanged")
}

func renderOptions(cmd *cobra.Command, args []string) (app.RenderOptions, error) {
	configPath, _ := cmd.Flags().GetString("config")
	formatName, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")
	force, _ := cmd.Flags().GetBool("force")

	format, err := domain.ParseFormat(formatName)
	if err != nil {
		return app.RenderOptions{}, err
	}

	return app.RenderOptions{
		Schedule:   args[0],
		ConfigPath: configPath,
		Format:     format,
		Output:     output,
		Force:      force,
	}, nil
}
