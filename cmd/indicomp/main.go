// Package main provides the indicomp CLI: list entities and indicators, run
// comparisons, export them, narrate them, or open the terminal dashboard.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"indicomp/internal/app"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// usageError is a problem with the user's input. It exits with exitUsage
// and prints only its message.
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// cli holds the persistent flags and the output streams.
type cli struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	logLevel   string
	envFile    string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)

	stop()
	os.Exit(code)
}

// execute runs the CLI and maps its error to an exit code.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}

	var ue *usageError
	if errors.As(err, &ue) {
		fmt.Fprintln(stderr, ue.msg)

		return exitUsage
	}

	fmt.Fprintf(stderr, "Error: %v\n", err)

	return exitFailure
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	c := &cli{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "indicomp",
		Short: "Compare countries and regions across World Bank indicators",
		Long: `indicomp compares countries, or the states and provinces of a country,
across socioeconomic indicators from the World Bank. Results can be shown as
tables and charts, exported, or summarized by a language model.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "Path to a YAML config file (default: built-in settings)")
	flags.StringVar(&c.logLevel, "log-level", "", "Log level override: debug, info, warn, error")
	flags.StringVar(&c.envFile, "env-file", ".env", "Optional dotenv file holding the narrator API key")

	root.AddCommand(
		c.countriesCmd(),
		c.regionsCmd(),
		c.indicatorsCmd(),
		c.compareCmd(),
		c.exportCmd(),
		c.insightsCmd(),
		c.dashboardCmd(),
	)

	return root
}

// bootstrap wires the services for one command. The caller must Close the
// returned App.
func (c *cli) bootstrap(quiet bool) (*app.App, error) {
	a, err := app.Bootstrap(app.Options{
		ConfigPath: c.configPath,
		EnvFile:    c.envFile,
		LogLevel:   c.logLevel,
		Quiet:      quiet,
	})
	if err != nil {
		return nil, fmt.Errorf("startup failed: %w", err)
	}

	return a, nil
}
