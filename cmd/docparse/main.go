// Package main provides the CLI entry point for docparse, a tool that
// converts Google-style and NumPy-style docstrings into canonical
// field-list markup.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"go.jacobcolvin.com/pydocstring/batch"
	"go.jacobcolvin.com/pydocstring/docstring"
	"go.jacobcolvin.com/pydocstring/docstring/styles"
	"go.jacobcolvin.com/pydocstring/log"
	"go.jacobcolvin.com/pydocstring/profile"
	"go.jacobcolvin.com/pydocstring/report"
	"go.jacobcolvin.com/pydocstring/version"
)

// ErrDiagnostics is returned in strict mode when any diagnostic or failed
// entry was reported.
var ErrDiagnostics = errors.New("diagnostics reported")

type app struct {
	parse   *docstring.Config
	batch   *batch.Config
	report  *report.Config
	log     *log.Config
	profile *profile.Config
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
}

func main() {
	a := &app{
		parse:   docstring.NewConfig(),
		batch:   batch.NewConfig(),
		report:  report.NewConfig(),
		log:     log.NewConfig(),
		profile: profile.NewConfig(),
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}
	a.parse.Registry = styles.DefaultRegistry()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := a.command().ExecuteContext(ctx)

	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func (a *app) command() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "docparse [flags] <batch.yaml|batch.toml|-> [...]",
		Short: "Convert Python docstrings to field-list markup",
		Long: `docparse converts Google-style and NumPy-style docstrings into canonical
field-list markup. Each input file lists docstrings with their entity name
and kind. Malformed type expressions are reported as warnings on stderr;
they never stop parsing.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.profile.NewProfiler().Run(func() error {
				return a.run(cmd.Context(), args)
			})
		},
	}

	rootCmd.SetIn(a.stdin)
	rootCmd.SetOut(a.stdout)
	rootCmd.SetErr(a.stderr)

	a.log.RegisterFlags(rootCmd.PersistentFlags())
	a.parse.RegisterFlags(rootCmd.Flags())
	a.batch.RegisterFlags(rootCmd.Flags())
	a.report.RegisterFlags(rootCmd.Flags())
	a.profile.RegisterFlags(rootCmd.Flags())

	for _, reg := range []func(*cobra.Command) error{
		a.log.RegisterCompletions,
		a.parse.RegisterCompletions,
		a.batch.RegisterCompletions,
		a.report.RegisterCompletions,
		a.profile.RegisterCompletions,
	} {
		err := reg(rootCmd)
		if err != nil {
			fmt.Fprintf(a.stderr, "register completions: %v\n", err)
		}
	}

	rootCmd.AddCommand(a.schemaCommand(), a.versionCommand())

	return rootCmd
}

func (a *app) run(ctx context.Context, args []string) error {
	logger, err := a.log.NewLogger(a.stderr)
	if err != nil {
		return err
	}

	format, err := a.batch.OutputFormat()
	if err != nil {
		return err
	}

	parser, err := a.parse.NewParser(logger)
	if err != nil {
		return err
	}

	runner, err := a.batch.NewRunner(parser, logger)
	if err != nil {
		return err
	}

	reporter, err := a.report.NewReporter(a.stderr)
	if err != nil {
		return err
	}

	var entries []batch.Entry

	for _, arg := range args {
		loaded, loadErr := batch.Load(arg, a.stdin)
		if loadErr != nil {
			return loadErr
		}

		entries = append(entries, loaded...)
	}

	results, err := runner.Run(ctx, entries)
	if err != nil {
		return err
	}

	err = a.write(format, results)
	if err != nil {
		return err
	}

	_, err = reporter.Report(results)
	if err != nil {
		return err
	}

	diagnostics, failed := batch.Count(results)

	err = reporter.Summary(diagnostics, failed)
	if err != nil {
		return err
	}

	if a.batch.Strict && diagnostics+failed > 0 {
		return fmt.Errorf("%w: %d warnings, %d failed entries", ErrDiagnostics, diagnostics, failed)
	}

	return nil
}

func (a *app) write(format batch.Format, results []batch.Result) error {
	if a.batch.Output == "" || a.batch.Output == "-" {
		return batch.Write(a.stdout, format, results)
	}

	f, err := os.Create(a.batch.Output)
	if err != nil {
		return fmt.Errorf("%w: %w", batch.ErrWriteOutput, err)
	}

	err = batch.Write(f, format, results)
	if err != nil {
		return errors.Join(err, f.Close())
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("%w: %w", batch.ErrWriteOutput, err)
	}

	return nil
}

func (a *app) schemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of --format=json output",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			out, err := json.MarshalIndent(batch.Schema(), "", "  ")
			if err != nil {
				return fmt.Errorf("%w: %w", batch.ErrWriteOutput, err)
			}

			_, err = fmt.Fprintf(a.stdout, "%s\n", out)
			if err != nil {
				return fmt.Errorf("%w: %w", batch.ErrWriteOutput, err)
			}

			return nil
		},
	}
}

func (a *app) versionCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			info := version.Get()

			var (
				out []byte
				err error
			)

			switch format {
			case "json":
				out, err = json.MarshalIndent(info, "", "  ")
				out = append(out, '\n')
			case "yaml":
				out, err = yaml.Marshal(info)
			case "text":
				out = []byte(info.String() + "\n")
			default:
				return fmt.Errorf("%w: unknown format %q", batch.ErrInvalidOption, format)
			}

			if err != nil {
				return fmt.Errorf("%w: %w", batch.ErrWriteOutput, err)
			}

			_, err = a.stdout.Write(out)
			if err != nil {
				return fmt.Errorf("%w: %w", batch.ErrWriteOutput, err)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format, one of: [text json yaml]")

	err := cmd.RegisterFlagCompletionFunc("format",
		cobra.FixedCompletions([]string{"text", "json", "yaml"}, cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		fmt.Fprintf(a.stderr, "register completions: %v\n", err)
	}

	return cmd
}
