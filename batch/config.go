package batch

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"go.jacobcolvin.com/pydocstring/docstring"
)

// Flags holds CLI flag names for batch configuration, allowing callers to
// customize flag names while keeping sensible defaults.
type Flags struct {
	Format   string
	Output   string
	Jobs     string
	Sections string
	Strict   string
}

// Config holds CLI flag values for batch configuration.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewRunner] to create a [Runner].
type Config struct {
	Flags    Flags
	Format   string
	Output   string
	Jobs     int
	Sections bool
	Strict   bool
}

// NewConfig returns a new [Config] with default flag names.
func NewConfig() *Config {
	f := Flags{
		Format:   "format",
		Output:   "output",
		Jobs:     "jobs",
		Sections: "sections",
		Strict:   "strict",
	}

	return &Config{Flags: f}
}

// RegisterFlags adds batch flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&c.Format, c.Flags.Format, "f", string(FormatText),
		fmt.Sprintf("output format, one of: %s", AllFormatStrings()))
	flags.StringVarP(&c.Output, c.Flags.Output, "o", "-",
		"output file path (- for stdout)")
	flags.IntVarP(&c.Jobs, c.Flags.Jobs, "j", runtime.GOMAXPROCS(0),
		"number of docstrings parsed concurrently")
	flags.BoolVar(&c.Sections, c.Flags.Sections, false,
		"include parsed sections in json and yaml output")
	flags.BoolVar(&c.Strict, c.Flags.Strict, false,
		"exit with an error when any diagnostic is reported")
}

// RegisterCompletions registers shell completions for batch flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Format,
		cobra.FixedCompletions(AllFormatStrings(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Format, err)
	}

	err = cmd.RegisterFlagCompletionFunc(c.Flags.Jobs,
		cobra.FixedCompletions(nil, cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Jobs, err)
	}

	return nil
}

// OutputFormat returns the parsed output format.
func (c *Config) OutputFormat() (Format, error) {
	return ParseFormat(c.Format)
}

// NewRunner creates a [Runner] using this [Config].
func (c *Config) NewRunner(p *docstring.Parser, logger *slog.Logger) (*Runner, error) {
	if c.Jobs < 1 {
		return nil, fmt.Errorf("%w: jobs must be at least 1, got %d", ErrInvalidOption, c.Jobs)
	}

	return NewRunner(p,
		WithJobs(c.Jobs),
		WithLogger(logger),
		WithSections(c.Sections),
	), nil
}
