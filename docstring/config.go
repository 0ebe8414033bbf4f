package docstring

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for parser configuration, allowing callers to
// customize flag names while keeping sensible defaults.
type Flags struct {
	Style           string
	SortDiagnostics string
}

// Config holds CLI flag values for parser configuration.
//
// Create instances with [NewConfig], set [Config.Registry] and register CLI
// flags with [Config.RegisterFlags]. Use [Config.NewParser] to create a
// [Parser].
type Config struct {
	Flags           Flags
	Registry        Registry
	Style           string
	SortDiagnostics bool
}

// NewConfig returns a new [Config] with default flag names.
func NewConfig() *Config {
	f := Flags{
		Style:           "style",
		SortDiagnostics: "sort-diagnostics",
	}

	return &Config{Flags: f}
}

// RegisterFlags adds parser flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&c.Style, c.Flags.Style, "s", "google",
		"docstring style")
	flags.BoolVar(&c.SortDiagnostics, c.Flags.SortDiagnostics, false,
		"report diagnostics by line number instead of discovery order")
}

// RegisterCompletions registers shell completions for parser flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Style,
		cobra.FixedCompletions(c.Registry.Names(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Style, err)
	}

	return nil
}

// NewParser creates a [Parser] using this [Config].
func (c *Config) NewParser(logger *slog.Logger) (*Parser, error) {
	style, err := c.Registry.Get(c.Style)
	if err != nil {
		return nil, err
	}

	return NewParser(style,
		WithLogger(logger),
		WithSortedDiagnostics(c.SortDiagnostics),
	), nil
}
