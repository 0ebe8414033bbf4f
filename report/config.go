package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"go.jacobcolvin.com/pydocstring/batch"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var colorModes = []string{ColorAuto, ColorAlways, ColorNever}

// Flags holds CLI flag names for report configuration.
type Flags struct {
	Color string
}

// Config holds CLI flag values for report configuration.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewReporter] to create a [Reporter].
type Config struct {
	Flags Flags
	Color string
}

// NewConfig returns a new [Config] with default flag names.
func NewConfig() *Config {
	return &Config{Flags: Flags{Color: "color"}}
}

// RegisterFlags adds report flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.Color, c.Flags.Color, ColorAuto,
		fmt.Sprintf("colorize warnings, one of: %s", colorModes))
}

// RegisterCompletions registers shell completions for report flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Color,
		cobra.FixedCompletions(colorModes, cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Color, err)
	}

	return nil
}

// NewReporter creates a [Reporter] writing to w. In auto mode color is
// enabled when w is a terminal and NO_COLOR is unset.
func (c *Config) NewReporter(w io.Writer) (*Reporter, error) {
	var enabled bool

	switch strings.ToLower(c.Color) {
	case ColorAlways:
		enabled = true
	case ColorNever:
		enabled = false
	case ColorAuto, "":
		enabled = isTerminal(w) && os.Getenv("NO_COLOR") == ""
	default:
		return nil, fmt.Errorf("%w: unknown color mode %q", batch.ErrInvalidOption, c.Color)
	}

	return New(w, WithColor(enabled)), nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd())) //nolint:gosec // File descriptors fit in int.
}
