package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"go.jacobcolvin.com/pydocstring/batch"
)

// Reporter writes warnings for batch results.
//
// Create instances with [New].
type Reporter struct {
	w        io.Writer
	location *color.Color
	warning  *color.Color
	failure  *color.Color
}

// Option configures a [Reporter].
type Option func(*Reporter)

// WithColor enables or disables colored output.
func WithColor(enabled bool) Option {
	return func(r *Reporter) {
		for _, c := range []*color.Color{r.location, r.warning, r.failure} {
			if enabled {
				c.EnableColor()
			} else {
				c.DisableColor()
			}
		}
	}
}

// New creates a [Reporter] writing to w. Color is off unless enabled with
// [WithColor].
func New(w io.Writer, opts ...Option) *Reporter {
	r := &Reporter{
		w:        w,
		location: color.New(color.Bold),
		warning:  color.New(color.FgYellow, color.Bold),
		failure:  color.New(color.FgRed, color.Bold),
	}

	WithColor(false)(r)

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Report writes one line per diagnostic and per failed entry, in result
// order, and returns the number of lines written.
func (r *Reporter) Report(results []batch.Result) (int, error) {
	n := 0

	for _, res := range results {
		if res.Error != "" {
			err := r.line(r.failure, location(res, res.Line), "error", res.Error)
			if err != nil {
				return n, err
			}

			n++
		}

		for _, d := range res.Diagnostics {
			line := d.SourceLine
			if line == 0 {
				line = d.Line
			}

			err := r.line(r.warning, location(res, line), "warning", d.Message)
			if err != nil {
				return n, err
			}

			n++
		}
	}

	return n, nil
}

// Summary writes a closing count line when any diagnostics were reported.
func (r *Reporter) Summary(diagnostics, failed int) error {
	if diagnostics == 0 && failed == 0 {
		return nil
	}

	_, err := fmt.Fprintf(r.w, "%d %s, %d failed %s\n",
		diagnostics, plural(diagnostics, "warning"),
		failed, plural(failed, "entry"))
	if err != nil {
		return fmt.Errorf("%w: %w", batch.ErrWriteOutput, err)
	}

	return nil
}

func (r *Reporter) line(c *color.Color, loc, label, msg string) error {
	_, err := fmt.Fprintf(r.w, "%s: %s %s\n", r.location.Sprint(loc), c.Sprint(label+":"), msg)
	if err != nil {
		return fmt.Errorf("%w: %w", batch.ErrWriteOutput, err)
	}

	return nil
}

// location formats "file:line". The entity name stands in for a missing
// file, and a line of zero is omitted.
func location(res batch.Result, line int) string {
	where := res.File
	if where == "" {
		where = res.Name
	}

	if line <= 0 {
		return where
	}

	return fmt.Sprintf("%s:%d", where, line)
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}

	if word == "entry" {
		return "entries"
	}

	return word + "s"
}
