package batch

import (
	"context"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"go.jacobcolvin.com/pydocstring/diag"
	"go.jacobcolvin.com/pydocstring/docstring"
)

// Diagnostic is a [diag.Diagnostic] located in its source file.
type Diagnostic struct {
	Kind    diag.Kind `json:"kind"                 yaml:"kind"`
	Message string    `json:"message"              yaml:"message"`
	// Line is relative to the docstring, starting at 1.
	Line int `json:"line" yaml:"line"`
	// SourceLine is the line in the source file, when the entry has one.
	SourceLine int `json:"sourceLine,omitempty" yaml:"sourceLine,omitempty"`
	// Section is the kind of the section holding the line.
	Section string `json:"section,omitempty" yaml:"section,omitempty"`
}

// Result is the outcome of parsing one [Entry].
type Result struct {
	Name        string              `json:"name"                  yaml:"name"`
	Kind        string              `json:"kind"                  yaml:"kind"`
	File        string              `json:"file,omitempty"        yaml:"file,omitempty"`
	Markup      string              `json:"markup"                yaml:"markup"`
	Error       string              `json:"error,omitempty"       yaml:"error,omitempty"`
	Sections    []docstring.Section `json:"sections,omitempty"    yaml:"sections,omitempty"`
	Diagnostics []Diagnostic        `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
	Line        int                 `json:"line,omitempty"        yaml:"line,omitempty"`
}

// Runner parses batches of entries with a [docstring.Parser].
//
// Create instances with [NewRunner].
type Runner struct {
	parser   *docstring.Parser
	logger   *slog.Logger
	jobs     int
	sections bool
}

// RunnerOption configures a [Runner].
type RunnerOption func(*Runner)

// NewRunner creates a [Runner] that parses with p.
func NewRunner(p *docstring.Parser, opts ...RunnerOption) *Runner {
	r := &Runner{
		parser: p,
		logger: slog.New(slog.DiscardHandler),
		jobs:   runtime.GOMAXPROCS(0),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// WithJobs sets the number of entries parsed concurrently. Values less than
// 1 are clamped to 1.
func WithJobs(n int) RunnerOption {
	return func(r *Runner) {
		r.jobs = max(n, 1)
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithSections includes the parsed sections in each [Result].
func WithSections(include bool) RunnerOption {
	return func(r *Runner) {
		r.sections = include
	}
}

// Run parses entries and returns one [Result] per entry, in input order.
//
// An entry that cannot be parsed, such as one with an unknown kind, yields
// a Result with Error set; it does not stop the run. Run only fails when
// ctx is done.
func (r *Runner) Run(ctx context.Context, entries []Entry) ([]Result, error) {
	results := make([]Result, len(entries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.jobs)

	for i, e := range entries {
		g.Go(func() error {
			err := ctx.Err()
			if err != nil {
				return err //nolint:wrapcheck // Context errors are returned as is.
			}

			results[i] = r.parse(e)

			return nil
		})
	}

	err := g.Wait()
	if err != nil {
		return nil, err //nolint:wrapcheck // Context errors are returned as is.
	}

	return results, nil
}

func (r *Runner) parse(e Entry) Result {
	res := Result{
		Name: e.Name,
		Kind: e.Kind,
		File: e.File,
		Line: e.Line,
	}

	kind, err := docstring.ParseKind(e.Kind)
	if err == nil {
		var parsed *docstring.Result

		parsed, err = r.parser.Parse(e.Docstring, kind)
		if err == nil {
			res.Markup = parsed.Markup
			res.Diagnostics = locate(parsed, e.Line)

			if r.sections {
				res.Sections = parsed.Sections
			}
		}
	}

	if err != nil {
		r.logger.Warn("skipping entry",
			slog.String("name", e.Name),
			slog.Any("error", err),
		)

		res.Error = err.Error()

		return res
	}

	r.logger.Debug("parsed entry",
		slog.String("name", e.Name),
		slog.Int("diagnostics", len(res.Diagnostics)),
	)

	return res
}

// locate converts docstring-relative diagnostics, offsetting them by the
// docstring's starting line when it is known, and names the section each
// one falls in.
func locate(parsed *docstring.Result, start int) []Diagnostic {
	if len(parsed.Diagnostics) == 0 {
		return nil
	}

	out := make([]Diagnostic, len(parsed.Diagnostics))
	for i, d := range parsed.Diagnostics {
		out[i] = Diagnostic{Kind: d.Kind, Message: d.Message, Line: d.Line}
		if start > 0 {
			out[i].SourceLine = start + d.Line - 1
		}

		for _, sec := range parsed.Sections {
			if sec.Origin.Contains(d.Line) {
				out[i].Section = sec.Kind.String()

				break
			}
		}
	}

	return out
}

// Count returns the total number of diagnostics and failed entries in
// results.
func Count(results []Result) (diagnostics, failed int) {
	for _, r := range results {
		diagnostics += len(r.Diagnostics)

		if r.Error != "" {
			failed++
		}
	}

	return diagnostics, failed
}
