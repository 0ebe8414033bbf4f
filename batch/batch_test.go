package batch_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/pydocstring/batch"
	"go.jacobcolvin.com/pydocstring/diag"
	"go.jacobcolvin.com/pydocstring/docstring"
	"go.jacobcolvin.com/pydocstring/docstring/google"
	"go.jacobcolvin.com/pydocstring/stringtest"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	want := []batch.Entry{
		{
			Name:      "shop.Cart.total",
			Kind:      "method",
			File:      "shop/cart.py",
			Line:      40,
			Docstring: "Sum the cart.\n\nReturns:\n    float: The total.\n",
		},
		{
			Name:      "shop.Cart.items",
			Kind:      "attribute",
			File:      "shop/cart.py",
			Line:      12,
			Docstring: "list of 'Item: Items in the cart.",
		},
		{
			Name:      "shop.helper",
			Kind:      "lambda",
			Docstring: "Broken kind.",
		},
	}

	for _, path := range []string{"testdata/entries.yaml", "testdata/entries.toml"} {
		t.Run(path, func(t *testing.T) {
			t.Parallel()

			got, err := batch.Load(path, nil)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		path  string
		stdin string
		err   error
	}{
		"missing file": {
			path: "testdata/missing.yaml",
			err:  batch.ErrReadInput,
		},
		"unknown yaml key": {
			path:  "-",
			stdin: "entries:\n  - name: a\n    kind: function\n    docstrings: x\n",
			err:   batch.ErrDecodeInput,
		},
		"malformed yaml": {
			path:  "-",
			stdin: "entries: [",
			err:   batch.ErrDecodeInput,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := batch.Load(tc.path, strings.NewReader(tc.stdin))
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestDecodeTOMLUnknownKey(t *testing.T) {
	t.Parallel()

	_, err := batch.Decode("in.toml", []byte("[[entries]]\nname = \"a\"\nkind = \"function\"\ndoc = \"x\"\n"))
	require.ErrorIs(t, err, batch.ErrDecodeInput)
}

func TestLoadStdin(t *testing.T) {
	t.Parallel()

	got, err := batch.Load("-", strings.NewReader(stringtest.Input(`
		entries:
		  - name: a
		    kind: function
		    docstring: Do a.
	`)))
	require.NoError(t, err)
	assert.Equal(t, []batch.Entry{{Name: "a", Kind: "function", Docstring: "Do a."}}, got)
}

func newRunner(opts ...batch.RunnerOption) *batch.Runner {
	return batch.NewRunner(docstring.NewParser(google.New()), opts...)
}

func TestRunnerRun(t *testing.T) {
	t.Parallel()

	entries, err := batch.Load("testdata/entries.yaml", nil)
	require.NoError(t, err)

	results, err := newRunner(batch.WithJobs(2)).Run(t.Context(), entries)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, stringtest.JoinLF(
		"Sum the cart.",
		"",
		":returns: The total.",
		":rtype: `float`",
	), results[0].Markup)
	assert.Empty(t, results[0].Diagnostics)
	assert.Empty(t, results[0].Sections)

	assert.Equal(t, "Items in the cart.\n\n:type: `list` of ``'Item``", results[1].Markup)
	require.Len(t, results[1].Diagnostics, 1)
	assert.Equal(t, diag.UnterminatedQuote, results[1].Diagnostics[0].Kind)
	assert.Equal(t, 1, results[1].Diagnostics[0].Line)
	assert.Equal(t, 12, results[1].Diagnostics[0].SourceLine)
	assert.Equal(t, "prose", results[1].Diagnostics[0].Section)

	assert.Contains(t, results[2].Error, "invalid entity kind")
	assert.Empty(t, results[2].Markup)

	diags, failed := batch.Count(results)
	assert.Equal(t, 1, diags)
	assert.Equal(t, 1, failed)
}

func TestRunnerKeepsOrder(t *testing.T) {
	t.Parallel()

	entries := make([]batch.Entry, 100)
	for i := range entries {
		entries[i] = batch.Entry{
			Name:      fmt.Sprintf("e%d", i),
			Kind:      "function",
			Docstring: fmt.Sprintf("Args:\n    x%d ('a): Value.", i),
		}
	}

	results, err := newRunner(batch.WithJobs(8)).Run(t.Context(), entries)
	require.NoError(t, err)
	require.Len(t, results, len(entries))

	for i, r := range results {
		assert.Equal(t, entries[i].Name, r.Name)
		assert.Contains(t, r.Markup, fmt.Sprintf(":param x%d: Value.", i))
		require.Len(t, r.Diagnostics, 1)
		assert.Equal(t, 2, r.Diagnostics[0].Line)
		assert.Zero(t, r.Diagnostics[0].SourceLine)
		assert.Equal(t, "params", r.Diagnostics[0].Section)
	}
}

func TestRunnerSections(t *testing.T) {
	t.Parallel()

	results, err := newRunner(batch.WithSections(true)).Run(t.Context(), []batch.Entry{
		{Name: "f", Kind: "function", Docstring: "Summary.\n\nArgs:\n    x: A."},
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Len(t, results[0].Sections, 2)
	assert.Equal(t, docstring.SectionParams, results[0].Sections[1].Kind)
}

func TestRunnerCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := newRunner().Run(ctx, []batch.Entry{{Name: "f", Kind: "function"}})
	require.ErrorIs(t, err, context.Canceled)
}

func TestWrite(t *testing.T) {
	t.Parallel()

	entries, err := batch.Load("testdata/entries.yaml", nil)
	require.NoError(t, err)

	results, err := newRunner().Run(t.Context(), entries)
	require.NoError(t, err)

	t.Run("text", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		require.NoError(t, batch.Write(&buf, batch.FormatText, results))
		assert.Equal(t, stringtest.JoinLF(
			"=== shop.Cart.total (method)",
			"Sum the cart.",
			"",
			":returns: The total.",
			":rtype: `float`",
			"",
			"=== shop.Cart.items (attribute)",
			"Items in the cart.",
			"",
			":type: `list` of ``'Item``",
			"",
			"=== shop.helper (lambda)",
			`error: invalid entity kind: "lambda"`,
			"",
		), buf.String())
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		require.NoError(t, batch.Write(&buf, batch.FormatJSON, results))

		var got []map[string]any

		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		require.Len(t, got, 3)
		assert.Equal(t, "shop.Cart.items", got[1]["name"])

		diags, ok := got[1]["diagnostics"].([]any)
		require.True(t, ok)
		require.Len(t, diags, 1)

		d, ok := diags[0].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "unterminated-quote", d["kind"])
		assert.InDelta(t, 12, d["sourceLine"], 0)
	})

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		require.NoError(t, batch.Write(&buf, batch.FormatYAML, results))
		assert.Contains(t, buf.String(), "name: shop.Cart.total")
		assert.Contains(t, buf.String(), "kind: unterminated-quote")
		assert.Contains(t, buf.String(), "sourceLine: 12")
	})

	t.Run("empty json", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		require.NoError(t, batch.Write(&buf, batch.FormatJSON, nil))
		assert.Equal(t, "[]\n", buf.String())
	})

	t.Run("unknown format", func(t *testing.T) {
		t.Parallel()

		err := batch.Write(&bytes.Buffer{}, batch.Format("xml"), results)
		require.ErrorIs(t, err, batch.ErrInvalidOption)
	})
}

func TestSchema(t *testing.T) {
	t.Parallel()

	s := batch.Schema()

	out, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"$schema":"http://json-schema.org/draft-07/schema#"`)

	assert.Equal(t, "array", s.Type)
	require.NotNil(t, s.Items)
	assert.Equal(t, []string{"name", "kind", "markup"}, s.Items.Required)

	diagKinds := s.Items.Properties["diagnostics"].Items.Properties["kind"].Enum
	assert.Len(t, diagKinds, len(diag.AllKinds()))

	sectionKinds := s.Items.Properties["sections"].Items.Properties["kind"].Enum
	assert.Contains(t, sectionKinds, "see-also")
}

func TestConfig(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		args   []string
		format batch.Format
		err    error
	}{
		"defaults": {
			format: batch.FormatText,
		},
		"json": {
			args:   []string{"-f", "json", "-j", "2"},
			format: batch.FormatJSON,
		},
		"bad format": {
			args: []string{"--format", "xml"},
			err:  batch.ErrInvalidOption,
		},
		"bad jobs": {
			args:   []string{"--jobs", "0"},
			format: batch.FormatText,
			err:    batch.ErrInvalidOption,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg := batch.NewConfig()

			cmd := &cobra.Command{Use: "test"}
			cfg.RegisterFlags(cmd.Flags())
			require.NoError(t, cfg.RegisterCompletions(cmd))
			require.NoError(t, cmd.Flags().Parse(tc.args))

			f, err := cfg.OutputFormat()
			if err != nil {
				require.ErrorIs(t, err, tc.err)

				return
			}

			assert.Equal(t, tc.format, f)

			_, err = cfg.NewRunner(docstring.NewParser(google.New()), nil)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)

				return
			}

			require.NoError(t, err)
		})
	}
}
