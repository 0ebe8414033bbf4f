package log_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/pydocstring/docstring"
	"go.jacobcolvin.com/pydocstring/docstring/google"
	"go.jacobcolvin.com/pydocstring/log"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		err   error
		input string
		want  log.Level
	}{
		"error":            {input: "error", want: log.LevelError},
		"warn":             {input: "warn", want: log.LevelWarn},
		"warning alias":    {input: "warning", want: log.LevelWarn},
		"info":             {input: "info", want: log.LevelInfo},
		"debug":            {input: "debug", want: log.LevelDebug},
		"case insensitive": {input: "DEBUG", want: log.LevelDebug},
		"unknown":          {input: "trace", err: log.ErrUnknownLogLevel},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := log.ParseLevel(tc.input)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		err   error
		input string
		want  log.Format
	}{
		"json":             {input: "json", want: log.FormatJSON},
		"logfmt":           {input: "logfmt", want: log.FormatLogfmt},
		"text":             {input: "text", want: log.FormatText},
		"case insensitive": {input: "LOGFMT", want: log.FormatLogfmt},
		"unknown":          {input: "yaml", err: log.ErrUnknownLogFormat},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := log.ParseFormat(tc.input)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNewHandler(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		check  func(*testing.T, []byte)
		format log.Format
	}{
		"json": {
			format: log.FormatJSON,
			check: func(t *testing.T, out []byte) {
				t.Helper()

				var record map[string]any

				require.NoError(t, json.Unmarshal(out, &record))
				assert.Equal(t, "skipping entry", record["msg"])
				assert.Equal(t, "WARN", record["level"])
				assert.Equal(t, "shop.helper", record["name"])
			},
		},
		"logfmt": {
			format: log.FormatLogfmt,
			check: func(t *testing.T, out []byte) {
				t.Helper()

				assert.Contains(t, string(out), "level=WARN")
				assert.Contains(t, string(out), `msg="skipping entry"`)
				assert.Contains(t, string(out), "name=shop.helper")
			},
		},
		"text": {
			format: log.FormatText,
			check: func(t *testing.T, out []byte) {
				t.Helper()

				assert.Contains(t, string(out), "WARN")
				assert.Contains(t, string(out), "skipping entry")
				assert.Contains(t, string(out), "name=shop.helper")
			},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			logger := slog.New(log.NewHandler(&buf, log.LevelInfo, tc.format))
			logger.Warn("skipping entry", slog.String("name", "shop.helper"))

			tc.check(t, buf.Bytes())
		})
	}
}

func TestNewHandlerFromStrings(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		level  string
		format string
		fail   bool
	}{
		"valid":          {level: "warn", format: "json"},
		"invalid level":  {level: "loud", format: "json", fail: true},
		"invalid format": {level: "info", format: "xml", fail: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			h, err := log.NewHandlerFromStrings(&buf, tc.level, tc.format)
			if tc.fail {
				require.ErrorIs(t, err, log.ErrInvalidArgument)
				assert.Nil(t, h)

				return
			}

			require.NoError(t, err)

			logger := slog.New(h)
			logger.Info("parsed entry")
			assert.Empty(t, buf.String())

			logger.Warn("skipping entry")
			assert.Contains(t, buf.String(), "skipping entry")
		})
	}
}

func TestParserSectionRecords(t *testing.T) {
	t.Parallel()

	input := "Summary.\n\nArgs:\n    x (int): A.\n    y ('b): B."

	tcs := map[string]struct {
		level log.Level
		want  []map[string]any
	}{
		"debug shows sections": {
			level: log.LevelDebug,
			want: []map[string]any{
				{"kind": "prose", "start": 1.0, "end": 3.0, "fields": 0.0, "diagnostics": 0.0},
				{"kind": "params", "title": "Args", "start": 3.0, "end": 6.0, "fields": 2.0, "diagnostics": 1.0},
			},
		},
		"info hides sections": {
			level: log.LevelInfo,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			logger := slog.New(log.NewHandler(&buf, tc.level, log.FormatJSON))
			p := docstring.NewParser(google.New(), docstring.WithLogger(logger))

			_, err := p.Parse(input, docstring.KindFunction)
			require.NoError(t, err)

			var got []map[string]any

			sc := bufio.NewScanner(&buf)
			for sc.Scan() {
				var record map[string]any

				require.NoError(t, json.Unmarshal(sc.Bytes(), &record))
				assert.Equal(t, "section", record["msg"])
				assert.Equal(t, "google", record["style"])

				for _, k := range []string{"time", "level", "msg", "style"} {
					delete(record, k)
				}

				if record["title"] == "" {
					delete(record, "title")
				}

				got = append(got, record)
			}

			require.NoError(t, sc.Err())
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRegisterCompletions(t *testing.T) {
	t.Parallel()

	cfg := log.NewConfig()

	cmd := &cobra.Command{Use: "docparse"}
	cfg.RegisterFlags(cmd.Flags())
	require.NoError(t, cfg.RegisterCompletions(cmd))

	tcs := map[string]struct {
		flag string
		want []string
	}{
		"log-level":  {flag: "log-level", want: log.GetAllLevelStrings()},
		"log-format": {flag: "log-format", want: log.GetAllFormatStrings()},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			complete, ok := cmd.GetFlagCompletionFunc(tc.flag)
			require.True(t, ok)

			values, directive := complete(cmd, nil, "")
			assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
			assert.Equal(t, tc.want, values)
		})
	}
}

func TestConfigNewHandler(t *testing.T) {
	t.Parallel()

	cfg := log.NewConfig()

	cmd := &cobra.Command{Use: "docparse"}
	cfg.RegisterFlags(cmd.Flags())
	require.NoError(t, cmd.Flags().Parse([]string{"--log-level", "debug", "--log-format", "logfmt"}))

	var buf bytes.Buffer

	h, err := cfg.NewHandler(&buf)
	require.NoError(t, err)

	slog.New(h).Debug("section", slog.String("title", "Args"))
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "title=Args")

	cfg.Format = "xml"

	_, err = cfg.NewHandler(&buf)
	require.ErrorIs(t, err, log.ErrInvalidArgument)
}
