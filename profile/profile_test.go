package profile_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/pydocstring/profile"
)

func TestRegisterFlags(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		args    []string
		cpu     string
		heap    string
		rate    int
		enabled bool
	}{
		"defaults": {
			rate: 524288,
		},
		"cpu only": {
			args:    []string{"--cpu-profile=cpu.prof"},
			cpu:     "cpu.prof",
			rate:    524288,
			enabled: true,
		},
		"heap with rate": {
			args:    []string{"--heap-profile=heap.prof", "--mem-profile-rate=1024"},
			heap:    "heap.prof",
			rate:    1024,
			enabled: true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg := profile.NewConfig()
			flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
			cfg.RegisterFlags(flags)

			require.NoError(t, flags.Parse(tc.args))
			assert.Equal(t, tc.cpu, cfg.CPUProfile)
			assert.Equal(t, tc.heap, cfg.HeapProfile)
			assert.Equal(t, tc.rate, cfg.MemProfileRate)
			assert.Equal(t, tc.enabled, cfg.Enabled())
		})
	}
}

func TestRegisterCompletions(t *testing.T) {
	t.Parallel()

	cfg := profile.NewConfig()

	cmd := &cobra.Command{Use: "test"}
	cfg.RegisterFlags(cmd.Flags())
	require.NoError(t, cfg.RegisterCompletions(cmd))

	completionFn, ok := cmd.GetFlagCompletionFunc("mem-profile-rate")
	require.True(t, ok)

	values, directive := completionFn(cmd, nil, "")
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
	assert.Empty(t, values)
}

// Not parallel: CPU profiling is process-wide.
func TestRun(t *testing.T) {
	dir := t.TempDir()

	cfg := profile.NewConfig()
	cfg.CPUProfile = filepath.Join(dir, "cpu.prof")
	cfg.HeapProfile = filepath.Join(dir, "heap.prof")

	errBoom := errors.New("boom")

	err := cfg.NewProfiler().Run(func() error {
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	for _, path := range []string{cfg.CPUProfile, cfg.HeapProfile} {
		info, statErr := os.Stat(path)
		require.NoError(t, statErr)
		assert.Positive(t, info.Size())
	}
}

func TestRunDisabled(t *testing.T) {
	t.Parallel()

	called := false

	err := profile.NewConfig().NewProfiler().Run(func() error {
		called = true

		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)
}
