// Package profile records CPU and heap profiles of a command run.
//
// Typical usage creates a [Config], registers flags, then wraps the work in
// [Profiler.Run]:
//
//	cfg := profile.NewConfig()
//	cfg.RegisterFlags(cmd.Flags())
//
//	err := cfg.NewProfiler().Run(func() error {
//		return runner.Run(ctx, files)
//	})
//
// Users can then enable profiling via flags like --cpu-profile=cpu.prof.
package profile
