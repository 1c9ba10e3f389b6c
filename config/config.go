// Package config binds the driver's configuration inputs to command-line
// flags with spf13/cobra, the way a cobra-based developer-tool CLI binds
// its own flags. The driver itself performs no validation here
// beyond flag parsing; "machine_config empty is fatal" and similar
// domain checks live in the machine package, which is the layer that
// actually knows why they matter.
package config

import "github.com/spf13/cobra"

// Config is every input the Cycle Engine and Machine Assembler consume,
// gathered in one place so cmd/corestep has a single object to build and
// pass down.
type Config struct {
	MachineConfig       string
	ThreadedSimulation  bool
	CoresPerWorker      int
	StartLogAtIteration int64
	LogUserOnly         bool
	LogLevel            int
	LogFileSize         int64
	// StopAtUserInsns is the committed-instruction budget. Negative means
	// no budget is configured.
	StopAtUserInsns int64
	WaitAllFinished bool
	CacheConfigType string

	// TimeStatsFile, when non-empty, selects a CSV time-series sink at
	// that path.
	TimeStatsFile string

	// MonitorPort, when positive, starts the HTTP monitoring endpoint on
	// that port.
	MonitorPort int
}

// Default returns the configuration the driver runs with when nothing
// overrides it: cache_config_type defaults to "auto" per spec, one core
// per worker, and no instruction budget.
func Default() Config {
	return Config{
		CacheConfigType: "auto",
		CoresPerWorker:  1,
		StopAtUserInsns: -1,
	}
}

// Bind registers every field as a persistent flag on cmd, the standard
// spf13/cobra persistent-flags pattern.
func (c *Config) Bind(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringVar(&c.MachineConfig, "machine", c.MachineConfig,
		"machine template name (required)")
	flags.BoolVar(&c.ThreadedSimulation, "threaded-simulation", c.ThreadedSimulation,
		"distribute cores across a worker pool")
	flags.IntVar(&c.CoresPerWorker, "cores-per-worker", c.CoresPerWorker,
		"cores assigned to each worker in threaded mode")
	flags.Int64Var(&c.StartLogAtIteration, "start-log-at-iteration", c.StartLogAtIteration,
		"cycle at which to enable logging (0 disables deferred logging)")
	flags.BoolVar(&c.LogUserOnly, "log-user-only", c.LogUserOnly,
		"defer the logging decision to a higher layer")
	flags.IntVar(&c.LogLevel, "loglevel", c.LogLevel,
		"log verbosity; >=1 forces sequential mode")
	flags.Int64Var(&c.LogFileSize, "log-file-size", c.LogFileSize,
		"log file size in bytes before rotation")
	flags.Int64Var(&c.StopAtUserInsns, "stop-at-user-insns", c.StopAtUserInsns,
		"committed-instruction budget; negative disables it")
	flags.BoolVar(&c.WaitAllFinished, "wait-all-finished", c.WaitAllFinished,
		"treat the next cycle boundary as a stop")
	flags.StringVar(&c.CacheConfigType, "cache-config-type", c.CacheConfigType,
		"cache configuration forwarded to the memory hierarchy")
	flags.StringVar(&c.TimeStatsFile, "time-stats-file", c.TimeStatsFile,
		"path of a CSV time-series file to write periodic statistics to")
	flags.IntVar(&c.MonitorPort, "monitor-port", c.MonitorPort,
		"port for the HTTP monitoring endpoint; 0 disables it")
}
