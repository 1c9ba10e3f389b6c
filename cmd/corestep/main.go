// Command corestep runs a machine template through the cycle engine to
// completion. It is the thin entry point that wires configuration,
// plugin registration, machine assembly and the engine together.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/JamesLinus/marss/builtins"
	"github.com/JamesLinus/marss/config"
	"github.com/JamesLinus/marss/engine"
	"github.com/JamesLinus/marss/machine"
	"github.com/JamesLinus/marss/monitoring"
	"github.com/JamesLinus/marss/stats"
)

func main() {
	cfg := config.Default()

	root := &cobra.Command{
		Use:   "corestep",
		Short: "Run a machine template through the cycle engine",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfg)
		},
	}
	cfg.Bind(root)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cfg config.Config) (err error) {
	defer func() {
		if r := recover(); r != nil {
			var cfgErr *machine.ConfigError
			if e, ok := r.(error); ok && errors.As(e, &cfgErr) {
				err = fmt.Errorf("fatal configuration error: %w", e)
				return
			}
			panic(r)
		}
	}()

	builtins.Register()

	if cfg.MachineConfig == "" {
		return errors.New("corestep: --machine is required")
	}

	m := machine.NewMachine(cfg.MachineConfig)

	memFactory := builtins.MemoryHierarchyFactory
	if cfg.CacheConfigType != "" && cfg.CacheConfigType != "auto" {
		return fmt.Errorf("corestep: unsupported cache-config-type %q", cfg.CacheConfigType)
	}

	machine.Assemble(m, cfg.MachineConfig, memFactory)

	var sink stats.Sink
	if cfg.TimeStatsFile != "" {
		csvSink := stats.NewCSVSink(cfg.TimeStatsFile)
		if err := csvSink.Open(); err != nil {
			return fmt.Errorf("corestep: opening stats sink: %w", err)
		}
		sink = csvSink
	}

	var monitor *monitoring.Monitor
	if cfg.MonitorPort > 0 {
		monitor = monitoring.NewMonitor(cfg.MonitorPort)
		if _, err := monitor.Start(); err != nil {
			log.Printf("corestep: monitoring endpoint did not start: %v", err)
			monitor = nil
		}
	}

	e := engine.New(m, cfg, sink, monitor)

	if err := e.Run(); err != nil {
		if errors.Is(err, engine.ErrDegradeToSequential) {
			log.Printf("corestep: degrading to sequential mode at cycle %d", e.CurrentCycle())
			return e.RunSequential()
		}
		return err
	}

	return nil
}
