package engine_test

import (
	"github.com/rs/xid"

	"github.com/JamesLinus/marss/config"
	"github.com/JamesLinus/marss/machine"
)

// buildMachine registers a fresh machine template with one core per entry
// in cores, and a single core factory that hands out cores[coreID] for each
// coreid, assembles it, and returns the machine. The caller keeps the
// cores slice, so tests can inspect runCycleCalls/committed after running
// the engine.
func buildMachine(cores []*scenarioCore) *machine.Machine {
	machineKey := "engine-test-" + xid.New().String()
	coreKey := "engine-test-core-" + xid.New().String()

	machine.RegisterCore(coreKey, func(m *machine.Machine, coreID int, instanceName string) (machine.Core, error) {
		c := cores[coreID]
		c.id = coreID
		return c, nil
	})

	machine.RegisterMachine(machineKey, func(m *machine.Machine) error {
		for range cores {
			m.AddCore("cpu", coreKey)
		}
		return nil
	})

	m := machine.NewMachine("engine-test-machine")
	machine.Assemble(m, machineKey, countingMemFactory)
	return m
}

func baseConfig() config.Config {
	cfg := config.Default()
	cfg.StopAtUserInsns = -1
	return cfg
}
