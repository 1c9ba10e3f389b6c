// Package builtins registers a set of scenario machine templates —
// "single_core", "dual_core", and a deliberately broken template for the
// fatal-configuration-error path — backed by the ooo core, the
// simplemem memory hierarchy, and the ringbus/l1 interconnect pair.
// cmd/corestep calls Register once, before the first call to
// machine.Assemble, per the registration-order requirement the four
// registries impose.
package builtins

import (
	"github.com/JamesLinus/marss/builtins/ooo"
	"github.com/JamesLinus/marss/builtins/ringbus"
	"github.com/JamesLinus/marss/builtins/simplemem"
	"github.com/JamesLinus/marss/machine"
)

// Machine template keys.
const (
	TemplateSingleCore = "single_core"
	TemplateDualCore   = "dual_core"
	TemplateBrokenCore = "broken_core"
)

// Register populates all four builder registries with this package's
// plugins and machine templates. Safe to call more than once: every
// registration is last-write-wins.
func Register() {
	ooo.Register()
	ringbus.Register()

	machine.RegisterMachine(TemplateSingleCore, singleCore)
	machine.RegisterMachine(TemplateDualCore, dualCore)
	machine.RegisterMachine(TemplateBrokenCore, brokenCore)
}

// singleCore is a minimal template: one "ooo" core, no controllers, no
// connections. insns_per_cycle is pinned to 0 so a stop_at_user_insns
// budget of 0 is met after exactly one cycle with nothing committed.
func singleCore(m *machine.Machine) error {
	m.Options().SetIntIndexed("core", 0, ooo.OptInsnsPerCycle, 0)
	m.AddCore("core", ooo.Key)
	return nil
}

// dualCore is a two-core template: each core gets an "l1" controller
// wired to a shared "ringbus" interconnect, exercising the connection
// graph alongside the cycle loop.
func dualCore(m *machine.Machine) error {
	const cores = 2

	conn := m.DeclareConnection(ringbus.InterconnectKey, "ring", 0)

	for i := 0; i < cores; i++ {
		// The core factory reads its options at construction time, so
		// insns_per_cycle must be set before AddCore runs. NextCoreID
		// hands out ids in ascending order starting at 0 on a freshly
		// assembled machine, so the loop index predicts the id AddCore
		// is about to assign.
		m.Options().SetIntIndexed("core", i, ooo.OptInsnsPerCycle, 100)

		core := m.AddCore("core", ooo.Key)
		coreID := core.CoreID()

		cont := m.AddController(coreID, "l1", ringbus.ControllerKey, "data")
		conn.Attach(cont.Name(), "data")
	}

	return nil
}

// brokenCore requests a core type that was never registered, so Assemble
// panics with a *machine.ConfigError naming
// "definitely-not-a-registered-core-type" before any cycle runs.
func brokenCore(m *machine.Machine) error {
	m.AddCore("core", "definitely-not-a-registered-core-type")
	return nil
}

// MemoryHierarchyFactory is the "auto" memory hierarchy factory this
// package's templates are built to run against; cmd/corestep selects it
// whenever Cfg.CacheConfigType == "auto".
var MemoryHierarchyFactory = simplemem.Factory
