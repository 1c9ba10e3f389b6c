package machine

import "io"

// Counters is the set of per-core statistics the engine asks a core to
// populate during UpdateStats. The statistics subsystem proper lives
// outside this repository; this is only the narrow slice the Cycle Engine
// itself needs to aggregate.
type Counters struct {
	InstructionsCommitted uint64
	Cycles                uint64
}

// Core is the contract the Cycle Engine consumes from a simulated
// processor pipeline. Implementations live in plugins registered under
// CoreBuilder; the engine never knows or cares what is behind this
// interface beyond these methods.
type Core interface {
	// Reset restores the core to its power-on state. Called once, on the
	// first run of a freshly assembled machine.
	Reset()

	// CheckContextChanges lets the core notice that its bound Context has
	// been mutated by the emulator since the last cycle (e.g. a context
	// switch) and resynchronize any cached view of it.
	CheckContextChanges()

	// RunCycle advances the core by exactly one simulated cycle and
	// returns true if the core votes to terminate the simulation.
	RunCycle() bool

	// FlushTLB invalidates every TLB entry belonging to ctx. Only legal
	// between cycles.
	FlushTLB(ctx *Context)

	// FlushTLBVirt invalidates the TLB entry for ctx mapping vaddr, if any.
	// Only legal between cycles.
	FlushTLBVirt(ctx *Context, vaddr uint64)

	// InstructionsCommitted returns the running total of user instructions
	// the core has committed since Reset.
	InstructionsCommitted() uint64

	// UpdateMemoryHierarchyPointer is called once, after the memory
	// hierarchy has been constructed, so the core can bind to it.
	UpdateMemoryHierarchyPointer(mh MemoryHierarchy)

	// CoreID returns the small integer identifier the machine assigned to
	// this core at construction time.
	CoreID() int

	// DumpState writes a human-readable snapshot of the core's
	// architectural and microarchitectural state to w.
	DumpState(w io.Writer)

	// UpdateStats folds this core's counters into s.
	UpdateStats(s *Counters)
}
