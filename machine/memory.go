package machine

import "io"

// MemoryHierarchy is the contract the Cycle Engine consumes from the memory
// subsystem: caches, coherence, and bus arbitration behind a single
// Clock() call. Its implementation is out of scope for this repository.
type MemoryHierarchy interface {
	// Clock advances the memory hierarchy by exactly one cycle. The engine
	// calls this once per cycle, strictly before any core's RunCycle.
	Clock()

	// DumpInfo writes a human-readable snapshot of the hierarchy's state
	// to w.
	DumpInfo(w io.Writer)
}

// MemoryHierarchyFactory constructs the memory hierarchy for a machine.
// It is invoked exactly once per Assemble, strictly after all cores and
// controllers exist and strictly before interconnects are materialized.
type MemoryHierarchyFactory func(m *Machine) (MemoryHierarchy, error)
