// Package simplemem provides the trivial memory hierarchy cmd/corestep
// hands to the Machine Assembler when cache_config_type is "auto" (or
// unset): no caches, no controllers, just a cycle counter. It
// satisfies the MemoryHierarchy contract without modeling anything, so
// the engine's cycle loop and the builtins/ooo core have a complete
// machine to run against in tests that don't care about memory timing.
package simplemem

import (
	"fmt"
	"io"
	"sync"

	"github.com/JamesLinus/marss/machine"
)

// Hierarchy is the "auto" memory hierarchy: it does nothing but count the
// cycles it has been clocked.
type Hierarchy struct {
	mu     sync.Mutex
	cycles uint64
}

// New constructs the "auto" memory hierarchy. It takes no configuration:
// cache_config_type selects it, and there is nothing further to read from
// m's Options Store.
func New(m *machine.Machine) (machine.MemoryHierarchy, error) {
	return &Hierarchy{}, nil
}

// Clock advances the cycle counter by one.
func (h *Hierarchy) Clock() {
	h.mu.Lock()
	h.cycles++
	h.mu.Unlock()
}

// DumpInfo writes a one-line summary to w.
func (h *Hierarchy) DumpInfo(w io.Writer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	fmt.Fprintf(w, "simplemem: cycles=%d\n", h.cycles)
}

// Factory is the machine.MemoryHierarchyFactory this package exposes;
// cmd/corestep passes it to machine.Assemble whenever
// Cfg.CacheConfigType == "auto".
var Factory machine.MemoryHierarchyFactory = New
