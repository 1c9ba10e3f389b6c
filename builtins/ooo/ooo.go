// Package ooo registers the "ooo" core type: a stand-in out-of-order
// pipeline that commits a configurable number of instructions per cycle
// and, optionally, votes to terminate the simulation once it has run a
// configured number of cycles. It exists so the engine package has
// something concrete to drive in its end-to-end scenario tests.
package ooo

import (
	"fmt"
	"io"
	"sync"

	"github.com/JamesLinus/marss/machine"
)

// Key is the core type this package registers.
const Key = "ooo"

// Option names read from the Options Store at construction time.
const (
	OptInsnsPerCycle    = "insns_per_cycle"
	OptTerminateAtCycle = "terminate_at_cycle"
)

// Core is the "ooo" core implementation. It has no pipeline state worth
// the name: committed tracks the running instruction total and cycles
// tracks how many times RunCycle has fired.
type Core struct {
	mu   sync.Mutex
	id   int
	name string
	mh   machine.MemoryHierarchy

	insnsPerCycle    uint64
	terminateAtCycle int

	cycles    int
	committed uint64
}

// New constructs a Core reading its configuration from m's Options Store
// under instanceName. insns_per_cycle defaults to 1 when unset;
// terminate_at_cycle defaults to 0, meaning "never vote to terminate".
func New(m *machine.Machine, coreID int, instanceName string) (machine.Core, error) {
	insnsPerCycle := 1
	if v, ok := m.Options().GetInt(instanceName, OptInsnsPerCycle); ok {
		if v < 0 {
			return nil, fmt.Errorf("ooo: %s: %s must be non-negative, got %d", instanceName, OptInsnsPerCycle, v)
		}
		insnsPerCycle = v
	}

	terminateAtCycle := 0
	if v, ok := m.Options().GetInt(instanceName, OptTerminateAtCycle); ok {
		terminateAtCycle = v
	}

	return &Core{
		id:               coreID,
		name:             instanceName,
		insnsPerCycle:    uint64(insnsPerCycle),
		terminateAtCycle: terminateAtCycle,
	}, nil
}

// Reset zeroes the core's counters.
func (c *Core) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cycles = 0
	c.committed = 0
}

// CheckContextChanges is a no-op: this core has no context-dependent state.
func (c *Core) CheckContextChanges() {}

// RunCycle commits insnsPerCycle instructions and votes to terminate once
// terminateAtCycle cycles (if configured) have elapsed.
func (c *Core) RunCycle() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cycles++
	c.committed += c.insnsPerCycle

	return c.terminateAtCycle > 0 && c.cycles >= c.terminateAtCycle
}

// FlushTLB is a no-op: this core has no TLB to speak of.
func (c *Core) FlushTLB(*machine.Context) {}

// FlushTLBVirt is a no-op, for the same reason as FlushTLB.
func (c *Core) FlushTLBVirt(*machine.Context, uint64) {}

// InstructionsCommitted returns the running total committed since Reset.
func (c *Core) InstructionsCommitted() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.committed
}

// UpdateMemoryHierarchyPointer binds mh, in case a future revision of this
// core wants to issue memory traffic; unused today.
func (c *Core) UpdateMemoryHierarchyPointer(mh machine.MemoryHierarchy) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mh = mh
}

// CoreID returns the coreid the machine assigned at construction.
func (c *Core) CoreID() int { return c.id }

// DumpState writes a one-line summary of this core's counters.
func (c *Core) DumpState(w io.Writer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(w, "ooo core %s: cycles=%d committed=%d\n", c.name, c.cycles, c.committed)
}

// UpdateStats folds this core's counters into s.
func (c *Core) UpdateStats(s *machine.Counters) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s.InstructionsCommitted += c.committed
	s.Cycles += uint64(c.cycles)
}

// Register adds the "ooo" core factory to the core registry.
func Register() {
	machine.RegisterCore(Key, New)
}
