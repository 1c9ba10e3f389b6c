package engine_test

import (
	"io"

	"github.com/JamesLinus/marss/machine"
)

// scenarioCore commits insnsPerCycle instructions every RunCycle and
// votes to terminate once it has run terminateAtCycle cycles (0 disables
// the vote).
type scenarioCore struct {
	id              int
	insnsPerCycle   uint64
	terminateAtCycle int
	committed       uint64
	runCycleCalls   int
}

func (c *scenarioCore) Reset()               {}
func (c *scenarioCore) CheckContextChanges()  {}
func (c *scenarioCore) FlushTLB(*machine.Context)             {}
func (c *scenarioCore) FlushTLBVirt(*machine.Context, uint64) {}
func (c *scenarioCore) InstructionsCommitted() uint64 { return c.committed }
func (c *scenarioCore) UpdateMemoryHierarchyPointer(machine.MemoryHierarchy) {}
func (c *scenarioCore) CoreID() int         { return c.id }
func (c *scenarioCore) DumpState(io.Writer) {}
func (c *scenarioCore) UpdateStats(s *machine.Counters) {
	s.InstructionsCommitted += c.committed
}

func (c *scenarioCore) RunCycle() bool {
	c.runCycleCalls++
	c.committed += c.insnsPerCycle
	return c.terminateAtCycle > 0 && c.runCycleCalls >= c.terminateAtCycle
}

// countingMemoryHierarchy counts Clock calls.
type countingMemoryHierarchy struct {
	clockCalls int
}

func (mh *countingMemoryHierarchy) Clock()            { mh.clockCalls++ }
func (mh *countingMemoryHierarchy) DumpInfo(io.Writer) {}

func countingMemFactory(m *machine.Machine) (machine.MemoryHierarchy, error) {
	return &countingMemoryHierarchy{}, nil
}
