package machine_test

import (
	"io"

	"github.com/JamesLinus/marss/machine"
)

// fakeCore is the minimal machine.Core used across the machine package's
// specs. It commits a fixed number of instructions per RunCycle and never
// votes to terminate.
type fakeCore struct {
	id            int
	name          string
	insnsPerCycle uint64
	committed     uint64
	mh            machine.MemoryHierarchy
	resetCalls    int
	cycles        int
}

func (c *fakeCore) Reset()                             { c.resetCalls++ }
func (c *fakeCore) CheckContextChanges()               {}
func (c *fakeCore) FlushTLB(*machine.Context)          {}
func (c *fakeCore) FlushTLBVirt(*machine.Context, uint64) {}
func (c *fakeCore) InstructionsCommitted() uint64      { return c.committed }
func (c *fakeCore) UpdateMemoryHierarchyPointer(mh machine.MemoryHierarchy) {
	c.mh = mh
}
func (c *fakeCore) CoreID() int         { return c.id }
func (c *fakeCore) DumpState(io.Writer) {}
func (c *fakeCore) UpdateStats(s *machine.Counters) {
	s.InstructionsCommitted += c.committed
}

func (c *fakeCore) RunCycle() bool {
	c.cycles++
	c.committed += c.insnsPerCycle
	return false
}

func newFakeCoreFactory(insnsPerCycle uint64) machine.CoreFactory {
	return func(m *machine.Machine, coreID int, name string) (machine.Core, error) {
		return &fakeCore{id: coreID, name: name, insnsPerCycle: insnsPerCycle}, nil
	}
}

// fakeController is the minimal machine.Controller used in connection
// materialization specs.
type fakeController struct {
	name           string
	registeredICs  []machine.Interconnect
	registeredType []string
}

func (c *fakeController) Name() string { return c.name }
func (c *fakeController) RegisterInterconnect(ic machine.Interconnect, portType string) {
	c.registeredICs = append(c.registeredICs, ic)
	c.registeredType = append(c.registeredType, portType)
}

// fakeInterconnect is the minimal machine.Interconnect used in connection
// materialization specs.
type fakeInterconnect struct {
	name        string
	controllers []machine.Controller
}

func (i *fakeInterconnect) Name() string { return i.name }
func (i *fakeInterconnect) RegisterController(c machine.Controller) {
	i.controllers = append(i.controllers, c)
}

// fakeMemoryHierarchy is the minimal machine.MemoryHierarchy used across
// the machine package's specs.
type fakeMemoryHierarchy struct {
	clockCalls int
}

func (mh *fakeMemoryHierarchy) Clock()            { mh.clockCalls++ }
func (mh *fakeMemoryHierarchy) DumpInfo(io.Writer) {}

func fakeMemFactory(m *machine.Machine) (machine.MemoryHierarchy, error) {
	return &fakeMemoryHierarchy{}, nil
}
