// Package ringbus provides a minimal interconnect ("ringbus") and
// matching controller ("l1") pair. Every attachment registers
// symmetrically, in both directions; this package's own tests assemble it
// through machine.Assemble to exercise connection-graph materialization.
package ringbus

import (
	"sync"

	"github.com/JamesLinus/marss/machine"
)

// InterconnectKey is the interconnect type this package registers.
const InterconnectKey = "ringbus"

// ControllerKey is the controller type this package registers.
const ControllerKey = "l1"

// Bus is a ring interconnect that tracks which controllers have attached
// to it, in attachment order.
type Bus struct {
	mu          sync.Mutex
	name        string
	controllers []machine.Controller
}

// NewBus constructs a ringbus interconnect instance.
func NewBus(m *machine.Machine, instanceName string) (machine.Interconnect, error) {
	return &Bus{name: instanceName}, nil
}

// Name returns the interconnect's instance name.
func (b *Bus) Name() string { return b.name }

// RegisterController appends c to the ring, in the order materialization
// attaches it.
func (b *Bus) RegisterController(c machine.Controller) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.controllers = append(b.controllers, c)
}

// Controllers returns the controllers currently attached to the ring, in
// attachment order.
func (b *Bus) Controllers() []machine.Controller {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]machine.Controller, len(b.controllers))
	copy(out, b.controllers)
	return out
}

// attachment is one (interconnect, port type) pair an L1 controller has
// bound to.
type attachment struct {
	ic       machine.Interconnect
	portType string
}

// L1 is a minimal cache controller bound to one core, tracking which
// interconnects it has registered with.
type L1 struct {
	mu       sync.Mutex
	coreID   int
	name     string
	attached []attachment
}

// NewL1 constructs an "l1" controller bound to coreID.
func NewL1(m *machine.Machine, coreID int, instanceName, portType string) (machine.Controller, error) {
	return &L1{coreID: coreID, name: instanceName}, nil
}

// Name returns the controller's instance name.
func (l *L1) Name() string { return l.name }

// RegisterInterconnect binds ic under portType, reciprocally with
// Bus.RegisterController.
func (l *L1) RegisterInterconnect(ic machine.Interconnect, portType string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.attached = append(l.attached, attachment{ic: ic, portType: portType})
}

// Attachments returns the interconnects this controller has registered
// with, in registration order.
func (l *L1) Attachments() []machine.Interconnect {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]machine.Interconnect, len(l.attached))
	for i, a := range l.attached {
		out[i] = a.ic
	}
	return out
}

// Register adds the "ringbus" interconnect factory and "l1" controller
// factory to their respective registries.
func Register() {
	machine.RegisterInterconnect(InterconnectKey, NewBus)
	machine.RegisterController(ControllerKey, NewL1)
}
