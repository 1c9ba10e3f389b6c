package machine

import "fmt"

// Machine is the root aggregate of one simulated multicore system: its
// cores, its memory hierarchy, its controllers and interconnects, and the
// bookkeeping (connection graph, options, context pool) a machine
// template needs while assembling them. A Machine exclusively owns
// everything it holds: Reset releases it all in reverse construction
// order.
type Machine struct {
	Name string

	cores           []Core
	controllers     []Controller
	controllerIndex map[string]Controller
	interconnects   []Interconnect

	connections connectionGraph
	options     *OptionsStore
	contexts    *contextPool

	coreIDCursor int

	mh MemoryHierarchy

	// WorkerPool is opaque storage for the engine's worker-pool handles,
	// present only once the Cycle Engine has entered threaded mode. The
	// engine package, not this one, knows what it actually holds; it
	// lives here, rather than growing an import cycle, because the
	// worker threads are machine-owned resources for as long as the
	// machine is running.
	WorkerPool any
}

// NewMachine creates an empty, unassembled machine.
func NewMachine(name string) *Machine {
	return &Machine{
		Name:            name,
		controllerIndex: map[string]Controller{},
		options:         NewOptionsStore(),
		contexts:        newContextPool(),
	}
}

// Options returns the machine's options store.
func (m *Machine) Options() *OptionsStore {
	return m.options
}

// Cores returns the machine's cores in coreid order. The slice is the
// machine's own backing array; callers must not mutate it.
func (m *Machine) Cores() []Core {
	return m.cores
}

// Controllers returns every controller the machine owns, in registration
// order.
func (m *Machine) Controllers() []Controller {
	return m.controllers
}

// Interconnects returns every interconnect the machine owns, in
// materialization order.
func (m *Machine) Interconnects() []Interconnect {
	return m.interconnects
}

// MemoryHierarchy returns the machine's memory hierarchy. It is nil until
// Assemble has run.
func (m *Machine) MemoryHierarchy() MemoryHierarchy {
	return m.mh
}

// ClaimContext allocates the next unused architectural context.
func (m *Machine) ClaimContext() (*Context, error) {
	return m.contexts.claim()
}

// NextCoreID returns a fresh, monotonically increasing coreid.
func (m *Machine) NextCoreID() int {
	id := m.coreIDCursor
	m.coreIDCursor++
	return id
}

// AddCore allocates a coreid, composes the instance name as
// instancePrefix+coreid, looks up coreType in the core registry, invokes
// its factory, and appends the result to the cores sequence. Fatal
// (panics with *ConfigError) if coreType is unregistered.
func (m *Machine) AddCore(instancePrefix, coreType string) Core {
	factory, ok := lookupCore(coreType)
	if !ok {
		fatalConfig("core", coreType, registeredKeysCore())
	}

	coreID := m.NextCoreID()
	name := fmt.Sprintf("%s%d", instancePrefix, coreID)

	core, err := factory(m, coreID, name)
	if err != nil {
		panic(fmt.Errorf("machine: building core %q: %w", name, err))
	}

	m.cores = append(m.cores, core)

	return core
}

// AddController allocates a controller the same way AddCore allocates a
// core: compose the instance name, look up controllerType in the
// controller registry, invoke its factory, append to the controllers
// sequence, and index it by name for later connection resolution. Fatal
// if controllerType is unregistered.
func (m *Machine) AddController(
	coreID int, instancePrefix, controllerType, portType string,
) Controller {
	factory, ok := lookupController(controllerType)
	if !ok {
		fatalConfig("controller", controllerType, registeredKeysController())
	}

	name := fmt.Sprintf("%s%d", instancePrefix, coreID)

	cont, err := factory(m, coreID, name, portType)
	if err != nil {
		panic(fmt.Errorf("machine: building controller %q: %w", name, err))
	}

	m.controllers = append(m.controllers, cont)
	m.controllerIndex[name] = cont

	return cont
}

// DeclareConnection creates an empty ConnectionDef named
// instancePrefix+seqID, appends it to the connection graph, and returns a
// handle the template can Attach controllers to.
func (m *Machine) DeclareConnection(
	interconnectType, instancePrefix string, seqID int,
) *ConnectionDef {
	name := fmt.Sprintf("%s%d", instancePrefix, seqID)
	return m.connections.declare(interconnectType, name)
}

// controllerByName resolves a previously-added controller, for connection
// materialization.
func (m *Machine) controllerByName(name string) (Controller, bool) {
	c, ok := m.controllerIndex[name]
	return c, ok
}

// Reset releases every core, controller, interconnect and the memory
// hierarchy in reverse construction order, and rewinds every cursor so the
// machine can be reassembled from scratch.
func (m *Machine) Reset() {
	for i := len(m.interconnects) - 1; i >= 0; i-- {
		m.interconnects[i] = nil
	}
	m.interconnects = nil

	m.mh = nil

	for i := len(m.controllers) - 1; i >= 0; i-- {
		m.controllers[i] = nil
	}
	m.controllers = nil
	m.controllerIndex = map[string]Controller{}

	for i := len(m.cores) - 1; i >= 0; i-- {
		m.cores[i] = nil
	}
	m.cores = nil

	m.connections = connectionGraph{}
	m.contexts.reset()
	m.coreIDCursor = 0
	m.WorkerPool = nil
}
