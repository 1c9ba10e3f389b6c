package machine

// Controller is a cache controller bound to one core and one port type.
// The driver only needs to be able to name it and wire it to an
// Interconnect; everything else about a controller is opaque.
type Controller interface {
	// Name returns the controller's instance name, as composed by
	// AddController.
	Name() string

	// RegisterInterconnect binds ic to this controller under portType.
	// Called once per ConnectionDef attachment during materialization.
	RegisterInterconnect(ic Interconnect, portType string)
}

// Interconnect is a cache/bus fabric connecting one or more controllers.
type Interconnect interface {
	// Name returns the interconnect's instance name.
	Name() string

	// RegisterController binds c to this interconnect. Called once per
	// ConnectionDef attachment during materialization, reciprocally with
	// Controller.RegisterInterconnect.
	RegisterController(c Controller)
}

// CoreFactory produces a core instance bound to m, with the given
// instance name (already composed as instancePrefix+coreID).
type CoreFactory func(m *Machine, coreID int, instanceName string) (Core, error)

// ControllerFactory produces a controller bound to coreID and portType,
// wired to the machine's memory hierarchy.
type ControllerFactory func(
	m *Machine, coreID int, instanceName, portType string,
) (Controller, error)

// InterconnectFactory produces an interconnect bound to the machine's
// memory hierarchy.
type InterconnectFactory func(m *Machine, instanceName string) (Interconnect, error)

// MachineGenerator populates a freshly-created Machine: it calls back into
// AddCore, AddController, DeclareConnection/Attach, and the Options store.
// Registered under MachineBuilder and invoked once by Assemble.
type MachineGenerator func(m *Machine) error
