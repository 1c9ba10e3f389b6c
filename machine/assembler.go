package machine

import "fmt"

// Assemble resolves templateName in the machine registry, invokes its
// generator (which calls back into m to add cores, controllers, options
// and connection declarations), constructs the memory hierarchy via
// memFactory, binds it to every core, and finally materializes the
// connection graph into concrete interconnects.
//
// Assemble panics with a *ConfigError if templateName is unregistered, if
// the generator references an unregistered core/controller type, or if a
// ConnectionDef names a controller or interconnect type that doesn't
// exist. All of these are configuration-time failures: assembly is a
// total function over a valid config, so there is nothing sensible to
// return to the caller short of the process aborting.
func Assemble(m *Machine, templateName string, memFactory MemoryHierarchyFactory) {
	if templateName == "" {
		panic(&ConfigError{Kind: "machine", Key: "<empty>", Available: registeredKeysMachine()})
	}

	gen, ok := lookupMachine(templateName)
	if !ok {
		fatalConfig("machine", templateName, registeredKeysMachine())
	}

	if err := gen(m); err != nil {
		panic(fmt.Errorf("machine: generator %q failed: %w", templateName, err))
	}

	mh, err := memFactory(m)
	if err != nil {
		panic(fmt.Errorf("machine: constructing memory hierarchy: %w", err))
	}
	m.mh = mh

	for _, c := range m.cores {
		c.UpdateMemoryHierarchyPointer(mh)
	}

	materializeInterconnects(m)
}

// materializeInterconnects walks the connection graph in insertion order,
// instantiating one interconnect per ConnectionDef and symmetrically
// registering it with every attached controller. Both directions of
// registration are mandatory: a later cycle's traffic may be silently
// dropped by an implementation that only received one side of it.
func materializeInterconnects(m *Machine) {
	for _, def := range m.connections.defs {
		factory, ok := lookupInterconnect(def.InterconnectType)
		if !ok {
			fatalConfig("interconnect", def.InterconnectType, registeredKeysInterconnect())
		}

		ic, err := factory(m, def.Name)
		if err != nil {
			panic(fmt.Errorf("machine: building interconnect %q: %w", def.Name, err))
		}
		m.interconnects = append(m.interconnects, ic)

		for _, att := range def.Attachments {
			cont, ok := m.controllerByName(att.ControllerName)
			if !ok {
				fatalConfig("connection", att.ControllerName, controllerNames(m))
			}

			ic.RegisterController(cont)
			cont.RegisterInterconnect(ic, att.PortType)
		}
	}
}

func controllerNames(m *Machine) []string {
	names := make([]string, 0, len(m.controllers))
	for _, c := range m.controllers {
		names = append(names, c.Name())
	}
	return names
}
