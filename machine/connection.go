package machine

// Attachment is one (controller, port role) pair declared on a
// ConnectionDef. Order among attachments on the same ConnectionDef is
// preserved and observable by the interconnect implementation during
// materialization.
type Attachment struct {
	ControllerName string
	PortType       string
}

// ConnectionDef is a named declaration of an interconnect instance and the
// controllers that will attach to it. It is accumulated during assembly
// and consumed exactly once, when interconnects are materialized.
type ConnectionDef struct {
	InterconnectType string
	Name             string
	Attachments      []Attachment
}

// Attach appends a (controllerName, portType) pair to the definition.
func (c *ConnectionDef) Attach(controllerName, portType string) {
	c.Attachments = append(c.Attachments, Attachment{
		ControllerName: controllerName,
		PortType:       portType,
	})
}

// connectionGraph is the in-memory, insertion-ordered list of
// ConnectionDefs accumulated while a machine template runs.
type connectionGraph struct {
	defs []*ConnectionDef
}

func (g *connectionGraph) declare(interconnectType, name string) *ConnectionDef {
	def := &ConnectionDef{InterconnectType: interconnectType, Name: name}
	g.defs = append(g.defs, def)
	return def
}
