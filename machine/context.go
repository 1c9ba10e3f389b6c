package machine

import "fmt"

// MaxContexts bounds the fixed-size architectural context pool. It mirrors
// the emulator-side NUM_SIM_CORES/MAX_CONTEXTS ceiling: a machine can never
// claim more contexts than this, regardless of how many cores it builds.
const MaxContexts = 256

// Context is an opaque architectural-state slot handed out by the guest
// emulator. The driver never looks inside a Context; it only allocates them
// in order and hands the pointer to whichever core claims it.
type Context struct {
	id int
}

// ID returns the context's position in the global pool.
func (c *Context) ID() int {
	return c.id
}

// contextPool is the fixed-size arena of contexts owned by a Machine. It
// hands out contexts strictly in allocation order and never reclaims one
// once claimed.
type contextPool struct {
	contexts [MaxContexts]Context
	used     [MaxContexts]bool
	cursor   int
}

func newContextPool() *contextPool {
	p := &contextPool{}
	for i := range p.contexts {
		p.contexts[i].id = i
	}
	return p
}

// claim hands out the next unused context and marks it used.
func (p *contextPool) claim() (*Context, error) {
	if p.cursor >= MaxContexts {
		return nil, fmt.Errorf(
			"machine: context pool exhausted, requested more than %d contexts",
			MaxContexts)
	}

	ctx := &p.contexts[p.cursor]
	p.used[p.cursor] = true
	p.cursor++

	return ctx, nil
}

// reset releases every claimed context so the pool can be reused.
func (p *contextPool) reset() {
	for i := range p.used {
		p.used[i] = false
	}
	p.cursor = 0
}
