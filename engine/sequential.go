package engine

// RunSequential runs the cycle loop on the calling goroutine: the driver
// itself clocks the memory hierarchy and then invokes every core's
// RunCycle in coreid order, accumulating termination votes by
// disjunction. No concurrency is present; this is also the mode threaded
// execution degrades into when the deferred-logging threshold is
// crossed.
func (e *Engine) RunSequential() error {
	e.threaded = false

	for {
		e.preamble()

		e.Machine.MemoryHierarchy().Clock()

		e.setCycleRunning(true)
		exiting := false
		for _, c := range e.Machine.Cores() {
			if c.RunCycle() {
				exiting = true
			}
		}
		e.setCycleRunning(false)

		if e.postamble(exiting) {
			return nil
		}
	}
}
