package engine

import (
	"log"

	"github.com/JamesLinus/marss/machine"
)

// worker owns a contiguous, coreid-ordered slice of cores and rendezvous
// with the orchestrator at the engine's two barriers once per cycle.
type worker struct {
	id     int
	cores  []machine.Core
	engine *Engine
}

func (w *worker) loop() {
	pinToCPU(w.id)

	for {
		w.engine.runBarrier.wait()

		local := false
		for _, c := range w.cores {
			if c.RunCycle() {
				local = true
			}
		}

		if local {
			w.engine.termMu.Lock()
			w.engine.termFlag = true
			w.engine.termMu.Unlock()
		}

		w.engine.joinBarrier.wait()
	}
}

// RunThreaded distributes the machine's cores across a pool of W =
// ceil(cores/cores_per_worker) worker goroutines and runs the cycle loop
// with a two-barrier-per-cycle handshake: the run barrier releases every
// worker into phase 2, the join barrier collects them all back before the
// orchestrator reads committed-instruction counters and the termination
// flag. This guarantees no core runs while the memory hierarchy clocks,
// no core runs twice in a cycle, and the orchestrator's post-cycle view
// of every core is consistent.
//
// Worker goroutines are never cleanly joined: on exit the engine simply
// stops waiting on them and lets them be reclaimed with the process.
// Acceptable because the process is exiting anyway; a future revision
// that needs graceful mid-run shutdown would want a third "exit" state
// on the run barrier instead.
func (e *Engine) RunThreaded() error {
	e.threaded = true

	cores := e.Machine.Cores()
	workerCount := (len(cores) + e.Cfg.CoresPerWorker - 1) / e.Cfg.CoresPerWorker

	e.runBarrier = newCyclicBarrier(workerCount + 1)
	e.joinBarrier = newCyclicBarrier(workerCount + 1)
	e.workers = make([]*worker, 0, workerCount)

	for i := 0; i < workerCount; i++ {
		start := i * e.Cfg.CoresPerWorker
		end := start + e.Cfg.CoresPerWorker
		if end > len(cores) {
			end = len(cores)
		}

		w := &worker{id: i, cores: cores[start:end], engine: e}
		e.workers = append(e.workers, w)
		go w.loop()
	}

	e.Machine.WorkerPool = e.workers

	for {
		if e.Cfg.StartLogAtIteration > 0 &&
			e.iterations >= uint64(e.Cfg.StartLogAtIteration) {
			return ErrDegradeToSequential
		}

		e.preamble()

		e.Machine.MemoryHierarchy().Clock()

		e.setCycleRunning(true)
		e.runBarrier.wait()
		e.joinBarrier.wait()
		e.setCycleRunning(false)

		e.termMu.Lock()
		exiting := e.termFlag
		e.termFlag = false
		e.termMu.Unlock()

		if e.postamble(exiting) {
			return nil
		}
	}
}

// pinToCPU attempts to pin the calling goroutine's OS thread to CPU id.
// Failure is a warning, never fatal: the simulation is still correct
// without pinning, only somewhat less predictable in its scheduling.
func pinToCPU(id int) {
	if err := setAffinity(id); err != nil {
		log.Printf("engine: worker %d: could not pin to CPU %d: %v", id, id, err)
	}
}
