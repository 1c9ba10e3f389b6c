// Package engine implements the Cycle Engine: the simulation loop that
// clocks the memory hierarchy once per cycle, advances every core exactly
// once, and folds their termination votes into a single stop decision —
// either sequentially or across a pool of worker goroutines rendezvousing
// at a pair of cyclic barriers.
package engine

import (
	"errors"
	"log"
	"os"
	"sync"

	"github.com/JamesLinus/marss/config"
	"github.com/JamesLinus/marss/machine"
	"github.com/JamesLinus/marss/monitoring"
	"github.com/JamesLinus/marss/stats"
)

// ErrDegradeToSequential is returned by Run when threaded mode abandons
// itself because the deferred-logging threshold was reached: verbose
// logging never runs under concurrency, so the engine stops and expects
// the caller to re-enter via RunSequential. What "re-entry" means to an
// emulator integration this repository doesn't have — a fresh cycle, or
// a resumed one — is recorded as a decision in DESIGN.md rather than
// guessed at here.
var ErrDegradeToSequential = errors.New("engine: degrading from threaded to sequential mode")

// Engine owns the simulation loop's state: the cycle/iteration counters,
// the optional statistics sink and monitor, and (in threaded mode) the
// worker pool and termination flag.
type Engine struct {
	Machine *machine.Machine
	Cfg     config.Config
	Stats   stats.Sink
	Monitor *monitoring.Monitor

	simCycle   uint64
	iterations uint64

	totalUserInsnsCommitted uint64

	logEnabled bool
	logFile    *os.File
	logPath    string

	threaded    bool
	workers     []*worker
	runBarrier  *cyclicBarrier
	joinBarrier *cyclicBarrier

	termMu   sync.Mutex
	termFlag bool

	cycleMu      sync.Mutex
	cycleRunning bool
}

// New creates an Engine bound to m and cfg. sink and monitor may be nil.
func New(m *machine.Machine, cfg config.Config, sink stats.Sink, monitor *monitoring.Monitor) *Engine {
	return &Engine{
		Machine: m,
		Cfg:     cfg,
		Stats:   sink,
		Monitor: monitor,
	}
}

// CurrentCycle returns the number of cycles completed so far.
func (e *Engine) CurrentCycle() uint64 {
	return e.simCycle
}

// TotalUserInsnsCommitted returns the most recently aggregated total.
func (e *Engine) TotalUserInsnsCommitted() uint64 {
	return e.totalUserInsnsCommitted
}

// shouldRunThreaded decides the mode: threaded_simulation must be
// requested, there must be more cores than cores_per_worker, and verbose
// logging (loglevel >= 1) must be disabled.
func (e *Engine) shouldRunThreaded() bool {
	return e.Cfg.ThreadedSimulation &&
		len(e.Machine.Cores()) > e.Cfg.CoresPerWorker &&
		e.Cfg.LogLevel < 1
}

// Run dispatches to sequential or threaded mode per shouldRunThreaded's
// conditions and runs until the stop predicate fires. It returns
// ErrDegradeToSequential if threaded mode abandons itself partway
// through; the caller is expected to call RunSequential to continue.
func (e *Engine) Run() error {
	for _, c := range e.Machine.Cores() {
		c.Reset()
		c.CheckContextChanges()
	}

	if e.shouldRunThreaded() {
		return e.RunThreaded()
	}

	return e.RunSequential()
}

// preamble performs the five preamble steps common to both modes: deferred
// logging, the progress indicator, the one-time header dump, the
// periodic dump, and log rotation. Clocking the memory hierarchy is left
// to the caller since it happens at a different point relative to the
// threaded barrier handshake than sequential mode's inline call.
func (e *Engine) preamble() {
	if e.Cfg.StartLogAtIteration > 0 &&
		e.iterations >= uint64(e.Cfg.StartLogAtIteration) &&
		!e.Cfg.LogUserOnly {
		if !e.logEnabled {
			log.Printf("start logging at level %d in cycle %d",
				e.Cfg.LogLevel, e.iterations)
		}
		e.logEnabled = true
	}

	if e.simCycle%1000 == 0 && e.Monitor != nil {
		e.Monitor.UpdateProgress(e.simCycle)
	}

	if e.simCycle == 0 && e.Stats != nil {
		if err := e.Stats.DumpHeader(); err != nil {
			log.Printf("engine: stats header dump failed: %v", err)
		}
	}

	if e.simCycle%10000 == 0 && e.Stats != nil {
		if err := e.Stats.DumpPeriodic(e.simCycle, e.totalUserInsnsCommitted); err != nil {
			log.Printf("engine: stats periodic dump failed: %v", err)
		}
	}

	e.rotateLogIfNeeded()
}

// postamble aggregates committed-instruction totals, advances the
// counters, reports the latest snapshot to the monitor if any, and
// evaluates the stop predicate: exit if the user requested
// wait-all-finished, the instruction budget has been met or exceeded, or
// any core voted to terminate this cycle.
func (e *Engine) postamble(anyCoreVotedExit bool) bool {
	var total uint64
	for _, c := range e.Machine.Cores() {
		total += c.InstructionsCommitted()
	}
	e.totalUserInsnsCommitted = total

	e.simCycle++
	e.iterations++

	if e.Monitor != nil {
		e.Monitor.Update(monitoring.Snapshot{
			Cycle:                   e.simCycle,
			Iterations:              e.iterations,
			TotalUserInsnsCommitted: e.totalUserInsnsCommitted,
			Threaded:                e.threaded,
			WorkerCount:             len(e.workers),
		})
	}

	budgetMet := e.Cfg.StopAtUserInsns >= 0 && total >= uint64(e.Cfg.StopAtUserInsns)

	return e.Cfg.WaitAllFinished || budgetMet || anyCoreVotedExit
}

// FlushTLB broadcasts a TLB flush to every core, in coreid order,
// sequentially. Only legal between cycles.
func (e *Engine) FlushTLB(ctx *machine.Context) {
	e.guardBetweenCycles("FlushTLB")
	for _, c := range e.Machine.Cores() {
		c.FlushTLB(ctx)
	}
}

// FlushTLBVirt broadcasts a single-address TLB flush to every core, in
// coreid order, sequentially. Only legal between cycles.
func (e *Engine) FlushTLBVirt(ctx *machine.Context, vaddr uint64) {
	e.guardBetweenCycles("FlushTLBVirt")
	for _, c := range e.Machine.Cores() {
		c.FlushTLBVirt(ctx, vaddr)
	}
}

func (e *Engine) guardBetweenCycles(op string) {
	e.cycleMu.Lock()
	defer e.cycleMu.Unlock()
	if e.cycleRunning {
		panic("engine: " + op + " called while a cycle is in progress")
	}
}

func (e *Engine) setCycleRunning(v bool) {
	e.cycleMu.Lock()
	e.cycleRunning = v
	e.cycleMu.Unlock()
}
