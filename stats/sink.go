// Package stats provides the time-series sinks the Cycle Engine forwards
// periodic and header snapshots to. The statistics subsystem itself
// (counters, what a "snapshot" actually contains) is out of scope for
// this repository; this package only owns getting bytes to a file on the
// right cadence.
package stats

// Sink is what the Cycle Engine holds. DumpHeader is called once, on the
// very first cycle, if a time-series file is configured. DumpPeriodic is
// called every 10000 cycles starting with that first cycle (cycle 0),
// keyed by the current cycle and
// the running total of committed user instructions. Each sink owns its
// own destination (a file, a database); neither method takes a writer.
type Sink interface {
	DumpHeader() error
	DumpPeriodic(cycle, totalUserInsnsCommitted uint64) error
}
