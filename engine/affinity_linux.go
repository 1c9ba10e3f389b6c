//go:build linux

package engine

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// setAffinity locks the calling goroutine to its current OS thread and
// pins that thread to CPU id via sched_setaffinity(2).
func setAffinity(id int) error {
	runtime.LockOSThread()

	var set unix.CPUSet
	set.Zero()
	set.Set(id)

	return unix.SchedSetaffinity(0, &set)
}
