//go:build !linux

package engine

import "fmt"

// setAffinity is a no-op stand-in on platforms with no portable CPU
// pinning syscall; it always reports failure so the caller logs a
// warning instead of silently doing nothing.
func setAffinity(id int) error {
	return fmt.Errorf("cpu affinity pinning is not supported on this platform")
}
