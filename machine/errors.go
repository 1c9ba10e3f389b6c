package machine

import (
	"fmt"
	"sort"
	"strings"
)

// ConfigError reports a fatal configuration-time failure: an unknown
// machine template, core type, controller type, or interconnect type, or a
// connection referencing a controller that was never registered. These are
// unrecoverable by construction — nothing can run without a valid machine
// graph — so assembly panics with one rather than limping onward.
type ConfigError struct {
	Kind      string // "machine", "core", "controller", "interconnect", "connection"
	Key       string
	Available []string
}

func (e *ConfigError) Error() string {
	avail := append([]string(nil), e.Available...)
	sort.Strings(avail)

	if len(avail) == 0 {
		return fmt.Sprintf("unknown %s %q (none registered)", e.Kind, e.Key)
	}

	return fmt.Sprintf("unknown %s %q (registered: %s)",
		e.Kind, e.Key, strings.Join(avail, ", "))
}

func fatalConfig(kind, key string, available []string) {
	panic(&ConfigError{Kind: kind, Key: key, Available: available})
}
