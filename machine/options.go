package machine

import (
	"fmt"
	"sync"
)

// OptionsStore holds the three separately-typed option tables, keyed by
// component-instance name and then option name. A machine template
// populates it during assembly; core and controller builders read it
// while building. There is no implicit coercion between kinds: a bool
// set under "x" is invisible to GetInt("x").
type OptionsStore struct {
	mu    sync.RWMutex
	bools map[string]map[string]bool
	ints  map[string]map[string]int
	strs  map[string]map[string]string
}

// NewOptionsStore creates an empty options store.
func NewOptionsStore() *OptionsStore {
	return &OptionsStore{
		bools: map[string]map[string]bool{},
		ints:  map[string]map[string]int{},
		strs:  map[string]map[string]string{},
	}
}

// SetBool stores a bool option, overwriting any prior value.
func (o *OptionsStore) SetBool(name, opt string, value bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.bools[name] == nil {
		o.bools[name] = map[string]bool{}
	}
	o.bools[name][opt] = value
}

// SetInt stores an int option, overwriting any prior value.
func (o *OptionsStore) SetInt(name, opt string, value int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.ints[name] == nil {
		o.ints[name] = map[string]int{}
	}
	o.ints[name][opt] = value
}

// SetString stores a string option, overwriting any prior value.
func (o *OptionsStore) SetString(name, opt string, value string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.strs[name] == nil {
		o.strs[name] = map[string]string{}
	}
	o.strs[name][opt] = value
}

// GetBool returns the bool option (name, opt), and whether it was set.
func (o *OptionsStore) GetBool(name, opt string) (bool, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	v, ok := o.bools[name][opt]
	return v, ok
}

// GetInt returns the int option (name, opt), and whether it was set.
func (o *OptionsStore) GetInt(name, opt string) (int, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	v, ok := o.ints[name][opt]
	return v, ok
}

// GetString returns the string option (name, opt), and whether it was set.
func (o *OptionsStore) GetString(name, opt string) (string, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	v, ok := o.strs[name][opt]
	return v, ok
}

// indexedName composes the instance name a prefix+index convenience
// overload addresses, e.g. SetBoolIndexed("core", 2, ...) talks about the
// same name AddCore("core", ...) would have assigned to the third core.
func indexedName(prefix string, index int) string {
	return fmt.Sprintf("%s%d", prefix, index)
}

// SetBoolIndexed is SetBool addressed by (prefix, index) instead of a
// fully composed instance name.
func (o *OptionsStore) SetBoolIndexed(prefix string, index int, opt string, value bool) {
	o.SetBool(indexedName(prefix, index), opt, value)
}

// SetIntIndexed is SetInt addressed by (prefix, index).
func (o *OptionsStore) SetIntIndexed(prefix string, index int, opt string, value int) {
	o.SetInt(indexedName(prefix, index), opt, value)
}

// SetStringIndexed is SetString addressed by (prefix, index).
func (o *OptionsStore) SetStringIndexed(prefix string, index int, opt string, value string) {
	o.SetString(indexedName(prefix, index), opt, value)
}

// GetBoolIndexed is GetBool addressed by (prefix, index).
func (o *OptionsStore) GetBoolIndexed(prefix string, index int, opt string) (bool, bool) {
	return o.GetBool(indexedName(prefix, index), opt)
}

// GetIntIndexed is GetInt addressed by (prefix, index).
func (o *OptionsStore) GetIntIndexed(prefix string, index int, opt string) (int, bool) {
	return o.GetInt(indexedName(prefix, index), opt)
}

// GetStringIndexed is GetString addressed by (prefix, index).
func (o *OptionsStore) GetStringIndexed(prefix string, index int, opt string) (string, bool) {
	return o.GetString(indexedName(prefix, index), opt)
}
