// SPDX-License-Identifier: MIT

package archive

import (
	"fmt"
	"sort"
	"sync"
)

// Persistable is a value that can reduce itself to a primitive-typed dict.
type Persistable interface {
	// PersistName returns the registered type name.
	PersistName() string

	// ReduceToDict encodes the value. The result must contain only
	// strings, ints, float64, bools, []any and map[string]any.
	ReduceToDict() (map[string]any, error)
}

// DecodeFunc rebuilds a value from the dict produced by ReduceToDict.
// It must not retain or mutate d.
type DecodeFunc func(d map[string]any) (Persistable, error)

var (
	muRegistry sync.RWMutex
	registry   = make(map[string]DecodeFunc)
)

// Register associates a type name with its decoder.
// Registering the same name twice panics (programmer error).
func Register(name string, decode DecodeFunc) {
	muRegistry.Lock()
	defer muRegistry.Unlock()
	if _, dup := registry[name]; dup {
		panic(fmt.Sprintf("archive: type %q registered twice", name))
	}
	registry[name] = decode
}

// Registered returns the sorted list of registered type names.
func Registered() []string {
	muRegistry.RLock()
	defer muRegistry.RUnlock()
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}

func lookup(name string) (DecodeFunc, error) {
	muRegistry.RLock()
	defer muRegistry.RUnlock()
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("type %q: %w", name, ErrUnknownType)
	}

	return fn, nil
}
