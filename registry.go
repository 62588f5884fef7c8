package lucid

import "sync"

// Registry is an append-only collection of converters queried in
// registration order. Registration is expected to finish before the first
// Resolve call, normally from init functions or early in main; the lock
// makes later registration safe, but its ordering relative to in-flight
// queries stays with the caller.
type Registry struct {
	mu         sync.RWMutex
	converters []ConvertFunc
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends a converter. Converters registered first win when
// several recognize the same error.
func (r *Registry) Register(fn ConvertFunc) {
	if fn == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.converters = append(r.converters, fn)
}

// snapshot returns the converter list as of now. Resolution iterates the
// copy, so a converter may itself call Resolve without holding the lock.
func (r *Registry) snapshot() []ConvertFunc {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]ConvertFunc, len(r.converters))
	copy(out, r.converters)
	return out
}

// defaultRegistry backs the package-level Register and Resolve.
var defaultRegistry = NewRegistry()

// Register adds a converter to the default registry.
func Register(fn ConvertFunc) {
	defaultRegistry.Register(fn)
}
