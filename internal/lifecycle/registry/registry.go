// Package registry holds the set of feature modules participating in data
// lifecycle operations. Modules register once at startup; duplicates are
// rejected there rather than silently replaced, because a duplicate almost
// always means two build targets wired the same module and one of them
// would otherwise vanish from every report.
package registry

import (
	"fmt"
	"sync"

	"custodian/internal/lifecycle/ports"
	"custodian/pkg/platform/sentinel"
)

// Registry is safe for concurrent reads after startup. Register is expected
// to be called from a single goroutine during wiring.
type Registry struct {
	mu      sync.RWMutex
	order   []string
	modules map[string]ports.DataModule
}

func New() *Registry {
	return &Registry{modules: make(map[string]ports.DataModule)}
}

// Register adds a module. Returns sentinel.ErrAlreadyRegistered (wrapped)
// when a module with the same name exists.
func (r *Registry) Register(module ports.DataModule) error {
	if module == nil {
		return fmt.Errorf("module is required")
	}
	name := module.Name()
	if name == "" {
		return fmt.Errorf("module name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.modules[name]; exists {
		return fmt.Errorf("module %q: %w", name, sentinel.ErrAlreadyRegistered)
	}
	r.modules[name] = module
	r.order = append(r.order, name)
	return nil
}

// Modules returns all registered modules in registration order.
func (r *Registry) Modules() []ports.DataModule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ports.DataModule, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.modules[name])
	}
	return out
}

// Len returns the number of registered modules.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
