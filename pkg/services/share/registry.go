package share

import (
	"fmt"
	"sort"
	"sync"
)

// ControllerFactory builds a share pipeline controller for one network.
type ControllerFactory func() (*Controller, error)

// Registry manages per-network controller factories.
type Registry interface {
	// Register adds a factory for a network name.
	Register(network string, factory ControllerFactory) error
	// Create instantiates the controller for the named network.
	Create(network string) (*Controller, error)
	// ListNetworks returns the registered network names, sorted.
	ListNetworks() []string
}

type registry struct {
	mu        sync.RWMutex
	factories map[string]ControllerFactory
}

func NewRegistry() Registry {
	return &registry{
		factories: make(map[string]ControllerFactory),
	}
}

func (r *registry) Register(network string, factory ControllerFactory) error {
	if network == "" {
		return fmt.Errorf("network name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[network]; exists {
		return fmt.Errorf("network %q is already registered", network)
	}

	r.factories[network] = factory
	return nil
}

func (r *registry) Create(network string) (*Controller, error) {
	r.mu.RLock()
	factory, exists := r.factories[network]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("network %q is not registered", network)
	}

	return factory()
}

func (r *registry) ListNetworks() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	networks := make([]string, 0, len(r.factories))
	for network := range r.factories {
		networks = append(networks, network)
	}
	sort.Strings(networks)
	return networks
}
