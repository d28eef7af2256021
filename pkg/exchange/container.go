package exchange

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

// Container is a thread-safe registry of exchange clients keyed by name.
// Each client keeps its own credentials and transport; the container only owns their lifetime.
type Container struct {
	mu        sync.RWMutex
	exchanges map[string]Exchange
}

// NewContainer creates and returns a new empty exchange container.
func NewContainer() *Container {
	return &Container{
		exchanges: make(map[string]Exchange),
	}
}

// Register adds an exchange under name. Registering a taken name fails;
// call Unregister first to replace a client.
func (c *Container) Register(name string, ex Exchange) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.exchanges[name]; exists {
		return fmt.Errorf("exchange %q already registered", name)
	}
	c.exchanges[name] = ex
	return nil
}

// Get retrieves an exchange instance by name.
func (c *Container) Get(name string) (Exchange, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ex, exists := c.exchanges[name]
	if !exists {
		return nil, fmt.Errorf("exchange %q not found", name)
	}
	return ex, nil
}

// Names returns the registered names in sorted order.
func (c *Container) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.exchanges))
	for name := range c.exchanges {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Unregister removes and closes the named exchange.
func (c *Container) Unregister(name string) error {
	c.mu.Lock()
	ex, exists := c.exchanges[name]
	delete(c.exchanges, name)
	c.mu.Unlock()

	if !exists {
		return nil
	}
	return ex.Close()
}

// Close closes every registered exchange and empties the container.
func (c *Container) Close() error {
	c.mu.Lock()
	exchanges := c.exchanges
	c.exchanges = make(map[string]Exchange)
	c.mu.Unlock()

	var errs []error
	for name, ex := range exchanges {
		if err := ex.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

// Exists checks whether an exchange with the given name is registered.
func (c *Container) Exists(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, exists := c.exchanges[name]
	return exists
}
