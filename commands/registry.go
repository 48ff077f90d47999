package commands

import (
	"fmt"
	"sync"

	"github.com/brettbedarf/fme"
)

// Registry maps command tokens to the commands they name. It is safe for
// concurrent use.
type Registry struct {
	mu    sync.RWMutex
	names map[string]fme.CommandName
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry {
	return &Registry{names: make(map[string]fme.CommandName)}
}

// Register ties a token to a command. The first registration of a token wins.
func (r *Registry) Register(token string, name fme.CommandName) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.names[token]; ok {
		return
	}
	r.names[token] = name
}

// Lookup returns the command named by token
func (r *Registry) Lookup(token string) (fme.CommandName, error) {
	r.mu.RLock()
	name, ok := r.names[token]
	r.mu.RUnlock()
	if !ok {
		return fme.UnknownCommand, fmt.Errorf("%w: Unknown command is met: %s", ErrUnknownCommand, token)
	}
	return name, nil
}

// Len returns the number of registered tokens
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.names)
}
