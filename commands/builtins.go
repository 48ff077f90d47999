package commands

import "github.com/brettbedarf/fme"

// RegisterBuiltins registers every built-in command under its own name
func RegisterBuiltins(r *Registry) {
	for _, name := range fme.CommandNames {
		r.Register(string(name), name)
	}
}

// DefaultRegistry returns a registry holding the built-in commands
func DefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterBuiltins(r)
	return r
}
