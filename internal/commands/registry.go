package commands

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds registered commands.
type Registry struct {
	mu          sync.RWMutex
	cmds        map[string]Command // name and aliases map to command
	defaultName string             // run when no command is given
}

// NewRegistry creates a new command registry.
func NewRegistry() *Registry {
	return &Registry{
		cmds: make(map[string]Command),
	}
}

// Register adds a command to the registry.
// Returns an error if the name or any alias is already registered.
func (r *Registry) Register(c Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.register(c)
}

// RegisterDefault is like Register and also makes c the command run when
// no command name is given.
func (r *Registry) RegisterDefault(c Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.defaultName != "" {
		return fmt.Errorf("default command already registered: %s", r.defaultName)
	}
	if err := r.register(c); err != nil {
		return err
	}
	r.defaultName = c.Name()
	return nil
}

func (r *Registry) register(c Command) error {
	names := append([]string{c.Name()}, c.Aliases()...)
	for _, name := range names {
		if _, exists := r.cmds[name]; exists {
			return fmt.Errorf("command name or alias already registered: %s", name)
		}
	}
	for _, name := range names {
		r.cmds[name] = c
	}
	return nil
}

// Find looks up a command by name or alias.
func (r *Registry) Find(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.cmds[name]
	return cmd, ok
}

// Default returns the command run when no name is given.
func (r *Registry) Default() (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.defaultName == "" {
		return nil, false
	}
	cmd, ok := r.cmds[r.defaultName]
	return cmd, ok
}

// All returns all unique commands sorted by name.
func (r *Registry) All() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]Command)
	for _, cmd := range r.cmds {
		seen[cmd.Name()] = cmd
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	result := make([]Command, len(names))
	for i, name := range names {
		result[i] = seen[name]
	}
	return result
}

// DefaultRegistry is the global command registry.
var DefaultRegistry = NewRegistry()

// Register adds a command to the default registry.
func Register(c Command) {
	if err := DefaultRegistry.Register(c); err != nil {
		panic(err)
	}
}

// RegisterDefault adds the no-argument command to the default registry.
func RegisterDefault(c Command) {
	if err := DefaultRegistry.RegisterDefault(c); err != nil {
		panic(err)
	}
}
