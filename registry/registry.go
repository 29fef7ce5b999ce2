package registry

import (
	"fmt"

	"github.com/jonwraymond/readyprobe/probe"
)

// Registry is an ordered, immutable set of named targets.
type Registry struct {
	targets []probe.Target
	index   map[string]int
}

// New validates the targets and builds a registry. An empty set, a duplicate
// name, or an invalid target is a configuration error.
func New(targets []probe.Target) (*Registry, error) {
	if len(targets) == 0 {
		return nil, ErrEmptyRegistry
	}

	index := make(map[string]int, len(targets))
	for i, t := range targets {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		if _, dup := index[t.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTarget, t.Name)
		}
		index[t.Name] = i
	}

	owned := make([]probe.Target, len(targets))
	copy(owned, targets)

	return &Registry{targets: owned, index: index}, nil
}

// Len returns the number of targets.
func (r *Registry) Len() int {
	return len(r.targets)
}

// Targets returns the targets in registration order. The returned slice is
// a copy; the registry stays immutable.
func (r *Registry) Targets() []probe.Target {
	out := make([]probe.Target, len(r.targets))
	copy(out, r.targets)
	return out
}

// Names returns the target names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.targets))
	for i, t := range r.targets {
		names[i] = t.Name
	}
	return names
}

// Lookup returns the named target.
func (r *Registry) Lookup(name string) (probe.Target, bool) {
	i, ok := r.index[name]
	if !ok {
		return probe.Target{}, false
	}
	return r.targets[i], true
}
