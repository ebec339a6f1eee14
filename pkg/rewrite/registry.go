package rewrite

import (
	"cmp"
	"errors"
	"slices"
	"sync"
)

// ErrUnknownStage is returned when a stage key matches no registered stage.
var ErrUnknownStage = errors.New("unknown stage")

// Registry holds all registered rewrite stages.
type Registry struct {
	mu     sync.RWMutex
	byID   map[string]Stage
	byName map[string]Stage
}

// NewRegistry creates an empty stage registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:   make(map[string]Stage),
		byName: make(map[string]Stage),
	}
}

// Register adds a stage to the registry.
// If a stage with the same ID already exists, it is replaced.
func (r *Registry) Register(stage Stage) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[stage.ID()] = stage
	r.byName[stage.Name()] = stage
}

// Get retrieves a stage by ID or name.
func (r *Registry) Get(key string) (Stage, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if stage, ok := r.byID[key]; ok {
		return stage, true
	}
	if stage, ok := r.byName[key]; ok {
		return stage, true
	}
	return nil, false
}

// Resolve returns the canonical ID for a stage ID or name.
func (r *Registry) Resolve(key string) (string, bool) {
	stage, ok := r.Get(key)
	if !ok {
		return "", false
	}
	return stage.ID(), true
}

// Stages returns all registered stages in pipeline order (ascending ID).
func (r *Registry) Stages() []Stage {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Stage, 0, len(r.byID))
	for _, stage := range r.byID {
		result = append(result, stage)
	}

	slices.SortFunc(result, func(a, b Stage) int {
		return cmp.Compare(a.ID(), b.ID())
	})

	return result
}

// IDs returns all registered stage IDs in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]string, 0, len(r.byID))
	for id := range r.byID {
		result = append(result, id)
	}

	slices.Sort(result)
	return result
}

// DefaultRegistry is the global registry for built-in stages.
// Stages register themselves during init().
//
//nolint:gochecknoglobals // Global registry is intentional for stage registration
var DefaultRegistry = NewRegistry()
