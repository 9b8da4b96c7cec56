package collection

import (
	"context"
	"fmt"
	"sync"
)

// DefaultManager is used when a directive names no manager.
const DefaultManager = "objects"

// Source returns every object of a collection.
type Source interface {
	All(ctx context.Context) ([]any, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) ([]any, error)

// All calls f.
func (f SourceFunc) All(ctx context.Context) ([]any, error) {
	return f(ctx)
}

// Registry maps app, model and manager names to sources.
// Safe for concurrent use.
type Registry struct {
	mu   sync.RWMutex
	apps map[string]map[string]map[string]Source
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{apps: make(map[string]map[string]map[string]Source)}
}

// Register exposes src as app.model.manager. An empty manager registers the
// default one.
func (r *Registry) Register(app, model, manager string, src Source) {
	if manager == "" {
		manager = DefaultManager
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	models, ok := r.apps[app]
	if !ok {
		models = make(map[string]map[string]Source)
		r.apps[app] = models
	}
	managers, ok := models[model]
	if !ok {
		managers = make(map[string]Source)
		models[model] = managers
	}
	managers[manager] = src
}

// All fetches the collection app.model.manager.
func (r *Registry) All(ctx context.Context, app, model, manager string) ([]any, error) {
	src, err := r.source(app, model, manager)
	if err != nil {
		return nil, err
	}
	return src.All(ctx)
}

func (r *Registry) checkModel(app, model string) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	models, ok := r.apps[app]
	if !ok {
		return fmt.Errorf("%w: No application with name '%s'", ErrNoApp, app)
	}
	if _, ok := models[model]; !ok {
		return fmt.Errorf("%w: No model with name '%s' in '%s'.models", ErrNoModel, model, app)
	}
	return nil
}

func (r *Registry) source(app, model, manager string) (Source, error) {
	if manager == "" {
		manager = DefaultManager
	}
	if err := r.checkModel(app, model); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	src, ok := r.apps[app][model][manager]
	if !ok {
		return nil, fmt.Errorf("%w: '%s'.models.%s has no manager '%s'", ErrNoManager, app, model, manager)
	}
	return src, nil
}
