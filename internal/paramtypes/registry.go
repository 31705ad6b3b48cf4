package paramtypes

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// Registry holds the registered parameter types and the capability hooks
// each one implements.
type Registry struct {
	types      []ParameterType
	byID       map[string]ParameterType
	defaulters map[string]DefaultValuer
	validators map[string]Validator
	binders    map[string]Binder
	help       map[string]HelpProvider
	logger     *zap.Logger
}

// NewRegistry creates a new Registry with the given logger.
func NewRegistry(logger *zap.Logger) *Registry {
	return &Registry{
		byID:       make(map[string]ParameterType),
		defaulters: make(map[string]DefaultValuer),
		validators: make(map[string]Validator),
		binders:    make(map[string]Binder),
		help:       make(map[string]HelpProvider),
		logger:     logger,
	}
}

// Register detects which capability interfaces a parameter type implements
// and adds it under its ID. Duplicate IDs are rejected.
func (r *Registry) Register(pt ParameterType) error {
	id := pt.ID()
	if _, exists := r.byID[id]; exists {
		return fmt.Errorf("parameter type %q already registered", id)
	}

	r.types = append(r.types, pt)
	r.byID[id] = pt
	if hook, ok := pt.(DefaultValuer); ok {
		r.defaulters[id] = hook
	}
	if hook, ok := pt.(Validator); ok {
		r.validators[id] = hook
	}
	if hook, ok := pt.(Binder); ok {
		r.binders[id] = hook
	}
	if hook, ok := pt.(HelpProvider); ok {
		r.help[id] = hook
	}
	return nil
}

// Init initializes every registered type with the given context.
func (r *Registry) Init(ctx InitContext) error {
	for _, pt := range r.types {
		if err := pt.Init(ctx); err != nil {
			return fmt.Errorf("init parameter type %q: %w", pt.ID(), err)
		}
		r.logger.Debug("parameter type initialized", zap.String("type", pt.ID()))
	}
	return nil
}

// Lookup returns the parameter type registered under id.
func (r *Registry) Lookup(id string) (ParameterType, bool) {
	pt, ok := r.byID[id]
	return pt, ok
}

// Defaulter returns the DefaultValuer hook for id, if the type has one.
func (r *Registry) Defaulter(id string) (DefaultValuer, bool) {
	hook, ok := r.defaulters[id]
	return hook, ok
}

// Validator returns the Validator hook for id, if the type has one.
func (r *Registry) Validator(id string) (Validator, bool) {
	hook, ok := r.validators[id]
	return hook, ok
}

// Binder returns the Binder hook for id, if the type has one.
func (r *Registry) Binder(id string) (Binder, bool) {
	hook, ok := r.binders[id]
	return hook, ok
}

// Help returns the HelpProvider hook for id, if the type has one.
func (r *Registry) Help(id string) (HelpProvider, bool) {
	hook, ok := r.help[id]
	return hook, ok
}

// ListTypes returns descriptor metadata about all registered types, sorted
// by ID.
func (r *Registry) ListTypes() []TypeInfo {
	infos := make([]TypeInfo, 0, len(r.types))
	for _, pt := range r.types {
		id := pt.ID()
		info := TypeInfo{
			ID:          id,
			DisplayName: pt.DisplayName(),
		}
		if _, ok := r.defaulters[id]; ok {
			info.Capabilities = append(info.Capabilities, "default")
		}
		if _, ok := r.validators[id]; ok {
			info.Capabilities = append(info.Capabilities, "validate")
		}
		if _, ok := r.binders[id]; ok {
			info.Capabilities = append(info.Capabilities, "bind")
		}
		if _, ok := r.help[id]; ok {
			info.Capabilities = append(info.Capabilities, "help")
		}
		if ct, ok := pt.(ConfigurableType); ok {
			info.Config = ct.Config()
		}
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos
}
