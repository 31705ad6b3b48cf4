// Package paramtypes defines the parameter type interfaces and capability hooks for the extension point.
package paramtypes

import (
	"context"

	"go.uber.org/zap"

	"github.com/forgeci/randparam/internal/models"
)

// ParameterType is the base interface all parameter types must implement.
type ParameterType interface {
	ID() string
	DisplayName() string
	Init(ctx InitContext) error
}

// InitContext provides access to shared resources during type initialization.
type InitContext struct {
	Logger *zap.Logger
	Store  Store
	Config TypeConfigView
}

// Store provides storage operations for parameter types and their callers.
type Store interface {
	ResolveDefinition(ctx context.Context, name string) (*models.Definition, bool, error)
	RecordValue(ctx context.Context, definitionID int64, runID, value string, generated bool) (int64, error)
}

// TypeConfigView provides read access to operator configuration for a type.
type TypeConfigView interface {
	Get(ctx context.Context, typeID string, out any) (bool, error)
}

// BindRequest carries the host-supplied input for one value binding.
type BindRequest struct {
	RunID string
	Value string
	// HasValue distinguishes an explicit empty value from an absent one.
	HasValue bool
}

// BoundValue is the outcome of binding a request into a concrete value.
type BoundValue struct {
	Value     string
	Generated bool
}

// ValidationResult reports the outcome of a server-side validation callback.
type ValidationResult struct {
	OK      bool
	Message string
}

// DefaultValuer is an optional interface for types that produce a default
// value when the host supplies none.
type DefaultValuer interface {
	DefaultValue(ctx context.Context, def *models.Definition) (string, error)
}

// Validator is an optional interface for types that expose a server-side
// form validation callback.
type Validator interface {
	ValidateValue(ctx context.Context, failedMessage, value string) (ValidationResult, error)
}

// Binder is an optional interface for types that bind host-supplied input
// into a concrete parameter value.
type Binder interface {
	BindValue(ctx context.Context, def *models.Definition, req BindRequest) (BoundValue, error)
}

// HelpProvider is an optional interface for types that expose an HTML help
// page.
type HelpProvider interface {
	HelpHTML() []byte
}

// ConfigurableType is an optional interface for types that expose operator
// configuration.
type ConfigurableType interface {
	Config() map[string]any
}

// TypeInfo contains descriptor metadata about a registered parameter type.
type TypeInfo struct {
	ID           string         `json:"id"`
	DisplayName  string         `json:"display_name"`
	Capabilities []string       `json:"capabilities"`
	Config       map[string]any `json:"config,omitempty"`
}
