// Package randomstring implements the parameter type that generates random alphanumeric build values.
package randomstring

import (
	"context"
	_ "embed"
	"fmt"
	"regexp"

	"go.uber.org/zap"

	"github.com/forgeci/randparam/internal/models"
	"github.com/forgeci/randparam/internal/paramtypes"
	"github.com/forgeci/randparam/internal/randtoken"
	"github.com/forgeci/randparam/internal/validate"
)

//go:embed help.html
var helpHTML []byte

// Config holds the operator configuration for the type.
type Config struct {
	Pattern string `json:"pattern"`
}

// Type is the random string parameter type. Its default value is a random
// 12-character alphanumeric string; user-entered overrides are checked
// against the configured pattern by the validation callback.
type Type struct {
	logger *zap.Logger
	config Config
}

// New creates the parameter type with the default validation pattern.
func New() *Type {
	return &Type{config: Config{Pattern: validate.DefaultPattern}}
}

// ID returns the parameter type identifier.
func (t *Type) ID() string { return "randomstring" }

// DisplayName returns the human-readable type name.
func (t *Type) DisplayName() string { return "Random String Parameter" }

// Init loads the operator-configured pattern, if any.
func (t *Type) Init(ctx paramtypes.InitContext) error {
	t.logger = ctx.Logger.Named("randomstring")

	if ctx.Config == nil {
		return nil
	}

	var cfg Config
	found, err := ctx.Config.Get(context.Background(), t.ID(), &cfg)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if found && cfg.Pattern != "" {
		if _, err := regexp.Compile(cfg.Pattern); err != nil {
			// Keep the pattern so validation surfaces the error to the
			// operator instead of silently reverting to the default.
			t.logger.Warn("configured pattern does not compile",
				zap.String("pattern", cfg.Pattern),
				zap.Error(err))
		}
		t.config = cfg
	}
	return nil
}

// Config exposes the operator configuration for the descriptor listing.
func (t *Type) Config() map[string]any {
	return map[string]any{"pattern": t.config.Pattern}
}

// DefaultValue returns a fresh random value.
func (t *Type) DefaultValue(_ context.Context, _ *models.Definition) (string, error) {
	return randtoken.Generate(), nil
}

// ValidateValue is the server-side form validation callback. The value must
// fully match the configured pattern.
func (t *Type) ValidateValue(_ context.Context, failedMessage, value string) (paramtypes.ValidationResult, error) {
	res, err := validate.Candidate(t.config.Pattern, failedMessage, value)
	if err != nil {
		return paramtypes.ValidationResult{}, err
	}
	return paramtypes.ValidationResult{OK: res.OK, Message: res.Message}, nil
}

// BindValue binds host-supplied input into a concrete value. A supplied
// value passes through unvalidated; an absent one yields a fresh random
// value.
func (t *Type) BindValue(_ context.Context, _ *models.Definition, req paramtypes.BindRequest) (paramtypes.BoundValue, error) {
	if req.HasValue {
		return paramtypes.BoundValue{Value: req.Value}, nil
	}
	return paramtypes.BoundValue{Value: randtoken.Generate(), Generated: true}, nil
}

// HelpHTML returns the help page for the type.
func (t *Type) HelpHTML() []byte { return helpHTML }
