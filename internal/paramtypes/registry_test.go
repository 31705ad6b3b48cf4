package paramtypes

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/forgeci/randparam/internal/models"
)

type fakeType struct {
	id          string
	initialized bool
}

func (f *fakeType) ID() string          { return f.id }
func (f *fakeType) DisplayName() string { return "Fake Parameter" }
func (f *fakeType) Init(_ InitContext) error {
	f.initialized = true
	return nil
}

type fakeFullType struct {
	fakeType
}

func (f *fakeFullType) DefaultValue(_ context.Context, _ *models.Definition) (string, error) {
	return "default", nil
}

func (f *fakeFullType) ValidateValue(_ context.Context, _, _ string) (ValidationResult, error) {
	return ValidationResult{OK: true}, nil
}

func (f *fakeFullType) BindValue(_ context.Context, _ *models.Definition, req BindRequest) (BoundValue, error) {
	return BoundValue{Value: req.Value}, nil
}

func (f *fakeFullType) HelpHTML() []byte { return []byte("<div>help</div>") }

func (f *fakeFullType) Config() map[string]any { return map[string]any{"k": "v"} }

func TestRegisterAndLookup(t *testing.T) {
	r := NewRegistry(zap.NewNop())

	ft := &fakeType{id: "fake"}
	if err := r.Register(ft); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	got, ok := r.Lookup("fake")
	if !ok {
		t.Fatal("registered type not found")
	}
	if got.ID() != "fake" {
		t.Errorf("ID() = %q, want %q", got.ID(), "fake")
	}

	if _, ok := r.Lookup("missing"); ok {
		t.Error("Lookup returned a type for an unregistered ID")
	}
}

func TestRegisterDuplicateID(t *testing.T) {
	r := NewRegistry(zap.NewNop())

	if err := r.Register(&fakeType{id: "fake"}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if err := r.Register(&fakeType{id: "fake"}); err == nil {
		t.Error("expected error for duplicate type ID")
	}
}

func TestCapabilityDetection(t *testing.T) {
	r := NewRegistry(zap.NewNop())

	plain := &fakeType{id: "plain"}
	full := &fakeFullType{fakeType: fakeType{id: "full"}}
	if err := r.Register(plain); err != nil {
		t.Fatalf("Register plain failed: %v", err)
	}
	if err := r.Register(full); err != nil {
		t.Fatalf("Register full failed: %v", err)
	}

	if _, ok := r.Defaulter("plain"); ok {
		t.Error("plain type should not have a DefaultValuer hook")
	}
	if _, ok := r.Defaulter("full"); !ok {
		t.Error("full type should have a DefaultValuer hook")
	}
	if _, ok := r.Validator("full"); !ok {
		t.Error("full type should have a Validator hook")
	}
	if _, ok := r.Binder("full"); !ok {
		t.Error("full type should have a Binder hook")
	}
	if _, ok := r.Help("full"); !ok {
		t.Error("full type should have a HelpProvider hook")
	}
}

func TestInitInitializesAllTypes(t *testing.T) {
	r := NewRegistry(zap.NewNop())

	a := &fakeType{id: "a"}
	b := &fakeType{id: "b"}
	_ = r.Register(a)
	_ = r.Register(b)

	if err := r.Init(InitContext{Logger: zap.NewNop()}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if !a.initialized || !b.initialized {
		t.Error("expected all types to be initialized")
	}
}

func TestListTypes(t *testing.T) {
	r := NewRegistry(zap.NewNop())

	_ = r.Register(&fakeFullType{fakeType: fakeType{id: "zfull"}})
	_ = r.Register(&fakeType{id: "aplain"})

	infos := r.ListTypes()
	if len(infos) != 2 {
		t.Fatalf("got %d type infos, want 2", len(infos))
	}

	// Sorted by ID.
	if infos[0].ID != "aplain" || infos[1].ID != "zfull" {
		t.Errorf("unexpected order: %q, %q", infos[0].ID, infos[1].ID)
	}

	if len(infos[0].Capabilities) != 0 {
		t.Errorf("plain type capabilities = %v, want none", infos[0].Capabilities)
	}

	full := infos[1]
	want := []string{"default", "validate", "bind", "help"}
	if len(full.Capabilities) != len(want) {
		t.Fatalf("full type capabilities = %v, want %v", full.Capabilities, want)
	}
	for i, c := range want {
		if full.Capabilities[i] != c {
			t.Errorf("capability[%d] = %q, want %q", i, full.Capabilities[i], c)
		}
	}
	if full.Config["k"] != "v" {
		t.Errorf("config = %v, want k=v", full.Config)
	}
}
