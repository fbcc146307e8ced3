package cmd

import (
	"context"
	"testing"

	"github.com/melih-ucgun/warden/internal/core"
	"github.com/melih-ucgun/warden/internal/requirements"
)

type staticEnv struct {
	modules map[string]bool
}

func (s staticEnv) HasModule(ctx context.Context, name string) bool { return s.modules[name] }
func (s staticEnv) PipAvailable(ctx context.Context) bool           { return true }
func (s staticEnv) PipInstall(ctx context.Context, packages []string) error {
	return nil
}

type noBootstrap struct{}

func (noBootstrap) Bootstrap(ctx context.Context) bool { return false }
func (noBootstrap) Name() string                       { return "none" }

func TestPrintRequirements(t *testing.T) {
	env := staticEnv{modules: map[string]bool{"yaml": true}}
	mgr := requirements.New(context.Background(), []requirements.Requirement{
		{Pip: "PyYAML", Module: "yaml"},
		{Pip: "numpy==1.2.0", Module: "numpy"},
	}, env, noBootstrap{}, core.NopLogger{})

	if missing := printRequirements(mgr); missing != 1 {
		t.Errorf("printRequirements() = %d missing, want 1", missing)
	}
}

func TestPrintRequirements_Empty(t *testing.T) {
	mgr := requirements.New(context.Background(), nil, staticEnv{}, noBootstrap{}, core.NopLogger{})
	if missing := printRequirements(mgr); missing != 0 {
		t.Errorf("printRequirements() = %d missing, want 0", missing)
	}
}
