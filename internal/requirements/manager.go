package requirements

import (
	"context"
	"errors"

	"github.com/melih-ucgun/warden/internal/core"
)

// Environment is the interpreter-side capability the manager works against.
// The concrete implementation shells out to the embedded interpreter; tests
// substitute a mock.
type Environment interface {
	// HasModule reports whether name resolves as importable without importing it.
	HasModule(ctx context.Context, name string) bool
	// PipAvailable reports whether the pip module itself resolves.
	PipAvailable(ctx context.Context) bool
	// PipInstall performs one batched install of the given package names.
	PipInstall(ctx context.Context, packages []string) error
}

// Bootstrapper makes pip available when it is absent. The two deployments
// (bundled ensurepip vs. downloaded get-pip) plug in here.
type Bootstrapper interface {
	Bootstrap(ctx context.Context) bool
	Name() string
}

// Install outcomes recorded for the state journal.
const (
	OutcomeSatisfied       = "satisfied"
	OutcomeInstalled       = "installed"
	OutcomeBootstrapFailed = "bootstrap-failed"
	OutcomeInstallFailed   = "install-failed"
)

// Manager holds a requirement list and the subset of it that was missing
// when the manager was built. The missing subset is probed exactly once;
// callers that need a fresh view construct a new manager.
type Manager struct {
	logger   core.Logger
	env      Environment
	strategy Bootstrapper

	reqs    []Requirement
	missing []Requirement

	manifestMissing bool
	outcome         string
}

// New builds a manager from an in-memory requirement list and probes the
// missing subset immediately.
func New(ctx context.Context, reqs []Requirement, env Environment, strategy Bootstrapper, logger core.Logger) *Manager {
	m := &Manager{
		logger:   logger,
		env:      env,
		strategy: strategy,
		reqs:     reqs,
	}
	m.missing = m.probeMissing(ctx)
	return m
}

// NewFromFile builds a manager from a JSON manifest path. A missing file is
// logged and treated as an empty requirement set (visible through
// ManifestMissing); a malformed manifest fails construction.
func NewFromFile(ctx context.Context, fsys core.FileSystem, path string, env Environment, strategy Bootstrapper, logger core.Logger) (*Manager, error) {
	reqs, err := LoadManifest(fsys, path)
	if err != nil {
		if errors.Is(err, ErrManifestNotFound) {
			logger.Error("Requirements manifest not found, continuing with an empty set.", "path", path)
			m := New(ctx, nil, env, strategy, logger)
			m.manifestMissing = true
			return m, nil
		}
		return nil, err
	}
	return New(ctx, reqs, env, strategy, logger), nil
}

func (m *Manager) probeMissing(ctx context.Context) []Requirement {
	var missing []Requirement
	for _, req := range m.reqs {
		if m.env.HasModule(ctx, req.Module) {
			m.logger.Debug("Module is available.", "module", req.Module)
			continue
		}
		m.logger.Debug("Module is not available.", "module", req.Module)
		missing = append(missing, req)
	}
	return missing
}

// Requirements returns the full requirement list in manifest order.
func (m *Manager) Requirements() []Requirement {
	return m.reqs
}

// Check returns the requirements whose module did not resolve when the
// manager was built, in manifest order. Side-effect free.
func (m *Manager) Check() []Requirement {
	return m.missing
}

// ManifestMissing reports whether the manager was built from a manifest
// path that did not exist.
func (m *Manager) ManifestMissing() bool {
	return m.manifestMissing
}

// Outcome reports what the last Install call did. Empty before Install.
func (m *Manager) Outcome() string {
	return m.outcome
}

// Install ensures all missing requirements get installed: it bootstraps pip
// if needed and then issues a single batched pip install for every missing
// package. Every failure is logged and absorbed here; Install never returns
// an error. Callers wanting to verify the result probe again afterwards.
func (m *Manager) Install(ctx context.Context) {
	if len(m.missing) == 0 {
		m.outcome = OutcomeSatisfied
		m.logger.Info("All requirements are available.")
		return
	}

	if m.env.PipAvailable(ctx) {
		m.logger.Debug("Pip is already installed.")
	} else {
		m.logger.Debug("Pip is not installed.", "strategy", m.strategy.Name())
		if !m.strategy.Bootstrap(ctx) {
			m.outcome = OutcomeBootstrapFailed
			m.logger.Error("Pip is not available and could not be installed. Requirements are not satisfied.")
			return
		}
	}

	packages := make([]string, 0, len(m.missing))
	for _, req := range m.missing {
		packages = append(packages, req.Pip)
	}

	if err := m.env.PipInstall(ctx, packages); err != nil {
		m.outcome = OutcomeInstallFailed
		m.logger.Error("An error occurred when installing the dependencies with pip.", "error", err)
		return
	}
	m.outcome = OutcomeInstalled
	m.logger.Info("Requirements installed.", "count", len(packages))
}
