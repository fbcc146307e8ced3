package bootstrap

import (
	"context"
	"os/exec"
	"strings"

	"github.com/melih-ucgun/warden/internal/core"
)

// Ensurepip bootstraps pip with the interpreter's bundled ensurepip module.
// Upgrade asks ensurepip to replace an older pip with the bundled version.
type Ensurepip struct {
	Exe     string
	Upgrade bool

	runner core.Runner
	logger core.Logger
}

func NewEnsurepip(exe string, upgrade bool, runner core.Runner, logger core.Logger) *Ensurepip {
	return &Ensurepip{Exe: exe, Upgrade: upgrade, runner: runner, logger: logger}
}

func (s *Ensurepip) Name() string { return "ensurepip" }

func (s *Ensurepip) Bootstrap(ctx context.Context) bool {
	args := []string{"-m", "ensurepip"}
	if s.Upgrade {
		args = append(args, "--upgrade")
	}

	cmd := exec.CommandContext(ctx, s.Exe, args...)
	out, err := s.runner.CombinedOutput(cmd)
	if err != nil {
		s.logger.Error("Pip couldn't be installed.", "error", err, "output", strings.TrimSpace(string(out)))
		return false
	}
	s.logger.Debug("Pip successfully installed.")
	return true
}
