package python

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/melih-ucgun/warden/internal/core"
)

// probeScript checks resolvability with importlib.util.find_spec, so the
// module is located but never actually imported (no import side effects
// during the check phase).
const probeScript = "import importlib.util, sys\nsys.exit(0 if importlib.util.find_spec(%q) else 1)"

// Interpreter drives a Python interpreter binary on the local machine.
// The executable path is injected by the embedding host (mayapy, hython,
// a venv python); Warden never discovers it on its own.
type Interpreter struct {
	exe    string
	runner core.Runner
	logger core.Logger
}

func NewInterpreter(exe string, runner core.Runner, logger core.Logger) *Interpreter {
	return &Interpreter{exe: exe, runner: runner, logger: logger}
}

// Exe returns the interpreter executable path.
func (i *Interpreter) Exe() string {
	return i.exe
}

// HasModule reports whether name resolves as importable in the interpreter.
// Any probe failure (interpreter missing, non-zero exit) counts as absent.
func (i *Interpreter) HasModule(ctx context.Context, name string) bool {
	cmd := exec.CommandContext(ctx, i.exe, "-c", fmt.Sprintf(probeScript, name))
	if err := i.runner.Run(cmd); err != nil {
		return false
	}
	return true
}

// PipAvailable reports whether the pip module resolves in the interpreter.
func (i *Interpreter) PipAvailable(ctx context.Context) bool {
	return i.HasModule(ctx, "pip")
}

// PipInstall runs one batched `pip install` with the given package names
// in order.
func (i *Interpreter) PipInstall(ctx context.Context, packages []string) error {
	args := append([]string{"-m", "pip", "install"}, packages...)
	cmd := exec.CommandContext(ctx, i.exe, args...)
	out, err := i.runner.CombinedOutput(cmd)
	if err != nil {
		return fmt.Errorf("pip install failed: %w: %s", err, strings.TrimSpace(string(out)))
	}
	i.logger.Debug("Pip install finished.", "packages", strings.Join(packages, " "))
	return nil
}
