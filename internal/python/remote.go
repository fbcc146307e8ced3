package python

import (
	"context"
	"fmt"
	"strings"

	"github.com/melih-ucgun/warden/internal/core"
	"github.com/melih-ucgun/warden/internal/transport"
)

// RemoteInterpreter drives an interpreter on another machine through a
// Transport. Probes and installs are plain shell commands; quoting assumes
// module and package names stay in pip's allowed character set.
type RemoteInterpreter struct {
	exe    string
	tr     transport.Transport
	logger core.Logger
}

func NewRemoteInterpreter(exe string, tr transport.Transport, logger core.Logger) *RemoteInterpreter {
	return &RemoteInterpreter{exe: exe, tr: tr, logger: logger}
}

func (r *RemoteInterpreter) Exe() string {
	return r.exe
}

func remoteProbeCommand(exe, name string) string {
	return fmt.Sprintf(`%s -c 'import importlib.util, sys; sys.exit(0 if importlib.util.find_spec("%s") else 1)'`, exe, name)
}

func (r *RemoteInterpreter) HasModule(ctx context.Context, name string) bool {
	_, err := r.tr.Execute(ctx, remoteProbeCommand(r.exe, name))
	return err == nil
}

func (r *RemoteInterpreter) PipAvailable(ctx context.Context) bool {
	return r.HasModule(ctx, "pip")
}

func (r *RemoteInterpreter) PipInstall(ctx context.Context, packages []string) error {
	cmd := fmt.Sprintf("%s -m pip install %s", r.exe, strings.Join(packages, " "))
	out, err := r.tr.Execute(ctx, cmd)
	if err != nil {
		return fmt.Errorf("pip install failed: %w: %s", err, strings.TrimSpace(out))
	}
	r.logger.Debug("Pip install finished.", "packages", strings.Join(packages, " "))
	return nil
}
