package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"github.com/melih-ucgun/warden/internal/core"
	"github.com/melih-ucgun/warden/internal/transport"
)

// RemoteEnsurepip runs the interpreter's bundled ensurepip module on
// another machine through a Transport.
type RemoteEnsurepip struct {
	Exe     string
	Upgrade bool

	tr     transport.Transport
	logger core.Logger
}

func NewRemoteEnsurepip(exe string, upgrade bool, tr transport.Transport, logger core.Logger) *RemoteEnsurepip {
	return &RemoteEnsurepip{Exe: exe, Upgrade: upgrade, tr: tr, logger: logger}
}

func (s *RemoteEnsurepip) Name() string { return "ensurepip (remote)" }

func (s *RemoteEnsurepip) Bootstrap(ctx context.Context) bool {
	cmd := fmt.Sprintf("%s -m ensurepip", s.Exe)
	if s.Upgrade {
		cmd += " --upgrade"
	}

	out, err := s.tr.Execute(ctx, cmd)
	if err != nil {
		s.logger.Error("Pip couldn't be installed on the remote host.",
			"error", err, "output", strings.TrimSpace(out))
		return false
	}
	s.logger.Debug("Pip successfully installed on the remote host.")
	return true
}
