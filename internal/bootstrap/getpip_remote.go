package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path"

	"github.com/google/uuid"
	"github.com/melih-ucgun/warden/internal/consts"
	"github.com/melih-ucgun/warden/internal/core"
	"github.com/melih-ucgun/warden/internal/transport"
	"github.com/melih-ucgun/warden/internal/utils"
)

// RemoteGetPip bootstraps pip on another machine: the script is downloaded
// locally, shipped over the transport and run with the remote interpreter.
// Both the local and the remote copy are removed afterwards.
type RemoteGetPip struct {
	Exe string
	URL string

	tr     transport.Transport
	logger core.Logger
}

func NewRemoteGetPip(exe string, tr transport.Transport, logger core.Logger) *RemoteGetPip {
	return &RemoteGetPip{
		Exe:    exe,
		URL:    consts.DefaultGetPipURL,
		tr:     tr,
		logger: logger,
	}
}

func (s *RemoteGetPip) Name() string { return "get-pip (remote)" }

func (s *RemoteGetPip) Bootstrap(ctx context.Context) bool {
	tmp, err := os.CreateTemp("", "get-pip-*.py")
	if err != nil {
		s.logger.Error("Could not create a temp file for get-pip.", "error", err)
		return false
	}
	localPath := tmp.Name()
	tmp.Close()
	defer os.Remove(localPath)

	if err := utils.DownloadFile(s.URL, localPath); err != nil {
		s.logger.Error("Could not download get-pip.", "url", s.URL, "error", err)
		return false
	}

	remotePath := path.Join("/tmp", fmt.Sprintf("get-pip-%s.py", uuid.New().String()))
	if err := s.tr.CopyFile(ctx, localPath, remotePath); err != nil {
		s.logger.Error("Could not copy get-pip to the remote host.", "error", err)
		return false
	}
	defer s.tr.Execute(ctx, fmt.Sprintf("rm -f %s", remotePath))

	out, err := s.tr.Execute(ctx, fmt.Sprintf("%s %s", s.Exe, remotePath))
	if err != nil {
		s.logger.Error("get-pip failed on the remote host.", "error", err, "output", out)
		return false
	}

	s.logger.Debug("Pip successfully installed on the remote host.")
	return true
}
