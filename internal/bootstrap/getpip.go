package bootstrap

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/melih-ucgun/warden/internal/consts"
	"github.com/melih-ucgun/warden/internal/core"
	"github.com/melih-ucgun/warden/internal/utils"
)

// GetPip bootstraps pip by downloading the official get-pip.py script and
// running it with the target interpreter. The child process gets a bounded
// runtime; on timeout it is killed and whatever stderr it produced so far
// is logged. The downloaded script is removed on every exit path.
type GetPip struct {
	Exe     string
	URL     string
	Timeout time.Duration

	runner core.Runner
	logger core.Logger
}

func NewGetPip(exe string, runner core.Runner, logger core.Logger) *GetPip {
	return &GetPip{
		Exe:     exe,
		URL:     consts.DefaultGetPipURL,
		Timeout: consts.DefaultBootstrapTimeout,
		runner:  runner,
		logger:  logger,
	}
}

func (s *GetPip) Name() string { return "get-pip" }

func (s *GetPip) Bootstrap(ctx context.Context) bool {
	tmp, err := os.CreateTemp("", "get-pip-*.py")
	if err != nil {
		s.logger.Error("Could not create a temp file for get-pip.", "error", err)
		return false
	}
	scriptPath := tmp.Name()
	tmp.Close()
	defer os.Remove(scriptPath)

	if err := utils.DownloadFile(s.URL, scriptPath); err != nil {
		s.logger.Error("Could not download get-pip.", "url", s.URL, "error", err)
		return false
	}
	s.logger.Debug("Downloaded get-pip.", "url", s.URL, "path", scriptPath)

	runCtx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, s.Exe, scriptPath)
	cmd.Stdout = io.Discard
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err = s.runner.Run(cmd)
	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		// Partial capture: whatever reached the buffer before the kill.
		s.logger.Error("get-pip timed out and was killed.",
			"timeout", s.Timeout, "stderr", strings.TrimSpace(stderr.String()))
		return false
	}
	if err != nil {
		s.logger.Error("get-pip exited with an error.",
			"error", err, "stderr", strings.TrimSpace(stderr.String()))
		return false
	}

	s.logger.Debug("Pip successfully installed.")
	return true
}
