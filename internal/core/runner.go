package core

import (
	"os/exec"
)

// Runner interface defines methods for running commands.
// It allows mocking the process boundary in tests: interpreter probes,
// pip invocations and bootstrap children all pass through it.
type Runner interface {
	Run(cmd *exec.Cmd) error
	CombinedOutput(cmd *exec.Cmd) ([]byte, error)
}

// RealRunner implements Runner using real os/exec.
type RealRunner struct{}

func (r *RealRunner) Run(cmd *exec.Cmd) error {
	return cmd.Run()
}

func (r *RealRunner) CombinedOutput(cmd *exec.Cmd) ([]byte, error) {
	return cmd.CombinedOutput()
}
