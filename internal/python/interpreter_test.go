package python

import (
	"context"
	"errors"
	"os/exec"
	"reflect"
	"strings"
	"testing"

	"github.com/melih-ucgun/warden/internal/core"
)

type mockRunner struct {
	runErr    error
	output    []byte
	outputErr error
	cmds      []*exec.Cmd
}

func (m *mockRunner) Run(cmd *exec.Cmd) error {
	m.cmds = append(m.cmds, cmd)
	return m.runErr
}

func (m *mockRunner) CombinedOutput(cmd *exec.Cmd) ([]byte, error) {
	m.cmds = append(m.cmds, cmd)
	return m.output, m.outputErr
}

func TestInterpreterHasModule(t *testing.T) {
	t.Run("resolvable module", func(t *testing.T) {
		runner := &mockRunner{}
		interp := NewInterpreter("/opt/maya/bin/mayapy", runner, core.NopLogger{})

		if !interp.HasModule(context.Background(), "numpy") {
			t.Error("Expected HasModule=true when the probe exits zero")
		}

		if len(runner.cmds) != 1 {
			t.Fatalf("Expected one probe process, got %d", len(runner.cmds))
		}
		args := runner.cmds[0].Args
		if args[0] != "/opt/maya/bin/mayapy" || args[1] != "-c" {
			t.Errorf("Unexpected probe command: %v", args)
		}
		if !strings.Contains(args[2], "importlib.util.find_spec(\"numpy\")") {
			t.Errorf("Probe must use find_spec, got: %s", args[2])
		}
	})

	t.Run("unresolvable module", func(t *testing.T) {
		runner := &mockRunner{runErr: errors.New("exit status 1")}
		interp := NewInterpreter("python3", runner, core.NopLogger{})

		if interp.HasModule(context.Background(), "numpy") {
			t.Error("Expected HasModule=false when the probe exits non-zero")
		}
	})
}

func TestInterpreterPipInstall(t *testing.T) {
	runner := &mockRunner{output: []byte("Successfully installed")}
	interp := NewInterpreter("python3", runner, core.NopLogger{})

	err := interp.PipInstall(context.Background(), []string{"numpy==1.2.0", "Pillow"})
	if err != nil {
		t.Fatalf("PipInstall failed: %v", err)
	}

	want := []string{"python3", "-m", "pip", "install", "numpy==1.2.0", "Pillow"}
	if !reflect.DeepEqual(runner.cmds[0].Args, want) {
		t.Errorf("Unexpected command: got %v, want %v", runner.cmds[0].Args, want)
	}
}

func TestInterpreterPipInstall_Failure(t *testing.T) {
	runner := &mockRunner{output: []byte("No matching distribution"), outputErr: errors.New("exit status 1")}
	interp := NewInterpreter("python3", runner, core.NopLogger{})

	err := interp.PipInstall(context.Background(), []string{"nope"})
	if err == nil {
		t.Fatal("Expected an error")
	}
	if !strings.Contains(err.Error(), "No matching distribution") {
		t.Errorf("Error should carry pip's output: %v", err)
	}
}
