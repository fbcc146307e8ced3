package bootstrap

import (
	"context"
	"os"
	"testing"

	"github.com/melih-ucgun/warden/internal/core"
	"github.com/melih-ucgun/warden/internal/transport"
)

func TestRemoteEnsurepipBootstrap(t *testing.T) {
	mock := transport.NewMockTransport()
	mock.AddResponse("/usr/bin/python3 -m ensurepip --upgrade", "")

	s := NewRemoteEnsurepip("/usr/bin/python3", true, mock, core.NopLogger{})

	if !s.Bootstrap(context.Background()) {
		t.Fatal("Expected Bootstrap=true")
	}
	if !mock.AssertCalled("ensurepip --upgrade") {
		t.Error("ensurepip was not executed remotely")
	}
}

func TestRemoteGetPipBootstrap_ExecFailure(t *testing.T) {
	// The mock rejects every command, so running the shipped script fails.
	mock := transport.NewMockTransport()

	s := NewRemoteGetPip("/usr/bin/python3", mock, core.NopLogger{})
	s.URL = fakeGetPipURL(t)

	if s.Bootstrap(context.Background()) {
		t.Fatal("Expected Bootstrap=false when the remote run fails")
	}

	if len(mock.CopiedFiles) != 1 {
		t.Fatalf("Expected the script to be shipped once, got %d copies", len(mock.CopiedFiles))
	}
	for localPath, remotePath := range mock.CopiedFiles {
		if _, err := os.Stat(localPath); !os.IsNotExist(err) {
			t.Error("Local temp copy must be removed")
		}
		if remotePath == "" {
			t.Error("Remote path must not be empty")
		}
	}
}
