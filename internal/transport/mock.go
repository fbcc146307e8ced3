package transport

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// MockTransport simulates a transport layer for testing.
type MockTransport struct {
	mu          sync.Mutex
	Responses   map[string]string // Command -> Output
	Errors      map[string]error  // Command -> Error
	Calls       []string          // Record of executed commands
	CopiedFiles map[string]string // Src -> Dst (Record of copies)
}

func NewMockTransport() *MockTransport {
	return &MockTransport{
		Responses:   make(map[string]string),
		Errors:      make(map[string]error),
		CopiedFiles: make(map[string]string),
	}
}

// AddResponse registers a canned response for a command.
func (m *MockTransport) AddResponse(cmd, output string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Responses[cmd] = output
}

// AddError registers a canned error for a command.
func (m *MockTransport) AddError(cmd string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Errors[cmd] = err
}

func (m *MockTransport) Execute(ctx context.Context, cmd string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, cmd)

	if err, ok := m.Errors[cmd]; ok {
		return "", err
	}
	if output, ok := m.Responses[cmd]; ok {
		return output, nil
	}
	return "", fmt.Errorf("mock: command not mocked: %s", cmd)
}

func (m *MockTransport) CopyFile(ctx context.Context, localPath, remotePath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CopiedFiles[localPath] = remotePath
	return nil
}

func (m *MockTransport) Close() error {
	return nil
}

// AssertCalled reports whether any executed command contains the fragment.
func (m *MockTransport) AssertCalled(cmdFragment string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, call := range m.Calls {
		if strings.Contains(call, cmdFragment) {
			return true
		}
	}
	return false
}
