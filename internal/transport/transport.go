package transport

import "context"

// Transport executes commands and ships files on a machine that hosts an
// embedded interpreter. The SSH implementation reaches render nodes and
// workstations; tests use the mock.
type Transport interface {
	// Execute runs a shell command and returns its combined output.
	Execute(ctx context.Context, cmd string) (string, error)
	// CopyFile uploads a local file to the remote path.
	CopyFile(ctx context.Context, localPath, remotePath string) error
	Close() error
}
