package transport

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/melih-ucgun/warden/internal/config"
	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
)

// SSHTransport, uzak sunucu ile tüm iletişimi yöneten yapıdır.
type SSHTransport struct {
	client *ssh.Client
	host   config.Host
}

// NewSSHTransport opens a verified SSH connection to the given host. Only
// key-based auth is supported and the server key must already be present in
// ~/.ssh/known_hosts; there is no insecure fallback.
func NewSSHTransport(h config.Host) (*SSHTransport, error) {
	keyPath := h.KeyPath
	if keyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("could not resolve home directory: %w", err)
		}
		keyPath = filepath.Join(home, ".ssh", "id_ed25519")
	}

	keyData, err := os.ReadFile(keyPath)
	if err != nil {
		return nil, fmt.Errorf("could not read ssh key %s: %w", keyPath, err)
	}
	signer, err := ssh.ParsePrivateKey(keyData)
	if err != nil {
		return nil, fmt.Errorf("could not parse ssh key %s: %w", keyPath, err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("could not resolve home directory: %w", err)
	}
	knownHostsPath := filepath.Join(home, ".ssh", "known_hosts")
	hostKeyCallback, err := knownhosts.New(knownHostsPath)
	if err != nil {
		return nil, fmt.Errorf("could not load known_hosts (%s): %w; connect to the host once with ssh to record its key", knownHostsPath, err)
	}

	clientConfig := &ssh.ClientConfig{
		User:            h.User,
		Auth:            []ssh.AuthMethod{ssh.PublicKeys(signer)},
		HostKeyCallback: hostKeyCallback,
		Timeout:         15 * time.Second,
	}

	port := h.Port
	if port == 0 {
		port = 22
	}

	addr := fmt.Sprintf("%s:%d", h.Address, port)
	client, err := ssh.Dial("tcp", addr, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("ssh connection to %s failed: %w", addr, err)
	}

	return &SSHTransport{client: client, host: h}, nil
}

// Execute runs a command on the remote host and returns its combined output.
func (t *SSHTransport) Execute(ctx context.Context, cmd string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	session, err := t.client.NewSession()
	if err != nil {
		return "", err
	}
	defer session.Close()

	out, err := session.CombinedOutput(cmd)
	return string(out), err
}

// CopyFile uploads a local file to the remote path over SFTP.
func (t *SSHTransport) CopyFile(ctx context.Context, localPath, remotePath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	sftpClient, err := sftp.NewClient(t.client)
	if err != nil {
		return fmt.Errorf("sftp session failed: %w", err)
	}
	defer sftpClient.Close()

	data, err := os.ReadFile(localPath)
	if err != nil {
		return err
	}

	f, err := sftpClient.OpenFile(remotePath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC)
	if err != nil {
		return fmt.Errorf("could not create remote file %s: %w", remotePath, err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("could not write remote file %s: %w", remotePath, err)
	}
	return nil
}

// Close, SSH bağlantısını güvenli bir şekilde kapatır.
func (t *SSHTransport) Close() error {
	if t.client != nil {
		return t.client.Close()
	}
	return nil
}
