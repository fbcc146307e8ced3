package consts

import (
	"path/filepath"
	"time"
)

// Constants for configuration paths and defaults
const (
	DefaultDirName      = ".warden"
	StateFileName       = "state.json"
	DefaultConfigName   = "warden.yaml"
	DefaultManifestName = "requirements.json"

	// DefaultGetPipURL is the bootstrap script published by the pip project.
	DefaultGetPipURL = "https://bootstrap.pypa.io/get-pip.py"

	// DefaultBootstrapTimeout bounds the get-pip child process.
	DefaultBootstrapTimeout = 120 * time.Second
)

// GetWardenDir returns the root directory name for Warden state
func GetWardenDir() string {
	return DefaultDirName
}

// GetStateFilePath returns the path to the state file
func GetStateFilePath() string {
	return filepath.Join(GetWardenDir(), StateFileName)
}
