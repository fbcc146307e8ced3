package requirements

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/melih-ucgun/warden/internal/core"
)

// Requirement describes one dependency of the embedded interpreter.
// Pip is the name handed to the installer (it may carry a pin such as
// "numpy==1.2.0"), Module is the name probed for importability. Version
// is informational; nil means any version is acceptable.
type Requirement struct {
	Pip     string  `json:"pip"`
	Module  string  `json:"module"`
	Version *string `json:"version"`
}

func (r Requirement) Validate() error {
	if r.Pip == "" {
		return errors.New("requirement is missing the pip package name")
	}
	if r.Module == "" {
		return errors.New("requirement is missing the module name")
	}
	return nil
}

func (r Requirement) String() string {
	if r.Version != nil && *r.Version != "" {
		return fmt.Sprintf("%s (%s)", r.Pip, *r.Version)
	}
	return r.Pip
}

// LoadManifest reads a JSON manifest: an array of objects with the keys
// "pip", "module" and optional "version". A missing file is reported as
// ErrManifestNotFound so callers can tell it apart from a broken one;
// malformed JSON and invalid records always fail the load.
func LoadManifest(fsys core.FileSystem, path string) ([]Requirement, error) {
	if _, err := fsys.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrManifestNotFound, path)
		}
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}

	var reqs []Requirement
	if err := json.Unmarshal(data, &reqs); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}

	for i, r := range reqs {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("manifest %s, entry %d: %w", path, i, err)
		}
	}
	return reqs, nil
}
