package requirements

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/melih-ucgun/warden/internal/core"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "requirements.json")
	if err := (&core.RealFS{}).WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadManifest(t *testing.T) {
	path := writeManifest(t, `[
		{"pip": "numpy==1.2.0", "module": "numpy", "version": "1.2.0"},
		{"pip": "PyYAML", "module": "yaml", "version": null},
		{"pip": "Pillow", "module": "PIL"}
	]`)

	reqs, err := LoadManifest(&core.RealFS{}, path)
	if err != nil {
		t.Fatalf("LoadManifest failed: %v", err)
	}
	if len(reqs) != 3 {
		t.Fatalf("Expected 3 requirements, got %d", len(reqs))
	}
	if reqs[0].Pip != "numpy==1.2.0" || reqs[0].Module != "numpy" {
		t.Errorf("Unexpected first record: %+v", reqs[0])
	}
	if reqs[0].Version == nil || *reqs[0].Version != "1.2.0" {
		t.Error("First record should carry its version")
	}
	if reqs[1].Version != nil {
		t.Error("null version should decode as nil")
	}
	if reqs[2].Version != nil {
		t.Error("absent version should decode as nil")
	}
}

func TestLoadManifest_NotFound(t *testing.T) {
	_, err := LoadManifest(&core.RealFS{}, filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, ErrManifestNotFound) {
		t.Fatalf("Expected ErrManifestNotFound, got %v", err)
	}
}

func TestLoadManifest_Malformed(t *testing.T) {
	path := writeManifest(t, `[{"pip": "numpy"`)

	_, err := LoadManifest(&core.RealFS{}, path)
	if err == nil {
		t.Fatal("Malformed JSON must propagate as an error")
	}
	if errors.Is(err, ErrManifestNotFound) {
		t.Fatal("Malformed JSON must not look like a missing file")
	}
}

func TestLoadManifest_InvalidRecord(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing pip", `[{"module": "numpy"}]`},
		{"missing module", `[{"pip": "numpy"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, tt.content)
			if _, err := LoadManifest(&core.RealFS{}, path); err == nil {
				t.Error("Invalid record must fail the load")
			}
		})
	}
}

func TestLoadManifest_EmptyList(t *testing.T) {
	path := writeManifest(t, `[]`)
	reqs, err := LoadManifest(&core.RealFS{}, path)
	if err != nil {
		t.Fatalf("An empty manifest is valid: %v", err)
	}
	if len(reqs) != 0 {
		t.Errorf("Expected no requirements, got %d", len(reqs))
	}
}

func TestRequirementString(t *testing.T) {
	v := "1.2.0"
	if got := (Requirement{Pip: "numpy", Module: "numpy", Version: &v}).String(); got != "numpy (1.2.0)" {
		t.Errorf("String() = %q", got)
	}
	if got := (Requirement{Pip: "numpy", Module: "numpy"}).String(); got != "numpy" {
		t.Errorf("String() = %q", got)
	}
}
