package utils

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestDownloadFile_HTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("print('get-pip')\n"))
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "get-pip.py")
	if err := DownloadFile(srv.URL, dest); err != nil {
		t.Fatalf("DownloadFile failed: %v", err)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "print('get-pip')\n" {
		t.Errorf("Unexpected content: %q", data)
	}
}

func TestDownloadFile_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "out")
	if err := DownloadFile(srv.URL, dest); err == nil {
		t.Fatal("Expected an error for a 404 response")
	}
}

func TestDownloadFile_FileScheme(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	if err := os.WriteFile(src, []byte("local"), 0644); err != nil {
		t.Fatal(err)
	}

	dest := filepath.Join(dir, "dest.txt")
	if err := DownloadFile("file://"+src, dest); err != nil {
		t.Fatalf("DownloadFile failed: %v", err)
	}

	data, _ := os.ReadFile(dest)
	if string(data) != "local" {
		t.Errorf("Unexpected content: %q", data)
	}
}

func TestDownloadFile_MissingLocalFile(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "dest")
	if err := DownloadFile("file:///does/not/exist", dest); err == nil {
		t.Fatal("Expected an error for a missing source file")
	}
}
