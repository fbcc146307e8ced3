package utils

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// DownloadFile downloads a file from url to filepath.
// file:// URLs are served from the local disk, which keeps tests off the network.
func DownloadFile(url string, filepath string) error {
	var src io.ReadCloser
	if strings.HasPrefix(url, "file://") {
		f, err := os.Open(strings.TrimPrefix(url, "file://"))
		if err != nil {
			return err
		}
		src = f
	} else {
		resp, err := http.Get(url)
		if err != nil {
			return err
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return fmt.Errorf("bad status: %s", resp.Status)
		}
		src = resp.Body
	}
	defer src.Close()

	out, err := os.Create(filepath)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return err
	}
	return nil
}
