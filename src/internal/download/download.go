// Package download fetches remote files with progress reporting and optional
// checksum verification. pipctl uses it to obtain the pip bootstrap script.
package download

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/pipctl/pipctl/src/internal/ui"
	"github.com/schollz/progressbar/v3"
)

// File downloads a file from a URL to a destination path with a progress bar
func File(url, destPath string) error {
	ui.Debug("Starting download: %s", url)
	ui.Debug("Destination: %s", destPath)

	out, resp, err := begin(url, destPath)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	defer func() { _ = resp.Body.Close() }()

	bar := progressbar.DefaultBytes(resp.ContentLength, "Downloading")
	if _, err := io.Copy(io.MultiWriter(out, bar), resp.Body); err != nil {
		_ = os.Remove(destPath) // Clean up partial download
		return err
	}
	fmt.Println() // New line after progress bar

	ui.Debug("Download complete: %s", destPath)
	return nil
}

// begin opens the destination file and the HTTP response, failing on any
// non-200 status.
func begin(url, destPath string) (*os.File, *http.Response, error) {
	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return nil, nil, err
	}
	out, err := os.Create(destPath)
	if err != nil {
		return nil, nil, err
	}

	resp, err := http.Get(url)
	if err != nil {
		_ = out.Close()
		return nil, nil, fmt.Errorf("failed to connect: %w (URL: %s)", err, url)
	}
	ui.Debug("HTTP response: %s", resp.Status)
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		_ = out.Close()
		return nil, nil, fmt.Errorf("download failed (HTTP %s): %s", resp.Status, url)
	}
	return out, resp, nil
}
