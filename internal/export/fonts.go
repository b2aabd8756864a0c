package export

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/schollz/progressbar/v3"
)

// fontURL serves DejaVu Sans, a freely licensed face with the coverage the
// Unicode PDF path needs.
const fontURL = "https://github.com/dejavu-fonts/dejavu-fonts/raw/master/ttf/DejaVuSans.ttf"

const fontFileName = "DejaVuSans.ttf"

// EnsureFont returns the path to a cached Unicode TTF, downloading it on
// first use. Failure here only degrades the PDF to the ASCII core-font path;
// callers log the error and carry on.
func EnsureFont(ctx context.Context, dir string) (string, error) {
	path := filepath.Join(dir, fontFileName)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", fmt.Errorf("failed to create font directory: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fontURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build font request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to download font: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("font download returned status %d", resp.StatusCode)
	}

	tmp, err := os.CreateTemp(dir, fontFileName+".*")
	if err != nil {
		return "", fmt.Errorf("failed to create font file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	bar := progressbar.DefaultBytes(resp.ContentLength, "downloading font")
	if _, err := io.Copy(io.MultiWriter(tmp, bar), resp.Body); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("failed to write font file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to close font file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("failed to install font file: %w", err)
	}

	return path, nil
}
