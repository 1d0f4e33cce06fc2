// +build ignore

package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

// Fetches a pinned UnicodeData.txt snapshot for the full-range audit
// tests. The revision is pinned so that glyph-name regressions are not
// confused with Unicode repertoire growth.
func main() {
	url := "https://www.unicode.org/Public/14.0.0/ucd/UnicodeData.txt"
	if err := downloadUCDFile(url, "ucd"); err != nil {
		fmt.Fprintf(os.Stderr, "failed to download: %v\n", err)
		os.Exit(1)
	}
}

func downloadUCDFile(url, dir string) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("GET failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET failed: %s", resp.Status)
	}

	path := filepath.Join(dir, filepath.Base(url))
	_ = os.MkdirAll(dir, 0755)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %v: %w", path, err)
	}

	_, err = io.Copy(f, resp.Body)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to copy %v: %w", path, err)
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("failed to write %v: %w", path, err)
	}

	return nil
}
