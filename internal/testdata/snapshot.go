package testdata

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"runtime"
)

// SnapshotReader opens a pinned UCD snapshot for a test. Snapshots are
// fetched with download.go and live next to this package, so the path is
// resolved relative to the package source rather than the working
// directory of the test run.
func SnapshotReader(name string) (io.Reader, error) {
	data, err := os.ReadFile(SnapshotPath(name))
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}

// SnapshotPath returns the location of a pinned UCD snapshot file.
func SnapshotPath(name string) string {
	_, pkgdir, _, ok := runtime.Caller(0)
	if !ok {
		panic("no debug info")
	}
	return filepath.Join(filepath.Dir(pkgdir), "ucd", name)
}
