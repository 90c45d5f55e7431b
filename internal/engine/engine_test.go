package engine

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/danieljhkim/lotrename/internal/clock"
	"github.com/danieljhkim/lotrename/internal/fsops"
)

// faultFS wraps the real filesystem and fails the Nth rename, and every
// locked write when failWrites is set.
type faultFS struct {
	*fsops.RealFS

	failAt     int
	renames    int
	failWrites bool
}

func newFaultFS(failAt int) *faultFS {
	return &faultFS{RealFS: fsops.NewRealFS(), failAt: failAt}
}

func (f *faultFS) Rename(oldpath, newpath string) error {
	f.renames++
	if f.renames == f.failAt {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: os.ErrPermission}
	}
	return f.RealFS.Rename(oldpath, newpath)
}

func (f *faultFS) WriteLocked(path string, data []byte, perm os.FileMode) error {
	if f.failWrites {
		return &os.PathError{Op: "open", Path: path, Err: os.ErrPermission}
	}
	return f.RealFS.WriteLocked(path, data, perm)
}

// chdir switches the working directory for the rest of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to chdir to %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Errorf("failed to restore working directory: %v", err)
		}
	})
}

var testTime = time.Date(2024, 3, 9, 14, 5, 0, 0, time.UTC)

func newTestEngine(fs fsops.FS) (*Engine, *bytes.Buffer) {
	var out bytes.Buffer
	return New(fs, clock.NewFakeClock(testTime), &out), &out
}

// setupPhotoDir creates dir with empty files of the given names.
func setupPhotoDir(t *testing.T, names ...string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "photos")
	if err := os.Mkdir(dir, 0755); err != nil {
		t.Fatalf("failed to create photo dir: %v", err)
	}
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(name), 0644); err != nil {
			t.Fatalf("failed to create %s: %v", name, err)
		}
	}
	return dir
}

// writeDataFile writes a tab-delimited data file with one row per lot/inventory pair.
func writeDataFile(t *testing.T, pairs ...[2]string) string {
	t.Helper()
	var buf bytes.Buffer
	for _, p := range pairs {
		buf.WriteString(p[0] + "\t\t\"Title\"\t\"Description, oil on canvas\"\tEUR\t4000\t6000\t3000\t" + p[1] + "\t\t\n")
	}
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("failed to write data file: %v", err)
	}
	return path
}

// listDir returns the sorted entry names of dir.
func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read dir: %v", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func assertNames(t *testing.T, got []string, want ...string) {
	t.Helper()
	sort.Strings(want)
	if len(got) != len(want) {
		t.Fatalf("directory = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("directory = %v, want %v", got, want)
			return
		}
	}
}
