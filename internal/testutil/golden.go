// Package testutil provides shared test infrastructure for productops.
// It consolidates golden-file handling and numeric assertion helpers used
// across the economics, design and report test packages.
package testutil

import (
	"flag"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

var update = flag.Bool("update", false, "rewrite golden files under testdata/")

// GoldenPath resolves name inside the repository's testdata/ directory.
// The path is resolved relative to this source file: internal/testutil/ → testdata/.
func GoldenPath(t *testing.T, name string) string {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	return filepath.Join(filepath.Dir(thisFile), "..", "..", "testdata", name)
}

// AssertGolden compares got with testdata/<name>. Run tests with -update to
// rewrite the file from the current output.
func AssertGolden(t *testing.T, name string, got []byte) {
	t.Helper()

	path := GoldenPath(t, name)
	if *update {
		if err := os.WriteFile(path, got, 0o644); err != nil {
			t.Fatalf("Failed to update golden file %s: %v", path, err)
		}
		return
	}
	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden file %s: %v", path, err)
	}
	if string(want) != string(got) {
		t.Errorf("output differs from %s\n--- want\n%s\n--- got\n%s", name, want, got)
	}
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
