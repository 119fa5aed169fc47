// Package testutil provides shared test infrastructure for the simulator.
// It locates the scenario fixtures under testdata/scenarios and holds
// assertion helpers used across sim/ test packages.
package testutil

import (
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// ScenarioDir returns the directory of a named scenario.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func ScenarioDir(t *testing.T, name string) string {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to repo root testdata/
	dir := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "scenarios", name)
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("Failed to find scenario %q: %v", name, err)
	}
	return dir
}

// ScenarioFile returns the path of file inside a named scenario.
func ScenarioFile(t *testing.T, name, file string) string {
	t.Helper()
	return filepath.Join(ScenarioDir(t, name), file)
}

// GoldenLines reads the expected report lines of a scenario.
func GoldenLines(t *testing.T, name string) []string {
	t.Helper()
	data, err := os.ReadFile(ScenarioFile(t, name, "golden.txt"))
	if err != nil {
		t.Fatalf("Failed to read golden output: %v", err)
	}
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
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
