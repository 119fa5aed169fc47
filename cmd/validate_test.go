package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTopology_Reachability(t *testing.T) {
	// GIVEN a topology where clan_b is a mine nobody can reach
	var buf bytes.Buffer

	// WHEN it is validated
	err := validateTopology(filepath.Join(scenariosDir, "single-supplier", "network.xml"), &buf)

	// THEN counts and the travel table are printed
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Clans: 3 (2 mines)\n")
	assert.Contains(t, out, "Roads: 1\n")
	assert.Contains(t, out, "Skipped records: 0\n")
	assert.Contains(t, out, "unreachable")
	assert.Contains(t, out, "10")
}

func TestValidateTopology_ListsSkippedRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "network.yaml")
	doc := "clans:\n  - name: A\n  - name: A\nroads:\n  - from: A\n    to: B\n    time: 1\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	var buf bytes.Buffer

	require.NoError(t, validateTopology(path, &buf))

	assert.Contains(t, buf.String(), "Clans: 1 (0 mines)\n")
	assert.Contains(t, buf.String(), "Skipped records: 2\n")
	assert.Contains(t, buf.String(), "duplicate clan")
	assert.Contains(t, buf.String(), "unknown clan")
}

func TestValidateTopology_UnsupportedExtension(t *testing.T) {
	assert.Error(t, validateTopology("network.json", &bytes.Buffer{}))
}
