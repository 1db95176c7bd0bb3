package formats

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lilellia/fluidpath/fserr"
)

type project struct {
	Name    string   `json:"name" yaml:"name" toml:"name"`
	Version int      `json:"version" yaml:"version" toml:"version"`
	Tags    []string `json:"tags" yaml:"tags" toml:"tags"`
}

// TestJSONRoundTrip tests JSON read/write symmetry
func TestJSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "project.json")
	in := project{Name: "fluidpath", Version: 3, Tags: []string{"fs", "paths"}}

	require.NoError(t, WriteJSON(path, in))

	var out project
	require.NoError(t, ReadJSON(path, &out))
	assert.Equal(t, in, out)

	// Output is indented for human eyes.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  ")
}

// TestYAMLRoundTrip tests YAML read/write symmetry
func TestYAMLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "project.yaml")
	in := project{Name: "fluidpath", Version: 3, Tags: []string{"fs"}}

	require.NoError(t, WriteYAML(path, in))

	var out project
	require.NoError(t, ReadYAML(path, &out))
	assert.Equal(t, in, out)
}

// TestTOMLRoundTrip tests TOML read/write symmetry
func TestTOMLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "project.toml")
	in := project{Name: "fluidpath", Version: 3, Tags: []string{"fs"}}

	require.NoError(t, WriteTOML(path, in))

	var out project
	require.NoError(t, ReadTOML(path, &out))
	assert.Equal(t, in, out)
}

// TestReadMissingFile tests the NotFound failure across formats
func TestReadMissingFile(t *testing.T) {
	absent := filepath.Join(t.TempDir(), "absent.json")
	var v project

	for name, read := range map[string]func(string, any) error{
		"json": ReadJSON,
		"yaml": ReadYAML,
		"toml": ReadTOML,
	} {
		t.Run(name, func(t *testing.T) {
			err := read(absent, &v)
			require.Error(t, err)
			assert.True(t, fserr.IsKind(err, fserr.NotFound))
		})
	}
}

// TestReadMalformed tests parse failures
func TestReadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	var v project
	err := ReadJSON(path, &v)
	require.Error(t, err)
	assert.True(t, fserr.IsKind(err, fserr.IOFailure))
}

// TestWriteIsAtomic tests that a failed write leaves no temp debris
func TestWriteIsAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")
	require.NoError(t, WriteJSON(path, project{Name: "x"}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

// TestCSVRoundTrip tests CSV read/write with a header
func TestCSVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.csv")
	header := []string{"name", "size"}
	rows := [][]string{
		{"a.txt", "100"},
		{"b, with comma.txt", "200"},
	}

	require.NoError(t, WriteCSV(path, header, rows))

	gotHeader, gotRows, err := ReadCSV(path, true)
	require.NoError(t, err)
	assert.Equal(t, header, gotHeader)
	assert.Equal(t, rows, gotRows)
}

// TestCSVNoHeader tests headerless reads
func TestCSVNoHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.csv")
	rows := [][]string{{"1", "2"}, {"3", "4"}}

	require.NoError(t, WriteCSV(path, nil, rows))

	gotHeader, gotRows, err := ReadCSV(path, false)
	require.NoError(t, err)
	assert.Nil(t, gotHeader)
	assert.Equal(t, rows, gotRows)
}
