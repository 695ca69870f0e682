package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geograph/core"
)

func TestRoutesCommand_Medellin(t *testing.T) {
	var buf bytes.Buffer
	cmd := &routesCommand{opts: &Options{}, out: &buf, PrintGraph: true}
	require.NoError(t, cmd.Execute(nil))

	out := buf.String()
	assert.Contains(t, out, "Generated graph:\nVertex 0 (D1 Centro):\n")
	assert.Contains(t, out, "ShortestPaths execution time:")
	assert.Contains(t, out, "Shortest routes from D1 Centro:\n")
	assert.Contains(t, out, "To D1 Envigado:\n  Route: D1 Centro -> D1 Envigado\n  Total distance: 8.66 km\n")
}

func TestRoutesCommand_InvalidSourceHasNoOutput(t *testing.T) {
	var buf bytes.Buffer
	cmd := &routesCommand{opts: &Options{}, out: &buf, Source: intPtr(5), PrintGraph: true}
	err := cmd.Execute(nil)
	require.ErrorIs(t, err, core.ErrIndexOutOfRange)
	assert.Empty(t, buf.String())
}

func TestRoutesCommand_NegativeSourceRejected(t *testing.T) {
	var buf bytes.Buffer
	cmd := &routesCommand{opts: &Options{}, out: &buf, Source: intPtr(-3)}
	require.ErrorIs(t, cmd.Execute(nil), core.ErrIndexOutOfRange)
	assert.Empty(t, buf.String())
}

func TestRoutesCommand_ExplicitSourceOverridesDataset(t *testing.T) {
	var buf bytes.Buffer
	cmd := &routesCommand{opts: &Options{}, out: &buf, Source: intPtr(2)}
	require.NoError(t, cmd.Execute(nil))
	assert.Contains(t, buf.String(), "Shortest routes from D1 Laureles:\n")
}

func TestRoutesCommand_DatasetFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ds.yaml")
	data := "source: 1\npoints:\n" +
		"  - {name: A, lat: 0, lon: 0}\n" +
		"  - {name: B, lat: 0, lon: 1}\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	var buf bytes.Buffer
	cmd := &routesCommand{opts: &Options{Dataset: path}, out: &buf}
	require.NoError(t, cmd.Execute(nil))
	assert.Contains(t, buf.String(), "Shortest routes from B:\nTo A:\n  Route: B -> A\n  Total distance: 111.19 km\n")
}

func TestRoutesCommand_Strict(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ds.yaml")
	require.NoError(t, os.WriteFile(path, []byte("points:\n  - {name: X, lat: 95, lon: 0}\n"), 0o600))

	var buf bytes.Buffer
	cmd := &routesCommand{opts: &Options{Dataset: path, Strict: true}, out: &buf}
	require.ErrorIs(t, cmd.Execute(nil), core.ErrBadCoordinate)

	cmd.opts.Strict = false
	require.NoError(t, cmd.Execute(nil))
}

func TestRun_ExitCodes(t *testing.T) {
	assert.Equal(t, 0, run([]string{"--help"}))
	assert.Equal(t, 1, run([]string{"--no-such-flag"}))
	assert.Equal(t, 1, run([]string{"routes", "--source", "42", "--log-level", "disabled"}))
	assert.Equal(t, 1, run([]string{"routes", "--source=-3", "--log-level", "disabled"}))
}

func TestCommands_DescribeGlobalOptions(t *testing.T) {
	parser := newParser(&Options{})
	for _, name := range []string{"routes", "serve"} {
		cmd := parser.Find(name)
		require.NotNil(t, cmd, name)
		assert.Contains(t, cmd.LongDescription, "--strict are global options", name)
	}
}

func intPtr(v int) *int { return &v }
