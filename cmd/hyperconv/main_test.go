// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperlath/codec"
	"github.com/katalvlaran/hyperlath/hypergraph"
)

// run executes the CLI with args and stdin, returning stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append(args, "--log-level", "error"))
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	t.Parallel()

	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "hyperconv v"+version)
}

func TestConvert_CSVStdin(t *testing.T) {
	t.Parallel()

	out, err := run(t, "club,person\nchess,ann\nchess,bob\n",
		"convert", "--format", "csv", "--node-col", "person", "--edge-col", "club")
	require.NoError(t, err)

	doc, err := codec.DecodeYAML(strings.NewReader(out))
	require.NoError(t, err)
	h, err := doc.Convert()
	require.NoError(t, err)
	assert.Equal(t, map[string]hypergraph.Set[string]{"chess": hypergraph.NewSet("ann", "bob")}, h.EdgeMap())
}

func TestValidate_HCLFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "g.hcl")
	require.NoError(t, os.WriteFile(path, []byte("edge \"x\" { nodes = [\"a\", \"b\"] }\n"), 0o600))

	out, err := run(t, "", "validate", path)
	require.NoError(t, err)
	assert.Equal(t, "ok: 2 nodes, 1 edges\n", out)
}

func TestConvert_Errors(t *testing.T) {
	t.Parallel()

	_, err := run(t, "", "convert", "--format", "xml")
	require.ErrorIs(t, err, codec.ErrUnknownFormat)

	_, err = run(t, "", "convert", filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = run(t, "x: {a: 1}\n", "convert")
	require.ErrorIs(t, err, codec.ErrDecode)
}

func TestConvert_MatrixOutput(t *testing.T) {
	t.Parallel()

	out, err := run(t, "x: [a, b]\ny: [b]\n", "convert", "--output", "matrix")
	require.NoError(t, err)
	assert.Equal(t, "rows: [a b]\ncols: [x y]\n[1, 0]\n[1, 1]\n", out)

	_, err = run(t, "", "convert", "--output", "png")
	require.Error(t, err)
}
