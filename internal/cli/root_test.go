package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCommand executes the root command with the given args against the
// sample graph and returns stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--file", filepath.Join("testdata", "sample.toml")}, args...))
	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func TestRootCmd_BFS(t *testing.T) {
	out, err := runCommand(t, "bfs", "--source", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "Hop counts from 0")
	assert.Contains(t, out, "0: 0\n1: 1\n2: 2\n3: 3\n4: 2\n5: 1\n")
}

func TestRootCmd_BFSWithPath(t *testing.T) {
	out, err := runCommand(t, "bfs", "--source", "0", "--dest", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "0 1 2 3\n")
}

func TestRootCmd_BFSMissingSource(t *testing.T) {
	_, err := runCommand(t, "bfs")
	assert.Error(t, err)
}

func TestRootCmd_DFS(t *testing.T) {
	out, err := runCommand(t, "dfs")
	require.NoError(t, err)
	assert.Contains(t, out, "0 1 2 3 4 5\n")
}

func TestRootCmd_Dijkstra(t *testing.T) {
	out, err := runCommand(t, "dijkstra", "--source", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "0: 0\n1: 5\n2: 3\n3: 12\n4: 10\n5: 2\n")
}

func TestRootCmd_DijkstraWithPath(t *testing.T) {
	out, err := runCommand(t, "dijkstra", "--source", "0", "--dest", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "0 5 2 3\n")
}

func TestRootCmd_BellmanFord(t *testing.T) {
	out, err := runCommand(t, "bellman-ford", "--source", "0", "--early-exit")
	require.NoError(t, err)
	assert.Contains(t, out, "0: 0\n1: 5\n2: 3\n3: 12\n4: 10\n5: 2\n")
}

func TestRootCmd_Edges(t *testing.T) {
	out, err := runCommand(t, "edges")
	require.NoError(t, err)
	assert.Contains(t, out, "(0, 1)")
	assert.Contains(t, out, "(5, 2)")
}

func TestRootCmd_MissingFile(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--file", filepath.Join(t.TempDir(), "absent.toml"), "edges"})

	err := cmd.ExecuteContext(context.Background())
	assert.Error(t, err)
}

func TestRootCmd_UnknownSource(t *testing.T) {
	_, err := runCommand(t, "dijkstra", "--source", "nope")
	assert.Error(t, err)
}
