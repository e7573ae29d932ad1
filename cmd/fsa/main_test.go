package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/DOCtorActoAntohich/fsa/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()
	input := testutils.WriteFile(t, dir, "fsa.txt", testutils.SingleStep)
	output := filepath.Join(dir, "result.txt")
	cfgPath := filepath.Join(dir, "absent.yaml")

	_, err := execute(t, "validate", input, "--output", output, "--config", cfgPath)
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "FSA is incomplete\n", string(data))
}

func TestRegexCommand_JSONToStdout(t *testing.T) {
	dir := t.TempDir()
	input := testutils.WriteFile(t, dir, "fsa.txt", testutils.Nondeterministic)

	out, err := execute(t, "regex", input, "-o", "-", "-f", "json", "--config", filepath.Join(dir, "absent.yaml"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"error","code":"E6","error":"E6: FSA is nondeterministic"}`, out)
}

func TestGraphCommand(t *testing.T) {
	dir := t.TempDir()
	input := testutils.WriteFile(t, dir, "fsa.txt", testutils.SingleStep)

	out, err := execute(t, "graph", input, "--format", "dot", "--config", filepath.Join(dir, "absent.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "digraph FSA {")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "fsa version ")
}

func TestServerCommands_MaxLengthFallsBackToServerLimit(t *testing.T) {
	for _, cmd := range []string{"serve", "mcp"} {
		c, _, err := rootCmd.Find([]string{cmd})
		require.NoError(t, err)
		flag := c.Flags().Lookup("max-length")
		require.NotNil(t, flag, cmd)
		assert.Contains(t, flag.Usage, "http.max_length", cmd)
	}
}
