package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/valvenet/network"
)

const caveYAML = `start: AA
nodes:
  - {id: AA, rate: 0,  neighbors: [DD, II, BB]}
  - {id: BB, rate: 13, neighbors: [CC, AA]}
  - {id: CC, rate: 2,  neighbors: [DD, BB]}
  - {id: DD, rate: 20, neighbors: [CC, AA, EE]}
  - {id: EE, rate: 3,  neighbors: [FF, DD]}
  - {id: FF, rate: 0,  neighbors: [EE, GG]}
  - {id: GG, rate: 0,  neighbors: [FF, HH]}
  - {id: HH, rate: 22, neighbors: [GG]}
  - {id: II, rate: 0,  neighbors: [AA, JJ]}
  - {id: JJ, rate: 21, neighbors: [II]}
`

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRoot_FileArgument(t *testing.T) {
	out, err := execute(t, "", writeFile(t, "cave.yaml", caveYAML))
	require.NoError(t, err)
	assert.Equal(t, "1651\n1707\n", out)
}

func TestRoot_StdinWithRoute(t *testing.T) {
	out, err := execute(t, caveYAML, "--route", "--strategy", "floyd-warshall", "--workers", "2")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"1651",
		"1707",
		"route: DD BB JJ HH EE CC",
		"walk: AA DD AA BB AA II JJ II AA DD EE FF GG HH GG FF EE DD CC",
		"agent 1: DD EE HH",
		"agent 2: BB CC JJ",
		"",
	}, "\n"), out)
}

func TestRoot_EnvironmentOverridesDefault(t *testing.T) {
	t.Setenv("VALVENET_SINGLE_BUDGET", "0")
	out, err := execute(t, caveYAML)
	require.NoError(t, err)
	assert.Equal(t, "0\n1707\n", out)
}

func TestRoot_ExplicitFlagBeatsEnvironment(t *testing.T) {
	t.Setenv("VALVENET_SINGLE_BUDGET", "0")
	out, err := execute(t, caveYAML, "--single-budget", "30")
	require.NoError(t, err)
	assert.Equal(t, "1651\n1707\n", out)
}

func TestRoot_ConfigFile(t *testing.T) {
	cfg := writeFile(t, "valvenet.yaml", "pair-budget: 0\nstart: AA\n")
	out, err := execute(t, caveYAML, "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "1651\n0\n", out)
}

func TestRoot_Metrics(t *testing.T) {
	out, err := execute(t, caveYAML, "--metrics")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "1651\n1707\n"))
	assert.Contains(t, out, "valvenet_reduced_nodes 7")
	assert.Contains(t, out, "valvenet_pairs_compared_total")
}

func TestRoot_LogLevelGovernsStartupLines(t *testing.T) {
	stderr := func(level string) string {
		cmd := newRootCmd()
		var out, errOut bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&errOut)
		cmd.SetIn(strings.NewReader(caveYAML))
		cmd.SetArgs([]string{"--loglevel", level})
		require.NoError(t, cmd.Execute())
		require.Equal(t, "1651\n1707\n", out.String())
		return errOut.String()
	}

	assert.Empty(t, stderr("warn"))
	debug := stderr("debug")
	assert.Contains(t, debug, "GOMAXPROCS")
	assert.NotContains(t, debug, "{\"level\"")
}

func TestRoot_Errors(t *testing.T) {
	_, err := execute(t, "start: AA\nnodes:\n  - {id: AA, neighbors: [QQ]}\n")
	require.ErrorIs(t, err, network.ErrUnknownNeighbor)

	_, err = execute(t, caveYAML, "--start", "ZZ")
	require.ErrorIs(t, err, network.ErrUnknownStart)

	_, err = execute(t, caveYAML, "--strategy", "astar")
	require.Error(t, err)

	_, err = execute(t, caveYAML, "--loglevel", "loud")
	require.Error(t, err)

	_, err = execute(t, "", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = execute(t, caveYAML, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
