package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DOCtorActoAntohich/fsa"
	"github.com/DOCtorActoAntohich/fsa/internal/config"
	"github.com/DOCtorActoAntohich/fsa/internal/logging"
	"github.com/DOCtorActoAntohich/fsa/internal/testutils"
	"github.com/DOCtorActoAntohich/fsa/pkg/domain"
	"github.com/DOCtorActoAntohich/fsa/pkg/runner"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecute_WritesResultFile(t *testing.T) {
	dir := t.TempDir()
	input := testutils.WriteFile(t, dir, "fsa.txt", testutils.Disjoint)
	output := filepath.Join(dir, "result.txt")

	err := Execute(context.Background(), fsa.New(), RunOptions{
		Mode:   runner.ModeValidate,
		Input:  input,
		Output: output,
	})
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "Error:\nE2: Some states are disjoint\n", string(data))
}

func TestExecute_Stdio(t *testing.T) {
	var out bytes.Buffer
	err := Execute(context.Background(), fsa.New(), RunOptions{
		Mode:   runner.ModeRegex,
		Input:  Stdio,
		Output: Stdio,
		Stdin:  strings.NewReader(testutils.Nondeterministic),
		Stdout: &out,
	})
	require.NoError(t, err)
	assert.Equal(t, "Error:\nE6: FSA is nondeterministic\n", out.String(), "buffers get no colour codes")
}

func TestExecute_JSON(t *testing.T) {
	var out bytes.Buffer
	input := testutils.WriteFile(t, "", "fsa.yaml",
		"states: [s1]\nalphabet: [a]\ninitial: s1\nfinal: [s1]\ntransitions: ['s1>a>s1']\n")

	err := Execute(context.Background(), fsa.New(), RunOptions{
		Mode:   runner.ModeRegex,
		Input:  input,
		Output: Stdio,
		Format: "json",
		Stdout: &out,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"ok","regex":"(a|eps)(a|eps)*(a|eps)|(a|eps)"}`, out.String())
}

func TestExecute_MissingInput(t *testing.T) {
	err := Execute(context.Background(), fsa.New(), RunOptions{
		Mode:   runner.ModeValidate,
		Input:  filepath.Join(t.TempDir(), "absent.txt"),
		Output: Stdio,
		Stdout: &bytes.Buffer{},
	})
	assert.ErrorContains(t, err, "failed to open input")
}

func TestRenderGraph(t *testing.T) {
	input := testutils.WriteFile(t, "", "fsa.txt", testutils.SingleStep)

	var out bytes.Buffer
	require.NoError(t, RenderGraph(context.Background(), GraphOptions{Input: input, Output: Stdio, Format: "dot", Stdout: &out}))
	assert.Contains(t, out.String(), "digraph FSA")

	err := RenderGraph(context.Background(), GraphOptions{Input: input, Output: Stdio, Format: "png", Stdout: &out})
	assert.ErrorContains(t, err, "unknown graph format")

	malformed := testutils.WriteFile(t, "", "bad.txt", testutils.Malformed)
	err = RenderGraph(context.Background(), GraphOptions{Input: malformed, Output: Stdio, Stdout: &out})
	assert.ErrorIs(t, err, domain.ErrMalformed)
}

func TestNewEngine_MemoryCache(t *testing.T) {
	cfg := config.Default()
	cfg.Cache.Driver = config.DriverMemory

	var synthesized []bool
	eng, closeFn, err := NewEngine(context.Background(), cfg, logging.NewNop(), domain.LifecycleHooks{
		OnSynthesized: func(_ context.Context, e *domain.SynthesisEvent) {
			synthesized = append(synthesized, e.Cached)
		},
	})
	require.NoError(t, err)
	defer closeFn()

	a := testutils.WriteFile(t, "", "fsa.txt", testutils.SingleStep)
	for range 2 {
		require.NoError(t, Execute(context.Background(), eng, RunOptions{
			Mode: runner.ModeRegex, Input: a, Output: Stdio, Stdout: &bytes.Buffer{},
		}))
	}
	assert.Equal(t, []bool{false, true}, synthesized)
}

func TestNewEngine_Redis(t *testing.T) {
	mr := miniredis.RunT(t)

	cfg := config.Default()
	cfg.Cache.Driver = config.DriverRedis
	cfg.Cache.Redis.Addr = mr.Addr()

	eng, closeFn, err := NewEngine(context.Background(), cfg, logging.NewNop(), domain.LifecycleHooks{})
	require.NoError(t, err)
	defer closeFn()

	a := testutils.WriteFile(t, "", "fsa.txt", testutils.SingleStep)
	require.NoError(t, Execute(context.Background(), eng, RunOptions{
		Mode: runner.ModeRegex, Input: a, Output: Stdio, Stdout: &bytes.Buffer{},
	}))
	assert.Len(t, mr.Keys(), 1)
	assert.True(t, strings.HasPrefix(mr.Keys()[0], "fsa:regex:"))
}

func TestNewEngine_RedisUnavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	cfg := config.Default()
	cfg.Cache.Driver = config.DriverRedis
	cfg.Cache.Redis.Addr = addr

	_, closeFn, err := NewEngine(context.Background(), cfg, logging.NewNop(), domain.LifecycleHooks{})
	assert.ErrorContains(t, err, "redis cache unavailable")
	assert.NotNil(t, closeFn)
}

func TestSignalContext_CancelWithoutSignal(t *testing.T) {
	ctx := NewSignalContext(context.Background())
	ctx.Cancel()

	<-ctx.Done()
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
	assert.Nil(t, ctx.Signal())
}

func TestSignalError(t *testing.T) {
	err := &SignalError{Signal: os.Interrupt}
	assert.Equal(t, "interrupted by interrupt", err.Error())
}
