package runner_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/DOCtorActoAntohich/fsa"
	"github.com/DOCtorActoAntohich/fsa/internal/testutils"
	"github.com/DOCtorActoAntohich/fsa/pkg/regex"
	"github.com/DOCtorActoAntohich/fsa/pkg/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, mode runner.Mode, input string) string {
	t.Helper()
	var out bytes.Buffer
	r := runner.New(runner.WithMode(mode))
	require.NoError(t, r.Run(context.Background(), strings.NewReader(input), &out))
	return out.String()
}

func TestRunner_Validate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "complete without warnings",
			input: "states=[s1]\nalpha=[a]\ninit.st=[s1]\nfin.st=[s1]\ntrans=[s1>a>s1]\n",
			want:  "FSA is complete\n",
		},
		{
			name:  "incomplete with warning",
			input: testutils.SingleStep,
			want:  "FSA is incomplete\n",
		},
		{
			name:  "all warnings in order",
			input: "states=[s1,s2,s3]\nalpha=[a]\ninit.st=[s1]\nfin.st=[]\ntrans=[s1>a>s1,s1>a>s2,s3>a>s2]\n",
			want: "FSA is incomplete\nWarning:\n" +
				"W1: Accepting state is not defined\n" +
				"W2: Some states are not reachable from the initial state\n" +
				"W3: FSA is nondeterministic\n",
		},
		{
			name:  "disjoint",
			input: testutils.Disjoint,
			want:  "Error:\nE2: Some states are disjoint\n",
		},
		{
			name:  "malformed",
			input: testutils.Malformed,
			want:  "Error:\nE5: Input file is malformed\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, run(t, runner.ModeValidate, tt.input))
		})
	}
}

func TestRunner_Regex(t *testing.T) {
	assert.Equal(t,
		"((eps)(eps)*(a)|(a))(({})(eps)*(a)|(eps))*(({})(eps)*(a)|(eps))|((eps)(eps)*(a)|(a))\n",
		run(t, runner.ModeRegex, testutils.SingleStep))

	assert.Equal(t, "Error:\nE6: FSA is nondeterministic\n", run(t, runner.ModeRegex, testutils.Nondeterministic))
	assert.Equal(t, "Error:\nE5: Input file is malformed\n", run(t, runner.ModeRegex, testutils.Malformed))
	assert.Equal(t,
		"Error:\nE4: Initial state is not defined\n",
		run(t, runner.ModeRegex, "states=[s1]\nalpha=[a]\ninit.st=[]\nfin.st=[s1]\ntrans=[]\n"))
}

func TestRunner_StructuredInput(t *testing.T) {
	var out bytes.Buffer
	r := runner.New(
		runner.WithMode(runner.ModeValidate),
		runner.WithInputExtension(".json"),
		runner.WithHandler(runner.NewJSONHandler()),
	)
	input := `{"states":["s1"],"alphabet":["a"],"initial":"s1","final":["s1"],"transitions":["s1>a>s1"]}`

	require.NoError(t, r.Run(context.Background(), strings.NewReader(input), &out))
	assert.JSONEq(t, `{"status":"ok","complete":true}`, out.String())
}

func TestRunner_SynthesisAbortIsAnError(t *testing.T) {
	r := runner.New(
		runner.WithMode(runner.ModeRegex),
		runner.WithEngine(fsa.New(fsa.WithMaxLength(5))),
	)
	var out bytes.Buffer
	err := r.Run(context.Background(), strings.NewReader(testutils.SingleStep), &out)

	assert.ErrorIs(t, err, regex.ErrTooLong)
	assert.Empty(t, out.String())
}

func TestRunner_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := runner.New().Run(ctx, strings.NewReader(testutils.SingleStep), &out)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestRunner_ReadFailure(t *testing.T) {
	err := runner.New().Run(context.Background(), failingReader{}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "disk on fire")
}
