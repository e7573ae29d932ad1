package compiler

import (
	"testing"

	"github.com/DOCtorActoAntohich/fsa/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `states=[on,off]
alpha=[turn_on,turn_off]
init.st=[off]
fin.st=[]
trans=[off>turn_on>off,on>turn_off>on,off>turn_on>off]
`

func TestParse_Valid(t *testing.T) {
	a, err := NewParser().Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, []string{"on", "off"}, a.States)
	assert.Equal(t, []string{"turn_on", "turn_off"}, a.Alphabet)
	init, ok := a.InitialState()
	require.True(t, ok)
	assert.Equal(t, "off", init)
	assert.Empty(t, a.Final)
	assert.Equal(t, []domain.Transition{
		{From: "off", Symbol: "turn_on", To: "off"},
		{From: "on", Symbol: "turn_off", To: "on"},
	}, a.Transitions, "duplicate transitions collapse")
}

func TestParse_EmptyInitial(t *testing.T) {
	a, err := NewParser().Parse([]byte("states=[s1]\nalpha=[a]\ninit.st=[]\nfin.st=[s1]\ntrans=[]"))
	require.NoError(t, err)
	_, ok := a.InitialState()
	assert.False(t, ok)
	assert.Empty(t, a.Transitions)
}

func TestParse_WhitespaceAndTrailingBlankLines(t *testing.T) {
	input := "  states=[s1]  \r\n\talpha=[a]\ninit.st=[s1]\nfin.st=[s1]\ntrans=[s1>a>s1]\n\n\n"
	a, err := NewParser().Parse([]byte(input))
	require.NoError(t, err)
	assert.Len(t, a.Transitions, 1)
}

func TestParse_Malformed(t *testing.T) {
	tests := map[string]string{
		"empty input":        "",
		"missing line":       "states=[s1]\nalpha=[a]\ninit.st=[s1]\nfin.st=[s1]",
		"extra line":         sample + "extra=[x]\n",
		"wrong order":        "alpha=[a]\nstates=[s1]\ninit.st=[s1]\nfin.st=[s1]\ntrans=[]",
		"empty states":       "states=[]\nalpha=[a]\ninit.st=[s1]\nfin.st=[s1]\ntrans=[]",
		"empty alphabet":     "states=[s1]\nalpha=[]\ninit.st=[s1]\nfin.st=[s1]\ntrans=[]",
		"two initial states": "states=[s1,s2]\nalpha=[a]\ninit.st=[s1,s2]\nfin.st=[s1]\ntrans=[]",
		"underscore state":   "states=[s_1]\nalpha=[a]\ninit.st=[s_1]\nfin.st=[]\ntrans=[]",
		"dangling comma":     "states=[s1,]\nalpha=[a]\ninit.st=[s1]\nfin.st=[]\ntrans=[]",
		"short transition":   "states=[s1]\nalpha=[a]\ninit.st=[s1]\nfin.st=[]\ntrans=[s1>a]",
		"trailing garbage":   "states=[s1]x\nalpha=[a]\ninit.st=[s1]\nfin.st=[]\ntrans=[]",
		"blank line inside":  "states=[s1]\n\nalpha=[a]\ninit.st=[s1]\nfin.st=[]\ntrans=[]",
	}

	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewParser().Parse([]byte(input))
			assert.ErrorIs(t, err, domain.ErrMalformed)
		})
	}
}

func TestFormat(t *testing.T) {
	a, err := NewParser().Parse([]byte(sample))
	require.NoError(t, err)

	want := "states=[on,off]\nalpha=[turn_on,turn_off]\ninit.st=[off]\nfin.st=[]\ntrans=[off>turn_on>off,on>turn_off>on]\n"
	assert.Equal(t, want, Format(a))

	again, err := NewParser().Parse([]byte(Format(a)))
	require.NoError(t, err)
	assert.Equal(t, a, again)
}
