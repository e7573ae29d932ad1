package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyler_PlainForBuffers(t *testing.T) {
	var buf bytes.Buffer
	s := NewStyler(&buf)

	assert.False(t, IsTerminal(&buf))
	assert.Equal(t, "Error:", s.Error("Error:"))
	assert.Equal(t, "Warning:", s.Warning("Warning:"))
	assert.Equal(t, "FSA is complete", s.Success("FSA is complete"))
}

func TestStyler_Colours(t *testing.T) {
	s := NewStylerWithProfile(termenv.TrueColor)

	got := s.Error("Error:")
	assert.Contains(t, got, "Error:")
	assert.Contains(t, got, "\x1b[")
	assert.NotEqual(t, s.Warning("x"), s.Success("x"))
}

func TestPrintBanner_Plain(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf)

	assert.NotContains(t, buf.String(), "\x1b[")
	assert.Equal(t, 6, strings.Count(buf.String(), "\n"))
}

func TestNewRenderer(t *testing.T) {
	render, err := NewRenderer(60)
	require.NoError(t, err)

	out, err := render("# FSA regex\n\nFSA is complete\n")
	require.NoError(t, err)
	assert.Contains(t, out, "complete")
}
