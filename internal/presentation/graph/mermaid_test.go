package graph_test

import (
	"strings"
	"testing"

	"github.com/DOCtorActoAntohich/fsa/internal/presentation/graph"
	"github.com/DOCtorActoAntohich/fsa/pkg/domain"
	"github.com/DOCtorActoAntohich/fsa/pkg/dsl"
	"github.com/stretchr/testify/assert"
)

func sample() *domain.Automaton {
	return dsl.New().States("s1", "s2", "s3").Alphabet("a", "b").Initial("s1").Final("s2").
		On("s1", "a", "s2").On("s1", "b", "s2").On("s2", "a", "s1").On("s3", "a", "s3").Build()
}

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		overlay  *graph.Overlay
		contains []string
		excludes []string
	}{
		{
			name: "Shapes And Edges",
			contains: []string{
				"graph LR",
				"s_s1((\"s1\"))",
				"s_s2(((\"s2\")))",
				"start_point --> s_s1",
				"s_s1 -- \"a,b\" --> s_s2",
				"s_s2 -- \"a\" --> s_s1",
			},
			excludes: []string{"classDef unreachable"},
		},
		{
			name:    "Unreachable Overlay",
			overlay: graph.NewOverlay(sample()),
			contains: []string{
				"classDef unreachable",
				"class s_s3 unreachable;",
			},
			excludes: []string{"class s_s1 unreachable;", "class s_s2 unreachable;"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(sample(), tt.overlay)
			for _, c := range tt.contains {
				assert.Contains(t, got, c)
			}
			for _, e := range tt.excludes {
				assert.NotContains(t, got, e)
			}
		})
	}
}

func TestGenerateMermaid_NoInitial(t *testing.T) {
	a := dsl.New().States("s1").Alphabet("a").Build()
	got := graph.GenerateMermaid(a, graph.NewOverlay(a))
	assert.NotContains(t, got, "start_point -->")
	assert.NotContains(t, got, "unreachable")
}

func TestGenerateDOT(t *testing.T) {
	got := graph.GenerateDOT(sample(), graph.NewOverlay(sample()))

	assert.True(t, strings.HasPrefix(got, "digraph FSA {\n"))
	assert.True(t, strings.HasSuffix(got, "}\n"))
	assert.Contains(t, got, `start -> "s1";`)
	assert.Contains(t, got, `"s1";`)
	assert.Contains(t, got, `"s2" [shape=doublecircle];`)
	assert.Contains(t, got, `"s3" [style=dashed, color=gray];`)
	assert.Contains(t, got, `"s1" -> "s2" [label="a,b"];`)
	assert.Equal(t, 1, strings.Count(got, `"s1" -> "s2"`), "parallel edges are merged")
}
