package graph_test

import (
	"testing"

	"github.com/DOCtorActoAntohich/fsa/pkg/domain"
	"github.com/DOCtorActoAntohich/fsa/pkg/graph"
	"github.com/stretchr/testify/assert"
)

func keys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestReachable(t *testing.T) {
	adj := map[string][]string{
		"a": {"b"},
		"b": {"c", "a"},
		"c": nil,
		"d": {"a"},
	}

	assert.ElementsMatch(t, []string{"a", "b", "c"}, keys(graph.Reachable("a", adj)))
	assert.ElementsMatch(t, []string{"c"}, keys(graph.Reachable("c", adj)))
	assert.ElementsMatch(t, []string{"a", "b", "c", "d"}, keys(graph.Reachable("d", adj)))
}

func TestReachable_StartWithoutEntry(t *testing.T) {
	got := graph.Reachable("lonely", map[string][]string{})
	assert.ElementsMatch(t, []string{"lonely"}, keys(got))
}

func TestDirectedAndUndirected(t *testing.T) {
	a := domain.New(
		[]string{"s1", "s2", "s3"},
		[]string{"a"},
		"s1",
		nil,
		[]domain.Transition{
			{From: "s1", Symbol: "a", To: "s2"},
			{From: "s3", Symbol: "a", To: "s2"},
		},
	)

	directed := graph.Directed(a)
	assert.Len(t, directed, 3)
	assert.False(t, graph.CoversAll(a, "s1", directed))

	undirected := graph.Undirected(a)
	assert.True(t, graph.CoversAll(a, "s1", undirected))
	assert.ElementsMatch(t, []string{"s1", "s3"}, undirected["s2"])
}
