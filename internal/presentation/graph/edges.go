package graph

import (
	"slices"
	"strings"

	"github.com/DOCtorActoAntohich/fsa/pkg/domain"
	reach "github.com/DOCtorActoAntohich/fsa/pkg/graph"
)

// Overlay carries validation findings to highlight on the diagram.
type Overlay struct {
	Unreachable []string
}

// NewOverlay marks the states not reachable from the initial state.
// Without an initial state nothing is marked.
func NewOverlay(a *domain.Automaton) *Overlay {
	initial, ok := a.InitialState()
	if !ok || !a.HasState(initial) {
		return &Overlay{}
	}
	visited := reach.Reachable(initial, reach.Directed(a))
	o := &Overlay{}
	for _, s := range a.States {
		if _, ok := visited[s]; !ok {
			o.Unreachable = append(o.Unreachable, s)
		}
	}
	return o
}

type edge struct {
	from, to string
	label    string
}

// mergedEdges groups parallel transitions into one edge whose label joins
// the symbols with ",". Edges keep the order of their first transition.
func mergedEdges(a *domain.Automaton) []edge {
	type pair struct{ from, to string }
	var order []pair
	symbols := map[pair][]string{}
	for _, t := range a.Transitions {
		p := pair{t.From, t.To}
		if _, ok := symbols[p]; !ok {
			order = append(order, p)
		}
		symbols[p] = append(symbols[p], t.Symbol)
	}

	edges := make([]edge, 0, len(order))
	for _, p := range order {
		edges = append(edges, edge{from: p.from, to: p.to, label: strings.Join(symbols[p], ",")})
	}
	return edges
}

func isFinal(a *domain.Automaton, s string) bool {
	return slices.Contains(a.Final, s)
}
