// Package graph holds the breadth-first reachability checks used by the
// validator.
package graph

import "github.com/DOCtorActoAntohich/fsa/pkg/domain"

// Reachable returns every node visited by a breadth-first traversal of adj
// starting at start. start itself is always included.
func Reachable[T comparable](start T, adj map[T][]T) map[T]struct{} {
	visited := map[T]struct{}{start: {}}
	queue := []T{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, next := range adj[current] {
			if _, ok := visited[next]; ok {
				continue
			}
			visited[next] = struct{}{}
			queue = append(queue, next)
		}
	}

	return visited
}

// Directed builds the adjacency of the transition relation.
// Every state is present as a key, even without outgoing edges.
func Directed(a *domain.Automaton) map[string][]string {
	adj := make(map[string][]string, len(a.States))
	for _, s := range a.States {
		adj[s] = nil
	}
	for _, t := range a.Transitions {
		adj[t.From] = append(adj[t.From], t.To)
	}
	return adj
}

// Undirected builds the adjacency where each transition links both ways.
func Undirected(a *domain.Automaton) map[string][]string {
	adj := make(map[string][]string, len(a.States))
	for _, s := range a.States {
		adj[s] = nil
	}
	for _, t := range a.Transitions {
		adj[t.From] = append(adj[t.From], t.To)
		adj[t.To] = append(adj[t.To], t.From)
	}
	return adj
}

// CoversAll reports whether visiting from start over adj reaches as many
// nodes as there are states.
func CoversAll(a *domain.Automaton, start string, adj map[string][]string) bool {
	return len(Reachable(start, adj)) == len(a.States)
}
