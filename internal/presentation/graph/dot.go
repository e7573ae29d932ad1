package graph

import (
	"fmt"
	"strings"

	"github.com/DOCtorActoAntohich/fsa/pkg/domain"
)

// GenerateDOT generates a Graphviz DOT representation of the automaton.
func GenerateDOT(a *domain.Automaton, overlay *Overlay) string {
	unreachable := map[string]bool{}
	if overlay != nil {
		for _, s := range overlay.Unreachable {
			unreachable[s] = true
		}
	}

	var sb strings.Builder
	sb.WriteString("digraph FSA {\n")
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  node [shape=circle];\n")
	sb.WriteString("\n")

	if initial, ok := a.InitialState(); ok {
		sb.WriteString("  start [shape=point];\n")
		sb.WriteString(fmt.Sprintf("  start -> %q;\n", initial))
		sb.WriteString("\n")
	}

	for _, s := range a.States {
		var attrs []string
		if isFinal(a, s) {
			attrs = append(attrs, "shape=doublecircle")
		}
		if unreachable[s] {
			attrs = append(attrs, "style=dashed", "color=gray")
		}
		if len(attrs) == 0 {
			sb.WriteString(fmt.Sprintf("  %q;\n", s))
			continue
		}
		sb.WriteString(fmt.Sprintf("  %q [%s];\n", s, strings.Join(attrs, ", ")))
	}
	sb.WriteString("\n")

	for _, e := range mergedEdges(a) {
		sb.WriteString(fmt.Sprintf("  %q -> %q [label=%q];\n", e.from, e.to, e.label))
	}

	sb.WriteString("}\n")
	return sb.String()
}
