package graph

import (
	"fmt"
	"strings"

	"github.com/DOCtorActoAntohich/fsa/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart of the automaton.
// It applies semantic styling:
// - Final: (((Double circle)))
// - Default: ((Circle))
// - Initial: entered from a hidden start point
// Unreachable states from the overlay are dimmed.
func GenerateMermaid(a *domain.Automaton, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	for _, s := range a.States {
		opener, closer := "((", "))"
		if isFinal(a, s) {
			opener, closer = "(((", ")))"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", sanitizeMermaidID(s), opener, s, closer))
	}

	if initial, ok := a.InitialState(); ok {
		sb.WriteString("    start_point[ ]:::hidden\n")
		sb.WriteString(fmt.Sprintf("    start_point --> %s\n", sanitizeMermaidID(initial)))
	}

	for _, e := range mergedEdges(a) {
		sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n",
			sanitizeMermaidID(e.from), strings.ReplaceAll(e.label, "\"", "'"), sanitizeMermaidID(e.to)))
	}

	sb.WriteString("\n    classDef hidden display:none;\n")
	if overlay != nil && len(overlay.Unreachable) > 0 {
		// Force black text (color:#000) so the dimmed fill stays legible on dark themes.
		sb.WriteString("    classDef unreachable fill:#eeeeee,stroke:#9e9e9e,stroke-dasharray:4,color:#000;\n")
		for _, s := range overlay.Unreachable {
			sb.WriteString(fmt.Sprintf("    class %s unreachable;\n", sanitizeMermaidID(s)))
		}
	}

	return sb.String()
}

// sanitizeMermaidID prefixes ids so names like "end" or "graph" cannot
// collide with Mermaid keywords.
func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, "-", "_")
	return "s_" + s
}
