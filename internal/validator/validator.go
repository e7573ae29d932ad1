package validator

import (
	"github.com/DOCtorActoAntohich/fsa/pkg/domain"
	"github.com/DOCtorActoAntohich/fsa/pkg/graph"
)

// Validate classifies the automaton. It never fails: a blocking problem is
// reported through Outcome.Err, and only the first one found is returned.
func Validate(a *domain.Automaton) domain.Outcome {
	if err := FindError(a); err != nil {
		return domain.Failed(err)
	}

	var warnings []domain.Code
	if len(a.Final) == 0 {
		warnings = append(warnings, domain.WarnNoFinal)
	}
	if !AllReachable(a) {
		warnings = append(warnings, domain.WarnUnreachable)
	}
	if !IsDeterministic(a) {
		warnings = append(warnings, domain.WarnNondeterministic)
	}

	return domain.Valid(warnings, IsComplete(a))
}

// FindError returns the first blocking problem, checked in priority order:
// undefined initial state, unknown initial state, then per transition the
// symbol before its endpoints, then final states, then disjointness.
func FindError(a *domain.Automaton) *domain.Error {
	initial, ok := a.InitialState()
	if !ok {
		return domain.NewError(domain.CodeUndefinedInitial, "")
	}
	if !a.HasState(initial) {
		return domain.NewError(domain.CodeUnknownState, initial)
	}

	for _, t := range a.Transitions {
		switch {
		case !a.HasSymbol(t.Symbol):
			return domain.NewError(domain.CodeUnknownSymbol, t.Symbol)
		case !a.HasState(t.From):
			return domain.NewError(domain.CodeUnknownState, t.From)
		case !a.HasState(t.To):
			return domain.NewError(domain.CodeUnknownState, t.To)
		}
	}

	for _, f := range a.Final {
		if !a.HasState(f) {
			return domain.NewError(domain.CodeUnknownState, f)
		}
	}

	if IsDisjoint(a) {
		return domain.NewError(domain.CodeDisjoint, "")
	}

	return nil
}

// IsDisjoint reports whether some state cannot be reached from the initial
// state when transitions are followed in both directions.
// The initial state must be defined.
func IsDisjoint(a *domain.Automaton) bool {
	initial, _ := a.InitialState()
	return !graph.CoversAll(a, initial, graph.Undirected(a))
}

// AllReachable reports whether every state is reachable from the initial
// state along transition direction. The initial state must be defined.
func AllReachable(a *domain.Automaton) bool {
	initial, _ := a.InitialState()
	return graph.CoversAll(a, initial, graph.Directed(a))
}

// IsDeterministic reports whether no (from, symbol) pair leads to two
// different states.
func IsDeterministic(a *domain.Automaton) bool {
	type input struct{ from, symbol string }

	next := make(map[input]string, len(a.Transitions))
	for _, t := range a.Transitions {
		key := input{t.From, t.Symbol}
		if to, ok := next[key]; ok && to != t.To {
			return false
		}
		next[key] = t.To
	}
	return true
}

// IsComplete reports whether every state has an outgoing transition for
// every alphabet symbol. A state with no outgoing transitions is incomplete
// unless the alphabet is empty.
func IsComplete(a *domain.Automaton) bool {
	symbols := make(map[string]map[string]struct{}, len(a.States))
	for _, t := range a.Transitions {
		if symbols[t.From] == nil {
			symbols[t.From] = make(map[string]struct{})
		}
		symbols[t.From][t.Symbol] = struct{}{}
	}

	for _, s := range a.States {
		if len(symbols[s]) < len(a.Alphabet) {
			return false
		}
	}
	return true
}
