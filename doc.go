/*
Package fsa validates finite-state automaton descriptions and synthesizes
regular expressions for the languages they accept.

A description is checked against a fixed rule set. Blocking errors are
reported with stable codes (E1 unknown state, E2 disjoint states, E3 unknown
symbol, E4 undefined initial state) and only the first one found is
returned. Otherwise the automaton is valid, possibly with warnings (W1 no
accepting state, W2 unreachable states, W3 nondeterministic), and a
completeness flag.

Regex synthesis uses Kleene's state-elimination construction R(i, j, k) and
requires a deterministic automaton: nondeterminism, only a warning during
validation, is the blocking error E6 here.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/DOCtorActoAntohich/fsa"
		"github.com/DOCtorActoAntohich/fsa/pkg/adapters/file"
	)

	func main() {
		ctx := context.Background()

		a, err := file.NewLoader(".").Load(ctx, "fsa.txt")
		if err != nil {
			log.Fatal(err) // wraps domain.ErrMalformed (E5) for bad input
		}

		eng := fsa.New()
		outcome := eng.Validate(ctx, a)
		if !outcome.OK() {
			fmt.Println(outcome.Err)
			return
		}

		expr, err := eng.Synthesize(ctx, a)
		if err != nil {
			fmt.Println(err) // E6 for nondeterministic automata
			return
		}
		fmt.Println(expr)
	}
*/
package fsa
