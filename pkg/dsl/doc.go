/*
Package dsl provides a Go DSL for programmatically constructing automata.

It allows developers to describe an automaton with a fluent builder instead of
writing the five-line text description or a YAML file. This is particularly
useful for unit testing and for generating automata from code.

Example usage:

	package main

	import (
		"fmt"

		"github.com/DOCtorActoAntohich/fsa/pkg/dsl"
		"github.com/DOCtorActoAntohich/fsa/pkg/regex"
	)

	func main() {
		a := dsl.New().
			States("s1", "s2").
			Alphabet("a").
			Initial("s1").
			Final("s2").
			On("s1", "a", "s2").
			Build()

		re, err := regex.Synthesize(a)
		if err != nil {
			panic(err)
		}
		fmt.Println(re)
	}
*/
package dsl
