package fsa_test

import (
	"context"
	"fmt"

	"github.com/DOCtorActoAntohich/fsa"
	"github.com/DOCtorActoAntohich/fsa/pkg/dsl"
)

func ExampleEngine_Synthesize() {
	a := dsl.New().
		States("s1").
		Alphabet("a").
		Initial("s1").
		Final("s1").
		On("s1", "a", "s1").
		Build()

	expr, err := fsa.New().Synthesize(context.Background(), a)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(expr)
	// Output: (a|eps)(a|eps)*(a|eps)|(a|eps)
}

func ExampleEngine_Validate() {
	a := dsl.New().
		States("s1", "s2").
		Alphabet("a").
		Initial("s1").
		On("s1", "a", "s2").
		Build()

	outcome := fsa.New().Validate(context.Background(), a)
	fmt.Println(outcome.OK(), outcome.Warnings, outcome.Complete)
	// Output: true [W1] false
}
