package regex

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/DOCtorActoAntohich/fsa/internal/validator"
	"github.com/DOCtorActoAntohich/fsa/pkg/domain"
)

// Literals of the output alphabet besides the automaton's own symbols.
const (
	Empty      = "eps" // the empty string
	EmptySet   = "{}"  // the empty language
	Alternator = "|"
)

// ErrTooLong is returned when an expression outgrows the configured limit.
var ErrTooLong = errors.New("regular expression exceeds maximum length")

// Synthesizer turns a deterministic automaton into a regular expression.
type Synthesizer struct {
	maxLength int
	logger    *slog.Logger
}

// Option defines a functional option for configuring the Synthesizer.
type Option func(*Synthesizer)

// WithMaxLength aborts synthesis once any sub-expression is longer than n
// bytes. Zero or negative means unlimited.
func WithMaxLength(n int) Option {
	return func(s *Synthesizer) {
		s.maxLength = n
	}
}

// WithLogger sets a structured logger for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Synthesizer) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a Synthesizer.
func New(opts ...Option) *Synthesizer {
	s := &Synthesizer{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Synthesize is a shortcut for New(opts...).Synthesize(a).
func Synthesize(a *domain.Automaton, opts ...Option) (string, error) {
	return New(opts...).Synthesize(a)
}

type edge struct {
	to     int
	symbol string
}

// Synthesize computes the expression for the language accepted by a.
//
// The automaton is expected to have passed validation. Only the two
// preconditions the algorithm itself depends on are checked: a defined
// initial state (E4) and determinism (E6). The input is not modified.
func (s *Synthesizer) Synthesize(a *domain.Automaton) (string, error) {
	return s.SynthesizeContext(context.Background(), a)
}

// SynthesizeContext is Synthesize with cancellation. The context is checked
// before every concatenation and its error is returned once it is done.
func (s *Synthesizer) SynthesizeContext(ctx context.Context, a *domain.Automaton) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	initial, ok := a.InitialState()
	if !ok {
		return "", domain.NewError(domain.CodeUndefinedInitial, "")
	}
	if !validator.IsDeterministic(a) {
		return "", domain.NewError(domain.CodeNondeterministic, "")
	}

	index, err := assignIndices(a.States, initial)
	if err != nil {
		return "", err
	}
	n := len(index)

	transitions := slices.Clone(a.Transitions)
	slices.SortStableFunc(transitions, func(x, y domain.Transition) int {
		return cmp.Compare(x.Symbol, y.Symbol)
	})

	adj := make([][]edge, n)
	for _, t := range transitions {
		from, ok := index[t.From]
		if !ok {
			return "", domain.NewError(domain.CodeUnknownState, t.From)
		}
		to, ok := index[t.To]
		if !ok {
			return "", domain.NewError(domain.CodeUnknownState, t.To)
		}
		adj[from] = append(adj[from], edge{to: to, symbol: t.Symbol})
	}

	finals := make([]int, 0, len(a.Final))
	for _, f := range a.Final {
		i, ok := index[f]
		if !ok {
			return "", domain.NewError(domain.CodeUnknownState, f)
		}
		finals = append(finals, i)
	}
	slices.Sort(finals)

	e := &eliminator{ctx: ctx, adj: adj, maxLength: s.maxLength, memo: make(table)}

	parts := make([]string, 0, len(finals))
	for _, f := range finals {
		expr, err := e.R(0, f, n-1)
		if err != nil {
			return "", err
		}
		if expr != "" {
			parts = append(parts, expr)
		}
	}

	result := strings.Join(parts, Alternator)
	if result == "" {
		result = EmptySet
	}

	s.logger.Debug("regex synthesized",
		"states", n,
		"transitions", len(transitions),
		"finals", len(finals),
		"subproblems", e.computed,
		"length", len(result),
	)
	return result, nil
}

// assignIndices gives the initial state index 0 and numbers the rest in
// list order.
func assignIndices(states []string, initial string) (map[string]int, error) {
	if !slices.Contains(states, initial) {
		return nil, domain.NewError(domain.CodeUnknownState, initial)
	}
	index := make(map[string]int, len(states))
	index[initial] = 0
	next := 1
	for _, st := range states {
		if _, seen := index[st]; seen {
			continue
		}
		index[st] = next
		next++
	}
	return index, nil
}

// table memoizes R(i, j, k). Entries exist only for computed subproblems,
// so an aborted run only pays for what it touched.
type table map[subproblem]string

type subproblem struct {
	i, j, k int
}

type eliminator struct {
	ctx       context.Context
	adj       [][]edge
	maxLength int
	memo      table
	computed  int
}

// R returns the expression for words leading from i to j through
// intermediate states with index at most k.
func (e *eliminator) R(i, j, k int) (string, error) {
	key := subproblem{i, j, k}
	if expr, ok := e.memo[key]; ok {
		return expr, nil
	}

	var (
		expr string
		err  error
	)
	if k == -1 {
		expr = e.direct(i, j)
	} else {
		expr, err = e.through(i, j, k)
		if err != nil {
			return "", err
		}
	}

	if e.maxLength > 0 && len(expr) > e.maxLength {
		return "", e.tooLong(len(expr), i, j, k)
	}

	e.memo[key] = expr
	e.computed++
	return expr, nil
}

func (e *eliminator) tooLong(size, i, j, k int) error {
	return fmt.Errorf("%w: %d bytes at R(%d,%d,%d), limit %d", ErrTooLong, size, i, j, k, e.maxLength)
}

func (e *eliminator) direct(i, j int) string {
	var labels []string
	for _, ed := range e.adj[i] {
		if ed.to == j {
			labels = append(labels, ed.symbol)
		}
	}
	if i == j {
		labels = append(labels, Empty)
	}
	if len(labels) == 0 {
		return EmptySet
	}
	return strings.Join(labels, Alternator)
}

func (e *eliminator) through(i, j, k int) (string, error) {
	var parts [4]string
	for idx, pair := range [4][2]int{{i, k}, {k, k}, {k, j}, {i, j}} {
		p, err := e.R(pair[0], pair[1], k-1)
		if err != nil {
			return "", err
		}
		parts[idx] = p
	}
	if err := e.ctx.Err(); err != nil {
		return "", err
	}

	size := len(parts[0]) + len(parts[1]) + len(parts[2]) + len(parts[3]) + 10
	if e.maxLength > 0 && size > e.maxLength {
		return "", e.tooLong(size, i, j, k)
	}

	var sb strings.Builder
	sb.Grow(size)
	sb.WriteByte('(')
	sb.WriteString(parts[0])
	sb.WriteString(")(")
	sb.WriteString(parts[1])
	sb.WriteString(")*(")
	sb.WriteString(parts[2])
	sb.WriteString(")|(")
	sb.WriteString(parts[3])
	sb.WriteByte(')')
	return sb.String(), nil
}
