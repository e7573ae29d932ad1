package fsa_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DOCtorActoAntohich/fsa"
	"github.com/DOCtorActoAntohich/fsa/pkg/adapters/memory"
	"github.com/DOCtorActoAntohich/fsa/pkg/domain"
	"github.com/DOCtorActoAntohich/fsa/pkg/dsl"
	"github.com/DOCtorActoAntohich/fsa/pkg/regex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func singleStep() *domain.Automaton {
	return dsl.New().States("s1", "s2").Alphabet("a").Initial("s1").Final("s2").
		On("s1", "a", "s2").Build()
}

func TestEngine_ValidateNondeterministicIsWarning(t *testing.T) {
	a := dsl.New().States("s1", "s2").Alphabet("a").Initial("s1").Final("s2").
		On("s1", "a", "s1").On("s1", "a", "s2").Build()

	eng := fsa.New()
	outcome := eng.Validate(context.Background(), a)
	require.True(t, outcome.OK())
	assert.True(t, outcome.HasWarning(domain.WarnNondeterministic))

	_, err := eng.Synthesize(context.Background(), a)
	assert.ErrorIs(t, err, domain.ErrNondeterministic)
}

func TestEngine_SynthesizeReportsValidationError(t *testing.T) {
	a := dsl.New().States("s1", "s2").Alphabet("a").Initial("s1").Final("s2").
		On("s1", "b", "s2").Build()

	_, err := fsa.New().Synthesize(context.Background(), a)

	var de *domain.Error
	require.True(t, errors.As(err, &de))
	assert.Equal(t, domain.CodeUnknownSymbol, de.Code)
	assert.Equal(t, "E3: A transition 'b' is not represented in the alphabet", de.Error())
}

func TestEngine_SynthesizeMatchesSynthesizer(t *testing.T) {
	a := singleStep()

	want, err := regex.Synthesize(a)
	require.NoError(t, err)

	got, err := fsa.New().Synthesize(context.Background(), a)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestEngine_Cache(t *testing.T) {
	cache := memory.NewCache()
	var events []*domain.SynthesisEvent
	eng := fsa.New(
		fsa.WithCache(cache, time.Minute),
		fsa.WithLifecycleHooks(domain.LifecycleHooks{
			OnSynthesized: func(_ context.Context, e *domain.SynthesisEvent) {
				events = append(events, e)
			},
		}),
	)
	ctx := context.Background()

	first, err := eng.Synthesize(ctx, singleStep())
	require.NoError(t, err)
	second, err := eng.Synthesize(ctx, singleStep())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.Len())
	require.Len(t, events, 2)
	assert.False(t, events[0].Cached)
	assert.True(t, events[1].Cached)
	assert.Equal(t, domain.EventSynthesized, events[1].Type)
	assert.Equal(t, singleStep().Fingerprint(), events[1].Fingerprint)
}

func TestEngine_MaxLength(t *testing.T) {
	_, err := fsa.New(fsa.WithMaxLength(10)).Synthesize(context.Background(), singleStep())
	assert.ErrorIs(t, err, regex.ErrTooLong)
}

func TestEngine_Hooks(t *testing.T) {
	var validated []domain.Outcome
	var refused []domain.Code
	eng := fsa.New(fsa.WithLifecycleHooks(domain.LifecycleHooks{
		OnValidated: func(_ context.Context, e *domain.ValidationEvent) {
			validated = append(validated, e.Outcome)
		},
		OnSynthesized: func(_ context.Context, e *domain.SynthesisEvent) {
			refused = append(refused, e.Code)
		},
	}))

	undefined := dsl.New().States("s1").Alphabet("a").Build()
	_, err := eng.Synthesize(context.Background(), undefined)
	assert.ErrorIs(t, err, domain.ErrUndefinedInitial)

	require.Len(t, validated, 1)
	assert.Equal(t, domain.CodeUndefinedInitial, validated[0].Err.Code)
	assert.Equal(t, []domain.Code{domain.CodeUndefinedInitial}, refused)
}

func TestEngine_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fsa.New().Synthesize(ctx, singleStep())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEngine_DeadlineStopsSynthesis(t *testing.T) {
	states := make([]string, 16)
	for i := range states {
		states[i] = fmt.Sprintf("q%d", i)
	}
	b := dsl.New().States(states...).Alphabet("a", "b").Initial("q0").Final(states...)
	for i, st := range states {
		b.On(st, "a", states[(i+1)%len(states)])
		b.On(st, "b", states[(i*3+1)%len(states)])
	}

	var failed error
	eng := fsa.New(fsa.WithLifecycleHooks(domain.LifecycleHooks{
		OnSynthesized: func(_ context.Context, e *domain.SynthesisEvent) {
			failed = e.Err
		},
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := eng.Synthesize(ctx, b.Build())

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.ErrorIs(t, failed, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 2*time.Second)
}
