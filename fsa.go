package fsa

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/DOCtorActoAntohich/fsa/internal/validator"
	"github.com/DOCtorActoAntohich/fsa/pkg/domain"
	"github.com/DOCtorActoAntohich/fsa/pkg/ports"
	"github.com/DOCtorActoAntohich/fsa/pkg/regex"
)

// Engine is the high-level entry point for the library.
// It chains validation and synthesis and adds optional caching and hooks.
type Engine struct {
	synth     *regex.Synthesizer
	cache     ports.ResultCache
	cacheTTL  time.Duration
	maxLength int
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithCache stores synthesized expressions in cache for ttl (0 = no expiry).
func WithCache(cache ports.ResultCache, ttl time.Duration) Option {
	return func(e *Engine) {
		e.cache = cache
		e.cacheTTL = ttl
	}
}

// WithMaxLength bounds the size of synthesized expressions (0 = unlimited).
func WithMaxLength(n int) Option {
	return func(e *Engine) {
		e.maxLength = n
	}
}

// New initializes a new Engine.
func New(opts ...Option) *Engine {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	eng.synth = regex.New(
		regex.WithMaxLength(eng.maxLength),
		regex.WithLogger(eng.logger),
	)
	return eng
}

// Validate classifies the automaton. Nondeterminism is only a warning (W3) here.
func (e *Engine) Validate(ctx context.Context, a *domain.Automaton) domain.Outcome {
	outcome := validator.Validate(a)

	if outcome.Err != nil {
		e.logger.Debug("validation failed", "code", outcome.Err.Code, "subject", outcome.Err.Subject)
	} else {
		e.logger.Debug("validation passed", "warnings", outcome.Warnings, "complete", outcome.Complete)
	}

	if e.hooks.OnValidated != nil {
		e.hooks.OnValidated(ctx, &domain.ValidationEvent{
			EventBase: domain.EventBase{
				Timestamp:   time.Now(),
				Type:        domain.EventValidated,
				Fingerprint: a.Fingerprint(),
			},
			Outcome: outcome,
			States:  len(a.States),
		})
	}
	return outcome
}

// Synthesize validates a and, when no blocking error is found and the
// automaton is deterministic, returns the regular expression of its language.
//
// Blocking findings are returned as *domain.Error: the first validation
// error, or E6 when the automaton is nondeterministic.
func (e *Engine) Synthesize(ctx context.Context, a *domain.Automaton) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if outcome := e.Validate(ctx, a); outcome.Err != nil {
		e.emitSynthesis(ctx, a, &domain.SynthesisEvent{Code: outcome.Err.Code, Err: outcome.Err})
		return "", outcome.Err
	}
	if !validator.IsDeterministic(a) {
		err := domain.NewError(domain.CodeNondeterministic, "")
		e.emitSynthesis(ctx, a, &domain.SynthesisEvent{Code: err.Code, Err: err})
		return "", err
	}

	key := strconv.FormatUint(a.Fingerprint(), 16)
	if expr, ok := e.cached(ctx, key); ok {
		e.emitSynthesis(ctx, a, &domain.SynthesisEvent{Length: len(expr), Cached: true})
		return expr, nil
	}

	start := time.Now()
	expr, err := e.synth.SynthesizeContext(ctx, a)
	elapsed := time.Since(start)
	if err != nil {
		ev := &domain.SynthesisEvent{Duration: elapsed, Err: err}
		if code := domain.CodeOf(err); code != "" {
			ev.Code = code
		}
		e.emitSynthesis(ctx, a, ev)
		return "", err
	}

	e.logger.Info("regex synthesized", "length", len(expr), "duration", elapsed)
	e.emitSynthesis(ctx, a, &domain.SynthesisEvent{Length: len(expr), Duration: elapsed})

	if e.cache != nil {
		if err := e.cache.Set(ctx, key, expr, e.cacheTTL); err != nil {
			e.logger.Warn("cache write failed", "key", key, "error", err)
		}
	}
	return expr, nil
}

func (e *Engine) cached(ctx context.Context, key string) (string, bool) {
	if e.cache == nil {
		return "", false
	}
	expr, err := e.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			e.logger.Warn("cache read failed", "key", key, "error", err)
		}
		return "", false
	}
	e.logger.Debug("cache hit", "key", key)
	return expr, true
}

func (e *Engine) emitSynthesis(ctx context.Context, a *domain.Automaton, ev *domain.SynthesisEvent) {
	if e.hooks.OnSynthesized == nil {
		return
	}
	ev.EventBase = domain.EventBase{
		Timestamp:   time.Now(),
		Type:        domain.EventSynthesized,
		Fingerprint: a.Fingerprint(),
	}
	e.hooks.OnSynthesized(ctx, ev)
}
