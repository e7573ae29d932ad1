package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/DOCtorActoAntohich/fsa"
	"github.com/DOCtorActoAntohich/fsa/pkg/adapters/file"
	"github.com/DOCtorActoAntohich/fsa/pkg/domain"
)

// Runner reads one description, evaluates it and writes one report.
type Runner struct {
	Engine   *fsa.Engine
	Mode     Mode
	Handler  Handler
	InputExt string
	Logger   *slog.Logger
}

// New creates a Runner. Without options it validates text descriptions with
// a default engine and writes plain-text reports.
func New(opts ...Option) *Runner {
	r := &Runner{}
	for _, opt := range opts {
		opt(r)
	}
	if r.Engine == nil {
		r.Engine = fsa.New()
	}
	if r.Handler == nil {
		r.Handler = NewTextHandler()
	}
	if r.Logger == nil {
		r.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r
}

// Run reads src, evaluates it and writes the report to dst.
//
// Problems with the automaton itself (E1-E6) are part of the report and do
// not produce an error. Errors are returned for I/O failures, cancellation
// and synthesis aborts such as regex.ErrTooLong.
func (r *Runner) Run(ctx context.Context, src io.Reader, dst io.Writer) error {
	report, err := r.Evaluate(ctx, src)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := r.Handler.Write(dst, report); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// Evaluate produces the report for src without rendering it.
func (r *Runner) Evaluate(ctx context.Context, src io.Reader) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	data, err := io.ReadAll(src)
	if err != nil {
		return Report{}, fmt.Errorf("failed to read input: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	a, err := file.Decode(data, r.InputExt)
	if err != nil {
		if errors.Is(err, domain.ErrMalformed) {
			r.Logger.Debug("input rejected", "mode", r.Mode, "err", err)
			return Malformed(r.Mode), nil
		}
		return Report{}, err
	}

	return r.EvaluateAutomaton(ctx, a)
}

// EvaluateAutomaton produces the report for an already decoded automaton.
func (r *Runner) EvaluateAutomaton(ctx context.Context, a *domain.Automaton) (Report, error) {
	if r.Mode == ModeValidate {
		return ValidationReport(r.Engine.Validate(ctx, a)), nil
	}

	expr, err := r.Engine.Synthesize(ctx, a)
	if err != nil {
		var de *domain.Error
		if errors.As(err, &de) {
			return Failure(ModeRegex, de), nil
		}
		return Report{}, err
	}
	return RegexReport(expr), nil
}
