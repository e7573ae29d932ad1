package runner

import (
	"log/slog"

	"github.com/DOCtorActoAntohich/fsa"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithEngine sets the engine used for validation and synthesis.
func WithEngine(engine *fsa.Engine) Option {
	return func(r *Runner) {
		r.Engine = engine
	}
}

// WithMode selects validation or regex synthesis.
func WithMode(mode Mode) Option {
	return func(r *Runner) {
		r.Mode = mode
	}
}

// WithHandler configures how reports are written.
func WithHandler(handler Handler) Option {
	return func(r *Runner) {
		r.Handler = handler
	}
}

// WithInputExtension selects the input syntax by file extension
// (".yaml", ".yml", ".json"; anything else is the text description).
func WithInputExtension(ext string) Option {
	return func(r *Runner) {
		r.InputExt = ext
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}
