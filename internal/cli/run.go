package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/DOCtorActoAntohich/fsa"
	"github.com/DOCtorActoAntohich/fsa/internal/presentation/tui"
	"github.com/DOCtorActoAntohich/fsa/pkg/adapters/file"
	"github.com/DOCtorActoAntohich/fsa/pkg/runner"
)

// Stdio is the name selecting standard input or output instead of a file.
const Stdio = "-"

// RunOptions contains the configuration of the validate and regex commands.
type RunOptions struct {
	Mode   runner.Mode
	Input  string
	Output string
	Format string // "text" or "json"
	Pretty bool   // markdown rendering on stdout

	Stdin  io.Reader
	Stdout io.Writer
	Logger *slog.Logger
}

// Execute evaluates one description and writes the report.
// Findings in the automaton are reported, not returned; errors mean the
// report could not be produced.
func Execute(ctx context.Context, engine *fsa.Engine, opts RunOptions) error {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	src, closeSrc, err := openInput(opts.Input, opts.Stdin)
	if err != nil {
		return err
	}
	defer closeSrc()

	handler, err := newHandler(opts)
	if err != nil {
		return err
	}

	r := runner.New(
		runner.WithEngine(engine),
		runner.WithMode(opts.Mode),
		runner.WithHandler(handler),
		runner.WithInputExtension(filepath.Ext(opts.Input)),
		runner.WithLogger(opts.Logger),
	)

	var buf bytes.Buffer
	if err := r.Run(ctx, src, &buf); err != nil {
		return err
	}

	opts.Logger.Info("report written", "mode", opts.Mode, "input", opts.Input, "output", opts.Output)
	return writeOutput(opts.Output, opts.Stdout, buf.Bytes())
}

func newHandler(opts RunOptions) (runner.Handler, error) {
	if opts.Format == "json" {
		return runner.NewJSONHandler(), nil
	}
	if opts.Output != Stdio {
		return runner.NewTextHandler(), nil
	}

	handlerOpts := []runner.TextHandlerOption{
		runner.WithTextHandlerStyler(tui.NewStyler(opts.Stdout)),
	}
	if opts.Pretty {
		render, err := tui.NewRenderer(80)
		if err != nil {
			return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
		}
		handlerOpts = append(handlerOpts, runner.WithTextHandlerRenderer(render))
	}
	return runner.NewTextHandler(handlerOpts...), nil
}

func openInput(name string, stdin io.Reader) (io.Reader, func() error, error) {
	if name == Stdio {
		return stdin, func() error { return nil }, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open input: %w", err)
	}
	return f, f.Close, nil
}

func writeOutput(name string, stdout io.Writer, data []byte) error {
	if name == Stdio {
		_, err := stdout.Write(data)
		return err
	}
	if err := file.WriteAtomic(name, data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
