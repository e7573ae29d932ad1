package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/DOCtorActoAntohich/fsa/internal/presentation/graph"
	"github.com/DOCtorActoAntohich/fsa/pkg/adapters/file"
)

// GraphOptions configures the graph command.
type GraphOptions struct {
	Input  string
	Output string
	Format string // "mermaid" or "dot"
	Stdout io.Writer
}

// RenderGraph loads a description and writes its diagram.
func RenderGraph(ctx context.Context, opts GraphOptions) error {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}

	a, err := file.NewLoader("").Load(ctx, opts.Input)
	if err != nil {
		return err
	}

	var out string
	switch opts.Format {
	case "", "mermaid":
		out = graph.GenerateMermaid(a, graph.NewOverlay(a))
	case "dot":
		out = graph.GenerateDOT(a, graph.NewOverlay(a))
	default:
		return fmt.Errorf("unknown graph format %q (expected mermaid or dot)", opts.Format)
	}
	return writeOutput(opts.Output, opts.Stdout, []byte(out))
}
