package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/DOCtorActoAntohich/fsa"
	"github.com/DOCtorActoAntohich/fsa/internal/presentation/graph"
	"github.com/DOCtorActoAntohich/fsa/pkg/adapters/file"
	"github.com/DOCtorActoAntohich/fsa/pkg/runner"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// GrammarURI names the resource describing the text description format.
const GrammarURI = "fsa://grammar"

const grammar = `states=[s1,s2,...]
alpha=[a1,a2,...]
init.st=[s]
fin.st=[s1,s2,...]
trans=[s1>a>s2,...]
`

// DescriptionArgs are the arguments shared by every tool.
type DescriptionArgs struct {
	Description string `json:"description"`
	Syntax      string `json:"syntax,omitempty"`
}

// Server wraps the engine and exposes it as an MCP Server.
type Server struct {
	engine    *fsa.Engine
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine *fsa.Engine, logger *slog.Logger) *Server {
	if engine == nil {
		engine = fsa.New()
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		engine:    engine,
		logger:    logger,
		mcpServer: server.NewMCPServer("fsa-mcp", strings.TrimSpace(fsa.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops it when
// ctx is cancelled.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func descriptionOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("description", mcp.Required(),
			mcp.Description("The automaton: the five-line text description (see "+GrammarURI+"), or a JSON/YAML document")),
		mcp.WithString("syntax", mcp.Enum("text", "json", "yaml"),
			mcp.Description("Syntax of the description (default text)")),
	}
}

func (s *Server) registerTools() {
	// TOOL: validate_fsa
	validateTool := mcp.NewTool("validate_fsa", append([]mcp.ToolOption{
		mcp.WithDescription("Validate a finite-state automaton. Returns the first blocking error (E1-E5) or the warnings (W1-W3) and whether the automaton is complete."),
		mcp.WithOutputSchema[runner.Report](),
	}, descriptionOptions()...)...)
	s.mcpServer.AddTool(validateTool, mcp.NewStructuredToolHandler(s.handleValidate))

	// TOOL: fsa_to_regex
	regexTool := mcp.NewTool("fsa_to_regex", append([]mcp.ToolOption{
		mcp.WithDescription("Convert a deterministic finite-state automaton into a regular expression using Kleene's algorithm. 'eps' is the empty word and '{}' the empty language."),
		mcp.WithOutputSchema[runner.Report](),
	}, descriptionOptions()...)...)
	s.mcpServer.AddTool(regexTool, mcp.NewStructuredToolHandler(s.handleRegex))

	// TOOL: fsa_graph
	graphTool := mcp.NewTool("fsa_graph", append([]mcp.ToolOption{
		mcp.WithDescription("Render the automaton as a Mermaid or Graphviz DOT diagram."),
		mcp.WithString("format", mcp.Enum("mermaid", "dot"), mcp.Description("Diagram language (default mermaid)")),
	}, descriptionOptions()...)...)
	s.mcpServer.AddTool(graphTool, s.handleGraph)
}

// Handler methods for structured tools

func (s *Server) handleValidate(ctx context.Context, request mcp.CallToolRequest, args DescriptionArgs) (runner.Report, error) {
	return s.evaluate(ctx, runner.ModeValidate, args)
}

func (s *Server) handleRegex(ctx context.Context, request mcp.CallToolRequest, args DescriptionArgs) (runner.Report, error) {
	return s.evaluate(ctx, runner.ModeRegex, args)
}

func (s *Server) evaluate(ctx context.Context, mode runner.Mode, args DescriptionArgs) (runner.Report, error) {
	rn := runner.New(
		runner.WithEngine(s.engine),
		runner.WithMode(mode),
		runner.WithInputExtension(extension(args.Syntax)),
		runner.WithLogger(s.logger),
	)
	report, err := rn.Evaluate(ctx, strings.NewReader(args.Description))
	if err != nil {
		s.logger.Warn("MCP: evaluation failed", "mode", mode, "error", err)
		return runner.Report{}, fmt.Errorf("%s failed: %w", mode, err)
	}
	return report, nil
}

func (s *Server) handleGraph(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	description, err := request.RequireString("description")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	a, err := file.Decode([]byte(description), extension(request.GetString("syntax", "")))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if request.GetString("format", "mermaid") == "dot" {
		return mcp.NewToolResultText(graph.GenerateDOT(a, graph.NewOverlay(a))), nil
	}
	return mcp.NewToolResultText(graph.GenerateMermaid(a, graph.NewOverlay(a))), nil
}

func (s *Server) registerResources() {
	// EXPOSE: fsa://grammar
	s.mcpServer.AddResource(mcp.NewResource(GrammarURI, "Text description grammar",
		mcp.WithMIMEType("text/plain"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      GrammarURI,
				MIMEType: "text/plain",
				Text:     grammar,
			},
		}, nil
	})
}

func extension(syntax string) string {
	switch strings.ToLower(syntax) {
	case "json":
		return ".json"
	case "yaml":
		return ".yaml"
	}
	return ".txt"
}
