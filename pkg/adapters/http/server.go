package http

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/DOCtorActoAntohich/fsa"
	"github.com/DOCtorActoAntohich/fsa/internal/presentation/graph"
	"github.com/DOCtorActoAntohich/fsa/pkg/adapters/file"
	"github.com/DOCtorActoAntohich/fsa/pkg/domain"
	"github.com/DOCtorActoAntohich/fsa/pkg/runner"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/go-chi/chi/v5"
)

//go:embed openapi.yaml
var rawSpec []byte

// MaxBodyBytes bounds the size of a description accepted over HTTP.
const MaxBodyBytes = 1 << 20

// Server serves the engine over HTTP.
type Server struct {
	Engine  *fsa.Engine
	Logger  *slog.Logger
	Metrics http.Handler
	Timeout time.Duration

	doc    *openapi3.T
	router routers.Router
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// WithMetrics mounts h at GET /metrics.
func WithMetrics(h http.Handler) Option {
	return func(s *Server) {
		s.Metrics = h
	}
}

// WithRequestTimeout bounds the time spent on each API request. A request
// that runs out of time is answered with 503.
func WithRequestTimeout(d time.Duration) Option {
	return func(s *Server) {
		s.Timeout = d
	}
}

// LoadSpec parses and validates the embedded OpenAPI document.
func LoadSpec(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(rawSpec)
	if err != nil {
		return nil, fmt.Errorf("failed to load openapi spec: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid openapi spec: %w", err)
	}
	return doc, nil
}

// NewHandler creates a new HTTP handler for the engine.
// Requests to the API routes are validated against the embedded OpenAPI
// document before they reach the engine.
func NewHandler(engine *fsa.Engine, opts ...Option) (http.Handler, error) {
	doc, err := LoadSpec(context.Background())
	if err != nil {
		return nil, err
	}
	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to build openapi router: %w", err)
	}

	s := &Server{Engine: engine, doc: doc, router: router}
	for _, opt := range opts {
		opt(s)
	}
	if s.Engine == nil {
		s.Engine = fsa.New()
	}
	if s.Logger == nil {
		s.Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	r := chi.NewRouter()

	r.Group(func(api chi.Router) {
		api.Use(s.withTimeout, limitBody, s.validateRequest)
		api.Post("/validate", s.evaluate(runner.ModeValidate))
		api.Post("/regex", s.evaluate(runner.ModeRegex))
		api.Post("/graph", s.Graph)
		api.Get("/health", s.GetHealth)
		api.Get("/info", s.GetInfo)
	})

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(rawSpec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})
	if s.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.Metrics)
	}

	return enableCORS(r), nil
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) withTimeout(next http.Handler) http.Handler {
	if s.Timeout <= 0 {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), s.Timeout)
		defer cancel()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func limitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) validateRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route, params, err := s.router.FindRoute(r)
		if err != nil {
			status := http.StatusNotFound
			if errors.Is(err, routers.ErrMethodNotAllowed) {
				status = http.StatusMethodNotAllowed
			}
			writeProblem(w, status, err.Error())
			return
		}

		input := &openapi3filter.RequestValidationInput{
			Request:    r,
			PathParams: params,
			Route:      route,
		}
		if err := openapi3filter.ValidateRequest(r.Context(), input); err != nil {
			s.Logger.Warn("request rejected", "path", r.URL.Path, "error", err)
			status := http.StatusBadRequest
			var mbe *http.MaxBytesError
			if errors.As(err, &mbe) {
				status = http.StatusRequestEntityTooLarge
			}
			writeProblem(w, status, err.Error())
			return
		}
		next.ServeHTTP(w, r)
	})
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>FSA API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

// evaluate handles POST /validate and POST /regex. Problems with the
// automaton are part of the 200 report; aborted synthesis is a 422.
func (s *Server) evaluate(mode runner.Mode) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rn := runner.New(
			runner.WithEngine(s.Engine),
			runner.WithMode(mode),
			runner.WithInputExtension(extension(r)),
			runner.WithLogger(s.Logger),
		)

		report, err := rn.Evaluate(r.Context(), r.Body)
		if err != nil {
			s.Logger.Error("evaluation failed", "mode", mode, "error", err)
			writeProblem(w, errorStatus(err), err.Error())
			return
		}
		writeJSON(w, http.StatusOK, report)
	}
}

// Graph handles the POST /graph request.
func (s *Server) Graph(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		writeProblem(w, errorStatus(err), err.Error())
		return
	}

	a, err := file.Decode(data, extension(r))
	if err != nil {
		if errors.Is(err, domain.ErrMalformed) {
			writeJSON(w, http.StatusOK, runner.Malformed(runner.ModeValidate))
			return
		}
		writeProblem(w, http.StatusBadRequest, err.Error())
		return
	}

	var out string
	switch r.URL.Query().Get("format") {
	case "dot":
		out = graph.GenerateDOT(a, graph.NewOverlay(a))
	default:
		out = graph.GenerateMermaid(a, graph.NewOverlay(a))
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, out)
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if s.doc.Info != nil {
		apiVersion = s.doc.Info.Version
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"app":         "fsa-http",
		"version":     strings.TrimSpace(fsa.Version),
		"api_version": apiVersion,
	})
}

// -- Helpers --

// extension maps the request content type onto the loader's syntax switch.
func extension(r *http.Request) string {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err == nil && mediaType == "application/json" {
		return ".json"
	}
	return ".txt"
}

func errorStatus(err error) int {
	var mbe *http.MaxBytesError
	switch {
	case errors.As(err, &mbe):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusUnprocessableEntity
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}

func writeProblem(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"status": "error", "error": msg})
}
