package runner

import (
	"fmt"
	"io"
	"strings"
)

// TextHandler renders reports in the plain-text layout:
//
//	Error:
//	E1: A state 's9' is not in the set of states
//
// or, for a valid automaton,
//
//	FSA is incomplete
//	Warning:
//	W1: Accepting state is not defined
//
// or the bare regular expression.
type TextHandler struct {
	Styler   Styler
	Renderer ContentRenderer
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithTextHandlerStyler decorates lines, e.g. with colours.
func WithTextHandlerStyler(s Styler) TextHandlerOption {
	return func(h *TextHandler) {
		if s != nil {
			h.Styler = s
		}
	}
}

// WithTextHandlerRenderer switches to a markdown report passed through renderer.
func WithTextHandlerRenderer(renderer ContentRenderer) TextHandlerOption {
	return func(h *TextHandler) {
		h.Renderer = renderer
	}
}

// NewTextHandler creates a handler for plain-text reports.
func NewTextHandler(opts ...TextHandlerOption) *TextHandler {
	h := &TextHandler{Styler: plainStyler{}}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *TextHandler) Write(w io.Writer, r Report) error {
	if h.Renderer != nil {
		out, err := h.Renderer(Markdown(r))
		if err != nil {
			return fmt.Errorf("failed to render report: %w", err)
		}
		_, err = io.WriteString(w, out)
		return err
	}
	_, err := io.WriteString(w, h.Format(r))
	return err
}

// Format returns the text report without writing it.
func (h *TextHandler) Format(r Report) string {
	var sb strings.Builder
	switch {
	case !r.OK():
		sb.WriteString(h.Styler.Error("Error:") + "\n")
		sb.WriteString(h.Styler.Error(r.Error) + "\n")
	case r.Mode == ModeRegex:
		sb.WriteString(r.Regex + "\n")
	default:
		sb.WriteString(h.Styler.Success(completeness(r)) + "\n")
		if len(r.Warnings) > 0 {
			sb.WriteString(h.Styler.Warning("Warning:") + "\n")
			for _, warning := range r.Warnings {
				sb.WriteString(h.Styler.Warning(warning) + "\n")
			}
		}
	}
	return sb.String()
}

// Markdown renders the report as a small markdown document.
func Markdown(r Report) string {
	var sb strings.Builder
	sb.WriteString("# FSA " + r.Mode.String() + "\n\n")
	switch {
	case !r.OK():
		sb.WriteString("**Error** `" + r.Error + "`\n")
	case r.Mode == ModeRegex:
		sb.WriteString("```\n" + r.Regex + "\n```\n")
	default:
		sb.WriteString(completeness(r) + "\n")
		if len(r.Warnings) > 0 {
			sb.WriteString("\n## Warnings\n\n")
			for _, warning := range r.Warnings {
				sb.WriteString("- " + warning + "\n")
			}
		}
	}
	return sb.String()
}

func completeness(r Report) string {
	if r.Complete != nil && *r.Complete {
		return "FSA is complete"
	}
	return "FSA is incomplete"
}
