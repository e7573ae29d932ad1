package runner

import (
	"encoding/json"
	"io"
)

// JSONHandler emits each report as a single JSON line.
type JSONHandler struct {
	Indent bool
}

// NewJSONHandler creates a handler for JSON output.
func NewJSONHandler() *JSONHandler {
	return &JSONHandler{}
}

func (h *JSONHandler) Write(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	if h.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(r)
}
