package http

import (
	"bytes"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"boekhouding/internal/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// sanitizeInput removes control characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != '\t' && r != '\n' && r != '\r' {
			return -1
		}
		return r
	}, s)
}

// isHTMX reports whether the request was issued by htmx.
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// part is one template execution of a response.
type part struct {
	name string
	data any
}

// render executes the parts into one buffer, so a failing template never
// leaves a half-written response.
func (s *Server) render(r *http.Request, parts ...part) ([]byte, error) {
	if s.templates == nil {
		logFor(r).LogError(r.Context(), "Templates not loaded", errTemplatesNotLoaded, log.ComponentTemplate, log.OpRender, nil)
		return nil, errTemplatesNotLoaded
	}
	var buf bytes.Buffer
	for _, p := range parts {
		if err := s.templates.ExecuteTemplate(&buf, p.name, p.data); err != nil {
			logFor(r).LogError(r.Context(), "Template execution failed", err, log.ComponentTemplate, log.OpRender,
				log.NewFields().With("template", p.name))
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// logFor returns the structured logger of the request, tagged with its id.
func logFor(r *http.Request) *log.StructuredLogger {
	return log.NewStructuredLogger(log.FromContext(r.Context()))
}

// writeJSON writes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
