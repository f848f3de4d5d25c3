// Package http provides HTTP server and handler implementations.
//
// This file implements utilities for parsing and validating HTTP request data.

package http

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"boekhouding/internal/invoice"
)

// SourceField is the form field app.js fills with the id of the input that
// raised the event; htmx itself only reports the element carrying hx-post.
const SourceField = "bron"

// InputSource identifies the row input behind a delegated input request.
type InputSource struct {
	Row  int
	Role invoice.Role
}

// ParseInputSource reads the event source from the form, falling back to
// the HX-Trigger header. ok is false when neither names a row input.
func ParseInputSource(r *http.Request) (InputSource, bool) {
	for _, id := range []string{r.PostForm.Get(SourceField), r.Header.Get("HX-Trigger")} {
		if index, role, ok := invoice.ParseFieldID(strings.TrimSpace(id)); ok {
			return InputSource{Row: index, Role: role}, true
		}
	}
	return InputSource{}, false
}

// ParseRowIndex reads the {index} route parameter.
func ParseRowIndex(r *http.Request) (int, bool) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || index < 0 {
		return 0, false
	}
	return index, true
}

// ParseFormOrFail parses the request form and returns an error response on
// failure, nil on success. Submitted values are sanitized in place.
func ParseFormOrFail(r *http.Request) *HTMXResponseBuilder {
	if err := r.ParseForm(); err != nil {
		return BadRequestError("Ongeldig verzoek")
	}
	sanitizeValues(r.PostForm)
	return nil
}

func sanitizeValues(values url.Values) {
	for key, vs := range values {
		for i, v := range vs {
			vs[i] = sanitizeInput(v)
		}
		values[key] = vs
	}
}
