package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boekhouding/internal/invoice"
)

func formRequest(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/facturen/invoer", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestParseInputSource(t *testing.T) {
	tests := []struct {
		name   string
		bron   string
		header string
		want   InputSource
		wantOK bool
	}{
		{name: "form field", bron: "regel-2-prijs", want: InputSource{Row: 2, Role: invoice.RolePrice}, wantOK: true},
		{name: "header fallback", header: "regel-0-btw", want: InputSource{Row: 0, Role: invoice.RoleTax}, wantOK: true},
		{name: "form wins", bron: "regel-1-aantal", header: "regel-9-btw", want: InputSource{Row: 1, Role: invoice.RoleQuantity}, wantOK: true},
		{name: "bad form falls back", bron: "knop", header: "regel-3-omschrijving", want: InputSource{Row: 3, Role: invoice.RoleDescription}, wantOK: true},
		{name: "container itself", header: "factuur-regels"},
		{name: "nothing"},
		{name: "line total", bron: "regel-1-totaal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := url.Values{}
			if tt.bron != "" {
				values.Set(SourceField, tt.bron)
			}
			req := formRequest(values)
			if tt.header != "" {
				req.Header.Set("HX-Trigger", tt.header)
			}
			require.Nil(t, ParseFormOrFail(req))

			got, ok := ParseInputSource(req)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseFormOrFailSanitizes(t *testing.T) {
	req := formRequest(url.Values{"omschrijving[]": {"  Advies\x00\x07 ", "Regel\ttwee"}})
	require.Nil(t, ParseFormOrFail(req))
	assert.Equal(t, []string{"Advies", "Regel\ttwee"}, req.PostForm["omschrijving[]"])
}

func TestParseFormOrFailRejectsBadBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/facturen/invoer", strings.NewReader("%zz"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp := ParseFormOrFail(req)
	require.NotNil(t, resp)
	w := httptest.NewRecorder()
	resp.Write(w)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestParseRowIndex(t *testing.T) {
	for param, want := range map[string]struct {
		index int
		ok    bool
	}{
		"0":   {0, true},
		"12":  {12, true},
		"-1":  {0, false},
		"abc": {0, false},
		"":    {0, false},
	} {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("index", param)
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

		index, ok := ParseRowIndex(req)
		assert.Equal(t, want.ok, ok, param)
		assert.Equal(t, want.index, index, param)
	}
}

func TestTaxOptions(t *testing.T) {
	opts := taxOptions("9")
	require.Len(t, opts, 3)
	assert.False(t, opts[0].Selected)
	assert.True(t, opts[1].Selected)

	opts = taxOptions("6")
	require.Len(t, opts, 4)
	assert.Equal(t, optionView{Value: "6", Label: "6%", Selected: true}, opts[3])

	opts = taxOptions("")
	for _, o := range opts {
		assert.False(t, o.Selected)
	}
}
