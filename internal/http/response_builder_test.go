package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boekhouding/internal/core"
)

func TestHTMXResponseBuilder_Basic(t *testing.T) {
	w := httptest.NewRecorder()

	NewHTMXResponse().
		Status(http.StatusOK).
		Body([]byte("test")).
		Write(w)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "test", w.Body.String())
	assert.Empty(t, w.Header().Get("HX-Trigger"))
}

func TestHTMXResponseBuilder_Triggers(t *testing.T) {
	w := httptest.NewRecorder()
	totals := core.Totals{}.Add(core.ComputeLine(decimal.NewFromInt(2), decimal.NewFromInt(500), decimal.NewFromInt(21)))

	NewHTMXResponse().
		TriggerRowAdded(3, 4).
		TriggerTotalsUpdated(totals).
		TriggerErrorNotification("Mislukt").
		Write(w)

	trigger := w.Header().Get("HX-Trigger")
	require.NotEmpty(t, trigger)
	for _, part := range []string{
		`"regel:toegevoegd"`,
		`"index":3`,
		`"regels":4`,
		`"totalen:bijgewerkt"`,
		`"totaal":"€ 1,210.00"`,
		`"subtotaal":"€ 1,000.00"`,
		`"show-notification"`,
		`"type":"error"`,
	} {
		assert.Contains(t, trigger, part)
	}
}

func TestHTMXResponseBuilder_RedirectAndHeaders(t *testing.T) {
	w := httptest.NewRecorder()

	NewHTMXResponse().
		Redirect("/facturen/nieuw").
		Header("X-Custom", "value").
		Status(http.StatusCreated).
		Write(w)

	assert.Equal(t, "/facturen/nieuw", w.Header().Get("HX-Redirect"))
	assert.Equal(t, "value", w.Header().Get("X-Custom"))
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestNoContentDropsBody(t *testing.T) {
	w := httptest.NewRecorder()
	NoContent().BodyHTML([]byte("<p>x</p>")).Write(w)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestErrorResponse(t *testing.T) {
	tests := []struct {
		name       string
		builder    *HTMXResponseBuilder
		wantStatus int
		wantBody   string
	}{
		{"bad request", BadRequestError("Ongeldige regel"), http.StatusBadRequest, `<div class="fout">Ongeldige regel</div>`},
		{"internal", InternalServerError("Kapot"), http.StatusInternalServerError, `<div class="fout">Kapot</div>`},
		{"not found", NotFoundError("Weg"), http.StatusNotFound, `<div class="fout">Weg</div>`},
		{"escaped", ErrorResponse(http.StatusTeapot, "<b>"), http.StatusTeapot, `<div class="fout">&lt;b&gt;</div>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			tt.builder.Write(w)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantBody, w.Body.String())
			assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
		})
	}
}
