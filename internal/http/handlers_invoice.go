package http

import (
	"net/http"

	"boekhouding/internal/core"
	"boekhouding/internal/invoice"
	"boekhouding/internal/log"
	"boekhouding/internal/page"
)

const newInvoicePath = "/facturen/nieuw"

// handleNewInvoice opens a fresh invoice page with its own session.
func (s *Server) handleNewInvoice(w http.ResponseWriter, r *http.Request) {
	p := page.NewInvoice()
	p.Ready(r.Context(), s.loader)
	sess := s.sessions.create(p)

	body, err := s.render(r, part{"factuur.html", newInvoicePageView(p.Form)})
	if err != nil {
		InternalServerError("Pagina kon niet worden weergegeven").Write(w)
		return
	}
	http.SetCookie(w, s.sessions.cookie(r, sess))
	NewHTMXResponse().BodyHTML(body).Write(w)
}

// requireSession resolves the invoice session. Without one the browser is
// sent to a fresh invoice page and ok is false.
func (s *Server) requireSession(w http.ResponseWriter, r *http.Request) (*session, bool) {
	if sess, ok := s.sessions.lookup(r); ok {
		return sess, true
	}
	log.FromContext(r.Context()).WithComponent(log.ComponentSession).
		WarnContext(r.Context(), "Invoice session missing or expired", log.FieldPath, r.URL.Path)
	if isHTMX(r) {
		NewHTMXResponse().Redirect(newInvoicePath).Write(w)
	} else {
		http.Redirect(w, r, newInvoicePath, http.StatusSeeOther)
	}
	return nil, false
}

// handleAddRow appends a line cloned from the row template.
func (s *Server) handleAddRow(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.requireSession(w, r)
	if !ok {
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	form := sess.page.Form
	row, added := form.AddRow()
	if !added {
		NoContent().Write(w)
		return
	}
	totals := form.Totals()

	body, err := s.render(r,
		part{"regel", newRowView(row)},
		part{"totalen", newTotalsView(form, true)},
	)
	if err != nil {
		InternalServerError("Regel kon niet worden toegevoegd").Write(w)
		return
	}
	logFor(r).LogRowChange(r.Context(), log.OpAddRow, sess.id, row.Index, form.Len(), core.FormatAmount(totals.GrandTotal))
	NewHTMXResponse().
		TriggerRowAdded(row.Index, form.Len()).
		TriggerTotalsUpdated(totals).
		BodyHTML(body).
		Write(w)
}

// handleRemoveRow removes one line. The last line stays: 204 leaves it on
// the page.
func (s *Server) handleRemoveRow(w http.ResponseWriter, r *http.Request) {
	index, ok := ParseRowIndex(r)
	if !ok {
		BadRequestError("Ongeldige regel").Write(w)
		return
	}
	sess, ok := s.requireSession(w, r)
	if !ok {
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	form := sess.page.Form
	if !form.RemoveRow(index) {
		NoContent().Write(w)
		return
	}
	totals := form.Totals()

	// the row itself is swapped for the empty main content
	body, err := s.render(r, part{"totalen", newTotalsView(form, true)})
	if err != nil {
		InternalServerError("Regel kon niet worden verwijderd").Write(w)
		return
	}
	logFor(r).LogRowChange(r.Context(), log.OpRemoveRow, sess.id, index, form.Len(), core.FormatAmount(totals.GrandTotal))
	NewHTMXResponse().
		TriggerRowRemoved(index, form.Len()).
		TriggerTotalsUpdated(totals).
		BodyHTML(body).
		Write(w)
}

// handleInput is the delegated input listener of the line container. The
// whole form is submitted; only quantity, price and tax inputs lead to a
// recalculation.
func (s *Server) handleInput(w http.ResponseWriter, r *http.Request) {
	if resp := ParseFormOrFail(r); resp != nil {
		resp.Write(w)
		return
	}
	src, ok := ParseInputSource(r)
	if !ok {
		NoContent().Write(w)
		return
	}

	sess, found := s.sessions.lookup(r)
	if !found {
		s.inputWithoutSession(w, r, src)
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	form := sess.page.Form
	form.ApplySubmission(r.PostForm)
	row, ok := form.Row(src.Row)
	if !ok {
		NoContent().Write(w)
		return
	}
	value, _ := row.Value(src.Role)
	if !form.Dispatch(invoice.InputEvent{Row: src.Row, Role: src.Role, Value: value}) {
		NoContent().Write(w)
		return
	}

	body, err := s.render(r,
		part{"regeltotalen", lineTotalsView(form)},
		part{"totalen", newTotalsView(form, true)},
	)
	if err != nil {
		InternalServerError("Totalen konden niet worden bijgewerkt").Write(w)
		return
	}
	totals := form.Totals()
	log.FromContext(r.Context()).WithComponent(log.ComponentInvoice).DebugContext(r.Context(), "Invoice totals recalculated",
		log.NewFields().
			WithOperation(log.OpInput).
			WithSessionID(sess.id).
			With(log.FieldRowIndex, src.Row).
			With(log.FieldGrandTotal, core.FormatAmount(totals.GrandTotal)).
			ToSlice()...)
	NewHTMXResponse().
		TriggerTotalsUpdated(totals).
		BodyHTML(body).
		Write(w)
}

// inputWithoutSession still answers with totals computed from the
// submitted form, so an expired session does not freeze the page.
func (s *Server) inputWithoutSession(w http.ResponseWriter, r *http.Request, src InputSource) {
	if !src.Role.Recalculates() {
		NoContent().Write(w)
		return
	}
	totals := invoice.SubmissionTotals(r.PostForm)
	body, err := s.render(r, part{"totalen", totalsFromSubmission(totals)})
	if err != nil {
		InternalServerError("Totalen konden niet worden bijgewerkt").Write(w)
		return
	}
	NewHTMXResponse().
		TriggerTotalsUpdated(totals).
		TriggerNotification(NotificationWarning, "Sessie verlopen, herlaad de pagina om regels te wijzigen.", 5000).
		BodyHTML(body).
		Write(w)
}
