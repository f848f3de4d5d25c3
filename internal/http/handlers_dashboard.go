package http

import (
	"net/http"

	"github.com/samber/lo"

	"boekhouding/internal/dashboard"
	"boekhouding/internal/page"
)

// handleDashboard renders the dashboard shell; the charts arrive through
// the /ui/grafieken partial once the page has loaded.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	body, err := s.render(r, part{"dashboard.html", struct {
		RevenueAnchor  string
		CashflowAnchor string
	}{dashboard.RevenueAnchor, dashboard.CashflowAnchor}})
	if err != nil {
		InternalServerError("Pagina kon niet worden weergegeven").Write(w)
		return
	}
	NewHTMXResponse().BodyHTML(body).Write(w)
}

// handleCharts runs the dashboard page-load pass and renders both charts.
// A failing chart renders its own message; the other one is unaffected.
func (s *Server) handleCharts(w http.ResponseWriter, r *http.Request) {
	p := page.NewDashboard()
	p.Ready(r.Context(), s.loader)

	body, err := s.render(r, part{"grafieken", lo.Map(p.Charts, func(c dashboard.Chart, _ int) chartView {
		return newChartView(c)
	})})
	if err != nil {
		InternalServerError("Grafieken konden niet worden weergegeven").Write(w)
		return
	}
	NewHTMXResponse().BodyHTML(body).Write(w)
}
