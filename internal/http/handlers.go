package http

import (
	"fmt"
	"net/http"
	"time"
)

// handleHealth performs basic liveness check
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
		"uptime":    time.Since(s.started).Round(time.Second).String(),
	})
}

// handleReady reports whether the server can render pages.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	status := "ready"
	httpStatus := http.StatusOK
	checks := make(map[string]any)

	if s.templates == nil {
		checks["templates"] = "failed: templates not loaded"
		status = "not_ready"
		httpStatus = http.StatusServiceUnavailable
	} else {
		checks["templates"] = "ok"
	}

	if !s.upstream {
		checks["reporting_api"] = "not_configured"
	} else {
		checks["reporting_api"] = "configured"
	}

	checks["sessions"] = map[string]any{
		"active": s.sessions.size(),
		"status": "ok",
	}
	checks["rate_limiter"] = map[string]any{
		"active_clients": s.limiter.ActiveClients(),
		"status":         "ok",
	}

	writeJSON(w, httpStatus, map[string]any{
		"status":    status,
		"timestamp": time.Now().Format(time.RFC3339),
		"checks":    checks,
	})
}

// handleMetrics provides request, security and session counters in plain text.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	traceMetrics := s.trace.GetMetrics()
	rateMetrics := s.limiter.GetMetrics()

	fmt.Fprintf(w, "# HELP boekhouding_requests_total Total HTTP requests\n")
	fmt.Fprintf(w, "boekhouding_requests_total %d\n", traceMetrics.TotalRequests)
	fmt.Fprintf(w, "# HELP boekhouding_request_duration_ms_avg Average request duration\n")
	fmt.Fprintf(w, "boekhouding_request_duration_ms_avg %d\n", traceMetrics.AverageDurationMs)
	fmt.Fprintf(w, "# HELP boekhouding_rate_limited_total Requests rejected by the rate limiter\n")
	fmt.Fprintf(w, "boekhouding_rate_limited_total %d\n", rateMetrics.TotalHits)
	fmt.Fprintf(w, "boekhouding_rate_limit_clients %d\n", rateMetrics.ClientCount)
	fmt.Fprintf(w, "# HELP boekhouding_probes_total Rejected probe requests\n")
	fmt.Fprintf(w, "boekhouding_probes_total %d\n", s.guard.Probes())
	fmt.Fprintf(w, "# HELP boekhouding_sessions Open invoice sessions\n")
	fmt.Fprintf(w, "boekhouding_sessions %d\n", s.sessions.size())
	fmt.Fprintf(w, "boekhouding_uptime_seconds %d\n", int64(time.Since(s.started).Seconds()))
}
