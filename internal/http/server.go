package http

import (
	"context"
	"html/template"
	"io/fs"
	"net/http"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"boekhouding/internal/cache"
	"boekhouding/internal/core"
	"boekhouding/internal/dashboard"
	"boekhouding/internal/log"
	"boekhouding/internal/middleware/ratelimit"
	"boekhouding/internal/middleware/security"
	"boekhouding/internal/middleware/trace"
	appweb "boekhouding/web"
)

var errTemplatesNotLoaded = errors.New("templates not loaded")

// Options configures the presentation server.
type Options struct {
	Addr string
	// Source feeds the dashboard charts; nil renders every chart as failed.
	Source             dashboard.Source
	Logger             *log.Logger
	SessionTTL         time.Duration
	SessionMax         int
	RateLimitPerMinute int
	// Templates overrides the embedded templates, for tests.
	Templates fs.FS
}

// Server renders the dashboard and invoice pages.
type Server struct {
	http.Server
	templates *template.Template
	loader    *dashboard.Loader
	upstream  bool
	logger    *log.Logger

	sessions *sessionStore
	caches   *cache.Manager
	limiter  *ratelimit.Limiter
	trace    *trace.Middleware
	guard    *security.Guard
	started  time.Time

	shutdownOnce sync.Once
}

// NewServer configures routes and templates, returning a ready-to-run server.
// A template parse failure is logged; pages then answer 500 and /readyz
// reports not ready.
func NewServer(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = log.Discard()
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = 30 * time.Minute
	}
	if opts.SessionMax <= 0 {
		opts.SessionMax = 500
	}

	s := &Server{
		logger:   logger.WithComponent(log.ComponentHTTP),
		sessions: newSessionStore(opts.SessionMax, opts.SessionTTL, logger),
		caches:   cache.NewManager(logger),
		limiter:  ratelimit.NewLimiter(ratelimit.Config{RequestsPerMinute: opts.RateLimitPerMinute}),
		guard:    security.NewGuard(logger),
		started:  time.Now(),
	}
	s.trace = trace.NewMiddleware(logger, s.guard.ClientIP)
	s.upstream = opts.Source != nil
	if s.upstream {
		s.loader = dashboard.NewLoader(opts.Source, logger)
	} else {
		s.loader = dashboard.NewLoader(unavailableSource{}, logger)
	}

	s.caches.Register(s.sessions.cache)
	s.caches.StartCleanup(max(opts.SessionTTL/4, time.Minute))

	templates := opts.Templates
	if templates == nil {
		templates = appweb.TemplatesFS
	}
	t, err := template.ParseFS(templates, "templates/*.html")
	if err != nil {
		s.logger.Warn("Failed parsing templates", log.FieldError, err.Error())
	} else {
		s.templates = t
	}

	s.Server = http.Server{
		Addr:              opts.Addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(s.guard.BlockProbes)
	r.Use(s.trace.Middleware)
	r.Use(security.Headers(security.DefaultHeadersConfig()))

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleReady)
	r.Get("/metrics", s.handleMetrics)

	if sub, err := fs.Sub(appweb.StaticFS, "static"); err == nil {
		r.With(security.StaticAssetMiddleware(3600)).
			Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(sub))))
	} else {
		s.logger.Warn("Failed to mount embedded static FS", log.FieldError, err.Error())
	}

	r.Get("/", s.handleDashboard)

	// session creation and upstream fetches are limited like the edits
	r.Group(func(r chi.Router) {
		r.Use(s.limiter.Middleware(s.guard.ClientIP, s.onRateLimited))
		r.Get("/ui/grafieken", s.handleCharts)
		r.Get(newInvoicePath, s.handleNewInvoice)
		r.Post("/facturen/regels", s.handleAddRow)
		r.Post("/facturen/regels/{index}/verwijderen", s.handleRemoveRow)
		r.Post("/facturen/invoer", s.handleInput)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		NotFoundError("Pagina niet gevonden").Write(w)
	})
	return r
}

func (s *Server) onRateLimited(w http.ResponseWriter, r *http.Request) {
	log.FromContext(r.Context()).WithComponent(log.ComponentRateLimit).
		WarnContext(r.Context(), "Rate limit exceeded", log.FieldClientIP, s.guard.ClientIP(r), log.FieldPath, r.URL.Path)
	ErrorResponse(http.StatusTooManyRequests, "Te veel verzoeken, probeer het zo opnieuw.").Write(w)
}

// Shutdown stops the background loops and then the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	s.shutdownOnce.Do(func() {
		s.caches.Stop()
		s.limiter.Stop()
		err = s.Server.Shutdown(ctx)
	})
	return err
}

// unavailableSource stands in when no reporting API is configured.
type unavailableSource struct{}

func (unavailableSource) Revenue(context.Context) ([]core.RevenueMonth, error) {
	return nil, errors.Mark(errors.New("reporting API not configured"), dashboard.ErrUpstream)
}

func (unavailableSource) Cashflow(context.Context) ([]core.CashflowMonth, error) {
	return nil, errors.Mark(errors.New("reporting API not configured"), dashboard.ErrUpstream)
}
