package dashboard

import (
	"context"

	"golang.org/x/sync/errgroup"

	"boekhouding/internal/core"
	"boekhouding/internal/log"
)

// Anchors of the dashboard charts.
const (
	RevenueAnchor  = "omzetGrafiek"
	CashflowAnchor = "cashflowGrafiek"
)

// Source provides the monthly series. *Client is the production source.
type Source interface {
	Revenue(ctx context.Context) ([]core.RevenueMonth, error)
	Cashflow(ctx context.Context) ([]core.CashflowMonth, error)
}

// Anchors reports which chart elements exist on a page.
type Anchors interface {
	Has(id string) bool
}

// Chart is a loaded chart, or the reason it could not be loaded.
type Chart struct {
	Anchor string
	Title  string
	Config Config
	Err    error
}

// Loader fetches the series for the charts a page has room for.
type Loader struct {
	src    Source
	logger *log.Logger
	sl     *log.StructuredLogger
}

// NewLoader creates a loader reading from src.
func NewLoader(src Source, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.Discard()
	}
	logger = logger.WithComponent(log.ComponentDashboard)
	return &Loader{src: src, logger: logger, sl: log.NewStructuredLogger(logger)}
}

// LoadRevenue loads the revenue chart. It reports false when the page has no revenue anchor.
func (l *Loader) LoadRevenue(ctx context.Context, page Anchors) (Chart, bool) {
	if !page.Has(RevenueAnchor) {
		return Chart{}, false
	}
	chart := Chart{Anchor: RevenueAnchor, Title: "Omzet en kosten"}
	months, err := l.src.Revenue(ctx)
	if err != nil {
		chart.Err = err
		l.sl.LogError(ctx, "Revenue chart failed", err, log.ComponentDashboard, log.OpFetch,
			log.NewFields().WithChart(RevenueAnchor, RevenuePath, 0))
		return chart, true
	}
	chart.Config = RevenueChart(months)
	l.sl.LogChartLoaded(ctx, RevenueAnchor, RevenuePath, len(months))
	return chart, true
}

// LoadCashflow loads the cashflow chart. It reports false when the page has no cashflow anchor.
func (l *Loader) LoadCashflow(ctx context.Context, page Anchors) (Chart, bool) {
	if !page.Has(CashflowAnchor) {
		return Chart{}, false
	}
	chart := Chart{Anchor: CashflowAnchor, Title: "Cashflow"}
	months, err := l.src.Cashflow(ctx)
	if err != nil {
		chart.Err = err
		l.sl.LogError(ctx, "Cashflow chart failed", err, log.ComponentDashboard, log.OpFetch,
			log.NewFields().WithChart(CashflowAnchor, CashflowPath, 0))
		return chart, true
	}
	chart.Config = CashflowChart(months)
	l.sl.LogChartLoaded(ctx, CashflowAnchor, CashflowPath, len(months))
	return chart, true
}

// Load loads both charts concurrently. Either may finish first and a
// failure of one does not affect the other. Charts whose anchor is missing
// are left out; the result is in revenue, cashflow order.
func (l *Loader) Load(ctx context.Context, page Anchors) []Chart {
	var (
		g                   errgroup.Group
		revenue, cashflow   Chart
		hasRevenue, hasCash bool
	)
	g.Go(func() error {
		revenue, hasRevenue = l.LoadRevenue(ctx, page)
		return revenue.Err
	})
	g.Go(func() error {
		cashflow, hasCash = l.LoadCashflow(ctx, page)
		return cashflow.Err
	})
	if err := g.Wait(); err != nil {
		l.logger.WarnContext(ctx, "Dashboard partially loaded", log.FieldError, err.Error())
	}

	charts := make([]Chart, 0, 2)
	if hasRevenue {
		charts = append(charts, revenue)
	}
	if hasCash {
		charts = append(charts, cashflow)
	}
	return charts
}
