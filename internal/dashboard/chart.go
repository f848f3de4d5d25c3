package dashboard

import (
	"boekhouding/internal/core"

	"github.com/samber/lo"
)

// Palette of the dashboard charts.
const (
	ColorRevenue     = "#1abc9c"
	ColorRevenueFill = "rgba(26, 188, 156, 0.7)"
	ColorCost        = "#e74c3c"
	ColorCostFill    = "rgba(231, 76, 60, 0.7)"
	ColorInflow      = "#27ae60"
	ColorInflowArea  = "rgba(39, 174, 96, 0.1)"
	ColorOutflow     = "#e74c3c"
	ColorOutflowArea = "rgba(231, 76, 60, 0.1)"
)

// TickFormatEuroDutch labels the value axis as "€ 12.345" (nl-NL grouping).
const TickFormatEuroDutch = "euro-nl"

const (
	cashflowTension   = 0.3
	legendPositionTop = "top"
)

// Config is a Chart.js chart configuration.
type Config struct {
	Type    string  `json:"type"`
	Data    Data    `json:"data"`
	Options Options `json:"options"`
}

// Data holds the labels and datasets of a chart.
type Data struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// Dataset is one series of a chart.
type Dataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BackgroundColor string    `json:"backgroundColor"`
	BorderColor     string    `json:"borderColor"`
	BorderWidth     int       `json:"borderWidth,omitempty"`
	Fill            bool      `json:"fill,omitempty"`
	Tension         float64   `json:"tension,omitempty"`
}

// Options are the chart options shared by both dashboard charts.
type Options struct {
	Responsive          bool    `json:"responsive"`
	MaintainAspectRatio bool    `json:"maintainAspectRatio"`
	Plugins             Plugins `json:"plugins"`
	Scales              Scales  `json:"scales"`
}

type Plugins struct {
	Legend Legend `json:"legend"`
}

type Legend struct {
	Position string `json:"position"`
}

type Scales struct {
	Y Axis `json:"y"`
}

type Axis struct {
	BeginAtZero bool  `json:"beginAtZero"`
	Ticks       Ticks `json:"ticks"`
}

// Ticks names the label format; the page script turns it into a tick callback.
type Ticks struct {
	Format string `json:"format"`
}

func defaultOptions() Options {
	return Options{
		Responsive:          true,
		MaintainAspectRatio: false,
		Plugins:             Plugins{Legend: Legend{Position: legendPositionTop}},
		Scales: Scales{Y: Axis{
			BeginAtZero: true,
			Ticks:       Ticks{Format: TickFormatEuroDutch},
		}},
	}
}

func monthLabels() []string {
	labels := make([]string, len(core.MonthLabels))
	copy(labels, core.MonthLabels)
	return labels
}

// RevenueChart builds the revenue/cost bar chart. The n-th entry is the n-th month.
func RevenueChart(months []core.RevenueMonth) Config {
	return Config{
		Type: "bar",
		Data: Data{
			Labels: monthLabels(),
			Datasets: []Dataset{
				{
					Label:           "Omzet",
					Data:            lo.Map(months, func(m core.RevenueMonth, _ int) float64 { return m.Omzet }),
					BackgroundColor: ColorRevenueFill,
					BorderColor:     ColorRevenue,
					BorderWidth:     1,
				},
				{
					Label:           "Kosten",
					Data:            lo.Map(months, func(m core.RevenueMonth, _ int) float64 { return m.Kosten }),
					BackgroundColor: ColorCostFill,
					BorderColor:     ColorCost,
					BorderWidth:     1,
				},
			},
		},
		Options: defaultOptions(),
	}
}

// CashflowChart builds the filled, smoothed inflow/outflow line chart.
func CashflowChart(months []core.CashflowMonth) Config {
	return Config{
		Type: "line",
		Data: Data{
			Labels: monthLabels(),
			Datasets: []Dataset{
				{
					Label:           "Inkomend",
					Data:            lo.Map(months, func(m core.CashflowMonth, _ int) float64 { return m.Inkomend }),
					BorderColor:     ColorInflow,
					BackgroundColor: ColorInflowArea,
					Fill:            true,
					Tension:         cashflowTension,
				},
				{
					Label:           "Uitgaand",
					Data:            lo.Map(months, func(m core.CashflowMonth, _ int) float64 { return m.Uitgaand }),
					BorderColor:     ColorOutflow,
					BackgroundColor: ColorOutflowArea,
					Fill:            true,
					Tension:         cashflowTension,
				},
			},
		},
		Options: defaultOptions(),
	}
}

// JSON encodes the configuration for the page script.
func (c Config) JSON() ([]byte, error) {
	return json.Marshal(c)
}
