package core

// MonthsPerYear is the length of every monthly series.
const MonthsPerYear = 12

// MonthLabels are the fixed calendar-year chart labels, January first.
var MonthLabels = []string{
	"Jan", "Feb", "Mrt", "Apr", "Mei", "Jun",
	"Jul", "Aug", "Sep", "Okt", "Nov", "Dec",
}

// RevenueMonth is one month of revenue and cost.
type RevenueMonth struct {
	Month  int     `json:"maand"`
	Omzet  float64 `json:"omzet"`
	Kosten float64 `json:"kosten"`
}

// CashflowMonth is one month of incoming and outgoing payments.
type CashflowMonth struct {
	Month    int     `json:"maand"`
	Inkomend float64 `json:"inkomend"`
	Uitgaand float64 `json:"uitgaand"`
}
