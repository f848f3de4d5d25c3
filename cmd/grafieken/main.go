// Command grafieken fetches the dashboard series once and prints the chart
// configurations as JSON, for checking the reporting API without a browser.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	jsoniter "github.com/json-iterator/go"

	"boekhouding/internal/cli"
	"boekhouding/internal/dashboard"
	"boekhouding/internal/page"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type output struct {
	Anchor string            `json:"anchor"`
	Title  string            `json:"title"`
	Error  string            `json:"error,omitempty"`
	Config *dashboard.Config `json:"config,omitempty"`
}

func main() {
	table := flag.Bool("tabel", false, "print the charts as text tables instead of JSON")
	flag.Parse()

	cli.LoadEnvFile()
	cfg := cli.LoadAndValidateConfig(cli.SetupLogger("info"))
	logger := cli.SetupLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	loader := dashboard.NewLoader(cli.NewReportingClient(cfg, logger), logger)
	p := page.NewDashboard()
	p.Ready(ctx, loader)

	failed := false
	out := make([]output, 0, len(p.Charts))
	for _, c := range p.Charts {
		o := output{Anchor: c.Anchor, Title: c.Title}
		if c.Err != nil {
			o.Error = c.Err.Error()
			failed = true
		} else {
			conf := c.Config
			o.Config = &conf
		}
		out = append(out, o)
	}

	if *table {
		printTables(out)
	} else {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			logger.Error("Failed to write charts", "error", err)
			os.Exit(1)
		}
	}
	if failed {
		os.Exit(2)
	}
}

func printTables(out []output) {
	for _, o := range out {
		fmt.Printf("%s (%s)\n", o.Title, o.Anchor)
		if o.Config == nil {
			fmt.Printf("  fout: %s\n\n", o.Error)
			continue
		}
		for _, row := range dashboard.Table(*o.Config) {
			fmt.Printf("  %-4s %14s %14s\n", row.Month, row.A, row.B)
		}
		fmt.Println()
	}
}
