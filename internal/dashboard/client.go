// Package dashboard loads the monthly revenue and cashflow series from the
// bookkeeping API and turns them into Chart.js configurations.
package dashboard

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"boekhouding/internal/core"
	"boekhouding/internal/log"

	"github.com/cockroachdb/errors"
	"github.com/hashicorp/go-retryablehttp"
	jsoniter "github.com/json-iterator/go"
)

// Endpoints of the bookkeeping API.
const (
	RevenuePath  = "/api/omzet-per-maand"
	CashflowPath = "/api/cashflow-per-maand"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	// ErrUpstream marks failures reaching the bookkeeping API.
	ErrUpstream = errors.New("bookkeeping api unavailable")
	// ErrDecode marks responses that are not the expected JSON.
	ErrDecode = errors.New("invalid bookkeeping api response")
	// ErrSeriesLength marks series that do not have one entry per month.
	ErrSeriesLength = errors.New("monthly series must have twelve entries")
)

// StatusError is returned for non-2xx responses that were not retried.
type StatusError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return "GET " + e.Endpoint + ": " + http.StatusText(e.StatusCode)
}

// ClientConfig holds configuration for the API client
type ClientConfig struct {
	BaseURL   string
	Timeout   time.Duration
	RetryMax  int
	RetryWait time.Duration
	Logger    *log.Logger
}

// Client fetches the monthly series.
type Client struct {
	baseURL string
	http    *retryablehttp.Client
}

// NewClient creates a client for the API at cfg.BaseURL.
func NewClient(cfg ClientConfig) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = cfg.RetryMax
	if cfg.RetryWait > 0 {
		rc.RetryWaitMin = cfg.RetryWait
		rc.RetryWaitMax = 4 * cfg.RetryWait
	}
	if cfg.Timeout > 0 {
		rc.HTTPClient.Timeout = cfg.Timeout
	}
	if cfg.Logger != nil {
		rc.Logger = cfg.Logger.WithComponent(log.ComponentUpstream).Logger
	} else {
		rc.Logger = nil
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    rc,
	}
}

// Revenue fetches revenue and cost per month, January first.
func (c *Client) Revenue(ctx context.Context) ([]core.RevenueMonth, error) {
	return getSeries[core.RevenueMonth](ctx, c, RevenuePath)
}

// Cashflow fetches incoming and outgoing payments per month, January first.
func (c *Client) Cashflow(ctx context.Context) ([]core.CashflowMonth, error) {
	return getSeries[core.CashflowMonth](ctx, c, CashflowPath)
}

func getSeries[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "build request %s", path)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "GET %s", path), ErrUpstream)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, errors.Mark(&StatusError{Endpoint: path, StatusCode: resp.StatusCode, Body: string(body)}, ErrUpstream)
	}

	var series []T
	if err := json.NewDecoder(resp.Body).Decode(&series); err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "decode %s", path), ErrDecode)
	}
	if len(series) != core.MonthsPerYear {
		return nil, errors.Wrapf(ErrSeriesLength, "%s returned %d entries", path, len(series))
	}
	return series, nil
}
