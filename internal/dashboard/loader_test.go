package dashboard

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boekhouding/internal/core"
)

type anchorSet map[string]bool

func (a anchorSet) Has(id string) bool { return a[id] }

type fakeSource struct {
	revenueErr, cashflowErr error
	revenueDelay            time.Duration
	revenueCalls            int32
	cashflowCalls           int32
}

func (f *fakeSource) Revenue(ctx context.Context) ([]core.RevenueMonth, error) {
	atomic.AddInt32(&f.revenueCalls, 1)
	if f.revenueDelay > 0 {
		time.Sleep(f.revenueDelay)
	}
	if f.revenueErr != nil {
		return nil, f.revenueErr
	}
	return revenueMonths(), nil
}

func (f *fakeSource) Cashflow(ctx context.Context) ([]core.CashflowMonth, error) {
	atomic.AddInt32(&f.cashflowCalls, 1)
	if f.cashflowErr != nil {
		return nil, f.cashflowErr
	}
	return make([]core.CashflowMonth, 12), nil
}

func TestLoadBothCharts(t *testing.T) {
	src := &fakeSource{revenueDelay: 20 * time.Millisecond}
	charts := NewLoader(src, nil).Load(context.Background(), anchorSet{RevenueAnchor: true, CashflowAnchor: true})

	require.Len(t, charts, 2)
	// order is stable even though the revenue fetch finishes last
	assert.Equal(t, RevenueAnchor, charts[0].Anchor)
	assert.Equal(t, "bar", charts[0].Config.Type)
	assert.Equal(t, CashflowAnchor, charts[1].Anchor)
	assert.Equal(t, "line", charts[1].Config.Type)
	assert.NoError(t, charts[0].Err)
	assert.NoError(t, charts[1].Err)
}

func TestLoadWithoutCashflowAnchor(t *testing.T) {
	src := &fakeSource{}
	var charts []Chart
	require.NotPanics(t, func() {
		charts = NewLoader(src, nil).Load(context.Background(), anchorSet{RevenueAnchor: true})
	})
	require.Len(t, charts, 1)
	assert.Equal(t, RevenueAnchor, charts[0].Anchor)
	assert.Equal(t, int32(0), atomic.LoadInt32(&src.cashflowCalls))
}

func TestLoadWithoutAnchors(t *testing.T) {
	src := &fakeSource{}
	charts := NewLoader(src, nil).Load(context.Background(), anchorSet{})
	assert.Empty(t, charts)
	assert.Equal(t, int32(0), atomic.LoadInt32(&src.revenueCalls))
	assert.Equal(t, int32(0), atomic.LoadInt32(&src.cashflowCalls))
}

func TestLoadFailuresAreIndependent(t *testing.T) {
	src := &fakeSource{revenueErr: errors.Mark(errors.New("boom"), ErrUpstream)}
	charts := NewLoader(src, nil).Load(context.Background(), anchorSet{RevenueAnchor: true, CashflowAnchor: true})

	require.Len(t, charts, 2)
	assert.True(t, errors.Is(charts[0].Err, ErrUpstream))
	assert.NoError(t, charts[1].Err)
	assert.Equal(t, "line", charts[1].Config.Type)
}

func TestLoadSingleChart(t *testing.T) {
	loader := NewLoader(&fakeSource{}, nil)
	_, ok := loader.LoadCashflow(context.Background(), anchorSet{RevenueAnchor: true})
	assert.False(t, ok)

	chart, ok := loader.LoadRevenue(context.Background(), anchorSet{RevenueAnchor: true})
	require.True(t, ok)
	assert.Equal(t, "Omzet", chart.Config.Data.Datasets[0].Label)
}
