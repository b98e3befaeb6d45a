package analytics

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellerdesk/shop-manager/internal/dependency"
	"github.com/sellerdesk/shop-manager/internal/entity"
)

type stubPager struct {
	pages [][]entity.Order
	err   error
}

func (p *stubPager) Next(ctx context.Context) ([]entity.Order, error) {
	if p.err != nil {
		return nil, p.err
	}
	if len(p.pages) == 0 {
		return nil, nil
	}
	page := p.pages[0]
	p.pages = p.pages[1:]
	return page, nil
}

type stubSource struct {
	created     []entity.Order
	returned    []entity.Order
	createdErr  error
	returnScans int
}

func (s *stubSource) CreatedInWindow(shopID, from, to int64) dependency.OrderPager {
	return &stubPager{pages: [][]entity.Order{s.created}, err: s.createdErr}
}

func (s *stubSource) ReturnedInWindow(shopID, from, to int64) dependency.OrderPager {
	s.returnScans++
	return &stubPager{pages: [][]entity.Order{s.returned}}
}

func validRequest(tab entity.Tab) Request {
	utc := 0
	return Request{
		ShopID:         42,
		StartTS:        dayTS(10, 0),
		EndTS:          dayTS(12, 23),
		Tab:            tab,
		TimezoneOffset: &utc,
	}
}

func TestReportValidation(t *testing.T) {
	e := New(Config{}, &stubSource{})
	ctx := context.Background()

	tests := []struct {
		name string
		req  Request
	}{
		{"missing shop", Request{StartTS: 1, EndTS: 2}},
		{"missing window", Request{ShopID: 42}},
		{"inverted window", Request{ShopID: 42, StartTS: 20, EndTS: 10}},
		{"unknown tab", Request{ShopID: 42, StartTS: 1, EndTS: 2, Tab: "velocity"}},
		{"negative page", Request{ShopID: 42, StartTS: 1, EndTS: 2, Page: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Report(ctx, tt.req)
			require.Error(t, err)

			var inv *ErrInvalidRequest
			assert.ErrorAs(t, err, &inv)
		})
	}
}

func TestReportPagingBounds(t *testing.T) {
	e := New(Config{}, &stubSource{})
	ctx := context.Background()

	_, err := e.Report(ctx, Request{ShopID: 42, StartTS: 1, EndTS: 2, Page: -1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not be negative")

	// zero means "use the default", not an error
	req := validRequest(entity.TabProduct)
	req.Page, req.PageSize = 0, 0
	rep, err := e.Report(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, rep.Data.Products)
	assert.Equal(t, 1, rep.Data.Products.Page)
	assert.Equal(t, 50, rep.Data.Products.PageSize)
}

func TestReportTabSelection(t *testing.T) {
	src := &stubSource{created: []entity.Order{
		order("a", 10, entity.StatusCompleted, 100_000, 1),
	}}
	e := New(Config{DefaultTimezoneOffset: 0}, src)

	rep, err := e.Report(context.Background(), validRequest(entity.TabCreated))
	require.NoError(t, err)

	assert.Equal(t, entity.TabCreated, rep.Tab)
	assert.NotNil(t, rep.Data.Created)
	assert.Nil(t, rep.Data.Completed)
	assert.Nil(t, rep.Data.Distribution)
	assert.Nil(t, rep.Data.Products)
	assert.Nil(t, rep.Data.Status)
	assert.Nil(t, rep.Data.Cancel)

	// the return scan only runs when the cash-flow tab is requested
	assert.Equal(t, 0, src.returnScans)
}

func TestReportAllTabsPopulated(t *testing.T) {
	src := &stubSource{created: []entity.Order{
		order("a", 10, entity.StatusCompleted, 100_000, 1),
	}}
	e := New(Config{}, src)

	rep, err := e.Report(context.Background(), validRequest(""))
	require.NoError(t, err)

	assert.Equal(t, entity.TabAll, rep.Tab)
	assert.NotNil(t, rep.Data.Created)
	assert.NotNil(t, rep.Data.Completed)
	assert.NotNil(t, rep.Data.Distribution)
	assert.NotNil(t, rep.Data.Products)
	assert.NotNil(t, rep.Data.Status)
	assert.NotNil(t, rep.Data.Cancel)
	assert.Equal(t, 1, src.returnScans)
}

func TestReportTotals(t *testing.T) {
	src := &stubSource{created: []entity.Order{
		order("a", 10, entity.StatusCompleted, 100_000, 1),
		order("b", 10, entity.StatusCompleted, 200_000, 1),
		order("c", 11, entity.StatusCancelled, 50_000, 1),
		order("d", 11, entity.StatusUnpaid, 70_000, 1),
	}}
	e := New(Config{}, src)

	rep, err := e.Report(context.Background(), validRequest(entity.TabStatus))
	require.NoError(t, err)

	assert.Equal(t, 4, rep.Totals.Created)
	assert.Equal(t, 2, rep.Totals.Completed)
	assert.Equal(t, 1, rep.Totals.Cancelled)
	assert.Equal(t, "420000", rep.Totals.TotalRevenue.String())
}

func TestReportMergesReturnsIntoCashFlow(t *testing.T) {
	src := &stubSource{
		created: []entity.Order{
			order("a", 10, entity.StatusCompleted, 100_000, 1),
		},
		returned: []entity.Order{
			{OrderID: "old", OrderStatus: entity.StatusToReturn, CreateTime: dayTS(1, 10), UpdateTime: dayTS(11, 10)},
		},
	}
	e := New(Config{}, src)

	rep, err := e.Report(context.Background(), validRequest(entity.TabCompleted))
	require.NoError(t, err)
	require.NotNil(t, rep.Data.Completed)

	rows := *rep.Data.Completed
	require.Len(t, rows, 3)
	assert.Equal(t, 1, rows[1].ReturnCount)

	// pre-window returns never inflate the creation totals
	assert.Equal(t, 1, rep.Totals.Created)
}

func TestReportEmptyWindowRendersShape(t *testing.T) {
	e := New(Config{}, &stubSource{})

	rep, err := e.Report(context.Background(), validRequest(entity.TabCreated))
	require.NoError(t, err)
	require.NotNil(t, rep.Data.Created)

	// three idle days, zero-valued but present
	assert.Len(t, *rep.Data.Created, 3)
	assert.Equal(t, 0, rep.Totals.Created)
}

func TestReportScanErrorPropagates(t *testing.T) {
	boom := errors.New("connection reset")
	e := New(Config{}, &stubSource{createdErr: boom})

	_, err := e.Report(context.Background(), validRequest(entity.TabCreated))
	require.ErrorIs(t, err, boom)

	var inv *ErrInvalidRequest
	assert.False(t, errors.As(err, &inv))
}

func TestReportTimezoneOverride(t *testing.T) {
	// 17:30 UTC on the 10th is already the 11th in UTC+7
	src := &stubSource{created: []entity.Order{{
		OrderID:     "a",
		CreateTime:  dayTS(10, 17) + 1800,
		UpdateTime:  dayTS(10, 17) + 1800,
		OrderStatus: entity.StatusCompleted,
	}}}
	e := New(Config{}, src)

	rep, err := e.Report(context.Background(), validRequest(entity.TabCreated))
	require.NoError(t, err)
	rows := *rep.Data.Created
	assert.Equal(t, 1, rows[0].OrderCount)

	// the configured +7 default shifts the same order to the next local day
	def := validRequest(entity.TabCreated)
	def.TimezoneOffset = nil
	rep, err = e.Report(context.Background(), def)
	require.NoError(t, err)
	rows = *rep.Data.Created
	assert.Equal(t, 0, rows[0].OrderCount)
	assert.Equal(t, 1, rows[1].OrderCount)
}

func TestReportIdempotent(t *testing.T) {
	orders := []entity.Order{
		order("a", 10, entity.StatusCompleted, 100_000, 1),
		order("b", 11, entity.StatusCancelled, 50_000, 1),
	}
	e := New(Config{}, &stubSource{created: orders})

	first, err := e.Report(context.Background(), validRequest(""))
	require.NoError(t, err)
	second, err := e.Report(context.Background(), validRequest(""))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
