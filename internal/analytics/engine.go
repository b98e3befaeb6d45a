package analytics

import (
	"context"
	"fmt"

	"github.com/asaskevich/govalidator"
	"github.com/shopspring/decimal"

	"github.com/sellerdesk/shop-manager/internal/dependency"
	"github.com/sellerdesk/shop-manager/internal/entity"
)

// Config holds the tunables of the report engine.
type Config struct {
	// DefaultTimezoneOffset is the UTC offset in hours applied when a
	// request carries none. Zero means the Indochina default of +7.
	DefaultTimezoneOffset int     `mapstructure:"default_timezone_offset"`
	ProfitMarginRate      float64 `mapstructure:"profit_margin_rate"`
	ShippingCostRate      float64 `mapstructure:"shipping_cost_rate"`
}

const defaultTimezoneOffset = 7

// Request describes one report computation.
type Request struct {
	ShopID  int64      `json:"shopId" valid:"required"`
	StartTS int64      `json:"startTs" valid:"required"`
	EndTS   int64      `json:"endTs" valid:"required"`
	Tab     entity.Tab `json:"tab"`

	// Page, PageSize and Search apply to the product tab only.
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
	Search   string `json:"search"`

	// TimezoneOffset overrides the configured default when set.
	TimezoneOffset *int `json:"timezoneOffset"`
}

// ErrInvalidRequest marks request validation failures so callers can
// map them to a client error rather than a server one.
type ErrInvalidRequest struct {
	Reason string
}

func (e *ErrInvalidRequest) Error() string {
	return fmt.Sprintf("invalid report request: %s", e.Reason)
}

// Engine computes order analytics reports by scanning an order source
// and folding the pages in memory.
type Engine struct {
	src dependency.OrderSource
	c   Config
}

func New(c Config, src dependency.OrderSource) *Engine {
	return &Engine{src: src, c: c}
}

func (e *Engine) margins() Margins {
	m := DefaultMargins()
	if e.c.ProfitMarginRate > 0 {
		m.MarginRate = decimal.NewFromFloat(e.c.ProfitMarginRate)
	}
	if e.c.ShippingCostRate > 0 {
		m.ShippingCostRate = decimal.NewFromFloat(e.c.ShippingCostRate)
	}
	return m
}

func (e *Engine) window(req Request) Window {
	offset := e.c.DefaultTimezoneOffset
	if offset == 0 {
		offset = defaultTimezoneOffset
	}
	if req.TimezoneOffset != nil {
		offset = *req.TimezoneOffset
	}
	return Window{From: req.StartTS, To: req.EndTS, TZOffset: offset}
}

func (e *Engine) validate(req Request) error {
	if _, err := govalidator.ValidateStruct(req); err != nil {
		return &ErrInvalidRequest{Reason: err.Error()}
	}
	if req.StartTS > req.EndTS {
		return &ErrInvalidRequest{Reason: "startTs is after endTs"}
	}
	if req.Tab != "" && !entity.ValidTabs[req.Tab] {
		return &ErrInvalidRequest{Reason: fmt.Sprintf("unknown tab %q", req.Tab)}
	}
	if req.Page < 0 || req.PageSize < 0 {
		return &ErrInvalidRequest{Reason: "page and pageSize must not be negative"}
	}
	return nil
}

// Report runs one analytics computation. The primary scan covers
// orders created in the window; the completed tabs additionally scan
// returns whose update_time falls in the window, so a return of an
// order created before the window still reduces that day's cash flow.
func (e *Engine) Report(ctx context.Context, req Request) (*entity.Report, error) {
	if err := e.validate(req); err != nil {
		return nil, err
	}

	tab := req.Tab
	if tab == "" {
		tab = entity.TabAll
	}
	w := e.window(req)

	orders, err := collect(ctx, e.src.CreatedInWindow(req.ShopID, req.StartTS, req.EndTS))
	if err != nil {
		return nil, fmt.Errorf("scanning created orders: %w", err)
	}

	rep := &entity.Report{
		Tab:    tab,
		Totals: totals(orders),
	}

	if tab == entity.TabAll || tab == entity.TabCreated {
		series := CreatedRollup(orders, w, e.margins())
		rep.Data.Created = &series
	}
	if tab == entity.TabAll || tab == entity.TabCompleted {
		returns, err := collect(ctx, e.src.ReturnedInWindow(req.ShopID, req.StartTS, req.EndTS))
		if err != nil {
			return nil, fmt.Errorf("scanning returned orders: %w", err)
		}
		series := CompletedRollup(MergeReturns(orders, returns), w)
		rep.Data.Completed = &series
	}
	if tab == entity.TabAll || tab == entity.TabValue {
		rep.Data.Distribution = DistributionRollup(orders)
	}
	if tab == entity.TabAll || tab == entity.TabProduct {
		rep.Data.Products = ProductRollup(orders, req.Search, req.Page, req.PageSize)
	}
	if tab == entity.TabAll || tab == entity.TabStatus {
		rep.Data.Status = StatusRollup(orders, w)
	}
	if tab == entity.TabAll || tab == entity.TabCancel {
		groups := CancelRollup(orders)
		rep.Data.Cancel = &groups
	}
	return rep, nil
}

// collect drains a pager into memory. Report windows are operator
// dashboards, not exports, so a full window fits comfortably.
func collect(ctx context.Context, p dependency.OrderPager) ([]entity.Order, error) {
	var out []entity.Order
	for {
		page, err := p.Next(ctx)
		if err != nil {
			return nil, err
		}
		if page == nil {
			return out, nil
		}
		out = append(out, page...)
	}
}

func totals(orders []entity.Order) entity.Totals {
	t := entity.Totals{Created: len(orders)}
	for _, o := range orders {
		t.TotalRevenue = t.TotalRevenue.Add(o.TotalAmount)
		switch {
		case o.OrderStatus.IsCompleted():
			t.Completed++
		case o.OrderStatus.IsCancelled():
			t.Cancelled++
		}
	}
	return t
}

// pct is n/d as a percentage rounded to two places, zero when d is zero.
func pct(n, d int) decimal.Decimal {
	if d == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(n)).
		Div(decimal.NewFromInt(int64(d))).
		Mul(decimal.NewFromInt(100)).
		Round(2)
}
