package analytics

import (
	"github.com/sellerdesk/shop-manager/internal/entity"
	"github.com/shopspring/decimal"
)

// Margins is the placeholder profit model of the creation-trend rollup:
// profit ~= revenue*MarginRate - shipping*ShippingCostRate. The
// coefficients carry no documented derivation upstream and are plain
// configuration, not business logic.
type Margins struct {
	MarginRate       decimal.Decimal
	ShippingCostRate decimal.Decimal
}

// DefaultMargins mirrors the historical dashboard coefficients.
func DefaultMargins() Margins {
	return Margins{
		MarginRate:       decimal.NewFromFloat(0.48),
		ShippingCostRate: decimal.NewFromFloat(0.10),
	}
}

// CreatedRollup folds the primary order set into the daily creation
// trend, bucketed by create_time local date. Every day in the window is
// emitted, zero-valued when idle.
func CreatedRollup(orders []entity.Order, w Window, m Margins) []entity.DailyCreated {
	days := w.DayRange()
	byDay := make(map[string]*entity.DailyCreated, len(days))
	for _, d := range days {
		byDay[d] = &entity.DailyCreated{Date: d}
	}

	for _, o := range orders {
		row, ok := byDay[LocalDate(o.CreateTime, w.TZOffset)]
		if !ok {
			continue
		}
		row.OrderCount++
		row.ProductCount += o.UnitsOrdered()
		row.Revenue = row.Revenue.Add(o.TotalAmount)
		row.ShippingFee = row.ShippingFee.Add(o.ActualShippingFee)

		if o.OrderStatus.IsCompleted() {
			row.CompletedCount++
			row.CompletedQuantity += o.UnitsOrdered()
			row.CompletedRevenue = row.CompletedRevenue.Add(o.TotalAmount)
			row.CompletedShippingFee = row.CompletedShippingFee.Add(o.ActualShippingFee)
		}
		if o.OrderStatus.IsCancelled() {
			row.CancelledCount++
		}
	}

	out := make([]entity.DailyCreated, 0, len(days))
	for _, d := range days {
		row := byDay[d]
		if row.OrderCount > 0 {
			row.AvgOrderValue = row.Revenue.Div(decimal.NewFromInt(int64(row.OrderCount))).Round(2)
		}
		row.Profit = row.Revenue.Mul(m.MarginRate).Sub(row.ShippingFee.Mul(m.ShippingCostRate)).Round(2)
		row.ConversionRate = pct(row.CompletedCount, row.OrderCount)
		out = append(out, *row)
	}
	return out
}
