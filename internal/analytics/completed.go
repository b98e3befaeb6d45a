package analytics

import (
	"github.com/sellerdesk/shop-manager/internal/entity"
)

// CompletedRollup folds the merged order set (primary scan plus the
// supplementary return scan, de-duplicated by order id) into the daily
// cash-flow trend, bucketed by update_time local date: money moves on
// the day an order completed or returned, not the day it was placed.
// Only COMPLETED orders feed the money columns; TO_RETURN orders feed
// the return counter.
func CompletedRollup(merged []entity.Order, w Window) []entity.DailyCompleted {
	days := w.DayRange()
	byDay := make(map[string]*entity.DailyCompleted, len(days))
	for _, d := range days {
		byDay[d] = &entity.DailyCompleted{Date: d}
	}

	for _, o := range merged {
		row, ok := byDay[LocalDate(o.UpdateTime, w.TZOffset)]
		if !ok {
			// Orders created in-window but last updated outside it.
			continue
		}
		switch {
		case o.OrderStatus.IsCompleted():
			row.ProductQuantity += o.UnitsOrdered()
			row.OrderCount++
			row.GrossSales = row.GrossSales.Add(o.TotalAmount)
			row.BuyerPaidShipping = row.BuyerPaidShipping.Add(o.BuyerPaidShippingFee)
			row.ActualShipping = row.ActualShipping.Add(o.ActualShippingFee)
			row.CodFee = row.CodFee.Add(o.CodFee)
			row.InsuranceFee = row.InsuranceFee.Add(o.InsuranceFee)
			row.ServiceFee = row.ServiceFee.Add(o.ServiceFee)
			row.TransactionFee = row.TransactionFee.Add(o.TransactionFee)
			row.Commission = row.Commission.Add(o.CommissionFee)
			row.PointsUsed = row.PointsUsed.Add(o.PointsUsed)
			row.BankTransferFee = row.BankTransferFee.Add(o.BankTransferFee)
		case o.OrderStatus == entity.StatusToReturn:
			row.ReturnCount++
		}
	}

	out := make([]entity.DailyCompleted, 0, len(days))
	for _, d := range days {
		row := byDay[d]
		// Settlement chain; each field depends on the one before it.
		row.FeeDiff = row.BuyerPaidShipping.Sub(row.ActualShipping).Sub(row.CodFee)
		row.Revenue = row.GrossSales.Sub(row.Commission).Sub(row.PointsUsed)
		row.ActualReceived = row.BuyerPaidShipping.Add(row.Revenue).Sub(row.BankTransferFee)
		row.ActualPaid = row.ActualReceived.
			Sub(row.ActualShipping).
			Sub(row.CodFee).
			Sub(row.InsuranceFee).
			Sub(row.ServiceFee).
			Sub(row.TransactionFee)
		out = append(out, *row)
	}
	return out
}

// MergeReturns unions the primary scan with the supplementary return
// scan, de-duplicating by order id. Primary-set membership wins so an
// order both created and returned inside the window is counted once.
func MergeReturns(primary, returns []entity.Order) []entity.Order {
	seen := make(map[string]bool, len(primary))
	for _, o := range primary {
		seen[o.OrderID] = true
	}
	merged := make([]entity.Order, 0, len(primary)+len(returns))
	merged = append(merged, primary...)
	for _, o := range returns {
		if !seen[o.OrderID] {
			merged = append(merged, o)
		}
	}
	return merged
}
