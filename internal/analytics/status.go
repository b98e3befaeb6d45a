package analytics

import (
	"sort"

	"github.com/sellerdesk/shop-manager/internal/entity"
)

// StatusRollup builds the global status histogram and the daily status
// series. Both are keyed off create_time so every order in the window
// lands somewhere and the day totals always match the order count.
func StatusRollup(orders []entity.Order, w Window) *entity.StatusBreakdown {
	global := make(map[entity.OrderStatus]*entity.StatusCount)
	daily := make(map[string]*entity.DailyStatus)
	for _, d := range w.DayRange() {
		daily[d] = &entity.DailyStatus{Date: d}
	}

	for _, o := range orders {
		gc, ok := global[o.OrderStatus]
		if !ok {
			gc = &entity.StatusCount{
				Status: o.OrderStatus,
				Label:  StatusLabel(o.OrderStatus),
			}
			global[o.OrderStatus] = gc
		}
		gc.Count++
		gc.Revenue = gc.Revenue.Add(o.TotalAmount)

		day := LocalDate(o.CreateTime, w.TZOffset)
		ds, ok := daily[day]
		if !ok {
			ds = &entity.DailyStatus{Date: day}
			daily[day] = ds
		}

		var slot *entity.StatusSlot
		switch {
		case o.OrderStatus.IsCancelled():
			slot = &ds.Cancelled
		case o.OrderStatus == entity.StatusToReturn:
			slot = &ds.Returned
		case o.OrderStatus.IsCompleted():
			slot = &ds.Completed
		case o.OrderStatus == entity.StatusShipped, o.OrderStatus == entity.StatusToConfirmReceive:
			slot = &ds.Shipping
		case o.OrderStatus == entity.StatusProcessed, o.OrderStatus == entity.StatusReadyToShip:
			slot = &ds.Packaging
		default:
			slot = &ds.Confirmed
		}
		slot.Count++
		slot.Revenue = slot.Revenue.Add(o.TotalAmount)
		ds.Total++
	}

	out := &entity.StatusBreakdown{
		Global: make([]entity.StatusCount, 0, len(global)),
		Daily:  make([]entity.DailyStatus, 0, len(daily)),
	}
	for _, gc := range global {
		gc.Percent = pct(gc.Count, len(orders))
		out.Global = append(out.Global, *gc)
	}
	sort.Slice(out.Global, func(i, j int) bool {
		if out.Global[i].Count != out.Global[j].Count {
			return out.Global[i].Count > out.Global[j].Count
		}
		return out.Global[i].Status < out.Global[j].Status
	})

	for _, ds := range daily {
		out.Daily = append(out.Daily, *ds)
	}
	sort.Slice(out.Daily, func(i, j int) bool {
		return out.Daily[i].Date < out.Daily[j].Date
	})
	return out
}
