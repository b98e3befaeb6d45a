package analytics

import (
	"sort"

	"github.com/sellerdesk/shop-manager/internal/entity"
)

// CancelRollup groups cancelled orders by reason code and splits each
// group between platform-initiated and buyer-initiated cancellations.
func CancelRollup(orders []entity.Order) []entity.CancelGroup {
	groups := make(map[string]*entity.CancelGroup)
	cancelled := 0
	for _, o := range orders {
		if !o.OrderStatus.IsCancelled() {
			continue
		}
		cancelled++

		reason := o.CancelReason
		if reason == "" {
			reason = o.BuyerCancelReason
		}
		g, ok := groups[reason]
		if !ok {
			g = &entity.CancelGroup{
				Reason: reason,
				Label:  CancelReasonLabel(reason),
			}
			groups[reason] = g
		}
		g.Total++
		if o.CancelBy == entity.CancelByPlatform {
			g.System.Count++
		} else {
			g.Buyer.Count++
		}
	}

	out := make([]entity.CancelGroup, 0, len(groups))
	for _, g := range groups {
		g.Percent = pct(g.Total, cancelled)
		g.System.Percent = pct(g.System.Count, g.Total)
		g.Buyer.Percent = pct(g.Buyer.Count, g.Total)
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Reason < out[j].Reason
	})
	return out
}
