package analytics

import (
	"sort"
	"strings"

	"github.com/sellerdesk/shop-manager/internal/entity"
)

const (
	defaultProductPage     = 1
	defaultProductPageSize = 50
)

// ProductRollup folds every line item across every order, regardless of
// order status, into per-product performance rows. Product cardinality
// is unbounded, so this is the one rollup whose output is paginated.
func ProductRollup(orders []entity.Order, search string, page, pageSize int) *entity.ProductPage {
	if page <= 0 {
		page = defaultProductPage
	}
	if pageSize <= 0 {
		pageSize = defaultProductPageSize
	}

	stats := make(map[int64]*entity.ProductStat)
	for _, o := range orders {
		// an order may carry several lines of the same product; order
		// counts stay per distinct order, units accumulate per line
		counted := make(map[int64]bool, len(o.Items))
		for _, it := range o.Items {
			st, ok := stats[it.ItemID]
			if !ok {
				st = &entity.ProductStat{
					ItemID: it.ItemID,
					Name:   it.ItemName,
					Image:  it.Image,
				}
				stats[it.ItemID] = st
			}
			if st.Name == "" {
				st.Name = it.ItemName
			}
			if st.Image == "" {
				st.Image = it.Image
			}
			if it.DiscountedPrice.GreaterThan(st.MaxPrice) {
				st.MaxPrice = it.DiscountedPrice
			}

			units := it.UnitsPurchased()
			st.TotalUnits += units

			var bucket *entity.ProductBucket
			switch {
			case o.OrderStatus.IsCancelled():
				bucket = &st.Cancelled
			case o.OrderStatus.IsCompleted():
				bucket = &st.Completed
			case inShipping(o.OrderStatus):
				bucket = &st.Shipping
			default:
				bucket = &st.NotShipped
			}
			bucket.Units += units
			if !counted[it.ItemID] {
				counted[it.ItemID] = true
				st.TotalOrders++
				bucket.Orders++
			}
		}
	}

	needle := strings.ToLower(strings.TrimSpace(search))
	rows := make([]entity.ProductStat, 0, len(stats))
	for _, st := range stats {
		if needle != "" && !strings.Contains(strings.ToLower(st.Name), needle) {
			continue
		}
		st.Cancelled.UnitPercent = pct(st.Cancelled.Units, st.TotalUnits)
		st.Completed.UnitPercent = pct(st.Completed.Units, st.TotalUnits)
		st.Shipping.UnitPercent = pct(st.Shipping.Units, st.TotalUnits)
		st.NotShipped.UnitPercent = pct(st.NotShipped.Units, st.TotalUnits)
		rows = append(rows, *st)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TotalUnits != rows[j].TotalUnits {
			return rows[i].TotalUnits > rows[j].TotalUnits
		}
		return rows[i].ItemID < rows[j].ItemID
	})

	total := len(rows)
	totalPages := (total + pageSize - 1) / pageSize
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return &entity.ProductPage{
		Items:      rows[start:end],
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
