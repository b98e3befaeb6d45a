package analytics

import (
	"github.com/sellerdesk/shop-manager/internal/entity"
	"github.com/shopspring/decimal"
)

// valueBucketBound defines one half-open [Min, Max) order-value
// interval in VND; a nil Max is open-ended.
type valueBucketBound struct {
	label string
	min   int64
	max   int64 // 0 means unbounded
}

var valueBucketBounds = []valueBucketBound{
	{label: "<200K", min: 0, max: 200_000},
	{label: "200K-500K", min: 200_000, max: 500_000},
	{label: "500K-1M", min: 500_000, max: 1_000_000},
	{label: "1M-2M", min: 1_000_000, max: 2_000_000},
	{label: ">=2M", min: 2_000_000, max: 0},
}

// quantityBucketBound defines one inclusive per-order units interval;
// Max 0 is open-ended.
type quantityBucketBound struct {
	label string
	min   int
	max   int
}

var quantityBucketBounds = []quantityBucketBound{
	{label: "1", min: 1, max: 1},
	{label: "2", min: 2, max: 2},
	{label: "3", min: 3, max: 3},
	{label: "4", min: 4, max: 4},
	{label: "5", min: 5, max: 5},
	{label: "6-7", min: 6, max: 7},
	{label: "8-10", min: 8, max: 10},
	{label: "11+", min: 11, max: 0},
}

// DistributionRollup builds the order-value and order-quantity
// histograms over COMPLETED orders only. Buckets partition their domain,
// so every completed order lands in exactly one bucket of each set.
func DistributionRollup(orders []entity.Order) *entity.Distribution {
	dist := &entity.Distribution{
		ValueBuckets:    make([]entity.ValueBucket, len(valueBucketBounds)),
		QuantityBuckets: make([]entity.QuantityBucket, len(quantityBucketBounds)),
	}
	for i, b := range valueBucketBounds {
		dist.ValueBuckets[i] = entity.ValueBucket{
			Label: b.label,
			Min:   decimal.NewFromInt(b.min),
		}
		if b.max > 0 {
			max := decimal.NewFromInt(b.max)
			dist.ValueBuckets[i].Max = &max
		}
	}
	for i, b := range quantityBucketBounds {
		dist.QuantityBuckets[i] = entity.QuantityBucket{
			Label: b.label,
			Min:   b.min,
			Max:   b.max,
		}
	}

	for _, o := range orders {
		if !o.OrderStatus.IsCompleted() {
			continue
		}
		dist.TotalCompleted++

		for i, b := range valueBucketBounds {
			if o.TotalAmount.LessThan(decimal.NewFromInt(b.min)) {
				continue
			}
			if b.max > 0 && !o.TotalAmount.LessThan(decimal.NewFromInt(b.max)) {
				continue
			}
			dist.ValueBuckets[i].Count++
			dist.ValueBuckets[i].Revenue = dist.ValueBuckets[i].Revenue.Add(o.TotalAmount)
			break
		}

		units := o.UnitsOrdered()
		for i, b := range quantityBucketBounds {
			if units < b.min || (b.max > 0 && units > b.max) {
				continue
			}
			dist.QuantityBuckets[i].Count++
			break
		}
	}

	for i := range dist.ValueBuckets {
		dist.ValueBuckets[i].Percent = pct(dist.ValueBuckets[i].Count, dist.TotalCompleted)
	}
	for i := range dist.QuantityBuckets {
		dist.QuantityBuckets[i].Percent = pct(dist.QuantityBuckets[i].Count, dist.TotalCompleted)
	}
	return dist
}
