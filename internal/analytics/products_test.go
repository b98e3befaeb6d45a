package analytics

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellerdesk/shop-manager/internal/entity"
)

func itemOrder(id string, status entity.OrderStatus, items ...entity.OrderItem) entity.Order {
	return entity.Order{OrderID: id, OrderStatus: status, Items: items}
}

func TestProductRollupBucketsByStatusClass(t *testing.T) {
	mug := entity.OrderItem{ItemID: 1, ItemName: "ceramic mug", Quantity: 2}
	orders := []entity.Order{
		itemOrder("a", entity.StatusCompleted, mug),
		itemOrder("b", entity.StatusCancelled, mug),
		itemOrder("c", entity.StatusShipped, mug),
		itemOrder("d", entity.StatusUnpaid, mug),
	}

	page := ProductRollup(orders, "", 1, 50)
	require.Len(t, page.Items, 1)
	st := page.Items[0]

	assert.Equal(t, 8, st.TotalUnits)
	assert.Equal(t, 4, st.TotalOrders)
	assert.Equal(t, 2, st.Completed.Units)
	assert.Equal(t, 2, st.Cancelled.Units)
	assert.Equal(t, 2, st.Shipping.Units)
	assert.Equal(t, 2, st.NotShipped.Units)
	assert.Equal(t, "25", st.Completed.UnitPercent.String())
}

func TestProductRollupMaxPriceAndFirstSeenName(t *testing.T) {
	orders := []entity.Order{
		itemOrder("a", entity.StatusCompleted,
			entity.OrderItem{ItemID: 1, ItemName: "mug", Quantity: 1, DiscountedPrice: decimal.NewFromInt(90_000)}),
		itemOrder("b", entity.StatusCompleted,
			entity.OrderItem{ItemID: 1, ItemName: "mug v2", Quantity: 1, DiscountedPrice: decimal.NewFromInt(110_000)}),
	}

	page := ProductRollup(orders, "", 1, 50)
	require.Len(t, page.Items, 1)

	assert.Equal(t, "mug", page.Items[0].Name)
	assert.Equal(t, "110000", page.Items[0].MaxPrice.String())
}

func TestProductRollupSortAndPagination(t *testing.T) {
	var orders []entity.Order
	for i := 1; i <= 5; i++ {
		orders = append(orders, itemOrder(fmt.Sprintf("o-%d", i), entity.StatusCompleted,
			entity.OrderItem{ItemID: int64(i), ItemName: fmt.Sprintf("item %d", i), Quantity: i}))
	}

	page := ProductRollup(orders, "", 1, 2)
	require.Len(t, page.Items, 2)
	assert.Equal(t, int64(5), page.Items[0].ItemID)
	assert.Equal(t, int64(4), page.Items[1].ItemID)
	assert.Equal(t, 5, page.Total)
	assert.Equal(t, 3, page.TotalPages)

	last := ProductRollup(orders, "", 3, 2)
	require.Len(t, last.Items, 1)
	assert.Equal(t, int64(1), last.Items[0].ItemID)

	beyond := ProductRollup(orders, "", 9, 2)
	assert.Empty(t, beyond.Items)
	assert.Equal(t, 5, beyond.Total)
}

func TestProductRollupTieBreaksOnItemID(t *testing.T) {
	orders := []entity.Order{
		itemOrder("a", entity.StatusCompleted, entity.OrderItem{ItemID: 7, Quantity: 3}),
		itemOrder("b", entity.StatusCompleted, entity.OrderItem{ItemID: 2, Quantity: 3}),
	}

	page := ProductRollup(orders, "", 1, 50)
	require.Len(t, page.Items, 2)
	assert.Equal(t, int64(2), page.Items[0].ItemID)
	assert.Equal(t, int64(7), page.Items[1].ItemID)
}

func TestProductRollupSearch(t *testing.T) {
	orders := []entity.Order{
		itemOrder("a", entity.StatusCompleted, entity.OrderItem{ItemID: 1, ItemName: "Ceramic Mug", Quantity: 1}),
		itemOrder("b", entity.StatusCompleted, entity.OrderItem{ItemID: 2, ItemName: "Steel bottle", Quantity: 1}),
	}

	page := ProductRollup(orders, "mug", 1, 50)
	require.Len(t, page.Items, 1)
	assert.Equal(t, int64(1), page.Items[0].ItemID)
	assert.Equal(t, 1, page.Total)
}

func TestProductRollupCountsDistinctOrders(t *testing.T) {
	orders := []entity.Order{
		itemOrder("a", entity.StatusCompleted,
			entity.OrderItem{ItemID: 1, ItemName: "mug", Quantity: 2},
			entity.OrderItem{ItemID: 1, ItemName: "mug", Quantity: 3}),
		itemOrder("b", entity.StatusCompleted,
			entity.OrderItem{ItemID: 1, ItemName: "mug", Quantity: 1}),
	}

	page := ProductRollup(orders, "", 1, 50)
	require.Len(t, page.Items, 1)
	st := page.Items[0]

	assert.Equal(t, 2, st.TotalOrders)
	assert.Equal(t, 2, st.Completed.Orders)
	assert.Equal(t, 6, st.TotalUnits)
	assert.Equal(t, 6, st.Completed.Units)
}

func TestProductRollupMissingQuantityDefaultsToOne(t *testing.T) {
	orders := []entity.Order{
		itemOrder("a", entity.StatusCompleted, entity.OrderItem{ItemID: 1}),
	}

	page := ProductRollup(orders, "", 1, 50)
	require.Len(t, page.Items, 1)
	assert.Equal(t, 1, page.Items[0].TotalUnits)
}
