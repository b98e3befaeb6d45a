package store

import (
	"context"
	"fmt"

	"github.com/sellerdesk/shop-manager/internal/dependency"
	"github.com/sellerdesk/shop-manager/internal/entity"
)

type ordersStore struct {
	*MYSQLStore
}

func (ms *MYSQLStore) Orders() dependency.Orders {
	return &ordersStore{MYSQLStore: ms}
}

const orderColumns = `order_id, shop_id, platform, create_time, update_time, order_status,
	total_amount, actual_shipping_fee, estimated_shipping_fee, buyer_paid_shipping_fee,
	cod_fee, insurance_fee, service_fee, transaction_fee, commission_fee, points_used,
	bank_transfer_fee, cancel_reason, buyer_cancel_reason, cancel_by`

func (os *ordersStore) CreatedInWindow(shopID, from, to int64) dependency.OrderPager {
	query := fmt.Sprintf(`
		SELECT %s FROM shop_order
		WHERE shop_id = :shopId AND create_time >= :from AND create_time <= :to
		ORDER BY create_time ASC, order_id ASC
		LIMIT :limit OFFSET :offset
	`, orderColumns)
	return NewPager(func(ctx context.Context, limit, offset int) ([]entity.Order, error) {
		return os.fetchOrderPage(ctx, query, map[string]any{
			"shopId": shopID,
			"from":   from,
			"to":     to,
			"limit":  limit,
			"offset": offset,
		})
	}, scanPageSize)
}

func (os *ordersStore) ReturnedInWindow(shopID, from, to int64) dependency.OrderPager {
	query := fmt.Sprintf(`
		SELECT %s FROM shop_order
		WHERE shop_id = :shopId AND order_status = :status
		AND update_time >= :from AND update_time <= :to
		ORDER BY update_time ASC, order_id ASC
		LIMIT :limit OFFSET :offset
	`, orderColumns)
	return NewPager(func(ctx context.Context, limit, offset int) ([]entity.Order, error) {
		return os.fetchOrderPage(ctx, query, map[string]any{
			"shopId": shopID,
			"status": entity.StatusToReturn.String(),
			"from":   from,
			"to":     to,
			"limit":  limit,
			"offset": offset,
		})
	}, scanPageSize)
}

// Get fetches a single synced order with its line items. The sync
// pipeline uses it to diff incoming records against the stored state.
func (os *ordersStore) Get(ctx context.Context, shopID int64, orderID string) (*entity.Order, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM shop_order
		WHERE shop_id = :shopId AND order_id = :orderId
	`, orderColumns)
	o, err := QueryNamedOne[entity.Order](ctx, os.DB(), query, map[string]any{
		"shopId":  shopID,
		"orderId": orderID,
	})
	if err != nil {
		return nil, fmt.Errorf("get order %s: %w", orderID, err)
	}
	orders := []entity.Order{o}
	if err := os.attachItems(ctx, orders); err != nil {
		return nil, err
	}
	return &orders[0], nil
}

func (os *ordersStore) fetchOrderPage(ctx context.Context, query string, params map[string]any) ([]entity.Order, error) {
	orders, err := QueryListNamed[entity.Order](ctx, os.DB(), query, params)
	if err != nil {
		return nil, fmt.Errorf("fetch order page: %w", err)
	}
	if len(orders) == 0 {
		return orders, nil
	}
	if err := os.attachItems(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// attachItems loads line items for a page of orders in one query.
func (os *ordersStore) attachItems(ctx context.Context, orders []entity.Order) error {
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.OrderID)
	}
	items, err := QueryListNamed[entity.OrderItem](ctx, os.DB(), `
		SELECT shop_id, order_id, item_id, item_name, image, quantity, discounted_price
		FROM shop_order_item
		WHERE shop_id = :shopId AND order_id IN (:orderIds)
		ORDER BY order_id, item_id
	`, map[string]any{
		"shopId":   orders[0].ShopID,
		"orderIds": ids,
	})
	if err != nil {
		return fmt.Errorf("fetch order items: %w", err)
	}

	byOrder := make(map[string][]entity.OrderItem, len(orders))
	for _, it := range items {
		byOrder[it.OrderID] = append(byOrder[it.OrderID], it)
	}
	for i := range orders {
		orders[i].Items = byOrder[orders[i].OrderID]
	}
	return nil
}

// Upsert replaces synced orders and their line items. Called by the
// marketplace sync pipeline; the analytics engine never writes.
func (os *ordersStore) Upsert(ctx context.Context, orders []entity.Order) error {
	if len(orders) == 0 {
		return nil
	}
	for _, o := range orders {
		if !entity.ValidOrderStatuses[o.OrderStatus] {
			return fmt.Errorf("unknown order status %q on order %s", o.OrderStatus, o.OrderID)
		}
	}
	return os.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		for _, o := range orders {
			err := ExecNamed(ctx, rep.DB(), `
				REPLACE INTO shop_order (order_id, shop_id, platform, create_time, update_time,
					order_status, total_amount, actual_shipping_fee, estimated_shipping_fee,
					buyer_paid_shipping_fee, cod_fee, insurance_fee, service_fee, transaction_fee,
					commission_fee, points_used, bank_transfer_fee, cancel_reason,
					buyer_cancel_reason, cancel_by)
				VALUES (:orderId, :shopId, :platform, :createTime, :updateTime, :orderStatus,
					:totalAmount, :actualShippingFee, :estimatedShippingFee, :buyerPaidShippingFee,
					:codFee, :insuranceFee, :serviceFee, :transactionFee, :commissionFee,
					:pointsUsed, :bankTransferFee, :cancelReason, :buyerCancelReason, :cancelBy)
			`, map[string]any{
				"orderId":              o.OrderID,
				"shopId":               o.ShopID,
				"platform":             o.Platform,
				"createTime":           o.CreateTime,
				"updateTime":           o.UpdateTime,
				"orderStatus":          o.OrderStatus.String(),
				"totalAmount":          o.TotalAmount,
				"actualShippingFee":    o.ActualShippingFee,
				"estimatedShippingFee": o.EstimatedShippingFee,
				"buyerPaidShippingFee": o.BuyerPaidShippingFee,
				"codFee":               o.CodFee,
				"insuranceFee":         o.InsuranceFee,
				"serviceFee":           o.ServiceFee,
				"transactionFee":       o.TransactionFee,
				"commissionFee":        o.CommissionFee,
				"pointsUsed":           o.PointsUsed,
				"bankTransferFee":      o.BankTransferFee,
				"cancelReason":         o.CancelReason,
				"buyerCancelReason":    o.BuyerCancelReason,
				"cancelBy":             o.CancelBy,
			})
			if err != nil {
				return fmt.Errorf("upsert order %s: %w", o.OrderID, err)
			}

			err = ExecNamed(ctx, rep.DB(), `
				DELETE FROM shop_order_item WHERE shop_id = :shopId AND order_id = :orderId
			`, map[string]any{"shopId": o.ShopID, "orderId": o.OrderID})
			if err != nil {
				return fmt.Errorf("clear items of order %s: %w", o.OrderID, err)
			}

			for _, it := range o.Items {
				err = ExecNamed(ctx, rep.DB(), `
					INSERT INTO shop_order_item (shop_id, order_id, item_id, item_name, image,
						quantity, discounted_price)
					VALUES (:shopId, :orderId, :itemId, :itemName, :image, :quantity, :discountedPrice)
				`, map[string]any{
					"shopId":          o.ShopID,
					"orderId":         o.OrderID,
					"itemId":          it.ItemID,
					"itemName":        it.ItemName,
					"image":           it.Image,
					"quantity":        it.UnitsPurchased(),
					"discountedPrice": it.DiscountedPrice,
				})
				if err != nil {
					return fmt.Errorf("insert item %d of order %s: %w", it.ItemID, o.OrderID, err)
				}
			}
		}
		return nil
	})
}
