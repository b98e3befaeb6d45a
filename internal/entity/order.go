package entity

import (
	"github.com/shopspring/decimal"
)

// OrderStatus is the vendor-assigned status of a marketplace order.
type OrderStatus string

func (os OrderStatus) String() string {
	return string(os)
}

const (
	StatusUnpaid           OrderStatus = "UNPAID"
	StatusReadyToShip      OrderStatus = "READY_TO_SHIP"
	StatusProcessed        OrderStatus = "PROCESSED"
	StatusShipped          OrderStatus = "SHIPPED"
	StatusToConfirmReceive OrderStatus = "TO_CONFIRM_RECEIVE"
	StatusCompleted        OrderStatus = "COMPLETED"
	StatusToReturn         OrderStatus = "TO_RETURN"
	StatusInCancel         OrderStatus = "IN_CANCEL"
	StatusCancelled        OrderStatus = "CANCELLED"
	StatusInvoicePending   OrderStatus = "INVOICE_PENDING"
	StatusPending          OrderStatus = "PENDING"
)

// ValidOrderStatuses is the set of statuses the sync pipeline may write.
var ValidOrderStatuses = map[OrderStatus]bool{
	StatusUnpaid:           true,
	StatusReadyToShip:      true,
	StatusProcessed:        true,
	StatusShipped:          true,
	StatusToConfirmReceive: true,
	StatusCompleted:        true,
	StatusToReturn:         true,
	StatusInCancel:         true,
	StatusCancelled:        true,
	StatusInvoicePending:   true,
	StatusPending:          true,
}

// IsCancelled reports whether the order is in a cancelled state,
// including cancellations still pending marketplace confirmation.
func (os OrderStatus) IsCancelled() bool {
	return os == StatusCancelled || os == StatusInCancel
}

func (os OrderStatus) IsCompleted() bool {
	return os == StatusCompleted
}

// CancelByPlatform marks cancellations initiated by the marketplace itself
// (payment timeout, fraud checks); anything else counts as buyer-initiated.
const CancelByPlatform = "system"

// Order is a synced marketplace order. The analytics engine never mutates
// orders; records are written by the sync pipeline and read here as a
// snapshot. Timestamps are vendor epoch seconds in UTC.
type Order struct {
	OrderID     string      `db:"order_id" json:"orderId"`
	ShopID      int64       `db:"shop_id" json:"shopId"`
	Platform    string      `db:"platform" json:"platform"`
	CreateTime  int64       `db:"create_time" json:"createTime"`
	UpdateTime  int64       `db:"update_time" json:"updateTime"`
	OrderStatus OrderStatus `db:"order_status" json:"orderStatus"`

	TotalAmount decimal.Decimal `db:"total_amount" json:"totalAmount"`

	ActualShippingFee    decimal.Decimal `db:"actual_shipping_fee" json:"actualShippingFee"`
	EstimatedShippingFee decimal.Decimal `db:"estimated_shipping_fee" json:"estimatedShippingFee"`
	BuyerPaidShippingFee decimal.Decimal `db:"buyer_paid_shipping_fee" json:"buyerPaidShippingFee"`
	CodFee               decimal.Decimal `db:"cod_fee" json:"codFee"`
	InsuranceFee         decimal.Decimal `db:"insurance_fee" json:"insuranceFee"`
	ServiceFee           decimal.Decimal `db:"service_fee" json:"serviceFee"`
	TransactionFee       decimal.Decimal `db:"transaction_fee" json:"transactionFee"`
	CommissionFee        decimal.Decimal `db:"commission_fee" json:"commissionFee"`
	PointsUsed           decimal.Decimal `db:"points_used" json:"pointsUsed"`
	BankTransferFee      decimal.Decimal `db:"bank_transfer_fee" json:"bankTransferFee"`

	CancelReason      string `db:"cancel_reason" json:"cancelReason"`
	BuyerCancelReason string `db:"buyer_cancel_reason" json:"buyerCancelReason"`
	CancelBy          string `db:"cancel_by" json:"cancelBy"`

	Items []OrderItem `db:"-" json:"itemList"`
}

// OrderItem is a single line item of an order.
type OrderItem struct {
	ShopID          int64           `db:"shop_id" json:"-"`
	OrderID         string          `db:"order_id" json:"-"`
	ItemID          int64           `db:"item_id" json:"itemId"`
	ItemName        string          `db:"item_name" json:"itemName"`
	Image           string          `db:"image" json:"image"`
	Quantity        int             `db:"quantity" json:"quantityPurchased"`
	DiscountedPrice decimal.Decimal `db:"discounted_price" json:"discountedUnitPrice"`
}

// UnitsPurchased returns the line quantity, defaulting to 1 when the
// marketplace omitted it.
func (oi OrderItem) UnitsPurchased() int {
	if oi.Quantity <= 0 {
		return 1
	}
	return oi.Quantity
}

// UnitsOrdered sums line-item quantities across the order.
func (o Order) UnitsOrdered() int {
	units := 0
	for _, it := range o.Items {
		units += it.UnitsPurchased()
	}
	return units
}
