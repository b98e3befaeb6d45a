package entity

import (
	"github.com/shopspring/decimal"
)

// Tab selects which rollup(s) a report request computes.
type Tab string

const (
	TabAll       Tab = "all"
	TabCreated   Tab = "created"
	TabCompleted Tab = "completed"
	TabValue     Tab = "value"
	TabProduct   Tab = "product"
	TabStatus    Tab = "status"
	TabCancel    Tab = "cancel"
)

// ValidTabs is the set of accepted tab selectors.
var ValidTabs = map[Tab]bool{
	TabAll:       true,
	TabCreated:   true,
	TabCompleted: true,
	TabValue:     true,
	TabProduct:   true,
	TabStatus:    true,
	TabCancel:    true,
}

// Report is the response envelope for one analytics request.
type Report struct {
	Tab    Tab     `json:"tab"`
	Data   TabData `json:"data"`
	Totals Totals  `json:"totals"`
}

// TabData is a tagged union keyed by tab: exactly the requested variants
// are non-nil, all six for TabAll. Pointers keep absent variants out of
// the JSON while an empty-but-requested variant still renders its shape.
type TabData struct {
	Created      *[]DailyCreated   `json:"created,omitempty"`
	Completed    *[]DailyCompleted `json:"completed,omitempty"`
	Distribution *Distribution     `json:"value,omitempty"`
	Products     *ProductPage      `json:"product,omitempty"`
	Status       *StatusBreakdown  `json:"status,omitempty"`
	Cancel       *[]CancelGroup    `json:"cancel,omitempty"`
}

// Totals is computed once over the primary scan regardless of tab.
type Totals struct {
	Created      int             `json:"created"`
	Completed    int             `json:"completed"`
	Cancelled    int             `json:"cancelled"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
}

// DailyCreated is one local calendar day of the creation-trend rollup,
// bucketed by create_time.
type DailyCreated struct {
	Date                 string          `json:"date"`
	OrderCount           int             `json:"orderCount"`
	ProductCount         int             `json:"productCount"`
	Revenue              decimal.Decimal `json:"revenue"`
	ShippingFee          decimal.Decimal `json:"shippingFee"`
	CompletedCount       int             `json:"completedCount"`
	CompletedQuantity    int             `json:"completedQuantity"`
	CompletedRevenue     decimal.Decimal `json:"completedRevenue"`
	CompletedShippingFee decimal.Decimal `json:"completedShippingFee"`
	CancelledCount       int             `json:"cancelledCount"`
	AvgOrderValue        decimal.Decimal `json:"avgOrderValue"`
	Profit               decimal.Decimal `json:"profit"`
	ConversionRate       decimal.Decimal `json:"conversionRate"`
}

// DailyCompleted is one local calendar day of the cash-flow rollup,
// bucketed by update_time. The four derived money fields model the
// seller's net settlement and are computed in declaration order.
type DailyCompleted struct {
	Date              string          `json:"date"`
	ProductQuantity   int             `json:"productQuantity"`
	OrderCount        int             `json:"orderCount"`
	GrossSales        decimal.Decimal `json:"grossSales"`
	BuyerPaidShipping decimal.Decimal `json:"buyerPaidShipping"`
	ActualShipping    decimal.Decimal `json:"actualShipping"`
	CodFee            decimal.Decimal `json:"codFee"`
	InsuranceFee      decimal.Decimal `json:"insuranceFee"`
	ServiceFee        decimal.Decimal `json:"serviceFee"`
	TransactionFee    decimal.Decimal `json:"transactionFee"`
	Commission        decimal.Decimal `json:"commission"`
	PointsUsed        decimal.Decimal `json:"pointsUsed"`
	BankTransferFee   decimal.Decimal `json:"bankTransferFee"`
	FeeDiff           decimal.Decimal `json:"feeDiff"`
	Revenue           decimal.Decimal `json:"revenue"`
	ActualReceived    decimal.Decimal `json:"actualReceived"`
	ActualPaid        decimal.Decimal `json:"actualPaid"`
	ReturnCount       int             `json:"returnCount"`
}

// Distribution holds the value and quantity histograms over completed orders.
type Distribution struct {
	TotalCompleted  int              `json:"totalCompleted"`
	ValueBuckets    []ValueBucket    `json:"valueBuckets"`
	QuantityBuckets []QuantityBucket `json:"quantityBuckets"`
}

// ValueBucket is a half-open order-value interval; Max is nil on the
// open-ended top bucket.
type ValueBucket struct {
	Label   string           `json:"label"`
	Min     decimal.Decimal  `json:"min"`
	Max     *decimal.Decimal `json:"max,omitempty"`
	Count   int              `json:"count"`
	Revenue decimal.Decimal  `json:"revenue"`
	Percent decimal.Decimal  `json:"percent"`
}

// QuantityBucket is an inclusive per-order units interval.
type QuantityBucket struct {
	Label   string          `json:"label"`
	Min     int             `json:"min"`
	Max     int             `json:"max"`
	Count   int             `json:"count"`
	Percent decimal.Decimal `json:"percent"`
}

// ProductPage is one page of the per-product performance rollup, sorted
// by total units ordered descending.
type ProductPage struct {
	Items      []ProductStat `json:"items"`
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	PageSize   int           `json:"pageSize"`
	TotalPages int           `json:"totalPages"`
}

// ProductStat aggregates every line item of one product across the window.
type ProductStat struct {
	ItemID      int64           `json:"itemId"`
	Name        string          `json:"name"`
	Image       string          `json:"image"`
	MaxPrice    decimal.Decimal `json:"maxPrice"`
	TotalUnits  int             `json:"totalUnits"`
	TotalOrders int             `json:"totalOrders"`
	Cancelled   ProductBucket   `json:"cancelled"`
	Completed   ProductBucket   `json:"completed"`
	Shipping    ProductBucket   `json:"shipping"`
	NotShipped  ProductBucket   `json:"notShipped"`
}

// ProductBucket counts one product's orders and units in one status class.
type ProductBucket struct {
	Orders      int             `json:"orders"`
	Units       int             `json:"units"`
	UnitPercent decimal.Decimal `json:"unitPercent"`
}

// StatusBreakdown pairs the global status histogram with the daily
// status time series.
type StatusBreakdown struct {
	Global []StatusCount `json:"global"`
	Daily  []DailyStatus `json:"daily"`
}

// StatusCount is one row of the global status histogram.
type StatusCount struct {
	Status  OrderStatus     `json:"status"`
	Label   string          `json:"label"`
	Count   int             `json:"count"`
	Revenue decimal.Decimal `json:"revenue"`
	Percent decimal.Decimal `json:"percent"`
}

// DailyStatus classifies one local day's orders into six display buckets.
type DailyStatus struct {
	Date      string     `json:"date"`
	Confirmed StatusSlot `json:"confirmed"`
	Packaging StatusSlot `json:"packaging"`
	Shipping  StatusSlot `json:"shipping"`
	Completed StatusSlot `json:"completed"`
	Cancelled StatusSlot `json:"cancelled"`
	Returned  StatusSlot `json:"returned"`
	Total     int        `json:"total"`
}

// StatusSlot is a running count and revenue sum for one display bucket.
type StatusSlot struct {
	Count   int             `json:"count"`
	Revenue decimal.Decimal `json:"revenue"`
}

// CancelGroup is one cancellation-reason group, split by initiator.
type CancelGroup struct {
	Reason  string          `json:"reason"`
	Label   string          `json:"label"`
	Total   int             `json:"total"`
	Percent decimal.Decimal `json:"percent"`
	System  CancelSplit     `json:"system"`
	Buyer   CancelSplit     `json:"buyer"`
}

// CancelSplit is one initiator's share of a cancellation-reason group.
type CancelSplit struct {
	Count   int             `json:"count"`
	Percent decimal.Decimal `json:"percent"`
}
