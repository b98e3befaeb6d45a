package analytics

import (
	"github.com/sellerdesk/shop-manager/internal/entity"
)

// statusLabels maps vendor statuses to dashboard display labels.
var statusLabels = map[entity.OrderStatus]string{
	entity.StatusUnpaid:           "Unpaid",
	entity.StatusReadyToShip:      "Ready to ship",
	entity.StatusProcessed:        "Processing",
	entity.StatusShipped:          "Shipping",
	entity.StatusToConfirmReceive: "To confirm receive",
	entity.StatusCompleted:        "Completed",
	entity.StatusToReturn:         "Return requested",
	entity.StatusInCancel:         "Cancelling",
	entity.StatusCancelled:        "Cancelled",
	entity.StatusInvoicePending:   "Invoice pending",
	entity.StatusPending:          "Pending",
}

// StatusLabel returns the display label for a status, falling back to
// the raw status string when unmapped.
func StatusLabel(s entity.OrderStatus) string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return s.String()
}

// cancelReasonLabels maps raw marketplace cancel-reason codes to display
// labels. Unmapped reasons fall through as-is.
var cancelReasonLabels = map[string]string{
	"OUT_OF_STOCK":                    "Out of stock",
	"CUSTOMER_REQUEST":                "Customer request",
	"UNDELIVERABLE_AREA":              "Undeliverable area",
	"COD_NOT_SUPPORTED":               "COD not supported",
	"NEED_TO_CHANGE_DELIVERY_ADDRESS": "Delivery address change",
	"SELLER_DID_NOT_SHIP":             "Seller did not ship",
	"DONT_WANT_TO_BUY_ANYMORE":        "Buyer changed mind",
	"FOUND_CHEAPER_ELSEWHERE":         "Found cheaper elsewhere",
	"MODIFY_EXISTING_ORDER":           "Order modification",
	"PAYMENT_TIMEOUT":                 "Payment timeout",
	"UNPAID":                          "Unpaid order",
	"SYSTEM_CANCEL":                   "System cancellation",
}

// CancelReasonLabel returns the display label for a cancel reason,
// falling back to the raw reason when unmapped.
func CancelReasonLabel(reason string) string {
	if l, ok := cancelReasonLabels[reason]; ok {
		return l
	}
	return reason
}

// inShipping reports the statuses treated as "in shipping" by the
// per-product rollup.
func inShipping(s entity.OrderStatus) bool {
	switch s {
	case entity.StatusShipped, entity.StatusReadyToShip, entity.StatusToConfirmReceive:
		return true
	}
	return false
}
