package domain

// OrderStatus is the simulated fulfillment stage shown to the shopper
// after checkout. It is cosmetic: it never reflects or influences the
// Order records held by the remote service.
type OrderStatus string

const (
	StatusReceived   OrderStatus = "Received"
	StatusProcessing OrderStatus = "Processing"
	StatusShipped    OrderStatus = "Shipped"
	StatusDelivered  OrderStatus = "Delivered"
	StatusCompleted  OrderStatus = "Completed"
)

// Next returns the successor status. ok is false when the status is
// terminal (Completed) or unknown.
func (s OrderStatus) Next() (OrderStatus, bool) {
	switch s {
	case StatusReceived:
		return StatusProcessing, true
	case StatusProcessing:
		return StatusShipped, true
	case StatusShipped:
		return StatusDelivered, true
	case StatusDelivered:
		return StatusCompleted, true
	default:
		return s, false
	}
}
