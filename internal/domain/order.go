package domain

// OrderStatus enumerates the lifecycle states an order may display
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
)

// ParseStatus maps a raw string to an order status
func ParseStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered:
		return OrderStatus(s), true
	}
	return "", false
}

// Order represents a customer order. ProductIDs are weak references into the
// catalog: a referenced product may have been deleted since the order was
// placed, in which case display falls back to a label embedding the raw id.
type Order struct {
	ID              int64       `json:"id"`
	ProductIDs      []int64     `json:"productIds"`
	CustomerName    string      `json:"customerName"`
	CustomerPhone   string      `json:"customerPhone"`
	CustomerAddress string      `json:"customerAddress"`
	TotalPrice      float64     `json:"totalPrice"`
	Status          OrderStatus `json:"status"`
	DeliveryService string      `json:"deliveryService"`
	TrackingNumber  string      `json:"trackingNumber"`
	OrderDate       string      `json:"orderDate"`
	ShippedDate     string      `json:"shippedDate,omitempty"`
	DeliveryDate    string      `json:"deliveryDate,omitempty"`
}
