package orders

import (
	"time"

	"techparts-store/internal/domain"
)

// Stamp layouts: the shipped stamp keeps minute precision while the delivery
// stamp is date-only. The distinction is part of the observed behavior and is
// kept as-is.
const (
	shippedStampLayout  = "2006-01-02 15:04"
	deliveryStampLayout = "2006-01-02"
)

// Book owns the set of customer orders. It reads product names from the
// catalog for display only and never touches catalog state.
type Book struct {
	orders []domain.Order
	now    func() time.Time
}

// New creates a book pre-populated with the given orders.
func New(initial []domain.Order) *Book {
	return &Book{
		orders: append([]domain.Order(nil), initial...),
		now:    time.Now,
	}
}

// SetStatus assigns a status to the order with the given id. Any status may
// be set from any other status; the lifecycle is deliberately permissive and
// no transition is ever rejected. Unknown ids are a no-op.
//
// The shipped and delivery stamps are set exactly once, the first time the
// order reaches the corresponding status. They record the first occurrence
// and are never cleared or overwritten by later transitions, including
// leaving the status and coming back to it.
func (b *Book) SetStatus(id int64, status domain.OrderStatus) bool {
	for i := range b.orders {
		if b.orders[i].ID != id {
			continue
		}

		order := &b.orders[i]
		order.Status = status

		if status == domain.StatusShipped && order.ShippedDate == "" {
			order.ShippedDate = b.now().UTC().Format(shippedStampLayout)
		}
		if status == domain.StatusDelivered && order.DeliveryDate == "" {
			order.DeliveryDate = b.now().UTC().Format(deliveryStampLayout)
		}
		return true
	}
	return false
}

// Get returns the order with the given id.
func (b *Book) Get(id int64) (domain.Order, bool) {
	for _, o := range b.orders {
		if o.ID == id {
			return o, true
		}
	}
	return domain.Order{}, false
}

// Orders returns a copy of all orders in insertion order.
func (b *Book) Orders() []domain.Order {
	return append([]domain.Order(nil), b.orders...)
}
