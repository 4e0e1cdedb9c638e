package cart

import "techparts-store/internal/domain"

// Session aggregates the products selected during the current browsing
// session. It lives and dies with the process: nothing here is ever written
// to durable storage, matching the reference behavior.
//
// Callers are expected to offer the add action only for products that are
// currently in stock; the session itself does not re-check availability.
type Session struct {
	items []domain.CartItem
}

// New creates an empty cart session.
func New() *Session {
	return &Session{}
}

// Add puts a product into the cart. Re-adding a product that is already
// present increments its quantity instead of duplicating the entry.
func (s *Session) Add(product domain.Product) {
	for i := range s.items {
		if s.items[i].ID == product.ID {
			s.items[i].Quantity++
			return
		}
	}
	s.items = append(s.items, domain.CartItem{Product: product, Quantity: 1})
}

// Remove deletes the entry for the given product id entirely, regardless of
// quantity. Unknown ids are a no-op.
func (s *Session) Remove(productID int64) {
	for i := range s.items {
		if s.items[i].ID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Total returns the cart total, recomputed on demand.
func (s *Session) Total() float64 {
	var total float64
	for _, item := range s.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// ItemCount returns the sum of quantities, used for the badge counter.
func (s *Session) ItemCount() int {
	var count int
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// Items returns a copy of the cart contents.
func (s *Session) Items() []domain.CartItem {
	return append([]domain.CartItem(nil), s.items...)
}

// Clear empties the cart. This is the only way the cart is ever cleared.
func (s *Session) Clear() {
	s.items = nil
}
