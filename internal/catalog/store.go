package catalog

import (
	"fmt"
	"strings"
	"time"

	"techparts-store/internal/domain"
)

// PlaceholderImage is substituted when a draft carries no image URL.
const PlaceholderImage = "/placeholder.svg"

// Draft carries the raw admin input for a new product. Specifications arrive
// as a single comma-delimited string, the way the admin form collects them.
type Draft struct {
	Name           string
	Description    string
	Price          float64
	Category       string
	Image          string
	Specifications string
}

// Store owns the set of products known to the system. It is the source of
// truth for product existence and availability; orders and the cart reference
// products by id only and never mutate the store.
type Store struct {
	products []domain.Product
	lastID   int64
	now      func() time.Time
}

// New creates a store pre-populated with the given products.
func New(initial []domain.Product) *Store {
	s := &Store{
		products: append([]domain.Product(nil), initial...),
		now:      time.Now,
	}
	for _, p := range initial {
		if p.ID > s.lastID {
			s.lastID = p.ID
		}
	}
	return s
}

// Add creates a product from a draft. Drafts with an empty name, empty
// description or zero price are dropped without any mutation; the admin form
// keeps its submit control disabled in that case, so no error surfaces here.
// New products are always in stock.
func (s *Store) Add(draft Draft) (domain.Product, bool) {
	if draft.Name == "" || draft.Description == "" || draft.Price == 0 {
		return domain.Product{}, false
	}

	image := draft.Image
	if image == "" {
		image = PlaceholderImage
	}

	product := domain.Product{
		ID:             s.nextID(),
		Name:           draft.Name,
		Description:    draft.Description,
		Price:          draft.Price,
		Category:       draft.Category,
		Image:          image,
		Specifications: splitSpecifications(draft.Specifications),
		InStock:        true,
	}

	s.products = append(s.products, product)
	return product, true
}

// Update replaces the stored record matching product.ID wholesale. Unknown
// ids are a no-op.
func (s *Store) Update(product domain.Product) bool {
	for i := range s.products {
		if s.products[i].ID == product.ID {
			s.products[i] = product
			return true
		}
	}
	return false
}

// Remove deletes the product with the given id. Unknown ids are a no-op.
// Orders and cart entries referencing the id are left alone; their display
// falls back to FindName's label.
func (s *Store) Remove(id int64) bool {
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return true
		}
	}
	return false
}

// ToggleStock flips the availability flag of the product with the given id.
// Unknown ids are a no-op.
func (s *Store) ToggleStock(id int64) bool {
	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i].InStock = !s.products[i].InStock
			return true
		}
	}
	return false
}

// Search returns the products whose name, description or category contains
// the query, case-insensitively. An empty query returns the full catalog.
// Results keep catalog order.
func (s *Store) Search(query string) []domain.Product {
	if query == "" {
		return s.Products()
	}

	q := strings.ToLower(query)
	matches := []domain.Product{}
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			matches = append(matches, p)
		}
	}
	return matches
}

// Get returns the product with the given id.
func (s *Store) Get(id int64) (domain.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// FindName resolves a product id to its display name. Missing products
// resolve to a label embedding the raw id, never an error; order and cart
// rendering rely on this after a product has been deleted.
func (s *Store) FindName(id int64) string {
	if p, ok := s.Get(id); ok {
		return p.Name
	}
	return fmt.Sprintf("Товар #%d", id)
}

// Products returns a copy of the full catalog in insertion order.
func (s *Store) Products() []domain.Product {
	return append([]domain.Product(nil), s.products...)
}

// nextID assigns ids from the millisecond clock, bumped past the last
// assigned id so two drafts added within the same millisecond stay unique.
func (s *Store) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func splitSpecifications(input string) []string {
	parts := strings.Split(input, ",")
	specs := make([]string, len(parts))
	for i, part := range parts {
		specs[i] = strings.TrimSpace(part)
	}
	return specs
}
