package orders

import "techparts-store/internal/domain"

// NameResolver resolves a product id to a display name, falling back to a
// label when the product no longer exists. catalog.Store satisfies it.
type NameResolver interface {
	FindName(id int64) string
}

// StatusText maps a status to its localized label.
func StatusText(status domain.OrderStatus) string {
	switch status {
	case domain.StatusPending:
		return "Ожидает"
	case domain.StatusProcessing:
		return "Обрабатывается"
	case domain.StatusShipped:
		return "Отправлен"
	case domain.StatusDelivered:
		return "Доставлен"
	default:
		return string(status)
	}
}

// StatusBadgeVariant maps a status to the visual emphasis category the
// presentation layer renders it with.
func StatusBadgeVariant(status domain.OrderStatus) string {
	switch status {
	case domain.StatusPending:
		return "secondary"
	case domain.StatusProcessing:
		return "default"
	case domain.StatusShipped:
		return "outline"
	case domain.StatusDelivered:
		return "default"
	default:
		return "secondary"
	}
}

// ProductNames resolves an order's product references to display names.
func ProductNames(order domain.Order, resolver NameResolver) []string {
	names := make([]string, len(order.ProductIDs))
	for i, id := range order.ProductIDs {
		names[i] = resolver.FindName(id)
	}
	return names
}
