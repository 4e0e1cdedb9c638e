package orders

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"techparts-store/internal/domain"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func pendingOrder(id int64) domain.Order {
	return domain.Order{
		ID:           id,
		ProductIDs:   []int64{1},
		CustomerName: "Тестовый Клиент",
		TotalPrice:   2500,
		Status:       domain.StatusPending,
		OrderDate:    "2024-09-01 12:00",
	}
}

func TestSetStatus_StampsShippedDateOnce(t *testing.T) {
	book := New([]domain.Order{pendingOrder(1)})
	book.now = fixedClock(time.Date(2024, 9, 10, 8, 45, 30, 0, time.UTC))

	book.SetStatus(1, domain.StatusShipped)

	order, _ := book.Get(1)
	if order.ShippedDate != "2024-09-10 08:45" {
		t.Fatalf("shipped stamp = %q, want minute precision", order.ShippedDate)
	}

	// Moving away and back must not restamp.
	book.now = fixedClock(time.Date(2024, 9, 12, 17, 0, 0, 0, time.UTC))
	book.SetStatus(1, domain.StatusPending)
	book.SetStatus(1, domain.StatusShipped)

	order, _ = book.Get(1)
	if order.ShippedDate != "2024-09-10 08:45" {
		t.Errorf("shipped stamp changed to %q after revisiting the status", order.ShippedDate)
	}
	if order.Status != domain.StatusShipped {
		t.Errorf("status = %q, want shipped", order.Status)
	}
}

func TestSetStatus_StampsDeliveryDateOnce(t *testing.T) {
	book := New([]domain.Order{pendingOrder(1)})
	book.now = fixedClock(time.Date(2024, 9, 11, 23, 59, 0, 0, time.UTC))

	book.SetStatus(1, domain.StatusDelivered)

	order, _ := book.Get(1)
	if order.DeliveryDate != "2024-09-11" {
		t.Fatalf("delivery stamp = %q, want date-only", order.DeliveryDate)
	}

	book.now = fixedClock(time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC))
	book.SetStatus(1, domain.StatusProcessing)
	book.SetStatus(1, domain.StatusDelivered)

	order, _ = book.Get(1)
	if order.DeliveryDate != "2024-09-11" {
		t.Errorf("delivery stamp changed to %q after revisiting the status", order.DeliveryDate)
	}
}

func TestSetStatus_PreservesSeededStamps(t *testing.T) {
	seeded := pendingOrder(1)
	seeded.Status = domain.StatusShipped
	seeded.ShippedDate = "2024-09-09 10:15"

	book := New([]domain.Order{seeded})
	book.now = fixedClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	book.SetStatus(1, domain.StatusShipped)

	order, _ := book.Get(1)
	if order.ShippedDate != "2024-09-09 10:15" {
		t.Errorf("pre-existing stamp overwritten: %q", order.ShippedDate)
	}
}

func TestSetStatus_AnyTransitionIsAccepted(t *testing.T) {
	statuses := []domain.OrderStatus{
		domain.StatusDelivered,
		domain.StatusPending,
		domain.StatusShipped,
		domain.StatusProcessing,
		domain.StatusPending,
	}

	book := New([]domain.Order{pendingOrder(1)})
	for _, status := range statuses {
		if !book.SetStatus(1, status) {
			t.Fatalf("transition to %q was rejected", status)
		}
		order, _ := book.Get(1)
		if order.Status != status {
			t.Fatalf("status = %q, want %q", order.Status, status)
		}
	}
}

func TestSetStatus_UnknownOrderIsNoOp(t *testing.T) {
	book := New(domain.SeedOrders())
	before := book.Orders()

	if book.SetStatus(42, domain.StatusShipped) {
		t.Error("unknown order id must report a no-op")
	}
	if !reflect.DeepEqual(book.Orders(), before) {
		t.Error("order list changed after a no-op")
	}
}

func TestStatusText(t *testing.T) {
	tests := []struct {
		status domain.OrderStatus
		want   string
	}{
		{domain.StatusPending, "Ожидает"},
		{domain.StatusProcessing, "Обрабатывается"},
		{domain.StatusShipped, "Отправлен"},
		{domain.StatusDelivered, "Доставлен"},
		{domain.OrderStatus("unknown"), "unknown"},
	}
	for _, tt := range tests {
		if got := StatusText(tt.status); got != tt.want {
			t.Errorf("StatusText(%q) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestStatusBadgeVariant(t *testing.T) {
	tests := []struct {
		status domain.OrderStatus
		want   string
	}{
		{domain.StatusPending, "secondary"},
		{domain.StatusProcessing, "default"},
		{domain.StatusShipped, "outline"},
		{domain.StatusDelivered, "default"},
		{domain.OrderStatus("unknown"), "secondary"},
	}
	for _, tt := range tests {
		if got := StatusBadgeVariant(tt.status); got != tt.want {
			t.Errorf("StatusBadgeVariant(%q) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

type stubResolver map[int64]string

func (r stubResolver) FindName(id int64) string {
	if name, ok := r[id]; ok {
		return name
	}
	return fmt.Sprintf("Товар #%d", id)
}

func TestProductNames(t *testing.T) {
	order := domain.Order{ID: 1, ProductIDs: []int64{1, 2}}
	resolver := stubResolver{1: "Подшипник"}

	got := ProductNames(order, resolver)
	if len(got) != 2 {
		t.Fatalf("got %d names, want 2", len(got))
	}
	if got[0] != "Подшипник" {
		t.Errorf("names[0] = %q", got[0])
	}
	if got[1] != "Товар #2" {
		t.Errorf("names[1] = %q, want the fallback label", got[1])
	}
}
