package orderControllers

import (
	"strings"
	"testing"

	"github.com/OsorioJc-696/Ecommerce-Jc/models"
)

func TestComputeTotals(t *testing.T) {
	// Two units of a 100.00 product, one gift-wrapped 50.00 product
	items := []models.OrderItem{
		{Name: "A", Price: 100.00, Quantity: 2, GiftWrap: false},
		{Name: "B", Price: 50.00, Quantity: 1, GiftWrap: true},
	}

	subtotal, giftWrapTotal, total := computeTotals(items)
	if subtotal != 250.00 {
		t.Errorf("expected subtotal 250.00, got %v", subtotal)
	}
	if giftWrapTotal != 10.00 {
		t.Errorf("expected giftWrapTotal 10.00, got %v", giftWrapTotal)
	}
	if total != 260.00 {
		t.Errorf("expected total 260.00, got %v", total)
	}
}

func TestComputeTotalsGiftWrapIsPerUnit(t *testing.T) {
	items := []models.OrderItem{
		{Name: "B", Price: 50.00, Quantity: 3, GiftWrap: true},
	}

	_, giftWrapTotal, _ := computeTotals(items)
	if want := 3 * models.GiftWrapPerUnit; giftWrapTotal != want {
		t.Errorf("expected giftWrapTotal %v for 3 wrapped units, got %v", want, giftWrapTotal)
	}
}

func TestComputeTotalsIdentity(t *testing.T) {
	items := []models.OrderItem{
		{Price: 19.99, Quantity: 4, GiftWrap: true},
		{Price: 5.50, Quantity: 2},
		{Price: 120.00, Quantity: 1, GiftWrap: true},
	}

	subtotal, giftWrapTotal, total := computeTotals(items)
	if total != subtotal+giftWrapTotal {
		t.Errorf("total %v != subtotal %v + giftWrapTotal %v", total, subtotal, giftWrapTotal)
	}
}

func TestComputeTotalsEmpty(t *testing.T) {
	subtotal, giftWrapTotal, total := computeTotals(nil)
	if subtotal != 0 || giftWrapTotal != 0 || total != 0 {
		t.Errorf("expected zero totals for empty input, got %v %v %v", subtotal, giftWrapTotal, total)
	}
}

func TestParsePaymentMethod(t *testing.T) {
	valid := []string{"card", "paypal", "crypto", "yape", "plin", "tunki", "other", "CARD", "Yape"}
	for _, in := range valid {
		if _, err := parsePaymentMethod(in); err != nil {
			t.Errorf("expected %q to be a valid payment method, got %v", in, err)
		}
	}

	invalid := []string{"", "cash", "bitcoin", "card "}
	for _, in := range invalid {
		if _, err := parsePaymentMethod(in); err == nil {
			t.Errorf("expected %q to be rejected", in)
		}
	}
}

func TestParseOrderStatus(t *testing.T) {
	for _, in := range []string{"processing", "Shipped", "DELIVERED", "cancelled"} {
		if _, err := parseOrderStatus(in); err != nil {
			t.Errorf("expected %q to be a valid status, got %v", in, err)
		}
	}
	for _, in := range []string{"", "pending", "returned"} {
		if _, err := parseOrderStatus(in); err == nil {
			t.Errorf("expected %q to be rejected", in)
		}
	}
}

func TestNewOrderIDFormat(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := newOrderID()
		parts := strings.Split(id, "-")
		if len(parts) != 3 || parts[0] != "ORD" {
			t.Fatalf("unexpected order id format: %s", id)
		}
		if len(parts[2]) != 6 {
			t.Fatalf("expected 6-char suffix, got %s", id)
		}
		if parts[2] != strings.ToUpper(parts[2]) {
			t.Fatalf("expected upper-case suffix, got %s", id)
		}
	}
}
