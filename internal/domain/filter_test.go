package domain_test

import (
	"testing"

	"github.com/vladislavdragonenkov/pedidos/internal/domain"
)

func makeOrders() []domain.Order {
	coffee := makeOrder()
	coffee.Lines[0].Product.Name = "Café Especial"

	milk := makeOrder()
	milk.Lines[0].Product.Name = "Leite Integral"
	milk.Status = domain.OrderStatusFinalized

	empty := makeOrder()
	empty.Lines = nil
	empty.Customer.FirstName = "Joana"
	empty.Status = domain.OrderStatusCancelled

	return []domain.Order{coffee, milk, empty}
}

func TestApplyFilter_Nil(t *testing.T) {
	orders := makeOrders()
	got := domain.ApplyFilter(nil, orders)
	if len(got) != len(orders) {
		t.Fatalf("nil filter kept %d orders, want %d", len(got), len(orders))
	}
	for i := range got {
		if !got[i].Same(orders[i]) {
			t.Fatalf("order at %d reordered", i)
		}
	}
}

func TestApplyFilter_Term(t *testing.T) {
	orders := makeOrders()

	cases := []struct {
		name string
		term string
		want int
	}{
		{name: "product name", term: "Café", want: 1},
		{name: "customer first name", term: "Joana", want: 1},
		{name: "customer email", term: "@example.com", want: 3},
		{name: "cpf fragment", term: "580.276", want: 3},
		{name: "case sensitive", term: "café", want: 0},
		{name: "no match", term: "Chocolate", want: 0},
		{name: "empty disables", term: "", want: 3},
		{name: "whitespace only disables", term: "   ", want: 3},
		{name: "term is trimmed", term: "  Café  ", want: 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := domain.ApplyFilter(&domain.OrderFilter{Term: tc.term}, orders)
			if len(got) != tc.want {
				t.Fatalf("term %q kept %d orders, want %d", tc.term, len(got), tc.want)
			}
		})
	}
}

func TestApplyFilter_States(t *testing.T) {
	orders := makeOrders()

	open := domain.ApplyFilter(&domain.OrderFilter{States: []domain.OrderStatus{domain.OrderStatusOpen}}, orders)
	if len(open) != 1 || open[0].Status != domain.OrderStatusOpen {
		t.Fatalf("expected exactly one open order, got %d", len(open))
	}

	terminal := domain.ApplyFilter(&domain.OrderFilter{
		States: []domain.OrderStatus{domain.OrderStatusFinalized, domain.OrderStatusCancelled},
	}, orders)
	if len(terminal) != 2 {
		t.Fatalf("expected two terminal orders, got %d", len(terminal))
	}

	// Пустой набор состояний — no-op.
	all := domain.ApplyFilter(&domain.OrderFilter{States: nil}, orders)
	if len(all) != 3 {
		t.Fatalf("empty state set kept %d orders, want 3", len(all))
	}
}

func TestApplyFilter_Combined(t *testing.T) {
	orders := makeOrders()

	got := domain.ApplyFilter(&domain.OrderFilter{
		Term:   "Leite",
		States: []domain.OrderStatus{domain.OrderStatusFinalized},
	}, orders)
	if len(got) != 1 {
		t.Fatalf("combined filter kept %d orders, want 1", len(got))
	}

	// Терм совпадает, но состояние нет: критерии объединяются через AND.
	got = domain.ApplyFilter(&domain.OrderFilter{
		Term:   "Leite",
		States: []domain.OrderStatus{domain.OrderStatusOpen},
	}, orders)
	if len(got) != 0 {
		t.Fatalf("combined filter kept %d orders, want 0", len(got))
	}
}

func TestApplyFilter_EmptyOrderDoesNotPanic(t *testing.T) {
	order := makeOrder()
	order.Lines = nil

	got := domain.ApplyFilter(&domain.OrderFilter{Term: "Café"}, []domain.Order{order})
	if len(got) != 0 {
		t.Fatalf("order without lines must not match a product term")
	}
}
