package domain

import "strings"

// OrderFilter задаёт критерии выборки заказов. Оба критерия необязательны
// и объединяются через AND, когда заданы одновременно.
type OrderFilter struct {
	// Term — подстрока для поиска по имени, CPF и email клиента,
	// а также по названиям товаров в позициях. Регистр учитывается.
	// Терм обрезается перед проверкой: строка из одних пробелов
	// эквивалентна пустой и отключает текстовый фильтр целиком.
	Term string
	// States — допустимые состояния заказа. Пустой набор пропускает все.
	States []OrderStatus
}

// Matches сообщает, проходит ли заказ фильтр. Nil-фильтр пропускает всё.
func (f *OrderFilter) Matches(order Order) bool {
	if f == nil {
		return true
	}
	return f.matchesTerm(order) && f.matchesState(order)
}

func (f *OrderFilter) matchesTerm(order Order) bool {
	term := strings.TrimSpace(f.Term)
	if term == "" {
		return true
	}

	if strings.Contains(order.Customer.FirstName, term) ||
		strings.Contains(order.Customer.CPF, term) ||
		strings.Contains(order.Customer.Email, term) {
		return true
	}

	// Заказ без позиций сюда доходит и просто не совпадает по товарам.
	for _, line := range order.Lines {
		if strings.Contains(line.Product.Name, term) {
			return true
		}
	}
	return false
}

func (f *OrderFilter) matchesState(order Order) bool {
	if len(f.States) == 0 {
		return true
	}
	for _, state := range f.States {
		if order.Status == state {
			return true
		}
	}
	return false
}

// ApplyFilter возвращает заказы, прошедшие фильтр, сохраняя исходный порядок.
func ApplyFilter(filter *OrderFilter, orders []Order) []Order {
	if filter == nil {
		return orders
	}

	result := make([]Order, 0, len(orders))
	for _, order := range orders {
		if filter.Matches(order) {
			result = append(result, order)
		}
	}
	return result
}
