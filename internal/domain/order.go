package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus описывает жизненный цикл заказа.
type OrderStatus string

const (
	// OrderStatusOpen — заказ создан и принимает изменения состава.
	OrderStatusOpen OrderStatus = "open"
	// OrderStatusFinalized — заказ финализирован; терминальное состояние.
	OrderStatusFinalized OrderStatus = "finalized"
	// OrderStatusCancelled — заказ отменён; терминальное состояние.
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Terminal сообщает, является ли состояние конечным для жизненного цикла.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusFinalized || s == OrderStatusCancelled
}

// OrderLine — одна позиция заказа: товар и его количество.
// Позиция принадлежит ровно одному заказу; на каждый товар в заказе
// приходится не более одной позиции.
type OrderLine struct {
	Product  Product
	Quantity int
}

// Order агрегирует клиента, позиции и состояние жизненного цикла.
type Order struct {
	ID       uuid.UUID
	Customer Customer
	Lines    []OrderLine
	// Express — заказ с ускоренной доставкой; ограничивает допустимые товары.
	Express   bool
	Status    OrderStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Valid проверяет инварианты заказа: валидный клиент и либо пустой состав,
// либо каждая позиция с валидным товаром и положительным количеством.
func (o Order) Valid() bool {
	if !o.Customer.Valid() {
		return false
	}
	for _, line := range o.Lines {
		if !line.Product.Valid() || line.Quantity <= 0 {
			return false
		}
	}
	return true
}

// Total возвращает сумму заказа: Σ количество × цена по всем позициям.
// Для невалидного заказа возвращается ErrOrderInvalid, для пустого — ноль.
func (o Order) Total() (decimal.Decimal, error) {
	if !o.Valid() {
		return decimal.Zero, ErrOrderInvalid
	}

	total := decimal.Zero
	for _, line := range o.Lines {
		total = total.Add(line.Product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total, nil
}

// LineFor возвращает индекс позиции с указанным товаром или -1.
// Товары сопоставляются по идентификатору, не по содержимому.
func (o Order) LineFor(product Product) int {
	for i, line := range o.Lines {
		if line.Product.Same(product) {
			return i
		}
	}
	return -1
}

// Same сравнивает заказы только по идентификатору.
func (o Order) Same(other Order) bool {
	return o.ID == other.ID
}
