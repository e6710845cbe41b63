package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product — товар, доступный для добавления в заказ.
type Product struct {
	ID   uuid.UUID
	Name string
	// Price — цена за единицу. Decimal, чтобы не терять центы на float64.
	Price decimal.Decimal
	// ExpressAvailable — товар разрешён для express-доставки.
	ExpressAvailable bool
}

// Valid проверяет инварианты товара: непустое имя и строго положительная цена.
func (p Product) Valid() bool {
	return p.Name != "" && p.Price.IsPositive()
}

// Same сравнивает товары только по идентификатору.
func (p Product) Same(other Product) bool {
	return p.ID == other.ID
}
