package domain

import (
	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/pedidos/internal/validate"
)

// Customer — покупатель, идентифицируемый по CPF и email.
type Customer struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Email     string
	CPF       string
}

// Valid проверяет инварианты клиента: непустые имя и фамилия,
// корректный email и валидная контрольная сумма CPF.
// Чистый предикат, ошибок не возвращает.
func (c Customer) Valid() bool {
	return c.FirstName != "" &&
		c.LastName != "" &&
		validate.Email(c.Email) &&
		validate.CPF(c.CPF)
}

// Same сравнивает клиентов только по идентификатору.
// Структурное равенство полей намеренно не учитывается.
func (c Customer) Same(other Customer) bool {
	return c.ID == other.ID
}
