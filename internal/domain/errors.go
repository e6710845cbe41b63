package domain

import (
	"errors"
	"fmt"
)

// BusinessError — нарушение бизнес-правила. Код выбирает конкретное правило,
// сообщение предназначено для человека. Сравнивается через errors.Is по
// sentinel-значениям ниже.
type BusinessError struct {
	Code    string
	Message string
}

func (e *BusinessError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var (
	// ErrInvalidProduct — товар отсутствует или не проходит собственную валидацию.
	ErrInvalidProduct = &BusinessError{Code: "M01", Message: "invalid product"}
	// ErrInvalidQuantity — недопустимое количество товара.
	ErrInvalidQuantity = &BusinessError{Code: "M02", Message: "invalid product quantity"}
	// ErrOrderNotFound — заказ с указанным идентификатором не существует.
	ErrOrderNotFound = &BusinessError{Code: "M03", Message: "order does not exist"}
	// ErrInvalidCustomer — клиент отсутствует или не проходит собственную валидацию.
	ErrInvalidCustomer = &BusinessError{Code: "M04", Message: "invalid customer"}
	// ErrEmailSend — письмо о финализации не удалось отправить.
	// Смена состояния к этому моменту уже сохранена и не откатывается.
	ErrEmailSend = &BusinessError{Code: "M07", Message: "failed to send email"}
	// ErrProductNotInOrder — в составе заказа нет позиции с этим товаром.
	ErrProductNotInOrder = &BusinessError{Code: "M08", Message: "product is not part of the order"}
	// ErrOrderInvalid — заказ не проходит валидацию; сумма не может быть посчитана.
	ErrOrderInvalid = &BusinessError{Code: "M09", Message: "order is invalid"}
	// ErrProductNotExpress — товар недоступен для express-заказа.
	ErrProductNotExpress = &BusinessError{Code: "M10", Message: "product is not available for express delivery"}
)

// Ошибки хранилищ, не являющиеся нарушением бизнес-правил.
var (
	// ErrOrderExists возвращается при вставке заказа с занятым ID.
	ErrOrderExists = errors.New("order already exists")
	// ErrCustomerNotFound возвращается, если клиента нет в хранилище.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrProductNotFound возвращается, если товара нет в хранилище.
	ErrProductNotFound = errors.New("product not found")
)

// IsBusiness проверяет, является ли ошибка нарушением бизнес-правила.
func IsBusiness(err error) bool {
	var be *BusinessError
	return errors.As(err, &be)
}
