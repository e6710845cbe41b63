package domain

import "github.com/google/uuid"

// OrderRepository описывает требования к хранилищу заказов.
// Реализации сами отвечают за таймауты и конкурентный доступ;
// ядро работает с согласованным снимком на один вызов.
type OrderRepository interface {
	// Insert сохраняет новый заказ. Возвращает ErrOrderExists, если ID занят.
	Insert(order Order) error
	// Update перезаписывает заказ или возвращает ErrOrderNotFound.
	Update(order Order) error
	// Remove удаляет заказ или возвращает ErrOrderNotFound.
	Remove(id uuid.UUID) error
	// Get возвращает заказ по идентификатору или ErrOrderNotFound.
	Get(id uuid.UUID) (Order, error)
	// ListAll возвращает все заказы в стабильном порядке вставки.
	ListAll() ([]Order, error)
}

// CustomerRepository описывает требования к хранилищу клиентов.
type CustomerRepository interface {
	Insert(customer Customer) error
	Update(customer Customer) error
	Remove(id uuid.UUID) error
	Get(id uuid.UUID) (Customer, error)
	ListAll() ([]Customer, error)
}

// ProductRepository описывает требования к хранилищу товаров.
type ProductRepository interface {
	Insert(product Product) error
	Update(product Product) error
	Remove(id uuid.UUID) error
	Get(id uuid.UUID) (Product, error)
	ListAll() ([]Product, error)
}

// Notifier публикует события жизненного цикла заказа.
// Для ядра это fire-and-forget: результат публикации не интерпретируется.
type Notifier interface {
	Publish(event OrderEvent) error
}

// EmailSender отправляет письмо клиенту. Ошибка отправки транслируется
// ядром в ErrEmailSend.
type EmailSender interface {
	Send(to, subject, body string) error
}
