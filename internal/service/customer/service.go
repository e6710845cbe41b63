// Package customer предоставляет тонкий CRUD-сервис над хранилищем клиентов.
// Жизненный цикл клиентов не принадлежит ядру заказов: клиент создаётся и
// валидируется отдельно, а заказы лишь ссылаются на него.
package customer

import (
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/pedidos/internal/domain"
)

// Service — операции над клиентами.
type Service struct {
	customers domain.CustomerRepository
	logger    *log.Entry
}

// NewService создаёт сервис клиентов.
func NewService(customers domain.CustomerRepository, logger *log.Entry) *Service {
	if logger == nil {
		logger = log.New().WithField("component", "customer-service")
	}
	return &Service{customers: customers, logger: logger}
}

// Insert сохраняет клиента и возвращает его.
func (s *Service) Insert(customer domain.Customer) (domain.Customer, error) {
	if err := s.customers.Insert(customer); err != nil {
		return domain.Customer{}, fmt.Errorf("insert customer: %w", err)
	}
	s.logger.WithField("customer_id", customer.ID).Debug("customer inserted")
	return customer, nil
}

// Update перезаписывает данные клиента.
func (s *Service) Update(customer domain.Customer) error {
	if err := s.customers.Update(customer); err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// Delete удаляет клиента по идентификатору.
func (s *Service) Delete(id uuid.UUID) error {
	if err := s.customers.Remove(id); err != nil {
		return fmt.Errorf("remove customer: %w", err)
	}
	return nil
}

// Get возвращает клиента или ErrCustomerNotFound.
func (s *Service) Get(id uuid.UUID) (domain.Customer, error) {
	return s.customers.Get(id)
}

// ListAll возвращает всех клиентов.
func (s *Service) ListAll() ([]domain.Customer, error) {
	return s.customers.ListAll()
}
