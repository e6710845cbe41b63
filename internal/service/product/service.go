// Package product предоставляет тонкий CRUD-сервис над хранилищем товаров.
package product

import (
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/pedidos/internal/domain"
)

// Service — операции над товарами.
type Service struct {
	products domain.ProductRepository
	logger   *log.Entry
}

// NewService создаёт сервис товаров.
func NewService(products domain.ProductRepository, logger *log.Entry) *Service {
	if logger == nil {
		logger = log.New().WithField("component", "product-service")
	}
	return &Service{products: products, logger: logger}
}

// Insert сохраняет товар и возвращает его.
func (s *Service) Insert(product domain.Product) (domain.Product, error) {
	if err := s.products.Insert(product); err != nil {
		return domain.Product{}, fmt.Errorf("insert product: %w", err)
	}
	s.logger.WithField("product_id", product.ID).Debug("product inserted")
	return product, nil
}

// Update перезаписывает данные товара.
func (s *Service) Update(product domain.Product) error {
	if err := s.products.Update(product); err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete удаляет товар по идентификатору.
func (s *Service) Delete(id uuid.UUID) error {
	if err := s.products.Remove(id); err != nil {
		return fmt.Errorf("remove product: %w", err)
	}
	return nil
}

// Get возвращает товар или ErrProductNotFound.
func (s *Service) Get(id uuid.UUID) (domain.Product, error) {
	return s.products.Get(id)
}

// ListAll возвращает все товары.
func (s *Service) ListAll() ([]domain.Product, error) {
	return s.products.ListAll()
}
