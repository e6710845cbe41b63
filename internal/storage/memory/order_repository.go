// Package memory содержит in-memory реализации репозиториев для локальной
// разработки и тестов.
package memory

import (
	"sync"

	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/pedidos/internal/domain"
)

// orderRepositoryInMemory — простая in-memory реализация OrderRepository.
// Порядок вставки сохраняется, чтобы ListAll был стабильным.
type orderRepositoryInMemory struct {
	mu    sync.RWMutex
	items map[uuid.UUID]domain.Order
	order []uuid.UUID
}

// NewOrderRepository возвращает in-memory репозиторий заказов.
func NewOrderRepository() domain.OrderRepository {
	return &orderRepositoryInMemory{
		items: make(map[uuid.UUID]domain.Order),
	}
}

// Insert сохраняет новый заказ, если ID ещё не занят.
func (r *orderRepositoryInMemory) Insert(order domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[order.ID]; exists {
		return domain.ErrOrderExists
	}
	r.items[order.ID] = cloneOrder(order)
	r.order = append(r.order, order.ID)
	return nil
}

// Update перезаписывает существующий заказ.
func (r *orderRepositoryInMemory) Update(order domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[order.ID]; !ok {
		return domain.ErrOrderNotFound
	}
	r.items[order.ID] = cloneOrder(order)
	return nil
}

// Remove удаляет заказ по идентификатору.
func (r *orderRepositoryInMemory) Remove(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return domain.ErrOrderNotFound
	}
	delete(r.items, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Get возвращает заказ или ErrOrderNotFound, если его нет.
func (r *orderRepositoryInMemory) Get(id uuid.UUID) (domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.items[id]
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	return cloneOrder(order), nil
}

// ListAll возвращает все заказы в порядке вставки.
func (r *orderRepositoryInMemory) ListAll() ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Order, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, cloneOrder(r.items[id]))
	}
	return result, nil
}

// cloneOrder копирует заказ вместе со слайсом позиций,
// чтобы избежать непредсказуемых мутаций извне.
func cloneOrder(order domain.Order) domain.Order {
	if order.Lines != nil {
		order.Lines = append([]domain.OrderLine(nil), order.Lines...)
	}
	return order
}

var _ domain.OrderRepository = (*orderRepositoryInMemory)(nil)
