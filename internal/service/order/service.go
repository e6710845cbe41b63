// Package order реализует жизненный цикл заказа: создание, изменение состава,
// финализацию, отмену и выборку с фильтрацией.
package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/pedidos/internal/domain"
	"github.com/vladislavdragonenkov/pedidos/internal/metrics"
)

// Тема и текст письма о финализированном заказе.
const (
	finalizedEmailSubject = "Pedido finalizado"
	finalizedEmailBody    = "Seu pedido foi finalizado com sucesso. Obrigado pela preferência!"
)

// Service оркестрирует операции над заказами и их побочные эффекты:
// сохранение через репозиторий, публикацию событий и отправку писем.
type Service struct {
	orders   domain.OrderRepository
	notifier domain.Notifier // опционален: nil отключает публикацию событий
	mail     domain.EmailSender
	logger   *log.Entry
	metrics  *metrics.OrderMetrics
}

// NewService создаёт сервис заказов с метриками в default registry.
func NewService(
	orders domain.OrderRepository,
	notifier domain.Notifier,
	mail domain.EmailSender,
	logger *log.Entry,
) *Service {
	svc := NewServiceWithoutMetrics(orders, notifier, mail, logger)
	svc.metrics = metrics.NewOrderMetrics()
	return svc
}

// NewServiceWithoutMetrics создаёт сервис без метрик (для тестов).
func NewServiceWithoutMetrics(
	orders domain.OrderRepository,
	notifier domain.Notifier,
	mail domain.EmailSender,
	logger *log.Entry,
) *Service {
	if logger == nil {
		logger = log.New().WithField("component", "order-service")
	}
	return &Service{
		orders:   orders,
		notifier: notifier,
		mail:     mail,
		logger:   logger,
	}
}

// Create создаёт новый открытый заказ для клиента.
// Невалидный клиент отклоняется до какого-либо обращения к репозиторию.
func (s *Service) Create(customer domain.Customer, express bool) (domain.Order, error) {
	defer s.observe("create", time.Now())

	if !customer.Valid() {
		return domain.Order{}, domain.ErrInvalidCustomer
	}

	now := time.Now().UTC()
	order := domain.Order{
		ID:        uuid.New(),
		Customer:  customer,
		Lines:     []domain.OrderLine{},
		Express:   express,
		Status:    domain.OrderStatusOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.orders.Insert(order); err != nil {
		return domain.Order{}, fmt.Errorf("insert order: %w", err)
	}

	s.publish(domain.EventTypeOrderCreated, order)
	if s.metrics != nil {
		s.metrics.RecordOrderCreated()
	}
	s.logger.WithFields(log.Fields{
		"order_id":    order.ID,
		"customer_id": customer.ID,
		"express":     express,
	}).Info("order created")

	return order, nil
}

// AddProduct добавляет товар в заказ. Если позиция с этим товаром уже есть,
// её количество увеличивается на quantity, иначе добавляется новая позиция.
func (s *Service) AddProduct(orderID uuid.UUID, product domain.Product, quantity int) error {
	defer s.observe("add_product", time.Now())

	if !product.Valid() {
		return domain.ErrInvalidProduct
	}
	if quantity <= 0 {
		return domain.ErrInvalidQuantity
	}

	order, err := s.loadOrder(orderID)
	if err != nil {
		return err
	}
	if order.Express && !product.ExpressAvailable {
		return domain.ErrProductNotExpress
	}

	if idx := order.LineFor(product); idx >= 0 {
		order.Lines[idx].Quantity += quantity
	} else {
		order.Lines = append(order.Lines, domain.OrderLine{Product: product, Quantity: quantity})
	}

	return s.saveOrder(order)
}

// RemoveProduct убирает товар из заказа. Nil-quantity удаляет позицию целиком;
// иначе количество уменьшается, и позиция удаляется, когда оно падает ниже 1.
func (s *Service) RemoveProduct(orderID uuid.UUID, product domain.Product, quantity *int) error {
	defer s.observe("remove_product", time.Now())

	if !product.Valid() {
		return domain.ErrInvalidProduct
	}
	if quantity != nil && *quantity < 0 {
		return domain.ErrInvalidQuantity
	}

	order, err := s.loadOrder(orderID)
	if err != nil {
		return err
	}

	idx := order.LineFor(product)
	if idx < 0 {
		return domain.ErrProductNotInOrder
	}

	if quantity == nil {
		order.Lines = append(order.Lines[:idx], order.Lines[idx+1:]...)
	} else if remaining := order.Lines[idx].Quantity - *quantity; remaining < 1 {
		order.Lines = append(order.Lines[:idx], order.Lines[idx+1:]...)
	} else {
		order.Lines[idx].Quantity = remaining
	}

	return s.saveOrder(order)
}

// Finalize переводит заказ в состояние Finalized, публикует событие и
// отправляет письмо клиенту. Ошибка отправки письма возвращается как
// ErrEmailSend уже после того, как смена состояния сохранена: финализация
// намеренно не атомарна с доставкой письма.
func (s *Service) Finalize(orderID uuid.UUID) error {
	defer s.observe("finalize", time.Now())

	order, err := s.transition(orderID, domain.OrderStatusFinalized)
	if err != nil {
		return err
	}

	s.publish(domain.EventTypeOrderFinalized, order)
	if s.metrics != nil {
		s.metrics.RecordOrderFinalized()
	}

	if err := s.mail.Send(order.Customer.Email, finalizedEmailSubject, finalizedEmailBody); err != nil {
		s.logger.WithError(err).WithFields(log.Fields{
			"order_id": order.ID,
			"to":       order.Customer.Email,
		}).Warn("finalization email failed")
		if s.metrics != nil {
			s.metrics.RecordEmailFailed()
		}
		return domain.ErrEmailSend
	}

	if s.metrics != nil {
		s.metrics.RecordEmailSent()
	}
	s.logger.WithField("order_id", order.ID).Info("order finalized")
	return nil
}

// Cancel переводит заказ в состояние Cancelled и публикует событие.
func (s *Service) Cancel(orderID uuid.UUID) error {
	defer s.observe("cancel", time.Now())

	order, err := s.transition(orderID, domain.OrderStatusCancelled)
	if err != nil {
		return err
	}

	s.publish(domain.EventTypeOrderCancelled, order)
	if s.metrics != nil {
		s.metrics.RecordOrderCancelled()
	}
	s.logger.WithField("order_id", order.ID).Info("order cancelled")
	return nil
}

// Get возвращает заказ по идентификатору или ErrOrderNotFound.
func (s *Service) Get(orderID uuid.UUID) (domain.Order, error) {
	return s.loadOrder(orderID)
}

// List возвращает заказы, прошедшие фильтр, в порядке, отданном репозиторием.
// Nil-фильтр возвращает все заказы без изменений.
func (s *Service) List(filter *domain.OrderFilter) ([]domain.Order, error) {
	defer s.observe("list", time.Now())

	orders, err := s.orders.ListAll()
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return domain.ApplyFilter(filter, orders), nil
}

// transition загружает заказ, меняет состояние и сохраняет.
func (s *Service) transition(orderID uuid.UUID, status domain.OrderStatus) (domain.Order, error) {
	order, err := s.loadOrder(orderID)
	if err != nil {
		return domain.Order{}, err
	}

	order.Status = status
	if err := s.saveOrder(order); err != nil {
		return domain.Order{}, err
	}
	return order, nil
}

func (s *Service) loadOrder(orderID uuid.UUID) (domain.Order, error) {
	order, err := s.orders.Get(orderID)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return domain.Order{}, domain.ErrOrderNotFound
		}
		return domain.Order{}, fmt.Errorf("load order: %w", err)
	}
	return order, nil
}

func (s *Service) saveOrder(order domain.Order) error {
	order.UpdatedAt = time.Now().UTC()
	if err := s.orders.Update(order); err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// publish отправляет событие нотификатору. Сбой публикации логируется,
// но не прерывает операцию: для ядра события — fire-and-forget.
func (s *Service) publish(eventType domain.EventType, order domain.Order) {
	if s.notifier == nil {
		return
	}
	event := domain.NewOrderEvent(eventType, order)
	if err := s.notifier.Publish(event); err != nil {
		s.logger.WithError(err).WithFields(log.Fields{
			"order_id":   order.ID,
			"event_type": eventType,
		}).Warn("failed to publish order event")
	}
}

func (s *Service) observe(operation string, start time.Time) {
	if s.metrics != nil {
		s.metrics.RecordOperationDuration(operation, time.Since(start))
	}
}
