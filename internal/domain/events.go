package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType определяет тип доменного события заказа.
type EventType string

const (
	EventTypeOrderCreated   EventType = "order.created"
	EventTypeOrderFinalized EventType = "order.finalized"
	EventTypeOrderCancelled EventType = "order.cancelled"
)

// OrderEvent — снимок заказа в момент события жизненного цикла.
type OrderEvent struct {
	Type       EventType `json:"event_type"`
	OrderID    uuid.UUID `json:"order_id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Status     string    `json:"status"`
	Express    bool      `json:"express"`
	LinesCount int       `json:"lines_count"`
	Timestamp  time.Time `json:"timestamp"`
}

// NewOrderEvent формирует событие из текущего состояния заказа.
func NewOrderEvent(eventType EventType, order Order) OrderEvent {
	return OrderEvent{
		Type:       eventType,
		OrderID:    order.ID,
		CustomerID: order.Customer.ID,
		Status:     string(order.Status),
		Express:    order.Express,
		LinesCount: len(order.Lines),
		Timestamp:  time.Now().UTC(),
	}
}
