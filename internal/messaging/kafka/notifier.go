package kafka

import (
	"github.com/vladislavdragonenkov/pedidos/internal/domain"
)

// Notifier реализует domain.Notifier поверх Kafka producer.
// Ключом сообщения служит ID заказа: события одного заказа
// попадают в одну партицию и сохраняют порядок.
type Notifier struct {
	producer *Producer
}

// NewNotifier создаёт нотификатор поверх готового producer.
func NewNotifier(producer *Producer) *Notifier {
	return &Notifier{producer: producer}
}

// Publish отправляет событие заказа в топик заказов.
func (n *Notifier) Publish(event domain.OrderEvent) error {
	return n.producer.PublishEvent(TopicOrderEvents, event.OrderID.String(), event)
}

var _ domain.Notifier = (*Notifier)(nil)
