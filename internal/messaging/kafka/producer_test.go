package kafka

import (
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/pedidos/internal/domain"
)

func testProducer(t *testing.T) (*Producer, *mocks.SyncProducer) {
	mockProducer := mocks.NewSyncProducer(t, nil)
	producer := &Producer{
		producer: mockProducer,
		logger:   log.WithField("component", "kafka-producer-test"),
	}
	return producer, mockProducer
}

func testEvent() domain.OrderEvent {
	return domain.NewOrderEvent(domain.EventTypeOrderCreated, domain.Order{
		ID:     uuid.New(),
		Status: domain.OrderStatusOpen,
	})
}

func TestProducer_PublishEvent(t *testing.T) {
	producer, mockProducer := testProducer(t)

	mockProducer.ExpectSendMessageAndSucceed()

	event := testEvent()
	if err := producer.PublishEvent(TopicOrderEvents, event.OrderID.String(), event); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := mockProducer.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestProducer_PublishEvent_Error(t *testing.T) {
	producer, mockProducer := testProducer(t)

	mockProducer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	event := testEvent()
	if err := producer.PublishEvent(TopicOrderEvents, event.OrderID.String(), event); err == nil {
		t.Fatal("expected error from failing broker")
	}

	if err := mockProducer.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestNotifier_Publish(t *testing.T) {
	producer, mockProducer := testProducer(t)
	notifier := NewNotifier(producer)

	mockProducer.ExpectSendMessageAndSucceed()

	if err := notifier.Publish(testEvent()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := mockProducer.Close(); err != nil {
		t.Fatal(err)
	}
}
