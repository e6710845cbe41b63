package app

import (
	"context"
	"testing"

	log "github.com/sirupsen/logrus"
)

func testLogger() *log.Entry {
	logger := log.New()
	logger.SetLevel(log.PanicLevel)
	return log.NewEntry(logger)
}

func TestBuildDependencies_Memory(t *testing.T) {
	cfg := DefaultConfig()

	deps, err := buildDependencies(context.Background(), cfg, testLogger())
	if err != nil {
		t.Fatalf("buildDependencies: %v", err)
	}
	defer deps.Close(testLogger())

	if deps.Orders == nil {
		t.Error("expected order service to be built")
	}
	if deps.Customers == nil {
		t.Error("expected customer service to be built")
	}
	if deps.Products == nil {
		t.Error("expected product service to be built")
	}
	if deps.Health == nil {
		t.Error("expected health handler to be built")
	}
	if deps.kafkaProducer != nil {
		t.Error("expected no kafka producer without brokers")
	}
	if deps.store != nil {
		t.Error("expected no postgres store without DSN")
	}
}
