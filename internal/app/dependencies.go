package app

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/pedidos/internal/domain"
	"github.com/vladislavdragonenkov/pedidos/internal/health"
	"github.com/vladislavdragonenkov/pedidos/internal/mail"
	"github.com/vladislavdragonenkov/pedidos/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/pedidos/internal/service/customer"
	"github.com/vladislavdragonenkov/pedidos/internal/service/order"
	"github.com/vladislavdragonenkov/pedidos/internal/service/product"
	"github.com/vladislavdragonenkov/pedidos/internal/storage/memory"
	"github.com/vladislavdragonenkov/pedidos/internal/storage/postgres"
	"github.com/vladislavdragonenkov/pedidos/internal/version"
)

// Dependencies — собранные сервисы приложения.
type Dependencies struct {
	Orders    *order.Service
	Customers *customer.Service
	Products  *product.Service
	Health    *health.Handler

	kafkaProducer *kafka.Producer
	store         *postgres.Store
}

// buildDependencies собирает зависимости по конфигурации: хранилище,
// нотификатор, отправителя писем и сервисы поверх них.
func buildDependencies(ctx context.Context, cfg Config, logger *log.Entry) (*Dependencies, error) {
	deps := &Dependencies{
		Health: health.NewHandler(version.Version()),
	}

	var (
		orderRepo    domain.OrderRepository
		customerRepo domain.CustomerRepository
		productRepo  domain.ProductRepository
	)

	if cfg.DatabaseURL != "" {
		store, err := postgres.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		deps.store = store

		if cfg.Migrate {
			if err := store.MigrateUp(ctx); err != nil {
				_ = store.Close()
				return nil, fmt.Errorf("apply migrations: %w", err)
			}
			logger.Info("database migrations applied")
		}

		orderRepo = postgres.NewOrderRepository(store)
		customerRepo = postgres.NewCustomerRepository(store)
		productRepo = postgres.NewProductRepository(store)
		deps.Health.RegisterChecker("postgres", health.NewSimpleChecker("postgres", func() error {
			return store.Ping(context.Background())
		}))
		logger.Info("using postgres storage")
	} else {
		orderRepo = memory.NewOrderRepository()
		customerRepo = memory.NewCustomerRepository()
		productRepo = memory.NewProductRepository()
		logger.Info("using in-memory storage")
	}

	// Kafka опционален: без брокеров события просто не публикуются.
	var notifier domain.Notifier
	if cfg.KafkaBrokers != "" {
		brokers := strings.Split(cfg.KafkaBrokers, ",")
		producer, err := kafka.NewProducer(brokers)
		if err != nil {
			logger.WithError(err).Warn("failed to create kafka producer, continuing without kafka")
		} else {
			deps.kafkaProducer = producer
			notifier = kafka.NewNotifier(producer)
			logger.WithField("brokers", brokers).Info("kafka producer initialized")
		}
	}

	var sender domain.EmailSender
	if cfg.SMTPAddr != "" {
		sender = mail.NewSMTPSender(cfg.SMTPAddr, cfg.SMTPFrom)
		logger.WithField("smtp_addr", cfg.SMTPAddr).Info("smtp sender initialized")
	} else {
		sender = mail.NewLogSender(logger.WithField("component", "log-sender"))
	}

	deps.Orders = order.NewService(orderRepo, notifier, sender, logger.WithField("component", "order-service"))
	deps.Customers = customer.NewService(customerRepo, logger.WithField("component", "customer-service"))
	deps.Products = product.NewService(productRepo, logger.WithField("component", "product-service"))

	return deps, nil
}

// Close освобождает ресурсы зависимостей.
func (d *Dependencies) Close(logger *log.Entry) {
	if d.kafkaProducer != nil {
		if err := d.kafkaProducer.Close(); err != nil {
			logger.WithError(err).Warn("failed to close kafka producer")
		}
	}
	if d.store != nil {
		if err := d.store.Close(); err != nil {
			logger.WithError(err).Warn("failed to close postgres store")
		}
	}
}
