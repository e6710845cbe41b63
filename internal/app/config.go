package app

import "os"

// Config описывает настройки запуска приложения.
type Config struct {
	// MetricsAddr — адрес HTTP-сервера с /metrics и /healthz.
	MetricsAddr string
	// DatabaseURL — DSN PostgreSQL; пустое значение включает in-memory хранилище.
	DatabaseURL string
	// KafkaBrokers — список брокеров через запятую; пустое значение отключает Kafka.
	KafkaBrokers string
	// SMTPAddr — host:port SMTP-сервера; пустое значение включает лог-отправителя.
	SMTPAddr string
	// SMTPFrom — адрес отправителя писем.
	SMTPFrom string
	// Migrate — применять миграции PostgreSQL при старте.
	Migrate bool
}

// DefaultConfig возвращает базовые настройки.
func DefaultConfig() Config {
	return Config{
		MetricsAddr: ":9090",
		SMTPFrom:    "noreply@pedidos.local",
	}
}

// ReadConfig формирует конфигурацию, позволяя переопределить
// значения через переменные окружения.
func ReadConfig() Config {
	cfg := DefaultConfig()
	if v := os.Getenv("PEDIDOS_METRICS_ADDR"); v != "" {
		cfg.MetricsAddr = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		cfg.KafkaBrokers = v
	}
	if v := os.Getenv("SMTP_ADDR"); v != "" {
		cfg.SMTPAddr = v
	}
	if v := os.Getenv("SMTP_FROM"); v != "" {
		cfg.SMTPFrom = v
	}
	cfg.Migrate = os.Getenv("PEDIDOS_MIGRATE") == "1"
	return cfg
}
