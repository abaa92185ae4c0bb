package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type HTTP struct {
	Addr              string        `default:":8080" envconfig:"ADDR"`
	GinMode           string        `default:"debug" envconfig:"GIN_MODE"`
	ReadTimeout       time.Duration `default:"10s" envconfig:"READ_TIMEOUT"`
	WriteTimeout      time.Duration `default:"10s" envconfig:"WRITE_TIMEOUT"`
	ReadHeaderTimeout time.Duration `default:"5s" envconfig:"READ_HEADER_TIMEOUT"`
	IdleTimeout       time.Duration `default:"60s" envconfig:"IDLE_TIMEOUT"`
	HandlerTimeout    time.Duration `default:"3s" envconfig:"HANDLER_TIMEOUT"`
	GracefulTimeout   time.Duration `default:"5s" envconfig:"GRACEFUL_TIMEOUT"`
}

type Logger struct {
	IsProd bool `default:"false" envconfig:"IS_PROD"`
}

type Tracing struct {
	Enabled     bool    `default:"false" envconfig:"OTEL_ENABLED"`
	ServiceName string  `default:"restaurant-orders" envconfig:"OTEL_SERVICE_NAME"`
	Endpoint    string  `default:"jaeger:4318" envconfig:"OTEL_ENDPOINT"`
	SampleRatio float64 `default:"1" envconfig:"OTEL_SAMPLE_RATIO"`
}

// Restaurant — ключи вариантов для стартовой инициализации менеджера.
type Restaurant struct {
	Database     string `default:"mysql" envconfig:"DATABASE"`
	Notification string `default:"email" envconfig:"NOTIFICATION"`
}

// Payment — стартовая стратегия оплаты.
type Payment struct {
	Strategy string `default:"card" envconfig:"STRATEGY"`
}

type Config struct {
	HTTP       HTTP
	Logger     Logger
	Tracing    Tracing
	Restaurant Restaurant
	Payment    Payment
}

// Load — конфигурация из окружения с префиксом RESTAURANT.
func Load() (Config, error) {
	return LoadWithPrefix("RESTAURANT")
}

// LoadWithPrefix — то же с произвольным префиксом (удобно в тестах).
func LoadWithPrefix(prefix string) (Config, error) {
	var c Config
	if err := envconfig.Process(prefix, &c); err != nil {
		return Config{}, err
	}
	return c, nil
}
