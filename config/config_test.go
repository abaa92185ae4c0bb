package config_test

import (
	"testing"
	"time"

	cfg "github.com/Gunvolt24/restaurant-orders/config"
)

// TestLoadWithPrefix_Defaults — проверка наличия значений по умолчанию.
func TestLoadWithPrefix_Defaults(t *testing.T) {
	t.Parallel()

	c, err := cfg.LoadWithPrefix("RESTAURANT_TEST_DEFAULTS")
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	// HTTP
	if c.HTTP.Addr != ":8080" {
		t.Fatalf("HTTP.Addr: want :8080, got %q", c.HTTP.Addr)
	}
	if c.HTTP.GinMode != "debug" {
		t.Fatalf("HTTP.GinMode: want debug, got %q", c.HTTP.GinMode)
	}
	if c.HTTP.ReadTimeout != 10*time.Second || c.HTTP.WriteTimeout != 10*time.Second {
		t.Fatalf("HTTP timeouts wrong: %+v", c.HTTP)
	}
	if c.HTTP.ReadHeaderTimeout != 5*time.Second || c.HTTP.IdleTimeout != 60*time.Second {
		t.Fatalf("HTTP header/idle timeouts wrong: %+v", c.HTTP)
	}
	if c.HTTP.HandlerTimeout != 3*time.Second || c.HTTP.GracefulTimeout != 5*time.Second {
		t.Fatalf("HTTP handler/graceful timeouts wrong: %+v", c.HTTP)
	}

	// Tracing
	if c.Tracing.Enabled {
		t.Fatalf("Tracing.Enabled: want false, got true")
	}
	if c.Tracing.ServiceName != "restaurant-orders" || c.Tracing.Endpoint != "jaeger:4318" || c.Tracing.SampleRatio != 1 {
		t.Fatalf("Tracing defaults wrong: %+v", c.Tracing)
	}

	// Restaurant
	if c.Restaurant.Database != "mysql" || c.Restaurant.Notification != "email" {
		t.Fatalf("Restaurant defaults wrong: %+v", c.Restaurant)
	}

	// Payment
	if c.Payment.Strategy != "card" {
		t.Fatalf("Payment.Strategy: want card, got %q", c.Payment.Strategy)
	}

	// Logger
	if c.Logger.IsProd {
		t.Fatalf("Logger.IsProd: want false, got true")
	}
}

// Меняем окружение.
func TestLoadWithPrefix_Overrides(t *testing.T) {
	const p = "RESTAURANT_TEST_OVR"

	// HTTP
	t.Setenv(p+"_HTTP_ADDR", ":9999")
	t.Setenv(p+"_HTTP_GIN_MODE", "release")
	t.Setenv(p+"_HTTP_READ_TIMEOUT", "2s")
	t.Setenv(p+"_HTTP_WRITE_TIMEOUT", "3s")
	t.Setenv(p+"_HTTP_READ_HEADER_TIMEOUT", "1s")
	t.Setenv(p+"_HTTP_IDLE_TIMEOUT", "15s")
	t.Setenv(p+"_HTTP_HANDLER_TIMEOUT", "4500ms")
	t.Setenv(p+"_HTTP_GRACEFUL_TIMEOUT", "7s")

	// Tracing
	t.Setenv(p+"_TRACING_OTEL_ENABLED", "true")
	t.Setenv(p+"_TRACING_OTEL_SERVICE_NAME", "svc")
	t.Setenv(p+"_TRACING_OTEL_ENDPOINT", "collector:4318")
	t.Setenv(p+"_TRACING_OTEL_SAMPLE_RATIO", "0.25")

	// Restaurant
	t.Setenv(p+"_RESTAURANT_DATABASE", "mongodb")
	t.Setenv(p+"_RESTAURANT_NOTIFICATION", "slack")

	// Payment
	t.Setenv(p+"_PAYMENT_STRATEGY", "cash")

	// Logger
	t.Setenv(p+"_LOGGER_IS_PROD", "true")

	c, err := cfg.LoadWithPrefix(p)
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	// Проверки
	if c.HTTP.Addr != ":9999" || c.HTTP.GinMode != "release" {
		t.Fatalf("HTTP overrides wrong: %+v", c.HTTP)
	}
	if c.HTTP.ReadTimeout != 2*time.Second || c.HTTP.WriteTimeout != 3*time.Second ||
		c.HTTP.ReadHeaderTimeout != 1*time.Second || c.HTTP.IdleTimeout != 15*time.Second ||
		c.HTTP.HandlerTimeout != 4500*time.Millisecond || c.HTTP.GracefulTimeout != 7*time.Second {
		t.Fatalf("HTTP timeouts override wrong: %+v", c.HTTP)
	}
	if !c.Tracing.Enabled || c.Tracing.ServiceName != "svc" || c.Tracing.Endpoint != "collector:4318" || c.Tracing.SampleRatio != 0.25 {
		t.Fatalf("Tracing overrides wrong: %+v", c.Tracing)
	}
	if c.Restaurant.Database != "mongodb" || c.Restaurant.Notification != "slack" {
		t.Fatalf("Restaurant overrides wrong: %+v", c.Restaurant)
	}
	if c.Payment.Strategy != "cash" {
		t.Fatalf("Payment.Strategy override wrong: %q", c.Payment.Strategy)
	}
	if !c.Logger.IsProd {
		t.Fatalf("Logger.IsProd override wrong: %+v", c.Logger)
	}
}

// Тоже меняем окружение — но с невалидным значением.
func TestLoadWithPrefix_InvalidValue_ReturnsError(t *testing.T) {
	const p = "RESTAURANT_TEST_BAD"
	t.Setenv(p+"_HTTP_READ_TIMEOUT", "not-a-duration")

	if _, err := cfg.LoadWithPrefix(p); err == nil {
		t.Fatalf("expected error for invalid duration, got nil")
	}
}
