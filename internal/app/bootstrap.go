package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/restaurant-orders/config"
	"github.com/Gunvolt24/restaurant-orders/internal/notify"
	"github.com/Gunvolt24/restaurant-orders/internal/payment"
	"github.com/Gunvolt24/restaurant-orders/internal/ports"
	"github.com/Gunvolt24/restaurant-orders/internal/repo"
	rest "github.com/Gunvolt24/restaurant-orders/internal/transport/http"
	"github.com/Gunvolt24/restaurant-orders/internal/usecase"
	"github.com/Gunvolt24/restaurant-orders/pkg/logger"
	"github.com/Gunvolt24/restaurant-orders/pkg/metrics"
	"github.com/Gunvolt24/restaurant-orders/pkg/telemetry"
	"github.com/Gunvolt24/restaurant-orders/pkg/validate"
)

// App — собранное приложение и его внешние интерфейсы.
type App struct {
	Logger          ports.Logger
	HTTPServer      *http.Server
	gracefulTimeout time.Duration
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// Bootstrap — единственное место, где конкретные варианты встречаются
// с оркестраторами: собирает граф зависимостей по конфигурации и
// возвращает приложение с функцией очистки.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	metrics.MustRegister()

	// Трейсинг OTEL (по конфигурации); по умолчанию — no-op.
	shutdownTrace := func(context.Context) error { return nil }
	if cfg.Tracing.Enabled {
		setup, tErr := telemetry.SetupTracing(ctx, cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			shutdownTrace = setup
		}
	}

	// Фабрики вариантов с замкнутым логгером: дальше по графу
	// ходят только абстракции из ports.
	newDatabase := func(kind string) (ports.DatabaseService, error) { return repo.New(kind, logg) }
	newNotification := func(kind string) (ports.NotificationService, error) { return notify.New(kind, logg) }
	newStrategy := func(kind string) (ports.PaymentStrategy, error) { return payment.New(kind, logg) }

	orderValidator := validate.NewOrderValidator()

	manager := usecase.NewRestaurantManager(newDatabase, newNotification, logg, orderValidator)
	if err := manager.Initialize(cfg.Restaurant.Database, cfg.Restaurant.Notification); err != nil {
		cleanup(ctx, logg, cleanupLogger, shutdownTrace)
		return nil, func() {}, err
	}

	strategy, err := newStrategy(cfg.Payment.Strategy)
	if err != nil {
		cleanup(ctx, logg, cleanupLogger, shutdownTrace)
		return nil, func() {}, err
	}
	processor := usecase.NewPaymentProcessor(strategy, logg)

	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	handler := rest.NewHandler(manager, processor, newStrategy, logg, cfg.HTTP.HandlerTimeout)
	router := rest.NewRouter(handler, otelServiceName)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	return app, func() { cleanup(ctx, logg, cleanupLogger, shutdownTrace) }, nil
}

// cleanup — освобождение ресурсов в обратном порядке.
func cleanup(ctx context.Context, logg ports.Logger, cleanupLogger func() error, shutdownTrace func(context.Context) error) {
	if terr := shutdownTrace(context.Background()); terr != nil {
		logg.Warnf(ctx, "shutdown tracing: %v", terr)
	}
	if cerr := cleanupLogger(); cerr != nil {
		logg.Warnf(ctx, "cleanup logger: %v", cerr)
	}
}

// Run — запускает HTTP-сервер; ждёт отмены контекста или ошибки сервера
// и останавливает его корректно.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		a.Logger.Warnf(ctx, "http server error: %v", err)
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}

	a.Logger.Infof(ctx, "service stopped")
	return nil
}
