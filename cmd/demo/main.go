package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Gunvolt24/restaurant-orders/internal/domain"
	"github.com/Gunvolt24/restaurant-orders/internal/notify"
	"github.com/Gunvolt24/restaurant-orders/internal/payment"
	"github.com/Gunvolt24/restaurant-orders/internal/ports"
	"github.com/Gunvolt24/restaurant-orders/internal/repo"
	"github.com/Gunvolt24/restaurant-orders/internal/usecase"
	"github.com/Gunvolt24/restaurant-orders/pkg/logger"
	"github.com/Gunvolt24/restaurant-orders/pkg/metrics"
	"github.com/Gunvolt24/restaurant-orders/pkg/validate"
)

// CLI-приложение со сценариями работы сервиса: внедрение зависимостей,
// фабрики, стратегии оплаты и тестовые дублёры. Вся "печать" — через логгер.
func main() {
	scenario := flag.String("scenario", "all", "scenario to run: all|di|factory|strategy|recorder")
	flag.Parse()

	logg, cleanup, err := logger.NewZapLogger(false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = cleanup() }()

	metrics.MustRegister()

	ctx := context.Background()
	d := demo{log: logg, validator: validate.NewOrderValidator()}

	switch *scenario {
	case "di":
		d.dependencyInjection(ctx)
	case "factory":
		d.factories(ctx)
	case "strategy":
		d.strategies(ctx)
	case "recorder":
		d.recorders(ctx)
	case "all":
		d.dependencyInjection(ctx)
		d.factories(ctx)
		d.strategies(ctx)
		d.recorders(ctx)
	default:
		fmt.Fprintf(os.Stderr, "unknown scenario %q\n", *scenario)
		os.Exit(1)
	}
}

type demo struct {
	log       ports.Logger
	validator ports.OrderValidator
}

// dependencyInjection — сервис собирается вручную из конкретных вариантов;
// сам сервис видит только абстракции.
func (d *demo) dependencyInjection(ctx context.Context) {
	d.log.Infof(ctx, "--- dependency injection ---")

	service := usecase.NewRestaurantService(repo.NewMySQL(d.log), notify.NewEmail(d.log), d.log, d.validator)
	d.log.Infof(ctx, "service configured: %s", service.Configuration())
	if err := service.ProcessOrder(ctx, domain.NewOrder(2, "Sate Ayam Madura", 28.50)); err != nil {
		d.log.Errorf(ctx, "process order: %v", err)
	}

	// Замена реализаций — меняются только аргументы конструктора.
	service = usecase.NewRestaurantService(repo.NewPostgreSQL(d.log), notify.NewSMS(d.log), d.log, d.validator)
	d.log.Infof(ctx, "service reconfigured: %s", service.Configuration())
	if err := service.ProcessOrder(ctx, domain.NewOrder(3, "Rendang Padang", 42.00)); err != nil {
		d.log.Errorf(ctx, "process order: %v", err)
	}
}

// factories — варианты выбираются строковой конфигурацией через менеджер.
func (d *demo) factories(ctx context.Context) {
	d.log.Infof(ctx, "--- factories ---")

	manager := usecase.NewRestaurantManager(
		func(kind string) (ports.DatabaseService, error) { return repo.New(kind, d.log) },
		func(kind string) (ports.NotificationService, error) { return notify.New(kind, d.log) },
		d.log, d.validator,
	)

	// До инициализации обработка отклоняется, но не падает.
	if err := manager.ProcessOrder(ctx, domain.NewOrder(4, "Gado-gado Jakarta", 22.00)); err != nil {
		d.log.Infof(ctx, "expected rejection: %v (config=%s)", err, manager.Configuration())
	}

	if err := manager.Initialize(repo.KindMongoDB, notify.KindSlack); err != nil {
		d.log.Errorf(ctx, "initialize: %v", err)
		return
	}
	if err := manager.ProcessOrder(ctx, domain.NewOrder(4, "Gado-gado Jakarta", 22.00)); err != nil {
		d.log.Errorf(ctx, "process order: %v", err)
	}

	// Переинициализация просто отбрасывает прежнюю конфигурацию.
	if err := manager.Initialize(repo.KindPostgreSQL, notify.KindEmail); err != nil {
		d.log.Errorf(ctx, "initialize: %v", err)
		return
	}
	if err := manager.ProcessOrder(ctx, domain.NewOrder(5, "Bakso Malang", 18.50)); err != nil {
		d.log.Errorf(ctx, "process order: %v", err)
	}

	// Нераспознанный ключ — ошибка конфигурации, прежний сервис сохраняется.
	if err := manager.Initialize("oracle", notify.KindEmail); err != nil {
		d.log.Infof(ctx, "expected configuration error: %v (config=%s)", err, manager.Configuration())
	}
}

// strategies — горячая замена стратегии оплаты.
func (d *demo) strategies(ctx context.Context) {
	d.log.Infof(ctx, "--- payment strategies ---")

	order := domain.NewOrder(6, "Ayam Bakar Taliwang", 45.00)
	processor := usecase.NewPaymentProcessor(payment.NewCard(d.log), d.log)

	order.SetPayment(payment.KindCard, "1234567890123456")
	d.payAndReport(ctx, processor, order)

	order.SetPayment(payment.KindCard, "123")
	d.payAndReport(ctx, processor, order)

	processor.SetStrategy(payment.NewWallet(d.log))
	order.SetPayment(payment.KindWallet, "wallet-token-42")
	d.payAndReport(ctx, processor, order)

	processor.SetStrategy(payment.NewCash(d.log))
	order.SetPayment(payment.KindCash, "")
	d.payAndReport(ctx, processor, order)
}

func (d *demo) payAndReport(ctx context.Context, processor *usecase.PaymentProcessor, order domain.Order) {
	paid, err := processor.ProcessOrderPayment(ctx, order)
	if err != nil {
		d.log.Errorf(ctx, "payment: %v", err)
		return
	}
	d.log.Infof(ctx, "payment result order_id=%d strategy=%s paid=%t", order.ID, processor.CurrentStrategy(), paid)
}

// recorders — тестовые дублёры фиксируют вызовы вместо побочных эффектов.
func (d *demo) recorders(ctx context.Context) {
	d.log.Infof(ctx, "--- recorder doubles ---")

	database := repo.NewRecorder()
	notification := notify.NewRecorder()
	service := usecase.NewRestaurantService(database, notification, d.log, d.validator)

	if err := service.ProcessOrder(ctx, domain.NewOrder(7, "Es Cendol", 8.00)); err != nil {
		d.log.Errorf(ctx, "process order: %v", err)
		return
	}
	d.log.Infof(ctx, "recorded: saved=%d sent=%d last_message=%q",
		len(database.Saved), len(notification.Sent), notification.Sent[len(notification.Sent)-1])
}
