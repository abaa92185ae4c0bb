package ports

import (
	"context"

	"github.com/Gunvolt24/restaurant-orders/internal/domain"
)

// PaymentService — порт обработки платежей для транспортного слоя.
// Реализуется usecase.PaymentProcessor.
type PaymentService interface {
	// ProcessOrderPayment — провести оплату заказа текущей стратегией.
	// (false, nil) — реквизиты не прошли валидацию; это не ошибка.
	ProcessOrderPayment(ctx context.Context, order domain.Order) (bool, error)

	// SetStrategy — горячая замена стратегии; действует только на последующие вызовы.
	SetStrategy(strategy PaymentStrategy)

	// CurrentStrategy — имя активной стратегии.
	CurrentStrategy() string
}
