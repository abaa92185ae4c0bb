package ports

import "context"

// PaymentStrategy — стратегия валидации и проведения платежа.
type PaymentStrategy interface {
	// Validate — проверить платёжные реквизиты. false — ожидаемый бизнес-исход, не ошибка.
	Validate(info string) bool

	// Process — провести платёж на сумму amount.
	Process(ctx context.Context, amount float64) error

	// Type — отображаемое имя способа оплаты (например, "Credit Card").
	Type() string
}

// PaymentFactory — фабрика стратегий по строковому ключу конфигурации.
type PaymentFactory func(kind string) (PaymentStrategy, error)
