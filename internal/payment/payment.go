// Пакет payment — реализации ports.PaymentStrategy.
// Стратегии различаются правилом валидации реквизитов; проведение платежа —
// структурный лог и метрика, реального платёжного шлюза нет.
package payment

import (
	"fmt"

	"github.com/Gunvolt24/restaurant-orders/internal/ports"
)

// Ключи конфигурации (сопоставление регистрозависимое).
const (
	KindCard   = "card"
	KindWallet = "wallet"
	KindCash   = "cash"
)

// New — фабрика стратегий по строковому ключу конфигурации.
func New(kind string, log ports.Logger) (ports.PaymentStrategy, error) {
	switch kind {
	case KindCard:
		return NewCard(log), nil
	case KindWallet:
		return NewWallet(log), nil
	case KindCash:
		return NewCash(log), nil
	default:
		return nil, fmt.Errorf("%w: unknown payment kind %q", ports.ErrInvalidConfiguration, kind)
	}
}
