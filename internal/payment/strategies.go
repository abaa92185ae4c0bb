package payment

import (
	"context"

	"github.com/Gunvolt24/restaurant-orders/internal/ports"
	"github.com/Gunvolt24/restaurant-orders/pkg/metrics"
)

var (
	_ ports.PaymentStrategy = (*Card)(nil)
	_ ports.PaymentStrategy = (*Wallet)(nil)
	_ ports.PaymentStrategy = (*Cash)(nil)
)

// cardInfoLen — длина реквизитов карты. Намеренно наивная проверка-заглушка,
// не настоящая валидация номера карты.
const cardInfoLen = 16

// Card — оплата банковской картой.
type Card struct {
	log ports.Logger
}

func NewCard(log ports.Logger) *Card { return &Card{log: log} }

func (c *Card) Validate(info string) bool { return len(info) == cardInfoLen }

func (c *Card) Process(ctx context.Context, amount float64) error {
	c.log.Infof(ctx, "processing credit card payment: $%.2f", amount)
	metrics.PaymentsProcessed.WithLabelValues(c.Type()).Inc()
	return nil
}

func (c *Card) Type() string { return "Credit Card" }

// Wallet — оплата электронным кошельком.
type Wallet struct {
	log ports.Logger
}

func NewWallet(log ports.Logger) *Wallet { return &Wallet{log: log} }

func (w *Wallet) Validate(info string) bool { return info != "" }

func (w *Wallet) Process(ctx context.Context, amount float64) error {
	w.log.Infof(ctx, "processing digital wallet payment: $%.2f", amount)
	metrics.PaymentsProcessed.WithLabelValues(w.Type()).Inc()
	return nil
}

func (w *Wallet) Type() string { return "Digital Wallet" }

// Cash — оплата наличными. Реквизиты не нужны: валидна всегда.
type Cash struct {
	log ports.Logger
}

func NewCash(log ports.Logger) *Cash { return &Cash{log: log} }

func (c *Cash) Validate(string) bool { return true }

func (c *Cash) Process(ctx context.Context, amount float64) error {
	c.log.Infof(ctx, "processing cash payment: $%.2f", amount)
	metrics.PaymentsProcessed.WithLabelValues(c.Type()).Inc()
	return nil
}

func (c *Cash) Type() string { return "Cash" }
