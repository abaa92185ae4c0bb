package usecase

import (
	"context"
	"sync"

	"github.com/Gunvolt24/restaurant-orders/internal/domain"
	"github.com/Gunvolt24/restaurant-orders/internal/ports"
	"github.com/Gunvolt24/restaurant-orders/pkg/metrics"
)

var _ ports.PaymentService = (*PaymentProcessor)(nil)

// PaymentProcessor — держит ровно одну текущую стратегию оплаты
// и проводит через неё валидацию + платёж.
type PaymentProcessor struct {
	log ports.Logger

	mu       sync.RWMutex
	strategy ports.PaymentStrategy
}

// NewPaymentProcessor — DI-конструктор.
func NewPaymentProcessor(strategy ports.PaymentStrategy, log ports.Logger) *PaymentProcessor {
	return &PaymentProcessor{strategy: strategy, log: log}
}

// SetStrategy — горячая замена стратегии. Замена мгновенная и действует
// только на последующие вызовы; уже завершённые операции не затрагиваются.
func (p *PaymentProcessor) SetStrategy(strategy ports.PaymentStrategy) {
	p.mu.Lock()
	p.strategy = strategy
	p.mu.Unlock()

	p.log.Infof(context.Background(), "payment strategy changed to %s", strategy.Type())
}

// CurrentStrategy — имя активной стратегии.
func (p *PaymentProcessor) CurrentStrategy() string {
	return p.current().Type()
}

// ProcessOrderPayment — оплатить заказ по его платёжной аннотации.
// Невалидные реквизиты — ожидаемый исход: (false, nil) без проведения платежа.
func (p *PaymentProcessor) ProcessOrderPayment(ctx context.Context, order domain.Order) (bool, error) {
	strategy := p.current()
	p.log.Infof(ctx, "processing payment order_id=%d strategy=%s", order.ID, strategy.Type())

	if !strategy.Validate(order.PaymentInfo) {
		p.log.Warnf(ctx, "payment validation failed order_id=%d strategy=%s", order.ID, strategy.Type())
		metrics.PaymentsRejected.WithLabelValues(strategy.Type()).Inc()
		return false, nil
	}

	if err := strategy.Process(ctx, order.Amount); err != nil {
		p.log.Errorf(ctx, "payment processing failed order_id=%d err=%v", order.ID, err)
		return false, err
	}
	return true, nil
}

func (p *PaymentProcessor) current() ports.PaymentStrategy {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.strategy
}
