package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/Gunvolt24/restaurant-orders/internal/domain"
	"github.com/Gunvolt24/restaurant-orders/internal/payment"
	"github.com/Gunvolt24/restaurant-orders/internal/ports/mocks"
	"github.com/Gunvolt24/restaurant-orders/internal/usecase"
)

func TestProcessOrderPayment_Valid(t *testing.T) {
	ctrl := gomock.NewController(t)

	strategy := mocks.NewMockPaymentStrategy(ctrl)
	strategy.EXPECT().Type().Return("Credit Card").AnyTimes()
	strategy.EXPECT().Validate("1234567890123456").Return(true)
	strategy.EXPECT().Process(gomock.Any(), 45.00).Return(nil)

	order := domain.NewOrder(6, "Ayam Bakar Taliwang", 45.00)
	order.SetPayment("card", "1234567890123456")

	p := usecase.NewPaymentProcessor(strategy, noopLogger{})
	paid, err := p.ProcessOrderPayment(context.Background(), order)
	if err != nil || !paid {
		t.Fatalf("want (true, nil), got (%v, %v)", paid, err)
	}
}

// Невалидные реквизиты — не ошибка: (false, nil) и платёж не проводится.
func TestProcessOrderPayment_InvalidInfo(t *testing.T) {
	ctrl := gomock.NewController(t)

	strategy := mocks.NewMockPaymentStrategy(ctrl)
	strategy.EXPECT().Type().Return("Credit Card").AnyTimes()
	strategy.EXPECT().Validate("123").Return(false)
	strategy.EXPECT().Process(gomock.Any(), gomock.Any()).Times(0)

	order := domain.NewOrder(6, "Ayam Bakar Taliwang", 45.00)
	order.SetPayment("card", "123")

	p := usecase.NewPaymentProcessor(strategy, noopLogger{})
	paid, err := p.ProcessOrderPayment(context.Background(), order)
	if err != nil || paid {
		t.Fatalf("want (false, nil), got (%v, %v)", paid, err)
	}
}

func TestProcessOrderPayment_ProcessError(t *testing.T) {
	ctrl := gomock.NewController(t)

	wantErr := errors.New("gateway timeout")

	strategy := mocks.NewMockPaymentStrategy(ctrl)
	strategy.EXPECT().Type().Return("Digital Wallet").AnyTimes()
	strategy.EXPECT().Validate("wallet-7").Return(true)
	strategy.EXPECT().Process(gomock.Any(), 8.00).Return(wantErr)

	order := domain.NewOrder(7, "Es Cendol", 8.00)
	order.SetPayment("wallet", "wallet-7")

	p := usecase.NewPaymentProcessor(strategy, noopLogger{})
	paid, err := p.ProcessOrderPayment(context.Background(), order)
	if paid || !errors.Is(err, wantErr) {
		t.Fatalf("want (false, %v), got (%v, %v)", wantErr, paid, err)
	}
}

// Замена стратегии действует сразу и только на последующие вызовы.
func TestSetStrategy_HotSwap(t *testing.T) {
	t.Parallel()

	log := noopLogger{}
	p := usecase.NewPaymentProcessor(payment.NewCard(log), log)

	if got := p.CurrentStrategy(); got != "Credit Card" {
		t.Fatalf("want %q, got %q", "Credit Card", got)
	}

	order := domain.NewOrder(6, "Ayam Bakar Taliwang", 45.00)
	order.SetPayment("card", "123")

	paid, err := p.ProcessOrderPayment(context.Background(), order)
	if err != nil || paid {
		t.Fatalf("card must reject short info, got (%v, %v)", paid, err)
	}

	p.SetStrategy(payment.NewCash(log))
	if got := p.CurrentStrategy(); got != "Cash" {
		t.Fatalf("want %q, got %q", "Cash", got)
	}

	paid, err = p.ProcessOrderPayment(context.Background(), order)
	if err != nil || !paid {
		t.Fatalf("cash accepts anything, got (%v, %v)", paid, err)
	}
}
