package validate

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/restaurant-orders/internal/domain"
)

// ErrInvalidOrder — доменная ошибка валидации заказа.
var ErrInvalidOrder = errors.New("invalid order")

// OrderValidator — проверка заказа перед обработкой:
// положительный id, непустое описание, неотрицательная сумма.
type OrderValidator struct{}

func NewOrderValidator() *OrderValidator { return &OrderValidator{} }

func (v *OrderValidator) Validate(_ context.Context, order domain.Order) error {
	switch {
	case order.ID <= 0:
		return fmt.Errorf("%w: id must be positive, got %d", ErrInvalidOrder, order.ID)
	case order.Description == "":
		return fmt.Errorf("%w: description is required", ErrInvalidOrder)
	case order.Amount < 0:
		return fmt.Errorf("%w: amount must be non-negative, got %.2f", ErrInvalidOrder, order.Amount)
	default:
		return nil
	}
}
