package ports

import (
	"context"

	"github.com/Gunvolt24/restaurant-orders/internal/domain"
)

type OrderValidator interface {
	Validate(ctx context.Context, order domain.Order) error
}
