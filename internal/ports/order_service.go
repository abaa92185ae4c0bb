package ports

import (
	"context"

	"github.com/Gunvolt24/restaurant-orders/internal/domain"
)

// OrderService — порт оркестрации заказов для транспортного слоя.
// Реализуется usecase.RestaurantManager.
type OrderService interface {
	// Initialize — пересобрать сервис по ключам конфигурации (db + канал уведомлений).
	Initialize(dbKind, notifKind string) error

	// ProcessOrder — провести заказ: сохранить и уведомить.
	ProcessOrder(ctx context.Context, order domain.Order) error

	// GetOrder — получить заказ по id через сконфигурированный бэкенд.
	GetOrder(ctx context.Context, id int) (domain.Order, error)

	// Configuration — текущая конфигурация для отображения ("MySQL + Email").
	Configuration() string
}
