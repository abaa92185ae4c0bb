package ports

import (
	"context"

	"github.com/Gunvolt24/restaurant-orders/internal/domain"
)

// DatabaseService — абстракция слоя хранения заказов.
// Конкретные реализации (mysql/postgresql/mongodb) отличаются только именем
// и данными, которые подставляет FindByID.
type DatabaseService interface {
	// Save — зафиксировать заказ. Для валидного заказа не должен возвращать ошибку.
	Save(ctx context.Context, order domain.Order) error

	// FindByID — вернуть заказ по id. Реального хранилища нет:
	// реализация синтезирует заказ-заглушку с фиксированной ценой.
	FindByID(ctx context.Context, id int) (domain.Order, error)

	// Type — отображаемое имя бэкенда (например, "MySQL").
	Type() string
}

// DatabaseFactory — фабрика бэкендов по строковому ключу конфигурации.
// Неизвестный ключ — ошибка ErrInvalidConfiguration.
type DatabaseFactory func(kind string) (DatabaseService, error)
