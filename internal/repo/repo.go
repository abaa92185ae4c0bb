// Пакет repo — реализации ports.DatabaseService.
// Реального хранилища нет: Save фиксирует факт сохранения структурным
// логом и метрикой, FindByID синтезирует заказ-заглушку с фиксированной
// ценой бэкенда.
package repo

import (
	"fmt"

	"github.com/Gunvolt24/restaurant-orders/internal/ports"
)

// Ключи конфигурации (сопоставление регистрозависимое).
const (
	KindMySQL      = "mysql"
	KindPostgreSQL = "postgresql"
	KindMongoDB    = "mongodb"
)

// New — фабрика бэкендов по строковому ключу конфигурации.
func New(kind string, log ports.Logger) (ports.DatabaseService, error) {
	switch kind {
	case KindMySQL:
		return NewMySQL(log), nil
	case KindPostgreSQL:
		return NewPostgreSQL(log), nil
	case KindMongoDB:
		return NewMongoDB(log), nil
	default:
		return nil, fmt.Errorf("%w: unknown database kind %q", ports.ErrInvalidConfiguration, kind)
	}
}
