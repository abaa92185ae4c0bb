package ports

import "context"

// NotificationService — абстракция канала уведомлений.
type NotificationService interface {
	// Send — доставить сообщение через канал. Не должен падать на валидном сообщении.
	Send(ctx context.Context, message string) error

	// Type — отображаемое имя канала (например, "Email").
	Type() string
}

// NotificationFactory — фабрика каналов по строковому ключу конфигурации.
type NotificationFactory func(kind string) (NotificationService, error)
