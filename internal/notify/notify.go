// Пакет notify — реализации ports.NotificationService.
// Каналы различаются только именем: доставка — это структурный лог
// и метрика, реальной сети нет.
package notify

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/restaurant-orders/internal/ports"
	"github.com/Gunvolt24/restaurant-orders/pkg/metrics"
)

// Ключи конфигурации (сопоставление регистрозависимое).
const (
	KindEmail = "email"
	KindSMS   = "sms"
	KindSlack = "slack"
)

// New — фабрика каналов по строковому ключу конфигурации.
func New(kind string, log ports.Logger) (ports.NotificationService, error) {
	switch kind {
	case KindEmail:
		return NewEmail(log), nil
	case KindSMS:
		return NewSMS(log), nil
	case KindSlack:
		return NewSlack(log), nil
	default:
		return nil, fmt.Errorf("%w: unknown notification kind %q", ports.ErrInvalidConfiguration, kind)
	}
}

var (
	_ ports.NotificationService = (*Email)(nil)
	_ ports.NotificationService = (*SMS)(nil)
	_ ports.NotificationService = (*Slack)(nil)
)

// channel — общая часть каналов: различаются только именем.
type channel struct {
	name string
	log  ports.Logger
}

func (c *channel) Send(ctx context.Context, message string) error {
	c.log.Infof(ctx, "%s: %s", c.name, message)
	metrics.NotificationsSent.WithLabelValues(c.name).Inc()
	return nil
}

func (c *channel) Type() string { return c.name }

// Email — канал уведомлений по электронной почте.
type Email struct{ channel }

func NewEmail(log ports.Logger) *Email { return &Email{channel{name: "Email", log: log}} }

// SMS — канал уведомлений по SMS.
type SMS struct{ channel }

func NewSMS(log ports.Logger) *SMS { return &SMS{channel{name: "SMS", log: log}} }

// Slack — канал уведомлений в Slack.
type Slack struct{ channel }

func NewSlack(log ports.Logger) *Slack { return &Slack{channel{name: "Slack", log: log}} }
