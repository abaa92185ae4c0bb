package notify

import (
	"context"

	"github.com/Gunvolt24/restaurant-orders/internal/ports"
)

var _ ports.NotificationService = (*Recorder)(nil)

// Recorder — тестовый дублёр канала: запоминает отправленные сообщения.
type Recorder struct {
	Sent []string
}

func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) Send(_ context.Context, message string) error {
	r.Sent = append(r.Sent, message)
	return nil
}

func (r *Recorder) Type() string { return "Mock Notification" }
