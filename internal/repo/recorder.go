package repo

import (
	"context"

	"github.com/Gunvolt24/restaurant-orders/internal/domain"
	"github.com/Gunvolt24/restaurant-orders/internal/ports"
)

var _ ports.DatabaseService = (*Recorder)(nil)

// Recorder — тестовый дублёр бэкенда: выполняет тот же контракт,
// но вместо побочных эффектов запоминает вызовы.
type Recorder struct {
	Saved     []domain.Order
	FindCalls []int
}

func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) Save(_ context.Context, order domain.Order) error {
	r.Saved = append(r.Saved, order)
	return nil
}

func (r *Recorder) FindByID(_ context.Context, id int) (domain.Order, error) {
	r.FindCalls = append(r.FindCalls, id)
	return domain.NewOrder(id, "Mock Order", 0), nil
}

func (r *Recorder) Type() string { return "Mock Database" }
