package repo

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/restaurant-orders/internal/domain"
	"github.com/Gunvolt24/restaurant-orders/internal/ports"
	"github.com/Gunvolt24/restaurant-orders/pkg/metrics"
)

// Проверки соответствия порту.
var (
	_ ports.DatabaseService = (*MySQL)(nil)
	_ ports.DatabaseService = (*PostgreSQL)(nil)
	_ ports.DatabaseService = (*MongoDB)(nil)
)

// backend — общая часть бэкендов: они различаются только именем
// и ценой заказа-заглушки, который возвращает FindByID.
type backend struct {
	name  string
	price float64
	log   ports.Logger
}

// Save — фиксирует факт сохранения. Для валидного заказа не падает.
func (b *backend) Save(ctx context.Context, order domain.Order) error {
	b.log.Infof(ctx, "%s: saving order %s", b.name, order)
	metrics.OrdersSaved.WithLabelValues(b.name).Inc()
	return nil
}

// FindByID — синтезирует заказ-заглушку по запрошенному id.
// Реального поиска нет: хранилище ничего не хранит.
func (b *backend) FindByID(_ context.Context, id int) (domain.Order, error) {
	return domain.NewOrder(id, fmt.Sprintf("%s Order #%d", b.name, id), b.price), nil
}

func (b *backend) Type() string { return b.name }

// MySQL — бэкенд в стиле MySQL.
type MySQL struct{ backend }

func NewMySQL(log ports.Logger) *MySQL {
	return &MySQL{backend{name: "MySQL", price: 25.99, log: log}}
}

// PostgreSQL — бэкенд в стиле PostgreSQL.
type PostgreSQL struct{ backend }

func NewPostgreSQL(log ports.Logger) *PostgreSQL {
	return &PostgreSQL{backend{name: "PostgreSQL", price: 29.99, log: log}}
}

// MongoDB — бэкенд в стиле MongoDB.
type MongoDB struct{ backend }

func NewMongoDB(log ports.Logger) *MongoDB {
	return &MongoDB{backend{name: "MongoDB", price: 27.50, log: log}}
}
