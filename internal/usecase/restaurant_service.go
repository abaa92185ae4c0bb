package usecase

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/restaurant-orders/internal/domain"
	"github.com/Gunvolt24/restaurant-orders/internal/ports"
	"github.com/Gunvolt24/restaurant-orders/pkg/metrics"
)

// RestaurantService — прикладная логика проведения заказа.
// Зависит только от абстракций: конкретный бэкенд и канал уведомлений
// внедряются конструктором и сервису неизвестны.
type RestaurantService struct {
	database     ports.DatabaseService
	notification ports.NotificationService
	log          ports.Logger
	validator    ports.OrderValidator
}

// NewRestaurantService — DI-конструктор.
func NewRestaurantService(
	database ports.DatabaseService,
	notification ports.NotificationService,
	log ports.Logger,
	validator ports.OrderValidator,
) *RestaurantService {
	return &RestaurantService{
		database:     database,
		notification: notification,
		log:          log,
		validator:    validator,
	}
}

// ProcessOrder — провести заказ. Шаги:
//  1. доменная валидация (validate.ErrInvalidOrder при проблемах);
//  2. сохранение в бэкенд;
//  3. уведомление с фиксированным шаблоном сообщения.
//
// Последовательно, не транзакционно: ошибка сохранения прерывает обработку,
// уведомление при этом не отправляется.
func (s *RestaurantService) ProcessOrder(ctx context.Context, order domain.Order) error {
	if err := s.validator.Validate(ctx, order); err != nil {
		s.log.Warnf(ctx, "validation failed order_id=%d err=%v", order.ID, err)
		return fmt.Errorf("validation failed: %w", err)
	}

	if err := s.database.Save(ctx, order); err != nil {
		s.log.Errorf(ctx, "database.Save failed order_id=%d err=%v", order.ID, err)
		return fmt.Errorf("failed to save order: %w", err)
	}

	message := fmt.Sprintf("Order %d processed successfully!", order.ID)
	if err := s.notification.Send(ctx, message); err != nil {
		s.log.Errorf(ctx, "notification.Send failed order_id=%d err=%v", order.ID, err)
		return fmt.Errorf("failed to send notification: %w", err)
	}

	metrics.OrdersProcessed.Inc()
	s.log.Infof(ctx, "order processed id=%d", order.ID)
	return nil
}

// GetOrder — получить заказ по id (делегирование в бэкенд).
func (s *RestaurantService) GetOrder(ctx context.Context, id int) (domain.Order, error) {
	return s.database.FindByID(ctx, id)
}

// Configuration — имена сконфигурированных вариантов для отображения.
func (s *RestaurantService) Configuration() string {
	return s.database.Type() + " + " + s.notification.Type()
}
