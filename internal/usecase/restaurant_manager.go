package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Gunvolt24/restaurant-orders/internal/domain"
	"github.com/Gunvolt24/restaurant-orders/internal/ports"
)

// ErrNotInitialized — менеджер ещё не сконфигурирован (Initialize не вызывался
// или завершился ошибкой). Ожидаемое состояние, не паника.
var ErrNotInitialized = errors.New("restaurant is not initialized")

// NotInitialized — значение Configuration() до первой инициализации.
const NotInitialized = "Not initialized"

var _ ports.OrderService = (*RestaurantManager)(nil)

// RestaurantManager — держит не более одного активного RestaurantService
// и пересобирает его через фабрики по строковым ключам конфигурации.
// Фабрики внедряются как значения-функции: менеджер не знает конкретных типов.
type RestaurantManager struct {
	newDatabase     ports.DatabaseFactory
	newNotification ports.NotificationFactory
	log             ports.Logger
	validator       ports.OrderValidator

	mu      sync.RWMutex
	service *RestaurantService
}

// NewRestaurantManager — DI-конструктор.
func NewRestaurantManager(
	newDatabase ports.DatabaseFactory,
	newNotification ports.NotificationFactory,
	log ports.Logger,
	validator ports.OrderValidator,
) *RestaurantManager {
	return &RestaurantManager{
		newDatabase:     newDatabase,
		newNotification: newNotification,
		log:             log,
		validator:       validator,
	}
}

// Initialize — разрешает оба ключа через фабрики и заменяет текущий сервис.
// Повторная инициализация допустима: прежняя конфигурация просто отбрасывается
// (варианты не держат ресурсов). Ошибка конфигурации оставляет прежний сервис.
func (m *RestaurantManager) Initialize(dbKind, notifKind string) error {
	database, err := m.newDatabase(dbKind)
	if err != nil {
		return fmt.Errorf("initialize restaurant: %w", err)
	}
	notification, err := m.newNotification(notifKind)
	if err != nil {
		return fmt.Errorf("initialize restaurant: %w", err)
	}

	service := NewRestaurantService(database, notification, m.log, m.validator)

	m.mu.Lock()
	m.service = service
	m.mu.Unlock()

	m.log.Infof(context.Background(), "restaurant initialized config=%s", service.Configuration())
	return nil
}

// ProcessOrder — провести заказ через активный сервис.
// До инициализации возвращает ErrNotInitialized без побочных эффектов.
func (m *RestaurantManager) ProcessOrder(ctx context.Context, order domain.Order) error {
	service := m.current()
	if service == nil {
		m.log.Warnf(ctx, "process order id=%d rejected: %v", order.ID, ErrNotInitialized)
		return ErrNotInitialized
	}
	return service.ProcessOrder(ctx, order)
}

// GetOrder — получить заказ через активный сервис.
func (m *RestaurantManager) GetOrder(ctx context.Context, id int) (domain.Order, error) {
	service := m.current()
	if service == nil {
		return domain.Order{}, ErrNotInitialized
	}
	return service.GetOrder(ctx, id)
}

// Configuration — конфигурация активного сервиса или сентинел "Not initialized".
func (m *RestaurantManager) Configuration() string {
	service := m.current()
	if service == nil {
		return NotInitialized
	}
	return service.Configuration()
}

func (m *RestaurantManager) current() *RestaurantService {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.service
}
