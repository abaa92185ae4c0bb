package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/Gunvolt24/restaurant-orders/internal/domain"
	"github.com/Gunvolt24/restaurant-orders/internal/notify"
	"github.com/Gunvolt24/restaurant-orders/internal/ports/mocks"
	"github.com/Gunvolt24/restaurant-orders/internal/repo"
	"github.com/Gunvolt24/restaurant-orders/internal/usecase"
	"github.com/Gunvolt24/restaurant-orders/pkg/validate"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func TestProcessOrder_SaveThenSend(t *testing.T) {
	ctrl := gomock.NewController(t)

	db := mocks.NewMockDatabaseService(ctrl)
	notif := mocks.NewMockNotificationService(ctrl)
	validator := mocks.NewMockOrderValidator(ctrl)
	log := noopLogger{}

	order := domain.NewOrder(2, "Sate Ayam Madura", 28.50)

	gomock.InOrder(
		validator.EXPECT().Validate(gomock.Any(), order).Return(nil),
		db.EXPECT().Save(gomock.Any(), order).Return(nil),
		notif.EXPECT().Send(gomock.Any(), "Order 2 processed successfully!").Return(nil),
	)

	svc := usecase.NewRestaurantService(db, notif, log, validator)
	if err := svc.ProcessOrder(context.Background(), order); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProcessOrder_SaveFailed_NoSend(t *testing.T) {
	ctrl := gomock.NewController(t)

	db := mocks.NewMockDatabaseService(ctrl)
	notif := mocks.NewMockNotificationService(ctrl)
	validator := mocks.NewMockOrderValidator(ctrl)
	log := noopLogger{}

	order := domain.NewOrder(5, "Bakso Malang", 18.50)

	validator.EXPECT().Validate(gomock.Any(), order).Return(nil)
	db.EXPECT().Save(gomock.Any(), order).Return(errors.New("disk full"))
	notif.EXPECT().Send(gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewRestaurantService(db, notif, log, validator)
	err := svc.ProcessOrder(context.Background(), order)
	if err == nil || !strings.Contains(err.Error(), "failed to save order") {
		t.Fatalf("want wrapped save error, got %v", err)
	}
}

func TestProcessOrder_ValidationFailed(t *testing.T) {
	ctrl := gomock.NewController(t)

	db := mocks.NewMockDatabaseService(ctrl)
	notif := mocks.NewMockNotificationService(ctrl)
	validator := mocks.NewMockOrderValidator(ctrl)
	log := noopLogger{}

	order := domain.NewOrder(-1, "", 0)

	validator.EXPECT().Validate(gomock.Any(), order).Return(validate.ErrInvalidOrder)
	db.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)
	notif.EXPECT().Send(gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewRestaurantService(db, notif, log, validator)
	err := svc.ProcessOrder(context.Background(), order)
	if err == nil || !errors.Is(err, validate.ErrInvalidOrder) {
		t.Fatalf("want wrapped ErrInvalidOrder, got %v", err)
	}
}

// Тестовые дублёры фиксируют именно переданный заказ и ничего больше.
func TestProcessOrder_RecordersCaptureOrder(t *testing.T) {
	dbRec := repo.NewRecorder()
	notifRec := notify.NewRecorder()

	svc := usecase.NewRestaurantService(dbRec, notifRec, noopLogger{}, validate.NewOrderValidator())

	order := domain.NewOrder(2, "Sate Ayam Madura", 28.50)
	if err := svc.ProcessOrder(context.Background(), order); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(dbRec.Saved) != 1 || dbRec.Saved[0] != order {
		t.Fatalf("database double must record the order: %+v", dbRec.Saved)
	}
	if len(notifRec.Sent) != 1 || notifRec.Sent[0] != "Order 2 processed successfully!" {
		t.Fatalf("notification double must record the message: %+v", notifRec.Sent)
	}
	if len(dbRec.FindCalls) != 0 {
		t.Fatalf("no other side effects expected: %+v", dbRec.FindCalls)
	}
}

func TestGetOrder_Delegates(t *testing.T) {
	ctrl := gomock.NewController(t)

	db := mocks.NewMockDatabaseService(ctrl)
	notif := mocks.NewMockNotificationService(ctrl)
	validator := mocks.NewMockOrderValidator(ctrl)
	log := noopLogger{}

	want := domain.NewOrder(42, "MySQL Order #42", 25.99)
	db.EXPECT().FindByID(gomock.Any(), 42).Return(want, nil)

	svc := usecase.NewRestaurantService(db, notif, log, validator)
	got, err := svc.GetOrder(context.Background(), 42)
	if err != nil || got != want {
		t.Fatalf("unexpected result: %+v, err=%v", got, err)
	}
}

func TestConfiguration_JoinsVariantNames(t *testing.T) {
	svc := usecase.NewRestaurantService(
		repo.NewMySQL(noopLogger{}),
		notify.NewEmail(noopLogger{}),
		noopLogger{},
		validate.NewOrderValidator(),
	)

	if got := svc.Configuration(); got != "MySQL + Email" {
		t.Fatalf("want %q, got %q", "MySQL + Email", got)
	}
}
