package validate_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Gunvolt24/restaurant-orders/internal/domain"
	"github.com/Gunvolt24/restaurant-orders/pkg/validate"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		order   domain.Order
		wantErr bool
	}{
		{"valid", domain.NewOrder(1, "Nasi Gudeg Special", 35.00), false},
		{"zero amount is allowed", domain.NewOrder(2, "Free sample", 0), false},
		{"non-positive id", domain.NewOrder(0, "Bakso Malang", 18.50), true},
		{"negative id", domain.NewOrder(-3, "Bakso Malang", 18.50), true},
		{"empty description", domain.NewOrder(4, "", 10.00), true},
		{"negative amount", domain.NewOrder(5, "Es Cendol", -1.00), true},
	}

	v := validate.NewOrderValidator()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tc.order)
			if tc.wantErr {
				if !errors.Is(err, validate.ErrInvalidOrder) {
					t.Fatalf("want ErrInvalidOrder, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
