package domain

import "fmt"

// Order — заказ ресторана. Тип-значение: копируется свободно,
// после создания меняется только платёжная аннотация.
type Order struct {
	ID          int     `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`

	// Платёжная аннотация: выставляется перед обработкой платежа.
	PaymentMethod string `json:"payment_method,omitempty"`
	PaymentInfo   string `json:"payment_info,omitempty"`
}

// NewOrder — конструктор заказа. Уникальность ID не проверяется —
// это соглашение на стороне вызывающего кода.
func NewOrder(id int, description string, amount float64) Order {
	return Order{ID: id, Description: description, Amount: amount}
}

// SetPayment — выставляет платёжную аннотацию (способ оплаты + реквизиты).
// Вызывается один раз перед каждой попыткой оплаты.
func (o *Order) SetPayment(method, info string) {
	o.PaymentMethod = method
	o.PaymentInfo = info
}

// String — отображаемая форма заказа для логов.
func (o Order) String() string {
	return fmt.Sprintf("Order{id=%d, description=%q, amount=$%.2f}", o.ID, o.Description, o.Amount)
}
