//go:generate mockgen -source=../database.go        -destination=./mock_database.go        -package=mocks
//go:generate mockgen -source=../notification.go    -destination=./mock_notification.go    -package=mocks
//go:generate mockgen -source=../payment.go         -destination=./mock_payment.go         -package=mocks
//go:generate mockgen -source=../validator.go       -destination=./mock_validator.go       -package=mocks
//go:generate mockgen -source=../order_service.go   -destination=./mock_order_service.go   -package=mocks
//go:generate mockgen -source=../payment_service.go -destination=./mock_payment_service.go -package=mocks

package mocks
