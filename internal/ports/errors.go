package ports

import "errors"

// ErrInvalidConfiguration — нераспознанный ключ варианта в конфигурации.
// Фабрики оборачивают его через %w; вызывающий код различает через errors.Is.
var ErrInvalidConfiguration = errors.New("invalid configuration")
