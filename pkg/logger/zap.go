package logger

import (
	"context"

	"go.uber.org/zap"

	"github.com/Gunvolt24/restaurant-orders/pkg/ctxmeta"
)

type ZapLogger struct {
	base  *zap.Logger
	sugar *zap.SugaredLogger
}

// NewZapLogger — создаёт логгер (dev/prod конфигурация zap)
// и функцию его корректного завершения.
func NewZapLogger(isProd bool) (*ZapLogger, func() error, error) {
	var (
		base *zap.Logger
		err  error
	)

	if isProd {
		base, err = zap.NewProduction()
	} else {
		base, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, nil, err
	}

	l := &ZapLogger{base: base, sugar: base.Sugar()}
	cleanup := func() error { return l.base.Sync() }
	return l, cleanup, nil
}

// withMeta — добавляет request_id из контекста к полям записи.
func (z *ZapLogger) withMeta(ctx context.Context) *zap.SugaredLogger {
	if rid, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		return z.sugar.With("request_id", rid)
	}
	return z.sugar
}

func (z *ZapLogger) Infof(ctx context.Context, format string, args ...any) {
	z.withMeta(ctx).Infof(format, args...)
}

func (z *ZapLogger) Warnf(ctx context.Context, format string, args ...any) {
	z.withMeta(ctx).Warnf(format, args...)
}

func (z *ZapLogger) Errorf(ctx context.Context, format string, args ...any) {
	z.withMeta(ctx).Errorf(format, args...)
}

func (z *ZapLogger) Base() *zap.Logger { return z.base }
