package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Action - действие меню
type Action func(ctx context.Context) error

// Middleware оборачивает действие с заданным именем
type Middleware func(name string, next Action) Action

// Chain применяет middleware так, что первый в списке становится внешним
func Chain(name string, action Action, mws ...Middleware) Action {
	for i := len(mws) - 1; i >= 0; i-- {
		action = mws[i](name, action)
	}
	return action
}

// Logger middleware для логирования выполнения действий
func Logger(logger *slog.Logger) Middleware {
	return func(name string, next Action) Action {
		return func(ctx context.Context) error {
			start := time.Now()

			err := next(ctx)

			attrs := []any{
				slog.String("action", name),
				slog.Duration("duration", time.Since(start)),
			}
			if err != nil {
				logger.Error("action failed", append(attrs, slog.Any("error", err))...)
				return err
			}
			logger.Info("action completed", attrs...)
			return nil
		}
	}
}

// Recoverer middleware превращает панику в ошибку действия
func Recoverer(logger *slog.Logger) Middleware {
	return func(name string, next Action) Action {
		return func(ctx context.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("panic recovered",
						slog.Any("error", r),
						slog.String("action", name),
					)
					err = fmt.Errorf("internal error in %q: %v", name, r)
				}
			}()
			return next(ctx)
		}
	}
}
