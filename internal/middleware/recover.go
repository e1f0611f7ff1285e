package middleware

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/keshon/cix/internal/console"
)

// WithRecover turns a panicking command into an error.
func WithRecover(logger *zap.Logger) console.Middleware {
	return func(b *console.Branch, next console.Handler) console.Handler {
		return func(args string) (err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("command panicked",
						zap.String("path", b.Address().String()),
						zap.Any("panic", r),
					)
					err = fmt.Errorf("command %s panicked: %v", b.Address(), r)
				}
			}()
			return next(args)
		}
	}
}
