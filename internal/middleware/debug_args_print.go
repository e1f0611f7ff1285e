package middleware

import (
	"go.uber.org/zap"

	"github.com/keshon/cix/internal/console"
)

// WithDebugArgsPrint logs the command path and argument string at debug
// level before running the command.
func WithDebugArgsPrint(logger *zap.Logger) console.Middleware {
	return func(b *console.Branch, next console.Handler) console.Handler {
		return func(args string) error {
			logger.Debug("run command",
				zap.String("path", b.Address().String()),
				zap.String("args", args),
			)
			return next(args)
		}
	}
}
