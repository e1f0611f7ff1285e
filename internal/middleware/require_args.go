package middleware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/keshon/cix/internal/console"
)

// ErrUsage is returned when a command is called with the wrong arguments.
var ErrUsage = errors.New("usage")

// WithRequiredArgs rejects calls with fewer than n space separated arguments
// before the command runs.
func WithRequiredArgs(n int) console.Middleware {
	return func(b *console.Branch, next console.Handler) console.Handler {
		return func(args string) error {
			if got := len(strings.Fields(args)); got < n {
				usage := b.Usage
				if usage == "" {
					usage = b.Identity()
				}
				return fmt.Errorf("%w: %s (expected %d argument(s), got %d)", ErrUsage, usage, n, got)
			}
			return next(args)
		}
	}
}
