package command

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/keshon/cix/internal/console"
	"github.com/keshon/cix/internal/dispatch"
	"github.com/keshon/cix/internal/logging"
	"github.com/keshon/cix/internal/middleware"
)

// Env is what mounted commands see at run time.
type Env struct {
	Dispatcher *dispatch.Dispatcher
	Out        io.Writer
	Logger     *zap.Logger

	// Middlewares wrap every mounted command, outside its own middlewares.
	Middlewares []Middleware
}

// Mount inserts cmds and all their subcommands under parent.
func Mount(parent *console.Branch, env Env, cmds ...Command) {
	env.Logger = logging.OrNop(env.Logger)
	for _, cmd := range cmds {
		insert(parent, env, cmd)
	}
}

// MountAll mounts every registered command onto the dispatcher's tree.
func MountAll(env Env) error {
	return env.Dispatcher.Register(func(root *console.Branch) {
		Mount(root, env, AllCommands()...)
	})
}

func insert(parent *console.Branch, env Env, cmd Command) {
	inner, mws := unwrap(cmd)
	opts := []console.Option{
		console.WithUsage(inner.Usage()),
		console.WithBrief(inner.Brief()),
	}
	parent.Branch(inner.Name(), func(b *console.Branch) {
		if r, ok := inner.(Runner); ok {
			b.Handler = handler(b, inner, r, env)
			b.Use(mws...)
			b.Use(env.Middlewares...)
		}
		// Recursively add subcommands
		for _, sub := range inner.Subcommands() {
			insert(b, env, sub)
		}
	}, opts...)
}

func handler(b *console.Branch, cmd Command, r Runner, env Env) console.Handler {
	return func(args string) error {
		fs := pflag.NewFlagSet(cmd.Name(), pflag.ContinueOnError)
		fs.SetOutput(io.Discard)
		if f, ok := cmd.(Flagger); ok {
			f.Flags(fs)
		}
		if err := fs.Parse(strings.Fields(args)); err != nil {
			return fmt.Errorf("%w: %s: %v", middleware.ErrUsage, b.Usage, err)
		}

		return r.Run(&Context{
			Raw:        args,
			Args:       fs.Args(),
			Flags:      fs,
			Branch:     b,
			Dispatcher: env.Dispatcher,
			Out:        env.Out,
			Logger:     env.Logger.With(zap.String("command", b.Address().String())),
		})
	}
}
