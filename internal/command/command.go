package command

import (
	"io"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/keshon/cix/internal/console"
	"github.com/keshon/cix/internal/dispatch"
)

// Command represents a console command. Commands without a Runner only
// group their subcommands.
type Command interface {
	Name() string
	Usage() string
	Brief() string
	Subcommands() []Command
}

// Runner is a command that can be executed.
type Runner interface {
	Run(ctx *Context) error
}

// Flagger is a command that declares flags. They are parsed out of the
// argument string before Run.
type Flagger interface {
	Flags(fs *pflag.FlagSet)
}

// Context represents a single command invocation
type Context struct {
	// Raw is the argument string left after matching the command path.
	Raw string
	// Args are the positional arguments after flag parsing.
	Args  []string
	Flags *pflag.FlagSet

	Branch     *console.Branch
	Dispatcher *dispatch.Dispatcher
	Out        io.Writer
	Logger     *zap.Logger
}
