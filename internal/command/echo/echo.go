package echo

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/keshon/cix/internal/command"
)

type Command struct{}

func (c *Command) Name() string                   { return "echo" }
func (c *Command) Usage() string                  { return "echo [-n] [--upper] <text...>" }
func (c *Command) Brief() string                  { return "Print the arguments" }
func (c *Command) Subcommands() []command.Command { return nil }

func (c *Command) Flags(fs *pflag.FlagSet) {
	fs.BoolP("no-newline", "n", false, "do not print the trailing newline")
	fs.Bool("upper", false, "print in upper case")
}

func (c *Command) Run(ctx *command.Context) error {
	noNewline, _ := ctx.Flags.GetBool("no-newline")
	upper, _ := ctx.Flags.GetBool("upper")

	text := strings.Join(ctx.Args, " ")
	if upper {
		text = strings.ToUpper(text)
	}
	if noNewline {
		fmt.Fprint(ctx.Out, text)
		return nil
	}
	fmt.Fprintln(ctx.Out, text)
	return nil
}

func init() {
	command.RegisterCommand(&Command{})
}
