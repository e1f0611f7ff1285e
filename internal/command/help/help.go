package help

import (
	"fmt"
	"strings"

	"github.com/keshon/cix/internal/command"
	"github.com/keshon/cix/internal/console"
	"github.com/keshon/cix/internal/render"
)

type Command struct{}

func (c *Command) Name() string                   { return "help" }
func (c *Command) Usage() string                  { return "help [command]" }
func (c *Command) Brief() string                  { return "Show help for commands" }
func (c *Command) Subcommands() []command.Command { return nil }

func (c *Command) Run(ctx *command.Context) error {
	if len(ctx.Args) > 0 {
		return runCommandHelp(ctx, strings.Join(ctx.Args, " "))
	}
	ctx.Dispatcher.View(func(root *console.Branch) {
		render.Commands(ctx.Out, root)
	})
	return nil
}

// runCommandHelp shows detailed help for the command the words resolve to
func runCommandHelp(ctx *command.Context, words string) error {
	match, rest, ok := ctx.Dispatcher.Resolve(words)
	ctx.Dispatcher.View(func(root *console.Branch) {
		if !ok || (match == root && rest != "") {
			fmt.Fprintf(ctx.Out, "Unknown command: %s\n", words)
			return
		}
		render.Help(ctx.Out, root, match)
	})
	return nil
}

func init() {
	command.RegisterCommand(&Command{})
}
