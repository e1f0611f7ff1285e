package alias

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/keshon/cix/internal/command"
	"github.com/keshon/cix/internal/middleware"
)

// Command groups the alias subcommands.
type Command struct{}

func (c *Command) Name() string  { return "alias" }
func (c *Command) Usage() string { return "alias <list|set|remove> [args...]" }
func (c *Command) Brief() string { return "Manage command aliases" }
func (c *Command) Subcommands() []command.Command {
	return []command.Command{
		&listCommand{},
		command.ApplyMiddlewares(&setCommand{}, middleware.WithRequiredArgs(2)),
		command.ApplyMiddlewares(&removeCommand{}, middleware.WithRequiredArgs(1)),
	}
}

type listCommand struct{}

func (c *listCommand) Name() string                   { return "list" }
func (c *listCommand) Usage() string                  { return "alias list" }
func (c *listCommand) Brief() string                  { return "List aliases" }
func (c *listCommand) Subcommands() []command.Command { return nil }

func (c *listCommand) Run(ctx *command.Context) error {
	names, table := ctx.Dispatcher.Aliases()
	if len(names) == 0 {
		fmt.Fprintln(ctx.Out, "No aliases defined.")
		return nil
	}
	for _, name := range names {
		fmt.Fprintf(ctx.Out, "%s = %s\n", name, table[name])
	}
	return nil
}

type setCommand struct{}

func (c *setCommand) Name() string                   { return "set" }
func (c *setCommand) Usage() string                  { return "alias set <name> <command...>" }
func (c *setCommand) Brief() string                  { return "Define an alias for a command" }
func (c *setCommand) Subcommands() []command.Command { return nil }

// Flags stops flag parsing at the alias name so the expansion may carry
// flags of its own.
func (c *setCommand) Flags(fs *pflag.FlagSet) {
	fs.SetInterspersed(false)
}

func (c *setCommand) Run(ctx *command.Context) error {
	name, expansion := ctx.Args[0], strings.Join(ctx.Args[1:], " ")
	ctx.Dispatcher.SetAlias(name, expansion)
	fmt.Fprintf(ctx.Out, "Alias '%s' set to '%s'.\n", name, expansion)
	return nil
}

type removeCommand struct{}

func (c *removeCommand) Name() string                   { return "remove" }
func (c *removeCommand) Usage() string                  { return "alias remove <name>" }
func (c *removeCommand) Brief() string                  { return "Remove an alias" }
func (c *removeCommand) Subcommands() []command.Command { return nil }

func (c *removeCommand) Run(ctx *command.Context) error {
	name := strings.Join(ctx.Args, " ")
	if !ctx.Dispatcher.RemoveAlias(name) {
		return fmt.Errorf("no alias named %q", name)
	}
	fmt.Fprintf(ctx.Out, "Alias '%s' removed.\n", name)
	return nil
}

func init() {
	command.RegisterCommand(&Command{})
}
