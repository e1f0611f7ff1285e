package service

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/keshon/cix/internal/command"
	"github.com/keshon/cix/internal/middleware"
)

// Default backs the registered service commands.
var Default = NewTable()

// Command groups the service subcommands.
type Command struct {
	Table *Table
}

func (c *Command) Name() string  { return "service" }
func (c *Command) Usage() string { return "service <start|stop|restart|status|list> [name]" }
func (c *Command) Brief() string { return "Manage services" }
func (c *Command) Subcommands() []command.Command {
	return []command.Command{
		command.ApplyMiddlewares(&startCommand{c.Table}, middleware.WithRequiredArgs(1)),
		command.ApplyMiddlewares(&stopCommand{c.Table}, middleware.WithRequiredArgs(1)),
		command.ApplyMiddlewares(&restartCommand{c.Table}, middleware.WithRequiredArgs(1)),
		command.ApplyMiddlewares(&statusCommand{c.Table}, middleware.WithRequiredArgs(1)),
		&listCommand{c.Table},
	}
}

type startCommand struct{ table *Table }

func (c *startCommand) Name() string                   { return "start" }
func (c *startCommand) Usage() string                  { return "service start <name...>" }
func (c *startCommand) Brief() string                  { return "Start one or more services" }
func (c *startCommand) Subcommands() []command.Command { return nil }

func (c *startCommand) Run(ctx *command.Context) error {
	for _, name := range ctx.Args {
		if _, err := c.table.Start(name); err != nil {
			return err
		}
		ctx.Logger.Info("service started", zap.String("service", name))
		fmt.Fprintf(ctx.Out, "Service '%s' started.\n", name)
	}
	return nil
}

type stopCommand struct{ table *Table }

func (c *stopCommand) Name() string                   { return "stop" }
func (c *stopCommand) Usage() string                  { return "service stop <name...>" }
func (c *stopCommand) Brief() string                  { return "Stop one or more services" }
func (c *stopCommand) Subcommands() []command.Command { return nil }

func (c *stopCommand) Run(ctx *command.Context) error {
	for _, name := range ctx.Args {
		if _, err := c.table.Stop(name); err != nil {
			return err
		}
		ctx.Logger.Info("service stopped", zap.String("service", name))
		fmt.Fprintf(ctx.Out, "Service '%s' stopped.\n", name)
	}
	return nil
}

type restartCommand struct{ table *Table }

func (c *restartCommand) Name() string                   { return "restart" }
func (c *restartCommand) Usage() string                  { return "service restart <name...>" }
func (c *restartCommand) Brief() string                  { return "Restart one or more services" }
func (c *restartCommand) Subcommands() []command.Command { return nil }

func (c *restartCommand) Run(ctx *command.Context) error {
	for _, name := range ctx.Args {
		s, err := c.table.Restart(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(ctx.Out, "Service '%s' restarted (%d restarts).\n", name, s.Restarts)
	}
	return nil
}

type statusCommand struct{ table *Table }

func (c *statusCommand) Name() string                   { return "status" }
func (c *statusCommand) Usage() string                  { return "service status <name>" }
func (c *statusCommand) Brief() string                  { return "Show the state of a service" }
func (c *statusCommand) Subcommands() []command.Command { return nil }

func (c *statusCommand) Run(ctx *command.Context) error {
	name := ctx.Args[0]
	s, ok := c.table.Get(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownService, name)
	}
	printService(ctx, s)
	return nil
}

type listCommand struct{ table *Table }

func (c *listCommand) Name() string                   { return "list" }
func (c *listCommand) Usage() string                  { return "service list [--running]" }
func (c *listCommand) Brief() string                  { return "List known services" }
func (c *listCommand) Subcommands() []command.Command { return nil }

func (c *listCommand) Flags(fs *pflag.FlagSet) {
	fs.Bool("running", false, "only list running services")
}

func (c *listCommand) Run(ctx *command.Context) error {
	runningOnly, _ := ctx.Flags.GetBool("running")

	printed := 0
	for _, s := range c.table.List() {
		if runningOnly && s.State != Running {
			continue
		}
		printService(ctx, s)
		printed++
	}
	if printed == 0 {
		fmt.Fprintln(ctx.Out, "No services.")
	}
	return nil
}

func printService(ctx *command.Context, s Service) {
	fmt.Fprintf(ctx.Out, "%-16s %-8s since %s", s.Name, s.State, s.Since.Format(time.RFC3339))
	if s.Restarts > 0 {
		fmt.Fprintf(ctx.Out, " (%d restarts)", s.Restarts)
	}
	fmt.Fprintln(ctx.Out)
}

func init() {
	command.RegisterCommand(&Command{Table: Default})
}
