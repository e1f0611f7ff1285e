package tree

import (
	"github.com/keshon/cix/internal/command"
	"github.com/keshon/cix/internal/console"
	"github.com/keshon/cix/internal/render"
)

type Command struct{}

func (c *Command) Name() string                   { return "tree" }
func (c *Command) Usage() string                  { return "tree" }
func (c *Command) Brief() string                  { return "Print the command tree" }
func (c *Command) Subcommands() []command.Command { return nil }

func (c *Command) Run(ctx *command.Context) error {
	ctx.Dispatcher.View(func(root *console.Branch) {
		render.Tree(ctx.Out, root)
	})
	return nil
}

func init() {
	command.RegisterCommand(&Command{})
}
