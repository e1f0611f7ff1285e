package command

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/keshon/cix/internal/console"
	"github.com/keshon/cix/internal/dispatch"
	"github.com/keshon/cix/internal/render"
)

// NewRoot creates the root of a console tree. Run bare, the root lists
// every command; anything that falls through to it is an unknown command.
func NewRoot(name string, out io.Writer, opts ...console.Option) *console.Branch {
	root := console.New(name, opts...)
	root.Usage = name + " <command> [args...]"
	root.Handler = func(args string) error {
		if args != "" {
			return fmt.Errorf("%w: %q", dispatch.ErrNoMatch, args)
		}
		render.Commands(out, root)
		return nil
	}
	return root
}

// Execute dispatches one input line. When the line stops at a command
// group, the group's help is printed instead; trailing words the group
// could not match make that an unknown command.
func Execute(d *dispatch.Dispatcher, input string, out io.Writer) error {
	err := d.Dispatch(input)

	var ge *dispatch.GroupError
	if !errors.As(err, &ge) {
		return err
	}
	d.View(func(root *console.Branch) {
		render.Help(out, root, ge.Branch)
	})
	if ge.Args != "" {
		return fmt.Errorf("%w: %q", dispatch.ErrNoMatch, strings.TrimSpace(input))
	}
	return nil
}
