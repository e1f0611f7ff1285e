package command

import "github.com/keshon/cix/internal/console"

// Middleware is a function that wraps a command handler
type Middleware = console.Middleware

// WrappedCommand represents a command registered with middlewares
type WrappedCommand struct {
	Command
	Middlewares []Middleware
}

// ApplyMiddlewares attaches any number of middlewares to a command. They
// wrap its handler when it is mounted, first one innermost.
func ApplyMiddlewares(cmd Command, mws ...Middleware) Command {
	if w, ok := cmd.(*WrappedCommand); ok {
		return &WrappedCommand{Command: w.Command, Middlewares: append(append([]Middleware{}, w.Middlewares...), mws...)}
	}
	return &WrappedCommand{Command: cmd, Middlewares: mws}
}

// unwrap returns the innermost command and its middlewares.
func unwrap(cmd Command) (Command, []Middleware) {
	if w, ok := cmd.(*WrappedCommand); ok {
		return w.Command, w.Middlewares
	}
	return cmd, nil
}
