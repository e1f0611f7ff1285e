// Package console is the command tree a console front end dispatches into.
//
// Command input is space separated ("service start web"); spaces are turned
// into the tree divider before lookup, so the node at "service/start" is the
// best match and "web" is left over as its argument string.
package console

import (
	"strings"

	"github.com/keshon/cix/internal/address"
	"github.com/keshon/cix/internal/tree"
)

// Handler runs a command with the argument string left after matching.
type Handler func(args string) error

// Branch is a node of the command tree. Nodes without a Handler only group
// their children.
type Branch struct {
	identity    string
	address     address.Address[*Branch]
	subBranches []*Branch

	Handler Handler
	Usage   string
	Brief   string
}

// Option configures a Branch at creation.
type Option func(*Branch)

// WithPath replaces the derived address.
func WithPath(a address.Address[*Branch]) Option {
	return func(b *Branch) { b.address = a }
}

// WithDivider re-creates the branch address with another divider.
func WithDivider(divider string) Option {
	return func(b *Branch) {
		b.address = address.New[*Branch](b.address.Key(), address.WithDivider(divider))
	}
}

// WithHandler sets the handler and wraps it in mws, first one innermost.
func WithHandler(h Handler, mws ...Middleware) Option {
	return func(b *Branch) {
		b.Handler = h
		b.Use(mws...)
	}
}

// WithUsage sets the one line usage shown by help.
func WithUsage(usage string) Option {
	return func(b *Branch) { b.Usage = usage }
}

// WithBrief sets the short description shown in listings.
func WithBrief(brief string) Option {
	return func(b *Branch) { b.Brief = brief }
}

// New creates a root branch addressed at identity.
func New(identity string, opts ...Option) *Branch {
	b := &Branch{
		identity: identity,
		address:  address.New[*Branch](identity),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Branch) Identity() string                 { return b.identity }
func (b *Branch) Address() address.Address[*Branch] { return b.address }
func (b *Branch) SubBranches() []*Branch           { return b.subBranches }

// SetSubBranches replaces the children.
func (b *Branch) SetSubBranches(children []*Branch) { b.subBranches = children }

// HasHandler reports whether b can be run or only groups other commands.
func (b *Branch) HasHandler() bool { return b.Handler != nil }

// Branch registers a child addressed at b's address composed with identity.
// process, when not nil, is applied to the child so whole command trees can
// be declared in one expression.
func (b *Branch) Branch(identity string, process func(*Branch), opts ...Option) *Branch {
	child := &Branch{
		identity: identity,
		address:  b.address.Compose(identity),
	}
	for _, opt := range opts {
		opt(child)
	}
	if process != nil {
		process(child)
	}
	b.subBranches = append(b.subBranches, child)
	return child
}

// Query turns raw command input into an address in this tree's divider.
func (b *Branch) Query(raw string) address.Address[*Branch] {
	d := b.address.Divider()
	return address.New[*Branch](strings.ReplaceAll(raw, " ", d), address.WithDivider(d))
}

// Parameters turns the remainder of a match back into a space separated
// argument string.
func Parameters(rest address.Address[*Branch]) string {
	s := strings.ReplaceAll(rest.Key(), rest.Divider(), " ")
	return strings.TrimPrefix(s, " ")
}

// BestMatchFromCommandInput returns the most specific command for raw input.
func (b *Branch) BestMatchFromCommandInput(raw string) (*Branch, bool) {
	return tree.BestMatch(b, b.Query(raw))
}

// BestMatchFromCommandInputWithParameters is BestMatchFromCommandInput plus
// the argument string left for the command. Without a match the whole input
// is returned as arguments.
func (b *Branch) BestMatchFromCommandInputWithParameters(raw string) (*Branch, string, bool) {
	match, rest, ok := tree.BestMatchWithRemaining(b, b.Query(raw))
	return match, Parameters(rest), ok
}

func (b *Branch) Flatten() []*Branch  { return tree.Flatten(b) }
func (b *Branch) AllKnown() []*Branch { return tree.AllKnown(b) }

func (b *Branch) BestMatch(query address.Address[*Branch]) (*Branch, bool) {
	return tree.BestMatch(b, query)
}

func (b *Branch) BestMatchWithRemaining(query address.Address[*Branch]) (*Branch, address.Address[*Branch], bool) {
	return tree.BestMatchWithRemaining(b, query)
}
