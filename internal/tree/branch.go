package tree

import "github.com/keshon/cix/internal/address"

// Branch is a general purpose node carrying a content payload of type C.
// A zero C (nil for func or pointer content) marks a pure routing node.
type Branch[C any] struct {
	identity    string
	address     address.Address[*Branch[C]]
	subBranches []*Branch[C]

	Content C
}

// Option configures a Branch at creation.
type Option[C any] func(*Branch[C])

// WithPath replaces the derived address.
func WithPath[C any](a address.Address[*Branch[C]]) Option[C] {
	return func(b *Branch[C]) { b.address = a }
}

// WithContent sets the payload.
func WithContent[C any](content C) Option[C] {
	return func(b *Branch[C]) { b.Content = content }
}

// NewBranch creates a detached node. Its address is New(identity) unless
// WithPath says otherwise.
func NewBranch[C any](identity string, opts ...Option[C]) *Branch[C] {
	b := &Branch[C]{
		identity: identity,
		address:  address.New[*Branch[C]](identity),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Branch[C]) Identity() string                    { return b.identity }
func (b *Branch[C]) Address() address.Address[*Branch[C]] { return b.address }
func (b *Branch[C]) SubBranches() []*Branch[C]           { return b.subBranches }

// SetSubBranches replaces the children.
func (b *Branch[C]) SetSubBranches(children []*Branch[C]) { b.subBranches = children }

// Branch creates a child addressed at b's address composed with identity,
// runs build on it for nested registration and appends it to b. build may
// be nil.
func (b *Branch[C]) Branch(identity string, build func(*Branch[C]), opts ...Option[C]) *Branch[C] {
	child := &Branch[C]{
		identity: identity,
		address:  b.address.Compose(identity),
	}
	for _, opt := range opts {
		opt(child)
	}
	if build != nil {
		build(child)
	}
	b.subBranches = append(b.subBranches, child)
	return child
}

func (b *Branch[C]) Flatten() []*Branch[C]  { return Flatten(b) }
func (b *Branch[C]) AllKnown() []*Branch[C] { return AllKnown(b) }

func (b *Branch[C]) BestMatch(query address.Address[*Branch[C]]) (*Branch[C], bool) {
	return BestMatch(b, query)
}

func (b *Branch[C]) BestMatchWithRemaining(query address.Address[*Branch[C]]) (*Branch[C], address.Address[*Branch[C]], bool) {
	return BestMatchWithRemaining(b, query)
}
