package address

import "strings"

// DefaultDivider separates address segments unless WithDivider says otherwise.
const DefaultDivider = "/"

// Address is an immutable position in a divider-delimited namespace.
// T tags the kind of entity addressed so addresses of unrelated trees
// cannot be mixed.
type Address[T any] struct {
	path    string
	divider string
}

// Addressable is anything that can report its own address.
type Addressable[T any] interface {
	Address() Address[T]
}

// Option configures a new Address.
type Option func(*options)

type options struct {
	divider string
}

// WithDivider overrides the segment divider.
func WithDivider(divider string) Option {
	return func(o *options) {
		o.divider = divider
	}
}

// New returns an address for path.
func New[T any](path string, opts ...Option) Address[T] {
	o := options{divider: DefaultDivider}
	for _, opt := range opts {
		opt(&o)
	}
	return Address[T]{path: path, divider: o.divider}
}

// Compose returns a new address with segment appended after the divider.
// The segment is taken verbatim.
func (a Address[T]) Compose(segment string) Address[T] {
	return Address[T]{path: a.path + a.Divider() + segment, divider: a.divider}
}

// Divider returns the segment divider, falling back to DefaultDivider for
// the zero value.
func (a Address[T]) Divider() string {
	if a.divider == "" {
		return DefaultDivider
	}
	return a.divider
}

// Equal reports whether both addresses have the same path. The divider is
// not part of an address's identity.
func (a Address[T]) Equal(other Address[T]) bool {
	return a.path == other.path
}

// Key returns the value addresses are compared and hashed by.
func (a Address[T]) Key() string { return a.path }

func (a Address[T]) String() string { return a.path }

// Segments splits the path on the divider. The empty path has one empty segment.
func (a Address[T]) Segments() []string {
	return strings.Split(a.path, a.Divider())
}

// LastSegment returns everything after the final divider.
func (a Address[T]) LastSegment() string {
	d := a.Divider()
	if i := strings.LastIndex(a.path, d); i >= 0 {
		return a.path[i+len(d):]
	}
	return a.path
}

// HasPrefix reports whether prefix's path is a textual prefix of a's path.
func (a Address[T]) HasPrefix(prefix Address[T]) bool {
	return strings.HasPrefix(a.path, prefix.path)
}

// TrimPrefix strips prefix's path from the front of a. The result keeps a's
// divider. If prefix does not match, a is returned unchanged.
func (a Address[T]) TrimPrefix(prefix Address[T]) Address[T] {
	return Address[T]{path: strings.TrimPrefix(a.path, prefix.path), divider: a.divider}
}
