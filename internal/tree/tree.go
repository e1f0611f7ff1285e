// Package tree resolves divider-delimited paths against a tree of addressed
// nodes.
//
// Matching depends only on the address strings of the nodes, never on
// parent/child pointers: a node matches a query when its address is a
// textual prefix of the query, and the most specific match wins.
//
// The functions here do not lock. Build the tree first, then query it, or
// guard both sides with a lock of your own.
package tree

import (
	"github.com/keshon/cix/internal/address"
)

// Node is a tree node whose children are of the same concrete type B.
type Node[B any] interface {
	address.Addressable[B]
	Identity() string
	SubBranches() []B
}

// Tree is the constraint the engine functions operate on. Nodes must be
// comparable (usually pointers) so traversals can detect cycles.
type Tree[B any] interface {
	comparable
	Node[B]
}

// Flatten returns every strict descendant of root in pre-order. The result
// is recomputed on every call.
//
// A node that is its own ancestor is skipped instead of recursing forever.
func Flatten[B Tree[B]](root B) []B {
	onPath := map[B]struct{}{root: {}}
	return flatten(root, onPath)
}

func flatten[B Tree[B]](b B, onPath map[B]struct{}) []B {
	var out []B
	for _, child := range b.SubBranches() {
		if _, cyclic := onPath[child]; cyclic {
			continue
		}
		out = append(out, child)
		onPath[child] = struct{}{}
		out = append(out, flatten(child, onPath)...)
		delete(onPath, child)
	}
	return out
}

// AllKnown returns root and all of its descendants, distinct by address.
// When several nodes share an address the first one in pre-order is kept.
func AllKnown[B Tree[B]](root B) []B {
	all := append([]B{root}, Flatten(root)...)
	seen := make(map[string]struct{}, len(all))
	out := all[:0]
	for _, b := range all {
		key := b.Address().Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, b)
	}
	return out
}

// BestMatch returns the most specific node whose address is a prefix of
// query. ok is false when no node, root included, matches.
func BestMatch[B Tree[B]](root B, query address.Address[B]) (match B, ok bool) {
	return pick(AllKnown(root), query)
}

// BestMatchWithRemaining is BestMatch plus the part of query left after
// stripping the match's address. Without a match remaining is query itself.
func BestMatchWithRemaining[B Tree[B]](root B, query address.Address[B]) (match B, remaining address.Address[B], ok bool) {
	match, ok = BestMatch(root, query)
	if !ok {
		return match, query, false
	}
	return match, query.TrimPrefix(match.Address()), true
}

func pick[B Tree[B]](candidates []B, query address.Address[B]) (best B, ok bool) {
	var bestScore Score
	for _, c := range candidates {
		a := c.Address()
		if !query.HasPrefix(a) {
			continue
		}
		s := ScoreOf(a)
		if !ok || outranks(s, a, bestScore, best.Address()) {
			best, bestScore, ok = c, s, true
		}
	}
	return best, ok
}

// outranks orders by score, then by the lexically smaller path.
func outranks[T any](s Score, a address.Address[T], than Score, b address.Address[T]) bool {
	if c := s.Compare(than); c != 0 {
		return c > 0
	}
	return a.Key() < b.Key()
}

// Walk visits root and its descendants in pre-order with their depth below
// root. Returning false from fn skips the node's children.
func Walk[B Tree[B]](root B, fn func(b B, depth int) bool) {
	onPath := map[B]struct{}{}
	var visit func(b B, depth int)
	visit = func(b B, depth int) {
		if _, cyclic := onPath[b]; cyclic {
			return
		}
		if !fn(b, depth) {
			return
		}
		onPath[b] = struct{}{}
		for _, child := range b.SubBranches() {
			visit(child, depth+1)
		}
		delete(onPath, b)
	}
	visit(root, 0)
}
