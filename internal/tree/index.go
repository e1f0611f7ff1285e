package tree

import (
	"github.com/zeebo/xxh3"
	"golang.org/x/exp/slices"

	"github.com/keshon/cix/internal/address"
)

// Fingerprint hashes the addresses of every node under root, root included,
// in pre-order. It changes whenever a node is added, removed or re-addressed.
func Fingerprint[B Tree[B]](root B) uint64 {
	h := xxh3.New()
	Walk(root, func(b B, depth int) bool {
		_, _ = h.WriteString(b.Address().Key())
		_, _ = h.WriteString("\x00")
		return true
	})
	return h.Sum64()
}

// Index is a snapshot of a tree keyed by address. Lookups probe the
// prefixes of the query instead of scanning every node, and return the
// same node BestMatch would for the snapshotted tree.
//
// An Index does not notice mutations by itself; call Refresh after changing
// the tree.
type Index[B Tree[B]] struct {
	root        B
	fingerprint uint64
	nodes       []B
	byPath      map[string]B
}

// NewIndex snapshots root.
func NewIndex[B Tree[B]](root B) *Index[B] {
	ix := &Index[B]{root: root}
	ix.rebuild(AllKnown(root), Fingerprint(root))
	return ix
}

// Refresh rebuilds the snapshot if the tree changed since the last build
// and reports whether it did. A node replaced by another at the same
// address counts as a change.
func (ix *Index[B]) Refresh() bool {
	all := AllKnown(ix.root)
	fp := Fingerprint(ix.root)
	if fp == ix.fingerprint && slices.Equal(all, ix.nodes) {
		return false
	}
	ix.rebuild(all, fp)
	return true
}

// Len returns the number of distinct addresses in the snapshot.
func (ix *Index[B]) Len() int { return len(ix.byPath) }

func (ix *Index[B]) rebuild(all []B, fp uint64) {
	byPath := make(map[string]B, len(all))
	for _, b := range all {
		byPath[b.Address().Key()] = b
	}
	ix.nodes = all
	ix.byPath = byPath
	ix.fingerprint = fp
}

// BestMatch answers like the package level BestMatch.
func (ix *Index[B]) BestMatch(query address.Address[B]) (B, bool) {
	q := query.Key()
	var hits []B
	for i := len(q); i >= 0; i-- {
		if b, ok := ix.byPath[q[:i]]; ok {
			hits = append(hits, b)
		}
	}
	return pick(hits, query)
}

// BestMatchWithRemaining answers like the package level BestMatchWithRemaining.
func (ix *Index[B]) BestMatchWithRemaining(query address.Address[B]) (B, address.Address[B], bool) {
	match, ok := ix.BestMatch(query)
	if !ok {
		return match, query, false
	}
	return match, query.TrimPrefix(match.Address()), true
}
