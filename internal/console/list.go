package console

import (
	"strings"

	"golang.org/x/exp/slices"

	"github.com/keshon/cix/internal/tree"
)

// Commands returns every descendant of b that has a handler, ordered by
// address.
func (b *Branch) Commands() []*Branch {
	var cmds []*Branch
	for _, d := range tree.AllKnown(b)[1:] {
		if d.HasHandler() {
			cmds = append(cmds, d)
		}
	}
	sortByAddress(cmds)
	return cmds
}

// Children returns the direct children of b ordered by identity.
func (b *Branch) Children() []*Branch {
	out := slices.Clone(b.subBranches)
	slices.SortStableFunc(out, func(x, y *Branch) int {
		return strings.Compare(x.identity, y.identity)
	})
	return out
}

// CommandLine renders the address of b relative to root as the words a user
// types to reach it.
func (b *Branch) CommandLine(root *Branch) string {
	rel := strings.TrimPrefix(b.address.Key(), root.address.Key())
	return strings.TrimSpace(strings.ReplaceAll(rel, b.address.Divider(), " "))
}

// ApplyAll wraps the handler of b and every descendant.
func (b *Branch) ApplyAll(mws ...Middleware) {
	tree.Walk(b, func(n *Branch, _ int) bool {
		n.Use(mws...)
		return true
	})
}

func sortByAddress(bs []*Branch) {
	slices.SortFunc(bs, func(x, y *Branch) int {
		return strings.Compare(x.address.Key(), y.address.Key())
	})
}
