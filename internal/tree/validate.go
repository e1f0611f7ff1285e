package tree

import (
	"errors"
	"fmt"
)

var (
	ErrCycle   = errors.New("tree contains a cycle")
	ErrTooDeep = errors.New("tree exceeds maximum depth")
)

// Validate checks that root is acyclic and, when maxDepth is positive, that
// no node sits deeper than maxDepth below root.
func Validate[B Tree[B]](root B, maxDepth int) error {
	onPath := map[B]struct{}{}
	var visit func(b B, depth int) error
	visit = func(b B, depth int) error {
		if _, cyclic := onPath[b]; cyclic {
			return fmt.Errorf("%w: %q is its own ancestor", ErrCycle, b.Address().Key())
		}
		if maxDepth > 0 && depth > maxDepth {
			return fmt.Errorf("%w: %q at depth %d (max %d)", ErrTooDeep, b.Address().Key(), depth, maxDepth)
		}
		onPath[b] = struct{}{}
		defer delete(onPath, b)
		for _, child := range b.SubBranches() {
			if err := visit(child, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	return visit(root, 0)
}
