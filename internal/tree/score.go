package tree

import "github.com/keshon/cix/internal/address"

// Score ranks candidate matches. Deeper addresses always win; at equal
// depth the longer final segment wins.
type Score struct {
	Depth int
	Tail  int
}

// ScoreOf scores an address by its segment count and last segment length.
func ScoreOf[T any](a address.Address[T]) Score {
	return Score{
		Depth: len(a.Segments()),
		Tail:  len(a.LastSegment()),
	}
}

// Compare returns -1, 0 or +1 as s ranks below, equal to or above o.
func (s Score) Compare(o Score) int {
	switch {
	case s.Depth != o.Depth:
		return sign(s.Depth - o.Depth)
	default:
		return sign(s.Tail - o.Tail)
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
