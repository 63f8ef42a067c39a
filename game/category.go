package game

import "fmt"

// Category is the tag of a prompt that decides which persona the round favors.
type Category int

const (
	FavorsA Category = iota
	FavorsB
	Unpredictable
)

// Categories lists every category in display order.
var Categories = [3]Category{FavorsA, FavorsB, Unpredictable}

func (c Category) String() string {
	switch c {
	case FavorsA:
		return "favors_a"
	case FavorsB:
		return "favors_b"
	case Unpredictable:
		return "unpredictable"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

func (c Category) Valid() bool {
	return c >= FavorsA && c <= Unpredictable
}
