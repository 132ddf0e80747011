package formel

import "fmt"

// --- Ranges ----------------------------------------------------------------

// Range is a small type for capturing a run of input tokens, together with a
// description of what is wrong with them. Other than a span in an input stream,
// a range is inclusive: From and To both denote positions of tokens within the
// token array a formula has been validated from.
//
// An example would be a range for two consecutive operators:
//
//    1 + + x
//      ~~~
//    From        = 1
//    To          = 2
//    Description = "Two operators"
//
type Range struct {
	From, To    int
	Description string
}

// MakeRange creates a range from..to. If the positions are given in the wrong
// order, they will be swapped.
func MakeRange(from, to int, description string) Range {
	if to < from {
		from, to = to, from
	}
	return Range{From: from, To: to, Description: description}
}

// Len returns the number of token positions covered by a range.
func (r Range) Len() int {
	return r.To - r.From + 1
}

// Contains is a predicate: is position i covered by range r?
func (r Range) Contains(i int) bool {
	return i >= r.From && i <= r.To
}

// Indexes returns all the positions covered by r, in ascending order.
func (r Range) Indexes() []int {
	indexes := make([]int, 0, r.Len())
	for i := r.From; i <= r.To; i++ {
		indexes = append(indexes, i)
	}
	return indexes
}

// Position returns a human readable location of a range,
// i.e., "position 3" or "positions 3-5".
func (r Range) Position() string {
	if r.From == r.To {
		return fmt.Sprintf("position %d", r.From)
	}
	return fmt.Sprintf("positions %d-%d", r.From, r.To)
}

func (r Range) String() string {
	return fmt.Sprintf("[%d…%d] %s", r.From, r.To, r.Description)
}
